// internal/model/attempt.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseAttempt は完了した1トレーニングセッションの集計結果を表します。
// 作成後に更新・削除されることはありません (追記専用)。
type ExerciseAttempt struct {
	AttemptID      uuid.UUID    `gorm:"type:uuid;primaryKey" json:"attempt_id"`
	UserID         uuid.UUID    `gorm:"type:uuid;not null;index" json:"-"`
	SessionID      uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex" json:"session_id"` // 再送検知用の冪等キー
	ExerciseType   ExerciseType `gorm:"type:varchar(20);not null" json:"exercise_type"`
	Difficulty     Difficulty   `gorm:"type:varchar(20);not null" json:"difficulty"`
	CorrectAnswers int          `gorm:"not null" json:"correct_answers"`
	TotalQuestions int          `gorm:"not null" json:"total_questions"`
	// CompletedAt はサーバー側で採番する完了時刻。集計は常にこちらを使う。
	CompletedAt time.Time `gorm:"not null;index" json:"completed_at"`
	// ClientCompletedAt はクライアント申告の完了時刻 (参考情報としてのみ保持)
	ClientCompletedAt *time.Time `json:"client_completed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func (ExerciseAttempt) TableName() string {
	return "exercise_attempts"
}

// SubmitResultRequest はセッション結果送信リクエストのDTO
type SubmitResultRequest struct {
	SessionID      uuid.UUID    `json:"session_id" validate:"required"`
	ExerciseType   ExerciseType `json:"exercise_type" validate:"required"`
	Difficulty     Difficulty   `json:"difficulty" validate:"required"`
	CorrectAnswers int          `json:"correct_answers" validate:"min=0"`
	TotalQuestions int          `json:"total_questions" validate:"min=0"`
	CompletedAt    *time.Time   `json:"completed_at,omitempty"` // クライアント時刻 (メタデータ扱い)
}
