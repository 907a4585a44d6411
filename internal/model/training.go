// internal/model/training.go
package model

import "github.com/google/uuid"

// StartSessionRequest はトレーニングセッション開始リクエストのDTO
type StartSessionRequest struct {
	ExerciseType ExerciseType `json:"exercise_type" validate:"required"`
	Difficulty   Difficulty   `json:"difficulty" validate:"required"`
}

// StartSessionResponse はセッション開始時のレスポンスDTO
type StartSessionResponse struct {
	SessionID     uuid.UUID `json:"session_id"`
	QuestionQuota int       `json:"question_quota"`
}

// RecordAnswerRequest は1問の回答結果送信リクエストのDTO
type RecordAnswerRequest struct {
	IsCorrect *bool `json:"is_correct" validate:"required"`
}

// SessionProgressResponse はセッション内の現在のスコアを返すDTO
type SessionProgressResponse struct {
	SessionID      uuid.UUID `json:"session_id"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	QuestionQuota  int       `json:"question_quota"`
}
