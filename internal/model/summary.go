// internal/model/summary.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProgressSummary はユーザーごとに1行だけ存在する可変の集計行です。
// 最初のセッション完了時に遅延作成され、以降は完了のたびに更新されます。
type UserProgressSummary struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	StreakDays     int       `gorm:"not null;default:1" json:"streak_days"`
	TotalExercises int       `gorm:"not null;default:0" json:"total_exercises"`
	// LastActivityDate は日単位に切り詰めた最終活動日 (UTC)
	LastActivityDate time.Time `gorm:"not null" json:"last_activity_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (UserProgressSummary) TableName() string {
	return "user_progress_summaries"
}
