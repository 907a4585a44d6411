// internal/model/analytics.go
package model

// WeeklyProgressEntry は直近7日間タイムラインの1日分のスロットです。
// Accuracy はその日の正答率 (四捨五入した百分率)、Questions は回答数の生値。
type WeeklyProgressEntry struct {
	Day       string `json:"day"` // 曜日ラベル (Sun..Sat)
	Accuracy  int    `json:"accuracy"`
	Questions int    `json:"questions"`
}

// CategoryProgress はエクササイズ種別ごとの難易度別正答率です。
// データが無いセルは0を返す (固定4行×3列の完全な表)。
type CategoryProgress struct {
	Category     ExerciseType `json:"category"`
	Beginner     int          `json:"beginner"`
	Intermediate int          `json:"intermediate"`
	Advanced     int          `json:"advanced"`
}

// UserStats はユーザー統計のスナップショットです
type UserStats struct {
	AccuracyRate   int   `json:"accuracy_rate"` // 全期間の正答率 (%)
	StreakDays     int   `json:"streak_days"`
	TotalExercises int   `json:"total_exercises"`
	AnalyzedSongs  int64 `json:"analyzed_songs"`
	Level          int   `json:"level"` // 1..5 の派生スキルレベル
}
