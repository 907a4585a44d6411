// internal/model/song.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SongAnalysis はアップロードされた楽曲の解析結果を表します。
// コード検出はデモデータによるスタブで、実際の信号解析は行いません。
type SongAnalysis struct {
	AnalysisID uuid.UUID `gorm:"type:uuid;primaryKey" json:"analysis_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Title      string    `gorm:"not null" json:"title"`
	AudioURL   string    `gorm:"not null" json:"audio_url"` // オブジェクトストレージ上のURL (外部管理)
	SongKey    string    `json:"key"`
	Bpm        int       `json:"bpm"`
	// Chords はコードタイムラインをJSON文字列で保持する
	Chords    string    `gorm:"type:text" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (SongAnalysis) TableName() string {
	return "song_analyses"
}

// ChordSegment はコードタイムラインの1区間です
type ChordSegment struct {
	Chord    string  `json:"chord"`
	StartSec float64 `json:"start_sec"`
	EndSec   float64 `json:"end_sec"`
}

// AnalyzeSongRequest は楽曲解析リクエストのDTO
type AnalyzeSongRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	AudioURL string `json:"audio_url" validate:"required,url"`
}

// SongAnalysisResponse は解析結果のレスポンスDTO
type SongAnalysisResponse struct {
	AnalysisID uuid.UUID      `json:"analysis_id"`
	Title      string         `json:"title"`
	AudioURL   string         `json:"audio_url"`
	Key        string         `json:"key"`
	Bpm        int            `json:"bpm"`
	Chords     []ChordSegment `json:"chords"`
	CreatedAt  time.Time      `json:"created_at"`
}
