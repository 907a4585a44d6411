//go:generate mockery --name SongService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/json"

	"go_ear_training/internal/middleware"
	"go_ear_training/internal/model"
	"go_ear_training/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SongService は楽曲解析レコードを管理します。
// コード検出は実際の信号解析ではなくデモ用タイムラインを返すスタブです
// (音声のアップロード先であるオブジェクトストレージも外部管理)。
type SongService interface {
	AnalyzeSong(ctx context.Context, userID uuid.UUID, req *model.AnalyzeSongRequest) (*model.SongAnalysisResponse, error)
	ListAnalyses(ctx context.Context, userID uuid.UUID) ([]*model.SongAnalysisResponse, error)
}

type songService struct {
	db       *gorm.DB
	songRepo repository.SongRepository
}

func NewSongService(db *gorm.DB, songRepo repository.SongRepository) SongService {
	return &songService{
		db:       db,
		songRepo: songRepo,
	}
}

// demoChordTimeline は解析スタブが常に返すコードタイムラインです
var demoChordTimeline = []model.ChordSegment{
	{Chord: "C", StartSec: 0, EndSec: 4},
	{Chord: "G", StartSec: 4, EndSec: 8},
	{Chord: "Am", StartSec: 8, EndSec: 12},
	{Chord: "F", StartSec: 12, EndSec: 16},
	{Chord: "C", StartSec: 16, EndSec: 20},
	{Chord: "G", StartSec: 20, EndSec: 24},
	{Chord: "F", StartSec: 24, EndSec: 28},
	{Chord: "C", StartSec: 28, EndSec: 32},
}

const (
	demoSongKey = "C Major"
	demoSongBpm = 120
)

func (s *songService) AnalyzeSong(ctx context.Context, userID uuid.UUID, req *model.AnalyzeSongRequest) (*model.SongAnalysisResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	chordsJSON, err := json.Marshal(demoChordTimeline)
	if err != nil {
		logger.Error("Failed to marshal chord timeline", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "解析結果の生成に失敗しました。", "", err)
	}

	analysis := &model.SongAnalysis{
		AnalysisID: uuid.New(),
		UserID:     userID,
		Title:      req.Title,
		AudioURL:   req.AudioURL,
		SongKey:    demoSongKey,
		Bpm:        demoSongBpm,
		Chords:     string(chordsJSON),
	}

	if err := s.songRepo.Create(ctx, s.db, analysis); err != nil {
		logger.Error("Failed to create song analysis", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "楽曲解析の保存に失敗しました。", "", err)
	}

	logger.Info("Song analysis created", "analysis_id", analysis.AnalysisID, "title", req.Title)
	return toSongAnalysisResponse(analysis, logger.Warn), nil
}

func (s *songService) ListAnalyses(ctx context.Context, userID uuid.UUID) ([]*model.SongAnalysisResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	analyses, err := s.songRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list song analyses", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "楽曲解析一覧の取得に失敗しました。", "", err)
	}

	responses := make([]*model.SongAnalysisResponse, 0, len(analyses))
	for _, a := range analyses {
		responses = append(responses, toSongAnalysisResponse(a, logger.Warn))
	}
	return responses, nil
}

func toSongAnalysisResponse(a *model.SongAnalysis, warn func(msg string, args ...any)) *model.SongAnalysisResponse {
	var chords []model.ChordSegment
	if a.Chords != "" {
		if err := json.Unmarshal([]byte(a.Chords), &chords); err != nil {
			// 壊れたタイムラインは空で返す (一覧全体を失敗させない)
			warn("Failed to unmarshal stored chord timeline", "analysis_id", a.AnalysisID, "error", err)
			chords = nil
		}
	}
	return &model.SongAnalysisResponse{
		AnalysisID: a.AnalysisID,
		Title:      a.Title,
		AudioURL:   a.AudioURL,
		Key:        a.SongKey,
		Bpm:        a.Bpm,
		Chords:     chords,
		CreatedAt:  a.CreatedAt,
	}
}
