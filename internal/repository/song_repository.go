//go:generate mockery --name SongRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_ear_training/internal/middleware"
	"go_ear_training/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SongRepository は楽曲解析レコード (song_analyses) へのアクセスを提供します
type SongRepository interface {
	Create(ctx context.Context, db *gorm.DB, analysis *model.SongAnalysis) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.SongAnalysis, error)
	CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
}

type gormSongRepository struct{}

func NewGormSongRepository() SongRepository {
	return &gormSongRepository{}
}

func (r *gormSongRepository) Create(ctx context.Context, db *gorm.DB, analysis *model.SongAnalysis) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(analysis).Error; err != nil {
		logger.Error("Error creating song analysis in DB", "error", err, "user_id", analysis.UserID.String())
		return fmt.Errorf("gormSongRepository.Create: %w", err)
	}
	return nil
}

func (r *gormSongRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.SongAnalysis, error) {
	logger := middleware.GetLogger(ctx)
	var analyses []*model.SongAnalysis

	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&analyses)
	if result.Error != nil {
		logger.Error("Error finding song analyses by user in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormSongRepository.FindByUser: %w", result.Error)
	}

	return analyses, nil
}

func (r *gormSongRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64

	result := db.WithContext(ctx).
		Model(&model.SongAnalysis{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting song analyses by user in DB", "error", result.Error, "user_id", userID.String())
		return 0, fmt.Errorf("gormSongRepository.CountByUser: %w", result.Error)
	}

	return count, nil
}
