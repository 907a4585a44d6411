//go:generate mockery --name SummaryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_ear_training/internal/middleware"
	"go_ear_training/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SummaryRepository はユーザーごとの集計行 (user_progress_summaries) への
// アクセスを提供します。集計行は唯一の共有可変リソースなので、更新系は
// 必ずトランザクション内で FindForUpdate → Update の順に使うこと。
type SummaryRepository interface {
	Find(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserProgressSummary, error)
	// FindForUpdate は行ロック (SELECT ... FOR UPDATE) 付きで集計行を取得します
	FindForUpdate(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*model.UserProgressSummary, error)
	Create(ctx context.Context, tx *gorm.DB, summary *model.UserProgressSummary) error
	Update(ctx context.Context, tx *gorm.DB, summary *model.UserProgressSummary) error
}

type gormSummaryRepository struct{}

func NewGormSummaryRepository() SummaryRepository {
	return &gormSummaryRepository{}
}

func (r *gormSummaryRepository) Find(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserProgressSummary, error) {
	var summary model.UserProgressSummary
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&summary)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// 初回利用時は行が無いのが正常系
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormSummaryRepository.Find: %w", result.Error)
	}
	return &summary, nil
}

func (r *gormSummaryRepository) FindForUpdate(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*model.UserProgressSummary, error) {
	logger := middleware.GetLogger(ctx)
	var summary model.UserProgressSummary

	result := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&summary)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding summary for update in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormSummaryRepository.FindForUpdate: %w", result.Error)
	}
	return &summary, nil
}

func (r *gormSummaryRepository) Create(ctx context.Context, tx *gorm.DB, summary *model.UserProgressSummary) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Create(summary).Error; err != nil {
		logger.Error("Error creating progress summary in DB", "error", err, "user_id", summary.UserID.String())
		return fmt.Errorf("gormSummaryRepository.Create: %w", err)
	}
	return nil
}

func (r *gormSummaryRepository) Update(ctx context.Context, tx *gorm.DB, summary *model.UserProgressSummary) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(summary)
	if result.Error != nil {
		logger.Error("Error updating progress summary in DB", "error", result.Error, "user_id", summary.UserID.String())
		return fmt.Errorf("gormSummaryRepository.Update: %w", result.Error)
	}
	return nil
}
