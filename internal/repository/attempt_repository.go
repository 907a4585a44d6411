//go:generate mockery --name AttemptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_ear_training/internal/middleware"
	"go_ear_training/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// AttemptRepository は追記専用の exercise_attempts テーブルへのアクセスを提供します
type AttemptRepository interface {
	Create(ctx context.Context, tx *gorm.DB, attempt *model.ExerciseAttempt) error // トランザクション対応
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.ExerciseAttempt, error)
	FindByUserSince(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time) ([]*model.ExerciseAttempt, error)
}

type gormAttemptRepository struct{}

func NewGormAttemptRepository() AttemptRepository {
	return &gormAttemptRepository{}
}

func (r *gormAttemptRepository) Create(ctx context.Context, tx *gorm.DB, attempt *model.ExerciseAttempt) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Create(attempt)
	if result.Error != nil {
		// session_id のユニーク制約違反 = 同一セッションの再送。ErrConflict に正規化する。
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn(
				"Duplicate session submission detected on create attempt",
				"session_id", attempt.SessionID,
				"user_id", attempt.UserID,
			)
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			// sqlite (テスト) など pgconn を経由しないドライバ向け
			return model.ErrConflict
		}

		logger.Error(
			"Error creating exercise attempt in DB",
			"error", result.Error,
			"user_id", attempt.UserID,
		)
		return fmt.Errorf("gormAttemptRepository.Create: %w", result.Error)
	}

	return nil
}

func (r *gormAttemptRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.ExerciseAttempt, error) {
	logger := middleware.GetLogger(ctx)
	var attempts []*model.ExerciseAttempt

	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at ASC").
		Find(&attempts)
	if result.Error != nil {
		logger.Error("Error finding attempts by user in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormAttemptRepository.FindByUser: %w", result.Error)
	}

	return attempts, nil
}

func (r *gormAttemptRepository) FindByUserSince(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time) ([]*model.ExerciseAttempt, error) {
	logger := middleware.GetLogger(ctx)
	var attempts []*model.ExerciseAttempt

	result := db.WithContext(ctx).
		Where("user_id = ? AND completed_at >= ?", userID, since).
		Order("completed_at ASC").
		Find(&attempts)
	if result.Error != nil {
		logger.Error("Error finding attempts by user since date in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormAttemptRepository.FindByUserSince: %w", result.Error)
	}

	return attempts, nil
}
