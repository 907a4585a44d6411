//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_ear_training/internal/middleware"
	"go_ear_training/internal/model"
	"go_ear_training/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressService はセッション結果の永続化 (書き込み系) を担当します
type ProgressService interface {
	// SubmitExerciseResult は完了したセッションの集計を1レコードとして保存し、
	// 同一トランザクションでストリーク/累計を更新します。
	// total == 0 の呼び出しは何も書かずに成功扱い (平均を汚染しないため)。
	// 同一 session_id の再送は既に記録済みとして成功扱い。
	SubmitExerciseResult(ctx context.Context, userID uuid.UUID, req *model.SubmitResultRequest) (*model.ExerciseAttempt, error)
}

type progressService struct {
	db          *gorm.DB
	attemptRepo repository.AttemptRepository
	summaryRepo repository.SummaryRepository
}

func NewProgressService(db *gorm.DB, attemptRepo repository.AttemptRepository, summaryRepo repository.SummaryRepository) ProgressService {
	return &progressService{
		db:          db,
		attemptRepo: attemptRepo,
		summaryRepo: summaryRepo,
	}
}

func (s *progressService) SubmitExerciseResult(ctx context.Context, userID uuid.UUID, req *model.SubmitResultRequest) (*model.ExerciseAttempt, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "session_id", req.SessionID)

	// 境界で閉じた型集合を強制する。不正な行を下流に流さない。
	if !req.ExerciseType.IsValid() {
		return nil, model.NewAppError("INVALID_EXERCISE_TYPE", "エクササイズ種別が正しくありません。", "exercise_type", model.ErrInvalidInput)
	}
	if !req.Difficulty.IsValid() {
		return nil, model.NewAppError("INVALID_DIFFICULTY", "難易度が正しくありません。", "difficulty", model.ErrInvalidInput)
	}
	if req.CorrectAnswers < 0 || req.TotalQuestions < 0 {
		return nil, model.NewAppError("INVALID_COUNTS", "回答数が負の値です。", "correct_answers,total_questions", model.ErrInvalidInput)
	}
	if req.CorrectAnswers > req.TotalQuestions {
		return nil, model.NewAppError("INVALID_COUNTS", "正答数が回答数を超えています。", "correct_answers", model.ErrInvalidInput)
	}
	if req.SessionID == uuid.Nil {
		return nil, model.NewAppError("INVALID_SESSION_ID", "セッションIDが必要です。", "session_id", model.ErrInvalidInput)
	}

	// 1問も回答していないセッションは記録しない (無音の no-op)
	if req.TotalQuestions == 0 {
		logger.Info("Skipping submission with zero answered questions")
		return nil, nil
	}

	now := time.Now()
	attempt := &model.ExerciseAttempt{
		AttemptID:      uuid.New(),
		UserID:         userID,
		SessionID:      req.SessionID,
		ExerciseType:   req.ExerciseType,
		Difficulty:     req.Difficulty,
		CorrectAnswers: req.CorrectAnswers,
		TotalQuestions: req.TotalQuestions,
		// 集計用の完了時刻はサーバー側で採番する (クライアント時刻は参考情報)
		CompletedAt:       now,
		ClientCompletedAt: req.CompletedAt,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.attemptRepo.Create(ctx, tx, attempt); err != nil {
			return err
		}
		// 同一トランザクション内で集計行を更新する (行ロックで直列化)
		return s.applyStreakAndVolume(ctx, tx, userID, dayStartUTC(now))
	})

	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			// クライアントのリトライによる再送。既に記録済みなので成功として扱う。
			logger.Info("Duplicate session submission ignored")
			return nil, nil
		}
		logger.Error("Failed to submit exercise result", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の保存に失敗しました。", "", err)
	}

	logger.Info("Exercise result submitted",
		"exercise_type", req.ExerciseType,
		"difficulty", req.Difficulty,
		"correct", req.CorrectAnswers,
		"total", req.TotalQuestions,
	)
	return attempt, nil
}

// applyStreakAndVolume はユーザーの集計行を更新します。
//   - 行が無ければ streak=1, total=1 で作成
//   - 最終活動日が昨日なら streak+1、今日なら据え置き、それ以外は1にリセット
//   - total_exercises は無条件に+1、last_activity_date は today に更新
func (s *progressService) applyStreakAndVolume(ctx context.Context, tx *gorm.DB, userID uuid.UUID, today time.Time) error {
	logger := middleware.GetLogger(ctx)

	summary, err := s.summaryRepo.FindForUpdate(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// 初回のセッション完了。遅延作成する。
			logger.Info("Creating progress summary for first session", "user_id", userID)
			return s.summaryRepo.Create(ctx, tx, &model.UserProgressSummary{
				UserID:           userID,
				StreakDays:       1,
				TotalExercises:   1,
				LastActivityDate: today,
			})
		}
		return err
	}

	lastActivity := dayStartUTC(summary.LastActivityDate)
	yesterday := today.AddDate(0, 0, -1)

	switch {
	case lastActivity.Equal(yesterday):
		summary.StreakDays++
	case lastActivity.Equal(today):
		// 同日内の複数セッションはストリークを伸ばさない
	default:
		// 2日以上の空白でリセット
		summary.StreakDays = 1
	}

	summary.TotalExercises++
	summary.LastActivityDate = today

	return s.summaryRepo.Update(ctx, tx, summary)
}

// dayStartUTC は時刻をUTCの日単位に切り詰めます
func dayStartUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
