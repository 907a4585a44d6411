//go:generate mockery --name AnalyticsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go_ear_training/internal/config"
	"go_ear_training/internal/middleware"
	"go_ear_training/internal/model"
	"go_ear_training/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyticsService は進捗の読み取り系集計を担当します。
// 集計は呼び出しのたびに永続化済みレコードから計算し、部分的な結果は返さない
// (どこかのフェッチが失敗したら集計全体をエラーにする)。
type AnalyticsService interface {
	GetWeeklyProgress(ctx context.Context, userID uuid.UUID) ([]*model.WeeklyProgressEntry, error)
	GetProgressByCategory(ctx context.Context, userID uuid.UUID) ([]*model.CategoryProgress, error)
	GetUserStats(ctx context.Context, userID uuid.UUID) (*model.UserStats, error)
}

type analyticsService struct {
	db          *gorm.DB
	attemptRepo repository.AttemptRepository
	summaryRepo repository.SummaryRepository
	songRepo    repository.SongRepository
}

func NewAnalyticsService(db *gorm.DB, attemptRepo repository.AttemptRepository, summaryRepo repository.SummaryRepository, songRepo repository.SongRepository) AnalyticsService {
	return &analyticsService{
		db:          db,
		attemptRepo: attemptRepo,
		summaryRepo: summaryRepo,
		songRepo:    songRepo,
	}
}

// weekdayLabels は time.Weekday の値をそのまま添字にできる曜日ラベルです
var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// GetWeeklyProgress は今日を末尾とする7日間のタイムラインを返します。
// スロットは古い日から順に並び、各スロットはその曜日の正答率 (%) と回答数を持つ。
// ウィンドウ幅が7日ちょうどなので曜日バケットが衝突することはない。
func (s *analyticsService) GetWeeklyProgress(ctx context.Context, userID uuid.UUID) ([]*model.WeeklyProgressEntry, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	windowStart := dayStartUTC(time.Now()).AddDate(0, 0, -(config.WeeklyWindowDays - 1))

	attempts, err := s.attemptRepo.FindByUserSince(ctx, s.db, userID, windowStart)
	if err != nil {
		logger.Error("Failed to fetch attempts for weekly progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "週間進捗の取得に失敗しました。", "", err)
	}

	// 7スロットを古い日から順に初期化し、曜日→スロット位置の索引を作る
	entries := make([]*model.WeeklyProgressEntry, config.WeeklyWindowDays)
	slotByWeekday := make(map[time.Weekday]int, config.WeeklyWindowDays)
	correctSums := make([]int, config.WeeklyWindowDays)
	for i := 0; i < config.WeeklyWindowDays; i++ {
		date := windowStart.AddDate(0, 0, i)
		entries[i] = &model.WeeklyProgressEntry{Day: weekdayLabels[date.Weekday()]}
		slotByWeekday[date.Weekday()] = i
	}

	for _, a := range attempts {
		idx, ok := slotByWeekday[a.CompletedAt.UTC().Weekday()]
		if !ok {
			continue
		}
		correctSums[idx] += a.CorrectAnswers
		entries[idx].Questions += a.TotalQuestions
	}

	for i, e := range entries {
		e.Accuracy = roundPercent(correctSums[i], e.Questions)
	}

	logger.Debug("Weekly progress computed", "window_start", windowStart)
	return entries, nil
}

// GetProgressByCategory は全期間のレコードを (種別×難易度) の12セルに集計します。
// データの無い種別も0埋めで必ず出力する (固定形の表)。
func (s *analyticsService) GetProgressByCategory(ctx context.Context, userID uuid.UUID) ([]*model.CategoryProgress, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	attempts, err := s.attemptRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to fetch attempts for category progress", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カテゴリ別進捗の取得に失敗しました。", "", err)
	}

	type cell struct {
		correct int
		total   int
	}
	sums := make(map[model.ExerciseType]map[model.Difficulty]*cell, len(model.ExerciseTypes))
	for _, t := range model.ExerciseTypes {
		sums[t] = make(map[model.Difficulty]*cell, len(model.Difficulties))
		for _, d := range model.Difficulties {
			sums[t][d] = &cell{}
		}
	}

	for _, a := range attempts {
		byDiff, ok := sums[a.ExerciseType]
		if !ok {
			// 既知の種別以外は集計に含めない (ストア境界で弾いている前提の防波堤)
			continue
		}
		c, ok := byDiff[a.Difficulty]
		if !ok {
			continue
		}
		c.correct += a.CorrectAnswers
		c.total += a.TotalQuestions
	}

	result := make([]*model.CategoryProgress, 0, len(model.ExerciseTypes))
	for _, t := range model.ExerciseTypes {
		result = append(result, &model.CategoryProgress{
			Category:     t,
			Beginner:     roundPercent(sums[t][model.DifficultyBeginner].correct, sums[t][model.DifficultyBeginner].total),
			Intermediate: roundPercent(sums[t][model.DifficultyIntermediate].correct, sums[t][model.DifficultyIntermediate].total),
			Advanced:     roundPercent(sums[t][model.DifficultyAdvanced].correct, sums[t][model.DifficultyAdvanced].total),
		})
	}

	return result, nil
}

// GetUserStats は集計行・全期間正答率・解析済み楽曲数・派生レベルを1つの
// スナップショットにまとめます。集計行が無いユーザーはゼロ値で返す。
func (s *analyticsService) GetUserStats(ctx context.Context, userID uuid.UUID) (*model.UserStats, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	stats := &model.UserStats{}

	summary, err := s.summaryRepo.Find(ctx, s.db, userID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to fetch progress summary for stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の取得に失敗しました。", "", err)
	}
	if summary != nil {
		stats.StreakDays = summary.StreakDays
		stats.TotalExercises = summary.TotalExercises
	}

	attempts, err := s.attemptRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to fetch attempts for stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の取得に失敗しました。", "", err)
	}

	var totalCorrect, totalQuestions int
	for _, a := range attempts {
		totalCorrect += a.CorrectAnswers
		totalQuestions += a.TotalQuestions
	}
	stats.AccuracyRate = roundPercent(totalCorrect, totalQuestions)

	songCount, err := s.songRepo.CountByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to count analyzed songs for stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の取得に失敗しました。", "", err)
	}
	stats.AnalyzedSongs = songCount

	// レベルの閾値はセッション数ではなく累計回答数で評価する
	stats.Level = calculateUserLevel(totalQuestions, stats.AccuracyRate)

	return stats, nil
}

// calculateUserLevel は累計回答数と正答率 (%) からスキルレベル (1..5) を導出します
func calculateUserLevel(totalQuestions, accuracyRate int) int {
	switch {
	case totalQuestions < 10:
		return 1
	case totalQuestions < 50:
		if accuracyRate > 70 {
			return 2
		}
		return 1
	case totalQuestions < 100:
		if accuracyRate > 70 {
			return 3
		}
		return 2
	case totalQuestions < 200:
		if accuracyRate > 80 {
			return 4
		}
		return 3
	default:
		if accuracyRate > 80 {
			return 5
		}
		return 4
	}
}

// roundPercent は四捨五入した百分率を返します。total == 0 のときは0 (NaNを出さない)。
func roundPercent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
