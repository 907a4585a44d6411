//go:generate mockery --name TrainingService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_ear_training/internal/middleware"
	"go_ear_training/internal/model"
	"go_ear_training/internal/trainer"

	"github.com/google/uuid"
)

// TrainingService はトレーニングセッションの進行を管理します。
// セッション中の回答はメモリ上の Recorder に積み、完了時に ProgressService 経由で
// 永続化します。永続化に失敗した場合はセッションを残すので再送できる
// (at-least-once。重複は session_id の冪等キーで吸収される)。
type TrainingService interface {
	StartSession(ctx context.Context, userID uuid.UUID, req *model.StartSessionRequest) (*model.StartSessionResponse, error)
	RecordAnswer(ctx context.Context, userID, sessionID uuid.UUID, isCorrect bool) (*model.SessionProgressResponse, error)
	CompleteSession(ctx context.Context, userID, sessionID uuid.UUID) (*model.SessionProgressResponse, error)
	ListExercises(ctx context.Context) []model.ExerciseCatalogEntry
}

type trainingService struct {
	sessions *trainer.SessionManager
	progress ProgressService
}

func NewTrainingService(sessions *trainer.SessionManager, progress ProgressService) TrainingService {
	return &trainingService{
		sessions: sessions,
		progress: progress,
	}
}

func (s *trainingService) StartSession(ctx context.Context, userID uuid.UUID, req *model.StartSessionRequest) (*model.StartSessionResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	entry, ok := findCatalogEntry(req.ExerciseType, req.Difficulty)
	if !ok {
		return nil, model.NewAppError("INVALID_EXERCISE", "指定されたエクササイズが存在しません。", "exercise_type,difficulty", model.ErrInvalidInput)
	}

	session := s.sessions.Start(userID, req.ExerciseType, req.Difficulty, entry.QuestionQuota)
	logger.Info("Training session started",
		"session_id", session.SessionID,
		"exercise_type", req.ExerciseType,
		"difficulty", req.Difficulty,
	)

	return &model.StartSessionResponse{
		SessionID:     session.SessionID,
		QuestionQuota: session.Quota,
	}, nil
}

func (s *trainingService) RecordAnswer(ctx context.Context, userID, sessionID uuid.UUID, isCorrect bool) (*model.SessionProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "session_id", sessionID)

	session, err := s.sessions.RecordAnswer(sessionID, userID, isCorrect)
	if err != nil {
		logger.Warn("Failed to record answer", "error", err)
		return nil, wrapSessionError(err)
	}

	correct, total := session.Recorder.Snapshot()
	return &model.SessionProgressResponse{
		SessionID:      sessionID,
		CorrectAnswers: correct,
		TotalQuestions: total,
		QuestionQuota:  session.Quota,
	}, nil
}

func (s *trainingService) CompleteSession(ctx context.Context, userID, sessionID uuid.UUID) (*model.SessionProgressResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "session_id", sessionID)

	session, err := s.sessions.Get(sessionID, userID)
	if err != nil {
		logger.Warn("Failed to find session for completion", "error", err)
		return nil, wrapSessionError(err)
	}

	correct, total := session.Recorder.Snapshot()

	// 送信成功を確認してからセッションを破棄する (失敗時は残して再送可能にする)
	_, err = s.progress.SubmitExerciseResult(ctx, userID, &model.SubmitResultRequest{
		SessionID:      sessionID,
		ExerciseType:   session.ExerciseType,
		Difficulty:     session.Difficulty,
		CorrectAnswers: correct,
		TotalQuestions: total,
	})
	if err != nil {
		logger.Error("Failed to persist completed session, keeping it for retry", "error", err)
		return nil, err
	}

	if _, err := s.sessions.Complete(sessionID, userID); err != nil {
		// 永続化は済んでいるので破棄失敗は致命的ではない
		logger.Warn("Failed to discard completed session", "error", err)
	}

	logger.Info("Training session completed", "correct", correct, "total", total)
	return &model.SessionProgressResponse{
		SessionID:      sessionID,
		CorrectAnswers: correct,
		TotalQuestions: total,
		QuestionQuota:  session.Quota,
	}, nil
}

func (s *trainingService) ListExercises(ctx context.Context) []model.ExerciseCatalogEntry {
	return model.ExerciseCatalog
}

func findCatalogEntry(t model.ExerciseType, d model.Difficulty) (model.ExerciseCatalogEntry, bool) {
	for _, e := range model.ExerciseCatalog {
		if e.Type == t && e.Difficulty == d {
			return e, true
		}
	}
	return model.ExerciseCatalogEntry{}, false
}

func wrapSessionError(err error) error {
	switch err {
	case model.ErrNotFound:
		return model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。期限切れの可能性があります。", "session_id", model.ErrNotFound)
	case model.ErrForbidden:
		return model.NewAppError("FORBIDDEN", "このセッションにはアクセスできません。", "session_id", model.ErrForbidden)
	default:
		return model.NewAppError("INTERNAL_SERVER_ERROR", "セッション処理中にエラーが発生しました。", "", err)
	}
}
