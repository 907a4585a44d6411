// internal/service/training_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_ear_training/internal/model"
	svc_mocks "go_ear_training/internal/service/mocks"
	"go_ear_training/internal/trainer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTrainingServiceForTest() (TrainingService, *trainer.SessionManager, *svc_mocks.ProgressService) {
	sessions := trainer.NewSessionManager(time.Hour)
	mockProgress := new(svc_mocks.ProgressService)
	return NewTrainingService(sessions, mockProgress), sessions, mockProgress
}

// --- Test StartSession ---
func Test_trainingService_StartSession(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name      string
		req       *model.StartSessionRequest
		wantErr   error
		wantQuota int
	}{
		{
			name:      "正常系: カタログにある組み合わせで開始",
			req:       &model.StartSessionRequest{ExerciseType: model.ExerciseInterval, Difficulty: model.DifficultyBeginner},
			wantErr:   nil,
			wantQuota: 10,
		},
		{
			name:      "正常系: メロディは出題数5",
			req:       &model.StartSessionRequest{ExerciseType: model.ExerciseMelody, Difficulty: model.DifficultyAdvanced},
			wantErr:   nil,
			wantQuota: 5,
		},
		{
			name:    "異常系: カタログに無い種別",
			req:     &model.StartSessionRequest{ExerciseType: model.ExerciseType("rhythm"), Difficulty: model.DifficultyBeginner},
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trainingService, _, _ := newTrainingServiceForTest()

			resp, err := trainingService.StartSession(ctx, userID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.NotEqual(t, uuid.Nil, resp.SessionID)
				assert.Equal(t, tt.wantQuota, resp.QuestionQuota)
			}
		})
	}
}

// --- Test RecordAnswer ---
func Test_trainingService_RecordAnswer(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: 回答を積むたびにスコアが進む", func(t *testing.T) {
		trainingService, _, _ := newTrainingServiceForTest()
		started, err := trainingService.StartSession(ctx, userID, &model.StartSessionRequest{
			ExerciseType: model.ExerciseChord, Difficulty: model.DifficultyBeginner,
		})
		require.NoError(t, err)

		resp, err := trainingService.RecordAnswer(ctx, userID, started.SessionID, true)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.CorrectAnswers)
		assert.Equal(t, 1, resp.TotalQuestions)

		resp, err = trainingService.RecordAnswer(ctx, userID, started.SessionID, false)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.CorrectAnswers)
		assert.Equal(t, 2, resp.TotalQuestions)
		assert.Equal(t, 10, resp.QuestionQuota)
	})

	t.Run("異常系: 存在しないセッション", func(t *testing.T) {
		trainingService, _, _ := newTrainingServiceForTest()

		resp, err := trainingService.RecordAnswer(ctx, userID, uuid.New(), true)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, resp)
	})

	t.Run("異常系: 他ユーザーのセッションには回答できない", func(t *testing.T) {
		trainingService, _, _ := newTrainingServiceForTest()
		started, err := trainingService.StartSession(ctx, userID, &model.StartSessionRequest{
			ExerciseType: model.ExerciseChord, Difficulty: model.DifficultyBeginner,
		})
		require.NoError(t, err)

		resp, err := trainingService.RecordAnswer(ctx, uuid.New(), started.SessionID, true)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.Nil(t, resp)
	})
}

// --- Test CompleteSession ---
func Test_trainingService_CompleteSession(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: 集計を送信してセッションを破棄する", func(t *testing.T) {
		trainingService, sessions, mockProgress := newTrainingServiceForTest()
		started, err := trainingService.StartSession(ctx, userID, &model.StartSessionRequest{
			ExerciseType: model.ExerciseInterval, Difficulty: model.DifficultyIntermediate,
		})
		require.NoError(t, err)

		_, err = trainingService.RecordAnswer(ctx, userID, started.SessionID, true)
		require.NoError(t, err)
		_, err = trainingService.RecordAnswer(ctx, userID, started.SessionID, true)
		require.NoError(t, err)
		_, err = trainingService.RecordAnswer(ctx, userID, started.SessionID, false)
		require.NoError(t, err)

		mockProgress.On("SubmitExerciseResult", ctx, userID, mock.MatchedBy(func(req *model.SubmitResultRequest) bool {
			assert.Equal(t, started.SessionID, req.SessionID) // セッションIDが冪等キーになる
			assert.Equal(t, model.ExerciseInterval, req.ExerciseType)
			assert.Equal(t, model.DifficultyIntermediate, req.Difficulty)
			assert.Equal(t, 2, req.CorrectAnswers)
			assert.Equal(t, 3, req.TotalQuestions)
			return true
		})).Return(&model.ExerciseAttempt{AttemptID: uuid.New()}, nil).Once()

		resp, err := trainingService.CompleteSession(ctx, userID, started.SessionID)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.CorrectAnswers)
		assert.Equal(t, 3, resp.TotalQuestions)

		// セッションは破棄済み
		_, err = sessions.Get(started.SessionID, userID)
		assert.ErrorIs(t, err, model.ErrNotFound)
		mockProgress.AssertExpectations(t)
	})

	t.Run("異常系: 永続化に失敗したらセッションを残す", func(t *testing.T) {
		trainingService, sessions, mockProgress := newTrainingServiceForTest()
		started, err := trainingService.StartSession(ctx, userID, &model.StartSessionRequest{
			ExerciseType: model.ExerciseInterval, Difficulty: model.DifficultyBeginner,
		})
		require.NoError(t, err)
		_, err = trainingService.RecordAnswer(ctx, userID, started.SessionID, true)
		require.NoError(t, err)

		mockProgress.On("SubmitExerciseResult", ctx, userID, mock.AnythingOfType("*model.SubmitResultRequest")).
			Return(nil, errors.New("db unavailable")).Once()

		resp, err := trainingService.CompleteSession(ctx, userID, started.SessionID)

		require.Error(t, err)
		assert.Nil(t, resp)

		// リトライできるようセッションは残っている
		_, err = sessions.Get(started.SessionID, userID)
		assert.NoError(t, err)
		mockProgress.AssertExpectations(t)
	})

	t.Run("異常系: 存在しないセッションの完了", func(t *testing.T) {
		trainingService, _, mockProgress := newTrainingServiceForTest()

		resp, err := trainingService.CompleteSession(ctx, userID, uuid.New())

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, resp)
		mockProgress.AssertNotCalled(t, "SubmitExerciseResult", mock.Anything, mock.Anything, mock.Anything)
	})
}

// --- Test ListExercises ---
func Test_trainingService_ListExercises(t *testing.T) {
	trainingService, _, _ := newTrainingServiceForTest()

	entries := trainingService.ListExercises(context.Background())

	require.Len(t, entries, 12) // 4種別 x 3難易度
	for _, e := range entries {
		assert.True(t, e.Type.IsValid())
		assert.True(t, e.Difficulty.IsValid())
		assert.Greater(t, e.QuestionQuota, 0)
	}
}
