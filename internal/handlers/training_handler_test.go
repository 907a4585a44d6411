// internal/handlers/training_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go_ear_training/internal/handlers"
	"go_ear_training/internal/middleware"
	"go_ear_training/internal/model"
	svcmocks "go_ear_training/internal/service/mocks"
)

// newTrainingTestRouter はトレーニングAPIのルーティングをテスト用に組み立てます
func newTrainingTestRouter(mockService *svcmocks.TrainingService) *chi.Mux {
	handler := handlers.NewTrainingHandler(mockService)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Get("/api/v1/exercises", handler.ListExercises)
	router.Route("/api/v1/training/sessions", func(r chi.Router) {
		r.Post("/", handler.StartSession)
		r.Post("/{session_id}/answers", handler.RecordAnswer)
		r.Post("/{session_id}/complete", handler.CompleteSession)
	})
	return router
}

func TestTrainingHandler_ListExercises(t *testing.T) {
	mockService := svcmocks.NewTrainingService(t)
	router := newTrainingTestRouter(mockService)
	testUserID := uuid.New()

	mockService.On("ListExercises", mock.Anything).Return(model.ExerciseCatalog).Once()

	req := createRequest(t, "GET", "/api/v1/exercises", nil, &testUserID)
	rr := executeRequest(router, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var entries []model.ExerciseCatalogEntry
	err := json.Unmarshal(rr.Body.Bytes(), &entries)
	assert.NoError(t, err)
	assert.Len(t, entries, len(model.ExerciseCatalog))
}

func TestTrainingHandler_StartSession(t *testing.T) {
	mockService := svcmocks.NewTrainingService(t)
	router := newTrainingTestRouter(mockService)
	testUserID := uuid.New()

	validReqBody := model.StartSessionRequest{
		ExerciseType: model.ExerciseChord,
		Difficulty:   model.DifficultyIntermediate,
	}
	startedSession := &model.StartSessionResponse{
		SessionID:     uuid.New(),
		QuestionQuota: 10,
	}

	tests := []struct {
		name              string
		userID            *uuid.UUID
		body              interface{}
		setupMock         func()
		expectedStatus    int
		expectedErrorCode string
	}{
		{
			name:   "Success - セッションが開始される",
			userID: &testUserID,
			body:   validReqBody,
			setupMock: func() {
				mockService.On("StartSession", mock.Anything, testUserID, &validReqBody).
					Return(startedSession, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:              "Failure - バリデーションエラー (種別なし)",
			userID:            &testUserID,
			body:              model.StartSessionRequest{Difficulty: model.DifficultyBeginner},
			setupMock:         func() {},
			expectedStatus:    http.StatusBadRequest,
			expectedErrorCode: "VALIDATION_ERROR",
		},
		{
			name:   "Failure - 不明なエクササイズ種別",
			userID: &testUserID,
			body:   model.StartSessionRequest{ExerciseType: "rhythm", Difficulty: model.DifficultyBeginner},
			setupMock: func() {
				mockService.On("StartSession", mock.Anything, testUserID, &model.StartSessionRequest{ExerciseType: "rhythm", Difficulty: model.DifficultyBeginner}).
					Return(nil, model.NewAppError("INVALID_EXERCISE", "指定されたエクササイズは存在しません。", "exercise_type", model.ErrInvalidInput)).Once()
			},
			expectedStatus:    http.StatusBadRequest,
			expectedErrorCode: "INVALID_EXERCISE",
		},
		{
			name:           "Failure - 認証ヘッダーなし",
			userID:         nil,
			body:           validReqBody,
			setupMock:      func() {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", "/api/v1/training/sessions", tc.body, tc.userID)
			rr := executeRequest(router, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var resp model.StartSessionResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, startedSession.SessionID, resp.SessionID)
				assert.Equal(t, startedSession.QuestionQuota, resp.QuestionQuota)
			} else {
				verifyErrorCode(t, rr.Body.Bytes(), tc.expectedErrorCode)
			}
		})
	}
}

func TestTrainingHandler_RecordAnswer(t *testing.T) {
	mockService := svcmocks.NewTrainingService(t)
	router := newTrainingTestRouter(mockService)
	testUserID := uuid.New()
	sessionID := uuid.New()

	isCorrect := true
	validReqBody := model.RecordAnswerRequest{IsCorrect: &isCorrect}
	progress := &model.SessionProgressResponse{
		SessionID:      sessionID,
		CorrectAnswers: 3,
		TotalQuestions: 4,
		QuestionQuota:  10,
	}

	tests := []struct {
		name              string
		sessionIDInURL    string
		body              interface{}
		setupMock         func()
		expectedStatus    int
		expectedErrorCode string
	}{
		{
			name:           "Success - 回答が記録される",
			sessionIDInURL: sessionID.String(),
			body:           validReqBody,
			setupMock: func() {
				mockService.On("RecordAnswer", mock.Anything, testUserID, sessionID, true).
					Return(progress, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:              "Failure - セッションIDがUUIDでない",
			sessionIDInURL:    "not-a-uuid",
			body:              validReqBody,
			setupMock:         func() {},
			expectedStatus:    http.StatusBadRequest,
			expectedErrorCode: "INVALID_SESSION_ID",
		},
		{
			name:              "Failure - is_correctフィールドなし",
			sessionIDInURL:    sessionID.String(),
			body:              map[string]interface{}{},
			setupMock:         func() {},
			expectedStatus:    http.StatusBadRequest,
			expectedErrorCode: "VALIDATION_ERROR",
		},
		{
			name:           "Failure - セッションが存在しない",
			sessionIDInURL: sessionID.String(),
			body:           validReqBody,
			setupMock: func() {
				mockService.On("RecordAnswer", mock.Anything, testUserID, sessionID, true).
					Return(nil, model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。", "session_id", model.ErrNotFound)).Once()
			},
			expectedStatus:    http.StatusNotFound,
			expectedErrorCode: "SESSION_NOT_FOUND",
		},
		{
			name:           "Failure - 他ユーザーのセッション",
			sessionIDInURL: sessionID.String(),
			body:           validReqBody,
			setupMock: func() {
				mockService.On("RecordAnswer", mock.Anything, testUserID, sessionID, true).
					Return(nil, model.NewAppError("FORBIDDEN", "このセッションにはアクセスできません。", "session_id", model.ErrForbidden)).Once()
			},
			expectedStatus:    http.StatusForbidden,
			expectedErrorCode: "FORBIDDEN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			url := fmt.Sprintf("/api/v1/training/sessions/%s/answers", tc.sessionIDInURL)
			req := createRequest(t, "POST", url, tc.body, &testUserID)
			rr := executeRequest(router, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp model.SessionProgressResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, progress.CorrectAnswers, resp.CorrectAnswers)
				assert.Equal(t, progress.TotalQuestions, resp.TotalQuestions)
			} else {
				verifyErrorCode(t, rr.Body.Bytes(), tc.expectedErrorCode)
			}
		})
	}
}

func TestTrainingHandler_CompleteSession(t *testing.T) {
	mockService := svcmocks.NewTrainingService(t)
	router := newTrainingTestRouter(mockService)
	testUserID := uuid.New()
	sessionID := uuid.New()

	finalScore := &model.SessionProgressResponse{
		SessionID:      sessionID,
		CorrectAnswers: 8,
		TotalQuestions: 10,
		QuestionQuota:  10,
	}

	t.Run("Success - セッションが完了して最終スコアが返る", func(t *testing.T) {
		mockService.On("CompleteSession", mock.Anything, testUserID, sessionID).
			Return(finalScore, nil).Once()

		url := fmt.Sprintf("/api/v1/training/sessions/%s/complete", sessionID)
		req := createRequest(t, "POST", url, nil, &testUserID)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp model.SessionProgressResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, sessionID, resp.SessionID)
		assert.Equal(t, 8, resp.CorrectAnswers)
	})

	t.Run("Failure - セッションが存在しない", func(t *testing.T) {
		mockService.On("CompleteSession", mock.Anything, testUserID, sessionID).
			Return(nil, model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。", "session_id", model.ErrNotFound)).Once()

		url := fmt.Sprintf("/api/v1/training/sessions/%s/complete", sessionID)
		req := createRequest(t, "POST", url, nil, &testUserID)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		verifyErrorCode(t, rr.Body.Bytes(), "SESSION_NOT_FOUND")
	})
}
