// internal/handlers/progress_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go_ear_training/internal/handlers"
	"go_ear_training/internal/middleware"
	"go_ear_training/internal/model"
	svcmocks "go_ear_training/internal/service/mocks"
)

func TestProgressHandler_SubmitResult(t *testing.T) {
	// --- セットアップ ---
	mockService := svcmocks.NewProgressService(t)
	handler := handlers.NewProgressHandler(mockService)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Post("/api/v1/progress/results", handler.SubmitResult)
	// ------------------

	testUserID := uuid.New()

	validReqBody := model.SubmitResultRequest{
		SessionID:      uuid.New(),
		ExerciseType:   model.ExerciseInterval,
		Difficulty:     model.DifficultyBeginner,
		CorrectAnswers: 7,
		TotalQuestions: 9,
	}
	recordedAttempt := &model.ExerciseAttempt{
		AttemptID:      uuid.New(),
		UserID:         testUserID,
		SessionID:      validReqBody.SessionID,
		ExerciseType:   validReqBody.ExerciseType,
		Difficulty:     validReqBody.Difficulty,
		CorrectAnswers: 7,
		TotalQuestions: 9,
		CompletedAt:    time.Now().UTC(),
	}

	tests := []struct {
		name              string
		userID            *uuid.UUID
		body              interface{}
		setupMock         func()
		expectedStatus    int
		expectedErrorCode string
		expectAttemptID   bool
	}{
		{
			name:   "Success - 結果が記録される",
			userID: &testUserID,
			body:   validReqBody,
			setupMock: func() {
				mockService.On("SubmitExerciseResult", mock.Anything, testUserID, &validReqBody).
					Return(recordedAttempt, nil).Once()
			},
			expectedStatus:  http.StatusOK,
			expectAttemptID: true,
		},
		{
			name:   "Success - 重複セッションでも成功として扱う (attempt_idなし)",
			userID: &testUserID,
			body:   validReqBody,
			setupMock: func() {
				mockService.On("SubmitExerciseResult", mock.Anything, testUserID, &validReqBody).
					Return(nil, nil).Once()
			},
			expectedStatus:  http.StatusOK,
			expectAttemptID: false,
		},
		{
			name:              "Failure - 認証ヘッダーなし",
			userID:            nil,
			body:              validReqBody,
			setupMock:         func() {},
			expectedStatus:    http.StatusUnauthorized,
			expectedErrorCode: "", // DevミドルウェアはRespondWithErrorで汎用コードを返す
		},
		{
			name:              "Failure - 不正なJSONボディ",
			userID:            &testUserID,
			body:              `{"session_id": `,
			setupMock:         func() {},
			expectedStatus:    http.StatusBadRequest,
			expectedErrorCode: "INVALID_REQUEST_BODY",
		},
		{
			name:              "Failure - バリデーションエラー (session_idなし)",
			userID:            &testUserID,
			body:              model.SubmitResultRequest{ExerciseType: model.ExerciseInterval, Difficulty: model.DifficultyBeginner, TotalQuestions: 5},
			setupMock:         func() {},
			expectedStatus:    http.StatusBadRequest,
			expectedErrorCode: "VALIDATION_ERROR",
		},
		{
			name:   "Failure - サービスが入力エラーを返す",
			userID: &testUserID,
			body:   validReqBody,
			setupMock: func() {
				mockService.On("SubmitExerciseResult", mock.Anything, testUserID, &validReqBody).
					Return(nil, model.NewAppError("INVALID_EXERCISE_TYPE", "不明なエクササイズ種別です。", "exercise_type", model.ErrInvalidInput)).Once()
			},
			expectedStatus:    http.StatusBadRequest,
			expectedErrorCode: "INVALID_EXERCISE_TYPE",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", "/api/v1/progress/results", tc.body, tc.userID)
			rr := executeRequest(router, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp map[string]interface{}
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.NotEmpty(t, resp["message"])
				_, hasAttemptID := resp["attempt_id"]
				assert.Equal(t, tc.expectAttemptID, hasAttemptID)
			} else {
				verifyErrorCode(t, rr.Body.Bytes(), tc.expectedErrorCode)
			}
		})
	}
}
