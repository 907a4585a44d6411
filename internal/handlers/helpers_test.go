// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go_ear_training/internal/model"
)

// createRequest はテスト用のHTTPリクエストオブジェクトを作成します。
// userIDが指定されていれば X-User-ID ヘッダーを追加します (開発用認証ミドルウェア向け)。
func createRequest(t *testing.T, method, url string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()
	var reqBodyBytes []byte
	var err error

	if body != nil {
		switch b := body.(type) {
		case string:
			reqBodyBytes = []byte(b)
		case []byte:
			reqBodyBytes = b
		default:
			reqBodyBytes, err = json.Marshal(body)
			if err != nil {
				t.Fatalf("Failed to marshal request body: %v", err)
			}
		}
	}

	req, err := http.NewRequest(method, url, bytes.NewBuffer(reqBodyBytes))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}

// executeRequest は指定されたルーターに対してリクエストを実行し、レコーダーを返します。
func executeRequest(router *chi.Mux, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// verifyErrorCode はエラーレスポンスのボディをパースし、エラーコードを検証します。
func verifyErrorCode(t *testing.T, bodyBytes []byte, expectedCode string) {
	t.Helper()
	if expectedCode == "" {
		return
	}
	var errResp model.APIErrorResponse
	err := json.Unmarshal(bodyBytes, &errResp)
	assert.NoError(t, err, "Error response should be valid JSON: %s", string(bodyBytes))
	assert.Equal(t, expectedCode, errResp.Error.Code, "Error code mismatch (body: %s)", string(bodyBytes))
}
