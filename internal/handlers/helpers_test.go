// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestRequest はテスト用のHTTPリクエストを作成します。
// userID が指定されていれば開発用認証ミドルウェア向けの X-User-ID ヘッダーを付与します。
func newTestRequest(t *testing.T, method, url string, body interface{}, userID *uuid.UUID) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			bodyReader = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			bodyReader = bytes.NewBuffer(data)
		}
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	require.NoError(t, err, "Failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return req
}
