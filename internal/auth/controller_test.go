package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"waitwise/internal/shared/config"
	"waitwise/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.AuthConfig{DemoToken: "demo-token", DemoAPIKey: "demo-api-key", TokenTTL: 24 * time.Hour}

	r := gin.New()
	NewRouter(NewController(NewService(cfg))).SetupRoutes(r.Group("/v1"))
	return r
}

func login(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginReturnsDemoToken(t *testing.T) {
	w := login(setupEngine(), `{"email":"staff@example.com","password":"anything"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, LoginResponse{Token: "demo-token", ExpiresIn: 86400, Role: "staff"}, resp)
}

func TestLoginRequiresBothFields(t *testing.T) {
	r := setupEngine()

	for _, body := range []string{`{"email":"staff@example.com"}`, `{"password":"x"}`, `not json`} {
		w := login(r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)

		var resp response.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	}
}
