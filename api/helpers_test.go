package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/goglobe/config"
	"github.com/Domenick1991/goglobe/internal/auth"
	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	tokens *auth.TokenManager
}

func newTestServer(t *testing.T, handlers ...Registrar) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	log := logrus.New()
	log.SetOutput(io.Discard)

	tokens := auth.NewTokenManager("test-secret", "goglobe", time.Hour)
	return &testServer{
		router: NewRouter(config.HTTPConfig{}, tokens, log, handlers...),
		tokens: tokens,
	}
}

func (s *testServer) token(t *testing.T, id int64, kind domain.UserKind) string {
	t.Helper()
	raw, _, err := s.tokens.Issue(&domain.User{ID: id, Email: "user@example.com", Kind: kind})
	require.NoError(t, err)
	return raw
}

func (s *testServer) adminToken(t *testing.T) string {
	return s.token(t, 1, domain.UserKindAdministrator)
}

func (s *testServer) clientToken(t *testing.T, id int64) string {
	return s.token(t, id, domain.UserKindClient)
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	return decode[map[string]string](t, w)["error"]
}
