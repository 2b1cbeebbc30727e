package controller_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/employee-management/security"
)

func newTokens(t *testing.T) *security.TokenProvider {
	t.Helper()
	tokens, err := security.NewTokenProvider([]byte("controller-secret"), security.TokenOptions{
		ExternalLoginSecret: []byte("proxy-secret"),
	})
	require.NoError(t, err)
	return tokens
}

// tokenSessions trusts the principal carried by the session token.
type tokenSessions struct{}

func (tokenSessions) ValidateSession(_ context.Context, session *security.TokenClaims) (security.Principal, error) {
	return session.Principal(), nil
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func bearer(t *testing.T, tokens *security.TokenProvider, p security.Principal) string {
	t.Helper()
	token, _, err := tokens.IssueSession(p, "stamp")
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(router *gin.Engine, method, path, auth, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return serveRequest(router, req)
}

func serveRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
