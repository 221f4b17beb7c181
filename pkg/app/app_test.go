package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arnavshah/vacancy-bidding-api/pkg/config"
	"github.com/arnavshah/vacancy-bidding-api/pkg/database"
)

func TestNew_LoginAgainstSqlite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		DataPath:      filepath.Join(t.TempDir(), "test.db"),
		JWTSecret:     "secret",
		AdminUsername: "admin",
		AdminPassword: "pw",
		AuditBackend:  config.BackendDatabase,
		Timezone:      "UTC",
	}

	a, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	_, ok := a.Handler.Audit.Store.(*database.KVStore)
	assert.True(t, ok)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"username":"admin","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	a.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")

	w = httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
