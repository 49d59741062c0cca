package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"controlemat/internal/api/admin"
	"controlemat/internal/api/fiberstock"
	"controlemat/internal/api/release"
	"controlemat/internal/api/router"
	"controlemat/internal/domain"
	"controlemat/internal/pkg/logger"
	"controlemat/internal/pkg/token"
	"controlemat/internal/repository/memrepo"
	"controlemat/internal/service/authservice"
	"controlemat/internal/service/recordservice"
	"controlemat/internal/service/sequence"
)

func newServer(t *testing.T) http.Handler {
	t.Helper()
	log := logger.NewNopLogger()
	store := memrepo.NewRepository()
	clk := testclock.NewClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	records := recordservice.NewService(store, sequence.NewAllocator(store, log), clk, time.UTC, log)

	hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	require.NoError(t, err)
	tokens := token.NewService("chave", time.Hour, clk)
	auth := authservice.NewService(authservice.Credentials{Username: "admin", PasswordHash: string(hash)}, tokens, log)

	return router.NewRouter(router.Handlers{
		Release:    release.NewHandler(records, log),
		FiberStock: fiberstock.NewHandler(records, log),
		Admin:      admin.NewHandler(records, auth, log),
	}, tokens, router.RateLimit{}, log)
}

func do(srv http.Handler, method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestPing(t *testing.T) {
	rec := do(newServer(t), http.MethodGet, "/ping", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestReleaseLifecycle(t *testing.T) {
	srv := newServer(t)

	rec := do(srv, http.MethodPost, "/v1/releases", `{"material":"Cabo","data":"2026-03-05"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.Release
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "3.1", created.DisplayID)
	assert.Equal(t, domain.StatusPendente, created.Status)

	rec = do(srv, http.MethodGet, "/v1/releases?q=cabo", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []domain.Release
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listed))
	require.Len(t, listed, 1)

	rec = do(srv, http.MethodDelete, "/v1/releases/"+created.ID, "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(srv, http.MethodDelete, "/v1/releases/"+created.ID, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateRelease_Fail_MissingMaterial(t *testing.T) {
	rec := do(newServer(t), http.MethodPost, "/v1/releases", `{"data":"2026-03-05"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminLists_SaveRequiresToken(t *testing.T) {
	srv := newServer(t)

	rec := do(srv, http.MethodPut, "/v1/admin/lists", `{"operadores":["Ana"]}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(srv, http.MethodPost, "/v1/admin/login", `{"username":"admin","password":"segredo"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var login domain.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))
	require.NotEmpty(t, login.Token)

	rec = do(srv, http.MethodPut, "/v1/admin/lists", `{"operadores":["Ana"]}`, login.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(srv, http.MethodGet, "/v1/admin/lists", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var lists domain.AdminLists
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&lists))
	assert.Equal(t, []string{"Ana"}, lists.Operadores)
	assert.Empty(t, lists.Ruas)
}

func TestAdminLogin_Fail_WrongPassword(t *testing.T) {
	rec := do(newServer(t), http.MethodPost, "/v1/admin/login", `{"username":"admin","password":"errada"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUnknownMethodIsRejected(t *testing.T) {
	rec := do(newServer(t), http.MethodPatch, "/v1/releases", "", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
