package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAccounts(t *testing.T) {
	env := setupTestEnv(t)
	env.seedAccounts(t)

	t.Run("flat list ordered by code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
		w, resp := env.do(t, req)

		require.Equal(t, http.StatusOK, w.Code)
		list := resp.Data.([]any)
		require.Len(t, list, 2)
		assert.Equal(t, "1000", list[0].(map[string]any)["code"])
	})

	t.Run("grouped by type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts?grouped=true", nil)
		w, resp := env.do(t, req)

		require.Equal(t, http.StatusOK, w.Code)
		groups := resp.Data.([]any)
		require.Len(t, groups, 2)
		first := groups[0].(map[string]any)
		assert.Equal(t, "asset", first["type"])
	})
}

func TestGetAccount(t *testing.T) {
	env := setupTestEnv(t)
	env.seedAccounts(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/1000", nil)
	w, resp := env.do(t, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cash", resp.Data.(map[string]any)["name"])

	req = httptest.NewRequest(http.MethodGet, "/api/v1/accounts/9999", nil)
	w, _ = env.do(t, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
