package controllers_test

import (
	"net/http"
	"testing"

	"github.com/cecepns/nature-coffee/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsGetDefaultsWhenEmpty(t *testing.T) {
	r, _, _ := setupServer(t)

	w := perform(t, r, http.MethodGet, "/api/settings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "", data["about_us"])
	assert.Equal(t, "", data["address"])
	assert.Equal(t, "", data["phone"])
	assert.Equal(t, "", data["instagram"])
	assert.Equal(t, "", data["tiktok"])
	assert.Equal(t, "", data["maps_url"])
}

func TestSettingsUpdateRequiresAuth(t *testing.T) {
	r, _, _ := setupServer(t)

	w := perform(t, r, http.MethodPut, "/api/settings",
		map[string]any{"address": "Jl. Kenanga 12"}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSettingsUpsertIsIdempotent(t *testing.T) {
	r, db, cfg := setupServer(t)
	token := adminToken(t, db, cfg)

	w := perform(t, r, http.MethodPut, "/api/settings", map[string]any{
		"about_us": "A calm place in the woods",
		"address":  "Jl. Kenanga 12",
		"phone":    "0811",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(t, r, http.MethodPut, "/api/settings", map[string]any{
		"about_us":  "A calm place in the woods",
		"address":   "Jl. Kenanga 14",
		"instagram": "@naturecoffee",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	// two updates, one logical row
	var count int64
	db.Model(&entity.Settings{}).Count(&count)
	assert.Equal(t, int64(1), count)

	w = perform(t, r, http.MethodGet, "/api/settings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "Jl. Kenanga 14", data["address"])
	assert.Equal(t, "@naturecoffee", data["instagram"])
	// omitted fields reset to empty string: updates are full replaces
	assert.Equal(t, "", data["phone"])
}
