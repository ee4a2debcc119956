package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/cecepns/nature-coffee/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	r, db, cfg := setupServer(t)
	token := adminToken(t, db, cfg)

	seedMenuItem(t, db, "latte", time.Minute, true, false)
	seedMenuItem(t, db, "mocha", time.Minute, true, true)
	seedMenuItem(t, db, "retired", time.Minute, false, false)

	seedBean(t, db, "gayo", time.Minute, true)
	seedBean(t, db, "sold out", time.Minute, false)

	seedGalleryItem(t, db, "live", "l.jpg", time.Minute, true)
	seedGalleryItem(t, db, "draft", "d.jpg", time.Minute, false)

	today := time.Now().Format("2006-01-02")
	seedReservation(t, db, "today-guest", today, entity.ReservationPending)
	seedReservation(t, db, "future-guest", "2030-01-01", entity.ReservationConfirmed)

	w := perform(t, r, http.MethodGet, "/api/dashboard/stats", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(2), data["totalMenus"])
	assert.Equal(t, float64(1), data["totalCoffeeBeans"])
	assert.Equal(t, float64(1), data["totalGallery"])
	assert.Equal(t, float64(2), data["totalReservations"])
	assert.Equal(t, float64(1), data["todayReservations"])

	// no revenue figure: nothing in the store can compute one
	_, ok := data["monthlyRevenue"]
	assert.False(t, ok)
}

func TestDashboardRequiresAuth(t *testing.T) {
	r, _, _ := setupServer(t)

	w := perform(t, r, http.MethodGet, "/api/dashboard/stats", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
