package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/cecepns/nature-coffee/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedReservation(t *testing.T, db *gorm.DB, name, date, status string) entity.Reservation {
	t.Helper()
	res := entity.Reservation{
		Name:   name,
		Email:  name + "@example.com",
		Phone:  "0811",
		Date:   date,
		Time:   "10:00",
		Guests: 2,
		Status: status,
	}
	require.NoError(t, db.Create(&res).Error)
	return res
}

func TestReservationCreateIsPublicAndForcesPending(t *testing.T) {
	r, db, _ := setupServer(t)

	// no token, and the client tries to smuggle in a confirmed status
	w := perform(t, r, http.MethodPost, "/api/reservations", map[string]any{
		"name":   "Alice",
		"email":  "a@x.com",
		"phone":  "0811",
		"date":   "2025-01-01",
		"time":   "10:00",
		"guests": 2,
		"status": "confirmed",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var res entity.Reservation
	require.NoError(t, db.First(&res).Error)
	assert.Equal(t, entity.ReservationPending, res.Status)
	assert.Equal(t, "Alice", res.Name)
	assert.Equal(t, "2025-01-01", res.Date)
	assert.Equal(t, 2, res.Guests)
}

func TestReservationCreateValidation(t *testing.T) {
	r, db, _ := setupServer(t)

	// guests missing
	w := perform(t, r, http.MethodPost, "/api/reservations", map[string]any{
		"name":  "Bob",
		"email": "b@x.com",
		"phone": "0812",
		"date":  "2025-01-01",
		"time":  "10:00",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&entity.Reservation{}).Count(&count)
	assert.Zero(t, count)
}

func TestReservationListRequiresAuth(t *testing.T) {
	r, _, _ := setupServer(t)

	w := perform(t, r, http.MethodGet, "/api/reservations", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReservationUpdateWithoutTokenChangesNothing(t *testing.T) {
	r, db, _ := setupServer(t)
	res := seedReservation(t, db, "Carol", "2025-02-02", entity.ReservationPending)

	w := perform(t, r, http.MethodPut, fmt.Sprintf("/api/reservations/%d", res.ID), map[string]any{
		"name": "Carol", "email": "carol@example.com", "phone": "0811",
		"date": "2025-02-02", "time": "10:00", "guests": 2,
		"status": "confirmed",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var unchanged entity.Reservation
	require.NoError(t, db.First(&unchanged, res.ID).Error)
	assert.Equal(t, entity.ReservationPending, unchanged.Status)
}

func TestReservationAdminStatusUpdate(t *testing.T) {
	r, db, cfg := setupServer(t)
	token := adminToken(t, db, cfg)
	res := seedReservation(t, db, "Dave", "2025-03-03", entity.ReservationPending)

	w := perform(t, r, http.MethodPut, fmt.Sprintf("/api/reservations/%d", res.ID), map[string]any{
		"name": "Dave", "email": "dave@example.com", "phone": "0813",
		"date": "2025-03-03", "time": "19:00", "guests": 4,
		"status": "confirmed",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var updated entity.Reservation
	require.NoError(t, db.First(&updated, res.ID).Error)
	assert.Equal(t, entity.ReservationConfirmed, updated.Status)
	assert.Equal(t, 4, updated.Guests)
}

func TestReservationRejectsUnknownStatus(t *testing.T) {
	r, db, cfg := setupServer(t)
	token := adminToken(t, db, cfg)
	res := seedReservation(t, db, "Eve", "2025-04-04", entity.ReservationPending)

	w := perform(t, r, http.MethodPut, fmt.Sprintf("/api/reservations/%d", res.ID), map[string]any{
		"name": "Eve", "email": "eve@example.com", "phone": "0814",
		"date": "2025-04-04", "time": "12:00", "guests": 2,
		"status": "no-show",
	}, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReservationPagination(t *testing.T) {
	r, db, cfg := setupServer(t)
	token := adminToken(t, db, cfg)

	for i := 0; i < 3; i++ {
		res := seedReservation(t, db, fmt.Sprintf("guest-%d", i), "2025-05-05", entity.ReservationPending)
		// space creation times so newest-first ordering is deterministic
		db.Model(&res).Update("created_at", time.Now().Add(-time.Duration(3-i)*time.Minute))
	}

	w := perform(t, r, http.MethodGet, "/api/reservations?page=2&limit=2", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Len(t, body["data"].([]any), 1)
	meta := body["pagination"].(map[string]any)
	assert.Equal(t, float64(2), meta["totalPages"])
	assert.Equal(t, float64(3), meta["totalItems"])
}

func TestReservationDelete(t *testing.T) {
	r, db, cfg := setupServer(t)
	token := adminToken(t, db, cfg)
	res := seedReservation(t, db, "Frank", "2025-06-06", entity.ReservationCompleted)

	w := perform(t, r, http.MethodDelete, fmt.Sprintf("/api/reservations/%d", res.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(t, r, http.MethodGet, fmt.Sprintf("/api/reservations/%d", res.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
