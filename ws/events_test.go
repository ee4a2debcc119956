package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cecepns/nature-coffee/entity"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventHubBroadcastsReservations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := NewEventHub()
	go hub.Run()

	r := gin.New()
	r.GET("/ws/admin/events", hub.HandleWebSocket)

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/admin/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// connecting races the hub's register; give it a beat before sending
	time.Sleep(50 * time.Millisecond)

	hub.PublishReservation(&entity.Reservation{
		ID:     7,
		Name:   "Alice",
		Status: entity.ReservationPending,
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev struct {
		Type string             `json:"type"`
		Data entity.Reservation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(frame, &ev))
	assert.Equal(t, "reservation.created", ev.Type)
	assert.Equal(t, uint(7), ev.Data.ID)
	assert.Equal(t, "Alice", ev.Data.Name)
}

func TestPublishWithoutRunningHubDoesNotBlock(t *testing.T) {
	hub := NewEventHub() // Run never called

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			hub.PublishReservation(&entity.Reservation{ID: uint(i)})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("PublishReservation blocked with no hub goroutine")
	}
}
