package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationFlow(t *testing.T) {
	tc := newTestClient(t)
	adminToken, _ := tc.signUp("owner", "admin")
	aliceToken, _ := tc.signUp("alice", "client")
	bobToken, _ := tc.signUp("bob", "client")
	restaurantID := tc.createRestaurant(adminToken)

	code, resp := tc.object(http.MethodPost, "/reservations", aliceToken, gin.H{"date": "2025-02-14", "time": "19:30", "restaurant_id": restaurantID})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Missing required field: guests", resp["message"])

	code, resp = tc.object(http.MethodPost, "/reservations", aliceToken, gin.H{
		"date": "2025-02-14", "time": "19:30", "guests": 0, "restaurant_id": restaurantID,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid value for guests", resp["message"])

	code, resp = tc.object(http.MethodPost, "/reservations", aliceToken, gin.H{
		"date": "2025-02-14", "time": "19:30", "guests": 2, "restaurant_id": restaurantID,
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Reservation created successfully", resp["message"])
	reservationID := uint(resp["id"].(float64))

	code, reservation := tc.object(http.MethodGet, path("/reservations/%d", reservationID), adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pending", reservation["status"])
	assert.Equal(t, 2.0, reservation["guests"])

	code, resp = tc.object(http.MethodGet, path("/reservations/%d", reservationID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Permission denied", resp["message"])

	code, list := tc.list("/reservations/user", aliceToken)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, list, 1)

	code, list = tc.list(path("/reservations/restaurant/%d", restaurantID), adminToken)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, list, 1)

	code, resp = tc.object(http.MethodGet, path("/reservations/restaurant/%d", restaurantID), aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, resp = tc.object(http.MethodDelete, path("/reservations/%d", reservationID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Reservation cancelled successfully", resp["message"])

	code, resp = tc.object(http.MethodDelete, path("/reservations/%d", reservationID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Reservation already cancelled", resp["message"])

	code, resp = tc.object(http.MethodDelete, "/reservations/999", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Reservation not found", resp["message"])
}
