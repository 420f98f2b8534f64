package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantCRUD(t *testing.T) {
	tc := newTestClient(t)
	adminToken, adminID := tc.signUp("owner", "admin")
	clientToken, _ := tc.signUp("alice", "client")

	code, resp := tc.object(http.MethodPost, "/restaurants", clientToken, gin.H{"name": "Nope"})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Admin privileges required", resp["message"])

	code, resp = tc.object(http.MethodPost, "/restaurants", adminToken, gin.H{"name": "Trattoria", "address": "1 Main St"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Missing required field: phone", resp["message"])

	code, resp = tc.object(http.MethodPost, "/restaurants", adminToken, gin.H{
		"name": "Trattoria", "address": "1 Main St", "phone": "555", "open_time": "9am", "close_time": "21:00",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid open_time format. Use HH:MM", resp["message"])

	id := tc.createRestaurant(adminToken)

	code, list := tc.list("/restaurants", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, list, 1)

	code, restaurant := tc.object(http.MethodGet, path("/restaurants/%d", id), "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Trattoria", restaurant["name"])
	assert.Equal(t, "09:00", restaurant["open_time"])
	assert.Equal(t, float64(adminID), restaurant["admin_id"])

	code, resp = tc.object(http.MethodPut, path("/restaurants/%d", id), adminToken, gin.H{"phone": "555-0199"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Restaurant updated successfully", resp["message"])

	_, restaurant = tc.object(http.MethodGet, path("/restaurants/%d", id), "", nil)
	assert.Equal(t, "555-0199", restaurant["phone"])
	assert.Equal(t, "Trattoria", restaurant["name"])
	assert.Equal(t, "1 Main St", restaurant["address"])

	code, resp = tc.object(http.MethodPut, path("/restaurants/%d", id), clientToken, gin.H{"phone": "0"})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Permission denied", resp["message"])

	code, resp = tc.object(http.MethodPut, "/restaurants/999", clientToken, gin.H{"phone": "0"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Restaurant not found", resp["message"])

	code, resp = tc.object(http.MethodDelete, path("/restaurants/%d", id), adminToken, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Restaurant deleted successfully", resp["message"])

	code, _ = tc.object(http.MethodGet, path("/restaurants/%d", id), "", nil)
	assert.Equal(t, http.StatusNotFound, code)
}
