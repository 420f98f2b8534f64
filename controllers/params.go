package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation-api/middlewares"
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
)

// pathID reads a positive integer path parameter. Anything else is answered
// with notFound, the same as an id that matches no row.
func pathID(c *gin.Context, name, notFound string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.RespondAppError(c, utils.NotFound(notFound))
		return 0, false
	}
	return uint(id), true
}

// caller is only used on routes behind RequireAuth.
func caller(c *gin.Context) models.Identity {
	identity, _ := middlewares.CurrentIdentity(c)
	return identity
}
