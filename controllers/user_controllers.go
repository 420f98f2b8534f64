package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation-api/services"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
	"gorm.io/gorm"
)

type UserController struct {
	Service *services.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Service: services.NewUserService(db)}
}

// GetProfile returns the authenticated user.
func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := uc.Service.GetUser(c.Request.Context(), caller(c).UserID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, userView(user))
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id", "User not found")
	if !ok {
		return
	}

	body, err := utils.ReadPayload(c)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if _, err := uc.Service.UpdateUser(c.Request.Context(), caller(c), id, body); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "User updated successfully", nil)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id", "User not found")
	if !ok {
		return
	}

	if err := uc.Service.DeleteUser(c.Request.Context(), caller(c), id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "User deleted successfully", nil)
}
