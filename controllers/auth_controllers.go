package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation-api/services"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
	"gorm.io/gorm"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(db *gorm.DB, tokens *utils.TokenManager) *AuthController {
	return &AuthController{Service: services.NewAuthService(db, tokens)}
}

// Register
func (ac *AuthController) Register(c *gin.Context) {
	var req services.RegisterInput
	if err := utils.BindJSON(c, &req); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	user, err := ac.Service.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusCreated, "User created successfully", gin.H{"id": user.ID})
}

// Login
func (ac *AuthController) Login(c *gin.Context) {
	var req services.LoginInput
	if err := utils.BindJSON(c, &req); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	token, user, err := ac.Service.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Logged in successfully", gin.H{
		"access_token": token,
		"user_id":      user.ID,
		"role":         user.Role,
	})
}
