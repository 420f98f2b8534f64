package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation-api/services"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{Service: services.NewMenuService(db)}
}

// CreateMenu
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var req services.CreateMenuInput
	if err := utils.BindJSON(c, &req); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	menu, err := mc.Service.CreateMenu(c.Request.Context(), caller(c), req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusCreated, "Menu item created successfully", gin.H{"id": menu.ID})
}

// GetMenuByID
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id, ok := pathID(c, "id", "Menu item not found")
	if !ok {
		return
	}

	menu, err := mc.Service.GetMenu(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, menu)
}

// GetMenusByRestaurant
func (mc *MenuController) GetMenusByRestaurant(c *gin.Context) {
	restaurantID, ok := pathID(c, "restaurant_id", "Restaurant not found")
	if !ok {
		return
	}

	menus, err := mc.Service.ListMenusByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, menus)
}

// UpdateMenu
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id, ok := pathID(c, "id", "Menu item not found")
	if !ok {
		return
	}

	body, err := utils.ReadPayload(c)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if _, err := mc.Service.UpdateMenu(c.Request.Context(), caller(c), id, body); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Menu item updated successfully", nil)
}

// DeleteMenu
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id, ok := pathID(c, "id", "Menu item not found")
	if !ok {
		return
	}

	if err := mc.Service.DeleteMenu(c.Request.Context(), caller(c), id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Menu item deleted successfully", nil)
}
