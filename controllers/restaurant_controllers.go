package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation-api/services"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
	"gorm.io/gorm"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{Service: services.NewRestaurantService(db)}
}

func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var req services.CreateRestaurantInput
	if err := utils.BindJSON(c, &req); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	restaurant, err := rc.Service.CreateRestaurant(c.Request.Context(), caller(c), req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusCreated, "Restaurant created successfully", gin.H{"id": restaurant.ID})
}

func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	restaurants, err := rc.Service.ListRestaurants(c.Request.Context())
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, restaurants)
}

func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	id, ok := pathID(c, "id", "Restaurant not found")
	if !ok {
		return
	}

	restaurant, err := rc.Service.GetRestaurant(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, restaurant)
}

func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	id, ok := pathID(c, "id", "Restaurant not found")
	if !ok {
		return
	}

	body, err := utils.ReadPayload(c)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if _, err := rc.Service.UpdateRestaurant(c.Request.Context(), caller(c), id, body); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Restaurant updated successfully", nil)
}

func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	id, ok := pathID(c, "id", "Restaurant not found")
	if !ok {
		return
	}

	if err := rc.Service.DeleteRestaurant(c.Request.Context(), caller(c), id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Restaurant deleted successfully", nil)
}
