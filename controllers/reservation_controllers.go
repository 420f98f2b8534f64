package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation-api/services"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
	"gorm.io/gorm"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{Service: services.NewReservationService(db)}
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req services.CreateReservationInput
	if err := utils.BindJSON(c, &req); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	reservation, err := rc.Service.CreateReservation(c.Request.Context(), caller(c), req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondMessage(c, http.StatusCreated, "Reservation created successfully", gin.H{"id": reservation.ID})
}

func (rc *ReservationController) GetUserReservations(c *gin.Context) {
	reservations, err := rc.Service.ListUserReservations(c.Request.Context(), caller(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservations)
}

func (rc *ReservationController) GetRestaurantReservations(c *gin.Context) {
	restaurantID, ok := pathID(c, "restaurant_id", "Restaurant not found")
	if !ok {
		return
	}

	reservations, err := rc.Service.ListRestaurantReservations(c.Request.Context(), caller(c), restaurantID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservations)
}

func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, ok := pathID(c, "id", "Reservation not found")
	if !ok {
		return
	}

	reservation, err := rc.Service.GetReservation(c.Request.Context(), caller(c), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reservation)
}

// CancelReservation answers 200 for a repeated cancel without changing
// anything.
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := pathID(c, "id", "Reservation not found")
	if !ok {
		return
	}

	alreadyCancelled, err := rc.Service.CancelReservation(c.Request.Context(), caller(c), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	if alreadyCancelled {
		utils.RespondMessage(c, http.StatusOK, "Reservation already cancelled", nil)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Reservation cancelled successfully", nil)
}
