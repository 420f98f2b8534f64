package dbhelper

import (
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"gorm.io/gorm"
)

func GetReservationByID(db *gorm.DB, id uint) (*models.Reservation, error) {
	return first[models.Reservation](db, id)
}

func CreateReservation(db *gorm.DB, reservation *models.Reservation) error {
	return db.Create(reservation).Error
}

func UpdateReservationStatus(db *gorm.DB, reservation *models.Reservation, status models.ReservationStatus) error {
	if err := db.Model(&models.Reservation{}).Where("id = ?", reservation.ID).Update("status", status).Error; err != nil {
		return err
	}
	reservation.Status = status
	return nil
}

func ListReservationsByUser(db *gorm.DB, userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := db.Where("user_id = ?", userID).Order("id").Find(&reservations).Error
	return reservations, err
}

func ListReservationsByRestaurant(db *gorm.DB, restaurantID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := db.Where("restaurant_id = ?", restaurantID).Order("id").Find(&reservations).Error
	return reservations, err
}
