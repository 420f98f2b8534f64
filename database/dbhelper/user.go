package dbhelper

import (
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"gorm.io/gorm"
)

func GetUserByID(db *gorm.DB, id uint) (*models.User, error) {
	return first[models.User](db, id)
}

func GetUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	return firstWhere[models.User](db, "username = ?", username)
}

func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	return firstWhere[models.User](db, "email = ?", email)
}

func CreateUser(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

func SaveUser(db *gorm.DB, user *models.User) error {
	return db.Save(user).Error
}

func CountRestaurantsByAdmin(db *gorm.DB, adminID uint) (int64, error) {
	var count int64
	err := db.Model(&models.Restaurant{}).Where("admin_id = ?", adminID).Count(&count).Error
	return count, err
}

// DeleteUser removes a user together with the reservations and orders they
// placed.
func DeleteUser(db *gorm.DB, id uint) error {
	userOrders := db.Model(&models.Order{}).Select("id").Where("user_id = ?", id)
	if err := db.Where("order_id IN (?)", userOrders).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	if err := db.Where("user_id = ?", id).Delete(&models.Order{}).Error; err != nil {
		return err
	}
	if err := db.Where("user_id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.User{}, id).Error
}
