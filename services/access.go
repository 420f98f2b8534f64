package services

import "github.com/yeremiapane/restaurant-reservation-api/models"

// IsSelfOrAdmin reports whether the caller is ownerID or a global admin.
func IsSelfOrAdmin(caller models.Identity, ownerID uint) bool {
	return caller.UserID == ownerID || caller.IsAdmin()
}

// CanManageRestaurant reports whether the caller administers restaurant or is
// a global admin.
func CanManageRestaurant(caller models.Identity, restaurant *models.Restaurant) bool {
	return caller.UserID == restaurant.AdminID || caller.IsAdmin()
}

// CanViewBooking covers reservations and orders: the customer who placed it,
// the restaurant's admin, or a global admin.
func CanViewBooking(caller models.Identity, ownerID uint, restaurant *models.Restaurant) bool {
	return IsSelfOrAdmin(caller, ownerID) || CanManageRestaurant(caller, restaurant)
}
