package services

import (
	"context"

	"github.com/yeremiapane/restaurant-reservation-api/database/dbhelper"
	"github.com/yeremiapane/restaurant-reservation-api/models"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
	"gorm.io/gorm"
)

type CreateReservationInput struct {
	Date         *string `json:"date" binding:"required"`
	Time         *string `json:"time" binding:"required"`
	Guests       *int    `json:"guests" binding:"required,min=1"`
	RestaurantID *uint   `json:"restaurant_id" binding:"required"`
	Notes        *string `json:"notes"`
}

type ReservationService struct {
	db *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

// CreateReservation books a table for the caller. The restaurant must exist
// before date and time are checked.
func (s *ReservationService) CreateReservation(ctx context.Context, caller models.Identity, in CreateReservationInput) (*models.Reservation, error) {
	var reservation *models.Reservation
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := dbhelper.GetRestaurantByID(tx, *in.RestaurantID); err != nil {
			return lookupErr(err, "Restaurant not found")
		}

		date, err := utils.ParseDate("date", *in.Date)
		if err != nil {
			return err
		}
		clock, err := utils.ParseClock("time", *in.Time)
		if err != nil {
			return err
		}

		reservation = &models.Reservation{
			Date:         date,
			Time:         clock,
			Guests:       *in.Guests,
			Status:       models.ReservationPending,
			UserID:       caller.UserID,
			RestaurantID: *in.RestaurantID,
		}
		if in.Notes != nil {
			reservation.Notes = *in.Notes
		}

		if err := dbhelper.CreateReservation(tx, reservation); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *ReservationService) GetReservation(ctx context.Context, caller models.Identity, id uint) (*models.Reservation, error) {
	return s.loadVisibleReservation(s.db.WithContext(ctx), caller, id)
}

// CancelReservation marks the reservation cancelled. It reports whether the
// reservation had already been cancelled, in which case nothing is written.
func (s *ReservationService) CancelReservation(ctx context.Context, caller models.Identity, id uint) (alreadyCancelled bool, err error) {
	err = inTx(ctx, s.db, func(tx *gorm.DB) error {
		reservation, err := s.loadVisibleReservation(tx, caller, id)
		if err != nil {
			return err
		}
		if reservation.Cancelled() {
			alreadyCancelled = true
			return nil
		}
		if err := dbhelper.UpdateReservationStatus(tx, reservation, models.ReservationCancelled); err != nil {
			return utils.Internal(err)
		}
		return nil
	})
	return alreadyCancelled, err
}

func (s *ReservationService) ListUserReservations(ctx context.Context, caller models.Identity) ([]models.Reservation, error) {
	reservations, err := dbhelper.ListReservationsByUser(s.db.WithContext(ctx), caller.UserID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return reservations, nil
}

func (s *ReservationService) ListRestaurantReservations(ctx context.Context, caller models.Identity, restaurantID uint) ([]models.Reservation, error) {
	db := s.db.WithContext(ctx)
	restaurant, err := dbhelper.GetRestaurantByID(db, restaurantID)
	if err != nil {
		return nil, lookupErr(err, "Restaurant not found")
	}
	if !CanManageRestaurant(caller, restaurant) {
		return nil, utils.PermissionDenied()
	}

	reservations, err := dbhelper.ListReservationsByRestaurant(db, restaurant.ID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return reservations, nil
}

func (s *ReservationService) loadVisibleReservation(db *gorm.DB, caller models.Identity, id uint) (*models.Reservation, error) {
	reservation, err := dbhelper.GetReservationByID(db, id)
	if err != nil {
		return nil, lookupErr(err, "Reservation not found")
	}
	restaurant, err := dbhelper.GetRestaurantByID(db, reservation.RestaurantID)
	if err != nil {
		return nil, lookupErr(err, "Restaurant not found")
	}
	if !CanViewBooking(caller, reservation.UserID, restaurant) {
		return nil, utils.PermissionDenied()
	}
	return reservation, nil
}
