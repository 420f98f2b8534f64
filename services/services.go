package services

import (
	"context"
	"errors"

	"github.com/yeremiapane/restaurant-reservation-api/database/dbhelper"
	"github.com/yeremiapane/restaurant-reservation-api/utils"
	"gorm.io/gorm"
)

// inTx runs fn inside one transaction bound to ctx. Returning any error from
// fn rolls the transaction back.
func inTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}

// lookupErr turns a dbhelper lookup failure into the typed error for the
// client: NotFound with message for a missing row, Internal otherwise.
func lookupErr(err error, message string) error {
	if errors.Is(err, dbhelper.ErrNotFound) {
		return utils.NotFound(message)
	}
	return utils.Internal(err)
}

// storeErr wraps a write failure. Unique constraint violations that slipped
// past the explicit checks surface as conflicts.
func storeErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.Conflict("Resource already exists")
	}
	return utils.Internal(err)
}
