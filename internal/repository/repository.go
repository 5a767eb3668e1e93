package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound is returned when a row does not exist for the owner.
	ErrNotFound = errors.New("record not found")
	// ErrUnknownOrderColumn is returned for an order column outside the
	// entity's allow list.
	ErrUnknownOrderColumn = errors.New("unknown order column")
)

// Entities lists every table this package maps, for AutoMigrate callers.
func Entities() []any {
	return []any{&ClientEntity{}, &BalanceAdjustmentEntity{}, &PaymentTransactionEntity{}}
}

// ordering builds the ORDER BY clause for a List call. Column names are
// checked against allowed so they can never carry caller SQL.
func ordering(column string, ascending bool, fallback string, allowed ...string) (clause.OrderByColumn, error) {
	if column == "" {
		column = fallback
	}
	for _, a := range allowed {
		if a == column {
			return clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: !ascending}, nil
		}
	}
	return clause.OrderByColumn{}, ErrUnknownOrderColumn
}

func newID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
