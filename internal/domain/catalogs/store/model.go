// Package store provides the Store catalog: the shop profile printed on
// invoice headers (name, place, contacts, GST number).
package store

import (
	"context"
	"strings"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/entity"
)

// Store is the shop profile. A deployment normally has exactly one.
type Store struct {
	entity.Catalog

	// Place is the town or locality shown on invoices
	Place string `db:"place" json:"place"`

	Email string `db:"email" json:"email"`
	Phone string `db:"phone" json:"phone"`

	// GSTNumber is the shop's GST registration
	GSTNumber string `db:"gst_number" json:"gstNumber"`
}

// NewStore creates a new Store.
func NewStore(code, name, place string) *Store {
	return &Store{
		Catalog: entity.NewCatalog(code, name),
		Place:   place,
	}
}

// Validate implements entity.Validatable interface.
func (s *Store) Validate(ctx context.Context) error {
	if err := s.Catalog.Validate(ctx); err != nil {
		return err
	}

	if strings.TrimSpace(s.Place) == "" {
		return apperror.NewValidation("place is required").
			WithDetail("field", "place")
	}

	if s.Email != "" && !strings.Contains(s.Email, "@") {
		return apperror.NewValidation("invalid email").
			WithDetail("field", "email")
	}

	return nil
}
