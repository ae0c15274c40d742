package entity

import (
	"context"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
)

// ReturnAware is a trait for documents that support return counterparts.
// Used for composition in Purchase and Sale models.
type ReturnAware struct {
	// IsReturn marks this document as a return of a previously posted one
	IsReturn bool `db:"is_return" json:"isReturn"`

	// OriginalID references the document being returned (required when IsReturn)
	OriginalID *id.ID `db:"original_id" json:"originalId,omitempty"`
}

// ValidateReturn ensures a return references its original document.
func (r *ReturnAware) ValidateReturn(ctx context.Context) error {
	if r.IsReturn && (r.OriginalID == nil || id.IsNil(*r.OriginalID)) {
		return apperror.NewValidation("return must reference the original document").
			WithDetail("field", "originalId")
	}
	if !r.IsReturn && r.OriginalID != nil {
		return apperror.NewValidation("only returns may reference an original document").
			WithDetail("field", "originalId")
	}
	return nil
}

// GetOriginalID returns the referenced original document ID or nil.
func (r *ReturnAware) GetOriginalID() *id.ID {
	return r.OriginalID
}

// IReturnAware is an interface for any document that supports returns.
type IReturnAware interface {
	GetOriginalID() *id.ID
	ValidateReturn(ctx context.Context) error
}
