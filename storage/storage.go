// Package storage persists forms and responses. The core never
// depends on which backend is active: any implementation honoring the
// Store contract will do.
package storage

import (
	"context"

	"github.com/mbolis/form-builder/model"
)

// Store is the persistence collaborator contract.
//
// Lookups signal absence with a none result, never an error:
// LoadForms yields an empty list when nothing was persisted yet, and
// LoadForm yields (nil, nil) for an unknown id. Errors are reserved
// for actual I/O failure. SaveForm is an upsert with whole-form
// replacement semantics (no merge or patch); DeleteForm cascades to
// every response of the form; SaveResponse is append-only since
// responses are immutable once created.
type Store interface {
	LoadForms(ctx context.Context) ([]model.Form, error)
	LoadForm(ctx context.Context, id string) (*model.Form, error)
	SaveForm(ctx context.Context, form model.Form) error
	DeleteForm(ctx context.Context, id string) error

	// LoadResponses lists responses, filtered by form when formID
	// is non-empty.
	LoadResponses(ctx context.Context, formID string) ([]model.FormResponse, error)
	SaveResponse(ctx context.Context, response model.FormResponse) error

	Close() error
}
