package providers

import (
	"context"

	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
)

// SelectionStore holds exactly one in-progress booking selection per
// (session, vertical). Disjoint views (catalog list, detail page, calendar,
// booking form) read and write the same instance; verticals never leak into
// each other.
type SelectionStore interface {
	// Get returns the current selection, or the empty selection when none
	// has been stored yet. Never returns nil on success.
	Get(ctx context.Context, sessionID string, vertical entities.Vertical) (*entities.Selection, error)

	// Merge applies a shallow partial update and returns the resulting
	// selection. Fields not present in the patch keep their current value.
	Merge(ctx context.Context, sessionID string, vertical entities.Vertical, patch entities.SelectionPatch) (*entities.Selection, error)

	// Clear resets the selection to empty. Called on successful booking
	// submission or explicit cancellation.
	Clear(ctx context.Context, sessionID string, vertical entities.Vertical) error
}
