package services

import (
	"context"
	"fmt"

	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
	"github.com/primelogicsol/artstay-booking/internal/domain/providers"
	apperrors "github.com/primelogicsol/artstay-booking/pkg/errors"
)

// SelectionService manages the per-vertical in-progress booking selection.
type SelectionService struct {
	catalog providers.CatalogProvider
	store   providers.SelectionStore
}

// NewSelectionService creates a new selection service.
func NewSelectionService(catalog providers.CatalogProvider, store providers.SelectionStore) *SelectionService {
	return &SelectionService{
		catalog: catalog,
		store:   store,
	}
}

// Get returns the session's current selection for a vertical.
func (s *SelectionService) Get(ctx context.Context, sessionID string, vertical entities.Vertical) (*entities.Selection, error) {
	if err := requireBookable(vertical); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, sessionID, vertical)
}

// ChooseItem loads the catalog item and stores it as the session's chosen
// item for the vertical. Any previously selected dates are reset: a new item
// brings its own duration and validity window.
func (s *SelectionService) ChooseItem(ctx context.Context, sessionID string, vertical entities.Vertical, itemID string) (*entities.Selection, error) {
	if err := requireBookable(vertical); err != nil {
		return nil, err
	}
	if itemID == "" {
		return nil, apperrors.NewValidationError("item id is required")
	}

	item, err := s.chosenItem(ctx, vertical, itemID)
	if err != nil {
		return nil, err
	}

	empty := ""
	return s.store.Merge(ctx, sessionID, vertical, entities.SelectionPatch{
		ChosenItem: item,
		StartDate:  &empty,
		EndDate:    &empty,
	})
}

// Clear resets the selection, for explicit cancellation or after a
// successful booking.
func (s *SelectionService) Clear(ctx context.Context, sessionID string, vertical entities.Vertical) error {
	if err := requireBookable(vertical); err != nil {
		return err
	}
	return s.store.Clear(ctx, sessionID, vertical)
}

// chosenItem projects a catalog entity into the selection-store shape.
func (s *SelectionService) chosenItem(ctx context.Context, vertical entities.Vertical, itemID string) (*entities.ChosenItem, error) {
	switch vertical {
	case entities.VerticalArtisan:
		p, err := s.catalog.GetArtisanPackage(ctx, itemID)
		if err != nil {
			return nil, err
		}
		return &entities.ChosenItem{
			ID:           p.ID,
			Title:        p.Title,
			DurationDays: p.DurationDays,
			Fee:          p.Fee,
			Currency:     p.Currency,
			WindowStart:  p.EventStart,
			WindowEnd:    p.EventEnd,
		}, nil

	case entities.VerticalSafari:
		t, err := s.catalog.GetSafariTour(ctx, itemID)
		if err != nil {
			return nil, err
		}
		return &entities.ChosenItem{
			ID:           t.ID,
			Title:        t.Title,
			DurationDays: t.DurationDays,
			Fee:          t.Fee,
			Currency:     t.Currency,
			WindowStart:  t.SeasonStart,
			WindowEnd:    t.SeasonEnd,
		}, nil

	case entities.VerticalTransit:
		o, err := s.catalog.GetTransitOption(ctx, itemID)
		if err != nil {
			return nil, err
		}
		// Transit rides are single-day by nature.
		return &entities.ChosenItem{
			ID:           o.ID,
			Title:        o.Title,
			DurationDays: 1,
			Fee:          o.Fee,
			Currency:     o.Currency,
		}, nil

	case entities.VerticalTravel:
		p, err := s.catalog.GetTravelPlan(ctx, itemID)
		if err != nil {
			return nil, err
		}
		return &entities.ChosenItem{
			ID:           p.ID,
			Title:        p.Title,
			DurationDays: p.DurationDays,
			Fee:          p.Fee,
			Currency:     p.Currency,
		}, nil
	}

	return nil, apperrors.NewValidationError(fmt.Sprintf("vertical %q has no bookable items", vertical))
}

func requireBookable(vertical entities.Vertical) error {
	if !vertical.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown vertical %q", vertical))
	}
	if !vertical.Bookable() {
		return apperrors.NewValidationError(fmt.Sprintf("vertical %q has no booking flow", vertical))
	}
	return nil
}
