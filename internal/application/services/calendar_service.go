package services

import (
	"context"
	"time"

	"github.com/primelogicsol/artstay-booking/internal/calendar"
	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
	"github.com/primelogicsol/artstay-booking/internal/domain/providers"
	apperrors "github.com/primelogicsol/artstay-booking/pkg/errors"
)

// maxMonths caps the consecutive month grids per view; the booking pages
// show at most two months side by side.
const maxMonths = 2

// GridDay is one calendar cell annotated with the session's selection state.
type GridDay struct {
	calendar.Day
	Selected bool `json:"selected"`
	InRange  bool `json:"in_range"`
}

// MonthGrid is one rendered month of 42 cells.
type MonthGrid struct {
	Month string    `json:"month"`
	Days  []GridDay `json:"days"`
}

// MonthView is the full calendar state for a vertical and session: the
// grids, the current selection, and whether the Continue action is enabled.
type MonthView struct {
	Vertical    entities.Vertical      `json:"vertical"`
	Mode        entities.SelectionMode `json:"mode"`
	Months      []MonthGrid            `json:"months"`
	Selection   *entities.Selection    `json:"selection"`
	CanContinue bool                   `json:"can_continue"`
}

// SelectResult reports the outcome of a date click. Clicks on disabled days
// are silent no-ops: Changed is false and the selection is untouched.
type SelectResult struct {
	Selection   *entities.Selection `json:"selection"`
	Changed     bool                `json:"changed"`
	CanContinue bool                `json:"can_continue"`
}

// CalendarService renders availability month views and applies date clicks
// to the selection store.
type CalendarService struct {
	store providers.SelectionStore
	now   func() time.Time
}

// NewCalendarService creates a new calendar service. A nil clock means wall
// time.
func NewCalendarService(store providers.SelectionStore, clock func() time.Time) *CalendarService {
	if clock == nil {
		clock = time.Now
	}
	return &CalendarService{
		store: store,
		now:   clock,
	}
}

// MonthView builds the grids for monthQuery (defaulting to the current
// month) and the following months, up to the requested count. Choosing a
// package first is a precondition: without one the caller gets a
// PRECONDITION error to render as a blocking notice instead of a grid.
// Viewing any month never touches the selection store.
func (s *CalendarService) MonthView(ctx context.Context, sessionID string, vertical entities.Vertical, monthQuery string, months int) (*MonthView, error) {
	sel, err := s.gate(ctx, sessionID, vertical)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	first, err := calendar.ParseMonth(monthQuery, now)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if months < 1 {
		months = maxMonths
	}
	if months > maxMonths {
		months = maxMonths
	}

	today := calendar.FormatDate(now)
	window := selectionWindow(sel)

	view := &MonthView{
		Vertical:    vertical,
		Mode:        vertical.Mode(),
		Months:      make([]MonthGrid, 0, months),
		Selection:   sel,
		CanContinue: sel.DatesComplete(),
	}

	for i := 0; i < months; i++ {
		month := calendar.AddMonths(first, i)
		days := calendar.Grid(month, today, window)

		grid := MonthGrid{
			Month: month.Format(calendar.MonthLayout),
			Days:  make([]GridDay, 0, len(days)),
		}
		for _, d := range days {
			grid.Days = append(grid.Days, annotate(d, sel))
		}
		view.Months = append(view.Months, grid)
	}

	return view, nil
}

// SelectDate applies a click on a day. Enabled days overwrite the prior
// selection: the start date is the clicked day and the end date derives from
// the chosen package's duration, written atomically in one merge. Disabled
// days are ignored without error.
func (s *CalendarService) SelectDate(ctx context.Context, sessionID string, vertical entities.Vertical, date string) (*SelectResult, error) {
	sel, err := s.gate(ctx, sessionID, vertical)
	if err != nil {
		return nil, err
	}

	if _, err := calendar.ParseDate(date); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	today := calendar.FormatDate(s.now().UTC())
	if !calendar.Selectable(date, today, selectionWindow(sel)) {
		return &SelectResult{
			Selection:   sel,
			Changed:     false,
			CanContinue: sel.DatesComplete(),
		}, nil
	}

	end, err := calendar.EndFor(date, sel.ChosenItem.DurationDays)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	merged, err := s.store.Merge(ctx, sessionID, vertical, entities.SelectionPatch{
		StartDate: &date,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	return &SelectResult{
		Selection:   merged,
		Changed:     true,
		CanContinue: merged.DatesComplete(),
	}, nil
}

// gate enforces the choose-an-item-first precondition shared by every
// calendar operation.
func (s *CalendarService) gate(ctx context.Context, sessionID string, vertical entities.Vertical) (*entities.Selection, error) {
	if err := requireBookable(vertical); err != nil {
		return nil, err
	}

	sel, err := s.store.Get(ctx, sessionID, vertical)
	if err != nil {
		return nil, err
	}
	if sel.IsEmpty() {
		return nil, apperrors.NewPreconditionError("choose a package before opening the calendar")
	}
	return sel, nil
}

func selectionWindow(sel *entities.Selection) calendar.Window {
	if sel.ChosenItem == nil {
		return calendar.Window{}
	}
	return calendar.Window{
		Start: sel.ChosenItem.WindowStart,
		End:   sel.ChosenItem.WindowEnd,
	}
}

// annotate marks a day as a selection anchor or part of the selected stay.
// Anchors are the exact start/end dates; in-range covers every day between
// them inclusive, which the range-anchor mode renders as a band.
func annotate(d calendar.Day, sel *entities.Selection) GridDay {
	g := GridDay{Day: d}
	if sel.StartDate == "" || sel.EndDate == "" {
		return g
	}
	g.Selected = d.Date == sel.StartDate || d.Date == sel.EndDate
	g.InRange = d.Date >= sel.StartDate && d.Date <= sel.EndDate
	return g
}
