package entities

import (
	"github.com/shopspring/decimal"
)

// ChosenItem is the projection of a catalog entity carried inside a
// Selection: just enough to drive the calendar (duration, validity window)
// and the booking summary (title, fee).
type ChosenItem struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	DurationDays int             `json:"duration_days"`
	Fee          decimal.Decimal `json:"fee"`
	Currency     string          `json:"currency"`
	// Optional validity window (ISO dates, inclusive). Empty means the
	// calendar is constrained by the past-date rule only.
	WindowStart string `json:"window_start,omitempty"`
	WindowEnd   string `json:"window_end,omitempty"`
}

// Selection is the in-progress booking choice of one vertical within one
// session. Dates are ISO calendar-date strings with no time component. A
// Selection with no chosen item is empty and carries no dates. It lives for
// the booking session and is cleared explicitly on successful submission or
// cancellation.
type Selection struct {
	Vertical   Vertical    `json:"vertical"`
	ChosenItem *ChosenItem `json:"chosen_item,omitempty"`
	StartDate  string      `json:"start_date,omitempty"`
	EndDate    string      `json:"end_date,omitempty"`
}

// EmptySelection returns the empty selection for a vertical.
func EmptySelection(v Vertical) *Selection {
	return &Selection{Vertical: v}
}

// IsEmpty reports whether no item has been chosen yet.
func (s *Selection) IsEmpty() bool {
	return s == nil || s.ChosenItem == nil
}

// DatesComplete reports whether both dates are set, which is what enables
// the "Continue" action towards the booking form.
func (s *Selection) DatesComplete() bool {
	return s != nil && s.ChosenItem != nil && s.StartDate != "" && s.EndDate != ""
}

// Clone returns a deep copy. Stores hand out clones so callers never alias
// the stored value.
func (s *Selection) Clone() *Selection {
	if s == nil {
		return nil
	}
	out := *s
	if s.ChosenItem != nil {
		item := *s.ChosenItem
		out.ChosenItem = &item
	}
	return &out
}

// SelectionPatch is a shallow partial update: nil fields leave the current
// value untouched. Patches cannot un-choose an item; that is what Clear on
// the store is for.
type SelectionPatch struct {
	ChosenItem *ChosenItem
	StartDate  *string
	EndDate    *string
}

// Apply merges the patch into the selection and enforces the empty-selection
// invariant: without a chosen item the date fields stay empty.
func (s *Selection) Apply(p SelectionPatch) {
	if p.ChosenItem != nil {
		item := *p.ChosenItem
		s.ChosenItem = &item
	}
	if p.StartDate != nil {
		s.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		s.EndDate = *p.EndDate
	}
	if s.ChosenItem == nil {
		s.StartDate = ""
		s.EndDate = ""
	}
}
