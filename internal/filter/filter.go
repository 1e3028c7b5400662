// Package filter implements the in-memory catalog filtering shared by every
// vertical. A Schema describes a vertical's filterable fields declaratively;
// the same schema parses the URL query string into Criteria, serializes
// Criteria back for shareable URLs, and evaluates the conjunction of active
// field predicates over an already-fetched collection. No network round-trips
// happen per filter change.
package filter

import (
	"net/url"
	"strconv"
	"strings"
)

// Kind enumerates the supported per-field predicate kinds.
type Kind int

const (
	// KindText matches a case-insensitive substring against one or more
	// designated text fields; the item passes if any field contains it.
	KindText Kind = iota

	// KindEnum matches case-insensitive equality against a single field.
	KindEnum

	// KindSet passes when the item's own value set shares at least one
	// element with the requested set (non-empty intersection, not
	// containment). Requested values arrive as repeated keys or
	// comma-separated lists.
	KindSet

	// KindRange passes when the item's numeric field lies within [min, max];
	// either bound may be absent.
	KindRange

	// KindFlag passes iff the item's boolean field is true. The filter has
	// no effect unless the parameter parses to true.
	KindFlag
)

// FieldSpec describes one filterable field of an item type. Exactly one of
// the accessor functions is consulted, chosen by Kind: Strings for text, enum
// and set fields, Number for ranges, Flag for booleans.
type FieldSpec[T any] struct {
	Name     string // criteria key
	Param    string // query parameter; defaults to Name
	ParamMin string // range lower-bound parameter (KindRange)
	ParamMax string // range upper-bound parameter (KindRange)
	Kind     Kind

	Strings func(T) []string
	Number  func(T) float64
	Flag    func(T) bool
}

func (f FieldSpec[T]) param() string {
	if f.Param != "" {
		return f.Param
	}
	return f.Name
}

// Schema is the ordered set of filterable fields for one vertical.
type Schema[T any] []FieldSpec[T]

// Parse derives Criteria from a URL query string. Parameters that are absent,
// empty, or unparsable contribute no constraint.
func (s Schema[T]) Parse(q url.Values) Criteria {
	c := Criteria{}
	for _, f := range s {
		switch f.Kind {
		case KindText, KindEnum:
			if v := strings.TrimSpace(q.Get(f.param())); v != "" {
				c[f.Name] = Value{Text: v}
			}
		case KindSet:
			var set []string
			for _, raw := range q[f.param()] {
				for _, v := range strings.Split(raw, ",") {
					if v = strings.TrimSpace(v); v != "" {
						set = append(set, v)
					}
				}
			}
			if len(set) > 0 {
				c[f.Name] = Value{Set: set}
			}
		case KindRange:
			v := Value{
				Min: parseNumber(q.Get(f.ParamMin)),
				Max: parseNumber(q.Get(f.ParamMax)),
			}
			if v.Min != nil || v.Max != nil {
				c[f.Name] = v
			}
		case KindFlag:
			if b, err := strconv.ParseBool(q.Get(f.param())); err == nil && b {
				c[f.Name] = Value{Flag: true}
			}
		}
	}
	return c
}

// Serialize writes Criteria back into query parameters, making filter state
// shareable and bookmarkable. Serialize and Parse round-trip.
func (s Schema[T]) Serialize(c Criteria) url.Values {
	q := url.Values{}
	for _, f := range s {
		v, ok := c[f.Name]
		if !ok {
			continue
		}
		switch f.Kind {
		case KindText, KindEnum:
			q.Set(f.param(), v.Text)
		case KindSet:
			q.Set(f.param(), strings.Join(v.Set, ","))
		case KindRange:
			if v.Min != nil {
				q.Set(f.ParamMin, formatNumber(*v.Min))
			}
			if v.Max != nil {
				q.Set(f.ParamMax, formatNumber(*v.Max))
			}
		case KindFlag:
			if v.Flag {
				q.Set(f.param(), "true")
			}
		}
	}
	return q
}

// Apply returns the items accepted by every active criterion, preserving the
// input order. With no active criteria the input slice is returned as-is, so
// the hot unfiltered path allocates nothing. Apply is pure: the input slice
// is never mutated.
func (s Schema[T]) Apply(items []T, c Criteria) []T {
	if !c.Active() {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if s.matches(item, c) {
			out = append(out, item)
		}
	}
	return out
}

func (s Schema[T]) matches(item T, c Criteria) bool {
	for _, f := range s {
		v, ok := c[f.Name]
		if !ok {
			continue
		}
		switch f.Kind {
		case KindText:
			if !containsFold(f.Strings(item), v.Text) {
				return false
			}
		case KindEnum:
			if !equalsFold(f.Strings(item), v.Text) {
				return false
			}
		case KindSet:
			if !intersects(f.Strings(item), v.Set) {
				return false
			}
		case KindRange:
			n := f.Number(item)
			if v.Min != nil && n < *v.Min {
				return false
			}
			if v.Max != nil && n > *v.Max {
				return false
			}
		case KindFlag:
			if !f.Flag(item) {
				return false
			}
		}
	}
	return true
}

// All comparisons are case-insensitive, uniformly across verticals.

func containsFold(fields []string, query string) bool {
	query = strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func equalsFold(fields []string, query string) bool {
	for _, f := range fields {
		if strings.EqualFold(f, query) {
			return true
		}
	}
	return false
}

func intersects(own, requested []string) bool {
	for _, r := range requested {
		for _, o := range own {
			if strings.EqualFold(o, r) {
				return true
			}
		}
	}
	return false
}

func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &n
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
