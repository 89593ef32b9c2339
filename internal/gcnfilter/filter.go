// Package gcnfilter evaluates per-user GCN subscription predicates
// against incoming notice, tag, and localization data.
//
// A subscription is a set of named filter sets. A user matches when ANY
// set matches (OR across sets) and a set matches when ALL of its
// configured conditions pass (AND within a set). Property conditions
// are free-form "name:value:op" comparison strings.
package gcnfilter

import (
	"encoding/json"
	"strconv"
	"strings"

	apperrors "sky-herald.io/herald/internal/pkg/errors"
	"sky-herald.io/herald/internal/prefs"
)

// Comparator is one of the six supported numeric comparison operators.
type Comparator string

const (
	OpLT Comparator = "lt"
	OpLE Comparator = "le"
	OpEQ Comparator = "eq"
	OpNE Comparator = "ne"
	OpGE Comparator = "ge"
	OpGT Comparator = "gt"
)

// PropertyFilter is a parsed "name:value:op" expression.
type PropertyFilter struct {
	Name      string
	Threshold float64
	Op        Comparator
}

// ParsePropertyFilter parses a "name:value:op" string. A malformed
// expression is a hard error, never silently skipped: it indicates a
// corrupt stored preference that must surface during evaluation.
func ParsePropertyFilter(expr string) (PropertyFilter, error) {
	parts := strings.Split(expr, ":")
	if len(parts) != 3 {
		return PropertyFilter{}, apperrors.ErrMalformedFilterf(expr)
	}
	threshold, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return PropertyFilter{}, apperrors.ErrMalformedFilterf(expr)
	}
	op := Comparator(parts[2])
	switch op {
	case OpLT, OpLE, OpEQ, OpNE, OpGE, OpGT:
	default:
		return PropertyFilter{}, apperrors.ErrMalformedFilterf(expr)
	}
	return PropertyFilter{Name: parts[0], Threshold: threshold, Op: op}, nil
}

// Matches applies the comparator to an observed value.
func (f PropertyFilter) Matches(value float64) bool {
	switch f.Op {
	case OpLT:
		return value < f.Threshold
	case OpLE:
		return value <= f.Threshold
	case OpEQ:
		return value == f.Threshold
	case OpNE:
		return value != f.Threshold
	case OpGE:
		return value >= f.Threshold
	case OpGT:
		return value > f.Threshold
	}
	return false
}

// EventData is the slice of a GCN event the evaluator inspects.
// Properties and LocalizationProperties carry one entry per attached
// property record; each record maps property names to numeric values.
type EventData struct {
	// NoticeType is the decoded notice type name; empty for raw JSON
	// notices, in which case notice-type conditions are skipped.
	NoticeType string

	// Tags are the tags attached to the dateobs event.
	Tags []string

	// Properties holds all property records attached to the event.
	Properties []map[string]interface{}

	// BareNotice marks a notification triggered by a raw GcnNotice;
	// localization conditions are skipped for those.
	BareNotice bool

	LocalizationTags       []string
	LocalizationProperties []map[string]interface{}
}

// MatchesSubscription reports whether any of the user's filter sets
// matches the event. A subscription with zero sets never matches; the
// user has not configured anything to subscribe to.
func MatchesSubscription(sets map[string]prefs.GcnFilterSet, event EventData) (bool, error) {
	if len(sets) == 0 {
		return false, nil
	}
	for _, set := range sets {
		ok, err := matchesSet(set, event)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func matchesSet(set prefs.GcnFilterSet, event EventData) (bool, error) {
	if len(set.NoticeTypes) > 0 && event.NoticeType != "" {
		if !contains(set.NoticeTypes, event.NoticeType) {
			return false, nil
		}
	}

	if len(set.Tags) > 0 {
		if !intersects(set.Tags, event.Tags) {
			return false, nil
		}
	}

	if len(set.Properties) > 0 {
		ok, err := anyRecordMatches(set.Properties, event.Properties)
		if err != nil || !ok {
			return false, err
		}
	}

	if !event.BareNotice {
		if len(set.LocalizationTags) > 0 {
			if !intersects(set.LocalizationTags, event.LocalizationTags) {
				return false, nil
			}
		}
		if len(set.LocalizationProperties) > 0 {
			ok, err := anyRecordMatches(set.LocalizationProperties, event.LocalizationProperties)
			if err != nil || !ok {
				return false, err
			}
		}
	}

	return true, nil
}

// anyRecordMatches requires at least one whole property record to pass
// every configured filter. A filter whose property is absent from a
// record passes for that record.
func anyRecordMatches(exprs []string, records []map[string]interface{}) (bool, error) {
	filters := make([]PropertyFilter, 0, len(exprs))
	for _, expr := range exprs {
		f, err := ParsePropertyFilter(expr)
		if err != nil {
			return false, err
		}
		filters = append(filters, f)
	}

	for _, record := range records {
		passes := true
		for _, f := range filters {
			raw, present := record[f.Name]
			if !present {
				continue
			}
			value, ok := asFloat(raw)
			if !ok {
				passes = false
				break
			}
			if !f.Matches(value) {
				passes = false
				break
			}
		}
		if passes {
			return true, nil
		}
	}
	return false, nil
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, s := range a {
		if contains(b, s) {
			return true
		}
	}
	return false
}
