// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sky-herald.io/herald/ent/allocation"
	"sky-herald.io/herald/ent/group"
)

// Allocation is the model entity for the Allocation schema.
type Allocation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Instrument holds the value of the "instrument" field.
	Instrument string `json:"instrument,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AllocationQuery when eager-loading is set.
	Edges             AllocationEdges `json:"edges"`
	group_allocations *int
	selectValues      sql.SelectValues
}

// AllocationEdges holds the relations/edges for other nodes in the graph.
type AllocationEdges struct {
	// Group holds the value of the group edge.
	Group *Group `json:"group,omitempty"`
	// FollowupRequests holds the value of the followup_requests edge.
	FollowupRequests []*FollowupRequest `json:"followup_requests,omitempty"`
	// ObservationPlanRequests holds the value of the observation_plan_requests edge.
	ObservationPlanRequests []*ObservationPlanRequest `json:"observation_plan_requests,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// GroupOrErr returns the Group value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AllocationEdges) GroupOrErr() (*Group, error) {
	if e.Group != nil {
		return e.Group, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: group.Label}
	}
	return nil, &NotLoadedError{edge: "group"}
}

// FollowupRequestsOrErr returns the FollowupRequests value or an error if the edge
// was not loaded in eager-loading.
func (e AllocationEdges) FollowupRequestsOrErr() ([]*FollowupRequest, error) {
	if e.loadedTypes[1] {
		return e.FollowupRequests, nil
	}
	return nil, &NotLoadedError{edge: "followup_requests"}
}

// ObservationPlanRequestsOrErr returns the ObservationPlanRequests value or an error if the edge
// was not loaded in eager-loading.
func (e AllocationEdges) ObservationPlanRequestsOrErr() ([]*ObservationPlanRequest, error) {
	if e.loadedTypes[2] {
		return e.ObservationPlanRequests, nil
	}
	return nil, &NotLoadedError{edge: "observation_plan_requests"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Allocation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case allocation.FieldID:
			values[i] = new(sql.NullInt64)
		case allocation.FieldInstrument:
			values[i] = new(sql.NullString)
		case allocation.FieldCreatedAt, allocation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case allocation.ForeignKeys[0]: // group_allocations
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Allocation fields.
func (_m *Allocation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case allocation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case allocation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case allocation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case allocation.FieldInstrument:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instrument", values[i])
			} else if value.Valid {
				_m.Instrument = value.String
			}
		case allocation.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field group_allocations", value)
			} else if value.Valid {
				_m.group_allocations = new(int)
				*_m.group_allocations = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Allocation.
// This includes values selected through modifiers, order, etc.
func (_m *Allocation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGroup queries the "group" edge of the Allocation entity.
func (_m *Allocation) QueryGroup() *GroupQuery {
	return NewAllocationClient(_m.config).QueryGroup(_m)
}

// QueryFollowupRequests queries the "followup_requests" edge of the Allocation entity.
func (_m *Allocation) QueryFollowupRequests() *FollowupRequestQuery {
	return NewAllocationClient(_m.config).QueryFollowupRequests(_m)
}

// QueryObservationPlanRequests queries the "observation_plan_requests" edge of the Allocation entity.
func (_m *Allocation) QueryObservationPlanRequests() *ObservationPlanRequestQuery {
	return NewAllocationClient(_m.config).QueryObservationPlanRequests(_m)
}

// Update returns a builder for updating this Allocation.
// Note that you need to call Allocation.Unwrap() before calling this method if this Allocation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Allocation) Update() *AllocationUpdateOne {
	return NewAllocationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Allocation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Allocation) Unwrap() *Allocation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Allocation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Allocation) String() string {
	var builder strings.Builder
	builder.WriteString("Allocation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("instrument=")
	builder.WriteString(_m.Instrument)
	builder.WriteByte(')')
	return builder.String()
}

// Allocations is a parsable slice of Allocation.
type Allocations []*Allocation
