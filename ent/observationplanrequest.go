// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sky-herald.io/herald/ent/allocation"
	"sky-herald.io/herald/ent/observationplanrequest"
	"sky-herald.io/herald/ent/user"
)

// ObservationPlanRequest is the model entity for the ObservationPlanRequest schema.
type ObservationPlanRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Parent GCN event trigger time
	Dateobs time.Time `json:"dateobs,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ObservationPlanRequestQuery when eager-loading is set.
	Edges                                ObservationPlanRequestEdges `json:"edges"`
	allocation_observation_plan_requests *int
	observation_plan_request_requester   *int
	selectValues                         sql.SelectValues
}

// ObservationPlanRequestEdges holds the relations/edges for other nodes in the graph.
type ObservationPlanRequestEdges struct {
	// Allocation holds the value of the allocation edge.
	Allocation *Allocation `json:"allocation,omitempty"`
	// Requester holds the value of the requester edge.
	Requester *User `json:"requester,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AllocationOrErr returns the Allocation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ObservationPlanRequestEdges) AllocationOrErr() (*Allocation, error) {
	if e.Allocation != nil {
		return e.Allocation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: allocation.Label}
	}
	return nil, &NotLoadedError{edge: "allocation"}
}

// RequesterOrErr returns the Requester value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ObservationPlanRequestEdges) RequesterOrErr() (*User, error) {
	if e.Requester != nil {
		return e.Requester, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "requester"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ObservationPlanRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case observationplanrequest.FieldID:
			values[i] = new(sql.NullInt64)
		case observationplanrequest.FieldStatus:
			values[i] = new(sql.NullString)
		case observationplanrequest.FieldCreatedAt, observationplanrequest.FieldUpdatedAt, observationplanrequest.FieldDateobs:
			values[i] = new(sql.NullTime)
		case observationplanrequest.ForeignKeys[0]: // allocation_observation_plan_requests
			values[i] = new(sql.NullInt64)
		case observationplanrequest.ForeignKeys[1]: // observation_plan_request_requester
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ObservationPlanRequest fields.
func (_m *ObservationPlanRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case observationplanrequest.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case observationplanrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case observationplanrequest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case observationplanrequest.FieldDateobs:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field dateobs", values[i])
			} else if value.Valid {
				_m.Dateobs = value.Time
			}
		case observationplanrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case observationplanrequest.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field allocation_observation_plan_requests", value)
			} else if value.Valid {
				_m.allocation_observation_plan_requests = new(int)
				*_m.allocation_observation_plan_requests = int(value.Int64)
			}
		case observationplanrequest.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field observation_plan_request_requester", value)
			} else if value.Valid {
				_m.observation_plan_request_requester = new(int)
				*_m.observation_plan_request_requester = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ObservationPlanRequest.
// This includes values selected through modifiers, order, etc.
func (_m *ObservationPlanRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAllocation queries the "allocation" edge of the ObservationPlanRequest entity.
func (_m *ObservationPlanRequest) QueryAllocation() *AllocationQuery {
	return NewObservationPlanRequestClient(_m.config).QueryAllocation(_m)
}

// QueryRequester queries the "requester" edge of the ObservationPlanRequest entity.
func (_m *ObservationPlanRequest) QueryRequester() *UserQuery {
	return NewObservationPlanRequestClient(_m.config).QueryRequester(_m)
}

// Update returns a builder for updating this ObservationPlanRequest.
// Note that you need to call ObservationPlanRequest.Unwrap() before calling this method if this ObservationPlanRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ObservationPlanRequest) Update() *ObservationPlanRequestUpdateOne {
	return NewObservationPlanRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ObservationPlanRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ObservationPlanRequest) Unwrap() *ObservationPlanRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ObservationPlanRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ObservationPlanRequest) String() string {
	var builder strings.Builder
	builder.WriteString("ObservationPlanRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("dateobs=")
	builder.WriteString(_m.Dateobs.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteByte(')')
	return builder.String()
}

// ObservationPlanRequests is a parsable slice of ObservationPlanRequest.
type ObservationPlanRequests []*ObservationPlanRequest
