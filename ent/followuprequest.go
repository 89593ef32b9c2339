// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sky-herald.io/herald/ent/allocation"
	"sky-herald.io/herald/ent/followuprequest"
	"sky-herald.io/herald/ent/user"
)

// FollowupRequest is the model entity for the FollowupRequest schema.
type FollowupRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ObjID holds the value of the "obj_id" field.
	ObjID string `json:"obj_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FollowupRequestQuery when eager-loading is set.
	Edges                        FollowupRequestEdges `json:"edges"`
	allocation_followup_requests *int
	followup_request_requester   *int
	selectValues                 sql.SelectValues
}

// FollowupRequestEdges holds the relations/edges for other nodes in the graph.
type FollowupRequestEdges struct {
	// Allocation holds the value of the allocation edge.
	Allocation *Allocation `json:"allocation,omitempty"`
	// Requester holds the value of the requester edge.
	Requester *User `json:"requester,omitempty"`
	// Transactions holds the value of the transactions edge.
	Transactions []*FacilityTransaction `json:"transactions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// AllocationOrErr returns the Allocation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FollowupRequestEdges) AllocationOrErr() (*Allocation, error) {
	if e.Allocation != nil {
		return e.Allocation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: allocation.Label}
	}
	return nil, &NotLoadedError{edge: "allocation"}
}

// RequesterOrErr returns the Requester value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FollowupRequestEdges) RequesterOrErr() (*User, error) {
	if e.Requester != nil {
		return e.Requester, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "requester"}
}

// TransactionsOrErr returns the Transactions value or an error if the edge
// was not loaded in eager-loading.
func (e FollowupRequestEdges) TransactionsOrErr() ([]*FacilityTransaction, error) {
	if e.loadedTypes[2] {
		return e.Transactions, nil
	}
	return nil, &NotLoadedError{edge: "transactions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FollowupRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case followuprequest.FieldID:
			values[i] = new(sql.NullInt64)
		case followuprequest.FieldObjID, followuprequest.FieldStatus:
			values[i] = new(sql.NullString)
		case followuprequest.FieldCreatedAt, followuprequest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case followuprequest.ForeignKeys[0]: // allocation_followup_requests
			values[i] = new(sql.NullInt64)
		case followuprequest.ForeignKeys[1]: // followup_request_requester
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FollowupRequest fields.
func (_m *FollowupRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case followuprequest.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case followuprequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case followuprequest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case followuprequest.FieldObjID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field obj_id", values[i])
			} else if value.Valid {
				_m.ObjID = value.String
			}
		case followuprequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case followuprequest.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field allocation_followup_requests", value)
			} else if value.Valid {
				_m.allocation_followup_requests = new(int)
				*_m.allocation_followup_requests = int(value.Int64)
			}
		case followuprequest.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field followup_request_requester", value)
			} else if value.Valid {
				_m.followup_request_requester = new(int)
				*_m.followup_request_requester = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FollowupRequest.
// This includes values selected through modifiers, order, etc.
func (_m *FollowupRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAllocation queries the "allocation" edge of the FollowupRequest entity.
func (_m *FollowupRequest) QueryAllocation() *AllocationQuery {
	return NewFollowupRequestClient(_m.config).QueryAllocation(_m)
}

// QueryRequester queries the "requester" edge of the FollowupRequest entity.
func (_m *FollowupRequest) QueryRequester() *UserQuery {
	return NewFollowupRequestClient(_m.config).QueryRequester(_m)
}

// QueryTransactions queries the "transactions" edge of the FollowupRequest entity.
func (_m *FollowupRequest) QueryTransactions() *FacilityTransactionQuery {
	return NewFollowupRequestClient(_m.config).QueryTransactions(_m)
}

// Update returns a builder for updating this FollowupRequest.
// Note that you need to call FollowupRequest.Unwrap() before calling this method if this FollowupRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FollowupRequest) Update() *FollowupRequestUpdateOne {
	return NewFollowupRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FollowupRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FollowupRequest) Unwrap() *FollowupRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FollowupRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FollowupRequest) String() string {
	var builder strings.Builder
	builder.WriteString("FollowupRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("obj_id=")
	builder.WriteString(_m.ObjID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteByte(')')
	return builder.String()
}

// FollowupRequests is a parsable slice of FollowupRequest.
type FollowupRequests []*FollowupRequest
