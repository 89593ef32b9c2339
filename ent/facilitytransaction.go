// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sky-herald.io/herald/ent/facilitytransaction"
	"sky-herald.io/herald/ent/followuprequest"
)

// FacilityTransaction is the model entity for the FacilityTransaction schema.
type FacilityTransaction struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Initiator holds the value of the "initiator" field.
	Initiator string `json:"initiator,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FacilityTransactionQuery when eager-loading is set.
	Edges                         FacilityTransactionEdges `json:"edges"`
	followup_request_transactions *int
	selectValues                  sql.SelectValues
}

// FacilityTransactionEdges holds the relations/edges for other nodes in the graph.
type FacilityTransactionEdges struct {
	// FollowupRequest holds the value of the followup_request edge.
	FollowupRequest *FollowupRequest `json:"followup_request,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FollowupRequestOrErr returns the FollowupRequest value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FacilityTransactionEdges) FollowupRequestOrErr() (*FollowupRequest, error) {
	if e.FollowupRequest != nil {
		return e.FollowupRequest, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: followuprequest.Label}
	}
	return nil, &NotLoadedError{edge: "followup_request"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FacilityTransaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case facilitytransaction.FieldID:
			values[i] = new(sql.NullInt64)
		case facilitytransaction.FieldInitiator:
			values[i] = new(sql.NullString)
		case facilitytransaction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case facilitytransaction.ForeignKeys[0]: // followup_request_transactions
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FacilityTransaction fields.
func (_m *FacilityTransaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case facilitytransaction.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case facilitytransaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case facilitytransaction.FieldInitiator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initiator", values[i])
			} else if value.Valid {
				_m.Initiator = value.String
			}
		case facilitytransaction.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field followup_request_transactions", value)
			} else if value.Valid {
				_m.followup_request_transactions = new(int)
				*_m.followup_request_transactions = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FacilityTransaction.
// This includes values selected through modifiers, order, etc.
func (_m *FacilityTransaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFollowupRequest queries the "followup_request" edge of the FacilityTransaction entity.
func (_m *FacilityTransaction) QueryFollowupRequest() *FollowupRequestQuery {
	return NewFacilityTransactionClient(_m.config).QueryFollowupRequest(_m)
}

// Update returns a builder for updating this FacilityTransaction.
// Note that you need to call FacilityTransaction.Unwrap() before calling this method if this FacilityTransaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FacilityTransaction) Update() *FacilityTransactionUpdateOne {
	return NewFacilityTransactionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FacilityTransaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FacilityTransaction) Unwrap() *FacilityTransaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FacilityTransaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FacilityTransaction) String() string {
	var builder strings.Builder
	builder.WriteString("FacilityTransaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("initiator=")
	builder.WriteString(_m.Initiator)
	builder.WriteByte(')')
	return builder.String()
}

// FacilityTransactions is a parsable slice of FacilityTransaction.
type FacilityTransactions []*FacilityTransaction
