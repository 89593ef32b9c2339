// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sky-herald.io/herald/ent/group"
	"sky-herald.io/herald/ent/groupadmissionrequest"
	"sky-herald.io/herald/ent/user"
)

// GroupAdmissionRequest is the model entity for the GroupAdmissionRequest schema.
type GroupAdmissionRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GroupAdmissionRequestQuery when eager-loading is set.
	Edges                             GroupAdmissionRequestEdges `json:"edges"`
	group_admission_request_group     *int
	group_admission_request_applicant *int
	selectValues                      sql.SelectValues
}

// GroupAdmissionRequestEdges holds the relations/edges for other nodes in the graph.
type GroupAdmissionRequestEdges struct {
	// Group holds the value of the group edge.
	Group *Group `json:"group,omitempty"`
	// Applicant holds the value of the applicant edge.
	Applicant *User `json:"applicant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// GroupOrErr returns the Group value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GroupAdmissionRequestEdges) GroupOrErr() (*Group, error) {
	if e.Group != nil {
		return e.Group, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: group.Label}
	}
	return nil, &NotLoadedError{edge: "group"}
}

// ApplicantOrErr returns the Applicant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GroupAdmissionRequestEdges) ApplicantOrErr() (*User, error) {
	if e.Applicant != nil {
		return e.Applicant, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "applicant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GroupAdmissionRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case groupadmissionrequest.FieldID:
			values[i] = new(sql.NullInt64)
		case groupadmissionrequest.FieldStatus:
			values[i] = new(sql.NullString)
		case groupadmissionrequest.FieldCreatedAt, groupadmissionrequest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case groupadmissionrequest.ForeignKeys[0]: // group_admission_request_group
			values[i] = new(sql.NullInt64)
		case groupadmissionrequest.ForeignKeys[1]: // group_admission_request_applicant
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GroupAdmissionRequest fields.
func (_m *GroupAdmissionRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case groupadmissionrequest.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case groupadmissionrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case groupadmissionrequest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case groupadmissionrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case groupadmissionrequest.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field group_admission_request_group", value)
			} else if value.Valid {
				_m.group_admission_request_group = new(int)
				*_m.group_admission_request_group = int(value.Int64)
			}
		case groupadmissionrequest.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field group_admission_request_applicant", value)
			} else if value.Valid {
				_m.group_admission_request_applicant = new(int)
				*_m.group_admission_request_applicant = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GroupAdmissionRequest.
// This includes values selected through modifiers, order, etc.
func (_m *GroupAdmissionRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGroup queries the "group" edge of the GroupAdmissionRequest entity.
func (_m *GroupAdmissionRequest) QueryGroup() *GroupQuery {
	return NewGroupAdmissionRequestClient(_m.config).QueryGroup(_m)
}

// QueryApplicant queries the "applicant" edge of the GroupAdmissionRequest entity.
func (_m *GroupAdmissionRequest) QueryApplicant() *UserQuery {
	return NewGroupAdmissionRequestClient(_m.config).QueryApplicant(_m)
}

// Update returns a builder for updating this GroupAdmissionRequest.
// Note that you need to call GroupAdmissionRequest.Unwrap() before calling this method if this GroupAdmissionRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GroupAdmissionRequest) Update() *GroupAdmissionRequestUpdateOne {
	return NewGroupAdmissionRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GroupAdmissionRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GroupAdmissionRequest) Unwrap() *GroupAdmissionRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GroupAdmissionRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GroupAdmissionRequest) String() string {
	var builder strings.Builder
	builder.WriteString("GroupAdmissionRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteByte(')')
	return builder.String()
}

// GroupAdmissionRequests is a parsable slice of GroupAdmissionRequest.
type GroupAdmissionRequests []*GroupAdmissionRequest
