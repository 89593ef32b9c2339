// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sky-herald.io/herald/ent/objanalysis"
	"sky-herald.io/herald/ent/user"
)

// ObjAnalysis is the model entity for the ObjAnalysis schema.
type ObjAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ObjID holds the value of the "obj_id" field.
	ObjID string `json:"obj_id,omitempty"`
	// AnalysisService holds the value of the "analysis_service" field.
	AnalysisService string `json:"analysis_service,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ObjAnalysisQuery when eager-loading is set.
	Edges              ObjAnalysisEdges `json:"edges"`
	obj_analysis_owner *int
	selectValues       sql.SelectValues
}

// ObjAnalysisEdges holds the relations/edges for other nodes in the graph.
type ObjAnalysisEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ObjAnalysisEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ObjAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case objanalysis.FieldID:
			values[i] = new(sql.NullInt64)
		case objanalysis.FieldObjID, objanalysis.FieldAnalysisService, objanalysis.FieldStatus:
			values[i] = new(sql.NullString)
		case objanalysis.FieldCreatedAt, objanalysis.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case objanalysis.ForeignKeys[0]: // obj_analysis_owner
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ObjAnalysis fields.
func (_m *ObjAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case objanalysis.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case objanalysis.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case objanalysis.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case objanalysis.FieldObjID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field obj_id", values[i])
			} else if value.Valid {
				_m.ObjID = value.String
			}
		case objanalysis.FieldAnalysisService:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_service", values[i])
			} else if value.Valid {
				_m.AnalysisService = value.String
			}
		case objanalysis.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case objanalysis.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field obj_analysis_owner", value)
			} else if value.Valid {
				_m.obj_analysis_owner = new(int)
				*_m.obj_analysis_owner = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ObjAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *ObjAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the ObjAnalysis entity.
func (_m *ObjAnalysis) QueryOwner() *UserQuery {
	return NewObjAnalysisClient(_m.config).QueryOwner(_m)
}

// Update returns a builder for updating this ObjAnalysis.
// Note that you need to call ObjAnalysis.Unwrap() before calling this method if this ObjAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ObjAnalysis) Update() *ObjAnalysisUpdateOne {
	return NewObjAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ObjAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ObjAnalysis) Unwrap() *ObjAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ObjAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ObjAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("ObjAnalysis(")
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
	builder.WriteString("analysis_service=")
	builder.WriteString(_m.AnalysisService)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteByte(')')
	return builder.String()
}

// ObjAnalyses is a parsable slice of ObjAnalysis.
type ObjAnalyses []*ObjAnalysis
