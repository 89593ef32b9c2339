// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sky-herald.io/herald/ent/gcntag"
)

// GcnTag is the model entity for the GcnTag schema.
type GcnTag struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Dateobs holds the value of the "dateobs" field.
	Dateobs time.Time `json:"dateobs,omitempty"`
	// Text holds the value of the "text" field.
	Text         string `json:"text,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GcnTag) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gcntag.FieldID:
			values[i] = new(sql.NullInt64)
		case gcntag.FieldText:
			values[i] = new(sql.NullString)
		case gcntag.FieldCreatedAt, gcntag.FieldDateobs:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GcnTag fields.
func (_m *GcnTag) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gcntag.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gcntag.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case gcntag.FieldDateobs:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field dateobs", values[i])
			} else if value.Valid {
				_m.Dateobs = value.Time
			}
		case gcntag.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GcnTag.
// This includes values selected through modifiers, order, etc.
func (_m *GcnTag) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GcnTag.
// Note that you need to call GcnTag.Unwrap() before calling this method if this GcnTag
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GcnTag) Update() *GcnTagUpdateOne {
	return NewGcnTagClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GcnTag entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GcnTag) Unwrap() *GcnTag {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GcnTag is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GcnTag) String() string {
	var builder strings.Builder
	builder.WriteString("GcnTag(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("dateobs=")
	builder.WriteString(_m.Dateobs.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteByte(')')
	return builder.String()
}

// GcnTags is a parsable slice of GcnTag.
type GcnTags []*GcnTag
