// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sky-herald.io/herald/ent/gcnproperty"
)

// GcnProperty is the model entity for the GcnProperty schema.
type GcnProperty struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Dateobs holds the value of the "dateobs" field.
	Dateobs time.Time `json:"dateobs,omitempty"`
	// Numeric property values keyed by name
	Data         map[string]interface{} `json:"data,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GcnProperty) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gcnproperty.FieldData:
			values[i] = new([]byte)
		case gcnproperty.FieldID:
			values[i] = new(sql.NullInt64)
		case gcnproperty.FieldCreatedAt, gcnproperty.FieldDateobs:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GcnProperty fields.
func (_m *GcnProperty) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gcnproperty.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gcnproperty.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case gcnproperty.FieldDateobs:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field dateobs", values[i])
			} else if value.Valid {
				_m.Dateobs = value.Time
			}
		case gcnproperty.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GcnProperty.
// This includes values selected through modifiers, order, etc.
func (_m *GcnProperty) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GcnProperty.
// Note that you need to call GcnProperty.Unwrap() before calling this method if this GcnProperty
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GcnProperty) Update() *GcnPropertyUpdateOne {
	return NewGcnPropertyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GcnProperty entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GcnProperty) Unwrap() *GcnProperty {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GcnProperty is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GcnProperty) String() string {
	var builder strings.Builder
	builder.WriteString("GcnProperty(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("dateobs=")
	builder.WriteString(_m.Dateobs.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteByte(')')
	return builder.String()
}

// GcnProperties is a parsable slice of GcnProperty.
type GcnProperties []*GcnProperty
