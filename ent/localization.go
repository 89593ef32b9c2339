// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sky-herald.io/herald/ent/localization"
)

// Localization is the model entity for the Localization schema.
type Localization struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Dateobs holds the value of the "dateobs" field.
	Dateobs time.Time `json:"dateobs,omitempty"`
	// LocalizationName holds the value of the "localization_name" field.
	LocalizationName string `json:"localization_name,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Derived skymap property records
	Properties   []map[string]interface{} `json:"properties,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Localization) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case localization.FieldTags, localization.FieldProperties:
			values[i] = new([]byte)
		case localization.FieldID:
			values[i] = new(sql.NullInt64)
		case localization.FieldLocalizationName:
			values[i] = new(sql.NullString)
		case localization.FieldCreatedAt, localization.FieldDateobs:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Localization fields.
func (_m *Localization) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case localization.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case localization.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case localization.FieldDateobs:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field dateobs", values[i])
			} else if value.Valid {
				_m.Dateobs = value.Time
			}
		case localization.FieldLocalizationName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field localization_name", values[i])
			} else if value.Valid {
				_m.LocalizationName = value.String
			}
		case localization.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case localization.FieldProperties:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field properties", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Properties); err != nil {
					return fmt.Errorf("unmarshal field properties: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Localization.
// This includes values selected through modifiers, order, etc.
func (_m *Localization) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Localization.
// Note that you need to call Localization.Unwrap() before calling this method if this Localization
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Localization) Update() *LocalizationUpdateOne {
	return NewLocalizationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Localization entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Localization) Unwrap() *Localization {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Localization is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Localization) String() string {
	var builder strings.Builder
	builder.WriteString("Localization(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("dateobs=")
	builder.WriteString(_m.Dateobs.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("localization_name=")
	builder.WriteString(_m.LocalizationName)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("properties=")
	builder.WriteString(fmt.Sprintf("%v", _m.Properties))
	builder.WriteByte(')')
	return builder.String()
}

// Localizations is a parsable slice of Localization.
type Localizations []*Localization
