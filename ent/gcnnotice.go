// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sky-herald.io/herald/ent/gcnnotice"
)

// GcnNotice is the model entity for the GcnNotice schema.
type GcnNotice struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Trigger time identifying the parent GCN event
	Dateobs time.Time `json:"dateobs,omitempty"`
	// NoticeType holds the value of the "notice_type" field.
	NoticeType   string `json:"notice_type,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GcnNotice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gcnnotice.FieldID:
			values[i] = new(sql.NullInt64)
		case gcnnotice.FieldNoticeType:
			values[i] = new(sql.NullString)
		case gcnnotice.FieldCreatedAt, gcnnotice.FieldDateobs:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GcnNotice fields.
func (_m *GcnNotice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gcnnotice.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gcnnotice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case gcnnotice.FieldDateobs:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field dateobs", values[i])
			} else if value.Valid {
				_m.Dateobs = value.Time
			}
		case gcnnotice.FieldNoticeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notice_type", values[i])
			} else if value.Valid {
				_m.NoticeType = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GcnNotice.
// This includes values selected through modifiers, order, etc.
func (_m *GcnNotice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GcnNotice.
// Note that you need to call GcnNotice.Unwrap() before calling this method if this GcnNotice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GcnNotice) Update() *GcnNoticeUpdateOne {
	return NewGcnNoticeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GcnNotice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GcnNotice) Unwrap() *GcnNotice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GcnNotice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GcnNotice) String() string {
	var builder strings.Builder
	builder.WriteString("GcnNotice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("dateobs=")
	builder.WriteString(_m.Dateobs.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("notice_type=")
	builder.WriteString(_m.NoticeType)
	builder.WriteByte(')')
	return builder.String()
}

// GcnNotices is a parsable slice of GcnNotice.
type GcnNotices []*GcnNotice
