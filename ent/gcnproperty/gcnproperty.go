// Code generated by ent, DO NOT EDIT.

package gcnproperty

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gcnproperty type in the database.
	Label = "gcn_property"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDateobs holds the string denoting the dateobs field in the database.
	FieldDateobs = "dateobs"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// Table holds the table name of the gcnproperty in the database.
	Table = "gcn_properties"
)

// Columns holds all SQL columns for gcnproperty fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldDateobs,
	FieldData,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the GcnProperty queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDateobs orders the results by the dateobs field.
func ByDateobs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateobs, opts...).ToFunc()
}
