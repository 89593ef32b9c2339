// Code generated by ent, DO NOT EDIT.

package classification

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the classification type in the database.
	Label = "classification"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldObjID holds the string denoting the obj_id field in the database.
	FieldObjID = "obj_id"
	// FieldClassification holds the string denoting the classification field in the database.
	FieldClassification = "classification"
	// Table holds the table name of the classification in the database.
	Table = "classifications"
)

// Columns holds all SQL columns for classification fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldObjID,
	FieldClassification,
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
	// ObjIDValidator is a validator for the "obj_id" field. It is called by the builders before save.
	ObjIDValidator func(string) error
	// ClassificationValidator is a validator for the "classification" field. It is called by the builders before save.
	ClassificationValidator func(string) error
)

// OrderOption defines the ordering options for the Classification queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByObjID orders the results by the obj_id field.
func ByObjID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjID, opts...).ToFunc()
}

// ByClassification orders the results by the classification field.
func ByClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassification, opts...).ToFunc()
}
