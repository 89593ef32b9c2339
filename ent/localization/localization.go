// Code generated by ent, DO NOT EDIT.

package localization

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the localization type in the database.
	Label = "localization"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDateobs holds the string denoting the dateobs field in the database.
	FieldDateobs = "dateobs"
	// FieldLocalizationName holds the string denoting the localization_name field in the database.
	FieldLocalizationName = "localization_name"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldProperties holds the string denoting the properties field in the database.
	FieldProperties = "properties"
	// Table holds the table name of the localization in the database.
	Table = "localizations"
)

// Columns holds all SQL columns for localization fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldDateobs,
	FieldLocalizationName,
	FieldTags,
	FieldProperties,
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
	// LocalizationNameValidator is a validator for the "localization_name" field. It is called by the builders before save.
	LocalizationNameValidator func(string) error
)

// OrderOption defines the ordering options for the Localization queries.
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

// ByLocalizationName orders the results by the localization_name field.
func ByLocalizationName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocalizationName, opts...).ToFunc()
}
