// Code generated by ent, DO NOT EDIT.

package gcnnotice

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gcnnotice type in the database.
	Label = "gcn_notice"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDateobs holds the string denoting the dateobs field in the database.
	FieldDateobs = "dateobs"
	// FieldNoticeType holds the string denoting the notice_type field in the database.
	FieldNoticeType = "notice_type"
	// Table holds the table name of the gcnnotice in the database.
	Table = "gcn_notices"
)

// Columns holds all SQL columns for gcnnotice fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldDateobs,
	FieldNoticeType,
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
	// NoticeTypeValidator is a validator for the "notice_type" field. It is called by the builders before save.
	NoticeTypeValidator func(string) error
)

// OrderOption defines the ordering options for the GcnNotice queries.
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

// ByNoticeType orders the results by the notice_type field.
func ByNoticeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNoticeType, opts...).ToFunc()
}
