// Code generated by ent, DO NOT EDIT.

package facilitytransaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the facilitytransaction type in the database.
	Label = "facility_transaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldInitiator holds the string denoting the initiator field in the database.
	FieldInitiator = "initiator"
	// EdgeFollowupRequest holds the string denoting the followup_request edge name in mutations.
	EdgeFollowupRequest = "followup_request"
	// Table holds the table name of the facilitytransaction in the database.
	Table = "facility_transactions"
	// FollowupRequestTable is the table that holds the followup_request relation/edge.
	FollowupRequestTable = "facility_transactions"
	// FollowupRequestInverseTable is the table name for the FollowupRequest entity.
	// It exists in this package in order to avoid circular dependency with the "followuprequest" package.
	FollowupRequestInverseTable = "followup_requests"
	// FollowupRequestColumn is the table column denoting the followup_request relation/edge.
	FollowupRequestColumn = "followup_request_transactions"
)

// Columns holds all SQL columns for facilitytransaction fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldInitiator,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "facility_transactions"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"followup_request_transactions",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// InitiatorValidator is a validator for the "initiator" field. It is called by the builders before save.
	InitiatorValidator func(string) error
)

// OrderOption defines the ordering options for the FacilityTransaction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByInitiator orders the results by the initiator field.
func ByInitiator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitiator, opts...).ToFunc()
}

// ByFollowupRequestField orders the results by followup_request field.
func ByFollowupRequestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFollowupRequestStep(), sql.OrderByField(field, opts...))
	}
}
func newFollowupRequestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FollowupRequestInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FollowupRequestTable, FollowupRequestColumn),
	)
}
