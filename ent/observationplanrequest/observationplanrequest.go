// Code generated by ent, DO NOT EDIT.

package observationplanrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the observationplanrequest type in the database.
	Label = "observation_plan_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDateobs holds the string denoting the dateobs field in the database.
	FieldDateobs = "dateobs"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// EdgeAllocation holds the string denoting the allocation edge name in mutations.
	EdgeAllocation = "allocation"
	// EdgeRequester holds the string denoting the requester edge name in mutations.
	EdgeRequester = "requester"
	// Table holds the table name of the observationplanrequest in the database.
	Table = "observation_plan_requests"
	// AllocationTable is the table that holds the allocation relation/edge.
	AllocationTable = "observation_plan_requests"
	// AllocationInverseTable is the table name for the Allocation entity.
	// It exists in this package in order to avoid circular dependency with the "allocation" package.
	AllocationInverseTable = "allocations"
	// AllocationColumn is the table column denoting the allocation relation/edge.
	AllocationColumn = "allocation_observation_plan_requests"
	// RequesterTable is the table that holds the requester relation/edge.
	RequesterTable = "observation_plan_requests"
	// RequesterInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	RequesterInverseTable = "users"
	// RequesterColumn is the table column denoting the requester relation/edge.
	RequesterColumn = "observation_plan_request_requester"
)

// Columns holds all SQL columns for observationplanrequest fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDateobs,
	FieldStatus,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "observation_plan_requests"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"allocation_observation_plan_requests",
	"observation_plan_request_requester",
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
)

// OrderOption defines the ordering options for the ObservationPlanRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDateobs orders the results by the dateobs field.
func ByDateobs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateobs, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAllocationField orders the results by allocation field.
func ByAllocationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAllocationStep(), sql.OrderByField(field, opts...))
	}
}

// ByRequesterField orders the results by requester field.
func ByRequesterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequesterStep(), sql.OrderByField(field, opts...))
	}
}
func newAllocationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AllocationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AllocationTable, AllocationColumn),
	)
}
func newRequesterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequesterInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, RequesterTable, RequesterColumn),
	)
}
