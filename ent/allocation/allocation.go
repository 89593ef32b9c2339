// Code generated by ent, DO NOT EDIT.

package allocation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the allocation type in the database.
	Label = "allocation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldInstrument holds the string denoting the instrument field in the database.
	FieldInstrument = "instrument"
	// EdgeGroup holds the string denoting the group edge name in mutations.
	EdgeGroup = "group"
	// EdgeFollowupRequests holds the string denoting the followup_requests edge name in mutations.
	EdgeFollowupRequests = "followup_requests"
	// EdgeObservationPlanRequests holds the string denoting the observation_plan_requests edge name in mutations.
	EdgeObservationPlanRequests = "observation_plan_requests"
	// Table holds the table name of the allocation in the database.
	Table = "allocations"
	// GroupTable is the table that holds the group relation/edge.
	GroupTable = "allocations"
	// GroupInverseTable is the table name for the Group entity.
	// It exists in this package in order to avoid circular dependency with the "group" package.
	GroupInverseTable = "groups"
	// GroupColumn is the table column denoting the group relation/edge.
	GroupColumn = "group_allocations"
	// FollowupRequestsTable is the table that holds the followup_requests relation/edge.
	FollowupRequestsTable = "followup_requests"
	// FollowupRequestsInverseTable is the table name for the FollowupRequest entity.
	// It exists in this package in order to avoid circular dependency with the "followuprequest" package.
	FollowupRequestsInverseTable = "followup_requests"
	// FollowupRequestsColumn is the table column denoting the followup_requests relation/edge.
	FollowupRequestsColumn = "allocation_followup_requests"
	// ObservationPlanRequestsTable is the table that holds the observation_plan_requests relation/edge.
	ObservationPlanRequestsTable = "observation_plan_requests"
	// ObservationPlanRequestsInverseTable is the table name for the ObservationPlanRequest entity.
	// It exists in this package in order to avoid circular dependency with the "observationplanrequest" package.
	ObservationPlanRequestsInverseTable = "observation_plan_requests"
	// ObservationPlanRequestsColumn is the table column denoting the observation_plan_requests relation/edge.
	ObservationPlanRequestsColumn = "allocation_observation_plan_requests"
)

// Columns holds all SQL columns for allocation fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldInstrument,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "allocations"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"group_allocations",
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
	// InstrumentValidator is a validator for the "instrument" field. It is called by the builders before save.
	InstrumentValidator func(string) error
)

// OrderOption defines the ordering options for the Allocation queries.
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

// ByInstrument orders the results by the instrument field.
func ByInstrument(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstrument, opts...).ToFunc()
}

// ByGroupField orders the results by group field.
func ByGroupField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGroupStep(), sql.OrderByField(field, opts...))
	}
}

// ByFollowupRequestsCount orders the results by followup_requests count.
func ByFollowupRequestsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFollowupRequestsStep(), opts...)
	}
}

// ByFollowupRequests orders the results by followup_requests terms.
func ByFollowupRequests(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFollowupRequestsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByObservationPlanRequestsCount orders the results by observation_plan_requests count.
func ByObservationPlanRequestsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newObservationPlanRequestsStep(), opts...)
	}
}

// ByObservationPlanRequests orders the results by observation_plan_requests terms.
func ByObservationPlanRequests(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newObservationPlanRequestsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newGroupStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GroupInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
	)
}
func newFollowupRequestsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FollowupRequestsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FollowupRequestsTable, FollowupRequestsColumn),
	)
}
func newObservationPlanRequestsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ObservationPlanRequestsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ObservationPlanRequestsTable, ObservationPlanRequestsColumn),
	)
}
