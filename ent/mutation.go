// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"sky-herald.io/herald/ent/allocation"
	"sky-herald.io/herald/ent/classification"
	"sky-herald.io/herald/ent/comment"
	"sky-herald.io/herald/ent/facilitytransaction"
	"sky-herald.io/herald/ent/followuprequest"
	"sky-herald.io/herald/ent/gcnnotice"
	"sky-herald.io/herald/ent/gcnproperty"
	"sky-herald.io/herald/ent/gcntag"
	"sky-herald.io/herald/ent/group"
	"sky-herald.io/herald/ent/groupadmissionrequest"
	"sky-herald.io/herald/ent/listing"
	"sky-herald.io/herald/ent/localization"
	"sky-herald.io/herald/ent/notification"
	"sky-herald.io/herald/ent/objanalysis"
	"sky-herald.io/herald/ent/observationplanrequest"
	"sky-herald.io/herald/ent/predicate"
	"sky-herald.io/herald/ent/shift"
	"sky-herald.io/herald/ent/spectrum"
	"sky-herald.io/herald/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAllocation             = "Allocation"
	TypeClassification         = "Classification"
	TypeComment                = "Comment"
	TypeFacilityTransaction    = "FacilityTransaction"
	TypeFollowupRequest        = "FollowupRequest"
	TypeGcnNotice              = "GcnNotice"
	TypeGcnProperty            = "GcnProperty"
	TypeGcnTag                 = "GcnTag"
	TypeGroup                  = "Group"
	TypeGroupAdmissionRequest  = "GroupAdmissionRequest"
	TypeListing                = "Listing"
	TypeLocalization           = "Localization"
	TypeNotification           = "Notification"
	TypeObjAnalysis            = "ObjAnalysis"
	TypeObservationPlanRequest = "ObservationPlanRequest"
	TypeShift                  = "Shift"
	TypeSpectrum               = "Spectrum"
	TypeUser                   = "User"
)

// AllocationMutation represents an operation that mutates the Allocation nodes in the graph.
type AllocationMutation struct {
	config
	op                               Op
	typ                              string
	id                               *int
	created_at                       *time.Time
	updated_at                       *time.Time
	instrument                       *string
	clearedFields                    map[string]struct{}
	group                            *int
	clearedgroup                     bool
	followup_requests                map[int]struct{}
	removedfollowup_requests         map[int]struct{}
	clearedfollowup_requests         bool
	observation_plan_requests        map[int]struct{}
	removedobservation_plan_requests map[int]struct{}
	clearedobservation_plan_requests bool
	done                             bool
	oldValue                         func(context.Context) (*Allocation, error)
	predicates                       []predicate.Allocation
}

var _ ent.Mutation = (*AllocationMutation)(nil)

// allocationOption allows management of the mutation configuration using functional options.
type allocationOption func(*AllocationMutation)

// newAllocationMutation creates new mutation for the Allocation entity.
func newAllocationMutation(c config, op Op, opts ...allocationOption) *AllocationMutation {
	m := &AllocationMutation{
		config:        c,
		op:            op,
		typ:           TypeAllocation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAllocationID sets the ID field of the mutation.
func withAllocationID(id int) allocationOption {
	return func(m *AllocationMutation) {
		var (
			err   error
			once  sync.Once
			value *Allocation
		)
		m.oldValue = func(ctx context.Context) (*Allocation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Allocation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAllocation sets the old Allocation of the mutation.
func withAllocation(node *Allocation) allocationOption {
	return func(m *AllocationMutation) {
		m.oldValue = func(context.Context) (*Allocation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AllocationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AllocationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AllocationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AllocationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Allocation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AllocationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AllocationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Allocation entity.
// If the Allocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AllocationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AllocationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AllocationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AllocationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Allocation entity.
// If the Allocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AllocationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AllocationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetInstrument sets the "instrument" field.
func (m *AllocationMutation) SetInstrument(s string) {
	m.instrument = &s
}

// Instrument returns the value of the "instrument" field in the mutation.
func (m *AllocationMutation) Instrument() (r string, exists bool) {
	v := m.instrument
	if v == nil {
		return
	}
	return *v, true
}

// OldInstrument returns the old "instrument" field's value of the Allocation entity.
// If the Allocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AllocationMutation) OldInstrument(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstrument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstrument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstrument: %w", err)
	}
	return oldValue.Instrument, nil
}

// ResetInstrument resets all changes to the "instrument" field.
func (m *AllocationMutation) ResetInstrument() {
	m.instrument = nil
}

// SetGroupID sets the "group" edge to the Group entity by id.
func (m *AllocationMutation) SetGroupID(id int) {
	m.group = &id
}

// ClearGroup clears the "group" edge to the Group entity.
func (m *AllocationMutation) ClearGroup() {
	m.clearedgroup = true
}

// GroupCleared reports if the "group" edge to the Group entity was cleared.
func (m *AllocationMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupID returns the "group" edge ID in the mutation.
func (m *AllocationMutation) GroupID() (id int, exists bool) {
	if m.group != nil {
		return *m.group, true
	}
	return
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *AllocationMutation) GroupIDs() (ids []int) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *AllocationMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// AddFollowupRequestIDs adds the "followup_requests" edge to the FollowupRequest entity by ids.
func (m *AllocationMutation) AddFollowupRequestIDs(ids ...int) {
	if m.followup_requests == nil {
		m.followup_requests = make(map[int]struct{})
	}
	for i := range ids {
		m.followup_requests[ids[i]] = struct{}{}
	}
}

// ClearFollowupRequests clears the "followup_requests" edge to the FollowupRequest entity.
func (m *AllocationMutation) ClearFollowupRequests() {
	m.clearedfollowup_requests = true
}

// FollowupRequestsCleared reports if the "followup_requests" edge to the FollowupRequest entity was cleared.
func (m *AllocationMutation) FollowupRequestsCleared() bool {
	return m.clearedfollowup_requests
}

// RemoveFollowupRequestIDs removes the "followup_requests" edge to the FollowupRequest entity by IDs.
func (m *AllocationMutation) RemoveFollowupRequestIDs(ids ...int) {
	if m.removedfollowup_requests == nil {
		m.removedfollowup_requests = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.followup_requests, ids[i])
		m.removedfollowup_requests[ids[i]] = struct{}{}
	}
}

// RemovedFollowupRequests returns the removed IDs of the "followup_requests" edge to the FollowupRequest entity.
func (m *AllocationMutation) RemovedFollowupRequestsIDs() (ids []int) {
	for id := range m.removedfollowup_requests {
		ids = append(ids, id)
	}
	return
}

// FollowupRequestsIDs returns the "followup_requests" edge IDs in the mutation.
func (m *AllocationMutation) FollowupRequestsIDs() (ids []int) {
	for id := range m.followup_requests {
		ids = append(ids, id)
	}
	return
}

// ResetFollowupRequests resets all changes to the "followup_requests" edge.
func (m *AllocationMutation) ResetFollowupRequests() {
	m.followup_requests = nil
	m.clearedfollowup_requests = false
	m.removedfollowup_requests = nil
}

// AddObservationPlanRequestIDs adds the "observation_plan_requests" edge to the ObservationPlanRequest entity by ids.
func (m *AllocationMutation) AddObservationPlanRequestIDs(ids ...int) {
	if m.observation_plan_requests == nil {
		m.observation_plan_requests = make(map[int]struct{})
	}
	for i := range ids {
		m.observation_plan_requests[ids[i]] = struct{}{}
	}
}

// ClearObservationPlanRequests clears the "observation_plan_requests" edge to the ObservationPlanRequest entity.
func (m *AllocationMutation) ClearObservationPlanRequests() {
	m.clearedobservation_plan_requests = true
}

// ObservationPlanRequestsCleared reports if the "observation_plan_requests" edge to the ObservationPlanRequest entity was cleared.
func (m *AllocationMutation) ObservationPlanRequestsCleared() bool {
	return m.clearedobservation_plan_requests
}

// RemoveObservationPlanRequestIDs removes the "observation_plan_requests" edge to the ObservationPlanRequest entity by IDs.
func (m *AllocationMutation) RemoveObservationPlanRequestIDs(ids ...int) {
	if m.removedobservation_plan_requests == nil {
		m.removedobservation_plan_requests = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.observation_plan_requests, ids[i])
		m.removedobservation_plan_requests[ids[i]] = struct{}{}
	}
}

// RemovedObservationPlanRequests returns the removed IDs of the "observation_plan_requests" edge to the ObservationPlanRequest entity.
func (m *AllocationMutation) RemovedObservationPlanRequestsIDs() (ids []int) {
	for id := range m.removedobservation_plan_requests {
		ids = append(ids, id)
	}
	return
}

// ObservationPlanRequestsIDs returns the "observation_plan_requests" edge IDs in the mutation.
func (m *AllocationMutation) ObservationPlanRequestsIDs() (ids []int) {
	for id := range m.observation_plan_requests {
		ids = append(ids, id)
	}
	return
}

// ResetObservationPlanRequests resets all changes to the "observation_plan_requests" edge.
func (m *AllocationMutation) ResetObservationPlanRequests() {
	m.observation_plan_requests = nil
	m.clearedobservation_plan_requests = false
	m.removedobservation_plan_requests = nil
}

// Where appends a list predicates to the AllocationMutation builder.
func (m *AllocationMutation) Where(ps ...predicate.Allocation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AllocationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AllocationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Allocation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AllocationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AllocationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Allocation).
func (m *AllocationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AllocationMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, allocation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, allocation.FieldUpdatedAt)
	}
	if m.instrument != nil {
		fields = append(fields, allocation.FieldInstrument)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AllocationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case allocation.FieldCreatedAt:
		return m.CreatedAt()
	case allocation.FieldUpdatedAt:
		return m.UpdatedAt()
	case allocation.FieldInstrument:
		return m.Instrument()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AllocationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case allocation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case allocation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case allocation.FieldInstrument:
		return m.OldInstrument(ctx)
	}
	return nil, fmt.Errorf("unknown Allocation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AllocationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case allocation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case allocation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case allocation.FieldInstrument:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstrument(v)
		return nil
	}
	return fmt.Errorf("unknown Allocation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AllocationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AllocationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AllocationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Allocation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AllocationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AllocationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AllocationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Allocation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AllocationMutation) ResetField(name string) error {
	switch name {
	case allocation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case allocation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case allocation.FieldInstrument:
		m.ResetInstrument()
		return nil
	}
	return fmt.Errorf("unknown Allocation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AllocationMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.group != nil {
		edges = append(edges, allocation.EdgeGroup)
	}
	if m.followup_requests != nil {
		edges = append(edges, allocation.EdgeFollowupRequests)
	}
	if m.observation_plan_requests != nil {
		edges = append(edges, allocation.EdgeObservationPlanRequests)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AllocationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case allocation.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	case allocation.EdgeFollowupRequests:
		ids := make([]ent.Value, 0, len(m.followup_requests))
		for id := range m.followup_requests {
			ids = append(ids, id)
		}
		return ids
	case allocation.EdgeObservationPlanRequests:
		ids := make([]ent.Value, 0, len(m.observation_plan_requests))
		for id := range m.observation_plan_requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AllocationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedfollowup_requests != nil {
		edges = append(edges, allocation.EdgeFollowupRequests)
	}
	if m.removedobservation_plan_requests != nil {
		edges = append(edges, allocation.EdgeObservationPlanRequests)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AllocationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case allocation.EdgeFollowupRequests:
		ids := make([]ent.Value, 0, len(m.removedfollowup_requests))
		for id := range m.removedfollowup_requests {
			ids = append(ids, id)
		}
		return ids
	case allocation.EdgeObservationPlanRequests:
		ids := make([]ent.Value, 0, len(m.removedobservation_plan_requests))
		for id := range m.removedobservation_plan_requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AllocationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedgroup {
		edges = append(edges, allocation.EdgeGroup)
	}
	if m.clearedfollowup_requests {
		edges = append(edges, allocation.EdgeFollowupRequests)
	}
	if m.clearedobservation_plan_requests {
		edges = append(edges, allocation.EdgeObservationPlanRequests)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AllocationMutation) EdgeCleared(name string) bool {
	switch name {
	case allocation.EdgeGroup:
		return m.clearedgroup
	case allocation.EdgeFollowupRequests:
		return m.clearedfollowup_requests
	case allocation.EdgeObservationPlanRequests:
		return m.clearedobservation_plan_requests
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AllocationMutation) ClearEdge(name string) error {
	switch name {
	case allocation.EdgeGroup:
		m.ClearGroup()
		return nil
	}
	return fmt.Errorf("unknown Allocation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AllocationMutation) ResetEdge(name string) error {
	switch name {
	case allocation.EdgeGroup:
		m.ResetGroup()
		return nil
	case allocation.EdgeFollowupRequests:
		m.ResetFollowupRequests()
		return nil
	case allocation.EdgeObservationPlanRequests:
		m.ResetObservationPlanRequests()
		return nil
	}
	return fmt.Errorf("unknown Allocation edge %s", name)
}

// ClassificationMutation represents an operation that mutates the Classification nodes in the graph.
type ClassificationMutation struct {
	config
	op             Op
	typ            string
	id             *int
	created_at     *time.Time
	obj_id         *string
	classification *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Classification, error)
	predicates     []predicate.Classification
}

var _ ent.Mutation = (*ClassificationMutation)(nil)

// classificationOption allows management of the mutation configuration using functional options.
type classificationOption func(*ClassificationMutation)

// newClassificationMutation creates new mutation for the Classification entity.
func newClassificationMutation(c config, op Op, opts ...classificationOption) *ClassificationMutation {
	m := &ClassificationMutation{
		config:        c,
		op:            op,
		typ:           TypeClassification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClassificationID sets the ID field of the mutation.
func withClassificationID(id int) classificationOption {
	return func(m *ClassificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Classification
		)
		m.oldValue = func(ctx context.Context) (*Classification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Classification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClassification sets the old Classification of the mutation.
func withClassification(node *Classification) classificationOption {
	return func(m *ClassificationMutation) {
		m.oldValue = func(context.Context) (*Classification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClassificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClassificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClassificationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClassificationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Classification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClassificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClassificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClassificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetObjID sets the "obj_id" field.
func (m *ClassificationMutation) SetObjID(s string) {
	m.obj_id = &s
}

// ObjID returns the value of the "obj_id" field in the mutation.
func (m *ClassificationMutation) ObjID() (r string, exists bool) {
	v := m.obj_id
	if v == nil {
		return
	}
	return *v, true
}

// OldObjID returns the old "obj_id" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldObjID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjID: %w", err)
	}
	return oldValue.ObjID, nil
}

// ResetObjID resets all changes to the "obj_id" field.
func (m *ClassificationMutation) ResetObjID() {
	m.obj_id = nil
}

// SetClassification sets the "classification" field.
func (m *ClassificationMutation) SetClassification(s string) {
	m.classification = &s
}

// Classification returns the value of the "classification" field in the mutation.
func (m *ClassificationMutation) Classification() (r string, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the Classification entity.
// If the Classification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClassificationMutation) OldClassification(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// ResetClassification resets all changes to the "classification" field.
func (m *ClassificationMutation) ResetClassification() {
	m.classification = nil
}

// Where appends a list predicates to the ClassificationMutation builder.
func (m *ClassificationMutation) Where(ps ...predicate.Classification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClassificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClassificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Classification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClassificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClassificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Classification).
func (m *ClassificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClassificationMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, classification.FieldCreatedAt)
	}
	if m.obj_id != nil {
		fields = append(fields, classification.FieldObjID)
	}
	if m.classification != nil {
		fields = append(fields, classification.FieldClassification)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClassificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case classification.FieldCreatedAt:
		return m.CreatedAt()
	case classification.FieldObjID:
		return m.ObjID()
	case classification.FieldClassification:
		return m.Classification()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClassificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case classification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case classification.FieldObjID:
		return m.OldObjID(ctx)
	case classification.FieldClassification:
		return m.OldClassification(ctx)
	}
	return nil, fmt.Errorf("unknown Classification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClassificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case classification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case classification.FieldObjID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjID(v)
		return nil
	case classification.FieldClassification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	}
	return fmt.Errorf("unknown Classification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClassificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClassificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClassificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Classification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClassificationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClassificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClassificationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Classification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClassificationMutation) ResetField(name string) error {
	switch name {
	case classification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case classification.FieldObjID:
		m.ResetObjID()
		return nil
	case classification.FieldClassification:
		m.ResetClassification()
		return nil
	}
	return fmt.Errorf("unknown Classification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClassificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClassificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClassificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClassificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClassificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClassificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClassificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Classification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClassificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Classification edge %s", name)
}

// CommentMutation represents an operation that mutates the Comment nodes in the graph.
type CommentMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	obj_id        *string
	text          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Comment, error)
	predicates    []predicate.Comment
}

var _ ent.Mutation = (*CommentMutation)(nil)

// commentOption allows management of the mutation configuration using functional options.
type commentOption func(*CommentMutation)

// newCommentMutation creates new mutation for the Comment entity.
func newCommentMutation(c config, op Op, opts ...commentOption) *CommentMutation {
	m := &CommentMutation{
		config:        c,
		op:            op,
		typ:           TypeComment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommentID sets the ID field of the mutation.
func withCommentID(id int) commentOption {
	return func(m *CommentMutation) {
		var (
			err   error
			once  sync.Once
			value *Comment
		)
		m.oldValue = func(ctx context.Context) (*Comment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Comment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComment sets the old Comment of the mutation.
func withComment(node *Comment) commentOption {
	return func(m *CommentMutation) {
		m.oldValue = func(context.Context) (*Comment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Comment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CommentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetObjID sets the "obj_id" field.
func (m *CommentMutation) SetObjID(s string) {
	m.obj_id = &s
}

// ObjID returns the value of the "obj_id" field in the mutation.
func (m *CommentMutation) ObjID() (r string, exists bool) {
	v := m.obj_id
	if v == nil {
		return
	}
	return *v, true
}

// OldObjID returns the old "obj_id" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldObjID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjID: %w", err)
	}
	return oldValue.ObjID, nil
}

// ResetObjID resets all changes to the "obj_id" field.
func (m *CommentMutation) ResetObjID() {
	m.obj_id = nil
}

// SetText sets the "text" field.
func (m *CommentMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *CommentMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *CommentMutation) ResetText() {
	m.text = nil
}

// Where appends a list predicates to the CommentMutation builder.
func (m *CommentMutation) Where(ps ...predicate.Comment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Comment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Comment).
func (m *CommentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommentMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, comment.FieldCreatedAt)
	}
	if m.obj_id != nil {
		fields = append(fields, comment.FieldObjID)
	}
	if m.text != nil {
		fields = append(fields, comment.FieldText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case comment.FieldCreatedAt:
		return m.CreatedAt()
	case comment.FieldObjID:
		return m.ObjID()
	case comment.FieldText:
		return m.Text()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case comment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case comment.FieldObjID:
		return m.OldObjID(ctx)
	case comment.FieldText:
		return m.OldText(ctx)
	}
	return nil, fmt.Errorf("unknown Comment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case comment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case comment.FieldObjID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjID(v)
		return nil
	case comment.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	}
	return fmt.Errorf("unknown Comment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Comment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Comment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommentMutation) ResetField(name string) error {
	switch name {
	case comment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case comment.FieldObjID:
		m.ResetObjID()
		return nil
	case comment.FieldText:
		m.ResetText()
		return nil
	}
	return fmt.Errorf("unknown Comment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Comment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Comment edge %s", name)
}

// FacilityTransactionMutation represents an operation that mutates the FacilityTransaction nodes in the graph.
type FacilityTransactionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	created_at              *time.Time
	initiator               *string
	clearedFields           map[string]struct{}
	followup_request        *int
	clearedfollowup_request bool
	done                    bool
	oldValue                func(context.Context) (*FacilityTransaction, error)
	predicates              []predicate.FacilityTransaction
}

var _ ent.Mutation = (*FacilityTransactionMutation)(nil)

// facilitytransactionOption allows management of the mutation configuration using functional options.
type facilitytransactionOption func(*FacilityTransactionMutation)

// newFacilityTransactionMutation creates new mutation for the FacilityTransaction entity.
func newFacilityTransactionMutation(c config, op Op, opts ...facilitytransactionOption) *FacilityTransactionMutation {
	m := &FacilityTransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeFacilityTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFacilityTransactionID sets the ID field of the mutation.
func withFacilityTransactionID(id int) facilitytransactionOption {
	return func(m *FacilityTransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *FacilityTransaction
		)
		m.oldValue = func(ctx context.Context) (*FacilityTransaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FacilityTransaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFacilityTransaction sets the old FacilityTransaction of the mutation.
func withFacilityTransaction(node *FacilityTransaction) facilitytransactionOption {
	return func(m *FacilityTransactionMutation) {
		m.oldValue = func(context.Context) (*FacilityTransaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FacilityTransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FacilityTransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FacilityTransactionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FacilityTransactionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FacilityTransaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FacilityTransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FacilityTransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FacilityTransaction entity.
// If the FacilityTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacilityTransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FacilityTransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetInitiator sets the "initiator" field.
func (m *FacilityTransactionMutation) SetInitiator(s string) {
	m.initiator = &s
}

// Initiator returns the value of the "initiator" field in the mutation.
func (m *FacilityTransactionMutation) Initiator() (r string, exists bool) {
	v := m.initiator
	if v == nil {
		return
	}
	return *v, true
}

// OldInitiator returns the old "initiator" field's value of the FacilityTransaction entity.
// If the FacilityTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacilityTransactionMutation) OldInitiator(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitiator is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitiator requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitiator: %w", err)
	}
	return oldValue.Initiator, nil
}

// ClearInitiator clears the value of the "initiator" field.
func (m *FacilityTransactionMutation) ClearInitiator() {
	m.initiator = nil
	m.clearedFields[facilitytransaction.FieldInitiator] = struct{}{}
}

// InitiatorCleared returns if the "initiator" field was cleared in this mutation.
func (m *FacilityTransactionMutation) InitiatorCleared() bool {
	_, ok := m.clearedFields[facilitytransaction.FieldInitiator]
	return ok
}

// ResetInitiator resets all changes to the "initiator" field.
func (m *FacilityTransactionMutation) ResetInitiator() {
	m.initiator = nil
	delete(m.clearedFields, facilitytransaction.FieldInitiator)
}

// SetFollowupRequestID sets the "followup_request" edge to the FollowupRequest entity by id.
func (m *FacilityTransactionMutation) SetFollowupRequestID(id int) {
	m.followup_request = &id
}

// ClearFollowupRequest clears the "followup_request" edge to the FollowupRequest entity.
func (m *FacilityTransactionMutation) ClearFollowupRequest() {
	m.clearedfollowup_request = true
}

// FollowupRequestCleared reports if the "followup_request" edge to the FollowupRequest entity was cleared.
func (m *FacilityTransactionMutation) FollowupRequestCleared() bool {
	return m.clearedfollowup_request
}

// FollowupRequestID returns the "followup_request" edge ID in the mutation.
func (m *FacilityTransactionMutation) FollowupRequestID() (id int, exists bool) {
	if m.followup_request != nil {
		return *m.followup_request, true
	}
	return
}

// FollowupRequestIDs returns the "followup_request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FollowupRequestID instead. It exists only for internal usage by the builders.
func (m *FacilityTransactionMutation) FollowupRequestIDs() (ids []int) {
	if id := m.followup_request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFollowupRequest resets all changes to the "followup_request" edge.
func (m *FacilityTransactionMutation) ResetFollowupRequest() {
	m.followup_request = nil
	m.clearedfollowup_request = false
}

// Where appends a list predicates to the FacilityTransactionMutation builder.
func (m *FacilityTransactionMutation) Where(ps ...predicate.FacilityTransaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FacilityTransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FacilityTransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FacilityTransaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FacilityTransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FacilityTransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FacilityTransaction).
func (m *FacilityTransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FacilityTransactionMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.created_at != nil {
		fields = append(fields, facilitytransaction.FieldCreatedAt)
	}
	if m.initiator != nil {
		fields = append(fields, facilitytransaction.FieldInitiator)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FacilityTransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case facilitytransaction.FieldCreatedAt:
		return m.CreatedAt()
	case facilitytransaction.FieldInitiator:
		return m.Initiator()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FacilityTransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case facilitytransaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case facilitytransaction.FieldInitiator:
		return m.OldInitiator(ctx)
	}
	return nil, fmt.Errorf("unknown FacilityTransaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FacilityTransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case facilitytransaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case facilitytransaction.FieldInitiator:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitiator(v)
		return nil
	}
	return fmt.Errorf("unknown FacilityTransaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FacilityTransactionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FacilityTransactionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FacilityTransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FacilityTransaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FacilityTransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(facilitytransaction.FieldInitiator) {
		fields = append(fields, facilitytransaction.FieldInitiator)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FacilityTransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FacilityTransactionMutation) ClearField(name string) error {
	switch name {
	case facilitytransaction.FieldInitiator:
		m.ClearInitiator()
		return nil
	}
	return fmt.Errorf("unknown FacilityTransaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FacilityTransactionMutation) ResetField(name string) error {
	switch name {
	case facilitytransaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case facilitytransaction.FieldInitiator:
		m.ResetInitiator()
		return nil
	}
	return fmt.Errorf("unknown FacilityTransaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FacilityTransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.followup_request != nil {
		edges = append(edges, facilitytransaction.EdgeFollowupRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FacilityTransactionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case facilitytransaction.EdgeFollowupRequest:
		if id := m.followup_request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FacilityTransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FacilityTransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FacilityTransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfollowup_request {
		edges = append(edges, facilitytransaction.EdgeFollowupRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FacilityTransactionMutation) EdgeCleared(name string) bool {
	switch name {
	case facilitytransaction.EdgeFollowupRequest:
		return m.clearedfollowup_request
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FacilityTransactionMutation) ClearEdge(name string) error {
	switch name {
	case facilitytransaction.EdgeFollowupRequest:
		m.ClearFollowupRequest()
		return nil
	}
	return fmt.Errorf("unknown FacilityTransaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FacilityTransactionMutation) ResetEdge(name string) error {
	switch name {
	case facilitytransaction.EdgeFollowupRequest:
		m.ResetFollowupRequest()
		return nil
	}
	return fmt.Errorf("unknown FacilityTransaction edge %s", name)
}

// FollowupRequestMutation represents an operation that mutates the FollowupRequest nodes in the graph.
type FollowupRequestMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	created_at          *time.Time
	updated_at          *time.Time
	obj_id              *string
	status              *string
	clearedFields       map[string]struct{}
	allocation          *int
	clearedallocation   bool
	requester           *int
	clearedrequester    bool
	transactions        map[int]struct{}
	removedtransactions map[int]struct{}
	clearedtransactions bool
	done                bool
	oldValue            func(context.Context) (*FollowupRequest, error)
	predicates          []predicate.FollowupRequest
}

var _ ent.Mutation = (*FollowupRequestMutation)(nil)

// followuprequestOption allows management of the mutation configuration using functional options.
type followuprequestOption func(*FollowupRequestMutation)

// newFollowupRequestMutation creates new mutation for the FollowupRequest entity.
func newFollowupRequestMutation(c config, op Op, opts ...followuprequestOption) *FollowupRequestMutation {
	m := &FollowupRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeFollowupRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFollowupRequestID sets the ID field of the mutation.
func withFollowupRequestID(id int) followuprequestOption {
	return func(m *FollowupRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *FollowupRequest
		)
		m.oldValue = func(ctx context.Context) (*FollowupRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FollowupRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFollowupRequest sets the old FollowupRequest of the mutation.
func withFollowupRequest(node *FollowupRequest) followuprequestOption {
	return func(m *FollowupRequestMutation) {
		m.oldValue = func(context.Context) (*FollowupRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FollowupRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FollowupRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FollowupRequestMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FollowupRequestMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FollowupRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FollowupRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FollowupRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FollowupRequest entity.
// If the FollowupRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FollowupRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FollowupRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FollowupRequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FollowupRequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FollowupRequest entity.
// If the FollowupRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FollowupRequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FollowupRequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetObjID sets the "obj_id" field.
func (m *FollowupRequestMutation) SetObjID(s string) {
	m.obj_id = &s
}

// ObjID returns the value of the "obj_id" field in the mutation.
func (m *FollowupRequestMutation) ObjID() (r string, exists bool) {
	v := m.obj_id
	if v == nil {
		return
	}
	return *v, true
}

// OldObjID returns the old "obj_id" field's value of the FollowupRequest entity.
// If the FollowupRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FollowupRequestMutation) OldObjID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjID: %w", err)
	}
	return oldValue.ObjID, nil
}

// ResetObjID resets all changes to the "obj_id" field.
func (m *FollowupRequestMutation) ResetObjID() {
	m.obj_id = nil
}

// SetStatus sets the "status" field.
func (m *FollowupRequestMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *FollowupRequestMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FollowupRequest entity.
// If the FollowupRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FollowupRequestMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FollowupRequestMutation) ResetStatus() {
	m.status = nil
}

// SetAllocationID sets the "allocation" edge to the Allocation entity by id.
func (m *FollowupRequestMutation) SetAllocationID(id int) {
	m.allocation = &id
}

// ClearAllocation clears the "allocation" edge to the Allocation entity.
func (m *FollowupRequestMutation) ClearAllocation() {
	m.clearedallocation = true
}

// AllocationCleared reports if the "allocation" edge to the Allocation entity was cleared.
func (m *FollowupRequestMutation) AllocationCleared() bool {
	return m.clearedallocation
}

// AllocationID returns the "allocation" edge ID in the mutation.
func (m *FollowupRequestMutation) AllocationID() (id int, exists bool) {
	if m.allocation != nil {
		return *m.allocation, true
	}
	return
}

// AllocationIDs returns the "allocation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AllocationID instead. It exists only for internal usage by the builders.
func (m *FollowupRequestMutation) AllocationIDs() (ids []int) {
	if id := m.allocation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAllocation resets all changes to the "allocation" edge.
func (m *FollowupRequestMutation) ResetAllocation() {
	m.allocation = nil
	m.clearedallocation = false
}

// SetRequesterID sets the "requester" edge to the User entity by id.
func (m *FollowupRequestMutation) SetRequesterID(id int) {
	m.requester = &id
}

// ClearRequester clears the "requester" edge to the User entity.
func (m *FollowupRequestMutation) ClearRequester() {
	m.clearedrequester = true
}

// RequesterCleared reports if the "requester" edge to the User entity was cleared.
func (m *FollowupRequestMutation) RequesterCleared() bool {
	return m.clearedrequester
}

// RequesterID returns the "requester" edge ID in the mutation.
func (m *FollowupRequestMutation) RequesterID() (id int, exists bool) {
	if m.requester != nil {
		return *m.requester, true
	}
	return
}

// RequesterIDs returns the "requester" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequesterID instead. It exists only for internal usage by the builders.
func (m *FollowupRequestMutation) RequesterIDs() (ids []int) {
	if id := m.requester; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequester resets all changes to the "requester" edge.
func (m *FollowupRequestMutation) ResetRequester() {
	m.requester = nil
	m.clearedrequester = false
}

// AddTransactionIDs adds the "transactions" edge to the FacilityTransaction entity by ids.
func (m *FollowupRequestMutation) AddTransactionIDs(ids ...int) {
	if m.transactions == nil {
		m.transactions = make(map[int]struct{})
	}
	for i := range ids {
		m.transactions[ids[i]] = struct{}{}
	}
}

// ClearTransactions clears the "transactions" edge to the FacilityTransaction entity.
func (m *FollowupRequestMutation) ClearTransactions() {
	m.clearedtransactions = true
}

// TransactionsCleared reports if the "transactions" edge to the FacilityTransaction entity was cleared.
func (m *FollowupRequestMutation) TransactionsCleared() bool {
	return m.clearedtransactions
}

// RemoveTransactionIDs removes the "transactions" edge to the FacilityTransaction entity by IDs.
func (m *FollowupRequestMutation) RemoveTransactionIDs(ids ...int) {
	if m.removedtransactions == nil {
		m.removedtransactions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.transactions, ids[i])
		m.removedtransactions[ids[i]] = struct{}{}
	}
}

// RemovedTransactions returns the removed IDs of the "transactions" edge to the FacilityTransaction entity.
func (m *FollowupRequestMutation) RemovedTransactionsIDs() (ids []int) {
	for id := range m.removedtransactions {
		ids = append(ids, id)
	}
	return
}

// TransactionsIDs returns the "transactions" edge IDs in the mutation.
func (m *FollowupRequestMutation) TransactionsIDs() (ids []int) {
	for id := range m.transactions {
		ids = append(ids, id)
	}
	return
}

// ResetTransactions resets all changes to the "transactions" edge.
func (m *FollowupRequestMutation) ResetTransactions() {
	m.transactions = nil
	m.clearedtransactions = false
	m.removedtransactions = nil
}

// Where appends a list predicates to the FollowupRequestMutation builder.
func (m *FollowupRequestMutation) Where(ps ...predicate.FollowupRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FollowupRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FollowupRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FollowupRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FollowupRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FollowupRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FollowupRequest).
func (m *FollowupRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FollowupRequestMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, followuprequest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, followuprequest.FieldUpdatedAt)
	}
	if m.obj_id != nil {
		fields = append(fields, followuprequest.FieldObjID)
	}
	if m.status != nil {
		fields = append(fields, followuprequest.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FollowupRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case followuprequest.FieldCreatedAt:
		return m.CreatedAt()
	case followuprequest.FieldUpdatedAt:
		return m.UpdatedAt()
	case followuprequest.FieldObjID:
		return m.ObjID()
	case followuprequest.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FollowupRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case followuprequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case followuprequest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case followuprequest.FieldObjID:
		return m.OldObjID(ctx)
	case followuprequest.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown FollowupRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FollowupRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case followuprequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case followuprequest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case followuprequest.FieldObjID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjID(v)
		return nil
	case followuprequest.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown FollowupRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FollowupRequestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FollowupRequestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FollowupRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FollowupRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FollowupRequestMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FollowupRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FollowupRequestMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FollowupRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FollowupRequestMutation) ResetField(name string) error {
	switch name {
	case followuprequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case followuprequest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case followuprequest.FieldObjID:
		m.ResetObjID()
		return nil
	case followuprequest.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown FollowupRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FollowupRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.allocation != nil {
		edges = append(edges, followuprequest.EdgeAllocation)
	}
	if m.requester != nil {
		edges = append(edges, followuprequest.EdgeRequester)
	}
	if m.transactions != nil {
		edges = append(edges, followuprequest.EdgeTransactions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FollowupRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case followuprequest.EdgeAllocation:
		if id := m.allocation; id != nil {
			return []ent.Value{*id}
		}
	case followuprequest.EdgeRequester:
		if id := m.requester; id != nil {
			return []ent.Value{*id}
		}
	case followuprequest.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.transactions))
		for id := range m.transactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FollowupRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtransactions != nil {
		edges = append(edges, followuprequest.EdgeTransactions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FollowupRequestMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case followuprequest.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.removedtransactions))
		for id := range m.removedtransactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FollowupRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedallocation {
		edges = append(edges, followuprequest.EdgeAllocation)
	}
	if m.clearedrequester {
		edges = append(edges, followuprequest.EdgeRequester)
	}
	if m.clearedtransactions {
		edges = append(edges, followuprequest.EdgeTransactions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FollowupRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case followuprequest.EdgeAllocation:
		return m.clearedallocation
	case followuprequest.EdgeRequester:
		return m.clearedrequester
	case followuprequest.EdgeTransactions:
		return m.clearedtransactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FollowupRequestMutation) ClearEdge(name string) error {
	switch name {
	case followuprequest.EdgeAllocation:
		m.ClearAllocation()
		return nil
	case followuprequest.EdgeRequester:
		m.ClearRequester()
		return nil
	}
	return fmt.Errorf("unknown FollowupRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FollowupRequestMutation) ResetEdge(name string) error {
	switch name {
	case followuprequest.EdgeAllocation:
		m.ResetAllocation()
		return nil
	case followuprequest.EdgeRequester:
		m.ResetRequester()
		return nil
	case followuprequest.EdgeTransactions:
		m.ResetTransactions()
		return nil
	}
	return fmt.Errorf("unknown FollowupRequest edge %s", name)
}

// GcnNoticeMutation represents an operation that mutates the GcnNotice nodes in the graph.
type GcnNoticeMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	dateobs       *time.Time
	notice_type   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GcnNotice, error)
	predicates    []predicate.GcnNotice
}

var _ ent.Mutation = (*GcnNoticeMutation)(nil)

// gcnnoticeOption allows management of the mutation configuration using functional options.
type gcnnoticeOption func(*GcnNoticeMutation)

// newGcnNoticeMutation creates new mutation for the GcnNotice entity.
func newGcnNoticeMutation(c config, op Op, opts ...gcnnoticeOption) *GcnNoticeMutation {
	m := &GcnNoticeMutation{
		config:        c,
		op:            op,
		typ:           TypeGcnNotice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGcnNoticeID sets the ID field of the mutation.
func withGcnNoticeID(id int) gcnnoticeOption {
	return func(m *GcnNoticeMutation) {
		var (
			err   error
			once  sync.Once
			value *GcnNotice
		)
		m.oldValue = func(ctx context.Context) (*GcnNotice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GcnNotice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGcnNotice sets the old GcnNotice of the mutation.
func withGcnNotice(node *GcnNotice) gcnnoticeOption {
	return func(m *GcnNoticeMutation) {
		m.oldValue = func(context.Context) (*GcnNotice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GcnNoticeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GcnNoticeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GcnNoticeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GcnNoticeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GcnNotice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *GcnNoticeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GcnNoticeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GcnNotice entity.
// If the GcnNotice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GcnNoticeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GcnNoticeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDateobs sets the "dateobs" field.
func (m *GcnNoticeMutation) SetDateobs(t time.Time) {
	m.dateobs = &t
}

// Dateobs returns the value of the "dateobs" field in the mutation.
func (m *GcnNoticeMutation) Dateobs() (r time.Time, exists bool) {
	v := m.dateobs
	if v == nil {
		return
	}
	return *v, true
}

// OldDateobs returns the old "dateobs" field's value of the GcnNotice entity.
// If the GcnNotice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GcnNoticeMutation) OldDateobs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateobs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateobs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateobs: %w", err)
	}
	return oldValue.Dateobs, nil
}

// ResetDateobs resets all changes to the "dateobs" field.
func (m *GcnNoticeMutation) ResetDateobs() {
	m.dateobs = nil
}

// SetNoticeType sets the "notice_type" field.
func (m *GcnNoticeMutation) SetNoticeType(s string) {
	m.notice_type = &s
}

// NoticeType returns the value of the "notice_type" field in the mutation.
func (m *GcnNoticeMutation) NoticeType() (r string, exists bool) {
	v := m.notice_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNoticeType returns the old "notice_type" field's value of the GcnNotice entity.
// If the GcnNotice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GcnNoticeMutation) OldNoticeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNoticeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNoticeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNoticeType: %w", err)
	}
	return oldValue.NoticeType, nil
}

// ClearNoticeType clears the value of the "notice_type" field.
func (m *GcnNoticeMutation) ClearNoticeType() {
	m.notice_type = nil
	m.clearedFields[gcnnotice.FieldNoticeType] = struct{}{}
}

// NoticeTypeCleared returns if the "notice_type" field was cleared in this mutation.
func (m *GcnNoticeMutation) NoticeTypeCleared() bool {
	_, ok := m.clearedFields[gcnnotice.FieldNoticeType]
	return ok
}

// ResetNoticeType resets all changes to the "notice_type" field.
func (m *GcnNoticeMutation) ResetNoticeType() {
	m.notice_type = nil
	delete(m.clearedFields, gcnnotice.FieldNoticeType)
}

// Where appends a list predicates to the GcnNoticeMutation builder.
func (m *GcnNoticeMutation) Where(ps ...predicate.GcnNotice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GcnNoticeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GcnNoticeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GcnNotice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GcnNoticeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GcnNoticeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GcnNotice).
func (m *GcnNoticeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GcnNoticeMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, gcnnotice.FieldCreatedAt)
	}
	if m.dateobs != nil {
		fields = append(fields, gcnnotice.FieldDateobs)
	}
	if m.notice_type != nil {
		fields = append(fields, gcnnotice.FieldNoticeType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GcnNoticeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gcnnotice.FieldCreatedAt:
		return m.CreatedAt()
	case gcnnotice.FieldDateobs:
		return m.Dateobs()
	case gcnnotice.FieldNoticeType:
		return m.NoticeType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GcnNoticeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gcnnotice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case gcnnotice.FieldDateobs:
		return m.OldDateobs(ctx)
	case gcnnotice.FieldNoticeType:
		return m.OldNoticeType(ctx)
	}
	return nil, fmt.Errorf("unknown GcnNotice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GcnNoticeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gcnnotice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case gcnnotice.FieldDateobs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateobs(v)
		return nil
	case gcnnotice.FieldNoticeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNoticeType(v)
		return nil
	}
	return fmt.Errorf("unknown GcnNotice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GcnNoticeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GcnNoticeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GcnNoticeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GcnNotice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GcnNoticeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gcnnotice.FieldNoticeType) {
		fields = append(fields, gcnnotice.FieldNoticeType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GcnNoticeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GcnNoticeMutation) ClearField(name string) error {
	switch name {
	case gcnnotice.FieldNoticeType:
		m.ClearNoticeType()
		return nil
	}
	return fmt.Errorf("unknown GcnNotice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GcnNoticeMutation) ResetField(name string) error {
	switch name {
	case gcnnotice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case gcnnotice.FieldDateobs:
		m.ResetDateobs()
		return nil
	case gcnnotice.FieldNoticeType:
		m.ResetNoticeType()
		return nil
	}
	return fmt.Errorf("unknown GcnNotice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GcnNoticeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GcnNoticeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GcnNoticeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GcnNoticeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GcnNoticeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GcnNoticeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GcnNoticeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GcnNotice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GcnNoticeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GcnNotice edge %s", name)
}

// GcnPropertyMutation represents an operation that mutates the GcnProperty nodes in the graph.
type GcnPropertyMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	dateobs       *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GcnProperty, error)
	predicates    []predicate.GcnProperty
}

var _ ent.Mutation = (*GcnPropertyMutation)(nil)

// gcnpropertyOption allows management of the mutation configuration using functional options.
type gcnpropertyOption func(*GcnPropertyMutation)

// newGcnPropertyMutation creates new mutation for the GcnProperty entity.
func newGcnPropertyMutation(c config, op Op, opts ...gcnpropertyOption) *GcnPropertyMutation {
	m := &GcnPropertyMutation{
		config:        c,
		op:            op,
		typ:           TypeGcnProperty,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGcnPropertyID sets the ID field of the mutation.
func withGcnPropertyID(id int) gcnpropertyOption {
	return func(m *GcnPropertyMutation) {
		var (
			err   error
			once  sync.Once
			value *GcnProperty
		)
		m.oldValue = func(ctx context.Context) (*GcnProperty, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GcnProperty.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGcnProperty sets the old GcnProperty of the mutation.
func withGcnProperty(node *GcnProperty) gcnpropertyOption {
	return func(m *GcnPropertyMutation) {
		m.oldValue = func(context.Context) (*GcnProperty, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GcnPropertyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GcnPropertyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GcnPropertyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GcnPropertyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GcnProperty.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *GcnPropertyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GcnPropertyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GcnProperty entity.
// If the GcnProperty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GcnPropertyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GcnPropertyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDateobs sets the "dateobs" field.
func (m *GcnPropertyMutation) SetDateobs(t time.Time) {
	m.dateobs = &t
}

// Dateobs returns the value of the "dateobs" field in the mutation.
func (m *GcnPropertyMutation) Dateobs() (r time.Time, exists bool) {
	v := m.dateobs
	if v == nil {
		return
	}
	return *v, true
}

// OldDateobs returns the old "dateobs" field's value of the GcnProperty entity.
// If the GcnProperty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GcnPropertyMutation) OldDateobs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateobs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateobs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateobs: %w", err)
	}
	return oldValue.Dateobs, nil
}

// ResetDateobs resets all changes to the "dateobs" field.
func (m *GcnPropertyMutation) ResetDateobs() {
	m.dateobs = nil
}

// SetData sets the "data" field.
func (m *GcnPropertyMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *GcnPropertyMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the GcnProperty entity.
// If the GcnProperty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GcnPropertyMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *GcnPropertyMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the GcnPropertyMutation builder.
func (m *GcnPropertyMutation) Where(ps ...predicate.GcnProperty) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GcnPropertyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GcnPropertyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GcnProperty, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GcnPropertyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GcnPropertyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GcnProperty).
func (m *GcnPropertyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GcnPropertyMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, gcnproperty.FieldCreatedAt)
	}
	if m.dateobs != nil {
		fields = append(fields, gcnproperty.FieldDateobs)
	}
	if m.data != nil {
		fields = append(fields, gcnproperty.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GcnPropertyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gcnproperty.FieldCreatedAt:
		return m.CreatedAt()
	case gcnproperty.FieldDateobs:
		return m.Dateobs()
	case gcnproperty.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GcnPropertyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gcnproperty.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case gcnproperty.FieldDateobs:
		return m.OldDateobs(ctx)
	case gcnproperty.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown GcnProperty field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GcnPropertyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gcnproperty.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case gcnproperty.FieldDateobs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateobs(v)
		return nil
	case gcnproperty.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown GcnProperty field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GcnPropertyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GcnPropertyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GcnPropertyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GcnProperty numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GcnPropertyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GcnPropertyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GcnPropertyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GcnProperty nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GcnPropertyMutation) ResetField(name string) error {
	switch name {
	case gcnproperty.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case gcnproperty.FieldDateobs:
		m.ResetDateobs()
		return nil
	case gcnproperty.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown GcnProperty field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GcnPropertyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GcnPropertyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GcnPropertyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GcnPropertyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GcnPropertyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GcnPropertyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GcnPropertyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GcnProperty unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GcnPropertyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GcnProperty edge %s", name)
}

// GcnTagMutation represents an operation that mutates the GcnTag nodes in the graph.
type GcnTagMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	dateobs       *time.Time
	text          *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GcnTag, error)
	predicates    []predicate.GcnTag
}

var _ ent.Mutation = (*GcnTagMutation)(nil)

// gcntagOption allows management of the mutation configuration using functional options.
type gcntagOption func(*GcnTagMutation)

// newGcnTagMutation creates new mutation for the GcnTag entity.
func newGcnTagMutation(c config, op Op, opts ...gcntagOption) *GcnTagMutation {
	m := &GcnTagMutation{
		config:        c,
		op:            op,
		typ:           TypeGcnTag,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGcnTagID sets the ID field of the mutation.
func withGcnTagID(id int) gcntagOption {
	return func(m *GcnTagMutation) {
		var (
			err   error
			once  sync.Once
			value *GcnTag
		)
		m.oldValue = func(ctx context.Context) (*GcnTag, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GcnTag.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGcnTag sets the old GcnTag of the mutation.
func withGcnTag(node *GcnTag) gcntagOption {
	return func(m *GcnTagMutation) {
		m.oldValue = func(context.Context) (*GcnTag, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GcnTagMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GcnTagMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GcnTagMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GcnTagMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GcnTag.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *GcnTagMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GcnTagMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GcnTag entity.
// If the GcnTag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GcnTagMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GcnTagMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDateobs sets the "dateobs" field.
func (m *GcnTagMutation) SetDateobs(t time.Time) {
	m.dateobs = &t
}

// Dateobs returns the value of the "dateobs" field in the mutation.
func (m *GcnTagMutation) Dateobs() (r time.Time, exists bool) {
	v := m.dateobs
	if v == nil {
		return
	}
	return *v, true
}

// OldDateobs returns the old "dateobs" field's value of the GcnTag entity.
// If the GcnTag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GcnTagMutation) OldDateobs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateobs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateobs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateobs: %w", err)
	}
	return oldValue.Dateobs, nil
}

// ResetDateobs resets all changes to the "dateobs" field.
func (m *GcnTagMutation) ResetDateobs() {
	m.dateobs = nil
}

// SetText sets the "text" field.
func (m *GcnTagMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *GcnTagMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the GcnTag entity.
// If the GcnTag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GcnTagMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *GcnTagMutation) ResetText() {
	m.text = nil
}

// Where appends a list predicates to the GcnTagMutation builder.
func (m *GcnTagMutation) Where(ps ...predicate.GcnTag) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GcnTagMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GcnTagMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GcnTag, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GcnTagMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GcnTagMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GcnTag).
func (m *GcnTagMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GcnTagMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, gcntag.FieldCreatedAt)
	}
	if m.dateobs != nil {
		fields = append(fields, gcntag.FieldDateobs)
	}
	if m.text != nil {
		fields = append(fields, gcntag.FieldText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GcnTagMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gcntag.FieldCreatedAt:
		return m.CreatedAt()
	case gcntag.FieldDateobs:
		return m.Dateobs()
	case gcntag.FieldText:
		return m.Text()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GcnTagMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gcntag.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case gcntag.FieldDateobs:
		return m.OldDateobs(ctx)
	case gcntag.FieldText:
		return m.OldText(ctx)
	}
	return nil, fmt.Errorf("unknown GcnTag field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GcnTagMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gcntag.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case gcntag.FieldDateobs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateobs(v)
		return nil
	case gcntag.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	}
	return fmt.Errorf("unknown GcnTag field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GcnTagMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GcnTagMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GcnTagMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GcnTag numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GcnTagMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GcnTagMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GcnTagMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GcnTag nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GcnTagMutation) ResetField(name string) error {
	switch name {
	case gcntag.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case gcntag.FieldDateobs:
		m.ResetDateobs()
		return nil
	case gcntag.FieldText:
		m.ResetText()
		return nil
	}
	return fmt.Errorf("unknown GcnTag field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GcnTagMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GcnTagMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GcnTagMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GcnTagMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GcnTagMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GcnTagMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GcnTagMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GcnTag unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GcnTagMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GcnTag edge %s", name)
}

// GroupMutation represents an operation that mutates the Group nodes in the graph.
type GroupMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	created_at         *time.Time
	updated_at         *time.Time
	name               *string
	clearedFields      map[string]struct{}
	users              map[int]struct{}
	removedusers       map[int]struct{}
	clearedusers       bool
	admins             map[int]struct{}
	removedadmins      map[int]struct{}
	clearedadmins      bool
	allocations        map[int]struct{}
	removedallocations map[int]struct{}
	clearedallocations bool
	done               bool
	oldValue           func(context.Context) (*Group, error)
	predicates         []predicate.Group
}

var _ ent.Mutation = (*GroupMutation)(nil)

// groupOption allows management of the mutation configuration using functional options.
type groupOption func(*GroupMutation)

// newGroupMutation creates new mutation for the Group entity.
func newGroupMutation(c config, op Op, opts ...groupOption) *GroupMutation {
	m := &GroupMutation{
		config:        c,
		op:            op,
		typ:           TypeGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupID sets the ID field of the mutation.
func withGroupID(id int) groupOption {
	return func(m *GroupMutation) {
		var (
			err   error
			once  sync.Once
			value *Group
		)
		m.oldValue = func(ctx context.Context) (*Group, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Group.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroup sets the old Group of the mutation.
func withGroup(node *Group) groupOption {
	return func(m *GroupMutation) {
		m.oldValue = func(context.Context) (*Group, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Group.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *GroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GroupMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GroupMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GroupMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *GroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *GroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *GroupMutation) ResetName() {
	m.name = nil
}

// AddUserIDs adds the "users" edge to the User entity by ids.
func (m *GroupMutation) AddUserIDs(ids ...int) {
	if m.users == nil {
		m.users = make(map[int]struct{})
	}
	for i := range ids {
		m.users[ids[i]] = struct{}{}
	}
}

// ClearUsers clears the "users" edge to the User entity.
func (m *GroupMutation) ClearUsers() {
	m.clearedusers = true
}

// UsersCleared reports if the "users" edge to the User entity was cleared.
func (m *GroupMutation) UsersCleared() bool {
	return m.clearedusers
}

// RemoveUserIDs removes the "users" edge to the User entity by IDs.
func (m *GroupMutation) RemoveUserIDs(ids ...int) {
	if m.removedusers == nil {
		m.removedusers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.users, ids[i])
		m.removedusers[ids[i]] = struct{}{}
	}
}

// RemovedUsers returns the removed IDs of the "users" edge to the User entity.
func (m *GroupMutation) RemovedUsersIDs() (ids []int) {
	for id := range m.removedusers {
		ids = append(ids, id)
	}
	return
}

// UsersIDs returns the "users" edge IDs in the mutation.
func (m *GroupMutation) UsersIDs() (ids []int) {
	for id := range m.users {
		ids = append(ids, id)
	}
	return
}

// ResetUsers resets all changes to the "users" edge.
func (m *GroupMutation) ResetUsers() {
	m.users = nil
	m.clearedusers = false
	m.removedusers = nil
}

// AddAdminIDs adds the "admins" edge to the User entity by ids.
func (m *GroupMutation) AddAdminIDs(ids ...int) {
	if m.admins == nil {
		m.admins = make(map[int]struct{})
	}
	for i := range ids {
		m.admins[ids[i]] = struct{}{}
	}
}

// ClearAdmins clears the "admins" edge to the User entity.
func (m *GroupMutation) ClearAdmins() {
	m.clearedadmins = true
}

// AdminsCleared reports if the "admins" edge to the User entity was cleared.
func (m *GroupMutation) AdminsCleared() bool {
	return m.clearedadmins
}

// RemoveAdminIDs removes the "admins" edge to the User entity by IDs.
func (m *GroupMutation) RemoveAdminIDs(ids ...int) {
	if m.removedadmins == nil {
		m.removedadmins = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.admins, ids[i])
		m.removedadmins[ids[i]] = struct{}{}
	}
}

// RemovedAdmins returns the removed IDs of the "admins" edge to the User entity.
func (m *GroupMutation) RemovedAdminsIDs() (ids []int) {
	for id := range m.removedadmins {
		ids = append(ids, id)
	}
	return
}

// AdminsIDs returns the "admins" edge IDs in the mutation.
func (m *GroupMutation) AdminsIDs() (ids []int) {
	for id := range m.admins {
		ids = append(ids, id)
	}
	return
}

// ResetAdmins resets all changes to the "admins" edge.
func (m *GroupMutation) ResetAdmins() {
	m.admins = nil
	m.clearedadmins = false
	m.removedadmins = nil
}

// AddAllocationIDs adds the "allocations" edge to the Allocation entity by ids.
func (m *GroupMutation) AddAllocationIDs(ids ...int) {
	if m.allocations == nil {
		m.allocations = make(map[int]struct{})
	}
	for i := range ids {
		m.allocations[ids[i]] = struct{}{}
	}
}

// ClearAllocations clears the "allocations" edge to the Allocation entity.
func (m *GroupMutation) ClearAllocations() {
	m.clearedallocations = true
}

// AllocationsCleared reports if the "allocations" edge to the Allocation entity was cleared.
func (m *GroupMutation) AllocationsCleared() bool {
	return m.clearedallocations
}

// RemoveAllocationIDs removes the "allocations" edge to the Allocation entity by IDs.
func (m *GroupMutation) RemoveAllocationIDs(ids ...int) {
	if m.removedallocations == nil {
		m.removedallocations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.allocations, ids[i])
		m.removedallocations[ids[i]] = struct{}{}
	}
}

// RemovedAllocations returns the removed IDs of the "allocations" edge to the Allocation entity.
func (m *GroupMutation) RemovedAllocationsIDs() (ids []int) {
	for id := range m.removedallocations {
		ids = append(ids, id)
	}
	return
}

// AllocationsIDs returns the "allocations" edge IDs in the mutation.
func (m *GroupMutation) AllocationsIDs() (ids []int) {
	for id := range m.allocations {
		ids = append(ids, id)
	}
	return
}

// ResetAllocations resets all changes to the "allocations" edge.
func (m *GroupMutation) ResetAllocations() {
	m.allocations = nil
	m.clearedallocations = false
	m.removedallocations = nil
}

// Where appends a list predicates to the GroupMutation builder.
func (m *GroupMutation) Where(ps ...predicate.Group) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Group, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Group).
func (m *GroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, group.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, group.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, group.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case group.FieldCreatedAt:
		return m.CreatedAt()
	case group.FieldUpdatedAt:
		return m.UpdatedAt()
	case group.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case group.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case group.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case group.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Group field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case group.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case group.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case group.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Group numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Group nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupMutation) ResetField(name string) error {
	switch name {
	case group.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case group.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case group.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.users != nil {
		edges = append(edges, group.EdgeUsers)
	}
	if m.admins != nil {
		edges = append(edges, group.EdgeAdmins)
	}
	if m.allocations != nil {
		edges = append(edges, group.EdgeAllocations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case group.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.users))
		for id := range m.users {
			ids = append(ids, id)
		}
		return ids
	case group.EdgeAdmins:
		ids := make([]ent.Value, 0, len(m.admins))
		for id := range m.admins {
			ids = append(ids, id)
		}
		return ids
	case group.EdgeAllocations:
		ids := make([]ent.Value, 0, len(m.allocations))
		for id := range m.allocations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedusers != nil {
		edges = append(edges, group.EdgeUsers)
	}
	if m.removedadmins != nil {
		edges = append(edges, group.EdgeAdmins)
	}
	if m.removedallocations != nil {
		edges = append(edges, group.EdgeAllocations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case group.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.removedusers))
		for id := range m.removedusers {
			ids = append(ids, id)
		}
		return ids
	case group.EdgeAdmins:
		ids := make([]ent.Value, 0, len(m.removedadmins))
		for id := range m.removedadmins {
			ids = append(ids, id)
		}
		return ids
	case group.EdgeAllocations:
		ids := make([]ent.Value, 0, len(m.removedallocations))
		for id := range m.removedallocations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedusers {
		edges = append(edges, group.EdgeUsers)
	}
	if m.clearedadmins {
		edges = append(edges, group.EdgeAdmins)
	}
	if m.clearedallocations {
		edges = append(edges, group.EdgeAllocations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupMutation) EdgeCleared(name string) bool {
	switch name {
	case group.EdgeUsers:
		return m.clearedusers
	case group.EdgeAdmins:
		return m.clearedadmins
	case group.EdgeAllocations:
		return m.clearedallocations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Group unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupMutation) ResetEdge(name string) error {
	switch name {
	case group.EdgeUsers:
		m.ResetUsers()
		return nil
	case group.EdgeAdmins:
		m.ResetAdmins()
		return nil
	case group.EdgeAllocations:
		m.ResetAllocations()
		return nil
	}
	return fmt.Errorf("unknown Group edge %s", name)
}

// GroupAdmissionRequestMutation represents an operation that mutates the GroupAdmissionRequest nodes in the graph.
type GroupAdmissionRequestMutation struct {
	config
	op               Op
	typ              string
	id               *int
	created_at       *time.Time
	updated_at       *time.Time
	status           *string
	clearedFields    map[string]struct{}
	group            *int
	clearedgroup     bool
	applicant        *int
	clearedapplicant bool
	done             bool
	oldValue         func(context.Context) (*GroupAdmissionRequest, error)
	predicates       []predicate.GroupAdmissionRequest
}

var _ ent.Mutation = (*GroupAdmissionRequestMutation)(nil)

// groupadmissionrequestOption allows management of the mutation configuration using functional options.
type groupadmissionrequestOption func(*GroupAdmissionRequestMutation)

// newGroupAdmissionRequestMutation creates new mutation for the GroupAdmissionRequest entity.
func newGroupAdmissionRequestMutation(c config, op Op, opts ...groupadmissionrequestOption) *GroupAdmissionRequestMutation {
	m := &GroupAdmissionRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeGroupAdmissionRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupAdmissionRequestID sets the ID field of the mutation.
func withGroupAdmissionRequestID(id int) groupadmissionrequestOption {
	return func(m *GroupAdmissionRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *GroupAdmissionRequest
		)
		m.oldValue = func(ctx context.Context) (*GroupAdmissionRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GroupAdmissionRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroupAdmissionRequest sets the old GroupAdmissionRequest of the mutation.
func withGroupAdmissionRequest(node *GroupAdmissionRequest) groupadmissionrequestOption {
	return func(m *GroupAdmissionRequestMutation) {
		m.oldValue = func(context.Context) (*GroupAdmissionRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupAdmissionRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupAdmissionRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupAdmissionRequestMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupAdmissionRequestMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GroupAdmissionRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *GroupAdmissionRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GroupAdmissionRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GroupAdmissionRequest entity.
// If the GroupAdmissionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupAdmissionRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GroupAdmissionRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GroupAdmissionRequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GroupAdmissionRequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GroupAdmissionRequest entity.
// If the GroupAdmissionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupAdmissionRequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GroupAdmissionRequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStatus sets the "status" field.
func (m *GroupAdmissionRequestMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *GroupAdmissionRequestMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the GroupAdmissionRequest entity.
// If the GroupAdmissionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupAdmissionRequestMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GroupAdmissionRequestMutation) ResetStatus() {
	m.status = nil
}

// SetGroupID sets the "group" edge to the Group entity by id.
func (m *GroupAdmissionRequestMutation) SetGroupID(id int) {
	m.group = &id
}

// ClearGroup clears the "group" edge to the Group entity.
func (m *GroupAdmissionRequestMutation) ClearGroup() {
	m.clearedgroup = true
}

// GroupCleared reports if the "group" edge to the Group entity was cleared.
func (m *GroupAdmissionRequestMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupID returns the "group" edge ID in the mutation.
func (m *GroupAdmissionRequestMutation) GroupID() (id int, exists bool) {
	if m.group != nil {
		return *m.group, true
	}
	return
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *GroupAdmissionRequestMutation) GroupIDs() (ids []int) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *GroupAdmissionRequestMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// SetApplicantID sets the "applicant" edge to the User entity by id.
func (m *GroupAdmissionRequestMutation) SetApplicantID(id int) {
	m.applicant = &id
}

// ClearApplicant clears the "applicant" edge to the User entity.
func (m *GroupAdmissionRequestMutation) ClearApplicant() {
	m.clearedapplicant = true
}

// ApplicantCleared reports if the "applicant" edge to the User entity was cleared.
func (m *GroupAdmissionRequestMutation) ApplicantCleared() bool {
	return m.clearedapplicant
}

// ApplicantID returns the "applicant" edge ID in the mutation.
func (m *GroupAdmissionRequestMutation) ApplicantID() (id int, exists bool) {
	if m.applicant != nil {
		return *m.applicant, true
	}
	return
}

// ApplicantIDs returns the "applicant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicantID instead. It exists only for internal usage by the builders.
func (m *GroupAdmissionRequestMutation) ApplicantIDs() (ids []int) {
	if id := m.applicant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplicant resets all changes to the "applicant" edge.
func (m *GroupAdmissionRequestMutation) ResetApplicant() {
	m.applicant = nil
	m.clearedapplicant = false
}

// Where appends a list predicates to the GroupAdmissionRequestMutation builder.
func (m *GroupAdmissionRequestMutation) Where(ps ...predicate.GroupAdmissionRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupAdmissionRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupAdmissionRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GroupAdmissionRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupAdmissionRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupAdmissionRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GroupAdmissionRequest).
func (m *GroupAdmissionRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupAdmissionRequestMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, groupadmissionrequest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, groupadmissionrequest.FieldUpdatedAt)
	}
	if m.status != nil {
		fields = append(fields, groupadmissionrequest.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupAdmissionRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case groupadmissionrequest.FieldCreatedAt:
		return m.CreatedAt()
	case groupadmissionrequest.FieldUpdatedAt:
		return m.UpdatedAt()
	case groupadmissionrequest.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupAdmissionRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case groupadmissionrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case groupadmissionrequest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case groupadmissionrequest.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown GroupAdmissionRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupAdmissionRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case groupadmissionrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case groupadmissionrequest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case groupadmissionrequest.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown GroupAdmissionRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupAdmissionRequestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupAdmissionRequestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupAdmissionRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GroupAdmissionRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupAdmissionRequestMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupAdmissionRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupAdmissionRequestMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GroupAdmissionRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupAdmissionRequestMutation) ResetField(name string) error {
	switch name {
	case groupadmissionrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case groupadmissionrequest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case groupadmissionrequest.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown GroupAdmissionRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupAdmissionRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.group != nil {
		edges = append(edges, groupadmissionrequest.EdgeGroup)
	}
	if m.applicant != nil {
		edges = append(edges, groupadmissionrequest.EdgeApplicant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupAdmissionRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case groupadmissionrequest.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	case groupadmissionrequest.EdgeApplicant:
		if id := m.applicant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupAdmissionRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupAdmissionRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupAdmissionRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedgroup {
		edges = append(edges, groupadmissionrequest.EdgeGroup)
	}
	if m.clearedapplicant {
		edges = append(edges, groupadmissionrequest.EdgeApplicant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupAdmissionRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case groupadmissionrequest.EdgeGroup:
		return m.clearedgroup
	case groupadmissionrequest.EdgeApplicant:
		return m.clearedapplicant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupAdmissionRequestMutation) ClearEdge(name string) error {
	switch name {
	case groupadmissionrequest.EdgeGroup:
		m.ClearGroup()
		return nil
	case groupadmissionrequest.EdgeApplicant:
		m.ClearApplicant()
		return nil
	}
	return fmt.Errorf("unknown GroupAdmissionRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupAdmissionRequestMutation) ResetEdge(name string) error {
	switch name {
	case groupadmissionrequest.EdgeGroup:
		m.ResetGroup()
		return nil
	case groupadmissionrequest.EdgeApplicant:
		m.ResetApplicant()
		return nil
	}
	return fmt.Errorf("unknown GroupAdmissionRequest edge %s", name)
}

// ListingMutation represents an operation that mutates the Listing nodes in the graph.
type ListingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	updated_at    *time.Time
	obj_id        *string
	list_name     *string
	clearedFields map[string]struct{}
	user          *int
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*Listing, error)
	predicates    []predicate.Listing
}

var _ ent.Mutation = (*ListingMutation)(nil)

// listingOption allows management of the mutation configuration using functional options.
type listingOption func(*ListingMutation)

// newListingMutation creates new mutation for the Listing entity.
func newListingMutation(c config, op Op, opts ...listingOption) *ListingMutation {
	m := &ListingMutation{
		config:        c,
		op:            op,
		typ:           TypeListing,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withListingID sets the ID field of the mutation.
func withListingID(id int) listingOption {
	return func(m *ListingMutation) {
		var (
			err   error
			once  sync.Once
			value *Listing
		)
		m.oldValue = func(ctx context.Context) (*Listing, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Listing.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withListing sets the old Listing of the mutation.
func withListing(node *Listing) listingOption {
	return func(m *ListingMutation) {
		m.oldValue = func(context.Context) (*Listing, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ListingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ListingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ListingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ListingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Listing.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ListingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ListingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ListingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ListingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ListingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ListingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetObjID sets the "obj_id" field.
func (m *ListingMutation) SetObjID(s string) {
	m.obj_id = &s
}

// ObjID returns the value of the "obj_id" field in the mutation.
func (m *ListingMutation) ObjID() (r string, exists bool) {
	v := m.obj_id
	if v == nil {
		return
	}
	return *v, true
}

// OldObjID returns the old "obj_id" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldObjID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjID: %w", err)
	}
	return oldValue.ObjID, nil
}

// ResetObjID resets all changes to the "obj_id" field.
func (m *ListingMutation) ResetObjID() {
	m.obj_id = nil
}

// SetListName sets the "list_name" field.
func (m *ListingMutation) SetListName(s string) {
	m.list_name = &s
}

// ListName returns the value of the "list_name" field in the mutation.
func (m *ListingMutation) ListName() (r string, exists bool) {
	v := m.list_name
	if v == nil {
		return
	}
	return *v, true
}

// OldListName returns the old "list_name" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldListName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListName: %w", err)
	}
	return oldValue.ListName, nil
}

// ResetListName resets all changes to the "list_name" field.
func (m *ListingMutation) ResetListName() {
	m.list_name = nil
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *ListingMutation) SetUserID(id int) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *ListingMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ListingMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *ListingMutation) UserID() (id int, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ListingMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ListingMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the ListingMutation builder.
func (m *ListingMutation) Where(ps ...predicate.Listing) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ListingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ListingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Listing, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ListingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ListingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Listing).
func (m *ListingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ListingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, listing.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, listing.FieldUpdatedAt)
	}
	if m.obj_id != nil {
		fields = append(fields, listing.FieldObjID)
	}
	if m.list_name != nil {
		fields = append(fields, listing.FieldListName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ListingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case listing.FieldCreatedAt:
		return m.CreatedAt()
	case listing.FieldUpdatedAt:
		return m.UpdatedAt()
	case listing.FieldObjID:
		return m.ObjID()
	case listing.FieldListName:
		return m.ListName()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ListingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case listing.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case listing.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case listing.FieldObjID:
		return m.OldObjID(ctx)
	case listing.FieldListName:
		return m.OldListName(ctx)
	}
	return nil, fmt.Errorf("unknown Listing field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ListingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case listing.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case listing.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case listing.FieldObjID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjID(v)
		return nil
	case listing.FieldListName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListName(v)
		return nil
	}
	return fmt.Errorf("unknown Listing field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ListingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ListingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ListingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Listing numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ListingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ListingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ListingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Listing nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ListingMutation) ResetField(name string) error {
	switch name {
	case listing.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case listing.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case listing.FieldObjID:
		m.ResetObjID()
		return nil
	case listing.FieldListName:
		m.ResetListName()
		return nil
	}
	return fmt.Errorf("unknown Listing field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ListingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, listing.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ListingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case listing.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ListingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ListingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ListingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, listing.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ListingMutation) EdgeCleared(name string) bool {
	switch name {
	case listing.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ListingMutation) ClearEdge(name string) error {
	switch name {
	case listing.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Listing unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ListingMutation) ResetEdge(name string) error {
	switch name {
	case listing.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Listing edge %s", name)
}

// LocalizationMutation represents an operation that mutates the Localization nodes in the graph.
type LocalizationMutation struct {
	config
	op                Op
	typ               string
	id                *int
	created_at        *time.Time
	dateobs           *time.Time
	localization_name *string
	tags              *[]string
	appendtags        []string
	properties        *[]map[string]interface{}
	appendproperties  []map[string]interface{}
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Localization, error)
	predicates        []predicate.Localization
}

var _ ent.Mutation = (*LocalizationMutation)(nil)

// localizationOption allows management of the mutation configuration using functional options.
type localizationOption func(*LocalizationMutation)

// newLocalizationMutation creates new mutation for the Localization entity.
func newLocalizationMutation(c config, op Op, opts ...localizationOption) *LocalizationMutation {
	m := &LocalizationMutation{
		config:        c,
		op:            op,
		typ:           TypeLocalization,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLocalizationID sets the ID field of the mutation.
func withLocalizationID(id int) localizationOption {
	return func(m *LocalizationMutation) {
		var (
			err   error
			once  sync.Once
			value *Localization
		)
		m.oldValue = func(ctx context.Context) (*Localization, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Localization.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLocalization sets the old Localization of the mutation.
func withLocalization(node *Localization) localizationOption {
	return func(m *LocalizationMutation) {
		m.oldValue = func(context.Context) (*Localization, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LocalizationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LocalizationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LocalizationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LocalizationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Localization.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *LocalizationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LocalizationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Localization entity.
// If the Localization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LocalizationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDateobs sets the "dateobs" field.
func (m *LocalizationMutation) SetDateobs(t time.Time) {
	m.dateobs = &t
}

// Dateobs returns the value of the "dateobs" field in the mutation.
func (m *LocalizationMutation) Dateobs() (r time.Time, exists bool) {
	v := m.dateobs
	if v == nil {
		return
	}
	return *v, true
}

// OldDateobs returns the old "dateobs" field's value of the Localization entity.
// If the Localization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizationMutation) OldDateobs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateobs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateobs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateobs: %w", err)
	}
	return oldValue.Dateobs, nil
}

// ResetDateobs resets all changes to the "dateobs" field.
func (m *LocalizationMutation) ResetDateobs() {
	m.dateobs = nil
}

// SetLocalizationName sets the "localization_name" field.
func (m *LocalizationMutation) SetLocalizationName(s string) {
	m.localization_name = &s
}

// LocalizationName returns the value of the "localization_name" field in the mutation.
func (m *LocalizationMutation) LocalizationName() (r string, exists bool) {
	v := m.localization_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLocalizationName returns the old "localization_name" field's value of the Localization entity.
// If the Localization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizationMutation) OldLocalizationName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocalizationName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocalizationName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocalizationName: %w", err)
	}
	return oldValue.LocalizationName, nil
}

// ResetLocalizationName resets all changes to the "localization_name" field.
func (m *LocalizationMutation) ResetLocalizationName() {
	m.localization_name = nil
}

// SetTags sets the "tags" field.
func (m *LocalizationMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *LocalizationMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Localization entity.
// If the Localization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizationMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *LocalizationMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *LocalizationMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *LocalizationMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[localization.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *LocalizationMutation) TagsCleared() bool {
	_, ok := m.clearedFields[localization.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *LocalizationMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, localization.FieldTags)
}

// SetProperties sets the "properties" field.
func (m *LocalizationMutation) SetProperties(value []map[string]interface{}) {
	m.properties = &value
	m.appendproperties = nil
}

// Properties returns the value of the "properties" field in the mutation.
func (m *LocalizationMutation) Properties() (r []map[string]interface{}, exists bool) {
	v := m.properties
	if v == nil {
		return
	}
	return *v, true
}

// OldProperties returns the old "properties" field's value of the Localization entity.
// If the Localization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizationMutation) OldProperties(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperties: %w", err)
	}
	return oldValue.Properties, nil
}

// AppendProperties adds value to the "properties" field.
func (m *LocalizationMutation) AppendProperties(value []map[string]interface{}) {
	m.appendproperties = append(m.appendproperties, value...)
}

// AppendedProperties returns the list of values that were appended to the "properties" field in this mutation.
func (m *LocalizationMutation) AppendedProperties() ([]map[string]interface{}, bool) {
	if len(m.appendproperties) == 0 {
		return nil, false
	}
	return m.appendproperties, true
}

// ClearProperties clears the value of the "properties" field.
func (m *LocalizationMutation) ClearProperties() {
	m.properties = nil
	m.appendproperties = nil
	m.clearedFields[localization.FieldProperties] = struct{}{}
}

// PropertiesCleared returns if the "properties" field was cleared in this mutation.
func (m *LocalizationMutation) PropertiesCleared() bool {
	_, ok := m.clearedFields[localization.FieldProperties]
	return ok
}

// ResetProperties resets all changes to the "properties" field.
func (m *LocalizationMutation) ResetProperties() {
	m.properties = nil
	m.appendproperties = nil
	delete(m.clearedFields, localization.FieldProperties)
}

// Where appends a list predicates to the LocalizationMutation builder.
func (m *LocalizationMutation) Where(ps ...predicate.Localization) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LocalizationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LocalizationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Localization, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LocalizationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LocalizationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Localization).
func (m *LocalizationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LocalizationMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, localization.FieldCreatedAt)
	}
	if m.dateobs != nil {
		fields = append(fields, localization.FieldDateobs)
	}
	if m.localization_name != nil {
		fields = append(fields, localization.FieldLocalizationName)
	}
	if m.tags != nil {
		fields = append(fields, localization.FieldTags)
	}
	if m.properties != nil {
		fields = append(fields, localization.FieldProperties)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LocalizationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case localization.FieldCreatedAt:
		return m.CreatedAt()
	case localization.FieldDateobs:
		return m.Dateobs()
	case localization.FieldLocalizationName:
		return m.LocalizationName()
	case localization.FieldTags:
		return m.Tags()
	case localization.FieldProperties:
		return m.Properties()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LocalizationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case localization.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case localization.FieldDateobs:
		return m.OldDateobs(ctx)
	case localization.FieldLocalizationName:
		return m.OldLocalizationName(ctx)
	case localization.FieldTags:
		return m.OldTags(ctx)
	case localization.FieldProperties:
		return m.OldProperties(ctx)
	}
	return nil, fmt.Errorf("unknown Localization field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LocalizationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case localization.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case localization.FieldDateobs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateobs(v)
		return nil
	case localization.FieldLocalizationName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocalizationName(v)
		return nil
	case localization.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case localization.FieldProperties:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperties(v)
		return nil
	}
	return fmt.Errorf("unknown Localization field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LocalizationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LocalizationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LocalizationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Localization numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LocalizationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(localization.FieldTags) {
		fields = append(fields, localization.FieldTags)
	}
	if m.FieldCleared(localization.FieldProperties) {
		fields = append(fields, localization.FieldProperties)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LocalizationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LocalizationMutation) ClearField(name string) error {
	switch name {
	case localization.FieldTags:
		m.ClearTags()
		return nil
	case localization.FieldProperties:
		m.ClearProperties()
		return nil
	}
	return fmt.Errorf("unknown Localization nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LocalizationMutation) ResetField(name string) error {
	switch name {
	case localization.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case localization.FieldDateobs:
		m.ResetDateobs()
		return nil
	case localization.FieldLocalizationName:
		m.ResetLocalizationName()
		return nil
	case localization.FieldTags:
		m.ResetTags()
		return nil
	case localization.FieldProperties:
		m.ResetProperties()
		return nil
	}
	return fmt.Errorf("unknown Localization field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LocalizationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LocalizationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LocalizationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LocalizationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LocalizationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LocalizationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LocalizationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Localization unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LocalizationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Localization edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op                Op
	typ               string
	id                *int
	created_at        *time.Time
	text              *string
	notification_type *string
	url               *string
	viewed            *bool
	clearedFields     map[string]struct{}
	user              *int
	cleareduser       bool
	done              bool
	oldValue          func(context.Context) (*Notification, error)
	predicates        []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id int) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetText sets the "text" field.
func (m *NotificationMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *NotificationMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *NotificationMutation) ResetText() {
	m.text = nil
}

// SetNotificationType sets the "notification_type" field.
func (m *NotificationMutation) SetNotificationType(s string) {
	m.notification_type = &s
}

// NotificationType returns the value of the "notification_type" field in the mutation.
func (m *NotificationMutation) NotificationType() (r string, exists bool) {
	v := m.notification_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNotificationType returns the old "notification_type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldNotificationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotificationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotificationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotificationType: %w", err)
	}
	return oldValue.NotificationType, nil
}

// ResetNotificationType resets all changes to the "notification_type" field.
func (m *NotificationMutation) ResetNotificationType() {
	m.notification_type = nil
}

// SetURL sets the "url" field.
func (m *NotificationMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *NotificationMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *NotificationMutation) ClearURL() {
	m.url = nil
	m.clearedFields[notification.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *NotificationMutation) URLCleared() bool {
	_, ok := m.clearedFields[notification.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *NotificationMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, notification.FieldURL)
}

// SetViewed sets the "viewed" field.
func (m *NotificationMutation) SetViewed(b bool) {
	m.viewed = &b
}

// Viewed returns the value of the "viewed" field in the mutation.
func (m *NotificationMutation) Viewed() (r bool, exists bool) {
	v := m.viewed
	if v == nil {
		return
	}
	return *v, true
}

// OldViewed returns the old "viewed" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldViewed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViewed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViewed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViewed: %w", err)
	}
	return oldValue.Viewed, nil
}

// ResetViewed resets all changes to the "viewed" field.
func (m *NotificationMutation) ResetViewed() {
	m.viewed = nil
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *NotificationMutation) SetUserID(id int) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *NotificationMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *NotificationMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *NotificationMutation) UserID() (id int, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *NotificationMutation) UserIDs() (ids []int) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *NotificationMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m.text != nil {
		fields = append(fields, notification.FieldText)
	}
	if m.notification_type != nil {
		fields = append(fields, notification.FieldNotificationType)
	}
	if m.url != nil {
		fields = append(fields, notification.FieldURL)
	}
	if m.viewed != nil {
		fields = append(fields, notification.FieldViewed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldText:
		return m.Text()
	case notification.FieldNotificationType:
		return m.NotificationType()
	case notification.FieldURL:
		return m.URL()
	case notification.FieldViewed:
		return m.Viewed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldText:
		return m.OldText(ctx)
	case notification.FieldNotificationType:
		return m.OldNotificationType(ctx)
	case notification.FieldURL:
		return m.OldURL(ctx)
	case notification.FieldViewed:
		return m.OldViewed(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case notification.FieldNotificationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotificationType(v)
		return nil
	case notification.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case notification.FieldViewed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViewed(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldURL) {
		fields = append(fields, notification.FieldURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldURL:
		m.ClearURL()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldText:
		m.ResetText()
		return nil
	case notification.FieldNotificationType:
		m.ResetNotificationType()
		return nil
	case notification.FieldURL:
		m.ResetURL()
		return nil
	case notification.FieldViewed:
		m.ResetViewed()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, notification.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case notification.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, notification.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	switch name {
	case notification.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	switch name {
	case notification.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	switch name {
	case notification.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Notification edge %s", name)
}

// ObjAnalysisMutation represents an operation that mutates the ObjAnalysis nodes in the graph.
type ObjAnalysisMutation struct {
	config
	op               Op
	typ              string
	id               *int
	created_at       *time.Time
	updated_at       *time.Time
	obj_id           *string
	analysis_service *string
	status           *string
	clearedFields    map[string]struct{}
	owner            *int
	clearedowner     bool
	done             bool
	oldValue         func(context.Context) (*ObjAnalysis, error)
	predicates       []predicate.ObjAnalysis
}

var _ ent.Mutation = (*ObjAnalysisMutation)(nil)

// objanalysisOption allows management of the mutation configuration using functional options.
type objanalysisOption func(*ObjAnalysisMutation)

// newObjAnalysisMutation creates new mutation for the ObjAnalysis entity.
func newObjAnalysisMutation(c config, op Op, opts ...objanalysisOption) *ObjAnalysisMutation {
	m := &ObjAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeObjAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withObjAnalysisID sets the ID field of the mutation.
func withObjAnalysisID(id int) objanalysisOption {
	return func(m *ObjAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *ObjAnalysis
		)
		m.oldValue = func(ctx context.Context) (*ObjAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ObjAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withObjAnalysis sets the old ObjAnalysis of the mutation.
func withObjAnalysis(node *ObjAnalysis) objanalysisOption {
	return func(m *ObjAnalysisMutation) {
		m.oldValue = func(context.Context) (*ObjAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ObjAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ObjAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ObjAnalysisMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ObjAnalysisMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ObjAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ObjAnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ObjAnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ObjAnalysis entity.
// If the ObjAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjAnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ObjAnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ObjAnalysisMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ObjAnalysisMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ObjAnalysis entity.
// If the ObjAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjAnalysisMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ObjAnalysisMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetObjID sets the "obj_id" field.
func (m *ObjAnalysisMutation) SetObjID(s string) {
	m.obj_id = &s
}

// ObjID returns the value of the "obj_id" field in the mutation.
func (m *ObjAnalysisMutation) ObjID() (r string, exists bool) {
	v := m.obj_id
	if v == nil {
		return
	}
	return *v, true
}

// OldObjID returns the old "obj_id" field's value of the ObjAnalysis entity.
// If the ObjAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjAnalysisMutation) OldObjID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjID: %w", err)
	}
	return oldValue.ObjID, nil
}

// ResetObjID resets all changes to the "obj_id" field.
func (m *ObjAnalysisMutation) ResetObjID() {
	m.obj_id = nil
}

// SetAnalysisService sets the "analysis_service" field.
func (m *ObjAnalysisMutation) SetAnalysisService(s string) {
	m.analysis_service = &s
}

// AnalysisService returns the value of the "analysis_service" field in the mutation.
func (m *ObjAnalysisMutation) AnalysisService() (r string, exists bool) {
	v := m.analysis_service
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisService returns the old "analysis_service" field's value of the ObjAnalysis entity.
// If the ObjAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjAnalysisMutation) OldAnalysisService(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisService is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisService requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisService: %w", err)
	}
	return oldValue.AnalysisService, nil
}

// ResetAnalysisService resets all changes to the "analysis_service" field.
func (m *ObjAnalysisMutation) ResetAnalysisService() {
	m.analysis_service = nil
}

// SetStatus sets the "status" field.
func (m *ObjAnalysisMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ObjAnalysisMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ObjAnalysis entity.
// If the ObjAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObjAnalysisMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ObjAnalysisMutation) ResetStatus() {
	m.status = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *ObjAnalysisMutation) SetOwnerID(id int) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *ObjAnalysisMutation) ClearOwner() {
	m.clearedowner = true
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *ObjAnalysisMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *ObjAnalysisMutation) OwnerID() (id int, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *ObjAnalysisMutation) OwnerIDs() (ids []int) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *ObjAnalysisMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// Where appends a list predicates to the ObjAnalysisMutation builder.
func (m *ObjAnalysisMutation) Where(ps ...predicate.ObjAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ObjAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ObjAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ObjAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ObjAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ObjAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ObjAnalysis).
func (m *ObjAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ObjAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, objanalysis.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, objanalysis.FieldUpdatedAt)
	}
	if m.obj_id != nil {
		fields = append(fields, objanalysis.FieldObjID)
	}
	if m.analysis_service != nil {
		fields = append(fields, objanalysis.FieldAnalysisService)
	}
	if m.status != nil {
		fields = append(fields, objanalysis.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ObjAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case objanalysis.FieldCreatedAt:
		return m.CreatedAt()
	case objanalysis.FieldUpdatedAt:
		return m.UpdatedAt()
	case objanalysis.FieldObjID:
		return m.ObjID()
	case objanalysis.FieldAnalysisService:
		return m.AnalysisService()
	case objanalysis.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ObjAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case objanalysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case objanalysis.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case objanalysis.FieldObjID:
		return m.OldObjID(ctx)
	case objanalysis.FieldAnalysisService:
		return m.OldAnalysisService(ctx)
	case objanalysis.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown ObjAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ObjAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case objanalysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case objanalysis.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case objanalysis.FieldObjID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjID(v)
		return nil
	case objanalysis.FieldAnalysisService:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisService(v)
		return nil
	case objanalysis.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown ObjAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ObjAnalysisMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ObjAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ObjAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ObjAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ObjAnalysisMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ObjAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ObjAnalysisMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ObjAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ObjAnalysisMutation) ResetField(name string) error {
	switch name {
	case objanalysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case objanalysis.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case objanalysis.FieldObjID:
		m.ResetObjID()
		return nil
	case objanalysis.FieldAnalysisService:
		m.ResetAnalysisService()
		return nil
	case objanalysis.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown ObjAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ObjAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.owner != nil {
		edges = append(edges, objanalysis.EdgeOwner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ObjAnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case objanalysis.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ObjAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ObjAnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ObjAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedowner {
		edges = append(edges, objanalysis.EdgeOwner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ObjAnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case objanalysis.EdgeOwner:
		return m.clearedowner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ObjAnalysisMutation) ClearEdge(name string) error {
	switch name {
	case objanalysis.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown ObjAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ObjAnalysisMutation) ResetEdge(name string) error {
	switch name {
	case objanalysis.EdgeOwner:
		m.ResetOwner()
		return nil
	}
	return fmt.Errorf("unknown ObjAnalysis edge %s", name)
}

// ObservationPlanRequestMutation represents an operation that mutates the ObservationPlanRequest nodes in the graph.
type ObservationPlanRequestMutation struct {
	config
	op                Op
	typ               string
	id                *int
	created_at        *time.Time
	updated_at        *time.Time
	dateobs           *time.Time
	status            *string
	clearedFields     map[string]struct{}
	allocation        *int
	clearedallocation bool
	requester         *int
	clearedrequester  bool
	done              bool
	oldValue          func(context.Context) (*ObservationPlanRequest, error)
	predicates        []predicate.ObservationPlanRequest
}

var _ ent.Mutation = (*ObservationPlanRequestMutation)(nil)

// observationplanrequestOption allows management of the mutation configuration using functional options.
type observationplanrequestOption func(*ObservationPlanRequestMutation)

// newObservationPlanRequestMutation creates new mutation for the ObservationPlanRequest entity.
func newObservationPlanRequestMutation(c config, op Op, opts ...observationplanrequestOption) *ObservationPlanRequestMutation {
	m := &ObservationPlanRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeObservationPlanRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withObservationPlanRequestID sets the ID field of the mutation.
func withObservationPlanRequestID(id int) observationplanrequestOption {
	return func(m *ObservationPlanRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *ObservationPlanRequest
		)
		m.oldValue = func(ctx context.Context) (*ObservationPlanRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ObservationPlanRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withObservationPlanRequest sets the old ObservationPlanRequest of the mutation.
func withObservationPlanRequest(node *ObservationPlanRequest) observationplanrequestOption {
	return func(m *ObservationPlanRequestMutation) {
		m.oldValue = func(context.Context) (*ObservationPlanRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ObservationPlanRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ObservationPlanRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ObservationPlanRequestMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ObservationPlanRequestMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ObservationPlanRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ObservationPlanRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ObservationPlanRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ObservationPlanRequest entity.
// If the ObservationPlanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationPlanRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ObservationPlanRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ObservationPlanRequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ObservationPlanRequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ObservationPlanRequest entity.
// If the ObservationPlanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationPlanRequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ObservationPlanRequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDateobs sets the "dateobs" field.
func (m *ObservationPlanRequestMutation) SetDateobs(t time.Time) {
	m.dateobs = &t
}

// Dateobs returns the value of the "dateobs" field in the mutation.
func (m *ObservationPlanRequestMutation) Dateobs() (r time.Time, exists bool) {
	v := m.dateobs
	if v == nil {
		return
	}
	return *v, true
}

// OldDateobs returns the old "dateobs" field's value of the ObservationPlanRequest entity.
// If the ObservationPlanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationPlanRequestMutation) OldDateobs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateobs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateobs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateobs: %w", err)
	}
	return oldValue.Dateobs, nil
}

// ResetDateobs resets all changes to the "dateobs" field.
func (m *ObservationPlanRequestMutation) ResetDateobs() {
	m.dateobs = nil
}

// SetStatus sets the "status" field.
func (m *ObservationPlanRequestMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ObservationPlanRequestMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ObservationPlanRequest entity.
// If the ObservationPlanRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationPlanRequestMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ObservationPlanRequestMutation) ResetStatus() {
	m.status = nil
}

// SetAllocationID sets the "allocation" edge to the Allocation entity by id.
func (m *ObservationPlanRequestMutation) SetAllocationID(id int) {
	m.allocation = &id
}

// ClearAllocation clears the "allocation" edge to the Allocation entity.
func (m *ObservationPlanRequestMutation) ClearAllocation() {
	m.clearedallocation = true
}

// AllocationCleared reports if the "allocation" edge to the Allocation entity was cleared.
func (m *ObservationPlanRequestMutation) AllocationCleared() bool {
	return m.clearedallocation
}

// AllocationID returns the "allocation" edge ID in the mutation.
func (m *ObservationPlanRequestMutation) AllocationID() (id int, exists bool) {
	if m.allocation != nil {
		return *m.allocation, true
	}
	return
}

// AllocationIDs returns the "allocation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AllocationID instead. It exists only for internal usage by the builders.
func (m *ObservationPlanRequestMutation) AllocationIDs() (ids []int) {
	if id := m.allocation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAllocation resets all changes to the "allocation" edge.
func (m *ObservationPlanRequestMutation) ResetAllocation() {
	m.allocation = nil
	m.clearedallocation = false
}

// SetRequesterID sets the "requester" edge to the User entity by id.
func (m *ObservationPlanRequestMutation) SetRequesterID(id int) {
	m.requester = &id
}

// ClearRequester clears the "requester" edge to the User entity.
func (m *ObservationPlanRequestMutation) ClearRequester() {
	m.clearedrequester = true
}

// RequesterCleared reports if the "requester" edge to the User entity was cleared.
func (m *ObservationPlanRequestMutation) RequesterCleared() bool {
	return m.clearedrequester
}

// RequesterID returns the "requester" edge ID in the mutation.
func (m *ObservationPlanRequestMutation) RequesterID() (id int, exists bool) {
	if m.requester != nil {
		return *m.requester, true
	}
	return
}

// RequesterIDs returns the "requester" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequesterID instead. It exists only for internal usage by the builders.
func (m *ObservationPlanRequestMutation) RequesterIDs() (ids []int) {
	if id := m.requester; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequester resets all changes to the "requester" edge.
func (m *ObservationPlanRequestMutation) ResetRequester() {
	m.requester = nil
	m.clearedrequester = false
}

// Where appends a list predicates to the ObservationPlanRequestMutation builder.
func (m *ObservationPlanRequestMutation) Where(ps ...predicate.ObservationPlanRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ObservationPlanRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ObservationPlanRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ObservationPlanRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ObservationPlanRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ObservationPlanRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ObservationPlanRequest).
func (m *ObservationPlanRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ObservationPlanRequestMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, observationplanrequest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, observationplanrequest.FieldUpdatedAt)
	}
	if m.dateobs != nil {
		fields = append(fields, observationplanrequest.FieldDateobs)
	}
	if m.status != nil {
		fields = append(fields, observationplanrequest.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ObservationPlanRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case observationplanrequest.FieldCreatedAt:
		return m.CreatedAt()
	case observationplanrequest.FieldUpdatedAt:
		return m.UpdatedAt()
	case observationplanrequest.FieldDateobs:
		return m.Dateobs()
	case observationplanrequest.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ObservationPlanRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case observationplanrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case observationplanrequest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case observationplanrequest.FieldDateobs:
		return m.OldDateobs(ctx)
	case observationplanrequest.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown ObservationPlanRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ObservationPlanRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case observationplanrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case observationplanrequest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case observationplanrequest.FieldDateobs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateobs(v)
		return nil
	case observationplanrequest.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown ObservationPlanRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ObservationPlanRequestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ObservationPlanRequestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ObservationPlanRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ObservationPlanRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ObservationPlanRequestMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ObservationPlanRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ObservationPlanRequestMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ObservationPlanRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ObservationPlanRequestMutation) ResetField(name string) error {
	switch name {
	case observationplanrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case observationplanrequest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case observationplanrequest.FieldDateobs:
		m.ResetDateobs()
		return nil
	case observationplanrequest.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown ObservationPlanRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ObservationPlanRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.allocation != nil {
		edges = append(edges, observationplanrequest.EdgeAllocation)
	}
	if m.requester != nil {
		edges = append(edges, observationplanrequest.EdgeRequester)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ObservationPlanRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case observationplanrequest.EdgeAllocation:
		if id := m.allocation; id != nil {
			return []ent.Value{*id}
		}
	case observationplanrequest.EdgeRequester:
		if id := m.requester; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ObservationPlanRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ObservationPlanRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ObservationPlanRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedallocation {
		edges = append(edges, observationplanrequest.EdgeAllocation)
	}
	if m.clearedrequester {
		edges = append(edges, observationplanrequest.EdgeRequester)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ObservationPlanRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case observationplanrequest.EdgeAllocation:
		return m.clearedallocation
	case observationplanrequest.EdgeRequester:
		return m.clearedrequester
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ObservationPlanRequestMutation) ClearEdge(name string) error {
	switch name {
	case observationplanrequest.EdgeAllocation:
		m.ClearAllocation()
		return nil
	case observationplanrequest.EdgeRequester:
		m.ClearRequester()
		return nil
	}
	return fmt.Errorf("unknown ObservationPlanRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ObservationPlanRequestMutation) ResetEdge(name string) error {
	switch name {
	case observationplanrequest.EdgeAllocation:
		m.ResetAllocation()
		return nil
	case observationplanrequest.EdgeRequester:
		m.ResetRequester()
		return nil
	}
	return fmt.Errorf("unknown ObservationPlanRequest edge %s", name)
}

// ShiftMutation represents an operation that mutates the Shift nodes in the graph.
type ShiftMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	start_date    *time.Time
	end_date      *time.Time
	clearedFields map[string]struct{}
	users         map[int]struct{}
	removedusers  map[int]struct{}
	clearedusers  bool
	done          bool
	oldValue      func(context.Context) (*Shift, error)
	predicates    []predicate.Shift
}

var _ ent.Mutation = (*ShiftMutation)(nil)

// shiftOption allows management of the mutation configuration using functional options.
type shiftOption func(*ShiftMutation)

// newShiftMutation creates new mutation for the Shift entity.
func newShiftMutation(c config, op Op, opts ...shiftOption) *ShiftMutation {
	m := &ShiftMutation{
		config:        c,
		op:            op,
		typ:           TypeShift,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withShiftID sets the ID field of the mutation.
func withShiftID(id int) shiftOption {
	return func(m *ShiftMutation) {
		var (
			err   error
			once  sync.Once
			value *Shift
		)
		m.oldValue = func(ctx context.Context) (*Shift, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Shift.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withShift sets the old Shift of the mutation.
func withShift(node *Shift) shiftOption {
	return func(m *ShiftMutation) {
		m.oldValue = func(context.Context) (*Shift, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ShiftMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ShiftMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ShiftMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ShiftMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Shift.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ShiftMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ShiftMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Shift entity.
// If the Shift object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ShiftMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ShiftMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ShiftMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Shift entity.
// If the Shift object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ShiftMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *ShiftMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ShiftMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Shift entity.
// If the Shift object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ShiftMutation) ResetName() {
	m.name = nil
}

// SetStartDate sets the "start_date" field.
func (m *ShiftMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *ShiftMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Shift entity.
// If the Shift object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftMutation) OldStartDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *ShiftMutation) ResetStartDate() {
	m.start_date = nil
}

// SetEndDate sets the "end_date" field.
func (m *ShiftMutation) SetEndDate(t time.Time) {
	m.end_date = &t
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *ShiftMutation) EndDate() (r time.Time, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the Shift entity.
// If the Shift object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftMutation) OldEndDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *ShiftMutation) ResetEndDate() {
	m.end_date = nil
}

// AddUserIDs adds the "users" edge to the User entity by ids.
func (m *ShiftMutation) AddUserIDs(ids ...int) {
	if m.users == nil {
		m.users = make(map[int]struct{})
	}
	for i := range ids {
		m.users[ids[i]] = struct{}{}
	}
}

// ClearUsers clears the "users" edge to the User entity.
func (m *ShiftMutation) ClearUsers() {
	m.clearedusers = true
}

// UsersCleared reports if the "users" edge to the User entity was cleared.
func (m *ShiftMutation) UsersCleared() bool {
	return m.clearedusers
}

// RemoveUserIDs removes the "users" edge to the User entity by IDs.
func (m *ShiftMutation) RemoveUserIDs(ids ...int) {
	if m.removedusers == nil {
		m.removedusers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.users, ids[i])
		m.removedusers[ids[i]] = struct{}{}
	}
}

// RemovedUsers returns the removed IDs of the "users" edge to the User entity.
func (m *ShiftMutation) RemovedUsersIDs() (ids []int) {
	for id := range m.removedusers {
		ids = append(ids, id)
	}
	return
}

// UsersIDs returns the "users" edge IDs in the mutation.
func (m *ShiftMutation) UsersIDs() (ids []int) {
	for id := range m.users {
		ids = append(ids, id)
	}
	return
}

// ResetUsers resets all changes to the "users" edge.
func (m *ShiftMutation) ResetUsers() {
	m.users = nil
	m.clearedusers = false
	m.removedusers = nil
}

// Where appends a list predicates to the ShiftMutation builder.
func (m *ShiftMutation) Where(ps ...predicate.Shift) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ShiftMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ShiftMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Shift, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ShiftMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ShiftMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Shift).
func (m *ShiftMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ShiftMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, shift.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, shift.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, shift.FieldName)
	}
	if m.start_date != nil {
		fields = append(fields, shift.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, shift.FieldEndDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ShiftMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case shift.FieldCreatedAt:
		return m.CreatedAt()
	case shift.FieldUpdatedAt:
		return m.UpdatedAt()
	case shift.FieldName:
		return m.Name()
	case shift.FieldStartDate:
		return m.StartDate()
	case shift.FieldEndDate:
		return m.EndDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ShiftMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case shift.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case shift.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case shift.FieldName:
		return m.OldName(ctx)
	case shift.FieldStartDate:
		return m.OldStartDate(ctx)
	case shift.FieldEndDate:
		return m.OldEndDate(ctx)
	}
	return nil, fmt.Errorf("unknown Shift field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShiftMutation) SetField(name string, value ent.Value) error {
	switch name {
	case shift.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case shift.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case shift.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case shift.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case shift.FieldEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	}
	return fmt.Errorf("unknown Shift field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ShiftMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ShiftMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShiftMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Shift numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ShiftMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ShiftMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ShiftMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Shift nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ShiftMutation) ResetField(name string) error {
	switch name {
	case shift.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case shift.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case shift.FieldName:
		m.ResetName()
		return nil
	case shift.FieldStartDate:
		m.ResetStartDate()
		return nil
	case shift.FieldEndDate:
		m.ResetEndDate()
		return nil
	}
	return fmt.Errorf("unknown Shift field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ShiftMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.users != nil {
		edges = append(edges, shift.EdgeUsers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ShiftMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case shift.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.users))
		for id := range m.users {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ShiftMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedusers != nil {
		edges = append(edges, shift.EdgeUsers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ShiftMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case shift.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.removedusers))
		for id := range m.removedusers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ShiftMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedusers {
		edges = append(edges, shift.EdgeUsers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ShiftMutation) EdgeCleared(name string) bool {
	switch name {
	case shift.EdgeUsers:
		return m.clearedusers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ShiftMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Shift unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ShiftMutation) ResetEdge(name string) error {
	switch name {
	case shift.EdgeUsers:
		m.ResetUsers()
		return nil
	}
	return fmt.Errorf("unknown Shift edge %s", name)
}

// SpectrumMutation represents an operation that mutates the Spectrum nodes in the graph.
type SpectrumMutation struct {
	config
	op            Op
	typ           string
	id            *int
	created_at    *time.Time
	obj_id        *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Spectrum, error)
	predicates    []predicate.Spectrum
}

var _ ent.Mutation = (*SpectrumMutation)(nil)

// spectrumOption allows management of the mutation configuration using functional options.
type spectrumOption func(*SpectrumMutation)

// newSpectrumMutation creates new mutation for the Spectrum entity.
func newSpectrumMutation(c config, op Op, opts ...spectrumOption) *SpectrumMutation {
	m := &SpectrumMutation{
		config:        c,
		op:            op,
		typ:           TypeSpectrum,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpectrumID sets the ID field of the mutation.
func withSpectrumID(id int) spectrumOption {
	return func(m *SpectrumMutation) {
		var (
			err   error
			once  sync.Once
			value *Spectrum
		)
		m.oldValue = func(ctx context.Context) (*Spectrum, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Spectrum.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpectrum sets the old Spectrum of the mutation.
func withSpectrum(node *Spectrum) spectrumOption {
	return func(m *SpectrumMutation) {
		m.oldValue = func(context.Context) (*Spectrum, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpectrumMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpectrumMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpectrumMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpectrumMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Spectrum.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SpectrumMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SpectrumMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Spectrum entity.
// If the Spectrum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpectrumMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SpectrumMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetObjID sets the "obj_id" field.
func (m *SpectrumMutation) SetObjID(s string) {
	m.obj_id = &s
}

// ObjID returns the value of the "obj_id" field in the mutation.
func (m *SpectrumMutation) ObjID() (r string, exists bool) {
	v := m.obj_id
	if v == nil {
		return
	}
	return *v, true
}

// OldObjID returns the old "obj_id" field's value of the Spectrum entity.
// If the Spectrum object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpectrumMutation) OldObjID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjID: %w", err)
	}
	return oldValue.ObjID, nil
}

// ResetObjID resets all changes to the "obj_id" field.
func (m *SpectrumMutation) ResetObjID() {
	m.obj_id = nil
}

// Where appends a list predicates to the SpectrumMutation builder.
func (m *SpectrumMutation) Where(ps ...predicate.Spectrum) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpectrumMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpectrumMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Spectrum, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpectrumMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpectrumMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Spectrum).
func (m *SpectrumMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpectrumMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.created_at != nil {
		fields = append(fields, spectrum.FieldCreatedAt)
	}
	if m.obj_id != nil {
		fields = append(fields, spectrum.FieldObjID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpectrumMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case spectrum.FieldCreatedAt:
		return m.CreatedAt()
	case spectrum.FieldObjID:
		return m.ObjID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpectrumMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case spectrum.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case spectrum.FieldObjID:
		return m.OldObjID(ctx)
	}
	return nil, fmt.Errorf("unknown Spectrum field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpectrumMutation) SetField(name string, value ent.Value) error {
	switch name {
	case spectrum.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case spectrum.FieldObjID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjID(v)
		return nil
	}
	return fmt.Errorf("unknown Spectrum field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpectrumMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpectrumMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpectrumMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Spectrum numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpectrumMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpectrumMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpectrumMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Spectrum nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpectrumMutation) ResetField(name string) error {
	switch name {
	case spectrum.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case spectrum.FieldObjID:
		m.ResetObjID()
		return nil
	}
	return fmt.Errorf("unknown Spectrum field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpectrumMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpectrumMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpectrumMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpectrumMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpectrumMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpectrumMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpectrumMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Spectrum unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpectrumMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Spectrum edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	created_at           *time.Time
	updated_at           *time.Time
	username             *string
	contact_email        *string
	contact_phone        *string
	preferences          *map[string]interface{}
	enabled              *bool
	clearedFields        map[string]struct{}
	notifications        map[int]struct{}
	removednotifications map[int]struct{}
	clearednotifications bool
	listings             map[int]struct{}
	removedlistings      map[int]struct{}
	clearedlistings      bool
	shifts               map[int]struct{}
	removedshifts        map[int]struct{}
	clearedshifts        bool
	groups               map[int]struct{}
	removedgroups        map[int]struct{}
	clearedgroups        bool
	admin_of             map[int]struct{}
	removedadmin_of      map[int]struct{}
	clearedadmin_of      bool
	done                 bool
	oldValue             func(context.Context) (*User, error)
	predicates           []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetContactEmail sets the "contact_email" field.
func (m *UserMutation) SetContactEmail(s string) {
	m.contact_email = &s
}

// ContactEmail returns the value of the "contact_email" field in the mutation.
func (m *UserMutation) ContactEmail() (r string, exists bool) {
	v := m.contact_email
	if v == nil {
		return
	}
	return *v, true
}

// OldContactEmail returns the old "contact_email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldContactEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactEmail: %w", err)
	}
	return oldValue.ContactEmail, nil
}

// ClearContactEmail clears the value of the "contact_email" field.
func (m *UserMutation) ClearContactEmail() {
	m.contact_email = nil
	m.clearedFields[user.FieldContactEmail] = struct{}{}
}

// ContactEmailCleared returns if the "contact_email" field was cleared in this mutation.
func (m *UserMutation) ContactEmailCleared() bool {
	_, ok := m.clearedFields[user.FieldContactEmail]
	return ok
}

// ResetContactEmail resets all changes to the "contact_email" field.
func (m *UserMutation) ResetContactEmail() {
	m.contact_email = nil
	delete(m.clearedFields, user.FieldContactEmail)
}

// SetContactPhone sets the "contact_phone" field.
func (m *UserMutation) SetContactPhone(s string) {
	m.contact_phone = &s
}

// ContactPhone returns the value of the "contact_phone" field in the mutation.
func (m *UserMutation) ContactPhone() (r string, exists bool) {
	v := m.contact_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldContactPhone returns the old "contact_phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldContactPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactPhone: %w", err)
	}
	return oldValue.ContactPhone, nil
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (m *UserMutation) ClearContactPhone() {
	m.contact_phone = nil
	m.clearedFields[user.FieldContactPhone] = struct{}{}
}

// ContactPhoneCleared returns if the "contact_phone" field was cleared in this mutation.
func (m *UserMutation) ContactPhoneCleared() bool {
	_, ok := m.clearedFields[user.FieldContactPhone]
	return ok
}

// ResetContactPhone resets all changes to the "contact_phone" field.
func (m *UserMutation) ResetContactPhone() {
	m.contact_phone = nil
	delete(m.clearedFields, user.FieldContactPhone)
}

// SetPreferences sets the "preferences" field.
func (m *UserMutation) SetPreferences(value map[string]interface{}) {
	m.preferences = &value
}

// Preferences returns the value of the "preferences" field in the mutation.
func (m *UserMutation) Preferences() (r map[string]interface{}, exists bool) {
	v := m.preferences
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferences returns the old "preferences" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPreferences(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferences: %w", err)
	}
	return oldValue.Preferences, nil
}

// ClearPreferences clears the value of the "preferences" field.
func (m *UserMutation) ClearPreferences() {
	m.preferences = nil
	m.clearedFields[user.FieldPreferences] = struct{}{}
}

// PreferencesCleared returns if the "preferences" field was cleared in this mutation.
func (m *UserMutation) PreferencesCleared() bool {
	_, ok := m.clearedFields[user.FieldPreferences]
	return ok
}

// ResetPreferences resets all changes to the "preferences" field.
func (m *UserMutation) ResetPreferences() {
	m.preferences = nil
	delete(m.clearedFields, user.FieldPreferences)
}

// SetEnabled sets the "enabled" field.
func (m *UserMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *UserMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *UserMutation) ResetEnabled() {
	m.enabled = nil
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by ids.
func (m *UserMutation) AddNotificationIDs(ids ...int) {
	if m.notifications == nil {
		m.notifications = make(map[int]struct{})
	}
	for i := range ids {
		m.notifications[ids[i]] = struct{}{}
	}
}

// ClearNotifications clears the "notifications" edge to the Notification entity.
func (m *UserMutation) ClearNotifications() {
	m.clearednotifications = true
}

// NotificationsCleared reports if the "notifications" edge to the Notification entity was cleared.
func (m *UserMutation) NotificationsCleared() bool {
	return m.clearednotifications
}

// RemoveNotificationIDs removes the "notifications" edge to the Notification entity by IDs.
func (m *UserMutation) RemoveNotificationIDs(ids ...int) {
	if m.removednotifications == nil {
		m.removednotifications = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.notifications, ids[i])
		m.removednotifications[ids[i]] = struct{}{}
	}
}

// RemovedNotifications returns the removed IDs of the "notifications" edge to the Notification entity.
func (m *UserMutation) RemovedNotificationsIDs() (ids []int) {
	for id := range m.removednotifications {
		ids = append(ids, id)
	}
	return
}

// NotificationsIDs returns the "notifications" edge IDs in the mutation.
func (m *UserMutation) NotificationsIDs() (ids []int) {
	for id := range m.notifications {
		ids = append(ids, id)
	}
	return
}

// ResetNotifications resets all changes to the "notifications" edge.
func (m *UserMutation) ResetNotifications() {
	m.notifications = nil
	m.clearednotifications = false
	m.removednotifications = nil
}

// AddListingIDs adds the "listings" edge to the Listing entity by ids.
func (m *UserMutation) AddListingIDs(ids ...int) {
	if m.listings == nil {
		m.listings = make(map[int]struct{})
	}
	for i := range ids {
		m.listings[ids[i]] = struct{}{}
	}
}

// ClearListings clears the "listings" edge to the Listing entity.
func (m *UserMutation) ClearListings() {
	m.clearedlistings = true
}

// ListingsCleared reports if the "listings" edge to the Listing entity was cleared.
func (m *UserMutation) ListingsCleared() bool {
	return m.clearedlistings
}

// RemoveListingIDs removes the "listings" edge to the Listing entity by IDs.
func (m *UserMutation) RemoveListingIDs(ids ...int) {
	if m.removedlistings == nil {
		m.removedlistings = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.listings, ids[i])
		m.removedlistings[ids[i]] = struct{}{}
	}
}

// RemovedListings returns the removed IDs of the "listings" edge to the Listing entity.
func (m *UserMutation) RemovedListingsIDs() (ids []int) {
	for id := range m.removedlistings {
		ids = append(ids, id)
	}
	return
}

// ListingsIDs returns the "listings" edge IDs in the mutation.
func (m *UserMutation) ListingsIDs() (ids []int) {
	for id := range m.listings {
		ids = append(ids, id)
	}
	return
}

// ResetListings resets all changes to the "listings" edge.
func (m *UserMutation) ResetListings() {
	m.listings = nil
	m.clearedlistings = false
	m.removedlistings = nil
}

// AddShiftIDs adds the "shifts" edge to the Shift entity by ids.
func (m *UserMutation) AddShiftIDs(ids ...int) {
	if m.shifts == nil {
		m.shifts = make(map[int]struct{})
	}
	for i := range ids {
		m.shifts[ids[i]] = struct{}{}
	}
}

// ClearShifts clears the "shifts" edge to the Shift entity.
func (m *UserMutation) ClearShifts() {
	m.clearedshifts = true
}

// ShiftsCleared reports if the "shifts" edge to the Shift entity was cleared.
func (m *UserMutation) ShiftsCleared() bool {
	return m.clearedshifts
}

// RemoveShiftIDs removes the "shifts" edge to the Shift entity by IDs.
func (m *UserMutation) RemoveShiftIDs(ids ...int) {
	if m.removedshifts == nil {
		m.removedshifts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.shifts, ids[i])
		m.removedshifts[ids[i]] = struct{}{}
	}
}

// RemovedShifts returns the removed IDs of the "shifts" edge to the Shift entity.
func (m *UserMutation) RemovedShiftsIDs() (ids []int) {
	for id := range m.removedshifts {
		ids = append(ids, id)
	}
	return
}

// ShiftsIDs returns the "shifts" edge IDs in the mutation.
func (m *UserMutation) ShiftsIDs() (ids []int) {
	for id := range m.shifts {
		ids = append(ids, id)
	}
	return
}

// ResetShifts resets all changes to the "shifts" edge.
func (m *UserMutation) ResetShifts() {
	m.shifts = nil
	m.clearedshifts = false
	m.removedshifts = nil
}

// AddGroupIDs adds the "groups" edge to the Group entity by ids.
func (m *UserMutation) AddGroupIDs(ids ...int) {
	if m.groups == nil {
		m.groups = make(map[int]struct{})
	}
	for i := range ids {
		m.groups[ids[i]] = struct{}{}
	}
}

// ClearGroups clears the "groups" edge to the Group entity.
func (m *UserMutation) ClearGroups() {
	m.clearedgroups = true
}

// GroupsCleared reports if the "groups" edge to the Group entity was cleared.
func (m *UserMutation) GroupsCleared() bool {
	return m.clearedgroups
}

// RemoveGroupIDs removes the "groups" edge to the Group entity by IDs.
func (m *UserMutation) RemoveGroupIDs(ids ...int) {
	if m.removedgroups == nil {
		m.removedgroups = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.groups, ids[i])
		m.removedgroups[ids[i]] = struct{}{}
	}
}

// RemovedGroups returns the removed IDs of the "groups" edge to the Group entity.
func (m *UserMutation) RemovedGroupsIDs() (ids []int) {
	for id := range m.removedgroups {
		ids = append(ids, id)
	}
	return
}

// GroupsIDs returns the "groups" edge IDs in the mutation.
func (m *UserMutation) GroupsIDs() (ids []int) {
	for id := range m.groups {
		ids = append(ids, id)
	}
	return
}

// ResetGroups resets all changes to the "groups" edge.
func (m *UserMutation) ResetGroups() {
	m.groups = nil
	m.clearedgroups = false
	m.removedgroups = nil
}

// AddAdminOfIDs adds the "admin_of" edge to the Group entity by ids.
func (m *UserMutation) AddAdminOfIDs(ids ...int) {
	if m.admin_of == nil {
		m.admin_of = make(map[int]struct{})
	}
	for i := range ids {
		m.admin_of[ids[i]] = struct{}{}
	}
}

// ClearAdminOf clears the "admin_of" edge to the Group entity.
func (m *UserMutation) ClearAdminOf() {
	m.clearedadmin_of = true
}

// AdminOfCleared reports if the "admin_of" edge to the Group entity was cleared.
func (m *UserMutation) AdminOfCleared() bool {
	return m.clearedadmin_of
}

// RemoveAdminOfIDs removes the "admin_of" edge to the Group entity by IDs.
func (m *UserMutation) RemoveAdminOfIDs(ids ...int) {
	if m.removedadmin_of == nil {
		m.removedadmin_of = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.admin_of, ids[i])
		m.removedadmin_of[ids[i]] = struct{}{}
	}
}

// RemovedAdminOf returns the removed IDs of the "admin_of" edge to the Group entity.
func (m *UserMutation) RemovedAdminOfIDs() (ids []int) {
	for id := range m.removedadmin_of {
		ids = append(ids, id)
	}
	return
}

// AdminOfIDs returns the "admin_of" edge IDs in the mutation.
func (m *UserMutation) AdminOfIDs() (ids []int) {
	for id := range m.admin_of {
		ids = append(ids, id)
	}
	return
}

// ResetAdminOf resets all changes to the "admin_of" edge.
func (m *UserMutation) ResetAdminOf() {
	m.admin_of = nil
	m.clearedadmin_of = false
	m.removedadmin_of = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.contact_email != nil {
		fields = append(fields, user.FieldContactEmail)
	}
	if m.contact_phone != nil {
		fields = append(fields, user.FieldContactPhone)
	}
	if m.preferences != nil {
		fields = append(fields, user.FieldPreferences)
	}
	if m.enabled != nil {
		fields = append(fields, user.FieldEnabled)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldUsername:
		return m.Username()
	case user.FieldContactEmail:
		return m.ContactEmail()
	case user.FieldContactPhone:
		return m.ContactPhone()
	case user.FieldPreferences:
		return m.Preferences()
	case user.FieldEnabled:
		return m.Enabled()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldContactEmail:
		return m.OldContactEmail(ctx)
	case user.FieldContactPhone:
		return m.OldContactPhone(ctx)
	case user.FieldPreferences:
		return m.OldPreferences(ctx)
	case user.FieldEnabled:
		return m.OldEnabled(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldContactEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactEmail(v)
		return nil
	case user.FieldContactPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactPhone(v)
		return nil
	case user.FieldPreferences:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferences(v)
		return nil
	case user.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldContactEmail) {
		fields = append(fields, user.FieldContactEmail)
	}
	if m.FieldCleared(user.FieldContactPhone) {
		fields = append(fields, user.FieldContactPhone)
	}
	if m.FieldCleared(user.FieldPreferences) {
		fields = append(fields, user.FieldPreferences)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldContactEmail:
		m.ClearContactEmail()
		return nil
	case user.FieldContactPhone:
		m.ClearContactPhone()
		return nil
	case user.FieldPreferences:
		m.ClearPreferences()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldContactEmail:
		m.ResetContactEmail()
		return nil
	case user.FieldContactPhone:
		m.ResetContactPhone()
		return nil
	case user.FieldPreferences:
		m.ResetPreferences()
		return nil
	case user.FieldEnabled:
		m.ResetEnabled()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.notifications != nil {
		edges = append(edges, user.EdgeNotifications)
	}
	if m.listings != nil {
		edges = append(edges, user.EdgeListings)
	}
	if m.shifts != nil {
		edges = append(edges, user.EdgeShifts)
	}
	if m.groups != nil {
		edges = append(edges, user.EdgeGroups)
	}
	if m.admin_of != nil {
		edges = append(edges, user.EdgeAdminOf)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeNotifications:
		ids := make([]ent.Value, 0, len(m.notifications))
		for id := range m.notifications {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeListings:
		ids := make([]ent.Value, 0, len(m.listings))
		for id := range m.listings {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeShifts:
		ids := make([]ent.Value, 0, len(m.shifts))
		for id := range m.shifts {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.groups))
		for id := range m.groups {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAdminOf:
		ids := make([]ent.Value, 0, len(m.admin_of))
		for id := range m.admin_of {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removednotifications != nil {
		edges = append(edges, user.EdgeNotifications)
	}
	if m.removedlistings != nil {
		edges = append(edges, user.EdgeListings)
	}
	if m.removedshifts != nil {
		edges = append(edges, user.EdgeShifts)
	}
	if m.removedgroups != nil {
		edges = append(edges, user.EdgeGroups)
	}
	if m.removedadmin_of != nil {
		edges = append(edges, user.EdgeAdminOf)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeNotifications:
		ids := make([]ent.Value, 0, len(m.removednotifications))
		for id := range m.removednotifications {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeListings:
		ids := make([]ent.Value, 0, len(m.removedlistings))
		for id := range m.removedlistings {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeShifts:
		ids := make([]ent.Value, 0, len(m.removedshifts))
		for id := range m.removedshifts {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.removedgroups))
		for id := range m.removedgroups {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAdminOf:
		ids := make([]ent.Value, 0, len(m.removedadmin_of))
		for id := range m.removedadmin_of {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearednotifications {
		edges = append(edges, user.EdgeNotifications)
	}
	if m.clearedlistings {
		edges = append(edges, user.EdgeListings)
	}
	if m.clearedshifts {
		edges = append(edges, user.EdgeShifts)
	}
	if m.clearedgroups {
		edges = append(edges, user.EdgeGroups)
	}
	if m.clearedadmin_of {
		edges = append(edges, user.EdgeAdminOf)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeNotifications:
		return m.clearednotifications
	case user.EdgeListings:
		return m.clearedlistings
	case user.EdgeShifts:
		return m.clearedshifts
	case user.EdgeGroups:
		return m.clearedgroups
	case user.EdgeAdminOf:
		return m.clearedadmin_of
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeNotifications:
		m.ResetNotifications()
		return nil
	case user.EdgeListings:
		m.ResetListings()
		return nil
	case user.EdgeShifts:
		m.ResetShifts()
		return nil
	case user.EdgeGroups:
		m.ResetGroups()
		return nil
	case user.EdgeAdminOf:
		m.ResetAdminOf()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
