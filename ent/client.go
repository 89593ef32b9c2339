// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"sky-herald.io/herald/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
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
	"sky-herald.io/herald/ent/shift"
	"sky-herald.io/herald/ent/spectrum"
	"sky-herald.io/herald/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Allocation is the client for interacting with the Allocation builders.
	Allocation *AllocationClient
	// Classification is the client for interacting with the Classification builders.
	Classification *ClassificationClient
	// Comment is the client for interacting with the Comment builders.
	Comment *CommentClient
	// FacilityTransaction is the client for interacting with the FacilityTransaction builders.
	FacilityTransaction *FacilityTransactionClient
	// FollowupRequest is the client for interacting with the FollowupRequest builders.
	FollowupRequest *FollowupRequestClient
	// GcnNotice is the client for interacting with the GcnNotice builders.
	GcnNotice *GcnNoticeClient
	// GcnProperty is the client for interacting with the GcnProperty builders.
	GcnProperty *GcnPropertyClient
	// GcnTag is the client for interacting with the GcnTag builders.
	GcnTag *GcnTagClient
	// Group is the client for interacting with the Group builders.
	Group *GroupClient
	// GroupAdmissionRequest is the client for interacting with the GroupAdmissionRequest builders.
	GroupAdmissionRequest *GroupAdmissionRequestClient
	// Listing is the client for interacting with the Listing builders.
	Listing *ListingClient
	// Localization is the client for interacting with the Localization builders.
	Localization *LocalizationClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// ObjAnalysis is the client for interacting with the ObjAnalysis builders.
	ObjAnalysis *ObjAnalysisClient
	// ObservationPlanRequest is the client for interacting with the ObservationPlanRequest builders.
	ObservationPlanRequest *ObservationPlanRequestClient
	// Shift is the client for interacting with the Shift builders.
	Shift *ShiftClient
	// Spectrum is the client for interacting with the Spectrum builders.
	Spectrum *SpectrumClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Allocation = NewAllocationClient(c.config)
	c.Classification = NewClassificationClient(c.config)
	c.Comment = NewCommentClient(c.config)
	c.FacilityTransaction = NewFacilityTransactionClient(c.config)
	c.FollowupRequest = NewFollowupRequestClient(c.config)
	c.GcnNotice = NewGcnNoticeClient(c.config)
	c.GcnProperty = NewGcnPropertyClient(c.config)
	c.GcnTag = NewGcnTagClient(c.config)
	c.Group = NewGroupClient(c.config)
	c.GroupAdmissionRequest = NewGroupAdmissionRequestClient(c.config)
	c.Listing = NewListingClient(c.config)
	c.Localization = NewLocalizationClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.ObjAnalysis = NewObjAnalysisClient(c.config)
	c.ObservationPlanRequest = NewObservationPlanRequestClient(c.config)
	c.Shift = NewShiftClient(c.config)
	c.Spectrum = NewSpectrumClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		Allocation:             NewAllocationClient(cfg),
		Classification:         NewClassificationClient(cfg),
		Comment:                NewCommentClient(cfg),
		FacilityTransaction:    NewFacilityTransactionClient(cfg),
		FollowupRequest:        NewFollowupRequestClient(cfg),
		GcnNotice:              NewGcnNoticeClient(cfg),
		GcnProperty:            NewGcnPropertyClient(cfg),
		GcnTag:                 NewGcnTagClient(cfg),
		Group:                  NewGroupClient(cfg),
		GroupAdmissionRequest:  NewGroupAdmissionRequestClient(cfg),
		Listing:                NewListingClient(cfg),
		Localization:           NewLocalizationClient(cfg),
		Notification:           NewNotificationClient(cfg),
		ObjAnalysis:            NewObjAnalysisClient(cfg),
		ObservationPlanRequest: NewObservationPlanRequestClient(cfg),
		Shift:                  NewShiftClient(cfg),
		Spectrum:               NewSpectrumClient(cfg),
		User:                   NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		Allocation:             NewAllocationClient(cfg),
		Classification:         NewClassificationClient(cfg),
		Comment:                NewCommentClient(cfg),
		FacilityTransaction:    NewFacilityTransactionClient(cfg),
		FollowupRequest:        NewFollowupRequestClient(cfg),
		GcnNotice:              NewGcnNoticeClient(cfg),
		GcnProperty:            NewGcnPropertyClient(cfg),
		GcnTag:                 NewGcnTagClient(cfg),
		Group:                  NewGroupClient(cfg),
		GroupAdmissionRequest:  NewGroupAdmissionRequestClient(cfg),
		Listing:                NewListingClient(cfg),
		Localization:           NewLocalizationClient(cfg),
		Notification:           NewNotificationClient(cfg),
		ObjAnalysis:            NewObjAnalysisClient(cfg),
		ObservationPlanRequest: NewObservationPlanRequestClient(cfg),
		Shift:                  NewShiftClient(cfg),
		Spectrum:               NewSpectrumClient(cfg),
		User:                   NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Allocation.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Allocation, c.Classification, c.Comment, c.FacilityTransaction,
		c.FollowupRequest, c.GcnNotice, c.GcnProperty, c.GcnTag, c.Group,
		c.GroupAdmissionRequest, c.Listing, c.Localization, c.Notification,
		c.ObjAnalysis, c.ObservationPlanRequest, c.Shift, c.Spectrum, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Allocation, c.Classification, c.Comment, c.FacilityTransaction,
		c.FollowupRequest, c.GcnNotice, c.GcnProperty, c.GcnTag, c.Group,
		c.GroupAdmissionRequest, c.Listing, c.Localization, c.Notification,
		c.ObjAnalysis, c.ObservationPlanRequest, c.Shift, c.Spectrum, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AllocationMutation:
		return c.Allocation.mutate(ctx, m)
	case *ClassificationMutation:
		return c.Classification.mutate(ctx, m)
	case *CommentMutation:
		return c.Comment.mutate(ctx, m)
	case *FacilityTransactionMutation:
		return c.FacilityTransaction.mutate(ctx, m)
	case *FollowupRequestMutation:
		return c.FollowupRequest.mutate(ctx, m)
	case *GcnNoticeMutation:
		return c.GcnNotice.mutate(ctx, m)
	case *GcnPropertyMutation:
		return c.GcnProperty.mutate(ctx, m)
	case *GcnTagMutation:
		return c.GcnTag.mutate(ctx, m)
	case *GroupMutation:
		return c.Group.mutate(ctx, m)
	case *GroupAdmissionRequestMutation:
		return c.GroupAdmissionRequest.mutate(ctx, m)
	case *ListingMutation:
		return c.Listing.mutate(ctx, m)
	case *LocalizationMutation:
		return c.Localization.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *ObjAnalysisMutation:
		return c.ObjAnalysis.mutate(ctx, m)
	case *ObservationPlanRequestMutation:
		return c.ObservationPlanRequest.mutate(ctx, m)
	case *ShiftMutation:
		return c.Shift.mutate(ctx, m)
	case *SpectrumMutation:
		return c.Spectrum.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AllocationClient is a client for the Allocation schema.
type AllocationClient struct {
	config
}

// NewAllocationClient returns a client for the Allocation from the given config.
func NewAllocationClient(c config) *AllocationClient {
	return &AllocationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `allocation.Hooks(f(g(h())))`.
func (c *AllocationClient) Use(hooks ...Hook) {
	c.hooks.Allocation = append(c.hooks.Allocation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `allocation.Intercept(f(g(h())))`.
func (c *AllocationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Allocation = append(c.inters.Allocation, interceptors...)
}

// Create returns a builder for creating a Allocation entity.
func (c *AllocationClient) Create() *AllocationCreate {
	mutation := newAllocationMutation(c.config, OpCreate)
	return &AllocationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Allocation entities.
func (c *AllocationClient) CreateBulk(builders ...*AllocationCreate) *AllocationCreateBulk {
	return &AllocationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AllocationClient) MapCreateBulk(slice any, setFunc func(*AllocationCreate, int)) *AllocationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AllocationCreateBulk{err: fmt.Errorf("calling to AllocationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AllocationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AllocationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Allocation.
func (c *AllocationClient) Update() *AllocationUpdate {
	mutation := newAllocationMutation(c.config, OpUpdate)
	return &AllocationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AllocationClient) UpdateOne(_m *Allocation) *AllocationUpdateOne {
	mutation := newAllocationMutation(c.config, OpUpdateOne, withAllocation(_m))
	return &AllocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AllocationClient) UpdateOneID(id int) *AllocationUpdateOne {
	mutation := newAllocationMutation(c.config, OpUpdateOne, withAllocationID(id))
	return &AllocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Allocation.
func (c *AllocationClient) Delete() *AllocationDelete {
	mutation := newAllocationMutation(c.config, OpDelete)
	return &AllocationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AllocationClient) DeleteOne(_m *Allocation) *AllocationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AllocationClient) DeleteOneID(id int) *AllocationDeleteOne {
	builder := c.Delete().Where(allocation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AllocationDeleteOne{builder}
}

// Query returns a query builder for Allocation.
func (c *AllocationClient) Query() *AllocationQuery {
	return &AllocationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAllocation},
		inters: c.Interceptors(),
	}
}

// Get returns a Allocation entity by its id.
func (c *AllocationClient) Get(ctx context.Context, id int) (*Allocation, error) {
	return c.Query().Where(allocation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AllocationClient) GetX(ctx context.Context, id int) *Allocation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroup queries the group edge of a Allocation.
func (c *AllocationClient) QueryGroup(_m *Allocation) *GroupQuery {
	query := (&GroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(allocation.Table, allocation.FieldID, id),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, allocation.GroupTable, allocation.GroupColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFollowupRequests queries the followup_requests edge of a Allocation.
func (c *AllocationClient) QueryFollowupRequests(_m *Allocation) *FollowupRequestQuery {
	query := (&FollowupRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(allocation.Table, allocation.FieldID, id),
			sqlgraph.To(followuprequest.Table, followuprequest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, allocation.FollowupRequestsTable, allocation.FollowupRequestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryObservationPlanRequests queries the observation_plan_requests edge of a Allocation.
func (c *AllocationClient) QueryObservationPlanRequests(_m *Allocation) *ObservationPlanRequestQuery {
	query := (&ObservationPlanRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(allocation.Table, allocation.FieldID, id),
			sqlgraph.To(observationplanrequest.Table, observationplanrequest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, allocation.ObservationPlanRequestsTable, allocation.ObservationPlanRequestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AllocationClient) Hooks() []Hook {
	return c.hooks.Allocation
}

// Interceptors returns the client interceptors.
func (c *AllocationClient) Interceptors() []Interceptor {
	return c.inters.Allocation
}

func (c *AllocationClient) mutate(ctx context.Context, m *AllocationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AllocationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AllocationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AllocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AllocationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Allocation mutation op: %q", m.Op())
	}
}

// ClassificationClient is a client for the Classification schema.
type ClassificationClient struct {
	config
}

// NewClassificationClient returns a client for the Classification from the given config.
func NewClassificationClient(c config) *ClassificationClient {
	return &ClassificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `classification.Hooks(f(g(h())))`.
func (c *ClassificationClient) Use(hooks ...Hook) {
	c.hooks.Classification = append(c.hooks.Classification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `classification.Intercept(f(g(h())))`.
func (c *ClassificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Classification = append(c.inters.Classification, interceptors...)
}

// Create returns a builder for creating a Classification entity.
func (c *ClassificationClient) Create() *ClassificationCreate {
	mutation := newClassificationMutation(c.config, OpCreate)
	return &ClassificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Classification entities.
func (c *ClassificationClient) CreateBulk(builders ...*ClassificationCreate) *ClassificationCreateBulk {
	return &ClassificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClassificationClient) MapCreateBulk(slice any, setFunc func(*ClassificationCreate, int)) *ClassificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClassificationCreateBulk{err: fmt.Errorf("calling to ClassificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClassificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClassificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Classification.
func (c *ClassificationClient) Update() *ClassificationUpdate {
	mutation := newClassificationMutation(c.config, OpUpdate)
	return &ClassificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClassificationClient) UpdateOne(_m *Classification) *ClassificationUpdateOne {
	mutation := newClassificationMutation(c.config, OpUpdateOne, withClassification(_m))
	return &ClassificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClassificationClient) UpdateOneID(id int) *ClassificationUpdateOne {
	mutation := newClassificationMutation(c.config, OpUpdateOne, withClassificationID(id))
	return &ClassificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Classification.
func (c *ClassificationClient) Delete() *ClassificationDelete {
	mutation := newClassificationMutation(c.config, OpDelete)
	return &ClassificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClassificationClient) DeleteOne(_m *Classification) *ClassificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClassificationClient) DeleteOneID(id int) *ClassificationDeleteOne {
	builder := c.Delete().Where(classification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClassificationDeleteOne{builder}
}

// Query returns a query builder for Classification.
func (c *ClassificationClient) Query() *ClassificationQuery {
	return &ClassificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClassification},
		inters: c.Interceptors(),
	}
}

// Get returns a Classification entity by its id.
func (c *ClassificationClient) Get(ctx context.Context, id int) (*Classification, error) {
	return c.Query().Where(classification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClassificationClient) GetX(ctx context.Context, id int) *Classification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClassificationClient) Hooks() []Hook {
	return c.hooks.Classification
}

// Interceptors returns the client interceptors.
func (c *ClassificationClient) Interceptors() []Interceptor {
	return c.inters.Classification
}

func (c *ClassificationClient) mutate(ctx context.Context, m *ClassificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClassificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClassificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClassificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClassificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Classification mutation op: %q", m.Op())
	}
}

// CommentClient is a client for the Comment schema.
type CommentClient struct {
	config
}

// NewCommentClient returns a client for the Comment from the given config.
func NewCommentClient(c config) *CommentClient {
	return &CommentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `comment.Hooks(f(g(h())))`.
func (c *CommentClient) Use(hooks ...Hook) {
	c.hooks.Comment = append(c.hooks.Comment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `comment.Intercept(f(g(h())))`.
func (c *CommentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Comment = append(c.inters.Comment, interceptors...)
}

// Create returns a builder for creating a Comment entity.
func (c *CommentClient) Create() *CommentCreate {
	mutation := newCommentMutation(c.config, OpCreate)
	return &CommentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Comment entities.
func (c *CommentClient) CreateBulk(builders ...*CommentCreate) *CommentCreateBulk {
	return &CommentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommentClient) MapCreateBulk(slice any, setFunc func(*CommentCreate, int)) *CommentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommentCreateBulk{err: fmt.Errorf("calling to CommentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Comment.
func (c *CommentClient) Update() *CommentUpdate {
	mutation := newCommentMutation(c.config, OpUpdate)
	return &CommentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommentClient) UpdateOne(_m *Comment) *CommentUpdateOne {
	mutation := newCommentMutation(c.config, OpUpdateOne, withComment(_m))
	return &CommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommentClient) UpdateOneID(id int) *CommentUpdateOne {
	mutation := newCommentMutation(c.config, OpUpdateOne, withCommentID(id))
	return &CommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Comment.
func (c *CommentClient) Delete() *CommentDelete {
	mutation := newCommentMutation(c.config, OpDelete)
	return &CommentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommentClient) DeleteOne(_m *Comment) *CommentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommentClient) DeleteOneID(id int) *CommentDeleteOne {
	builder := c.Delete().Where(comment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommentDeleteOne{builder}
}

// Query returns a query builder for Comment.
func (c *CommentClient) Query() *CommentQuery {
	return &CommentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeComment},
		inters: c.Interceptors(),
	}
}

// Get returns a Comment entity by its id.
func (c *CommentClient) Get(ctx context.Context, id int) (*Comment, error) {
	return c.Query().Where(comment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommentClient) GetX(ctx context.Context, id int) *Comment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CommentClient) Hooks() []Hook {
	return c.hooks.Comment
}

// Interceptors returns the client interceptors.
func (c *CommentClient) Interceptors() []Interceptor {
	return c.inters.Comment
}

func (c *CommentClient) mutate(ctx context.Context, m *CommentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Comment mutation op: %q", m.Op())
	}
}

// FacilityTransactionClient is a client for the FacilityTransaction schema.
type FacilityTransactionClient struct {
	config
}

// NewFacilityTransactionClient returns a client for the FacilityTransaction from the given config.
func NewFacilityTransactionClient(c config) *FacilityTransactionClient {
	return &FacilityTransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `facilitytransaction.Hooks(f(g(h())))`.
func (c *FacilityTransactionClient) Use(hooks ...Hook) {
	c.hooks.FacilityTransaction = append(c.hooks.FacilityTransaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `facilitytransaction.Intercept(f(g(h())))`.
func (c *FacilityTransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.FacilityTransaction = append(c.inters.FacilityTransaction, interceptors...)
}

// Create returns a builder for creating a FacilityTransaction entity.
func (c *FacilityTransactionClient) Create() *FacilityTransactionCreate {
	mutation := newFacilityTransactionMutation(c.config, OpCreate)
	return &FacilityTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FacilityTransaction entities.
func (c *FacilityTransactionClient) CreateBulk(builders ...*FacilityTransactionCreate) *FacilityTransactionCreateBulk {
	return &FacilityTransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FacilityTransactionClient) MapCreateBulk(slice any, setFunc func(*FacilityTransactionCreate, int)) *FacilityTransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FacilityTransactionCreateBulk{err: fmt.Errorf("calling to FacilityTransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FacilityTransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FacilityTransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FacilityTransaction.
func (c *FacilityTransactionClient) Update() *FacilityTransactionUpdate {
	mutation := newFacilityTransactionMutation(c.config, OpUpdate)
	return &FacilityTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FacilityTransactionClient) UpdateOne(_m *FacilityTransaction) *FacilityTransactionUpdateOne {
	mutation := newFacilityTransactionMutation(c.config, OpUpdateOne, withFacilityTransaction(_m))
	return &FacilityTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FacilityTransactionClient) UpdateOneID(id int) *FacilityTransactionUpdateOne {
	mutation := newFacilityTransactionMutation(c.config, OpUpdateOne, withFacilityTransactionID(id))
	return &FacilityTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FacilityTransaction.
func (c *FacilityTransactionClient) Delete() *FacilityTransactionDelete {
	mutation := newFacilityTransactionMutation(c.config, OpDelete)
	return &FacilityTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FacilityTransactionClient) DeleteOne(_m *FacilityTransaction) *FacilityTransactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FacilityTransactionClient) DeleteOneID(id int) *FacilityTransactionDeleteOne {
	builder := c.Delete().Where(facilitytransaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FacilityTransactionDeleteOne{builder}
}

// Query returns a query builder for FacilityTransaction.
func (c *FacilityTransactionClient) Query() *FacilityTransactionQuery {
	return &FacilityTransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFacilityTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a FacilityTransaction entity by its id.
func (c *FacilityTransactionClient) Get(ctx context.Context, id int) (*FacilityTransaction, error) {
	return c.Query().Where(facilitytransaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FacilityTransactionClient) GetX(ctx context.Context, id int) *FacilityTransaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFollowupRequest queries the followup_request edge of a FacilityTransaction.
func (c *FacilityTransactionClient) QueryFollowupRequest(_m *FacilityTransaction) *FollowupRequestQuery {
	query := (&FollowupRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(facilitytransaction.Table, facilitytransaction.FieldID, id),
			sqlgraph.To(followuprequest.Table, followuprequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, facilitytransaction.FollowupRequestTable, facilitytransaction.FollowupRequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FacilityTransactionClient) Hooks() []Hook {
	return c.hooks.FacilityTransaction
}

// Interceptors returns the client interceptors.
func (c *FacilityTransactionClient) Interceptors() []Interceptor {
	return c.inters.FacilityTransaction
}

func (c *FacilityTransactionClient) mutate(ctx context.Context, m *FacilityTransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FacilityTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FacilityTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FacilityTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FacilityTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FacilityTransaction mutation op: %q", m.Op())
	}
}

// FollowupRequestClient is a client for the FollowupRequest schema.
type FollowupRequestClient struct {
	config
}

// NewFollowupRequestClient returns a client for the FollowupRequest from the given config.
func NewFollowupRequestClient(c config) *FollowupRequestClient {
	return &FollowupRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `followuprequest.Hooks(f(g(h())))`.
func (c *FollowupRequestClient) Use(hooks ...Hook) {
	c.hooks.FollowupRequest = append(c.hooks.FollowupRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `followuprequest.Intercept(f(g(h())))`.
func (c *FollowupRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.FollowupRequest = append(c.inters.FollowupRequest, interceptors...)
}

// Create returns a builder for creating a FollowupRequest entity.
func (c *FollowupRequestClient) Create() *FollowupRequestCreate {
	mutation := newFollowupRequestMutation(c.config, OpCreate)
	return &FollowupRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FollowupRequest entities.
func (c *FollowupRequestClient) CreateBulk(builders ...*FollowupRequestCreate) *FollowupRequestCreateBulk {
	return &FollowupRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FollowupRequestClient) MapCreateBulk(slice any, setFunc func(*FollowupRequestCreate, int)) *FollowupRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FollowupRequestCreateBulk{err: fmt.Errorf("calling to FollowupRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FollowupRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FollowupRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FollowupRequest.
func (c *FollowupRequestClient) Update() *FollowupRequestUpdate {
	mutation := newFollowupRequestMutation(c.config, OpUpdate)
	return &FollowupRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FollowupRequestClient) UpdateOne(_m *FollowupRequest) *FollowupRequestUpdateOne {
	mutation := newFollowupRequestMutation(c.config, OpUpdateOne, withFollowupRequest(_m))
	return &FollowupRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FollowupRequestClient) UpdateOneID(id int) *FollowupRequestUpdateOne {
	mutation := newFollowupRequestMutation(c.config, OpUpdateOne, withFollowupRequestID(id))
	return &FollowupRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FollowupRequest.
func (c *FollowupRequestClient) Delete() *FollowupRequestDelete {
	mutation := newFollowupRequestMutation(c.config, OpDelete)
	return &FollowupRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FollowupRequestClient) DeleteOne(_m *FollowupRequest) *FollowupRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FollowupRequestClient) DeleteOneID(id int) *FollowupRequestDeleteOne {
	builder := c.Delete().Where(followuprequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FollowupRequestDeleteOne{builder}
}

// Query returns a query builder for FollowupRequest.
func (c *FollowupRequestClient) Query() *FollowupRequestQuery {
	return &FollowupRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFollowupRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a FollowupRequest entity by its id.
func (c *FollowupRequestClient) Get(ctx context.Context, id int) (*FollowupRequest, error) {
	return c.Query().Where(followuprequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FollowupRequestClient) GetX(ctx context.Context, id int) *FollowupRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAllocation queries the allocation edge of a FollowupRequest.
func (c *FollowupRequestClient) QueryAllocation(_m *FollowupRequest) *AllocationQuery {
	query := (&AllocationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(followuprequest.Table, followuprequest.FieldID, id),
			sqlgraph.To(allocation.Table, allocation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, followuprequest.AllocationTable, followuprequest.AllocationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRequester queries the requester edge of a FollowupRequest.
func (c *FollowupRequestClient) QueryRequester(_m *FollowupRequest) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(followuprequest.Table, followuprequest.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, followuprequest.RequesterTable, followuprequest.RequesterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTransactions queries the transactions edge of a FollowupRequest.
func (c *FollowupRequestClient) QueryTransactions(_m *FollowupRequest) *FacilityTransactionQuery {
	query := (&FacilityTransactionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(followuprequest.Table, followuprequest.FieldID, id),
			sqlgraph.To(facilitytransaction.Table, facilitytransaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, followuprequest.TransactionsTable, followuprequest.TransactionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FollowupRequestClient) Hooks() []Hook {
	return c.hooks.FollowupRequest
}

// Interceptors returns the client interceptors.
func (c *FollowupRequestClient) Interceptors() []Interceptor {
	return c.inters.FollowupRequest
}

func (c *FollowupRequestClient) mutate(ctx context.Context, m *FollowupRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FollowupRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FollowupRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FollowupRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FollowupRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FollowupRequest mutation op: %q", m.Op())
	}
}

// GcnNoticeClient is a client for the GcnNotice schema.
type GcnNoticeClient struct {
	config
}

// NewGcnNoticeClient returns a client for the GcnNotice from the given config.
func NewGcnNoticeClient(c config) *GcnNoticeClient {
	return &GcnNoticeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gcnnotice.Hooks(f(g(h())))`.
func (c *GcnNoticeClient) Use(hooks ...Hook) {
	c.hooks.GcnNotice = append(c.hooks.GcnNotice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gcnnotice.Intercept(f(g(h())))`.
func (c *GcnNoticeClient) Intercept(interceptors ...Interceptor) {
	c.inters.GcnNotice = append(c.inters.GcnNotice, interceptors...)
}

// Create returns a builder for creating a GcnNotice entity.
func (c *GcnNoticeClient) Create() *GcnNoticeCreate {
	mutation := newGcnNoticeMutation(c.config, OpCreate)
	return &GcnNoticeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GcnNotice entities.
func (c *GcnNoticeClient) CreateBulk(builders ...*GcnNoticeCreate) *GcnNoticeCreateBulk {
	return &GcnNoticeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GcnNoticeClient) MapCreateBulk(slice any, setFunc func(*GcnNoticeCreate, int)) *GcnNoticeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GcnNoticeCreateBulk{err: fmt.Errorf("calling to GcnNoticeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GcnNoticeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GcnNoticeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GcnNotice.
func (c *GcnNoticeClient) Update() *GcnNoticeUpdate {
	mutation := newGcnNoticeMutation(c.config, OpUpdate)
	return &GcnNoticeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GcnNoticeClient) UpdateOne(_m *GcnNotice) *GcnNoticeUpdateOne {
	mutation := newGcnNoticeMutation(c.config, OpUpdateOne, withGcnNotice(_m))
	return &GcnNoticeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GcnNoticeClient) UpdateOneID(id int) *GcnNoticeUpdateOne {
	mutation := newGcnNoticeMutation(c.config, OpUpdateOne, withGcnNoticeID(id))
	return &GcnNoticeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GcnNotice.
func (c *GcnNoticeClient) Delete() *GcnNoticeDelete {
	mutation := newGcnNoticeMutation(c.config, OpDelete)
	return &GcnNoticeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GcnNoticeClient) DeleteOne(_m *GcnNotice) *GcnNoticeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GcnNoticeClient) DeleteOneID(id int) *GcnNoticeDeleteOne {
	builder := c.Delete().Where(gcnnotice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GcnNoticeDeleteOne{builder}
}

// Query returns a query builder for GcnNotice.
func (c *GcnNoticeClient) Query() *GcnNoticeQuery {
	return &GcnNoticeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGcnNotice},
		inters: c.Interceptors(),
	}
}

// Get returns a GcnNotice entity by its id.
func (c *GcnNoticeClient) Get(ctx context.Context, id int) (*GcnNotice, error) {
	return c.Query().Where(gcnnotice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GcnNoticeClient) GetX(ctx context.Context, id int) *GcnNotice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GcnNoticeClient) Hooks() []Hook {
	return c.hooks.GcnNotice
}

// Interceptors returns the client interceptors.
func (c *GcnNoticeClient) Interceptors() []Interceptor {
	return c.inters.GcnNotice
}

func (c *GcnNoticeClient) mutate(ctx context.Context, m *GcnNoticeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GcnNoticeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GcnNoticeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GcnNoticeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GcnNoticeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GcnNotice mutation op: %q", m.Op())
	}
}

// GcnPropertyClient is a client for the GcnProperty schema.
type GcnPropertyClient struct {
	config
}

// NewGcnPropertyClient returns a client for the GcnProperty from the given config.
func NewGcnPropertyClient(c config) *GcnPropertyClient {
	return &GcnPropertyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gcnproperty.Hooks(f(g(h())))`.
func (c *GcnPropertyClient) Use(hooks ...Hook) {
	c.hooks.GcnProperty = append(c.hooks.GcnProperty, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gcnproperty.Intercept(f(g(h())))`.
func (c *GcnPropertyClient) Intercept(interceptors ...Interceptor) {
	c.inters.GcnProperty = append(c.inters.GcnProperty, interceptors...)
}

// Create returns a builder for creating a GcnProperty entity.
func (c *GcnPropertyClient) Create() *GcnPropertyCreate {
	mutation := newGcnPropertyMutation(c.config, OpCreate)
	return &GcnPropertyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GcnProperty entities.
func (c *GcnPropertyClient) CreateBulk(builders ...*GcnPropertyCreate) *GcnPropertyCreateBulk {
	return &GcnPropertyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GcnPropertyClient) MapCreateBulk(slice any, setFunc func(*GcnPropertyCreate, int)) *GcnPropertyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GcnPropertyCreateBulk{err: fmt.Errorf("calling to GcnPropertyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GcnPropertyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GcnPropertyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GcnProperty.
func (c *GcnPropertyClient) Update() *GcnPropertyUpdate {
	mutation := newGcnPropertyMutation(c.config, OpUpdate)
	return &GcnPropertyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GcnPropertyClient) UpdateOne(_m *GcnProperty) *GcnPropertyUpdateOne {
	mutation := newGcnPropertyMutation(c.config, OpUpdateOne, withGcnProperty(_m))
	return &GcnPropertyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GcnPropertyClient) UpdateOneID(id int) *GcnPropertyUpdateOne {
	mutation := newGcnPropertyMutation(c.config, OpUpdateOne, withGcnPropertyID(id))
	return &GcnPropertyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GcnProperty.
func (c *GcnPropertyClient) Delete() *GcnPropertyDelete {
	mutation := newGcnPropertyMutation(c.config, OpDelete)
	return &GcnPropertyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GcnPropertyClient) DeleteOne(_m *GcnProperty) *GcnPropertyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GcnPropertyClient) DeleteOneID(id int) *GcnPropertyDeleteOne {
	builder := c.Delete().Where(gcnproperty.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GcnPropertyDeleteOne{builder}
}

// Query returns a query builder for GcnProperty.
func (c *GcnPropertyClient) Query() *GcnPropertyQuery {
	return &GcnPropertyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGcnProperty},
		inters: c.Interceptors(),
	}
}

// Get returns a GcnProperty entity by its id.
func (c *GcnPropertyClient) Get(ctx context.Context, id int) (*GcnProperty, error) {
	return c.Query().Where(gcnproperty.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GcnPropertyClient) GetX(ctx context.Context, id int) *GcnProperty {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GcnPropertyClient) Hooks() []Hook {
	return c.hooks.GcnProperty
}

// Interceptors returns the client interceptors.
func (c *GcnPropertyClient) Interceptors() []Interceptor {
	return c.inters.GcnProperty
}

func (c *GcnPropertyClient) mutate(ctx context.Context, m *GcnPropertyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GcnPropertyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GcnPropertyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GcnPropertyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GcnPropertyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GcnProperty mutation op: %q", m.Op())
	}
}

// GcnTagClient is a client for the GcnTag schema.
type GcnTagClient struct {
	config
}

// NewGcnTagClient returns a client for the GcnTag from the given config.
func NewGcnTagClient(c config) *GcnTagClient {
	return &GcnTagClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gcntag.Hooks(f(g(h())))`.
func (c *GcnTagClient) Use(hooks ...Hook) {
	c.hooks.GcnTag = append(c.hooks.GcnTag, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gcntag.Intercept(f(g(h())))`.
func (c *GcnTagClient) Intercept(interceptors ...Interceptor) {
	c.inters.GcnTag = append(c.inters.GcnTag, interceptors...)
}

// Create returns a builder for creating a GcnTag entity.
func (c *GcnTagClient) Create() *GcnTagCreate {
	mutation := newGcnTagMutation(c.config, OpCreate)
	return &GcnTagCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GcnTag entities.
func (c *GcnTagClient) CreateBulk(builders ...*GcnTagCreate) *GcnTagCreateBulk {
	return &GcnTagCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GcnTagClient) MapCreateBulk(slice any, setFunc func(*GcnTagCreate, int)) *GcnTagCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GcnTagCreateBulk{err: fmt.Errorf("calling to GcnTagClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GcnTagCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GcnTagCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GcnTag.
func (c *GcnTagClient) Update() *GcnTagUpdate {
	mutation := newGcnTagMutation(c.config, OpUpdate)
	return &GcnTagUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GcnTagClient) UpdateOne(_m *GcnTag) *GcnTagUpdateOne {
	mutation := newGcnTagMutation(c.config, OpUpdateOne, withGcnTag(_m))
	return &GcnTagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GcnTagClient) UpdateOneID(id int) *GcnTagUpdateOne {
	mutation := newGcnTagMutation(c.config, OpUpdateOne, withGcnTagID(id))
	return &GcnTagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GcnTag.
func (c *GcnTagClient) Delete() *GcnTagDelete {
	mutation := newGcnTagMutation(c.config, OpDelete)
	return &GcnTagDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GcnTagClient) DeleteOne(_m *GcnTag) *GcnTagDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GcnTagClient) DeleteOneID(id int) *GcnTagDeleteOne {
	builder := c.Delete().Where(gcntag.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GcnTagDeleteOne{builder}
}

// Query returns a query builder for GcnTag.
func (c *GcnTagClient) Query() *GcnTagQuery {
	return &GcnTagQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGcnTag},
		inters: c.Interceptors(),
	}
}

// Get returns a GcnTag entity by its id.
func (c *GcnTagClient) Get(ctx context.Context, id int) (*GcnTag, error) {
	return c.Query().Where(gcntag.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GcnTagClient) GetX(ctx context.Context, id int) *GcnTag {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GcnTagClient) Hooks() []Hook {
	return c.hooks.GcnTag
}

// Interceptors returns the client interceptors.
func (c *GcnTagClient) Interceptors() []Interceptor {
	return c.inters.GcnTag
}

func (c *GcnTagClient) mutate(ctx context.Context, m *GcnTagMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GcnTagCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GcnTagUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GcnTagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GcnTagDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GcnTag mutation op: %q", m.Op())
	}
}

// GroupClient is a client for the Group schema.
type GroupClient struct {
	config
}

// NewGroupClient returns a client for the Group from the given config.
func NewGroupClient(c config) *GroupClient {
	return &GroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `group.Hooks(f(g(h())))`.
func (c *GroupClient) Use(hooks ...Hook) {
	c.hooks.Group = append(c.hooks.Group, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `group.Intercept(f(g(h())))`.
func (c *GroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.Group = append(c.inters.Group, interceptors...)
}

// Create returns a builder for creating a Group entity.
func (c *GroupClient) Create() *GroupCreate {
	mutation := newGroupMutation(c.config, OpCreate)
	return &GroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Group entities.
func (c *GroupClient) CreateBulk(builders ...*GroupCreate) *GroupCreateBulk {
	return &GroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GroupClient) MapCreateBulk(slice any, setFunc func(*GroupCreate, int)) *GroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GroupCreateBulk{err: fmt.Errorf("calling to GroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Group.
func (c *GroupClient) Update() *GroupUpdate {
	mutation := newGroupMutation(c.config, OpUpdate)
	return &GroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GroupClient) UpdateOne(_m *Group) *GroupUpdateOne {
	mutation := newGroupMutation(c.config, OpUpdateOne, withGroup(_m))
	return &GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GroupClient) UpdateOneID(id int) *GroupUpdateOne {
	mutation := newGroupMutation(c.config, OpUpdateOne, withGroupID(id))
	return &GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Group.
func (c *GroupClient) Delete() *GroupDelete {
	mutation := newGroupMutation(c.config, OpDelete)
	return &GroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GroupClient) DeleteOne(_m *Group) *GroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GroupClient) DeleteOneID(id int) *GroupDeleteOne {
	builder := c.Delete().Where(group.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GroupDeleteOne{builder}
}

// Query returns a query builder for Group.
func (c *GroupClient) Query() *GroupQuery {
	return &GroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a Group entity by its id.
func (c *GroupClient) Get(ctx context.Context, id int) (*Group, error) {
	return c.Query().Where(group.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GroupClient) GetX(ctx context.Context, id int) *Group {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUsers queries the users edge of a Group.
func (c *GroupClient) QueryUsers(_m *Group) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(group.Table, group.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, group.UsersTable, group.UsersPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAdmins queries the admins edge of a Group.
func (c *GroupClient) QueryAdmins(_m *Group) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(group.Table, group.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, group.AdminsTable, group.AdminsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAllocations queries the allocations edge of a Group.
func (c *GroupClient) QueryAllocations(_m *Group) *AllocationQuery {
	query := (&AllocationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(group.Table, group.FieldID, id),
			sqlgraph.To(allocation.Table, allocation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, group.AllocationsTable, group.AllocationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GroupClient) Hooks() []Hook {
	return c.hooks.Group
}

// Interceptors returns the client interceptors.
func (c *GroupClient) Interceptors() []Interceptor {
	return c.inters.Group
}

func (c *GroupClient) mutate(ctx context.Context, m *GroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Group mutation op: %q", m.Op())
	}
}

// GroupAdmissionRequestClient is a client for the GroupAdmissionRequest schema.
type GroupAdmissionRequestClient struct {
	config
}

// NewGroupAdmissionRequestClient returns a client for the GroupAdmissionRequest from the given config.
func NewGroupAdmissionRequestClient(c config) *GroupAdmissionRequestClient {
	return &GroupAdmissionRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `groupadmissionrequest.Hooks(f(g(h())))`.
func (c *GroupAdmissionRequestClient) Use(hooks ...Hook) {
	c.hooks.GroupAdmissionRequest = append(c.hooks.GroupAdmissionRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `groupadmissionrequest.Intercept(f(g(h())))`.
func (c *GroupAdmissionRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.GroupAdmissionRequest = append(c.inters.GroupAdmissionRequest, interceptors...)
}

// Create returns a builder for creating a GroupAdmissionRequest entity.
func (c *GroupAdmissionRequestClient) Create() *GroupAdmissionRequestCreate {
	mutation := newGroupAdmissionRequestMutation(c.config, OpCreate)
	return &GroupAdmissionRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GroupAdmissionRequest entities.
func (c *GroupAdmissionRequestClient) CreateBulk(builders ...*GroupAdmissionRequestCreate) *GroupAdmissionRequestCreateBulk {
	return &GroupAdmissionRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GroupAdmissionRequestClient) MapCreateBulk(slice any, setFunc func(*GroupAdmissionRequestCreate, int)) *GroupAdmissionRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GroupAdmissionRequestCreateBulk{err: fmt.Errorf("calling to GroupAdmissionRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GroupAdmissionRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GroupAdmissionRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GroupAdmissionRequest.
func (c *GroupAdmissionRequestClient) Update() *GroupAdmissionRequestUpdate {
	mutation := newGroupAdmissionRequestMutation(c.config, OpUpdate)
	return &GroupAdmissionRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GroupAdmissionRequestClient) UpdateOne(_m *GroupAdmissionRequest) *GroupAdmissionRequestUpdateOne {
	mutation := newGroupAdmissionRequestMutation(c.config, OpUpdateOne, withGroupAdmissionRequest(_m))
	return &GroupAdmissionRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GroupAdmissionRequestClient) UpdateOneID(id int) *GroupAdmissionRequestUpdateOne {
	mutation := newGroupAdmissionRequestMutation(c.config, OpUpdateOne, withGroupAdmissionRequestID(id))
	return &GroupAdmissionRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GroupAdmissionRequest.
func (c *GroupAdmissionRequestClient) Delete() *GroupAdmissionRequestDelete {
	mutation := newGroupAdmissionRequestMutation(c.config, OpDelete)
	return &GroupAdmissionRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GroupAdmissionRequestClient) DeleteOne(_m *GroupAdmissionRequest) *GroupAdmissionRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GroupAdmissionRequestClient) DeleteOneID(id int) *GroupAdmissionRequestDeleteOne {
	builder := c.Delete().Where(groupadmissionrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GroupAdmissionRequestDeleteOne{builder}
}

// Query returns a query builder for GroupAdmissionRequest.
func (c *GroupAdmissionRequestClient) Query() *GroupAdmissionRequestQuery {
	return &GroupAdmissionRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGroupAdmissionRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a GroupAdmissionRequest entity by its id.
func (c *GroupAdmissionRequestClient) Get(ctx context.Context, id int) (*GroupAdmissionRequest, error) {
	return c.Query().Where(groupadmissionrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GroupAdmissionRequestClient) GetX(ctx context.Context, id int) *GroupAdmissionRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroup queries the group edge of a GroupAdmissionRequest.
func (c *GroupAdmissionRequestClient) QueryGroup(_m *GroupAdmissionRequest) *GroupQuery {
	query := (&GroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(groupadmissionrequest.Table, groupadmissionrequest.FieldID, id),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, groupadmissionrequest.GroupTable, groupadmissionrequest.GroupColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryApplicant queries the applicant edge of a GroupAdmissionRequest.
func (c *GroupAdmissionRequestClient) QueryApplicant(_m *GroupAdmissionRequest) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(groupadmissionrequest.Table, groupadmissionrequest.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, groupadmissionrequest.ApplicantTable, groupadmissionrequest.ApplicantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GroupAdmissionRequestClient) Hooks() []Hook {
	return c.hooks.GroupAdmissionRequest
}

// Interceptors returns the client interceptors.
func (c *GroupAdmissionRequestClient) Interceptors() []Interceptor {
	return c.inters.GroupAdmissionRequest
}

func (c *GroupAdmissionRequestClient) mutate(ctx context.Context, m *GroupAdmissionRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GroupAdmissionRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GroupAdmissionRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GroupAdmissionRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GroupAdmissionRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GroupAdmissionRequest mutation op: %q", m.Op())
	}
}

// ListingClient is a client for the Listing schema.
type ListingClient struct {
	config
}

// NewListingClient returns a client for the Listing from the given config.
func NewListingClient(c config) *ListingClient {
	return &ListingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `listing.Hooks(f(g(h())))`.
func (c *ListingClient) Use(hooks ...Hook) {
	c.hooks.Listing = append(c.hooks.Listing, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `listing.Intercept(f(g(h())))`.
func (c *ListingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Listing = append(c.inters.Listing, interceptors...)
}

// Create returns a builder for creating a Listing entity.
func (c *ListingClient) Create() *ListingCreate {
	mutation := newListingMutation(c.config, OpCreate)
	return &ListingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Listing entities.
func (c *ListingClient) CreateBulk(builders ...*ListingCreate) *ListingCreateBulk {
	return &ListingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ListingClient) MapCreateBulk(slice any, setFunc func(*ListingCreate, int)) *ListingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ListingCreateBulk{err: fmt.Errorf("calling to ListingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ListingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ListingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Listing.
func (c *ListingClient) Update() *ListingUpdate {
	mutation := newListingMutation(c.config, OpUpdate)
	return &ListingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ListingClient) UpdateOne(_m *Listing) *ListingUpdateOne {
	mutation := newListingMutation(c.config, OpUpdateOne, withListing(_m))
	return &ListingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ListingClient) UpdateOneID(id int) *ListingUpdateOne {
	mutation := newListingMutation(c.config, OpUpdateOne, withListingID(id))
	return &ListingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Listing.
func (c *ListingClient) Delete() *ListingDelete {
	mutation := newListingMutation(c.config, OpDelete)
	return &ListingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ListingClient) DeleteOne(_m *Listing) *ListingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ListingClient) DeleteOneID(id int) *ListingDeleteOne {
	builder := c.Delete().Where(listing.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ListingDeleteOne{builder}
}

// Query returns a query builder for Listing.
func (c *ListingClient) Query() *ListingQuery {
	return &ListingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeListing},
		inters: c.Interceptors(),
	}
}

// Get returns a Listing entity by its id.
func (c *ListingClient) Get(ctx context.Context, id int) (*Listing, error) {
	return c.Query().Where(listing.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ListingClient) GetX(ctx context.Context, id int) *Listing {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Listing.
func (c *ListingClient) QueryUser(_m *Listing) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(listing.Table, listing.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, listing.UserTable, listing.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ListingClient) Hooks() []Hook {
	return c.hooks.Listing
}

// Interceptors returns the client interceptors.
func (c *ListingClient) Interceptors() []Interceptor {
	return c.inters.Listing
}

func (c *ListingClient) mutate(ctx context.Context, m *ListingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ListingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ListingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ListingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ListingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Listing mutation op: %q", m.Op())
	}
}

// LocalizationClient is a client for the Localization schema.
type LocalizationClient struct {
	config
}

// NewLocalizationClient returns a client for the Localization from the given config.
func NewLocalizationClient(c config) *LocalizationClient {
	return &LocalizationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `localization.Hooks(f(g(h())))`.
func (c *LocalizationClient) Use(hooks ...Hook) {
	c.hooks.Localization = append(c.hooks.Localization, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `localization.Intercept(f(g(h())))`.
func (c *LocalizationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Localization = append(c.inters.Localization, interceptors...)
}

// Create returns a builder for creating a Localization entity.
func (c *LocalizationClient) Create() *LocalizationCreate {
	mutation := newLocalizationMutation(c.config, OpCreate)
	return &LocalizationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Localization entities.
func (c *LocalizationClient) CreateBulk(builders ...*LocalizationCreate) *LocalizationCreateBulk {
	return &LocalizationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LocalizationClient) MapCreateBulk(slice any, setFunc func(*LocalizationCreate, int)) *LocalizationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LocalizationCreateBulk{err: fmt.Errorf("calling to LocalizationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LocalizationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LocalizationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Localization.
func (c *LocalizationClient) Update() *LocalizationUpdate {
	mutation := newLocalizationMutation(c.config, OpUpdate)
	return &LocalizationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LocalizationClient) UpdateOne(_m *Localization) *LocalizationUpdateOne {
	mutation := newLocalizationMutation(c.config, OpUpdateOne, withLocalization(_m))
	return &LocalizationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LocalizationClient) UpdateOneID(id int) *LocalizationUpdateOne {
	mutation := newLocalizationMutation(c.config, OpUpdateOne, withLocalizationID(id))
	return &LocalizationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Localization.
func (c *LocalizationClient) Delete() *LocalizationDelete {
	mutation := newLocalizationMutation(c.config, OpDelete)
	return &LocalizationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LocalizationClient) DeleteOne(_m *Localization) *LocalizationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LocalizationClient) DeleteOneID(id int) *LocalizationDeleteOne {
	builder := c.Delete().Where(localization.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LocalizationDeleteOne{builder}
}

// Query returns a query builder for Localization.
func (c *LocalizationClient) Query() *LocalizationQuery {
	return &LocalizationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLocalization},
		inters: c.Interceptors(),
	}
}

// Get returns a Localization entity by its id.
func (c *LocalizationClient) Get(ctx context.Context, id int) (*Localization, error) {
	return c.Query().Where(localization.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LocalizationClient) GetX(ctx context.Context, id int) *Localization {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LocalizationClient) Hooks() []Hook {
	return c.hooks.Localization
}

// Interceptors returns the client interceptors.
func (c *LocalizationClient) Interceptors() []Interceptor {
	return c.inters.Localization
}

func (c *LocalizationClient) mutate(ctx context.Context, m *LocalizationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LocalizationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LocalizationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LocalizationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LocalizationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Localization mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id int) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id int) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id int) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id int) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Notification.
func (c *NotificationClient) QueryUser(_m *Notification) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(notification.Table, notification.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, notification.UserTable, notification.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Notification mutation op: %q", m.Op())
	}
}

// ObjAnalysisClient is a client for the ObjAnalysis schema.
type ObjAnalysisClient struct {
	config
}

// NewObjAnalysisClient returns a client for the ObjAnalysis from the given config.
func NewObjAnalysisClient(c config) *ObjAnalysisClient {
	return &ObjAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `objanalysis.Hooks(f(g(h())))`.
func (c *ObjAnalysisClient) Use(hooks ...Hook) {
	c.hooks.ObjAnalysis = append(c.hooks.ObjAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `objanalysis.Intercept(f(g(h())))`.
func (c *ObjAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.ObjAnalysis = append(c.inters.ObjAnalysis, interceptors...)
}

// Create returns a builder for creating a ObjAnalysis entity.
func (c *ObjAnalysisClient) Create() *ObjAnalysisCreate {
	mutation := newObjAnalysisMutation(c.config, OpCreate)
	return &ObjAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ObjAnalysis entities.
func (c *ObjAnalysisClient) CreateBulk(builders ...*ObjAnalysisCreate) *ObjAnalysisCreateBulk {
	return &ObjAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ObjAnalysisClient) MapCreateBulk(slice any, setFunc func(*ObjAnalysisCreate, int)) *ObjAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ObjAnalysisCreateBulk{err: fmt.Errorf("calling to ObjAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ObjAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ObjAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ObjAnalysis.
func (c *ObjAnalysisClient) Update() *ObjAnalysisUpdate {
	mutation := newObjAnalysisMutation(c.config, OpUpdate)
	return &ObjAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ObjAnalysisClient) UpdateOne(_m *ObjAnalysis) *ObjAnalysisUpdateOne {
	mutation := newObjAnalysisMutation(c.config, OpUpdateOne, withObjAnalysis(_m))
	return &ObjAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ObjAnalysisClient) UpdateOneID(id int) *ObjAnalysisUpdateOne {
	mutation := newObjAnalysisMutation(c.config, OpUpdateOne, withObjAnalysisID(id))
	return &ObjAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ObjAnalysis.
func (c *ObjAnalysisClient) Delete() *ObjAnalysisDelete {
	mutation := newObjAnalysisMutation(c.config, OpDelete)
	return &ObjAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ObjAnalysisClient) DeleteOne(_m *ObjAnalysis) *ObjAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ObjAnalysisClient) DeleteOneID(id int) *ObjAnalysisDeleteOne {
	builder := c.Delete().Where(objanalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ObjAnalysisDeleteOne{builder}
}

// Query returns a query builder for ObjAnalysis.
func (c *ObjAnalysisClient) Query() *ObjAnalysisQuery {
	return &ObjAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeObjAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a ObjAnalysis entity by its id.
func (c *ObjAnalysisClient) Get(ctx context.Context, id int) (*ObjAnalysis, error) {
	return c.Query().Where(objanalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ObjAnalysisClient) GetX(ctx context.Context, id int) *ObjAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a ObjAnalysis.
func (c *ObjAnalysisClient) QueryOwner(_m *ObjAnalysis) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(objanalysis.Table, objanalysis.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, objanalysis.OwnerTable, objanalysis.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ObjAnalysisClient) Hooks() []Hook {
	return c.hooks.ObjAnalysis
}

// Interceptors returns the client interceptors.
func (c *ObjAnalysisClient) Interceptors() []Interceptor {
	return c.inters.ObjAnalysis
}

func (c *ObjAnalysisClient) mutate(ctx context.Context, m *ObjAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ObjAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ObjAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ObjAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ObjAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ObjAnalysis mutation op: %q", m.Op())
	}
}

// ObservationPlanRequestClient is a client for the ObservationPlanRequest schema.
type ObservationPlanRequestClient struct {
	config
}

// NewObservationPlanRequestClient returns a client for the ObservationPlanRequest from the given config.
func NewObservationPlanRequestClient(c config) *ObservationPlanRequestClient {
	return &ObservationPlanRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `observationplanrequest.Hooks(f(g(h())))`.
func (c *ObservationPlanRequestClient) Use(hooks ...Hook) {
	c.hooks.ObservationPlanRequest = append(c.hooks.ObservationPlanRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `observationplanrequest.Intercept(f(g(h())))`.
func (c *ObservationPlanRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.ObservationPlanRequest = append(c.inters.ObservationPlanRequest, interceptors...)
}

// Create returns a builder for creating a ObservationPlanRequest entity.
func (c *ObservationPlanRequestClient) Create() *ObservationPlanRequestCreate {
	mutation := newObservationPlanRequestMutation(c.config, OpCreate)
	return &ObservationPlanRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ObservationPlanRequest entities.
func (c *ObservationPlanRequestClient) CreateBulk(builders ...*ObservationPlanRequestCreate) *ObservationPlanRequestCreateBulk {
	return &ObservationPlanRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ObservationPlanRequestClient) MapCreateBulk(slice any, setFunc func(*ObservationPlanRequestCreate, int)) *ObservationPlanRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ObservationPlanRequestCreateBulk{err: fmt.Errorf("calling to ObservationPlanRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ObservationPlanRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ObservationPlanRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ObservationPlanRequest.
func (c *ObservationPlanRequestClient) Update() *ObservationPlanRequestUpdate {
	mutation := newObservationPlanRequestMutation(c.config, OpUpdate)
	return &ObservationPlanRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ObservationPlanRequestClient) UpdateOne(_m *ObservationPlanRequest) *ObservationPlanRequestUpdateOne {
	mutation := newObservationPlanRequestMutation(c.config, OpUpdateOne, withObservationPlanRequest(_m))
	return &ObservationPlanRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ObservationPlanRequestClient) UpdateOneID(id int) *ObservationPlanRequestUpdateOne {
	mutation := newObservationPlanRequestMutation(c.config, OpUpdateOne, withObservationPlanRequestID(id))
	return &ObservationPlanRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ObservationPlanRequest.
func (c *ObservationPlanRequestClient) Delete() *ObservationPlanRequestDelete {
	mutation := newObservationPlanRequestMutation(c.config, OpDelete)
	return &ObservationPlanRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ObservationPlanRequestClient) DeleteOne(_m *ObservationPlanRequest) *ObservationPlanRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ObservationPlanRequestClient) DeleteOneID(id int) *ObservationPlanRequestDeleteOne {
	builder := c.Delete().Where(observationplanrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ObservationPlanRequestDeleteOne{builder}
}

// Query returns a query builder for ObservationPlanRequest.
func (c *ObservationPlanRequestClient) Query() *ObservationPlanRequestQuery {
	return &ObservationPlanRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeObservationPlanRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a ObservationPlanRequest entity by its id.
func (c *ObservationPlanRequestClient) Get(ctx context.Context, id int) (*ObservationPlanRequest, error) {
	return c.Query().Where(observationplanrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ObservationPlanRequestClient) GetX(ctx context.Context, id int) *ObservationPlanRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAllocation queries the allocation edge of a ObservationPlanRequest.
func (c *ObservationPlanRequestClient) QueryAllocation(_m *ObservationPlanRequest) *AllocationQuery {
	query := (&AllocationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(observationplanrequest.Table, observationplanrequest.FieldID, id),
			sqlgraph.To(allocation.Table, allocation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, observationplanrequest.AllocationTable, observationplanrequest.AllocationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRequester queries the requester edge of a ObservationPlanRequest.
func (c *ObservationPlanRequestClient) QueryRequester(_m *ObservationPlanRequest) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(observationplanrequest.Table, observationplanrequest.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, observationplanrequest.RequesterTable, observationplanrequest.RequesterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ObservationPlanRequestClient) Hooks() []Hook {
	return c.hooks.ObservationPlanRequest
}

// Interceptors returns the client interceptors.
func (c *ObservationPlanRequestClient) Interceptors() []Interceptor {
	return c.inters.ObservationPlanRequest
}

func (c *ObservationPlanRequestClient) mutate(ctx context.Context, m *ObservationPlanRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ObservationPlanRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ObservationPlanRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ObservationPlanRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ObservationPlanRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ObservationPlanRequest mutation op: %q", m.Op())
	}
}

// ShiftClient is a client for the Shift schema.
type ShiftClient struct {
	config
}

// NewShiftClient returns a client for the Shift from the given config.
func NewShiftClient(c config) *ShiftClient {
	return &ShiftClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `shift.Hooks(f(g(h())))`.
func (c *ShiftClient) Use(hooks ...Hook) {
	c.hooks.Shift = append(c.hooks.Shift, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `shift.Intercept(f(g(h())))`.
func (c *ShiftClient) Intercept(interceptors ...Interceptor) {
	c.inters.Shift = append(c.inters.Shift, interceptors...)
}

// Create returns a builder for creating a Shift entity.
func (c *ShiftClient) Create() *ShiftCreate {
	mutation := newShiftMutation(c.config, OpCreate)
	return &ShiftCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Shift entities.
func (c *ShiftClient) CreateBulk(builders ...*ShiftCreate) *ShiftCreateBulk {
	return &ShiftCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ShiftClient) MapCreateBulk(slice any, setFunc func(*ShiftCreate, int)) *ShiftCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ShiftCreateBulk{err: fmt.Errorf("calling to ShiftClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ShiftCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ShiftCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Shift.
func (c *ShiftClient) Update() *ShiftUpdate {
	mutation := newShiftMutation(c.config, OpUpdate)
	return &ShiftUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ShiftClient) UpdateOne(_m *Shift) *ShiftUpdateOne {
	mutation := newShiftMutation(c.config, OpUpdateOne, withShift(_m))
	return &ShiftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ShiftClient) UpdateOneID(id int) *ShiftUpdateOne {
	mutation := newShiftMutation(c.config, OpUpdateOne, withShiftID(id))
	return &ShiftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Shift.
func (c *ShiftClient) Delete() *ShiftDelete {
	mutation := newShiftMutation(c.config, OpDelete)
	return &ShiftDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ShiftClient) DeleteOne(_m *Shift) *ShiftDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ShiftClient) DeleteOneID(id int) *ShiftDeleteOne {
	builder := c.Delete().Where(shift.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ShiftDeleteOne{builder}
}

// Query returns a query builder for Shift.
func (c *ShiftClient) Query() *ShiftQuery {
	return &ShiftQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeShift},
		inters: c.Interceptors(),
	}
}

// Get returns a Shift entity by its id.
func (c *ShiftClient) Get(ctx context.Context, id int) (*Shift, error) {
	return c.Query().Where(shift.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ShiftClient) GetX(ctx context.Context, id int) *Shift {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUsers queries the users edge of a Shift.
func (c *ShiftClient) QueryUsers(_m *Shift) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(shift.Table, shift.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, shift.UsersTable, shift.UsersPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ShiftClient) Hooks() []Hook {
	return c.hooks.Shift
}

// Interceptors returns the client interceptors.
func (c *ShiftClient) Interceptors() []Interceptor {
	return c.inters.Shift
}

func (c *ShiftClient) mutate(ctx context.Context, m *ShiftMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ShiftCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ShiftUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ShiftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ShiftDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Shift mutation op: %q", m.Op())
	}
}

// SpectrumClient is a client for the Spectrum schema.
type SpectrumClient struct {
	config
}

// NewSpectrumClient returns a client for the Spectrum from the given config.
func NewSpectrumClient(c config) *SpectrumClient {
	return &SpectrumClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `spectrum.Hooks(f(g(h())))`.
func (c *SpectrumClient) Use(hooks ...Hook) {
	c.hooks.Spectrum = append(c.hooks.Spectrum, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `spectrum.Intercept(f(g(h())))`.
func (c *SpectrumClient) Intercept(interceptors ...Interceptor) {
	c.inters.Spectrum = append(c.inters.Spectrum, interceptors...)
}

// Create returns a builder for creating a Spectrum entity.
func (c *SpectrumClient) Create() *SpectrumCreate {
	mutation := newSpectrumMutation(c.config, OpCreate)
	return &SpectrumCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Spectrum entities.
func (c *SpectrumClient) CreateBulk(builders ...*SpectrumCreate) *SpectrumCreateBulk {
	return &SpectrumCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SpectrumClient) MapCreateBulk(slice any, setFunc func(*SpectrumCreate, int)) *SpectrumCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SpectrumCreateBulk{err: fmt.Errorf("calling to SpectrumClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SpectrumCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SpectrumCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Spectrum.
func (c *SpectrumClient) Update() *SpectrumUpdate {
	mutation := newSpectrumMutation(c.config, OpUpdate)
	return &SpectrumUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SpectrumClient) UpdateOne(_m *Spectrum) *SpectrumUpdateOne {
	mutation := newSpectrumMutation(c.config, OpUpdateOne, withSpectrum(_m))
	return &SpectrumUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SpectrumClient) UpdateOneID(id int) *SpectrumUpdateOne {
	mutation := newSpectrumMutation(c.config, OpUpdateOne, withSpectrumID(id))
	return &SpectrumUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Spectrum.
func (c *SpectrumClient) Delete() *SpectrumDelete {
	mutation := newSpectrumMutation(c.config, OpDelete)
	return &SpectrumDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SpectrumClient) DeleteOne(_m *Spectrum) *SpectrumDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SpectrumClient) DeleteOneID(id int) *SpectrumDeleteOne {
	builder := c.Delete().Where(spectrum.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SpectrumDeleteOne{builder}
}

// Query returns a query builder for Spectrum.
func (c *SpectrumClient) Query() *SpectrumQuery {
	return &SpectrumQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSpectrum},
		inters: c.Interceptors(),
	}
}

// Get returns a Spectrum entity by its id.
func (c *SpectrumClient) Get(ctx context.Context, id int) (*Spectrum, error) {
	return c.Query().Where(spectrum.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SpectrumClient) GetX(ctx context.Context, id int) *Spectrum {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SpectrumClient) Hooks() []Hook {
	return c.hooks.Spectrum
}

// Interceptors returns the client interceptors.
func (c *SpectrumClient) Interceptors() []Interceptor {
	return c.inters.Spectrum
}

func (c *SpectrumClient) mutate(ctx context.Context, m *SpectrumMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SpectrumCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SpectrumUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SpectrumUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SpectrumDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Spectrum mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNotifications queries the notifications edge of a User.
func (c *UserClient) QueryNotifications(_m *User) *NotificationQuery {
	query := (&NotificationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(notification.Table, notification.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.NotificationsTable, user.NotificationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryListings queries the listings edge of a User.
func (c *UserClient) QueryListings(_m *User) *ListingQuery {
	query := (&ListingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(listing.Table, listing.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ListingsTable, user.ListingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryShifts queries the shifts edge of a User.
func (c *UserClient) QueryShifts(_m *User) *ShiftQuery {
	query := (&ShiftClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(shift.Table, shift.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, user.ShiftsTable, user.ShiftsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGroups queries the groups edge of a User.
func (c *UserClient) QueryGroups(_m *User) *GroupQuery {
	query := (&GroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, user.GroupsTable, user.GroupsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAdminOf queries the admin_of edge of a User.
func (c *UserClient) QueryAdminOf(_m *User) *GroupQuery {
	query := (&GroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, user.AdminOfTable, user.AdminOfPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Allocation, Classification, Comment, FacilityTransaction, FollowupRequest,
		GcnNotice, GcnProperty, GcnTag, Group, GroupAdmissionRequest, Listing,
		Localization, Notification, ObjAnalysis, ObservationPlanRequest, Shift,
		Spectrum, User []ent.Hook
	}
	inters struct {
		Allocation, Classification, Comment, FacilityTransaction, FollowupRequest,
		GcnNotice, GcnProperty, GcnTag, Group, GroupAdmissionRequest, Listing,
		Localization, Notification, ObjAnalysis, ObservationPlanRequest, Shift,
		Spectrum, User []ent.Interceptor
	}
)
