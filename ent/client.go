// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mviorel/learninghub/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/mviorel/learninghub/ent/exportevent"
	"github.com/mviorel/learninghub/ent/profile"
	"github.com/mviorel/learninghub/ent/staterecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExportEvent is the client for interacting with the ExportEvent builders.
	ExportEvent *ExportEventClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// StateRecord is the client for interacting with the StateRecord builders.
	StateRecord *StateRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExportEvent = NewExportEventClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.StateRecord = NewStateRecordClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		ExportEvent: NewExportEventClient(cfg),
		Profile:     NewProfileClient(cfg),
		StateRecord: NewStateRecordClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		ExportEvent: NewExportEventClient(cfg),
		Profile:     NewProfileClient(cfg),
		StateRecord: NewStateRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExportEvent.
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
	c.ExportEvent.Use(hooks...)
	c.Profile.Use(hooks...)
	c.StateRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExportEvent.Intercept(interceptors...)
	c.Profile.Intercept(interceptors...)
	c.StateRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExportEventMutation:
		return c.ExportEvent.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *StateRecordMutation:
		return c.StateRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExportEventClient is a client for the ExportEvent schema.
type ExportEventClient struct {
	config
}

// NewExportEventClient returns a client for the ExportEvent from the given config.
func NewExportEventClient(c config) *ExportEventClient {
	return &ExportEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exportevent.Hooks(f(g(h())))`.
func (c *ExportEventClient) Use(hooks ...Hook) {
	c.hooks.ExportEvent = append(c.hooks.ExportEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exportevent.Intercept(f(g(h())))`.
func (c *ExportEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExportEvent = append(c.inters.ExportEvent, interceptors...)
}

// Create returns a builder for creating a ExportEvent entity.
func (c *ExportEventClient) Create() *ExportEventCreate {
	mutation := newExportEventMutation(c.config, OpCreate)
	return &ExportEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExportEvent entities.
func (c *ExportEventClient) CreateBulk(builders ...*ExportEventCreate) *ExportEventCreateBulk {
	return &ExportEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExportEventClient) MapCreateBulk(slice any, setFunc func(*ExportEventCreate, int)) *ExportEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExportEventCreateBulk{err: fmt.Errorf("calling to ExportEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExportEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExportEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExportEvent.
func (c *ExportEventClient) Update() *ExportEventUpdate {
	mutation := newExportEventMutation(c.config, OpUpdate)
	return &ExportEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExportEventClient) UpdateOne(_m *ExportEvent) *ExportEventUpdateOne {
	mutation := newExportEventMutation(c.config, OpUpdateOne, withExportEvent(_m))
	return &ExportEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExportEventClient) UpdateOneID(id int) *ExportEventUpdateOne {
	mutation := newExportEventMutation(c.config, OpUpdateOne, withExportEventID(id))
	return &ExportEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExportEvent.
func (c *ExportEventClient) Delete() *ExportEventDelete {
	mutation := newExportEventMutation(c.config, OpDelete)
	return &ExportEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExportEventClient) DeleteOne(_m *ExportEvent) *ExportEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExportEventClient) DeleteOneID(id int) *ExportEventDeleteOne {
	builder := c.Delete().Where(exportevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExportEventDeleteOne{builder}
}

// Query returns a query builder for ExportEvent.
func (c *ExportEventClient) Query() *ExportEventQuery {
	return &ExportEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExportEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ExportEvent entity by its id.
func (c *ExportEventClient) Get(ctx context.Context, id int) (*ExportEvent, error) {
	return c.Query().Where(exportevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExportEventClient) GetX(ctx context.Context, id int) *ExportEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExportEventClient) Hooks() []Hook {
	return c.hooks.ExportEvent
}

// Interceptors returns the client interceptors.
func (c *ExportEventClient) Interceptors() []Interceptor {
	return c.inters.ExportEvent
}

func (c *ExportEventClient) mutate(ctx context.Context, m *ExportEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExportEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExportEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExportEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExportEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExportEvent mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id int) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id int) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id int) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id int) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// StateRecordClient is a client for the StateRecord schema.
type StateRecordClient struct {
	config
}

// NewStateRecordClient returns a client for the StateRecord from the given config.
func NewStateRecordClient(c config) *StateRecordClient {
	return &StateRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `staterecord.Hooks(f(g(h())))`.
func (c *StateRecordClient) Use(hooks ...Hook) {
	c.hooks.StateRecord = append(c.hooks.StateRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `staterecord.Intercept(f(g(h())))`.
func (c *StateRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.StateRecord = append(c.inters.StateRecord, interceptors...)
}

// Create returns a builder for creating a StateRecord entity.
func (c *StateRecordClient) Create() *StateRecordCreate {
	mutation := newStateRecordMutation(c.config, OpCreate)
	return &StateRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StateRecord entities.
func (c *StateRecordClient) CreateBulk(builders ...*StateRecordCreate) *StateRecordCreateBulk {
	return &StateRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StateRecordClient) MapCreateBulk(slice any, setFunc func(*StateRecordCreate, int)) *StateRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StateRecordCreateBulk{err: fmt.Errorf("calling to StateRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StateRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StateRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StateRecord.
func (c *StateRecordClient) Update() *StateRecordUpdate {
	mutation := newStateRecordMutation(c.config, OpUpdate)
	return &StateRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StateRecordClient) UpdateOne(_m *StateRecord) *StateRecordUpdateOne {
	mutation := newStateRecordMutation(c.config, OpUpdateOne, withStateRecord(_m))
	return &StateRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StateRecordClient) UpdateOneID(id int) *StateRecordUpdateOne {
	mutation := newStateRecordMutation(c.config, OpUpdateOne, withStateRecordID(id))
	return &StateRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StateRecord.
func (c *StateRecordClient) Delete() *StateRecordDelete {
	mutation := newStateRecordMutation(c.config, OpDelete)
	return &StateRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StateRecordClient) DeleteOne(_m *StateRecord) *StateRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StateRecordClient) DeleteOneID(id int) *StateRecordDeleteOne {
	builder := c.Delete().Where(staterecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StateRecordDeleteOne{builder}
}

// Query returns a query builder for StateRecord.
func (c *StateRecordClient) Query() *StateRecordQuery {
	return &StateRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStateRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a StateRecord entity by its id.
func (c *StateRecordClient) Get(ctx context.Context, id int) (*StateRecord, error) {
	return c.Query().Where(staterecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StateRecordClient) GetX(ctx context.Context, id int) *StateRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StateRecordClient) Hooks() []Hook {
	return c.hooks.StateRecord
}

// Interceptors returns the client interceptors.
func (c *StateRecordClient) Interceptors() []Interceptor {
	return c.inters.StateRecord
}

func (c *StateRecordClient) mutate(ctx context.Context, m *StateRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StateRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StateRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StateRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StateRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StateRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExportEvent, Profile, StateRecord []ent.Hook
	}
	inters struct {
		ExportEvent, Profile, StateRecord []ent.Interceptor
	}
)
