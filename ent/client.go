// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"previplan/ent/migrate"

	"previplan/ent/account"
	"previplan/ent/company"
	"previplan/ent/preventionplan"
	"previplan/ent/relation"
	"previplan/ent/risk"
	"previplan/ent/riskanalysis"
	"previplan/ent/safetyaudit"
	"previplan/ent/safetydevice"
	"previplan/ent/site"
	"previplan/ent/worker"
	"previplan/ent/workorder"
	"previplan/ent/workpermit"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Account is the client for interacting with the Account builders.
	Account *AccountClient
	// Company is the client for interacting with the Company builders.
	Company *CompanyClient
	// PreventionPlan is the client for interacting with the PreventionPlan builders.
	PreventionPlan *PreventionPlanClient
	// Relation is the client for interacting with the Relation builders.
	Relation *RelationClient
	// Risk is the client for interacting with the Risk builders.
	Risk *RiskClient
	// RiskAnalysis is the client for interacting with the RiskAnalysis builders.
	RiskAnalysis *RiskAnalysisClient
	// SafetyAudit is the client for interacting with the SafetyAudit builders.
	SafetyAudit *SafetyAuditClient
	// SafetyDevice is the client for interacting with the SafetyDevice builders.
	SafetyDevice *SafetyDeviceClient
	// Site is the client for interacting with the Site builders.
	Site *SiteClient
	// WorkOrder is the client for interacting with the WorkOrder builders.
	WorkOrder *WorkOrderClient
	// WorkPermit is the client for interacting with the WorkPermit builders.
	WorkPermit *WorkPermitClient
	// Worker is the client for interacting with the Worker builders.
	Worker *WorkerClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Account = NewAccountClient(c.config)
	c.Company = NewCompanyClient(c.config)
	c.PreventionPlan = NewPreventionPlanClient(c.config)
	c.Relation = NewRelationClient(c.config)
	c.Risk = NewRiskClient(c.config)
	c.RiskAnalysis = NewRiskAnalysisClient(c.config)
	c.SafetyAudit = NewSafetyAuditClient(c.config)
	c.SafetyDevice = NewSafetyDeviceClient(c.config)
	c.Site = NewSiteClient(c.config)
	c.WorkOrder = NewWorkOrderClient(c.config)
	c.WorkPermit = NewWorkPermitClient(c.config)
	c.Worker = NewWorkerClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		Account:        NewAccountClient(cfg),
		Company:        NewCompanyClient(cfg),
		PreventionPlan: NewPreventionPlanClient(cfg),
		Relation:       NewRelationClient(cfg),
		Risk:           NewRiskClient(cfg),
		RiskAnalysis:   NewRiskAnalysisClient(cfg),
		SafetyAudit:    NewSafetyAuditClient(cfg),
		SafetyDevice:   NewSafetyDeviceClient(cfg),
		Site:           NewSiteClient(cfg),
		WorkOrder:      NewWorkOrderClient(cfg),
		WorkPermit:     NewWorkPermitClient(cfg),
		Worker:         NewWorkerClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		Account:        NewAccountClient(cfg),
		Company:        NewCompanyClient(cfg),
		PreventionPlan: NewPreventionPlanClient(cfg),
		Relation:       NewRelationClient(cfg),
		Risk:           NewRiskClient(cfg),
		RiskAnalysis:   NewRiskAnalysisClient(cfg),
		SafetyAudit:    NewSafetyAuditClient(cfg),
		SafetyDevice:   NewSafetyDeviceClient(cfg),
		Site:           NewSiteClient(cfg),
		WorkOrder:      NewWorkOrderClient(cfg),
		WorkPermit:     NewWorkPermitClient(cfg),
		Worker:         NewWorkerClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Account.
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
		c.Account, c.Company, c.PreventionPlan, c.Relation, c.Risk, c.RiskAnalysis,
		c.SafetyAudit, c.SafetyDevice, c.Site, c.WorkOrder, c.WorkPermit, c.Worker,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Account, c.Company, c.PreventionPlan, c.Relation, c.Risk, c.RiskAnalysis,
		c.SafetyAudit, c.SafetyDevice, c.Site, c.WorkOrder, c.WorkPermit, c.Worker,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AccountMutation:
		return c.Account.mutate(ctx, m)
	case *CompanyMutation:
		return c.Company.mutate(ctx, m)
	case *PreventionPlanMutation:
		return c.PreventionPlan.mutate(ctx, m)
	case *RelationMutation:
		return c.Relation.mutate(ctx, m)
	case *RiskMutation:
		return c.Risk.mutate(ctx, m)
	case *RiskAnalysisMutation:
		return c.RiskAnalysis.mutate(ctx, m)
	case *SafetyAuditMutation:
		return c.SafetyAudit.mutate(ctx, m)
	case *SafetyDeviceMutation:
		return c.SafetyDevice.mutate(ctx, m)
	case *SiteMutation:
		return c.Site.mutate(ctx, m)
	case *WorkOrderMutation:
		return c.WorkOrder.mutate(ctx, m)
	case *WorkPermitMutation:
		return c.WorkPermit.mutate(ctx, m)
	case *WorkerMutation:
		return c.Worker.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AccountClient is a client for the Account schema.
type AccountClient struct {
	config
}

// NewAccountClient returns a client for the Account from the given config.
func NewAccountClient(c config) *AccountClient {
	return &AccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `account.Hooks(f(g(h())))`.
func (c *AccountClient) Use(hooks ...Hook) {
	c.hooks.Account = append(c.hooks.Account, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `account.Intercept(f(g(h())))`.
func (c *AccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.Account = append(c.inters.Account, interceptors...)
}

// Create returns a builder for creating a Account entity.
func (c *AccountClient) Create() *AccountCreate {
	mutation := newAccountMutation(c.config, OpCreate)
	return &AccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Account entities.
func (c *AccountClient) CreateBulk(builders ...*AccountCreate) *AccountCreateBulk {
	return &AccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AccountClient) MapCreateBulk(slice any, setFunc func(*AccountCreate, int)) *AccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AccountCreateBulk{err: fmt.Errorf("calling to AccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Account.
func (c *AccountClient) Update() *AccountUpdate {
	mutation := newAccountMutation(c.config, OpUpdate)
	return &AccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AccountClient) UpdateOne(_m *Account) *AccountUpdateOne {
	mutation := newAccountMutation(c.config, OpUpdateOne, withAccount(_m))
	return &AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AccountClient) UpdateOneID(id int) *AccountUpdateOne {
	mutation := newAccountMutation(c.config, OpUpdateOne, withAccountID(id))
	return &AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Account.
func (c *AccountClient) Delete() *AccountDelete {
	mutation := newAccountMutation(c.config, OpDelete)
	return &AccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AccountClient) DeleteOne(_m *Account) *AccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AccountClient) DeleteOneID(id int) *AccountDeleteOne {
	builder := c.Delete().Where(account.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AccountDeleteOne{builder}
}

// Query returns a query builder for Account.
func (c *AccountClient) Query() *AccountQuery {
	return &AccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a Account entity by its id.
func (c *AccountClient) Get(ctx context.Context, id int) (*Account, error) {
	return c.Query().Where(account.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AccountClient) GetX(ctx context.Context, id int) *Account {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AccountClient) Hooks() []Hook {
	return c.hooks.Account
}

// Interceptors returns the client interceptors.
func (c *AccountClient) Interceptors() []Interceptor {
	return c.inters.Account
}

func (c *AccountClient) mutate(ctx context.Context, m *AccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Account mutation op: %q", m.Op())
	}
}

// CompanyClient is a client for the Company schema.
type CompanyClient struct {
	config
}

// NewCompanyClient returns a client for the Company from the given config.
func NewCompanyClient(c config) *CompanyClient {
	return &CompanyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `company.Hooks(f(g(h())))`.
func (c *CompanyClient) Use(hooks ...Hook) {
	c.hooks.Company = append(c.hooks.Company, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `company.Intercept(f(g(h())))`.
func (c *CompanyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Company = append(c.inters.Company, interceptors...)
}

// Create returns a builder for creating a Company entity.
func (c *CompanyClient) Create() *CompanyCreate {
	mutation := newCompanyMutation(c.config, OpCreate)
	return &CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Company entities.
func (c *CompanyClient) CreateBulk(builders ...*CompanyCreate) *CompanyCreateBulk {
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyClient) MapCreateBulk(slice any, setFunc func(*CompanyCreate, int)) *CompanyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyCreateBulk{err: fmt.Errorf("calling to CompanyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Company.
func (c *CompanyClient) Update() *CompanyUpdate {
	mutation := newCompanyMutation(c.config, OpUpdate)
	return &CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyClient) UpdateOne(_m *Company) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompany(_m))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyClient) UpdateOneID(id int) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompanyID(id))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Company.
func (c *CompanyClient) Delete() *CompanyDelete {
	mutation := newCompanyMutation(c.config, OpDelete)
	return &CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyClient) DeleteOne(_m *Company) *CompanyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyClient) DeleteOneID(id int) *CompanyDeleteOne {
	builder := c.Delete().Where(company.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyDeleteOne{builder}
}

// Query returns a query builder for Company.
func (c *CompanyClient) Query() *CompanyQuery {
	return &CompanyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompany},
		inters: c.Interceptors(),
	}
}

// Get returns a Company entity by its id.
func (c *CompanyClient) Get(ctx context.Context, id int) (*Company, error) {
	return c.Query().Where(company.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyClient) GetX(ctx context.Context, id int) *Company {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CompanyClient) Hooks() []Hook {
	return c.hooks.Company
}

// Interceptors returns the client interceptors.
func (c *CompanyClient) Interceptors() []Interceptor {
	return c.inters.Company
}

func (c *CompanyClient) mutate(ctx context.Context, m *CompanyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Company mutation op: %q", m.Op())
	}
}

// PreventionPlanClient is a client for the PreventionPlan schema.
type PreventionPlanClient struct {
	config
}

// NewPreventionPlanClient returns a client for the PreventionPlan from the given config.
func NewPreventionPlanClient(c config) *PreventionPlanClient {
	return &PreventionPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `preventionplan.Hooks(f(g(h())))`.
func (c *PreventionPlanClient) Use(hooks ...Hook) {
	c.hooks.PreventionPlan = append(c.hooks.PreventionPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `preventionplan.Intercept(f(g(h())))`.
func (c *PreventionPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.PreventionPlan = append(c.inters.PreventionPlan, interceptors...)
}

// Create returns a builder for creating a PreventionPlan entity.
func (c *PreventionPlanClient) Create() *PreventionPlanCreate {
	mutation := newPreventionPlanMutation(c.config, OpCreate)
	return &PreventionPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PreventionPlan entities.
func (c *PreventionPlanClient) CreateBulk(builders ...*PreventionPlanCreate) *PreventionPlanCreateBulk {
	return &PreventionPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PreventionPlanClient) MapCreateBulk(slice any, setFunc func(*PreventionPlanCreate, int)) *PreventionPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PreventionPlanCreateBulk{err: fmt.Errorf("calling to PreventionPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PreventionPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PreventionPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PreventionPlan.
func (c *PreventionPlanClient) Update() *PreventionPlanUpdate {
	mutation := newPreventionPlanMutation(c.config, OpUpdate)
	return &PreventionPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PreventionPlanClient) UpdateOne(_m *PreventionPlan) *PreventionPlanUpdateOne {
	mutation := newPreventionPlanMutation(c.config, OpUpdateOne, withPreventionPlan(_m))
	return &PreventionPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PreventionPlanClient) UpdateOneID(id int) *PreventionPlanUpdateOne {
	mutation := newPreventionPlanMutation(c.config, OpUpdateOne, withPreventionPlanID(id))
	return &PreventionPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PreventionPlan.
func (c *PreventionPlanClient) Delete() *PreventionPlanDelete {
	mutation := newPreventionPlanMutation(c.config, OpDelete)
	return &PreventionPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PreventionPlanClient) DeleteOne(_m *PreventionPlan) *PreventionPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PreventionPlanClient) DeleteOneID(id int) *PreventionPlanDeleteOne {
	builder := c.Delete().Where(preventionplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PreventionPlanDeleteOne{builder}
}

// Query returns a query builder for PreventionPlan.
func (c *PreventionPlanClient) Query() *PreventionPlanQuery {
	return &PreventionPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePreventionPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a PreventionPlan entity by its id.
func (c *PreventionPlanClient) Get(ctx context.Context, id int) (*PreventionPlan, error) {
	return c.Query().Where(preventionplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PreventionPlanClient) GetX(ctx context.Context, id int) *PreventionPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PreventionPlanClient) Hooks() []Hook {
	return c.hooks.PreventionPlan
}

// Interceptors returns the client interceptors.
func (c *PreventionPlanClient) Interceptors() []Interceptor {
	return c.inters.PreventionPlan
}

func (c *PreventionPlanClient) mutate(ctx context.Context, m *PreventionPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PreventionPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PreventionPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PreventionPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PreventionPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PreventionPlan mutation op: %q", m.Op())
	}
}

// RelationClient is a client for the Relation schema.
type RelationClient struct {
	config
}

// NewRelationClient returns a client for the Relation from the given config.
func NewRelationClient(c config) *RelationClient {
	return &RelationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `relation.Hooks(f(g(h())))`.
func (c *RelationClient) Use(hooks ...Hook) {
	c.hooks.Relation = append(c.hooks.Relation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `relation.Intercept(f(g(h())))`.
func (c *RelationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Relation = append(c.inters.Relation, interceptors...)
}

// Create returns a builder for creating a Relation entity.
func (c *RelationClient) Create() *RelationCreate {
	mutation := newRelationMutation(c.config, OpCreate)
	return &RelationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Relation entities.
func (c *RelationClient) CreateBulk(builders ...*RelationCreate) *RelationCreateBulk {
	return &RelationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RelationClient) MapCreateBulk(slice any, setFunc func(*RelationCreate, int)) *RelationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RelationCreateBulk{err: fmt.Errorf("calling to RelationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RelationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RelationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Relation.
func (c *RelationClient) Update() *RelationUpdate {
	mutation := newRelationMutation(c.config, OpUpdate)
	return &RelationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RelationClient) UpdateOne(_m *Relation) *RelationUpdateOne {
	mutation := newRelationMutation(c.config, OpUpdateOne, withRelation(_m))
	return &RelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RelationClient) UpdateOneID(id int) *RelationUpdateOne {
	mutation := newRelationMutation(c.config, OpUpdateOne, withRelationID(id))
	return &RelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Relation.
func (c *RelationClient) Delete() *RelationDelete {
	mutation := newRelationMutation(c.config, OpDelete)
	return &RelationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RelationClient) DeleteOne(_m *Relation) *RelationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RelationClient) DeleteOneID(id int) *RelationDeleteOne {
	builder := c.Delete().Where(relation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RelationDeleteOne{builder}
}

// Query returns a query builder for Relation.
func (c *RelationClient) Query() *RelationQuery {
	return &RelationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRelation},
		inters: c.Interceptors(),
	}
}

// Get returns a Relation entity by its id.
func (c *RelationClient) Get(ctx context.Context, id int) (*Relation, error) {
	return c.Query().Where(relation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RelationClient) GetX(ctx context.Context, id int) *Relation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RelationClient) Hooks() []Hook {
	return c.hooks.Relation
}

// Interceptors returns the client interceptors.
func (c *RelationClient) Interceptors() []Interceptor {
	return c.inters.Relation
}

func (c *RelationClient) mutate(ctx context.Context, m *RelationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RelationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RelationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RelationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Relation mutation op: %q", m.Op())
	}
}

// RiskClient is a client for the Risk schema.
type RiskClient struct {
	config
}

// NewRiskClient returns a client for the Risk from the given config.
func NewRiskClient(c config) *RiskClient {
	return &RiskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `risk.Hooks(f(g(h())))`.
func (c *RiskClient) Use(hooks ...Hook) {
	c.hooks.Risk = append(c.hooks.Risk, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `risk.Intercept(f(g(h())))`.
func (c *RiskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Risk = append(c.inters.Risk, interceptors...)
}

// Create returns a builder for creating a Risk entity.
func (c *RiskClient) Create() *RiskCreate {
	mutation := newRiskMutation(c.config, OpCreate)
	return &RiskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Risk entities.
func (c *RiskClient) CreateBulk(builders ...*RiskCreate) *RiskCreateBulk {
	return &RiskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RiskClient) MapCreateBulk(slice any, setFunc func(*RiskCreate, int)) *RiskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RiskCreateBulk{err: fmt.Errorf("calling to RiskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RiskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RiskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Risk.
func (c *RiskClient) Update() *RiskUpdate {
	mutation := newRiskMutation(c.config, OpUpdate)
	return &RiskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RiskClient) UpdateOne(_m *Risk) *RiskUpdateOne {
	mutation := newRiskMutation(c.config, OpUpdateOne, withRisk(_m))
	return &RiskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RiskClient) UpdateOneID(id int) *RiskUpdateOne {
	mutation := newRiskMutation(c.config, OpUpdateOne, withRiskID(id))
	return &RiskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Risk.
func (c *RiskClient) Delete() *RiskDelete {
	mutation := newRiskMutation(c.config, OpDelete)
	return &RiskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RiskClient) DeleteOne(_m *Risk) *RiskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RiskClient) DeleteOneID(id int) *RiskDeleteOne {
	builder := c.Delete().Where(risk.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RiskDeleteOne{builder}
}

// Query returns a query builder for Risk.
func (c *RiskClient) Query() *RiskQuery {
	return &RiskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRisk},
		inters: c.Interceptors(),
	}
}

// Get returns a Risk entity by its id.
func (c *RiskClient) Get(ctx context.Context, id int) (*Risk, error) {
	return c.Query().Where(risk.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RiskClient) GetX(ctx context.Context, id int) *Risk {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RiskClient) Hooks() []Hook {
	return c.hooks.Risk
}

// Interceptors returns the client interceptors.
func (c *RiskClient) Interceptors() []Interceptor {
	return c.inters.Risk
}

func (c *RiskClient) mutate(ctx context.Context, m *RiskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RiskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RiskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RiskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RiskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Risk mutation op: %q", m.Op())
	}
}

// RiskAnalysisClient is a client for the RiskAnalysis schema.
type RiskAnalysisClient struct {
	config
}

// NewRiskAnalysisClient returns a client for the RiskAnalysis from the given config.
func NewRiskAnalysisClient(c config) *RiskAnalysisClient {
	return &RiskAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `riskanalysis.Hooks(f(g(h())))`.
func (c *RiskAnalysisClient) Use(hooks ...Hook) {
	c.hooks.RiskAnalysis = append(c.hooks.RiskAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `riskanalysis.Intercept(f(g(h())))`.
func (c *RiskAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.RiskAnalysis = append(c.inters.RiskAnalysis, interceptors...)
}

// Create returns a builder for creating a RiskAnalysis entity.
func (c *RiskAnalysisClient) Create() *RiskAnalysisCreate {
	mutation := newRiskAnalysisMutation(c.config, OpCreate)
	return &RiskAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RiskAnalysis entities.
func (c *RiskAnalysisClient) CreateBulk(builders ...*RiskAnalysisCreate) *RiskAnalysisCreateBulk {
	return &RiskAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RiskAnalysisClient) MapCreateBulk(slice any, setFunc func(*RiskAnalysisCreate, int)) *RiskAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RiskAnalysisCreateBulk{err: fmt.Errorf("calling to RiskAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RiskAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RiskAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RiskAnalysis.
func (c *RiskAnalysisClient) Update() *RiskAnalysisUpdate {
	mutation := newRiskAnalysisMutation(c.config, OpUpdate)
	return &RiskAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RiskAnalysisClient) UpdateOne(_m *RiskAnalysis) *RiskAnalysisUpdateOne {
	mutation := newRiskAnalysisMutation(c.config, OpUpdateOne, withRiskAnalysis(_m))
	return &RiskAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RiskAnalysisClient) UpdateOneID(id int) *RiskAnalysisUpdateOne {
	mutation := newRiskAnalysisMutation(c.config, OpUpdateOne, withRiskAnalysisID(id))
	return &RiskAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RiskAnalysis.
func (c *RiskAnalysisClient) Delete() *RiskAnalysisDelete {
	mutation := newRiskAnalysisMutation(c.config, OpDelete)
	return &RiskAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RiskAnalysisClient) DeleteOne(_m *RiskAnalysis) *RiskAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RiskAnalysisClient) DeleteOneID(id int) *RiskAnalysisDeleteOne {
	builder := c.Delete().Where(riskanalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RiskAnalysisDeleteOne{builder}
}

// Query returns a query builder for RiskAnalysis.
func (c *RiskAnalysisClient) Query() *RiskAnalysisQuery {
	return &RiskAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRiskAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a RiskAnalysis entity by its id.
func (c *RiskAnalysisClient) Get(ctx context.Context, id int) (*RiskAnalysis, error) {
	return c.Query().Where(riskanalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RiskAnalysisClient) GetX(ctx context.Context, id int) *RiskAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RiskAnalysisClient) Hooks() []Hook {
	return c.hooks.RiskAnalysis
}

// Interceptors returns the client interceptors.
func (c *RiskAnalysisClient) Interceptors() []Interceptor {
	return c.inters.RiskAnalysis
}

func (c *RiskAnalysisClient) mutate(ctx context.Context, m *RiskAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RiskAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RiskAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RiskAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RiskAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RiskAnalysis mutation op: %q", m.Op())
	}
}

// SafetyAuditClient is a client for the SafetyAudit schema.
type SafetyAuditClient struct {
	config
}

// NewSafetyAuditClient returns a client for the SafetyAudit from the given config.
func NewSafetyAuditClient(c config) *SafetyAuditClient {
	return &SafetyAuditClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `safetyaudit.Hooks(f(g(h())))`.
func (c *SafetyAuditClient) Use(hooks ...Hook) {
	c.hooks.SafetyAudit = append(c.hooks.SafetyAudit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `safetyaudit.Intercept(f(g(h())))`.
func (c *SafetyAuditClient) Intercept(interceptors ...Interceptor) {
	c.inters.SafetyAudit = append(c.inters.SafetyAudit, interceptors...)
}

// Create returns a builder for creating a SafetyAudit entity.
func (c *SafetyAuditClient) Create() *SafetyAuditCreate {
	mutation := newSafetyAuditMutation(c.config, OpCreate)
	return &SafetyAuditCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SafetyAudit entities.
func (c *SafetyAuditClient) CreateBulk(builders ...*SafetyAuditCreate) *SafetyAuditCreateBulk {
	return &SafetyAuditCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SafetyAuditClient) MapCreateBulk(slice any, setFunc func(*SafetyAuditCreate, int)) *SafetyAuditCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SafetyAuditCreateBulk{err: fmt.Errorf("calling to SafetyAuditClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SafetyAuditCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SafetyAuditCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SafetyAudit.
func (c *SafetyAuditClient) Update() *SafetyAuditUpdate {
	mutation := newSafetyAuditMutation(c.config, OpUpdate)
	return &SafetyAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SafetyAuditClient) UpdateOne(_m *SafetyAudit) *SafetyAuditUpdateOne {
	mutation := newSafetyAuditMutation(c.config, OpUpdateOne, withSafetyAudit(_m))
	return &SafetyAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SafetyAuditClient) UpdateOneID(id int) *SafetyAuditUpdateOne {
	mutation := newSafetyAuditMutation(c.config, OpUpdateOne, withSafetyAuditID(id))
	return &SafetyAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SafetyAudit.
func (c *SafetyAuditClient) Delete() *SafetyAuditDelete {
	mutation := newSafetyAuditMutation(c.config, OpDelete)
	return &SafetyAuditDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SafetyAuditClient) DeleteOne(_m *SafetyAudit) *SafetyAuditDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SafetyAuditClient) DeleteOneID(id int) *SafetyAuditDeleteOne {
	builder := c.Delete().Where(safetyaudit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SafetyAuditDeleteOne{builder}
}

// Query returns a query builder for SafetyAudit.
func (c *SafetyAuditClient) Query() *SafetyAuditQuery {
	return &SafetyAuditQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSafetyAudit},
		inters: c.Interceptors(),
	}
}

// Get returns a SafetyAudit entity by its id.
func (c *SafetyAuditClient) Get(ctx context.Context, id int) (*SafetyAudit, error) {
	return c.Query().Where(safetyaudit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SafetyAuditClient) GetX(ctx context.Context, id int) *SafetyAudit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SafetyAuditClient) Hooks() []Hook {
	return c.hooks.SafetyAudit
}

// Interceptors returns the client interceptors.
func (c *SafetyAuditClient) Interceptors() []Interceptor {
	return c.inters.SafetyAudit
}

func (c *SafetyAuditClient) mutate(ctx context.Context, m *SafetyAuditMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SafetyAuditCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SafetyAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SafetyAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SafetyAuditDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SafetyAudit mutation op: %q", m.Op())
	}
}

// SafetyDeviceClient is a client for the SafetyDevice schema.
type SafetyDeviceClient struct {
	config
}

// NewSafetyDeviceClient returns a client for the SafetyDevice from the given config.
func NewSafetyDeviceClient(c config) *SafetyDeviceClient {
	return &SafetyDeviceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `safetydevice.Hooks(f(g(h())))`.
func (c *SafetyDeviceClient) Use(hooks ...Hook) {
	c.hooks.SafetyDevice = append(c.hooks.SafetyDevice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `safetydevice.Intercept(f(g(h())))`.
func (c *SafetyDeviceClient) Intercept(interceptors ...Interceptor) {
	c.inters.SafetyDevice = append(c.inters.SafetyDevice, interceptors...)
}

// Create returns a builder for creating a SafetyDevice entity.
func (c *SafetyDeviceClient) Create() *SafetyDeviceCreate {
	mutation := newSafetyDeviceMutation(c.config, OpCreate)
	return &SafetyDeviceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SafetyDevice entities.
func (c *SafetyDeviceClient) CreateBulk(builders ...*SafetyDeviceCreate) *SafetyDeviceCreateBulk {
	return &SafetyDeviceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SafetyDeviceClient) MapCreateBulk(slice any, setFunc func(*SafetyDeviceCreate, int)) *SafetyDeviceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SafetyDeviceCreateBulk{err: fmt.Errorf("calling to SafetyDeviceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SafetyDeviceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SafetyDeviceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SafetyDevice.
func (c *SafetyDeviceClient) Update() *SafetyDeviceUpdate {
	mutation := newSafetyDeviceMutation(c.config, OpUpdate)
	return &SafetyDeviceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SafetyDeviceClient) UpdateOne(_m *SafetyDevice) *SafetyDeviceUpdateOne {
	mutation := newSafetyDeviceMutation(c.config, OpUpdateOne, withSafetyDevice(_m))
	return &SafetyDeviceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SafetyDeviceClient) UpdateOneID(id int) *SafetyDeviceUpdateOne {
	mutation := newSafetyDeviceMutation(c.config, OpUpdateOne, withSafetyDeviceID(id))
	return &SafetyDeviceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SafetyDevice.
func (c *SafetyDeviceClient) Delete() *SafetyDeviceDelete {
	mutation := newSafetyDeviceMutation(c.config, OpDelete)
	return &SafetyDeviceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SafetyDeviceClient) DeleteOne(_m *SafetyDevice) *SafetyDeviceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SafetyDeviceClient) DeleteOneID(id int) *SafetyDeviceDeleteOne {
	builder := c.Delete().Where(safetydevice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SafetyDeviceDeleteOne{builder}
}

// Query returns a query builder for SafetyDevice.
func (c *SafetyDeviceClient) Query() *SafetyDeviceQuery {
	return &SafetyDeviceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSafetyDevice},
		inters: c.Interceptors(),
	}
}

// Get returns a SafetyDevice entity by its id.
func (c *SafetyDeviceClient) Get(ctx context.Context, id int) (*SafetyDevice, error) {
	return c.Query().Where(safetydevice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SafetyDeviceClient) GetX(ctx context.Context, id int) *SafetyDevice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SafetyDeviceClient) Hooks() []Hook {
	return c.hooks.SafetyDevice
}

// Interceptors returns the client interceptors.
func (c *SafetyDeviceClient) Interceptors() []Interceptor {
	return c.inters.SafetyDevice
}

func (c *SafetyDeviceClient) mutate(ctx context.Context, m *SafetyDeviceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SafetyDeviceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SafetyDeviceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SafetyDeviceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SafetyDeviceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SafetyDevice mutation op: %q", m.Op())
	}
}

// SiteClient is a client for the Site schema.
type SiteClient struct {
	config
}

// NewSiteClient returns a client for the Site from the given config.
func NewSiteClient(c config) *SiteClient {
	return &SiteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `site.Hooks(f(g(h())))`.
func (c *SiteClient) Use(hooks ...Hook) {
	c.hooks.Site = append(c.hooks.Site, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `site.Intercept(f(g(h())))`.
func (c *SiteClient) Intercept(interceptors ...Interceptor) {
	c.inters.Site = append(c.inters.Site, interceptors...)
}

// Create returns a builder for creating a Site entity.
func (c *SiteClient) Create() *SiteCreate {
	mutation := newSiteMutation(c.config, OpCreate)
	return &SiteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Site entities.
func (c *SiteClient) CreateBulk(builders ...*SiteCreate) *SiteCreateBulk {
	return &SiteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SiteClient) MapCreateBulk(slice any, setFunc func(*SiteCreate, int)) *SiteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SiteCreateBulk{err: fmt.Errorf("calling to SiteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SiteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SiteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Site.
func (c *SiteClient) Update() *SiteUpdate {
	mutation := newSiteMutation(c.config, OpUpdate)
	return &SiteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SiteClient) UpdateOne(_m *Site) *SiteUpdateOne {
	mutation := newSiteMutation(c.config, OpUpdateOne, withSite(_m))
	return &SiteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SiteClient) UpdateOneID(id int) *SiteUpdateOne {
	mutation := newSiteMutation(c.config, OpUpdateOne, withSiteID(id))
	return &SiteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Site.
func (c *SiteClient) Delete() *SiteDelete {
	mutation := newSiteMutation(c.config, OpDelete)
	return &SiteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SiteClient) DeleteOne(_m *Site) *SiteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SiteClient) DeleteOneID(id int) *SiteDeleteOne {
	builder := c.Delete().Where(site.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SiteDeleteOne{builder}
}

// Query returns a query builder for Site.
func (c *SiteClient) Query() *SiteQuery {
	return &SiteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSite},
		inters: c.Interceptors(),
	}
}

// Get returns a Site entity by its id.
func (c *SiteClient) Get(ctx context.Context, id int) (*Site, error) {
	return c.Query().Where(site.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SiteClient) GetX(ctx context.Context, id int) *Site {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SiteClient) Hooks() []Hook {
	return c.hooks.Site
}

// Interceptors returns the client interceptors.
func (c *SiteClient) Interceptors() []Interceptor {
	return c.inters.Site
}

func (c *SiteClient) mutate(ctx context.Context, m *SiteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SiteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SiteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SiteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SiteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Site mutation op: %q", m.Op())
	}
}

// WorkOrderClient is a client for the WorkOrder schema.
type WorkOrderClient struct {
	config
}

// NewWorkOrderClient returns a client for the WorkOrder from the given config.
func NewWorkOrderClient(c config) *WorkOrderClient {
	return &WorkOrderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workorder.Hooks(f(g(h())))`.
func (c *WorkOrderClient) Use(hooks ...Hook) {
	c.hooks.WorkOrder = append(c.hooks.WorkOrder, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workorder.Intercept(f(g(h())))`.
func (c *WorkOrderClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkOrder = append(c.inters.WorkOrder, interceptors...)
}

// Create returns a builder for creating a WorkOrder entity.
func (c *WorkOrderClient) Create() *WorkOrderCreate {
	mutation := newWorkOrderMutation(c.config, OpCreate)
	return &WorkOrderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkOrder entities.
func (c *WorkOrderClient) CreateBulk(builders ...*WorkOrderCreate) *WorkOrderCreateBulk {
	return &WorkOrderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkOrderClient) MapCreateBulk(slice any, setFunc func(*WorkOrderCreate, int)) *WorkOrderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkOrderCreateBulk{err: fmt.Errorf("calling to WorkOrderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkOrderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkOrderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkOrder.
func (c *WorkOrderClient) Update() *WorkOrderUpdate {
	mutation := newWorkOrderMutation(c.config, OpUpdate)
	return &WorkOrderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkOrderClient) UpdateOne(_m *WorkOrder) *WorkOrderUpdateOne {
	mutation := newWorkOrderMutation(c.config, OpUpdateOne, withWorkOrder(_m))
	return &WorkOrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkOrderClient) UpdateOneID(id int) *WorkOrderUpdateOne {
	mutation := newWorkOrderMutation(c.config, OpUpdateOne, withWorkOrderID(id))
	return &WorkOrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkOrder.
func (c *WorkOrderClient) Delete() *WorkOrderDelete {
	mutation := newWorkOrderMutation(c.config, OpDelete)
	return &WorkOrderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkOrderClient) DeleteOne(_m *WorkOrder) *WorkOrderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkOrderClient) DeleteOneID(id int) *WorkOrderDeleteOne {
	builder := c.Delete().Where(workorder.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkOrderDeleteOne{builder}
}

// Query returns a query builder for WorkOrder.
func (c *WorkOrderClient) Query() *WorkOrderQuery {
	return &WorkOrderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkOrder},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkOrder entity by its id.
func (c *WorkOrderClient) Get(ctx context.Context, id int) (*WorkOrder, error) {
	return c.Query().Where(workorder.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkOrderClient) GetX(ctx context.Context, id int) *WorkOrder {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkOrderClient) Hooks() []Hook {
	return c.hooks.WorkOrder
}

// Interceptors returns the client interceptors.
func (c *WorkOrderClient) Interceptors() []Interceptor {
	return c.inters.WorkOrder
}

func (c *WorkOrderClient) mutate(ctx context.Context, m *WorkOrderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkOrderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkOrderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkOrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkOrderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkOrder mutation op: %q", m.Op())
	}
}

// WorkPermitClient is a client for the WorkPermit schema.
type WorkPermitClient struct {
	config
}

// NewWorkPermitClient returns a client for the WorkPermit from the given config.
func NewWorkPermitClient(c config) *WorkPermitClient {
	return &WorkPermitClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workpermit.Hooks(f(g(h())))`.
func (c *WorkPermitClient) Use(hooks ...Hook) {
	c.hooks.WorkPermit = append(c.hooks.WorkPermit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workpermit.Intercept(f(g(h())))`.
func (c *WorkPermitClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkPermit = append(c.inters.WorkPermit, interceptors...)
}

// Create returns a builder for creating a WorkPermit entity.
func (c *WorkPermitClient) Create() *WorkPermitCreate {
	mutation := newWorkPermitMutation(c.config, OpCreate)
	return &WorkPermitCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkPermit entities.
func (c *WorkPermitClient) CreateBulk(builders ...*WorkPermitCreate) *WorkPermitCreateBulk {
	return &WorkPermitCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkPermitClient) MapCreateBulk(slice any, setFunc func(*WorkPermitCreate, int)) *WorkPermitCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkPermitCreateBulk{err: fmt.Errorf("calling to WorkPermitClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkPermitCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkPermitCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkPermit.
func (c *WorkPermitClient) Update() *WorkPermitUpdate {
	mutation := newWorkPermitMutation(c.config, OpUpdate)
	return &WorkPermitUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkPermitClient) UpdateOne(_m *WorkPermit) *WorkPermitUpdateOne {
	mutation := newWorkPermitMutation(c.config, OpUpdateOne, withWorkPermit(_m))
	return &WorkPermitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkPermitClient) UpdateOneID(id int) *WorkPermitUpdateOne {
	mutation := newWorkPermitMutation(c.config, OpUpdateOne, withWorkPermitID(id))
	return &WorkPermitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkPermit.
func (c *WorkPermitClient) Delete() *WorkPermitDelete {
	mutation := newWorkPermitMutation(c.config, OpDelete)
	return &WorkPermitDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkPermitClient) DeleteOne(_m *WorkPermit) *WorkPermitDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkPermitClient) DeleteOneID(id int) *WorkPermitDeleteOne {
	builder := c.Delete().Where(workpermit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkPermitDeleteOne{builder}
}

// Query returns a query builder for WorkPermit.
func (c *WorkPermitClient) Query() *WorkPermitQuery {
	return &WorkPermitQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkPermit},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkPermit entity by its id.
func (c *WorkPermitClient) Get(ctx context.Context, id int) (*WorkPermit, error) {
	return c.Query().Where(workpermit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkPermitClient) GetX(ctx context.Context, id int) *WorkPermit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkPermitClient) Hooks() []Hook {
	return c.hooks.WorkPermit
}

// Interceptors returns the client interceptors.
func (c *WorkPermitClient) Interceptors() []Interceptor {
	return c.inters.WorkPermit
}

func (c *WorkPermitClient) mutate(ctx context.Context, m *WorkPermitMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkPermitCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkPermitUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkPermitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkPermitDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkPermit mutation op: %q", m.Op())
	}
}

// WorkerClient is a client for the Worker schema.
type WorkerClient struct {
	config
}

// NewWorkerClient returns a client for the Worker from the given config.
func NewWorkerClient(c config) *WorkerClient {
	return &WorkerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `worker.Hooks(f(g(h())))`.
func (c *WorkerClient) Use(hooks ...Hook) {
	c.hooks.Worker = append(c.hooks.Worker, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `worker.Intercept(f(g(h())))`.
func (c *WorkerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Worker = append(c.inters.Worker, interceptors...)
}

// Create returns a builder for creating a Worker entity.
func (c *WorkerClient) Create() *WorkerCreate {
	mutation := newWorkerMutation(c.config, OpCreate)
	return &WorkerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Worker entities.
func (c *WorkerClient) CreateBulk(builders ...*WorkerCreate) *WorkerCreateBulk {
	return &WorkerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkerClient) MapCreateBulk(slice any, setFunc func(*WorkerCreate, int)) *WorkerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkerCreateBulk{err: fmt.Errorf("calling to WorkerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Worker.
func (c *WorkerClient) Update() *WorkerUpdate {
	mutation := newWorkerMutation(c.config, OpUpdate)
	return &WorkerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkerClient) UpdateOne(_m *Worker) *WorkerUpdateOne {
	mutation := newWorkerMutation(c.config, OpUpdateOne, withWorker(_m))
	return &WorkerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkerClient) UpdateOneID(id int) *WorkerUpdateOne {
	mutation := newWorkerMutation(c.config, OpUpdateOne, withWorkerID(id))
	return &WorkerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Worker.
func (c *WorkerClient) Delete() *WorkerDelete {
	mutation := newWorkerMutation(c.config, OpDelete)
	return &WorkerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkerClient) DeleteOne(_m *Worker) *WorkerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkerClient) DeleteOneID(id int) *WorkerDeleteOne {
	builder := c.Delete().Where(worker.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkerDeleteOne{builder}
}

// Query returns a query builder for Worker.
func (c *WorkerClient) Query() *WorkerQuery {
	return &WorkerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorker},
		inters: c.Interceptors(),
	}
}

// Get returns a Worker entity by its id.
func (c *WorkerClient) Get(ctx context.Context, id int) (*Worker, error) {
	return c.Query().Where(worker.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkerClient) GetX(ctx context.Context, id int) *Worker {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkerClient) Hooks() []Hook {
	return c.hooks.Worker
}

// Interceptors returns the client interceptors.
func (c *WorkerClient) Interceptors() []Interceptor {
	return c.inters.Worker
}

func (c *WorkerClient) mutate(ctx context.Context, m *WorkerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Worker mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Account, Company, PreventionPlan, Relation, Risk, RiskAnalysis, SafetyAudit,
		SafetyDevice, Site, WorkOrder, WorkPermit, Worker []ent.Hook
	}
	inters struct {
		Account, Company, PreventionPlan, Relation, Risk, RiskAnalysis, SafetyAudit,
		SafetyDevice, Site, WorkOrder, WorkPermit, Worker []ent.Interceptor
	}
)
