// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"crewpulse.io/crewpulse/ent/predicate"
	"crewpulse.io/crewpulse/ent/shift"
	"crewpulse.io/crewpulse/ent/shiftswaprequest"
	"crewpulse.io/crewpulse/ent/user"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ShiftSwapRequestQuery is the builder for querying ShiftSwapRequest entities.
type ShiftSwapRequestQuery struct {
	config
	ctx           *QueryContext
	order         []shiftswaprequest.OrderOption
	inters        []Interceptor
	predicates    []predicate.ShiftSwapRequest
	withRequester *UserQuery
	withTarget    *UserQuery
	withShift     *ShiftQuery
	withFKs       bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ShiftSwapRequestQuery builder.
func (_q *ShiftSwapRequestQuery) Where(ps ...predicate.ShiftSwapRequest) *ShiftSwapRequestQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ShiftSwapRequestQuery) Limit(limit int) *ShiftSwapRequestQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ShiftSwapRequestQuery) Offset(offset int) *ShiftSwapRequestQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ShiftSwapRequestQuery) Unique(unique bool) *ShiftSwapRequestQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ShiftSwapRequestQuery) Order(o ...shiftswaprequest.OrderOption) *ShiftSwapRequestQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRequester chains the current query on the "requester" edge.
func (_q *ShiftSwapRequestQuery) QueryRequester() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(shiftswaprequest.Table, shiftswaprequest.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, shiftswaprequest.RequesterTable, shiftswaprequest.RequesterColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTarget chains the current query on the "target" edge.
func (_q *ShiftSwapRequestQuery) QueryTarget() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(shiftswaprequest.Table, shiftswaprequest.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, shiftswaprequest.TargetTable, shiftswaprequest.TargetColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryShift chains the current query on the "shift" edge.
func (_q *ShiftSwapRequestQuery) QueryShift() *ShiftQuery {
	query := (&ShiftClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(shiftswaprequest.Table, shiftswaprequest.FieldID, selector),
			sqlgraph.To(shift.Table, shift.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, shiftswaprequest.ShiftTable, shiftswaprequest.ShiftColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ShiftSwapRequest entity from the query.
// Returns a *NotFoundError when no ShiftSwapRequest was found.
func (_q *ShiftSwapRequestQuery) First(ctx context.Context) (*ShiftSwapRequest, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{shiftswaprequest.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ShiftSwapRequestQuery) FirstX(ctx context.Context) *ShiftSwapRequest {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ShiftSwapRequest ID from the query.
// Returns a *NotFoundError when no ShiftSwapRequest ID was found.
func (_q *ShiftSwapRequestQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{shiftswaprequest.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ShiftSwapRequestQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ShiftSwapRequest entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ShiftSwapRequest entity is found.
// Returns a *NotFoundError when no ShiftSwapRequest entities are found.
func (_q *ShiftSwapRequestQuery) Only(ctx context.Context) (*ShiftSwapRequest, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{shiftswaprequest.Label}
	default:
		return nil, &NotSingularError{shiftswaprequest.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ShiftSwapRequestQuery) OnlyX(ctx context.Context) *ShiftSwapRequest {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ShiftSwapRequest ID in the query.
// Returns a *NotSingularError when more than one ShiftSwapRequest ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ShiftSwapRequestQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{shiftswaprequest.Label}
	default:
		err = &NotSingularError{shiftswaprequest.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ShiftSwapRequestQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ShiftSwapRequests.
func (_q *ShiftSwapRequestQuery) All(ctx context.Context) ([]*ShiftSwapRequest, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ShiftSwapRequest, *ShiftSwapRequestQuery]()
	return withInterceptors[[]*ShiftSwapRequest](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ShiftSwapRequestQuery) AllX(ctx context.Context) []*ShiftSwapRequest {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ShiftSwapRequest IDs.
func (_q *ShiftSwapRequestQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(shiftswaprequest.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ShiftSwapRequestQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ShiftSwapRequestQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ShiftSwapRequestQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ShiftSwapRequestQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ShiftSwapRequestQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ShiftSwapRequestQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ShiftSwapRequestQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ShiftSwapRequestQuery) Clone() *ShiftSwapRequestQuery {
	if _q == nil {
		return nil
	}
	return &ShiftSwapRequestQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]shiftswaprequest.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.ShiftSwapRequest{}, _q.predicates...),
		withRequester: _q.withRequester.Clone(),
		withTarget:    _q.withTarget.Clone(),
		withShift:     _q.withShift.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRequester tells the query-builder to eager-load the nodes that are connected to
// the "requester" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ShiftSwapRequestQuery) WithRequester(opts ...func(*UserQuery)) *ShiftSwapRequestQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRequester = query
	return _q
}

// WithTarget tells the query-builder to eager-load the nodes that are connected to
// the "target" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ShiftSwapRequestQuery) WithTarget(opts ...func(*UserQuery)) *ShiftSwapRequestQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTarget = query
	return _q
}

// WithShift tells the query-builder to eager-load the nodes that are connected to
// the "shift" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ShiftSwapRequestQuery) WithShift(opts ...func(*ShiftQuery)) *ShiftSwapRequestQuery {
	query := (&ShiftClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withShift = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ShiftSwapRequest.Query().
//		GroupBy(shiftswaprequest.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ShiftSwapRequestQuery) GroupBy(field string, fields ...string) *ShiftSwapRequestGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ShiftSwapRequestGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = shiftswaprequest.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.ShiftSwapRequest.Query().
//		Select(shiftswaprequest.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *ShiftSwapRequestQuery) Select(fields ...string) *ShiftSwapRequestSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ShiftSwapRequestSelect{ShiftSwapRequestQuery: _q}
	sbuild.label = shiftswaprequest.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ShiftSwapRequestSelect configured with the given aggregations.
func (_q *ShiftSwapRequestQuery) Aggregate(fns ...AggregateFunc) *ShiftSwapRequestSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ShiftSwapRequestQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !shiftswaprequest.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ShiftSwapRequestQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ShiftSwapRequest, error) {
	var (
		nodes       = []*ShiftSwapRequest{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withRequester != nil,
			_q.withTarget != nil,
			_q.withShift != nil,
		}
	)
	if _q.withRequester != nil || _q.withTarget != nil || _q.withShift != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, shiftswaprequest.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ShiftSwapRequest).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ShiftSwapRequest{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withRequester; query != nil {
		if err := _q.loadRequester(ctx, query, nodes, nil,
			func(n *ShiftSwapRequest, e *User) { n.Edges.Requester = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTarget; query != nil {
		if err := _q.loadTarget(ctx, query, nodes, nil,
			func(n *ShiftSwapRequest, e *User) { n.Edges.Target = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withShift; query != nil {
		if err := _q.loadShift(ctx, query, nodes, nil,
			func(n *ShiftSwapRequest, e *Shift) { n.Edges.Shift = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ShiftSwapRequestQuery) loadRequester(ctx context.Context, query *UserQuery, nodes []*ShiftSwapRequest, init func(*ShiftSwapRequest), assign func(*ShiftSwapRequest, *User)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ShiftSwapRequest)
	for i := range nodes {
		if nodes[i].user_swap_requests == nil {
			continue
		}
		fk := *nodes[i].user_swap_requests
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_swap_requests" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ShiftSwapRequestQuery) loadTarget(ctx context.Context, query *UserQuery, nodes []*ShiftSwapRequest, init func(*ShiftSwapRequest), assign func(*ShiftSwapRequest, *User)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ShiftSwapRequest)
	for i := range nodes {
		if nodes[i].user_swap_targets == nil {
			continue
		}
		fk := *nodes[i].user_swap_targets
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_swap_targets" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ShiftSwapRequestQuery) loadShift(ctx context.Context, query *ShiftQuery, nodes []*ShiftSwapRequest, init func(*ShiftSwapRequest), assign func(*ShiftSwapRequest, *Shift)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ShiftSwapRequest)
	for i := range nodes {
		if nodes[i].shift_swap_requests == nil {
			continue
		}
		fk := *nodes[i].shift_swap_requests
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(shift.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "shift_swap_requests" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ShiftSwapRequestQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ShiftSwapRequestQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(shiftswaprequest.Table, shiftswaprequest.Columns, sqlgraph.NewFieldSpec(shiftswaprequest.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, shiftswaprequest.FieldID)
		for i := range fields {
			if fields[i] != shiftswaprequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ShiftSwapRequestQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(shiftswaprequest.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = shiftswaprequest.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ShiftSwapRequestGroupBy is the group-by builder for ShiftSwapRequest entities.
type ShiftSwapRequestGroupBy struct {
	selector
	build *ShiftSwapRequestQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ShiftSwapRequestGroupBy) Aggregate(fns ...AggregateFunc) *ShiftSwapRequestGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ShiftSwapRequestGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ShiftSwapRequestQuery, *ShiftSwapRequestGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ShiftSwapRequestGroupBy) sqlScan(ctx context.Context, root *ShiftSwapRequestQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ShiftSwapRequestSelect is the builder for selecting fields of ShiftSwapRequest entities.
type ShiftSwapRequestSelect struct {
	*ShiftSwapRequestQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ShiftSwapRequestSelect) Aggregate(fns ...AggregateFunc) *ShiftSwapRequestSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ShiftSwapRequestSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ShiftSwapRequestQuery, *ShiftSwapRequestSelect](ctx, _s.ShiftSwapRequestQuery, _s, _s.inters, v)
}

func (_s *ShiftSwapRequestSelect) sqlScan(ctx context.Context, root *ShiftSwapRequestQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
