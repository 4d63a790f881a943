// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewpulse.io/crewpulse/ent/predicate"
	"crewpulse.io/crewpulse/ent/shift"
	"crewpulse.io/crewpulse/ent/shiftswaprequest"
	"crewpulse.io/crewpulse/ent/user"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ShiftUpdate is the builder for updating Shift entities.
type ShiftUpdate struct {
	config
	hooks    []Hook
	mutation *ShiftMutation
}

// Where appends a list predicates to the ShiftUpdate builder.
func (_u *ShiftUpdate) Where(ps ...predicate.Shift) *ShiftUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ShiftUpdate) SetUpdatedAt(v time.Time) *ShiftUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *ShiftUpdate) SetStartsAt(v time.Time) *ShiftUpdate {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *ShiftUpdate) SetNillableStartsAt(v *time.Time) *ShiftUpdate {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *ShiftUpdate) SetEndsAt(v time.Time) *ShiftUpdate {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *ShiftUpdate) SetNillableEndsAt(v *time.Time) *ShiftUpdate {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ShiftUpdate) SetPosition(v string) *ShiftUpdate {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ShiftUpdate) SetNillablePosition(v *string) *ShiftUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// ClearPosition clears the value of the "position" field.
func (_u *ShiftUpdate) ClearPosition() *ShiftUpdate {
	_u.mutation.ClearPosition()
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *ShiftUpdate) SetUserID(id string) *ShiftUpdate {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ShiftUpdate) SetUser(v *User) *ShiftUpdate {
	return _u.SetUserID(v.ID)
}

// AddSwapRequestIDs adds the "swap_requests" edge to the ShiftSwapRequest entity by IDs.
func (_u *ShiftUpdate) AddSwapRequestIDs(ids ...string) *ShiftUpdate {
	_u.mutation.AddSwapRequestIDs(ids...)
	return _u
}

// AddSwapRequests adds the "swap_requests" edges to the ShiftSwapRequest entity.
func (_u *ShiftUpdate) AddSwapRequests(v ...*ShiftSwapRequest) *ShiftUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSwapRequestIDs(ids...)
}

// Mutation returns the ShiftMutation object of the builder.
func (_u *ShiftUpdate) Mutation() *ShiftMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ShiftUpdate) ClearUser() *ShiftUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearSwapRequests clears all "swap_requests" edges to the ShiftSwapRequest entity.
func (_u *ShiftUpdate) ClearSwapRequests() *ShiftUpdate {
	_u.mutation.ClearSwapRequests()
	return _u
}

// RemoveSwapRequestIDs removes the "swap_requests" edge to ShiftSwapRequest entities by IDs.
func (_u *ShiftUpdate) RemoveSwapRequestIDs(ids ...string) *ShiftUpdate {
	_u.mutation.RemoveSwapRequestIDs(ids...)
	return _u
}

// RemoveSwapRequests removes "swap_requests" edges to ShiftSwapRequest entities.
func (_u *ShiftUpdate) RemoveSwapRequests(v ...*ShiftSwapRequest) *ShiftUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSwapRequestIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ShiftUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShiftUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ShiftUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShiftUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ShiftUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := shift.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShiftUpdate) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := shift.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Shift.position": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Shift.user"`)
	}
	return nil
}

func (_u *ShiftUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shift.Table, shift.Columns, sqlgraph.NewFieldSpec(shift.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(shift.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(shift.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(shift.FieldEndsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(shift.FieldPosition, field.TypeString, value)
	}
	if _u.mutation.PositionCleared() {
		_spec.ClearField(shift.FieldPosition, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shift.UserTable,
			Columns: []string{shift.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shift.UserTable,
			Columns: []string{shift.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SwapRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shift.SwapRequestsTable,
			Columns: []string{shift.SwapRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shiftswaprequest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSwapRequestsIDs(); len(nodes) > 0 && !_u.mutation.SwapRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shift.SwapRequestsTable,
			Columns: []string{shift.SwapRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shiftswaprequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SwapRequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shift.SwapRequestsTable,
			Columns: []string{shift.SwapRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shiftswaprequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shift.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ShiftUpdateOne is the builder for updating a single Shift entity.
type ShiftUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ShiftMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ShiftUpdateOne) SetUpdatedAt(v time.Time) *ShiftUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartsAt sets the "starts_at" field.
func (_u *ShiftUpdateOne) SetStartsAt(v time.Time) *ShiftUpdateOne {
	_u.mutation.SetStartsAt(v)
	return _u
}

// SetNillableStartsAt sets the "starts_at" field if the given value is not nil.
func (_u *ShiftUpdateOne) SetNillableStartsAt(v *time.Time) *ShiftUpdateOne {
	if v != nil {
		_u.SetStartsAt(*v)
	}
	return _u
}

// SetEndsAt sets the "ends_at" field.
func (_u *ShiftUpdateOne) SetEndsAt(v time.Time) *ShiftUpdateOne {
	_u.mutation.SetEndsAt(v)
	return _u
}

// SetNillableEndsAt sets the "ends_at" field if the given value is not nil.
func (_u *ShiftUpdateOne) SetNillableEndsAt(v *time.Time) *ShiftUpdateOne {
	if v != nil {
		_u.SetEndsAt(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ShiftUpdateOne) SetPosition(v string) *ShiftUpdateOne {
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ShiftUpdateOne) SetNillablePosition(v *string) *ShiftUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// ClearPosition clears the value of the "position" field.
func (_u *ShiftUpdateOne) ClearPosition() *ShiftUpdateOne {
	_u.mutation.ClearPosition()
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *ShiftUpdateOne) SetUserID(id string) *ShiftUpdateOne {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ShiftUpdateOne) SetUser(v *User) *ShiftUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddSwapRequestIDs adds the "swap_requests" edge to the ShiftSwapRequest entity by IDs.
func (_u *ShiftUpdateOne) AddSwapRequestIDs(ids ...string) *ShiftUpdateOne {
	_u.mutation.AddSwapRequestIDs(ids...)
	return _u
}

// AddSwapRequests adds the "swap_requests" edges to the ShiftSwapRequest entity.
func (_u *ShiftUpdateOne) AddSwapRequests(v ...*ShiftSwapRequest) *ShiftUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSwapRequestIDs(ids...)
}

// Mutation returns the ShiftMutation object of the builder.
func (_u *ShiftUpdateOne) Mutation() *ShiftMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ShiftUpdateOne) ClearUser() *ShiftUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearSwapRequests clears all "swap_requests" edges to the ShiftSwapRequest entity.
func (_u *ShiftUpdateOne) ClearSwapRequests() *ShiftUpdateOne {
	_u.mutation.ClearSwapRequests()
	return _u
}

// RemoveSwapRequestIDs removes the "swap_requests" edge to ShiftSwapRequest entities by IDs.
func (_u *ShiftUpdateOne) RemoveSwapRequestIDs(ids ...string) *ShiftUpdateOne {
	_u.mutation.RemoveSwapRequestIDs(ids...)
	return _u
}

// RemoveSwapRequests removes "swap_requests" edges to ShiftSwapRequest entities.
func (_u *ShiftUpdateOne) RemoveSwapRequests(v ...*ShiftSwapRequest) *ShiftUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSwapRequestIDs(ids...)
}

// Where appends a list predicates to the ShiftUpdate builder.
func (_u *ShiftUpdateOne) Where(ps ...predicate.Shift) *ShiftUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ShiftUpdateOne) Select(field string, fields ...string) *ShiftUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Shift entity.
func (_u *ShiftUpdateOne) Save(ctx context.Context) (*Shift, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShiftUpdateOne) SaveX(ctx context.Context) *Shift {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ShiftUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShiftUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ShiftUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := shift.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShiftUpdateOne) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := shift.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Shift.position": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Shift.user"`)
	}
	return nil
}

func (_u *ShiftUpdateOne) sqlSave(ctx context.Context) (_node *Shift, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shift.Table, shift.Columns, sqlgraph.NewFieldSpec(shift.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Shift.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, shift.FieldID)
		for _, f := range fields {
			if !shift.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != shift.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(shift.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartsAt(); ok {
		_spec.SetField(shift.FieldStartsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsAt(); ok {
		_spec.SetField(shift.FieldEndsAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(shift.FieldPosition, field.TypeString, value)
	}
	if _u.mutation.PositionCleared() {
		_spec.ClearField(shift.FieldPosition, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shift.UserTable,
			Columns: []string{shift.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shift.UserTable,
			Columns: []string{shift.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SwapRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shift.SwapRequestsTable,
			Columns: []string{shift.SwapRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shiftswaprequest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSwapRequestsIDs(); len(nodes) > 0 && !_u.mutation.SwapRequestsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shift.SwapRequestsTable,
			Columns: []string{shift.SwapRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shiftswaprequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SwapRequestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shift.SwapRequestsTable,
			Columns: []string{shift.SwapRequestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shiftswaprequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Shift{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shift.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
