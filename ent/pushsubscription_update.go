// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"crewpulse.io/crewpulse/ent/predicate"
	"crewpulse.io/crewpulse/ent/pushsubscription"
	"crewpulse.io/crewpulse/ent/user"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PushSubscriptionUpdate is the builder for updating PushSubscription entities.
type PushSubscriptionUpdate struct {
	config
	hooks    []Hook
	mutation *PushSubscriptionMutation
}

// Where appends a list predicates to the PushSubscriptionUpdate builder.
func (_u *PushSubscriptionUpdate) Where(ps ...predicate.PushSubscription) *PushSubscriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *PushSubscriptionUpdate) SetEndpoint(v string) *PushSubscriptionUpdate {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *PushSubscriptionUpdate) SetNillableEndpoint(v *string) *PushSubscriptionUpdate {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetP256dh sets the "p256dh" field.
func (_u *PushSubscriptionUpdate) SetP256dh(v string) *PushSubscriptionUpdate {
	_u.mutation.SetP256dh(v)
	return _u
}

// SetNillableP256dh sets the "p256dh" field if the given value is not nil.
func (_u *PushSubscriptionUpdate) SetNillableP256dh(v *string) *PushSubscriptionUpdate {
	if v != nil {
		_u.SetP256dh(*v)
	}
	return _u
}

// SetAuth sets the "auth" field.
func (_u *PushSubscriptionUpdate) SetAuth(v string) *PushSubscriptionUpdate {
	_u.mutation.SetAuth(v)
	return _u
}

// SetNillableAuth sets the "auth" field if the given value is not nil.
func (_u *PushSubscriptionUpdate) SetNillableAuth(v *string) *PushSubscriptionUpdate {
	if v != nil {
		_u.SetAuth(*v)
	}
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *PushSubscriptionUpdate) SetUserAgent(v string) *PushSubscriptionUpdate {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *PushSubscriptionUpdate) SetNillableUserAgent(v *string) *PushSubscriptionUpdate {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *PushSubscriptionUpdate) ClearUserAgent() *PushSubscriptionUpdate {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *PushSubscriptionUpdate) SetUserID(id string) *PushSubscriptionUpdate {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PushSubscriptionUpdate) SetUser(v *User) *PushSubscriptionUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the PushSubscriptionMutation object of the builder.
func (_u *PushSubscriptionUpdate) Mutation() *PushSubscriptionMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PushSubscriptionUpdate) ClearUser() *PushSubscriptionUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PushSubscriptionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PushSubscriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PushSubscriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PushSubscriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PushSubscriptionUpdate) check() error {
	if v, ok := _u.mutation.Endpoint(); ok {
		if err := pushsubscription.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "PushSubscription.endpoint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.P256dh(); ok {
		if err := pushsubscription.P256dhValidator(v); err != nil {
			return &ValidationError{Name: "p256dh", err: fmt.Errorf(`ent: validator failed for field "PushSubscription.p256dh": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Auth(); ok {
		if err := pushsubscription.AuthValidator(v); err != nil {
			return &ValidationError{Name: "auth", err: fmt.Errorf(`ent: validator failed for field "PushSubscription.auth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserAgent(); ok {
		if err := pushsubscription.UserAgentValidator(v); err != nil {
			return &ValidationError{Name: "user_agent", err: fmt.Errorf(`ent: validator failed for field "PushSubscription.user_agent": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PushSubscription.user"`)
	}
	return nil
}

func (_u *PushSubscriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pushsubscription.Table, pushsubscription.Columns, sqlgraph.NewFieldSpec(pushsubscription.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(pushsubscription.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.P256dh(); ok {
		_spec.SetField(pushsubscription.FieldP256dh, field.TypeString, value)
	}
	if value, ok := _u.mutation.Auth(); ok {
		_spec.SetField(pushsubscription.FieldAuth, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(pushsubscription.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(pushsubscription.FieldUserAgent, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pushsubscription.UserTable,
			Columns: []string{pushsubscription.UserColumn},
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
			Table:   pushsubscription.UserTable,
			Columns: []string{pushsubscription.UserColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pushsubscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PushSubscriptionUpdateOne is the builder for updating a single PushSubscription entity.
type PushSubscriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PushSubscriptionMutation
}

// SetEndpoint sets the "endpoint" field.
func (_u *PushSubscriptionUpdateOne) SetEndpoint(v string) *PushSubscriptionUpdateOne {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *PushSubscriptionUpdateOne) SetNillableEndpoint(v *string) *PushSubscriptionUpdateOne {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetP256dh sets the "p256dh" field.
func (_u *PushSubscriptionUpdateOne) SetP256dh(v string) *PushSubscriptionUpdateOne {
	_u.mutation.SetP256dh(v)
	return _u
}

// SetNillableP256dh sets the "p256dh" field if the given value is not nil.
func (_u *PushSubscriptionUpdateOne) SetNillableP256dh(v *string) *PushSubscriptionUpdateOne {
	if v != nil {
		_u.SetP256dh(*v)
	}
	return _u
}

// SetAuth sets the "auth" field.
func (_u *PushSubscriptionUpdateOne) SetAuth(v string) *PushSubscriptionUpdateOne {
	_u.mutation.SetAuth(v)
	return _u
}

// SetNillableAuth sets the "auth" field if the given value is not nil.
func (_u *PushSubscriptionUpdateOne) SetNillableAuth(v *string) *PushSubscriptionUpdateOne {
	if v != nil {
		_u.SetAuth(*v)
	}
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *PushSubscriptionUpdateOne) SetUserAgent(v string) *PushSubscriptionUpdateOne {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *PushSubscriptionUpdateOne) SetNillableUserAgent(v *string) *PushSubscriptionUpdateOne {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *PushSubscriptionUpdateOne) ClearUserAgent() *PushSubscriptionUpdateOne {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *PushSubscriptionUpdateOne) SetUserID(id string) *PushSubscriptionUpdateOne {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PushSubscriptionUpdateOne) SetUser(v *User) *PushSubscriptionUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the PushSubscriptionMutation object of the builder.
func (_u *PushSubscriptionUpdateOne) Mutation() *PushSubscriptionMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PushSubscriptionUpdateOne) ClearUser() *PushSubscriptionUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the PushSubscriptionUpdate builder.
func (_u *PushSubscriptionUpdateOne) Where(ps ...predicate.PushSubscription) *PushSubscriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PushSubscriptionUpdateOne) Select(field string, fields ...string) *PushSubscriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PushSubscription entity.
func (_u *PushSubscriptionUpdateOne) Save(ctx context.Context) (*PushSubscription, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PushSubscriptionUpdateOne) SaveX(ctx context.Context) *PushSubscription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PushSubscriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PushSubscriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PushSubscriptionUpdateOne) check() error {
	if v, ok := _u.mutation.Endpoint(); ok {
		if err := pushsubscription.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "PushSubscription.endpoint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.P256dh(); ok {
		if err := pushsubscription.P256dhValidator(v); err != nil {
			return &ValidationError{Name: "p256dh", err: fmt.Errorf(`ent: validator failed for field "PushSubscription.p256dh": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Auth(); ok {
		if err := pushsubscription.AuthValidator(v); err != nil {
			return &ValidationError{Name: "auth", err: fmt.Errorf(`ent: validator failed for field "PushSubscription.auth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserAgent(); ok {
		if err := pushsubscription.UserAgentValidator(v); err != nil {
			return &ValidationError{Name: "user_agent", err: fmt.Errorf(`ent: validator failed for field "PushSubscription.user_agent": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PushSubscription.user"`)
	}
	return nil
}

func (_u *PushSubscriptionUpdateOne) sqlSave(ctx context.Context) (_node *PushSubscription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pushsubscription.Table, pushsubscription.Columns, sqlgraph.NewFieldSpec(pushsubscription.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PushSubscription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pushsubscription.FieldID)
		for _, f := range fields {
			if !pushsubscription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pushsubscription.FieldID {
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
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(pushsubscription.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.P256dh(); ok {
		_spec.SetField(pushsubscription.FieldP256dh, field.TypeString, value)
	}
	if value, ok := _u.mutation.Auth(); ok {
		_spec.SetField(pushsubscription.FieldAuth, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(pushsubscription.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(pushsubscription.FieldUserAgent, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pushsubscription.UserTable,
			Columns: []string{pushsubscription.UserColumn},
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
			Table:   pushsubscription.UserTable,
			Columns: []string{pushsubscription.UserColumn},
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
	_node = &PushSubscription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pushsubscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
