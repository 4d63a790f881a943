// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewpulse.io/crewpulse/ent/pushsubscription"
	"crewpulse.io/crewpulse/ent/user"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PushSubscriptionCreate is the builder for creating a PushSubscription entity.
type PushSubscriptionCreate struct {
	config
	mutation *PushSubscriptionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PushSubscriptionCreate) SetCreatedAt(v time.Time) *PushSubscriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PushSubscriptionCreate) SetNillableCreatedAt(v *time.Time) *PushSubscriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetEndpoint sets the "endpoint" field.
func (_c *PushSubscriptionCreate) SetEndpoint(v string) *PushSubscriptionCreate {
	_c.mutation.SetEndpoint(v)
	return _c
}

// SetP256dh sets the "p256dh" field.
func (_c *PushSubscriptionCreate) SetP256dh(v string) *PushSubscriptionCreate {
	_c.mutation.SetP256dh(v)
	return _c
}

// SetAuth sets the "auth" field.
func (_c *PushSubscriptionCreate) SetAuth(v string) *PushSubscriptionCreate {
	_c.mutation.SetAuth(v)
	return _c
}

// SetUserAgent sets the "user_agent" field.
func (_c *PushSubscriptionCreate) SetUserAgent(v string) *PushSubscriptionCreate {
	_c.mutation.SetUserAgent(v)
	return _c
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_c *PushSubscriptionCreate) SetNillableUserAgent(v *string) *PushSubscriptionCreate {
	if v != nil {
		_c.SetUserAgent(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PushSubscriptionCreate) SetID(v string) *PushSubscriptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_c *PushSubscriptionCreate) SetUserID(id string) *PushSubscriptionCreate {
	_c.mutation.SetUserID(id)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *PushSubscriptionCreate) SetUser(v *User) *PushSubscriptionCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the PushSubscriptionMutation object of the builder.
func (_c *PushSubscriptionCreate) Mutation() *PushSubscriptionMutation {
	return _c.mutation
}

// Save creates the PushSubscription in the database.
func (_c *PushSubscriptionCreate) Save(ctx context.Context) (*PushSubscription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PushSubscriptionCreate) SaveX(ctx context.Context) *PushSubscription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PushSubscriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PushSubscriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PushSubscriptionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pushsubscription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PushSubscriptionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PushSubscription.created_at"`)}
	}
	if _, ok := _c.mutation.Endpoint(); !ok {
		return &ValidationError{Name: "endpoint", err: errors.New(`ent: missing required field "PushSubscription.endpoint"`)}
	}
	if v, ok := _c.mutation.Endpoint(); ok {
		if err := pushsubscription.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "PushSubscription.endpoint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.P256dh(); !ok {
		return &ValidationError{Name: "p256dh", err: errors.New(`ent: missing required field "PushSubscription.p256dh"`)}
	}
	if v, ok := _c.mutation.P256dh(); ok {
		if err := pushsubscription.P256dhValidator(v); err != nil {
			return &ValidationError{Name: "p256dh", err: fmt.Errorf(`ent: validator failed for field "PushSubscription.p256dh": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Auth(); !ok {
		return &ValidationError{Name: "auth", err: errors.New(`ent: missing required field "PushSubscription.auth"`)}
	}
	if v, ok := _c.mutation.Auth(); ok {
		if err := pushsubscription.AuthValidator(v); err != nil {
			return &ValidationError{Name: "auth", err: fmt.Errorf(`ent: validator failed for field "PushSubscription.auth": %w`, err)}
		}
	}
	if v, ok := _c.mutation.UserAgent(); ok {
		if err := pushsubscription.UserAgentValidator(v); err != nil {
			return &ValidationError{Name: "user_agent", err: fmt.Errorf(`ent: validator failed for field "PushSubscription.user_agent": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "PushSubscription.user"`)}
	}
	return nil
}

func (_c *PushSubscriptionCreate) sqlSave(ctx context.Context) (*PushSubscription, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PushSubscription.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PushSubscriptionCreate) createSpec() (*PushSubscription, *sqlgraph.CreateSpec) {
	var (
		_node = &PushSubscription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pushsubscription.Table, sqlgraph.NewFieldSpec(pushsubscription.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pushsubscription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Endpoint(); ok {
		_spec.SetField(pushsubscription.FieldEndpoint, field.TypeString, value)
		_node.Endpoint = value
	}
	if value, ok := _c.mutation.P256dh(); ok {
		_spec.SetField(pushsubscription.FieldP256dh, field.TypeString, value)
		_node.P256dh = value
	}
	if value, ok := _c.mutation.Auth(); ok {
		_spec.SetField(pushsubscription.FieldAuth, field.TypeString, value)
		_node.Auth = value
	}
	if value, ok := _c.mutation.UserAgent(); ok {
		_spec.SetField(pushsubscription.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.user_push_subscriptions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PushSubscriptionCreateBulk is the builder for creating many PushSubscription entities in bulk.
type PushSubscriptionCreateBulk struct {
	config
	err      error
	builders []*PushSubscriptionCreate
}

// Save creates the PushSubscription entities in the database.
func (_c *PushSubscriptionCreateBulk) Save(ctx context.Context) ([]*PushSubscription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PushSubscription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PushSubscriptionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PushSubscriptionCreateBulk) SaveX(ctx context.Context) []*PushSubscription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PushSubscriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PushSubscriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
