// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewpulse.io/crewpulse/ent/timeoffrequest"
	"crewpulse.io/crewpulse/ent/user"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// TimeOffRequestCreate is the builder for creating a TimeOffRequest entity.
type TimeOffRequestCreate struct {
	config
	mutation *TimeOffRequestMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TimeOffRequestCreate) SetCreatedAt(v time.Time) *TimeOffRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TimeOffRequestCreate) SetNillableCreatedAt(v *time.Time) *TimeOffRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TimeOffRequestCreate) SetUpdatedAt(v time.Time) *TimeOffRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TimeOffRequestCreate) SetNillableUpdatedAt(v *time.Time) *TimeOffRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartsOn sets the "starts_on" field.
func (_c *TimeOffRequestCreate) SetStartsOn(v time.Time) *TimeOffRequestCreate {
	_c.mutation.SetStartsOn(v)
	return _c
}

// SetEndsOn sets the "ends_on" field.
func (_c *TimeOffRequestCreate) SetEndsOn(v time.Time) *TimeOffRequestCreate {
	_c.mutation.SetEndsOn(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TimeOffRequestCreate) SetStatus(v timeoffrequest.Status) *TimeOffRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TimeOffRequestCreate) SetNillableStatus(v *timeoffrequest.Status) *TimeOffRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *TimeOffRequestCreate) SetReason(v string) *TimeOffRequestCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *TimeOffRequestCreate) SetNillableReason(v *string) *TimeOffRequestCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetRespondedBy sets the "responded_by" field.
func (_c *TimeOffRequestCreate) SetRespondedBy(v string) *TimeOffRequestCreate {
	_c.mutation.SetRespondedBy(v)
	return _c
}

// SetNillableRespondedBy sets the "responded_by" field if the given value is not nil.
func (_c *TimeOffRequestCreate) SetNillableRespondedBy(v *string) *TimeOffRequestCreate {
	if v != nil {
		_c.SetRespondedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TimeOffRequestCreate) SetID(v string) *TimeOffRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_c *TimeOffRequestCreate) SetUserID(id string) *TimeOffRequestCreate {
	_c.mutation.SetUserID(id)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *TimeOffRequestCreate) SetUser(v *User) *TimeOffRequestCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the TimeOffRequestMutation object of the builder.
func (_c *TimeOffRequestCreate) Mutation() *TimeOffRequestMutation {
	return _c.mutation
}

// Save creates the TimeOffRequest in the database.
func (_c *TimeOffRequestCreate) Save(ctx context.Context) (*TimeOffRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TimeOffRequestCreate) SaveX(ctx context.Context) *TimeOffRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimeOffRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimeOffRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TimeOffRequestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := timeoffrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := timeoffrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := timeoffrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TimeOffRequestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TimeOffRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TimeOffRequest.updated_at"`)}
	}
	if _, ok := _c.mutation.StartsOn(); !ok {
		return &ValidationError{Name: "starts_on", err: errors.New(`ent: missing required field "TimeOffRequest.starts_on"`)}
	}
	if _, ok := _c.mutation.EndsOn(); !ok {
		return &ValidationError{Name: "ends_on", err: errors.New(`ent: missing required field "TimeOffRequest.ends_on"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TimeOffRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := timeoffrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TimeOffRequest.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := timeoffrequest.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "TimeOffRequest.reason": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "TimeOffRequest.user"`)}
	}
	return nil
}

func (_c *TimeOffRequestCreate) sqlSave(ctx context.Context) (*TimeOffRequest, error) {
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
			return nil, fmt.Errorf("unexpected TimeOffRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TimeOffRequestCreate) createSpec() (*TimeOffRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &TimeOffRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(timeoffrequest.Table, sqlgraph.NewFieldSpec(timeoffrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(timeoffrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(timeoffrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartsOn(); ok {
		_spec.SetField(timeoffrequest.FieldStartsOn, field.TypeTime, value)
		_node.StartsOn = value
	}
	if value, ok := _c.mutation.EndsOn(); ok {
		_spec.SetField(timeoffrequest.FieldEndsOn, field.TypeTime, value)
		_node.EndsOn = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(timeoffrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(timeoffrequest.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.RespondedBy(); ok {
		_spec.SetField(timeoffrequest.FieldRespondedBy, field.TypeString, value)
		_node.RespondedBy = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   timeoffrequest.UserTable,
			Columns: []string{timeoffrequest.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_time_off_requests = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TimeOffRequestCreateBulk is the builder for creating many TimeOffRequest entities in bulk.
type TimeOffRequestCreateBulk struct {
	config
	err      error
	builders []*TimeOffRequestCreate
}

// Save creates the TimeOffRequest entities in the database.
func (_c *TimeOffRequestCreateBulk) Save(ctx context.Context) ([]*TimeOffRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TimeOffRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TimeOffRequestMutation)
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
func (_c *TimeOffRequestCreateBulk) SaveX(ctx context.Context) []*TimeOffRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TimeOffRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TimeOffRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
