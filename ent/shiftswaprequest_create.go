// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewpulse.io/crewpulse/ent/shift"
	"crewpulse.io/crewpulse/ent/shiftswaprequest"
	"crewpulse.io/crewpulse/ent/user"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ShiftSwapRequestCreate is the builder for creating a ShiftSwapRequest entity.
type ShiftSwapRequestCreate struct {
	config
	mutation *ShiftSwapRequestMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ShiftSwapRequestCreate) SetCreatedAt(v time.Time) *ShiftSwapRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ShiftSwapRequestCreate) SetNillableCreatedAt(v *time.Time) *ShiftSwapRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ShiftSwapRequestCreate) SetUpdatedAt(v time.Time) *ShiftSwapRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ShiftSwapRequestCreate) SetNillableUpdatedAt(v *time.Time) *ShiftSwapRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ShiftSwapRequestCreate) SetStatus(v shiftswaprequest.Status) *ShiftSwapRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ShiftSwapRequestCreate) SetNillableStatus(v *shiftswaprequest.Status) *ShiftSwapRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *ShiftSwapRequestCreate) SetReason(v string) *ShiftSwapRequestCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *ShiftSwapRequestCreate) SetNillableReason(v *string) *ShiftSwapRequestCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetRespondedBy sets the "responded_by" field.
func (_c *ShiftSwapRequestCreate) SetRespondedBy(v string) *ShiftSwapRequestCreate {
	_c.mutation.SetRespondedBy(v)
	return _c
}

// SetNillableRespondedBy sets the "responded_by" field if the given value is not nil.
func (_c *ShiftSwapRequestCreate) SetNillableRespondedBy(v *string) *ShiftSwapRequestCreate {
	if v != nil {
		_c.SetRespondedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ShiftSwapRequestCreate) SetID(v string) *ShiftSwapRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequesterID sets the "requester" edge to the User entity by ID.
func (_c *ShiftSwapRequestCreate) SetRequesterID(id string) *ShiftSwapRequestCreate {
	_c.mutation.SetRequesterID(id)
	return _c
}

// SetRequester sets the "requester" edge to the User entity.
func (_c *ShiftSwapRequestCreate) SetRequester(v *User) *ShiftSwapRequestCreate {
	return _c.SetRequesterID(v.ID)
}

// SetTargetID sets the "target" edge to the User entity by ID.
func (_c *ShiftSwapRequestCreate) SetTargetID(id string) *ShiftSwapRequestCreate {
	_c.mutation.SetTargetID(id)
	return _c
}

// SetNillableTargetID sets the "target" edge to the User entity by ID if the given value is not nil.
func (_c *ShiftSwapRequestCreate) SetNillableTargetID(id *string) *ShiftSwapRequestCreate {
	if id != nil {
		_c = _c.SetTargetID(*id)
	}
	return _c
}

// SetTarget sets the "target" edge to the User entity.
func (_c *ShiftSwapRequestCreate) SetTarget(v *User) *ShiftSwapRequestCreate {
	return _c.SetTargetID(v.ID)
}

// SetShiftID sets the "shift" edge to the Shift entity by ID.
func (_c *ShiftSwapRequestCreate) SetShiftID(id string) *ShiftSwapRequestCreate {
	_c.mutation.SetShiftID(id)
	return _c
}

// SetShift sets the "shift" edge to the Shift entity.
func (_c *ShiftSwapRequestCreate) SetShift(v *Shift) *ShiftSwapRequestCreate {
	return _c.SetShiftID(v.ID)
}

// Mutation returns the ShiftSwapRequestMutation object of the builder.
func (_c *ShiftSwapRequestCreate) Mutation() *ShiftSwapRequestMutation {
	return _c.mutation
}

// Save creates the ShiftSwapRequest in the database.
func (_c *ShiftSwapRequestCreate) Save(ctx context.Context) (*ShiftSwapRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ShiftSwapRequestCreate) SaveX(ctx context.Context) *ShiftSwapRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShiftSwapRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShiftSwapRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ShiftSwapRequestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := shiftswaprequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := shiftswaprequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := shiftswaprequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ShiftSwapRequestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ShiftSwapRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ShiftSwapRequest.updated_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ShiftSwapRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := shiftswaprequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ShiftSwapRequest.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := shiftswaprequest.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "ShiftSwapRequest.reason": %w`, err)}
		}
	}
	if len(_c.mutation.RequesterIDs()) == 0 {
		return &ValidationError{Name: "requester", err: errors.New(`ent: missing required edge "ShiftSwapRequest.requester"`)}
	}
	if len(_c.mutation.ShiftIDs()) == 0 {
		return &ValidationError{Name: "shift", err: errors.New(`ent: missing required edge "ShiftSwapRequest.shift"`)}
	}
	return nil
}

func (_c *ShiftSwapRequestCreate) sqlSave(ctx context.Context) (*ShiftSwapRequest, error) {
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
			return nil, fmt.Errorf("unexpected ShiftSwapRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ShiftSwapRequestCreate) createSpec() (*ShiftSwapRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &ShiftSwapRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(shiftswaprequest.Table, sqlgraph.NewFieldSpec(shiftswaprequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(shiftswaprequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(shiftswaprequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(shiftswaprequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(shiftswaprequest.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.RespondedBy(); ok {
		_spec.SetField(shiftswaprequest.FieldRespondedBy, field.TypeString, value)
		_node.RespondedBy = value
	}
	if nodes := _c.mutation.RequesterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shiftswaprequest.RequesterTable,
			Columns: []string{shiftswaprequest.RequesterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_swap_requests = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TargetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shiftswaprequest.TargetTable,
			Columns: []string{shiftswaprequest.TargetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_swap_targets = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ShiftIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shiftswaprequest.ShiftTable,
			Columns: []string{shiftswaprequest.ShiftColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shift.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.shift_swap_requests = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ShiftSwapRequestCreateBulk is the builder for creating many ShiftSwapRequest entities in bulk.
type ShiftSwapRequestCreateBulk struct {
	config
	err      error
	builders []*ShiftSwapRequestCreate
}

// Save creates the ShiftSwapRequest entities in the database.
func (_c *ShiftSwapRequestCreateBulk) Save(ctx context.Context) ([]*ShiftSwapRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ShiftSwapRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ShiftSwapRequestMutation)
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
func (_c *ShiftSwapRequestCreateBulk) SaveX(ctx context.Context) []*ShiftSwapRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShiftSwapRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShiftSwapRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
