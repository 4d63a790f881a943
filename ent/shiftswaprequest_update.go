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

// ShiftSwapRequestUpdate is the builder for updating ShiftSwapRequest entities.
type ShiftSwapRequestUpdate struct {
	config
	hooks    []Hook
	mutation *ShiftSwapRequestMutation
}

// Where appends a list predicates to the ShiftSwapRequestUpdate builder.
func (_u *ShiftSwapRequestUpdate) Where(ps ...predicate.ShiftSwapRequest) *ShiftSwapRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ShiftSwapRequestUpdate) SetUpdatedAt(v time.Time) *ShiftSwapRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ShiftSwapRequestUpdate) SetStatus(v shiftswaprequest.Status) *ShiftSwapRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ShiftSwapRequestUpdate) SetNillableStatus(v *shiftswaprequest.Status) *ShiftSwapRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ShiftSwapRequestUpdate) SetReason(v string) *ShiftSwapRequestUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ShiftSwapRequestUpdate) SetNillableReason(v *string) *ShiftSwapRequestUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ShiftSwapRequestUpdate) ClearReason() *ShiftSwapRequestUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetRespondedBy sets the "responded_by" field.
func (_u *ShiftSwapRequestUpdate) SetRespondedBy(v string) *ShiftSwapRequestUpdate {
	_u.mutation.SetRespondedBy(v)
	return _u
}

// SetNillableRespondedBy sets the "responded_by" field if the given value is not nil.
func (_u *ShiftSwapRequestUpdate) SetNillableRespondedBy(v *string) *ShiftSwapRequestUpdate {
	if v != nil {
		_u.SetRespondedBy(*v)
	}
	return _u
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (_u *ShiftSwapRequestUpdate) ClearRespondedBy() *ShiftSwapRequestUpdate {
	_u.mutation.ClearRespondedBy()
	return _u
}

// SetRequesterID sets the "requester" edge to the User entity by ID.
func (_u *ShiftSwapRequestUpdate) SetRequesterID(id string) *ShiftSwapRequestUpdate {
	_u.mutation.SetRequesterID(id)
	return _u
}

// SetRequester sets the "requester" edge to the User entity.
func (_u *ShiftSwapRequestUpdate) SetRequester(v *User) *ShiftSwapRequestUpdate {
	return _u.SetRequesterID(v.ID)
}

// SetTargetID sets the "target" edge to the User entity by ID.
func (_u *ShiftSwapRequestUpdate) SetTargetID(id string) *ShiftSwapRequestUpdate {
	_u.mutation.SetTargetID(id)
	return _u
}

// SetNillableTargetID sets the "target" edge to the User entity by ID if the given value is not nil.
func (_u *ShiftSwapRequestUpdate) SetNillableTargetID(id *string) *ShiftSwapRequestUpdate {
	if id != nil {
		_u = _u.SetTargetID(*id)
	}
	return _u
}

// SetTarget sets the "target" edge to the User entity.
func (_u *ShiftSwapRequestUpdate) SetTarget(v *User) *ShiftSwapRequestUpdate {
	return _u.SetTargetID(v.ID)
}

// SetShiftID sets the "shift" edge to the Shift entity by ID.
func (_u *ShiftSwapRequestUpdate) SetShiftID(id string) *ShiftSwapRequestUpdate {
	_u.mutation.SetShiftID(id)
	return _u
}

// SetShift sets the "shift" edge to the Shift entity.
func (_u *ShiftSwapRequestUpdate) SetShift(v *Shift) *ShiftSwapRequestUpdate {
	return _u.SetShiftID(v.ID)
}

// Mutation returns the ShiftSwapRequestMutation object of the builder.
func (_u *ShiftSwapRequestUpdate) Mutation() *ShiftSwapRequestMutation {
	return _u.mutation
}

// ClearRequester clears the "requester" edge to the User entity.
func (_u *ShiftSwapRequestUpdate) ClearRequester() *ShiftSwapRequestUpdate {
	_u.mutation.ClearRequester()
	return _u
}

// ClearTarget clears the "target" edge to the User entity.
func (_u *ShiftSwapRequestUpdate) ClearTarget() *ShiftSwapRequestUpdate {
	_u.mutation.ClearTarget()
	return _u
}

// ClearShift clears the "shift" edge to the Shift entity.
func (_u *ShiftSwapRequestUpdate) ClearShift() *ShiftSwapRequestUpdate {
	_u.mutation.ClearShift()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ShiftSwapRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShiftSwapRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ShiftSwapRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShiftSwapRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ShiftSwapRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := shiftswaprequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShiftSwapRequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := shiftswaprequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ShiftSwapRequest.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := shiftswaprequest.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "ShiftSwapRequest.reason": %w`, err)}
		}
	}
	if _u.mutation.RequesterCleared() && len(_u.mutation.RequesterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ShiftSwapRequest.requester"`)
	}
	if _u.mutation.ShiftCleared() && len(_u.mutation.ShiftIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ShiftSwapRequest.shift"`)
	}
	return nil
}

func (_u *ShiftSwapRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shiftswaprequest.Table, shiftswaprequest.Columns, sqlgraph.NewFieldSpec(shiftswaprequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(shiftswaprequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(shiftswaprequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(shiftswaprequest.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(shiftswaprequest.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedBy(); ok {
		_spec.SetField(shiftswaprequest.FieldRespondedBy, field.TypeString, value)
	}
	if _u.mutation.RespondedByCleared() {
		_spec.ClearField(shiftswaprequest.FieldRespondedBy, field.TypeString)
	}
	if _u.mutation.RequesterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequesterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TargetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TargetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ShiftCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ShiftIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shiftswaprequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ShiftSwapRequestUpdateOne is the builder for updating a single ShiftSwapRequest entity.
type ShiftSwapRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ShiftSwapRequestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ShiftSwapRequestUpdateOne) SetUpdatedAt(v time.Time) *ShiftSwapRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ShiftSwapRequestUpdateOne) SetStatus(v shiftswaprequest.Status) *ShiftSwapRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ShiftSwapRequestUpdateOne) SetNillableStatus(v *shiftswaprequest.Status) *ShiftSwapRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ShiftSwapRequestUpdateOne) SetReason(v string) *ShiftSwapRequestUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ShiftSwapRequestUpdateOne) SetNillableReason(v *string) *ShiftSwapRequestUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ShiftSwapRequestUpdateOne) ClearReason() *ShiftSwapRequestUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetRespondedBy sets the "responded_by" field.
func (_u *ShiftSwapRequestUpdateOne) SetRespondedBy(v string) *ShiftSwapRequestUpdateOne {
	_u.mutation.SetRespondedBy(v)
	return _u
}

// SetNillableRespondedBy sets the "responded_by" field if the given value is not nil.
func (_u *ShiftSwapRequestUpdateOne) SetNillableRespondedBy(v *string) *ShiftSwapRequestUpdateOne {
	if v != nil {
		_u.SetRespondedBy(*v)
	}
	return _u
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (_u *ShiftSwapRequestUpdateOne) ClearRespondedBy() *ShiftSwapRequestUpdateOne {
	_u.mutation.ClearRespondedBy()
	return _u
}

// SetRequesterID sets the "requester" edge to the User entity by ID.
func (_u *ShiftSwapRequestUpdateOne) SetRequesterID(id string) *ShiftSwapRequestUpdateOne {
	_u.mutation.SetRequesterID(id)
	return _u
}

// SetRequester sets the "requester" edge to the User entity.
func (_u *ShiftSwapRequestUpdateOne) SetRequester(v *User) *ShiftSwapRequestUpdateOne {
	return _u.SetRequesterID(v.ID)
}

// SetTargetID sets the "target" edge to the User entity by ID.
func (_u *ShiftSwapRequestUpdateOne) SetTargetID(id string) *ShiftSwapRequestUpdateOne {
	_u.mutation.SetTargetID(id)
	return _u
}

// SetNillableTargetID sets the "target" edge to the User entity by ID if the given value is not nil.
func (_u *ShiftSwapRequestUpdateOne) SetNillableTargetID(id *string) *ShiftSwapRequestUpdateOne {
	if id != nil {
		_u = _u.SetTargetID(*id)
	}
	return _u
}

// SetTarget sets the "target" edge to the User entity.
func (_u *ShiftSwapRequestUpdateOne) SetTarget(v *User) *ShiftSwapRequestUpdateOne {
	return _u.SetTargetID(v.ID)
}

// SetShiftID sets the "shift" edge to the Shift entity by ID.
func (_u *ShiftSwapRequestUpdateOne) SetShiftID(id string) *ShiftSwapRequestUpdateOne {
	_u.mutation.SetShiftID(id)
	return _u
}

// SetShift sets the "shift" edge to the Shift entity.
func (_u *ShiftSwapRequestUpdateOne) SetShift(v *Shift) *ShiftSwapRequestUpdateOne {
	return _u.SetShiftID(v.ID)
}

// Mutation returns the ShiftSwapRequestMutation object of the builder.
func (_u *ShiftSwapRequestUpdateOne) Mutation() *ShiftSwapRequestMutation {
	return _u.mutation
}

// ClearRequester clears the "requester" edge to the User entity.
func (_u *ShiftSwapRequestUpdateOne) ClearRequester() *ShiftSwapRequestUpdateOne {
	_u.mutation.ClearRequester()
	return _u
}

// ClearTarget clears the "target" edge to the User entity.
func (_u *ShiftSwapRequestUpdateOne) ClearTarget() *ShiftSwapRequestUpdateOne {
	_u.mutation.ClearTarget()
	return _u
}

// ClearShift clears the "shift" edge to the Shift entity.
func (_u *ShiftSwapRequestUpdateOne) ClearShift() *ShiftSwapRequestUpdateOne {
	_u.mutation.ClearShift()
	return _u
}

// Where appends a list predicates to the ShiftSwapRequestUpdate builder.
func (_u *ShiftSwapRequestUpdateOne) Where(ps ...predicate.ShiftSwapRequest) *ShiftSwapRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ShiftSwapRequestUpdateOne) Select(field string, fields ...string) *ShiftSwapRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ShiftSwapRequest entity.
func (_u *ShiftSwapRequestUpdateOne) Save(ctx context.Context) (*ShiftSwapRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShiftSwapRequestUpdateOne) SaveX(ctx context.Context) *ShiftSwapRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ShiftSwapRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShiftSwapRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ShiftSwapRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := shiftswaprequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShiftSwapRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := shiftswaprequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ShiftSwapRequest.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := shiftswaprequest.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "ShiftSwapRequest.reason": %w`, err)}
		}
	}
	if _u.mutation.RequesterCleared() && len(_u.mutation.RequesterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ShiftSwapRequest.requester"`)
	}
	if _u.mutation.ShiftCleared() && len(_u.mutation.ShiftIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ShiftSwapRequest.shift"`)
	}
	return nil
}

func (_u *ShiftSwapRequestUpdateOne) sqlSave(ctx context.Context) (_node *ShiftSwapRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shiftswaprequest.Table, shiftswaprequest.Columns, sqlgraph.NewFieldSpec(shiftswaprequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ShiftSwapRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, shiftswaprequest.FieldID)
		for _, f := range fields {
			if !shiftswaprequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != shiftswaprequest.FieldID {
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
		_spec.SetField(shiftswaprequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(shiftswaprequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(shiftswaprequest.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(shiftswaprequest.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedBy(); ok {
		_spec.SetField(shiftswaprequest.FieldRespondedBy, field.TypeString, value)
	}
	if _u.mutation.RespondedByCleared() {
		_spec.ClearField(shiftswaprequest.FieldRespondedBy, field.TypeString)
	}
	if _u.mutation.RequesterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequesterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TargetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TargetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ShiftCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ShiftIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ShiftSwapRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shiftswaprequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
