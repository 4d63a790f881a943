// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewpulse.io/crewpulse/ent/predicate"
	"crewpulse.io/crewpulse/ent/timeoffrequest"
	"crewpulse.io/crewpulse/ent/user"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// TimeOffRequestUpdate is the builder for updating TimeOffRequest entities.
type TimeOffRequestUpdate struct {
	config
	hooks    []Hook
	mutation *TimeOffRequestMutation
}

// Where appends a list predicates to the TimeOffRequestUpdate builder.
func (_u *TimeOffRequestUpdate) Where(ps ...predicate.TimeOffRequest) *TimeOffRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TimeOffRequestUpdate) SetUpdatedAt(v time.Time) *TimeOffRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartsOn sets the "starts_on" field.
func (_u *TimeOffRequestUpdate) SetStartsOn(v time.Time) *TimeOffRequestUpdate {
	_u.mutation.SetStartsOn(v)
	return _u
}

// SetNillableStartsOn sets the "starts_on" field if the given value is not nil.
func (_u *TimeOffRequestUpdate) SetNillableStartsOn(v *time.Time) *TimeOffRequestUpdate {
	if v != nil {
		_u.SetStartsOn(*v)
	}
	return _u
}

// SetEndsOn sets the "ends_on" field.
func (_u *TimeOffRequestUpdate) SetEndsOn(v time.Time) *TimeOffRequestUpdate {
	_u.mutation.SetEndsOn(v)
	return _u
}

// SetNillableEndsOn sets the "ends_on" field if the given value is not nil.
func (_u *TimeOffRequestUpdate) SetNillableEndsOn(v *time.Time) *TimeOffRequestUpdate {
	if v != nil {
		_u.SetEndsOn(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TimeOffRequestUpdate) SetStatus(v timeoffrequest.Status) *TimeOffRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TimeOffRequestUpdate) SetNillableStatus(v *timeoffrequest.Status) *TimeOffRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *TimeOffRequestUpdate) SetReason(v string) *TimeOffRequestUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TimeOffRequestUpdate) SetNillableReason(v *string) *TimeOffRequestUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *TimeOffRequestUpdate) ClearReason() *TimeOffRequestUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetRespondedBy sets the "responded_by" field.
func (_u *TimeOffRequestUpdate) SetRespondedBy(v string) *TimeOffRequestUpdate {
	_u.mutation.SetRespondedBy(v)
	return _u
}

// SetNillableRespondedBy sets the "responded_by" field if the given value is not nil.
func (_u *TimeOffRequestUpdate) SetNillableRespondedBy(v *string) *TimeOffRequestUpdate {
	if v != nil {
		_u.SetRespondedBy(*v)
	}
	return _u
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (_u *TimeOffRequestUpdate) ClearRespondedBy() *TimeOffRequestUpdate {
	_u.mutation.ClearRespondedBy()
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *TimeOffRequestUpdate) SetUserID(id string) *TimeOffRequestUpdate {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *TimeOffRequestUpdate) SetUser(v *User) *TimeOffRequestUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the TimeOffRequestMutation object of the builder.
func (_u *TimeOffRequestUpdate) Mutation() *TimeOffRequestMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *TimeOffRequestUpdate) ClearUser() *TimeOffRequestUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TimeOffRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimeOffRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TimeOffRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimeOffRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TimeOffRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := timeoffrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TimeOffRequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := timeoffrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TimeOffRequest.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := timeoffrequest.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "TimeOffRequest.reason": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TimeOffRequest.user"`)
	}
	return nil
}

func (_u *TimeOffRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(timeoffrequest.Table, timeoffrequest.Columns, sqlgraph.NewFieldSpec(timeoffrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(timeoffrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartsOn(); ok {
		_spec.SetField(timeoffrequest.FieldStartsOn, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsOn(); ok {
		_spec.SetField(timeoffrequest.FieldEndsOn, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(timeoffrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(timeoffrequest.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(timeoffrequest.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedBy(); ok {
		_spec.SetField(timeoffrequest.FieldRespondedBy, field.TypeString, value)
	}
	if _u.mutation.RespondedByCleared() {
		_spec.ClearField(timeoffrequest.FieldRespondedBy, field.TypeString)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timeoffrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TimeOffRequestUpdateOne is the builder for updating a single TimeOffRequest entity.
type TimeOffRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TimeOffRequestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TimeOffRequestUpdateOne) SetUpdatedAt(v time.Time) *TimeOffRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartsOn sets the "starts_on" field.
func (_u *TimeOffRequestUpdateOne) SetStartsOn(v time.Time) *TimeOffRequestUpdateOne {
	_u.mutation.SetStartsOn(v)
	return _u
}

// SetNillableStartsOn sets the "starts_on" field if the given value is not nil.
func (_u *TimeOffRequestUpdateOne) SetNillableStartsOn(v *time.Time) *TimeOffRequestUpdateOne {
	if v != nil {
		_u.SetStartsOn(*v)
	}
	return _u
}

// SetEndsOn sets the "ends_on" field.
func (_u *TimeOffRequestUpdateOne) SetEndsOn(v time.Time) *TimeOffRequestUpdateOne {
	_u.mutation.SetEndsOn(v)
	return _u
}

// SetNillableEndsOn sets the "ends_on" field if the given value is not nil.
func (_u *TimeOffRequestUpdateOne) SetNillableEndsOn(v *time.Time) *TimeOffRequestUpdateOne {
	if v != nil {
		_u.SetEndsOn(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TimeOffRequestUpdateOne) SetStatus(v timeoffrequest.Status) *TimeOffRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TimeOffRequestUpdateOne) SetNillableStatus(v *timeoffrequest.Status) *TimeOffRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *TimeOffRequestUpdateOne) SetReason(v string) *TimeOffRequestUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TimeOffRequestUpdateOne) SetNillableReason(v *string) *TimeOffRequestUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *TimeOffRequestUpdateOne) ClearReason() *TimeOffRequestUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetRespondedBy sets the "responded_by" field.
func (_u *TimeOffRequestUpdateOne) SetRespondedBy(v string) *TimeOffRequestUpdateOne {
	_u.mutation.SetRespondedBy(v)
	return _u
}

// SetNillableRespondedBy sets the "responded_by" field if the given value is not nil.
func (_u *TimeOffRequestUpdateOne) SetNillableRespondedBy(v *string) *TimeOffRequestUpdateOne {
	if v != nil {
		_u.SetRespondedBy(*v)
	}
	return _u
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (_u *TimeOffRequestUpdateOne) ClearRespondedBy() *TimeOffRequestUpdateOne {
	_u.mutation.ClearRespondedBy()
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *TimeOffRequestUpdateOne) SetUserID(id string) *TimeOffRequestUpdateOne {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *TimeOffRequestUpdateOne) SetUser(v *User) *TimeOffRequestUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the TimeOffRequestMutation object of the builder.
func (_u *TimeOffRequestUpdateOne) Mutation() *TimeOffRequestMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *TimeOffRequestUpdateOne) ClearUser() *TimeOffRequestUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the TimeOffRequestUpdate builder.
func (_u *TimeOffRequestUpdateOne) Where(ps ...predicate.TimeOffRequest) *TimeOffRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TimeOffRequestUpdateOne) Select(field string, fields ...string) *TimeOffRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TimeOffRequest entity.
func (_u *TimeOffRequestUpdateOne) Save(ctx context.Context) (*TimeOffRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimeOffRequestUpdateOne) SaveX(ctx context.Context) *TimeOffRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TimeOffRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimeOffRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TimeOffRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := timeoffrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TimeOffRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := timeoffrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TimeOffRequest.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := timeoffrequest.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "TimeOffRequest.reason": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TimeOffRequest.user"`)
	}
	return nil
}

func (_u *TimeOffRequestUpdateOne) sqlSave(ctx context.Context) (_node *TimeOffRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(timeoffrequest.Table, timeoffrequest.Columns, sqlgraph.NewFieldSpec(timeoffrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TimeOffRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, timeoffrequest.FieldID)
		for _, f := range fields {
			if !timeoffrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != timeoffrequest.FieldID {
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
		_spec.SetField(timeoffrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartsOn(); ok {
		_spec.SetField(timeoffrequest.FieldStartsOn, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndsOn(); ok {
		_spec.SetField(timeoffrequest.FieldEndsOn, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(timeoffrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(timeoffrequest.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(timeoffrequest.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.RespondedBy(); ok {
		_spec.SetField(timeoffrequest.FieldRespondedBy, field.TypeString, value)
	}
	if _u.mutation.RespondedByCleared() {
		_spec.ClearField(timeoffrequest.FieldRespondedBy, field.TypeString)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TimeOffRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timeoffrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
