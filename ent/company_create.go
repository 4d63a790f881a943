// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewpulse.io/crewpulse/ent/chatroom"
	"crewpulse.io/crewpulse/ent/company"
	"crewpulse.io/crewpulse/ent/emailtemplate"
	"crewpulse.io/crewpulse/ent/team"
	"crewpulse.io/crewpulse/ent/user"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CompanyCreate is the builder for creating a Company entity.
type CompanyCreate struct {
	config
	mutation *CompanyMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompanyCreate) SetCreatedAt(v time.Time) *CompanyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableCreatedAt(v *time.Time) *CompanyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CompanyCreate) SetUpdatedAt(v time.Time) *CompanyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableUpdatedAt(v *time.Time) *CompanyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *CompanyCreate) SetName(v string) *CompanyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPrimaryColor sets the "primary_color" field.
func (_c *CompanyCreate) SetPrimaryColor(v string) *CompanyCreate {
	_c.mutation.SetPrimaryColor(v)
	return _c
}

// SetNillablePrimaryColor sets the "primary_color" field if the given value is not nil.
func (_c *CompanyCreate) SetNillablePrimaryColor(v *string) *CompanyCreate {
	if v != nil {
		_c.SetPrimaryColor(*v)
	}
	return _c
}

// SetSecondaryColor sets the "secondary_color" field.
func (_c *CompanyCreate) SetSecondaryColor(v string) *CompanyCreate {
	_c.mutation.SetSecondaryColor(v)
	return _c
}

// SetNillableSecondaryColor sets the "secondary_color" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableSecondaryColor(v *string) *CompanyCreate {
	if v != nil {
		_c.SetSecondaryColor(*v)
	}
	return _c
}

// SetLogoURL sets the "logo_url" field.
func (_c *CompanyCreate) SetLogoURL(v string) *CompanyCreate {
	_c.mutation.SetLogoURL(v)
	return _c
}

// SetNillableLogoURL sets the "logo_url" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableLogoURL(v *string) *CompanyCreate {
	if v != nil {
		_c.SetLogoURL(*v)
	}
	return _c
}

// SetFooterMessage sets the "footer_message" field.
func (_c *CompanyCreate) SetFooterMessage(v string) *CompanyCreate {
	_c.mutation.SetFooterMessage(v)
	return _c
}

// SetNillableFooterMessage sets the "footer_message" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableFooterMessage(v *string) *CompanyCreate {
	if v != nil {
		_c.SetFooterMessage(*v)
	}
	return _c
}

// SetBirthdayNotificationsEnabled sets the "birthday_notifications_enabled" field.
func (_c *CompanyCreate) SetBirthdayNotificationsEnabled(v bool) *CompanyCreate {
	_c.mutation.SetBirthdayNotificationsEnabled(v)
	return _c
}

// SetNillableBirthdayNotificationsEnabled sets the "birthday_notifications_enabled" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableBirthdayNotificationsEnabled(v *bool) *CompanyCreate {
	if v != nil {
		_c.SetBirthdayNotificationsEnabled(*v)
	}
	return _c
}

// SetBirthdayNotifySelf sets the "birthday_notify_self" field.
func (_c *CompanyCreate) SetBirthdayNotifySelf(v bool) *CompanyCreate {
	_c.mutation.SetBirthdayNotifySelf(v)
	return _c
}

// SetNillableBirthdayNotifySelf sets the "birthday_notify_self" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableBirthdayNotifySelf(v *bool) *CompanyCreate {
	if v != nil {
		_c.SetBirthdayNotifySelf(*v)
	}
	return _c
}

// SetBirthdayNotifyManagers sets the "birthday_notify_managers" field.
func (_c *CompanyCreate) SetBirthdayNotifyManagers(v bool) *CompanyCreate {
	_c.mutation.SetBirthdayNotifyManagers(v)
	return _c
}

// SetNillableBirthdayNotifyManagers sets the "birthday_notify_managers" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableBirthdayNotifyManagers(v *bool) *CompanyCreate {
	if v != nil {
		_c.SetBirthdayNotifyManagers(*v)
	}
	return _c
}

// SetBirthdayNotifyTeam sets the "birthday_notify_team" field.
func (_c *CompanyCreate) SetBirthdayNotifyTeam(v bool) *CompanyCreate {
	_c.mutation.SetBirthdayNotifyTeam(v)
	return _c
}

// SetNillableBirthdayNotifyTeam sets the "birthday_notify_team" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableBirthdayNotifyTeam(v *bool) *CompanyCreate {
	if v != nil {
		_c.SetBirthdayNotifyTeam(*v)
	}
	return _c
}

// SetBirthdayVisibility sets the "birthday_visibility" field.
func (_c *CompanyCreate) SetBirthdayVisibility(v company.BirthdayVisibility) *CompanyCreate {
	_c.mutation.SetBirthdayVisibility(v)
	return _c
}

// SetNillableBirthdayVisibility sets the "birthday_visibility" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableBirthdayVisibility(v *company.BirthdayVisibility) *CompanyCreate {
	if v != nil {
		_c.SetBirthdayVisibility(*v)
	}
	return _c
}

// SetBirthdayMessageTemplate sets the "birthday_message_template" field.
func (_c *CompanyCreate) SetBirthdayMessageTemplate(v string) *CompanyCreate {
	_c.mutation.SetBirthdayMessageTemplate(v)
	return _c
}

// SetNillableBirthdayMessageTemplate sets the "birthday_message_template" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableBirthdayMessageTemplate(v *string) *CompanyCreate {
	if v != nil {
		_c.SetBirthdayMessageTemplate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CompanyCreate) SetID(v string) *CompanyCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddUserIDs adds the "users" edge to the User entity by IDs.
func (_c *CompanyCreate) AddUserIDs(ids ...string) *CompanyCreate {
	_c.mutation.AddUserIDs(ids...)
	return _c
}

// AddUsers adds the "users" edges to the User entity.
func (_c *CompanyCreate) AddUsers(v ...*User) *CompanyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUserIDs(ids...)
}

// AddTeamIDs adds the "teams" edge to the Team entity by IDs.
func (_c *CompanyCreate) AddTeamIDs(ids ...string) *CompanyCreate {
	_c.mutation.AddTeamIDs(ids...)
	return _c
}

// AddTeams adds the "teams" edges to the Team entity.
func (_c *CompanyCreate) AddTeams(v ...*Team) *CompanyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTeamIDs(ids...)
}

// AddEmailTemplateIDs adds the "email_templates" edge to the EmailTemplate entity by IDs.
func (_c *CompanyCreate) AddEmailTemplateIDs(ids ...string) *CompanyCreate {
	_c.mutation.AddEmailTemplateIDs(ids...)
	return _c
}

// AddEmailTemplates adds the "email_templates" edges to the EmailTemplate entity.
func (_c *CompanyCreate) AddEmailTemplates(v ...*EmailTemplate) *CompanyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEmailTemplateIDs(ids...)
}

// AddChatRoomIDs adds the "chat_rooms" edge to the ChatRoom entity by IDs.
func (_c *CompanyCreate) AddChatRoomIDs(ids ...string) *CompanyCreate {
	_c.mutation.AddChatRoomIDs(ids...)
	return _c
}

// AddChatRooms adds the "chat_rooms" edges to the ChatRoom entity.
func (_c *CompanyCreate) AddChatRooms(v ...*ChatRoom) *CompanyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChatRoomIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_c *CompanyCreate) Mutation() *CompanyMutation {
	return _c.mutation
}

// Save creates the Company in the database.
func (_c *CompanyCreate) Save(ctx context.Context) (*Company, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompanyCreate) SaveX(ctx context.Context) *Company {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompanyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := company.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := company.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.PrimaryColor(); !ok {
		v := company.DefaultPrimaryColor
		_c.mutation.SetPrimaryColor(v)
	}
	if _, ok := _c.mutation.SecondaryColor(); !ok {
		v := company.DefaultSecondaryColor
		_c.mutation.SetSecondaryColor(v)
	}
	if _, ok := _c.mutation.BirthdayNotificationsEnabled(); !ok {
		v := company.DefaultBirthdayNotificationsEnabled
		_c.mutation.SetBirthdayNotificationsEnabled(v)
	}
	if _, ok := _c.mutation.BirthdayNotifySelf(); !ok {
		v := company.DefaultBirthdayNotifySelf
		_c.mutation.SetBirthdayNotifySelf(v)
	}
	if _, ok := _c.mutation.BirthdayNotifyManagers(); !ok {
		v := company.DefaultBirthdayNotifyManagers
		_c.mutation.SetBirthdayNotifyManagers(v)
	}
	if _, ok := _c.mutation.BirthdayNotifyTeam(); !ok {
		v := company.DefaultBirthdayNotifyTeam
		_c.mutation.SetBirthdayNotifyTeam(v)
	}
	if _, ok := _c.mutation.BirthdayVisibility(); !ok {
		v := company.DefaultBirthdayVisibility
		_c.mutation.SetBirthdayVisibility(v)
	}
	if _, ok := _c.mutation.BirthdayMessageTemplate(); !ok {
		v := company.DefaultBirthdayMessageTemplate
		_c.mutation.SetBirthdayMessageTemplate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompanyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Company.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Company.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Company.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PrimaryColor(); !ok {
		return &ValidationError{Name: "primary_color", err: errors.New(`ent: missing required field "Company.primary_color"`)}
	}
	if _, ok := _c.mutation.SecondaryColor(); !ok {
		return &ValidationError{Name: "secondary_color", err: errors.New(`ent: missing required field "Company.secondary_color"`)}
	}
	if v, ok := _c.mutation.FooterMessage(); ok {
		if err := company.FooterMessageValidator(v); err != nil {
			return &ValidationError{Name: "footer_message", err: fmt.Errorf(`ent: validator failed for field "Company.footer_message": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BirthdayNotificationsEnabled(); !ok {
		return &ValidationError{Name: "birthday_notifications_enabled", err: errors.New(`ent: missing required field "Company.birthday_notifications_enabled"`)}
	}
	if _, ok := _c.mutation.BirthdayNotifySelf(); !ok {
		return &ValidationError{Name: "birthday_notify_self", err: errors.New(`ent: missing required field "Company.birthday_notify_self"`)}
	}
	if _, ok := _c.mutation.BirthdayNotifyManagers(); !ok {
		return &ValidationError{Name: "birthday_notify_managers", err: errors.New(`ent: missing required field "Company.birthday_notify_managers"`)}
	}
	if _, ok := _c.mutation.BirthdayNotifyTeam(); !ok {
		return &ValidationError{Name: "birthday_notify_team", err: errors.New(`ent: missing required field "Company.birthday_notify_team"`)}
	}
	if _, ok := _c.mutation.BirthdayVisibility(); !ok {
		return &ValidationError{Name: "birthday_visibility", err: errors.New(`ent: missing required field "Company.birthday_visibility"`)}
	}
	if v, ok := _c.mutation.BirthdayVisibility(); ok {
		if err := company.BirthdayVisibilityValidator(v); err != nil {
			return &ValidationError{Name: "birthday_visibility", err: fmt.Errorf(`ent: validator failed for field "Company.birthday_visibility": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BirthdayMessageTemplate(); !ok {
		return &ValidationError{Name: "birthday_message_template", err: errors.New(`ent: missing required field "Company.birthday_message_template"`)}
	}
	if v, ok := _c.mutation.BirthdayMessageTemplate(); ok {
		if err := company.BirthdayMessageTemplateValidator(v); err != nil {
			return &ValidationError{Name: "birthday_message_template", err: fmt.Errorf(`ent: validator failed for field "Company.birthday_message_template": %w`, err)}
		}
	}
	return nil
}

func (_c *CompanyCreate) sqlSave(ctx context.Context) (*Company, error) {
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
			return nil, fmt.Errorf("unexpected Company.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompanyCreate) createSpec() (*Company, *sqlgraph.CreateSpec) {
	var (
		_node = &Company{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(company.Table, sqlgraph.NewFieldSpec(company.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(company.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(company.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.PrimaryColor(); ok {
		_spec.SetField(company.FieldPrimaryColor, field.TypeString, value)
		_node.PrimaryColor = value
	}
	if value, ok := _c.mutation.SecondaryColor(); ok {
		_spec.SetField(company.FieldSecondaryColor, field.TypeString, value)
		_node.SecondaryColor = value
	}
	if value, ok := _c.mutation.LogoURL(); ok {
		_spec.SetField(company.FieldLogoURL, field.TypeString, value)
		_node.LogoURL = value
	}
	if value, ok := _c.mutation.FooterMessage(); ok {
		_spec.SetField(company.FieldFooterMessage, field.TypeString, value)
		_node.FooterMessage = value
	}
	if value, ok := _c.mutation.BirthdayNotificationsEnabled(); ok {
		_spec.SetField(company.FieldBirthdayNotificationsEnabled, field.TypeBool, value)
		_node.BirthdayNotificationsEnabled = value
	}
	if value, ok := _c.mutation.BirthdayNotifySelf(); ok {
		_spec.SetField(company.FieldBirthdayNotifySelf, field.TypeBool, value)
		_node.BirthdayNotifySelf = value
	}
	if value, ok := _c.mutation.BirthdayNotifyManagers(); ok {
		_spec.SetField(company.FieldBirthdayNotifyManagers, field.TypeBool, value)
		_node.BirthdayNotifyManagers = value
	}
	if value, ok := _c.mutation.BirthdayNotifyTeam(); ok {
		_spec.SetField(company.FieldBirthdayNotifyTeam, field.TypeBool, value)
		_node.BirthdayNotifyTeam = value
	}
	if value, ok := _c.mutation.BirthdayVisibility(); ok {
		_spec.SetField(company.FieldBirthdayVisibility, field.TypeEnum, value)
		_node.BirthdayVisibility = value
	}
	if value, ok := _c.mutation.BirthdayMessageTemplate(); ok {
		_spec.SetField(company.FieldBirthdayMessageTemplate, field.TypeString, value)
		_node.BirthdayMessageTemplate = value
	}
	if nodes := _c.mutation.UsersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.UsersTable,
			Columns: []string{company.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TeamsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.TeamsTable,
			Columns: []string{company.TeamsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EmailTemplatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.EmailTemplatesTable,
			Columns: []string{company.EmailTemplatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailtemplate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatRoomsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.ChatRoomsTable,
			Columns: []string{company.ChatRoomsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatroom.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CompanyCreateBulk is the builder for creating many Company entities in bulk.
type CompanyCreateBulk struct {
	config
	err      error
	builders []*CompanyCreate
}

// Save creates the Company entities in the database.
func (_c *CompanyCreateBulk) Save(ctx context.Context) ([]*Company, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Company, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompanyMutation)
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
func (_c *CompanyCreateBulk) SaveX(ctx context.Context) []*Company {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
