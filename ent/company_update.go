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
	"crewpulse.io/crewpulse/ent/predicate"
	"crewpulse.io/crewpulse/ent/team"
	"crewpulse.io/crewpulse/ent/user"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CompanyUpdate is the builder for updating Company entities.
type CompanyUpdate struct {
	config
	hooks    []Hook
	mutation *CompanyMutation
}

// Where appends a list predicates to the CompanyUpdate builder.
func (_u *CompanyUpdate) Where(ps ...predicate.Company) *CompanyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompanyUpdate) SetUpdatedAt(v time.Time) *CompanyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyUpdate) SetName(v string) *CompanyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableName(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrimaryColor sets the "primary_color" field.
func (_u *CompanyUpdate) SetPrimaryColor(v string) *CompanyUpdate {
	_u.mutation.SetPrimaryColor(v)
	return _u
}

// SetNillablePrimaryColor sets the "primary_color" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillablePrimaryColor(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetPrimaryColor(*v)
	}
	return _u
}

// SetSecondaryColor sets the "secondary_color" field.
func (_u *CompanyUpdate) SetSecondaryColor(v string) *CompanyUpdate {
	_u.mutation.SetSecondaryColor(v)
	return _u
}

// SetNillableSecondaryColor sets the "secondary_color" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableSecondaryColor(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetSecondaryColor(*v)
	}
	return _u
}

// SetLogoURL sets the "logo_url" field.
func (_u *CompanyUpdate) SetLogoURL(v string) *CompanyUpdate {
	_u.mutation.SetLogoURL(v)
	return _u
}

// SetNillableLogoURL sets the "logo_url" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableLogoURL(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetLogoURL(*v)
	}
	return _u
}

// ClearLogoURL clears the value of the "logo_url" field.
func (_u *CompanyUpdate) ClearLogoURL() *CompanyUpdate {
	_u.mutation.ClearLogoURL()
	return _u
}

// SetFooterMessage sets the "footer_message" field.
func (_u *CompanyUpdate) SetFooterMessage(v string) *CompanyUpdate {
	_u.mutation.SetFooterMessage(v)
	return _u
}

// SetNillableFooterMessage sets the "footer_message" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableFooterMessage(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetFooterMessage(*v)
	}
	return _u
}

// ClearFooterMessage clears the value of the "footer_message" field.
func (_u *CompanyUpdate) ClearFooterMessage() *CompanyUpdate {
	_u.mutation.ClearFooterMessage()
	return _u
}

// SetBirthdayNotificationsEnabled sets the "birthday_notifications_enabled" field.
func (_u *CompanyUpdate) SetBirthdayNotificationsEnabled(v bool) *CompanyUpdate {
	_u.mutation.SetBirthdayNotificationsEnabled(v)
	return _u
}

// SetNillableBirthdayNotificationsEnabled sets the "birthday_notifications_enabled" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableBirthdayNotificationsEnabled(v *bool) *CompanyUpdate {
	if v != nil {
		_u.SetBirthdayNotificationsEnabled(*v)
	}
	return _u
}

// SetBirthdayNotifySelf sets the "birthday_notify_self" field.
func (_u *CompanyUpdate) SetBirthdayNotifySelf(v bool) *CompanyUpdate {
	_u.mutation.SetBirthdayNotifySelf(v)
	return _u
}

// SetNillableBirthdayNotifySelf sets the "birthday_notify_self" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableBirthdayNotifySelf(v *bool) *CompanyUpdate {
	if v != nil {
		_u.SetBirthdayNotifySelf(*v)
	}
	return _u
}

// SetBirthdayNotifyManagers sets the "birthday_notify_managers" field.
func (_u *CompanyUpdate) SetBirthdayNotifyManagers(v bool) *CompanyUpdate {
	_u.mutation.SetBirthdayNotifyManagers(v)
	return _u
}

// SetNillableBirthdayNotifyManagers sets the "birthday_notify_managers" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableBirthdayNotifyManagers(v *bool) *CompanyUpdate {
	if v != nil {
		_u.SetBirthdayNotifyManagers(*v)
	}
	return _u
}

// SetBirthdayNotifyTeam sets the "birthday_notify_team" field.
func (_u *CompanyUpdate) SetBirthdayNotifyTeam(v bool) *CompanyUpdate {
	_u.mutation.SetBirthdayNotifyTeam(v)
	return _u
}

// SetNillableBirthdayNotifyTeam sets the "birthday_notify_team" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableBirthdayNotifyTeam(v *bool) *CompanyUpdate {
	if v != nil {
		_u.SetBirthdayNotifyTeam(*v)
	}
	return _u
}

// SetBirthdayVisibility sets the "birthday_visibility" field.
func (_u *CompanyUpdate) SetBirthdayVisibility(v company.BirthdayVisibility) *CompanyUpdate {
	_u.mutation.SetBirthdayVisibility(v)
	return _u
}

// SetNillableBirthdayVisibility sets the "birthday_visibility" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableBirthdayVisibility(v *company.BirthdayVisibility) *CompanyUpdate {
	if v != nil {
		_u.SetBirthdayVisibility(*v)
	}
	return _u
}

// SetBirthdayMessageTemplate sets the "birthday_message_template" field.
func (_u *CompanyUpdate) SetBirthdayMessageTemplate(v string) *CompanyUpdate {
	_u.mutation.SetBirthdayMessageTemplate(v)
	return _u
}

// SetNillableBirthdayMessageTemplate sets the "birthday_message_template" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableBirthdayMessageTemplate(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetBirthdayMessageTemplate(*v)
	}
	return _u
}

// AddUserIDs adds the "users" edge to the User entity by IDs.
func (_u *CompanyUpdate) AddUserIDs(ids ...string) *CompanyUpdate {
	_u.mutation.AddUserIDs(ids...)
	return _u
}

// AddUsers adds the "users" edges to the User entity.
func (_u *CompanyUpdate) AddUsers(v ...*User) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserIDs(ids...)
}

// AddTeamIDs adds the "teams" edge to the Team entity by IDs.
func (_u *CompanyUpdate) AddTeamIDs(ids ...string) *CompanyUpdate {
	_u.mutation.AddTeamIDs(ids...)
	return _u
}

// AddTeams adds the "teams" edges to the Team entity.
func (_u *CompanyUpdate) AddTeams(v ...*Team) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTeamIDs(ids...)
}

// AddEmailTemplateIDs adds the "email_templates" edge to the EmailTemplate entity by IDs.
func (_u *CompanyUpdate) AddEmailTemplateIDs(ids ...string) *CompanyUpdate {
	_u.mutation.AddEmailTemplateIDs(ids...)
	return _u
}

// AddEmailTemplates adds the "email_templates" edges to the EmailTemplate entity.
func (_u *CompanyUpdate) AddEmailTemplates(v ...*EmailTemplate) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEmailTemplateIDs(ids...)
}

// AddChatRoomIDs adds the "chat_rooms" edge to the ChatRoom entity by IDs.
func (_u *CompanyUpdate) AddChatRoomIDs(ids ...string) *CompanyUpdate {
	_u.mutation.AddChatRoomIDs(ids...)
	return _u
}

// AddChatRooms adds the "chat_rooms" edges to the ChatRoom entity.
func (_u *CompanyUpdate) AddChatRooms(v ...*ChatRoom) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatRoomIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_u *CompanyUpdate) Mutation() *CompanyMutation {
	return _u.mutation
}

// ClearUsers clears all "users" edges to the User entity.
func (_u *CompanyUpdate) ClearUsers() *CompanyUpdate {
	_u.mutation.ClearUsers()
	return _u
}

// RemoveUserIDs removes the "users" edge to User entities by IDs.
func (_u *CompanyUpdate) RemoveUserIDs(ids ...string) *CompanyUpdate {
	_u.mutation.RemoveUserIDs(ids...)
	return _u
}

// RemoveUsers removes "users" edges to User entities.
func (_u *CompanyUpdate) RemoveUsers(v ...*User) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserIDs(ids...)
}

// ClearTeams clears all "teams" edges to the Team entity.
func (_u *CompanyUpdate) ClearTeams() *CompanyUpdate {
	_u.mutation.ClearTeams()
	return _u
}

// RemoveTeamIDs removes the "teams" edge to Team entities by IDs.
func (_u *CompanyUpdate) RemoveTeamIDs(ids ...string) *CompanyUpdate {
	_u.mutation.RemoveTeamIDs(ids...)
	return _u
}

// RemoveTeams removes "teams" edges to Team entities.
func (_u *CompanyUpdate) RemoveTeams(v ...*Team) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTeamIDs(ids...)
}

// ClearEmailTemplates clears all "email_templates" edges to the EmailTemplate entity.
func (_u *CompanyUpdate) ClearEmailTemplates() *CompanyUpdate {
	_u.mutation.ClearEmailTemplates()
	return _u
}

// RemoveEmailTemplateIDs removes the "email_templates" edge to EmailTemplate entities by IDs.
func (_u *CompanyUpdate) RemoveEmailTemplateIDs(ids ...string) *CompanyUpdate {
	_u.mutation.RemoveEmailTemplateIDs(ids...)
	return _u
}

// RemoveEmailTemplates removes "email_templates" edges to EmailTemplate entities.
func (_u *CompanyUpdate) RemoveEmailTemplates(v ...*EmailTemplate) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEmailTemplateIDs(ids...)
}

// ClearChatRooms clears all "chat_rooms" edges to the ChatRoom entity.
func (_u *CompanyUpdate) ClearChatRooms() *CompanyUpdate {
	_u.mutation.ClearChatRooms()
	return _u
}

// RemoveChatRoomIDs removes the "chat_rooms" edge to ChatRoom entities by IDs.
func (_u *CompanyUpdate) RemoveChatRoomIDs(ids ...string) *CompanyUpdate {
	_u.mutation.RemoveChatRoomIDs(ids...)
	return _u
}

// RemoveChatRooms removes "chat_rooms" edges to ChatRoom entities.
func (_u *CompanyUpdate) RemoveChatRooms(v ...*ChatRoom) *CompanyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatRoomIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompanyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompanyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompanyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := company.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FooterMessage(); ok {
		if err := company.FooterMessageValidator(v); err != nil {
			return &ValidationError{Name: "footer_message", err: fmt.Errorf(`ent: validator failed for field "Company.footer_message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BirthdayVisibility(); ok {
		if err := company.BirthdayVisibilityValidator(v); err != nil {
			return &ValidationError{Name: "birthday_visibility", err: fmt.Errorf(`ent: validator failed for field "Company.birthday_visibility": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BirthdayMessageTemplate(); ok {
		if err := company.BirthdayMessageTemplateValidator(v); err != nil {
			return &ValidationError{Name: "birthday_message_template", err: fmt.Errorf(`ent: validator failed for field "Company.birthday_message_template": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(company.Table, company.Columns, sqlgraph.NewFieldSpec(company.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(company.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimaryColor(); ok {
		_spec.SetField(company.FieldPrimaryColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecondaryColor(); ok {
		_spec.SetField(company.FieldSecondaryColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.LogoURL(); ok {
		_spec.SetField(company.FieldLogoURL, field.TypeString, value)
	}
	if _u.mutation.LogoURLCleared() {
		_spec.ClearField(company.FieldLogoURL, field.TypeString)
	}
	if value, ok := _u.mutation.FooterMessage(); ok {
		_spec.SetField(company.FieldFooterMessage, field.TypeString, value)
	}
	if _u.mutation.FooterMessageCleared() {
		_spec.ClearField(company.FieldFooterMessage, field.TypeString)
	}
	if value, ok := _u.mutation.BirthdayNotificationsEnabled(); ok {
		_spec.SetField(company.FieldBirthdayNotificationsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BirthdayNotifySelf(); ok {
		_spec.SetField(company.FieldBirthdayNotifySelf, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BirthdayNotifyManagers(); ok {
		_spec.SetField(company.FieldBirthdayNotifyManagers, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BirthdayNotifyTeam(); ok {
		_spec.SetField(company.FieldBirthdayNotifyTeam, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BirthdayVisibility(); ok {
		_spec.SetField(company.FieldBirthdayVisibility, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BirthdayMessageTemplate(); ok {
		_spec.SetField(company.FieldBirthdayMessageTemplate, field.TypeString, value)
	}
	if _u.mutation.UsersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsersIDs(); len(nodes) > 0 && !_u.mutation.UsersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TeamsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTeamsIDs(); len(nodes) > 0 && !_u.mutation.TeamsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EmailTemplatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEmailTemplatesIDs(); len(nodes) > 0 && !_u.mutation.EmailTemplatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmailTemplatesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatRoomsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatRoomsIDs(); len(nodes) > 0 && !_u.mutation.ChatRoomsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatRoomsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{company.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompanyUpdateOne is the builder for updating a single Company entity.
type CompanyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompanyMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompanyUpdateOne) SetUpdatedAt(v time.Time) *CompanyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyUpdateOne) SetName(v string) *CompanyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableName(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrimaryColor sets the "primary_color" field.
func (_u *CompanyUpdateOne) SetPrimaryColor(v string) *CompanyUpdateOne {
	_u.mutation.SetPrimaryColor(v)
	return _u
}

// SetNillablePrimaryColor sets the "primary_color" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillablePrimaryColor(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetPrimaryColor(*v)
	}
	return _u
}

// SetSecondaryColor sets the "secondary_color" field.
func (_u *CompanyUpdateOne) SetSecondaryColor(v string) *CompanyUpdateOne {
	_u.mutation.SetSecondaryColor(v)
	return _u
}

// SetNillableSecondaryColor sets the "secondary_color" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableSecondaryColor(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetSecondaryColor(*v)
	}
	return _u
}

// SetLogoURL sets the "logo_url" field.
func (_u *CompanyUpdateOne) SetLogoURL(v string) *CompanyUpdateOne {
	_u.mutation.SetLogoURL(v)
	return _u
}

// SetNillableLogoURL sets the "logo_url" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableLogoURL(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetLogoURL(*v)
	}
	return _u
}

// ClearLogoURL clears the value of the "logo_url" field.
func (_u *CompanyUpdateOne) ClearLogoURL() *CompanyUpdateOne {
	_u.mutation.ClearLogoURL()
	return _u
}

// SetFooterMessage sets the "footer_message" field.
func (_u *CompanyUpdateOne) SetFooterMessage(v string) *CompanyUpdateOne {
	_u.mutation.SetFooterMessage(v)
	return _u
}

// SetNillableFooterMessage sets the "footer_message" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableFooterMessage(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetFooterMessage(*v)
	}
	return _u
}

// ClearFooterMessage clears the value of the "footer_message" field.
func (_u *CompanyUpdateOne) ClearFooterMessage() *CompanyUpdateOne {
	_u.mutation.ClearFooterMessage()
	return _u
}

// SetBirthdayNotificationsEnabled sets the "birthday_notifications_enabled" field.
func (_u *CompanyUpdateOne) SetBirthdayNotificationsEnabled(v bool) *CompanyUpdateOne {
	_u.mutation.SetBirthdayNotificationsEnabled(v)
	return _u
}

// SetNillableBirthdayNotificationsEnabled sets the "birthday_notifications_enabled" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableBirthdayNotificationsEnabled(v *bool) *CompanyUpdateOne {
	if v != nil {
		_u.SetBirthdayNotificationsEnabled(*v)
	}
	return _u
}

// SetBirthdayNotifySelf sets the "birthday_notify_self" field.
func (_u *CompanyUpdateOne) SetBirthdayNotifySelf(v bool) *CompanyUpdateOne {
	_u.mutation.SetBirthdayNotifySelf(v)
	return _u
}

// SetNillableBirthdayNotifySelf sets the "birthday_notify_self" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableBirthdayNotifySelf(v *bool) *CompanyUpdateOne {
	if v != nil {
		_u.SetBirthdayNotifySelf(*v)
	}
	return _u
}

// SetBirthdayNotifyManagers sets the "birthday_notify_managers" field.
func (_u *CompanyUpdateOne) SetBirthdayNotifyManagers(v bool) *CompanyUpdateOne {
	_u.mutation.SetBirthdayNotifyManagers(v)
	return _u
}

// SetNillableBirthdayNotifyManagers sets the "birthday_notify_managers" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableBirthdayNotifyManagers(v *bool) *CompanyUpdateOne {
	if v != nil {
		_u.SetBirthdayNotifyManagers(*v)
	}
	return _u
}

// SetBirthdayNotifyTeam sets the "birthday_notify_team" field.
func (_u *CompanyUpdateOne) SetBirthdayNotifyTeam(v bool) *CompanyUpdateOne {
	_u.mutation.SetBirthdayNotifyTeam(v)
	return _u
}

// SetNillableBirthdayNotifyTeam sets the "birthday_notify_team" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableBirthdayNotifyTeam(v *bool) *CompanyUpdateOne {
	if v != nil {
		_u.SetBirthdayNotifyTeam(*v)
	}
	return _u
}

// SetBirthdayVisibility sets the "birthday_visibility" field.
func (_u *CompanyUpdateOne) SetBirthdayVisibility(v company.BirthdayVisibility) *CompanyUpdateOne {
	_u.mutation.SetBirthdayVisibility(v)
	return _u
}

// SetNillableBirthdayVisibility sets the "birthday_visibility" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableBirthdayVisibility(v *company.BirthdayVisibility) *CompanyUpdateOne {
	if v != nil {
		_u.SetBirthdayVisibility(*v)
	}
	return _u
}

// SetBirthdayMessageTemplate sets the "birthday_message_template" field.
func (_u *CompanyUpdateOne) SetBirthdayMessageTemplate(v string) *CompanyUpdateOne {
	_u.mutation.SetBirthdayMessageTemplate(v)
	return _u
}

// SetNillableBirthdayMessageTemplate sets the "birthday_message_template" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableBirthdayMessageTemplate(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetBirthdayMessageTemplate(*v)
	}
	return _u
}

// AddUserIDs adds the "users" edge to the User entity by IDs.
func (_u *CompanyUpdateOne) AddUserIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.AddUserIDs(ids...)
	return _u
}

// AddUsers adds the "users" edges to the User entity.
func (_u *CompanyUpdateOne) AddUsers(v ...*User) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserIDs(ids...)
}

// AddTeamIDs adds the "teams" edge to the Team entity by IDs.
func (_u *CompanyUpdateOne) AddTeamIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.AddTeamIDs(ids...)
	return _u
}

// AddTeams adds the "teams" edges to the Team entity.
func (_u *CompanyUpdateOne) AddTeams(v ...*Team) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTeamIDs(ids...)
}

// AddEmailTemplateIDs adds the "email_templates" edge to the EmailTemplate entity by IDs.
func (_u *CompanyUpdateOne) AddEmailTemplateIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.AddEmailTemplateIDs(ids...)
	return _u
}

// AddEmailTemplates adds the "email_templates" edges to the EmailTemplate entity.
func (_u *CompanyUpdateOne) AddEmailTemplates(v ...*EmailTemplate) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEmailTemplateIDs(ids...)
}

// AddChatRoomIDs adds the "chat_rooms" edge to the ChatRoom entity by IDs.
func (_u *CompanyUpdateOne) AddChatRoomIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.AddChatRoomIDs(ids...)
	return _u
}

// AddChatRooms adds the "chat_rooms" edges to the ChatRoom entity.
func (_u *CompanyUpdateOne) AddChatRooms(v ...*ChatRoom) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChatRoomIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_u *CompanyUpdateOne) Mutation() *CompanyMutation {
	return _u.mutation
}

// ClearUsers clears all "users" edges to the User entity.
func (_u *CompanyUpdateOne) ClearUsers() *CompanyUpdateOne {
	_u.mutation.ClearUsers()
	return _u
}

// RemoveUserIDs removes the "users" edge to User entities by IDs.
func (_u *CompanyUpdateOne) RemoveUserIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.RemoveUserIDs(ids...)
	return _u
}

// RemoveUsers removes "users" edges to User entities.
func (_u *CompanyUpdateOne) RemoveUsers(v ...*User) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserIDs(ids...)
}

// ClearTeams clears all "teams" edges to the Team entity.
func (_u *CompanyUpdateOne) ClearTeams() *CompanyUpdateOne {
	_u.mutation.ClearTeams()
	return _u
}

// RemoveTeamIDs removes the "teams" edge to Team entities by IDs.
func (_u *CompanyUpdateOne) RemoveTeamIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.RemoveTeamIDs(ids...)
	return _u
}

// RemoveTeams removes "teams" edges to Team entities.
func (_u *CompanyUpdateOne) RemoveTeams(v ...*Team) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTeamIDs(ids...)
}

// ClearEmailTemplates clears all "email_templates" edges to the EmailTemplate entity.
func (_u *CompanyUpdateOne) ClearEmailTemplates() *CompanyUpdateOne {
	_u.mutation.ClearEmailTemplates()
	return _u
}

// RemoveEmailTemplateIDs removes the "email_templates" edge to EmailTemplate entities by IDs.
func (_u *CompanyUpdateOne) RemoveEmailTemplateIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.RemoveEmailTemplateIDs(ids...)
	return _u
}

// RemoveEmailTemplates removes "email_templates" edges to EmailTemplate entities.
func (_u *CompanyUpdateOne) RemoveEmailTemplates(v ...*EmailTemplate) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEmailTemplateIDs(ids...)
}

// ClearChatRooms clears all "chat_rooms" edges to the ChatRoom entity.
func (_u *CompanyUpdateOne) ClearChatRooms() *CompanyUpdateOne {
	_u.mutation.ClearChatRooms()
	return _u
}

// RemoveChatRoomIDs removes the "chat_rooms" edge to ChatRoom entities by IDs.
func (_u *CompanyUpdateOne) RemoveChatRoomIDs(ids ...string) *CompanyUpdateOne {
	_u.mutation.RemoveChatRoomIDs(ids...)
	return _u
}

// RemoveChatRooms removes "chat_rooms" edges to ChatRoom entities.
func (_u *CompanyUpdateOne) RemoveChatRooms(v ...*ChatRoom) *CompanyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChatRoomIDs(ids...)
}

// Where appends a list predicates to the CompanyUpdate builder.
func (_u *CompanyUpdateOne) Where(ps ...predicate.Company) *CompanyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompanyUpdateOne) Select(field string, fields ...string) *CompanyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Company entity.
func (_u *CompanyUpdateOne) Save(ctx context.Context) (*Company, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyUpdateOne) SaveX(ctx context.Context) *Company {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompanyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompanyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := company.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FooterMessage(); ok {
		if err := company.FooterMessageValidator(v); err != nil {
			return &ValidationError{Name: "footer_message", err: fmt.Errorf(`ent: validator failed for field "Company.footer_message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BirthdayVisibility(); ok {
		if err := company.BirthdayVisibilityValidator(v); err != nil {
			return &ValidationError{Name: "birthday_visibility", err: fmt.Errorf(`ent: validator failed for field "Company.birthday_visibility": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BirthdayMessageTemplate(); ok {
		if err := company.BirthdayMessageTemplateValidator(v); err != nil {
			return &ValidationError{Name: "birthday_message_template", err: fmt.Errorf(`ent: validator failed for field "Company.birthday_message_template": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyUpdateOne) sqlSave(ctx context.Context) (_node *Company, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(company.Table, company.Columns, sqlgraph.NewFieldSpec(company.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Company.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, company.FieldID)
		for _, f := range fields {
			if !company.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != company.FieldID {
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
		_spec.SetField(company.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrimaryColor(); ok {
		_spec.SetField(company.FieldPrimaryColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.SecondaryColor(); ok {
		_spec.SetField(company.FieldSecondaryColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.LogoURL(); ok {
		_spec.SetField(company.FieldLogoURL, field.TypeString, value)
	}
	if _u.mutation.LogoURLCleared() {
		_spec.ClearField(company.FieldLogoURL, field.TypeString)
	}
	if value, ok := _u.mutation.FooterMessage(); ok {
		_spec.SetField(company.FieldFooterMessage, field.TypeString, value)
	}
	if _u.mutation.FooterMessageCleared() {
		_spec.ClearField(company.FieldFooterMessage, field.TypeString)
	}
	if value, ok := _u.mutation.BirthdayNotificationsEnabled(); ok {
		_spec.SetField(company.FieldBirthdayNotificationsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BirthdayNotifySelf(); ok {
		_spec.SetField(company.FieldBirthdayNotifySelf, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BirthdayNotifyManagers(); ok {
		_spec.SetField(company.FieldBirthdayNotifyManagers, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BirthdayNotifyTeam(); ok {
		_spec.SetField(company.FieldBirthdayNotifyTeam, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BirthdayVisibility(); ok {
		_spec.SetField(company.FieldBirthdayVisibility, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BirthdayMessageTemplate(); ok {
		_spec.SetField(company.FieldBirthdayMessageTemplate, field.TypeString, value)
	}
	if _u.mutation.UsersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUsersIDs(); len(nodes) > 0 && !_u.mutation.UsersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UsersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TeamsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTeamsIDs(); len(nodes) > 0 && !_u.mutation.TeamsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EmailTemplatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEmailTemplatesIDs(); len(nodes) > 0 && !_u.mutation.EmailTemplatesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmailTemplatesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatRoomsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChatRoomsIDs(); len(nodes) > 0 && !_u.mutation.ChatRoomsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatRoomsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Company{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{company.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
