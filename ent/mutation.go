// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"crewpulse.io/crewpulse/ent/chatmessage"
	"crewpulse.io/crewpulse/ent/chatroom"
	"crewpulse.io/crewpulse/ent/company"
	"crewpulse.io/crewpulse/ent/emailtemplate"
	"crewpulse.io/crewpulse/ent/message"
	"crewpulse.io/crewpulse/ent/notification"
	"crewpulse.io/crewpulse/ent/notificationpreference"
	"crewpulse.io/crewpulse/ent/predicate"
	"crewpulse.io/crewpulse/ent/pushsubscription"
	"crewpulse.io/crewpulse/ent/shift"
	"crewpulse.io/crewpulse/ent/shiftswaprequest"
	"crewpulse.io/crewpulse/ent/task"
	"crewpulse.io/crewpulse/ent/team"
	"crewpulse.io/crewpulse/ent/timeoffrequest"
	"crewpulse.io/crewpulse/ent/user"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChatMessage            = "ChatMessage"
	TypeChatRoom               = "ChatRoom"
	TypeCompany                = "Company"
	TypeEmailTemplate          = "EmailTemplate"
	TypeMessage                = "Message"
	TypeNotification           = "Notification"
	TypeNotificationPreference = "NotificationPreference"
	TypePushSubscription       = "PushSubscription"
	TypeShift                  = "Shift"
	TypeShiftSwapRequest       = "ShiftSwapRequest"
	TypeTask                   = "Task"
	TypeTeam                   = "Team"
	TypeTimeOffRequest         = "TimeOffRequest"
	TypeUser                   = "User"
)

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	sender_id     *string
	body          *string
	clearedFields map[string]struct{}
	room          *string
	clearedroom   bool
	done          bool
	oldValue      func(context.Context) (*ChatMessage, error)
	predicates    []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSenderID sets the "sender_id" field.
func (m *ChatMessageMutation) SetSenderID(s string) {
	m.sender_id = &s
}

// SenderID returns the value of the "sender_id" field in the mutation.
func (m *ChatMessageMutation) SenderID() (r string, exists bool) {
	v := m.sender_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderID returns the old "sender_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldSenderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderID: %w", err)
	}
	return oldValue.SenderID, nil
}

// ClearSenderID clears the value of the "sender_id" field.
func (m *ChatMessageMutation) ClearSenderID() {
	m.sender_id = nil
	m.clearedFields[chatmessage.FieldSenderID] = struct{}{}
}

// SenderIDCleared returns if the "sender_id" field was cleared in this mutation.
func (m *ChatMessageMutation) SenderIDCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldSenderID]
	return ok
}

// ResetSenderID resets all changes to the "sender_id" field.
func (m *ChatMessageMutation) ResetSenderID() {
	m.sender_id = nil
	delete(m.clearedFields, chatmessage.FieldSenderID)
}

// SetBody sets the "body" field.
func (m *ChatMessageMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *ChatMessageMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *ChatMessageMutation) ResetBody() {
	m.body = nil
}

// SetRoomID sets the "room" edge to the ChatRoom entity by id.
func (m *ChatMessageMutation) SetRoomID(id string) {
	m.room = &id
}

// ClearRoom clears the "room" edge to the ChatRoom entity.
func (m *ChatMessageMutation) ClearRoom() {
	m.clearedroom = true
}

// RoomCleared reports if the "room" edge to the ChatRoom entity was cleared.
func (m *ChatMessageMutation) RoomCleared() bool {
	return m.clearedroom
}

// RoomID returns the "room" edge ID in the mutation.
func (m *ChatMessageMutation) RoomID() (id string, exists bool) {
	if m.room != nil {
		return *m.room, true
	}
	return
}

// RoomIDs returns the "room" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoomID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) RoomIDs() (ids []string) {
	if id := m.room; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRoom resets all changes to the "room" edge.
func (m *ChatMessageMutation) ResetRoom() {
	m.room = nil
	m.clearedroom = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	if m.sender_id != nil {
		fields = append(fields, chatmessage.FieldSenderID)
	}
	if m.body != nil {
		fields = append(fields, chatmessage.FieldBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	case chatmessage.FieldSenderID:
		return m.SenderID()
	case chatmessage.FieldBody:
		return m.Body()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatmessage.FieldSenderID:
		return m.OldSenderID(ctx)
	case chatmessage.FieldBody:
		return m.OldBody(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatmessage.FieldSenderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderID(v)
		return nil
	case chatmessage.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldSenderID) {
		fields = append(fields, chatmessage.FieldSenderID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldSenderID:
		m.ClearSenderID()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatmessage.FieldSenderID:
		m.ResetSenderID()
		return nil
	case chatmessage.FieldBody:
		m.ResetBody()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.room != nil {
		edges = append(edges, chatmessage.EdgeRoom)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeRoom:
		if id := m.room; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedroom {
		edges = append(edges, chatmessage.EdgeRoom)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeRoom:
		return m.clearedroom
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeRoom:
		m.ClearRoom()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeRoom:
		m.ResetRoom()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// ChatRoomMutation represents an operation that mutates the ChatRoom nodes in the graph.
type ChatRoomMutation struct {
	config
	op              Op
	typ             string
	id              *string
	created_at      *time.Time
	updated_at      *time.Time
	name            *string
	is_general      *bool
	clearedFields   map[string]struct{}
	company         *string
	clearedcompany  bool
	messages        map[string]struct{}
	removedmessages map[string]struct{}
	clearedmessages bool
	done            bool
	oldValue        func(context.Context) (*ChatRoom, error)
	predicates      []predicate.ChatRoom
}

var _ ent.Mutation = (*ChatRoomMutation)(nil)

// chatroomOption allows management of the mutation configuration using functional options.
type chatroomOption func(*ChatRoomMutation)

// newChatRoomMutation creates new mutation for the ChatRoom entity.
func newChatRoomMutation(c config, op Op, opts ...chatroomOption) *ChatRoomMutation {
	m := &ChatRoomMutation{
		config:        c,
		op:            op,
		typ:           TypeChatRoom,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatRoomID sets the ID field of the mutation.
func withChatRoomID(id string) chatroomOption {
	return func(m *ChatRoomMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatRoom
		)
		m.oldValue = func(ctx context.Context) (*ChatRoom, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatRoom.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatRoom sets the old ChatRoom of the mutation.
func withChatRoom(node *ChatRoom) chatroomOption {
	return func(m *ChatRoomMutation) {
		m.oldValue = func(context.Context) (*ChatRoom, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatRoomMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatRoomMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatRoom entities.
func (m *ChatRoomMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatRoomMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatRoomMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatRoom.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatRoomMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatRoomMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatRoom entity.
// If the ChatRoom object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatRoomMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatRoomMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatRoomMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatRoomMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChatRoom entity.
// If the ChatRoom object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatRoomMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatRoomMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *ChatRoomMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ChatRoomMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ChatRoom entity.
// If the ChatRoom object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatRoomMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ChatRoomMutation) ResetName() {
	m.name = nil
}

// SetIsGeneral sets the "is_general" field.
func (m *ChatRoomMutation) SetIsGeneral(b bool) {
	m.is_general = &b
}

// IsGeneral returns the value of the "is_general" field in the mutation.
func (m *ChatRoomMutation) IsGeneral() (r bool, exists bool) {
	v := m.is_general
	if v == nil {
		return
	}
	return *v, true
}

// OldIsGeneral returns the old "is_general" field's value of the ChatRoom entity.
// If the ChatRoom object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatRoomMutation) OldIsGeneral(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsGeneral is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsGeneral requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsGeneral: %w", err)
	}
	return oldValue.IsGeneral, nil
}

// ResetIsGeneral resets all changes to the "is_general" field.
func (m *ChatRoomMutation) ResetIsGeneral() {
	m.is_general = nil
}

// SetCompanyID sets the "company" edge to the Company entity by id.
func (m *ChatRoomMutation) SetCompanyID(id string) {
	m.company = &id
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *ChatRoomMutation) ClearCompany() {
	m.clearedcompany = true
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *ChatRoomMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyID returns the "company" edge ID in the mutation.
func (m *ChatRoomMutation) CompanyID() (id string, exists bool) {
	if m.company != nil {
		return *m.company, true
	}
	return
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *ChatRoomMutation) CompanyIDs() (ids []string) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *ChatRoomMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by ids.
func (m *ChatRoomMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ChatMessage entity.
func (m *ChatRoomMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ChatMessage entity was cleared.
func (m *ChatRoomMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ChatMessage entity by IDs.
func (m *ChatRoomMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ChatMessage entity.
func (m *ChatRoomMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ChatRoomMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ChatRoomMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the ChatRoomMutation builder.
func (m *ChatRoomMutation) Where(ps ...predicate.ChatRoom) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatRoomMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatRoomMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatRoom, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatRoomMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatRoomMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatRoom).
func (m *ChatRoomMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatRoomMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, chatroom.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chatroom.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, chatroom.FieldName)
	}
	if m.is_general != nil {
		fields = append(fields, chatroom.FieldIsGeneral)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatRoomMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatroom.FieldCreatedAt:
		return m.CreatedAt()
	case chatroom.FieldUpdatedAt:
		return m.UpdatedAt()
	case chatroom.FieldName:
		return m.Name()
	case chatroom.FieldIsGeneral:
		return m.IsGeneral()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatRoomMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatroom.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatroom.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case chatroom.FieldName:
		return m.OldName(ctx)
	case chatroom.FieldIsGeneral:
		return m.OldIsGeneral(ctx)
	}
	return nil, fmt.Errorf("unknown ChatRoom field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatRoomMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatroom.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatroom.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case chatroom.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case chatroom.FieldIsGeneral:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsGeneral(v)
		return nil
	}
	return fmt.Errorf("unknown ChatRoom field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatRoomMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatRoomMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatRoomMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChatRoom numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatRoomMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatRoomMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatRoomMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChatRoom nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatRoomMutation) ResetField(name string) error {
	switch name {
	case chatroom.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatroom.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case chatroom.FieldName:
		m.ResetName()
		return nil
	case chatroom.FieldIsGeneral:
		m.ResetIsGeneral()
		return nil
	}
	return fmt.Errorf("unknown ChatRoom field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatRoomMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.company != nil {
		edges = append(edges, chatroom.EdgeCompany)
	}
	if m.messages != nil {
		edges = append(edges, chatroom.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatRoomMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatroom.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case chatroom.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatRoomMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, chatroom.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatRoomMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chatroom.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatRoomMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcompany {
		edges = append(edges, chatroom.EdgeCompany)
	}
	if m.clearedmessages {
		edges = append(edges, chatroom.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatRoomMutation) EdgeCleared(name string) bool {
	switch name {
	case chatroom.EdgeCompany:
		return m.clearedcompany
	case chatroom.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatRoomMutation) ClearEdge(name string) error {
	switch name {
	case chatroom.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown ChatRoom unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatRoomMutation) ResetEdge(name string) error {
	switch name {
	case chatroom.EdgeCompany:
		m.ResetCompany()
		return nil
	case chatroom.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown ChatRoom edge %s", name)
}

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op                             Op
	typ                            string
	id                             *string
	created_at                     *time.Time
	updated_at                     *time.Time
	name                           *string
	primary_color                  *string
	secondary_color                *string
	logo_url                       *string
	footer_message                 *string
	birthday_notifications_enabled *bool
	birthday_notify_self           *bool
	birthday_notify_managers       *bool
	birthday_notify_team           *bool
	birthday_visibility            *company.BirthdayVisibility
	birthday_message_template      *string
	clearedFields                  map[string]struct{}
	users                          map[string]struct{}
	removedusers                   map[string]struct{}
	clearedusers                   bool
	teams                          map[string]struct{}
	removedteams                   map[string]struct{}
	clearedteams                   bool
	email_templates                map[string]struct{}
	removedemail_templates         map[string]struct{}
	clearedemail_templates         bool
	chat_rooms                     map[string]struct{}
	removedchat_rooms              map[string]struct{}
	clearedchat_rooms              bool
	done                           bool
	oldValue                       func(context.Context) (*Company, error)
	predicates                     []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id string) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CompanyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CompanyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CompanyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetPrimaryColor sets the "primary_color" field.
func (m *CompanyMutation) SetPrimaryColor(s string) {
	m.primary_color = &s
}

// PrimaryColor returns the value of the "primary_color" field in the mutation.
func (m *CompanyMutation) PrimaryColor() (r string, exists bool) {
	v := m.primary_color
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryColor returns the old "primary_color" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldPrimaryColor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryColor: %w", err)
	}
	return oldValue.PrimaryColor, nil
}

// ResetPrimaryColor resets all changes to the "primary_color" field.
func (m *CompanyMutation) ResetPrimaryColor() {
	m.primary_color = nil
}

// SetSecondaryColor sets the "secondary_color" field.
func (m *CompanyMutation) SetSecondaryColor(s string) {
	m.secondary_color = &s
}

// SecondaryColor returns the value of the "secondary_color" field in the mutation.
func (m *CompanyMutation) SecondaryColor() (r string, exists bool) {
	v := m.secondary_color
	if v == nil {
		return
	}
	return *v, true
}

// OldSecondaryColor returns the old "secondary_color" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldSecondaryColor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecondaryColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecondaryColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecondaryColor: %w", err)
	}
	return oldValue.SecondaryColor, nil
}

// ResetSecondaryColor resets all changes to the "secondary_color" field.
func (m *CompanyMutation) ResetSecondaryColor() {
	m.secondary_color = nil
}

// SetLogoURL sets the "logo_url" field.
func (m *CompanyMutation) SetLogoURL(s string) {
	m.logo_url = &s
}

// LogoURL returns the value of the "logo_url" field in the mutation.
func (m *CompanyMutation) LogoURL() (r string, exists bool) {
	v := m.logo_url
	if v == nil {
		return
	}
	return *v, true
}

// OldLogoURL returns the old "logo_url" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldLogoURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogoURL: %w", err)
	}
	return oldValue.LogoURL, nil
}

// ClearLogoURL clears the value of the "logo_url" field.
func (m *CompanyMutation) ClearLogoURL() {
	m.logo_url = nil
	m.clearedFields[company.FieldLogoURL] = struct{}{}
}

// LogoURLCleared returns if the "logo_url" field was cleared in this mutation.
func (m *CompanyMutation) LogoURLCleared() bool {
	_, ok := m.clearedFields[company.FieldLogoURL]
	return ok
}

// ResetLogoURL resets all changes to the "logo_url" field.
func (m *CompanyMutation) ResetLogoURL() {
	m.logo_url = nil
	delete(m.clearedFields, company.FieldLogoURL)
}

// SetFooterMessage sets the "footer_message" field.
func (m *CompanyMutation) SetFooterMessage(s string) {
	m.footer_message = &s
}

// FooterMessage returns the value of the "footer_message" field in the mutation.
func (m *CompanyMutation) FooterMessage() (r string, exists bool) {
	v := m.footer_message
	if v == nil {
		return
	}
	return *v, true
}

// OldFooterMessage returns the old "footer_message" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldFooterMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFooterMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFooterMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFooterMessage: %w", err)
	}
	return oldValue.FooterMessage, nil
}

// ClearFooterMessage clears the value of the "footer_message" field.
func (m *CompanyMutation) ClearFooterMessage() {
	m.footer_message = nil
	m.clearedFields[company.FieldFooterMessage] = struct{}{}
}

// FooterMessageCleared returns if the "footer_message" field was cleared in this mutation.
func (m *CompanyMutation) FooterMessageCleared() bool {
	_, ok := m.clearedFields[company.FieldFooterMessage]
	return ok
}

// ResetFooterMessage resets all changes to the "footer_message" field.
func (m *CompanyMutation) ResetFooterMessage() {
	m.footer_message = nil
	delete(m.clearedFields, company.FieldFooterMessage)
}

// SetBirthdayNotificationsEnabled sets the "birthday_notifications_enabled" field.
func (m *CompanyMutation) SetBirthdayNotificationsEnabled(b bool) {
	m.birthday_notifications_enabled = &b
}

// BirthdayNotificationsEnabled returns the value of the "birthday_notifications_enabled" field in the mutation.
func (m *CompanyMutation) BirthdayNotificationsEnabled() (r bool, exists bool) {
	v := m.birthday_notifications_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthdayNotificationsEnabled returns the old "birthday_notifications_enabled" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldBirthdayNotificationsEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthdayNotificationsEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthdayNotificationsEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthdayNotificationsEnabled: %w", err)
	}
	return oldValue.BirthdayNotificationsEnabled, nil
}

// ResetBirthdayNotificationsEnabled resets all changes to the "birthday_notifications_enabled" field.
func (m *CompanyMutation) ResetBirthdayNotificationsEnabled() {
	m.birthday_notifications_enabled = nil
}

// SetBirthdayNotifySelf sets the "birthday_notify_self" field.
func (m *CompanyMutation) SetBirthdayNotifySelf(b bool) {
	m.birthday_notify_self = &b
}

// BirthdayNotifySelf returns the value of the "birthday_notify_self" field in the mutation.
func (m *CompanyMutation) BirthdayNotifySelf() (r bool, exists bool) {
	v := m.birthday_notify_self
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthdayNotifySelf returns the old "birthday_notify_self" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldBirthdayNotifySelf(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthdayNotifySelf is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthdayNotifySelf requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthdayNotifySelf: %w", err)
	}
	return oldValue.BirthdayNotifySelf, nil
}

// ResetBirthdayNotifySelf resets all changes to the "birthday_notify_self" field.
func (m *CompanyMutation) ResetBirthdayNotifySelf() {
	m.birthday_notify_self = nil
}

// SetBirthdayNotifyManagers sets the "birthday_notify_managers" field.
func (m *CompanyMutation) SetBirthdayNotifyManagers(b bool) {
	m.birthday_notify_managers = &b
}

// BirthdayNotifyManagers returns the value of the "birthday_notify_managers" field in the mutation.
func (m *CompanyMutation) BirthdayNotifyManagers() (r bool, exists bool) {
	v := m.birthday_notify_managers
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthdayNotifyManagers returns the old "birthday_notify_managers" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldBirthdayNotifyManagers(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthdayNotifyManagers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthdayNotifyManagers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthdayNotifyManagers: %w", err)
	}
	return oldValue.BirthdayNotifyManagers, nil
}

// ResetBirthdayNotifyManagers resets all changes to the "birthday_notify_managers" field.
func (m *CompanyMutation) ResetBirthdayNotifyManagers() {
	m.birthday_notify_managers = nil
}

// SetBirthdayNotifyTeam sets the "birthday_notify_team" field.
func (m *CompanyMutation) SetBirthdayNotifyTeam(b bool) {
	m.birthday_notify_team = &b
}

// BirthdayNotifyTeam returns the value of the "birthday_notify_team" field in the mutation.
func (m *CompanyMutation) BirthdayNotifyTeam() (r bool, exists bool) {
	v := m.birthday_notify_team
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthdayNotifyTeam returns the old "birthday_notify_team" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldBirthdayNotifyTeam(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthdayNotifyTeam is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthdayNotifyTeam requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthdayNotifyTeam: %w", err)
	}
	return oldValue.BirthdayNotifyTeam, nil
}

// ResetBirthdayNotifyTeam resets all changes to the "birthday_notify_team" field.
func (m *CompanyMutation) ResetBirthdayNotifyTeam() {
	m.birthday_notify_team = nil
}

// SetBirthdayVisibility sets the "birthday_visibility" field.
func (m *CompanyMutation) SetBirthdayVisibility(cv company.BirthdayVisibility) {
	m.birthday_visibility = &cv
}

// BirthdayVisibility returns the value of the "birthday_visibility" field in the mutation.
func (m *CompanyMutation) BirthdayVisibility() (r company.BirthdayVisibility, exists bool) {
	v := m.birthday_visibility
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthdayVisibility returns the old "birthday_visibility" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldBirthdayVisibility(ctx context.Context) (v company.BirthdayVisibility, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthdayVisibility is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthdayVisibility requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthdayVisibility: %w", err)
	}
	return oldValue.BirthdayVisibility, nil
}

// ResetBirthdayVisibility resets all changes to the "birthday_visibility" field.
func (m *CompanyMutation) ResetBirthdayVisibility() {
	m.birthday_visibility = nil
}

// SetBirthdayMessageTemplate sets the "birthday_message_template" field.
func (m *CompanyMutation) SetBirthdayMessageTemplate(s string) {
	m.birthday_message_template = &s
}

// BirthdayMessageTemplate returns the value of the "birthday_message_template" field in the mutation.
func (m *CompanyMutation) BirthdayMessageTemplate() (r string, exists bool) {
	v := m.birthday_message_template
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthdayMessageTemplate returns the old "birthday_message_template" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldBirthdayMessageTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthdayMessageTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthdayMessageTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthdayMessageTemplate: %w", err)
	}
	return oldValue.BirthdayMessageTemplate, nil
}

// ResetBirthdayMessageTemplate resets all changes to the "birthday_message_template" field.
func (m *CompanyMutation) ResetBirthdayMessageTemplate() {
	m.birthday_message_template = nil
}

// AddUserIDs adds the "users" edge to the User entity by ids.
func (m *CompanyMutation) AddUserIDs(ids ...string) {
	if m.users == nil {
		m.users = make(map[string]struct{})
	}
	for i := range ids {
		m.users[ids[i]] = struct{}{}
	}
}

// ClearUsers clears the "users" edge to the User entity.
func (m *CompanyMutation) ClearUsers() {
	m.clearedusers = true
}

// UsersCleared reports if the "users" edge to the User entity was cleared.
func (m *CompanyMutation) UsersCleared() bool {
	return m.clearedusers
}

// RemoveUserIDs removes the "users" edge to the User entity by IDs.
func (m *CompanyMutation) RemoveUserIDs(ids ...string) {
	if m.removedusers == nil {
		m.removedusers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.users, ids[i])
		m.removedusers[ids[i]] = struct{}{}
	}
}

// RemovedUsers returns the removed IDs of the "users" edge to the User entity.
func (m *CompanyMutation) RemovedUsersIDs() (ids []string) {
	for id := range m.removedusers {
		ids = append(ids, id)
	}
	return
}

// UsersIDs returns the "users" edge IDs in the mutation.
func (m *CompanyMutation) UsersIDs() (ids []string) {
	for id := range m.users {
		ids = append(ids, id)
	}
	return
}

// ResetUsers resets all changes to the "users" edge.
func (m *CompanyMutation) ResetUsers() {
	m.users = nil
	m.clearedusers = false
	m.removedusers = nil
}

// AddTeamIDs adds the "teams" edge to the Team entity by ids.
func (m *CompanyMutation) AddTeamIDs(ids ...string) {
	if m.teams == nil {
		m.teams = make(map[string]struct{})
	}
	for i := range ids {
		m.teams[ids[i]] = struct{}{}
	}
}

// ClearTeams clears the "teams" edge to the Team entity.
func (m *CompanyMutation) ClearTeams() {
	m.clearedteams = true
}

// TeamsCleared reports if the "teams" edge to the Team entity was cleared.
func (m *CompanyMutation) TeamsCleared() bool {
	return m.clearedteams
}

// RemoveTeamIDs removes the "teams" edge to the Team entity by IDs.
func (m *CompanyMutation) RemoveTeamIDs(ids ...string) {
	if m.removedteams == nil {
		m.removedteams = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.teams, ids[i])
		m.removedteams[ids[i]] = struct{}{}
	}
}

// RemovedTeams returns the removed IDs of the "teams" edge to the Team entity.
func (m *CompanyMutation) RemovedTeamsIDs() (ids []string) {
	for id := range m.removedteams {
		ids = append(ids, id)
	}
	return
}

// TeamsIDs returns the "teams" edge IDs in the mutation.
func (m *CompanyMutation) TeamsIDs() (ids []string) {
	for id := range m.teams {
		ids = append(ids, id)
	}
	return
}

// ResetTeams resets all changes to the "teams" edge.
func (m *CompanyMutation) ResetTeams() {
	m.teams = nil
	m.clearedteams = false
	m.removedteams = nil
}

// AddEmailTemplateIDs adds the "email_templates" edge to the EmailTemplate entity by ids.
func (m *CompanyMutation) AddEmailTemplateIDs(ids ...string) {
	if m.email_templates == nil {
		m.email_templates = make(map[string]struct{})
	}
	for i := range ids {
		m.email_templates[ids[i]] = struct{}{}
	}
}

// ClearEmailTemplates clears the "email_templates" edge to the EmailTemplate entity.
func (m *CompanyMutation) ClearEmailTemplates() {
	m.clearedemail_templates = true
}

// EmailTemplatesCleared reports if the "email_templates" edge to the EmailTemplate entity was cleared.
func (m *CompanyMutation) EmailTemplatesCleared() bool {
	return m.clearedemail_templates
}

// RemoveEmailTemplateIDs removes the "email_templates" edge to the EmailTemplate entity by IDs.
func (m *CompanyMutation) RemoveEmailTemplateIDs(ids ...string) {
	if m.removedemail_templates == nil {
		m.removedemail_templates = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.email_templates, ids[i])
		m.removedemail_templates[ids[i]] = struct{}{}
	}
}

// RemovedEmailTemplates returns the removed IDs of the "email_templates" edge to the EmailTemplate entity.
func (m *CompanyMutation) RemovedEmailTemplatesIDs() (ids []string) {
	for id := range m.removedemail_templates {
		ids = append(ids, id)
	}
	return
}

// EmailTemplatesIDs returns the "email_templates" edge IDs in the mutation.
func (m *CompanyMutation) EmailTemplatesIDs() (ids []string) {
	for id := range m.email_templates {
		ids = append(ids, id)
	}
	return
}

// ResetEmailTemplates resets all changes to the "email_templates" edge.
func (m *CompanyMutation) ResetEmailTemplates() {
	m.email_templates = nil
	m.clearedemail_templates = false
	m.removedemail_templates = nil
}

// AddChatRoomIDs adds the "chat_rooms" edge to the ChatRoom entity by ids.
func (m *CompanyMutation) AddChatRoomIDs(ids ...string) {
	if m.chat_rooms == nil {
		m.chat_rooms = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_rooms[ids[i]] = struct{}{}
	}
}

// ClearChatRooms clears the "chat_rooms" edge to the ChatRoom entity.
func (m *CompanyMutation) ClearChatRooms() {
	m.clearedchat_rooms = true
}

// ChatRoomsCleared reports if the "chat_rooms" edge to the ChatRoom entity was cleared.
func (m *CompanyMutation) ChatRoomsCleared() bool {
	return m.clearedchat_rooms
}

// RemoveChatRoomIDs removes the "chat_rooms" edge to the ChatRoom entity by IDs.
func (m *CompanyMutation) RemoveChatRoomIDs(ids ...string) {
	if m.removedchat_rooms == nil {
		m.removedchat_rooms = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_rooms, ids[i])
		m.removedchat_rooms[ids[i]] = struct{}{}
	}
}

// RemovedChatRooms returns the removed IDs of the "chat_rooms" edge to the ChatRoom entity.
func (m *CompanyMutation) RemovedChatRoomsIDs() (ids []string) {
	for id := range m.removedchat_rooms {
		ids = append(ids, id)
	}
	return
}

// ChatRoomsIDs returns the "chat_rooms" edge IDs in the mutation.
func (m *CompanyMutation) ChatRoomsIDs() (ids []string) {
	for id := range m.chat_rooms {
		ids = append(ids, id)
	}
	return
}

// ResetChatRooms resets all changes to the "chat_rooms" edge.
func (m *CompanyMutation) ResetChatRooms() {
	m.chat_rooms = nil
	m.clearedchat_rooms = false
	m.removedchat_rooms = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, company.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.primary_color != nil {
		fields = append(fields, company.FieldPrimaryColor)
	}
	if m.secondary_color != nil {
		fields = append(fields, company.FieldSecondaryColor)
	}
	if m.logo_url != nil {
		fields = append(fields, company.FieldLogoURL)
	}
	if m.footer_message != nil {
		fields = append(fields, company.FieldFooterMessage)
	}
	if m.birthday_notifications_enabled != nil {
		fields = append(fields, company.FieldBirthdayNotificationsEnabled)
	}
	if m.birthday_notify_self != nil {
		fields = append(fields, company.FieldBirthdayNotifySelf)
	}
	if m.birthday_notify_managers != nil {
		fields = append(fields, company.FieldBirthdayNotifyManagers)
	}
	if m.birthday_notify_team != nil {
		fields = append(fields, company.FieldBirthdayNotifyTeam)
	}
	if m.birthday_visibility != nil {
		fields = append(fields, company.FieldBirthdayVisibility)
	}
	if m.birthday_message_template != nil {
		fields = append(fields, company.FieldBirthdayMessageTemplate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldCreatedAt:
		return m.CreatedAt()
	case company.FieldUpdatedAt:
		return m.UpdatedAt()
	case company.FieldName:
		return m.Name()
	case company.FieldPrimaryColor:
		return m.PrimaryColor()
	case company.FieldSecondaryColor:
		return m.SecondaryColor()
	case company.FieldLogoURL:
		return m.LogoURL()
	case company.FieldFooterMessage:
		return m.FooterMessage()
	case company.FieldBirthdayNotificationsEnabled:
		return m.BirthdayNotificationsEnabled()
	case company.FieldBirthdayNotifySelf:
		return m.BirthdayNotifySelf()
	case company.FieldBirthdayNotifyManagers:
		return m.BirthdayNotifyManagers()
	case company.FieldBirthdayNotifyTeam:
		return m.BirthdayNotifyTeam()
	case company.FieldBirthdayVisibility:
		return m.BirthdayVisibility()
	case company.FieldBirthdayMessageTemplate:
		return m.BirthdayMessageTemplate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case company.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldPrimaryColor:
		return m.OldPrimaryColor(ctx)
	case company.FieldSecondaryColor:
		return m.OldSecondaryColor(ctx)
	case company.FieldLogoURL:
		return m.OldLogoURL(ctx)
	case company.FieldFooterMessage:
		return m.OldFooterMessage(ctx)
	case company.FieldBirthdayNotificationsEnabled:
		return m.OldBirthdayNotificationsEnabled(ctx)
	case company.FieldBirthdayNotifySelf:
		return m.OldBirthdayNotifySelf(ctx)
	case company.FieldBirthdayNotifyManagers:
		return m.OldBirthdayNotifyManagers(ctx)
	case company.FieldBirthdayNotifyTeam:
		return m.OldBirthdayNotifyTeam(ctx)
	case company.FieldBirthdayVisibility:
		return m.OldBirthdayVisibility(ctx)
	case company.FieldBirthdayMessageTemplate:
		return m.OldBirthdayMessageTemplate(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case company.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldPrimaryColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryColor(v)
		return nil
	case company.FieldSecondaryColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecondaryColor(v)
		return nil
	case company.FieldLogoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogoURL(v)
		return nil
	case company.FieldFooterMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFooterMessage(v)
		return nil
	case company.FieldBirthdayNotificationsEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthdayNotificationsEnabled(v)
		return nil
	case company.FieldBirthdayNotifySelf:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthdayNotifySelf(v)
		return nil
	case company.FieldBirthdayNotifyManagers:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthdayNotifyManagers(v)
		return nil
	case company.FieldBirthdayNotifyTeam:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthdayNotifyTeam(v)
		return nil
	case company.FieldBirthdayVisibility:
		v, ok := value.(company.BirthdayVisibility)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthdayVisibility(v)
		return nil
	case company.FieldBirthdayMessageTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthdayMessageTemplate(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(company.FieldLogoURL) {
		fields = append(fields, company.FieldLogoURL)
	}
	if m.FieldCleared(company.FieldFooterMessage) {
		fields = append(fields, company.FieldFooterMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	switch name {
	case company.FieldLogoURL:
		m.ClearLogoURL()
		return nil
	case company.FieldFooterMessage:
		m.ClearFooterMessage()
		return nil
	}
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case company.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldPrimaryColor:
		m.ResetPrimaryColor()
		return nil
	case company.FieldSecondaryColor:
		m.ResetSecondaryColor()
		return nil
	case company.FieldLogoURL:
		m.ResetLogoURL()
		return nil
	case company.FieldFooterMessage:
		m.ResetFooterMessage()
		return nil
	case company.FieldBirthdayNotificationsEnabled:
		m.ResetBirthdayNotificationsEnabled()
		return nil
	case company.FieldBirthdayNotifySelf:
		m.ResetBirthdayNotifySelf()
		return nil
	case company.FieldBirthdayNotifyManagers:
		m.ResetBirthdayNotifyManagers()
		return nil
	case company.FieldBirthdayNotifyTeam:
		m.ResetBirthdayNotifyTeam()
		return nil
	case company.FieldBirthdayVisibility:
		m.ResetBirthdayVisibility()
		return nil
	case company.FieldBirthdayMessageTemplate:
		m.ResetBirthdayMessageTemplate()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.users != nil {
		edges = append(edges, company.EdgeUsers)
	}
	if m.teams != nil {
		edges = append(edges, company.EdgeTeams)
	}
	if m.email_templates != nil {
		edges = append(edges, company.EdgeEmailTemplates)
	}
	if m.chat_rooms != nil {
		edges = append(edges, company.EdgeChatRooms)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.users))
		for id := range m.users {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeTeams:
		ids := make([]ent.Value, 0, len(m.teams))
		for id := range m.teams {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeEmailTemplates:
		ids := make([]ent.Value, 0, len(m.email_templates))
		for id := range m.email_templates {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeChatRooms:
		ids := make([]ent.Value, 0, len(m.chat_rooms))
		for id := range m.chat_rooms {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedusers != nil {
		edges = append(edges, company.EdgeUsers)
	}
	if m.removedteams != nil {
		edges = append(edges, company.EdgeTeams)
	}
	if m.removedemail_templates != nil {
		edges = append(edges, company.EdgeEmailTemplates)
	}
	if m.removedchat_rooms != nil {
		edges = append(edges, company.EdgeChatRooms)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeUsers:
		ids := make([]ent.Value, 0, len(m.removedusers))
		for id := range m.removedusers {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeTeams:
		ids := make([]ent.Value, 0, len(m.removedteams))
		for id := range m.removedteams {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeEmailTemplates:
		ids := make([]ent.Value, 0, len(m.removedemail_templates))
		for id := range m.removedemail_templates {
			ids = append(ids, id)
		}
		return ids
	case company.EdgeChatRooms:
		ids := make([]ent.Value, 0, len(m.removedchat_rooms))
		for id := range m.removedchat_rooms {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedusers {
		edges = append(edges, company.EdgeUsers)
	}
	if m.clearedteams {
		edges = append(edges, company.EdgeTeams)
	}
	if m.clearedemail_templates {
		edges = append(edges, company.EdgeEmailTemplates)
	}
	if m.clearedchat_rooms {
		edges = append(edges, company.EdgeChatRooms)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeUsers:
		return m.clearedusers
	case company.EdgeTeams:
		return m.clearedteams
	case company.EdgeEmailTemplates:
		return m.clearedemail_templates
	case company.EdgeChatRooms:
		return m.clearedchat_rooms
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeUsers:
		m.ResetUsers()
		return nil
	case company.EdgeTeams:
		m.ResetTeams()
		return nil
	case company.EdgeEmailTemplates:
		m.ResetEmailTemplates()
		return nil
	case company.EdgeChatRooms:
		m.ResetChatRooms()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// EmailTemplateMutation represents an operation that mutates the EmailTemplate nodes in the graph.
type EmailTemplateMutation struct {
	config
	op             Op
	typ            string
	id             *string
	created_at     *time.Time
	updated_at     *time.Time
	_type          *emailtemplate.Type
	subject        *string
	body           *string
	enabled        *bool
	clearedFields  map[string]struct{}
	company        *string
	clearedcompany bool
	done           bool
	oldValue       func(context.Context) (*EmailTemplate, error)
	predicates     []predicate.EmailTemplate
}

var _ ent.Mutation = (*EmailTemplateMutation)(nil)

// emailtemplateOption allows management of the mutation configuration using functional options.
type emailtemplateOption func(*EmailTemplateMutation)

// newEmailTemplateMutation creates new mutation for the EmailTemplate entity.
func newEmailTemplateMutation(c config, op Op, opts ...emailtemplateOption) *EmailTemplateMutation {
	m := &EmailTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeEmailTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmailTemplateID sets the ID field of the mutation.
func withEmailTemplateID(id string) emailtemplateOption {
	return func(m *EmailTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *EmailTemplate
		)
		m.oldValue = func(ctx context.Context) (*EmailTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EmailTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmailTemplate sets the old EmailTemplate of the mutation.
func withEmailTemplate(node *EmailTemplate) emailtemplateOption {
	return func(m *EmailTemplateMutation) {
		m.oldValue = func(context.Context) (*EmailTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmailTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmailTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EmailTemplate entities.
func (m *EmailTemplateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmailTemplateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmailTemplateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EmailTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EmailTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmailTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmailTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EmailTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EmailTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EmailTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetType sets the "type" field.
func (m *EmailTemplateMutation) SetType(e emailtemplate.Type) {
	m._type = &e
}

// GetType returns the value of the "type" field in the mutation.
func (m *EmailTemplateMutation) GetType() (r emailtemplate.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldType(ctx context.Context) (v emailtemplate.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *EmailTemplateMutation) ResetType() {
	m._type = nil
}

// SetSubject sets the "subject" field.
func (m *EmailTemplateMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *EmailTemplateMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *EmailTemplateMutation) ResetSubject() {
	m.subject = nil
}

// SetBody sets the "body" field.
func (m *EmailTemplateMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *EmailTemplateMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *EmailTemplateMutation) ResetBody() {
	m.body = nil
}

// SetEnabled sets the "enabled" field.
func (m *EmailTemplateMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *EmailTemplateMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the EmailTemplate entity.
// If the EmailTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmailTemplateMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *EmailTemplateMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCompanyID sets the "company" edge to the Company entity by id.
func (m *EmailTemplateMutation) SetCompanyID(id string) {
	m.company = &id
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *EmailTemplateMutation) ClearCompany() {
	m.clearedcompany = true
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *EmailTemplateMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyID returns the "company" edge ID in the mutation.
func (m *EmailTemplateMutation) CompanyID() (id string, exists bool) {
	if m.company != nil {
		return *m.company, true
	}
	return
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *EmailTemplateMutation) CompanyIDs() (ids []string) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *EmailTemplateMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// Where appends a list predicates to the EmailTemplateMutation builder.
func (m *EmailTemplateMutation) Where(ps ...predicate.EmailTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmailTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmailTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EmailTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmailTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmailTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EmailTemplate).
func (m *EmailTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmailTemplateMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, emailtemplate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, emailtemplate.FieldUpdatedAt)
	}
	if m._type != nil {
		fields = append(fields, emailtemplate.FieldType)
	}
	if m.subject != nil {
		fields = append(fields, emailtemplate.FieldSubject)
	}
	if m.body != nil {
		fields = append(fields, emailtemplate.FieldBody)
	}
	if m.enabled != nil {
		fields = append(fields, emailtemplate.FieldEnabled)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmailTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case emailtemplate.FieldCreatedAt:
		return m.CreatedAt()
	case emailtemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	case emailtemplate.FieldType:
		return m.GetType()
	case emailtemplate.FieldSubject:
		return m.Subject()
	case emailtemplate.FieldBody:
		return m.Body()
	case emailtemplate.FieldEnabled:
		return m.Enabled()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmailTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case emailtemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case emailtemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case emailtemplate.FieldType:
		return m.OldType(ctx)
	case emailtemplate.FieldSubject:
		return m.OldSubject(ctx)
	case emailtemplate.FieldBody:
		return m.OldBody(ctx)
	case emailtemplate.FieldEnabled:
		return m.OldEnabled(ctx)
	}
	return nil, fmt.Errorf("unknown EmailTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case emailtemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case emailtemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case emailtemplate.FieldType:
		v, ok := value.(emailtemplate.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case emailtemplate.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case emailtemplate.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case emailtemplate.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	}
	return fmt.Errorf("unknown EmailTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmailTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmailTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmailTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EmailTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmailTemplateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmailTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmailTemplateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EmailTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmailTemplateMutation) ResetField(name string) error {
	switch name {
	case emailtemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case emailtemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case emailtemplate.FieldType:
		m.ResetType()
		return nil
	case emailtemplate.FieldSubject:
		m.ResetSubject()
		return nil
	case emailtemplate.FieldBody:
		m.ResetBody()
		return nil
	case emailtemplate.FieldEnabled:
		m.ResetEnabled()
		return nil
	}
	return fmt.Errorf("unknown EmailTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmailTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.company != nil {
		edges = append(edges, emailtemplate.EdgeCompany)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmailTemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case emailtemplate.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmailTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmailTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmailTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcompany {
		edges = append(edges, emailtemplate.EdgeCompany)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmailTemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case emailtemplate.EdgeCompany:
		return m.clearedcompany
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmailTemplateMutation) ClearEdge(name string) error {
	switch name {
	case emailtemplate.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown EmailTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmailTemplateMutation) ResetEdge(name string) error {
	switch name {
	case emailtemplate.EdgeCompany:
		m.ResetCompany()
		return nil
	}
	return fmt.Errorf("unknown EmailTemplate edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	body             *string
	read             *bool
	clearedFields    map[string]struct{}
	sender           *string
	clearedsender    bool
	recipient        *string
	clearedrecipient bool
	done             bool
	oldValue         func(context.Context) (*Message, error)
	predicates       []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetBody sets the "body" field.
func (m *MessageMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *MessageMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *MessageMutation) ResetBody() {
	m.body = nil
}

// SetRead sets the "read" field.
func (m *MessageMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *MessageMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *MessageMutation) ResetRead() {
	m.read = nil
}

// SetSenderID sets the "sender" edge to the User entity by id.
func (m *MessageMutation) SetSenderID(id string) {
	m.sender = &id
}

// ClearSender clears the "sender" edge to the User entity.
func (m *MessageMutation) ClearSender() {
	m.clearedsender = true
}

// SenderCleared reports if the "sender" edge to the User entity was cleared.
func (m *MessageMutation) SenderCleared() bool {
	return m.clearedsender
}

// SenderID returns the "sender" edge ID in the mutation.
func (m *MessageMutation) SenderID() (id string, exists bool) {
	if m.sender != nil {
		return *m.sender, true
	}
	return
}

// SenderIDs returns the "sender" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SenderID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) SenderIDs() (ids []string) {
	if id := m.sender; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSender resets all changes to the "sender" edge.
func (m *MessageMutation) ResetSender() {
	m.sender = nil
	m.clearedsender = false
}

// SetRecipientID sets the "recipient" edge to the User entity by id.
func (m *MessageMutation) SetRecipientID(id string) {
	m.recipient = &id
}

// ClearRecipient clears the "recipient" edge to the User entity.
func (m *MessageMutation) ClearRecipient() {
	m.clearedrecipient = true
}

// RecipientCleared reports if the "recipient" edge to the User entity was cleared.
func (m *MessageMutation) RecipientCleared() bool {
	return m.clearedrecipient
}

// RecipientID returns the "recipient" edge ID in the mutation.
func (m *MessageMutation) RecipientID() (id string, exists bool) {
	if m.recipient != nil {
		return *m.recipient, true
	}
	return
}

// RecipientIDs returns the "recipient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecipientID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) RecipientIDs() (ids []string) {
	if id := m.recipient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecipient resets all changes to the "recipient" edge.
func (m *MessageMutation) ResetRecipient() {
	m.recipient = nil
	m.clearedrecipient = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	if m.body != nil {
		fields = append(fields, message.FieldBody)
	}
	if m.read != nil {
		fields = append(fields, message.FieldRead)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldCreatedAt:
		return m.CreatedAt()
	case message.FieldBody:
		return m.Body()
	case message.FieldRead:
		return m.Read()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case message.FieldBody:
		return m.OldBody(ctx)
	case message.FieldRead:
		return m.OldRead(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case message.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case message.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case message.FieldBody:
		m.ResetBody()
		return nil
	case message.FieldRead:
		m.ResetRead()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.sender != nil {
		edges = append(edges, message.EdgeSender)
	}
	if m.recipient != nil {
		edges = append(edges, message.EdgeRecipient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeSender:
		if id := m.sender; id != nil {
			return []ent.Value{*id}
		}
	case message.EdgeRecipient:
		if id := m.recipient; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsender {
		edges = append(edges, message.EdgeSender)
	}
	if m.clearedrecipient {
		edges = append(edges, message.EdgeRecipient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeSender:
		return m.clearedsender
	case message.EdgeRecipient:
		return m.clearedrecipient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeSender:
		m.ClearSender()
		return nil
	case message.EdgeRecipient:
		m.ClearRecipient()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeSender:
		m.ResetSender()
		return nil
	case message.EdgeRecipient:
		m.ResetRecipient()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	_type         *notification.Type
	title         *string
	message       *string
	related_id    *string
	read          *bool
	read_at       *time.Time
	clearedFields map[string]struct{}
	user          *string
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetType sets the "type" field.
func (m *NotificationMutation) SetType(n notification.Type) {
	m._type = &n
}

// GetType returns the value of the "type" field in the mutation.
func (m *NotificationMutation) GetType() (r notification.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldType(ctx context.Context) (v notification.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *NotificationMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetMessage sets the "message" field.
func (m *NotificationMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *NotificationMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *NotificationMutation) ResetMessage() {
	m.message = nil
}

// SetRelatedID sets the "related_id" field.
func (m *NotificationMutation) SetRelatedID(s string) {
	m.related_id = &s
}

// RelatedID returns the value of the "related_id" field in the mutation.
func (m *NotificationMutation) RelatedID() (r string, exists bool) {
	v := m.related_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedID returns the old "related_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRelatedID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedID: %w", err)
	}
	return oldValue.RelatedID, nil
}

// ClearRelatedID clears the value of the "related_id" field.
func (m *NotificationMutation) ClearRelatedID() {
	m.related_id = nil
	m.clearedFields[notification.FieldRelatedID] = struct{}{}
}

// RelatedIDCleared returns if the "related_id" field was cleared in this mutation.
func (m *NotificationMutation) RelatedIDCleared() bool {
	_, ok := m.clearedFields[notification.FieldRelatedID]
	return ok
}

// ResetRelatedID resets all changes to the "related_id" field.
func (m *NotificationMutation) ResetRelatedID() {
	m.related_id = nil
	delete(m.clearedFields, notification.FieldRelatedID)
}

// SetRead sets the "read" field.
func (m *NotificationMutation) SetRead(b bool) {
	m.read = &b
}

// Read returns the value of the "read" field in the mutation.
func (m *NotificationMutation) Read() (r bool, exists bool) {
	v := m.read
	if v == nil {
		return
	}
	return *v, true
}

// OldRead returns the old "read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRead: %w", err)
	}
	return oldValue.Read, nil
}

// ResetRead resets all changes to the "read" field.
func (m *NotificationMutation) ResetRead() {
	m.read = nil
}

// SetReadAt sets the "read_at" field.
func (m *NotificationMutation) SetReadAt(t time.Time) {
	m.read_at = &t
}

// ReadAt returns the value of the "read_at" field in the mutation.
func (m *NotificationMutation) ReadAt() (r time.Time, exists bool) {
	v := m.read_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReadAt returns the old "read_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldReadAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadAt: %w", err)
	}
	return oldValue.ReadAt, nil
}

// ClearReadAt clears the value of the "read_at" field.
func (m *NotificationMutation) ClearReadAt() {
	m.read_at = nil
	m.clearedFields[notification.FieldReadAt] = struct{}{}
}

// ReadAtCleared returns if the "read_at" field was cleared in this mutation.
func (m *NotificationMutation) ReadAtCleared() bool {
	_, ok := m.clearedFields[notification.FieldReadAt]
	return ok
}

// ResetReadAt resets all changes to the "read_at" field.
func (m *NotificationMutation) ResetReadAt() {
	m.read_at = nil
	delete(m.clearedFields, notification.FieldReadAt)
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *NotificationMutation) SetUserID(id string) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *NotificationMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *NotificationMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *NotificationMutation) UserID() (id string, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *NotificationMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *NotificationMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m._type != nil {
		fields = append(fields, notification.FieldType)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.message != nil {
		fields = append(fields, notification.FieldMessage)
	}
	if m.related_id != nil {
		fields = append(fields, notification.FieldRelatedID)
	}
	if m.read != nil {
		fields = append(fields, notification.FieldRead)
	}
	if m.read_at != nil {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldType:
		return m.GetType()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldMessage:
		return m.Message()
	case notification.FieldRelatedID:
		return m.RelatedID()
	case notification.FieldRead:
		return m.Read()
	case notification.FieldReadAt:
		return m.ReadAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldType:
		return m.OldType(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldMessage:
		return m.OldMessage(ctx)
	case notification.FieldRelatedID:
		return m.OldRelatedID(ctx)
	case notification.FieldRead:
		return m.OldRead(ctx)
	case notification.FieldReadAt:
		return m.OldReadAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldType:
		v, ok := value.(notification.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case notification.FieldRelatedID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedID(v)
		return nil
	case notification.FieldRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRead(v)
		return nil
	case notification.FieldReadAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldRelatedID) {
		fields = append(fields, notification.FieldRelatedID)
	}
	if m.FieldCleared(notification.FieldReadAt) {
		fields = append(fields, notification.FieldReadAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldRelatedID:
		m.ClearRelatedID()
		return nil
	case notification.FieldReadAt:
		m.ClearReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldType:
		m.ResetType()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldMessage:
		m.ResetMessage()
		return nil
	case notification.FieldRelatedID:
		m.ResetRelatedID()
		return nil
	case notification.FieldRead:
		m.ResetRead()
		return nil
	case notification.FieldReadAt:
		m.ResetReadAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, notification.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case notification.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, notification.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	switch name {
	case notification.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	switch name {
	case notification.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	switch name {
	case notification.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Notification edge %s", name)
}

// NotificationPreferenceMutation represents an operation that mutates the NotificationPreference nodes in the graph.
type NotificationPreferenceMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	created_at              *time.Time
	updated_at              *time.Time
	email_on_task_assigned  *bool
	email_on_task_completed *bool
	email_on_task_comment   *bool
	email_on_mention        *bool
	email_on_deadline       *bool
	email_on_shift_assigned *bool
	email_on_shift_swap     *bool
	email_on_time_off       *bool
	email_on_message        *bool
	push_on_task_assigned   *bool
	push_on_task_comment    *bool
	push_on_mention         *bool
	push_on_message         *bool
	push_on_shift_swap      *bool
	push_on_time_off        *bool
	push_enabled            *bool
	daily_digest            *bool
	weekly_digest           *bool
	monthly_digest          *bool
	digest_time             *string
	digest_day_of_week      *int
	adddigest_day_of_week   *int
	digest_day_of_month     *int
	adddigest_day_of_month  *int
	clearedFields           map[string]struct{}
	user                    *string
	cleareduser             bool
	done                    bool
	oldValue                func(context.Context) (*NotificationPreference, error)
	predicates              []predicate.NotificationPreference
}

var _ ent.Mutation = (*NotificationPreferenceMutation)(nil)

// notificationpreferenceOption allows management of the mutation configuration using functional options.
type notificationpreferenceOption func(*NotificationPreferenceMutation)

// newNotificationPreferenceMutation creates new mutation for the NotificationPreference entity.
func newNotificationPreferenceMutation(c config, op Op, opts ...notificationpreferenceOption) *NotificationPreferenceMutation {
	m := &NotificationPreferenceMutation{
		config:        c,
		op:            op,
		typ:           TypeNotificationPreference,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationPreferenceID sets the ID field of the mutation.
func withNotificationPreferenceID(id string) notificationpreferenceOption {
	return func(m *NotificationPreferenceMutation) {
		var (
			err   error
			once  sync.Once
			value *NotificationPreference
		)
		m.oldValue = func(ctx context.Context) (*NotificationPreference, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NotificationPreference.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotificationPreference sets the old NotificationPreference of the mutation.
func withNotificationPreference(node *NotificationPreference) notificationpreferenceOption {
	return func(m *NotificationPreferenceMutation) {
		m.oldValue = func(context.Context) (*NotificationPreference, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationPreferenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationPreferenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NotificationPreference entities.
func (m *NotificationPreferenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationPreferenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationPreferenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NotificationPreference.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationPreferenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationPreferenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationPreferenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NotificationPreferenceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NotificationPreferenceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NotificationPreferenceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEmailOnTaskAssigned sets the "email_on_task_assigned" field.
func (m *NotificationPreferenceMutation) SetEmailOnTaskAssigned(b bool) {
	m.email_on_task_assigned = &b
}

// EmailOnTaskAssigned returns the value of the "email_on_task_assigned" field in the mutation.
func (m *NotificationPreferenceMutation) EmailOnTaskAssigned() (r bool, exists bool) {
	v := m.email_on_task_assigned
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailOnTaskAssigned returns the old "email_on_task_assigned" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldEmailOnTaskAssigned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailOnTaskAssigned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailOnTaskAssigned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailOnTaskAssigned: %w", err)
	}
	return oldValue.EmailOnTaskAssigned, nil
}

// ResetEmailOnTaskAssigned resets all changes to the "email_on_task_assigned" field.
func (m *NotificationPreferenceMutation) ResetEmailOnTaskAssigned() {
	m.email_on_task_assigned = nil
}

// SetEmailOnTaskCompleted sets the "email_on_task_completed" field.
func (m *NotificationPreferenceMutation) SetEmailOnTaskCompleted(b bool) {
	m.email_on_task_completed = &b
}

// EmailOnTaskCompleted returns the value of the "email_on_task_completed" field in the mutation.
func (m *NotificationPreferenceMutation) EmailOnTaskCompleted() (r bool, exists bool) {
	v := m.email_on_task_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailOnTaskCompleted returns the old "email_on_task_completed" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldEmailOnTaskCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailOnTaskCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailOnTaskCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailOnTaskCompleted: %w", err)
	}
	return oldValue.EmailOnTaskCompleted, nil
}

// ResetEmailOnTaskCompleted resets all changes to the "email_on_task_completed" field.
func (m *NotificationPreferenceMutation) ResetEmailOnTaskCompleted() {
	m.email_on_task_completed = nil
}

// SetEmailOnTaskComment sets the "email_on_task_comment" field.
func (m *NotificationPreferenceMutation) SetEmailOnTaskComment(b bool) {
	m.email_on_task_comment = &b
}

// EmailOnTaskComment returns the value of the "email_on_task_comment" field in the mutation.
func (m *NotificationPreferenceMutation) EmailOnTaskComment() (r bool, exists bool) {
	v := m.email_on_task_comment
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailOnTaskComment returns the old "email_on_task_comment" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldEmailOnTaskComment(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailOnTaskComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailOnTaskComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailOnTaskComment: %w", err)
	}
	return oldValue.EmailOnTaskComment, nil
}

// ResetEmailOnTaskComment resets all changes to the "email_on_task_comment" field.
func (m *NotificationPreferenceMutation) ResetEmailOnTaskComment() {
	m.email_on_task_comment = nil
}

// SetEmailOnMention sets the "email_on_mention" field.
func (m *NotificationPreferenceMutation) SetEmailOnMention(b bool) {
	m.email_on_mention = &b
}

// EmailOnMention returns the value of the "email_on_mention" field in the mutation.
func (m *NotificationPreferenceMutation) EmailOnMention() (r bool, exists bool) {
	v := m.email_on_mention
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailOnMention returns the old "email_on_mention" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldEmailOnMention(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailOnMention is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailOnMention requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailOnMention: %w", err)
	}
	return oldValue.EmailOnMention, nil
}

// ResetEmailOnMention resets all changes to the "email_on_mention" field.
func (m *NotificationPreferenceMutation) ResetEmailOnMention() {
	m.email_on_mention = nil
}

// SetEmailOnDeadline sets the "email_on_deadline" field.
func (m *NotificationPreferenceMutation) SetEmailOnDeadline(b bool) {
	m.email_on_deadline = &b
}

// EmailOnDeadline returns the value of the "email_on_deadline" field in the mutation.
func (m *NotificationPreferenceMutation) EmailOnDeadline() (r bool, exists bool) {
	v := m.email_on_deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailOnDeadline returns the old "email_on_deadline" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldEmailOnDeadline(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailOnDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailOnDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailOnDeadline: %w", err)
	}
	return oldValue.EmailOnDeadline, nil
}

// ResetEmailOnDeadline resets all changes to the "email_on_deadline" field.
func (m *NotificationPreferenceMutation) ResetEmailOnDeadline() {
	m.email_on_deadline = nil
}

// SetEmailOnShiftAssigned sets the "email_on_shift_assigned" field.
func (m *NotificationPreferenceMutation) SetEmailOnShiftAssigned(b bool) {
	m.email_on_shift_assigned = &b
}

// EmailOnShiftAssigned returns the value of the "email_on_shift_assigned" field in the mutation.
func (m *NotificationPreferenceMutation) EmailOnShiftAssigned() (r bool, exists bool) {
	v := m.email_on_shift_assigned
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailOnShiftAssigned returns the old "email_on_shift_assigned" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldEmailOnShiftAssigned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailOnShiftAssigned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailOnShiftAssigned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailOnShiftAssigned: %w", err)
	}
	return oldValue.EmailOnShiftAssigned, nil
}

// ResetEmailOnShiftAssigned resets all changes to the "email_on_shift_assigned" field.
func (m *NotificationPreferenceMutation) ResetEmailOnShiftAssigned() {
	m.email_on_shift_assigned = nil
}

// SetEmailOnShiftSwap sets the "email_on_shift_swap" field.
func (m *NotificationPreferenceMutation) SetEmailOnShiftSwap(b bool) {
	m.email_on_shift_swap = &b
}

// EmailOnShiftSwap returns the value of the "email_on_shift_swap" field in the mutation.
func (m *NotificationPreferenceMutation) EmailOnShiftSwap() (r bool, exists bool) {
	v := m.email_on_shift_swap
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailOnShiftSwap returns the old "email_on_shift_swap" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldEmailOnShiftSwap(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailOnShiftSwap is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailOnShiftSwap requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailOnShiftSwap: %w", err)
	}
	return oldValue.EmailOnShiftSwap, nil
}

// ResetEmailOnShiftSwap resets all changes to the "email_on_shift_swap" field.
func (m *NotificationPreferenceMutation) ResetEmailOnShiftSwap() {
	m.email_on_shift_swap = nil
}

// SetEmailOnTimeOff sets the "email_on_time_off" field.
func (m *NotificationPreferenceMutation) SetEmailOnTimeOff(b bool) {
	m.email_on_time_off = &b
}

// EmailOnTimeOff returns the value of the "email_on_time_off" field in the mutation.
func (m *NotificationPreferenceMutation) EmailOnTimeOff() (r bool, exists bool) {
	v := m.email_on_time_off
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailOnTimeOff returns the old "email_on_time_off" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldEmailOnTimeOff(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailOnTimeOff is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailOnTimeOff requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailOnTimeOff: %w", err)
	}
	return oldValue.EmailOnTimeOff, nil
}

// ResetEmailOnTimeOff resets all changes to the "email_on_time_off" field.
func (m *NotificationPreferenceMutation) ResetEmailOnTimeOff() {
	m.email_on_time_off = nil
}

// SetEmailOnMessage sets the "email_on_message" field.
func (m *NotificationPreferenceMutation) SetEmailOnMessage(b bool) {
	m.email_on_message = &b
}

// EmailOnMessage returns the value of the "email_on_message" field in the mutation.
func (m *NotificationPreferenceMutation) EmailOnMessage() (r bool, exists bool) {
	v := m.email_on_message
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailOnMessage returns the old "email_on_message" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldEmailOnMessage(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailOnMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailOnMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailOnMessage: %w", err)
	}
	return oldValue.EmailOnMessage, nil
}

// ResetEmailOnMessage resets all changes to the "email_on_message" field.
func (m *NotificationPreferenceMutation) ResetEmailOnMessage() {
	m.email_on_message = nil
}

// SetPushOnTaskAssigned sets the "push_on_task_assigned" field.
func (m *NotificationPreferenceMutation) SetPushOnTaskAssigned(b bool) {
	m.push_on_task_assigned = &b
}

// PushOnTaskAssigned returns the value of the "push_on_task_assigned" field in the mutation.
func (m *NotificationPreferenceMutation) PushOnTaskAssigned() (r bool, exists bool) {
	v := m.push_on_task_assigned
	if v == nil {
		return
	}
	return *v, true
}

// OldPushOnTaskAssigned returns the old "push_on_task_assigned" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldPushOnTaskAssigned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPushOnTaskAssigned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPushOnTaskAssigned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPushOnTaskAssigned: %w", err)
	}
	return oldValue.PushOnTaskAssigned, nil
}

// ResetPushOnTaskAssigned resets all changes to the "push_on_task_assigned" field.
func (m *NotificationPreferenceMutation) ResetPushOnTaskAssigned() {
	m.push_on_task_assigned = nil
}

// SetPushOnTaskComment sets the "push_on_task_comment" field.
func (m *NotificationPreferenceMutation) SetPushOnTaskComment(b bool) {
	m.push_on_task_comment = &b
}

// PushOnTaskComment returns the value of the "push_on_task_comment" field in the mutation.
func (m *NotificationPreferenceMutation) PushOnTaskComment() (r bool, exists bool) {
	v := m.push_on_task_comment
	if v == nil {
		return
	}
	return *v, true
}

// OldPushOnTaskComment returns the old "push_on_task_comment" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldPushOnTaskComment(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPushOnTaskComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPushOnTaskComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPushOnTaskComment: %w", err)
	}
	return oldValue.PushOnTaskComment, nil
}

// ResetPushOnTaskComment resets all changes to the "push_on_task_comment" field.
func (m *NotificationPreferenceMutation) ResetPushOnTaskComment() {
	m.push_on_task_comment = nil
}

// SetPushOnMention sets the "push_on_mention" field.
func (m *NotificationPreferenceMutation) SetPushOnMention(b bool) {
	m.push_on_mention = &b
}

// PushOnMention returns the value of the "push_on_mention" field in the mutation.
func (m *NotificationPreferenceMutation) PushOnMention() (r bool, exists bool) {
	v := m.push_on_mention
	if v == nil {
		return
	}
	return *v, true
}

// OldPushOnMention returns the old "push_on_mention" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldPushOnMention(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPushOnMention is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPushOnMention requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPushOnMention: %w", err)
	}
	return oldValue.PushOnMention, nil
}

// ResetPushOnMention resets all changes to the "push_on_mention" field.
func (m *NotificationPreferenceMutation) ResetPushOnMention() {
	m.push_on_mention = nil
}

// SetPushOnMessage sets the "push_on_message" field.
func (m *NotificationPreferenceMutation) SetPushOnMessage(b bool) {
	m.push_on_message = &b
}

// PushOnMessage returns the value of the "push_on_message" field in the mutation.
func (m *NotificationPreferenceMutation) PushOnMessage() (r bool, exists bool) {
	v := m.push_on_message
	if v == nil {
		return
	}
	return *v, true
}

// OldPushOnMessage returns the old "push_on_message" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldPushOnMessage(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPushOnMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPushOnMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPushOnMessage: %w", err)
	}
	return oldValue.PushOnMessage, nil
}

// ResetPushOnMessage resets all changes to the "push_on_message" field.
func (m *NotificationPreferenceMutation) ResetPushOnMessage() {
	m.push_on_message = nil
}

// SetPushOnShiftSwap sets the "push_on_shift_swap" field.
func (m *NotificationPreferenceMutation) SetPushOnShiftSwap(b bool) {
	m.push_on_shift_swap = &b
}

// PushOnShiftSwap returns the value of the "push_on_shift_swap" field in the mutation.
func (m *NotificationPreferenceMutation) PushOnShiftSwap() (r bool, exists bool) {
	v := m.push_on_shift_swap
	if v == nil {
		return
	}
	return *v, true
}

// OldPushOnShiftSwap returns the old "push_on_shift_swap" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldPushOnShiftSwap(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPushOnShiftSwap is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPushOnShiftSwap requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPushOnShiftSwap: %w", err)
	}
	return oldValue.PushOnShiftSwap, nil
}

// ResetPushOnShiftSwap resets all changes to the "push_on_shift_swap" field.
func (m *NotificationPreferenceMutation) ResetPushOnShiftSwap() {
	m.push_on_shift_swap = nil
}

// SetPushOnTimeOff sets the "push_on_time_off" field.
func (m *NotificationPreferenceMutation) SetPushOnTimeOff(b bool) {
	m.push_on_time_off = &b
}

// PushOnTimeOff returns the value of the "push_on_time_off" field in the mutation.
func (m *NotificationPreferenceMutation) PushOnTimeOff() (r bool, exists bool) {
	v := m.push_on_time_off
	if v == nil {
		return
	}
	return *v, true
}

// OldPushOnTimeOff returns the old "push_on_time_off" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldPushOnTimeOff(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPushOnTimeOff is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPushOnTimeOff requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPushOnTimeOff: %w", err)
	}
	return oldValue.PushOnTimeOff, nil
}

// ResetPushOnTimeOff resets all changes to the "push_on_time_off" field.
func (m *NotificationPreferenceMutation) ResetPushOnTimeOff() {
	m.push_on_time_off = nil
}

// SetPushEnabled sets the "push_enabled" field.
func (m *NotificationPreferenceMutation) SetPushEnabled(b bool) {
	m.push_enabled = &b
}

// PushEnabled returns the value of the "push_enabled" field in the mutation.
func (m *NotificationPreferenceMutation) PushEnabled() (r bool, exists bool) {
	v := m.push_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldPushEnabled returns the old "push_enabled" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldPushEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPushEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPushEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPushEnabled: %w", err)
	}
	return oldValue.PushEnabled, nil
}

// ResetPushEnabled resets all changes to the "push_enabled" field.
func (m *NotificationPreferenceMutation) ResetPushEnabled() {
	m.push_enabled = nil
}

// SetDailyDigest sets the "daily_digest" field.
func (m *NotificationPreferenceMutation) SetDailyDigest(b bool) {
	m.daily_digest = &b
}

// DailyDigest returns the value of the "daily_digest" field in the mutation.
func (m *NotificationPreferenceMutation) DailyDigest() (r bool, exists bool) {
	v := m.daily_digest
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyDigest returns the old "daily_digest" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldDailyDigest(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyDigest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyDigest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyDigest: %w", err)
	}
	return oldValue.DailyDigest, nil
}

// ResetDailyDigest resets all changes to the "daily_digest" field.
func (m *NotificationPreferenceMutation) ResetDailyDigest() {
	m.daily_digest = nil
}

// SetWeeklyDigest sets the "weekly_digest" field.
func (m *NotificationPreferenceMutation) SetWeeklyDigest(b bool) {
	m.weekly_digest = &b
}

// WeeklyDigest returns the value of the "weekly_digest" field in the mutation.
func (m *NotificationPreferenceMutation) WeeklyDigest() (r bool, exists bool) {
	v := m.weekly_digest
	if v == nil {
		return
	}
	return *v, true
}

// OldWeeklyDigest returns the old "weekly_digest" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldWeeklyDigest(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeeklyDigest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeeklyDigest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeeklyDigest: %w", err)
	}
	return oldValue.WeeklyDigest, nil
}

// ResetWeeklyDigest resets all changes to the "weekly_digest" field.
func (m *NotificationPreferenceMutation) ResetWeeklyDigest() {
	m.weekly_digest = nil
}

// SetMonthlyDigest sets the "monthly_digest" field.
func (m *NotificationPreferenceMutation) SetMonthlyDigest(b bool) {
	m.monthly_digest = &b
}

// MonthlyDigest returns the value of the "monthly_digest" field in the mutation.
func (m *NotificationPreferenceMutation) MonthlyDigest() (r bool, exists bool) {
	v := m.monthly_digest
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlyDigest returns the old "monthly_digest" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldMonthlyDigest(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlyDigest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlyDigest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlyDigest: %w", err)
	}
	return oldValue.MonthlyDigest, nil
}

// ResetMonthlyDigest resets all changes to the "monthly_digest" field.
func (m *NotificationPreferenceMutation) ResetMonthlyDigest() {
	m.monthly_digest = nil
}

// SetDigestTime sets the "digest_time" field.
func (m *NotificationPreferenceMutation) SetDigestTime(s string) {
	m.digest_time = &s
}

// DigestTime returns the value of the "digest_time" field in the mutation.
func (m *NotificationPreferenceMutation) DigestTime() (r string, exists bool) {
	v := m.digest_time
	if v == nil {
		return
	}
	return *v, true
}

// OldDigestTime returns the old "digest_time" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldDigestTime(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDigestTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDigestTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDigestTime: %w", err)
	}
	return oldValue.DigestTime, nil
}

// ResetDigestTime resets all changes to the "digest_time" field.
func (m *NotificationPreferenceMutation) ResetDigestTime() {
	m.digest_time = nil
}

// SetDigestDayOfWeek sets the "digest_day_of_week" field.
func (m *NotificationPreferenceMutation) SetDigestDayOfWeek(i int) {
	m.digest_day_of_week = &i
	m.adddigest_day_of_week = nil
}

// DigestDayOfWeek returns the value of the "digest_day_of_week" field in the mutation.
func (m *NotificationPreferenceMutation) DigestDayOfWeek() (r int, exists bool) {
	v := m.digest_day_of_week
	if v == nil {
		return
	}
	return *v, true
}

// OldDigestDayOfWeek returns the old "digest_day_of_week" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldDigestDayOfWeek(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDigestDayOfWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDigestDayOfWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDigestDayOfWeek: %w", err)
	}
	return oldValue.DigestDayOfWeek, nil
}

// AddDigestDayOfWeek adds i to the "digest_day_of_week" field.
func (m *NotificationPreferenceMutation) AddDigestDayOfWeek(i int) {
	if m.adddigest_day_of_week != nil {
		*m.adddigest_day_of_week += i
	} else {
		m.adddigest_day_of_week = &i
	}
}

// AddedDigestDayOfWeek returns the value that was added to the "digest_day_of_week" field in this mutation.
func (m *NotificationPreferenceMutation) AddedDigestDayOfWeek() (r int, exists bool) {
	v := m.adddigest_day_of_week
	if v == nil {
		return
	}
	return *v, true
}

// ResetDigestDayOfWeek resets all changes to the "digest_day_of_week" field.
func (m *NotificationPreferenceMutation) ResetDigestDayOfWeek() {
	m.digest_day_of_week = nil
	m.adddigest_day_of_week = nil
}

// SetDigestDayOfMonth sets the "digest_day_of_month" field.
func (m *NotificationPreferenceMutation) SetDigestDayOfMonth(i int) {
	m.digest_day_of_month = &i
	m.adddigest_day_of_month = nil
}

// DigestDayOfMonth returns the value of the "digest_day_of_month" field in the mutation.
func (m *NotificationPreferenceMutation) DigestDayOfMonth() (r int, exists bool) {
	v := m.digest_day_of_month
	if v == nil {
		return
	}
	return *v, true
}

// OldDigestDayOfMonth returns the old "digest_day_of_month" field's value of the NotificationPreference entity.
// If the NotificationPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPreferenceMutation) OldDigestDayOfMonth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDigestDayOfMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDigestDayOfMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDigestDayOfMonth: %w", err)
	}
	return oldValue.DigestDayOfMonth, nil
}

// AddDigestDayOfMonth adds i to the "digest_day_of_month" field.
func (m *NotificationPreferenceMutation) AddDigestDayOfMonth(i int) {
	if m.adddigest_day_of_month != nil {
		*m.adddigest_day_of_month += i
	} else {
		m.adddigest_day_of_month = &i
	}
}

// AddedDigestDayOfMonth returns the value that was added to the "digest_day_of_month" field in this mutation.
func (m *NotificationPreferenceMutation) AddedDigestDayOfMonth() (r int, exists bool) {
	v := m.adddigest_day_of_month
	if v == nil {
		return
	}
	return *v, true
}

// ResetDigestDayOfMonth resets all changes to the "digest_day_of_month" field.
func (m *NotificationPreferenceMutation) ResetDigestDayOfMonth() {
	m.digest_day_of_month = nil
	m.adddigest_day_of_month = nil
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *NotificationPreferenceMutation) SetUserID(id string) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *NotificationPreferenceMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *NotificationPreferenceMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *NotificationPreferenceMutation) UserID() (id string, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *NotificationPreferenceMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *NotificationPreferenceMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the NotificationPreferenceMutation builder.
func (m *NotificationPreferenceMutation) Where(ps ...predicate.NotificationPreference) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationPreferenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationPreferenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NotificationPreference, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationPreferenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationPreferenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NotificationPreference).
func (m *NotificationPreferenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationPreferenceMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.created_at != nil {
		fields = append(fields, notificationpreference.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, notificationpreference.FieldUpdatedAt)
	}
	if m.email_on_task_assigned != nil {
		fields = append(fields, notificationpreference.FieldEmailOnTaskAssigned)
	}
	if m.email_on_task_completed != nil {
		fields = append(fields, notificationpreference.FieldEmailOnTaskCompleted)
	}
	if m.email_on_task_comment != nil {
		fields = append(fields, notificationpreference.FieldEmailOnTaskComment)
	}
	if m.email_on_mention != nil {
		fields = append(fields, notificationpreference.FieldEmailOnMention)
	}
	if m.email_on_deadline != nil {
		fields = append(fields, notificationpreference.FieldEmailOnDeadline)
	}
	if m.email_on_shift_assigned != nil {
		fields = append(fields, notificationpreference.FieldEmailOnShiftAssigned)
	}
	if m.email_on_shift_swap != nil {
		fields = append(fields, notificationpreference.FieldEmailOnShiftSwap)
	}
	if m.email_on_time_off != nil {
		fields = append(fields, notificationpreference.FieldEmailOnTimeOff)
	}
	if m.email_on_message != nil {
		fields = append(fields, notificationpreference.FieldEmailOnMessage)
	}
	if m.push_on_task_assigned != nil {
		fields = append(fields, notificationpreference.FieldPushOnTaskAssigned)
	}
	if m.push_on_task_comment != nil {
		fields = append(fields, notificationpreference.FieldPushOnTaskComment)
	}
	if m.push_on_mention != nil {
		fields = append(fields, notificationpreference.FieldPushOnMention)
	}
	if m.push_on_message != nil {
		fields = append(fields, notificationpreference.FieldPushOnMessage)
	}
	if m.push_on_shift_swap != nil {
		fields = append(fields, notificationpreference.FieldPushOnShiftSwap)
	}
	if m.push_on_time_off != nil {
		fields = append(fields, notificationpreference.FieldPushOnTimeOff)
	}
	if m.push_enabled != nil {
		fields = append(fields, notificationpreference.FieldPushEnabled)
	}
	if m.daily_digest != nil {
		fields = append(fields, notificationpreference.FieldDailyDigest)
	}
	if m.weekly_digest != nil {
		fields = append(fields, notificationpreference.FieldWeeklyDigest)
	}
	if m.monthly_digest != nil {
		fields = append(fields, notificationpreference.FieldMonthlyDigest)
	}
	if m.digest_time != nil {
		fields = append(fields, notificationpreference.FieldDigestTime)
	}
	if m.digest_day_of_week != nil {
		fields = append(fields, notificationpreference.FieldDigestDayOfWeek)
	}
	if m.digest_day_of_month != nil {
		fields = append(fields, notificationpreference.FieldDigestDayOfMonth)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationPreferenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notificationpreference.FieldCreatedAt:
		return m.CreatedAt()
	case notificationpreference.FieldUpdatedAt:
		return m.UpdatedAt()
	case notificationpreference.FieldEmailOnTaskAssigned:
		return m.EmailOnTaskAssigned()
	case notificationpreference.FieldEmailOnTaskCompleted:
		return m.EmailOnTaskCompleted()
	case notificationpreference.FieldEmailOnTaskComment:
		return m.EmailOnTaskComment()
	case notificationpreference.FieldEmailOnMention:
		return m.EmailOnMention()
	case notificationpreference.FieldEmailOnDeadline:
		return m.EmailOnDeadline()
	case notificationpreference.FieldEmailOnShiftAssigned:
		return m.EmailOnShiftAssigned()
	case notificationpreference.FieldEmailOnShiftSwap:
		return m.EmailOnShiftSwap()
	case notificationpreference.FieldEmailOnTimeOff:
		return m.EmailOnTimeOff()
	case notificationpreference.FieldEmailOnMessage:
		return m.EmailOnMessage()
	case notificationpreference.FieldPushOnTaskAssigned:
		return m.PushOnTaskAssigned()
	case notificationpreference.FieldPushOnTaskComment:
		return m.PushOnTaskComment()
	case notificationpreference.FieldPushOnMention:
		return m.PushOnMention()
	case notificationpreference.FieldPushOnMessage:
		return m.PushOnMessage()
	case notificationpreference.FieldPushOnShiftSwap:
		return m.PushOnShiftSwap()
	case notificationpreference.FieldPushOnTimeOff:
		return m.PushOnTimeOff()
	case notificationpreference.FieldPushEnabled:
		return m.PushEnabled()
	case notificationpreference.FieldDailyDigest:
		return m.DailyDigest()
	case notificationpreference.FieldWeeklyDigest:
		return m.WeeklyDigest()
	case notificationpreference.FieldMonthlyDigest:
		return m.MonthlyDigest()
	case notificationpreference.FieldDigestTime:
		return m.DigestTime()
	case notificationpreference.FieldDigestDayOfWeek:
		return m.DigestDayOfWeek()
	case notificationpreference.FieldDigestDayOfMonth:
		return m.DigestDayOfMonth()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationPreferenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notificationpreference.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notificationpreference.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case notificationpreference.FieldEmailOnTaskAssigned:
		return m.OldEmailOnTaskAssigned(ctx)
	case notificationpreference.FieldEmailOnTaskCompleted:
		return m.OldEmailOnTaskCompleted(ctx)
	case notificationpreference.FieldEmailOnTaskComment:
		return m.OldEmailOnTaskComment(ctx)
	case notificationpreference.FieldEmailOnMention:
		return m.OldEmailOnMention(ctx)
	case notificationpreference.FieldEmailOnDeadline:
		return m.OldEmailOnDeadline(ctx)
	case notificationpreference.FieldEmailOnShiftAssigned:
		return m.OldEmailOnShiftAssigned(ctx)
	case notificationpreference.FieldEmailOnShiftSwap:
		return m.OldEmailOnShiftSwap(ctx)
	case notificationpreference.FieldEmailOnTimeOff:
		return m.OldEmailOnTimeOff(ctx)
	case notificationpreference.FieldEmailOnMessage:
		return m.OldEmailOnMessage(ctx)
	case notificationpreference.FieldPushOnTaskAssigned:
		return m.OldPushOnTaskAssigned(ctx)
	case notificationpreference.FieldPushOnTaskComment:
		return m.OldPushOnTaskComment(ctx)
	case notificationpreference.FieldPushOnMention:
		return m.OldPushOnMention(ctx)
	case notificationpreference.FieldPushOnMessage:
		return m.OldPushOnMessage(ctx)
	case notificationpreference.FieldPushOnShiftSwap:
		return m.OldPushOnShiftSwap(ctx)
	case notificationpreference.FieldPushOnTimeOff:
		return m.OldPushOnTimeOff(ctx)
	case notificationpreference.FieldPushEnabled:
		return m.OldPushEnabled(ctx)
	case notificationpreference.FieldDailyDigest:
		return m.OldDailyDigest(ctx)
	case notificationpreference.FieldWeeklyDigest:
		return m.OldWeeklyDigest(ctx)
	case notificationpreference.FieldMonthlyDigest:
		return m.OldMonthlyDigest(ctx)
	case notificationpreference.FieldDigestTime:
		return m.OldDigestTime(ctx)
	case notificationpreference.FieldDigestDayOfWeek:
		return m.OldDigestDayOfWeek(ctx)
	case notificationpreference.FieldDigestDayOfMonth:
		return m.OldDigestDayOfMonth(ctx)
	}
	return nil, fmt.Errorf("unknown NotificationPreference field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationPreferenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notificationpreference.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notificationpreference.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case notificationpreference.FieldEmailOnTaskAssigned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailOnTaskAssigned(v)
		return nil
	case notificationpreference.FieldEmailOnTaskCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailOnTaskCompleted(v)
		return nil
	case notificationpreference.FieldEmailOnTaskComment:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailOnTaskComment(v)
		return nil
	case notificationpreference.FieldEmailOnMention:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailOnMention(v)
		return nil
	case notificationpreference.FieldEmailOnDeadline:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailOnDeadline(v)
		return nil
	case notificationpreference.FieldEmailOnShiftAssigned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailOnShiftAssigned(v)
		return nil
	case notificationpreference.FieldEmailOnShiftSwap:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailOnShiftSwap(v)
		return nil
	case notificationpreference.FieldEmailOnTimeOff:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailOnTimeOff(v)
		return nil
	case notificationpreference.FieldEmailOnMessage:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailOnMessage(v)
		return nil
	case notificationpreference.FieldPushOnTaskAssigned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPushOnTaskAssigned(v)
		return nil
	case notificationpreference.FieldPushOnTaskComment:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPushOnTaskComment(v)
		return nil
	case notificationpreference.FieldPushOnMention:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPushOnMention(v)
		return nil
	case notificationpreference.FieldPushOnMessage:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPushOnMessage(v)
		return nil
	case notificationpreference.FieldPushOnShiftSwap:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPushOnShiftSwap(v)
		return nil
	case notificationpreference.FieldPushOnTimeOff:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPushOnTimeOff(v)
		return nil
	case notificationpreference.FieldPushEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPushEnabled(v)
		return nil
	case notificationpreference.FieldDailyDigest:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyDigest(v)
		return nil
	case notificationpreference.FieldWeeklyDigest:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeeklyDigest(v)
		return nil
	case notificationpreference.FieldMonthlyDigest:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlyDigest(v)
		return nil
	case notificationpreference.FieldDigestTime:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDigestTime(v)
		return nil
	case notificationpreference.FieldDigestDayOfWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDigestDayOfWeek(v)
		return nil
	case notificationpreference.FieldDigestDayOfMonth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDigestDayOfMonth(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationPreference field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationPreferenceMutation) AddedFields() []string {
	var fields []string
	if m.adddigest_day_of_week != nil {
		fields = append(fields, notificationpreference.FieldDigestDayOfWeek)
	}
	if m.adddigest_day_of_month != nil {
		fields = append(fields, notificationpreference.FieldDigestDayOfMonth)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationPreferenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case notificationpreference.FieldDigestDayOfWeek:
		return m.AddedDigestDayOfWeek()
	case notificationpreference.FieldDigestDayOfMonth:
		return m.AddedDigestDayOfMonth()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationPreferenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case notificationpreference.FieldDigestDayOfWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDigestDayOfWeek(v)
		return nil
	case notificationpreference.FieldDigestDayOfMonth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDigestDayOfMonth(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationPreference numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationPreferenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationPreferenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationPreferenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown NotificationPreference nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationPreferenceMutation) ResetField(name string) error {
	switch name {
	case notificationpreference.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notificationpreference.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case notificationpreference.FieldEmailOnTaskAssigned:
		m.ResetEmailOnTaskAssigned()
		return nil
	case notificationpreference.FieldEmailOnTaskCompleted:
		m.ResetEmailOnTaskCompleted()
		return nil
	case notificationpreference.FieldEmailOnTaskComment:
		m.ResetEmailOnTaskComment()
		return nil
	case notificationpreference.FieldEmailOnMention:
		m.ResetEmailOnMention()
		return nil
	case notificationpreference.FieldEmailOnDeadline:
		m.ResetEmailOnDeadline()
		return nil
	case notificationpreference.FieldEmailOnShiftAssigned:
		m.ResetEmailOnShiftAssigned()
		return nil
	case notificationpreference.FieldEmailOnShiftSwap:
		m.ResetEmailOnShiftSwap()
		return nil
	case notificationpreference.FieldEmailOnTimeOff:
		m.ResetEmailOnTimeOff()
		return nil
	case notificationpreference.FieldEmailOnMessage:
		m.ResetEmailOnMessage()
		return nil
	case notificationpreference.FieldPushOnTaskAssigned:
		m.ResetPushOnTaskAssigned()
		return nil
	case notificationpreference.FieldPushOnTaskComment:
		m.ResetPushOnTaskComment()
		return nil
	case notificationpreference.FieldPushOnMention:
		m.ResetPushOnMention()
		return nil
	case notificationpreference.FieldPushOnMessage:
		m.ResetPushOnMessage()
		return nil
	case notificationpreference.FieldPushOnShiftSwap:
		m.ResetPushOnShiftSwap()
		return nil
	case notificationpreference.FieldPushOnTimeOff:
		m.ResetPushOnTimeOff()
		return nil
	case notificationpreference.FieldPushEnabled:
		m.ResetPushEnabled()
		return nil
	case notificationpreference.FieldDailyDigest:
		m.ResetDailyDigest()
		return nil
	case notificationpreference.FieldWeeklyDigest:
		m.ResetWeeklyDigest()
		return nil
	case notificationpreference.FieldMonthlyDigest:
		m.ResetMonthlyDigest()
		return nil
	case notificationpreference.FieldDigestTime:
		m.ResetDigestTime()
		return nil
	case notificationpreference.FieldDigestDayOfWeek:
		m.ResetDigestDayOfWeek()
		return nil
	case notificationpreference.FieldDigestDayOfMonth:
		m.ResetDigestDayOfMonth()
		return nil
	}
	return fmt.Errorf("unknown NotificationPreference field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationPreferenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, notificationpreference.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationPreferenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case notificationpreference.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationPreferenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationPreferenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationPreferenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, notificationpreference.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationPreferenceMutation) EdgeCleared(name string) bool {
	switch name {
	case notificationpreference.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationPreferenceMutation) ClearEdge(name string) error {
	switch name {
	case notificationpreference.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown NotificationPreference unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationPreferenceMutation) ResetEdge(name string) error {
	switch name {
	case notificationpreference.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown NotificationPreference edge %s", name)
}

// PushSubscriptionMutation represents an operation that mutates the PushSubscription nodes in the graph.
type PushSubscriptionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	endpoint      *string
	p256dh        *string
	auth          *string
	user_agent    *string
	clearedFields map[string]struct{}
	user          *string
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*PushSubscription, error)
	predicates    []predicate.PushSubscription
}

var _ ent.Mutation = (*PushSubscriptionMutation)(nil)

// pushsubscriptionOption allows management of the mutation configuration using functional options.
type pushsubscriptionOption func(*PushSubscriptionMutation)

// newPushSubscriptionMutation creates new mutation for the PushSubscription entity.
func newPushSubscriptionMutation(c config, op Op, opts ...pushsubscriptionOption) *PushSubscriptionMutation {
	m := &PushSubscriptionMutation{
		config:        c,
		op:            op,
		typ:           TypePushSubscription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPushSubscriptionID sets the ID field of the mutation.
func withPushSubscriptionID(id string) pushsubscriptionOption {
	return func(m *PushSubscriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *PushSubscription
		)
		m.oldValue = func(ctx context.Context) (*PushSubscription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PushSubscription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPushSubscription sets the old PushSubscription of the mutation.
func withPushSubscription(node *PushSubscription) pushsubscriptionOption {
	return func(m *PushSubscriptionMutation) {
		m.oldValue = func(context.Context) (*PushSubscription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PushSubscriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PushSubscriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PushSubscription entities.
func (m *PushSubscriptionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PushSubscriptionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PushSubscriptionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PushSubscription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PushSubscriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PushSubscriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PushSubscriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetEndpoint sets the "endpoint" field.
func (m *PushSubscriptionMutation) SetEndpoint(s string) {
	m.endpoint = &s
}

// Endpoint returns the value of the "endpoint" field in the mutation.
func (m *PushSubscriptionMutation) Endpoint() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpoint returns the old "endpoint" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpoint: %w", err)
	}
	return oldValue.Endpoint, nil
}

// ResetEndpoint resets all changes to the "endpoint" field.
func (m *PushSubscriptionMutation) ResetEndpoint() {
	m.endpoint = nil
}

// SetP256dh sets the "p256dh" field.
func (m *PushSubscriptionMutation) SetP256dh(s string) {
	m.p256dh = &s
}

// P256dh returns the value of the "p256dh" field in the mutation.
func (m *PushSubscriptionMutation) P256dh() (r string, exists bool) {
	v := m.p256dh
	if v == nil {
		return
	}
	return *v, true
}

// OldP256dh returns the old "p256dh" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldP256dh(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldP256dh is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldP256dh requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldP256dh: %w", err)
	}
	return oldValue.P256dh, nil
}

// ResetP256dh resets all changes to the "p256dh" field.
func (m *PushSubscriptionMutation) ResetP256dh() {
	m.p256dh = nil
}

// SetAuth sets the "auth" field.
func (m *PushSubscriptionMutation) SetAuth(s string) {
	m.auth = &s
}

// Auth returns the value of the "auth" field in the mutation.
func (m *PushSubscriptionMutation) Auth() (r string, exists bool) {
	v := m.auth
	if v == nil {
		return
	}
	return *v, true
}

// OldAuth returns the old "auth" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldAuth(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuth: %w", err)
	}
	return oldValue.Auth, nil
}

// ResetAuth resets all changes to the "auth" field.
func (m *PushSubscriptionMutation) ResetAuth() {
	m.auth = nil
}

// SetUserAgent sets the "user_agent" field.
func (m *PushSubscriptionMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *PushSubscriptionMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the PushSubscription entity.
// If the PushSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushSubscriptionMutation) OldUserAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *PushSubscriptionMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[pushsubscription.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *PushSubscriptionMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[pushsubscription.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *PushSubscriptionMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, pushsubscription.FieldUserAgent)
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *PushSubscriptionMutation) SetUserID(id string) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *PushSubscriptionMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PushSubscriptionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *PushSubscriptionMutation) UserID() (id string, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PushSubscriptionMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PushSubscriptionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the PushSubscriptionMutation builder.
func (m *PushSubscriptionMutation) Where(ps ...predicate.PushSubscription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PushSubscriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PushSubscriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PushSubscription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PushSubscriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PushSubscriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PushSubscription).
func (m *PushSubscriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PushSubscriptionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, pushsubscription.FieldCreatedAt)
	}
	if m.endpoint != nil {
		fields = append(fields, pushsubscription.FieldEndpoint)
	}
	if m.p256dh != nil {
		fields = append(fields, pushsubscription.FieldP256dh)
	}
	if m.auth != nil {
		fields = append(fields, pushsubscription.FieldAuth)
	}
	if m.user_agent != nil {
		fields = append(fields, pushsubscription.FieldUserAgent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PushSubscriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pushsubscription.FieldCreatedAt:
		return m.CreatedAt()
	case pushsubscription.FieldEndpoint:
		return m.Endpoint()
	case pushsubscription.FieldP256dh:
		return m.P256dh()
	case pushsubscription.FieldAuth:
		return m.Auth()
	case pushsubscription.FieldUserAgent:
		return m.UserAgent()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PushSubscriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pushsubscription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pushsubscription.FieldEndpoint:
		return m.OldEndpoint(ctx)
	case pushsubscription.FieldP256dh:
		return m.OldP256dh(ctx)
	case pushsubscription.FieldAuth:
		return m.OldAuth(ctx)
	case pushsubscription.FieldUserAgent:
		return m.OldUserAgent(ctx)
	}
	return nil, fmt.Errorf("unknown PushSubscription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PushSubscriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pushsubscription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pushsubscription.FieldEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpoint(v)
		return nil
	case pushsubscription.FieldP256dh:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetP256dh(v)
		return nil
	case pushsubscription.FieldAuth:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuth(v)
		return nil
	case pushsubscription.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	}
	return fmt.Errorf("unknown PushSubscription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PushSubscriptionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PushSubscriptionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PushSubscriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PushSubscription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PushSubscriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pushsubscription.FieldUserAgent) {
		fields = append(fields, pushsubscription.FieldUserAgent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PushSubscriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PushSubscriptionMutation) ClearField(name string) error {
	switch name {
	case pushsubscription.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	}
	return fmt.Errorf("unknown PushSubscription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PushSubscriptionMutation) ResetField(name string) error {
	switch name {
	case pushsubscription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pushsubscription.FieldEndpoint:
		m.ResetEndpoint()
		return nil
	case pushsubscription.FieldP256dh:
		m.ResetP256dh()
		return nil
	case pushsubscription.FieldAuth:
		m.ResetAuth()
		return nil
	case pushsubscription.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	}
	return fmt.Errorf("unknown PushSubscription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PushSubscriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, pushsubscription.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PushSubscriptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pushsubscription.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PushSubscriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PushSubscriptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PushSubscriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, pushsubscription.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PushSubscriptionMutation) EdgeCleared(name string) bool {
	switch name {
	case pushsubscription.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PushSubscriptionMutation) ClearEdge(name string) error {
	switch name {
	case pushsubscription.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown PushSubscription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PushSubscriptionMutation) ResetEdge(name string) error {
	switch name {
	case pushsubscription.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown PushSubscription edge %s", name)
}

// ShiftMutation represents an operation that mutates the Shift nodes in the graph.
type ShiftMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	created_at           *time.Time
	updated_at           *time.Time
	starts_at            *time.Time
	ends_at              *time.Time
	position             *string
	clearedFields        map[string]struct{}
	user                 *string
	cleareduser          bool
	swap_requests        map[string]struct{}
	removedswap_requests map[string]struct{}
	clearedswap_requests bool
	done                 bool
	oldValue             func(context.Context) (*Shift, error)
	predicates           []predicate.Shift
}

var _ ent.Mutation = (*ShiftMutation)(nil)

// shiftOption allows management of the mutation configuration using functional options.
type shiftOption func(*ShiftMutation)

// newShiftMutation creates new mutation for the Shift entity.
func newShiftMutation(c config, op Op, opts ...shiftOption) *ShiftMutation {
	m := &ShiftMutation{
		config:        c,
		op:            op,
		typ:           TypeShift,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withShiftID sets the ID field of the mutation.
func withShiftID(id string) shiftOption {
	return func(m *ShiftMutation) {
		var (
			err   error
			once  sync.Once
			value *Shift
		)
		m.oldValue = func(ctx context.Context) (*Shift, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Shift.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withShift sets the old Shift of the mutation.
func withShift(node *Shift) shiftOption {
	return func(m *ShiftMutation) {
		m.oldValue = func(context.Context) (*Shift, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ShiftMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ShiftMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Shift entities.
func (m *ShiftMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ShiftMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ShiftMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Shift.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ShiftMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ShiftMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Shift entity.
// If the Shift object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ShiftMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ShiftMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ShiftMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Shift entity.
// If the Shift object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ShiftMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartsAt sets the "starts_at" field.
func (m *ShiftMutation) SetStartsAt(t time.Time) {
	m.starts_at = &t
}

// StartsAt returns the value of the "starts_at" field in the mutation.
func (m *ShiftMutation) StartsAt() (r time.Time, exists bool) {
	v := m.starts_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartsAt returns the old "starts_at" field's value of the Shift entity.
// If the Shift object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftMutation) OldStartsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartsAt: %w", err)
	}
	return oldValue.StartsAt, nil
}

// ResetStartsAt resets all changes to the "starts_at" field.
func (m *ShiftMutation) ResetStartsAt() {
	m.starts_at = nil
}

// SetEndsAt sets the "ends_at" field.
func (m *ShiftMutation) SetEndsAt(t time.Time) {
	m.ends_at = &t
}

// EndsAt returns the value of the "ends_at" field in the mutation.
func (m *ShiftMutation) EndsAt() (r time.Time, exists bool) {
	v := m.ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndsAt returns the old "ends_at" field's value of the Shift entity.
// If the Shift object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftMutation) OldEndsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndsAt: %w", err)
	}
	return oldValue.EndsAt, nil
}

// ResetEndsAt resets all changes to the "ends_at" field.
func (m *ShiftMutation) ResetEndsAt() {
	m.ends_at = nil
}

// SetPosition sets the "position" field.
func (m *ShiftMutation) SetPosition(s string) {
	m.position = &s
}

// Position returns the value of the "position" field in the mutation.
func (m *ShiftMutation) Position() (r string, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Shift entity.
// If the Shift object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftMutation) OldPosition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// ClearPosition clears the value of the "position" field.
func (m *ShiftMutation) ClearPosition() {
	m.position = nil
	m.clearedFields[shift.FieldPosition] = struct{}{}
}

// PositionCleared returns if the "position" field was cleared in this mutation.
func (m *ShiftMutation) PositionCleared() bool {
	_, ok := m.clearedFields[shift.FieldPosition]
	return ok
}

// ResetPosition resets all changes to the "position" field.
func (m *ShiftMutation) ResetPosition() {
	m.position = nil
	delete(m.clearedFields, shift.FieldPosition)
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *ShiftMutation) SetUserID(id string) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *ShiftMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ShiftMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *ShiftMutation) UserID() (id string, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ShiftMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ShiftMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddSwapRequestIDs adds the "swap_requests" edge to the ShiftSwapRequest entity by ids.
func (m *ShiftMutation) AddSwapRequestIDs(ids ...string) {
	if m.swap_requests == nil {
		m.swap_requests = make(map[string]struct{})
	}
	for i := range ids {
		m.swap_requests[ids[i]] = struct{}{}
	}
}

// ClearSwapRequests clears the "swap_requests" edge to the ShiftSwapRequest entity.
func (m *ShiftMutation) ClearSwapRequests() {
	m.clearedswap_requests = true
}

// SwapRequestsCleared reports if the "swap_requests" edge to the ShiftSwapRequest entity was cleared.
func (m *ShiftMutation) SwapRequestsCleared() bool {
	return m.clearedswap_requests
}

// RemoveSwapRequestIDs removes the "swap_requests" edge to the ShiftSwapRequest entity by IDs.
func (m *ShiftMutation) RemoveSwapRequestIDs(ids ...string) {
	if m.removedswap_requests == nil {
		m.removedswap_requests = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.swap_requests, ids[i])
		m.removedswap_requests[ids[i]] = struct{}{}
	}
}

// RemovedSwapRequests returns the removed IDs of the "swap_requests" edge to the ShiftSwapRequest entity.
func (m *ShiftMutation) RemovedSwapRequestsIDs() (ids []string) {
	for id := range m.removedswap_requests {
		ids = append(ids, id)
	}
	return
}

// SwapRequestsIDs returns the "swap_requests" edge IDs in the mutation.
func (m *ShiftMutation) SwapRequestsIDs() (ids []string) {
	for id := range m.swap_requests {
		ids = append(ids, id)
	}
	return
}

// ResetSwapRequests resets all changes to the "swap_requests" edge.
func (m *ShiftMutation) ResetSwapRequests() {
	m.swap_requests = nil
	m.clearedswap_requests = false
	m.removedswap_requests = nil
}

// Where appends a list predicates to the ShiftMutation builder.
func (m *ShiftMutation) Where(ps ...predicate.Shift) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ShiftMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ShiftMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Shift, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ShiftMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ShiftMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Shift).
func (m *ShiftMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ShiftMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, shift.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, shift.FieldUpdatedAt)
	}
	if m.starts_at != nil {
		fields = append(fields, shift.FieldStartsAt)
	}
	if m.ends_at != nil {
		fields = append(fields, shift.FieldEndsAt)
	}
	if m.position != nil {
		fields = append(fields, shift.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ShiftMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case shift.FieldCreatedAt:
		return m.CreatedAt()
	case shift.FieldUpdatedAt:
		return m.UpdatedAt()
	case shift.FieldStartsAt:
		return m.StartsAt()
	case shift.FieldEndsAt:
		return m.EndsAt()
	case shift.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ShiftMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case shift.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case shift.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case shift.FieldStartsAt:
		return m.OldStartsAt(ctx)
	case shift.FieldEndsAt:
		return m.OldEndsAt(ctx)
	case shift.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown Shift field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShiftMutation) SetField(name string, value ent.Value) error {
	switch name {
	case shift.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case shift.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case shift.FieldStartsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartsAt(v)
		return nil
	case shift.FieldEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndsAt(v)
		return nil
	case shift.FieldPosition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Shift field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ShiftMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ShiftMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShiftMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Shift numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ShiftMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(shift.FieldPosition) {
		fields = append(fields, shift.FieldPosition)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ShiftMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ShiftMutation) ClearField(name string) error {
	switch name {
	case shift.FieldPosition:
		m.ClearPosition()
		return nil
	}
	return fmt.Errorf("unknown Shift nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ShiftMutation) ResetField(name string) error {
	switch name {
	case shift.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case shift.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case shift.FieldStartsAt:
		m.ResetStartsAt()
		return nil
	case shift.FieldEndsAt:
		m.ResetEndsAt()
		return nil
	case shift.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown Shift field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ShiftMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, shift.EdgeUser)
	}
	if m.swap_requests != nil {
		edges = append(edges, shift.EdgeSwapRequests)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ShiftMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case shift.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case shift.EdgeSwapRequests:
		ids := make([]ent.Value, 0, len(m.swap_requests))
		for id := range m.swap_requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ShiftMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedswap_requests != nil {
		edges = append(edges, shift.EdgeSwapRequests)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ShiftMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case shift.EdgeSwapRequests:
		ids := make([]ent.Value, 0, len(m.removedswap_requests))
		for id := range m.removedswap_requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ShiftMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, shift.EdgeUser)
	}
	if m.clearedswap_requests {
		edges = append(edges, shift.EdgeSwapRequests)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ShiftMutation) EdgeCleared(name string) bool {
	switch name {
	case shift.EdgeUser:
		return m.cleareduser
	case shift.EdgeSwapRequests:
		return m.clearedswap_requests
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ShiftMutation) ClearEdge(name string) error {
	switch name {
	case shift.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Shift unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ShiftMutation) ResetEdge(name string) error {
	switch name {
	case shift.EdgeUser:
		m.ResetUser()
		return nil
	case shift.EdgeSwapRequests:
		m.ResetSwapRequests()
		return nil
	}
	return fmt.Errorf("unknown Shift edge %s", name)
}

// ShiftSwapRequestMutation represents an operation that mutates the ShiftSwapRequest nodes in the graph.
type ShiftSwapRequestMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	updated_at       *time.Time
	status           *shiftswaprequest.Status
	reason           *string
	responded_by     *string
	clearedFields    map[string]struct{}
	requester        *string
	clearedrequester bool
	target           *string
	clearedtarget    bool
	shift            *string
	clearedshift     bool
	done             bool
	oldValue         func(context.Context) (*ShiftSwapRequest, error)
	predicates       []predicate.ShiftSwapRequest
}

var _ ent.Mutation = (*ShiftSwapRequestMutation)(nil)

// shiftswaprequestOption allows management of the mutation configuration using functional options.
type shiftswaprequestOption func(*ShiftSwapRequestMutation)

// newShiftSwapRequestMutation creates new mutation for the ShiftSwapRequest entity.
func newShiftSwapRequestMutation(c config, op Op, opts ...shiftswaprequestOption) *ShiftSwapRequestMutation {
	m := &ShiftSwapRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeShiftSwapRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withShiftSwapRequestID sets the ID field of the mutation.
func withShiftSwapRequestID(id string) shiftswaprequestOption {
	return func(m *ShiftSwapRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *ShiftSwapRequest
		)
		m.oldValue = func(ctx context.Context) (*ShiftSwapRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ShiftSwapRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withShiftSwapRequest sets the old ShiftSwapRequest of the mutation.
func withShiftSwapRequest(node *ShiftSwapRequest) shiftswaprequestOption {
	return func(m *ShiftSwapRequestMutation) {
		m.oldValue = func(context.Context) (*ShiftSwapRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ShiftSwapRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ShiftSwapRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ShiftSwapRequest entities.
func (m *ShiftSwapRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ShiftSwapRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ShiftSwapRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ShiftSwapRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ShiftSwapRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ShiftSwapRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ShiftSwapRequest entity.
// If the ShiftSwapRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftSwapRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ShiftSwapRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ShiftSwapRequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ShiftSwapRequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ShiftSwapRequest entity.
// If the ShiftSwapRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftSwapRequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ShiftSwapRequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStatus sets the "status" field.
func (m *ShiftSwapRequestMutation) SetStatus(s shiftswaprequest.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ShiftSwapRequestMutation) Status() (r shiftswaprequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ShiftSwapRequest entity.
// If the ShiftSwapRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftSwapRequestMutation) OldStatus(ctx context.Context) (v shiftswaprequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ShiftSwapRequestMutation) ResetStatus() {
	m.status = nil
}

// SetReason sets the "reason" field.
func (m *ShiftSwapRequestMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ShiftSwapRequestMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the ShiftSwapRequest entity.
// If the ShiftSwapRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftSwapRequestMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *ShiftSwapRequestMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[shiftswaprequest.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *ShiftSwapRequestMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[shiftswaprequest.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *ShiftSwapRequestMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, shiftswaprequest.FieldReason)
}

// SetRespondedBy sets the "responded_by" field.
func (m *ShiftSwapRequestMutation) SetRespondedBy(s string) {
	m.responded_by = &s
}

// RespondedBy returns the value of the "responded_by" field in the mutation.
func (m *ShiftSwapRequestMutation) RespondedBy() (r string, exists bool) {
	v := m.responded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedBy returns the old "responded_by" field's value of the ShiftSwapRequest entity.
// If the ShiftSwapRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftSwapRequestMutation) OldRespondedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedBy: %w", err)
	}
	return oldValue.RespondedBy, nil
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (m *ShiftSwapRequestMutation) ClearRespondedBy() {
	m.responded_by = nil
	m.clearedFields[shiftswaprequest.FieldRespondedBy] = struct{}{}
}

// RespondedByCleared returns if the "responded_by" field was cleared in this mutation.
func (m *ShiftSwapRequestMutation) RespondedByCleared() bool {
	_, ok := m.clearedFields[shiftswaprequest.FieldRespondedBy]
	return ok
}

// ResetRespondedBy resets all changes to the "responded_by" field.
func (m *ShiftSwapRequestMutation) ResetRespondedBy() {
	m.responded_by = nil
	delete(m.clearedFields, shiftswaprequest.FieldRespondedBy)
}

// SetRequesterID sets the "requester" edge to the User entity by id.
func (m *ShiftSwapRequestMutation) SetRequesterID(id string) {
	m.requester = &id
}

// ClearRequester clears the "requester" edge to the User entity.
func (m *ShiftSwapRequestMutation) ClearRequester() {
	m.clearedrequester = true
}

// RequesterCleared reports if the "requester" edge to the User entity was cleared.
func (m *ShiftSwapRequestMutation) RequesterCleared() bool {
	return m.clearedrequester
}

// RequesterID returns the "requester" edge ID in the mutation.
func (m *ShiftSwapRequestMutation) RequesterID() (id string, exists bool) {
	if m.requester != nil {
		return *m.requester, true
	}
	return
}

// RequesterIDs returns the "requester" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequesterID instead. It exists only for internal usage by the builders.
func (m *ShiftSwapRequestMutation) RequesterIDs() (ids []string) {
	if id := m.requester; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequester resets all changes to the "requester" edge.
func (m *ShiftSwapRequestMutation) ResetRequester() {
	m.requester = nil
	m.clearedrequester = false
}

// SetTargetID sets the "target" edge to the User entity by id.
func (m *ShiftSwapRequestMutation) SetTargetID(id string) {
	m.target = &id
}

// ClearTarget clears the "target" edge to the User entity.
func (m *ShiftSwapRequestMutation) ClearTarget() {
	m.clearedtarget = true
}

// TargetCleared reports if the "target" edge to the User entity was cleared.
func (m *ShiftSwapRequestMutation) TargetCleared() bool {
	return m.clearedtarget
}

// TargetID returns the "target" edge ID in the mutation.
func (m *ShiftSwapRequestMutation) TargetID() (id string, exists bool) {
	if m.target != nil {
		return *m.target, true
	}
	return
}

// TargetIDs returns the "target" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TargetID instead. It exists only for internal usage by the builders.
func (m *ShiftSwapRequestMutation) TargetIDs() (ids []string) {
	if id := m.target; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTarget resets all changes to the "target" edge.
func (m *ShiftSwapRequestMutation) ResetTarget() {
	m.target = nil
	m.clearedtarget = false
}

// SetShiftID sets the "shift" edge to the Shift entity by id.
func (m *ShiftSwapRequestMutation) SetShiftID(id string) {
	m.shift = &id
}

// ClearShift clears the "shift" edge to the Shift entity.
func (m *ShiftSwapRequestMutation) ClearShift() {
	m.clearedshift = true
}

// ShiftCleared reports if the "shift" edge to the Shift entity was cleared.
func (m *ShiftSwapRequestMutation) ShiftCleared() bool {
	return m.clearedshift
}

// ShiftID returns the "shift" edge ID in the mutation.
func (m *ShiftSwapRequestMutation) ShiftID() (id string, exists bool) {
	if m.shift != nil {
		return *m.shift, true
	}
	return
}

// ShiftIDs returns the "shift" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ShiftID instead. It exists only for internal usage by the builders.
func (m *ShiftSwapRequestMutation) ShiftIDs() (ids []string) {
	if id := m.shift; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetShift resets all changes to the "shift" edge.
func (m *ShiftSwapRequestMutation) ResetShift() {
	m.shift = nil
	m.clearedshift = false
}

// Where appends a list predicates to the ShiftSwapRequestMutation builder.
func (m *ShiftSwapRequestMutation) Where(ps ...predicate.ShiftSwapRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ShiftSwapRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ShiftSwapRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ShiftSwapRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ShiftSwapRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ShiftSwapRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ShiftSwapRequest).
func (m *ShiftSwapRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ShiftSwapRequestMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, shiftswaprequest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, shiftswaprequest.FieldUpdatedAt)
	}
	if m.status != nil {
		fields = append(fields, shiftswaprequest.FieldStatus)
	}
	if m.reason != nil {
		fields = append(fields, shiftswaprequest.FieldReason)
	}
	if m.responded_by != nil {
		fields = append(fields, shiftswaprequest.FieldRespondedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ShiftSwapRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case shiftswaprequest.FieldCreatedAt:
		return m.CreatedAt()
	case shiftswaprequest.FieldUpdatedAt:
		return m.UpdatedAt()
	case shiftswaprequest.FieldStatus:
		return m.Status()
	case shiftswaprequest.FieldReason:
		return m.Reason()
	case shiftswaprequest.FieldRespondedBy:
		return m.RespondedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ShiftSwapRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case shiftswaprequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case shiftswaprequest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case shiftswaprequest.FieldStatus:
		return m.OldStatus(ctx)
	case shiftswaprequest.FieldReason:
		return m.OldReason(ctx)
	case shiftswaprequest.FieldRespondedBy:
		return m.OldRespondedBy(ctx)
	}
	return nil, fmt.Errorf("unknown ShiftSwapRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShiftSwapRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case shiftswaprequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case shiftswaprequest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case shiftswaprequest.FieldStatus:
		v, ok := value.(shiftswaprequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case shiftswaprequest.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case shiftswaprequest.FieldRespondedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedBy(v)
		return nil
	}
	return fmt.Errorf("unknown ShiftSwapRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ShiftSwapRequestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ShiftSwapRequestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShiftSwapRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ShiftSwapRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ShiftSwapRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(shiftswaprequest.FieldReason) {
		fields = append(fields, shiftswaprequest.FieldReason)
	}
	if m.FieldCleared(shiftswaprequest.FieldRespondedBy) {
		fields = append(fields, shiftswaprequest.FieldRespondedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ShiftSwapRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ShiftSwapRequestMutation) ClearField(name string) error {
	switch name {
	case shiftswaprequest.FieldReason:
		m.ClearReason()
		return nil
	case shiftswaprequest.FieldRespondedBy:
		m.ClearRespondedBy()
		return nil
	}
	return fmt.Errorf("unknown ShiftSwapRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ShiftSwapRequestMutation) ResetField(name string) error {
	switch name {
	case shiftswaprequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case shiftswaprequest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case shiftswaprequest.FieldStatus:
		m.ResetStatus()
		return nil
	case shiftswaprequest.FieldReason:
		m.ResetReason()
		return nil
	case shiftswaprequest.FieldRespondedBy:
		m.ResetRespondedBy()
		return nil
	}
	return fmt.Errorf("unknown ShiftSwapRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ShiftSwapRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.requester != nil {
		edges = append(edges, shiftswaprequest.EdgeRequester)
	}
	if m.target != nil {
		edges = append(edges, shiftswaprequest.EdgeTarget)
	}
	if m.shift != nil {
		edges = append(edges, shiftswaprequest.EdgeShift)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ShiftSwapRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case shiftswaprequest.EdgeRequester:
		if id := m.requester; id != nil {
			return []ent.Value{*id}
		}
	case shiftswaprequest.EdgeTarget:
		if id := m.target; id != nil {
			return []ent.Value{*id}
		}
	case shiftswaprequest.EdgeShift:
		if id := m.shift; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ShiftSwapRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ShiftSwapRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ShiftSwapRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedrequester {
		edges = append(edges, shiftswaprequest.EdgeRequester)
	}
	if m.clearedtarget {
		edges = append(edges, shiftswaprequest.EdgeTarget)
	}
	if m.clearedshift {
		edges = append(edges, shiftswaprequest.EdgeShift)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ShiftSwapRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case shiftswaprequest.EdgeRequester:
		return m.clearedrequester
	case shiftswaprequest.EdgeTarget:
		return m.clearedtarget
	case shiftswaprequest.EdgeShift:
		return m.clearedshift
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ShiftSwapRequestMutation) ClearEdge(name string) error {
	switch name {
	case shiftswaprequest.EdgeRequester:
		m.ClearRequester()
		return nil
	case shiftswaprequest.EdgeTarget:
		m.ClearTarget()
		return nil
	case shiftswaprequest.EdgeShift:
		m.ClearShift()
		return nil
	}
	return fmt.Errorf("unknown ShiftSwapRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ShiftSwapRequestMutation) ResetEdge(name string) error {
	switch name {
	case shiftswaprequest.EdgeRequester:
		m.ResetRequester()
		return nil
	case shiftswaprequest.EdgeTarget:
		m.ResetTarget()
		return nil
	case shiftswaprequest.EdgeShift:
		m.ResetShift()
		return nil
	}
	return fmt.Errorf("unknown ShiftSwapRequest edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op              Op
	typ             string
	id              *string
	created_at      *time.Time
	updated_at      *time.Time
	title           *string
	status          *task.Status
	due_date        *time.Time
	clearedFields   map[string]struct{}
	creator         *string
	clearedcreator  bool
	assignee        *string
	clearedassignee bool
	done            bool
	oldValue        func(context.Context) (*Task, error)
	predicates      []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetDueDate sets the "due_date" field.
func (m *TaskMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *TaskMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *TaskMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[task.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *TaskMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[task.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *TaskMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, task.FieldDueDate)
}

// SetCreatorID sets the "creator" edge to the User entity by id.
func (m *TaskMutation) SetCreatorID(id string) {
	m.creator = &id
}

// ClearCreator clears the "creator" edge to the User entity.
func (m *TaskMutation) ClearCreator() {
	m.clearedcreator = true
}

// CreatorCleared reports if the "creator" edge to the User entity was cleared.
func (m *TaskMutation) CreatorCleared() bool {
	return m.clearedcreator
}

// CreatorID returns the "creator" edge ID in the mutation.
func (m *TaskMutation) CreatorID() (id string, exists bool) {
	if m.creator != nil {
		return *m.creator, true
	}
	return
}

// CreatorIDs returns the "creator" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CreatorID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) CreatorIDs() (ids []string) {
	if id := m.creator; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCreator resets all changes to the "creator" edge.
func (m *TaskMutation) ResetCreator() {
	m.creator = nil
	m.clearedcreator = false
}

// SetAssigneeID sets the "assignee" edge to the User entity by id.
func (m *TaskMutation) SetAssigneeID(id string) {
	m.assignee = &id
}

// ClearAssignee clears the "assignee" edge to the User entity.
func (m *TaskMutation) ClearAssignee() {
	m.clearedassignee = true
}

// AssigneeCleared reports if the "assignee" edge to the User entity was cleared.
func (m *TaskMutation) AssigneeCleared() bool {
	return m.clearedassignee
}

// AssigneeID returns the "assignee" edge ID in the mutation.
func (m *TaskMutation) AssigneeID() (id string, exists bool) {
	if m.assignee != nil {
		return *m.assignee, true
	}
	return
}

// AssigneeIDs returns the "assignee" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssigneeID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) AssigneeIDs() (ids []string) {
	if id := m.assignee; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignee resets all changes to the "assignee" edge.
func (m *TaskMutation) ResetAssignee() {
	m.assignee = nil
	m.clearedassignee = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.due_date != nil {
		fields = append(fields, task.FieldDueDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	case task.FieldTitle:
		return m.Title()
	case task.FieldStatus:
		return m.Status()
	case task.FieldDueDate:
		return m.DueDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldDueDate:
		return m.OldDueDate(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldDueDate) {
		fields = append(fields, task.FieldDueDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldDueDate:
		m.ClearDueDate()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldDueDate:
		m.ResetDueDate()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.creator != nil {
		edges = append(edges, task.EdgeCreator)
	}
	if m.assignee != nil {
		edges = append(edges, task.EdgeAssignee)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeCreator:
		if id := m.creator; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeAssignee:
		if id := m.assignee; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcreator {
		edges = append(edges, task.EdgeCreator)
	}
	if m.clearedassignee {
		edges = append(edges, task.EdgeAssignee)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeCreator:
		return m.clearedcreator
	case task.EdgeAssignee:
		return m.clearedassignee
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeCreator:
		m.ClearCreator()
		return nil
	case task.EdgeAssignee:
		m.ClearAssignee()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeCreator:
		m.ResetCreator()
		return nil
	case task.EdgeAssignee:
		m.ResetAssignee()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TeamMutation represents an operation that mutates the Team nodes in the graph.
type TeamMutation struct {
	config
	op             Op
	typ            string
	id             *string
	created_at     *time.Time
	updated_at     *time.Time
	name           *string
	clearedFields  map[string]struct{}
	company        *string
	clearedcompany bool
	members        map[string]struct{}
	removedmembers map[string]struct{}
	clearedmembers bool
	done           bool
	oldValue       func(context.Context) (*Team, error)
	predicates     []predicate.Team
}

var _ ent.Mutation = (*TeamMutation)(nil)

// teamOption allows management of the mutation configuration using functional options.
type teamOption func(*TeamMutation)

// newTeamMutation creates new mutation for the Team entity.
func newTeamMutation(c config, op Op, opts ...teamOption) *TeamMutation {
	m := &TeamMutation{
		config:        c,
		op:            op,
		typ:           TypeTeam,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTeamID sets the ID field of the mutation.
func withTeamID(id string) teamOption {
	return func(m *TeamMutation) {
		var (
			err   error
			once  sync.Once
			value *Team
		)
		m.oldValue = func(ctx context.Context) (*Team, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Team.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTeam sets the old Team of the mutation.
func withTeam(node *Team) teamOption {
	return func(m *TeamMutation) {
		m.oldValue = func(context.Context) (*Team, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TeamMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TeamMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Team entities.
func (m *TeamMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TeamMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TeamMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Team.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TeamMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TeamMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TeamMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TeamMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TeamMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TeamMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *TeamMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TeamMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Team entity.
// If the Team object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TeamMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TeamMutation) ResetName() {
	m.name = nil
}

// SetCompanyID sets the "company" edge to the Company entity by id.
func (m *TeamMutation) SetCompanyID(id string) {
	m.company = &id
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *TeamMutation) ClearCompany() {
	m.clearedcompany = true
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *TeamMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyID returns the "company" edge ID in the mutation.
func (m *TeamMutation) CompanyID() (id string, exists bool) {
	if m.company != nil {
		return *m.company, true
	}
	return
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *TeamMutation) CompanyIDs() (ids []string) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *TeamMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// AddMemberIDs adds the "members" edge to the User entity by ids.
func (m *TeamMutation) AddMemberIDs(ids ...string) {
	if m.members == nil {
		m.members = make(map[string]struct{})
	}
	for i := range ids {
		m.members[ids[i]] = struct{}{}
	}
}

// ClearMembers clears the "members" edge to the User entity.
func (m *TeamMutation) ClearMembers() {
	m.clearedmembers = true
}

// MembersCleared reports if the "members" edge to the User entity was cleared.
func (m *TeamMutation) MembersCleared() bool {
	return m.clearedmembers
}

// RemoveMemberIDs removes the "members" edge to the User entity by IDs.
func (m *TeamMutation) RemoveMemberIDs(ids ...string) {
	if m.removedmembers == nil {
		m.removedmembers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.members, ids[i])
		m.removedmembers[ids[i]] = struct{}{}
	}
}

// RemovedMembers returns the removed IDs of the "members" edge to the User entity.
func (m *TeamMutation) RemovedMembersIDs() (ids []string) {
	for id := range m.removedmembers {
		ids = append(ids, id)
	}
	return
}

// MembersIDs returns the "members" edge IDs in the mutation.
func (m *TeamMutation) MembersIDs() (ids []string) {
	for id := range m.members {
		ids = append(ids, id)
	}
	return
}

// ResetMembers resets all changes to the "members" edge.
func (m *TeamMutation) ResetMembers() {
	m.members = nil
	m.clearedmembers = false
	m.removedmembers = nil
}

// Where appends a list predicates to the TeamMutation builder.
func (m *TeamMutation) Where(ps ...predicate.Team) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TeamMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TeamMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Team, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TeamMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TeamMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Team).
func (m *TeamMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TeamMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, team.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, team.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, team.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TeamMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case team.FieldCreatedAt:
		return m.CreatedAt()
	case team.FieldUpdatedAt:
		return m.UpdatedAt()
	case team.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TeamMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case team.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case team.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case team.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Team field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMutation) SetField(name string, value ent.Value) error {
	switch name {
	case team.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case team.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case team.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Team field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TeamMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TeamMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TeamMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Team numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TeamMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TeamMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TeamMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Team nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TeamMutation) ResetField(name string) error {
	switch name {
	case team.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case team.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case team.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Team field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TeamMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.company != nil {
		edges = append(edges, team.EdgeCompany)
	}
	if m.members != nil {
		edges = append(edges, team.EdgeMembers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TeamMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case team.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case team.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.members))
		for id := range m.members {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TeamMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmembers != nil {
		edges = append(edges, team.EdgeMembers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TeamMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case team.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.removedmembers))
		for id := range m.removedmembers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TeamMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcompany {
		edges = append(edges, team.EdgeCompany)
	}
	if m.clearedmembers {
		edges = append(edges, team.EdgeMembers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TeamMutation) EdgeCleared(name string) bool {
	switch name {
	case team.EdgeCompany:
		return m.clearedcompany
	case team.EdgeMembers:
		return m.clearedmembers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TeamMutation) ClearEdge(name string) error {
	switch name {
	case team.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown Team unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TeamMutation) ResetEdge(name string) error {
	switch name {
	case team.EdgeCompany:
		m.ResetCompany()
		return nil
	case team.EdgeMembers:
		m.ResetMembers()
		return nil
	}
	return fmt.Errorf("unknown Team edge %s", name)
}

// TimeOffRequestMutation represents an operation that mutates the TimeOffRequest nodes in the graph.
type TimeOffRequestMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	updated_at    *time.Time
	starts_on     *time.Time
	ends_on       *time.Time
	status        *timeoffrequest.Status
	reason        *string
	responded_by  *string
	clearedFields map[string]struct{}
	user          *string
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*TimeOffRequest, error)
	predicates    []predicate.TimeOffRequest
}

var _ ent.Mutation = (*TimeOffRequestMutation)(nil)

// timeoffrequestOption allows management of the mutation configuration using functional options.
type timeoffrequestOption func(*TimeOffRequestMutation)

// newTimeOffRequestMutation creates new mutation for the TimeOffRequest entity.
func newTimeOffRequestMutation(c config, op Op, opts ...timeoffrequestOption) *TimeOffRequestMutation {
	m := &TimeOffRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeTimeOffRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTimeOffRequestID sets the ID field of the mutation.
func withTimeOffRequestID(id string) timeoffrequestOption {
	return func(m *TimeOffRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *TimeOffRequest
		)
		m.oldValue = func(ctx context.Context) (*TimeOffRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TimeOffRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTimeOffRequest sets the old TimeOffRequest of the mutation.
func withTimeOffRequest(node *TimeOffRequest) timeoffrequestOption {
	return func(m *TimeOffRequestMutation) {
		m.oldValue = func(context.Context) (*TimeOffRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TimeOffRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TimeOffRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TimeOffRequest entities.
func (m *TimeOffRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TimeOffRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TimeOffRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TimeOffRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TimeOffRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TimeOffRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TimeOffRequest entity.
// If the TimeOffRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeOffRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TimeOffRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TimeOffRequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TimeOffRequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TimeOffRequest entity.
// If the TimeOffRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeOffRequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TimeOffRequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartsOn sets the "starts_on" field.
func (m *TimeOffRequestMutation) SetStartsOn(t time.Time) {
	m.starts_on = &t
}

// StartsOn returns the value of the "starts_on" field in the mutation.
func (m *TimeOffRequestMutation) StartsOn() (r time.Time, exists bool) {
	v := m.starts_on
	if v == nil {
		return
	}
	return *v, true
}

// OldStartsOn returns the old "starts_on" field's value of the TimeOffRequest entity.
// If the TimeOffRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeOffRequestMutation) OldStartsOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartsOn: %w", err)
	}
	return oldValue.StartsOn, nil
}

// ResetStartsOn resets all changes to the "starts_on" field.
func (m *TimeOffRequestMutation) ResetStartsOn() {
	m.starts_on = nil
}

// SetEndsOn sets the "ends_on" field.
func (m *TimeOffRequestMutation) SetEndsOn(t time.Time) {
	m.ends_on = &t
}

// EndsOn returns the value of the "ends_on" field in the mutation.
func (m *TimeOffRequestMutation) EndsOn() (r time.Time, exists bool) {
	v := m.ends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldEndsOn returns the old "ends_on" field's value of the TimeOffRequest entity.
// If the TimeOffRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeOffRequestMutation) OldEndsOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndsOn: %w", err)
	}
	return oldValue.EndsOn, nil
}

// ResetEndsOn resets all changes to the "ends_on" field.
func (m *TimeOffRequestMutation) ResetEndsOn() {
	m.ends_on = nil
}

// SetStatus sets the "status" field.
func (m *TimeOffRequestMutation) SetStatus(t timeoffrequest.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TimeOffRequestMutation) Status() (r timeoffrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TimeOffRequest entity.
// If the TimeOffRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeOffRequestMutation) OldStatus(ctx context.Context) (v timeoffrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TimeOffRequestMutation) ResetStatus() {
	m.status = nil
}

// SetReason sets the "reason" field.
func (m *TimeOffRequestMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *TimeOffRequestMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the TimeOffRequest entity.
// If the TimeOffRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeOffRequestMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *TimeOffRequestMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[timeoffrequest.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *TimeOffRequestMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[timeoffrequest.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *TimeOffRequestMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, timeoffrequest.FieldReason)
}

// SetRespondedBy sets the "responded_by" field.
func (m *TimeOffRequestMutation) SetRespondedBy(s string) {
	m.responded_by = &s
}

// RespondedBy returns the value of the "responded_by" field in the mutation.
func (m *TimeOffRequestMutation) RespondedBy() (r string, exists bool) {
	v := m.responded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedBy returns the old "responded_by" field's value of the TimeOffRequest entity.
// If the TimeOffRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeOffRequestMutation) OldRespondedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedBy: %w", err)
	}
	return oldValue.RespondedBy, nil
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (m *TimeOffRequestMutation) ClearRespondedBy() {
	m.responded_by = nil
	m.clearedFields[timeoffrequest.FieldRespondedBy] = struct{}{}
}

// RespondedByCleared returns if the "responded_by" field was cleared in this mutation.
func (m *TimeOffRequestMutation) RespondedByCleared() bool {
	_, ok := m.clearedFields[timeoffrequest.FieldRespondedBy]
	return ok
}

// ResetRespondedBy resets all changes to the "responded_by" field.
func (m *TimeOffRequestMutation) ResetRespondedBy() {
	m.responded_by = nil
	delete(m.clearedFields, timeoffrequest.FieldRespondedBy)
}

// SetUserID sets the "user" edge to the User entity by id.
func (m *TimeOffRequestMutation) SetUserID(id string) {
	m.user = &id
}

// ClearUser clears the "user" edge to the User entity.
func (m *TimeOffRequestMutation) ClearUser() {
	m.cleareduser = true
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *TimeOffRequestMutation) UserCleared() bool {
	return m.cleareduser
}

// UserID returns the "user" edge ID in the mutation.
func (m *TimeOffRequestMutation) UserID() (id string, exists bool) {
	if m.user != nil {
		return *m.user, true
	}
	return
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *TimeOffRequestMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *TimeOffRequestMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the TimeOffRequestMutation builder.
func (m *TimeOffRequestMutation) Where(ps ...predicate.TimeOffRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TimeOffRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TimeOffRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TimeOffRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TimeOffRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TimeOffRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TimeOffRequest).
func (m *TimeOffRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TimeOffRequestMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, timeoffrequest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, timeoffrequest.FieldUpdatedAt)
	}
	if m.starts_on != nil {
		fields = append(fields, timeoffrequest.FieldStartsOn)
	}
	if m.ends_on != nil {
		fields = append(fields, timeoffrequest.FieldEndsOn)
	}
	if m.status != nil {
		fields = append(fields, timeoffrequest.FieldStatus)
	}
	if m.reason != nil {
		fields = append(fields, timeoffrequest.FieldReason)
	}
	if m.responded_by != nil {
		fields = append(fields, timeoffrequest.FieldRespondedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TimeOffRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case timeoffrequest.FieldCreatedAt:
		return m.CreatedAt()
	case timeoffrequest.FieldUpdatedAt:
		return m.UpdatedAt()
	case timeoffrequest.FieldStartsOn:
		return m.StartsOn()
	case timeoffrequest.FieldEndsOn:
		return m.EndsOn()
	case timeoffrequest.FieldStatus:
		return m.Status()
	case timeoffrequest.FieldReason:
		return m.Reason()
	case timeoffrequest.FieldRespondedBy:
		return m.RespondedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TimeOffRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case timeoffrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case timeoffrequest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case timeoffrequest.FieldStartsOn:
		return m.OldStartsOn(ctx)
	case timeoffrequest.FieldEndsOn:
		return m.OldEndsOn(ctx)
	case timeoffrequest.FieldStatus:
		return m.OldStatus(ctx)
	case timeoffrequest.FieldReason:
		return m.OldReason(ctx)
	case timeoffrequest.FieldRespondedBy:
		return m.OldRespondedBy(ctx)
	}
	return nil, fmt.Errorf("unknown TimeOffRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimeOffRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case timeoffrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case timeoffrequest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case timeoffrequest.FieldStartsOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartsOn(v)
		return nil
	case timeoffrequest.FieldEndsOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndsOn(v)
		return nil
	case timeoffrequest.FieldStatus:
		v, ok := value.(timeoffrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case timeoffrequest.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case timeoffrequest.FieldRespondedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedBy(v)
		return nil
	}
	return fmt.Errorf("unknown TimeOffRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TimeOffRequestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TimeOffRequestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimeOffRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TimeOffRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TimeOffRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(timeoffrequest.FieldReason) {
		fields = append(fields, timeoffrequest.FieldReason)
	}
	if m.FieldCleared(timeoffrequest.FieldRespondedBy) {
		fields = append(fields, timeoffrequest.FieldRespondedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TimeOffRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TimeOffRequestMutation) ClearField(name string) error {
	switch name {
	case timeoffrequest.FieldReason:
		m.ClearReason()
		return nil
	case timeoffrequest.FieldRespondedBy:
		m.ClearRespondedBy()
		return nil
	}
	return fmt.Errorf("unknown TimeOffRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TimeOffRequestMutation) ResetField(name string) error {
	switch name {
	case timeoffrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case timeoffrequest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case timeoffrequest.FieldStartsOn:
		m.ResetStartsOn()
		return nil
	case timeoffrequest.FieldEndsOn:
		m.ResetEndsOn()
		return nil
	case timeoffrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case timeoffrequest.FieldReason:
		m.ResetReason()
		return nil
	case timeoffrequest.FieldRespondedBy:
		m.ResetRespondedBy()
		return nil
	}
	return fmt.Errorf("unknown TimeOffRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TimeOffRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, timeoffrequest.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TimeOffRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case timeoffrequest.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TimeOffRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TimeOffRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TimeOffRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, timeoffrequest.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TimeOffRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case timeoffrequest.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TimeOffRequestMutation) ClearEdge(name string) error {
	switch name {
	case timeoffrequest.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown TimeOffRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TimeOffRequestMutation) ResetEdge(name string) error {
	switch name {
	case timeoffrequest.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown TimeOffRequest edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	created_at                *time.Time
	updated_at                *time.Time
	email                     *string
	first_name                *string
	last_name                 *string
	role                      *user.Role
	password_hash             *string
	birth_date                *time.Time
	enabled                   *bool
	last_login_at             *time.Time
	clearedFields             map[string]struct{}
	company                   *string
	clearedcompany            bool
	team                      *string
	clearedteam               bool
	notifications             map[string]struct{}
	removednotifications      map[string]struct{}
	clearednotifications      bool
	preference                *string
	clearedpreference         bool
	push_subscriptions        map[string]struct{}
	removedpush_subscriptions map[string]struct{}
	clearedpush_subscriptions bool
	created_tasks             map[string]struct{}
	removedcreated_tasks      map[string]struct{}
	clearedcreated_tasks      bool
	assigned_tasks            map[string]struct{}
	removedassigned_tasks     map[string]struct{}
	clearedassigned_tasks     bool
	sent_messages             map[string]struct{}
	removedsent_messages      map[string]struct{}
	clearedsent_messages      bool
	received_messages         map[string]struct{}
	removedreceived_messages  map[string]struct{}
	clearedreceived_messages  bool
	shifts                    map[string]struct{}
	removedshifts             map[string]struct{}
	clearedshifts             bool
	swap_requests             map[string]struct{}
	removedswap_requests      map[string]struct{}
	clearedswap_requests      bool
	swap_targets              map[string]struct{}
	removedswap_targets       map[string]struct{}
	clearedswap_targets       bool
	time_off_requests         map[string]struct{}
	removedtime_off_requests  map[string]struct{}
	clearedtime_off_requests  bool
	done                      bool
	oldValue                  func(context.Context) (*User, error)
	predicates                []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetFirstName sets the "first_name" field.
func (m *UserMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *UserMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *UserMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *UserMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[user.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *UserMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[user.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *UserMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, user.FieldLastName)
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *UserMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[user.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *UserMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[user.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, user.FieldPasswordHash)
}

// SetBirthDate sets the "birth_date" field.
func (m *UserMutation) SetBirthDate(t time.Time) {
	m.birth_date = &t
}

// BirthDate returns the value of the "birth_date" field in the mutation.
func (m *UserMutation) BirthDate() (r time.Time, exists bool) {
	v := m.birth_date
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthDate returns the old "birth_date" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldBirthDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthDate: %w", err)
	}
	return oldValue.BirthDate, nil
}

// ClearBirthDate clears the value of the "birth_date" field.
func (m *UserMutation) ClearBirthDate() {
	m.birth_date = nil
	m.clearedFields[user.FieldBirthDate] = struct{}{}
}

// BirthDateCleared returns if the "birth_date" field was cleared in this mutation.
func (m *UserMutation) BirthDateCleared() bool {
	_, ok := m.clearedFields[user.FieldBirthDate]
	return ok
}

// ResetBirthDate resets all changes to the "birth_date" field.
func (m *UserMutation) ResetBirthDate() {
	m.birth_date = nil
	delete(m.clearedFields, user.FieldBirthDate)
}

// SetEnabled sets the "enabled" field.
func (m *UserMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *UserMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *UserMutation) ResetEnabled() {
	m.enabled = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetCompanyID sets the "company" edge to the Company entity by id.
func (m *UserMutation) SetCompanyID(id string) {
	m.company = &id
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *UserMutation) ClearCompany() {
	m.clearedcompany = true
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *UserMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyID returns the "company" edge ID in the mutation.
func (m *UserMutation) CompanyID() (id string, exists bool) {
	if m.company != nil {
		return *m.company, true
	}
	return
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *UserMutation) CompanyIDs() (ids []string) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *UserMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// SetTeamID sets the "team" edge to the Team entity by id.
func (m *UserMutation) SetTeamID(id string) {
	m.team = &id
}

// ClearTeam clears the "team" edge to the Team entity.
func (m *UserMutation) ClearTeam() {
	m.clearedteam = true
}

// TeamCleared reports if the "team" edge to the Team entity was cleared.
func (m *UserMutation) TeamCleared() bool {
	return m.clearedteam
}

// TeamID returns the "team" edge ID in the mutation.
func (m *UserMutation) TeamID() (id string, exists bool) {
	if m.team != nil {
		return *m.team, true
	}
	return
}

// TeamIDs returns the "team" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TeamID instead. It exists only for internal usage by the builders.
func (m *UserMutation) TeamIDs() (ids []string) {
	if id := m.team; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTeam resets all changes to the "team" edge.
func (m *UserMutation) ResetTeam() {
	m.team = nil
	m.clearedteam = false
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by ids.
func (m *UserMutation) AddNotificationIDs(ids ...string) {
	if m.notifications == nil {
		m.notifications = make(map[string]struct{})
	}
	for i := range ids {
		m.notifications[ids[i]] = struct{}{}
	}
}

// ClearNotifications clears the "notifications" edge to the Notification entity.
func (m *UserMutation) ClearNotifications() {
	m.clearednotifications = true
}

// NotificationsCleared reports if the "notifications" edge to the Notification entity was cleared.
func (m *UserMutation) NotificationsCleared() bool {
	return m.clearednotifications
}

// RemoveNotificationIDs removes the "notifications" edge to the Notification entity by IDs.
func (m *UserMutation) RemoveNotificationIDs(ids ...string) {
	if m.removednotifications == nil {
		m.removednotifications = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.notifications, ids[i])
		m.removednotifications[ids[i]] = struct{}{}
	}
}

// RemovedNotifications returns the removed IDs of the "notifications" edge to the Notification entity.
func (m *UserMutation) RemovedNotificationsIDs() (ids []string) {
	for id := range m.removednotifications {
		ids = append(ids, id)
	}
	return
}

// NotificationsIDs returns the "notifications" edge IDs in the mutation.
func (m *UserMutation) NotificationsIDs() (ids []string) {
	for id := range m.notifications {
		ids = append(ids, id)
	}
	return
}

// ResetNotifications resets all changes to the "notifications" edge.
func (m *UserMutation) ResetNotifications() {
	m.notifications = nil
	m.clearednotifications = false
	m.removednotifications = nil
}

// SetPreferenceID sets the "preference" edge to the NotificationPreference entity by id.
func (m *UserMutation) SetPreferenceID(id string) {
	m.preference = &id
}

// ClearPreference clears the "preference" edge to the NotificationPreference entity.
func (m *UserMutation) ClearPreference() {
	m.clearedpreference = true
}

// PreferenceCleared reports if the "preference" edge to the NotificationPreference entity was cleared.
func (m *UserMutation) PreferenceCleared() bool {
	return m.clearedpreference
}

// PreferenceID returns the "preference" edge ID in the mutation.
func (m *UserMutation) PreferenceID() (id string, exists bool) {
	if m.preference != nil {
		return *m.preference, true
	}
	return
}

// PreferenceIDs returns the "preference" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PreferenceID instead. It exists only for internal usage by the builders.
func (m *UserMutation) PreferenceIDs() (ids []string) {
	if id := m.preference; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPreference resets all changes to the "preference" edge.
func (m *UserMutation) ResetPreference() {
	m.preference = nil
	m.clearedpreference = false
}

// AddPushSubscriptionIDs adds the "push_subscriptions" edge to the PushSubscription entity by ids.
func (m *UserMutation) AddPushSubscriptionIDs(ids ...string) {
	if m.push_subscriptions == nil {
		m.push_subscriptions = make(map[string]struct{})
	}
	for i := range ids {
		m.push_subscriptions[ids[i]] = struct{}{}
	}
}

// ClearPushSubscriptions clears the "push_subscriptions" edge to the PushSubscription entity.
func (m *UserMutation) ClearPushSubscriptions() {
	m.clearedpush_subscriptions = true
}

// PushSubscriptionsCleared reports if the "push_subscriptions" edge to the PushSubscription entity was cleared.
func (m *UserMutation) PushSubscriptionsCleared() bool {
	return m.clearedpush_subscriptions
}

// RemovePushSubscriptionIDs removes the "push_subscriptions" edge to the PushSubscription entity by IDs.
func (m *UserMutation) RemovePushSubscriptionIDs(ids ...string) {
	if m.removedpush_subscriptions == nil {
		m.removedpush_subscriptions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.push_subscriptions, ids[i])
		m.removedpush_subscriptions[ids[i]] = struct{}{}
	}
}

// RemovedPushSubscriptions returns the removed IDs of the "push_subscriptions" edge to the PushSubscription entity.
func (m *UserMutation) RemovedPushSubscriptionsIDs() (ids []string) {
	for id := range m.removedpush_subscriptions {
		ids = append(ids, id)
	}
	return
}

// PushSubscriptionsIDs returns the "push_subscriptions" edge IDs in the mutation.
func (m *UserMutation) PushSubscriptionsIDs() (ids []string) {
	for id := range m.push_subscriptions {
		ids = append(ids, id)
	}
	return
}

// ResetPushSubscriptions resets all changes to the "push_subscriptions" edge.
func (m *UserMutation) ResetPushSubscriptions() {
	m.push_subscriptions = nil
	m.clearedpush_subscriptions = false
	m.removedpush_subscriptions = nil
}

// AddCreatedTaskIDs adds the "created_tasks" edge to the Task entity by ids.
func (m *UserMutation) AddCreatedTaskIDs(ids ...string) {
	if m.created_tasks == nil {
		m.created_tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.created_tasks[ids[i]] = struct{}{}
	}
}

// ClearCreatedTasks clears the "created_tasks" edge to the Task entity.
func (m *UserMutation) ClearCreatedTasks() {
	m.clearedcreated_tasks = true
}

// CreatedTasksCleared reports if the "created_tasks" edge to the Task entity was cleared.
func (m *UserMutation) CreatedTasksCleared() bool {
	return m.clearedcreated_tasks
}

// RemoveCreatedTaskIDs removes the "created_tasks" edge to the Task entity by IDs.
func (m *UserMutation) RemoveCreatedTaskIDs(ids ...string) {
	if m.removedcreated_tasks == nil {
		m.removedcreated_tasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.created_tasks, ids[i])
		m.removedcreated_tasks[ids[i]] = struct{}{}
	}
}

// RemovedCreatedTasks returns the removed IDs of the "created_tasks" edge to the Task entity.
func (m *UserMutation) RemovedCreatedTasksIDs() (ids []string) {
	for id := range m.removedcreated_tasks {
		ids = append(ids, id)
	}
	return
}

// CreatedTasksIDs returns the "created_tasks" edge IDs in the mutation.
func (m *UserMutation) CreatedTasksIDs() (ids []string) {
	for id := range m.created_tasks {
		ids = append(ids, id)
	}
	return
}

// ResetCreatedTasks resets all changes to the "created_tasks" edge.
func (m *UserMutation) ResetCreatedTasks() {
	m.created_tasks = nil
	m.clearedcreated_tasks = false
	m.removedcreated_tasks = nil
}

// AddAssignedTaskIDs adds the "assigned_tasks" edge to the Task entity by ids.
func (m *UserMutation) AddAssignedTaskIDs(ids ...string) {
	if m.assigned_tasks == nil {
		m.assigned_tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.assigned_tasks[ids[i]] = struct{}{}
	}
}

// ClearAssignedTasks clears the "assigned_tasks" edge to the Task entity.
func (m *UserMutation) ClearAssignedTasks() {
	m.clearedassigned_tasks = true
}

// AssignedTasksCleared reports if the "assigned_tasks" edge to the Task entity was cleared.
func (m *UserMutation) AssignedTasksCleared() bool {
	return m.clearedassigned_tasks
}

// RemoveAssignedTaskIDs removes the "assigned_tasks" edge to the Task entity by IDs.
func (m *UserMutation) RemoveAssignedTaskIDs(ids ...string) {
	if m.removedassigned_tasks == nil {
		m.removedassigned_tasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.assigned_tasks, ids[i])
		m.removedassigned_tasks[ids[i]] = struct{}{}
	}
}

// RemovedAssignedTasks returns the removed IDs of the "assigned_tasks" edge to the Task entity.
func (m *UserMutation) RemovedAssignedTasksIDs() (ids []string) {
	for id := range m.removedassigned_tasks {
		ids = append(ids, id)
	}
	return
}

// AssignedTasksIDs returns the "assigned_tasks" edge IDs in the mutation.
func (m *UserMutation) AssignedTasksIDs() (ids []string) {
	for id := range m.assigned_tasks {
		ids = append(ids, id)
	}
	return
}

// ResetAssignedTasks resets all changes to the "assigned_tasks" edge.
func (m *UserMutation) ResetAssignedTasks() {
	m.assigned_tasks = nil
	m.clearedassigned_tasks = false
	m.removedassigned_tasks = nil
}

// AddSentMessageIDs adds the "sent_messages" edge to the Message entity by ids.
func (m *UserMutation) AddSentMessageIDs(ids ...string) {
	if m.sent_messages == nil {
		m.sent_messages = make(map[string]struct{})
	}
	for i := range ids {
		m.sent_messages[ids[i]] = struct{}{}
	}
}

// ClearSentMessages clears the "sent_messages" edge to the Message entity.
func (m *UserMutation) ClearSentMessages() {
	m.clearedsent_messages = true
}

// SentMessagesCleared reports if the "sent_messages" edge to the Message entity was cleared.
func (m *UserMutation) SentMessagesCleared() bool {
	return m.clearedsent_messages
}

// RemoveSentMessageIDs removes the "sent_messages" edge to the Message entity by IDs.
func (m *UserMutation) RemoveSentMessageIDs(ids ...string) {
	if m.removedsent_messages == nil {
		m.removedsent_messages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sent_messages, ids[i])
		m.removedsent_messages[ids[i]] = struct{}{}
	}
}

// RemovedSentMessages returns the removed IDs of the "sent_messages" edge to the Message entity.
func (m *UserMutation) RemovedSentMessagesIDs() (ids []string) {
	for id := range m.removedsent_messages {
		ids = append(ids, id)
	}
	return
}

// SentMessagesIDs returns the "sent_messages" edge IDs in the mutation.
func (m *UserMutation) SentMessagesIDs() (ids []string) {
	for id := range m.sent_messages {
		ids = append(ids, id)
	}
	return
}

// ResetSentMessages resets all changes to the "sent_messages" edge.
func (m *UserMutation) ResetSentMessages() {
	m.sent_messages = nil
	m.clearedsent_messages = false
	m.removedsent_messages = nil
}

// AddReceivedMessageIDs adds the "received_messages" edge to the Message entity by ids.
func (m *UserMutation) AddReceivedMessageIDs(ids ...string) {
	if m.received_messages == nil {
		m.received_messages = make(map[string]struct{})
	}
	for i := range ids {
		m.received_messages[ids[i]] = struct{}{}
	}
}

// ClearReceivedMessages clears the "received_messages" edge to the Message entity.
func (m *UserMutation) ClearReceivedMessages() {
	m.clearedreceived_messages = true
}

// ReceivedMessagesCleared reports if the "received_messages" edge to the Message entity was cleared.
func (m *UserMutation) ReceivedMessagesCleared() bool {
	return m.clearedreceived_messages
}

// RemoveReceivedMessageIDs removes the "received_messages" edge to the Message entity by IDs.
func (m *UserMutation) RemoveReceivedMessageIDs(ids ...string) {
	if m.removedreceived_messages == nil {
		m.removedreceived_messages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.received_messages, ids[i])
		m.removedreceived_messages[ids[i]] = struct{}{}
	}
}

// RemovedReceivedMessages returns the removed IDs of the "received_messages" edge to the Message entity.
func (m *UserMutation) RemovedReceivedMessagesIDs() (ids []string) {
	for id := range m.removedreceived_messages {
		ids = append(ids, id)
	}
	return
}

// ReceivedMessagesIDs returns the "received_messages" edge IDs in the mutation.
func (m *UserMutation) ReceivedMessagesIDs() (ids []string) {
	for id := range m.received_messages {
		ids = append(ids, id)
	}
	return
}

// ResetReceivedMessages resets all changes to the "received_messages" edge.
func (m *UserMutation) ResetReceivedMessages() {
	m.received_messages = nil
	m.clearedreceived_messages = false
	m.removedreceived_messages = nil
}

// AddShiftIDs adds the "shifts" edge to the Shift entity by ids.
func (m *UserMutation) AddShiftIDs(ids ...string) {
	if m.shifts == nil {
		m.shifts = make(map[string]struct{})
	}
	for i := range ids {
		m.shifts[ids[i]] = struct{}{}
	}
}

// ClearShifts clears the "shifts" edge to the Shift entity.
func (m *UserMutation) ClearShifts() {
	m.clearedshifts = true
}

// ShiftsCleared reports if the "shifts" edge to the Shift entity was cleared.
func (m *UserMutation) ShiftsCleared() bool {
	return m.clearedshifts
}

// RemoveShiftIDs removes the "shifts" edge to the Shift entity by IDs.
func (m *UserMutation) RemoveShiftIDs(ids ...string) {
	if m.removedshifts == nil {
		m.removedshifts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.shifts, ids[i])
		m.removedshifts[ids[i]] = struct{}{}
	}
}

// RemovedShifts returns the removed IDs of the "shifts" edge to the Shift entity.
func (m *UserMutation) RemovedShiftsIDs() (ids []string) {
	for id := range m.removedshifts {
		ids = append(ids, id)
	}
	return
}

// ShiftsIDs returns the "shifts" edge IDs in the mutation.
func (m *UserMutation) ShiftsIDs() (ids []string) {
	for id := range m.shifts {
		ids = append(ids, id)
	}
	return
}

// ResetShifts resets all changes to the "shifts" edge.
func (m *UserMutation) ResetShifts() {
	m.shifts = nil
	m.clearedshifts = false
	m.removedshifts = nil
}

// AddSwapRequestIDs adds the "swap_requests" edge to the ShiftSwapRequest entity by ids.
func (m *UserMutation) AddSwapRequestIDs(ids ...string) {
	if m.swap_requests == nil {
		m.swap_requests = make(map[string]struct{})
	}
	for i := range ids {
		m.swap_requests[ids[i]] = struct{}{}
	}
}

// ClearSwapRequests clears the "swap_requests" edge to the ShiftSwapRequest entity.
func (m *UserMutation) ClearSwapRequests() {
	m.clearedswap_requests = true
}

// SwapRequestsCleared reports if the "swap_requests" edge to the ShiftSwapRequest entity was cleared.
func (m *UserMutation) SwapRequestsCleared() bool {
	return m.clearedswap_requests
}

// RemoveSwapRequestIDs removes the "swap_requests" edge to the ShiftSwapRequest entity by IDs.
func (m *UserMutation) RemoveSwapRequestIDs(ids ...string) {
	if m.removedswap_requests == nil {
		m.removedswap_requests = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.swap_requests, ids[i])
		m.removedswap_requests[ids[i]] = struct{}{}
	}
}

// RemovedSwapRequests returns the removed IDs of the "swap_requests" edge to the ShiftSwapRequest entity.
func (m *UserMutation) RemovedSwapRequestsIDs() (ids []string) {
	for id := range m.removedswap_requests {
		ids = append(ids, id)
	}
	return
}

// SwapRequestsIDs returns the "swap_requests" edge IDs in the mutation.
func (m *UserMutation) SwapRequestsIDs() (ids []string) {
	for id := range m.swap_requests {
		ids = append(ids, id)
	}
	return
}

// ResetSwapRequests resets all changes to the "swap_requests" edge.
func (m *UserMutation) ResetSwapRequests() {
	m.swap_requests = nil
	m.clearedswap_requests = false
	m.removedswap_requests = nil
}

// AddSwapTargetIDs adds the "swap_targets" edge to the ShiftSwapRequest entity by ids.
func (m *UserMutation) AddSwapTargetIDs(ids ...string) {
	if m.swap_targets == nil {
		m.swap_targets = make(map[string]struct{})
	}
	for i := range ids {
		m.swap_targets[ids[i]] = struct{}{}
	}
}

// ClearSwapTargets clears the "swap_targets" edge to the ShiftSwapRequest entity.
func (m *UserMutation) ClearSwapTargets() {
	m.clearedswap_targets = true
}

// SwapTargetsCleared reports if the "swap_targets" edge to the ShiftSwapRequest entity was cleared.
func (m *UserMutation) SwapTargetsCleared() bool {
	return m.clearedswap_targets
}

// RemoveSwapTargetIDs removes the "swap_targets" edge to the ShiftSwapRequest entity by IDs.
func (m *UserMutation) RemoveSwapTargetIDs(ids ...string) {
	if m.removedswap_targets == nil {
		m.removedswap_targets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.swap_targets, ids[i])
		m.removedswap_targets[ids[i]] = struct{}{}
	}
}

// RemovedSwapTargets returns the removed IDs of the "swap_targets" edge to the ShiftSwapRequest entity.
func (m *UserMutation) RemovedSwapTargetsIDs() (ids []string) {
	for id := range m.removedswap_targets {
		ids = append(ids, id)
	}
	return
}

// SwapTargetsIDs returns the "swap_targets" edge IDs in the mutation.
func (m *UserMutation) SwapTargetsIDs() (ids []string) {
	for id := range m.swap_targets {
		ids = append(ids, id)
	}
	return
}

// ResetSwapTargets resets all changes to the "swap_targets" edge.
func (m *UserMutation) ResetSwapTargets() {
	m.swap_targets = nil
	m.clearedswap_targets = false
	m.removedswap_targets = nil
}

// AddTimeOffRequestIDs adds the "time_off_requests" edge to the TimeOffRequest entity by ids.
func (m *UserMutation) AddTimeOffRequestIDs(ids ...string) {
	if m.time_off_requests == nil {
		m.time_off_requests = make(map[string]struct{})
	}
	for i := range ids {
		m.time_off_requests[ids[i]] = struct{}{}
	}
}

// ClearTimeOffRequests clears the "time_off_requests" edge to the TimeOffRequest entity.
func (m *UserMutation) ClearTimeOffRequests() {
	m.clearedtime_off_requests = true
}

// TimeOffRequestsCleared reports if the "time_off_requests" edge to the TimeOffRequest entity was cleared.
func (m *UserMutation) TimeOffRequestsCleared() bool {
	return m.clearedtime_off_requests
}

// RemoveTimeOffRequestIDs removes the "time_off_requests" edge to the TimeOffRequest entity by IDs.
func (m *UserMutation) RemoveTimeOffRequestIDs(ids ...string) {
	if m.removedtime_off_requests == nil {
		m.removedtime_off_requests = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.time_off_requests, ids[i])
		m.removedtime_off_requests[ids[i]] = struct{}{}
	}
}

// RemovedTimeOffRequests returns the removed IDs of the "time_off_requests" edge to the TimeOffRequest entity.
func (m *UserMutation) RemovedTimeOffRequestsIDs() (ids []string) {
	for id := range m.removedtime_off_requests {
		ids = append(ids, id)
	}
	return
}

// TimeOffRequestsIDs returns the "time_off_requests" edge IDs in the mutation.
func (m *UserMutation) TimeOffRequestsIDs() (ids []string) {
	for id := range m.time_off_requests {
		ids = append(ids, id)
	}
	return
}

// ResetTimeOffRequests resets all changes to the "time_off_requests" edge.
func (m *UserMutation) ResetTimeOffRequests() {
	m.time_off_requests = nil
	m.clearedtime_off_requests = false
	m.removedtime_off_requests = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.first_name != nil {
		fields = append(fields, user.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, user.FieldLastName)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.birth_date != nil {
		fields = append(fields, user.FieldBirthDate)
	}
	if m.enabled != nil {
		fields = append(fields, user.FieldEnabled)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldEmail:
		return m.Email()
	case user.FieldFirstName:
		return m.FirstName()
	case user.FieldLastName:
		return m.LastName()
	case user.FieldRole:
		return m.Role()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldBirthDate:
		return m.BirthDate()
	case user.FieldEnabled:
		return m.Enabled()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldFirstName:
		return m.OldFirstName(ctx)
	case user.FieldLastName:
		return m.OldLastName(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldBirthDate:
		return m.OldBirthDate(ctx)
	case user.FieldEnabled:
		return m.OldEnabled(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case user.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldBirthDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthDate(v)
		return nil
	case user.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldLastName) {
		fields = append(fields, user.FieldLastName)
	}
	if m.FieldCleared(user.FieldPasswordHash) {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.FieldCleared(user.FieldBirthDate) {
		fields = append(fields, user.FieldBirthDate)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldLastName:
		m.ClearLastName()
		return nil
	case user.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	case user.FieldBirthDate:
		m.ClearBirthDate()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldFirstName:
		m.ResetFirstName()
		return nil
	case user.FieldLastName:
		m.ResetLastName()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldBirthDate:
		m.ResetBirthDate()
		return nil
	case user.FieldEnabled:
		m.ResetEnabled()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 13)
	if m.company != nil {
		edges = append(edges, user.EdgeCompany)
	}
	if m.team != nil {
		edges = append(edges, user.EdgeTeam)
	}
	if m.notifications != nil {
		edges = append(edges, user.EdgeNotifications)
	}
	if m.preference != nil {
		edges = append(edges, user.EdgePreference)
	}
	if m.push_subscriptions != nil {
		edges = append(edges, user.EdgePushSubscriptions)
	}
	if m.created_tasks != nil {
		edges = append(edges, user.EdgeCreatedTasks)
	}
	if m.assigned_tasks != nil {
		edges = append(edges, user.EdgeAssignedTasks)
	}
	if m.sent_messages != nil {
		edges = append(edges, user.EdgeSentMessages)
	}
	if m.received_messages != nil {
		edges = append(edges, user.EdgeReceivedMessages)
	}
	if m.shifts != nil {
		edges = append(edges, user.EdgeShifts)
	}
	if m.swap_requests != nil {
		edges = append(edges, user.EdgeSwapRequests)
	}
	if m.swap_targets != nil {
		edges = append(edges, user.EdgeSwapTargets)
	}
	if m.time_off_requests != nil {
		edges = append(edges, user.EdgeTimeOffRequests)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeTeam:
		if id := m.team; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeNotifications:
		ids := make([]ent.Value, 0, len(m.notifications))
		for id := range m.notifications {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePreference:
		if id := m.preference; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgePushSubscriptions:
		ids := make([]ent.Value, 0, len(m.push_subscriptions))
		for id := range m.push_subscriptions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCreatedTasks:
		ids := make([]ent.Value, 0, len(m.created_tasks))
		for id := range m.created_tasks {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAssignedTasks:
		ids := make([]ent.Value, 0, len(m.assigned_tasks))
		for id := range m.assigned_tasks {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSentMessages:
		ids := make([]ent.Value, 0, len(m.sent_messages))
		for id := range m.sent_messages {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeReceivedMessages:
		ids := make([]ent.Value, 0, len(m.received_messages))
		for id := range m.received_messages {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeShifts:
		ids := make([]ent.Value, 0, len(m.shifts))
		for id := range m.shifts {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSwapRequests:
		ids := make([]ent.Value, 0, len(m.swap_requests))
		for id := range m.swap_requests {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSwapTargets:
		ids := make([]ent.Value, 0, len(m.swap_targets))
		for id := range m.swap_targets {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTimeOffRequests:
		ids := make([]ent.Value, 0, len(m.time_off_requests))
		for id := range m.time_off_requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 13)
	if m.removednotifications != nil {
		edges = append(edges, user.EdgeNotifications)
	}
	if m.removedpush_subscriptions != nil {
		edges = append(edges, user.EdgePushSubscriptions)
	}
	if m.removedcreated_tasks != nil {
		edges = append(edges, user.EdgeCreatedTasks)
	}
	if m.removedassigned_tasks != nil {
		edges = append(edges, user.EdgeAssignedTasks)
	}
	if m.removedsent_messages != nil {
		edges = append(edges, user.EdgeSentMessages)
	}
	if m.removedreceived_messages != nil {
		edges = append(edges, user.EdgeReceivedMessages)
	}
	if m.removedshifts != nil {
		edges = append(edges, user.EdgeShifts)
	}
	if m.removedswap_requests != nil {
		edges = append(edges, user.EdgeSwapRequests)
	}
	if m.removedswap_targets != nil {
		edges = append(edges, user.EdgeSwapTargets)
	}
	if m.removedtime_off_requests != nil {
		edges = append(edges, user.EdgeTimeOffRequests)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeNotifications:
		ids := make([]ent.Value, 0, len(m.removednotifications))
		for id := range m.removednotifications {
			ids = append(ids, id)
		}
		return ids
	case user.EdgePushSubscriptions:
		ids := make([]ent.Value, 0, len(m.removedpush_subscriptions))
		for id := range m.removedpush_subscriptions {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeCreatedTasks:
		ids := make([]ent.Value, 0, len(m.removedcreated_tasks))
		for id := range m.removedcreated_tasks {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAssignedTasks:
		ids := make([]ent.Value, 0, len(m.removedassigned_tasks))
		for id := range m.removedassigned_tasks {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSentMessages:
		ids := make([]ent.Value, 0, len(m.removedsent_messages))
		for id := range m.removedsent_messages {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeReceivedMessages:
		ids := make([]ent.Value, 0, len(m.removedreceived_messages))
		for id := range m.removedreceived_messages {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeShifts:
		ids := make([]ent.Value, 0, len(m.removedshifts))
		for id := range m.removedshifts {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSwapRequests:
		ids := make([]ent.Value, 0, len(m.removedswap_requests))
		for id := range m.removedswap_requests {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSwapTargets:
		ids := make([]ent.Value, 0, len(m.removedswap_targets))
		for id := range m.removedswap_targets {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTimeOffRequests:
		ids := make([]ent.Value, 0, len(m.removedtime_off_requests))
		for id := range m.removedtime_off_requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 13)
	if m.clearedcompany {
		edges = append(edges, user.EdgeCompany)
	}
	if m.clearedteam {
		edges = append(edges, user.EdgeTeam)
	}
	if m.clearednotifications {
		edges = append(edges, user.EdgeNotifications)
	}
	if m.clearedpreference {
		edges = append(edges, user.EdgePreference)
	}
	if m.clearedpush_subscriptions {
		edges = append(edges, user.EdgePushSubscriptions)
	}
	if m.clearedcreated_tasks {
		edges = append(edges, user.EdgeCreatedTasks)
	}
	if m.clearedassigned_tasks {
		edges = append(edges, user.EdgeAssignedTasks)
	}
	if m.clearedsent_messages {
		edges = append(edges, user.EdgeSentMessages)
	}
	if m.clearedreceived_messages {
		edges = append(edges, user.EdgeReceivedMessages)
	}
	if m.clearedshifts {
		edges = append(edges, user.EdgeShifts)
	}
	if m.clearedswap_requests {
		edges = append(edges, user.EdgeSwapRequests)
	}
	if m.clearedswap_targets {
		edges = append(edges, user.EdgeSwapTargets)
	}
	if m.clearedtime_off_requests {
		edges = append(edges, user.EdgeTimeOffRequests)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeCompany:
		return m.clearedcompany
	case user.EdgeTeam:
		return m.clearedteam
	case user.EdgeNotifications:
		return m.clearednotifications
	case user.EdgePreference:
		return m.clearedpreference
	case user.EdgePushSubscriptions:
		return m.clearedpush_subscriptions
	case user.EdgeCreatedTasks:
		return m.clearedcreated_tasks
	case user.EdgeAssignedTasks:
		return m.clearedassigned_tasks
	case user.EdgeSentMessages:
		return m.clearedsent_messages
	case user.EdgeReceivedMessages:
		return m.clearedreceived_messages
	case user.EdgeShifts:
		return m.clearedshifts
	case user.EdgeSwapRequests:
		return m.clearedswap_requests
	case user.EdgeSwapTargets:
		return m.clearedswap_targets
	case user.EdgeTimeOffRequests:
		return m.clearedtime_off_requests
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeCompany:
		m.ClearCompany()
		return nil
	case user.EdgeTeam:
		m.ClearTeam()
		return nil
	case user.EdgePreference:
		m.ClearPreference()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeCompany:
		m.ResetCompany()
		return nil
	case user.EdgeTeam:
		m.ResetTeam()
		return nil
	case user.EdgeNotifications:
		m.ResetNotifications()
		return nil
	case user.EdgePreference:
		m.ResetPreference()
		return nil
	case user.EdgePushSubscriptions:
		m.ResetPushSubscriptions()
		return nil
	case user.EdgeCreatedTasks:
		m.ResetCreatedTasks()
		return nil
	case user.EdgeAssignedTasks:
		m.ResetAssignedTasks()
		return nil
	case user.EdgeSentMessages:
		m.ResetSentMessages()
		return nil
	case user.EdgeReceivedMessages:
		m.ResetReceivedMessages()
		return nil
	case user.EdgeShifts:
		m.ResetShifts()
		return nil
	case user.EdgeSwapRequests:
		m.ResetSwapRequests()
		return nil
	case user.EdgeSwapTargets:
		m.ResetSwapTargets()
		return nil
	case user.EdgeTimeOffRequests:
		m.ResetTimeOffRequests()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
