package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType defines the type of domain event.
type EventType string

const (
	// Task Events
	EventTaskAssigned  EventType = "TASK_ASSIGNED"
	EventTaskCompleted EventType = "TASK_COMPLETED"
	EventTaskComment   EventType = "TASK_COMMENT"
	EventDeadlineDue   EventType = "DEADLINE_DUE"

	// Messaging Events
	EventMessageSent  EventType = "MESSAGE_SENT"
	EventMentionAdded EventType = "MENTION_ADDED"

	// Scheduling Events
	EventShiftAssigned      EventType = "SHIFT_ASSIGNED"
	EventShiftReminderDue   EventType = "SHIFT_REMINDER_DUE"
	EventShiftSwapRequested EventType = "SHIFT_SWAP_REQUESTED"
	EventShiftSwapResponded EventType = "SHIFT_SWAP_RESPONDED"

	// Time-Off Events
	EventTimeOffRequested EventType = "TIME_OFF_REQUESTED"
	EventTimeOffResponded EventType = "TIME_OFF_RESPONDED"

	// Reporting Events
	EventReportReady EventType = "REPORT_READY"
)

// DomainEvent represents an immutable domain event.
type DomainEvent struct {
	EventID       string    `json:"event_id"`
	EventType     EventType `json:"event_type"`
	AggregateType string    `json:"aggregate_type"`
	AggregateID   string    `json:"aggregate_id"`
	Payload       []byte    `json:"payload"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewEvent builds a DomainEvent with a fresh event ID and timestamp.
func NewEvent(eventType EventType, aggregateType, aggregateID, createdBy string, payload []byte) *DomainEvent {
	return &DomainEvent{
		EventID:       uuid.New().String(),
		EventType:     eventType,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Payload:       payload,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now().UTC(),
	}
}

// TaskPayload is the payload for task lifecycle events.
type TaskPayload struct {
	TaskID     string     `json:"task_id"`
	Title      string     `json:"title"`
	ActorID    string     `json:"actor_id"`
	ActorName  string     `json:"actor_name"`
	AssigneeID string     `json:"assignee_id"`
	CreatorID  string     `json:"creator_id,omitempty"`
	Comment    string     `json:"comment,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p TaskPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// MessagePayload is the payload for direct message and mention events.
type MessagePayload struct {
	MessageID   string `json:"message_id"`
	SenderID    string `json:"sender_id"`
	SenderName  string `json:"sender_name"`
	RecipientID string `json:"recipient_id"`
	Body        string `json:"body"`
	Context     string `json:"context,omitempty"` // e.g. room or thread name for mentions
}

// ToJSON converts payload to JSON bytes.
func (p MessagePayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// ShiftPayload is the payload for shift assignment and reminder events.
type ShiftPayload struct {
	ShiftID   string    `json:"shift_id"`
	UserID    string    `json:"user_id"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Position  string    `json:"position,omitempty"`
	ActorID   string    `json:"actor_id,omitempty"`
	ActorName string    `json:"actor_name,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p ShiftPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// SwapPayload is the payload for shift swap request/response events.
type SwapPayload struct {
	SwapID        string    `json:"swap_id"`
	ShiftID       string    `json:"shift_id"`
	RequesterID   string    `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	TargetID      string    `json:"target_id"`
	ResponderName string    `json:"responder_name,omitempty"`
	Status        string    `json:"status,omitempty"` // APPROVED / REJECTED on response
	ShiftStartsAt time.Time `json:"shift_starts_at"`
}

// ToJSON converts payload to JSON bytes.
func (p SwapPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// TimeOffPayload is the payload for time-off request/response events.
type TimeOffPayload struct {
	RequestID     string    `json:"request_id"`
	RequesterID   string    `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	ApproverID    string    `json:"approver_id,omitempty"`
	ApproverIDs   []string  `json:"approver_ids,omitempty"` // managers notified on request
	Status        string    `json:"status,omitempty"` // APPROVED / REJECTED on response
	StartsOn      time.Time `json:"starts_on"`
	EndsOn        time.Time `json:"ends_on"`
}

// ToJSON converts payload to JSON bytes.
func (p TimeOffPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// ReportPayload is the payload for report ready events.
type ReportPayload struct {
	ReportID    string `json:"report_id"`
	ReportName  string `json:"report_name"`
	RecipientID string `json:"recipient_id"`
	URL         string `json:"url,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p ReportPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}
