// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// ChatRoom is the predicate function for chatroom builders.
type ChatRoom func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// EmailTemplate is the predicate function for emailtemplate builders.
type EmailTemplate func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// NotificationPreference is the predicate function for notificationpreference builders.
type NotificationPreference func(*sql.Selector)

// PushSubscription is the predicate function for pushsubscription builders.
type PushSubscription func(*sql.Selector)

// Shift is the predicate function for shift builders.
type Shift func(*sql.Selector)

// ShiftSwapRequest is the predicate function for shiftswaprequest builders.
type ShiftSwapRequest func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// Team is the predicate function for team builders.
type Team func(*sql.Selector)

// TimeOffRequest is the predicate function for timeoffrequest builders.
type TimeOffRequest func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
