package poller

import "context"

// ConversationResolver maps a message or chat notification to the
// conversation partner the UI should open. RelatedID is the message or
// chat room id; the resolver performs the secondary lookup.
type ConversationResolver func(ctx context.Context, n Notification) (partnerID string, err error)

// ResolveLink returns the app route a notification should open.
// Message and chat entries need the partner id from the resolver;
// task and shift entries link directly through their related id.
func ResolveLink(ctx context.Context, n Notification, resolve ConversationResolver) (string, error) {
	switch n.Type {
	case "MESSAGE", "CHAT", "MENTION":
		if resolve == nil {
			return "/messages", nil
		}
		partnerID, err := resolve(ctx, n)
		if err != nil {
			return "", err
		}
		if partnerID == "" {
			return "/messages", nil
		}
		return "/messages?user=" + partnerID, nil
	case "TASK_ASSIGNED", "TASK_COMPLETED", "TASK_COMMENT", "DEADLINE":
		if n.RelatedID == "" {
			return "/tasks", nil
		}
		return "/tasks?task=" + n.RelatedID, nil
	case "SHIFT_ASSIGNED", "SHIFT_SWAP":
		if n.RelatedID == "" {
			return "/shifts", nil
		}
		return "/shifts?swap=" + n.RelatedID, nil
	case "TIME_OFF":
		return "/time-off", nil
	default:
		return "/notifications", nil
	}
}
