package domain

import "time"

type NotificationType string

const (
	NotificationTypeDeposit    NotificationType = "deposit"
	NotificationTypeWithdrawal NotificationType = "withdrawal"
	NotificationTypeProfit     NotificationType = "profit"
	NotificationTypeGeneral    NotificationType = "general"
)

type NotificationStatus string

// Notifications only ever move unread -> read from this client.
const (
	NotificationStatusUnread NotificationStatus = "unread"
	NotificationStatusRead   NotificationStatus = "read"
)

type Notification struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId,omitempty"`
	User      *UserSummary       `json:"user,omitempty"`
	Message   string             `json:"message"`
	Type      NotificationType   `json:"type"`
	Status    NotificationStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ValidNotificationType reports whether t is one of the wire types the
// backend accepts for an admin-sent notification.
func ValidNotificationType(t string) bool {
	switch NotificationType(t) {
	case NotificationTypeDeposit, NotificationTypeWithdrawal, NotificationTypeProfit, NotificationTypeGeneral:
		return true
	}
	return false
}
