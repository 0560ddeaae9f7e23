// Package entity contains the core business objects of the project.
package entity

// PushPayload is the payload carried by a push or foreground message.
// Provider payloads nest title/body under Notification; provider-agnostic
// pushes may put them at the top level instead.
type PushPayload struct {
	Notification *NotificationFields `json:"notification,omitempty"`
	Title        string              `json:"title,omitempty"`
	Body         string              `json:"body,omitempty"`
	Tag          string              `json:"tag,omitempty"`
	Data         map[string]string   `json:"data,omitempty"`
}

// NotificationFields is the nested notification block of a provider payload.
type NotificationFields struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// NotificationAction is a button attached to a presented notification.
type NotificationAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
	Icon   string `json:"icon,omitempty"`
}

// PresentOptions describes how a notification is displayed. Tag acts as a
// replacement key: presenting a second notification with the same tag replaces
// the first (platform behavior, not managed here).
type PresentOptions struct {
	Body               string               `json:"body,omitempty"`
	Icon               string               `json:"icon,omitempty"`
	Badge              string               `json:"badge,omitempty"`
	Tag                string               `json:"tag,omitempty"`
	Data               map[string]string    `json:"data,omitempty"`
	RequireInteraction bool                 `json:"require_interaction"`
	Silent             bool                 `json:"silent"`
	Vibrate            []int                `json:"vibrate,omitempty"`
	Actions            []NotificationAction `json:"actions,omitempty"`
}

// PresentedNotification is a notification as shown to the user.
type PresentedNotification struct {
	Title   string         `json:"title"`
	Options PresentOptions `json:"options"`
}

// ClickEvent is delivered when the user interacts with a presented
// notification. Action is empty for the default (body) click.
type ClickEvent struct {
	Action       string                `json:"action,omitempty"`
	Notification PresentedNotification `json:"notification"`
}

// CloseEvent is delivered when a notification is dismissed without a click.
type CloseEvent struct {
	Notification PresentedNotification `json:"notification"`
}
