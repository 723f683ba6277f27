// Package bot turns incoming chat updates into store operations: role
// gating, keyboard navigation, multi-step input flows, and best-effort
// notifications.
package bot

// UpdateKind discriminates the payloads the chat platform delivers.
type UpdateKind string

const (
	UpdateKindMessage  UpdateKind = "message"
	UpdateKindCallback UpdateKind = "callback"
)

// From identifies the account behind an update.
type From struct {
	ID       int64  `json:"id" validate:"required"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// Update is one inbound interaction: either a text message (commands and
// flow replies) or a button press carrying its callback data.
type Update struct {
	Kind         UpdateKind `json:"kind" validate:"required,oneof=message callback"`
	ChatID       int64      `json:"chat_id" validate:"required"`
	From         From       `json:"from"`
	Text         string     `json:"text"`
	CallbackData string     `json:"callback_data"`
}
