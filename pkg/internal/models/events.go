package models

import jsoniter "github.com/json-iterator/go"

const (
	CommandMessageNew    = "messages.new"
	CommandMessageReact  = "messages.react"
	CommandStatusTyping  = "status.typing"
	CommandChatsRead     = "chats.read"
	CommandSubscribe     = "containers.subscribe"
	CommandUnsubscribe   = "containers.unsubscribe"
	CommandSendText      = "messages.send.text"
	CommandTypingPing    = "status.typing.ping"
	CommandError         = "error"
	CommandSystemChanges = "system.changes"
)

// UnifiedCommand is the envelope of everything that crosses the gateway,
// both directions.
type UnifiedCommand struct {
	Action  string `json:"w"`
	Message string `json:"m,omitempty"`
	Payload any    `json:"p,omitempty"`
}

func (v UnifiedCommand) Marshal() []byte {
	data, _ := jsoniter.Marshal(v)
	return data
}

func UnifiedCommandFromError(err error) UnifiedCommand {
	return UnifiedCommand{
		Action:  CommandError,
		Message: err.Error(),
	}
}
