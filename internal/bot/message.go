package bot

import "strings"

// CommandPrefix marks platform-level commands such as /start.
const CommandPrefix = "/"

// Message is one inbound message as the router sees it. Text is nil for
// non-text messages (photos, stickers, contacts); an empty string is still text.
type Message struct {
	SenderID int64
	Text     *string
}

func NewTextMessage(senderID int64, text string) Message {
	return Message{SenderID: senderID, Text: &text}
}

func (m Message) HasText() bool {
	return m.Text != nil
}

func (m Message) IsCommand() bool {
	return m.Text != nil && strings.HasPrefix(*m.Text, CommandPrefix)
}

// Keyboard is a reply keyboard given as rows of button labels.
type Keyboard struct {
	Rows   [][]string
	Resize bool
}

// Reply is a single outgoing message. The router never looks inside it.
type Reply struct {
	Text      string
	ParseMode string
	Keyboard  *Keyboard
}

// Transition is a session change requested by a handler.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionAwait
)

type Result struct {
	Reply      Reply
	Transition Transition
}

// Handler maps a message to a reply and an optional transition. Handlers
// must not touch shared state; the router applies the transition.
type Handler func(Message) Result
