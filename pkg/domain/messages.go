package domain

type TextMessage struct {
	ChatID           int64
	ReplyToMessageID int
	Text             string
	// HTML marks Text as Telegram HTML markup. Plain messages are
	// delivered verbatim and never reformatted by the transport.
	HTML     bool
	Keyboard *Keyboard
}

type ImageMessage struct {
	ChatID           int64
	ReplyToMessageID int
	Caption          string
	Bytes            []byte
}

type DocumentMessage struct {
	ChatID int64
	Name   string
	Bytes  []byte
}

type EditMessage struct {
	ChatID    int64
	MessageID int
	Text      string
	HTML      bool
	Keyboard  *Keyboard
}

type CallbackMessage struct {
	CallbackQueryID string
}

// Keyboard describes an inline keyboard attached to an outbound text
// message. Each button carries opaque callback data.
type Keyboard struct {
	Buttons []KeyboardButton
}

type KeyboardButton struct {
	Label string
	Data  string
}
