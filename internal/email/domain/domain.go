package domain

import "context"

// Message is one outgoing notification. Text is the plain body; HTML, when
// non-empty, is attached as the alternative part.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender is a pluggable email sending interface. Implementations open and
// close whatever transport they need per call; one call maps to one delivery
// attempt.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
