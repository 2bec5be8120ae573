package service

import (
	"context"
)

// Email is one outgoing message.
type Email struct {
	To        string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

// Mailer sends transactional email.
type Mailer interface {
	Send(ctx context.Context, email *Email) error
}
