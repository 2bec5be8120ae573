package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"smartfit/config"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"

	"github.com/sendgrid/rest"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent     []*sgmail.SGMailV3
	response *rest.Response
	err      error
}

func (f *fakeSender) SendWithContext(_ context.Context, email *sgmail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, email)

	return f.response, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSendGridMailer_Send(t *testing.T) {
	client := &fakeSender{response: &rest.Response{StatusCode: 202}}
	mailer := newSendGridMailer(client, "SmartFit", "no-reply@smartfit.app", discardLogger())

	err := mailer.Send(context.Background(), &service.Email{
		To:        "c@x.com",
		Subject:   "Order update",
		PlainText: "Your order <1> shipped",
	})
	require.NoError(t, err)
	require.Len(t, client.sent, 1)

	msg := client.sent[0]
	assert.Equal(t, "no-reply@smartfit.app", msg.From.Address)
	assert.Equal(t, "Order update", msg.Subject)
	require.Len(t, msg.Content, 2)
	assert.Equal(t, "<pre>Your order &lt;1&gt; shipped</pre>", msg.Content[1].Value)
}

func TestSendGridMailer_Errors(t *testing.T) {
	rejected := &fakeSender{response: &rest.Response{StatusCode: 401, Body: "bad key"}}
	err := newSendGridMailer(rejected, "", "f@x.com", discardLogger()).Send(context.Background(), &service.Email{To: "c@x.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")

	failing := &fakeSender{err: errors.New("dial tcp")}
	err = newSendGridMailer(failing, "", "f@x.com", discardLogger()).Send(context.Background(), &service.Email{To: "c@x.com"})
	assert.ErrorContains(t, err, "dial tcp")

	err = newSendGridMailer(failing, "", "f@x.com", discardLogger()).Send(context.Background(), &service.Email{})
	assert.Error(t, err)
	assert.Len(t, failing.sent, 1)
}

func TestNewMailer(t *testing.T) {
	mailer, err := NewMailer(MailerParams{Config: &config.Config{Mail: &config.MailConfig{Provider: "log"}}, Logger: discardLogger()})
	require.NoError(t, err)
	assert.NoError(t, mailer.Send(context.Background(), &service.Email{To: "a@x.com"}))

	_, err = NewMailer(MailerParams{Config: &config.Config{Mail: &config.MailConfig{Provider: "sendgrid"}}, Logger: discardLogger()})
	assert.Error(t, err)

	_, err = NewMailer(MailerParams{Config: &config.Config{Mail: &config.MailConfig{Provider: "pigeon"}}, Logger: discardLogger()})
	assert.Error(t, err)
}
