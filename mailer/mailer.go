package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/7248-om/gshock12/logger"
	"gopkg.in/gomail.v2"
)

const DefaultFromName = "Robusta Admin"

var (
	ErrMailerUnavailable = errors.New("email sender is not configured")
	ErrNoRecipients      = errors.New("no recipients provided")
)

// Message is one outgoing email; recipients go in BCC so they never see each other.
type Message struct {
	FromName  string
	FromEmail string
	To        []string
	BCC       []string
	Subject   string
	Text      string
	HTML      string
}

type Transport interface {
	Send(m *Message) error
}

// SMTPTransport delivers through an SMTP relay with gomail.
type SMTPTransport struct {
	dialer *gomail.Dialer
}

func NewSMTPTransport(host string, port int, username, password string) (*SMTPTransport, error) {
	if username == "" || password == "" {
		return nil, ErrMailerUnavailable
	}
	return &SMTPTransport{dialer: gomail.NewDialer(host, port, username, password)}, nil
}

func (t *SMTPTransport) Send(m *Message) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.FromEmail, m.FromName))
	if len(m.To) > 0 {
		msg.SetHeader("To", m.To...)
	}
	if len(m.BCC) > 0 {
		msg.SetHeader("Bcc", m.BCC...)
	}
	msg.SetHeader("Subject", m.Subject)
	if m.Text != "" {
		msg.SetBody("text/plain", m.Text)
		if m.HTML != "" {
			msg.AddAlternative("text/html", m.HTML)
		}
	} else {
		msg.SetBody("text/html", m.HTML)
	}
	return t.dialer.DialAndSend(msg)
}

// Broadcaster sends one message to many recipients in fixed-size BCC batches.
type Broadcaster struct {
	transport Transport
	sender    string
	batchSize int
}

func NewBroadcaster(transport Transport, senderEmail string, batchSize int) *Broadcaster {
	if batchSize <= 0 {
		batchSize = 50
	}
	return &Broadcaster{transport: transport, sender: senderEmail, batchSize: batchSize}
}

// Broadcast returns the number of recipients handed to the transport. It stops
// at the first failed batch; earlier batches stay sent.
func (b *Broadcaster) Broadcast(ctx context.Context, recipients []string, fromName, subject, text string) (int, error) {
	if b == nil || b.transport == nil {
		return 0, ErrMailerUnavailable
	}
	recipients = cleanRecipients(recipients)
	if len(recipients) == 0 {
		return 0, ErrNoRecipients
	}
	if strings.TrimSpace(fromName) == "" {
		fromName = DefaultFromName
	}

	log := logger.WithComponent("mailer")
	sent := 0
	for start := 0; start < len(recipients); start += b.batchSize {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		end := start + b.batchSize
		if end > len(recipients) {
			end = len(recipients)
		}
		batch := recipients[start:end]

		err := b.transport.Send(&Message{
			FromName:  fromName,
			FromEmail: b.sender,
			BCC:       batch,
			Subject:   subject,
			Text:      text,
		})
		if err != nil {
			return sent, fmt.Errorf("send batch %d: %w", start/b.batchSize+1, err)
		}
		sent += len(batch)
		log.Infof("✅ Email batch sent to %d recipients", len(batch))
	}
	return sent, nil
}

func cleanRecipients(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, r := range in {
		r = strings.TrimSpace(r)
		key := strings.ToLower(r)
		if r == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}
