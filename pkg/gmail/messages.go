package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/mail"
	"strings"
	"time"

	gm "google.golang.org/api/gmail/v1"
)

// ListRecent returns the newest inbox messages, newest first.
func (c *Client) ListRecent(ctx context.Context, limit int) ([]Message, error) {
	return c.list(ctx, "", limit)
}

// ListFrom returns the newest inbox messages whose sender matches an
// address or display name.
func (c *Client) ListFrom(ctx context.Context, sender string, limit int) ([]Message, error) {
	return c.list(ctx, fmt.Sprintf("from:(%s)", sender), limit)
}

// LatestFrom returns the newest message from sender, or nil when there is none.
func (c *Client) LatestFrom(ctx context.Context, sender string) (*Message, error) {
	msgs, err := c.ListFrom(ctx, sender, 1)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return nil, nil
	}
	return &msgs[0], nil
}

func (c *Client) list(ctx context.Context, query string, limit int) ([]Message, error) {
	if limit <= 0 {
		return []Message{}, nil
	}

	call := c.service.Users.Messages.List(c.userID).
		LabelIds(inboxLabel).
		MaxResults(int64(limit)).
		Context(ctx)
	if query != "" {
		call = call.Q(query)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	out := make([]Message, 0, len(resp.Messages))
	for _, ref := range resp.Messages {
		full, err := c.service.Users.Messages.Get(c.userID, ref.Id).Format("full").Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to get message %s: %w", ref.Id, err)
		}
		out = append(out, toMessage(full))
	}
	return out, nil
}

func toMessage(m *gm.Message) Message {
	msg := Message{
		ID:       m.Id,
		Provider: ProviderGmail,
	}
	if m.Payload == nil {
		return msg
	}

	for _, h := range m.Payload.Headers {
		switch strings.ToLower(h.Name) {
		case "from":
			msg.From = h.Value
		case "to":
			msg.To = h.Value
		case "subject":
			msg.Subject = h.Value
		case "date":
			if t, err := mail.ParseDate(h.Value); err == nil {
				msg.Date = t
			}
		}
	}
	if msg.Date.IsZero() && m.InternalDate > 0 {
		msg.Date = time.UnixMilli(m.InternalDate)
	}

	msg.Body = plainText(m.Payload)
	return msg
}

// plainText returns the first text/plain part that is not an attachment.
func plainText(p *gm.MessagePart) string {
	if p == nil {
		return ""
	}
	if p.MimeType == "text/plain" && p.Filename == "" && p.Body != nil && p.Body.Data != "" {
		data, err := base64.URLEncoding.DecodeString(p.Body.Data)
		if err != nil {
			data, err = base64.RawURLEncoding.DecodeString(p.Body.Data)
		}
		if err == nil {
			return string(data)
		}
	}
	for _, part := range p.Parts {
		if body := plainText(part); body != "" {
			return body
		}
	}
	return ""
}
