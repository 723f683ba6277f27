package bot

import (
	"context"

	"github.com/retailops/shiftbot/internal/reports"
	"github.com/retailops/shiftbot/pkg/chatapi"
)

// Sender delivers a single outbound message to the chat platform.
type Sender interface {
	Send(ctx context.Context, msg chatapi.Message) error
}

// reply splits text at the transport limit and delivers the chunks in
// order, attaching the keyboard to the final chunk only.
func (r *Router) reply(ctx context.Context, chatID int64, text string, keyboard chatapi.Keyboard) error {
	chunks := reports.Chunk(text, r.messageLimit)
	for i, chunk := range chunks {
		msg := chatapi.Message{ChatID: chatID, Text: chunk}
		if i == len(chunks)-1 {
			msg.Keyboard = keyboard
		}
		if err := r.sender.Send(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) replyText(ctx context.Context, chatID int64, text string) error {
	return r.reply(ctx, chatID, text, nil)
}
