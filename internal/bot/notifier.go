package bot

import (
	"context"

	"github.com/retailops/shiftbot/pkg/chatapi"
	"github.com/retailops/shiftbot/pkg/logger"
)

// Notifier pushes best-effort pings. Delivery failures are logged and
// swallowed; they never affect the write that triggered them, and one
// failed recipient never blocks the rest.
type Notifier struct {
	sender   Sender
	logger   *logger.Logger
	adminIDs []int64
}

func NewNotifier(sender Sender, logg *logger.Logger, adminIDs []int64) *Notifier {
	return &Notifier{sender: sender, logger: logg, adminIDs: adminIDs}
}

// NotifyAccount pings a single account.
func (n *Notifier) NotifyAccount(ctx context.Context, accountID int64, text string) {
	if n == nil || n.sender == nil {
		return
	}
	if err := n.sender.Send(ctx, chatapi.Message{ChatID: accountID, Text: text}); err != nil {
		ctx = n.logger.WithAccountID(ctx, accountID)
		n.logger.Warn(ctx, "notification delivery failed: "+err.Error())
	}
}

// NotifyAdmins fans the text out to every configured admin id.
func (n *Notifier) NotifyAdmins(ctx context.Context, text string) {
	if n == nil {
		return
	}
	for _, id := range n.adminIDs {
		n.NotifyAccount(ctx, id, text)
	}
}
