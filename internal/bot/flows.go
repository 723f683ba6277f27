package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/retailops/shiftbot/internal/orders"
	"github.com/retailops/shiftbot/internal/payroll"
	"github.com/retailops/shiftbot/internal/warnings"
	"github.com/retailops/shiftbot/pkg/db/models"
	"github.com/retailops/shiftbot/pkg/enums"
	pkgerrors "github.com/retailops/shiftbot/pkg/errors"
	"github.com/shopspring/decimal"
)

// handleFlowInput feeds a free-text reply into the account's active flow.
// Parse failures re-prompt the current step without advancing; completed
// flows clear the session.
func (r *Router) handleFlowInput(ctx context.Context, upd Update, account *models.Account, session *Session) error {
	switch session.Flow {
	case flowAddOperator:
		return r.completeAddStaff(ctx, upd, account, enums.RoleOperator)
	case flowAddSenior:
		return r.completeAddStaff(ctx, upd, account, enums.RoleSeniorOperator)
	case flowWarning:
		return r.completeWarning(ctx, upd, account, session)
	case flowPaySalary:
		return r.completePaySalary(ctx, upd, account, session)
	case flowOrder:
		return r.advanceOrderFlow(ctx, upd, account, session)
	default:
		r.sessions.Clear(account.ID)
		text, keyboard := r.menuFor(account.Role)
		return r.reply(ctx, upd.ChatID, text, keyboard)
	}
}

func (r *Router) completeAddStaff(ctx context.Context, upd Update, account *models.Account, role enums.Role) error {
	id, err := strconv.ParseInt(strings.TrimSpace(upd.Text), 10, 64)
	if err != nil {
		return r.replyText(ctx, upd.ChatID, "Invalid id. Enter a numeric account id:")
	}

	added, err := r.accounts.AddStaff(ctx, id, role)
	if err != nil {
		r.sessions.Clear(account.ID)
		return r.flowFailure(ctx, upd.ChatID, err)
	}
	r.sessions.Clear(account.ID)

	text := fmt.Sprintf("%s added with id %d.", added.FullName, added.ID)
	return r.reply(ctx, upd.ChatID, text, staffMenuKeyboard())
}

func (r *Router) completeWarning(ctx context.Context, upd Update, account *models.Account, session *Session) error {
	reason := strings.TrimSpace(upd.Text)
	if reason == "" {
		return r.replyText(ctx, upd.ChatID, "Reason cannot be empty. Enter the warning reason:")
	}

	warning, err := r.warnings.Issue(ctx, warnings.IssueParams{
		AccountID: session.TargetID,
		Reason:    reason,
		IssuedBy:  account.ID,
	})
	if err != nil {
		r.sessions.Clear(account.ID)
		return r.flowFailure(ctx, upd.ChatID, err)
	}
	r.sessions.Clear(account.ID)

	r.notifier.NotifyAccount(ctx, warning.AccountID, "You received a warning: "+warning.Reason)

	text := fmt.Sprintf("Warning recorded for employee %d.", warning.AccountID)
	return r.reply(ctx, upd.ChatID, text, adminMenuKeyboard())
}

func (r *Router) completePaySalary(ctx context.Context, upd Update, account *models.Account, session *Session) error {
	amount, err := decimal.NewFromString(strings.TrimSpace(upd.Text))
	if err != nil || !amount.IsPositive() {
		return r.replyText(ctx, upd.ChatID, "Invalid amount format. Enter a positive number:")
	}

	payment, err := r.payroll.Pay(ctx, payroll.PayParams{
		AccountID: session.TargetID,
		Amount:    amount,
		PaidBy:    account.ID,
	})
	if err != nil {
		r.sessions.Clear(account.ID)
		return r.flowFailure(ctx, upd.ChatID, err)
	}
	r.sessions.Clear(account.ID)

	r.notifier.NotifyAccount(ctx, payment.AccountID, "You received a salary payment: "+payment.Amount.String())

	text := fmt.Sprintf("Salary of %s paid to employee %d.", payment.Amount.String(), payment.AccountID)
	return r.reply(ctx, upd.ChatID, text, adminMenuKeyboard())
}

// advanceOrderFlow walks customer -> vehicle -> product -> amount. Only the
// final step writes; an unparsable amount re-prompts that step alone and
// every earlier field stays put.
func (r *Router) advanceOrderFlow(ctx context.Context, upd Update, account *models.Account, session *Session) error {
	text := strings.TrimSpace(upd.Text)

	switch session.Step {
	case stepCustomer:
		if text == "" {
			return r.replyText(ctx, upd.ChatID, "Enter the customer's phone:")
		}
		session.Fields[stepCustomer] = text
		session.Step = stepVehicle
		return r.replyText(ctx, upd.ChatID, "Enter the vehicle:")
	case stepVehicle:
		if text == "" {
			return r.replyText(ctx, upd.ChatID, "Enter the vehicle:")
		}
		session.Fields[stepVehicle] = text
		session.Step = stepProduct
		return r.replyText(ctx, upd.ChatID, "Enter the product:")
	case stepProduct:
		if text == "" {
			return r.replyText(ctx, upd.ChatID, "Enter the product:")
		}
		session.Fields[stepProduct] = text
		session.Step = stepAmount
		return r.replyText(ctx, upd.ChatID, "Enter the amount:")
	case stepAmount:
		amount, err := decimal.NewFromString(text)
		if err != nil || !amount.IsPositive() {
			return r.replyText(ctx, upd.ChatID, "Invalid amount format. Enter a positive number:")
		}
		return r.completeOrder(ctx, upd, account, session, amount)
	default:
		r.sessions.Clear(account.ID)
		return r.replyText(ctx, upd.ChatID, "Order entry cancelled.")
	}
}

func (r *Router) completeOrder(ctx context.Context, upd Update, account *models.Account, session *Session, amount decimal.Decimal) error {
	order, err := r.orders.Create(ctx, orders.CreateParams{
		ShiftID:       session.TargetID,
		CustomerPhone: session.Fields[stepCustomer],
		Vehicle:       session.Fields[stepVehicle],
		Product:       session.Fields[stepProduct],
		Amount:        amount,
	})
	if err != nil {
		r.sessions.Clear(account.ID)
		return r.flowFailure(ctx, upd.ChatID, err)
	}
	r.sessions.Clear(account.ID)

	r.notifier.NotifyAdmins(ctx, fmt.Sprintf(
		"New order #%d by %s: %s for %s",
		order.ID, account.FullName, order.Product, order.Amount.String(),
	))

	text := fmt.Sprintf("Order #%d recorded: %s for %s.", order.ID, order.Product, order.Amount.String())
	return r.reply(ctx, upd.ChatID, text, operatorMenuKeyboard())
}

// flowFailure surfaces recoverable store/service errors as the fixed chat
// message; anything else propagates to the dispatch log.
func (r *Router) flowFailure(ctx context.Context, chatID int64, err error) error {
	if coded := pkgerrors.As(err); coded != nil && pkgerrors.MetadataFor(coded.Code()).Recoverable {
		return r.replyText(ctx, chatID, pkgerrors.UserText(err))
	}
	return err
}
