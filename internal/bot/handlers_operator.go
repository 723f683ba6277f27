package bot

import (
	"context"
	"fmt"

	"github.com/retailops/shiftbot/internal/reports"
	"github.com/retailops/shiftbot/pkg/db/models"
)

func (r *Router) handleStartShift(ctx context.Context, upd Update, account *models.Account) error {
	shift, err := r.shifts.Open(ctx, account.ID)
	if err != nil {
		return err
	}

	r.notifier.NotifyAdmins(ctx, fmt.Sprintf("%s opened shift #%d", account.FullName, shift.ID))

	text := fmt.Sprintf("Shift #%d started.", shift.ID)
	return r.reply(ctx, upd.ChatID, text, operatorMenuKeyboard())
}

func (r *Router) handleOrderStart(ctx context.Context, upd Update, account *models.Account) error {
	shift, err := r.shifts.GetOpen(ctx, account.ID)
	if err != nil {
		return err
	}

	r.sessions.Begin(account.ID, flowOrder, stepCustomer, shift.ID)
	return r.replyText(ctx, upd.ChatID, "Enter the customer's phone:")
}

func (r *Router) handleCloseOwnShift(ctx context.Context, upd Update, account *models.Account) error {
	row, err := r.shifts.CloseOwn(ctx, account.ID)
	if err != nil {
		return err
	}
	shiftOrders, err := r.orders.ListByShift(ctx, row.ID)
	if err != nil {
		return err
	}

	text := reports.ShiftCloseSummary(row, shiftOrders)
	return r.reply(ctx, upd.ChatID, text, operatorMenuKeyboard())
}

func (r *Router) handleMyStats(ctx context.Context, upd Update, account *models.Account) error {
	shiftRows, err := r.shifts.ListByOperator(ctx, account.ID)
	if err != nil {
		return err
	}
	warningRows, err := r.warnings.ListByAccount(ctx, account.ID)
	if err != nil {
		return err
	}
	payments, err := r.payroll.ListByAccount(ctx, account.ID)
	if err != nil {
		return err
	}

	text := reports.PersonalStats(account.FullName, shiftRows, warningRows, payments)
	return r.reply(ctx, upd.ChatID, text, operatorMenuKeyboard())
}
