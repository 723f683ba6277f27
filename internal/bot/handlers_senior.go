package bot

import (
	"context"

	"github.com/retailops/shiftbot/internal/reports"
)

// Senior views cover the ten most recent rows; the full listings stay on
// the admin report surface.
const seniorViewLimit = 10

func (r *Router) handleRecentOrders(ctx context.Context, upd Update) error {
	rows, err := r.orders.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(rows) > seniorViewLimit {
		rows = rows[:seniorViewLimit]
	}
	return r.reply(ctx, upd.ChatID, reports.Orders(rows), seniorMenuKeyboard())
}

func (r *Router) handleRecentShifts(ctx context.Context, upd Update) error {
	rows, err := r.shifts.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(rows) > seniorViewLimit {
		rows = rows[:seniorViewLimit]
	}
	return r.reply(ctx, upd.ChatID, reports.Shifts(rows), seniorMenuKeyboard())
}

func (r *Router) handlePickShiftToClose(ctx context.Context, upd Update) error {
	open, err := r.shifts.ListOpen(ctx)
	if err != nil {
		return err
	}
	if len(open) == 0 {
		return r.reply(ctx, upd.ChatID, "No open shifts", seniorMenuKeyboard())
	}
	keyboard := openShiftPickKeyboard(open, actionSeniorShifts)
	return r.reply(ctx, upd.ChatID, "Select a shift to close:", keyboard)
}

func (r *Router) handleCloseShift(ctx context.Context, upd Update, shiftID int64) error {
	row, err := r.shifts.Close(ctx, shiftID)
	if err != nil {
		return err
	}
	shiftOrders, err := r.orders.ListByShift(ctx, row.ID)
	if err != nil {
		return err
	}

	r.notifier.NotifyAccount(ctx, row.OperatorID, "Your shift was closed by a senior operator.")

	text := reports.ShiftCloseSummary(row, shiftOrders)
	return r.reply(ctx, upd.ChatID, text, seniorMenuKeyboard())
}
