package bot

import (
	"context"
	"fmt"

	"github.com/retailops/shiftbot/internal/reports"
	"github.com/retailops/shiftbot/pkg/db/models"
)

func (r *Router) handlePickPayTarget(ctx context.Context, upd Update) error {
	staff, err := r.accounts.ListStaff(ctx)
	if err != nil {
		return err
	}
	if len(staff) == 0 {
		return r.reply(ctx, upd.ChatID, "No employees registered", staffMenuKeyboard())
	}
	keyboard := accountPickKeyboard(staff, actionPaySalary, actionAdminMenu)
	return r.reply(ctx, upd.ChatID, "Select an employee to pay:", keyboard)
}

func (r *Router) handlePickWarnTarget(ctx context.Context, upd Update) error {
	staff, err := r.accounts.ListStaff(ctx)
	if err != nil {
		return err
	}
	if len(staff) == 0 {
		return r.reply(ctx, upd.ChatID, "No employees registered", staffMenuKeyboard())
	}
	keyboard := accountPickKeyboard(staff, actionWarn, actionAdminMenu)
	return r.reply(ctx, upd.ChatID, "Select an employee to warn:", keyboard)
}

func (r *Router) handlePickDeactivateTarget(ctx context.Context, upd Update) error {
	staff, err := r.accounts.ListStaff(ctx)
	if err != nil {
		return err
	}
	if len(staff) == 0 {
		return r.reply(ctx, upd.ChatID, "No employees registered", staffMenuKeyboard())
	}
	keyboard := accountPickKeyboard(staff, actionDeactivate, actionAdminStaff)
	return r.reply(ctx, upd.ChatID, "Select an employee to deactivate:", keyboard)
}

func (r *Router) handleAddStaffStart(ctx context.Context, upd Update, account *models.Account, flow string) error {
	r.sessions.Begin(account.ID, flow, "id", 0)
	if flow == flowAddSenior {
		return r.replyText(ctx, upd.ChatID, "Enter the new senior operator's account id:")
	}
	return r.replyText(ctx, upd.ChatID, "Enter the new operator's account id:")
}

func (r *Router) handlePaySalaryStart(ctx context.Context, upd Update, account *models.Account, targetID int64) error {
	if _, err := r.accounts.Get(ctx, targetID); err != nil {
		return err
	}
	r.sessions.Begin(account.ID, flowPaySalary, stepAmount, targetID)
	return r.replyText(ctx, upd.ChatID, "Enter the payment amount:")
}

func (r *Router) handleWarningStart(ctx context.Context, upd Update, account *models.Account, targetID int64) error {
	if _, err := r.accounts.Get(ctx, targetID); err != nil {
		return err
	}
	r.sessions.Begin(account.ID, flowWarning, "reason", targetID)
	return r.replyText(ctx, upd.ChatID, "Enter the warning reason:")
}

func (r *Router) handleDeactivate(ctx context.Context, upd Update, targetID int64) error {
	if err := r.accounts.Deactivate(ctx, targetID); err != nil {
		return err
	}
	text := fmt.Sprintf("Employee %d deactivated.", targetID)
	return r.reply(ctx, upd.ChatID, text, staffMenuKeyboard())
}

func (r *Router) handleListStaff(ctx context.Context, upd Update) error {
	staff, err := r.accounts.ListStaff(ctx)
	if err != nil {
		return err
	}
	allWarnings, err := r.warnings.ListAll(ctx)
	if err != nil {
		return err
	}
	text := reports.Employees(staff, allWarnings)
	return r.reply(ctx, upd.ChatID, text, staffMenuKeyboard())
}

func (r *Router) handleOrdersReport(ctx context.Context, upd Update) error {
	rows, err := r.orders.ListAll(ctx)
	if err != nil {
		return err
	}
	return r.reply(ctx, upd.ChatID, reports.Orders(rows), reportsMenuKeyboard())
}

func (r *Router) handleShiftsReport(ctx context.Context, upd Update) error {
	rows, err := r.shifts.ListAll(ctx)
	if err != nil {
		return err
	}
	return r.reply(ctx, upd.ChatID, reports.Shifts(rows), reportsMenuKeyboard())
}

func (r *Router) handleEmployeesReport(ctx context.Context, upd Update) error {
	staff, err := r.accounts.ListStaff(ctx)
	if err != nil {
		return err
	}
	allWarnings, err := r.warnings.ListAll(ctx)
	if err != nil {
		return err
	}
	text := reports.Employees(staff, allWarnings)
	return r.reply(ctx, upd.ChatID, text, reportsMenuKeyboard())
}
