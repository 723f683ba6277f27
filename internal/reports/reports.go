// Package reports renders store result sets into plain-text documents for
// the chat surface. Every function is a pure transform: the same input list
// always yields byte-identical output.
package reports

import (
	"fmt"
	"strings"

	"github.com/retailops/shiftbot/internal/orders"
	"github.com/retailops/shiftbot/internal/shifts"
	"github.com/retailops/shiftbot/pkg/db/models"
	"github.com/retailops/shiftbot/pkg/enums"
	"github.com/shopspring/decimal"
)

const (
	ordersReportCap = 50
	shiftsReportCap = 20

	criticalWarningCount = 5
	elevatedWarningCount = 3

	timeLayout = "2006-01-02 15:04"
	divider    = "------------------------------"
)

// Orders renders the full order listing, truncated to the newest 50 rows,
// with the rendered rows' aggregate amount and the overall count appended.
func Orders(rows []orders.Row) string {
	if len(rows) == 0 {
		return "ORDERS REPORT\n\nNo orders recorded"
	}

	var b strings.Builder
	b.WriteString("ORDERS REPORT\n\n")

	total := decimal.Zero
	for _, row := range capRows(rows, ordersReportCap) {
		fmt.Fprintf(&b, "#%d\n", row.ID)
		fmt.Fprintf(&b, "Operator: %s\n", displayName(row.OperatorName))
		fmt.Fprintf(&b, "Customer: %s\n", row.CustomerPhone)
		fmt.Fprintf(&b, "Vehicle: %s\n", row.Vehicle)
		fmt.Fprintf(&b, "Product: %s\n", row.Product)
		fmt.Fprintf(&b, "Amount: %s\n", row.Amount.String())
		fmt.Fprintf(&b, "Date: %s\n", row.CreatedAt.UTC().Format(timeLayout))
		b.WriteString(divider + "\n")
		total = total.Add(row.Amount)
	}

	fmt.Fprintf(&b, "\nTOTAL AMOUNT: %s\n", total.String())
	fmt.Fprintf(&b, "TOTAL ORDERS: %d", len(rows))
	return b.String()
}

// Shifts renders the shift listing, truncated to the newest 20 rows.
func Shifts(rows []shifts.Row) string {
	if len(rows) == 0 {
		return "SHIFTS REPORT\n\nNo shifts recorded"
	}

	var b strings.Builder
	b.WriteString("SHIFTS REPORT\n\n")

	for _, row := range capRows(rows, shiftsReportCap) {
		fmt.Fprintf(&b, "#%d\n", row.ID)
		fmt.Fprintf(&b, "Operator: %s\n", displayName(row.OperatorName))
		fmt.Fprintf(&b, "Status: %s\n", shiftStatusLabel(row.Status))
		fmt.Fprintf(&b, "Orders: %d\n", row.TotalOrders)
		fmt.Fprintf(&b, "Amount: %s\n", row.TotalAmount.String())
		fmt.Fprintf(&b, "Started: %s\n", row.StartedAt.UTC().Format(timeLayout))
		if row.EndedAt != nil {
			fmt.Fprintf(&b, "Ended: %s\n", row.EndedAt.UTC().Format(timeLayout))
		}
		b.WriteString(divider + "\n")
	}

	return b.String()
}

// Employees renders the staff roster with a per-account warning count and a
// status band. Banding is presentation only; it never gates anything.
func Employees(accounts []models.Account, warnings []models.Warning) string {
	if len(accounts) == 0 {
		return "EMPLOYEES REPORT\n\nNo employees registered"
	}

	counts := make(map[int64]int, len(accounts))
	for _, warning := range warnings {
		counts[warning.AccountID]++
	}

	var b strings.Builder
	b.WriteString("EMPLOYEES REPORT\n\n")

	for _, account := range accounts {
		count := counts[account.ID]
		fmt.Fprintf(&b, "%s\n", displayName(account.FullName))
		fmt.Fprintf(&b, "ID: %d\n", account.ID)
		fmt.Fprintf(&b, "Role: %s\n", account.Role)
		fmt.Fprintf(&b, "Warnings: %d\n", count)
		fmt.Fprintf(&b, "Status: %s\n", warningBand(count))
		b.WriteString(divider + "\n")
	}

	return b.String()
}

// ShiftCloseSummary renders the end-of-shift recap: totals plus the first
// ten orders and a remainder count.
func ShiftCloseSummary(shift *shifts.Row, shiftOrders []models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shift #%d closed.\n", shift.ID)
	fmt.Fprintf(&b, "Orders: %d\n", len(shiftOrders))
	fmt.Fprintf(&b, "Total amount: %s\n\n", shift.TotalAmount.String())
	b.WriteString("Order details:\n")

	shown := shiftOrders
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, order := range shown {
		fmt.Fprintf(&b, "- %s - %s (%s)\n", order.Product, order.Amount.String(), order.CustomerPhone)
	}
	if rest := len(shiftOrders) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "... and %d more orders\n", rest)
	}
	return b.String()
}

// PersonalStats renders an operator's own counters with their most recent
// warnings and last payout.
func PersonalStats(name string, shiftRows []shifts.Row, warningRows []models.Warning, payments []models.SalaryPayment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Stats for %s\n\n", displayName(name))
	fmt.Fprintf(&b, "Shifts: %d\n", len(shiftRows))
	fmt.Fprintf(&b, "Warnings: %d\n", len(warningRows))
	fmt.Fprintf(&b, "Salary payments: %d\n", len(payments))

	if len(warningRows) > 0 {
		b.WriteString("\nRecent warnings:\n")
		shown := warningRows
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for _, warning := range shown {
			fmt.Fprintf(&b, "- %s (%s)\n", warning.Reason, warning.Severity)
		}
	}

	if len(payments) > 0 {
		fmt.Fprintf(&b, "\nLast payment: %s for %s - %s\n",
			payments[0].Amount.String(),
			payments[0].PeriodStart.UTC().Format("2006-01-02"),
			payments[0].PeriodEnd.UTC().Format("2006-01-02"))
	}
	return b.String()
}

func capRows[T any](rows []T, limit int) []T {
	if len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

func displayName(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}

func shiftStatusLabel(status enums.ShiftStatus) string {
	if status == enums.ShiftStatusOpen {
		return "Open"
	}
	return "Closed"
}

func warningBand(count int) string {
	switch {
	case count >= criticalWarningCount:
		return "Critical"
	case count >= elevatedWarningCount:
		return "Elevated"
	default:
		return "Normal"
	}
}
