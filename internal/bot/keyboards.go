package bot

import (
	"fmt"

	"github.com/retailops/shiftbot/internal/shifts"
	"github.com/retailops/shiftbot/pkg/chatapi"
	"github.com/retailops/shiftbot/pkg/db/models"
)

func adminMenuKeyboard() chatapi.Keyboard {
	return chatapi.Keyboard{
		{{Text: "Staff management", Data: actionAdminStaff}},
		{{Text: "Reports", Data: actionAdminReports}},
		{{Text: "Pay salary", Data: actionAdminPaySalary}},
		{{Text: "Issue warning", Data: actionAdminWarning}},
	}
}

func operatorMenuKeyboard() chatapi.Keyboard {
	return chatapi.Keyboard{
		{{Text: "Start shift", Data: actionOperatorStartShift}},
		{{Text: "Create order", Data: actionOperatorNewOrder}},
		{{Text: "Close shift", Data: actionOperatorCloseShift}},
		{{Text: "My stats", Data: actionOperatorStats}},
	}
}

func seniorMenuKeyboard() chatapi.Keyboard {
	return chatapi.Keyboard{
		{{Text: "Recent orders", Data: actionSeniorOrders}},
		{{Text: "Operator shifts", Data: actionSeniorShifts}},
		{{Text: "Close a shift", Data: actionSeniorCloseShift}},
	}
}

func staffMenuKeyboard() chatapi.Keyboard {
	return chatapi.Keyboard{
		{{Text: "Add operator", Data: actionAdminAddOp}},
		{{Text: "Add senior operator", Data: actionAdminAddSenior}},
		{{Text: "Deactivate staff", Data: actionAdminDeactivate}},
		{{Text: "List staff", Data: actionAdminListStaff}},
		{{Text: "Back", Data: actionAdminMenu}},
	}
}

func reportsMenuKeyboard() chatapi.Keyboard {
	return chatapi.Keyboard{
		{{Text: "Orders report", Data: actionReportOrders}},
		{{Text: "Shifts report", Data: actionReportShifts}},
		{{Text: "Employees report", Data: actionReportEmployees}},
		{{Text: "Back", Data: actionAdminMenu}},
	}
}

// accountPickKeyboard lists accounts as target buttons for a dynamic action,
// with a back button pointing at the given menu.
func accountPickKeyboard(accounts []models.Account, action, backAction string) chatapi.Keyboard {
	keyboard := make(chatapi.Keyboard, 0, len(accounts)+1)
	for _, account := range accounts {
		label := fmt.Sprintf("%s (%d)", account.FullName, account.ID)
		keyboard = append(keyboard, []chatapi.Button{{Text: label, Data: encodeCallback(action, account.ID)}})
	}
	keyboard = append(keyboard, []chatapi.Button{{Text: "Back", Data: backAction}})
	return keyboard
}

// openShiftPickKeyboard lists open shifts as close targets.
func openShiftPickKeyboard(rows []shifts.Row, backAction string) chatapi.Keyboard {
	keyboard := make(chatapi.Keyboard, 0, len(rows)+1)
	for _, row := range rows {
		label := fmt.Sprintf("Shift #%d - %s", row.ID, row.OperatorName)
		keyboard = append(keyboard, []chatapi.Button{{Text: label, Data: encodeCallback(actionCloseShift, row.ID)}})
	}
	keyboard = append(keyboard, []chatapi.Button{{Text: "Back", Data: backAction}})
	return keyboard
}
