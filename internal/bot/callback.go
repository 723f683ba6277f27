package bot

import (
	"fmt"
	"strconv"
	"strings"
)

// Static callback actions, matched exactly.
const (
	actionAdminMenu       = "admin_back_to_main"
	actionAdminStaff      = "admin_manage_staff"
	actionAdminReports    = "admin_reports"
	actionAdminPaySalary  = "admin_pay_salary"
	actionAdminWarning    = "admin_give_warning"
	actionAdminAddOp      = "admin_add_operator"
	actionAdminAddSenior  = "admin_add_senior"
	actionAdminDeactivate = "admin_deactivate_staff"
	actionAdminListStaff  = "admin_list_staff"

	actionReportOrders    = "report_orders"
	actionReportShifts    = "report_shifts"
	actionReportEmployees = "report_employees"

	actionOperatorStartShift = "operator_start_shift"
	actionOperatorNewOrder   = "operator_create_order"
	actionOperatorCloseShift = "operator_close_shift"
	actionOperatorStats      = "operator_my_stats"

	actionSeniorOrders     = "senior_view_orders"
	actionSeniorShifts     = "senior_view_shifts"
	actionSeniorCloseShift = "senior_close_shift"
)

// Dynamic callback actions, carrying a target entity id.
const (
	actionPaySalary  = "pay_salary"
	actionWarn       = "give_warning"
	actionDeactivate = "deactivate"
	actionCloseShift = "close_shift"
)

var dynamicActions = map[string]struct{}{
	actionPaySalary:  {},
	actionWarn:       {},
	actionDeactivate: {},
	actionCloseShift: {},
}

// Callback is a decoded button press: an action tag plus, for dynamic
// actions, the target entity id.
type Callback struct {
	Action   string
	TargetID int64
}

// encodeCallback renders a dynamic action as wire callback data.
func encodeCallback(action string, id int64) string {
	return fmt.Sprintf("%s:%d", action, id)
}

// parseCallback decodes wire callback data. Static actions pass through
// unchanged; dynamic actions require a well-formed positive numeric suffix,
// anything else is rejected before a handler can run.
func parseCallback(data string) (Callback, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return Callback{}, fmt.Errorf("empty callback data")
	}

	action, suffix, found := strings.Cut(data, ":")
	if !found {
		return Callback{Action: action}, nil
	}

	if _, ok := dynamicActions[action]; !ok {
		return Callback{}, fmt.Errorf("unknown dynamic action %q", action)
	}
	id, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || id <= 0 {
		return Callback{}, fmt.Errorf("malformed callback id %q", suffix)
	}
	return Callback{Action: action, TargetID: id}, nil
}
