package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/retailops/shiftbot/internal/accounts"
	"github.com/retailops/shiftbot/internal/orders"
	"github.com/retailops/shiftbot/internal/payroll"
	"github.com/retailops/shiftbot/internal/reports"
	"github.com/retailops/shiftbot/internal/shifts"
	"github.com/retailops/shiftbot/internal/warnings"
	"github.com/retailops/shiftbot/pkg/chatapi"
	"github.com/retailops/shiftbot/pkg/config"
	"github.com/retailops/shiftbot/pkg/db/models"
	"github.com/retailops/shiftbot/pkg/enums"
	pkgerrors "github.com/retailops/shiftbot/pkg/errors"
	"github.com/retailops/shiftbot/pkg/logger"
	"github.com/retailops/shiftbot/pkg/metrics"
)

const denialText = "Access denied."

const (
	outcomeOK       = "ok"
	outcomeDenied   = "denied"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// Router maps incoming updates to handlers. The actor's role is read from
// the store on every dispatch; knowing a callback identifier grants nothing.
type Router struct {
	accounts accounts.Service
	warnings warnings.Service
	shifts   shifts.Service
	orders   orders.Service
	payroll  payroll.Service

	sessions     *SessionStore
	sender       Sender
	notifier     *Notifier
	logger       *logger.Logger
	metrics      *metrics.UpdateMetrics
	botCfg       config.BotConfig
	messageLimit int
}

// RouterParams carries the router's dependencies.
type RouterParams struct {
	Accounts accounts.Service
	Warnings warnings.Service
	Shifts   shifts.Service
	Orders   orders.Service
	Payroll  payroll.Service

	Sender       Sender
	Notifier     *Notifier
	Logger       *logger.Logger
	Metrics      *metrics.UpdateMetrics
	BotConfig    config.BotConfig
	MessageLimit int
}

// NewRouter validates dependencies and returns a dispatch-ready router.
func NewRouter(params RouterParams) (*Router, error) {
	switch {
	case params.Accounts == nil:
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "accounts service required")
	case params.Warnings == nil:
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "warnings service required")
	case params.Shifts == nil:
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "shifts service required")
	case params.Orders == nil:
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "orders service required")
	case params.Payroll == nil:
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "payroll service required")
	case params.Sender == nil:
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "sender required")
	case params.Logger == nil:
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}

	limit := params.MessageLimit
	if limit <= 0 {
		limit = reports.TransportMessageLimit
	}

	return &Router{
		accounts:     params.Accounts,
		warnings:     params.Warnings,
		shifts:       params.Shifts,
		orders:       params.Orders,
		payroll:      params.Payroll,
		sessions:     NewSessionStore(),
		sender:       params.Sender,
		notifier:     params.Notifier,
		logger:       params.Logger,
		metrics:      params.Metrics,
		botCfg:       params.BotConfig,
		messageLimit: limit,
	}, nil
}

// Dispatch routes one update to completion. Store-level failures terminate
// this interaction only; the returned error is for the caller's log.
func (r *Router) Dispatch(ctx context.Context, upd Update) error {
	start := time.Now()
	kind := string(upd.Kind)
	defer func() {
		r.metrics.ObserveDuration(kind, time.Since(start))
	}()

	ctx = r.logger.WithChatID(ctx, upd.ChatID)
	ctx = r.logger.WithAccountID(ctx, upd.From.ID)

	var (
		outcome string
		err     error
	)
	switch upd.Kind {
	case UpdateKindMessage:
		outcome, err = r.dispatchMessage(ctx, upd)
	case UpdateKindCallback:
		outcome, err = r.dispatchCallback(ctx, upd)
	default:
		r.metrics.IncHandled(kind, outcomeRejected)
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown update kind %q", upd.Kind))
	}
	if err != nil {
		r.metrics.IncHandled(kind, outcomeError)
		r.logger.Error(ctx, "update handling failed", err)
		return err
	}
	r.metrics.IncHandled(kind, outcome)
	return nil
}

func (r *Router) dispatchMessage(ctx context.Context, upd Update) (string, error) {
	switch upd.Text {
	case "/start":
		return outcomeOK, r.handleStart(ctx, upd)
	case "/admin":
		account, err := r.actor(ctx, upd.From.ID)
		if err != nil || account.Role != enums.RoleAdmin {
			return outcomeDenied, r.replyText(ctx, upd.ChatID, denialText)
		}
		return outcomeOK, r.reply(ctx, upd.ChatID, "Admin panel", adminMenuKeyboard())
	}

	account, err := r.actor(ctx, upd.From.ID)
	if err != nil {
		return outcomeOK, r.handleStart(ctx, upd)
	}
	if session := r.sessions.Get(account.ID); session != nil {
		return outcomeOK, r.handleFlowInput(ctx, upd, account, session)
	}

	text, keyboard := r.menuFor(account.Role)
	return outcomeOK, r.reply(ctx, upd.ChatID, text, keyboard)
}

func (r *Router) dispatchCallback(ctx context.Context, upd Update) (string, error) {
	callback, err := parseCallback(upd.CallbackData)
	if err != nil {
		r.logger.Warn(ctx, "rejected callback: "+err.Error())
		return outcomeRejected, r.replyText(ctx, upd.ChatID, denialText)
	}

	account, err := r.actor(ctx, upd.From.ID)
	if err != nil {
		return outcomeDenied, r.replyText(ctx, upd.ChatID, denialText)
	}
	ctx = r.logger.WithActorRole(ctx, account.Role.String())

	if !r.allowed(account.Role, callback.Action) {
		return outcomeDenied, r.replyText(ctx, upd.ChatID, denialText)
	}

	if err := r.route(ctx, upd, account, callback); err != nil {
		if coded := pkgerrors.As(err); coded != nil && pkgerrors.MetadataFor(coded.Code()).Recoverable {
			return outcomeOK, r.replyText(ctx, upd.ChatID, pkgerrors.UserText(err))
		}
		return "", err
	}
	return outcomeOK, nil
}

// actor reads the account behind the update from the store.
func (r *Router) actor(ctx context.Context, accountID int64) (*models.Account, error) {
	return r.accounts.Get(ctx, accountID)
}

// allowed gates every callback action by the freshly-read role.
func (r *Router) allowed(role enums.Role, action string) bool {
	switch action {
	case actionAdminMenu, actionAdminStaff, actionAdminReports,
		actionAdminPaySalary, actionAdminWarning, actionAdminAddOp,
		actionAdminAddSenior, actionAdminDeactivate, actionAdminListStaff,
		actionReportOrders, actionReportShifts, actionReportEmployees,
		actionPaySalary, actionWarn, actionDeactivate:
		return role == enums.RoleAdmin
	case actionOperatorStartShift, actionOperatorNewOrder,
		actionOperatorCloseShift, actionOperatorStats:
		return role == enums.RoleOperator
	case actionSeniorOrders, actionSeniorShifts,
		actionSeniorCloseShift, actionCloseShift:
		return role == enums.RoleSeniorOperator
	default:
		return false
	}
}

func (r *Router) route(ctx context.Context, upd Update, account *models.Account, callback Callback) error {
	switch callback.Action {
	case actionAdminMenu:
		return r.reply(ctx, upd.ChatID, "Admin panel", adminMenuKeyboard())
	case actionAdminStaff:
		return r.reply(ctx, upd.ChatID, "Staff management", staffMenuKeyboard())
	case actionAdminReports:
		return r.reply(ctx, upd.ChatID, "Reports", reportsMenuKeyboard())
	case actionAdminPaySalary:
		return r.handlePickPayTarget(ctx, upd)
	case actionAdminWarning:
		return r.handlePickWarnTarget(ctx, upd)
	case actionAdminAddOp:
		return r.handleAddStaffStart(ctx, upd, account, flowAddOperator)
	case actionAdminAddSenior:
		return r.handleAddStaffStart(ctx, upd, account, flowAddSenior)
	case actionAdminDeactivate:
		return r.handlePickDeactivateTarget(ctx, upd)
	case actionAdminListStaff:
		return r.handleListStaff(ctx, upd)
	case actionReportOrders:
		return r.handleOrdersReport(ctx, upd)
	case actionReportShifts:
		return r.handleShiftsReport(ctx, upd)
	case actionReportEmployees:
		return r.handleEmployeesReport(ctx, upd)
	case actionPaySalary:
		return r.handlePaySalaryStart(ctx, upd, account, callback.TargetID)
	case actionWarn:
		return r.handleWarningStart(ctx, upd, account, callback.TargetID)
	case actionDeactivate:
		return r.handleDeactivate(ctx, upd, callback.TargetID)
	case actionOperatorStartShift:
		return r.handleStartShift(ctx, upd, account)
	case actionOperatorNewOrder:
		return r.handleOrderStart(ctx, upd, account)
	case actionOperatorCloseShift:
		return r.handleCloseOwnShift(ctx, upd, account)
	case actionOperatorStats:
		return r.handleMyStats(ctx, upd, account)
	case actionSeniorOrders:
		return r.handleRecentOrders(ctx, upd)
	case actionSeniorShifts:
		return r.handleRecentShifts(ctx, upd)
	case actionSeniorCloseShift:
		return r.handlePickShiftToClose(ctx, upd)
	case actionCloseShift:
		return r.handleCloseShift(ctx, upd, callback.TargetID)
	default:
		return r.replyText(ctx, upd.ChatID, denialText)
	}
}

func (r *Router) handleStart(ctx context.Context, upd Update) error {
	account, err := r.accounts.Bootstrap(ctx, accounts.BootstrapParams{
		ID:       upd.From.ID,
		Username: upd.From.Username,
		FullName: upd.From.FullName,
		Admin:    r.botCfg.IsAdminID(upd.From.ID),
	})
	if err != nil {
		return err
	}

	text, keyboard := r.menuFor(account.Role)
	greeting := fmt.Sprintf("Hello, %s!\n%s", account.FullName, text)
	return r.reply(ctx, upd.ChatID, greeting, keyboard)
}

func (r *Router) menuFor(role enums.Role) (string, chatapi.Keyboard) {
	switch role {
	case enums.RoleAdmin:
		return "Admin panel", adminMenuKeyboard()
	case enums.RoleSeniorOperator:
		return "Senior operator panel", seniorMenuKeyboard()
	default:
		return "Operator panel", operatorMenuKeyboard()
	}
}
