package bot

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/retailops/shiftbot/pkg/enums"
)

func TestOrderFlowCollectsFieldsAndWrites(t *testing.T) {
	op := operatorAccount()
	f := newRouterFixture(t, op)
	ctx := context.Background()

	if err := f.router.Dispatch(ctx, press(op, actionOperatorStartShift)); err != nil {
		t.Fatalf("open shift: %v", err)
	}
	if err := f.router.Dispatch(ctx, press(op, actionOperatorNewOrder)); err != nil {
		t.Fatalf("enter flow: %v", err)
	}

	for _, step := range []string{"5551234", "Toyota", "Wax", "49.99"} {
		if err := f.router.Dispatch(ctx, message(op, step)); err != nil {
			t.Fatalf("step %q: %v", step, err)
		}
	}

	if len(f.orders.created) != 1 {
		t.Fatalf("expected one order, got %d", len(f.orders.created))
	}
	created := f.orders.created[0]
	if created.CustomerPhone != "5551234" || created.Vehicle != "Toyota" || created.Product != "Wax" {
		t.Fatalf("unexpected order %+v", created)
	}
	if !created.Amount.Equal(decimal.RequireFromString("49.99")) {
		t.Fatalf("unexpected amount %s", created.Amount)
	}
	if f.router.sessions.Get(op.ID) != nil {
		t.Fatal("session must clear after the final write")
	}
}

func TestOrderFlowBadAmountRepromptsKeepingFields(t *testing.T) {
	op := operatorAccount()
	f := newRouterFixture(t, op)
	ctx := context.Background()

	if err := f.router.Dispatch(ctx, press(op, actionOperatorStartShift)); err != nil {
		t.Fatalf("open shift: %v", err)
	}
	if err := f.router.Dispatch(ctx, press(op, actionOperatorNewOrder)); err != nil {
		t.Fatalf("enter flow: %v", err)
	}
	for _, step := range []string{"5551234", "Toyota", "Wax"} {
		if err := f.router.Dispatch(ctx, message(op, step)); err != nil {
			t.Fatalf("step %q: %v", step, err)
		}
	}

	for _, bad := range []string{"abc", "-5", "0"} {
		if err := f.router.Dispatch(ctx, message(op, bad)); err != nil {
			t.Fatalf("bad amount %q: %v", bad, err)
		}
		if got := f.sender.last(t).Text; got != "Invalid amount format. Enter a positive number:" {
			t.Fatalf("bad amount %q: unexpected reply %q", bad, got)
		}
		if len(f.orders.created) != 0 {
			t.Fatalf("bad amount %q must not write", bad)
		}
	}

	// Earlier fields survive every failed attempt.
	session := f.router.sessions.Get(op.ID)
	if session == nil || session.Step != stepAmount {
		t.Fatalf("session must stay on the amount step, got %+v", session)
	}
	if session.Fields[stepCustomer] != "5551234" || session.Fields[stepVehicle] != "Toyota" || session.Fields[stepProduct] != "Wax" {
		t.Fatalf("collected fields lost: %+v", session.Fields)
	}

	if err := f.router.Dispatch(ctx, message(op, "49.99")); err != nil {
		t.Fatalf("valid amount: %v", err)
	}
	if len(f.orders.created) != 1 {
		t.Fatal("valid amount must complete the flow")
	}
}

func TestAddOperatorFlowRepromptsOnNonInteger(t *testing.T) {
	admin := adminAccount()
	f := newRouterFixture(t, admin)
	ctx := context.Background()

	if err := f.router.Dispatch(ctx, press(admin, actionAdminAddOp)); err != nil {
		t.Fatalf("enter flow: %v", err)
	}
	if err := f.router.Dispatch(ctx, message(admin, "not-a-number")); err != nil {
		t.Fatalf("bad id: %v", err)
	}
	if got := f.sender.last(t).Text; got != "Invalid id. Enter a numeric account id:" {
		t.Fatalf("unexpected reply %q", got)
	}
	if f.router.sessions.Get(admin.ID) == nil {
		t.Fatal("session must persist across a failed parse")
	}

	if err := f.router.Dispatch(ctx, message(admin, "777")); err != nil {
		t.Fatalf("valid id: %v", err)
	}
	added, err := f.accounts.Get(ctx, 777)
	if err != nil {
		t.Fatalf("account not created: %v", err)
	}
	if added.Role != enums.RoleOperator || added.FullName != "New operator" {
		t.Fatalf("unexpected account %+v", added)
	}
}

func TestAddSeniorFlowAssignsSeniorRole(t *testing.T) {
	admin := adminAccount()
	f := newRouterFixture(t, admin)
	ctx := context.Background()

	if err := f.router.Dispatch(ctx, press(admin, actionAdminAddSenior)); err != nil {
		t.Fatalf("enter flow: %v", err)
	}
	if err := f.router.Dispatch(ctx, message(admin, "888")); err != nil {
		t.Fatalf("id step: %v", err)
	}

	added, err := f.accounts.Get(ctx, 888)
	if err != nil {
		t.Fatalf("account not created: %v", err)
	}
	if added.Role != enums.RoleSeniorOperator {
		t.Fatalf("unexpected role %s", added.Role)
	}
}

func TestFreeTextWithoutSessionShowsRoleKeyboard(t *testing.T) {
	op := operatorAccount()
	f := newRouterFixture(t, op)

	if err := f.router.Dispatch(context.Background(), message(op, "hello?")); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	msg := f.sender.last(t)
	if len(msg.Keyboard) == 0 {
		t.Fatal("stray text must answer with the role keyboard")
	}
	if msg.Keyboard[0][0].Data != actionOperatorStartShift {
		t.Fatalf("unexpected keyboard %+v", msg.Keyboard)
	}
}
