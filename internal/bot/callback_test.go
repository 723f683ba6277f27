package bot

import "testing"

func TestParseCallbackStatic(t *testing.T) {
	callback, err := parseCallback(actionAdminReports)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if callback.Action != actionAdminReports || callback.TargetID != 0 {
		t.Fatalf("unexpected callback %+v", callback)
	}
}

func TestParseCallbackDynamic(t *testing.T) {
	callback, err := parseCallback("pay_salary:42")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if callback.Action != actionPaySalary || callback.TargetID != 42 {
		t.Fatalf("unexpected callback %+v", callback)
	}
}

func TestParseCallbackRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"pay_salary:",
		"pay_salary:abc",
		"pay_salary:0",
		"pay_salary:-3",
		"close_shift:9999999999999999999999",
		"admin_reports:5",
	}
	for _, data := range cases {
		if _, err := parseCallback(data); err == nil {
			t.Fatalf("expected rejection for %q", data)
		}
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	for _, action := range []string{actionPaySalary, actionWarn, actionDeactivate, actionCloseShift} {
		data := encodeCallback(action, 17)
		callback, err := parseCallback(data)
		if err != nil {
			t.Fatalf("round trip %q: %v", data, err)
		}
		if callback.Action != action || callback.TargetID != 17 {
			t.Fatalf("round trip %q: got %+v", data, callback)
		}
	}
}
