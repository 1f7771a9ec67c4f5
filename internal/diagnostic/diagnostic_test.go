package diagnostic

import "testing"

func TestDiagnosticsEmpty(t *testing.T) {
	d := New()
	if d.HasErrors() {
		t.Error("expected no errors")
	}
	if d.Format("prog") != "" {
		t.Errorf("expected empty format, got %q", d.Format("prog"))
	}
}

func TestDiagnosticsFormat(t *testing.T) {
	d := New()
	d.ErrorWithHint("c", "identifier bl declared more than once", "use --naming sequential")
	d.Warningf("", "program has %d nodes", 7)

	if !d.HasErrors() {
		t.Error("expected errors")
	}
	if len(d.Errors()) != 1 || d.Count() != 2 || len(d.All()) != 2 {
		t.Errorf("unexpected counts: errors=%d all=%d", len(d.Errors()), d.Count())
	}

	want := "error[arith:c]: identifier bl declared more than once\n  hint: use --naming sequential\nwarning[arith]: program has 7 nodes"
	if got := d.Format("arith"); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestSeverityString(t *testing.T) {
	tests := map[Severity]string{Error: "error", Warning: "warning", Info: "info", Severity(9): "unknown"}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("expected %q, got %q", want, s.String())
		}
	}
}
