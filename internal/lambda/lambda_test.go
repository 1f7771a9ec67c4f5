package lambda

import "testing"

func TestLengthIdApplyId(t *testing.T) {
	// each identity is body(0) + 1 = 1; the application adds 1 + 1 + 1
	if got := Size(IdApplyId[uint64](Length{})); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestLengthTerms(t *testing.T) {
	tests := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"identity", Size(Identity[uint64, Unit](Length{})), 1},
		{"twice", Size(Twice[uint64, Unit](Length{})), 4},
		{"twice-id", Size(Appl(Length{}, Twice[uint64, Unit](Length{}), Identity[uint64, Unit](Length{}))), 6},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, tt.got)
		}
	}
}

func TestEvalIdApplyId(t *testing.T) {
	got := Call(IdApplyId[any](Eval{}), Unit{})
	if got != (Unit{}) {
		t.Errorf("expected Unit, got %v", got)
	}
}

func TestEvalTwice(t *testing.T) {
	f := Eval{}
	applied := Appl(f, Twice[any, Unit](f), Identity[any, Unit](f))
	if got := Call(applied, Unit{}); got != (Unit{}) {
		t.Errorf("expected Unit, got %v", got)
	}
}

func TestEvalApplyNonFunctionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when applying a non-function")
		}
	}()
	Eval{}.Appl(Unit{}, Unit{})
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"identity", Print(Identity[Doc, Unit](Printer{})), `\x0. x0`},
		{"id-id", Print(IdApplyId[Doc](Printer{})), `(\x0. x0) (\x0. x0)`},
		{"twice", Print(Twice[Doc, Unit](Printer{})), `\x0. \x1. (x0) ((x0) (x1))`},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, tt.got)
		}
	}
}
