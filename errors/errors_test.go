package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindTypeMismatch,
				Path:   []string{"entries", "key"},
				GoType: "func()",
				Detail: "no natural order",
			},
			contains: []string{"[encode]", "type_mismatch", "entries.key", "func()", "no natural order"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindInvalidTag,
			},
			contains: []string{"[decode]", "invalid_tag"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindInvalidData,
				Detail: "truncated stream",
				Cause:  errors.New("unexpected EOF"),
			},
			contains: []string{"[decode]", "invalid_data", "truncated stream", "caused by", "unexpected EOF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseDecode, KindInvalidData, cause, "delegate decode failed")

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestError_Is(t *testing.T) {
	a := Unsupported(PhaseEncode, "mylib.FrozenList")
	b := &Error{Phase: PhaseEncode, Kind: KindUnsupportedType}
	c := &Error{Phase: PhaseDecode, Kind: KindUnsupportedType}
	d := &Error{Phase: PhaseEncode, Kind: KindInvalidTag}

	if !errors.Is(a, b) {
		t.Error("same phase and kind should match")
	}
	if errors.Is(a, c) {
		t.Error("different phase should not match")
	}
	if errors.Is(a, d) {
		t.Error("different kind should not match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseRegister, KindNotRegistered).
		Path("engine").
		GoType("collections.TreeSet").
		Value(42).
		Cause(cause).
		Detail("type %s has no handler", "TreeSet").
		Build()

	if err.Phase != PhaseRegister || err.Kind != KindNotRegistered {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Detail != "type TreeSet has no handler" {
		t.Errorf("unexpected detail: %q", err.Detail)
	}
	if err.Value != 42 {
		t.Errorf("unexpected value: %v", err.Value)
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be wrapped")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"Unsupported", Unsupported(PhaseEncode, "T"), KindUnsupportedType},
		{"InvalidTag", InvalidTag(PhaseDecode, 7, 6), KindInvalidTag},
		{"NotRegistered", NotRegistered(PhaseEncode, "no handler"), KindNotRegistered},
		{"TypeMismatch", TypeMismatch(PhaseDecode, "int", "collections.List"), KindTypeMismatch},
		{"InvalidData", InvalidData(PhaseDecode, "bad"), KindInvalidData},
		{"NilValue", NilValue(PhaseEncode, "nil delegate"), KindNilValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("kind: got %s, want %s", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestInvalidTagMessage(t *testing.T) {
	err := InvalidTag(PhaseDecode, 7, 6)
	if !strings.Contains(err.Error(), "tag 7 out of range (max 6)") {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if err.Value != uint32(7) {
		t.Errorf("value: got %v, want 7", err.Value)
	}
}
