package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := MissingCompileStep("fast-hash")
	msg := err.Error()

	for _, want := range []string{"[load]", "missing_compile_step", `"fast-hash"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestErrorCause(t *testing.T) {
	cause := fmt.Errorf("bad json")
	err := Wrap(PhaseValidate, KindShape, cause, "decode compiled definition")

	if !stderrors.Is(err, cause) {
		t.Error("Unwrap chain lost the cause")
	}
	if !strings.Contains(err.Error(), "caused by: bad json") {
		t.Errorf("message %q missing cause", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := FieldMissing("x", "code")

	if !stderrors.Is(err, &Error{Phase: PhaseValidate, Kind: KindFieldMissing}) {
		t.Error("Is failed for matching phase and kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseLoad, Kind: KindFieldMissing}) {
		t.Error("Is matched a different phase")
	}
}

func TestIsMissingCompileStep(t *testing.T) {
	if !IsMissingCompileStep(MissingCompileStep("x")) {
		t.Error("constructor not recognized")
	}
	if IsMissingCompileStep(FieldMissing("x", "code")) {
		t.Error("unrelated error recognized")
	}
	if IsMissingCompileStep(nil) {
		t.Error("nil recognized")
	}
	if IsMissingCompileStep(fmt.Errorf("plain")) {
		t.Error("plain error recognized")
	}
}
