package spriteforge

import "testing"

func TestDiagnosticErrorOmitsAbsentFields(t *testing.T) {
	d := Diagnostic{Frame: -1, OpIndex: -1, Message: "boom"}
	want := "Error: boom"
	if got := d.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDiagnosticErrorNoTrailingSeparator(t *testing.T) {
	d := Diagnostic{Frame: 2, OpIndex: -1, Message: "bad op"}
	want := "Frame: 2\n  Error: bad op"
	if got := d.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDiagnosticErrorAllFieldsJoinedOnce(t *testing.T) {
	d := Diagnostic{File: "a.json", Frame: 1, OpIndex: 3, Message: "bad arg"}
	want := "File: a.json | Frame: 1 | Op #3\n  Error: bad arg"
	if got := d.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
