package lerr

import (
	"bytes"
	"testing"
)

func TestResult(t *testing.T) {

	e := New(404, ResourceNotFound, "function not found: nope")

	if e.Error() != "error ResourceNotFoundException(function not found: nope)" {
		t.Errorf("unexpected error string %q", e.Error())
	}

	var buf bytes.Buffer
	if err := e.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	expected := `{"Code":"ResourceNotFoundException","Message":"function not found: nope"}` + "\n"
	if buf.String() != expected {
		t.Errorf("Expects %q, got %q", expected, buf.String())
	}
}
