package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("orientation_length", nil); msg != "orientation must be a string of length 3" {
		t.Fatalf("unexpected english message: %q", msg)
	}

	SetLanguage("ja")
	if msg := T("orientation_length", nil); msg == "orientation must be a string of length 3" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Placeholders(t *testing.T) {
	got := T("unknown_space", map[string]string{"key": "MNI"})
	if got != `unknown predefined space "MNI"` {
		t.Fatalf("got %q", got)
	}
	got = T("shape_mismatch", map[string]string{"x": "(4, 5)", "y": "(4, 5)", "z": "(4, 5)", "image": "(5, 5)"})
	if got != "x, y, z shapes (4, 5), (4, 5), (4, 5) must match image data shape (5, 5)" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("got %q", got)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if got := T("required", nil); got != "X:required" {
		t.Fatalf("got %q", got)
	}
	SetTranslator(nil)
	if got := T("required", map[string]string{"field": "name"}); got != "name is required" {
		t.Fatalf("got %q", got)
	}
}
