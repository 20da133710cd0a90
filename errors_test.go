package anatloc_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	anatloc "github.com/catalystneuro/ndx-anatomical-localization"
)

// TestErrorModel_AsIssuesThroughWrapping checks that Issues survive %w
// wrapping and that the summary names the path.
func TestErrorModel_AsIssuesThroughWrapping(t *testing.T) {
	_, err := anatloc.NewSpace(anatloc.SpaceConfig{Name: "s", SpaceName: "s", Orientation: "RXS"})
	wrapped := fmt.Errorf("build space: %w", err)

	iss, ok := anatloc.AsIssues(wrapped)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected issues, got %v", wrapped)
	}
	if !strings.Contains(wrapped.Error(), "/orientation/1: orientation must be a string of") {
		t.Fatalf("summary=%q", wrapped.Error())
	}
	if !anatloc.HasCode(wrapped, anatloc.CodeOrientationLetter) {
		t.Fatalf("HasCode failed")
	}
	if anatloc.HasCode(errors.New("plain"), anatloc.CodeOrientationLetter) {
		t.Fatalf("plain errors carry no codes")
	}
}

func TestErrorModel_SummaryTruncates(t *testing.T) {
	iss := anatloc.Issues{
		{Path: "/a", Message: "a"}, {Path: "/b", Message: "b"},
		{Path: "/c", Message: "c"}, {Path: "/d", Message: "d"},
	}
	if got := iss.Error(); got != "/a: a; /b: b; /c: c; ... (total 4)" {
		t.Fatalf("got %q", got)
	}
}

func TestRebase(t *testing.T) {
	iss := anatloc.Issues{{Path: "/orientation"}, {Path: "/"}}
	got := anatloc.Rebase(anatloc.Root().Field("spaces").Index(2), iss)
	if got[0].Path != "/spaces/2/orientation" || got[1].Path != "/spaces/2" {
		t.Fatalf("got %+v", got)
	}
	if iss[0].Path != "/orientation" {
		t.Fatalf("rebase must not mutate its input")
	}
	if p := anatloc.At("/a~1b/0").Field("c").Pointer(); p != "/a~1b/0/c" {
		t.Fatalf("pointer=%s", p)
	}
}
