package dupkey_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/catalystneuro/ndx-anatomical-localization/internal/dupkey"
)

func TestDetect_Paths(t *testing.T) {
	in := `{"a":1,"b":{"c":1,"c":[2]},"d":[{"e":1},{"e":1,"e":2}],"a":3}`
	got, err := dupkey.Detect([]byte(in), 0)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	want := []dupkey.Duplicate{
		{Path: "/b", Key: "c"},
		{Path: "/d/1", Key: "e"},
		{Path: "/", Key: "a"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
	if got[1].Pointer() != "/d/1/e" || got[2].Pointer() != "/a" {
		t.Fatalf("pointers %q %q", got[1].Pointer(), got[2].Pointer())
	}
}

func TestDetect_EscapesAndLimit(t *testing.T) {
	in := `{"a/b":{"x":1,"x":2,"y":1,"y":2}}`
	got, err := dupkey.DetectReader(strings.NewReader(in), 1)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(got) != 1 || got[0].Path != "/a~1b" || got[0].Pointer() != "/a~1b/x" {
		t.Fatalf("got %+v", got)
	}
}

func TestDetect_Clean(t *testing.T) {
	got, err := dupkey.Detect([]byte(`{"a":[{"a":1},{"a":2}],"b":"a"}`), 0)
	if err != nil || len(got) != 0 {
		t.Fatalf("got %+v %v", got, err)
	}
}
