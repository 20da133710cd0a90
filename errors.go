package anatloc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/catalystneuro/ndx-anatomical-localization/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired          = "required"
	CodeInvalidType       = "invalid_type"
	CodeInvalidValue      = "invalid_value"
	CodeFixedValue        = "fixed_value"
	CodeOrientationLength = "orientation_length"
	CodeOrientationLetter = "orientation_letter"
	CodeOrientationAxis   = "orientation_axis"
	CodeInvalidExtent     = "invalid_extent"
	CodeUnknownSpace      = "unknown_space"
	CodeMissingTarget     = "missing_target"
	// Image/imaging-plane alternatives
	CodeImageAndPlane        = "image_and_plane"
	CodeImageOrPlaneRequired = "image_or_plane_required"
	CodeShapeMismatch        = "shape_mismatch"
	CodeShapeInconsistent    = "shape_inconsistent"
	CodeOutOfRange           = "out_of_range"
	// Localization bookkeeping
	CodeDuplicateName     = "duplicate_name"
	CodeDanglingReference = "dangling_reference"
	CodeUnknownNamespace  = "unknown_namespace"
	CodeParseError        = "parse_error"
	CodeDuplicateKey      = "duplicate_key"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /orientation/1).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"key":"MNI"}) for i18n and
	// programmatic inspection.
	Params map[string]any
}

func (it Issue) Error() string {
	if it.Path == "" || it.Path == "/" {
		return it.Message
	}
	return fmt.Sprintf("%s: %s", it.Path, it.Message)
}

func (it Issue) Unwrap() error { return it.Cause }

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].Error())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// HasCode reports whether any issue carries code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	var it Issue
	if errors.As(err, &it) {
		return Issues{it}, true
	}
	return nil, false
}

// HasCode reports whether err carries an issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	return ok && iss.HasCode(code)
}

// orNil converts an empty collection into a nil error.
func (iss Issues) orNil() error {
	if len(iss) == 0 {
		return nil
	}
	return iss
}

// newIssue builds an issue whose message comes from the translator. data fills
// the message placeholders and is also recorded as Params.
func newIssue(p PathRef, code string, data map[string]string) Issue {
	var params map[string]any
	if len(data) > 0 {
		params = make(map[string]any, len(data))
		for k, v := range data {
			params[k] = v
		}
	}
	return Issue{Path: p.Pointer(), Code: code, Message: i18n.T(code, data), Params: params}
}
