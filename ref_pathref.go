package anatloc

import (
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code string, data map[string]string) Issue
}

// Root returns the empty pointer "/".
func Root() PathRef { return &pathRef{} }

// At parses an existing pointer such as "/spaces/0".
func At(path string) PathRef {
	if path == "" || path == "/" {
		return Root()
	}
	parts := []string{}
	for _, p := range strings.Split(path, "/") {
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return &pathRef{parts: parts}
}

type pathRef struct {
	parts []string
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p *pathRef) Issue(code string, data map[string]string) Issue {
	return newIssue(p, code, data)
}

// Rebase prefixes every issue path with base. It is used when a nested record
// is validated on its own and then reported inside a larger document.
func Rebase(base PathRef, iss Issues) Issues {
	if len(iss) == 0 {
		return iss
	}
	out := make(Issues, len(iss))
	prefix := base.Pointer()
	for i, it := range iss {
		switch {
		case prefix == "/":
		case it.Path == "" || it.Path == "/":
			it.Path = prefix
		default:
			it.Path = prefix + it.Path
		}
		out[i] = it
	}
	return out
}
