// Package dupkey finds object keys that appear more than once in a JSON
// document. Decoders keep the last value silently, so a document with
// duplicates would not round trip.
package dupkey

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Duplicate is a repeated key. Path is the JSON Pointer of the object that
// holds it.
type Duplicate struct {
	Path string
	Key  string
}

// Pointer is the JSON Pointer of the repeated member.
func (d Duplicate) Pointer() string {
	if d.Path == "/" {
		return "/" + escape(d.Key)
	}
	return d.Path + "/" + escape(d.Key)
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind containerKind
	// seg is this container's segment in its parent, "" for the root.
	seg          string
	keys         map[string]struct{}
	expectingKey bool
	key          string
	index        int
}

// Detect scans data and returns every duplicate in document order. limit > 0
// stops after that many; the error is the tokenizer's.
func Detect(data []byte, limit int) ([]Duplicate, error) {
	return DetectReader(bytes.NewReader(data), limit)
}

// DetectReader is Detect over a reader. It consumes r.
func DetectReader(r io.Reader, limit int) ([]Duplicate, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var (
		out   []Duplicate
		stack []*frame
	)
	// childSeg is the segment a value opened now would have in the top frame.
	childSeg := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := stack[len(stack)-1]
		if top.kind == kindObject {
			return escape(top.key)
		}
		return strconv.Itoa(top.index)
	}
	// done marks the end of a value in the top frame.
	done := func() {
		if len(stack) == 0 {
			return
		}
		top := stack[len(stack)-1]
		if top.kind == kindObject {
			top.expectingKey = true
		} else {
			top.index++
		}
	}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, &frame{kind: kindObject, seg: childSeg(), keys: map[string]struct{}{}, expectingKey: true})
			case '[':
				stack = append(stack, &frame{kind: kindArray, seg: childSeg()})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				done()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].kind == kindObject && stack[n-1].expectingKey {
				top := stack[n-1]
				if _, dup := top.keys[v]; dup {
					out = append(out, Duplicate{Path: pointer(stack), Key: v})
					if limit > 0 && len(out) >= limit {
						return out, nil
					}
				}
				top.keys[v] = struct{}{}
				top.key = v
				top.expectingKey = false
				continue
			}
			done()
		default:
			done()
		}
	}
}

func pointer(stack []*frame) string {
	if len(stack) <= 1 {
		return "/"
	}
	var b strings.Builder
	for _, f := range stack[1:] {
		b.WriteByte('/')
		b.WriteString(f.seg)
	}
	return b.String()
}

func escape(s string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(s)
}
