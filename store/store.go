// Package store reads and writes container documents holding a
// Localization together with the tables, images and imaging planes it links
// to. Documents are JSON (goccy/go-json) or YAML (yaml.v3) and are stamped
// with the extension namespace and version.
package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	anatloc "github.com/catalystneuro/ndx-anatomical-localization"
	"github.com/catalystneuro/ndx-anatomical-localization/codec"
	"github.com/catalystneuro/ndx-anatomical-localization/imaging"
	"github.com/catalystneuro/ndx-anatomical-localization/internal/dupkey"
	"github.com/catalystneuro/ndx-anatomical-localization/namespace"
	"github.com/catalystneuro/ndx-anatomical-localization/table"
)

// maxIssues bounds the duplicate key report.
const maxIssues = 20

// Format selects the document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts "json", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("store: unknown format %q", s)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// File is an in-memory container. Tables, Images and ImagingPlanes hold the
// objects that coordinate tables and images link to.
type File struct {
	Identifier         string
	SessionDescription string
	Tables             []*table.Table
	Images             []*imaging.Image
	ImagingPlanes      []*imaging.ImagingPlane
	Localization       *anatloc.Localization
}

// Document is the wire form of a File.
type Document struct {
	Namespace          string                     `json:"namespace" yaml:"namespace" validate:"required"`
	Version            string                     `json:"version" yaml:"version" validate:"required"`
	Identifier         string                     `json:"identifier" yaml:"identifier" validate:"required"`
	SessionDescription string                     `json:"session_description" yaml:"session_description"`
	Tables             []codec.TableRecord        `json:"tables,omitempty" yaml:"tables,omitempty" validate:"dive"`
	Images             []codec.ImageRecord        `json:"images,omitempty" yaml:"images,omitempty" validate:"dive"`
	ImagingPlanes      []codec.ImagingPlaneRecord `json:"imaging_planes,omitempty" yaml:"imaging_planes,omitempty" validate:"dive"`
	Localization       *codec.LocalizationRecord  `json:"localization,omitempty" yaml:"localization,omitempty"`
}

// Options tunes Read and Write.
type Options struct {
	// Logger receives debug output. Nil discards.
	Logger *slog.Logger
}

func pickOptions(opts []Options) Options {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Encode converts f into its wire document.
func Encode(ctx context.Context, f *File) (*Document, error) {
	if f == nil {
		return nil, fmt.Errorf("store: nil file")
	}
	ns, err := namespace.Load()
	if err != nil {
		return nil, err
	}
	if f.Identifier == "" {
		return nil, anatloc.Issues{anatloc.Root().Field("identifier").Issue(anatloc.CodeRequired, map[string]string{"field": "identifier"})}
	}
	reg := codec.NewRegistry()
	for _, t := range f.Tables {
		reg.AddTable(t)
	}
	for _, img := range f.Images {
		reg.AddImage(img)
	}
	for _, p := range f.ImagingPlanes {
		reg.AddImagingPlane(p)
	}

	doc := &Document{
		Namespace:          ns.Name,
		Version:            ns.Version,
		Identifier:         f.Identifier,
		SessionDescription: f.SessionDescription,
	}
	root := anatloc.Root()
	var iss anatloc.Issues
	collect := func(p anatloc.PathRef, err error) {
		if sub, ok := anatloc.AsIssues(err); ok {
			iss = append(iss, anatloc.Rebase(p, sub)...)
			return
		}
		iss = append(iss, p.Issue(anatloc.CodeInvalidType, nil))
	}
	tc := codec.Table(reg)
	for i, t := range f.Tables {
		rec, err := tc.Encode(ctx, t)
		if err != nil {
			collect(root.Field("tables").Index(i), err)
			continue
		}
		doc.Tables = append(doc.Tables, rec)
	}
	for i, img := range f.Images {
		rec, err := codec.Image().Encode(ctx, img)
		if err != nil {
			collect(root.Field("images").Index(i), err)
			continue
		}
		doc.Images = append(doc.Images, rec)
	}
	for i, p := range f.ImagingPlanes {
		rec, err := codec.ImagingPlane().Encode(ctx, p)
		if err != nil {
			collect(root.Field("imaging_planes").Index(i), err)
			continue
		}
		doc.ImagingPlanes = append(doc.ImagingPlanes, rec)
	}
	if f.Localization != nil {
		rec, err := codec.Localization(reg).Encode(ctx, f.Localization)
		if err != nil {
			collect(root.Field("localization"), err)
		} else {
			doc.Localization = &rec
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return doc, nil
}

// Decode rebuilds a File from its wire document. Every object goes back
// through its constructor, so a document that decodes is valid.
func Decode(ctx context.Context, doc *Document) (*File, error) {
	if doc == nil {
		return nil, fmt.Errorf("store: nil document")
	}
	if err := checkNamespace(doc); err != nil {
		return nil, err
	}
	if err := codec.ValidateRecord(doc); err != nil {
		return nil, err
	}
	f := &File{Identifier: doc.Identifier, SessionDescription: doc.SessionDescription}
	reg := codec.NewRegistry()
	root := anatloc.Root()
	var iss anatloc.Issues
	collect := func(p anatloc.PathRef, err error) {
		if sub, ok := anatloc.AsIssues(err); ok {
			iss = append(iss, anatloc.Rebase(p, sub)...)
			return
		}
		iss = append(iss, p.Issue(anatloc.CodeInvalidType, nil))
	}

	for i, rec := range doc.Images {
		img, err := codec.Image().Decode(ctx, rec)
		if err != nil {
			collect(root.Field("images").Index(i), err)
			continue
		}
		reg.AddImage(img)
		f.Images = append(f.Images, img)
	}
	for i, rec := range doc.ImagingPlanes {
		p, err := codec.ImagingPlane().Decode(ctx, rec)
		if err != nil {
			collect(root.Field("imaging_planes").Index(i), err)
			continue
		}
		reg.AddImagingPlane(p)
		f.ImagingPlanes = append(f.ImagingPlanes, p)
	}
	tables, err := decodeTables(ctx, reg, doc.Tables)
	if err != nil {
		if _, ok := anatloc.AsIssues(err); !ok {
			return nil, err
		}
		collect(root, err)
	}
	f.Tables = tables
	if len(iss) > 0 {
		return nil, iss
	}

	if doc.Localization != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		loc, err := codec.Localization(reg).Decode(ctx, *doc.Localization)
		if err != nil {
			return nil, anatloc.Rebase(root.Field("localization"), mustIssues(err))
		}
		f.Localization = loc
	}
	return f, nil
}

// decodeTables decodes tables in passes so a region column may point at a
// table listed after it. A pass that resolves nothing ends the loop and the
// remaining tables report their dangling targets. Results keep document order.
func decodeTables(ctx context.Context, reg *codec.Registry, recs []codec.TableRecord) ([]*table.Table, error) {
	out := make([]*table.Table, len(recs))
	pending := make([]int, len(recs))
	for i := range recs {
		pending[i] = i
	}
	tc := codec.Table(reg)
	root := anatloc.Root().Field("tables")
	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var next []int
		var iss anatloc.Issues
		for _, i := range pending {
			t, err := tc.Decode(ctx, recs[i])
			if err != nil {
				if !anatloc.HasCode(err, anatloc.CodeDanglingReference) {
					return nil, anatloc.Rebase(root.Index(i), mustIssues(err))
				}
				iss = append(iss, anatloc.Rebase(root.Index(i), mustIssues(err))...)
				next = append(next, i)
				continue
			}
			reg.AddTable(t)
			out[i] = t
		}
		if len(next) == len(pending) {
			return nil, iss
		}
		pending = next
	}
	return out, nil
}

func mustIssues(err error) anatloc.Issues {
	if iss, ok := anatloc.AsIssues(err); ok {
		return iss
	}
	return anatloc.Issues{{Path: "/", Code: anatloc.CodeInvalidType, Message: err.Error(), Cause: err}}
}

func checkNamespace(doc *Document) error {
	ns, err := namespace.Load()
	if err != nil {
		return err
	}
	if doc.Namespace != "" && doc.Namespace != ns.Name {
		return anatloc.Issues{anatloc.Root().Field("namespace").Issue(anatloc.CodeUnknownNamespace, map[string]string{"name": doc.Namespace})}
	}
	return nil
}

// Write encodes f and writes it to w in the given format.
func Write(ctx context.Context, w io.Writer, f *File, format Format, opts ...Options) error {
	o := pickOptions(opts)
	doc, err := Encode(ctx, f)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	var b []byte
	switch format {
	case FormatJSON:
		b, err = json.MarshalIndent(doc, "", "  ")
		if err == nil {
			b = append(b, '\n')
		}
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
		b = buf.Bytes()
	default:
		return fmt.Errorf("store: unsupported format %v", format)
	}
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", format, err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("store: write: %w", err)
	}
	o.Logger.DebugContext(ctx, "wrote document",
		slog.String("identifier", doc.Identifier),
		slog.String("format", format.String()),
		slog.Int("tables", len(doc.Tables)),
		slog.Int("bytes", len(b)))
	return nil
}

// Read decodes a document from r. Unknown fields are rejected.
func Read(ctx context.Context, r io.Reader, format Format, opts ...Options) (*File, error) {
	o := pickOptions(opts)
	doc, err := ReadDocument(ctx, r, format)
	if err != nil {
		return nil, err
	}
	f, err := Decode(ctx, doc)
	if err != nil {
		return nil, err
	}
	o.Logger.DebugContext(ctx, "read document",
		slog.String("identifier", f.Identifier),
		slog.String("format", format.String()),
		slog.String("namespace", doc.Namespace),
		slog.String("version", doc.Version))
	return f, nil
}

// ReadDocument parses the wire document without building domain objects.
func ReadDocument(ctx context.Context, r io.Reader, format Format) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var doc Document
	switch format {
	case FormatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("store: read: %w", err)
		}
		if err := checkDuplicateKeys(data); err != nil {
			return nil, err
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, parseIssue(err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, parseIssue(err)
		}
	default:
		return nil, fmt.Errorf("store: unsupported format %v", format)
	}
	return &doc, nil
}

// checkDuplicateKeys rejects JSON objects with repeated keys. yaml.v3
// already fails on repeated mapping keys.
func checkDuplicateKeys(data []byte) error {
	dups, err := dupkey.Detect(data, maxIssues)
	if err != nil {
		return parseIssue(err)
	}
	var iss anatloc.Issues
	for _, d := range dups {
		iss = append(iss, anatloc.At(d.Pointer()).Issue(anatloc.CodeDuplicateKey, map[string]string{"key": d.Key}))
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func parseIssue(err error) error {
	iss := anatloc.Root().Issue(anatloc.CodeParseError, map[string]string{"error": err.Error()})
	iss.Cause = err
	return anatloc.Issues{iss}
}

// WriteFile writes f to path, choosing the format from the extension.
func WriteFile(ctx context.Context, path string, f *File, opts ...Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Write(ctx, &buf, f, format, opts...); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

// ReadFile reads the document at path, choosing the format from the
// extension.
func ReadFile(ctx context.Context, path string, opts ...Options) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer fh.Close()
	return Read(ctx, fh, format, opts...)
}
