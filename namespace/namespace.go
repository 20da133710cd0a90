// Package namespace loads the embedded ndx-anatomical-localization namespace
// and the neurodata types it declares.
package namespace

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed spec/*.yaml
var specFS embed.FS

const (
	namespaceFile  = "spec/ndx-anatomical-localization.namespace.yaml"
	extensionsFile = "spec/ndx-anatomical-localization.extensions.yaml"
)

// Field is an attribute, dataset or link of a type.
type Field struct {
	Name       string `yaml:"name"`
	DType      string `yaml:"dtype"`
	Doc        string `yaml:"doc"`
	Shape      []*int `yaml:"shape"`
	Required   *bool  `yaml:"required"`
	Quantity   string `yaml:"quantity"`
	TargetType string `yaml:"target_type"`
}

// Optional reports whether the field may be absent.
func (f Field) Optional() bool {
	return (f.Required != nil && !*f.Required) || f.Quantity == "?" || f.Quantity == "*"
}

// Type is one neurodata type declared by the extension.
type Type struct {
	Name       string  `yaml:"neurodata_type_def"`
	Inc        string  `yaml:"neurodata_type_inc"`
	Doc        string  `yaml:"doc"`
	Attributes []Field `yaml:"attributes"`
	Datasets   []Field `yaml:"datasets"`
	Links      []Field `yaml:"links"`
}

func (t *Type) field(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Namespace is the parsed namespace with its extension types.
type Namespace struct {
	Name    string
	Version string
	Doc     string
	types   []*Type
	byName  map[string]*Type
}

type namespaceDoc struct {
	Namespaces []struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
		Doc     string `yaml:"doc"`
	} `yaml:"namespaces"`
}

type extensionsDoc struct {
	Groups []*Type `yaml:"groups"`
}

var (
	loadOnce sync.Once
	loaded   *Namespace
	loadErr  error
)

// Load parses the embedded namespace once and returns the shared result.
func Load() (*Namespace, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parse()
	})
	return loaded, loadErr
}

// MustLoad is Load that panics; the embedded files are fixed at build time.
func MustLoad() *Namespace {
	ns, err := Load()
	if err != nil {
		panic(err)
	}
	return ns
}

func parse() (*Namespace, error) {
	raw, err := specFS.ReadFile(namespaceFile)
	if err != nil {
		return nil, fmt.Errorf("namespace: read %s: %w", namespaceFile, err)
	}
	var nd namespaceDoc
	if err := yaml.Unmarshal(raw, &nd); err != nil {
		return nil, fmt.Errorf("namespace: parse %s: %w", namespaceFile, err)
	}
	if len(nd.Namespaces) != 1 {
		return nil, fmt.Errorf("namespace: expected 1 namespace, found %d", len(nd.Namespaces))
	}
	raw, err = specFS.ReadFile(extensionsFile)
	if err != nil {
		return nil, fmt.Errorf("namespace: read %s: %w", extensionsFile, err)
	}
	var ed extensionsDoc
	if err := yaml.Unmarshal(raw, &ed); err != nil {
		return nil, fmt.Errorf("namespace: parse %s: %w", extensionsFile, err)
	}
	ns := &Namespace{
		Name:    nd.Namespaces[0].Name,
		Version: nd.Namespaces[0].Version,
		Doc:     nd.Namespaces[0].Doc,
		types:   ed.Groups,
		byName:  make(map[string]*Type, len(ed.Groups)),
	}
	for _, t := range ed.Groups {
		if t.Name == "" {
			return nil, fmt.Errorf("namespace: type without neurodata_type_def")
		}
		if _, dup := ns.byName[t.Name]; dup {
			return nil, fmt.Errorf("namespace: duplicate type %q", t.Name)
		}
		ns.byName[t.Name] = t
	}
	return ns, nil
}

// Types lists the declared types in file order.
func (ns *Namespace) Types() []*Type { return ns.types }

// Type returns the named type or nil.
func (ns *Namespace) Type(name string) *Type { return ns.byName[name] }

// Is reports whether typ is name or inherits from it within this namespace.
func (ns *Namespace) Is(typ, name string) bool {
	for t := ns.byName[typ]; t != nil; t = ns.byName[t.Inc] {
		if t.Name == name {
			return true
		}
	}
	return false
}

// FieldDoc returns the documentation of a field of a type: attribute, dataset or
// link, searched in that order and through ancestors.
func (ns *Namespace) FieldDoc(typ, field string) string {
	for t := ns.byName[typ]; t != nil; t = ns.byName[t.Inc] {
		for _, fs := range [][]Field{t.Attributes, t.Datasets, t.Links} {
			if f, ok := t.field(fs, field); ok {
				return f.Doc
			}
		}
	}
	return ""
}
