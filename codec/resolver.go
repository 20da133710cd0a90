package codec

import (
	"github.com/google/uuid"

	anatloc "github.com/catalystneuro/ndx-anatomical-localization"
	"github.com/catalystneuro/ndx-anatomical-localization/imaging"
	"github.com/catalystneuro/ndx-anatomical-localization/table"
)

// Resolver looks up already decoded objects by object id.
type Resolver interface {
	Table(id uuid.UUID) (*table.Table, bool)
	Space(id uuid.UUID) (*anatloc.Space, bool)
	Image(id uuid.UUID) (*imaging.Image, bool)
	ImagingPlane(id uuid.UUID) (*imaging.ImagingPlane, bool)
}

// Registry is a Resolver filled while a document is decoded.
type Registry struct {
	tables map[uuid.UUID]*table.Table
	spaces map[uuid.UUID]*anatloc.Space
	images map[uuid.UUID]*imaging.Image
	planes map[uuid.UUID]*imaging.ImagingPlane
}

func NewRegistry() *Registry {
	return &Registry{
		tables: map[uuid.UUID]*table.Table{},
		spaces: map[uuid.UUID]*anatloc.Space{},
		images: map[uuid.UUID]*imaging.Image{},
		planes: map[uuid.UUID]*imaging.ImagingPlane{},
	}
}

func (r *Registry) AddTable(t *table.Table)                 { r.tables[t.ObjectID] = t }
func (r *Registry) AddSpace(s *anatloc.Space)               { r.spaces[s.ObjectID] = s }
func (r *Registry) AddImage(img *imaging.Image)             { r.images[img.ObjectID] = img }
func (r *Registry) AddImagingPlane(p *imaging.ImagingPlane) { r.planes[p.ObjectID] = p }

func (r *Registry) Table(id uuid.UUID) (*table.Table, bool) {
	t, ok := r.tables[id]
	return t, ok
}

func (r *Registry) Space(id uuid.UUID) (*anatloc.Space, bool) {
	s, ok := r.spaces[id]
	return s, ok
}

func (r *Registry) Image(id uuid.UUID) (*imaging.Image, bool) {
	img, ok := r.images[id]
	return img, ok
}

func (r *Registry) ImagingPlane(id uuid.UUID) (*imaging.ImagingPlane, bool) {
	p, ok := r.planes[id]
	return p, ok
}

// dangling reports an object id that does not resolve.
func dangling(p anatloc.PathRef, kind, name, target, ref string) anatloc.Issue {
	return p.Issue(anatloc.CodeDanglingReference, map[string]string{"kind": kind, "name": name, "target": target, "ref": ref})
}

// parseID parses an id already checked by ValidateRecord.
func parseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
