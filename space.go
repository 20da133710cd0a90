package anatloc

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// SpaceType is the neurodata type a Space is stored as.
type SpaceType string

const (
	SpaceTypeSpace      SpaceType = "Space"
	SpaceTypeAllenCCFv3 SpaceType = "AllenCCFv3Space"
)

// Space is a named coordinate system: where (0,0,0) is, the units of the
// coordinates and which direction each axis points.
type Space struct {
	ObjectID    uuid.UUID
	Type        SpaceType
	Name        string
	SpaceName   string
	Origin      string
	Units       string
	Orientation Orientation
	// Extent is the size of the space along x, y and z. Nil when unknown.
	Extent []float64
}

// SpaceConfig lists the constructor parameters of a Space.
type SpaceConfig struct {
	// ObjectID is kept when set; a new one is generated otherwise.
	ObjectID  uuid.UUID
	Name      string
	SpaceName string
	// Origin describes the zero point, e.g. "bregma".
	Origin string
	// Units of the coordinates, e.g. "mm".
	Units string
	// Orientation is one of A,P,L,R,S,I for each of x, y and z, e.g. "RAS".
	Orientation string
	Extent      []float64
}

// NewSpace validates cfg and returns the space. No space is returned when any
// check fails.
func NewSpace(cfg SpaceConfig) (*Space, error) {
	var iss Issues
	root := Root()
	if cfg.Name == "" {
		iss = append(iss, root.Field("name").Issue(CodeRequired, map[string]string{"field": "name"}))
	}
	if cfg.SpaceName == "" {
		iss = append(iss, root.Field("space_name").Issue(CodeRequired, map[string]string{"field": "space_name"}))
	}
	if err := ValidateOrientation(cfg.Orientation); err != nil {
		sub, _ := AsIssues(err)
		iss = append(iss, sub...)
	}
	if err := ValidateExtent(cfg.Extent); err != nil {
		sub, _ := AsIssues(err)
		iss = append(iss, sub...)
	}
	if err := iss.orNil(); err != nil {
		return nil, err
	}
	id := cfg.ObjectID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Space{
		ObjectID:    id,
		Type:        SpaceTypeSpace,
		Name:        cfg.Name,
		SpaceName:   cfg.SpaceName,
		Origin:      cfg.Origin,
		Units:       cfg.Units,
		Orientation: Orientation(cfg.Orientation),
		Extent:      cloneFloats(cfg.Extent),
	}, nil
}

// ValidateExtent accepts nil or exactly three positive finite numbers.
func ValidateExtent(extent []float64) error {
	if extent == nil {
		return nil
	}
	bad := len(extent) != 3
	for _, v := range extent {
		if !(v > 0) || math.IsInf(v, 0) {
			bad = true
		}
	}
	if bad {
		return Issues{Root().Field("extent").Issue(CodeInvalidExtent, nil)}
	}
	return nil
}

// Allen Mouse Brain Common Coordinate Framework v3 constants. The volume is
// 1320 x 800 x 1140 voxels at 10 um resolution.
const (
	AllenCCFv3Name        = "AllenCCFv3"
	AllenCCFv3SpaceName   = "AllenCCFv3"
	AllenCCFv3Origin      = "Dorsal-left-posterior corner of the 3D image volume"
	AllenCCFv3Units       = "um"
	AllenCCFv3Orientation = "ASL"
)

// AllenCCFv3Extent returns the extent of the CCFv3 volume in um.
func AllenCCFv3Extent() []float64 { return []float64{13200, 8000, 11400} }

// AllenCCFv3Space returns the canonical CCFv3 space. Only the object name is
// configurable; an empty name selects AllenCCFv3Name.
func AllenCCFv3Space(name string) *Space {
	if name == "" {
		name = AllenCCFv3Name
	}
	return &Space{
		ObjectID:    uuid.New(),
		Type:        SpaceTypeAllenCCFv3,
		Name:        name,
		SpaceName:   AllenCCFv3SpaceName,
		Origin:      AllenCCFv3Origin,
		Units:       AllenCCFv3Units,
		Orientation: AllenCCFv3Orientation,
		Extent:      AllenCCFv3Extent(),
	}
}

// predefined maps well-known keys to constructors. Read-only after init.
var predefined = map[string]func() *Space{
	"CCFv3":      func() *Space { return AllenCCFv3Space("") },
	"AllenCCFv3": func() *Space { return AllenCCFv3Space("") },
}

// PredefinedSpace returns a fresh copy of the space registered under key.
func PredefinedSpace(key string) (*Space, error) {
	mk, ok := predefined[key]
	if !ok {
		return nil, Issues{Root().Issue(CodeUnknownSpace, map[string]string{"key": key})}
	}
	return mk(), nil
}

// PredefinedSpaceNames lists the registered keys in sorted order.
func PredefinedSpaceNames() []string {
	out := make([]string, 0, len(predefined))
	for k := range predefined {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Equal compares every field of both spaces.
func (s *Space) Equal(o *Space) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.ObjectID != o.ObjectID || s.Type != o.Type || s.Name != o.Name ||
		s.SpaceName != o.SpaceName || s.Origin != o.Origin || s.Units != o.Units ||
		s.Orientation != o.Orientation || len(s.Extent) != len(o.Extent) {
		return false
	}
	if (s.Extent == nil) != (o.Extent == nil) {
		return false
	}
	for i := range s.Extent {
		if s.Extent[i] != o.Extent[i] {
			return false
		}
	}
	return true
}

func cloneFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	return append([]float64(nil), v...)
}
