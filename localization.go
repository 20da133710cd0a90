package anatloc

// DefaultLocalizationName is used when NewLocalization is given no name.
const DefaultLocalizationName = "localization"

// Localization groups the spaces, coordinate tables and coordinate images of
// one file. Names are unique within each collection and insertion order is
// kept.
type Localization struct {
	Name string

	spaces []*Space
	tables []*AnatomicalCoordinatesTable
	images []*AnatomicalCoordinatesImage
}

// NewLocalization returns an empty container.
func NewLocalization(name string) *Localization {
	if name == "" {
		name = DefaultLocalizationName
	}
	return &Localization{Name: name}
}

func duplicate(kind, collection, name string) error {
	return Issues{Root().Field(collection).Field(name).Issue(CodeDuplicateName, map[string]string{"kind": kind, "name": name})}
}

// AddSpace attaches s. Adding the same space twice is a no-op.
func (l *Localization) AddSpace(s *Space) error {
	if s == nil {
		return Issues{Root().Field("spaces").Issue(CodeRequired, map[string]string{"field": "space"})}
	}
	if cur := l.Space(s.Name); cur != nil {
		if cur == s {
			return nil
		}
		return duplicate("space", "spaces", s.Name)
	}
	l.spaces = append(l.spaces, s)
	return nil
}

// AddTable attaches t.
func (l *Localization) AddTable(t *AnatomicalCoordinatesTable) error {
	if t == nil {
		return Issues{Root().Field("anatomical_coordinates_tables").Issue(CodeRequired, map[string]string{"field": "table"})}
	}
	if l.Table(t.Name) != nil {
		return duplicate("table", "anatomical_coordinates_tables", t.Name)
	}
	l.tables = append(l.tables, t)
	return nil
}

// AddImage attaches img.
func (l *Localization) AddImage(img *AnatomicalCoordinatesImage) error {
	if img == nil {
		return Issues{Root().Field("anatomical_coordinates_images").Issue(CodeRequired, map[string]string{"field": "image"})}
	}
	if l.Image(img.Name) != nil {
		return duplicate("image", "anatomical_coordinates_images", img.Name)
	}
	l.images = append(l.images, img)
	return nil
}

// Space returns the attached space with this name or nil.
func (l *Localization) Space(name string) *Space {
	for _, s := range l.spaces {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Table returns the attached coordinates table with this name or nil.
func (l *Localization) Table(name string) *AnatomicalCoordinatesTable {
	for _, t := range l.tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Image returns the attached coordinates image with this name or nil.
func (l *Localization) Image(name string) *AnatomicalCoordinatesImage {
	for _, img := range l.images {
		if img.Name == name {
			return img
		}
	}
	return nil
}

func (l *Localization) Spaces() []*Space                      { return l.spaces }
func (l *Localization) Tables() []*AnatomicalCoordinatesTable { return l.tables }
func (l *Localization) Images() []*AnatomicalCoordinatesImage { return l.images }

// Validate checks that every table and image uses a space attached to l.
func (l *Localization) Validate() error {
	attached := map[*Space]bool{}
	for _, s := range l.spaces {
		attached[s] = true
	}
	var iss Issues
	for i, t := range l.tables {
		if !attached[t.Space] {
			iss = append(iss, Root().Field("anatomical_coordinates_tables").Index(i).Field("space").Issue(CodeDanglingReference,
				map[string]string{"kind": "table", "name": t.Name, "target": "space", "ref": spaceName(t.Space)}))
		}
	}
	for i, img := range l.images {
		if !attached[img.Space] {
			iss = append(iss, Root().Field("anatomical_coordinates_images").Index(i).Field("space").Issue(CodeDanglingReference,
				map[string]string{"kind": "image", "name": img.Name, "target": "space", "ref": spaceName(img.Space)}))
		}
	}
	return iss.orNil()
}

func spaceName(s *Space) string {
	if s == nil {
		return ""
	}
	return s.Name
}
