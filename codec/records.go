package codec

// Wire records. Each mirrors one neurodata type of the namespace; object
// references are stored as object ids.

// Neurodata type names written into records.
const (
	TypeDynamicTable               = "DynamicTable"
	TypeAnatomicalCoordinatesTable = "AnatomicalCoordinatesTable"
	TypeAnatomicalCoordinatesImage = "AnatomicalCoordinatesImage"
	TypeLocalization               = "Localization"
	TypeImage                      = "Image"
	TypeImagingPlane               = "ImagingPlane"
)

// SpaceRecord is the wire form of a Space or AllenCCFv3Space.
type SpaceRecord struct {
	ObjectID      string    `json:"object_id" yaml:"object_id" validate:"required,uuid"`
	NeurodataType string    `json:"neurodata_type" yaml:"neurodata_type" validate:"required,oneof=Space AllenCCFv3Space"`
	Name          string    `json:"name" yaml:"name" validate:"required"`
	SpaceName     string    `json:"space_name" yaml:"space_name" validate:"required"`
	Origin        string    `json:"origin" yaml:"origin"`
	Units         string    `json:"units" yaml:"units"`
	Orientation   string    `json:"orientation" yaml:"orientation" validate:"required"`
	Extent        []float64 `json:"extent,omitempty" yaml:"extent,omitempty"`
}

// ColumnRecord is one column of a table. Kind selects the populated data
// field; region columns store row indices in IntData and the target table id
// in Target.
type ColumnRecord struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Description string   `json:"description" yaml:"description"`
	Kind        string   `json:"kind" yaml:"kind" validate:"required,oneof=float int text region"`
	FloatData   []Float  `json:"float_data,omitempty" yaml:"float_data,omitempty"`
	IntData     []int    `json:"int_data,omitempty" yaml:"int_data,omitempty"`
	TextData    []string `json:"text_data,omitempty" yaml:"text_data,omitempty"`
	Target      string   `json:"target,omitempty" yaml:"target,omitempty" validate:"omitempty,uuid"`
}

// TableRecord is the wire form of a generic table.
type TableRecord struct {
	ObjectID      string         `json:"object_id" yaml:"object_id" validate:"required,uuid"`
	NeurodataType string         `json:"neurodata_type" yaml:"neurodata_type" validate:"required,eq=DynamicTable"`
	Name          string         `json:"name" yaml:"name" validate:"required"`
	Description   string         `json:"description" yaml:"description"`
	IDs           []int          `json:"id" yaml:"id"`
	Columns       []ColumnRecord `json:"columns" yaml:"columns" validate:"dive"`
}

// CoordinatesTableRecord is the wire form of an AnatomicalCoordinatesTable.
type CoordinatesTableRecord struct {
	ObjectID      string         `json:"object_id" yaml:"object_id" validate:"required,uuid"`
	NeurodataType string         `json:"neurodata_type" yaml:"neurodata_type" validate:"required,eq=AnatomicalCoordinatesTable"`
	Name          string         `json:"name" yaml:"name" validate:"required"`
	Description   string         `json:"description" yaml:"description"`
	Method        string         `json:"method" yaml:"method" validate:"required"`
	Space         string         `json:"space" yaml:"space" validate:"required,uuid"`
	IDs           []int          `json:"id" yaml:"id"`
	Columns       []ColumnRecord `json:"columns" yaml:"columns" validate:"dive"`
}

// ImageRecord is the wire form of an image.
type ImageRecord struct {
	ObjectID      string  `json:"object_id" yaml:"object_id" validate:"required,uuid"`
	NeurodataType string  `json:"neurodata_type" yaml:"neurodata_type" validate:"required,eq=Image"`
	Name          string  `json:"name" yaml:"name" validate:"required"`
	Description   string  `json:"description" yaml:"description"`
	Shape         []int   `json:"shape" yaml:"shape" validate:"required,min=2,dive,gte=0"`
	Data          []Float `json:"data" yaml:"data"`
}

// ImagingPlaneRecord is the wire form of an imaging plane.
type ImagingPlaneRecord struct {
	ObjectID      string `json:"object_id" yaml:"object_id" validate:"required,uuid"`
	NeurodataType string `json:"neurodata_type" yaml:"neurodata_type" validate:"required,eq=ImagingPlane"`
	Name          string `json:"name" yaml:"name" validate:"required"`
	Description   string `json:"description" yaml:"description"`
	Location      string `json:"location" yaml:"location"`
}

// CoordinatesImageRecord is the wire form of an AnatomicalCoordinatesImage.
// At most one of Image and ImagingPlane is set; the domain constructor
// reports both or neither.
type CoordinatesImageRecord struct {
	ObjectID      string     `json:"object_id" yaml:"object_id" validate:"required,uuid"`
	NeurodataType string     `json:"neurodata_type" yaml:"neurodata_type" validate:"required,eq=AnatomicalCoordinatesImage"`
	Name          string     `json:"name" yaml:"name" validate:"required"`
	Description   string     `json:"description" yaml:"description"`
	Method        string     `json:"method" yaml:"method" validate:"required"`
	Space         string     `json:"space" yaml:"space" validate:"required,uuid"`
	Image         string     `json:"image,omitempty" yaml:"image,omitempty" validate:"omitempty,uuid"`
	ImagingPlane  string     `json:"imaging_plane,omitempty" yaml:"imaging_plane,omitempty" validate:"omitempty,uuid"`
	X             [][]Float  `json:"x" yaml:"x"`
	Y             [][]Float  `json:"y" yaml:"y"`
	Z             [][]Float  `json:"z" yaml:"z"`
	BrainRegion   [][]string `json:"brain_region,omitempty" yaml:"brain_region,omitempty"`
	BrainRegionID [][]int    `json:"brain_region_id,omitempty" yaml:"brain_region_id,omitempty"`
}

// LocalizationRecord is the wire form of a Localization.
type LocalizationRecord struct {
	NeurodataType string                   `json:"neurodata_type" yaml:"neurodata_type" validate:"required,eq=Localization"`
	Name          string                   `json:"name" yaml:"name" validate:"required"`
	Spaces        []SpaceRecord            `json:"spaces" yaml:"spaces" validate:"dive"`
	Tables        []CoordinatesTableRecord `json:"anatomical_coordinates_tables" yaml:"anatomical_coordinates_tables" validate:"dive"`
	Images        []CoordinatesImageRecord `json:"anatomical_coordinates_images" yaml:"anatomical_coordinates_images" validate:"dive"`
}
