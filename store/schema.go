package store

import (
	"github.com/catalystneuro/ndx-anatomical-localization/codec"
	"github.com/catalystneuro/ndx-anatomical-localization/jsonschema"
	"github.com/catalystneuro/ndx-anatomical-localization/namespace"
)

const uuidPattern = `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`

// JSONSchema describes the container document. Descriptions come from the
// embedded namespace.
func JSONSchema() (*jsonschema.Schema, error) {
	ns, err := namespace.Load()
	if err != nil {
		return nil, err
	}
	doc := func(typ, field string) string { return ns.FieldDoc(typ, field) }

	objectID := &jsonschema.Schema{Type: "string", Format: "uuid", Pattern: uuidPattern}
	ref := func(desc string) *jsonschema.Schema {
		return &jsonschema.Schema{Type: "string", Format: "uuid", Pattern: uuidPattern, Description: desc}
	}
	nonEmpty := func(desc string) *jsonschema.Schema {
		s := jsonschema.String(desc)
		s.MinLength = jsonschema.Int(1)
		return s
	}
	typeConst := func(names ...string) *jsonschema.Schema {
		s := &jsonschema.Schema{Type: "string"}
		for _, n := range names {
			s.Enum = append(s.Enum, n)
		}
		return s
	}
	// Non-finite values travel as strings in JSON.
	float := func() *jsonschema.Schema {
		return &jsonschema.Schema{OneOf: []*jsonschema.Schema{
			jsonschema.Number(""),
			{Type: "string", Enum: []any{"NaN", "Infinity", "-Infinity"}},
		}}
	}
	matrix := func(item *jsonschema.Schema, desc string) *jsonschema.Schema {
		return jsonschema.Array(jsonschema.Array(item, ""), desc)
	}

	orientation := nonEmpty(doc("Space", "orientation"))
	orientation.Pattern = `^[APLRSI]{3}$`
	extent := jsonschema.Array(&jsonschema.Schema{Type: "number", ExclusiveMinimum: jsonschema.Float(0)}, doc("Space", "extent"))
	extent.MinItems, extent.MaxItems = jsonschema.Int(3), jsonschema.Int(3)

	space := jsonschema.Object(ns.Type("Space").Doc, map[string]*jsonschema.Schema{
		"object_id":      objectID,
		"neurodata_type": typeConst("Space", "AllenCCFv3Space"),
		"name":           nonEmpty(""),
		"space_name":     nonEmpty(doc("Space", "space_name")),
		"origin":         jsonschema.String(doc("Space", "origin")),
		"units":          jsonschema.String(doc("Space", "units")),
		"orientation":    orientation,
		"extent":         extent,
	}, "object_id", "neurodata_type", "name", "space_name", "orientation")

	column := jsonschema.Object("a table column; kind selects the populated data field", map[string]*jsonschema.Schema{
		"name":        nonEmpty(""),
		"description": jsonschema.String(""),
		"kind":        typeConst("float", "int", "text", "region"),
		"float_data":  jsonschema.Array(float(), ""),
		"int_data":    jsonschema.Array(jsonschema.Integer(""), "values, or row indices into target for region columns"),
		"text_data":   jsonschema.Array(jsonschema.String(""), ""),
		"target":      ref("object id of the table a region column points into"),
	}, "name", "kind")
	ids := jsonschema.Array(jsonschema.Integer(""), "row ids")

	tbl := jsonschema.Object("a generic table", map[string]*jsonschema.Schema{
		"object_id":      objectID,
		"neurodata_type": typeConst(codec.TypeDynamicTable),
		"name":           nonEmpty(""),
		"description":    jsonschema.String(""),
		"id":             ids,
		"columns":        jsonschema.Array(column, ""),
	}, "object_id", "neurodata_type", "name")

	coordsTable := jsonschema.Object(ns.Type("AnatomicalCoordinatesTable").Doc, map[string]*jsonschema.Schema{
		"object_id":      objectID,
		"neurodata_type": typeConst(codec.TypeAnatomicalCoordinatesTable),
		"name":           nonEmpty(""),
		"description":    jsonschema.String(""),
		"method":         nonEmpty(doc("AnatomicalCoordinatesTable", "method")),
		"space":          ref(doc("AnatomicalCoordinatesTable", "space")),
		"id":             ids,
		"columns":        jsonschema.Array(column, ""),
	}, "object_id", "neurodata_type", "name", "method", "space")

	shape := jsonschema.Array(&jsonschema.Schema{Type: "integer", Minimum: jsonschema.Float(0)}, "")
	shape.MinItems = jsonschema.Int(2)
	image := jsonschema.Object("an image with row-major data", map[string]*jsonschema.Schema{
		"object_id":      objectID,
		"neurodata_type": typeConst(codec.TypeImage),
		"name":           nonEmpty(""),
		"description":    jsonschema.String(""),
		"shape":          shape,
		"data":           jsonschema.Array(float(), ""),
	}, "object_id", "neurodata_type", "name", "shape")

	plane := jsonschema.Object("an imaging plane", map[string]*jsonschema.Schema{
		"object_id":      objectID,
		"neurodata_type": typeConst(codec.TypeImagingPlane),
		"name":           nonEmpty(""),
		"description":    jsonschema.String(""),
		"location":       jsonschema.String(""),
	}, "object_id", "neurodata_type", "name")

	const img = "AnatomicalCoordinatesImage"
	coordsImage := jsonschema.Object(ns.Type(img).Doc, map[string]*jsonschema.Schema{
		"object_id":       objectID,
		"neurodata_type":  typeConst(codec.TypeAnatomicalCoordinatesImage),
		"name":            nonEmpty(""),
		"description":     jsonschema.String(""),
		"method":          nonEmpty(doc(img, "method")),
		"space":           ref(doc(img, "space")),
		"image":           ref(doc(img, "image")),
		"imaging_plane":   ref(doc(img, "imaging_plane")),
		"x":               matrix(float(), doc(img, "x")),
		"y":               matrix(float(), doc(img, "y")),
		"z":               matrix(float(), doc(img, "z")),
		"brain_region":    matrix(jsonschema.String(""), doc(img, "brain_region")),
		"brain_region_id": matrix(jsonschema.Integer(""), doc(img, "brain_region_id")),
	}, "object_id", "neurodata_type", "name", "method", "space", "x", "y", "z")

	loc := jsonschema.Object(ns.Type("Localization").Doc, map[string]*jsonschema.Schema{
		"neurodata_type":                typeConst(codec.TypeLocalization),
		"name":                          nonEmpty(""),
		"spaces":                        jsonschema.Array(space, ""),
		"anatomical_coordinates_tables": jsonschema.Array(coordsTable, ""),
		"anatomical_coordinates_images": jsonschema.Array(coordsImage, ""),
	}, "neurodata_type", "name")

	nsName := &jsonschema.Schema{Type: "string", Const: ns.Name}
	root := jsonschema.Object(ns.Doc, map[string]*jsonschema.Schema{
		"namespace":           nsName,
		"version":             nonEmpty("namespace version the document was written with"),
		"identifier":          nonEmpty("unique identifier of the file"),
		"session_description": jsonschema.String(""),
		"tables":              jsonschema.Array(tbl, "tables that coordinate tables link to"),
		"images":              jsonschema.Array(image, ""),
		"imaging_planes":      jsonschema.Array(plane, ""),
		"localization":        loc,
	}, "namespace", "version", "identifier")
	root.Schema = jsonschema.Draft
	root.Title = ns.Name
	return root, nil
}
