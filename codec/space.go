package codec

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	anatloc "github.com/catalystneuro/ndx-anatomical-localization"
)

// Space returns the codec between SpaceRecord and *anatloc.Space.
func Space() anatloc.Codec[SpaceRecord, *anatloc.Space] { return spaceCodec{} }

type spaceCodec struct{}

func (spaceCodec) Decode(ctx context.Context, rec SpaceRecord) (*anatloc.Space, error) {
	if err := ValidateRecord(rec); err != nil {
		return nil, err
	}
	if rec.NeurodataType == string(anatloc.SpaceTypeAllenCCFv3) {
		return decodeAllenCCFv3(rec)
	}
	return anatloc.NewSpace(anatloc.SpaceConfig{
		ObjectID:    parseID(rec.ObjectID),
		Name:        rec.Name,
		SpaceName:   rec.SpaceName,
		Origin:      rec.Origin,
		Units:       rec.Units,
		Orientation: rec.Orientation,
		Extent:      rec.Extent,
	})
}

// decodeAllenCCFv3 rebuilds the fixed space and rejects records whose stored
// values disagree with the constants.
func decodeAllenCCFv3(rec SpaceRecord) (*anatloc.Space, error) {
	s := anatloc.AllenCCFv3Space(rec.Name)
	s.ObjectID = parseID(rec.ObjectID)
	var iss anatloc.Issues
	check := func(field, got, want string) {
		if got != want {
			iss = append(iss, anatloc.Root().Field(field).Issue(anatloc.CodeFixedValue, map[string]string{
				"field": field, "type": string(anatloc.SpaceTypeAllenCCFv3), "want": strconv.Quote(want),
			}))
		}
	}
	check("space_name", rec.SpaceName, s.SpaceName)
	check("origin", rec.Origin, s.Origin)
	check("units", rec.Units, s.Units)
	check("orientation", rec.Orientation, string(s.Orientation))
	check("extent", formatFloats(rec.Extent), formatFloats(s.Extent))
	if len(iss) > 0 {
		return nil, iss
	}
	return s, nil
}

func formatFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (spaceCodec) Encode(ctx context.Context, s *anatloc.Space) (SpaceRecord, error) {
	if s == nil {
		return SpaceRecord{}, fmt.Errorf("codec: nil space")
	}
	typ := s.Type
	if typ == "" {
		typ = anatloc.SpaceTypeSpace
	}
	rec := SpaceRecord{
		ObjectID:      s.ObjectID.String(),
		NeurodataType: string(typ),
		Name:          s.Name,
		SpaceName:     s.SpaceName,
		Origin:        s.Origin,
		Units:         s.Units,
		Orientation:   string(s.Orientation),
		Extent:        s.Extent,
	}
	if err := ValidateRecord(rec); err != nil {
		return SpaceRecord{}, err
	}
	return rec, nil
}
