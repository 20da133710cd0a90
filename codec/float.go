package codec

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Float is a float64 on the wire. JSON has no literal for non-finite
// numbers, so NaN and the infinities are written as the strings "NaN",
// "Infinity" and "-Infinity"; null also reads as NaN. YAML uses its own
// .nan/.inf forms through the underlying float64.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (f *Float) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "null", `"NaN"`:
		*f = Float(math.NaN())
		return nil
	case `"Infinity"`:
		*f = Float(math.Inf(1))
		return nil
	case `"-Infinity"`:
		*f = Float(math.Inf(-1))
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("codec: invalid number %s", b)
	}
	*f = Float(v)
	return nil
}

func toFloats(v []float64) []Float {
	if v == nil {
		return nil
	}
	out := make([]Float, len(v))
	for i, f := range v {
		out[i] = Float(f)
	}
	return out
}

func fromFloats(v []Float) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}

func toFloatRows(rows [][]float64) [][]Float {
	if rows == nil {
		return nil
	}
	out := make([][]Float, len(rows))
	for i, r := range rows {
		out[i] = toFloats(r)
	}
	return out
}

func fromFloatRows(rows [][]Float) [][]float64 {
	if rows == nil {
		return nil
	}
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = fromFloats(r)
	}
	return out
}
