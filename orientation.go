package anatloc

import (
	"strings"
)

// Axis is one of the three anatomical axis pairs.
type Axis int

const (
	AxisAP Axis = iota + 1 // anterior-posterior
	AxisLR                 // left-right
	AxisSI                 // superior-inferior (dorsal-ventral)
)

func (a Axis) String() string {
	switch a {
	case AxisAP:
		return "AP"
	case AxisLR:
		return "LR"
	case AxisSI:
		return "SI"
	default:
		return "?"
	}
}

// Alphabet is the set of letters an orientation string may use, each mapped to
// the axis pair it names.
type Alphabet struct {
	letters string
	axes    map[rune]Axis
}

var (
	// AlphabetRAS is the canonical alphabet: A,P,L,R,S,I.
	AlphabetRAS = Alphabet{
		letters: "APLRSI",
		axes:    map[rune]Axis{'A': AxisAP, 'P': AxisAP, 'L': AxisLR, 'R': AxisLR, 'S': AxisSI, 'I': AxisSI},
	}

	// AlphabetLegacy uses D/V for the dorsal-ventral axis.
	//
	// Deprecated: use AlphabetRAS; MigrateLegacyOrientation rewrites old codes.
	AlphabetLegacy = Alphabet{
		letters: "APLRDV",
		axes:    map[rune]Axis{'A': AxisAP, 'P': AxisAP, 'L': AxisLR, 'R': AxisLR, 'D': AxisSI, 'V': AxisSI},
	}
)

// Letters returns the six letters in declaration order.
func (a Alphabet) Letters() string { return a.letters }

// quoted renders the letters as 'A', 'P', ... for messages.
func (a Alphabet) quoted() string {
	parts := make([]string, len(a.letters))
	for i := range a.letters {
		parts[i] = "'" + a.letters[i:i+1] + "'"
	}
	return strings.Join(parts, ", ")
}

// Validate checks that s has three letters of the alphabet naming three
// distinct axis pairs. Length counts runes. Every violation found is reported.
func (a Alphabet) Validate(s string) error {
	p := Root().Field("orientation")
	letters := []rune(s)
	if len(letters) != 3 {
		return Issues{p.Issue(CodeOrientationLength, nil)}
	}
	var iss Issues
	seen := map[Axis]bool{}
	for i, r := range letters {
		ax, ok := a.axes[r]
		if !ok {
			iss = append(iss, p.Index(i).Issue(CodeOrientationLetter, map[string]string{"letters": a.quoted()}))
			continue
		}
		seen[ax] = true
	}
	if len(iss) > 0 {
		return iss
	}
	if len(seen) != 3 {
		return Issues{p.Issue(CodeOrientationAxis, nil)}
	}
	return nil
}

// ValidateOrientation validates s against the canonical alphabet.
func ValidateOrientation(s string) error { return AlphabetRAS.Validate(s) }

// Orientation is a validated three-letter code naming the positive direction
// of the x, y and z axes, e.g. "RAS".
type Orientation string

// ParseOrientation validates s and returns it as an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	if err := ValidateOrientation(s); err != nil {
		return "", err
	}
	return Orientation(s), nil
}

func (o Orientation) String() string { return string(o) }

// Axes returns the axis pair of x, y and z.
func (o Orientation) Axes() [3]Axis {
	var out [3]Axis
	for i := 0; i < 3 && i < len(o); i++ {
		out[i] = AlphabetRAS.axes[rune(o[i])]
	}
	return out
}

// MigrateLegacyOrientation validates s against the legacy D/V alphabet and
// rewrites it to the canonical one (D->S, V->I).
func MigrateLegacyOrientation(s string) (string, error) {
	if err := AlphabetLegacy.Validate(s); err != nil {
		return "", err
	}
	return strings.NewReplacer("D", "S", "V", "I").Replace(s), nil
}
