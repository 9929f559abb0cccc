package eq

import "fmt"

// Slope selects the steepness of a cut filter.
type Slope int

// Supported slopes. Each step adds one second-order section.
const (
	Slope12 Slope = iota
	Slope24
	Slope36
	Slope48
)

// NumSlopes is the number of selectable slopes.
const NumSlopes = 4

var slopeLabels = [NumSlopes]string{"12 dB/Oct", "24 dB/Oct", "36 dB/Oct", "48 dB/Oct"}

// SlopeLabels returns the display labels in choice-index order.
func SlopeLabels() []string {
	return slopeLabels[:]
}

// SlopeFromIndex maps a choice index to a Slope, clamping out-of-range
// indices to the nearest end.
func SlopeFromIndex(i int) Slope {
	switch {
	case i < 0:
		return Slope12
	case i >= NumSlopes:
		return Slope48
	default:
		return Slope(i)
	}
}

// Valid reports whether s is one of the four defined slopes.
func (s Slope) Valid() bool {
	return s >= Slope12 && s <= Slope48
}

// Sections returns the number of biquad sections realizing s.
func (s Slope) Sections() int {
	return int(s) + 1
}

// Order returns the filter order realizing s (always even).
func (s Slope) Order() int {
	return 2 * s.Sections()
}

// DBPerOctave returns the asymptotic attenuation rate of s.
func (s Slope) DBPerOctave() float64 {
	return 6 * float64(s.Order())
}

func (s Slope) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Slope(%d)", int(s))
	}
	return slopeLabels[s]
}
