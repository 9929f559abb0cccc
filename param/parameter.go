package param

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
)

// Parameter is a named value with a range, a default and an optional step.
// Choice parameters carry labels and store their index as a float.
type Parameter struct {
	ID      string
	Name    string
	Unit    string
	Min     float64
	Max     float64
	Default float64
	Step    float64
	Choices []string

	value atomic.Uint64
}

// NewParameter returns a continuous parameter set to def.
func NewParameter(id, name, unit string, min, max, def, step float64) *Parameter {
	p := &Parameter{
		ID:      id,
		Name:    name,
		Unit:    unit,
		Min:     min,
		Max:     max,
		Default: def,
		Step:    step,
	}
	p.Set(def)
	return p
}

// NewChoice returns a choice parameter over labels, set to index def.
func NewChoice(id, name string, labels []string, def int) *Parameter {
	p := &Parameter{
		ID:      id,
		Name:    name,
		Min:     0,
		Max:     float64(len(labels) - 1),
		Default: float64(def),
		Step:    1,
		Choices: append([]string(nil), labels...),
	}
	p.Set(p.Default)
	return p
}

// IsChoice reports whether p is a choice parameter.
func (p *Parameter) IsChoice() bool {
	return len(p.Choices) > 0
}

// Value returns the current plain value.
func (p *Parameter) Value() float64 {
	return math.Float64frombits(p.value.Load())
}

// Set clamps v to [Min, Max], snaps it to Step and stores it. Non-finite
// values are ignored. The stored value is returned.
func (p *Parameter) Set(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return p.Value()
	}
	v = p.Snap(v)
	p.value.Store(math.Float64bits(v))
	return v
}

// Snap clamps v into range and rounds it to the nearest step from Min.
func (p *Parameter) Snap(v float64) float64 {
	v = clamp(v, p.Min, p.Max)
	if p.Step > 0 {
		v = p.Min + math.Round((v-p.Min)/p.Step)*p.Step
		v = clamp(v, p.Min, p.Max)
	}
	return v
}

// Reset restores the default value.
func (p *Parameter) Reset() {
	p.Set(p.Default)
}

// Normalized returns the current value mapped to [0, 1].
func (p *Parameter) Normalized() float64 {
	return p.Normalize(p.Value())
}

// SetNormalized sets the value from a [0, 1] position.
func (p *Parameter) SetNormalized(n float64) float64 {
	return p.Set(p.Denormalize(clamp(n, 0, 1)))
}

// Normalize maps a plain value to [0, 1].
func (p *Parameter) Normalize(plain float64) float64 {
	if p.Max <= p.Min {
		return 0
	}
	return clamp((plain-p.Min)/(p.Max-p.Min), 0, 1)
}

// Denormalize maps a [0, 1] position to a plain value.
func (p *Parameter) Denormalize(n float64) float64 {
	return p.Min + n*(p.Max-p.Min)
}

// Index returns the current value as an integer index.
func (p *Parameter) Index() int {
	return int(math.Round(p.Value()))
}

// Format renders the current value for display.
func (p *Parameter) Format() string {
	return p.FormatValue(p.Value())
}

// FormatValue renders v for display.
func (p *Parameter) FormatValue(v float64) string {
	if p.IsChoice() {
		i := int(math.Round(clamp(v, p.Min, p.Max)))
		return p.Choices[i]
	}

	s := strconv.FormatFloat(v, 'f', p.decimals(), 64)
	if p.Unit == "" {
		return s
	}
	return s + " " + p.Unit
}

// Parse converts a display string into a plain value. Choice parameters
// accept either a label or an index.
func (p *Parameter) Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if p.IsChoice() {
		for i, label := range p.Choices {
			if strings.EqualFold(label, s) {
				return float64(i), nil
			}
		}
	}
	if p.Unit != "" {
		s = strings.TrimSpace(strings.TrimSuffix(s, p.Unit))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("param %s: %w", p.ID, err)
	}
	return v, nil
}

func (p *Parameter) decimals() int {
	switch {
	case p.Step <= 0:
		return 2
	case p.Step >= 1:
		return 0
	case p.Step >= 0.1:
		return 1
	default:
		return 2
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
