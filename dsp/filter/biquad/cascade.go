package biquad

import (
	"errors"
	"fmt"
)

// MaxCascadeSections is the number of resident sections in a [Cascade].
// It bounds the realizable order to 2*MaxCascadeSections.
const MaxCascadeSections = 4

// MaxOrder is the highest even order a [Cascade] can realize.
const MaxOrder = 2 * MaxCascadeSections

// Errors reported by [Cascade] for contract violations.
var (
	ErrInvalidOrder         = errors.New("biquad: order must be one of 2, 4, 6, 8")
	ErrSectionCountMismatch = errors.New("biquad: coefficient count does not match active sections")
)

// CascadeCoefficients is a fixed-capacity, value-typed list of section
// coefficients. It is returned by value from the design functions so that
// computing a new set never touches the heap.
type CascadeCoefficients struct {
	Sections [MaxCascadeSections]Coefficients
	N        int
}

// Order returns the filter order realized by the first N sections.
func (cc *CascadeCoefficients) Order() int {
	return 2 * cc.N
}

// Slice returns the populated sections. The result aliases cc.
func (cc *CascadeCoefficients) Slice() []Coefficients {
	return cc.Sections[:cc.N]
}

// Push appends c and reports whether there was room for it.
func (cc *CascadeCoefficients) Push(c Coefficients) bool {
	if cc.N >= MaxCascadeSections {
		return false
	}
	cc.Sections[cc.N] = c
	cc.N++
	return true
}

// Cascade is a fixed-capacity series of biquad sections. The first
// ActiveCount sections process audio, the rest are bypassed but stay
// resident, so switching orders never allocates.
//
// The zero value is a transparent cascade with no active sections.
type Cascade struct {
	sections [MaxCascadeSections]Section
	active   int
}

// NewCascade returns a cascade configured for order with passthrough
// coefficients in every active section.
func NewCascade(order int) (*Cascade, error) {
	c := &Cascade{}
	for i := range c.sections {
		c.sections[i].Coefficients = Passthrough()
		c.sections[i].SetEnabled(false)
	}
	if err := c.SetOrder(order); err != nil {
		return nil, err
	}
	return c, nil
}

// ValidOrder reports whether order can be realized by a Cascade.
func ValidOrder(order int) bool {
	return order >= 2 && order <= MaxOrder && order%2 == 0
}

// SetOrder activates order/2 sections and bypasses the rest. Orders outside
// {2, 4, 6, 8} are rejected and leave the cascade unchanged; the order is
// never rounded to a neighbouring valid value.
//
// Sections that become active are reset so stale state from an earlier
// activation cannot leak into the output.
func (c *Cascade) SetOrder(order int) error {
	if !ValidOrder(order) {
		return contractViolation(fmt.Errorf("%w: got %d", ErrInvalidOrder, order))
	}

	active := order / 2
	for i := range c.sections {
		s := &c.sections[i]
		enable := i < active
		if enable && !s.Enabled() {
			s.Reset()
		}
		s.SetEnabled(enable)
	}
	c.active = active

	return nil
}

// SetCoefficients assigns one coefficient set per active section, in order.
// cc.N must equal ActiveCount; on mismatch nothing is changed.
func (c *Cascade) SetCoefficients(cc CascadeCoefficients) error {
	if cc.N != c.active {
		return contractViolation(fmt.Errorf("%w: got %d, active %d", ErrSectionCountMismatch, cc.N, c.active))
	}

	for i := 0; i < cc.N; i++ {
		c.sections[i].SetCoefficients(cc.Sections[i])
	}

	return nil
}

// Configure sets the order implied by cc and then its coefficients.
func (c *Cascade) Configure(cc CascadeCoefficients) error {
	if err := c.SetOrder(cc.Order()); err != nil {
		return err
	}
	return c.SetCoefficients(cc)
}

// ProcessSample threads x through the active sections in order.
func (c *Cascade) ProcessSample(x float64) float64 {
	for i := 0; i < c.active; i++ {
		x = c.sections[i].ProcessSample(x)
	}
	return x
}

// ProcessBlock filters buf in place through the active sections.
func (c *Cascade) ProcessBlock(buf []float64) {
	for i := 0; i < c.active; i++ {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears the state of every resident section.
func (c *Cascade) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// ActiveCount returns the number of sections currently processing audio.
func (c *Cascade) ActiveCount() int { return c.active }

// Order returns the realized filter order (2 per active section).
func (c *Cascade) Order() int { return 2 * c.active }

// Section returns a pointer to the i-th resident section for inspection.
func (c *Cascade) Section(i int) *Section {
	return &c.sections[i]
}

// State returns the delay-line state of every resident section.
func (c *Cascade) State() [MaxCascadeSections][2]float64 {
	var st [MaxCascadeSections][2]float64
	for i := range c.sections {
		st[i] = c.sections[i].State()
	}
	return st
}

// SetState restores a snapshot taken with State.
func (c *Cascade) SetState(st [MaxCascadeSections][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(st[i])
	}
}
