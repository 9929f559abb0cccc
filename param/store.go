package param

import (
	"errors"
	"fmt"
	"math"
)

// Errors reported by [Store].
var (
	ErrUnknownParameter   = errors.New("param: unknown parameter")
	ErrDuplicateParameter = errors.New("param: duplicate parameter id")
	ErrInvalidValue       = errors.New("param: value must be finite")
)

// Store is an id-addressed set of parameters in a fixed order.
type Store struct {
	byID  map[string]*Parameter
	order []*Parameter
}

// NewStore builds a store from params. IDs must be unique.
func NewStore(params ...*Parameter) (*Store, error) {
	s := &Store{
		byID:  make(map[string]*Parameter, len(params)),
		order: make([]*Parameter, 0, len(params)),
	}
	for _, p := range params {
		if _, ok := s.byID[p.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateParameter, p.ID)
		}
		s.byID[p.ID] = p
		s.order = append(s.order, p)
	}
	return s, nil
}

// Get returns the parameter with the given id, or nil.
func (s *Store) Get(id string) *Parameter {
	return s.byID[id]
}

// Lookup returns the parameter with the given id.
func (s *Store) Lookup(id string) (*Parameter, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParameter, id)
	}
	return p, nil
}

// Value returns the current value of id, or NaN if it does not exist.
func (s *Store) Value(id string) float64 {
	p, ok := s.byID[id]
	if !ok {
		return math.NaN()
	}
	return p.Value()
}

// Set stores v (clamped and snapped) into parameter id and returns the
// value actually stored.
func (s *Store) Set(id string, v float64) (float64, error) {
	p, err := s.Lookup(id)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return p.Value(), fmt.Errorf("%w: %s=%v", ErrInvalidValue, id, v)
	}
	return p.Set(v), nil
}

// All returns the parameters in layout order.
func (s *Store) All() []*Parameter {
	return append([]*Parameter(nil), s.order...)
}

// Reset restores every parameter to its default.
func (s *Store) Reset() {
	for _, p := range s.order {
		p.Reset()
	}
}

// Values returns a copy of all current values keyed by id.
func (s *Store) Values() map[string]float64 {
	out := make(map[string]float64, len(s.order))
	for _, p := range s.order {
		out[p.ID] = p.Value()
	}
	return out
}

// Apply sets every value in values, stopping at the first error.
func (s *Store) Apply(values map[string]float64) error {
	for id, v := range values {
		if _, err := s.Set(id, v); err != nil {
			return err
		}
	}
	return nil
}
