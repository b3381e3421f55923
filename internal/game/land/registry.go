package land

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/landsim/internal/game/mana"
)

var (
	// ErrMalformedVariant is returned when a variant's color set violates the
	// taxonomy rules.
	ErrMalformedVariant = errors.New("malformed land variant")
	// ErrUnknownVariant is returned when an ID is not registered.
	ErrUnknownVariant = errors.New("unknown land variant")
	// ErrDuplicateVariant is returned when an ID is registered twice.
	ErrDuplicateVariant = errors.New("duplicate land variant")
)

// Registry is the explicit arena of declared variants. It preserves
// registration order for enumeration.
//
// Registry is not safe for concurrent mutation; build it once and share it
// read-only.
type Registry struct {
	byID  map[string]*Variant
	order []*Variant
}

// NewRegistry returns an empty Registry.
//
// Postcondition: Returns a non-nil *Registry ready to accept registrations.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Variant)}
}

// RegisterBasic adds a single-color variant.
//
// Precondition: id must be non-empty; color must not be Colorless.
// Postcondition: Variant(id) returns the new variant, or an error is returned
// and the registry is unchanged.
func (r *Registry) RegisterBasic(id string, color mana.Color, cat Category) (*Variant, error) {
	if err := r.checkID(id); err != nil {
		return nil, err
	}
	colors := mana.NewColorSet(color)
	if colors.Len() != 1 {
		return nil, fmt.Errorf("land: %q: color %s is not a land color: %w", id, color, ErrMalformedVariant)
	}
	v := &Variant{ID: id, Colors: colors, Category: cat}
	r.add(v)
	return v, nil
}

// RegisterDual adds a two-color variant composed from two registered
// single-color parents.
//
// Precondition: parentA and parentB must already be registered.
// Postcondition: the new variant's Colors == Colors(parentA) ∪ Colors(parentB)
// and has exactly two members, or an error wrapping ErrMalformedVariant or
// ErrUnknownVariant is returned and the registry is unchanged.
func (r *Registry) RegisterDual(id, parentA, parentB string, cat Category) (*Variant, error) {
	if err := r.checkID(id); err != nil {
		return nil, err
	}
	a, ok := r.byID[parentA]
	if !ok {
		return nil, fmt.Errorf("land: %q: parent %q: %w", id, parentA, ErrUnknownVariant)
	}
	b, ok := r.byID[parentB]
	if !ok {
		return nil, fmt.Errorf("land: %q: parent %q: %w", id, parentB, ErrUnknownVariant)
	}
	if a.Colors.Len() != 1 || b.Colors.Len() != 1 {
		return nil, fmt.Errorf("land: %q: parents must be single-color, got %s and %s: %w",
			id, a.Colors, b.Colors, ErrMalformedVariant)
	}
	colors := a.Colors.Union(b.Colors)
	if colors.Len() != 2 {
		return nil, fmt.Errorf("land: %q: parents %q and %q produce %s, need two distinct colors: %w",
			id, parentA, parentB, colors, ErrMalformedVariant)
	}
	v := &Variant{ID: id, Colors: colors, Category: cat, Parents: []string{parentA, parentB}}
	r.add(v)
	return v, nil
}

// MustRegisterBasic is RegisterBasic that panics on error. Used for built-in
// tables only.
func (r *Registry) MustRegisterBasic(id string, color mana.Color, cat Category) *Variant {
	v, err := r.RegisterBasic(id, color, cat)
	if err != nil {
		panic("land: MustRegisterBasic: " + err.Error())
	}
	return v
}

// MustRegisterDual is RegisterDual that panics on error. Used for built-in
// tables only.
func (r *Registry) MustRegisterDual(id, parentA, parentB string, cat Category) *Variant {
	v, err := r.RegisterDual(id, parentA, parentB, cat)
	if err != nil {
		panic("land: MustRegisterDual: " + err.Error())
	}
	return v
}

// Variant returns the variant with the given ID.
//
// Postcondition: ok is true iff id is registered.
func (r *Registry) Variant(id string) (*Variant, bool) {
	v, ok := r.byID[id]
	return v, ok
}

// Lookup returns the variant with the given ID or an error wrapping
// ErrUnknownVariant.
func (r *Registry) Lookup(id string) (*Variant, error) {
	v, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("land: %q: %w", id, ErrUnknownVariant)
	}
	return v, nil
}

// All returns every registered variant in registration order.
func (r *Registry) All() []*Variant {
	out := make([]*Variant, len(r.order))
	copy(out, r.order)
	return out
}

// ByCategory returns the variants tagged cat in registration order.
func (r *Registry) ByCategory(cat Category) []*Variant {
	var out []*Variant
	for _, v := range r.order {
		if v.Category == cat {
			out = append(out, v)
		}
	}
	return out
}

// Producing returns every variant that can produce c, in registration order.
func (r *Registry) Producing(c mana.Color) []*Variant {
	var out []*Variant
	for _, v := range r.order {
		if v.Produces(c) {
			out = append(out, v)
		}
	}
	return out
}

// Len returns the number of registered variants.
func (r *Registry) Len() int {
	return len(r.order)
}

// Validate re-checks the dual-land union invariant for every registered
// variant.
//
// Postcondition: Returns nil, or an error wrapping ErrMalformedVariant that
// lists every violation.
func (r *Registry) Validate() error {
	var errs []error
	for _, v := range r.order {
		n := v.Colors.Len()
		if n < 1 || n > 2 {
			errs = append(errs, fmt.Errorf("%q has %d colors", v.ID, n))
			continue
		}
		if n == 1 {
			continue
		}
		if len(v.Parents) != 2 {
			errs = append(errs, fmt.Errorf("%q is dual but declares %d parents", v.ID, len(v.Parents)))
			continue
		}
		a, okA := r.byID[v.Parents[0]]
		b, okB := r.byID[v.Parents[1]]
		if !okA || !okB {
			errs = append(errs, fmt.Errorf("%q has unregistered parents %v", v.ID, v.Parents))
			continue
		}
		if a.Colors.Union(b.Colors) != v.Colors {
			errs = append(errs, fmt.Errorf("%q colors %s != %s ∪ %s", v.ID, v.Colors, a.Colors, b.Colors))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("land: registry validation failed: %w: %w", ErrMalformedVariant, errors.Join(errs...))
	}
	return nil
}

func (r *Registry) checkID(id string) error {
	if id == "" {
		return fmt.Errorf("land: empty variant ID: %w", ErrMalformedVariant)
	}
	if id == NonResource.ID {
		return fmt.Errorf("land: %q is reserved: %w", id, ErrDuplicateVariant)
	}
	if _, exists := r.byID[id]; exists {
		return fmt.Errorf("land: %q: %w", id, ErrDuplicateVariant)
	}
	return nil
}

func (r *Registry) add(v *Variant) {
	r.byID[v.ID] = v
	r.order = append(r.order, v)
}
