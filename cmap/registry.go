package cmap

import (
	"fmt"

	"github.com/differential-bio/diffcolors"
	"gonum.org/v1/plot/palette"
)

// Registry holds colormaps by name. Registration happens once from a single
// initialization path, so there is no internal locking; lookups afterwards
// are read-only and safe to share across goroutines.
type Registry struct {
	cmaps map[string]palette.ColorMap
	order []string
}

var _ diffcolors.Registrar = (*Registry)(nil)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cmaps: make(map[string]palette.ColorMap)}
}

// Register builds the colormap for spec and adds it under spec.Name.
// Registering a name twice is an error. It satisfies diffcolors.Registrar.
func (r *Registry) Register(spec diffcolors.GradientSpec) error {
	g, err := FromSpec(spec)
	if err != nil {
		return err
	}
	return r.Add(g.Name(), g)
}

// Add registers an already-built colormap under name.
func (r *Registry) Add(name string, cm palette.ColorMap) error {
	if _, exists := r.cmaps[name]; exists {
		return fmt.Errorf("colormap %q is already registered", name)
	}
	r.cmaps[name] = cm
	r.order = append(r.order, name)
	return nil
}

// Lookup returns the colormap registered under name.
func (r *Registry) Lookup(name string) (palette.ColorMap, bool) {
	cm, ok := r.cmaps[name]
	return cm, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered colormaps.
func (r *Registry) Len() int { return len(r.order) }

// Default is the process-wide registry the package-level functions operate
// on, so callers can refer to brand colormaps by name the way matplotlib
// users do after registration.
var Default = NewRegistry()

// Register adds the colormap for spec to the Default registry.
func Register(spec diffcolors.GradientSpec) error {
	return Default.Register(spec)
}

// Lookup returns a colormap from the Default registry.
func Lookup(name string) (palette.ColorMap, bool) {
	return Default.Lookup(name)
}

// Names returns the Default registry's names in registration order.
func Names() []string {
	return Default.Names()
}

// RegisterAll registers the whole brand gradient family with the Default
// registry. No variants means light, dark and full.
func RegisterAll(variants ...diffcolors.Variant) error {
	return diffcolors.RegisterAll(Default, variants...)
}
