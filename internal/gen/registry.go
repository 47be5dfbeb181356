package gen

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"parcelable-generator/internal/adapter"
	"parcelable-generator/internal/config"
)

// Registry is an ordered list of adapters plus an optional default adapter.
// It is read-only after construction.
type Registry struct {
	adapters []adapter.Adapter
	fallback adapter.Adapter
}

// NewRegistry creates a registry. Adapters are checked in the given order;
// fallback may be nil.
func NewRegistry(fallback adapter.Adapter, adapters ...adapter.Adapter) *Registry {
	return &Registry{
		adapters: slices.Clone(adapters),
		fallback: fallback,
	}
}

// StandardRegistry builds the registry described by cfg: native types in
// table order, then primitive boolean, list, enum and the calendar family,
// with Parcelable as default adapter when enabled.
func StandardRegistry(cfg *config.Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	enumPattern, err := cfg.EnumRegexp()
	if err != nil {
		return nil, err
	}

	adapters := make([]adapter.Adapter, 0, len(cfg.NativeTypes)+6)
	for _, nt := range cfg.NativeTypes {
		adapters = append(adapters, adapter.NewNative(nt.Type, nt.Suffix))
	}

	adapters = append(adapters,
		adapter.PrimitiveBoolean{},
		adapter.NewList(cfg.PreferredListType),
		adapter.NewEnum(enumPattern),
		adapter.Calendar{},
		adapter.GregorianCalendar{},
		adapter.XMLGregorianCalendar{},
	)

	var fallback adapter.Adapter
	if cfg.UseDefaultAdapter {
		fallback = adapter.Parcelable{}
	}

	return NewRegistry(fallback, adapters...), nil
}

// Adapters returns the registered adapters in match order.
func (r *Registry) Adapters() []adapter.Adapter {
	return slices.Clone(r.adapters)
}

// Fallback returns the default adapter, or nil.
func (r *Registry) Fallback() adapter.Adapter {
	return r.fallback
}

// Resolve returns every adapter matching typeName in registration order.
// When none matches it returns the default adapter alone and reports
// fallback as true; without a default adapter the result is empty.
func (r *Registry) Resolve(typeName string) (matched []adapter.Adapter, fallback bool) {
	matched = lo.Filter(r.adapters, func(a adapter.Adapter, _ int) bool {
		return a.Matches(typeName)
	})

	if len(matched) == 0 && r.fallback != nil {
		return []adapter.Adapter{r.fallback}, true
	}

	return matched, false
}

// KnownTypeNames lists the literal type names the registered adapters
// accept. Pattern based adapters (list, enum, default) are not listed.
func (r *Registry) KnownTypeNames() []string {
	return lo.FlatMap(r.adapters, func(a adapter.Adapter, _ int) []string {
		switch v := a.(type) {
		case *adapter.Native:
			return []string{v.TypeName()}
		case adapter.PrimitiveBoolean:
			return []string{"boolean"}
		case adapter.Calendar:
			return []string{"Calendar"}
		case adapter.GregorianCalendar:
			return []string{"GregorianCalendar"}
		case adapter.XMLGregorianCalendar:
			return []string{"XMLGregorianCalendar"}
		default:
			return nil
		}
	})
}
