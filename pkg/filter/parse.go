package filter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-sample-renderer/pkg/core"
)

// ErrUnknownFilter is returned by Parse for names it doesn't recognize
var ErrUnknownFilter = errors.New("unknown filter")

var defaults = map[string]func() core.Filter{
	"box":         func() core.Filter { return DefaultBox() },
	"triangle":    func() core.Filter { return DefaultTriangle() },
	"gaussian":    func() core.Filter { return DefaultGaussian() },
	"mitchell":    func() core.Filter { return DefaultMitchell() },
	"lanczos":     func() core.Filter { return DefaultLanczosSinc() },
	"catmull-rom": func() core.Filter { return CatmullRom() },
}

// Parse returns the default-configured filter with the given name
func Parse(name string) (core.Filter, error) {
	create, ok := defaults[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownFilter, name, strings.Join(Names(), ", "))
	}
	return create(), nil
}

// Names returns the filter names accepted by Parse, sorted
func Names() []string {
	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
