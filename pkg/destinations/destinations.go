// Package destinations computes publication-ready rendering parameters for
// vector-graphics editors and scopes them onto the process-wide rc store.
//
// A destination is the editor a figure will be imported into. Most editors
// (Adobe Illustrator, Affinity Designer, Inkscape) honor the typographic
// convention that 1pt = 1/72 inch and need no correction. Figma instead
// treats 1pt as 1 CSS pixel (1/96 inch) and additionally re-scales imported
// text by 96/72. For a figure authored at a nominal physical size and saved
// at a fixed raster resolution R, the net correction that makes it import
// at the correct physical size is R/96 — exactly 300/96 = 3.125 for the
// default 300dpi output. See [Destination.Factor].
//
// Unrecognized destination names are deliberately not an error: they resolve
// to the default destination with factor 1.0, matching the permissive
// contract of the underlying editors (there is nothing to validate against).
package destinations

import (
	"slices"
	"sync"

	"github.com/matzehuels/pubplot/pkg/errors"
)

// cssPixelsPerInch is the CSS pixel density Figma assumes when reading
// physical units from an SVG.
const cssPixelsPerInch = 96.0

// DefaultSaveDPI is the raster resolution figures are saved at. It stays
// fixed regardless of destination; only the authored sizes scale.
const DefaultSaveDPI = 300.0

// Destination describes how a vector-graphics editor interprets physical
// units in imported SVG/PDF output.
type Destination struct {
	// Name identifies the destination, e.g. "figma".
	Name string

	// CSSPixelUnits is set for editors that read 1pt as 1 CSS pixel
	// (1/96 inch) instead of the typographic 1/72 inch.
	CSSPixelUnits bool

	// SaveDPI is the raster resolution the figure is exported at.
	SaveDPI float64
}

// Factor returns the multiplicative correction to apply to authored sizes
// (figure dimensions, font sizes) so the figure imports at the correct
// physical size: SaveDPI/96 for CSS-pixel editors, 1.0 otherwise.
func (d Destination) Factor() float64 {
	if d.CSSPixelUnits {
		return d.SaveDPI / cssPixelsPerInch
	}
	return 1.0
}

// Default is the no-op destination every unrecognized name resolves to.
var Default = Destination{Name: "default", SaveDPI: DefaultSaveDPI}

var (
	mu       sync.RWMutex
	registry = builtins()
)

func builtins() map[string]Destination {
	return map[string]Destination{
		"figma": {Name: "figma", CSSPixelUnits: true, SaveDPI: DefaultSaveDPI},
	}
}

// Register adds a destination to the registry, typically from a config file
// (see LoadConfig). Registering a name that already exists — including the
// built-in ones — is rejected so configs cannot silently change the meaning
// of "figma".
func Register(d Destination) error {
	if d.Name == "" {
		return errors.New(errors.ErrCodeInvalidValue, "destination name must not be empty")
	}
	if d.SaveDPI <= 0 {
		return errors.New(errors.ErrCodeInvalidValue, "destination %s: save-dpi must be positive, got %v", d.Name, d.SaveDPI)
	}

	mu.Lock()
	defer mu.Unlock()
	// The default destination lives outside the registry; letting a config
	// claim its name would shadow it and double it in Names.
	if _, exists := registry[d.Name]; exists || d.Name == Default.Name {
		return errors.New(errors.ErrCodeDuplicateDestination, "destination %s is already registered", d.Name)
	}
	registry[d.Name] = d
	return nil
}

// Lookup resolves a destination name. Unknown names resolve to [Default];
// there is no validation error by design.
func Lookup(name string) Destination {
	mu.RLock()
	defer mu.RUnlock()
	if d, ok := registry[name]; ok {
		return d
	}
	return Default
}

// Names returns all registered destination names in sorted order, with the
// default destination first.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry)+1)
	for name := range registry {
		out = append(out, name)
	}
	slices.Sort(out)
	return append([]string{Default.Name}, out...)
}

// reset restores the registry to the built-in destinations. Tests only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = builtins()
}
