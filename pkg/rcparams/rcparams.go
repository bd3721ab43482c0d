// Package rcparams implements the process-wide rendering-configuration
// store that the rest of pubplot reads and scopes.
//
// The Go plotting ecosystem has no equivalent of a global, dictionary-like
// rendering configuration (matplotlib's rcParams), so this package provides
// one: a small set of documented keys, a type-checked store, and a scoped
// override mechanism. Adapters elsewhere (see pkg/canvascfg) translate the
// stored values into the types a concrete plotting library expects.
//
// # Keys
//
// Keys are dotted setting names grouped by concern: font.* for the base
// typeface and size, axes.*/xtick.*/ytick.*/legend.* for element text sizes,
// figure.* for figure-level sizes and the interactive display resolution,
// and savefig.*/svg.*/pdf.* for output.
//
// # Concurrency
//
// A Store is safe for concurrent reads and writes. Scoped overrides
// ([Store.Push]) of the same store from concurrent goroutines are NOT safe
// to interleave: the store is deliberately process-global state, overrides
// restore in LIFO order, and two overlapping scopes would each capture and
// restore the other's values. Callers must not run overlapping destination
// scopes against the same store from different goroutines.
package rcparams

import "slices"

// Key is a dotted rendering-setting name, e.g. "font.size".
type Key string

// Documented setting keys.
const (
	KeyFontFamily    Key = "font.family"
	KeyFontSansSerif Key = "font.sans-serif"
	KeyFontSize      Key = "font.size"

	KeyAxesTitleSize  Key = "axes.titlesize"
	KeyAxesLabelSize  Key = "axes.labelsize"
	KeyXTickLabelSize Key = "xtick.labelsize"
	KeyYTickLabelSize Key = "ytick.labelsize"
	KeyLegendFontSize Key = "legend.fontsize"

	KeyFigureTitleSize  Key = "figure.titlesize"
	KeyFigureLabelSize  Key = "figure.labelsize"
	KeyFigureDPI        Key = "figure.dpi"
	KeyFigureAutoLayout Key = "figure.autolayout"

	KeySaveDPI    Key = "savefig.dpi"
	KeySaveFormat Key = "savefig.format"

	KeySVGFontType Key = "svg.fonttype"
	KeyPDFFontType Key = "pdf.fonttype"
)

// Params is a transient mapping of setting keys to values, built by
// pkg/destinations and applied to a Store as a scoped override. It is a
// plain value, not shared state; treat it as immutable once built.
type Params map[Key]any

// kind is the value type a key accepts.
type kind int

const (
	kindString kind = iota
	kindStringList
	kindFloat
	kindBool
	kindInt
)

// registry maps every known key to its value kind. Set and Push reject
// keys that are not listed here.
var registry = map[Key]kind{
	KeyFontFamily:    kindString,
	KeyFontSansSerif: kindStringList,
	KeyFontSize:      kindFloat,

	KeyAxesTitleSize:  kindFloat,
	KeyAxesLabelSize:  kindFloat,
	KeyXTickLabelSize: kindFloat,
	KeyYTickLabelSize: kindFloat,
	KeyLegendFontSize: kindFloat,

	KeyFigureTitleSize:  kindFloat,
	KeyFigureLabelSize:  kindFloat,
	KeyFigureDPI:        kindFloat,
	KeyFigureAutoLayout: kindBool,

	KeySaveDPI:    kindFloat,
	KeySaveFormat: kindString,

	KeySVGFontType: kindString,
	KeyPDFFontType: kindInt,
}

// Defaults returns the baseline configuration a fresh Store starts from.
// Values follow common publication conventions: a 10pt sans-serif face,
// 100dpi interactive display, and 300dpi SVG output with text kept as text.
func Defaults() Params {
	return Params{
		KeyFontFamily:    "sans-serif",
		KeyFontSansSerif: []string{"Arial", "Helvetica", "DejaVu Sans"},
		KeyFontSize:      10.0,

		KeyAxesTitleSize:  12.0,
		KeyAxesLabelSize:  10.0,
		KeyXTickLabelSize: 10.0,
		KeyYTickLabelSize: 10.0,
		KeyLegendFontSize: 10.0,

		KeyFigureTitleSize:  14.0,
		KeyFigureLabelSize:  12.0,
		KeyFigureDPI:        100.0,
		KeyFigureAutoLayout: false,

		KeySaveDPI:    300.0,
		KeySaveFormat: "svg",

		KeySVGFontType: "none",
		KeyPDFFontType: 42,
	}
}

// Keys returns all known setting keys in sorted order.
func Keys() []Key {
	out := make([]Key, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
