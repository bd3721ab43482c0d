package destinations

import (
	"github.com/matzehuels/pubplot/pkg/rcparams"
	"github.com/matzehuels/pubplot/pkg/scaling"
)

// Base sizes (pt) for publication figures, before destination scaling.
// Small sizes are the journal convention; the destination factor blows them
// up so they import at the intended physical size.
const (
	baseFontSize   = 6.0
	baseTickSize   = 5.0
	baseFigureSize = 7.0

	// displayDPI controls the interactive/preview display size. It is
	// divided by the destination factor so the on-screen pixel size stays
	// constant while authored sizes grow.
	displayDPI = 150.0
)

// RenderParams builds the rendering parameters and the scaler for a
// destination. Font and text-size settings are multiplied by the
// destination's factor, the display resolution is divided by it, and the
// save resolution stays fixed at the destination's SaveDPI. The returned
// scaler is bound to the destination's factor and ignores any ambient
// context factor.
//
// RenderParams is pure: it touches no shared state and can be used without
// ever entering a scope.
func RenderParams(name string) (rcparams.Params, scaling.Scaler) {
	d := Lookup(name)
	f := d.Factor()

	params := rcparams.Params{
		rcparams.KeyFontFamily:    "sans-serif", // Essential
		rcparams.KeyFontSansSerif: []string{"Arial"},
		rcparams.KeyFontSize:      baseFontSize * f,

		rcparams.KeyAxesTitleSize:  baseFontSize * f,
		rcparams.KeyAxesLabelSize:  baseFontSize * f,
		rcparams.KeyXTickLabelSize: baseTickSize * f,
		rcparams.KeyYTickLabelSize: baseTickSize * f,
		rcparams.KeyLegendFontSize: baseFontSize * f,

		rcparams.KeyFigureTitleSize:  baseFigureSize * f,
		rcparams.KeyFigureLabelSize:  baseFigureSize * f,
		rcparams.KeyFigureDPI:        displayDPI / f,
		rcparams.KeyFigureAutoLayout: true,

		rcparams.KeySaveDPI:    d.SaveDPI,
		rcparams.KeySaveFormat: "svg",

		rcparams.KeySVGFontType: "none", // Keep text as text, not paths
		rcparams.KeyPDFFontType: 42,
	}

	return params, scaling.Scaler(f)
}
