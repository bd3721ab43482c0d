// Package canvascfg applies rc store values to tdewolff/canvas types.
//
// pubplot computes rendering parameters but does no rendering of its own;
// canvas is the plotting/rendering backend it defers to. This package is the
// bridge: it reads the documented keys from a [rcparams.Store] and produces
// the resolutions and font faces canvas-based drawing code consumes.
//
//	store := rcparams.Default()
//	family, err := canvascfg.FontFamily(store)
//	if err != nil {
//	    return err
//	}
//	face := canvascfg.Face(store, family)
//	c.WriteFile("figure.png", renderers.PNG(canvascfg.SaveResolution(store)))
package canvascfg

import (
	"github.com/tdewolff/canvas"

	"github.com/matzehuels/pubplot/pkg/errors"
	"github.com/matzehuels/pubplot/pkg/rcparams"
)

// DisplayResolution returns the interactive/preview resolution (figure.dpi).
// Under a CSS-pixel destination scope this shrinks by the scale factor, so
// previews keep a constant on-screen pixel size while authored sizes grow.
func DisplayResolution(s *rcparams.Store) canvas.Resolution {
	return canvas.DPI(s.Float(rcparams.KeyFigureDPI))
}

// SaveResolution returns the export resolution (savefig.dpi). It is fixed
// per destination and does not vary with the scale factor.
func SaveResolution(s *rcparams.Store) canvas.Resolution {
	return canvas.DPI(s.Float(rcparams.KeySaveDPI))
}

// FontFamily loads the first available font from the store's sans-serif
// list (font.sans-serif) as a canvas font family named after font.family.
func FontFamily(s *rcparams.Store) (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily(s.String(rcparams.KeyFontFamily))

	names := s.Strings(rcparams.KeyFontSansSerif)
	var lastErr error
	for _, name := range names {
		if err := family.LoadSystemFont(name, canvas.FontRegular); err != nil {
			lastErr = err
			continue
		}
		return family, nil
	}
	return nil, errors.Wrap(errors.ErrCodeFontNotFound, lastErr, "no usable font in %v", names)
}

// Face returns a regular face at the store's base font size (font.size, pt).
func Face(s *rcparams.Store, family *canvas.FontFamily) *canvas.FontFace {
	return family.Face(s.Float(rcparams.KeyFontSize), canvas.FontRegular)
}
