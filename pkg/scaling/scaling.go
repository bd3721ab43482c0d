// Package scaling provides shape-preserving multiplication of figure
// dimensions and font sizes by a destination-specific scale factor.
//
// A [Scaler] is a factor fixed at construction. The package-level functions
// read the ambient factor carried on a context.Context instead, so plotting
// code inside a destination scope does not need to thread the factor through
// every call:
//
//	ctx, scope, _ := destinations.Enter(ctx, "figma")
//	defer scope.Exit()
//	w, h := scaling.XY(ctx, 2, 2) // 6.25, 6.25 under figma scaling
//
// Contexts derived outside any scope carry the default factor 1.0, so the
// helpers are always safe to call.
package scaling

import "context"

// DefaultFactor is the ambient scale factor when no destination scope is
// active.
const DefaultFactor = 1.0

// Scaler is a scale factor bound at construction. Its methods multiply
// values by the factor, preserving the shape of the input: a scalar in
// yields a scalar out, a slice in yields a slice of the same length.
type Scaler float64

// Scale returns v multiplied by the factor.
func (s Scaler) Scale(v float64) float64 {
	return v * float64(s)
}

// All returns a new slice with every element of vs multiplied by the factor.
func (s Scaler) All(vs ...float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v * float64(s)
	}
	return out
}

// XY returns x and y multiplied by the factor. This is the common case of
// scaling a figure's width/height pair in one call.
func (s Scaler) XY(x, y float64) (float64, float64) {
	return x * float64(s), y * float64(s)
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// factorKey is the context key for the ambient scale factor.
const factorKey ctxKey = 0

// WithFactor returns a new context carrying f as the ambient scale factor.
// The parent context is untouched, so using it again after the derived
// context is discarded restores the previous factor. Nesting and goroutine
// isolation follow from ordinary context derivation.
func WithFactor(ctx context.Context, f float64) context.Context {
	return context.WithValue(ctx, factorKey, f)
}

// FactorFrom returns the ambient scale factor carried by ctx, or
// [DefaultFactor] if none was set.
func FactorFrom(ctx context.Context) Scaler {
	if f, ok := ctx.Value(factorKey).(float64); ok {
		return Scaler(f)
	}
	return DefaultFactor
}

// Scale returns v multiplied by the ambient factor carried by ctx.
func Scale(ctx context.Context, v float64) float64 {
	return FactorFrom(ctx).Scale(v)
}

// All returns a new slice with every element of vs multiplied by the
// ambient factor carried by ctx.
func All(ctx context.Context, vs ...float64) []float64 {
	return FactorFrom(ctx).All(vs...)
}

// XY returns x and y multiplied by the ambient factor carried by ctx.
func XY(ctx context.Context, x, y float64) (float64, float64) {
	return FactorFrom(ctx).XY(x, y)
}
