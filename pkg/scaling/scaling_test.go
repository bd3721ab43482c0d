package scaling

import (
	"context"
	"fmt"
	"testing"
)

func TestScalerScale(t *testing.T) {
	tests := []struct {
		name   string
		factor Scaler
		value  float64
		want   float64
	}{
		{name: "identity", factor: 1.0, value: 2.0, want: 2.0},
		{name: "figma factor", factor: 3.125, value: 2.0, want: 6.25},
		{name: "zero value", factor: 3.125, value: 0, want: 0},
		{name: "fractional factor", factor: 0.5, value: 7.0, want: 3.5},
		{name: "negative value", factor: 2.0, value: -1.5, want: -3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.factor.Scale(tt.value); got != tt.want {
				t.Errorf("Scale(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestScalerAll(t *testing.T) {
	s := Scaler(3.125)

	got := s.All(1, 2, 3)
	want := []float64{3.125, 6.25, 9.375}

	if len(got) != len(want) {
		t.Fatalf("All() returned %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScalerAllEmpty(t *testing.T) {
	got := Scaler(2.0).All()
	if len(got) != 0 {
		t.Errorf("All() with no arguments returned %d values, want 0", len(got))
	}
}

// Multiple positional values and a pair must scale identically.
func TestScalerXYMatchesAll(t *testing.T) {
	s := Scaler(3.125)

	x, y := s.XY(2, 4)
	vs := s.All(2, 4)

	if x != vs[0] || y != vs[1] {
		t.Errorf("XY(2, 4) = (%v, %v), want (%v, %v)", x, y, vs[0], vs[1])
	}
	if x != 6.25 || y != 12.5 {
		t.Errorf("XY(2, 4) = (%v, %v), want (6.25, 12.5)", x, y)
	}
}

func TestFactorFromDefault(t *testing.T) {
	ctx := context.Background()

	if got := FactorFrom(ctx); got != DefaultFactor {
		t.Errorf("FactorFrom() = %v, want %v", got, DefaultFactor)
	}
	if got := Scale(ctx, 2.0); got != 2.0 {
		t.Errorf("Scale(ctx, 2.0) = %v, want 2.0", got)
	}
}

func TestWithFactor(t *testing.T) {
	ctx := WithFactor(context.Background(), 3.125)

	if got := Scale(ctx, 2.0); got != 6.25 {
		t.Errorf("Scale(ctx, 2.0) = %v, want 6.25", got)
	}

	x, y := XY(ctx, 1, 2)
	if x != 3.125 || y != 6.25 {
		t.Errorf("XY(ctx, 1, 2) = (%v, %v), want (3.125, 6.25)", x, y)
	}

	got := All(ctx, 1, 1, 1)
	for i, v := range got {
		if v != 3.125 {
			t.Errorf("All(ctx, ...)[%d] = %v, want 3.125", i, v)
		}
	}
}

// Derived contexts must not leak their factor into the parent; discarding
// the derived context is all it takes to restore the previous factor.
func TestWithFactorNesting(t *testing.T) {
	root := context.Background()
	outer := WithFactor(root, 3.125)
	inner := WithFactor(outer, 1.0)

	if got := Scale(inner, 1.0); got != 1.0 {
		t.Errorf("inner Scale(1.0) = %v, want 1.0", got)
	}
	if got := Scale(outer, 1.0); got != 3.125 {
		t.Errorf("outer Scale(1.0) = %v, want 3.125", got)
	}
	if got := Scale(root, 1.0); got != 1.0 {
		t.Errorf("root Scale(1.0) = %v, want 1.0", got)
	}
}

// Concurrent goroutines with independently derived contexts must observe
// their own factor only.
func TestWithFactorConcurrent(t *testing.T) {
	root := context.Background()
	factors := []float64{1.0, 2.0, 3.125, 0.5}

	done := make(chan string, len(factors))
	for _, f := range factors {
		go func(f float64) {
			ctx := WithFactor(root, f)
			for i := 0; i < 1000; i++ {
				if got := Scale(ctx, 1.0); got != f {
					done <- fmt.Sprintf("Scale() = %v, want %v", got, f)
					return
				}
			}
			done <- ""
		}(f)
	}

	for range factors {
		if msg := <-done; msg != "" {
			t.Error(msg)
		}
	}
}
