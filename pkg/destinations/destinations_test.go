package destinations

import (
	"testing"

	"github.com/matzehuels/pubplot/pkg/errors"
	"github.com/matzehuels/pubplot/pkg/rcparams"
)

func TestFactor(t *testing.T) {
	tests := []struct {
		name string
		dest Destination
		want float64
	}{
		{
			name: "css pixel editor at 300dpi",
			dest: Destination{Name: "figma", CSSPixelUnits: true, SaveDPI: 300},
			want: 3.125, // 300/96 exactly
		},
		{
			name: "css pixel editor at 600dpi",
			dest: Destination{Name: "print", CSSPixelUnits: true, SaveDPI: 600},
			want: 6.25,
		},
		{
			name: "point-honoring editor",
			dest: Destination{Name: "adobe", SaveDPI: 300},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dest.Factor(); got != tt.want {
				t.Errorf("Factor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if d := Lookup("figma"); !d.CSSPixelUnits || d.Factor() != 3.125 {
		t.Errorf("Lookup(figma) = %+v, want CSS-pixel destination with factor 3.125", d)
	}

	// Unknown names resolve to the default, never an error.
	for _, name := range []string{"adobe", "affinity", "inkscape", "", "no-such-editor"} {
		if d := Lookup(name); d.Factor() != 1.0 {
			t.Errorf("Lookup(%q).Factor() = %v, want 1.0", name, d.Factor())
		}
	}
}

func TestRegister(t *testing.T) {
	defer reset()

	d := Destination{Name: "affinity-print", CSSPixelUnits: true, SaveDPI: 600}
	if err := Register(d); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if got := Lookup("affinity-print").Factor(); got != 6.25 {
		t.Errorf("Lookup(affinity-print).Factor() = %v, want 6.25", got)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	defer reset()

	err := Register(Destination{Name: "figma", SaveDPI: 300})
	if err == nil {
		t.Fatal("Register() with built-in name should fail")
	}
	if !errors.Is(err, errors.ErrCodeDuplicateDestination) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeDuplicateDestination)
	}
}

// "default" is not in the registry, but registering it would shadow the
// fallback destination and list it twice in Names.
func TestRegisterRejectsDefaultName(t *testing.T) {
	defer reset()

	err := Register(Destination{Name: "default", CSSPixelUnits: true, SaveDPI: 300})
	if !errors.Is(err, errors.ErrCodeDuplicateDestination) {
		t.Errorf("error = %v, want code %v", err, errors.ErrCodeDuplicateDestination)
	}

	if got := Lookup("default").Factor(); got != 1.0 {
		t.Errorf("Lookup(default).Factor() = %v, want 1.0", got)
	}
	names := Names()
	count := 0
	for _, n := range names {
		if n == "default" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Names() lists default %d times, want 1: %v", count, names)
	}
}

func TestRegisterValidation(t *testing.T) {
	defer reset()

	if err := Register(Destination{Name: "", SaveDPI: 300}); !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Errorf("Register with empty name: error = %v, want INVALID_VALUE", err)
	}
	if err := Register(Destination{Name: "broken", SaveDPI: -1}); !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Errorf("Register with negative dpi: error = %v, want INVALID_VALUE", err)
	}
}

func TestNames(t *testing.T) {
	defer reset()

	if err := Register(Destination{Name: "acorn", SaveDPI: 300}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got := Names()
	want := []string{"default", "acorn", "figma"}

	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderParamsFigma(t *testing.T) {
	params, scaler := RenderParams("figma")

	if got := float64(scaler); got != 3.125 {
		t.Fatalf("scaler = %v, want 3.125", got)
	}

	// Text sizes are multiplied by the factor.
	if got := params[rcparams.KeyFontSize]; got != 6*3.125 {
		t.Errorf("font.size = %v, want %v", got, 6*3.125)
	}
	if got := params[rcparams.KeyXTickLabelSize]; got != 5*3.125 {
		t.Errorf("xtick.labelsize = %v, want %v", got, 5*3.125)
	}
	if got := params[rcparams.KeyFigureTitleSize]; got != 7*3.125 {
		t.Errorf("figure.titlesize = %v, want %v", got, 7*3.125)
	}

	// The display resolution is divided by the factor.
	if got := params[rcparams.KeyFigureDPI]; got != 150/3.125 {
		t.Errorf("figure.dpi = %v, want %v", got, 150/3.125)
	}

	// The save resolution stays fixed.
	if got := params[rcparams.KeySaveDPI]; got != 300.0 {
		t.Errorf("savefig.dpi = %v, want 300", got)
	}
}

func TestRenderParamsDefault(t *testing.T) {
	params, scaler := RenderParams("inkscape")

	if got := float64(scaler); got != 1.0 {
		t.Fatalf("scaler = %v, want 1.0", got)
	}
	if got := params[rcparams.KeyFontSize]; got != 6.0 {
		t.Errorf("font.size = %v, want 6.0", got)
	}
	if got := params[rcparams.KeyFigureDPI]; got != 150.0 {
		t.Errorf("figure.dpi = %v, want 150.0", got)
	}
	if got := params[rcparams.KeySaveDPI]; got != 300.0 {
		t.Errorf("savefig.dpi = %v, want 300", got)
	}
}

// The bound scaler works without any scope being active.
func TestRenderParamsScalerIsIndependent(t *testing.T) {
	_, scaler := RenderParams("figma")

	if got := scaler.Scale(2.0); got != 6.25 {
		t.Errorf("scaler.Scale(2.0) = %v, want 6.25", got)
	}

	x, y := scaler.XY(2, 2)
	if x != 6.25 || y != 6.25 {
		t.Errorf("scaler.XY(2, 2) = (%v, %v), want (6.25, 6.25)", x, y)
	}
}

// Every value RenderParams produces must be acceptable to the store.
func TestRenderParamsPushable(t *testing.T) {
	for _, name := range []string{"figma", "default", "unknown"} {
		params, _ := RenderParams(name)
		store := rcparams.NewStore()
		if _, err := store.Push(params); err != nil {
			t.Errorf("Push(RenderParams(%q)) error = %v", name, err)
		}
	}
}
