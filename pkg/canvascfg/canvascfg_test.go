package canvascfg

import (
	"context"
	"testing"

	"github.com/tdewolff/canvas"

	"github.com/matzehuels/pubplot/pkg/destinations"
	"github.com/matzehuels/pubplot/pkg/rcparams"
)

func TestResolutions(t *testing.T) {
	store := rcparams.NewStore()

	if got := DisplayResolution(store); got != canvas.DPI(100) {
		t.Errorf("DisplayResolution() = %v, want %v", got, canvas.DPI(100))
	}
	if got := SaveResolution(store); got != canvas.DPI(300) {
		t.Errorf("SaveResolution() = %v, want %v", got, canvas.DPI(300))
	}
}

// Inside a figma scope the preview resolution shrinks by the factor while
// the save resolution holds.
func TestResolutionsUnderScope(t *testing.T) {
	store := rcparams.NewStore()

	_, scope, err := destinations.EnterStore(context.Background(), "figma", store)
	if err != nil {
		t.Fatalf("EnterStore() error = %v", err)
	}
	defer scope.Exit()

	if got := DisplayResolution(store); got != canvas.DPI(48) {
		t.Errorf("DisplayResolution() = %v, want %v", got, canvas.DPI(48))
	}
	if got := SaveResolution(store); got != canvas.DPI(300) {
		t.Errorf("SaveResolution() = %v, want %v", got, canvas.DPI(300))
	}
}
