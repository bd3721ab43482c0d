package destinations

import (
	"context"

	"github.com/matzehuels/pubplot/pkg/observability"
	"github.com/matzehuels/pubplot/pkg/rcparams"
	"github.com/matzehuels/pubplot/pkg/scaling"
)

// Scope is an active destination override. It holds the restore function
// for the rc store override made on entry; Exit unwinds it. The zero value
// is not useful — obtain a Scope from [Enter] or [EnterStore].
type Scope struct {
	dest    Destination
	restore func()
	ctx     context.Context // entry context, for exit hooks only
}

// Enter activates a destination: the destination's rendering parameters are
// pushed onto the process-wide rc store and the returned context carries the
// destination's scale factor, so scaling.Scale(ctx, v) inside the scope
// applies it without an explicit factor.
//
// Exit must run on every path out of the scope, so defer it immediately:
//
//	ctx, scope, err := destinations.Enter(ctx, "figma")
//	if err != nil {
//	    return err
//	}
//	defer scope.Exit()
//
// Scopes nest: an inner Enter captures the outer scope's values and its
// Exit restores them. The rc store itself is process-global, so overlapping
// scopes from concurrent goroutines are the caller's responsibility; the
// context factor, in contrast, is naturally goroutine-isolated.
func Enter(ctx context.Context, name string) (context.Context, *Scope, error) {
	return EnterStore(ctx, name, rcparams.Default())
}

// EnterStore is Enter against an explicit store instead of the process-wide
// one.
func EnterStore(ctx context.Context, name string, store *rcparams.Store) (context.Context, *Scope, error) {
	params, scaler := RenderParams(name)

	restore, err := store.Push(params)
	if err != nil {
		return ctx, nil, err
	}

	d := Lookup(name)
	observability.Scope().OnEnter(ctx, d.Name, float64(scaler))

	ctx = scaling.WithFactor(ctx, float64(scaler))
	return ctx, &Scope{dest: d, restore: restore, ctx: ctx}, nil
}

// Destination returns the destination this scope was entered with.
func (s *Scope) Destination() Destination {
	return s.dest
}

// Factor returns the scale factor this scope applies.
func (s *Scope) Factor() float64 {
	return s.dest.Factor()
}

// Exit restores the rc store values captured on entry. It is idempotent;
// only the first call restores. The ambient factor needs no explicit undo —
// it lives on the derived context, which callers simply stop using.
func (s *Scope) Exit() {
	if s.restore == nil {
		return
	}
	s.restore()
	s.restore = nil
	observability.Scope().OnExit(s.ctx, s.dest.Name)
}
