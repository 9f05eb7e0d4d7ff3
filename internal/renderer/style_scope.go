package renderer

import (
	"context"
	"fmt"
	"log"
)

// styleOverride is one inline style property forced for the duration of a capture.
type styleOverride struct {
	el    Element
	prop  string
	value string
}

type savedStyle struct {
	el    Element
	prop  string
	value string
}

// acquireStyles snapshots every overridden property, applies the overrides and
// returns a release func that puts the snapshot back. If acquisition fails
// nothing stays modified. release runs on a context that outlives ctx
// cancellation so restoration happens on every exit path.
func acquireStyles(ctx context.Context, overrides []styleOverride) (release func(), err error) {
	saved := make([]savedStyle, 0, len(overrides))
	for _, o := range overrides {
		v, err := o.el.Style(ctx, o.prop)
		if err != nil {
			return nil, fmt.Errorf("read style %s: %w", o.prop, err)
		}
		saved = append(saved, savedStyle{el: o.el, prop: o.prop, value: v})
	}

	restoreCtx := context.WithoutCancel(ctx)
	restore := func(n int) {
		for i := n - 1; i >= 0; i-- {
			s := saved[i]
			if err := s.el.SetStyle(restoreCtx, s.prop, s.value); err != nil {
				log.Printf("[renderer][style] restore failed prop=%s err=%v", s.prop, err)
			}
		}
	}

	for i, o := range overrides {
		if err := o.el.SetStyle(ctx, o.prop, o.value); err != nil {
			restore(i)
			return nil, fmt.Errorf("override style %s: %w", o.prop, err)
		}
	}

	return func() { restore(len(saved)) }, nil
}
