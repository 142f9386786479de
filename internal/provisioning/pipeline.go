package provisioning

import (
	"fmt"
	"time"
)

// Phase is one step of the provisioning pipeline. Phases run sequentially
// over the shared Context and hand their results to later phases through
// Context.State.
type Phase interface {
	// Name returns the phase name used in events and error messages.
	Name() string

	// Provision executes the phase against the shared context.
	Provision(ctx *Context) error
}

// RunPhases executes the phases in order, emitting lifecycle events through
// the context's observer. The first failing phase aborts the run; state
// written by completed phases is left in place so a re-run can pick up
// where the failure happened.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()

	for i, phase := range phases {
		phaseStart := time.Now()
		ctx.Observer.Progress(phase.Name(), i, len(phases))
		LogPhaseStart(ctx.Observer, phase.Name())

		if err := phase.Provision(ctx); err != nil {
			LogPhaseFailed(ctx.Observer, phase.Name(), err)
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		LogPhaseComplete(ctx.Observer, phase.Name(), time.Since(phaseStart))
	}

	ctx.Observer.Printf("provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
