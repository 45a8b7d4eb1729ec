package host

// Sender is the interrupt-source contract the host reference bus polls
// once per Tick to drive Pins.IRQ/NMI/RST. It is the teacher's irq.Sender
// narrowed to exactly what this package's bus needs: no separate package,
// no irqType enumeration, just the one method a line or a peripheral has
// to provide to be wired onto RAM via WithIRQ/WithNMI/WithReset.
type Sender interface {
	// Raised reports whether the interrupt is currently held high.
	Raised() bool
}

// Line is a settable Sender: Raised reports whatever it was last told to
// report. It's the simplest possible interrupt source, suitable for
// driving IRQ and RST directly from test code without building a whole
// peripheral.
type Line struct {
	raised bool
}

// Raised implements Sender.
func (l *Line) Raised() bool { return l.raised }

// Set and Clear drive the line high and low. For IRQ and RST, which the
// core treats as level-triggered, the caller is responsible for clearing
// the line once its device's condition is serviced; holding it high keeps
// re-triggering the interrupt, which is the correct level-triggered
// behavior, not a bug to work around.
func (l *Line) Set()   { l.raised = true }
func (l *Line) Clear() { l.raised = false }

// Pulse raises the line for exactly one Tick by returning true once and
// then clearing itself, a convenience for NMI, which the core latches on
// the low-to-high edge and does not need held.
type Pulse struct {
	pending bool
}

// Raised implements Sender. Each call that observes pending resets it, so
// a single Fire produces exactly one edge.
func (p *Pulse) Raised() bool {
	if p.pending {
		p.pending = false
		return true
	}
	return false
}

// Fire schedules one edge on the next Tick.
func (p *Pulse) Fire() {
	p.pending = true
}
