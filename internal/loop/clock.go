package loop

import "time"

// Stepper converts wall-clock time into a whole number of fixed simulation
// ticks, carrying the remainder to the next frame.
type Stepper struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
}

// NewStepper creates a stepper producing at most maxSteps ticks per call.
func NewStepper(step time.Duration, maxSteps int) *Stepper {
	return &Stepper{step: step, maxSteps: maxSteps}
}

// Advance adds elapsed time and returns the number of ticks to run. When the
// cap is hit the backlog is dropped so a stall never snowballs.
func (s *Stepper) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		s.acc += elapsed
	}
	n := int(s.acc / s.step)
	if n > s.maxSteps {
		n = s.maxSteps
		s.acc %= s.step
		return n
	}
	s.acc -= time.Duration(n) * s.step
	return n
}
