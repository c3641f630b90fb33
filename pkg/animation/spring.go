package animation

import "math"

// Spring describes a damped harmonic oscillator by mass, stiffness and
// damping. The damping ratio c/(2*sqrt(k*m)) decides the character of the
// motion: below 1 the spring overshoots once before settling, at or above 1
// it approaches the target without crossing it.
type Spring struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

// IOSSpring approximates the critically-damped feel of iOS sheet snapping.
func IOSSpring() Spring {
	return Spring{Mass: 1, Stiffness: 170, Damping: 26}
}

// BouncySpring is a loosely damped spring with a visible bounce.
func BouncySpring() Spring {
	return Spring{Mass: 1, Stiffness: 120, Damping: 12}
}

// RevealSpring is the physics-flavored character-reveal preset: underdamped,
// permitting a small single overshoot before settling.
func RevealSpring() Spring {
	return Spring{Mass: 1, Stiffness: 70, Damping: 15}
}

// SpringSimulation integrates a [Spring] toward a target position.
//
// Create one with [NewSpringSimulation] and call Step each frame with the
// frame delta in seconds. Step reports true once the spring has settled,
// after which Position returns exactly the target.
type SpringSimulation struct {
	spring   Spring
	position float64
	velocity float64
	target   float64
	restSpan float64
	done     bool
}

// NewSpringSimulation creates a simulation starting at position with the
// given initial velocity, settling toward target.
func NewSpringSimulation(spring Spring, position, velocity, target float64) *SpringSimulation {
	span := math.Abs(target - position)
	if span < 1 {
		span = 1
	}
	if spring.Mass <= 0 {
		spring.Mass = 1
	}
	return &SpringSimulation{
		spring:   spring,
		position: position,
		velocity: velocity,
		target:   target,
		restSpan: span,
	}
}

// Step advances the simulation by dt seconds and returns true once settled.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done || dt <= 0 {
		return s.done
	}

	// Semi-implicit Euler with millisecond substeps keeps stiff springs
	// stable even when the host frame loop stalls.
	const maxSubstep = 0.001
	for dt > 0 {
		h := dt
		if h > maxSubstep {
			h = maxSubstep
		}
		dt -= h

		displacement := s.position - s.target
		accel := (-s.spring.Stiffness*displacement - s.spring.Damping*s.velocity) / s.spring.Mass
		s.velocity += accel * h
		s.position += s.velocity * h

		if s.atRest() {
			s.position = s.target
			s.velocity = 0
			s.done = true
			return true
		}
	}
	return false
}

// Rest thresholds are deliberately tight so a barely-underdamped spring is
// not declared settled at the target crossing just before its overshoot peak.
func (s *SpringSimulation) atRest() bool {
	return math.Abs(s.position-s.target) < s.restSpan*1e-4 &&
		math.Abs(s.velocity) < s.restSpan*1e-3
}

// Position returns the current position.
func (s *SpringSimulation) Position() float64 { return s.position }

// Velocity returns the current velocity.
func (s *SpringSimulation) Velocity() float64 { return s.velocity }

// IsDone returns true once the spring has settled at the target.
func (s *SpringSimulation) IsDone() bool { return s.done }

// SpringCurve adapts a spring to a normalized easing function so spring
// presets can be used anywhere a Curve is accepted. The spring is simulated
// from 0 to 1 once, its settle time becomes the curve's full extent, and
// lookups interpolate the recorded trajectory. Unlike bezier curves the
// result may exceed 1.0 mid-flight when the spring is underdamped.
func SpringCurve(spring Spring) func(float64) float64 {
	const sampleStep = 0.002 // 2ms resolution
	const maxSamples = 5000  // 10s safety cap

	sim := NewSpringSimulation(spring, 0, 0, 1)
	samples := []float64{0}
	for i := 0; i < maxSamples; i++ {
		if sim.Step(sampleStep) {
			break
		}
		samples = append(samples, sim.Position())
	}
	samples = append(samples, 1)

	last := len(samples) - 1
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		pos := t * float64(last)
		i := int(pos)
		if i >= last {
			return 1
		}
		frac := pos - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}
