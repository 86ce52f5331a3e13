package main

import "github.com/charmbracelet/harmonica"

// RotationAxis tracks position and velocity for one rotation axis. Rate is
// a constant spin added every frame; Velocity holds impulses and decays to
// zero through a spring.
type RotationAxis struct {
	Position float64
	Velocity float64
	Rate     float64

	velSpring harmonica.Spring
	velAccel  float64 // spring velocity used to animate Velocity toward 0
}

// NewRotationAxis creates an axis with a critically damped spring.
func NewRotationAxis(fps int, rate float64) RotationAxis {
	return RotationAxis{
		Rate:      rate,
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update advances the axis by one frame.
func (a *RotationAxis) Update() {
	a.Position += a.Rate + a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// Spin holds the yaw and pitch animation of the demo models.
type Spin struct {
	Pitch, Yaw RotationAxis
	fps        int
	rate       float64
}

// NewSpin creates a spin that turns at radiansPerSecond around the vertical
// axis.
func NewSpin(fps int, radiansPerSecond float64) *Spin {
	s := &Spin{fps: fps, rate: radiansPerSecond / float64(fps)}
	s.Reset()
	return s
}

// Update advances both axes by one frame.
func (s *Spin) Update() {
	s.Pitch.Update()
	s.Yaw.Update()
}

// ApplyImpulse adds angular velocity in radians per frame.
func (s *Spin) ApplyImpulse(pitch, yaw float64) {
	s.Pitch.Velocity += pitch
	s.Yaw.Velocity += yaw
}

// Reset returns both axes to rest at zero.
func (s *Spin) Reset() {
	s.Pitch = NewRotationAxis(s.fps, 0)
	s.Yaw = NewRotationAxis(s.fps, s.rate)
}
