package tilt

import (
	"math"
	"time"
)

// Default smoothing constants.
const (
	DefaultFastTau    = 140 * time.Millisecond
	DefaultInitialTau = 600 * time.Millisecond
	DefaultEpsilon    = 0.05
)

// ContinuePolicy decides whether the frame loop keeps running once a frame
// has been integrated.
type ContinuePolicy uint8

const (
	// ContinueWhileFocused keeps animating while the host is focused, even
	// after convergence, and otherwise stops once converged.
	ContinueWhileFocused ContinuePolicy = iota
	// ContinueUntilConverged stops as soon as the position converges.
	ContinueUntilConverged
)

// Smoothing holds the engine's time constants and convergence threshold.
// Zero fields take the package defaults.
type Smoothing struct {
	FastTau    time.Duration
	InitialTau time.Duration
	Epsilon    float64
	Policy     ContinuePolicy
}

func (s Smoothing) withDefaults() Smoothing {
	if s.FastTau <= 0 {
		s.FastTau = DefaultFastTau
	}
	if s.InitialTau <= 0 {
		s.InitialTau = DefaultInitialTau
	}
	if s.Epsilon <= 0 {
		s.Epsilon = DefaultEpsilon
	}
	return s
}

// EngineConfig wires an Engine to its host. Surface, Scheduler and Clock are
// required; Focus and Publish may be nil.
type EngineConfig struct {
	Surface   Surface
	Scheduler Scheduler
	Clock     Clock
	Focus     FocusFunc
	Publish   func(Params)
	Smoothing Smoothing
}

// Snapshot is a point-in-time copy of the engine's positions.
type Snapshot struct {
	X, Y             float64
	TargetX, TargetY float64
}

// Distance returns the euclidean distance between current and target.
func (s Snapshot) Distance() float64 {
	return math.Hypot(s.TargetX-s.X, s.TargetY-s.Y)
}

// Engine smooths a stream of pointer targets into a continuous stream of
// display parameters. Each engine owns its state exclusively and keeps at
// most one frame scheduled at a time.
//
// Current coordinates change only inside the frame step; target coordinates
// change only through SetImmediate, SetTarget and ToCenter.
type Engine struct {
	surface   Surface
	scheduler Scheduler
	clock     Clock
	focus     FocusFunc
	publish   func(Params)
	smoothing Smoothing

	currentX, currentY float64
	targetX, targetY   float64

	running   bool
	frame     FrameHandle
	lastFrame time.Duration
	hasLast   bool

	initialDeadline time.Duration
	hasInitial      bool

	params Params
	step   FrameFunc
}

// NewEngine creates an engine at rest at the origin. Nothing is scheduled
// until SetTarget or BeginInitial is called.
func NewEngine(cfg EngineConfig) *Engine {
	e := &Engine{
		surface:   cfg.Surface,
		scheduler: cfg.Scheduler,
		clock:     cfg.Clock,
		focus:     cfg.Focus,
		publish:   cfg.Publish,
		smoothing: cfg.Smoothing.withDefaults(),
	}
	e.step = e.frameStep
	e.params = e.compute()
	return e
}

// SetImmediate sets both current and target to (x, y) without interpolation
// and publishes the resulting parameters synchronously.
func (e *Engine) SetImmediate(x, y float64) {
	e.currentX, e.currentY = x, y
	e.targetX, e.targetY = x, y
	e.apply()
}

// SetTarget moves the target to (x, y) and starts the loop if it is idle.
// Coordinates outside the surface are accepted; parameter computation clamps.
func (e *Engine) SetTarget(x, y float64) {
	e.targetX, e.targetY = x, y
	e.start()
}

// ToCenter targets the geometric center of the surface's current size.
func (e *Engine) ToCenter() {
	w, h := e.size()
	e.SetTarget(w/2, h/2)
}

// BeginInitial starts an initial phase lasting d, during which the slower
// initial time constant is used, and makes sure the loop is running.
func (e *Engine) BeginInitial(d time.Duration) {
	e.initialDeadline = e.clock.Now() + d
	e.hasInitial = true
	e.start()
}

// Current returns a snapshot of the current and target positions.
func (e *Engine) Current() Snapshot {
	return Snapshot{X: e.currentX, Y: e.currentY, TargetX: e.targetX, TargetY: e.targetY}
}

// Cancel stops the scheduled frame, if any. Calling Cancel when nothing is
// running is a no-op. Hosts must call it before tearing the surface down.
func (e *Engine) Cancel() {
	if e.frame != 0 {
		e.scheduler.CancelFrame(e.frame)
		e.frame = 0
	}
	e.running = false
	e.hasLast = false
}

// Running reports whether a frame is scheduled.
func (e *Engine) Running() bool {
	return e.running
}

// Converged reports whether current is within epsilon of target.
func (e *Engine) Converged() bool {
	return e.Current().Distance() <= e.smoothing.Epsilon
}

// InInitialPhase reports whether the slower initial time constant is in
// effect at the clock's current reading.
func (e *Engine) InInitialPhase() bool {
	return e.inInitial(e.clock.Now())
}

// Params returns the most recently published parameter set.
func (e *Engine) Params() Params {
	return e.params
}

// Smoothing returns the engine's effective smoothing settings.
func (e *Engine) Smoothing() Smoothing {
	return e.smoothing
}

func (e *Engine) start() {
	if e.running {
		return
	}
	e.running = true
	e.hasLast = false
	e.frame = e.scheduler.ScheduleFrame(e.step)
}

func (e *Engine) frameStep(now time.Duration) {
	e.frame = 0
	if !e.running {
		return
	}

	if !e.hasLast {
		// First frame after a (re)start only establishes the time base.
		e.lastFrame = now
		e.hasLast = true
	} else {
		dt := (now - e.lastFrame).Seconds()
		e.lastFrame = now
		k := blend(dt, e.tau(now))
		e.currentX += (e.targetX - e.currentX) * k
		e.currentY += (e.targetY - e.currentY) * k
	}

	e.apply()
	// The publish hook may have cancelled or restarted the loop.
	if !e.running || e.frame != 0 {
		return
	}

	if e.shouldContinue() {
		e.frame = e.scheduler.ScheduleFrame(e.step)
		return
	}
	e.running = false
	e.hasLast = false
}

func (e *Engine) shouldContinue() bool {
	if !e.Converged() {
		return true
	}
	if e.smoothing.Policy == ContinueUntilConverged {
		return false
	}
	return e.focus != nil && e.focus()
}

func (e *Engine) tau(now time.Duration) time.Duration {
	if e.inInitial(now) {
		return e.smoothing.InitialTau
	}
	return e.smoothing.FastTau
}

func (e *Engine) inInitial(now time.Duration) bool {
	return e.hasInitial && now < e.initialDeadline
}

func (e *Engine) apply() {
	e.params = e.compute()
	if e.publish != nil {
		e.publish(e.params)
	}
}

func (e *Engine) compute() Params {
	w, h := e.size()
	return ComputeParams(e.currentX, e.currentY, w, h)
}

func (e *Engine) size() (float64, float64) {
	if e.surface == nil {
		return 1, 1
	}
	return e.surface.Size()
}

// blend is the fraction of the remaining distance covered in dt seconds with
// time constant tau. Two steps of dt compose to one step of 2*dt.
func blend(dt float64, tau time.Duration) float64 {
	if dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-dt/tau.Seconds())
}
