// Package transition provides the fade state machine that hides
// frame-level inconsistency during location swaps and sleep. The world is
// only mutated behind a fully opaque screen: the swap and sleep signals
// fire exactly at alpha 1, and gameplay resumes once the fade back to 0
// completes.
package transition

// State is the machine's current phase.
type State uint8

const (
	Idle State = iota
	FadingOut
	SwappingMap
	Sleeping
	FadingIn
)

// StateName returns a human-readable state name.
func StateName(s State) string {
	switch s {
	case FadingOut:
		return "FadingOut"
	case SwappingMap:
		return "SwappingMap"
	case Sleeping:
		return "Sleeping"
	case FadingIn:
		return "FadingIn"
	default:
		return "Idle"
	}
}

// Machine sequences fade-out → (map swap | sleep) → fade-in.
// Transitions cannot be interrupted or stacked: start calls are rejected
// unless the machine is Idle.
type Machine struct {
	state        State
	alpha        float64
	fadeDuration float64 // Seconds per fade half
	sleeping     bool

	targetLocation string
	targetX        float64
	targetY        float64

	// Signals, fired by Update at the states noted. All optional.
	OnSwap     func(targetLocation string, targetX, targetY float64) // Only safe moment to swap the active location
	OnSleep    func()                                                // Save + day advance happen synchronously here
	OnComplete func()                                                // Fired on return to Idle
}

// NewMachine creates an idle machine with the given fade duration in
// seconds per half.
func NewMachine(fadeDuration float64) *Machine {
	if fadeDuration <= 0 {
		fadeDuration = 0.5
	}
	return &Machine{fadeDuration: fadeDuration}
}

// State returns the current phase.
func (m *Machine) State() State {
	return m.state
}

// Alpha returns the current fade opacity in [0,1] for the renderer.
func (m *Machine) Alpha() float64 {
	return m.alpha
}

// Busy reports whether a transition is in flight.
func (m *Machine) Busy() bool {
	return m.state != Idle
}

// StartLocationTransition begins a fade into another location. No-op
// when a transition is already in flight.
func (m *Machine) StartLocationTransition(targetLocation string, targetX, targetY float64) bool {
	if m.state != Idle {
		return false
	}
	m.targetLocation = targetLocation
	m.targetX = targetX
	m.targetY = targetY
	m.sleeping = false
	m.state = FadingOut
	return true
}

// StartSleepTransition begins the sleep fade. No-op when a transition is
// already in flight.
func (m *Machine) StartSleepTransition() bool {
	if m.state != Idle {
		return false
	}
	m.sleeping = true
	m.state = FadingOut
	return true
}

// Update advances the fade by dt seconds, firing signals at the state
// boundaries.
func (m *Machine) Update(dt float64) {
	switch m.state {
	case FadingOut:
		m.alpha += dt / m.fadeDuration
		if m.alpha >= 1 {
			m.alpha = 1
			if m.sleeping {
				m.state = Sleeping
			} else {
				m.state = SwappingMap
			}
		}
	case SwappingMap:
		if m.OnSwap != nil {
			m.OnSwap(m.targetLocation, m.targetX, m.targetY)
		}
		m.state = FadingIn
	case Sleeping:
		if m.OnSleep != nil {
			m.OnSleep()
		}
		m.state = FadingIn
	case FadingIn:
		m.alpha -= dt / m.fadeDuration
		if m.alpha <= 0 {
			m.alpha = 0
			m.state = Idle
			m.sleeping = false
			if m.OnComplete != nil {
				m.OnComplete()
			}
		}
	}
}
