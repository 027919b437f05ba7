package behavior

import (
	"fmt"
	"math/rand"
)

// State identifies the agent's current behavior.
type State uint8

const (
	StateIdle State = iota
	StatePatrol
	StateChase
	StateAttack
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	case StateAttack:
		return "attack"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Params are the per-enemy-type tuning values. Immutable for an agent after
// Initialize, except through Machine.Reconfigure (prefab hot reload).
type Params struct {
	PatrolSpeed    float64
	ChaseSpeed     float64
	VisionLength   float64
	AttackDistance float64
	AttackCooldown float64
	MinIdle        float64
	MaxIdle        float64
	MinPatrol      float64
	MaxPatrol      float64
}

func (p Params) Validate() error {
	if p.VisionLength <= 0 {
		return fmt.Errorf("behavior: vision length must be positive, got %v", p.VisionLength)
	}
	if p.PatrolSpeed <= 0 {
		return fmt.Errorf("behavior: patrol speed must be positive, got %v", p.PatrolSpeed)
	}
	if p.ChaseSpeed <= 0 {
		return fmt.Errorf("behavior: chase speed must be positive, got %v", p.ChaseSpeed)
	}
	if p.AttackDistance <= 0 {
		return fmt.Errorf("behavior: attack distance must be positive, got %v", p.AttackDistance)
	}
	if p.AttackCooldown <= 0 {
		return fmt.Errorf("behavior: attack cooldown must be positive, got %v", p.AttackCooldown)
	}
	if p.MinIdle <= 0 || p.MaxIdle < p.MinIdle {
		return fmt.Errorf("behavior: idle range [%v, %v] is invalid", p.MinIdle, p.MaxIdle)
	}
	if p.MinPatrol <= 0 || p.MaxPatrol < p.MinPatrol {
		return fmt.Errorf("behavior: patrol range [%v, %v] is invalid", p.MinPatrol, p.MaxPatrol)
	}
	return nil
}

// Agent is one enemy's runtime behavior record. Timer fields are absolute
// timestamps and are meaningful only while the state that set them is
// active; entry actions reset the owning timer on every transition.
type Agent struct {
	ID          uint64
	State       State
	FacingRight bool

	// Attacking is set while an attack was triggered inside the current
	// cooldown window; damage application reads it.
	Attacking bool

	IdleUntil           float64
	PatrolUntil         float64
	AttackCooldownUntil float64

	params      Params
	initialized bool
	edgeLost    bool
}

// Params returns the agent's tuning values.
func (a *Agent) Params() Params {
	return a.params
}

// MachineConfig carries the collaborators a Machine requires. All of them
// are mandatory; Rand defaults to the global source when nil.
type MachineConfig struct {
	Clock    Clock
	Target   TargetLocator
	Actuator Actuator
	Animator AnimatorBridge
	Events   EventSink
	Rand     *rand.Rand
}

// Machine decides, once per fixed tick, an agent's state and drives the
// movement, animation, and attack side effects through its collaborators.
// One machine can serve any number of agents.
type Machine struct {
	clock    Clock
	target   TargetLocator
	actuator Actuator
	animator AnimatorBridge
	events   EventSink
	rng      *rand.Rand
}

// NewMachine validates the collaborator set. A missing collaborator is a
// configuration error and aborts agent activation.
func NewMachine(cfg MachineConfig) (*Machine, error) {
	if cfg.Clock == nil {
		return nil, fmt.Errorf("behavior: clock is required")
	}
	if cfg.Target == nil {
		return nil, fmt.Errorf("behavior: target locator is required")
	}
	if cfg.Actuator == nil {
		return nil, fmt.Errorf("behavior: actuator is required")
	}
	if cfg.Animator == nil {
		return nil, fmt.Errorf("behavior: animator bridge is required")
	}
	if cfg.Events == nil {
		return nil, fmt.Errorf("behavior: event sink is required")
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Machine{
		clock:    cfg.Clock,
		target:   cfg.Target,
		actuator: cfg.Actuator,
		animator: cfg.Animator,
		events:   cfg.Events,
		rng:      rng,
	}, nil
}

// Initialize binds params to the agent and enters a uniformly random initial
// state (Idle or Patrol). Must be called exactly once before the first Tick.
func (m *Machine) Initialize(a *Agent, params Params) error {
	if a == nil {
		return fmt.Errorf("behavior: agent is nil")
	}
	if a.initialized {
		return fmt.Errorf("behavior: agent %d already initialized", a.ID)
	}
	if err := params.Validate(); err != nil {
		return err
	}
	a.params = params
	a.initialized = true

	now := m.clock.Now()
	if m.rng.Intn(2) == 0 {
		m.enterIdle(a, now)
	} else {
		m.enterPatrol(a, now)
	}
	return nil
}

// Reconfigure swaps the agent's params in place. Used by prefab hot reload;
// the current state and timers are kept.
func (m *Machine) Reconfigure(a *Agent, params Params) error {
	if a == nil || !a.initialized {
		return fmt.Errorf("behavior: agent not initialized")
	}
	if err := params.Validate(); err != nil {
		return err
	}
	a.params = params
	return nil
}

// NotifyEdgeLost latches the ground-sensor "contact lost" signal. It is
// consumed at the start of the next Tick and, while patrolling, forces an
// immediate transition to Idle that preempts the per-tick evaluation.
func (m *Machine) NotifyEdgeLost(a *Agent) {
	if a == nil {
		return
	}
	a.edgeLost = true
}

// Tick evaluates the transition rules for the current state, applies
// movement, and publishes the (possibly unchanged) state. The notification
// fires every tick; that matches the original behavior on purpose.
func (m *Machine) Tick(a *Agent, now float64) {
	if a == nil || !a.initialized {
		return
	}

	if a.edgeLost {
		a.edgeLost = false
		if a.State == StatePatrol {
			m.enterIdle(a, now)
			m.events.Publish(a.ID, a.State)
			return
		}
	}

	switch a.State {
	case StateIdle:
		m.tickIdle(a, now)
	case StatePatrol:
		m.tickPatrol(a, now)
	case StateChase, StateAttack:
		m.tickChase(a, now)
	}

	if a.Attacking && a.AttackCooldownUntil < now && !m.InAttackReach(a) {
		a.Attacking = false
	}

	m.events.Publish(a.ID, a.State)
}

// tickIdle: the expired idle timer wins over a visible target.
func (m *Machine) tickIdle(a *Agent, now float64) {
	if a.IdleUntil < now {
		m.enterPatrol(a, now)
		return
	}
	if m.CanSeeTarget(a) {
		m.enterChase(a)
	}
}

// tickPatrol: move first, then run the timer and vision checks
// independently, so a visible target wins even on the tick the patrol
// timer expires.
func (m *Machine) tickPatrol(a *Agent, now float64) {
	m.actuator.Translate(a, a.params.PatrolSpeed*facingSign(a))
	if a.PatrolUntil < now {
		m.enterIdle(a, now)
	}
	if m.CanSeeTarget(a) {
		m.enterChase(a)
	}
}

func (m *Machine) tickChase(a *Agent, now float64) {
	inReach := m.InAttackReach(a)
	if !inReach {
		origin := m.actuator.Position(a)
		target := m.target.Position()
		right := target.X >= origin.X
		if right != a.FacingRight {
			a.FacingRight = right
			m.actuator.SetFacing(a, right)
		}
		m.actuator.Translate(a, a.params.ChaseSpeed*facingSign(a))
	}

	if !m.CanSeeTarget(a) {
		m.enterIdle(a, now)
		return
	}
	if inReach && a.AttackCooldownUntil < now {
		m.triggerAttack(a, now)
	}
}

func (m *Machine) enterIdle(a *Agent, now float64) {
	a.State = StateIdle
	a.IdleUntil = now + m.uniform(a.params.MinIdle, a.params.MaxIdle)
	m.animator.SetWalking(a, false)
	m.actuator.Translate(a, 0)
}

func (m *Machine) enterPatrol(a *Agent, now float64) {
	a.State = StatePatrol
	a.PatrolUntil = now + m.uniform(a.params.MinPatrol, a.params.MaxPatrol)
	a.FacingRight = !a.FacingRight
	m.actuator.SetFacing(a, a.FacingRight)
	m.animator.SetWalking(a, true)
}

func (m *Machine) enterChase(a *Agent) {
	a.State = StateChase
	m.animator.SetWalking(a, true)
}

// triggerAttack fires the attack clip and arms the cooldown. The Attack
// state is transient: the agent is back in Chase before the tick ends.
func (m *Machine) triggerAttack(a *Agent, now float64) {
	a.State = StateAttack
	m.animator.TriggerAttack(a)
	a.AttackCooldownUntil = now + a.params.AttackCooldown
	a.Attacking = true
	a.State = StateChase
}

func (m *Machine) uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + m.rng.Float64()*(max-min)
}

func facingSign(a *Agent) float64 {
	if a.FacingRight {
		return 1
	}
	return -1
}
