package system_test

import (
	"math"
	"math/rand"
	"testing"

	"letterbound/behavior"
	"letterbound/ecs"
	"letterbound/ecs/component"
	"letterbound/ecs/system"
	"letterbound/levels"
)

// flatLevel has one long floor so enemies never reach an edge.
func flatLevel() *levels.Level {
	return &levels.Level{
		Name:    "flat",
		Width:   40,
		Height:  20,
		Grounds: []levels.Box{{X: 0, Y: 12, Width: 40, Height: 2}},
	}
}

// platformLevel has a short ledge so a patrolling enemy walks off it.
func platformLevel() *levels.Level {
	return &levels.Level{
		Name:    "platform",
		Width:   40,
		Height:  20,
		Grounds: []levels.Box{{X: 0, Y: 12, Width: 6, Height: 2}},
	}
}

func newTestWorld(lvl *levels.Level) *ecs.World {
	w := ecs.NewWorld(1.0 / 60.0)
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(lvl))
	w.AddSystem(system.NewPhysicsSystem())
	w.AddSystem(system.NewBehaviorSystem())
	w.AddSystem(system.NewDamageSystem())
	return w
}

// stableParams keeps idle and patrol timers far in the future so the only
// transitions in a test are the ones it provokes.
func stableParams() behavior.Params {
	return behavior.Params{
		PatrolSpeed:    3,
		ChaseSpeed:     4,
		VisionLength:   6,
		AttackDistance: 1.5,
		AttackCooldown: 5,
		MinIdle:        1000,
		MaxIdle:        1001,
		MinPatrol:      1000,
		MaxPatrol:      1001,
	}
}

func spawnPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		t.Fatal(err)
	}
	_ = ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 0.7, Height: 1.5, Mass: 1, IsPlayer: true})
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Initial: 5, Current: 5})
	return e
}

func spawnEnemy(t *testing.T, w *ecs.World, x, y float64, params behavior.Params) (ecs.Entity, *component.Behavior) {
	t.Helper()
	machine, err := behavior.NewMachine(behavior.MachineConfig{
		Clock:    w.Clock(),
		Target:   system.NewPlayerLocator(w),
		Actuator: system.NewBodyActuator(w),
		Animator: system.NewAnimatorBridge(w),
		Events:   system.NewStateSink(w),
		Rand:     rand.New(rand.NewSource(3)),
	})
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		t.Fatal(err)
	}
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 1, Height: 1.5, Mass: 1, IsEnemy: true})
	_ = ecs.Add(w, e, component.TouchDamageComponent.Kind(), &component.TouchDamage{Amount: 1})

	agent := &behavior.Agent{ID: uint64(e)}
	if err := machine.Initialize(agent, params); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	b := &component.Behavior{Agent: agent, Machine: machine, Spec: "test"}
	_ = ecs.Add(w, e, component.BehaviorComponent.Kind(), b)
	return e, b
}

func TestPlayerLocator(t *testing.T) {
	w := newTestWorld(flatLevel())
	loc := system.NewPlayerLocator(w)

	if pos := loc.Position(); !math.IsInf(pos.X, 1) {
		t.Fatalf("no player: Position() = %v, want +Inf", pos)
	}

	spawnPlayer(t, w, 7, 11)
	pos := loc.Position()
	if pos.X != 7 || pos.Y != 11 {
		t.Fatalf("Position() = %v, want (7, 11)", pos)
	}
}

func TestChaseMovesTowardVisiblePlayer(t *testing.T) {
	w := newTestWorld(flatLevel())
	spawnPlayer(t, w, 14, 11)
	e, b := spawnEnemy(t, w, 10, 11, stableParams())

	b.Agent.State = behavior.StateChase
	b.Agent.FacingRight = false // should turn toward the player
	w.Update()

	if b.Agent.State != behavior.StateChase {
		t.Fatalf("state = %v, want chase", b.Agent.State)
	}
	if !b.Agent.FacingRight {
		t.Fatal("agent should face the player")
	}
	pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if vx := pb.Body.Velocity().X; vx != 4 {
		t.Fatalf("velocity x = %v, want chase speed 4", vx)
	}
}

func TestChaseWithoutPlayerFallsBackToIdle(t *testing.T) {
	w := newTestWorld(flatLevel())
	_, b := spawnEnemy(t, w, 10, 11, stableParams())

	b.Agent.State = behavior.StateChase
	w.Update()

	if b.Agent.State != behavior.StateIdle {
		t.Fatalf("state = %v, want idle when no target exists", b.Agent.State)
	}
}

func TestAttackDamagesPlayerOncePerCooldown(t *testing.T) {
	w := newTestWorld(flatLevel())
	player := spawnPlayer(t, w, 10.9, 11)
	_, b := spawnEnemy(t, w, 10, 11, stableParams())

	b.Agent.State = behavior.StateChase
	b.Agent.FacingRight = true
	b.Agent.AttackCooldownUntil = -1 // armed

	for i := 0; i < 30; i++ {
		w.Update()
	}

	if !b.Agent.Attacking {
		t.Fatal("agent should be flagged attacking inside the cooldown window")
	}
	health, _ := ecs.Get(w, player, component.HealthComponent.Kind())
	if health.Current != 4 {
		t.Fatalf("player health = %d, want exactly one hit (4)", health.Current)
	}
	if health.InvulnFrames == 0 {
		t.Fatal("hit should grant invulnerability frames")
	}
}

func TestEdgeSignalComponentForcesIdleFromPatrol(t *testing.T) {
	w := newTestWorld(flatLevel())
	e, b := spawnEnemy(t, w, 10, 11, stableParams())

	b.Agent.State = behavior.StatePatrol
	b.Agent.PatrolUntil = 1e9
	_ = ecs.Add(w, e, component.EdgeContactLostComponent.Kind(), &component.EdgeContactLost{})
	w.Update()

	if b.Agent.State != behavior.StateIdle {
		t.Fatalf("state = %v, want idle after edge signal", b.Agent.State)
	}
	if ecs.Has(w, e, component.EdgeContactLostComponent.Kind()) {
		t.Fatal("edge signal should be consumed")
	}
}

func TestWalkingOffLedgeEmitsEdgeSignal(t *testing.T) {
	w := newTestWorld(platformLevel())
	_, b := spawnEnemy(t, w, 3, 11, stableParams())

	b.Agent.State = behavior.StatePatrol
	b.Agent.PatrolUntil = 1e9
	b.Agent.FacingRight = true

	became := false
	for i := 0; i < 900; i++ {
		w.Update()
		if b.Agent.State == behavior.StateIdle {
			became = true
			break
		}
	}
	if !became {
		t.Fatal("patrolling off the ledge should force idle via the ground sensor")
	}
}

func TestStateEventPublishedEveryTick(t *testing.T) {
	w := newTestWorld(flatLevel())
	e, b := spawnEnemy(t, w, 10, 11, stableParams())
	b.Agent.State = behavior.StateIdle
	b.Agent.IdleUntil = 1e9

	count := 0
	w.Events().Subscribe(func(evt ecs.Event) {
		if evt.Type != system.StateEventType {
			return
		}
		data, ok := evt.Data.(system.StateChangeEvent)
		if !ok || data.Entity != e {
			t.Errorf("unexpected event payload %+v", evt.Data)
			return
		}
		count++
	})

	for i := 0; i < 5; i++ {
		w.Update()
	}
	if count != 5 {
		t.Fatalf("got %d state events over 5 ticks, want 5", count)
	}
}
