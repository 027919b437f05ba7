package ecs

import (
	"testing"

	"letterbound/ecs/component"
)

type testPos struct {
	X, Y float64
}

type testTag struct{}

var testPosComponent = component.NewComponent[testPos]()
var testTagComponent = component.NewComponent[testTag]()

func TestEntityLifecycle(t *testing.T) {
	w := NewWorld(1.0 / 60.0)

	e := CreateEntity(w)
	if !IsAlive(w, e) {
		t.Fatal("fresh entity should be alive")
	}
	if !DestroyEntity(w, e) {
		t.Fatal("destroy should succeed")
	}
	if IsAlive(w, e) {
		t.Fatal("destroyed entity should be dead")
	}
	if DestroyEntity(w, e) {
		t.Fatal("double destroy should fail")
	}

	// the id is recycled but the old handle must stay dead
	e2 := CreateEntity(w)
	if e2 == e {
		t.Fatal("recycled handle should differ by generation")
	}
	if IsAlive(w, e) {
		t.Fatal("stale handle should not come back to life")
	}
	if !IsAlive(w, e2) {
		t.Fatal("new handle should be alive")
	}
}

func TestComponentAddGetRemove(t *testing.T) {
	w := NewWorld(1.0 / 60.0)
	e := CreateEntity(w)

	if err := Add(w, e, testPosComponent.Kind(), &testPos{X: 1, Y: 2}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, ok := Get(w, e, testPosComponent.Kind())
	if !ok {
		t.Fatal("Get should find the component")
	}
	got.X = 5
	again, _ := Get(w, e, testPosComponent.Kind())
	if again.X != 5 {
		t.Fatal("Get should return a pointer into storage")
	}

	if Has(w, e, testTagComponent.Kind()) {
		t.Fatal("entity should not have a tag it never got")
	}
	if !Remove(w, e, testPosComponent.Kind()) {
		t.Fatal("Remove should succeed")
	}
	if _, ok := Get(w, e, testPosComponent.Kind()); ok {
		t.Fatal("removed component should be gone")
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld(1.0 / 60.0)
	e := CreateEntity(w)

	if err := Add(w, e, testPosComponent.Kind(), nil); err != component.ErrNilComponent {
		t.Fatalf("nil value: got %v", err)
	}
	DestroyEntity(w, e)
	if err := Add(w, e, testPosComponent.Kind(), &testPos{}); err != component.ErrEntityNotAlive {
		t.Fatalf("dead entity: got %v", err)
	}
}

func TestDestroyDropsComponents(t *testing.T) {
	w := NewWorld(1.0 / 60.0)
	e := CreateEntity(w)
	_ = Add(w, e, testPosComponent.Kind(), &testPos{X: 3})
	DestroyEntity(w, e)

	// recycled id must not see the old data
	e2 := CreateEntity(w)
	if _, ok := Get(w, e2, testPosComponent.Kind()); ok {
		t.Fatal("recycled entity should start with no components")
	}
}

func TestForEachAllowsMutationDuringIteration(t *testing.T) {
	w := NewWorld(1.0 / 60.0)
	for i := 0; i < 5; i++ {
		e := CreateEntity(w)
		_ = Add(w, e, testPosComponent.Kind(), &testPos{X: float64(i)})
	}

	visited := 0
	ForEach(w, testPosComponent.Kind(), func(e Entity, p *testPos) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 5 {
		t.Fatalf("visited %d entities, want 5", visited)
	}
	if n := len(Entities(w)); n != 0 {
		t.Fatalf("%d entities left, want 0", n)
	}
}

func TestForEach2RequiresBoth(t *testing.T) {
	w := NewWorld(1.0 / 60.0)
	both := CreateEntity(w)
	_ = Add(w, both, testPosComponent.Kind(), &testPos{})
	_ = Add(w, both, testTagComponent.Kind(), &testTag{})
	only := CreateEntity(w)
	_ = Add(w, only, testPosComponent.Kind(), &testPos{})

	var seen []Entity
	ForEach2(w, testPosComponent.Kind(), testTagComponent.Kind(), func(e Entity, _ *testPos, _ *testTag) {
		seen = append(seen, e)
	})
	if len(seen) != 1 || seen[0] != both {
		t.Fatalf("seen = %v, want just %v", seen, both)
	}
}

func TestEventsDispatchAfterSystems(t *testing.T) {
	w := NewWorld(1.0 / 60.0)

	var delivered []string
	w.Events().Subscribe(func(evt Event) {
		delivered = append(delivered, evt.Type)
	})

	w.AddSystem(systemFunc(func(w *World) {
		w.Events().Publish(Event{Type: "from_system"})
		if len(delivered) != 0 {
			t.Error("events must not be delivered while systems are running")
		}
	}))

	w.Update()
	if len(delivered) != 1 || delivered[0] != "from_system" {
		t.Fatalf("delivered = %v", delivered)
	}
}

func TestClockAdvancesOncePerUpdate(t *testing.T) {
	w := NewWorld(0.25)
	if w.Clock().Now() != 0 {
		t.Fatal("clock should start at zero")
	}
	w.Update()
	w.Update()
	if got := w.Clock().Now(); got != 0.5 {
		t.Fatalf("Now() = %v, want 0.5", got)
	}
	if w.Clock().Step() != 0.25 {
		t.Fatalf("Step() = %v, want 0.25", w.Clock().Step())
	}
}

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }
