package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"letterbound/behavior"
	"letterbound/ecs"
	"letterbound/ecs/component"
	"letterbound/prefabs"
)

// ScriptSystem runs an enemy's tengo hook when its behavior state changes.
// The state sink publishes every tick; the hook only cares about edges, so
// repeats are filtered here.
//
// Scripts define `onState := func(engine, state) { ... }`; the appended
// trailer calls it with the engine bindings and the state name.
type ScriptSystem struct {
	pending   []StateChangeEvent
	compiled  map[string]*tengo.Compiled
	lastState map[ecs.Entity]behavior.State
	failed    map[string]bool
}

func NewScriptSystem(w *ecs.World) *ScriptSystem {
	s := &ScriptSystem{
		compiled:  make(map[string]*tengo.Compiled),
		lastState: make(map[ecs.Entity]behavior.State),
		failed:    make(map[string]bool),
	}
	w.Events().Subscribe(func(evt ecs.Event) {
		if evt.Type != StateEventType {
			return
		}
		if sc, ok := evt.Data.(StateChangeEvent); ok {
			s.pending = append(s.pending, sc)
		}
	})
	return s
}

// Invalidate drops the compiled form of a script so the next state change
// recompiles it from disk.
func (s *ScriptSystem) Invalidate(name string) {
	delete(s.compiled, name)
	delete(s.failed, name)
}

func (s *ScriptSystem) Update(w *ecs.World) {
	pending := s.pending
	s.pending = nil

	for _, evt := range pending {
		if !ecs.IsAlive(w, evt.Entity) {
			delete(s.lastState, evt.Entity)
			continue
		}
		b, ok := ecs.Get(w, evt.Entity, component.BehaviorComponent.Kind())
		if !ok || b.Script == "" {
			continue
		}
		if last, seen := s.lastState[evt.Entity]; seen && last == evt.State {
			continue
		}
		s.lastState[evt.Entity] = evt.State

		if err := s.run(w, evt.Entity, b.Script, evt.State); err != nil {
			log.Printf("ScriptSystem: %s: %v", b.Script, err)
		}
	}
}

func (s *ScriptSystem) run(w *ecs.World, e ecs.Entity, name string, state behavior.State) error {
	if s.failed[name] {
		return nil
	}
	compiled, ok := s.compiled[name]
	if !ok {
		var err error
		compiled, err = compileScript(name)
		if err != nil {
			s.failed[name] = true
			return err
		}
		s.compiled[name] = compiled
	}

	run := compiled.Clone()
	if err := run.Set("__engine", engineFor(w, e)); err != nil {
		return fmt.Errorf("bind engine: %w", err)
	}
	if err := run.Set("__state", state.String()); err != nil {
		return fmt.Errorf("bind state: %w", err)
	}
	return run.Run()
}

func compileScript(name string) (*tengo.Compiled, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	code := append(src, []byte("\nonState(__engine, __state)\n")...)

	script := tengo.NewScript(code)
	script.SetImports(stdlib.GetModuleMap("fmt", "math", "text", "rand"))
	_ = script.Add("__engine", &tengo.Map{Value: map[string]tengo.Object{}})
	_ = script.Add("__state", "")

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}

func engineFor(w *ecs.World, e ecs.Entity) *tengo.Map {
	return &tengo.Map{Value: map[string]tengo.Object{
		"set_animation": &tengo.UserFunction{
			Name: "set_animation",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if len(args) != 1 {
					return nil, tengo.ErrWrongNumArguments
				}
				clip, ok := tengo.ToString(args[0])
				if !ok {
					return nil, tengo.ErrInvalidArgumentType{Name: "clip", Expected: "string", Found: args[0].TypeName()}
				}
				setClip(w, e, clip, false)
				return tengo.UndefinedValue, nil
			},
		},
		"log": &tengo.UserFunction{
			Name: "log",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if len(args) != 1 {
					return nil, tengo.ErrWrongNumArguments
				}
				msg, _ := tengo.ToString(args[0])
				log.Printf("Script: entity %s: %s", e, msg)
				return tengo.UndefinedValue, nil
			},
		},
	}}
}
