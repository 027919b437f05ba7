package system

import (
	"log"
	"path/filepath"
	"strings"

	"letterbound/ecs"
	"letterbound/ecs/component"
	"letterbound/prefabs"
)

// ReloadSystem applies prefab file changes to live enemies. A changed
// enemy yaml re-tunes every agent spawned from it without restarting the
// level; changed scripts are recompiled lazily by the script system.
type ReloadSystem struct {
	watcher *prefabs.Watcher
	scripts *ScriptSystem
}

// NewReloadSystem watches the prefabs directory. A missing directory is
// fine (installed builds run from the embedded copies); hot reload is then
// simply off.
func NewReloadSystem(scripts *ScriptSystem) *ReloadSystem {
	s := &ReloadSystem{scripts: scripts}
	watcher, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
	if err != nil {
		log.Printf("ReloadSystem: watcher disabled: %v", err)
		return s
	}
	s.watcher = watcher
	return s
}

func (s *ReloadSystem) Close() {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
}

func (s *ReloadSystem) Update(w *ecs.World) {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-s.watcher.Events:
			if !ok {
				s.watcher = nil
				return
			}
			s.apply(w, path)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				s.watcher = nil
				return
			}
			log.Printf("ReloadSystem: watch error: %v", err)
		default:
			return
		}
	}
}

func (s *ReloadSystem) apply(w *ecs.World, path string) {
	base := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(base))
	name := strings.TrimSuffix(base, ext)

	if ext == ".tengo" {
		if s.scripts != nil {
			s.scripts.Invalidate(base)
			log.Printf("ReloadSystem: recompiling script %s", base)
		}
		return
	}

	spec, err := prefabs.LoadEnemySpec(name)
	if err != nil {
		// not an enemy prefab, or a bad edit; either way keep running
		log.Printf("ReloadSystem: skipping %s: %v", base, err)
		return
	}
	params := spec.Params()

	count := 0
	ecs.ForEach(w, component.BehaviorComponent.Kind(), func(e ecs.Entity, b *component.Behavior) {
		if b.Spec != spec.Name || b.Agent == nil || b.Machine == nil {
			return
		}
		if err := b.Machine.Reconfigure(b.Agent, params); err != nil {
			log.Printf("ReloadSystem: %s: %v", spec.Name, err)
			return
		}
		if dmg, ok := ecs.Get(w, e, component.TouchDamageComponent.Kind()); ok {
			dmg.Amount = spec.Damage
		}
		b.VisionOffsetX = spec.VisionOffset.X
		b.VisionOffsetY = spec.VisionOffset.Y
		count++
	})
	if count > 0 {
		log.Printf("ReloadSystem: retuned %d agents from %s", count, spec.Name)
	}
}
