package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"letterbound/ecs"
	"letterbound/ecs/component"
	"letterbound/ecs/entity"
	"letterbound/ecs/system"
	"letterbound/levels"
	"letterbound/save"
)

const (
	screenWidth  = 960
	screenHeight = 540
)

// GameState is the top-level scene state.
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateLevelComplete
)

// Game owns the current level's world, the scene state, and save data.
type Game struct {
	world    *ecs.World
	level    *levels.Level
	renderer *system.Renderer
	reload   *system.ReloadSystem

	state    GameState
	save     *save.Data
	savePath string
	rng      *rand.Rand
}

func NewGame(levelName, savePath string, debug bool) (*Game, error) {
	data, err := save.Load(savePath)
	if err != nil {
		log.Printf("Game: ignoring unreadable save: %v", err)
		data = &save.Data{}
	}
	if levelName == "" {
		levelName = data.LastLevel
	}
	if levelName == "" {
		levelName = "level_1"
	}

	g := &Game{
		renderer: system.NewRenderer(),
		save:     data,
		savePath: savePath,
		rng:      rand.New(rand.NewSource(rand.Int63())),
	}
	g.renderer.Debug = debug
	if err := g.loadLevel(levelName); err != nil {
		return nil, err
	}
	return g, nil
}

// loadLevel tears down the current world and builds a fresh one for the
// named level.
func (g *Game) loadLevel(name string) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return err
	}

	w := ecs.NewWorld(1.0 / 60.0)
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(lvl))

	scripts := system.NewScriptSystem(w)
	w.AddSystem(system.NewPlayerControllerSystem())
	w.AddSystem(system.NewPhysicsSystem())
	w.AddSystem(system.NewBehaviorSystem())
	w.AddSystem(scripts)
	w.AddSystem(system.NewAnimationSystem())
	w.AddSystem(system.NewDamageSystem())
	w.AddSystem(system.NewPickupSystem())

	if g.reload != nil {
		g.reload.Close()
	}
	g.reload = system.NewReloadSystem(scripts)
	w.AddSystem(g.reload)

	if _, err := entity.NewPlayer(w, lvl.SpawnX, lvl.SpawnY); err != nil {
		return fmt.Errorf("game: spawn player: %w", err)
	}
	for _, p := range lvl.Enemies {
		if _, err := entity.NewEnemy(w, p.Spec, p.X, p.Y, g.rng); err != nil {
			return fmt.Errorf("game: spawn enemy %s: %w", p.Spec, err)
		}
	}
	for _, p := range lvl.Letters {
		if _, err := entity.NewLetter(w, p.Letter, p.X, p.Y); err != nil {
			return fmt.Errorf("game: spawn letter %s: %w", p.Letter, err)
		}
	}

	w.Events().Subscribe(func(evt ecs.Event) {
		switch evt.Type {
		case system.LetterEventType:
			if data, ok := evt.Data.(system.LetterCollectedEvent); ok {
				g.onLetterCollected(data.Letter)
			}
		case system.PlayerDiedEventType:
			g.state = StateGameOver
		}
	})

	g.world = w
	g.level = lvl
	g.state = StatePlaying
	g.renderer.Reset()

	g.save.LastLevel = lvl.Name
	g.persist()
	log.Printf("Game: loaded %s (%d enemies, %d letters)", lvl.Name, len(lvl.Enemies), len(lvl.Letters))
	return nil
}

func (g *Game) onLetterCollected(letter string) {
	g.save.Letters = append(g.save.Letters, letter)
	g.persist()
}

func (g *Game) persist() {
	if g.savePath == "" {
		return
	}
	if err := save.Store(g.savePath, g.save); err != nil {
		log.Printf("Game: save failed: %v", err)
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.renderer.Debug = !g.renderer.Debug
	}

	switch g.state {
	case StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.state = StatePaused
			return nil
		}
		g.world.Update()
		return g.handleRequests()

	case StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.state = StatePlaying
		}

	case StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			return g.loadLevel(g.level.Name)
		}

	case StateLevelComplete:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			next := g.level.Next
			if next == "" {
				next = g.level.Name
			}
			return g.loadLevel(next)
		}
	}
	return nil
}

// handleRequests consumes the one-shot request entities systems file and
// checks for level completion.
func (g *Game) handleRequests() error {
	ecs.ForEach(g.world, component.ReloadRequestComponent.Kind(), func(e ecs.Entity, _ *component.ReloadRequest) {
		ecs.DestroyEntity(g.world, e)
		g.state = StateGameOver
	})

	var target string
	ecs.ForEach(g.world, component.LevelChangeRequestComponent.Kind(), func(e ecs.Entity, req *component.LevelChangeRequest) {
		target = req.TargetLevel
		ecs.DestroyEntity(g.world, e)
	})
	if target != "" {
		return g.loadLevel(target)
	}

	if g.state == StatePlaying && g.lettersRemaining() == 0 && len(g.level.Letters) > 0 {
		g.state = StateLevelComplete
	}
	return nil
}

func (g *Game) lettersRemaining() int {
	n := 0
	ecs.ForEach(g.world, component.LetterPickupComponent.Kind(), func(ecs.Entity, *component.LetterPickup) {
		n++
	})
	return n
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen, g.level)
	system.DrawHUD(g.world, screen, g.save.Letters)

	switch g.state {
	case StatePaused:
		drawBanner(screen, "PAUSED  (esc to resume)")
	case StateGameOver:
		drawBanner(screen, "GAME OVER  (enter to retry)")
	case StateLevelComplete:
		drawBanner(screen, "LEVEL COMPLETE  (enter to continue)")
	}
}

func drawBanner(screen *ebiten.Image, text string) {
	x := screen.Bounds().Dx()/2 - len(text)*3
	y := screen.Bounds().Dy() / 2
	ebitenutil.DebugPrintAt(screen, text, x, y)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
