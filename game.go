package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/player"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/render"
)

var background = color.NRGBA{R: 0x14, G: 0x16, B: 0x1c, A: 0xff}

type GameOptions struct {
	Level  string
	Prefab string
	Script string
	Debug  bool
	Watch  bool
}

type Game struct {
	frames int
	opts   GameOptions

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	level  *levels.Level
	world  *physics.World
	player *player.Player
	camera *render.Camera

	keyboard *Keyboard
	source   input.Source
	watcher  *prefabs.Watcher
}

func NewGame(opts GameOptions) (*Game, error) {
	lvl, err := levels.Load(opts.Level)
	if err != nil {
		return nil, err
	}
	spec, err := prefabs.LoadPlayerSpec(opts.Prefab)
	if err != nil {
		return nil, err
	}

	world := physics.NewWorld(lvl)
	spawn := world.TileCenter(lvl.Spawn())
	p, err := player.New(world, spawn, spec, opts.Debug)
	if err != nil {
		return nil, err
	}

	camera := render.NewCamera(common.BaseWidth, common.BaseHeight, common.PixelsPerUnit)
	camera.SetBounds(world.Bounds())
	camera.SnapTo(p.Position())

	g := &Game{
		opts:     opts,
		level:    lvl,
		world:    world,
		player:   p,
		camera:   camera,
		keyboard: NewKeyboard(),
	}
	g.source = g.keyboard
	if opts.Script != "" {
		script, err := input.LoadScript(opts.Script)
		if err != nil {
			return nil, err
		}
		g.source = script
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	if g.quit {
		return ebiten.Termination
	}

	if g.keyboard.PausePressed() {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if g.keyboard.RespawnPressed() {
		g.Respawn()
	}

	g.applyChanges()

	in, err := g.source.Next(g.player.Frame())
	if err != nil {
		if !errors.Is(err, input.ErrScriptDone) {
			log.Printf("game: %v", err)
		}
		log.Printf("game: input script finished, switching to keyboard")
		g.source = g.keyboard
	}

	respawns := g.player.Respawns()
	g.player.Tick(in)
	g.world.Step(common.FixedDelta)
	g.player.Update(g.world.Bounds())

	if g.player.Respawns() != respawns {
		log.Printf("game: player fell out of the level, respawned")
		g.camera.SnapTo(g.player.Position())
	} else {
		g.camera.Update(g.player.Position())
	}
	return nil
}

// applyChanges reloads edited prefabs and scripts between ticks.
func (g *Game) applyChanges() {
	for _, change := range g.watcher.Poll() {
		switch change.Kind {
		case prefabs.SpecChanged:
			if !change.Matches(g.opts.Prefab) {
				continue
			}
			spec, err := prefabs.LoadPlayerSpec(change.Name)
			if err != nil {
				log.Printf("game: reload %s: %v", change.Name, err)
				continue
			}
			if err := g.player.Reload(spec); err != nil {
				log.Printf("game: reload %s: %v", change.Name, err)
				continue
			}
			log.Printf("game: reloaded %s", change.Name)
		case prefabs.ScriptChanged:
			if g.opts.Script == "" || !change.Matches(g.opts.Script) {
				continue
			}
			script, err := input.LoadScript(change.Name)
			if err != nil {
				log.Printf("game: reload %s: %v", change.Name, err)
				continue
			}
			g.source = script
			log.Printf("game: reloaded %s", change.Name)
		}
	}
}

func (g *Game) Respawn() {
	g.player.Respawn()
	g.camera.SnapTo(g.player.Position())
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	drawLevel(screen, g.world, g.camera)
	drawSpawn(screen, g.camera, g.spawnPoint())
	drawPlayer(screen, g.camera, g.player)

	if g.opts.Debug {
		drawPhysicsDebug(g.world.Space(), g.camera, screen)
		drawProbes(screen, g.camera, g.player)
	}

	ebitenutil.DebugPrintAt(screen, g.hud(), 10, 10)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) hud() string {
	st := g.player.State()
	pos := g.player.Position()
	return fmt.Sprintf(
		"FPS: %.1f  Tick: %d\nGrounded: %v  Coyote: %d  Buffer: %d\nSpeed: %.2f / %.1f  Crouch: %v\nPos: %.2f, %.2f",
		ebiten.ActualFPS(), st.Ticks,
		st.Grounded, st.AfterGroundTimer, st.OverGroundTimer,
		st.Speed.X, st.CurrentMaxSpeed, st.WasCrouching,
		pos.X, pos.Y,
	)
}

// tuningYAML renders the active player prefab.
func (g *Game) tuningYAML() ([]byte, error) {
	return g.player.Spec().YAML()
}

func (g *Game) Close() error {
	return g.watcher.Close()
}

func (g *Game) spawnPoint() cp.Vector {
	return g.world.TileCenter(g.level.Spawn())
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
