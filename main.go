package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
)

func main() {
	debug := flag.Bool("debug", false, "draw collision shapes and probes, log controller events")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "test_room", "level name in levels/ (basename, .json optional)")
	prefab := flag.String("prefab", "player.yaml", "player prefab in prefabs/")
	script := flag.String("script", "", "drive the player from a tengo script in prefabs/scripts instead of the keyboard")
	watch := flag.Bool("watch", true, "hot reload prefabs and scripts edited on disk")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("platformer")
	ebiten.SetTPS(common.TicksPerSecond)

	game, err := NewGame(GameOptions{
		Level:  *levelName,
		Prefab: *prefab,
		Script: *script,
		Debug:  *debug,
		Watch:  *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
