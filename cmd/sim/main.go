// Command sim runs the locomotion controller headless: a level, a player
// prefab and a tengo input script, for a fixed number of ticks.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	levelName := flag.String("level", "test_room", "level name in levels/ (basename, .json optional)")
	prefab := flag.String("prefab", "player.yaml", "player prefab in prefabs/")
	script := flag.String("script", "run_and_jump", "tengo input script in prefabs/scripts")
	ticks := flag.Int("ticks", 600, "maximum ticks to simulate")
	trace := flag.Int("trace", 0, "log the player state every n ticks (0 disables)")
	quiet := flag.Bool("q", false, "do not log controller events")
	flag.Parse()

	summary, err := Run(Options{
		Level:   *levelName,
		Prefab:  *prefab,
		Script:  *script,
		Ticks:   *ticks,
		Trace:   *trace,
		Verbose: !*quiet,
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(os.Stdout, summary)
}
