// Sapling plays the heart-to-tree sequence in a window: click the heart,
// watch the seed fall and grow into a tree that blooms into leaves, then
// read the poem.
//
// Usage:
//
//	sapling [-config sapling.yaml] [-seed N] [-width W -height H]
//	        [-script run.json -shots dir] [-debug] [-fps] [-mute]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/audio"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	seed := flag.Int64("seed", 0, "tree seed (0 = config value, or random)")
	width := flag.Int("width", 0, "window width override")
	height := flag.Int("height", 0, "window height override")
	scriptPath := flag.String("script", "", "JSON playback script; the program exits when it finishes")
	shots := flag.String("shots", "screenshots", "screenshot output directory")
	debug := flag.Bool("debug", false, "log per-frame timing and tree stats to stderr")
	fps := flag.Bool("fps", false, "show the FPS/TPS overlay")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	cfg := sapling.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = sapling.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *debug {
		cfg.Debug.Enabled = true
	}
	if *fps {
		cfg.Debug.ShowFPS = true
	}
	if *mute {
		cfg.Audio.Enabled = false
	}

	opts := sapling.GameOptions{
		Seed:          *seed,
		ScreenshotDir: *shots,
	}

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		runner, err := sapling.LoadScript(data, ebiten.DefaultTPS)
		if err != nil {
			log.Fatal(err)
		}
		opts.Script = runner
		opts.ExitWhenScriptDone = true
	}

	if cfg.Audio.Enabled {
		cues := audio.NewCues(cfg.Audio.Volume)
		if err := cues.Initialize(); err != nil {
			log.Printf("[sapling] audio disabled: %v", err)
		} else {
			defer cues.Close()
			opts.OnEvent = func(e sapling.Event) {
				switch e {
				case sapling.EventHeartbeat:
					cues.Play(audio.CueHeartbeat)
				case sapling.EventImpact:
					cues.Play(audio.CueImpact)
				case sapling.EventBloom:
					cues.Play(audio.CueBloom)
				case sapling.EventPoemDone:
					cues.Play(audio.CueChime)
				}
			}
		}
	}

	if err := sapling.Run(cfg, opts); err != nil {
		log.Fatal(err)
	}
}
