package sapling

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameOptions configures NewGame beyond what Config holds.
type GameOptions struct {
	// Seed overrides Config.Seed when non-zero.
	Seed int64
	// Rand drives the leaf scatter and the random seed. Nil uses a
	// time-seeded source.
	Rand *rand.Rand
	// OnEvent receives sequence events, e.g. for audio cues.
	OnEvent func(Event)
	// Script, if set, drives the game unattended.
	Script *ScriptRunner
	// ExitWhenScriptDone ends the game once Script has run every step.
	ExitWhenScriptDone bool
	// ScreenshotDir is where screenshots are written. Defaults to
	// "screenshots".
	ScreenshotDir string
	// FontData overrides the text face. Nil uses DefaultFontData.
	FontData []byte
}

// Game is the ebiten.Game that hosts a Sequence.
type Game struct {
	seq    *Sequence
	canvas *EbitenCanvas
	input  inputState
	runner *ScriptRunner

	exitWhenDone bool

	// ScreenshotDir is the directory screenshots are written to.
	ScreenshotDir   string
	screenshotQueue []string

	debug bool
	fps   *fpsOverlay
}

// NewGame builds the game from cfg. cfg is validated first.
func NewGame(cfg Config, opts GameOptions) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.LeafPalette()
	if err != nil {
		return nil, fmt.Errorf("sapling: %w", err)
	}
	canvas, err := NewEbitenCanvas(opts.FontData)
	if err != nil {
		return nil, err
	}

	r := opts.Rand
	if r == nil {
		now := uint64(time.Now().UnixNano())
		r = rand.New(rand.NewPCG(now, now>>17))
	}
	seed := opts.Seed
	if seed == 0 {
		seed = cfg.ResolveSeed(r)
	}

	seq := NewSequence(SequenceOptions{
		Seed:       seed,
		Tree:       cfg.Tree,
		Timing:     cfg.Timing,
		Leaves:     GenerateLeaves(r, cfg.LeafCount, palette),
		Poem:       cfg.Poem,
		Hint:       cfg.Hint,
		Background: cfg.BackgroundColor(),
		Width:      float64(cfg.Window.Width),
		Height:     float64(cfg.Window.Height),
	})
	seq.OnEvent = opts.OnEvent

	dir := opts.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	g := &Game{
		seq:           seq,
		canvas:        canvas,
		runner:        opts.Script,
		exitWhenDone:  opts.ExitWhenScriptDone,
		ScreenshotDir: dir,
		debug:         cfg.Debug.Enabled,
	}
	if cfg.Debug.ShowFPS {
		g.fps = newFPSOverlay()
	}
	if g.debug {
		debugf("seed %d, %d leaves", seed, cfg.LeafCount)
	}
	return g, nil
}

// Sequence returns the hosted sequence.
func (g *Game) Sequence() *Sequence {
	return g.seq
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())
	if g.runner != nil {
		g.runner.step(g)
		if g.exitWhenDone && g.runner.Done() && len(g.screenshotQueue) == 0 {
			return ebiten.Termination
		}
	}
	g.processInput()
	g.seq.Update(dt)
	if g.fps != nil {
		g.fps.update(dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	var start time.Time
	if g.debug {
		start = time.Now()
	}

	g.canvas.Begin(screen)
	g.seq.Draw(g.canvas)

	if g.debug {
		g.debugLog(debugStats{
			phase:    g.seq.Phase(),
			drawTime: time.Since(start),
			tree:     g.seq.TreeStats(),
		})
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The logical size tracks the window so the
// sequence relayouts on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window described by cfg and plays the sequence until the
// window closes.
func Run(cfg Config, opts GameOptions) error {
	g, err := NewGame(cfg, opts)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(g)
}
