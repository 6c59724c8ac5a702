package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"quizdeck/audio"
	"quizdeck/constants"
	"quizdeck/core"
	"quizdeck/emoji"
	"quizdeck/engine"
	"quizdeck/input"
	"quizdeck/quiz"
	"quizdeck/render"
	"quizdeck/render/renderers"
	"quizdeck/terminal"
)

var (
	deckFlag   = flag.String("deck", "deck.toml", "Path to the deck file")
	assetsFlag = flag.String("assets", constants.DefaultAssetDir, "Audio asset directory")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging to logs/")
	muteFlag   = flag.Bool("mute", false, "Start muted")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the show crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mQUIZDECK CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Optional .env overrides, applied before flag parsing defaults
	_ = godotenv.Load()
	applyEnvDefaults()
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	// Deck load happens before terminal init so errors print plainly
	deck, err := quiz.Load(*deckFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load deck: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if deck.Shuffle {
		deck.ShuffleChoices(rng)
	}

	term, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	width, height := term.Size()

	// Audio: persisted mute flag, failures degrade to silence
	settings := audio.LoadSettings()
	audioCfg := audio.DefaultConfig()
	audioCfg.AssetDir = *assetsFlag
	audioCfg.Enabled = !settings.Muted && !*muteFlag

	audioEngine := audio.NewEngine(audioCfg)
	if err := audioEngine.Start(); err != nil {
		log.Printf("audio start: %v (continuing without audio)", err)
	}
	defer audioEngine.Stop()

	emojiManager := emoji.NewManager(width, height, rng)

	ctx := engine.NewContext(deck, audioEngine, emojiManager, settings, width, height)

	scheduler := engine.NewScheduler(ctx, constants.TickInterval)
	scheduler.Start()
	defer scheduler.Stop()

	// Renderer pipeline, registered in priority order
	orchestrator := render.NewOrchestrator(term, width, height)
	orchestrator.Register(renderers.NewBackgroundRenderer(), render.PriorityBackground)
	orchestrator.Register(renderers.NewSlideRenderer(), render.PrioritySlide)
	orchestrator.Register(renderers.NewTimerRenderer(), render.PrioritySlide)
	orchestrator.Register(renderers.NewEmojiRenderer(), render.PriorityEffects)
	orchestrator.Register(renderers.NewScoreRenderer(), render.PriorityUI)
	orchestrator.Register(renderers.NewProgressRenderer(), render.PriorityUI)
	orchestrator.Register(renderers.NewStatusBarRenderer(), render.PriorityUI)

	inputHandler := input.NewHandler(ctx.Queue)

	// Input polling uses a dedicated goroutine interacting with the terminal
	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := term.PollEvent()
			if ev == nil {
				// Screen finalized, clean exit
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !inputHandler.HandleEvent(ev) {
				return
			}
			if rev, ok := ev.(*tcell.EventResize); ok {
				w, h := rev.Size()
				ctx.Resize(w, h)
				orchestrator.Resize(w, h)
			}

		case <-frameTicker.C:
			orchestrator.RenderFrame(render.NewContext(ctx))
		}
	}
}

// applyEnvDefaults maps QUIZDECK_* environment variables onto flag defaults
func applyEnvDefaults() {
	if v := os.Getenv("QUIZDECK_DECK"); v != "" {
		flag.Set("deck", v)
	}
	if v := os.Getenv("QUIZDECK_ASSETS"); v != "" {
		flag.Set("assets", v)
	}
	if v := os.Getenv("QUIZDECK_MUTE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			flag.Set("mute", "true")
		}
	}
}
