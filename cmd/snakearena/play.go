package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/snakearena/audio"
	"github.com/lixenwraith/snakearena/config"
	"github.com/lixenwraith/snakearena/core"
	"github.com/lixenwraith/snakearena/engine"
	"github.com/lixenwraith/snakearena/event"
	"github.com/lixenwraith/snakearena/input"
	"github.com/lixenwraith/snakearena/parameter"
	"github.com/lixenwraith/snakearena/render"
	"github.com/lixenwraith/snakearena/status"
)

func newPlayCmd(root *rootOptions) *cobra.Command {
	var mute bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal: WASD drives seat 1, arrows seat 2",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadMatch(cmd, root)
			if err != nil {
				return err
			}
			if mute {
				m.Sound = false
			}

			// Terminal owns stderr while playing; only debug logs reach a file
			logger, logFile := setupLogging(root.debug, nil)
			if logFile != nil {
				defer logFile.Close()
			}
			return runPlay(cmd.Context(), m, logger)
		},
	}
	cmd.Flags().BoolVar(&mute, "mute", false, "Start with sound off")
	return cmd
}

// session wires one interactive match: game, scheduler, audio and the HUD state
type session struct {
	game   *engine.Game
	sched  *engine.ClockScheduler
	player *audio.Player
	logger *slog.Logger
	reg    *status.Registry

	soundOn atomic.Bool
	running bool // Scheduler goroutine alive; frame loop only
	done    chan error
	ctx     context.Context
}

// start launches the scheduler unless it is already ticking
func (s *session) start() {
	if s.running {
		return
	}
	s.running = true
	core.Go(func() { s.done <- s.sched.Run(s.ctx) })
}

// Reset starts a new match, restarting the scheduler after a game over
func (s *session) Reset() {
	s.game.Reset()
	s.logger.Info("new match", "match_id", s.game.MatchID())
	s.start()
}

func (s *session) SetIntent(id int, d core.Direction) error {
	return s.game.SetIntent(id, d)
}

func (s *session) ToggleAutopilot(id int) (bool, error) {
	return s.game.ToggleAutopilot(id)
}

func (s *session) TogglePause() bool {
	paused := s.sched.TogglePause()
	s.reg.Bools.Get(status.KeyPaused).Store(paused)
	return paused
}

func (s *session) ToggleSound() bool {
	on := !s.soundOn.Load()
	s.soundOn.Store(on)
	return on
}

func runPlay(parent context.Context, m config.Match, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before reporting a crash
	core.SetCrashCleanup(screen.Fini)
	defer core.SetCrashCleanup(nil)
	defer func() {
		core.HandleCrash(recover())
	}()

	player := audio.NewPlayer(audio.LoadConfig())
	if err := player.Init(); err != nil {
		if !errors.Is(err, audio.ErrDisabled) {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
	} else {
		defer player.Close()
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	s := &session{
		player: player,
		logger: logger,
		reg:    status.NewRegistry(),
		done:   make(chan error, 1),
		ctx:    ctx,
	}
	s.soundOn.Store(m.Sound)

	queue := event.NewEventQueue()
	defer func() {
		if n := queue.Dropped(); n > 0 {
			logger.Debug("hud events overwritten", "count", n)
		}
	}()
	sound := event.SinkFunc(func(ev event.GameEvent) {
		if s.soundOn.Load() {
			player.Notify(ev)
		}
	})

	s.game, err = engine.New(m,
		engine.WithLogger(logger),
		engine.WithSink(event.Fanout{queue, sound}),
		engine.WithStatus(s.reg),
	)
	if err != nil {
		return err
	}
	s.sched = engine.NewClockScheduler(s.game, engine.NewPausableClock(nil))
	logger.Info("match started", "match_id", s.game.MatchID(), "players", m.Players, "humans", m.HumanSeats)
	s.start()

	router := input.NewRouter(nil, s, s, logger)
	view := render.NewView(screen)

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	frame := time.NewTicker(parameter.FrameUpdateInterval)
	defer frame.Stop()

	var msg string
	var msgUntil time.Time
	setMessage := func(text string) {
		if text != "" {
			msg, msgUntil = text, time.Now().Add(parameter.StatusMessageTimeout)
		}
	}
	draw := func() {
		for _, ev := range queue.Consume() {
			setMessage(describeEvent(ev))
		}
		if time.Now().After(msgUntil) {
			msg = ""
		}
		view.Draw(s.game.State(), render.HUD{
			Paused:  s.sched.Paused(),
			Sound:   s.soundOn.Load(),
			Message: msg,
		})
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				running, text := router.HandleKey(ev)
				if !running {
					return nil
				}
				setMessage(text)
			case *tcell.EventResize:
				screen.Sync()
			}

		case err := <-s.done:
			s.running = false
			logger.Debug("scheduler stopped", "ticks", s.sched.TickCount(), "error", err)
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			// A reset raced the final tick
			if !s.game.Over() {
				s.start()
			}

		// Redraw right after each tick; the ticker keeps the HUD live while paused
		case <-s.sched.Frames():
			draw()

		case <-frame.C:
			draw()
		}
	}
}

// describeEvent returns a HUD line for notable events, empty for the rest
func describeEvent(ev event.GameEvent) string {
	switch ev.Type {
	case event.EventDied:
		return fmt.Sprintf("P%d died", ev.AgentID)
	case event.EventRevived:
		return fmt.Sprintf("P%d revived", ev.AgentID)
	case event.EventGridShrunk:
		if p, ok := ev.Payload.(event.ShrinkPayload); ok {
			return fmt.Sprintf("arena shrunk to %dx%d, speed %d", p.To, p.To, p.SpeedLevel)
		}
	}
	return ""
}
