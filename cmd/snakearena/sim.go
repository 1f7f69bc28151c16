package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/snakearena/config"
	"github.com/lixenwraith/snakearena/engine"
	"github.com/lixenwraith/snakearena/event"
	"github.com/lixenwraith/snakearena/status"
)

type simOptions struct {
	maxTicks    int
	output      string
	metricsAddr string
	realtime    bool
}

func newSimCmd(root *rootOptions) *cobra.Command {
	opts := &simOptions{}
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run an all-autonomous match headless and print a JSON summary",
		Long: `sim runs every seat under the decision engine until all agents are dead or
--max-ticks is reached, then writes a JSON summary. With --metrics-addr the live
match metrics are served for Prometheus at /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadMatch(cmd, root)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-ticks") {
				m.MaxTicks = opts.maxTicks
			}
			// No keyboard in a headless run
			m.HumanSeats = 0

			logger, logFile := setupLogging(root.debug, cmd.ErrOrStderr())
			if logFile != nil {
				defer logFile.Close()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			if opts.output != "" && opts.output != "-" {
				f, err := os.Create(opts.output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}
			return runSim(ctx, m, opts, logger, out)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.maxTicks, "max-ticks", 0, "Stop after this many ticks, 0 runs to game over")
	f.StringVarP(&opts.output, "output", "o", "-", "Summary destination file, - for stdout")
	f.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9102")
	f.BoolVar(&opts.realtime, "realtime", false, "Pace ticks at the match cadence instead of as fast as possible")
	return cmd
}

// tickLimit ends a run after max ticks, zero means unlimited
type tickLimit struct {
	game *engine.Game
	max  int
	n    int
}

func (t *tickLimit) Tick() bool {
	running := t.game.Tick()
	t.n++
	return running && (t.max <= 0 || t.n < t.max)
}

func (t *tickLimit) TickInterval() time.Duration {
	return t.game.TickInterval()
}

func runSim(ctx context.Context, m config.Match, opts *simOptions, logger *slog.Logger, out io.Writer) error {
	reg := status.NewRegistry()
	counter := event.Counter{}

	game, err := engine.New(m,
		engine.WithLogger(logger),
		engine.WithSink(counter),
		engine.WithStatus(reg),
	)
	if err != nil {
		return err
	}

	if opts.metricsAddr != "" {
		_, shutdown, err := serveMetrics(opts.metricsAddr, reg, logger)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	limit := &tickLimit{game: game, max: m.MaxTicks}
	if opts.realtime {
		sched := engine.NewClockScheduler(limit, engine.NewPausableClock(nil))
		if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	} else {
		for ctx.Err() == nil && limit.Tick() {
		}
	}

	summary := engine.Summarize(game.State())
	summary.Events = counter.ByName()
	logger.Info("sim finished", "match_id", summary.MatchID, "ticks", summary.Ticks, "winner", summary.WinnerID)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// serveMetrics exposes reg at /metrics until the returned shutdown is called
// Returns the bound address
func serveMetrics(addr string, reg *status.Registry, logger *slog.Logger) (string, func(), error) {
	promReg := prometheus.NewRegistry()
	if err := promReg.Register(status.NewCollector(reg, "snakearena")); err != nil {
		return "", nil, fmt.Errorf("register collector: %w", err)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, fmt.Errorf("metrics listen: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())

	return ln.Addr().String(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
