package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/snakearena/config"
)

// rootOptions are flags shared by every subcommand
type rootOptions struct {
	configPath string
	seed       int64
	players    int
	gridSize   int
	speed      int
	noShrink   bool
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "snakearena",
		Short: "Real-time multi-agent grid survival",
		Long: `snakearena runs a shrinking-arena survival match between human and
autonomous agents. Use "play" for the terminal game and "sim" for headless runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML match file (defaults apply when empty)")
	pf.Int64Var(&opts.seed, "seed", 0, "Random seed, 0 derives one from the clock")
	pf.IntVarP(&opts.players, "players", "n", 0, "Override number of players")
	pf.IntVar(&opts.gridSize, "grid-size", 0, "Override initial grid size")
	pf.IntVar(&opts.speed, "speed", 0, "Override initial speed level")
	pf.BoolVar(&opts.noShrink, "no-shrink", false, "Disable arena shrinking")
	pf.BoolVar(&opts.debug, "debug", false, "Write JSON debug logs under ./logs")

	root.AddCommand(newPlayCmd(opts), newSimCmd(opts))
	return root
}

// loadMatch resolves the match file and applies flag overrides
func loadMatch(cmd *cobra.Command, opts *rootOptions) (config.Match, error) {
	m := config.Default()
	if opts.configPath != "" {
		var err error
		if m, err = config.Load(opts.configPath); err != nil {
			return m, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		m.Seed = opts.seed
	}
	if flags.Changed("players") {
		m.Players = opts.players
		m.HumanSeats = min(m.HumanSeats, m.Players)
	}
	if flags.Changed("grid-size") {
		m.GridSize = opts.gridSize
	}
	if flags.Changed("speed") {
		m.SpeedLevel = opts.speed
	}
	if opts.noShrink {
		m.Shrink = false
	}

	if err := m.Validate(); err != nil {
		return m, fmt.Errorf("match config: %w", err)
	}
	return m, nil
}
