// Package engine runs a match: seats, the per-tick pipeline from decisions to
// pickups, the shrink schedule, and the scheduler that paces ticks
package engine

import (
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/snakearena/agent"
	"github.com/lixenwraith/snakearena/ai"
	"github.com/lixenwraith/snakearena/config"
	"github.com/lixenwraith/snakearena/core"
	"github.com/lixenwraith/snakearena/event"
	"github.com/lixenwraith/snakearena/grid"
	"github.com/lixenwraith/snakearena/parameter"
	"github.com/lixenwraith/snakearena/pickup"
	"github.com/lixenwraith/snakearena/status"
)

// Game is the authoritative match state
// Tick is driven by one goroutine; intents and State may be called concurrently
type Game struct {
	mu sync.RWMutex

	cfg    config.Match
	logger *slog.Logger
	sink   event.Sink
	clock  Clock
	rng    *rand.Rand
	spawns bool

	matchID    string
	agents     []*agent.Agent // Seat order
	byID       map[int]*agent.Agent
	registry   *ai.Registry
	field      *pickup.Field
	size       int
	speedLevel int

	epoch      time.Time
	elapsed    time.Duration
	lastShrink time.Duration
	tick       int64

	over        bool
	winnerID    int
	winnerScore int

	statusReg *status.Registry
	stats     gameStats
}

// gameStats caches metric pointers
type gameStats struct {
	ticks      *atomic.Int64
	alive      *atomic.Int64
	gridSize   *atomic.Int64
	speedLevel *atomic.Int64
	pickups    *atomic.Int64
	eaten      *atomic.Int64
	deaths     *atomic.Int64
	revives    *atomic.Int64
	penetrates *atomic.Int64
	blocked    *atomic.Int64
	topScore   *atomic.Int64
	elapsed    *status.AtomicFloat
	tickSecs   *status.AtomicFloat
	gameOver   *atomic.Bool
	matchID    *status.AtomicString
}

// Option configures a Game
type Option func(*Game)

// WithLogger sets the structured logger, nil discards
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSink sets the event sink
func WithSink(s event.Sink) Option {
	return func(g *Game) {
		if s != nil {
			g.sink = s
		}
	}
}

// WithClock sets the clock that stamps the match epoch
func WithClock(c Clock) Option {
	return func(g *Game) {
		if c != nil {
			g.clock = c
		}
	}
}

// WithRand injects the random source shared by spawning, revive and decisions
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithStatus publishes match metrics into reg
func WithStatus(reg *status.Registry) Option {
	return func(g *Game) {
		if reg != nil {
			g.statusReg = reg
		}
	}
}

// WithoutSpawns disables every automatic pickup spawn, for scripted matches
func WithoutSpawns() Option {
	return func(g *Game) {
		g.spawns = false
	}
}

// New validates cfg and resets a fresh match
func New(cfg config.Match, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:       cfg,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		sink:      event.Discard,
		clock:     NewTimeProvider(),
		spawns:    true,
		statusReg: status.NewRegistry(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = g.clock.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
	g.bindStats()
	g.Reset()
	return g, nil
}

func (g *Game) bindStats() {
	r := g.statusReg
	g.stats = gameStats{
		ticks:      r.Ints.Get(status.KeyTicks),
		alive:      r.Ints.Get(status.KeyAlive),
		gridSize:   r.Ints.Get(status.KeyGridSize),
		speedLevel: r.Ints.Get(status.KeySpeedLevel),
		pickups:    r.Ints.Get(status.KeyPickups),
		eaten:      r.Ints.Get(status.KeyEaten),
		deaths:     r.Ints.Get(status.KeyDeaths),
		revives:    r.Ints.Get(status.KeyRevives),
		penetrates: r.Ints.Get(status.KeyPenetrates),
		blocked:    r.Ints.Get(status.KeyBlocked),
		topScore:   r.Ints.Get(status.KeyTopScore),
		elapsed:    r.Floats.Get(status.KeyElapsed),
		tickSecs:   r.Floats.Get(status.KeyTickSeconds),
		gameOver:   r.Bools.Get(status.KeyGameOver),
		matchID:    r.Strings.Get(status.KeyMatchID),
	}
}

// Reset starts a new match from the seat table
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.matchID = uuid.NewString()
	g.size = g.cfg.GridSize
	g.speedLevel = g.cfg.SpeedLevel
	g.epoch = g.clock.Now()
	g.elapsed = 0
	g.lastShrink = 0
	g.tick = 0
	g.over = false
	g.winnerID, g.winnerScore = 0, 0

	g.agents = g.agents[:0]
	g.byID = make(map[int]*agent.Agent, g.cfg.Players)
	if g.registry == nil {
		g.registry = ai.NewRegistry()
	}
	g.registry.Clear()

	now := g.now()
	for _, seat := range Seats(g.size, g.cfg.Players) {
		kind := agent.Autonomous
		if seat.ID <= g.cfg.HumanSeats {
			kind = agent.Human
		}
		a := agent.New(seat.ID, kind, g.size, seat.Head, seat.Direction)
		g.agents = append(g.agents, a)
		g.byID[a.ID] = a

		c := ai.NewController(a, g.rng, now)
		if name, ok := g.cfg.Strategies[seat.ID]; ok {
			c.SetStrategy(ai.ParseStrategy(name), now)
		}
		g.registry.Add(c)
	}

	if g.field == nil {
		g.field = pickup.NewField(g.size)
	}
	g.field.Reset(g.size)
	if g.spawns {
		occupied := g.occupiedForSpawn()
		g.field.SpawnItem(pickup.Revive, now, g.rng, occupied)
		g.field.SpawnItem(pickup.Penetrate, now, g.rng, occupied)
		g.field.SpawnFood(now, g.rng, occupied)
	}

	g.stats.matchID.Store(g.matchID)
	g.stats.eaten.Store(0)
	g.stats.deaths.Store(0)
	g.stats.revives.Store(0)
	g.stats.penetrates.Store(0)
	g.stats.blocked.Store(0)
	g.publishStats()

	g.logger.Info("match reset",
		"match_id", g.matchID,
		"players", g.cfg.Players,
		"humans", g.cfg.HumanSeats,
		"grid_size", g.size,
		"speed_level", g.speedLevel)
}

// now is game time: match epoch plus simulated elapsed time
func (g *Game) now() time.Time {
	return g.epoch.Add(g.elapsed)
}

func (g *Game) occupiedForSpawn() pickup.Occupied {
	occ := liveOccupancy{size: g.size, agents: g.agents}
	return occ.Occupied
}

func (g *Game) emit(t event.EventType, agentID int, payload any) {
	g.sink.Notify(event.GameEvent{Type: t, AgentID: agentID, Payload: payload, Tick: g.tick})
}

// Tick advances the match one step and reports whether it is still running
// Ticks after game over are no-ops
func (g *Game) Tick() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.over {
		return false
	}

	interval := parameter.TickInterval(g.speedLevel)
	g.tick++
	g.elapsed += interval
	now := g.now()

	g.field.Update(now)
	g.checkShrink()

	// Decisions: one shared snapshot for every controller
	bodies := make([]grid.Body, len(g.agents))
	for i, a := range g.agents {
		bodies[i] = a.GridBody()
	}
	world := ai.World{Snapshot: grid.NewSnapshot(g.size, bodies), Pickups: g.field, Now: now}
	decisions := g.registry.DecideAll(g.agents, world)
	for _, a := range g.agents {
		if d, ok := decisions[a.ID]; ok {
			a.SetDirection(d)
		}
	}

	// Movement: sequential in seat order against live bodies
	live := liveOccupancy{size: g.size, agents: g.agents}
	for _, a := range g.agents {
		if !a.Alive {
			continue
		}
		g.applyResult(a, a.Step(live, now), live)
	}

	for _, a := range g.agents {
		a.UpdateEffects(now)
	}

	g.consumePickups(now)
	g.replenish(now)
	g.checkGameOver()

	g.stats.tickSecs.Set(interval.Seconds())
	g.publishStats()
	return !g.over
}

// applyResult turns an advance outcome into side effects and events
func (g *Game) applyResult(a *agent.Agent, res agent.Result, live liveOccupancy) {
	switch res.Outcome {
	case agent.Blocked:
		g.stats.blocked.Add(1)
		g.emit(event.EventBlocked, a.ID, event.BlockedPayload{Obstacle: res.Collision.String(), Count: a.BlockedCount})

	case agent.Penetrated:
		g.stats.penetrates.Add(1)
		g.emit(event.EventPenetrated, a.ID, event.BlockedPayload{Obstacle: res.Collision.String()})

	case agent.NeedRevive:
		if a.Revive(live, g.rng) {
			g.stats.revives.Add(1)
			head, _ := a.Head()
			g.logger.Debug("agent revived", "agent", a.ID, "head_x", head.X, "head_y", head.Y, "tick", g.tick)
			g.emit(event.EventRevived, a.ID, nil)
			return
		}
		g.died(a, "no safe respawn")

	case agent.Died:
		g.died(a, "blocked")
	}
}

func (g *Game) died(a *agent.Agent, reason string) {
	g.stats.deaths.Add(1)
	g.logger.Debug("agent died", "agent", a.ID, "reason", reason, "score", a.Score, "tick", g.tick)
	g.emit(event.EventDied, a.ID, nil)
}

// consumePickups applies food then items landing under living heads, in seat order
func (g *Game) consumePickups(now time.Time) {
	for _, a := range g.agents {
		head, ok := a.Head()
		if !a.Alive || !ok {
			continue
		}
		p, ok := g.field.Consume(head)
		if !ok {
			continue
		}
		switch p.Kind {
		case pickup.Food:
			a.Grow(p.Value)
			g.stats.eaten.Add(1)
			g.emit(event.EventEat, a.ID, event.EatPayload{Value: p.Value})
			if g.spawns {
				g.field.SpawnFood(now, g.rng, g.occupiedForSpawn())
			}
		case pickup.Revive:
			a.Revives++
			g.emit(event.EventItemCollected, a.ID, event.ItemPayload{Kind: p.Kind.String()})
		case pickup.Penetrate:
			a.Penetrates++
			g.emit(event.EventItemCollected, a.ID, event.ItemPayload{Kind: p.Kind.String()})
		}
	}
}

// replenish makes one spawn attempt per tick while the field is below its floor
func (g *Game) replenish(now time.Time) {
	if !g.spawns || g.field.Count() >= parameter.MinFieldObjects {
		return
	}
	occupied := g.occupiedForSpawn()
	switch r := g.rng.Float64(); {
	case r < 1.0/3:
		g.field.SpawnFood(now, g.rng, occupied)
	case r < 2.0/3:
		g.field.SpawnItem(pickup.Revive, now, g.rng, occupied)
	default:
		g.field.SpawnItem(pickup.Penetrate, now, g.rng, occupied)
	}
}

// checkShrink shrinks the arena once per interval of game time
// At the minimum size the interval elapses without effect
func (g *Game) checkShrink() {
	if !g.cfg.Shrink || g.elapsed-g.lastShrink < parameter.ShrinkInterval {
		return
	}
	g.lastShrink = g.elapsed

	from := g.size
	to := max(parameter.MinGridSize, from-parameter.ShrinkStep)
	if to == from {
		return
	}
	g.size = to
	for _, a := range g.agents {
		a.Resize(to)
	}
	g.field.Resize(to)
	if g.speedLevel < parameter.MaxSpeedLevel {
		g.speedLevel++
	}

	g.logger.Info("arena shrunk", "from", from, "to", to, "speed_level", g.speedLevel, "tick", g.tick)
	g.emit(event.EventGridShrunk, 0, event.ShrinkPayload{From: from, To: to, SpeedLevel: g.speedLevel})
}

// checkGameOver ends the match when no agent is alive
// The winner is the highest score; ties keep the earlier seat, zero scores win nothing
func (g *Game) checkGameOver() {
	for _, a := range g.agents {
		if a.Alive {
			return
		}
	}
	g.over = true
	for _, a := range g.agents {
		if a.Score > g.winnerScore {
			g.winnerID, g.winnerScore = a.ID, a.Score
		}
	}
	g.logger.Info("game over",
		"match_id", g.matchID,
		"winner", g.winnerID,
		"score", g.winnerScore,
		"ticks", g.tick,
		"elapsed", g.elapsed)
	g.emit(event.EventGameOver, 0, event.GameOverPayload{WinnerID: g.winnerID, Score: g.winnerScore})
}

func (g *Game) publishStats() {
	alive, top := 0, 0
	for _, a := range g.agents {
		if a.Alive {
			alive++
		}
		top = max(top, a.Score)
	}
	g.stats.ticks.Store(g.tick)
	g.stats.alive.Store(int64(alive))
	g.stats.gridSize.Store(int64(g.size))
	g.stats.speedLevel.Store(int64(g.speedLevel))
	g.stats.pickups.Store(int64(g.field.Count()))
	g.stats.topScore.Store(int64(top))
	g.stats.elapsed.Set(g.elapsed.Seconds())
	g.stats.gameOver.Store(g.over)
}

// TickInterval returns the cadence of the current speed level
func (g *Game) TickInterval() time.Duration {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return parameter.TickInterval(g.speedLevel)
}

// Over reports whether every agent is dead
func (g *Game) Over() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.over
}

// MatchID returns the id of the current match
func (g *Game) MatchID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.matchID
}

// SetIntent stores a human direction request for the next tick
// AI seats and autopiloted human seats refuse it
func (g *Game) SetIntent(id int, d core.Direction) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	a, ok := g.byID[id]
	switch {
	case !ok:
		return ErrUnknownAgent
	case g.over:
		return ErrGameOver
	case a.Kind != agent.Human:
		return ErrNotHuman
	case a.Autopilot:
		return ErrAutopilot
	case !a.Alive:
		return ErrAgentDead
	case !d.IsUnit():
		return ErrInvalidDirection
	case !a.SetDirection(d):
		return ErrReverseDirection
	}
	return nil
}

// ToggleAutopilot hands a human seat to or back from the decision engine
// Returns the new autopilot state
func (g *Game) ToggleAutopilot(id int) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	a, ok := g.byID[id]
	if !ok {
		return false, ErrUnknownAgent
	}
	if a.Kind != agent.Human {
		return false, ErrNotHuman
	}
	a.Autopilot = !a.Autopilot
	g.logger.Info("autopilot toggled", "agent", id, "autopilot", a.Autopilot)
	return a.Autopilot, nil
}
