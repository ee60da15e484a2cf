package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/rng"
	"snake-game/game/types"
)

const instrumentationName = "snake-game/game"

// ErrTerminated is returned by Tick once the session has ended.
var ErrTerminated = errors.New("game terminated")

// InputSource yields at most one pending key symbol without blocking.
type InputSource interface {
	Pending() (rune, bool)
}

// ChannelInput adapts a channel fed by a capture goroutine.
type ChannelInput <-chan rune

func (c ChannelInput) Pending() (rune, bool) {
	select {
	case r, ok := <-c:
		return r, ok
	default:
		return 0, false
	}
}

// TickResult describes what a single tick did.
type TickResult struct {
	Tick   uint64
	Ate    bool
	Over   bool
	Reason manager.TerminationReason
}

type Game struct {
	Grid types.Grid

	board        *entity.Board
	snake        *entity.Snake
	direction    types.Point
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager

	log     zerolog.Logger
	ticks   metric.Int64Counter
	eaten   metric.Int64Counter
	endings metric.Int64Counter
}

type Option func(*Game)

func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithStart places the snake somewhere other than the top-left corner.
func WithStart(p types.Point) Option {
	return func(g *Game) { g.snake = entity.NewSnake(p) }
}

// WithMeter overrides the global otel meter.
func WithMeter(m metric.Meter) Option {
	return func(g *Game) { g.initMetrics(m) }
}

// NewGame sets up an empty board, a one-segment snake at the start
// position heading down, and no food.
func NewGame(height, width int, source rng.Source, opts ...Option) *Game {
	grid := types.Grid{Width: width, Height: height}
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		Grid:         grid,
		board:        entity.NewBoard(height, width),
		snake:        entity.NewSnake(types.StartPosition),
		direction:    types.InitialHeading,
		foodMgr:      manager.NewFoodManager(grid, source, collisionMgr),
		collisionMgr: collisionMgr,
		stateMgr:     manager.NewStateManager(),
		log:          zerolog.Nop(),
	}
	g.initMetrics(otel.Meter(instrumentationName))

	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) initMetrics(m metric.Meter) {
	var err error
	if g.ticks, err = m.Int64Counter("snake.ticks",
		metric.WithDescription("Ticks processed")); err != nil {
		otel.Handle(err)
	}
	if g.eaten, err = m.Int64Counter("snake.food.eaten",
		metric.WithDescription("Food items consumed")); err != nil {
		otel.Handle(err)
	}
	if g.endings, err = m.Int64Counter("snake.sessions.terminated",
		metric.WithDescription("Sessions ended, by reason")); err != nil {
		otel.Handle(err)
	}
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Board() *entity.Board {
	return g.board
}

func (g *Game) Foods() []types.Point {
	return g.foodMgr.GetFoodList()
}

func (g *Game) Direction() types.Point {
	return g.direction
}

func (g *Game) State() manager.State {
	return g.stateMgr.State()
}

func (g *Game) Reason() manager.TerminationReason {
	return g.stateMgr.Reason()
}

func (g *Game) FoodEaten() int {
	return g.stateMgr.FoodEaten()
}

// GenerateFood adds a single food item.
func (g *Game) GenerateFood() {
	p := g.foodMgr.GenerateFood()
	g.log.Debug().Int("x", p.X).Int("y", p.Y).Msg("food placed")
}

func (g *Game) GenerateFoodIfEmpty() {
	if n := g.foodMgr.GenerateFoodIfEmpty(); n > 0 {
		g.log.Info().Int("count", n).Msg("food batch spawned")
	}
}

// MoveSnake moves the snake one step. False means it ran into itself.
func (g *Game) MoveSnake(direction types.Point) bool {
	return g.snake.Move(direction)
}

// IsGameOver reports whether the head overlaps the body or has left the
// board. Call it after MoveSnake and before Eat: a new snake, and one that
// has just eaten, shares the head's cell with its newest segment.
func (g *Game) IsGameOver() bool {
	return g.collisionMgr.CheckCollision(g.snake) != manager.ReasonNone
}

// Eat consumes the food under the head, if any, and grows the snake.
func (g *Game) Eat() bool {
	if !g.foodMgr.Consume(g.snake.Head()) {
		return false
	}
	g.snake.GrowAtHead()
	g.stateMgr.RecordFood()
	return true
}

// UpdateMatrix rebuilds the cell grid from the snake and food state.
func (g *Game) UpdateMatrix() error {
	return g.board.Render(g.snake, g.foodMgr.GetFoodList())
}

func (g *Game) GetCell(p types.Point) (types.Cell, error) {
	return g.board.Get(p)
}

func (g *Game) SetCell(p types.Point, c types.Cell) error {
	return g.board.Set(p, c)
}

// SteerWith applies a key symbol to the current heading. Unknown symbols
// and exact reversals leave the heading unchanged.
func (g *Game) SteerWith(symbol rune) types.Point {
	d, ok := types.DirectionFromSymbol(symbol)
	if !ok {
		return g.direction
	}
	if d.Opposite().ToPoint() == g.direction {
		g.log.Debug().Str("direction", d.String()).Msg("reversal rejected")
		return g.direction
	}
	g.direction = d.ToPoint()
	return g.direction
}

// Quit ends the session at the player's request.
func (g *Game) Quit() {
	g.terminate(manager.ReasonQuit)
}

func (g *Game) terminate(reason manager.TerminationReason) {
	if !g.stateMgr.Running() {
		return
	}
	g.stateMgr.Terminate(reason)
	g.endings.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("reason", reason.String())))
	g.log.Info().
		Str("reason", reason.String()).
		Uint64("ticks", g.stateMgr.Ticks()).
		Int("length", g.snake.Len()).
		Int("eaten", g.stateMgr.FoodEaten()).
		Msg("game over")
}

// Tick advances the simulation by one step.
func (g *Game) Tick(in InputSource) (TickResult, error) {
	if !g.stateMgr.Running() {
		return TickResult{Tick: g.stateMgr.Ticks(), Over: true, Reason: g.stateMgr.Reason()}, ErrTerminated
	}

	res := TickResult{Tick: g.stateMgr.AdvanceTick()}
	g.ticks.Add(context.Background(), 1)

	if in != nil {
		if symbol, ok := in.Pending(); ok {
			g.SteerWith(symbol)
		}
	}

	g.GenerateFoodIfEmpty()

	moved := g.MoveSnake(g.direction)
	head := g.snake.Head()

	switch {
	case !moved:
		g.terminate(manager.ReasonSelfCollision)
	case g.collisionMgr.IsWallCollision(head):
		g.terminate(manager.ReasonWallCollision)
	}
	if !g.stateMgr.Running() {
		res.Over = true
		res.Reason = g.stateMgr.Reason()
		return res, nil
	}

	if g.Eat() {
		res.Ate = true
		g.eaten.Add(context.Background(), 1)
		g.log.Info().Int("x", head.X).Int("y", head.Y).Int("length", g.snake.Len()).Msg("food eaten")
	}

	if err := g.UpdateMatrix(); err != nil {
		return res, fmt.Errorf("tick %d: %w", res.Tick, err)
	}

	g.log.Debug().
		Uint64("tick", res.Tick).
		Int("x", head.X).
		Int("y", head.Y).
		Int("foods", g.foodMgr.Len()).
		Msg("tick")
	return res, nil
}
