package game

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/connectfour/internal/board"
	"github.com/samdwyer/connectfour/internal/gamedata"
	"github.com/samdwyer/connectfour/internal/telemetry"
	"github.com/samdwyer/connectfour/internal/ui"
)

// Messages shown under the board.
const (
	promptMove    = "Enter a column number to drop a piece into: "
	promptInvalid = "Invalid input! Enter a non-empty column number from 0 - 6: "
	promptOver    = "Press r to play again or q to quit."
	gameOver      = "Game Over! "
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	players  *gamedata.PlayerRegistry
	match    *Match
	tracer   trace.Tracer
	prompt   string
	running  bool
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g, err := newGame(cfg, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// newGame creates a game drawing to screen.
func newGame(cfg Config, screen *ui.Screen) (*Game, error) {
	players, err := gamedata.LoadPlayerRegistry()
	if err != nil {
		return nil, err
	}

	tracer := telemetry.NoopTracer()
	if cfg.Telemetry {
		tracer = telemetry.Tracer("game")
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, players),
		players:  players,
		match:    NewMatch(tracer),
		tracer:   tracer,
		prompt:   promptMove,
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	_, initSpan := g.tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("match.id", g.match.ID.String()),
		attribute.Int("board.rows", board.Rows),
		attribute.Int("board.columns", board.Columns),
	)
	initSpan.End()
	slog.Info("match started", "match", g.match.ID.String())

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.Close()
	return nil
}

// render draws the board with the status line for the current state.
func (g *Game) render() {
	b := g.match.Board()
	status := g.players.Name(b.CurrentPlayer()) + " to move"
	if g.match.State().Over() {
		status = gameOver + g.match.Result(g.players.Name)
	}
	g.renderer.Render(b, status, g.prompt)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized.
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if ui.IsQuit(ev) {
		g.running = false
		return
	}

	if g.match.State().Over() {
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R') {
			g.match.Rematch()
			g.prompt = promptMove
		}
		return
	}

	input, ok := ui.KeyColumn(ev)
	if !ok {
		return
	}
	g.tryMove(ctx, input)
}

// tryMove plays input for the current player and updates the prompt.
func (g *Game) tryMove(ctx context.Context, input string) {
	err := g.match.Play(ctx, input)
	switch {
	case err == nil && g.match.State().Over():
		g.prompt = promptOver
	case err == nil:
		g.prompt = promptMove
	case errors.Is(err, board.ErrInvalidColumn), errors.Is(err, ErrColumnFull):
		g.prompt = promptInvalid
	default:
		slog.Error("move failed", "match", g.match.ID.String(), "error", err)
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
