package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/connectfour/internal/board"
)

var (
	// ErrColumnFull is returned when a move targets a column with no room.
	ErrColumnFull = errors.New("column is full")
	// ErrGameOver is returned when a move is made after the match ended.
	ErrGameOver = errors.New("game is over")
)

// Match drives one board through a game: place, rotate, check for the end.
// It knows nothing about the terminal.
type Match struct {
	ID     uuid.UUID
	board  *board.Board
	state  State
	tracer trace.Tracer
	log    *slog.Logger
}

// NewMatch creates a match on an empty board.
func NewMatch(tracer trace.Tracer) *Match {
	m := &Match{
		board:  board.New(),
		tracer: tracer,
	}
	m.start()
	return m
}

func (m *Match) start() {
	m.ID = uuid.New()
	m.state = StatePlaying
	m.log = slog.Default().With("match", m.ID.String())
}

// Board returns the match board for rendering.
func (m *Match) Board() *board.Board {
	return m.board
}

// State returns the current match state.
func (m *Match) State() State {
	return m.state
}

// Play applies one move from raw user input such as "3".
// On any error the board is left unchanged and the same player moves again.
func (m *Match) Play(ctx context.Context, input string) error {
	ctx, span := m.tracer.Start(ctx, "match.play")
	defer span.End()

	player := m.board.CurrentPlayer()
	span.SetAttributes(
		attribute.String("match.id", m.ID.String()),
		attribute.String("move.player", player.String()),
	)

	if err := m.play(ctx, input); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		m.log.Debug("move rejected", "player", player.String(), "input", input, "error", err)
		return err
	}

	span.SetAttributes(
		attribute.Int("match.moves", m.board.Moves()),
		attribute.String("match.state", m.state.String()),
	)
	return nil
}

func (m *Match) play(ctx context.Context, input string) error {
	if m.state.Over() {
		return ErrGameOver
	}

	col, err := board.ParseColumn(input)
	if err != nil {
		return err
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("move.column", int(col)))

	placed, err := m.board.PlacePiece(col)
	if err != nil {
		return err
	}
	if !placed {
		m.log.Debug("column full", "column", int(col), "open", m.board.PlayableColumns())
		return fmt.Errorf("%w: %d", ErrColumnFull, col)
	}

	m.log.Debug("piece placed", "player", m.board.CurrentPlayer().String(), "column", int(col))
	m.board.RotateTurn()

	switch {
	case m.board.HasWin():
		m.state = StateWon
	case m.board.IsFull():
		m.state = StateTie
	}
	if m.state.Over() {
		m.finish(ctx)
	}
	return nil
}

// finish records the result once the match ends.
func (m *Match) finish(ctx context.Context) {
	_, span := m.tracer.Start(ctx, "match.end")
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.String("match.id", m.ID.String()),
		attribute.String("match.state", m.state.String()),
		attribute.Int("match.moves", m.board.Moves()),
	}
	if winner, ok := m.Winner(); ok {
		attrs = append(attrs, attribute.String("match.winner", winner.String()))
	}
	span.SetAttributes(attrs...)

	m.log.Info("match finished", "state", m.state.String(), "moves", m.board.Moves())
}

// Winner returns the color holding a run, if any.
func (m *Match) Winner() (board.Color, bool) {
	return m.board.Winner()
}

// Result describes how the match ended, using name to label the winner.
// It is empty while the match is in progress.
func (m *Match) Result(name func(board.Color) string) string {
	if winner, ok := m.Winner(); ok {
		return name(winner) + " wins!"
	}
	if m.board.IsFull() {
		return "It's a tie!"
	}
	return ""
}

// Rematch clears the board and starts a new match.
func (m *Match) Rematch() {
	m.board.Reset()
	m.start()
	m.log.Info("match started")
}
