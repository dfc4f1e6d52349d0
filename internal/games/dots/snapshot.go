package dots

import "github.com/vovakirdan/tui-dots/internal/games/dots/board"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateComplete    GameStateType = "complete"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Width    int
	Height   int
	Board    board.Snapshot
	Cursor   board.PointID
	Dragging bool
	Moves    int
	Score    int
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.board.Complete():
		state = StateComplete
	case g.paused:
		state = StatePaused
	}

	_, dragging := g.board.Drag()
	return Snapshot{
		Tick:     g.tick,
		Width:    g.board.Width(),
		Height:   g.board.Height(),
		Board:    g.board.Snapshot(),
		Cursor:   g.cursor,
		Dragging: dragging,
		Moves:    g.moves,
		Score:    len(g.board.Squares()),
		State:    state,
	}
}
