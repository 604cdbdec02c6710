package game

import "fmt"

// EventKind classifies the outcome of a step or a hard drop.
type EventKind int

const (
	EventContinue EventKind = iota
	EventLinesCleared
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventContinue:
		return "continue"
	case EventLinesCleared:
		return "lines_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is informational; handling it never changes engine state.
type Event struct {
	Kind EventKind
	// Lines is set for EventLinesCleared.
	Lines int
	// Score is set for EventGameOver.
	Score int
}

// Continue reports a step or drop that neither cleared rows nor ended the game.
func Continue() Event {
	return Event{Kind: EventContinue}
}

// LinesCleared reports n rows removed by a lock.
func LinesCleared(n int) Event {
	return Event{Kind: EventLinesCleared, Lines: n}
}

// GameOver reports the end of a game with its final score.
func GameOver(score int) Event {
	return Event{Kind: EventGameOver, Score: score}
}

func (e Event) String() string {
	switch e.Kind {
	case EventLinesCleared:
		return fmt.Sprintf("LinesCleared(%d)", e.Lines)
	case EventGameOver:
		return fmt.Sprintf("GameOver(%d)", e.Score)
	default:
		return "Continue"
	}
}
