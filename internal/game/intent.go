package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomcrawl/internal/point"
)

// Action is the kind of thing the player asked for.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionAttack
	ActionTarget
	ActionQuit
	ActionRedraw
)

// Intent is one decoded player request.
type Intent struct {
	Action Action
	Delta  point.Point // Step for ActionMove
	Screen point.Point // Clicked cell for ActionTarget, in screen coordinates
}

// MoveIntent returns a request to step in d.
func MoveIntent(d point.Direction) Intent {
	return Intent{Action: ActionMove, Delta: d.Delta()}
}

// DecodeEvent turns a terminal event into an intent. Unbound keys and mouse
// motion decode to ActionNone.
func DecodeEvent(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return decodeKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			return Intent{Action: ActionTarget, Screen: point.Pt(x, y)}
		}
	case *tcell.EventResize:
		return Intent{Action: ActionRedraw}
	}
	return Intent{}
}

func decodeKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Action: ActionQuit}
	case tcell.KeyUp:
		return MoveIntent(point.North)
	case tcell.KeyDown:
		return MoveIntent(point.South)
	case tcell.KeyLeft:
		return MoveIntent(point.West)
	case tcell.KeyRight:
		return MoveIntent(point.East)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return Intent{Action: ActionQuit}
		case 'k', 'w':
			return MoveIntent(point.North)
		case 'j', 's':
			return MoveIntent(point.South)
		case 'h', 'a':
			return MoveIntent(point.West)
		case 'l', 'd':
			return MoveIntent(point.East)
		case ' ', 'f':
			return Intent{Action: ActionAttack}
		}
	}
	return Intent{}
}
