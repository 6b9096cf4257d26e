package tetris

import "github.com/vovakirdan/cplxtris/internal/cnum"

// CommandKind enumerates the inbound commands.
type CommandKind int

const (
	CmdMoveLeft CommandKind = iota
	CmdMoveRight
	CmdSoftDrop
	CmdHardDrop
	CmdRotate
	CmdTransform
	CmdPause
	CmdRestart
)

func (k CommandKind) String() string {
	switch k {
	case CmdMoveLeft:
		return "move-left"
	case CmdMoveRight:
		return "move-right"
	case CmdSoftDrop:
		return "soft-drop"
	case CmdHardDrop:
		return "hard-drop"
	case CmdRotate:
		return "rotate"
	case CmdTransform:
		return "transform"
	case CmdPause:
		return "pause"
	case CmdRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Command is one inbound request. Func is only read by CmdTransform.
type Command struct {
	Kind CommandKind
	Func cnum.Func
}

// Apply runs c against s and returns the resulting state. Unknown kinds
// return s unchanged.
func (m *Machine) Apply(s State, c Command) State {
	switch c.Kind {
	case CmdMoveLeft:
		return m.Move(s, Left)
	case CmdMoveRight:
		return m.Move(s, Right)
	case CmdSoftDrop:
		return m.Move(s, Down)
	case CmdHardDrop:
		return m.HardDrop(s)
	case CmdRotate:
		return m.Rotate(s)
	case CmdTransform:
		return m.Transform(s, c.Func)
	case CmdPause:
		return m.TogglePause(s)
	case CmdRestart:
		return m.Restart(s)
	default:
		return s
	}
}
