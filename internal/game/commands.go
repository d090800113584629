// Input command queue. Discrete input events are enqueued by the host
// and drained one per update pass, so a frame resolves at most one
// player interaction and handlers always run after clock state settles.
package game

// CommandKind discriminates input commands.
type CommandKind uint8

const (
	CmdUseTool CommandKind = iota + 1
	CmdInteract
	CmdSelectSlot
	CmdScroll
	CmdSleep
)

// Command is one discrete input event.
type Command struct {
	Kind  CommandKind
	X, Y  float64 // World position for CmdUseTool / CmdInteract
	Slot  int     // CmdSelectSlot
	Delta int     // CmdScroll
}

// Enqueue appends an input command for the next update passes.
func (s *Session) Enqueue(cmd Command) {
	s.commands = append(s.commands, cmd)
}

// LastResult returns the outcome of the most recently drained command.
func (s *Session) LastResult() Result {
	return s.lastResult
}

// drainOne pops and resolves the oldest queued command, if any.
func (s *Session) drainOne() {
	if len(s.commands) == 0 {
		return
	}
	cmd := s.commands[0]
	s.commands = s.commands[1:]

	switch cmd.Kind {
	case CmdUseTool:
		s.lastResult = s.UseTool(cmd.X, cmd.Y)
	case CmdInteract:
		s.lastResult = s.Interact(cmd.X, cmd.Y)
	case CmdSelectSlot:
		s.Player.Inventory.Select(cmd.Slot)
		s.lastResult = Result{}
	case CmdScroll:
		s.Player.Inventory.Scroll(cmd.Delta)
		s.lastResult = Result{}
	case CmdSleep:
		if s.RequestSleep() {
			s.lastResult = Result{}
		} else {
			s.lastResult = Result{Outcome: OutcomeRejected}
		}
	}
}
