// Package history implements the bounded undo/redo stack of whole-raster
// snapshots.
package history

// DefaultMaxSize is the number of commands kept when no bound is given.
const DefaultMaxSize = 5

// Stack is a bounded, linear undo history.
//
// The cursor idx always points just past the last applied command.
// Commands at positions >= idx form the redo branch, which is discarded by
// the next Push. Stack is not safe for concurrent use.
type Stack struct {
	cmds    []*Command
	idx     int
	maxSize int
}

// NewStack returns an empty stack holding at most maxSize commands.
// A non-positive maxSize selects DefaultMaxSize.
func NewStack(maxSize int) *Stack {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Stack{maxSize: maxSize}
}

// Push discards the redo branch, appends cmd and drops the oldest command
// if the stack is over its bound. It reports whether a command was dropped.
func (s *Stack) Push(cmd *Command) (dropped bool) {
	for i := s.idx; i < len(s.cmds); i++ {
		s.cmds[i] = nil
	}
	s.cmds = append(s.cmds[:s.idx], cmd)
	if len(s.cmds) > s.maxSize {
		s.cmds[0] = nil
		s.cmds = s.cmds[1:]
		dropped = true
	}
	s.idx = len(s.cmds)
	return dropped
}

// Undo steps the cursor back and returns the command to revert, whose
// Before snapshot should be restored. It returns false when there is
// nothing to undo.
func (s *Stack) Undo() (*Command, bool) {
	if s.idx <= 0 {
		return nil, false
	}
	s.idx--
	return s.cmds[s.idx], true
}

// Redo returns the command to reapply, whose After snapshot should be
// restored, and steps the cursor forward. It returns false when there is
// nothing to redo.
func (s *Stack) Redo() (*Command, bool) {
	if s.idx >= len(s.cmds) {
		return nil, false
	}
	cmd := s.cmds[s.idx]
	s.idx++
	return cmd, true
}

// Len returns the number of commands held, including the redo branch.
func (s *Stack) Len() int { return len(s.cmds) }

// Index returns the cursor position.
func (s *Stack) Index() int { return s.idx }

// MaxSize returns the bound on the number of commands.
func (s *Stack) MaxSize() int { return s.maxSize }

// CanUndo reports whether Undo would return a command.
func (s *Stack) CanUndo() bool { return s.idx > 0 }

// CanRedo reports whether Redo would return a command.
func (s *Stack) CanRedo() bool { return s.idx < len(s.cmds) }
