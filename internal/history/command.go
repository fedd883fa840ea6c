package history

import (
	"time"

	"github.com/google/uuid"
)

// Command is one completed edit: the raster before and after it.
// A Command is never modified after NewCommand returns.
type Command struct {
	id      uuid.UUID
	label   string
	created time.Time
	before  *Snapshot
	after   *Snapshot
}

// NewCommand pairs two snapshots under a fresh identifier.
// label names the edit, for example "paint" or "clear".
func NewCommand(label string, before, after *Snapshot) *Command {
	return &Command{
		id:      uuid.New(),
		label:   label,
		created: time.Now(),
		before:  before,
		after:   after,
	}
}

// ID returns the unique identifier of the command.
func (c *Command) ID() uuid.UUID { return c.id }

// Label returns the name of the edit.
func (c *Command) Label() string { return c.label }

// Created returns the time the command was recorded.
func (c *Command) Created() time.Time { return c.created }

// Before returns the snapshot taken before the edit.
func (c *Command) Before() *Snapshot { return c.before }

// After returns the snapshot taken after the edit.
func (c *Command) After() *Snapshot { return c.after }
