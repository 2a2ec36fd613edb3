// Package history records the state after every committed turn so the last
// turn can be taken back.
package history

import (
	"errors"

	"github.com/vovakirdan/threesus/internal/model"
)

// ErrEmptyHistory is returned by Undo when no turn has been committed.
var ErrEmptyHistory = errors.New("history: nothing to undo")

// Snapshot is the model as it stood at the end of a turn.
type Snapshot struct {
	Turn  int // 0 for the initial board
	Model model.Model
}

// History is an append-only list of snapshots on top of the initial board.
type History struct {
	base    Snapshot
	entries []Snapshot
}

// New starts a history whose initial state is base.
func New(base model.Model) *History {
	return &History{base: Snapshot{Model: base}}
}

// Commit records m as the result of the next turn.
func (h *History) Commit(m model.Model) Snapshot {
	snap := Snapshot{Turn: len(h.entries) + 1, Model: m}
	h.entries = append(h.entries, snap)
	return snap
}

// Undo drops the most recent turn and returns the snapshot that is current
// again: the previous turn, or the initial board.
func (h *History) Undo() (Snapshot, error) {
	if len(h.entries) == 0 {
		return h.base, ErrEmptyHistory
	}
	h.entries = h.entries[:len(h.entries)-1]
	return h.Current(), nil
}

// Current returns the latest snapshot.
func (h *History) Current() Snapshot {
	if len(h.entries) == 0 {
		return h.base
	}
	return h.entries[len(h.entries)-1]
}

// Depth returns the number of committed turns.
func (h *History) Depth() int {
	return len(h.entries)
}
