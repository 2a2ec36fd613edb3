package history

import (
	"errors"
	"testing"

	"github.com/vovakirdan/threesus/internal/model"
	"github.com/vovakirdan/threesus/internal/threes"
)

func play(t *testing.T, m model.Model, dir threes.Direction, r threes.Rank) model.Model {
	t.Helper()
	cells := m.Shift(dir)
	if len(cells) == 0 {
		t.Fatalf("Shift(%s) was illegal", dir)
	}
	if err := m.Place(cells[0], r); err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	return m
}

func TestUndoRestoresPreviousState(t *testing.T) {
	base := model.New()
	_ = base.Place(threes.Cell{X: 0, Y: 0}, 1)

	h := New(base)
	first := play(t, base, threes.DirRight, 2)
	h.Commit(first)
	second := play(t, first, threes.DirDown, 3)
	h.Commit(second)

	if h.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", h.Depth())
	}

	snap, err := h.Undo()
	if err != nil {
		t.Fatalf("Undo() failed: %v", err)
	}
	if snap.Model != first || snap.Turn != 1 {
		t.Errorf("Undo should return turn 1 state, got turn %d", snap.Turn)
	}
	if h.Depth() != 1 {
		t.Errorf("Depth after undo = %d, want 1", h.Depth())
	}

	snap, err = h.Undo()
	if err != nil {
		t.Fatalf("Undo() failed: %v", err)
	}
	if snap.Model != base || snap.Turn != 0 {
		t.Error("Undoing the first turn should restore the initial board")
	}
}

func TestUndoEmpty(t *testing.T) {
	base := model.New()
	h := New(base)

	snap, err := h.Undo()
	if !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("Undo on empty history = %v, want ErrEmptyHistory", err)
	}
	if snap.Model != base {
		t.Error("Failed undo should report the unchanged current state")
	}
	if h.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", h.Depth())
	}
}

func TestCommitStoresCopy(t *testing.T) {
	m := model.New()
	h := New(m)

	h.Commit(m)
	_ = m.Place(threes.Cell{X: 2, Y: 2}, 3)

	if h.Current().Model.Board()[2][2] != threes.Empty {
		t.Error("Mutating the model after commit should not change the snapshot")
	}
}
