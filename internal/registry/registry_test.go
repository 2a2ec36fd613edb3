package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/threesus/internal/engine"
	"github.com/vovakirdan/threesus/internal/threes"
)

type stubEngine struct{ depth int }

func (s *stubEngine) Name() string { return "stub" }

func (s *stubEngine) Recommend(threes.Board, threes.Deck, threes.Hint) (threes.Direction, bool, error) {
	return threes.DirUp, true, nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-stub", "Stub engine", func(opts Options) (engine.Engine, error) {
		if opts.Logger == nil {
			t.Error("Create() should default the logger")
		}
		return &stubEngine{depth: opts.Depth}, nil
	})

	require.True(t, Exists("test-stub"))

	e, err := Create("test-stub", Options{Depth: 4})
	require.NoError(t, err)
	assert.Equal(t, "stub", e.Name())
	assert.Equal(t, 4, e.(*stubEngine).depth)

	found := false
	for _, info := range List() {
		if info.ID == "test-stub" {
			found = true
			assert.Equal(t, "Stub engine", info.Title)
		}
	}
	assert.True(t, found, "List() should include registered engine")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "Dup", func(Options) (engine.Engine, error) { return &stubEngine{}, nil })
	assert.Panics(t, func() {
		Register("test-dup", "Dup again", func(Options) (engine.Engine, error) { return &stubEngine{}, nil })
	})
}

func TestCreateUnknown(t *testing.T) {
	assert.False(t, Exists("no-such-engine"))
	_, err := Create("no-such-engine", Options{})
	assert.Error(t, err)
}

func TestListSorted(t *testing.T) {
	Register("test-b", "B", func(Options) (engine.Engine, error) { return &stubEngine{}, nil })
	Register("test-a", "A", func(Options) (engine.Engine, error) { return &stubEngine{}, nil })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
