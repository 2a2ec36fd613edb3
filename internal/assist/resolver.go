package assist

import (
	"errors"

	"github.com/vovakirdan/threesus/internal/threes"
	"github.com/vovakirdan/threesus/internal/token"
)

// Resolver asks the player where the new tile landed when a swipe left more
// than one lane open.
type Resolver struct {
	console  *Console
	renderer *Renderer
}

// NewResolver creates a resolver prompting on con.
func NewResolver(con *Console, r *Renderer) *Resolver {
	return &Resolver{console: con, renderer: r}
}

// Resolve returns the cell the tile was inserted into. A single candidate is
// returned without prompting.
func (r *Resolver) Resolve(cells []threes.Cell) (threes.Cell, error) {
	switch len(cells) {
	case 0:
		return threes.Cell{}, errors.New("assist: no insertion candidates")
	case 1:
		return cells[0], nil
	}

	r.console.Println("Here are the locations where a new card might have been inserted:")
	r.console.Println(r.renderer.RenderCandidates(cells))
	for {
		answer, err := r.console.Prompt("Where was it actually inserted? ")
		if err != nil {
			return threes.Cell{}, err
		}
		if i, ok := token.DecodeLabel(answer, len(cells)); ok {
			return cells[i], nil
		}
		r.console.Printf("Enter a letter from %c to %c.\n", token.Label(0), token.Label(len(cells)-1))
	}
}
