package threes

import (
	"errors"
	"fmt"
	"math/rand"
)

// CardsPerRank is how many 1s, 2s and 3s a fresh deck holds.
const CardsPerRank = 4

var (
	// ErrRankExhausted is returned when removing a basic rank the deck no
	// longer holds.
	ErrRankExhausted = errors.New("threes: no cards of that rank left in deck")

	// ErrRankFull is returned when returning a card to a rank that already
	// holds a full set.
	ErrRankFull = errors.New("threes: rank already holds a full set")
)

// Deck counts the undealt basic cards. Bonus tiles are not dealt from the
// deck, so the deck ignores them. Counts never go negative.
type Deck struct {
	counts [3]int
}

// NewDeck returns a full deck.
func NewDeck() Deck {
	var d Deck
	d.Refill()
	return d
}

// DeckOf builds a deck with explicit counts for ranks 1, 2 and 3.
func DeckOf(ones, twos, threes int) (Deck, error) {
	var d Deck
	for i, n := range [3]int{ones, twos, threes} {
		if n < 0 || n > CardsPerRank {
			return d, fmt.Errorf("threes: count %d for rank %d out of range", n, i+1)
		}
		d.counts[i] = n
	}
	if d.Total() == 0 {
		d.Refill()
	}
	return d, nil
}

// Refill resets the deck to a full set.
func (d *Deck) Refill() {
	for i := range d.counts {
		d.counts[i] = CardsPerRank
	}
}

// Count returns the remaining cards of rank r (zero for non-basic ranks).
func (d Deck) Count(r Rank) int {
	if !r.IsBasic() {
		return 0
	}
	return d.counts[r-1]
}

// Total returns the number of cards left.
func (d Deck) Total() int {
	return d.counts[0] + d.counts[1] + d.counts[2]
}

// Has reports whether the next card could be r. Bonus ranks are always
// possible as far as the deck is concerned.
func (d Deck) Has(r Rank) bool {
	return !r.IsBasic() || d.Count(r) > 0
}

// Remove takes one card of rank r out of the deck. Removing the last card
// refills the deck, as the game reshuffles a new set. Bonus ranks are a no-op.
func (d *Deck) Remove(r Rank) error {
	if !r.IsBasic() {
		return nil
	}
	if d.counts[r-1] == 0 {
		return fmt.Errorf("%w: rank %d", ErrRankExhausted, r)
	}
	d.counts[r-1]--
	if d.Total() == 0 {
		d.Refill()
	}
	return nil
}

// Add puts one card of rank r back. Bonus ranks are a no-op.
func (d *Deck) Add(r Rank) error {
	if !r.IsBasic() {
		return nil
	}
	if d.counts[r-1] >= CardsPerRank {
		return fmt.Errorf("%w: rank %d", ErrRankFull, r)
	}
	d.counts[r-1]++
	return nil
}

// Probabilities returns the chance of each basic rank being dealt next.
func (d Deck) Probabilities() map[Rank]float64 {
	total := float64(d.Total())
	out := make(map[Rank]float64, 3)
	for i, n := range d.counts {
		if n > 0 {
			out[Rank(i+1)] = float64(n) / total
		}
	}
	return out
}

// Pick chooses the next card weighted by the remaining counts without
// removing it.
func (d Deck) Pick(rng *rand.Rand) Rank {
	n := rng.Intn(d.Total())
	for i, c := range d.counts {
		if n < c {
			return Rank(i + 1)
		}
		n -= c
	}
	return 3
}

func (d Deck) String() string {
	return fmt.Sprintf("%d,%d,%d", d.counts[0], d.counts[1], d.counts[2])
}
