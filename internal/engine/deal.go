package engine

import (
	"math/rand"
	"sort"
)

// NewDeck returns the full 36-card deck in a fresh Fisher-Yates shuffled
// order drawn from rng. Callers inject the random source so tests can fix
// the seed and assert exact deals.
func NewDeck(rng *rand.Rand) []Card {
	deck := make([]Card, 0, DeckSize)
	for s := SuitHearts; s <= SuitSpades; s++ {
		for r := Rank6; r <= RankA; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// DealCards consumes one fresh deck and gives each player nine cards,
// sorted for display. The deal must exhaust the deck exactly.
func DealCards(players []Player, rng *rand.Rand) {
	deck := NewDeck(rng)
	if len(players)*HandSize != len(deck) {
		panic("invalid deal configuration: does not exhaust deck")
	}
	for i := range players {
		hand := append([]Card(nil), deck[i*HandSize:(i+1)*HandSize]...)
		SortHand(hand)
		players[i].Hand = hand
	}
}

// SortHand orders a hand for display: hearts, diamonds, clubs, spades,
// then ascending rank within each suit. The order is cosmetic only and
// never influences legality or winner computation.
func SortHand(hand []Card) {
	sort.Slice(hand, func(i, j int) bool {
		if hand[i].Suit != hand[j].Suit {
			return hand[i].Suit < hand[j].Suit
		}
		return hand[i].Rank < hand[j].Rank
	})
}
