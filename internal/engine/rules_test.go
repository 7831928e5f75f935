package engine

import (
	"math/rand"
	"testing"
)

func suitPtr(s Suit) *Suit {
	return &s
}

func TestCardValueTrumpTable(t *testing.T) {
	trump := suitPtr(SuitHearts)
	cases := []struct {
		rank Rank
		want int
	}{
		{RankJ, 20},
		{Rank9, 14},
		{RankA, 11},
		{Rank10, 10},
		{RankK, 4},
		{RankQ, 3},
		{Rank8, 0},
		{Rank7, 0},
		{Rank6, 0},
	}
	for _, c := range cases {
		if got := CardValue(Card{Suit: SuitHearts, Rank: c.rank}, trump); got != c.want {
			t.Fatalf("trump %v: got %d, want %d", c.rank, got, c.want)
		}
	}
}

func TestCardValueNonTrumpTable(t *testing.T) {
	trump := suitPtr(SuitHearts)
	cases := []struct {
		rank Rank
		want int
	}{
		{RankA, 11},
		{Rank10, 10},
		{RankK, 4},
		{RankQ, 3},
		{RankJ, 2},
		{Rank9, 0},
		{Rank8, 0},
		{Rank7, 0},
		{Rank6, 0},
	}
	for _, c := range cases {
		if got := CardValue(Card{Suit: SuitSpades, Rank: c.rank}, trump); got != c.want {
			t.Fatalf("non-trump %v: got %d, want %d", c.rank, got, c.want)
		}
	}
}

// The whole deck is worth 152 card points under any trump; with the
// last-trick bonus a round distributes exactly 157.
func TestDeckTotalValue(t *testing.T) {
	for trump := SuitHearts; trump <= SuitSpades; trump++ {
		total := 0
		for s := SuitHearts; s <= SuitSpades; s++ {
			for r := Rank6; r <= RankA; r++ {
				total += CardValue(Card{Suit: s, Rank: r}, suitPtr(trump))
			}
		}
		if total != 152 {
			t.Fatalf("trump %v: deck total %d, want 152", trump, total)
		}
		if total+LastTrickBonus != 157 {
			t.Fatalf("round total %d, want 157", total+LastTrickBonus)
		}
	}
}

func TestTrickPointsScoringExample(t *testing.T) {
	// Spades led, clubs trump: 11 (A) + 20 (trump J) + 14 (trump 9) + 0.
	trump := suitPtr(SuitClubs)
	trick := []PlayedCard{
		{PlayerID: "a", Card: Card{Suit: SuitSpades, Rank: RankA}},
		{PlayerID: "b", Card: Card{Suit: SuitClubs, Rank: RankJ}},
		{PlayerID: "c", Card: Card{Suit: SuitClubs, Rank: Rank9}},
		{PlayerID: "d", Card: Card{Suit: SuitSpades, Rank: Rank6}},
	}
	if got := TrickPoints(trick, trump, false); got != 45 {
		t.Fatalf("trick points: got %d, want 45", got)
	}
	if got := TrickPoints(trick, trump, true); got != 50 {
		t.Fatalf("last trick points: got %d, want 50", got)
	}
}

// Literal regression case: 6S led, hearts trump. The trump Jack beats the
// trump 9 regardless of comparison order.
func TestTrickWinnerBuurBeatsNell(t *testing.T) {
	trump := suitPtr(SuitHearts)
	trick := []PlayedCard{
		{PlayerID: "a", Card: Card{Suit: SuitSpades, Rank: Rank6}},
		{PlayerID: "b", Card: Card{Suit: SuitHearts, Rank: RankJ}},
		{PlayerID: "c", Card: Card{Suit: SuitSpades, Rank: RankA}},
		{PlayerID: "d", Card: Card{Suit: SuitHearts, Rank: Rank9}},
	}
	if got := TrickWinner(trick, trump); got != 1 {
		t.Fatalf("winner: got %d, want 1 (trump Jack)", got)
	}

	// Same cards with the two trumps swapped: the Jack still wins.
	trick[1], trick[3] = trick[3], trick[1]
	if got := TrickWinner(trick, trump); got != 3 {
		t.Fatalf("winner after swap: got %d, want 3 (trump Jack)", got)
	}
}

func TestTrickWinnerLeadSuitByRank(t *testing.T) {
	trump := suitPtr(SuitSpades)
	trick := []PlayedCard{
		{PlayerID: "a", Card: Card{Suit: SuitClubs, Rank: RankK}},
		{PlayerID: "b", Card: Card{Suit: SuitClubs, Rank: Rank10}},
		{PlayerID: "c", Card: Card{Suit: SuitClubs, Rank: RankA}},
		{PlayerID: "d", Card: Card{Suit: SuitClubs, Rank: RankQ}},
	}
	if got := TrickWinner(trick, trump); got != 2 {
		t.Fatalf("winner: got %d, want 2 (ace of lead)", got)
	}
}

// A high card off the lead suit never wins without trumping.
func TestTrickWinnerDiscardNeverWins(t *testing.T) {
	trump := suitPtr(SuitSpades)
	trick := []PlayedCard{
		{PlayerID: "a", Card: Card{Suit: SuitClubs, Rank: Rank6}},
		{PlayerID: "b", Card: Card{Suit: SuitHearts, Rank: RankA}},
		{PlayerID: "c", Card: Card{Suit: SuitDiamonds, Rank: RankA}},
		{PlayerID: "d", Card: Card{Suit: SuitClubs, Rank: Rank7}},
	}
	if got := TrickWinner(trick, trump); got != 3 {
		t.Fatalf("winner: got %d, want 3 (7 of lead)", got)
	}
}

func TestTrickWinnerTrumpBeatsAce(t *testing.T) {
	trump := suitPtr(SuitHearts)
	trick := []PlayedCard{
		{PlayerID: "a", Card: Card{Suit: SuitClubs, Rank: RankA}},
		{PlayerID: "b", Card: Card{Suit: SuitHearts, Rank: Rank6}},
		{PlayerID: "c", Card: Card{Suit: SuitClubs, Rank: RankK}},
		{PlayerID: "d", Card: Card{Suit: SuitClubs, Rank: Rank10}},
	}
	if got := TrickWinner(trick, trump); got != 1 {
		t.Fatalf("winner: got %d, want 1 (lowest trump)", got)
	}
}

func TestTrumpOrdering(t *testing.T) {
	// 6 < 7 < 8 < 10 < Q < K < A < 9 < J within the trump suit.
	order := []Rank{Rank6, Rank7, Rank8, Rank10, RankQ, RankK, RankA, Rank9, RankJ}
	trump := suitPtr(SuitDiamonds)
	for i := 1; i < len(order); i++ {
		lo := Card{Suit: SuitDiamonds, Rank: order[i-1]}
		hi := Card{Suit: SuitDiamonds, Rank: order[i]}
		if !beats(hi, lo, SuitDiamonds, trump) {
			t.Fatalf("expected %v to beat %v as trump", hi, lo)
		}
		if beats(lo, hi, SuitDiamonds, trump) {
			t.Fatalf("expected %v not to beat %v as trump", lo, hi)
		}
	}
}

func TestIsValidMoveLeading(t *testing.T) {
	trump := suitPtr(SuitHearts)
	hand := []Card{
		{Suit: SuitHearts, Rank: Rank6},
		{Suit: SuitSpades, Rank: RankA},
	}
	for _, c := range hand {
		if !IsValidMove(c, hand, nil, trump) {
			t.Fatalf("leading with %v should be legal", c)
		}
	}
}

func TestIsValidMoveForcedTrump(t *testing.T) {
	trump := suitPtr(SuitHearts)
	trick := []PlayedCard{{PlayerID: "a", Card: Card{Suit: SuitHearts, Rank: RankK}}}
	hand := []Card{
		{Suit: SuitHearts, Rank: Rank6},
		{Suit: SuitHearts, Rank: RankJ},
		{Suit: SuitSpades, Rank: RankA},
	}
	if !IsValidMove(hand[0], hand, trick, trump) {
		t.Fatalf("following trump should be legal")
	}
	if !IsValidMove(hand[1], hand, trick, trump) {
		t.Fatalf("following with trump Jack should be legal")
	}
	if IsValidMove(hand[2], hand, trick, trump) {
		t.Fatalf("discarding off-suit while holding trumps should be illegal")
	}
}

func TestIsValidMoveBuurExemption(t *testing.T) {
	trump := suitPtr(SuitHearts)
	trick := []PlayedCard{{PlayerID: "a", Card: Card{Suit: SuitHearts, Rank: RankK}}}
	hand := []Card{
		{Suit: SuitHearts, Rank: RankJ},
		{Suit: SuitSpades, Rank: Rank6},
		{Suit: SuitClubs, Rank: RankA},
	}
	for _, c := range hand {
		if !IsValidMove(c, hand, trick, trump) {
			t.Fatalf("with only the trump Jack, %v should be legal", c)
		}
	}
}

func TestIsValidMoveNoTrumpHeld(t *testing.T) {
	trump := suitPtr(SuitHearts)
	trick := []PlayedCard{{PlayerID: "a", Card: Card{Suit: SuitHearts, Rank: RankK}}}
	hand := []Card{
		{Suit: SuitSpades, Rank: Rank6},
		{Suit: SuitClubs, Rank: RankA},
	}
	for _, c := range hand {
		if !IsValidMove(c, hand, trick, trump) {
			t.Fatalf("void in trump, %v should be legal", c)
		}
	}
}

func TestIsValidMoveStechen(t *testing.T) {
	trump := suitPtr(SuitHearts)
	trick := []PlayedCard{{PlayerID: "a", Card: Card{Suit: SuitClubs, Rank: RankK}}}
	hand := []Card{
		{Suit: SuitClubs, Rank: Rank6},
		{Suit: SuitHearts, Rank: Rank7},
		{Suit: SuitSpades, Rank: RankA},
	}
	if !IsValidMove(hand[0], hand, trick, trump) {
		t.Fatalf("following the lead suit should be legal")
	}
	if !IsValidMove(hand[1], hand, trick, trump) {
		t.Fatalf("cutting with trump should be legal")
	}
	if IsValidMove(hand[2], hand, trick, trump) {
		t.Fatalf("discarding while holding the lead suit should be illegal")
	}
}

func TestIsValidMoveVoidInLead(t *testing.T) {
	trump := suitPtr(SuitHearts)
	trick := []PlayedCard{{PlayerID: "a", Card: Card{Suit: SuitClubs, Rank: RankK}}}
	hand := []Card{
		{Suit: SuitDiamonds, Rank: Rank6},
		{Suit: SuitSpades, Rank: RankA},
	}
	for _, c := range hand {
		if !IsValidMove(c, hand, trick, trump) {
			t.Fatalf("void in lead suit, %v should be legal", c)
		}
	}
}

// Legality totality: whatever the trick and trump, a non-empty hand always
// has at least one legal card.
func TestValidCardsNeverEmpty(t *testing.T) {
	for seed := int64(1); seed <= 500; seed++ {
		rng := rand.New(rand.NewSource(seed))
		deck := NewDeck(rng)

		trickLen := rng.Intn(4)
		trick := make([]PlayedCard, 0, trickLen)
		for i := 0; i < trickLen; i++ {
			trick = append(trick, PlayedCard{PlayerID: "x", Card: deck[i]})
		}
		handLen := 1 + rng.Intn(HandSize)
		hand := deck[trickLen : trickLen+handLen]

		var trump *Suit
		if rng.Intn(5) > 0 {
			trump = suitPtr(Suit(rng.Intn(4)))
		}

		valid := ValidCards(hand, trick, trump)
		if len(valid) == 0 {
			t.Fatalf("seed %d: no valid cards for hand %v, trick %v, trump %v", seed, hand, trick, trump)
		}
		for _, c := range valid {
			if !IsValidMove(c, hand, trick, trump) {
				t.Fatalf("seed %d: ValidCards returned illegal %v", seed, c)
			}
		}
	}
}
