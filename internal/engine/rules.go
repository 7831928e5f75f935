package engine

// rankOrder is the plain comparison order 6 < 7 < 8 < 9 < 10 < J < Q < K < A.
func rankOrder(r Rank) int {
	return int(r)
}

// trumpOrder reorders the trump suit: the Jack ("Buur") and the 9 ("Nell")
// are the two highest trumps, 6 < 7 < 8 < 10 < Q < K < A < 9 < J.
func trumpOrder(r Rank) int {
	switch r {
	case RankJ:
		return 8
	case Rank9:
		return 7
	case RankA:
		return 6
	case RankK:
		return 5
	case RankQ:
		return 4
	case Rank10:
		return 3
	case Rank8:
		return 2
	case Rank7:
		return 1
	default:
		return 0
	}
}

// CardValue returns the point value of a card under the given trump.
// Trump cards: J=20, 9=14, A=11, 10=10, K=4, Q=3. All other suits:
// A=11, 10=10, K=4, Q=3, J=2. Remaining ranks score zero.
func CardValue(c Card, trump *Suit) int {
	if trump != nil && c.Suit == *trump {
		switch c.Rank {
		case RankJ:
			return 20
		case Rank9:
			return 14
		case RankA:
			return 11
		case Rank10:
			return 10
		case RankK:
			return 4
		case RankQ:
			return 3
		default:
			return 0
		}
	}
	switch c.Rank {
	case RankA:
		return 11
	case Rank10:
		return 10
	case RankK:
		return 4
	case RankQ:
		return 3
	case RankJ:
		return 2
	default:
		return 0
	}
}

// TrickPoints sums the card points of a trick, plus the flat bonus for the
// last trick of a round.
func TrickPoints(trick []PlayedCard, trump *Suit, lastTrick bool) int {
	points := 0
	for _, p := range trick {
		points += CardValue(p.Card, trump)
	}
	if lastTrick {
		points += LastTrickBonus
	}
	return points
}

// beats reports whether a takes the trick from b given the lead suit and
// trump. A trump beats any non-trump; two trumps compare by trump order;
// of the non-trumps only lead-suit cards can win, by plain rank order.
func beats(a, b Card, lead Suit, trump *Suit) bool {
	aTrump := trump != nil && a.Suit == *trump
	bTrump := trump != nil && b.Suit == *trump
	if aTrump != bTrump {
		return aTrump
	}
	if aTrump {
		return trumpOrder(a.Rank) > trumpOrder(b.Rank)
	}
	aLead := a.Suit == lead
	bLead := b.Suit == lead
	if aLead != bLead {
		return aLead
	}
	if !aLead {
		return false
	}
	return rankOrder(a.Rank) > rankOrder(b.Rank)
}

// TrickWinner returns the index within the trick of the winning card,
// comparing each card against the running best in a single scan. Ties are
// impossible because a deck holds no duplicate cards.
func TrickWinner(trick []PlayedCard, trump *Suit) int {
	if len(trick) == 0 {
		return -1
	}
	lead := trick[0].Card.Suit
	best := 0
	for i := 1; i < len(trick); i++ {
		if beats(trick[i].Card, trick[best].Card, lead, trump) {
			best = i
		}
	}
	return best
}

// IsValidMove decides whether card may be played from hand onto the
// current trick. Leading is unrestricted. When trump was led the player
// must follow with trump, unless the only trump held is the Jack (the
// "Buur" is never forced out) or the hand holds no trump at all. When a
// plain suit was led a player holding that suit may follow it or cut with
// trump; a player void in the lead suit may play anything.
//
// Under-trumping ("Untertrumpfen") is deliberately not restricted: any
// trump cut is legal regardless of trumps already in the trick.
func IsValidMove(card Card, hand []Card, trick []PlayedCard, trump *Suit) bool {
	if len(trick) == 0 {
		return true
	}
	lead := trick[0].Card.Suit

	if trump != nil && lead == *trump {
		trumps := filterBySuit(hand, *trump)
		if len(trumps) == 0 {
			return true
		}
		if len(trumps) == 1 && trumps[0].Rank == RankJ {
			return true
		}
		return card.Suit == *trump
	}

	if hasSuit(hand, lead) {
		if card.Suit == lead {
			return true
		}
		return trump != nil && card.Suit == *trump
	}
	return true
}

// ValidCards filters a hand down to the legal plays. For any non-empty
// hand the result is non-empty: every branch of IsValidMove admits at
// least one card the player actually holds.
func ValidCards(hand []Card, trick []PlayedCard, trump *Suit) []Card {
	out := make([]Card, 0, len(hand))
	for _, c := range hand {
		if IsValidMove(c, hand, trick, trump) {
			out = append(out, c)
		}
	}
	return out
}

func hasSuit(cards []Card, suit Suit) bool {
	for _, c := range cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

func filterBySuit(cards []Card, suit Suit) []Card {
	out := []Card{}
	for _, c := range cards {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}
