// Package bots provides the computer players. Bots only ever consume the
// engine's legality filter; they never see more state than a human client
// would.
package bots

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/mersetter/jass-game-app/internal/engine"
)

// Bot picks a hand index for the seat whose turn it is.
type Bot interface {
	ChooseCard(g engine.GameState, seat int) int
}

// Random plays a uniformly random legal card. No lookahead.
type Random struct {
	RNG *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{RNG: rand.New(rand.NewSource(seed))}
}

func (b *Random) ChooseCard(g engine.GameState, seat int) int {
	hand := g.Players[seat].Hand
	valid := engine.ValidCards(hand, g.Trick, g.Trump)
	if len(valid) == 0 {
		// The legality predicate guarantees a non-empty result for a
		// non-empty hand; reaching this branch means an engine invariant
		// broke. Log it loudly and fall back rather than crash the room.
		logrus.WithFields(logrus.Fields{
			"room": g.RoomID,
			"seat": seat,
		}).Error("bot has no legal card")
		return 0
	}
	pick := valid[b.RNG.Intn(len(valid))]
	for i, c := range hand {
		if c == pick {
			return i
		}
	}
	return 0
}
