// Package sim drives full games with random legal moves, checking the
// engine and controller invariants after every transition. It backs the
// many-seed self-play tests.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/mersetter/jass-game-app/internal/engine"
	"github.com/mersetter/jass-game-app/internal/game"
)

// RoundTotal is the fixed number of points a round distributes: 152 card
// points plus the last-trick bonus.
const RoundTotal = 157

// RunSelfPlay seats four players, then plays up to maxRounds rounds
// choosing uniformly random legal cards. Any invariant violation comes
// back as an error with enough context to reproduce (the seed drives
// everything).
func RunSelfPlay(seed int64, maxRounds int) error {
	rng := rand.New(rand.NewSource(seed))

	g := game.New("SIM", "p0")
	for i := 0; i < engine.NumPlayers; i++ {
		id := fmt.Sprintf("p%d", i)
		if err := game.AddPlayer(g, id, id); err != nil {
			return fmt.Errorf("seed=%d: add player %d: %w", seed, i, err)
		}
	}
	if err := game.Start(g, "p0", rng); err != nil {
		return fmt.Errorf("seed=%d: start: %w", seed, err)
	}

	for round := 0; round < maxRounds; round++ {
		tricks := 0
		for g.Status == engine.StatusPlaying {
			seat := g.CurrentTurn
			if seat < 0 || seat >= engine.NumPlayers {
				return fmt.Errorf("seed=%d round=%d: bad turn index %d", seed, round, seat)
			}
			hand := g.Players[seat].Hand
			if len(hand) == 0 {
				return fmt.Errorf("seed=%d round=%d: seat %d on turn with empty hand", seed, round, seat)
			}
			valid := engine.ValidCards(hand, g.Trick, g.Trump)
			if len(valid) == 0 {
				return fmt.Errorf("seed=%d round=%d: seat %d has no legal card", seed, round, seat)
			}
			pick := valid[rng.Intn(len(valid))]
			idx := indexOf(hand, pick)

			res, err := game.Play(g, g.Players[seat].ID, idx)
			if err != nil {
				return fmt.Errorf("seed=%d round=%d: play %v by seat %d: %w", seed, round, pick, seat, err)
			}
			if err := checkInvariants(g); err != nil {
				return fmt.Errorf("seed=%d round=%d trick=%d: %w", seed, round, tricks, err)
			}
			if res.TrickComplete {
				tricks++
			} else if g.CurrentTurn != (seat+1)%engine.NumPlayers {
				return fmt.Errorf("seed=%d round=%d: turn did not advance from %d", seed, round, seat)
			}
		}

		if tricks != engine.HandSize {
			return fmt.Errorf("seed=%d round=%d: round ended after %d tricks", seed, round, tricks)
		}
		if got := g.RoundScores.Team1 + g.RoundScores.Team2; got != RoundTotal {
			return fmt.Errorf("seed=%d round=%d: round distributed %d points", seed, round, got)
		}
		if g.Status == engine.StatusGameOver {
			if engine.WinningTeam(g.Scores) == 0 {
				return fmt.Errorf("seed=%d round=%d: game over without a winner", seed, round)
			}
			return nil
		}
		if g.Status != engine.StatusRoundEnd {
			return fmt.Errorf("seed=%d round=%d: unexpected status %v", seed, round, g.Status)
		}
		if err := game.NextRound(g, rng); err != nil {
			return fmt.Errorf("seed=%d round=%d: next round: %w", seed, round, err)
		}
	}
	return nil
}

func checkInvariants(g *engine.GameState) error {
	seen := map[engine.Card]bool{}
	total := 0
	add := func(c engine.Card) error {
		if seen[c] {
			return fmt.Errorf("duplicate card %v", c)
		}
		seen[c] = true
		total++
		return nil
	}
	for _, p := range g.Players {
		for _, c := range p.Hand {
			if err := add(c); err != nil {
				return err
			}
		}
	}
	for _, pc := range g.Trick {
		if err := add(pc.Card); err != nil {
			return err
		}
	}
	// Cards leave hands one-for-one into the trick, so the live count
	// stays divisible by four.
	if total%engine.NumPlayers != 0 {
		return fmt.Errorf("live card count %d not a multiple of %d", total, engine.NumPlayers)
	}
	if len(g.Trick) >= engine.NumPlayers {
		return fmt.Errorf("unresolved full trick of %d cards", len(g.Trick))
	}
	if g.Scores.Team1 < g.RoundScores.Team1 || g.Scores.Team2 < g.RoundScores.Team2 {
		return fmt.Errorf("cumulative score fell below round score")
	}
	return nil
}

func indexOf(hand []engine.Card, c engine.Card) int {
	for i, h := range hand {
		if h == c {
			return i
		}
	}
	return -1
}
