package rabduction

import (
	"fmt"
	"time"
)

// ScoreKeeper counts score intervals survived while the player is alive.
type ScoreKeeper struct {
	score    uint64
	interval Interval
}

// NewScoreKeeper creates a keeper that ticks every period.
func NewScoreKeeper(period time.Duration) ScoreKeeper {
	return ScoreKeeper{interval: NewInterval(period)}
}

// Score returns the current score.
func (k *ScoreKeeper) Score() uint64 {
	return k.score
}

// Advance moves the score schedule forward by dt. For each completed interval
// it increments the score of a living player, or leaves a dead player's score
// frozen, and pushes the formatted text to display. Before the player spawns
// intervals pass silently.
func (k *ScoreKeeper) Advance(dt time.Duration, p Player, display ScoreDisplay) {
	for n := k.interval.Advance(dt); n > 0; n-- {
		if !p.Spawned {
			continue
		}
		if !p.Dead {
			k.score++
		}
		if display != nil {
			display.ShowScore(FormatScore(k.score, p.Dead))
		}
	}
}

// Reset zeroes the score and the schedule.
func (k *ScoreKeeper) Reset() {
	k.score = 0
	k.interval.Reset()
}

// FormatScore renders the score line shown to the player.
func FormatScore(score uint64, final bool) string {
	if final {
		return fmt.Sprintf("Final Score: %d", score)
	}
	return fmt.Sprintf("Score: %d", score)
}
