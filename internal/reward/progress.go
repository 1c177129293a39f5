// Package reward implements the completion and streak accounting that
// decides when a non-point reward is achieved. It is pure logic over the
// model types; loading and saving progress rows is the store's job.
package reward

import (
	"fmt"
	"time"

	"github.com/tmackenzie/chorekeeper/internal/model"
)

// DateLayout is the calendar-date form used for streak comparisons.
// Streaks care about day granularity only, never clock time.
const DateLayout = "2006-01-02"

// Matches reports whether a completion with the given chore type counts
// toward the reward. Point rewards never track progress, and a reward
// scoped to a chore type ignores completions of other types.
func Matches(r *model.Reward, choreType string) bool {
	if r.Kind == model.RewardPoints {
		return false
	}
	if r.RequiredChoreType != "" && r.RequiredChoreType != choreType {
		return false
	}
	return true
}

// Apply records one matching completion dated completedDate against the
// progress row and reports whether the reward was newly achieved. A
// completed row is terminal: Apply is a no-op on it.
//
// Streak rules: a gap of exactly one day extends the streak, the same day
// neither extends nor breaks it, and any other gap (or a first-ever
// completion) resets the streak to 1. LastCompletionDate always moves to
// completedDate.
func Apply(r *model.Reward, p *model.RewardProgress, completedDate string, now time.Time) (bool, error) {
	if p.Completed {
		return false, nil
	}

	switch r.Kind {
	case model.RewardCompletions:
		p.CurrentCompletions++
		if p.CurrentCompletions >= r.RequiredCompletions {
			markCompleted(p, now)
			return true, nil
		}
		return false, nil

	case model.RewardStreak:
		day, err := time.Parse(DateLayout, completedDate)
		if err != nil {
			return false, fmt.Errorf("parse completion date %q: %w", completedDate, err)
		}

		if p.LastCompletionDate == "" {
			p.CurrentStreak = 1
		} else {
			last, err := time.Parse(DateLayout, p.LastCompletionDate)
			if err != nil {
				return false, fmt.Errorf("parse last completion date %q: %w", p.LastCompletionDate, err)
			}
			switch daysBetween(last, day) {
			case 1:
				p.CurrentStreak++
			case 0:
				// Second chore on the same day: no change either way.
			default:
				p.CurrentStreak = 1
			}
		}
		p.LastCompletionDate = completedDate

		if p.CurrentStreak >= r.RequiredStreakDays {
			markCompleted(p, now)
			return true, nil
		}
		return false, nil

	default:
		return false, nil
	}
}

func markCompleted(p *model.RewardProgress, now time.Time) {
	p.Completed = true
	t := now
	p.CompletedAt = &t
}

// daysBetween returns the whole calendar days from a to b. Both are
// already day-granular dates, so a plain division is exact.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
