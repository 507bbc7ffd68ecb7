package impl

import (
	"time"

	"tally/internal/domain/entity"
)

// dailyCapWindow is the rolling window the per-day cap counts over. A rolling
// window treats members the same regardless of time zone, unlike a local
// midnight reset.
const dailyCapWindow = 24 * time.Hour

// earnEligibility is the rate limiter's verdict for one prospective earn.
type earnEligibility struct {
	allowed        bool
	nextEligibleAt time.Time
}

// checkEarnEligibility applies the program's rate limits to a prospective
// earn. It is a pure function over state the caller reads inside the earn
// transaction, so its inputs cannot race the balance increment.
//
// The minimum-gap rule is evaluated before the daily cap. When both rules
// reject, nextEligibleAt is the later of the two so the member is not told a
// time at which the other rule would still block them.
func checkEarnEligibility(program *entity.LoyaltyProgram, lastEarnAt *time.Time, windowCount int64, oldestInWindow *entity.EarnEvent, now time.Time) earnEligibility {
	var next time.Time

	if gap := program.MinGap(); gap > 0 && lastEarnAt != nil {
		if elapsed := now.Sub(*lastEarnAt); elapsed < gap {
			next = lastEarnAt.Add(gap)
		}
	}

	if program.MaxEarnsPerDay > 0 && windowCount >= int64(program.MaxEarnsPerDay) && oldestInWindow != nil {
		if capNext := oldestInWindow.OccurredAt.Add(dailyCapWindow); capNext.After(next) {
			next = capNext
		}
	}

	if next.IsZero() {
		return earnEligibility{allowed: true}
	}

	return earnEligibility{allowed: false, nextEligibleAt: next}
}
