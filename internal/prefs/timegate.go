package prefs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"sky-herald.io/herald/internal/domain"
	"sky-herald.io/herald/internal/pkg/logger"
)

// ShiftLookup reports whether a user is on an active shift at a given
// instant. Backed by the shifts table in production; faked in tests.
type ShiftLookup interface {
	OnShiftNow(ctx context.Context, userID int, now time.Time) (bool, error)
}

// FiresNow applies the time-of-day and on-shift gating for the
// real-time channels (sms, phone, whatsapp). A channel fires when the
// user is on shift (if on_shift is set) or when the current UTC hour
// falls inside a configured time slot. Absence of both constraints
// means the channel never fires; for these channels an unconstrained
// configuration is read as "do not disturb", not "always send".
func FiresNow(ctx context.Context, p *UserPreferences, resourceType domain.ResourceType, channel domain.Channel, userID int, now time.Time, shifts ShiftLookup) bool {
	cp := p.Resource(resourceType).Channel(channel)

	if cp.OnShift && shifts != nil {
		onShift, err := shifts.OnShiftNow(ctx, userID, now)
		if err != nil {
			logger.Error("Shift lookup failed",
				zap.Int("user_id", userID),
				zap.String("channel", string(channel)),
				zap.Error(err),
			)
		} else if onShift {
			return true
		}
	}

	if cp.HasTimeSlot() {
		h0, h1 := cp.TimeSlot[0], cp.TimeSlot[1]
		hour := now.UTC().Hour()
		if h0 <= h1 {
			// Plain window, inclusive on both ends.
			return hour >= h0 && hour <= h1
		}
		// Window wraps past midnight, e.g. [22, 6].
		return hour >= h0 || hour <= h1
	}

	return false
}
