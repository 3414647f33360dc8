package report

import (
	"context"
	"fmt"
)

type batteryReport struct {
	Percent           float64 `json:"percent"`
	PluggedIn         bool    `json:"plugged_in"`
	SecsLeft          int     `json:"secsleft"`
	SecsLeftFormatted string  `json:"secsleft_formatted"`
}

// Battery reports charge, mains state and remaining time.
func (r *Reporter) Battery(ctx context.Context) (any, error) {
	bat, err := r.providers.Battery.Battery(ctx)
	if err != nil {
		return nil, err
	}

	return batteryReport{
		Percent:           bat.Percent,
		PluggedIn:         bat.PowerPlugged,
		SecsLeft:          bat.SecsLeft,
		SecsLeftFormatted: FormatSecsLeft(bat.SecsLeft),
	}, nil
}

// FormatSecsLeft renders seconds as H:MM:SS using floor division, so the
// negative sentinels format the same way they always have (-2 is
// "-1:59:58").
func FormatSecsLeft(secs int) string {
	hours := floorDiv(secs, 3600)
	rem := secs - hours*3600

	return fmt.Sprintf("%d:%02d:%02d", hours, rem/60, rem%60)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
