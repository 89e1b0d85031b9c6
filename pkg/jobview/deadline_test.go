package jobview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDeadline(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		bucket   DeadlineBucket
		daysLeft int
		urgency  string
		label    string
	}{
		{
			name:     "one second past is expired",
			deadline: now.Add(-time.Second),
			bucket:   DeadlineExpired,
			label:    "Expired",
		},
		{
			name:     "same instant is today",
			deadline: now,
			bucket:   DeadlineToday,
			label:    "Today",
		},
		{
			name:     "later the same day is today",
			deadline: time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC),
			bucket:   DeadlineToday,
			label:    "Today",
		},
		{
			name:     "exactly 24h is one day left",
			deadline: now.Add(24 * time.Hour),
			bucket:   DeadlineDaysLeft,
			daysLeft: 1,
			urgency:  UrgencyUrgent,
			label:    "1 day left",
		},
		{
			name:     "tomorrow morning is one day left",
			deadline: time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC),
			bucket:   DeadlineDaysLeft,
			daysLeft: 1,
			urgency:  UrgencyUrgent,
			label:    "1 day left",
		},
		{
			name:     "three days is urgent",
			deadline: now.Add(72 * time.Hour),
			bucket:   DeadlineDaysLeft,
			daysLeft: 3,
			urgency:  UrgencyUrgent,
			label:    "3 days left",
		},
		{
			name:     "four days is soon",
			deadline: now.Add(96 * time.Hour),
			bucket:   DeadlineDaysLeft,
			daysLeft: 4,
			urgency:  UrgencySoon,
			label:    "4 days left",
		},
		{
			name:     "seven days is soon",
			deadline: now.Add(7 * 24 * time.Hour),
			bucket:   DeadlineDaysLeft,
			daysLeft: 7,
			urgency:  UrgencySoon,
			label:    "7 days left",
		},
		{
			name:     "eight days is normal",
			deadline: now.Add(8 * 24 * time.Hour),
			bucket:   DeadlineDaysLeft,
			daysLeft: 8,
			urgency:  UrgencyNormal,
			label:    "8 days left",
		},
		{
			name:     "thirty days is normal",
			deadline: now.Add(30 * 24 * time.Hour),
			bucket:   DeadlineDaysLeft,
			daysLeft: 30,
			urgency:  UrgencyNormal,
			label:    "30 days left",
		},
		{
			name:     "beyond thirty days renders the date",
			deadline: now.Add(31 * 24 * time.Hour),
			bucket:   DeadlineAbsolute,
			label:    "Apr 10, 2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ClassifyDeadline(tt.deadline, now)
			assert.Equal(t, tt.bucket, info.Bucket)
			assert.Equal(t, tt.daysLeft, info.DaysLeft)
			assert.Equal(t, tt.urgency, info.Urgency)
			assert.Equal(t, tt.label, info.Label)
		})
	}
}
