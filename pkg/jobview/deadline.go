// Package jobview holds the pure display-state functions shared by every
// listing and detail view: deadline bucketing, salary display, relative
// timestamps and share/compose link construction. Each is a pure function of
// its inputs so the views cannot drift apart on boundary behavior.
package jobview

import (
	"fmt"
	"math"
	"time"
)

// DeadlineBucket classifies an application deadline relative to now.
type DeadlineBucket string

const (
	DeadlineExpired  DeadlineBucket = "expired"
	DeadlineToday    DeadlineBucket = "today"
	DeadlineDaysLeft DeadlineBucket = "days_left"
	DeadlineAbsolute DeadlineBucket = "absolute"
)

// Urgency tiers for the days-left bucket.
const (
	UrgencyUrgent = "urgent" // 3 days or fewer
	UrgencySoon   = "soon"   // 7 days or fewer
	UrgencyNormal = "normal" // 30 days or fewer
)

// DeadlineInfo is the rendered classification of a deadline.
type DeadlineInfo struct {
	Bucket   DeadlineBucket
	DaysLeft int
	Urgency  string
	Label    string
}

// ClassifyDeadline buckets a deadline against a reference time.
//
// Expired iff deadline < now. Today iff the deadline falls on the same
// calendar day as now and has not passed. Otherwise the remaining time is
// counted in whole days (exactly 24h remaining is 1 day left): up to 3 days
// is urgent, up to 7 soon, up to 30 normal, and anything further renders as
// an absolute date.
func ClassifyDeadline(deadline, now time.Time) DeadlineInfo {
	if deadline.Before(now) {
		return DeadlineInfo{Bucket: DeadlineExpired, Label: "Expired"}
	}

	dy, dm, dd := deadline.Date()
	ny, nm, nd := now.Date()
	if dy == ny && dm == nm && dd == nd {
		return DeadlineInfo{Bucket: DeadlineToday, Label: "Today"}
	}

	days := int(math.Ceil(deadline.Sub(now).Hours() / 24))
	if days > 30 {
		return DeadlineInfo{
			Bucket: DeadlineAbsolute,
			Label:  deadline.Format("Jan 2, 2006"),
		}
	}

	info := DeadlineInfo{Bucket: DeadlineDaysLeft, DaysLeft: days}
	switch {
	case days <= 3:
		info.Urgency = UrgencyUrgent
	case days <= 7:
		info.Urgency = UrgencySoon
	default:
		info.Urgency = UrgencyNormal
	}

	if days == 1 {
		info.Label = "1 day left"
	} else {
		info.Label = fmt.Sprintf("%d days left", days)
	}
	return info
}
