package schedule

import "fmt"

// Result is the outcome of validating a proposed set of windows. A conflict
// is expected business-rule feedback, not an error: callers abort the
// surrounding write when OK is false and show Reason to the user.
type Result struct {
	OK     bool
	Reason string
}

func reject(format string, args ...any) Result {
	return Result{Reason: fmt.Sprintf(format, args...)}
}

// Validate checks a proposed batch of weekly windows against itself and
// against the caregiver's existing active commitments.
//
// Structural problems are reported first, short-circuiting on the first
// violation: day ordinal in 0-6, strict zero-padded HH:MM times, end
// strictly after start. Then every unordered pair of proposed windows
// sharing a day is tested for overlap, then every proposed window against
// every existing window. The first collision wins.
//
// Existing commitments are whatever the caller loaded for this caregiver;
// no data access happens here.
func Validate(proposed []Window, existing []CommitmentSet) Result {
	intervals := make([]interval, len(proposed))
	for i, w := range proposed {
		iv, res := checkWindow(w, fmt.Sprintf("window %d", i+1))
		if !res.OK {
			return res
		}
		intervals[i] = iv
	}

	for i := range intervals {
		for j := i + 1; j < len(intervals); j++ {
			if intervals[i].overlaps(intervals[j]) {
				return reject("windows on day %d (%s) overlap: %s-%s and %s-%s",
					proposed[i].Day, DayName(proposed[i].Day),
					proposed[i].Start, proposed[i].End,
					proposed[j].Start, proposed[j].End)
			}
		}
	}

	for _, set := range existing {
		for _, w := range set.Windows {
			iv, res := checkWindow(w, "existing commitment window")
			if !res.OK {
				return res
			}
			for i := range intervals {
				if intervals[i].overlaps(iv) {
					return reject("window on day %d (%s) conflicts with an existing commitment from %s to %s",
						w.Day, DayName(w.Day), w.Start, w.End)
				}
			}
		}
	}

	return Result{OK: true}
}

// checkWindow validates one window's structure and reduces it to a minute
// interval. label qualifies the rejection reason.
func checkWindow(w Window, label string) (interval, Result) {
	if w.Day < Monday || w.Day > Sunday {
		return interval{}, reject("%s: day of week must be between 0 and 6, got %d", label, w.Day)
	}
	if !timeOfDay.MatchString(w.Start) {
		return interval{}, reject("%s: start time must match HH:MM, got %q", label, w.Start)
	}
	if !timeOfDay.MatchString(w.End) {
		return interval{}, reject("%s: end time must match HH:MM, got %q", label, w.End)
	}

	start := minutesOfDay(w.Start)
	end := minutesOfDay(w.End)
	if end <= start {
		return interval{}, reject("%s: end time %s must be after start time %s", label, w.End, w.Start)
	}

	return interval{day: w.Day, start: start, end: end}, Result{OK: true}
}
