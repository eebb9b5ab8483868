package sellerbook

// WindowMonths is how far the run of periods must reach: up to and
// including now + (WindowMonths - 1) months.
const WindowMonths = 6

// firstRunLookback makes goal history visible immediately after first
// run by opening the window two months in the past.
const firstRunLookback = 2

// EnsureWindow computes the periods that must be created so a contiguous
// monthly sequence exists from the latest persisted period (or, when the
// book has none, from now minus the look-back) through the end of the
// window. It emits new periods with a zero goal, in chronological order,
// and never touches existing ones; re-running with an up-to-date latest
// period emits nothing. Persisting the result is the caller's concern.
func EnsureWindow(latest *Period, now Month) []Period {
	last := now.Plus(-firstRunLookback)
	if latest != nil {
		last = latest.Month
	}
	end := now.Plus(WindowMonths - 1)

	var created []Period
	for last.Before(end) {
		last = last.Plus(1)
		created = append(created, Period{Month: last})
	}
	return created
}
