package inventory

import "sort"

// CalendarEntry is the resolved per-day view of a unit's calendar. It is
// constructed fresh on every resolution and never persisted.
type CalendarEntry struct {
	Day            Day
	Price          int64
	Available      bool
	Source         EntrySource
	TotalCapacity  *int32
	AvailableCount *int32
	RemainingCount *int32
}

// ResolveCalendar merges ranges, overrides and blocks into one per-day
// calendar. Precedence, lowest to highest:
//
//  1. active ranges seed each covered day with the base price
//  2. overrides replace price and attach capacity, synthesizing an entry
//     when no range covers the day
//  3. capacity consumption (total > available) forces the day booked
//  4. blocks win unconditionally
//
// The passes run as an explicit ordered pipeline so precedence stays
// auditable pass by pass. Output is sorted by day ascending with exactly
// one entry per contributing day.
func ResolveCalendar(ranges []DateRange, overrides []DailyOverride, blocks []BlockedDate) []CalendarEntry {
	cal := make(map[string]*CalendarEntry)

	seedRanges(cal, ranges)
	applyOverrides(cal, overrides)
	deriveBookedState(cal)
	applyBlocks(cal, blocks)

	return sortedEntries(cal)
}

func seedRanges(cal map[string]*CalendarEntry, ranges []DateRange) {
	for _, r := range ranges {
		if !r.Active {
			continue
		}
		// Overlapping active ranges are a data-integrity violation kept out
		// by the store's exclusion constraint; if one slips through, the
		// last range in store order wins.
		for _, day := range r.Span.Days() {
			cal[day.String()] = &CalendarEntry{
				Day:       day,
				Price:     r.BasePricePerDay,
				Available: true,
				Source:    SourceRange,
			}
		}
	}
}

func applyOverrides(cal map[string]*CalendarEntry, overrides []DailyOverride) {
	for _, o := range overrides {
		entry, ok := cal[o.Day.String()]
		if !ok {
			// Override with no covering range: synthesize a bare entry.
			entry = &CalendarEntry{Day: o.Day, Available: true}
			cal[o.Day.String()] = entry
		}
		if o.Price != nil {
			entry.Price = *o.Price
		}
		entry.TotalCapacity = o.TotalCapacity
		entry.AvailableCount = o.AvailableCount
		entry.RemainingCount = o.AvailableCount
		entry.Source = SourceOverride
	}
}

// deriveBookedState is the only place capacity becomes an availability
// signal; capacity fields do not exist without an override row.
func deriveBookedState(cal map[string]*CalendarEntry) {
	for _, entry := range cal {
		if entry.TotalCapacity == nil || entry.AvailableCount == nil {
			continue
		}
		if *entry.TotalCapacity > *entry.AvailableCount {
			entry.Available = false
			entry.Source = SourceBooked
		}
	}
}

// applyBlocks runs last; no other source can override a block.
func applyBlocks(cal map[string]*CalendarEntry, blocks []BlockedDate) {
	for _, b := range blocks {
		entry, ok := cal[b.Day.String()]
		if !ok {
			entry = &CalendarEntry{Day: b.Day, Price: 0}
			cal[b.Day.String()] = entry
		}
		entry.Available = false
		entry.Source = SourceBlocked
	}
}

func sortedEntries(cal map[string]*CalendarEntry) []CalendarEntry {
	keys := make([]string, 0, len(cal))
	for k := range cal {
		keys = append(keys, k)
	}
	// YYYY-MM-DD sorts lexicographically in date order.
	sort.Strings(keys)

	entries := make([]CalendarEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, *cal[k])
	}
	return entries
}
