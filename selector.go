package tagcloud

import (
	"sort"
	"strings"
)

// Entry pairs a normalized word with its occurrence count
type Entry struct {
	Word  string
	Count int
}

// Selection holds the top ranked entries together with the count range used
// for font-size interpolation. Max and Min are 0 when the selection is empty.
type Selection struct {
	Entries []Entry
	Max     int
	Min     int
}

// SelectTop picks the n highest-count entries from counts. Ranking is a full
// stable sort by count descending with ties broken by ascending
// case-insensitive word order, then truncation to n, so the result never
// depends on map iteration order. Negative n selects nothing.
func SelectTop(counts map[string]int, n int) Selection {
	if n < 0 {
		n = 0
	}
	entries := make([]Entry, 0, len(counts))
	for word, count := range counts {
		entries = append(entries, Entry{Word: word, Count: count})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return strings.ToLower(entries[i].Word) < strings.ToLower(entries[j].Word)
	})
	if n > len(entries) {
		n = len(entries)
	}
	entries = entries[:n]

	selection := Selection{Entries: entries}
	if len(entries) > 0 {
		selection.Max = entries[0].Count
		selection.Min = entries[len(entries)-1].Count
	}
	return selection
}

// SortAlphabetical re-orders entries in place for display: ascending
// case-insensitive word order, equal words by ascending count to keep the
// ordering consistent.
func SortAlphabetical(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		wi, wj := strings.ToLower(entries[i].Word), strings.ToLower(entries[j].Word)
		if wi != wj {
			return wi < wj
		}
		return entries[i].Count < entries[j].Count
	})
}
