package layout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/weekgrid/internal/domain"
)

// Column caps by call site. Planned-only strips get a tighter cap; the
// main grid merges planned and logged items into one cluster pool so the
// two collections can never visually collide.
const (
	MaxColumnsPlanned  = 2
	MaxColumnsCombined = 3
)

// tooltipTitleMax bounds each suppressed title inside the overflow tooltip.
const tooltipTitleMax = 24

// Slot places one calendar item inside its overlap cluster.
// ColumnsInGroup is identical for every slot of a cluster, which ties
// rendered widths together.
type Slot struct {
	Item           domain.CalendarItem
	Column         int
	ColumnsInGroup int
}

// Layout partitions a day's items into overlap clusters and assigns each
// a column so overlapping items never share a lane:
//  1. Items with non-positive duration are dropped.
//  2. Items are stable-sorted by start ascending; logged sleep sorts first.
//  3. A sweep groups items into clusters: an item joins the current
//     cluster while its start is before the cluster's running max end.
//  4. Within a cluster, greedy interval coloring picks the lowest column
//     whose last end is ≤ the item's start.
//  5. Columns at or beyond maxColumns are collapsed into a single
//     overflow placeholder in the last visible lane.
func Layout(items []domain.CalendarItem, maxColumns int) []Slot {
	if maxColumns < 1 || len(items) == 0 {
		return nil
	}

	sorted := make([]domain.CalendarItem, 0, len(items))
	for _, it := range items {
		if it.Interval.IsValid() {
			sorted = append(sorted, it)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Interval.Start.Equal(b.Interval.Start) {
			return a.Interval.Start.Before(b.Interval.Start)
		}
		return a.SortPriority() < b.SortPriority()
	})

	var out []Slot
	for _, cluster := range sweepClusters(sorted) {
		out = append(out, layoutCluster(cluster, maxColumns)...)
	}
	return out
}

// sweepClusters splits sorted items into maximal runs of mutually
// transitively overlapping items.
func sweepClusters(sorted []domain.CalendarItem) [][]domain.CalendarItem {
	var clusters [][]domain.CalendarItem
	var current []domain.CalendarItem
	var maxEnd int64

	for _, it := range sorted {
		if len(current) > 0 && it.Interval.Start.UnixNano() < maxEnd {
			current = append(current, it)
		} else {
			if len(current) > 0 {
				clusters = append(clusters, current)
			}
			current = []domain.CalendarItem{it}
			maxEnd = 0
		}
		if e := it.Interval.End.UnixNano(); e > maxEnd {
			maxEnd = e
		}
	}
	if len(current) > 0 {
		clusters = append(clusters, current)
	}
	return clusters
}

// layoutCluster assigns columns within one cluster and collapses the
// overflow, if any, into a placeholder slot.
func layoutCluster(cluster []domain.CalendarItem, maxColumns int) []Slot {
	var columnEnds []int64 // last occupied end per column, nanoseconds

	assigned := make([]int, len(cluster))
	for i, it := range cluster {
		col := -1
		for c, end := range columnEnds {
			if end <= it.Interval.Start.UnixNano() {
				col = c
				break
			}
		}
		if col == -1 {
			col = len(columnEnds)
			columnEnds = append(columnEnds, 0)
		}
		columnEnds[col] = it.Interval.End.UnixNano()
		assigned[i] = col
	}

	natural := len(columnEnds)
	if natural <= maxColumns {
		slots := make([]Slot, len(cluster))
		for i, it := range cluster {
			slots[i] = Slot{Item: it, Column: assigned[i], ColumnsInGroup: natural}
		}
		return slots
	}

	// Overflow: keep columns [0, maxColumns), collapse the rest. The
	// placeholder takes the lane after the last real column, so the
	// cluster is one lane wider than the cap.
	group := maxColumns + 1
	var slots []Slot
	var suppressed []domain.CalendarItem
	for i, it := range cluster {
		if assigned[i] < maxColumns {
			slots = append(slots, Slot{Item: it, Column: assigned[i], ColumnsInGroup: group})
		} else {
			suppressed = append(suppressed, it)
		}
	}
	slots = append(slots, Slot{
		Item:           overflowPlaceholder(suppressed),
		Column:         maxColumns,
		ColumnsInGroup: group,
	})
	return slots
}

// overflowPlaceholder builds the synthetic summary item for suppressed
// cluster members, anchored at the first suppressed interval.
func overflowPlaceholder(suppressed []domain.CalendarItem) domain.CalendarItem {
	titles := make([]string, len(suppressed))
	for i, it := range suppressed {
		titles[i] = truncateTitle(itemLabel(it))
	}
	return domain.CalendarItem{
		ID:       domain.OverflowID,
		Kind:     suppressed[0].Kind,
		Interval: suppressed[0].Interval,
		Title:    fmt.Sprintf("+%d more", len(suppressed)),
		Tooltip:  strings.Join(titles, ", "),
	}
}

func itemLabel(it domain.CalendarItem) string {
	if it.Title != "" {
		return it.Title
	}
	if it.Summary != "" {
		return it.Summary
	}
	return it.Category
}

func truncateTitle(s string) string {
	r := []rune(s)
	if len(r) <= tooltipTitleMax {
		return s
	}
	return string(r[:tooltipTitleMax-1]) + "…"
}
