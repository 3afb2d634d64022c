package service

import (
	"github.com/alexanderramin/weekgrid/internal/api"
	"github.com/alexanderramin/weekgrid/internal/domain"
)

// itemFromPlanned converts one wire record into a view item. The suggested
// category, when present, drives the block color only — planned items stay
// read-only context.
func itemFromPlanned(rec api.PlannedEventRecord) domain.CalendarItem {
	return domain.CalendarItem{
		ID:                rec.ID,
		Kind:              domain.KindPlanned,
		Interval:          domain.TimeInterval{Start: rec.StartAt, End: rec.EndAt},
		Title:             rec.Title,
		Summary:           rec.Title,
		Category:          rec.SuggestedCategory,
		SuggestedCategory: rec.SuggestedCategory,
	}
}

// itemFromLogged converts one wire record (a per-day segment) into a view
// item. Segments of a midnight-spanning entry share the entry's ID.
func itemFromLogged(rec api.LoggedEntryRecord) domain.CalendarItem {
	return domain.CalendarItem{
		ID:             rec.ID,
		Kind:           domain.KindLogged,
		Interval:       domain.TimeInterval{Start: rec.StartAt, End: rec.EndAt},
		Title:          rec.Title,
		Category:       rec.CategoryName,
		CategoryID:     rec.CategoryID,
		Tags:           rec.Tags,
		PlannedEventID: rec.PlannedEventID,
	}
}
