package service

import "strings"

// Keyword sets for title auto-categorization, checked in priority order.
// Explicitly marked wasted time wins; family and partner mentions beat the
// work keywords so "called mom" does not land in Work.
var (
	wastedKeywords = []string{
		"wasted", "waste", "procrastinat", "unplanned", "scrolling",
		"doomscroll", "distract", "youtube", "tiktok", "reddit",
		"instagram", "twitter", "browse", "mindless", "drift",
		"lost time", "rabbit hole",
	}
	intimateKeywords = []string{
		"partner", "date", "boyfriend", "girlfriend", "husband", "wife",
		"dinner with", "movie with", "mom", "mum", "dad", "family",
		"parent", "parents", "quality time",
	}
	workKeywords = []string{
		"work", "meeting", "email", "project", "deadline", "client",
		"presentation", "report", "standup", "1:1", "review",
		"conference call", "team call",
	}
	learningKeywords = []string{
		"study", "learn", "course", "class", "reading", "book",
		"tutorial", "lecture",
	}
	exerciseKeywords = []string{
		"gym", "workout", "run", "running", "yoga", "swim", "bike",
		"hiking", "walk", "exercise", "lift",
	}
	entertainmentKeywords = []string{
		"shopping", "movie", "netflix", "game", "gaming", "tv", "show",
		"concert", "party",
	}
	lifeEssentialsKeywords = []string{
		"lunch", "dinner", "breakfast", "meal", "eat", "shower", "bath",
		"cleaning", "laundry", "dishes", "cook", "groceries", "hygiene",
		"skincare",
	}
)

// AutoCategorize maps a free-text title to a category name. It backs the
// title-only commit path: when the user types a title instead of picking a
// category, the lookup runs before the entry is created. Returns "Other"
// when nothing matches.
func AutoCategorize(title string) string {
	t := strings.ToLower(title)
	if t == "sleep" {
		return "Sleep"
	}

	for _, set := range []struct {
		keywords []string
		category string
	}{
		{wastedKeywords, "Unplanned / Wasted"},
		{intimateKeywords, "Intimate / Quality Time"},
		{workKeywords, "Work"},
		{learningKeywords, "Learning"},
		{exerciseKeywords, "Exercise"},
		{entertainmentKeywords, "Entertainment"},
		{lifeEssentialsKeywords, "Life essentials"},
	} {
		for _, kw := range set.keywords {
			if strings.Contains(t, kw) {
				return set.category
			}
		}
	}
	return "Other"
}
