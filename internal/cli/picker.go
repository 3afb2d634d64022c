package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/weekgrid/internal/api"
	"github.com/alexanderramin/weekgrid/internal/cli/formatter"
	"github.com/alexanderramin/weekgrid/internal/drag"
	"github.com/alexanderramin/weekgrid/internal/service"
	"github.com/charmbracelet/huh"
)

// titleOnlyOption is the sentinel Select value meaning "categorize from
// the typed title instead".
const titleOnlyOption = ""

// categoryPicker is the capture step between a pending time range and a
// committed entry. It runs in two modes: chunk mode (after a drag, the
// range is fixed) and quick mode (no drag; a duration field picks the
// range ending now).
type categoryPicker struct {
	form  *huh.Form
	chunk *drag.PendingChunk // nil in quick mode

	categoryID string
	title      string
	duration   string // quick mode only, minutes
}

func newChunkPicker(chunk drag.PendingChunk, cats []api.CategoryRecord) *categoryPicker {
	p := &categoryPicker{chunk: &chunk}
	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Log %s as…", formatter.FormatRange(chunk.Start.Local(), chunk.End.Local()))).
				Options(categoryOptions(cats)...).
				Value(&p.categoryID),
			huh.NewInput().
				Title("Title (optional, categorizes when no category picked)").
				Value(&p.title),
		),
	).WithTheme(weekgridHuhTheme()).WithShowHelp(false)
	return p
}

func newQuickPicker(cats []api.CategoryRecord, defaultMinutes int) *categoryPicker {
	p := &categoryPicker{duration: strconv.Itoa(defaultMinutes)}
	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Quick log ending now").
				Options(categoryOptions(cats)...).
				Value(&p.categoryID),
			huh.NewInput().
				Title("Minutes").
				Placeholder(strconv.Itoa(defaultMinutes)).
				Value(&p.duration).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Title (optional)").
				Value(&p.title),
		),
	).WithTheme(weekgridHuhTheme()).WithShowHelp(false)
	return p
}

func categoryOptions(cats []api.CategoryRecord) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(cats)+1)
	for _, c := range cats {
		options = append(options, huh.NewOption(c.Name, c.ID))
	}
	options = append(options, huh.NewOption("(from title)", titleOnlyOption))
	return options
}

// resolve maps the picker's selection to a concrete category, running the
// auto-categorization lookup for title-only commits. ok is false when the
// user supplied neither a category nor a usable title.
func (p *categoryPicker) resolve(cats []api.CategoryRecord) (id, name string, ok bool) {
	if p.categoryID != titleOnlyOption {
		for _, c := range cats {
			if c.ID == p.categoryID {
				return c.ID, c.Name, true
			}
		}
		return "", "", false
	}
	if strings.TrimSpace(p.title) == "" {
		return "", "", false
	}
	want := service.AutoCategorize(p.title)
	for _, c := range cats {
		if strings.EqualFold(c.Name, want) {
			return c.ID, c.Name, true
		}
	}
	if len(cats) == 0 {
		return "", "", false
	}
	return cats[0].ID, cats[0].Name, true
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func parsePositiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
