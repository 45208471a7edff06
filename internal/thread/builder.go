package thread

import (
	"errors"
	"fmt"

	"github.com/goatkit/contactform/internal/helpdesk"
	"github.com/goatkit/contactform/internal/useragent"
)

// ErrNoCategory is returned when a request is built with no category
// selected. The form disables submission in that state, so reaching this is
// a programming error and not user-facing validation.
var ErrNoCategory = errors.New("no category selected")

// Details is the tagged union of per-category inputs. Exactly one concrete
// type exists per selectable category; a nil Details means no category has
// been chosen.
type Details interface {
	Category() Category
}

// BugReport carries the bug form fields plus the page and browser context
// the submission originated from.
type BugReport struct {
	Description string
	IsBlocking  bool
	PageURL     string
	Browser     useragent.Browser
}

// DemoRequest carries the demo form fields. Provider and volume hold the
// human-readable option labels, not the raw option values.
type DemoRequest struct {
	Message       string
	ProviderLabel string
	VolumeLabel   string
}

// FeatureSuggestion carries the feature form's free text.
type FeatureSuggestion struct {
	Text string
}

// Question carries the question form's free text.
type Question struct {
	Text string
}

// SecurityReport carries the security form's free text.
type SecurityReport struct {
	Text string
}

func (BugReport) Category() Category         { return CategoryBug }
func (DemoRequest) Category() Category       { return CategoryDemo }
func (FeatureSuggestion) Category() Category { return CategoryFeature }
func (Question) Category() Category          { return CategoryQuestion }
func (SecurityReport) Category() Category    { return CategorySecurity }

// LabelConfig maps each category to its configured helpdesk label type id.
// Categories without configuration are simply absent.
type LabelConfig map[Category]string

// Request is the payload the form posts to the submission endpoint and the
// endpoint forwards to the helpdesk. Immutable once built.
type Request struct {
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	Title        string               `json:"title"`
	Components   []helpdesk.Component `json:"components"`
	LabelTypeIDs []string             `json:"labelTypeIds"`
	Priority     int                  `json:"priority"`
}

// Build assembles the full submission request for the given details. A nil
// details value means no category was selected and yields ErrNoCategory;
// for any selected category Build never fails.
func Build(name, email string, details Details, labels LabelConfig) (*Request, error) {
	if details == nil {
		return nil, ErrNoCategory
	}

	category := details.Category()
	return &Request{
		Name:         name,
		Email:        email,
		Title:        Title(category),
		Components:   Components(details),
		LabelTypeIDs: LabelTypeIDs(category, labels),
		Priority:     Priority(category, isBlockingBug(details)),
	}, nil
}

// Components returns the thread body for the given details. Dispatch is
// total over the category variants; a nil details yields nil.
func Components(details Details) []helpdesk.Component {
	switch d := details.(type) {
	case BugReport:
		return ComponentsForBug(d)
	case DemoRequest:
		return ComponentsForDemo(d)
	case FeatureSuggestion:
		return []helpdesk.Component{helpdesk.Text(d.Text)}
	case Question:
		return []helpdesk.Component{helpdesk.Text(d.Text)}
	case SecurityReport:
		return []helpdesk.Component{helpdesk.Text(d.Text)}
	default:
		return nil
	}
}

// ComponentsForBug renders the bug description followed by a small muted
// footer naming the page and browser the report came from.
func ComponentsForBug(d BugReport) []helpdesk.Component {
	footer := fmt.Sprintf("Reported on %s using %s", d.PageURL, d.Browser)
	return []helpdesk.Component{
		helpdesk.Text(d.Description),
		helpdesk.Spacer(helpdesk.SpacerSizeSmall),
		helpdesk.StyledText(footer, helpdesk.TextSizeSmall, helpdesk.TextColorMuted),
	}
}

// ComponentsForDemo renders the optional free-text message followed by two
// fixed rows for the current provider and expected volume.
func ComponentsForDemo(d DemoRequest) []helpdesk.Component {
	var components []helpdesk.Component
	if d.Message != "" {
		components = append(components,
			helpdesk.Text(d.Message),
			helpdesk.Spacer(helpdesk.SpacerSizeSmall),
		)
	}
	return append(components,
		helpdesk.Row(
			[]helpdesk.Component{helpdesk.StyledText("Current provider", "", helpdesk.TextColorMuted)},
			[]helpdesk.Component{helpdesk.Text(d.ProviderLabel)},
		),
		helpdesk.Row(
			[]helpdesk.Component{helpdesk.StyledText("Expected volume", "", helpdesk.TextColorMuted)},
			[]helpdesk.Component{helpdesk.Text(d.VolumeLabel)},
		),
	)
}

// Priority maps a category to its thread priority. Security reports are
// urgent, blocking bugs are high, everything else is normal. Total over all
// inputs; low (3) is never produced but stays a valid value downstream.
func Priority(c Category, bugIsBlocking bool) int {
	if c == CategorySecurity {
		return helpdesk.PriorityUrgent
	}
	if c == CategoryBug && bugIsBlocking {
		return helpdesk.PriorityHigh
	}
	return helpdesk.PriorityNormal
}

// LabelTypeIDs returns the configured label ids for a category. A category
// without configuration contributes nothing; that is not an error.
func LabelTypeIDs(c Category, labels LabelConfig) []string {
	if id, ok := labels[c]; ok && id != "" {
		return []string{id}
	}
	return []string{}
}

func isBlockingBug(details Details) bool {
	bug, ok := details.(BugReport)
	return ok && bug.IsBlocking
}
