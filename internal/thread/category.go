// Package thread builds the submission request sent to the helpdesk: the
// thread title, body components, label ids and priority for each contact
// form category.
package thread

// Category is the user-selected purpose of a contact form submission.
type Category string

const (
	// CategoryUnset means no category has been chosen yet. Submission is
	// disabled in this state; Build rejects it as a programming error.
	CategoryUnset Category = ""

	CategoryBug      Category = "bug"
	CategoryDemo     Category = "demo"
	CategoryFeature  Category = "feature"
	CategoryQuestion Category = "question"
	CategorySecurity Category = "security"
)

// Categories lists every selectable category in display order.
var Categories = []Category{
	CategoryBug,
	CategoryDemo,
	CategoryFeature,
	CategorySecurity,
	CategoryQuestion,
}

var titles = map[Category]string{
	CategoryBug:      "Bug report",
	CategoryDemo:     "Demo request",
	CategoryFeature:  "Feature suggestion",
	CategoryQuestion: "Question",
	CategorySecurity: "Security report",
}

// Valid reports whether c is one of the selectable categories.
func (c Category) Valid() bool {
	_, ok := titles[c]
	return ok
}

// Title returns the fixed thread title for a category, or "Contact form"
// when no category is chosen. Total over all inputs.
func Title(c Category) string {
	if title, ok := titles[c]; ok {
		return title
	}
	return "Contact form"
}

// CategoryFromTitle is the inverse of Title over the selectable categories.
// Titles outside the fixed set report ok=false.
func CategoryFromTitle(title string) (Category, bool) {
	for category, t := range titles {
		if t == title {
			return category, true
		}
	}
	return CategoryUnset, false
}
