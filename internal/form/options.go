// Package form implements the contact form controller: it holds the field
// state for every category variant, derives the submission request from the
// selected category, performs the submission call, and resets on success.
package form

import "github.com/goatkit/contactform/internal/thread"

// SelectOption is one entry of a select field: the value travels in the
// payload where needed, the label is what the user sees.
type SelectOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CategoryOptions lists the selectable form purposes in display order.
var CategoryOptions = []SelectOption{
	{Label: "Report a bug", Value: string(thread.CategoryBug)},
	{Label: "Book a demo", Value: string(thread.CategoryDemo)},
	{Label: "Suggest a feature", Value: string(thread.CategoryFeature)},
	{Label: "Report a security issue", Value: string(thread.CategorySecurity)},
	{Label: "Something else", Value: string(thread.CategoryQuestion)},
}

// DemoProviderOptions lists the current-provider choices of the demo form.
var DemoProviderOptions = []SelectOption{
	{Label: "Acme", Value: "acme"},
	{Label: "Juniper", Value: "juniper"},
	{Label: "Resolve", Value: "resolve"},
	{Label: "Other", Value: "other"},
	{Label: "No, setting up for the first time", Value: "none"},
}

// DemoVolumeOptions lists the expected-volume choices of the demo form. The
// first entry is the default selection.
var DemoVolumeOptions = []SelectOption{
	{Label: "I'm not sure", Value: "no"},
	{Label: "Up to 500/month", Value: "<500"},
	{Label: "Up to 10,000/month", Value: "<10,000"},
	{Label: "Up to 50,000/month", Value: "<50,000"},
	{Label: "More than 50,000/month", Value: ">50,000"},
}

// labelFor returns the label of the option carrying value, or "" when no
// option matches.
func labelFor(options []SelectOption, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return ""
}
