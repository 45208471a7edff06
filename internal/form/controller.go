package form

import (
	"context"
	"log"

	"github.com/goatkit/contactform/internal/thread"
	"github.com/goatkit/contactform/internal/useragent"
)

// Sender delivers a built submission request to the server endpoint and
// reports failure for non-OK responses as well as transport errors.
type Sender interface {
	Send(ctx context.Context, req *thread.Request) error
}

// Notifier surfaces the submission outcome to the user. The user only ever
// sees these two signals; upstream error detail stays in the logs.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// Controller holds the mutable state of one contact form session. Fields for
// every category are kept so switching categories does not discard input
// already entered in another branch. Not safe for concurrent use; the
// rendering layer serializes access and disables submission while one is in
// flight.
type Controller struct {
	sender   Sender
	notifier Notifier
	labels   thread.LabelConfig
	logger   *log.Logger

	pageURL   string
	userAgent string

	category thread.Category
	name     string
	email    string

	// Bug form
	bugDescription string
	bugIsBlocking  bool

	// Feature request
	featureRequest string

	// Demo form
	demoProvider string
	demoVolume   string
	demoMessage  string

	// Question
	question string

	// Security
	securityIssue string

	processing bool
}

// Option configures the controller.
type Option func(*Controller)

// WithNotifier sets the outcome notifier.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

// WithLogger sets a custom logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithPageContext records the page URL and User-Agent reported in bug
// submissions.
func WithPageContext(pageURL, userAgent string) Option {
	return func(c *Controller) {
		c.pageURL = pageURL
		c.userAgent = userAgent
	}
}

// NewController creates a controller in its initial (empty) state.
func NewController(sender Sender, labels thread.LabelConfig, opts ...Option) *Controller {
	c := &Controller{
		sender:     sender,
		notifier:   nopNotifier{},
		labels:     labels,
		logger:     log.Default(),
		demoVolume: DemoVolumeOptions[0].Value,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetCategory switches the active category. Input entered under other
// categories is retained.
func (c *Controller) SetCategory(category thread.Category) { c.category = category }

// Category returns the active category.
func (c *Controller) Category() thread.Category { return c.category }

func (c *Controller) SetName(v string)           { c.name = v }
func (c *Controller) SetEmail(v string)          { c.email = v }
func (c *Controller) SetBugDescription(v string) { c.bugDescription = v }
func (c *Controller) SetBugIsBlocking(v bool)    { c.bugIsBlocking = v }
func (c *Controller) SetFeatureRequest(v string) { c.featureRequest = v }
func (c *Controller) SetDemoProvider(v string)   { c.demoProvider = v }
func (c *Controller) SetDemoVolume(v string)     { c.demoVolume = v }
func (c *Controller) SetDemoMessage(v string)    { c.demoMessage = v }
func (c *Controller) SetQuestion(v string)       { c.question = v }
func (c *Controller) SetSecurityIssue(v string)  { c.securityIssue = v }

// Processing reports whether a submission is in flight. The rendering layer
// disables the submit control while this is true.
func (c *Controller) Processing() bool { return c.processing }

// CanSubmit reports whether the submit control should be enabled.
func (c *Controller) CanSubmit() bool {
	return c.category.Valid() && !c.processing
}

// Reset clears every field and the category back to initial values.
func (c *Controller) Reset() {
	c.category = thread.CategoryUnset
	c.name = ""
	c.email = ""
	c.bugDescription = ""
	c.bugIsBlocking = false
	c.featureRequest = ""
	c.demoProvider = ""
	c.demoVolume = DemoVolumeOptions[0].Value
	c.demoMessage = ""
	c.question = ""
	c.securityIssue = ""
	c.processing = false
}

// details returns the variant for the active category, or nil when no
// category is selected.
func (c *Controller) details() thread.Details {
	switch c.category {
	case thread.CategoryBug:
		return thread.BugReport{
			Description: c.bugDescription,
			IsBlocking:  c.bugIsBlocking,
			PageURL:     c.pageURL,
			Browser:     useragent.Parse(c.userAgent),
		}
	case thread.CategoryFeature:
		return thread.FeatureSuggestion{Text: c.featureRequest}
	case thread.CategoryQuestion:
		return thread.Question{Text: c.question}
	case thread.CategorySecurity:
		return thread.SecurityReport{Text: c.securityIssue}
	case thread.CategoryDemo:
		return thread.DemoRequest{
			Message:       c.demoMessage,
			ProviderLabel: labelFor(DemoProviderOptions, c.demoProvider),
			VolumeLabel:   labelFor(DemoVolumeOptions, c.demoVolume),
		}
	default:
		return nil
	}
}

// Submit builds the request from current state and sends it. Exactly one
// outbound call is made per invocation. On success the form is fully reset;
// on any failure the state is left untouched so the user can retry.
func (c *Controller) Submit(ctx context.Context) error {
	c.processing = true
	defer func() { c.processing = false }()

	req, err := thread.Build(c.name, c.email, c.details(), c.labels)
	if err != nil {
		// Unreachable through the UI, which disables submission until a
		// category is chosen.
		return err
	}

	if err := c.sender.Send(ctx, req); err != nil {
		c.logger.Printf("contact form submission failed: %v", err)
		c.notifier.Failure("Oops")
		return err
	}

	c.Reset()
	c.notifier.Success("Success!")
	return nil
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Failure(string) {}
