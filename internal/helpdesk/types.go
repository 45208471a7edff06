// Package helpdesk defines the boundary to the external customer/thread
// management API. The contact form never talks to the helpdesk directly;
// everything goes through the Client interface so handlers can be tested
// against the in-memory implementation.
package helpdesk

import "context"

// Thread priorities. Lower is more urgent.
const (
	PriorityUrgent = 0
	PriorityHigh   = 1
	PriorityNormal = 2
	PriorityLow    = 3
)

// TextSize is the rendered size of a text component.
type TextSize string

// TextColor is the rendered color of a text component.
type TextColor string

// SpacerSize is the height of a spacer component.
type SpacerSize string

const (
	TextSizeSmall  TextSize  = "S"
	TextColorMuted TextColor = "MUTED"

	SpacerSizeSmall SpacerSize = "S"
)

// Component is one unit of a thread's rendered body. Exactly one of the
// fields is set; the JSON key doubles as the variant tag on the wire.
type Component struct {
	Text   *TextComponent   `json:"text,omitempty"`
	Spacer *SpacerComponent `json:"spacer,omitempty"`
	Row    *RowComponent    `json:"row,omitempty"`
}

// TextComponent renders a run of plain text, optionally styled.
type TextComponent struct {
	Text  string    `json:"text"`
	Size  TextSize  `json:"textSize,omitempty"`
	Color TextColor `json:"textColor,omitempty"`
}

// SpacerComponent renders vertical whitespace.
type SpacerComponent struct {
	Size SpacerSize `json:"spacerSize"`
}

// RowComponent renders two columns, main content on the left and aside
// content on the right.
type RowComponent struct {
	MainContent  []Component `json:"rowMainContent"`
	AsideContent []Component `json:"rowAsideContent"`
}

// Text returns a plain text component.
func Text(text string) Component {
	return Component{Text: &TextComponent{Text: text}}
}

// StyledText returns a text component with an explicit size and color.
func StyledText(text string, size TextSize, color TextColor) Component {
	return Component{Text: &TextComponent{Text: text, Size: size, Color: color}}
}

// Spacer returns a spacer component of the given size.
func Spacer(size SpacerSize) Component {
	return Component{Spacer: &SpacerComponent{Size: size}}
}

// Row returns a two-column row component.
func Row(main, aside []Component) Component {
	return Component{Row: &RowComponent{MainContent: main, AsideContent: aside}}
}

// CustomerIdentifierInput selects a customer either by email address or by
// the helpdesk's own customer id.
type CustomerIdentifierInput struct {
	EmailAddress string `json:"emailAddress,omitempty"`
	CustomerID   string `json:"customerId,omitempty"`
}

// EmailAddressInput is an email address plus its verification state.
type EmailAddressInput struct {
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
}

// OnCreateCustomer holds the fields applied when the upsert creates a new
// customer.
type OnCreateCustomer struct {
	FullName string            `json:"fullName"`
	Email    EmailAddressInput `json:"email"`
}

// OnUpdateCustomer holds the fields applied when the upsert matches an
// existing customer. The contact form always sends it empty: an existing
// customer's name and email are never overwritten by a form submission.
type OnUpdateCustomer struct{}

// UpsertCustomerInput is the input to Client.UpsertCustomer.
type UpsertCustomerInput struct {
	Identifier CustomerIdentifierInput `json:"identifier"`
	OnCreate   OnCreateCustomer        `json:"onCreate"`
	OnUpdate   OnUpdateCustomer        `json:"onUpdate"`
}

// CreateThreadInput is the input to Client.CreateThread.
type CreateThreadInput struct {
	CustomerIdentifier CustomerIdentifierInput `json:"customerIdentifier"`
	Title              string                  `json:"title"`
	Components         []Component             `json:"components"`
	LabelTypeIDs       []string                `json:"labelTypeIds"`
	Priority           int                     `json:"priority"`
}

// Customer is the helpdesk's customer record, reduced to the fields this
// service reads.
type Customer struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Thread is the helpdesk's thread record, reduced to the fields this service
// reads.
type Thread struct {
	ID string `json:"id"`
}

// APIError is the structured error returned by the helpdesk API.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Type    string `json:"type,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is the surface of the external helpdesk API this service uses.
// Both calls are synchronous; CreateThread requires a customer id obtained
// from a prior UpsertCustomer. Implementations return a non-nil record
// whenever the error is nil.
type Client interface {
	UpsertCustomer(ctx context.Context, input UpsertCustomerInput) (*Customer, error)
	CreateThread(ctx context.Context, input CreateThreadInput) (*Thread, error)
}
