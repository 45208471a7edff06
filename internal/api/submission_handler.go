// Package api implements the HTTP surface of the contact form service: the
// submission endpoint, health and metrics routes, and the middleware stack.
package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goatkit/contactform/internal/helpdesk"
	"github.com/goatkit/contactform/internal/thread"
)

// SubmissionHandler accepts a contact form submission and forwards it to the
// helpdesk: upsert the customer by email, then open a thread for them.
type SubmissionHandler struct {
	client helpdesk.Client
	logger *log.Logger
}

// SubmissionOption configures the handler.
type SubmissionOption func(*SubmissionHandler)

// WithLogger sets a custom logger.
func WithLogger(l *log.Logger) SubmissionOption {
	return func(h *SubmissionHandler) { h.logger = l }
}

// NewSubmissionHandler creates a handler backed by the given helpdesk
// client.
func NewSubmissionHandler(client helpdesk.Client, opts ...SubmissionOption) *SubmissionHandler {
	h := &SubmissionHandler{
		client: client,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle implements POST /api/contact-form/.
//
// The two helpdesk calls are strictly sequential: thread creation needs the
// customer id the upsert returns, and is never attempted after an upsert
// failure. A thread-creation failure after a successful upsert is not rolled
// back; the upsert is idempotent and safe to have happened regardless.
func (h *SubmissionHandler) Handle(c *gin.Context) {
	start := time.Now()
	metrics := globalSubmissionMetrics()
	defer func() {
		metrics.duration.Observe(time.Since(start).Seconds())
	}()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	if err := validateSubmission(body); err != nil {
		metrics.total.WithLabelValues("", "invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req thread.Request
	if err := json.Unmarshal(body, &req); err != nil {
		metrics.total.WithLabelValues("", "invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	category := categoryLabel(req.Title)
	ctx := c.Request.Context()

	customer, err := h.client.UpsertCustomer(ctx, helpdesk.UpsertCustomerInput{
		Identifier: helpdesk.CustomerIdentifierInput{
			EmailAddress: req.Email,
		},
		OnCreate: helpdesk.OnCreateCustomer{
			FullName: req.Name,
			Email: helpdesk.EmailAddressInput{
				Email:      req.Email,
				IsVerified: true,
			},
		},
		// Empty on purpose: a form submission never overwrites an existing
		// customer's name or email.
		OnUpdate: helpdesk.OnUpdateCustomer{},
	})
	if err != nil {
		h.logger.Printf("upsert customer failed: %+v request_id=%s", err, c.GetString("request_id"))
		metrics.total.WithLabelValues(category, "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if customer == nil {
		// Violates the Client contract; treat it like any upstream failure.
		h.logger.Printf("upsert customer returned no record request_id=%s", c.GetString("request_id"))
		metrics.total.WithLabelValues(category, "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "helpdesk returned no customer"})
		return
	}
	h.logger.Printf("customer upserted %s", customer.ID)

	createdThread, err := h.client.CreateThread(ctx, helpdesk.CreateThreadInput{
		CustomerIdentifier: helpdesk.CustomerIdentifierInput{
			CustomerID: customer.ID,
		},
		Title:        req.Title,
		Components:   req.Components,
		LabelTypeIDs: req.LabelTypeIDs,
		Priority:     req.Priority,
	})
	if err != nil {
		h.logger.Printf("create thread failed: %+v request_id=%s", err, c.GetString("request_id"))
		metrics.total.WithLabelValues(category, "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.logger.Printf("thread created %s", createdThread.ID)

	metrics.total.WithLabelValues(category, "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"error": nil})
}

// categoryLabel maps a thread title back to the bounded category set for
// metric labels. The title is user-supplied, so anything outside the fixed
// titles collapses to "other" to keep label cardinality bounded.
func categoryLabel(title string) string {
	if category, ok := thread.CategoryFromTitle(title); ok {
		return string(category)
	}
	return "other"
}
