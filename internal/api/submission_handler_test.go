package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goatkit/contactform/internal/helpdesk"
	"github.com/goatkit/contactform/internal/thread"
	"github.com/goatkit/contactform/internal/useragent"
)

func setupRouter(client helpdesk.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := log.New(io.Discard, "", 0)
	handler := NewSubmissionHandler(client, WithLogger(logger))
	return NewRouter(handler, nil, logger)
}

func buildRequest(t *testing.T, details thread.Details, labels thread.LabelConfig) []byte {
	t.Helper()
	req, err := thread.Build("Grace Hopper", "grace@x.com", details, labels)
	require.NoError(t, err)
	body, err := json.Marshal(req)
	require.NoError(t, err)
	return body
}

func postSubmission(router *gin.Engine, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact-form/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleSubmissionBugReport(t *testing.T) {
	hd := helpdesk.NewInMemory()
	router := setupRouter(hd)

	body := buildRequest(t, thread.BugReport{
		Description: "X",
		IsBlocking:  true,
		PageURL:     "https://app.example.com/",
		Browser:     useragent.Browser{Name: "Chrome", Version: "120.0"},
	}, thread.LabelConfig{thread.CategoryBug: "lt_bug"})

	w := postSubmission(router, body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"error": null}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	customer := hd.Customer("grace@x.com")
	require.NotNil(t, customer)
	assert.Equal(t, "Grace Hopper", customer.FullName)
	assert.Equal(t, "grace@x.com", customer.Email)

	threads := hd.Threads()
	require.Len(t, threads, 1)
	assert.Equal(t, customer.ID, threads[0].CustomerIdentifier.CustomerID)
	assert.Equal(t, "Bug report", threads[0].Title)
	assert.Equal(t, helpdesk.PriorityHigh, threads[0].Priority)
	assert.Equal(t, []string{"lt_bug"}, threads[0].LabelTypeIDs)
	require.Len(t, threads[0].Components, 3)
	assert.Equal(t, "X", threads[0].Components[0].Text.Text)
}

func TestHandleSubmissionUpsertFailure(t *testing.T) {
	hd := helpdesk.NewInMemory()
	hd.UpsertErr = &helpdesk.APIError{Message: "customer service unavailable"}
	router := setupRouter(hd)

	body := buildRequest(t, thread.Question{Text: "Why?"}, nil)
	w := postSubmission(router, body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "customer service unavailable"}`, w.Body.String())
	assert.Empty(t, hd.Threads(), "thread creation must never run after a failed upsert")
}

func TestHandleSubmissionCreateThreadFailure(t *testing.T) {
	hd := helpdesk.NewInMemory()
	hd.CreateErr = &helpdesk.APIError{Message: "thread quota exceeded"}
	router := setupRouter(hd)

	body := buildRequest(t, thread.SecurityReport{Text: "When I…"}, nil)
	w := postSubmission(router, body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "thread quota exceeded"}`, w.Body.String())
	assert.Equal(t, 1, hd.CustomerCount(), "upsert is not rolled back when thread creation fails")
}

func TestHandleSubmissionIdempotentUpsert(t *testing.T) {
	hd := helpdesk.NewInMemory()
	router := setupRouter(hd)

	first := buildRequest(t, thread.Question{Text: "Why?"}, nil)
	w := postSubmission(router, first)
	require.Equal(t, http.StatusOK, w.Code)

	// Second submission with the same email but a different name: the
	// existing customer is left untouched, a second thread is created.
	req, err := thread.Build("G. Hopper", "grace@x.com", thread.Question{Text: "And how?"}, nil)
	require.NoError(t, err)
	second, err := json.Marshal(req)
	require.NoError(t, err)
	w = postSubmission(router, second)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1, hd.CustomerCount())
	assert.Equal(t, "Grace Hopper", hd.Customer("grace@x.com").FullName, "onUpdate is empty, the stored name must not change")
	assert.Len(t, hd.Threads(), 2)
}

func TestHandleSubmissionRejectsInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json at all"},
		{"missing fields", `{"name": "Grace Hopper"}`},
		{"wrong priority type", `{"name":"g","email":"g@x.com","title":"Question","components":[],"labelTypeIds":[],"priority":"high"}`},
		{"priority out of range", `{"name":"g","email":"g@x.com","title":"Question","components":[],"labelTypeIds":[],"priority":4}`},
		{"empty email", `{"name":"g","email":"","title":"Question","components":[],"labelTypeIds":[],"priority":2}`},
		{"unexpected field", `{"name":"g","email":"g@x.com","title":"Question","components":[],"labelTypeIds":[],"priority":2,"extra":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hd := helpdesk.NewInMemory()
			router := setupRouter(hd)

			w := postSubmission(router, []byte(tt.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
			assert.Equal(t, 0, hd.CustomerCount(), "invalid bodies must never reach the helpdesk")
		})
	}
}

func TestHandleSubmissionAcceptsLowPriority(t *testing.T) {
	// Priority 3 is never produced by the category rules but stays a valid
	// input downstream.
	hd := helpdesk.NewInMemory()
	router := setupRouter(hd)

	body := []byte(`{"name":"g","email":"g@x.com","title":"Question","components":[{"text":{"text":"hi"}}],"labelTypeIds":[],"priority":3}`)
	w := postSubmission(router, body)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, hd.Threads(), 1)
	assert.Equal(t, helpdesk.PriorityLow, hd.Threads()[0].Priority)
}

// nilCustomerClient breaks the helpdesk.Client contract by returning no
// customer on a successful upsert.
type nilCustomerClient struct{}

func (nilCustomerClient) UpsertCustomer(context.Context, helpdesk.UpsertCustomerInput) (*helpdesk.Customer, error) {
	return nil, nil
}

func (nilCustomerClient) CreateThread(context.Context, helpdesk.CreateThreadInput) (*helpdesk.Thread, error) {
	return &helpdesk.Thread{ID: "th_1"}, nil
}

func TestHandleSubmissionNilCustomer(t *testing.T) {
	router := setupRouter(nilCustomerClient{})

	body := buildRequest(t, thread.Question{Text: "Why?"}, nil)
	w := postSubmission(router, body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "helpdesk returned no customer"}`, w.Body.String())
}

func TestCategoryLabelIsBounded(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Bug report", "bug"},
		{"Demo request", "demo"},
		{"Feature suggestion", "feature"},
		{"Question", "question"},
		{"Security report", "security"},
		{"Contact form", "other"},
		{"free-form user title", "other"},
		{"", "other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, categoryLabel(tt.title), tt.title)
	}
}

func TestHealthRoute(t *testing.T) {
	router := setupRouter(helpdesk.NewInMemory())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestValidateSubmission(t *testing.T) {
	valid := thread.Request{
		Name:         "Grace Hopper",
		Email:        "grace@x.com",
		Title:        "Question",
		Components:   []helpdesk.Component{helpdesk.Text("hi")},
		LabelTypeIDs: []string{},
		Priority:     2,
	}
	body, err := json.Marshal(valid)
	require.NoError(t, err)
	assert.NoError(t, validateSubmission(body))

	assert.Error(t, validateSubmission([]byte(`{}`)))
	assert.Error(t, validateSubmission([]byte(`[]`)))
}
