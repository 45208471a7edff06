// Package web renders the browser side of the contact form: a single page
// whose script mirrors the form controller's submission logic.
package web

import (
	"embed"
	"encoding/json"
	"net/http"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"github.com/goatkit/contactform/internal/form"
	"github.com/goatkit/contactform/internal/thread"
)

//go:embed templates/contact_form.pongo2
var templateFS embed.FS

// PageHandler serves GET / with the contact form page. The option lists and
// the public label ids are injected so the page builds the same payload the
// Go form controller builds.
type PageHandler struct {
	template *pongo2.Template
	labels   thread.LabelConfig
}

// NewPageHandler parses the embedded page template.
func NewPageHandler(labels thread.LabelConfig) (*PageHandler, error) {
	raw, err := templateFS.ReadFile("templates/contact_form.pongo2")
	if err != nil {
		return nil, err
	}
	tpl, err := pongo2.FromBytes(raw)
	if err != nil {
		return nil, err
	}
	return &PageHandler{template: tpl, labels: labels}, nil
}

// Handle renders the contact form page.
func (h *PageHandler) Handle(c *gin.Context) {
	out, err := h.template.Execute(pongo2.Context{
		"category_options_json": mustJSON(form.CategoryOptions),
		"provider_options_json": mustJSON(form.DemoProviderOptions),
		"volume_options_json":   mustJSON(form.DemoVolumeOptions),
		"label_type_ids_json":   mustJSON(h.labels),
		"submit_path":           form.SubmitPath,
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
