package api

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// submissionSchema constrains the request body shape before anything is
// forwarded to the helpdesk. Component internals are validated loosely; the
// helpdesk owns their full contract.
const submissionSchema = `{
	"type": "object",
	"required": ["name", "email", "title", "components", "labelTypeIds", "priority"],
	"properties": {
		"name": {"type": "string"},
		"email": {"type": "string", "minLength": 1},
		"title": {"type": "string", "minLength": 1},
		"components": {
			"type": "array",
			"items": {"type": "object"}
		},
		"labelTypeIds": {
			"type": "array",
			"items": {"type": "string"}
		},
		"priority": {"type": "integer", "minimum": 0, "maximum": 3}
	},
	"additionalProperties": false
}`

var submissionSchemaLoader = gojsonschema.NewStringLoader(submissionSchema)

// validateSubmission checks a raw request body against the submission
// schema. The returned error message lists every violation.
func validateSubmission(body []byte) error {
	result, err := gojsonschema.Validate(submissionSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		details = append(details, e.String())
	}
	return fmt.Errorf("invalid request body: %s", strings.Join(details, "; "))
}
