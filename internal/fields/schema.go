package fields

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// extractionSchema is the persistence-boundary contract for the record
// JSON stored on the extract job. It rejects malformed dates, negative
// adjustments, and barcodes that are not a 47/48 digit run: anything
// that slipped through lenient extraction-time coercion.
const extractionSchema = `{
  "type": "object",
  "properties": {
    "recipient":        {"type": ["string", "null"]},
    "drawee":           {"type": ["string", "null"]},
    "documentDate":     {"type": ["string", "null"], "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "dueDate":          {"type": ["string", "null"], "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "documentAmount":   {"type": ["number", "null"], "minimum": 0},
    "amount":           {"type": ["number", "null"], "minimum": 0},
    "discount":         {"type": ["number", "null"], "minimum": 0},
    "interestAndFines": {"type": ["number", "null"], "minimum": 0},
    "barcode":          {"type": ["string", "null"], "pattern": "^\\d{47,48}$"},
    "guideNumber":      {"type": ["string", "null"]},
    "pixQrCodeText":    {"type": ["string", "null"]},
    "fileName":         {"type": "string"}
  },
  "required": ["fileName"],
  "additionalProperties": false
}`

var compileSchemaOnce = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("extraction.json", strings.NewReader(extractionSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return compiler.Compile("extraction.json")
})

// ValidateJSON checks an Extraction against the persistence schema and
// returns its canonical JSON encoding.
func ValidateJSON(x Extraction) ([]byte, error) {
	schema, err := compileSchemaOnce()
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(x)
	if err != nil {
		return nil, fmt.Errorf("marshal extraction: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	if err := schema.Validate(v); err != nil {
		return nil, fmt.Errorf("extraction does not match schema: %w", err)
	}
	return b, nil
}
