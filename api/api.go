// Package api carries the hand-maintained OpenAPI document for the HTTP
// surface. The raw bytes are served at /schema and validated at startup so a
// drifted or malformed document fails the boot instead of the first reader.
package api

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yml
var Spec []byte

// Validate parses the embedded document and checks it against the OpenAPI 3
// rules.
func Validate(ctx context.Context) error {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(Spec)
	if err != nil {
		return fmt.Errorf("parse openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("validate openapi document: %w", err)
	}
	return nil
}
