// Package docs embeds the OpenAPI description of the HTTP API and the
// Scalar page that renders it.
package docs

import _ "embed"

//go:embed openapi.json
var OpenAPI []byte

//go:embed scalar.html
var ScalarHTML []byte
