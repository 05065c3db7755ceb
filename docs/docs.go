// Package docs embebe la especificación OpenAPI servida por la UI de swagger.
// Regenerar swagger.json con `swag init -g cmd/api/main.go -o docs` tras
// cambiar las anotaciones de los handlers.
package docs

import _ "embed"

//go:embed swagger.json
var SwaggerJSON []byte
