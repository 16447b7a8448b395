// Package docs registra la definición OpenAPI del catálogo para swag.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var doc string

// SwaggerInfo metadatos de la API.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Catalog API",
	Description:      "Categorías y artículos con filtrado y paginación.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  doc,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Content devuelve la definición registrada en swag, lista para el middleware de Swagger UI.
func Content() []byte {
	out, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return []byte(doc)
	}
	return []byte(out)
}
