// Package vision defines the contract with vision-language providers
// that extract product names from shelf images.
package vision

import "context"

// Defaults matching the reference Gemini setup.
const (
	DefaultModel       = "gemini-2.0-flash"
	DefaultTemperature = 0.1
	DefaultMaxTokens   = 2048
)

// Prompt is the extraction prompt sent with every shelf image. The model
// answers with a comma-separated list of product names, or the
// NO_DETECTADO marker when it finds none.
const Prompt = `Analiza esta imagen de una gondola de supermercado o productos alimenticios.
Extrae TODOS los nombres de productos que aparezcan en la imagen.
Devuelve una LISTA SEPARADA POR COMAS de todos los productos que identifiques.
No incluya descripciones, solo los nombres de los productos.
Ejemplo de respuesta: Producto A, Producto B, Producto C
Si no puedes identificar productos, responde: "NO_DETECTADO"
`

// Config represents one extraction request to a provider.
type Config struct {
	Model       string
	Temperature float64
	MaxTokens   int
	Prompt      string
	Image       []byte
	MIMEType    string
}

// Provider defines the interface for a vision-language provider.
type Provider interface {
	ExtractText(ctx context.Context, config Config) (string, error)
}
