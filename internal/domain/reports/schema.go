package reports

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Esquemas JSON de los payloads de entrada. La validación de negocio
// (catálogo de razas, futuro, etc.) sigue en validate.go.
const lostPetSchema = `{
  "type": "object",
  "required": ["species", "last_seen_at", "geo"],
  "properties": {
    "name":          {"type": "string", "maxLength": 80},
    "species":       {"type": "string", "enum": ["dog", "cat"]},
    "breed":         {"type": "string", "maxLength": 64},
    "color":         {"type": "string", "maxLength": 80},
    "size":          {"type": "string", "enum": ["", "small", "medium", "large"]},
    "age":           {"type": "string", "enum": ["", "puppy", "kitten", "adult"]},
    "last_seen_at":  {"type": "string", "minLength": 10},
    "geo":           {"$ref": "#/definitions/geo"},
    "gps_enabled":   {"type": "boolean"},
    "special_needs": {"type": "boolean"},
    "photo":         {"type": "string"}
  },
  "definitions": {
    "geo": {
      "type": "object",
      "required": ["lat", "lng"],
      "properties": {
        "lat": {"type": "number", "minimum": -90,  "maximum": 90},
        "lng": {"type": "number", "minimum": -180, "maximum": 180}
      }
    }
  }
}`

const sightingSchema = `{
  "type": "object",
  "required": ["species", "time", "geo"],
  "properties": {
    "species": {"type": "string", "enum": ["dog", "cat"]},
    "breed":   {"type": "string", "maxLength": 64},
    "color":   {"type": "string", "maxLength": 80},
    "size":    {"type": "string", "enum": ["", "small", "medium", "large"]},
    "age":     {"type": "string", "enum": ["", "puppy", "kitten", "adult"]},
    "notes":   {"type": "string", "maxLength": 1000},
    "time":    {"type": "string", "minLength": 10},
    "geo":     {"$ref": "#/definitions/geo"},
    "photo":   {"type": "string"}
  },
  "definitions": {
    "geo": {
      "type": "object",
      "required": ["lat", "lng"],
      "properties": {
        "lat": {"type": "number", "minimum": -90,  "maximum": 90},
        "lng": {"type": "number", "minimum": -180, "maximum": 180}
      }
    }
  }
}`

// SchemaError junta los errores de validación para devolverlos al cliente.
type SchemaError struct {
	Details []string
}

func (e *SchemaError) Error() string {
	return "payload does not match schema: " + strings.Join(e.Details, "; ")
}

func (e *SchemaError) Unwrap() error { return ErrInvalidInput }

var (
	lostPetSchemaOnce  = sync.OnceValues(func() (*gojsonschema.Schema, error) { return compile(lostPetSchema) })
	sightingSchemaOnce = sync.OnceValues(func() (*gojsonschema.Schema, error) { return compile(sightingSchema) })
)

func compile(src string) (*gojsonschema.Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return s, nil
}

// ValidateLostPetPayload valida el JSON crudo de POST /lost-pets.
func ValidateLostPetPayload(raw []byte) error {
	s, err := lostPetSchemaOnce()
	if err != nil {
		return err
	}
	return validatePayload(s, raw)
}

// ValidateSightingPayload valida el JSON crudo de POST /sightings.
func ValidateSightingPayload(raw []byte) error {
	s, err := sightingSchemaOnce()
	if err != nil {
		return err
	}
	return validatePayload(s, raw)
}

func validatePayload(s *gojsonschema.Schema, raw []byte) error {
	if len(raw) == 0 {
		return &SchemaError{Details: []string{"empty body"}}
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		// JSON mal formado
		return &SchemaError{Details: []string{err.Error()}}
	}
	if res.Valid() {
		return nil
	}
	details := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		details = append(details, e.String())
	}
	return &SchemaError{Details: details}
}

// IsSchemaError es un atajo para handlers.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
