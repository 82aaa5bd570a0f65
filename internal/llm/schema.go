package llm

import (
	"sort"

	"github.com/sashabaranov/go-openai/jsonschema"
	"google.golang.org/genai"
)

// SchemaType is a JSON schema primitive type.
type SchemaType string

const (
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeString  SchemaType = "string"
	TypeInteger SchemaType = "integer"
	TypeNumber  SchemaType = "number"
	TypeBoolean SchemaType = "boolean"
)

// Schema is a provider-neutral description of a structured response.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Required    []string
}

// Object builds an object schema where every property is required.
func Object(props map[string]*Schema) *Schema {
	required := make([]string, 0, len(props))
	for name := range props {
		required = append(required, name)
	}
	sort.Strings(required)
	return &Schema{Type: TypeObject, Properties: props, Required: required}
}

// ArrayOf builds an array schema.
func ArrayOf(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

// String builds a described string schema.
func String(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}

// Integer builds a described integer schema.
func Integer(description string) *Schema {
	return &Schema{Type: TypeInteger, Description: description}
}

// Boolean builds a described boolean schema.
func Boolean(description string) *Schema {
	return &Schema{Type: TypeBoolean, Description: description}
}

func (s *Schema) toGenAI() *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Description: s.Description,
		Required:    s.Required,
	}

	switch s.Type {
	case TypeObject:
		out.Type = genai.TypeObject
	case TypeArray:
		out.Type = genai.TypeArray
	case TypeInteger:
		out.Type = genai.TypeInteger
	case TypeNumber:
		out.Type = genai.TypeNumber
	case TypeBoolean:
		out.Type = genai.TypeBoolean
	default:
		out.Type = genai.TypeString
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.toGenAI()
		}
	}
	out.Items = s.Items.toGenAI()

	return out
}

func (s *Schema) toOpenAI() jsonschema.Definition {
	if s == nil {
		return jsonschema.Definition{}
	}

	out := jsonschema.Definition{
		Description: s.Description,
		Required:    s.Required,
	}

	switch s.Type {
	case TypeObject:
		out.Type = jsonschema.Object
		out.AdditionalProperties = false
	case TypeArray:
		out.Type = jsonschema.Array
	case TypeInteger:
		out.Type = jsonschema.Integer
	case TypeNumber:
		out.Type = jsonschema.Number
	case TypeBoolean:
		out.Type = jsonschema.Boolean
	default:
		out.Type = jsonschema.String
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]jsonschema.Definition, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.toOpenAI()
		}
	}
	if s.Items != nil {
		items := s.Items.toOpenAI()
		out.Items = &items
	}

	return out
}
