package content

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const stringList = `{"type": "array", "items": {"type": "string", "minLength": 1}}`

var careersSchema = `{
  "type": "object",
  "required": ["interests", "types"],
  "properties": {
    "interests": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["label", "keywords"],
        "properties": {
          "label": {"type": "string", "minLength": 1},
          "keywords": ` + stringList + `
        }
      }
    },
    "types": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["code", "summary", "strengths", "careers", "environments", "study_tips", "keywords"],
        "properties": {
          "code": {"type": "string", "pattern": "^[EI][NS][TF][JP]$"},
          "summary": {"type": "string", "minLength": 1},
          "strengths": ` + stringList + `,
          "careers": {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}},
          "environments": {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}},
          "study_tips": {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}},
          "famous_people": ` + stringList + `,
          "keywords": ` + stringList + `
        }
      }
    }
  }
}`

var shoulderSchema = `{
  "type": "object",
  "required": ["tests", "exercises", "symptoms"],
  "properties": {
    "tests": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["code", "name", "target", "procedure", "positive"],
        "properties": {
          "code": {"type": "string", "pattern": "^[a-z0-9_]+$"},
          "name": {"type": "string", "minLength": 1},
          "target": {"type": "string", "minLength": 1},
          "procedure": {"type": "string", "minLength": 1},
          "positive": {"type": "string", "minLength": 1},
          "caution": {"type": "string"}
        }
      }
    },
    "exercises": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["code", "name", "goal", "steps", "dosage", "diagram"],
        "properties": {
          "code": {"type": "string", "pattern": "^[a-z0-9_]+$"},
          "name": {"type": "string", "minLength": 1},
          "goal": {"type": "string", "minLength": 1},
          "steps": {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}},
          "dosage": {"type": "string", "minLength": 1},
          "diagram": {"type": "string", "minLength": 1},
          "caution": {"type": "string"}
        }
      }
    },
    "symptoms": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["key", "tags", "tests", "exercises"],
        "properties": {
          "key": {"type": "string", "minLength": 1},
          "tags": ` + stringList + `,
          "tests": ` + stringList + `,
          "exercises": ` + stringList + `
        }
      }
    }
  }
}`

const minuteRange = `{
  "type": "object",
  "required": ["min", "max"],
  "properties": {
    "min": {"type": "integer", "minimum": 0},
    "max": {"type": "integer", "minimum": 0}
  }
}`

const percent = `{"type": "integer", "minimum": 0, "maximum": 100}`

var resortsSchema = `{
  "type": "object",
  "required": ["resorts"],
  "properties": {
    "resorts": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "region", "highlights"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "icon": {"type": "string"},
          "region": {"type": "string", "minLength": 1},
          "highlights": ` + stringList + `,
          "car": ` + minuteRange + `,
          "public": ` + minuteRange + `,
          "ktx": ` + minuteRange + `,
          "note": {"type": "string"},
          "source_hint": {"type": "string"},
          "difficulty": {
            "type": "object",
            "properties": {
              "beginner": ` + percent + `,
              "intermediate": ` + percent + `,
              "advanced": ` + percent + `
            },
            "additionalProperties": false
          },
          "map_links": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["label", "url"],
              "properties": {
                "label": {"type": "string", "minLength": 1},
                "url": {"type": "string", "pattern": "^https?://"}
              }
            }
          }
        }
      }
    }
  }
}`

var schemas = map[string]*gojsonschema.Schema{}

func init() {
	for file, raw := range map[string]string{
		CareersFile:  careersSchema,
		ShoulderFile: shoulderSchema,
		ResortsFile:  resortsSchema,
	} {
		s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
		if err != nil {
			panic(fmt.Sprintf("content: compile schema for %s: %v", file, err))
		}
		schemas[file] = s
	}
}

// validateDocument checks a decoded YAML document against the schema registered for file.
func validateDocument(file string, doc any) error {
	s, ok := schemas[file]
	if !ok {
		return fmt.Errorf("%w: no schema for %s", ErrInvalidBundle, file)
	}
	result, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidBundle, file, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s: %s", ErrInvalidBundle, file, strings.Join(errs, "; "))
	}
	return nil
}
