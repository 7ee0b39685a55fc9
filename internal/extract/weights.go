package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// The heuristic keyword weights are tuned configuration, not derived
// values. Deployments can retune them through a JSON override file without
// a rebuild; the file is validated against this schema before use.
const overridesSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "keywords": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": {
          "type": "number",
          "minimum": 0
        }
      }
    }
  }
}`

// Overrides replaces keyword weights per entity kind, keyed by the kind's
// name (e.g. "ACCOUNT_NUMBER").
type Overrides struct {
	Keywords map[string]map[string]float64 `json:"keywords"`
}

// LoadOverrides reads and validates a weight-override file.
func LoadOverrides(path string) (*Overrides, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("weights-schema.json", bytes.NewReader([]byte(overridesSchema))); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("weights-schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode overrides: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return nil, fmt.Errorf("overrides do not match schema: %w", err)
	}

	var o Overrides
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("decode overrides: %w", err)
	}
	for kindName := range o.Keywords {
		if _, ok := KindFromString(kindName); !ok {
			return nil, fmt.Errorf("overrides reference unknown entity kind %q", kindName)
		}
	}
	return &o, nil
}

// WithOverrides builds a new registry with the given weight overrides
// applied. The receiver is copied, never mutated, so registries stay
// immutable after construction.
func (r Registry) WithOverrides(o *Overrides) Registry {
	out := make(Registry, len(r))
	for kind, def := range r {
		copied := *def
		copied.Keywords = make(map[string]float64, len(def.Keywords))
		for k, w := range def.Keywords {
			copied.Keywords[k] = w
		}
		out[kind] = &copied
	}
	if o == nil {
		return out
	}
	for kindName, weights := range o.Keywords {
		kind, ok := KindFromString(kindName)
		if !ok {
			continue
		}
		for keyword, weight := range weights {
			out[kind].Keywords[keyword] = weight
		}
	}
	return out
}
