package plan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotArray is returned by DecodePlanItems when the payload is valid JSON
// but not an array. Callers treat it as an empty plan, not as a failure.
var ErrNotArray = errors.New("task plan payload is not an array")

// ErrMalformedItem is returned by DecodePlanItems when an item lacks
// plan.recommendations or carries null there. The whole payload is rejected.
var ErrMalformedItem = errors.New("task plan item has no recommendations")

// PlanItem represents one recommendation source from the task-plan endpoint.
// Only plan.recommendations is read; every other field is ignored.
type PlanItem struct {
	Plan PlanBody `json:"plan"`
}

// PlanBody is the nested plan object of a PlanItem.
type PlanBody struct {
	Recommendations Recommendations `json:"recommendations"`
}

// Recommendations holds either an ordered list of activities or a single
// text block whose activities are separated by "\n-".
type Recommendations struct {
	List   []string
	Text   string
	IsList bool
}

// RecommendationList builds list-shaped recommendations.
func RecommendationList(items ...string) Recommendations {
	return Recommendations{List: items, IsList: true}
}

// RecommendationText builds text-shaped recommendations.
func RecommendationText(text string) Recommendations {
	return Recommendations{Text: text}
}

// UnmarshalJSON accepts a string, an array of strings, or null.
func (r *Recommendations) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = Recommendations{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*r = Recommendations{Text: text}
	case '[':
		var list []string
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return fmt.Errorf("recommendations must contain only strings: %w", err)
		}
		*r = Recommendations{List: list, IsList: true}
	default:
		return fmt.Errorf("recommendations must be a string or an array of strings, got %s", jsonKind(trimmed[0]))
	}
	return nil
}

// MarshalJSON writes the recommendations back in the shape they were read.
func (r Recommendations) MarshalJSON() ([]byte, error) {
	if r.IsList {
		list := r.List
		if list == nil {
			list = []string{}
		}
		return json.Marshal(list)
	}
	return json.Marshal(r.Text)
}

// DecodePlanItems decodes a raw task-plan payload. Invalid JSON,
// recommendations of the wrong type and items without plan.recommendations
// are errors; valid JSON that is not an array returns ErrNotArray.
func DecodePlanItems(raw []byte) ([]PlanItem, error) {
	trimmed := bytes.TrimSpace(raw)
	if !json.Valid(trimmed) {
		return nil, errors.New("task plan payload is not valid JSON")
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: got %s", ErrNotArray, jsonKind(trimmed[0]))
	}

	var items []PlanItem
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("failed to decode plan items: %w", err)
	}
	if err := checkPresence(trimmed); err != nil {
		return nil, err
	}
	return items, nil
}

// itemShape mirrors PlanItem with nil-able fields so absent and null values
// can be told apart from empty ones.
type itemShape struct {
	Plan *struct {
		Recommendations json.RawMessage `json:"recommendations"`
	} `json:"plan"`
}

func checkPresence(raw []byte) error {
	var shapes []itemShape
	if err := json.Unmarshal(raw, &shapes); err != nil {
		return fmt.Errorf("failed to decode plan items: %w", err)
	}
	for i, shape := range shapes {
		if shape.Plan == nil {
			return fmt.Errorf("%w: item %d has no plan", ErrMalformedItem, i)
		}
		rec := bytes.TrimSpace(shape.Plan.Recommendations)
		if len(rec) == 0 || bytes.Equal(rec, []byte("null")) {
			return fmt.Errorf("%w: item %d", ErrMalformedItem, i)
		}
	}
	return nil
}

func jsonKind(first byte) string {
	switch first {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
