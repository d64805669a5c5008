package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ChecklistStep is one named task and whether it is complete.
type ChecklistStep struct {
	Name string
	Done bool
}

// Checklist maps each phase to its steps in document order.
type Checklist map[Phase][]ChecklistStep

// For returns the steps recorded for phase p, or nil.
func (c Checklist) For(p Phase) []ChecklistStep {
	if c == nil {
		return nil
	}
	return c[p]
}

// UnmarshalJSON decodes {"<phase>": {"<step>": bool, ...}, ...} keeping the
// step order of the document. Non-object values decode as an empty checklist.
func (c *Checklist) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		*c = nil
		return nil
	}

	var phases map[Phase]json.RawMessage
	if err := json.Unmarshal(data, &phases); err != nil {
		return err
	}

	out := make(Checklist, len(phases))
	for phase, raw := range phases {
		steps, err := decodeSteps(raw)
		if err != nil {
			return fmt.Errorf("checklist %q: %w", phase, err)
		}
		out[phase] = steps
	}
	*c = out
	return nil
}

// decodeSteps walks the object token by token because a Go map would lose
// the step order.
func decodeSteps(raw json.RawMessage) ([]ChecklistStep, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var steps []ChecklistStep
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected checklist key %v", tok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		done, _ := value.(bool)
		steps = append(steps, ChecklistStep{Name: name, Done: done})
	}
	return steps, nil
}
