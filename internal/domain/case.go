package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Case is one legal matter as delivered by the case data source.
type Case struct {
	ID                    CaseID       `json:"id"`
	LitigationPhase       Phase        `json:"litigation_phase"`
	Status                ReviewStatus `json:"status"`
	MainSummary           string       `json:"main_summary"`
	ClientName            string       `json:"client_name"`
	Venue                 Venue        `json:"venue"`
	KeyFindings           StringList   `json:"key_findings"`
	MedicalHistorySummary string       `json:"medical_history_summary"`
	HIPAANecessity        string       `json:"hipaa_necessity"`
	Notes                 string       `json:"notes,omitempty"`
	PoliticalReading      string       `json:"political_reading"`
	RelevantCases         Citations    `json:"relevant_cases"`
	FederalCases          Citations    `json:"federal_cases"`
	Checklist             Checklist    `json:"checklist"`
}

// WithStatus returns a copy of c with only the status replaced. Slices and
// the checklist are shared with c, never mutated.
func (c Case) WithStatus(s ReviewStatus) Case {
	c.Status = s
	return c
}

// CurrentChecklist returns the checklist steps for the case's own phase.
func (c Case) CurrentChecklist() []ChecklistStep {
	return c.Checklist.For(c.LitigationPhase)
}

// CaseID identifies a case. Data sources use either JSON strings or
// integers; the two kinds never compare equal, even with the same text.
type CaseID struct {
	text    string
	numeric bool
}

// StringID returns a string-kind case id.
func StringID(s string) CaseID { return CaseID{text: s} }

// IntID returns an integer-kind case id.
func IntID(n int64) CaseID { return CaseID{text: strconv.FormatInt(n, 10), numeric: true} }

func (id CaseID) String() string { return id.text }

// IsZero reports whether the id is absent.
func (id CaseID) IsZero() bool { return id.text == "" && !id.numeric }

// Equal reports whether both ids have the same kind and text.
func (id CaseID) Equal(other CaseID) bool { return id == other }

func (id CaseID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.text), nil
	}
	return json.Marshal(id.text)
}

func (id *CaseID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if isNull(data) {
		*id = CaseID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = CaseID{text: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = CaseID{text: n.String(), numeric: true}
	return nil
}

// Venue is the court a case is filed in.
type Venue struct {
	CourtType string `json:"court_type"`
	County    string `json:"county"`
}

// Known reports whether the source supplied a venue at all.
func (v Venue) Known() bool { return v.CourtType != "" || v.County != "" }

// UnmarshalJSON accepts an object; null, "" and any other scalar mean the
// venue is absent. Non-string parts are kept as their text.
func (v *Venue) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		*v = Venue{}
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*v = Venue{
		CourtType: lenientString(fields["court_type"]),
		County:    lenientString(fields["county"]),
	}
	return nil
}

// Citation is a case-law reference attached to a case.
type Citation struct {
	CaseName       string  `json:"case_name"`
	Citation       string  `json:"citation"`
	Court          string  `json:"court"`
	Summary        string  `json:"summary"`
	RelevanceScore float64 `json:"relevance_score"`
}

// RelevancePercent renders the [0,1] relevance score as a whole percentage.
func (c Citation) RelevancePercent() int {
	return int(math.Round(c.RelevanceScore * 100))
}

// StringList is an ordered list of strings that decodes anything other than
// a JSON array as empty. Numbers and booleans in the array keep their text;
// objects, arrays and nulls are skipped.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	items, err := lenientArray(data)
	if err != nil {
		return err
	}
	var out StringList
	for _, raw := range items {
		if s, ok := scalarText(raw); ok {
			out = append(out, s)
		}
	}
	*l = out
	return nil
}

// Citations is an ordered citation list that decodes anything other than a
// JSON array as empty. Entries that are not objects are skipped.
type Citations []Citation

func (l *Citations) UnmarshalJSON(data []byte) error {
	items, err := lenientArray(data)
	if err != nil {
		return err
	}
	var out Citations
	for _, raw := range items {
		if !isObject(raw) {
			continue
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return err
		}
		out = append(out, Citation{
			CaseName:       lenientString(fields["case_name"]),
			Citation:       lenientString(fields["citation"]),
			Court:          lenientString(fields["court"]),
			Summary:        lenientString(fields["summary"]),
			RelevanceScore: lenientFloat(fields["relevance_score"]),
		})
	}
	*l = out
	return nil
}

func lenientArray(data []byte) ([]json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func isNull(data []byte) bool {
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}
