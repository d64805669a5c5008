package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Fields inside a record decode leniently: a value of the wrong shape
// becomes the field's empty value and the card shows its placeholder.

// UnmarshalJSON decodes one case record. Only malformed JSON is an error;
// a record that is not an object decodes as the zero Case, which has no
// phase and is never placed on the board.
func (c *Case) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if !isObject(data) {
		*c = Case{}
		return nil
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var out Case
	if raw, ok := fields["id"]; ok {
		if err := out.ID.UnmarshalJSON(raw); err != nil {
			out.ID = CaseID{}
		}
	}
	out.LitigationPhase = Phase(lenientString(fields["litigation_phase"]))
	out.Status = ReviewStatus(lenientString(fields["status"]))
	out.MainSummary = lenientString(fields["main_summary"])
	out.ClientName = lenientString(fields["client_name"])
	out.MedicalHistorySummary = lenientString(fields["medical_history_summary"])
	out.HIPAANecessity = lenientString(fields["hipaa_necessity"])
	out.Notes = lenientString(fields["notes"])
	out.PoliticalReading = lenientString(fields["political_reading"])

	if err := out.Venue.UnmarshalJSON(fields["venue"]); err != nil {
		return err
	}
	if err := out.KeyFindings.UnmarshalJSON(fields["key_findings"]); err != nil {
		return err
	}
	if err := out.RelevantCases.UnmarshalJSON(fields["relevant_cases"]); err != nil {
		return err
	}
	if err := out.FederalCases.UnmarshalJSON(fields["federal_cases"]); err != nil {
		return err
	}
	if err := out.Checklist.UnmarshalJSON(fields["checklist"]); err != nil {
		return err
	}

	*c = out
	return nil
}

// scalarText returns the text of a JSON string, number or boolean. Objects,
// arrays and null report false.
func scalarText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return "", false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case '{', '[':
		return "", false
	}
	if !json.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// lenientString is scalarText with "" for anything that is not a scalar.
func lenientString(raw json.RawMessage) string {
	s, _ := scalarText(raw)
	return s
}

// lenientFloat accepts a JSON number or a numeric string. Anything else is 0.
func lenientFloat(raw json.RawMessage) float64 {
	s, ok := scalarText(raw)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}
