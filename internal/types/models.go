package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// QuestionType is the semantic kind of a survey question.
type QuestionType string

const (
	QuestionNPS            QuestionType = "nps"
	QuestionCSAT           QuestionType = "csat"
	QuestionCES            QuestionType = "ces"
	QuestionRating         QuestionType = "rating"
	QuestionYesNo          QuestionType = "yes_no"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionText           QuestionType = "text"
)

// Known reports whether t is one of the supported question types.
func (t QuestionType) Known() bool {
	switch t {
	case QuestionNPS, QuestionCSAT, QuestionCES, QuestionRating,
		QuestionYesNo, QuestionMultipleChoice, QuestionText:
		return true
	}
	return false
}

// Answer is one question/answer pair of a completed survey.
type Answer struct {
	QuestionID string `json:"question_id"`
	Value      any    `json:"answer"`
}

// RawResponse is an ordered mapping from question id to answer.
// It (un)marshals as a JSON object and keeps the key order of the input.
type RawResponse []Answer

// Get returns the answer for questionID.
func (r RawResponse) Get(questionID string) (any, bool) {
	for _, a := range r {
		if a.QuestionID == questionID {
			return a.Value, true
		}
	}
	return nil, false
}

// Has reports whether questionID is a key of the response.
func (r RawResponse) Has(questionID string) bool {
	_, ok := r.Get(questionID)
	return ok
}

func (r RawResponse) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(a.QuestionID)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(a.Value)
		if err != nil {
			return nil, fmt.Errorf("answer %q: %w", a.QuestionID, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *RawResponse) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*r = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("raw response: expected object, got %v", tok)
	}
	out := RawResponse{}
	seen := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("raw response: expected key, got %v", tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("raw response %q: %w", key, err)
		}
		// a repeated key overwrites in place, like a plain JSON object
		if i, dup := seen[key]; dup {
			out[i].Value = v
			continue
		}
		seen[key] = len(out)
		out = append(out, Answer{QuestionID: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*r = out
	return nil
}

// QuestionDefinition is the optional schema of one survey question.
type QuestionDefinition struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type,omitempty"`
	Text     string       `json:"text"`
	ScaleMax *int         `json:"scale_max,omitempty"`
	Options  []string     `json:"options,omitempty"`
	Multiple bool         `json:"multiple,omitempty"`
}

// SurveyRecord is one completed survey as loaded from an export.
type SurveyRecord struct {
	ResponseID string      `json:"response_id"`
	Answers    RawResponse `json:"answers"`
}
