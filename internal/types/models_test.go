package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawResponse_KeepsKeyOrder(t *testing.T) {
	var r RawResponse
	require.NoError(t, json.Unmarshal([]byte(`{"zeta": 9, "alpha": "great", "mid": [1, "b"], "none": null}`), &r))

	ids := make([]string, 0, len(r))
	for _, a := range r {
		ids = append(ids, a.QuestionID)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid", "none"}, ids)
	assert.Equal(t, 9.0, r[0].Value)
	assert.Equal(t, []any{1.0, "b"}, r[2].Value)
	assert.Nil(t, r[3].Value)

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":9,"alpha":"great","mid":[1,"b"],"none":null}`, string(out))
}

func TestRawResponse_DuplicateKeyOverwrites(t *testing.T) {
	var r RawResponse
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1, "b": 2, "a": 3}`), &r))
	assert.Equal(t, RawResponse{{QuestionID: "a", Value: 3.0}, {QuestionID: "b", Value: 2.0}}, r)
}

func TestRawResponse_NullAndEmpty(t *testing.T) {
	var r RawResponse
	require.NoError(t, json.Unmarshal([]byte(`null`), &r))
	assert.Nil(t, r)

	require.NoError(t, json.Unmarshal([]byte(`{}`), &r))
	assert.Equal(t, RawResponse{}, r)

	out, err := json.Marshal(RawResponse(nil))
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))
}

func TestRawResponse_RejectsNonObject(t *testing.T) {
	for _, in := range []string{`[1,2]`, `"text"`, `42`} {
		var r RawResponse
		assert.Error(t, json.Unmarshal([]byte(in), &r), in)
	}
}

func TestRawResponse_GetHas(t *testing.T) {
	r := RawResponse{{QuestionID: "q1", Value: "yes"}}
	v, ok := r.Get("q1")
	assert.True(t, ok)
	assert.Equal(t, "yes", v)
	assert.True(t, r.Has("q1"))
	assert.False(t, r.Has("q2"))
}

func TestSurveyRecord_JSON(t *testing.T) {
	var rec SurveyRecord
	require.NoError(t, json.Unmarshal([]byte(`{"response_id":"r1","answers":{"b":1,"a":2}}`), &rec))
	assert.Equal(t, "r1", rec.ResponseID)
	assert.Equal(t, "b", rec.Answers[0].QuestionID)
}

func TestQuestionType_Known(t *testing.T) {
	assert.True(t, QuestionCES.Known())
	assert.True(t, QuestionText.Known())
	assert.False(t, QuestionType("matrix").Known())
	assert.False(t, QuestionType("").Known())
}
