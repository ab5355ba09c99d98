package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable_UnmarshalJSON(t *testing.T) {
	var body struct {
		Absent  Nullable[string] `json:"absent"`
		Cleared Nullable[string] `json:"cleared"`
		Named   Nullable[string] `json:"named"`
		Count   Nullable[int]    `json:"count"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"cleared": null, "named": "docs", "count": 0}`), &body))

	assert.False(t, body.Absent.Set)
	assert.Nil(t, body.Absent.Ptr())

	assert.True(t, body.Cleared.Set)
	assert.False(t, body.Cleared.Valid)
	assert.Nil(t, body.Cleared.Ptr())

	assert.Equal(t, Some("docs"), body.Named)
	require.NotNil(t, body.Count.Ptr())
	assert.Equal(t, 0, *body.Count.Ptr())
}

func TestNullable_RejectsWrongType(t *testing.T) {
	var body struct {
		Count Nullable[int] `json:"count"`
	}

	assert.Error(t, json.Unmarshal([]byte(`{"count": "three"}`), &body))
}
