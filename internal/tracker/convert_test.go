package tracker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawIssue(t *testing.T, fields map[string]any) issue {
	t.Helper()
	raw := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		raw[k] = b
	}
	return issue{Key: "PROJ-1", Fields: raw}
}

func TestConvertIssue_FullFields(t *testing.T) {
	iss := rawIssue(t, map[string]any{
		"summary":           "Build login",
		"labels":            []string{"experimental", "must"},
		"priority":          map[string]string{"name": "High"},
		"parent":            map[string]string{"key": "PROJ-100"},
		"customfield_10016": 5.0,
	})

	item := convertIssue(iss, "customfield_10016")
	assert.Equal(t, "PROJ-1", item.Key)
	assert.Equal(t, "Build login", item.Title)
	assert.Equal(t, []string{"experimental", "must"}, item.Tags)
	assert.Equal(t, "High", item.Priority)
	assert.Equal(t, "PROJ-100", item.EpicKey)
	require.NotNil(t, item.Size)
	assert.Equal(t, 5.0, *item.Size)
}

func TestConvertIssue_MissingFields(t *testing.T) {
	item := convertIssue(issue{Key: "PROJ-2", Fields: map[string]json.RawMessage{}}, "customfield_10016")
	assert.Equal(t, "PROJ-2", item.Key)
	assert.Empty(t, item.Title)
	assert.Nil(t, item.Size)
}

func TestParsePoints(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{"number", `5`, ptr(5.0)},
		{"fractional number", `2.5`, ptr(2.5)},
		{"numeric string", `"8"`, ptr(8.0)},
		{"padded numeric string", `" 3 "`, ptr(3.0)},
		{"null", `null`, nil},
		{"prose", `"TBD"`, nil},
		{"empty string", `""`, nil},
		{"object", `{"value":5}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePoints(json.RawMessage(tt.raw))
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func ptr(f float64) *float64 { return &f }
