package tracker

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/bvanleeuwen/specsheet/internal/domain"
)

type searchResponse struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []issue `json:"issues"`
}

// issue keeps its fields raw because the story-points field name is
// account-specific and only known at runtime.
type issue struct {
	Key    string                     `json:"key"`
	Fields map[string]json.RawMessage `json:"fields"`
}

type namedField struct {
	Name string `json:"name"`
}

type parentField struct {
	Key string `json:"key"`
}

// convertIssue maps a raw Jira issue onto a backlog item. A missing or
// unparseable estimate leaves Size nil rather than zero so the item lands
// in the unestimated bucket.
func convertIssue(iss issue, pointsField string) domain.BacklogItem {
	item := domain.BacklogItem{Key: iss.Key}

	if raw, ok := iss.Fields["summary"]; ok {
		_ = json.Unmarshal(raw, &item.Title)
	}
	if raw, ok := iss.Fields["labels"]; ok {
		_ = json.Unmarshal(raw, &item.Tags)
	}
	if raw, ok := iss.Fields["priority"]; ok {
		var p namedField
		if err := json.Unmarshal(raw, &p); err == nil {
			item.Priority = p.Name
		}
	}
	if raw, ok := iss.Fields["parent"]; ok {
		var p parentField
		if err := json.Unmarshal(raw, &p); err == nil {
			item.EpicKey = p.Key
		}
	}
	if raw, ok := iss.Fields[pointsField]; ok {
		item.Size = parsePoints(raw)
	}
	return item
}

// parsePoints accepts the estimate as a JSON number or a numeric string.
// Anything else (null, prose like "TBD") yields nil.
func parsePoints(raw json.RawMessage) *float64 {
	// Unmarshalling null into a float64 is a no-op, not an error, so it
	// must be caught before the numeric path or "no estimate" would read
	// as zero points.
	if string(bytes.TrimSpace(raw)) == "null" {
		return nil
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return &num
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		str = strings.TrimSpace(str)
		if str == "" {
			return nil
		}
		if parsed, err := strconv.ParseFloat(str, 64); err == nil {
			return &parsed
		}
	}
	return nil
}
