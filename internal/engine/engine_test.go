package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mossline/scribe/internal/model"
)

func TestProcessLineValidMessage(t *testing.T) {
	eng := New()
	msg, err := eng.ProcessLine([]byte(`{"message":{"role":"user","content":"hello"}}`), "a.jsonl")
	require.NoError(t, err)
	assert.Equal(t, "user", msg.Role)
	assert.Equal(t, "a.jsonl", msg.File)
}

func TestProcessLineInvalidJSON(t *testing.T) {
	eng := New()
	_, err := eng.ProcessLine([]byte(`{not json`), "a.jsonl")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotMessage)
}

func TestProcessLineNotAMessage(t *testing.T) {
	eng := New()
	_, err := eng.ProcessLine([]byte(`{"type":"system","content":"boot"}`), "a.jsonl")
	assert.ErrorIs(t, err, ErrNotMessage)
}

func TestSortByTimestampAscending(t *testing.T) {
	eng := New()
	msgs := []model.Message{
		{Timestamp: "2024-03-01T00:00:00Z", MessageID: "c"},
		{Timestamp: "2024-01-01T00:00:00Z", MessageID: "a"},
		{Timestamp: "2024-02-01T00:00:00Z", MessageID: "b"},
	}
	eng.Sort(msgs)
	assert.Equal(t, []string{"a", "b", "c"}, ids(msgs))
}

func TestSortStableWithAbsentTimestamps(t *testing.T) {
	// Timestamp-less messages sort first and keep their input order.
	eng := New()
	msgs := []model.Message{
		{Timestamp: "", MessageID: "first-empty"},
		{Timestamp: "2024-01-01T00:00:00Z", MessageID: "dated"},
		{Timestamp: "", MessageID: "second-empty"},
	}
	eng.Sort(msgs)
	assert.Equal(t, []string{"first-empty", "second-empty", "dated"}, ids(msgs))
}

func TestSortStableOnTies(t *testing.T) {
	eng := New()
	msgs := []model.Message{
		{Timestamp: "2024-01-01T00:00:00Z", MessageID: "x"},
		{Timestamp: "2024-01-01T00:00:00Z", MessageID: "y"},
		{Timestamp: "2024-01-01T00:00:00Z", MessageID: "z"},
	}
	eng.Sort(msgs)
	assert.Equal(t, []string{"x", "y", "z"}, ids(msgs))
}

func ids(msgs []model.Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.MessageID
	}
	return out
}
