package bridge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameScanner_SingleObject(t *testing.T) {
	s := &frameScanner{}
	s.Append([]byte(`{"status":"success","result":{"objects":3}}`))

	frame, ok := s.Next()
	require.True(t, ok)
	assert.JSONEq(t, `{"status":"success","result":{"objects":3}}`, string(frame))

	_, ok = s.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestFrameScanner_ConcatenatedObjects(t *testing.T) {
	s := &frameScanner{}
	s.Append([]byte(`{"a":1}{"b":2}{"c":3}`))

	var frames []string
	for {
		frame, ok := s.Next()
		if !ok {
			break
		}
		frames = append(frames, string(frame))
	}
	require.Len(t, frames, 3)
	assert.JSONEq(t, `{"a":1}`, frames[0])
	assert.JSONEq(t, `{"b":2}`, frames[1])
	assert.JSONEq(t, `{"c":3}`, frames[2])
}

func TestFrameScanner_PartialFrameRetainedAcrossChunks(t *testing.T) {
	s := &frameScanner{}
	s.Append([]byte(`{"status":"succ`))

	_, ok := s.Next()
	require.False(t, ok)
	assert.Greater(t, s.Len(), 0, "unterminated prefix must be retained")

	s.Append([]byte(`ess","result":42}`))
	frame, ok := s.Next()
	require.True(t, ok)
	assert.JSONEq(t, `{"status":"success","result":42}`, string(frame))
}

func TestFrameScanner_BracesInsideStrings(t *testing.T) {
	s := &frameScanner{}
	s.Append([]byte(`{"message":"unbalanced } and { inside","status":"error"}`))

	frame, ok := s.Next()
	require.True(t, ok)

	var m map[string]any
	require.NoError(t, json.Unmarshal(frame, &m))
	assert.Equal(t, "unbalanced } and { inside", m["message"])
}

func TestFrameScanner_EscapedQuoteInsideString(t *testing.T) {
	s := &frameScanner{}
	s.Append([]byte(`{"message":"he said \"hi {\" there"}`))

	frame, ok := s.Next()
	require.True(t, ok)
	var m map[string]string
	require.NoError(t, json.Unmarshal(frame, &m))
	assert.Equal(t, `he said "hi {" there`, m["message"])
}

func TestFrameScanner_SingleGarbageByteDoesNotLoop(t *testing.T) {
	s := &frameScanner{}
	s.Append([]byte("x"))

	_, ok := s.Next()
	require.False(t, ok)
	assert.Equal(t, 0, s.Len(), "garbage with no brace must be dropped")
}

func TestFrameScanner_GarbagePrefixBeforeFrame(t *testing.T) {
	s := &frameScanner{}
	s.Append([]byte(`garbage!!{"ok":true}`))

	frame, ok := s.Next()
	require.True(t, ok)
	assert.JSONEq(t, `{"ok":true}`, string(frame))
}

func TestFrameScanner_CorruptFrameDoesNotConsumeFollowing(t *testing.T) {
	s := &frameScanner{}
	// `{bad}` is brace-balanced but not valid JSON. The scanner only cares
	// about balance; the caller discards the bad frame, and the next call
	// must still yield the valid frame behind it.
	s.Append([]byte(`{bad}{"status":"success","result":2}`))

	frame, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, `{bad}`, string(frame))

	frame, ok = s.Next()
	require.True(t, ok)
	assert.JSONEq(t, `{"status":"success","result":2}`, string(frame))
}
