package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "empty", raw: "", expected: []string{}},
		{name: "trims and drops blanks", raw: " cheat, ,fraud ,", expected: []string{"cheat", "fraud"}},
		{name: "keeps multi word terms", raw: "culpable homicide,death", expected: []string{"culpable homicide", "death"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseKeywords(tt.raw))
		})
	}
}

func TestJoinKeywords(t *testing.T) {
	assert.Equal(t, "cheat,fraud", JoinKeywords([]string{" cheat", "", "fraud "}))
	assert.Equal(t, "", JoinKeywords(nil))
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole(" Advocate ")
	assert.True(t, ok)
	assert.Equal(t, RoleAdvocate, role)

	role, ok = ParseRole("CLIENT")
	assert.True(t, ok)
	assert.Equal(t, RoleClient, role)

	_, ok = ParseRole("judge")
	assert.False(t, ok)
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(time.Minute)))
}

func TestQueryMetadataScan(t *testing.T) {
	docID := uuid.New()
	in := QueryMetadata{Username: "client", MatchedTokens: []string{"fraud"}, DocumentID: &docID}
	raw, err := in.Value()
	require.NoError(t, err)

	var out QueryMetadata
	require.NoError(t, out.Scan(raw))
	assert.Equal(t, in, out)

	require.NoError(t, out.Scan(nil))
	assert.Equal(t, QueryMetadata{}, out)

	require.NoError(t, out.Scan(""))
	assert.Equal(t, QueryMetadata{}, out)
}
