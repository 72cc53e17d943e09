package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"virtual-lawyer/models"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so commands can run again
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func executeLawctl(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SEED_FILE", "")
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func runLawctl(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	out, err := executeLawctl(t, stdin, args...)
	require.NoError(t, err)
	return out
}

func TestMatchAgainstSeedData(t *testing.T) {
	out := runLawctl(t, "", "match", "someone", "tried", "to", "kill", "me")
	assert.True(t, strings.HasPrefix(out, "Best Match: Section 302\n"), out)
}

func TestMatchReadsStdin(t *testing.T) {
	out := runLawctl(t, "my dowry case under 304B", "match")
	assert.True(t, strings.HasPrefix(out, "Best Match: Section 304B\n"), out)
}

func TestMatchNoSignal(t *testing.T) {
	out := runLawctl(t, "", "match", "zzzz")
	assert.Equal(t, "No matches found.\n", out)
}

func TestMatchJSON(t *testing.T) {
	out := runLawctl(t, "", "match", "--json", "--top", "1", "bounced", "cheque")

	var results []models.MatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "138", results[0].Section)
}

func TestUserCreateValidatesFlags(t *testing.T) {
	_, err := executeLawctl(t, "", "user", "create", "--username", "advocate2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"password" not set`)

	_, err = executeLawctl(t, "", "user", "create", "-u", "advocate2", "-p", "secret", "--role", "judge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown role "judge"`)
}
