package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"rollcall/internal/cli"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithLog(t, args...)
	return out, err
}

func runWithLog(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSeq_Generators(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"squares", []string{"seq", "squares", "--count", "6"}, "0 1 4 9 16 25\n"},
		{"fibonacci", []string{"seq", "fibonacci", "-n", "7"}, "0 1 1 2 3 5 8\n"},
		{"zero count", []string{"seq", "squares", "-n", "0"}, "\n"},
		{"sum squares", []string{"seq", "sum-squares", "1", "2", "3"}, "14\n"},
		{"bounded", []string{"seq", "bounded", "--", "1", "5", "-5", "101", "-200", "9", "0"}, "1 5 5 9 0\n"},
		{"evens", []string{"seq", "evens", "3", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, "2 4 6\n"},
		{"evens none found", []string{"seq", "evens", "3", "1", "3", "5"}, "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestSeq_Errors(t *testing.T) {
	_, err := run(t, "seq", "squares", "-n", "-1")
	require.Error(t, err)

	_, err = run(t, "seq", "sum-squares", "1", "x")
	require.ErrorContains(t, err, `invalid value "x"`)
}

func TestSeq_EvensWithoutCount(t *testing.T) {
	out, logs, err := runWithLog(t, "seq", "evens")
	require.NoError(t, err)
	require.Empty(t, out)
	require.Contains(t, logs, "No count given")
}

func TestRank(t *testing.T) {
	out, logs, err := runWithLog(t, "rank",
		"Billy, 4, 5, 345",
		"Jose, 12, 6, 1",
		"broken line",
		"Volunteer, 3, 0, 7",
		"Jose again, 50, 1, 1",
	)
	require.NoError(t, err)

	volunteer := strings.Index(out, "Volunteer")
	jose := strings.Index(out, "Jose")
	billy := strings.Index(out, "Billy")
	require.Positive(t, volunteer)
	require.Less(t, volunteer, jose)
	require.Less(t, jose, billy)
	require.NotContains(t, out, "Jose again")
	require.NotContains(t, out, "broken")
	require.Contains(t, out, "max")

	require.Contains(t, logs, "Skipping invalid record")
	require.Contains(t, logs, "Skipping duplicate uid")
	require.NotContains(t, logs, "Parsed records")
}

func TestRank_VerboseLogsDebug(t *testing.T) {
	_, logs, err := runWithLog(t, "rank", "-v", "Billy, 4, 5, 345")
	require.NoError(t, err)
	require.Contains(t, logs, "Parsed records")
}

func TestRank_Limit(t *testing.T) {
	out, _, err := runWithLog(t, "rank", "--limit", "1", "Billy, 4, 5, 345", "Jose, 12, 6, 1")
	require.NoError(t, err)
	require.Contains(t, out, "Jose")
	require.NotContains(t, out, "Billy")
}

func TestRank_Strict(t *testing.T) {
	_, err := run(t, "rank", "--strict", "Billy, 4, 5, 345", "a,b")
	require.ErrorContains(t, err, "record 2")
}
