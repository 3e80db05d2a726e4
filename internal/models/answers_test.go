package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGitMode(t *testing.T) {
	for _, s := range []string{"none", "public-only", "split"} {
		m, err := ParseGitMode(s)
		require.NoError(t, err)
		require.Equal(t, s, m.String())
	}

	_, err := ParseGitMode("private-only")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid git mode")
}

func TestGitMode_UsesRemote(t *testing.T) {
	require.False(t, GitModeNone.UsesRemote())
	require.True(t, GitModePublicOnly.UsesRemote())
	require.True(t, GitModeSplit.UsesRemote())
}

func TestAnswers_CDNRepo(t *testing.T) {
	tests := []struct {
		name     string
		answers  Answers
		expected string
	}{
		{"none uses project name", Answers{ProjectName: "demo", GitMode: GitModeNone}, "demo"},
		{"public-only uses project name", Answers{ProjectName: "demo", GitMode: GitModePublicOnly}, "demo"},
		{"split uses public repo", Answers{ProjectName: "demo", GitMode: GitModeSplit, PublicRepoName: "demo-prod"}, "demo-prod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.answers.CDNRepo())
		})
	}
}

func TestAnswers_Branch(t *testing.T) {
	require.Equal(t, "main", Answers{}.Branch())
	require.Equal(t, "release", Answers{CDNBranch: "release"}.Branch())
}

func TestAnswers_Validate(t *testing.T) {
	require.NoError(t, Answers{ProjectName: "demo", GitMode: GitModeNone}.Validate())
	require.NoError(t, Answers{ProjectName: "demo", GitMode: GitModeSplit, PublicRepoName: "demo-prod"}.Validate())

	require.Error(t, Answers{ProjectName: "  ", GitMode: GitModeNone}.Validate())
	require.Error(t, Answers{ProjectName: "demo", GitMode: "both"}.Validate())
	require.Error(t, Answers{ProjectName: "demo", GitMode: GitModeSplit, PublicRepoName: " "}.Validate())
}
