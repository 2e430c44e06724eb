package issues_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/lintsync/internal/engine/issues"
)

func record() *domain.ServerIssue {
	return &domain.ServerIssue{
		Key:            "AX-1",
		ModuleKey:      "modA",
		Path:           "src/Main.java",
		RuleRepository: "java",
		RuleKey:        "S1234",
		Severity:       "MAJOR",
		Type:           "BUG",
		AssigneeLogin:  "alice",
		LineHash:       "abc123",
		CreationDate:   1_500_000_000_123,
		Resolution:     "FIXED",
		PrimaryLocation: domain.Location{
			Path:    "src/Main.java",
			Message: "Remove this",
			TextRange: &domain.TextRange{
				StartLine: 3, StartLineOffset: 4, EndLine: 5, EndLineOffset: 6,
			},
		},
	}
}

func TestToDomainIssue_MapsScalars(t *testing.T) {
	t.Parallel()

	got := issues.ToDomainIssue(record(), "/ws/src/Main.java")

	assert.Equal(t, "AX-1", got.Key)
	assert.Equal(t, "java:S1234", got.RuleKey)
	assert.Equal(t, "MAJOR", got.Severity)
	assert.Equal(t, "BUG", got.Type)
	assert.Equal(t, "alice", got.AssigneeLogin)
	assert.Equal(t, "abc123", got.LineHash)
	assert.Equal(t, "Remove this", got.Message)
	assert.Equal(t, "/ws/src/Main.java", got.FilePath)
	assert.Equal(t, "FIXED", got.Resolution)
	assert.True(t, got.CreationDate.Equal(time.UnixMilli(1_500_000_000_123)))
	assert.Empty(t, got.Flows)
}

func TestToDomainIssue_TextRange(t *testing.T) {
	t.Parallel()

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		rec := record()
		got := issues.ToDomainIssue(rec, "f")
		require.NotNil(t, got.TextRange)
		assert.Equal(t, domain.TextRange{StartLine: 3, StartLineOffset: 4, EndLine: 5, EndLineOffset: 6}, *got.TextRange)

		// The result does not alias the record.
		rec.PrimaryLocation.TextRange.StartLine = 99
		assert.Equal(t, 3, got.TextRange.StartLine)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		rec := record()
		rec.PrimaryLocation.TextRange = nil
		assert.Nil(t, issues.ToDomainIssue(rec, "f").TextRange)
	})
}

func TestToDomainIssue_FlowsKeepOrder(t *testing.T) {
	t.Parallel()

	rec := record()
	rec.Flows = []domain.Flow{
		{Locations: []domain.Location{
			{Path: "a", Message: "first", TextRange: &domain.TextRange{StartLine: 1}},
			{Path: "b", Message: "second"},
		}},
		{Locations: []domain.Location{
			{Path: "c", Message: "third"},
		}},
	}

	got := issues.ToDomainIssue(rec, "f")

	require.Len(t, got.Flows, 2)
	require.Len(t, got.Flows[0].Locations, 2)
	assert.Equal(t, "first", got.Flows[0].Locations[0].Message)
	assert.Equal(t, "second", got.Flows[0].Locations[1].Message)
	assert.Nil(t, got.Flows[0].Locations[1].TextRange)
	assert.Equal(t, 1, got.Flows[0].Locations[0].TextRange.StartLine)
	assert.Equal(t, "third", got.Flows[1].Locations[0].Message)
}

func TestToDomainIssues(t *testing.T) {
	t.Parallel()

	a, b := record(), record()
	b.Key = "AX-2"

	got := issues.ToDomainIssues([]*domain.ServerIssue{a, b}, "f")
	require.Len(t, got, 2)
	assert.Equal(t, "AX-1", got[0].Key)
	assert.Equal(t, "AX-2", got[1].Key)
	assert.Empty(t, issues.ToDomainIssues(nil, "f"))
}
