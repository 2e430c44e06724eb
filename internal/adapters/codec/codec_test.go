package codec_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lintsync/internal/adapters/codec"
	"go.trai.ch/lintsync/internal/core/domain"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestModuleConfiguration_KeepsTableOrder(t *testing.T) {
	t.Parallel()

	in := &domain.ModuleConfiguration{
		ModuleKey:                 "z",
		QualityProfilesByLanguage: map[string]string{"java": "qp-java", "js": "qp-js"},
		Settings:                  map[string]string{"sonar.exclusions": "**/gen/**"},
		Project: domain.NewProjectConfiguration(
			domain.ModulePath{Key: "z", Path: "dirZ"},
			domain.ModulePath{Key: "a", Path: "dirA"},
			domain.ModulePath{Key: "m", Path: ""},
		),
	}

	out, err := codec.UnmarshalModuleConfiguration(codec.MarshalModuleConfiguration(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestModuleConfiguration_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := &domain.ModuleConfiguration{
		QualityProfilesByLanguage: map[string]string{"a": "1", "b": "2", "c": "3", "d": "4"},
	}
	first := codec.MarshalModuleConfiguration(cfg)
	for range 10 {
		assert.Equal(t, first, codec.MarshalModuleConfiguration(cfg))
	}
}

func TestUnmarshal_SkipsUnknownFields(t *testing.T) {
	t.Parallel()

	b := codec.MarshalStorageStatus(domain.StorageStatus{StorageVersion: 2, ToolVersion: "1.0"})
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "future")
	b = protowire.AppendTag(b, 100, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, 7)

	s, err := codec.UnmarshalStorageStatus(b)
	require.NoError(t, err)
	assert.Equal(t, 2, s.StorageVersion)
	assert.Equal(t, "1.0", s.ToolVersion)
}

func TestUnmarshal_Truncated(t *testing.T) {
	t.Parallel()

	b := codec.MarshalServerIssue(&domain.ServerIssue{Key: "AX-1", RuleKey: "S1"})
	_, err := codec.UnmarshalServerIssue(b[:len(b)-1])
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDecodeFailed.Error())
}

func TestStorageStatus_Timestamp(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1_700_000_000_000)
	s, err := codec.UnmarshalStorageStatus(codec.MarshalStorageStatus(domain.StorageStatus{
		StorageVersion:  domain.StorageVersion,
		ClientUserAgent: "lintsync/dev",
		UpdateTimestamp: now,
	}))
	require.NoError(t, err)
	assert.True(t, s.UpdateTimestamp.Equal(now))
	assert.Equal(t, "lintsync/dev", s.ClientUserAgent)

	empty, err := codec.UnmarshalStorageStatus(nil)
	require.NoError(t, err)
	assert.True(t, empty.UpdateTimestamp.IsZero())
}

func TestServerIssue_TextRangePresence(t *testing.T) {
	t.Parallel()

	withRange := &domain.ServerIssue{
		Key:             "AX-1",
		PrimaryLocation: domain.Location{Message: "m", TextRange: &domain.TextRange{}},
		Flows: []domain.Flow{{Locations: []domain.Location{
			{Message: "one", TextRange: &domain.TextRange{StartLine: 1, EndLine: 2, EndLineOffset: 3}},
			{Message: "two"},
		}}},
	}

	got, err := codec.UnmarshalServerIssue(codec.MarshalServerIssue(withRange))
	require.NoError(t, err)
	require.NotNil(t, got.PrimaryLocation.TextRange, "an all-zero range is still a range")
	require.Len(t, got.Flows, 1)
	require.Len(t, got.Flows[0].Locations, 2)
	assert.Equal(t, 3, got.Flows[0].Locations[0].TextRange.EndLineOffset)
	assert.Nil(t, got.Flows[0].Locations[1].TextRange)

	withRange.PrimaryLocation.TextRange = nil
	got, err = codec.UnmarshalServerIssue(codec.MarshalServerIssue(withRange))
	require.NoError(t, err)
	assert.Nil(t, got.PrimaryLocation.TextRange)
}

func TestStoredIssue_Match(t *testing.T) {
	t.Parallel()

	b := codec.MarshalStoredIssue("mod:a.go", &domain.ServerIssue{Key: "AX-1"})

	key, issue, err := codec.UnmarshalStoredIssue(b, func(k string) bool { return k == "mod:b.go" })
	require.NoError(t, err)
	assert.Equal(t, "mod:a.go", key)
	assert.Nil(t, issue)

	key, issue, err = codec.UnmarshalStoredIssue(b, nil)
	require.NoError(t, err)
	assert.Equal(t, "mod:a.go", key)
	require.NotNil(t, issue)
	assert.Equal(t, "AX-1", issue.Key)
}

func TestDelimited(t *testing.T) {
	t.Parallel()

	var stream []byte
	stream = codec.AppendDelimited(stream, []byte("first"))
	stream = codec.AppendDelimited(stream, nil)
	stream = codec.AppendDelimited(stream, []byte("third"))

	r := bufio.NewReader(bytes.NewReader(stream))
	var got []string
	for {
		msg, err := codec.ReadDelimited(r)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, string(msg))
	}
	assert.Equal(t, []string{"first", "", "third"}, got)
}

func TestDelimited_TruncatedMessage(t *testing.T) {
	t.Parallel()

	stream := codec.AppendDelimited(nil, []byte("complete"))
	r := bufio.NewReader(bytes.NewReader(stream[:len(stream)-2]))

	_, err := codec.ReadDelimited(r)
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}
