package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/catalog"
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
)

func TestParseSelections(t *testing.T) {
	parsed, err := parseSelections([]string{
		"torso=longsleeve, white",
		"hair=bangs,hair/bangs/red.png",
		"cape=",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"torso": {"longsleeve", "white"},
		"hair":  {"bangs", "hair/bangs/red.png"},
		"cape":  nil,
	}, parsed)
}

func TestParseSelectionsRejectsMissingSlot(t *testing.T) {
	for _, value := range []string{"torso", "=white", " =white"} {
		_, err := parseSelections([]string{value})
		require.Error(t, err, value)
		assert.True(t, errors.IsInvalidArgument(err), value)
	}
}

func TestDescribeErrorIncludesReason(t *testing.T) {
	err := describeError("failed to resolve configuration",
		errors.ToGRPCError(catalog.UnsatisfiedDependency("shoulders", "torso")))

	assert.Contains(t, err.Error(), catalog.ReasonUnsatisfiedDependency)
	assert.Contains(t, err.Error(), "slot shoulders")
}

func TestDescribeErrorPlainStatus(t *testing.T) {
	err := describeError("failed to list options", status.Error(codes.Unavailable, "connection refused"))

	assert.Contains(t, err.Error(), "failed to list options")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestPreviewList(t *testing.T) {
	assert.Equal(t, "a, b", previewList([]string{"a", "b"}, 5))
	assert.Equal(t, "a, b (+2 more)", previewList([]string{"a", "b", "c", "d"}, 2))
}
