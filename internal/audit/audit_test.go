// internal/audit/audit_test.go
package audit

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")
	trail := NewTrail(path)

	require.NoError(t, trail.Record(7, "lock", "success"))
	require.NoError(t, trail.Record(7, "unlock", "success"))
	require.NoError(t, trail.Record(9, "delete_user", "failed"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)

	lineRe := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] User ID: \d+ \| Action: \w+ \| Status: \w+$`)
	for _, line := range lines {
		assert.Regexp(t, lineRe, line)
	}
	assert.Equal(t, "User ID: 7 | Action: lock | Status: success", lines[0][22:])
	assert.Contains(t, lines[2], "User ID: 9 | Action: delete_user | Status: failed")
}

func TestTrailAppendsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")

	require.NoError(t, NewTrail(path).Record(1, "lock", "success"))
	require.NoError(t, NewTrail(path).Record(2, "unlock", "success"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}
