package report_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tillbook/internal/report"
)

func TestDirStorage(t *testing.T) {
	root := t.TempDir()
	s := report.NewDirStorage(root)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "reports/a-1.csv", bytes.NewBufferString("hello")))

	_, err := os.Stat(filepath.Join(root, "reports", "a-1.csv"))
	require.NoError(t, err)

	rc, err := s.Open(ctx, "reports/a-1.csv")
	require.NoError(t, err)

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "hello", string(b))

	t.Run("refuses overwrite", func(t *testing.T) {
		assert.Error(t, s.Save(ctx, "reports/a-1.csv", bytes.NewBufferString("again")))
	})

	t.Run("refuses escaping root", func(t *testing.T) {
		assert.Error(t, s.Save(ctx, "../outside.csv", bytes.NewBufferString("x")))
		_, err := s.Open(ctx, "/etc/passwd")
		assert.Error(t, err)
	})

	require.NoError(t, s.Remove(ctx, "reports/a-1.csv"))
	require.NoError(t, s.Remove(ctx, "reports/a-1.csv"))

	_, err = s.Open(ctx, "reports/a-1.csv")
	assert.Error(t, err)
}
