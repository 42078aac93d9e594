package profile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/roadster/pkg/config"
	"github.com/golangdaddy/roadster/pkg/road"
	"github.com/golangdaddy/roadster/pkg/trackplot"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()

	sum, err := Run(config.Default(), dir)
	require.NoError(t, err)
	assert.Equal(t, 1600, sum.Segments)
	assert.Equal(t, 320000.0, sum.Length)

	assert.FileExists(t, filepath.Join(dir, trackplot.CurveFile))
	assert.FileExists(t, filepath.Join(dir, trackplot.ElevationFile))
}

func TestRunInvalidTrack(t *testing.T) {
	cfg := config.Default()
	cfg.SegmentLength = 0

	_, err := Run(cfg, t.TempDir())
	assert.ErrorIs(t, err, road.ErrInvalidTrack)
}
