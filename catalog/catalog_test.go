package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meshmon/udbf/errs"
	"github.com/meshmon/udbf/format"
	"github.com/meshmon/udbf/internal/hash"
	"github.com/meshmon/udbf/internal/testfile"
	"github.com/meshmon/udbf/section"
)

func buildSourceDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	testfile.Write(t, dir, "acc_2024_08_01__00_00_00.dat", testfile.Spec{
		Vars: []section.Variable{
			{Name: "WEA10_ACC_Y", Unit: "m/s^2", Direction: format.DirectionInput, Type: format.TypeDouble},
			{Name: "WEA10_ACC_Z", Unit: "m/s^2", Direction: format.DirectionInputOutput, Type: format.TypeFloat},
			{Name: "RELAY_CMD", Unit: "", Direction: format.DirectionOutput, Type: format.TypeSignedInt16},
			{Name: "STATUS_OK", Unit: "", Direction: format.DirectionInput, Type: format.TypeBoolean},
			{Name: "###", Unit: "", Direction: format.DirectionInput, Type: format.TypeSignedInt32},
		},
		Rows: 10,
	})

	return dir
}

func TestBuilder_Build(t *testing.T) {
	dir := buildSourceDir(t)

	cfg := &Config{Sources: map[string]SourceConfig{
		"acc_front": {
			Directory: dir,
			Pattern:   "acc_*.dat",
			Groups:    []string{"wea10"},
		},
	}}

	b, err := NewBuilder(GlobLocator{})
	require.NoError(t, err)

	channels, err := b.Build(context.Background(), cfg)
	require.NoError(t, err)

	// Output-only, Boolean, and unsanitizable channels are all excluded.
	require.Len(t, channels, 2)

	ch := channels[0]
	require.Equal(t, "WEA10_ACC_Y", ch.Name)
	require.Equal(t, "WEA10_ACC_Y", ch.RawName)
	require.Equal(t, "m/s^2", ch.Unit)
	require.Equal(t, "acc_front", ch.SourceID)
	require.Equal(t, []string{"wea10"}, ch.Groups)
	require.Equal(t, format.ElementFloat64, ch.Element)
	require.Equal(t, 200*time.Millisecond, ch.SamplePeriod)
	require.Equal(t, hash.ID("acc_front", "WEA10_ACC_Y"), ch.ID)

	require.Equal(t, "WEA10_ACC_Z", channels[1].RawName)
	require.Equal(t, format.ElementFloat32, channels[1].Element)

	for _, ch := range channels {
		require.NotEqual(t, "RELAY_CMD", ch.RawName)
		require.NotEqual(t, "STATUS_OK", ch.RawName)
	}
}

func TestBuilder_Build_SkipsBadSources(t *testing.T) {
	dir := buildSourceDir(t)

	// One good source, one pointing nowhere, one at a corrupt file.
	corrupt := filepath.Join(t.TempDir(), "corrupt.dat")
	require.NoError(t, os.WriteFile(corrupt, []byte{0, 1, 2}, 0o644))

	cfg := &Config{Sources: map[string]SourceConfig{
		"good":    {Directory: dir, Pattern: "*.dat"},
		"missing": {Directory: dir, Pattern: "nothing_*.dat"},
		"corrupt": {Files: []string{corrupt}},
	}}

	b, err := NewBuilder(GlobLocator{})
	require.NoError(t, err)

	channels, err := b.Build(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, channels, 2)
	for _, ch := range channels {
		require.Equal(t, "good", ch.SourceID)
	}
}

func TestBuilder_Build_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b, err := NewBuilder(GlobLocator{})
	require.NoError(t, err)

	_, err = b.Build(ctx, &Config{Sources: map[string]SourceConfig{
		"any": {Directory: ".", Pattern: "*"},
	}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestGlobLocator(t *testing.T) {
	dir := t.TempDir()
	testfile.Write(t, dir, "b.dat", testfile.Spec{
		Vars: []section.Variable{{Name: "X", Type: format.TypeDouble}},
		Rows: 1,
	})
	testfile.Write(t, dir, "a.dat", testfile.Spec{
		Vars: []section.Variable{{Name: "X", Type: format.TypeDouble}},
		Rows: 1,
	})

	t.Run("Lexically first match", func(t *testing.T) {
		path, err := GlobLocator{}.FindFirst(context.Background(), SourceConfig{
			Directory: dir, Pattern: "*.dat",
		})
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "a.dat"), path)
	})

	t.Run("Override list wins", func(t *testing.T) {
		path, err := GlobLocator{}.FindFirst(context.Background(), SourceConfig{
			Directory: dir, Pattern: "*.dat",
			Files: []string{"/explicit/first.dat", "/explicit/second.dat"},
		})
		require.NoError(t, err)
		require.Equal(t, "/explicit/first.dat", path)
	})

	t.Run("No match", func(t *testing.T) {
		_, err := GlobLocator{}.FindFirst(context.Background(), SourceConfig{
			Directory: dir, Pattern: "absent_*.dat",
		})
		require.ErrorIs(t, err, errs.ErrNoMatchingFile)
	})
}
