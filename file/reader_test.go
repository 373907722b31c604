package file

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meshmon/udbf/endian"
	"github.com/meshmon/udbf/errs"
	"github.com/meshmon/udbf/format"
	"github.com/meshmon/udbf/internal/testfile"
	"github.com/meshmon/udbf/section"
)

func testVars() []section.Variable {
	return []section.Variable{
		{Name: "WEA10_ACC_Y", Unit: "m/s^2", Direction: format.DirectionInput, Type: format.TypeDouble},
		{Name: "WEA10_ACC_Z", Unit: "m/s^2", Direction: format.DirectionInput, Type: format.TypeFloat},
		{Name: "COUNT", Unit: "", Direction: format.DirectionInput, Type: format.TypeSignedInt16},
	}
}

func TestOpen_PlainFile(t *testing.T) {
	dir := t.TempDir()
	path := testfile.Write(t, dir, "rec.dat", testfile.Spec{Vars: testVars(), Rows: 50})

	r, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 50, r.SampleCount())
	require.Equal(t, 200*time.Millisecond, r.SamplePeriod())
	require.Len(t, r.Variables(), 3)
	require.Equal(t, "WEA10_ACC_Y", r.Variables()[0].Name)
}

func TestOpen_ArchivedFiles(t *testing.T) {
	dir := t.TempDir()
	spec := testfile.Spec{Vars: testVars(), Rows: 20}

	for _, name := range []string{"rec.dat.gz", "rec.dat.lz4", "rec.dat.s2", "rec.dat.zst"} {
		t.Run(name, func(t *testing.T) {
			path := testfile.Write(t, dir, name, spec)

			r, err := Open(path)
			require.NoError(t, err)
			require.Equal(t, 20, r.SampleCount())

			raw, err := r.ChannelBytes("WEA10_ACC_Y")
			require.NoError(t, err)
			require.Len(t, raw, 20*8)
		})
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(t.TempDir() + "/absent.dat")
	require.Error(t, err)
}

func TestReader_ChannelBytes(t *testing.T) {
	dir := t.TempDir()
	path := testfile.Write(t, dir, "rec.dat", testfile.Spec{Vars: testVars(), Rows: 30})

	r, err := Open(path)
	require.NoError(t, err)

	raw, err := r.ChannelBytes("WEA10_ACC_Y")
	require.NoError(t, err)
	require.Len(t, raw, 30*8)

	engine := endian.Little()
	for row := 0; row < 30; row++ {
		got := math.Float64frombits(engine.Uint64(raw[row*8:]))
		require.Equal(t, testfile.Value(row, 0), got, "row %d", row)
	}

	// Second channel comes from a different column of the same rows.
	raw, err = r.ChannelBytes("WEA10_ACC_Z")
	require.NoError(t, err)
	require.Len(t, raw, 30*4)
	for row := 0; row < 30; row++ {
		got := float64(math.Float32frombits(engine.Uint32(raw[row*4:])))
		require.Equal(t, testfile.Value(row, 1), got, "row %d", row)
	}
}

func TestReader_ChannelBytes_ExactNameMatch(t *testing.T) {
	dir := t.TempDir()
	path := testfile.Write(t, dir, "rec.dat", testfile.Spec{Vars: testVars(), Rows: 5})

	r, err := Open(path)
	require.NoError(t, err)

	_, err = r.ChannelBytes("wea10_acc_y")
	require.ErrorIs(t, err, errs.ErrChannelNotFound)

	_, err = r.ChannelBytes("NOPE")
	require.ErrorIs(t, err, errs.ErrChannelNotFound)
}

func TestReader_ChannelBytes_UnspecifiedType(t *testing.T) {
	vars := append(testVars(), section.Variable{
		Name: "FLAG", Direction: format.DirectionInput, Type: format.TypeBoolean,
	})

	dir := t.TempDir()
	path := testfile.Write(t, dir, "rec.dat", testfile.Spec{Vars: vars, Rows: 5})

	r, err := Open(path)
	require.NoError(t, err)

	_, err = r.ChannelBytes("FLAG")
	require.ErrorIs(t, err, errs.ErrUnspecifiedType)
}

func TestReader_SampleCount_Truncated(t *testing.T) {
	// Row size: 8 (time) + 8 + 4 + 2 = 22 bytes. Chopping 30 bytes removes
	// one full row plus part of another; the partial row must not count.
	dir := t.TempDir()
	path := testfile.Write(t, dir, "rec.dat", testfile.Spec{
		Vars: testVars(), Rows: 40, TruncateBytes: 30,
	})

	r, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 38, r.SampleCount())

	raw, err := r.ChannelBytes("WEA10_ACC_Y")
	require.NoError(t, err)
	require.Len(t, raw, 38*8)
}

func TestReader_SampleCount_EmptyPayload(t *testing.T) {
	dir := t.TempDir()
	path := testfile.Write(t, dir, "rec.dat", testfile.Spec{Vars: testVars(), Rows: 0})

	r, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 0, r.SampleCount())

	raw, err := r.ChannelBytes("COUNT")
	require.NoError(t, err)
	require.Empty(t, raw)
}

func TestReader_Checksum(t *testing.T) {
	dir := t.TempDir()

	t.Run("Valid", func(t *testing.T) {
		path := testfile.Write(t, dir, "ok.dat", testfile.Spec{
			Vars: testVars(), Rows: 10, Checksum: true,
		})

		r, err := Open(path)
		require.NoError(t, err)
		require.Equal(t, 10, r.SampleCount())
		require.NoError(t, r.VerifyChecksum())
	})

	t.Run("Corrupted payload", func(t *testing.T) {
		data := testfile.Build(testfile.Spec{Vars: testVars(), Rows: 10, Checksum: true})
		data[len(data)-10] ^= 0xFF

		r, err := FromBytes("corrupt.dat", data)
		require.NoError(t, err)
		require.ErrorIs(t, r.VerifyChecksum(), errs.ErrChecksumMismatch)
	})

	t.Run("Not declared", func(t *testing.T) {
		path := testfile.Write(t, dir, "plain.dat", testfile.Spec{Vars: testVars(), Rows: 10})

		r, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, r.VerifyChecksum())
	})
}

func TestReader_SampleTime(t *testing.T) {
	dir := t.TempDir()
	path := testfile.Write(t, dir, "rec.dat", testfile.Spec{Vars: testVars(), Rows: 10})

	r, err := Open(path)
	require.NoError(t, err)

	start := r.StartTime()
	require.Equal(t, start, r.SampleTime(0))
	require.Equal(t, start.Add(time.Second), r.SampleTime(5))
}

func TestFromBytes_HeaderErrors(t *testing.T) {
	_, err := FromBytes("short.dat", []byte{0, 1})
	require.ErrorIs(t, err, errs.ErrHeaderTruncated)
}

func TestDecodeValue(t *testing.T) {
	engine := endian.Little()

	b := engine.AppendUint64(nil, math.Float64bits(-2.5))
	require.Equal(t, -2.5, DecodeValue(b, format.ElementFloat64, engine))

	neg := int16(-7)
	b = engine.AppendUint16(nil, uint16(neg))
	require.Equal(t, -7.0, DecodeValue(b, format.ElementInt16, engine))

	b = []byte{0xFE}
	require.Equal(t, -2.0, DecodeValue(b, format.ElementInt8, engine))
	require.Equal(t, 254.0, DecodeValue(b, format.ElementUint8, engine))

	require.True(t, math.IsNaN(DecodeValue(b, format.ElementUnspecified, engine)))
}
