package matio

import (
	"bytes"
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyonkit/braidrep/algebra"
	"github.com/anyonkit/braidrep/sparse"
)

func sampleMatrix(t *testing.T) *sparse.Matrix {
	t.Helper()
	m := sparse.New(3, algebra.QQ, nil)
	require.NoError(t, m.Set(0, 0, algebra.FromScalar(algebra.QQ.FromRat(big.NewRat(1, 2)))))
	require.NoError(t, m.Set(2, 1, algebra.FromScalar(algebra.QQ.FromRat(big.NewRat(-7, 3)))))
	require.NoError(t, m.Set(1, 2, algebra.FromPolynomial(algebra.Variable(algebra.QQ, 4))))
	return m
}

func TestRoundTrip(t *testing.T) {
	for _, comp := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		comp := comp
		t.Run(comp.name(), func(t *testing.T) {
			m := sampleMatrix(t)

			var buf bytes.Buffer
			require.NoError(t, Write(&buf, m, comp))

			got, err := Read(&buf, algebra.QQ)
			require.NoError(t, err)
			assert.Equal(t, m.Dim(), got.Dim())
			require.Equal(t, m.NNZ(), got.NNZ())
			for _, e := range m.Entries() {
				v, ok := got.At(e.Row, e.Col)
				require.True(t, ok, "entry (%d,%d) missing", e.Row, e.Col)
				assert.True(t, v.Equal(e.Value))
			}
		})
	}
}

func TestRoundTripCyclotomic(t *testing.T) {
	f := algebra.Cyclotomic(16)
	m := sparse.New(2, f, nil)
	require.NoError(t, m.Set(0, 1, algebra.FromScalar(f.Root(3))))
	require.NoError(t, m.Set(1, 0, algebra.FromScalar(f.Root(-1).Neg())))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m, CompressionZSTD))

	got, err := Read(&buf, f)
	require.NoError(t, err)
	v, ok := got.At(0, 1)
	require.True(t, ok)
	assert.True(t, v.Equal(algebra.FromScalar(f.Root(3))))
}

func TestReadErrors(t *testing.T) {
	t.Run("BadMagic", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, sampleMatrix(t), CompressionNone))
		data := buf.Bytes()
		binary.LittleEndian.PutUint32(data[0:], 0xdeadbeef)

		_, err := Read(bytes.NewReader(data), algebra.QQ)
		assert.ErrorIs(t, err, ErrInvalidMagic)
	})

	t.Run("BadVersion", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, sampleMatrix(t), CompressionNone))
		data := buf.Bytes()
		binary.LittleEndian.PutUint32(data[4:], 0x00990000)

		_, err := Read(bytes.NewReader(data), algebra.QQ)
		assert.ErrorIs(t, err, ErrInvalidVersion)
	})

	t.Run("BadCompression", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, sampleMatrix(t), CompressionNone))
		data := buf.Bytes()
		data[8] = 0x7f

		_, err := Read(bytes.NewReader(data), algebra.QQ)
		assert.ErrorIs(t, err, ErrInvalidCompression)
	})

	t.Run("EntryCountMismatch", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, sampleMatrix(t), CompressionNone))
		data := buf.Bytes()
		binary.LittleEndian.PutUint32(data[16:], 99)

		_, err := Read(bytes.NewReader(data), algebra.QQ)
		assert.ErrorIs(t, err, ErrEntryCount)
	})

	t.Run("Truncated", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, sampleMatrix(t), CompressionNone))
		data := buf.Bytes()

		_, err := Read(bytes.NewReader(data[:len(data)-4]), algebra.QQ)
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("FieldMismatch", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, sampleMatrix(t), CompressionNone))

		_, err := Read(&buf, algebra.Cyclotomic(16))
		var mismatch *algebra.FieldMismatchError
		assert.ErrorAs(t, err, &mismatch)
	})

	t.Run("UnknownCompressionOnWrite", func(t *testing.T) {
		var buf bytes.Buffer
		err := Write(&buf, sampleMatrix(t), Compression(9))
		assert.ErrorIs(t, err, ErrInvalidCompression)
	})
}

func (c Compression) name() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZSTD:
		return "ZSTD"
	default:
		return "Unknown"
	}
}
