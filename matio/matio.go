// Package matio persists assembled braid-generator matrices: a small binary
// header, then one compressed block holding the JSON-encoded sparse entries
// in their transferable algebra encoding.
package matio

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/anyonkit/braidrep/algebra"
	"github.com/anyonkit/braidrep/sparse"
)

var byteOrder = binary.LittleEndian

// payload is the JSON document stored in the compressed block.
type payload struct {
	Field   string         `json:"field"`
	Entries []payloadEntry `json:"entries"`
}

type payloadEntry struct {
	Row   int             `json:"row"`
	Col   int             `json:"col"`
	Value algebra.Encoded `json:"value"`
}

// ZSTD encoder/decoder pools for efficiency.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Write serializes the matrix to w using the given payload compression.
func Write(w io.Writer, m *sparse.Matrix, comp Compression) error {
	if comp > CompressionZSTD {
		return ErrInvalidCompression
	}

	entries := m.Entries()
	doc := payload{
		Field:   m.Field().Name(),
		Entries: make([]payloadEntry, len(entries)),
	}
	for i, e := range entries {
		doc.Entries[i] = payloadEntry{Row: e.Row, Col: e.Col, Value: algebra.Flatten(e.Value)}
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	header := FileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: uint8(comp),
		Dim:         uint32(m.Dim()),
		NNZ:         uint32(len(entries)),
	}
	if err := binary.Write(w, byteOrder, header); err != nil {
		return err
	}

	block, err := compressBlock(raw, comp)
	if err != nil {
		return err
	}
	_, err = w.Write(block)
	return err
}

// Read deserializes a matrix written by Write. The caller supplies the scalar
// field the entries are decoded into; a file written over a different field
// fails with algebra.FieldMismatchError.
func Read(r io.Reader, field algebra.Field) (*sparse.Matrix, error) {
	var header FileHeader
	if err := binary.Read(r, byteOrder, &header); err != nil {
		return nil, err
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}
	if Compression(header.Compression) > CompressionZSTD {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCompression, header.Compression)
	}

	raw, err := readBlock(r, Compression(header.Compression))
	if err != nil {
		return nil, err
	}
	var doc payload
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if len(doc.Entries) != int(header.NNZ) {
		return nil, fmt.Errorf("%w: header %d, payload %d", ErrEntryCount, header.NNZ, len(doc.Entries))
	}
	if doc.Field != field.Name() {
		return nil, &algebra.FieldMismatchError{Want: field.Name(), Got: doc.Field}
	}

	m := sparse.New(int(header.Dim), field, nil)
	for _, e := range doc.Entries {
		v, err := algebra.Unflatten(field, e.Value)
		if err != nil {
			return nil, err
		}
		if err := m.Set(e.Row, e.Col, v); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// compressBlock compresses the payload and prepends the block header. If
// compression does not help (ratio > 0.9), the payload is stored raw.
func compressBlock(data []byte, comp Compression) ([]byte, error) {
	var compressed []byte
	switch comp {
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(data))
		buf := make([]byte, bound)
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			compressed = buf[:n]
		}
	case CompressionZSTD:
		enc := getZstdEncoder()
		defer zstdEncoderPool.Put(enc)
		compressed = enc.EncodeAll(data, nil)
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		result := make([]byte, blockHeaderSize+len(data))
		byteOrder.PutUint32(result[0:], uint32(len(data)))
		byteOrder.PutUint32(result[4:], 0)
		copy(result[blockHeaderSize:], data)
		return result, nil
	}

	result := make([]byte, blockHeaderSize+len(compressed))
	byteOrder.PutUint32(result[0:], uint32(len(data)))
	byteOrder.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[blockHeaderSize:], compressed)
	return result, nil
}

// readBlock reads and decompresses the payload block.
func readBlock(r io.Reader, comp Compression) ([]byte, error) {
	var hdr [blockHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	uncompressedSize := byteOrder.Uint32(hdr[0:])
	compressedSize := byteOrder.Uint32(hdr[4:])

	if compressedSize == 0 {
		raw := make([]byte, uncompressedSize)
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		return raw, nil
	}

	compressed := make([]byte, compressedSize)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	switch comp {
	case CompressionLZ4:
		result := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(compressed, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, fmt.Errorf("matio: decompressed size mismatch: %d != %d", n, uncompressedSize)
		}
		return result, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		decoded, err := dec.DecodeAll(compressed, make([]byte, 0, uncompressedSize))
		if err != nil {
			return nil, err
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, fmt.Errorf("matio: decompressed size mismatch: %d != %d", len(decoded), uncompressedSize)
		}
		return decoded, nil
	default:
		return nil, ErrInvalidCompression
	}
}
