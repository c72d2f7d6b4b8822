package matio

import "errors"

const (
	// MagicNumber identifies braid-generator matrix files (ASCII: "BRM1").
	MagicNumber = 0x42524d31
	// Version is the current file format version (v1.0.0).
	Version = 0x00010000
)

var (
	ErrInvalidMagic       = errors.New("matio: invalid magic number")
	ErrInvalidVersion     = errors.New("matio: unsupported version")
	ErrInvalidCompression = errors.New("matio: unknown compression type")
	ErrTruncated          = errors.New("matio: truncated payload block")
	ErrEntryCount         = errors.New("matio: payload entry count disagrees with header")
)

// Compression selects the payload block compression.
type Compression uint8

const (
	// CompressionNone stores the payload raw.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

// FileHeader is the fixed-size header at the start of every matrix file.
type FileHeader struct {
	Magic       uint32
	Version     uint32
	Compression uint8
	Padding     [3]byte
	Dim         uint32
	NNZ         uint32
}

// blockHeader precedes the payload block.
// Format: [UncompressedSize uint32][CompressedSize uint32][Data...]
// CompressedSize == 0 means the block is stored raw.
const blockHeaderSize = 8
