package history

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ErrDimensionMismatch is returned when a snapshot is restored into a
// raster of a different size.
var ErrDimensionMismatch = errors.New("history: dimension mismatch")

// Codec stores snapshot bytes.
type Codec interface {
	// Encode returns an independent encoding of pix.
	Encode(pix []byte) ([]byte, error)
	// Decode writes the decoded bytes into dst, which has the original length.
	Decode(dst, data []byte) error
	// Name identifies the codec in logs.
	Name() string
}

// Raw stores snapshots as plain copies.
var Raw Codec = rawCodec{}

type rawCodec struct{}

func (rawCodec) Encode(pix []byte) ([]byte, error) {
	out := make([]byte, len(pix))
	copy(out, pix)
	return out, nil
}

func (rawCodec) Decode(dst, data []byte) error {
	if len(dst) != len(data) {
		return ErrDimensionMismatch
	}
	copy(dst, data)
	return nil
}

func (rawCodec) Name() string { return "raw" }

// Zstd stores snapshots compressed with zstd. Painted rasters are mostly
// runs of identical pixels and compress well.
var Zstd Codec = zstdCodec{}

type zstdCodec struct{}

var (
	zstdOnce sync.Once
	zstdEnc  *zstd.Encoder
	zstdDec  *zstd.Decoder
	zstdErr  error
)

func zstdInit() error {
	zstdOnce.Do(func() {
		zstdEnc, zstdErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
		if zstdErr != nil {
			return
		}
		zstdDec, zstdErr = zstd.NewReader(nil)
	})
	return zstdErr
}

func (zstdCodec) Encode(pix []byte) ([]byte, error) {
	if err := zstdInit(); err != nil {
		return nil, fmt.Errorf("history: zstd init: %w", err)
	}
	return zstdEnc.EncodeAll(pix, make([]byte, 0, len(pix)/8)), nil
}

func (zstdCodec) Decode(dst, data []byte) error {
	if err := zstdInit(); err != nil {
		return fmt.Errorf("history: zstd init: %w", err)
	}
	out, err := zstdDec.DecodeAll(data, make([]byte, 0, len(dst)))
	if err != nil {
		return fmt.Errorf("history: zstd decode: %w", err)
	}
	if len(out) != len(dst) {
		return ErrDimensionMismatch
	}
	copy(dst, out)
	return nil
}

func (zstdCodec) Name() string { return "zstd" }

// Snapshot is an immutable copy of a width x height RGBA raster.
type Snapshot struct {
	width  int
	height int
	codec  Codec
	data   []byte
}

// Take encodes pix, which must be width*height*4 bytes long.
func Take(codec Codec, pix []byte, width, height int) (*Snapshot, error) {
	if len(pix) != width*height*4 {
		return nil, ErrDimensionMismatch
	}
	data, err := codec.Encode(pix)
	if err != nil {
		return nil, err
	}
	return &Snapshot{width: width, height: height, codec: codec, data: data}, nil
}

// Width returns the width of the captured raster.
func (s *Snapshot) Width() int { return s.width }

// Height returns the height of the captured raster.
func (s *Snapshot) Height() int { return s.height }

// Size returns the number of bytes the snapshot occupies.
func (s *Snapshot) Size() int { return len(s.data) }

// Restore writes the captured pixels into dst, a raster of the given size.
func (s *Snapshot) Restore(dst []byte, width, height int) error {
	if width != s.width || height != s.height || len(dst) != width*height*4 {
		return fmt.Errorf("%w: snapshot %dx%d, target %dx%d",
			ErrDimensionMismatch, s.width, s.height, width, height)
	}
	return s.codec.Decode(dst, s.data)
}
