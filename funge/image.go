package funge

import (
	"bytes"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Field images are CBOR snapshots of a playfield: the grid and nothing
// else. They carry no pointer or stack state, so a saved image is a
// program, not a paused execution.

// ImageMagic identifies a befuddle field image file.
var ImageMagic = [4]byte{'B', 'F', 'D', 'I'}

// Image format version
// v1: initial format
const ImageVersion = 1

type fieldImage struct {
	Version int     `cbor:"version"`
	Width   int     `cbor:"width"`
	Height  int     `cbor:"height"`
	Cells   []int32 `cbor:"cells"`
}

// cborEncMode uses canonical mode for deterministic encoding.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("funge: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalField serializes a field to image bytes.
func MarshalField(f *Field) ([]byte, error) {
	img := fieldImage{
		Version: ImageVersion,
		Width:   f.width,
		Height:  f.height,
		Cells:   make([]int32, len(f.cells)),
	}
	for i, c := range f.cells {
		img.Cells[i] = int32(c)
	}

	body, err := cborEncMode.Marshal(&img)
	if err != nil {
		return nil, fmt.Errorf("funge: marshal field image: %w", err)
	}

	out := make([]byte, 0, len(ImageMagic)+len(body))
	out = append(out, ImageMagic[:]...)
	out = append(out, body...)
	return out, nil
}

// IsFieldImage reports whether data starts with the field image magic.
func IsFieldImage(data []byte) bool {
	return len(data) >= len(ImageMagic) && bytes.Equal(data[:len(ImageMagic)], ImageMagic[:])
}

// UnmarshalField deserializes a field from image bytes.
func UnmarshalField(data []byte) (*Field, error) {
	if !IsFieldImage(data) {
		return nil, fmt.Errorf("funge: not a field image")
	}

	var img fieldImage
	if err := cbor.Unmarshal(data[len(ImageMagic):], &img); err != nil {
		return nil, fmt.Errorf("funge: unmarshal field image: %w", err)
	}
	if img.Version != ImageVersion {
		return nil, fmt.Errorf("funge: unsupported field image version %d", img.Version)
	}
	if img.Width <= 0 || img.Height <= 0 || len(img.Cells) != img.Width*img.Height {
		return nil, fmt.Errorf("funge: malformed field image: %dx%d with %d cells",
			img.Width, img.Height, len(img.Cells))
	}

	f := NewField(img.Width, img.Height)
	for i, v := range img.Cells {
		f.cells[i] = Cell(v)
	}
	return f, nil
}
