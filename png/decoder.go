// Package png decodes provider composite images, implementing
// favscan.ImageDecoder.
package png

import (
	"bytes"
	"image"
	"image/png"

	"github.com/fwojciec/favscan"
)

// Ensure Decoder implements favscan.ImageDecoder at compile time.
var _ favscan.ImageDecoder = (*Decoder)(nil)

// Decoder decodes the provider's PNG composites.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses data as a PNG image. A corrupt or unsupported payload is
// reported as an EINVALID error; callers treat it like a fetch failure.
func (d *Decoder) Decode(data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, favscan.Errorf(favscan.EINVALID, "decode composite image: %v", err)
	}
	return img, nil
}
