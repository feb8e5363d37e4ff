package mock

import (
	"image"

	"github.com/fwojciec/favscan"
)

var _ favscan.ImageDecoder = (*ImageDecoder)(nil)

// ImageDecoder is a mock implementation of favscan.ImageDecoder.
type ImageDecoder struct {
	DecodeFn func(data []byte) (image.Image, error)
}

func (d *ImageDecoder) Decode(data []byte) (image.Image, error) {
	return d.DecodeFn(data)
}
