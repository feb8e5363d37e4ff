package scan

import (
	"crypto/sha256"
	"encoding/hex"
	"image"
	"image/draw"
)

// NullHash is the placeholder emitted for a tile with no real favicon when
// suppressed tiles are surfaced instead of dropped.
const NullHash = "NULL"

// placeholderPrefix is the hash prefix of the provider's default icon: the
// image served for domains with no favicon. It is filtered like a blank
// tile so a single dominant "no favicon" group does not pollute the
// clusters.
const placeholderPrefix = "5f70bf18"

// hashLen is the number of hex characters kept from the tile digest.
const hashLen = 8

// HashTiles slices img into len(domains) equal horizontal bands, one per
// domain in request order, and returns each domain's tile hash. The last
// band absorbs any remainder of the integer division. A tile with no real
// favicon (pure white, or matching the provider's default icon) maps to
// NullHash when showNull is set and is omitted otherwise.
func HashTiles(img image.Image, domains []string, showNull bool) map[string]string {
	hashes := make(map[string]string, len(domains))
	height := img.Bounds().Dy()
	for i, domain := range domains {
		y0, y1 := tileBounds(height, len(domains), i)
		if hash := HashTile(img, y0, y1, showNull); hash != "" {
			hashes[domain] = hash
		}
	}
	return hashes
}

// HashTile hashes the horizontal band [y0, y1) of img. It returns the
// first 8 hex characters of the SHA-256 digest of the band's raw RGBA
// bytes, NullHash for a "no icon" tile when showNull is set, or the empty
// string when such a tile is suppressed.
func HashTile(img image.Image, y0, y1 int, showNull bool) string {
	band := bandRGBA(img, y0, y1)

	if isWhite(band) {
		return nullOrEmpty(showNull)
	}

	sum := sha256.Sum256(band.Pix)
	hash := hex.EncodeToString(sum[:])[:hashLen]
	if hash == placeholderPrefix {
		return nullOrEmpty(showNull)
	}
	return hash
}

// tileBounds returns the [y0, y1) range of the i-th of count equal bands
// of an image of the given height. Bands do not overlap and together cover
// the full height: the last band is clamped to height and absorbs the
// division remainder.
func tileBounds(height, count, i int) (y0, y1 int) {
	tileHeight := height / count
	y0 = i * tileHeight
	y1 = y0 + tileHeight
	if i == count-1 || y1 > height {
		y1 = height
	}
	return y0, y1
}

// bandRGBA copies the band [y0, y1) of img into a non-premultiplied
// 4-channel pixel buffer.
func bandRGBA(img image.Image, y0, y1 int) *image.NRGBA {
	b := img.Bounds()
	band := image.NewNRGBA(image.Rect(0, 0, b.Dx(), y1-y0))
	draw.Draw(band, band.Bounds(), img, image.Pt(b.Min.X, b.Min.Y+y0), draw.Src)
	return band
}

// isWhite reports whether every pixel is opaque pure white
// (R=G=B=255, A=255), the provider's rendering for "no favicon".
func isWhite(img *image.NRGBA) bool {
	for _, c := range img.Pix {
		if c != 0xff {
			return false
		}
	}
	return true
}

func nullOrEmpty(showNull bool) string {
	if showNull {
		return NullHash
	}
	return ""
}
