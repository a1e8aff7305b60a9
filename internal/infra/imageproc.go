package infra

import (
	"bytes"
	"errors"
	"image"
	"io"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	maxImageEdge   = 2560
	thumbnailWidth = 300
)

var ErrNotAnImage = errors.New("not an image")

// ProcessedImage is an upload ready for the blob store.
type ProcessedImage struct {
	Body        []byte
	Ext         string
	ContentType string
	Thumbnail   []byte // nil when the source could not be decoded
}

// NormalizeImage bounds the longest edge, applies EXIF orientation and
// renders a thumbnail. Image types the decoder does not know (webp, heic)
// pass through untouched under their original extension.
func NormalizeImage(r io.Reader, contentType, ext string) (*ProcessedImage, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))

	format, fmtErr := imaging.FormatFromExtension(ext)
	img, decErr := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if fmtErr != nil || decErr != nil {
		return &ProcessedImage{Body: raw, Ext: ext, ContentType: contentType}, nil
	}

	b := img.Bounds()
	if b.Dx() > maxImageEdge || b.Dy() > maxImageEdge {
		img = imaging.Fit(img, maxImageEdge, maxImageEdge, imaging.Lanczos)
	}

	body, err := encode(img, format)
	if err != nil {
		return nil, err
	}
	thumb, err := encode(imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos), format)
	if err != nil {
		return nil, err
	}
	return &ProcessedImage{Body: body, Ext: ext, ContentType: contentType, Thumbnail: thumb}, nil
}

func encode(img image.Image, format imaging.Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(85)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
