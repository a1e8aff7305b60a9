package infra

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 7 {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeImage_BoundsLargeImages(t *testing.T) {
	out, err := NormalizeImage(bytes.NewReader(pngBytes(t, 3000, 100)), "image/png", ".PNG")
	require.NoError(t, err)
	assert.Equal(t, "png", out.Ext)

	img, err := imaging.Decode(bytes.NewReader(out.Body))
	require.NoError(t, err)
	assert.Equal(t, 2560, img.Bounds().Dx())

	thumb, err := imaging.Decode(bytes.NewReader(out.Thumbnail))
	require.NoError(t, err)
	assert.Equal(t, 300, thumb.Bounds().Dx())
}

func TestNormalizeImage_KeepsSmallImageSize(t *testing.T) {
	out, err := NormalizeImage(bytes.NewReader(pngBytes(t, 640, 480)), "image/png", "png")
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(out.Body))
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestNormalizeImage_PassesThroughUnknownFormats(t *testing.T) {
	out, err := NormalizeImage(strings.NewReader("RIFF....WEBPVP8 "), "image/webp", "webp")
	require.NoError(t, err)
	assert.Equal(t, "RIFF....WEBPVP8 ", string(out.Body))
	assert.Nil(t, out.Thumbnail)
}

func TestNormalizeImage_RejectsNonImages(t *testing.T) {
	_, err := NormalizeImage(strings.NewReader("%PDF-1.7"), "application/pdf", "pdf")
	assert.ErrorIs(t, err, ErrNotAnImage)
}
