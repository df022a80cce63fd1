// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	tests := map[string]Formats{".png": PNG, "JPG": JPEG, "jpeg": JPEG, ".gif": GIF, "tif": TIFF, ".tiff": TIFF, "bmp": BMP, ".WebP": WebP}
	for ext, want := range tests {
		f, err := ExtToFormat(ext)
		require.NoError(t, err, ext)
		assert.Equal(t, want, f, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".svg")
	assert.Error(t, err)
}

func testImage() *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, 4, 2))
	draw.Draw(im, im.Bounds(), image.White, image.Point{}, draw.Src)
	im.Set(0, 0, color.RGBA{255, 0, 0, 255})
	im.Set(3, 1, color.RGBA{0, 128, 255, 255})
	return im
}

func TestWriteRead(t *testing.T) {
	for _, f := range []Formats{PNG, TIFF, BMP} {
		var b bytes.Buffer
		require.NoError(t, Write(testImage(), &b, f), f.String())
		im, rf, err := Read(&b)
		require.NoError(t, err, f.String())
		assert.Equal(t, f, rf)
		assert.Equal(t, image.Rect(0, 0, 4, 2), im.Bounds())
		r, g, b2, _ := im.At(3, 1).RGBA()
		assert.Equal(t, [3]uint32{0, 128 * 0x101, 0xffff}, [3]uint32{r, g, b2}, f.String())
	}
	assert.Error(t, Write(testImage(), &bytes.Buffer{}, WebP))
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.png")
	require.NoError(t, Save(testImage(), fn))
	im, f, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	r, _, _, a := im.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)

	assert.Error(t, Save(testImage(), filepath.Join(t.TempDir(), "test.svg")))
	_, _, err = Open(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
