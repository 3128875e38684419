package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"sync"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// maxLogoPixels bounds the longer side of an embedded logo.
const maxLogoPixels = 600

type assetKey struct {
	path    string
	gray    bool
	modTime int64
}

// assets decodes images once and keeps them as PNG bytes ready to embed.
type assets struct {
	mu    sync.Mutex
	cache map[assetKey][]byte
}

func newAssets() *assets {
	return &assets{cache: make(map[assetKey][]byte)}
}

// logo returns the image at path as PNG, optionally converted to grayscale
// and scaled down so the longer side is at most maxLogoPixels.
func (a *assets) logo(path string, gray bool) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	key := assetKey{path: path, gray: gray, modTime: info.ModTime().UnixNano()}

	a.mu.Lock()
	cached, ok := a.cache[key]
	a.mu.Unlock()

	if ok {
		return cached, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	img = flatten(shrink(img, maxLogoPixels))
	if gray {
		img = toGray(img)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", path, err)
	}

	a.mu.Lock()
	a.cache[key] = buf.Bytes()
	a.mu.Unlock()

	return buf.Bytes(), nil
}

func shrink(img image.Image, limit int) image.Image {
	b := img.Bounds()

	w, h := b.Dx(), b.Dy()
	if w <= limit && h <= limit {
		return img
	}

	if w >= h {
		h = h * limit / w
		w = limit
	} else {
		w = w * limit / h
		h = limit
	}

	dst := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	return dst
}

// flatten composes img onto white. The result is opaque 8-bit RGB, which
// every PDF reader can embed without a soft mask.
func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()

	flat := image.NewRGBA(b)
	draw.Draw(flat, b, &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(flat, b, img, b.Min, draw.Over)

	return flat
}

// toGray drops color, as thermal printers only print black.
func toGray(img image.Image) image.Image {
	b := img.Bounds()

	gray := image.NewGray(b)
	draw.Draw(gray, b, img, b.Min, draw.Src)

	return gray
}

// code128PNG renders value as a Code 128 barcode of the given pixel size.
func code128PNG(value string, width, height int) ([]byte, error) {
	raw, err := code128.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("encoding barcode: %w", err)
	}

	scaled, err := barcode.Scale(raw, width, height)
	if err != nil {
		return nil, fmt.Errorf("scaling barcode: %w", err)
	}

	// gofpdf only embeds 8-bit PNGs; Scale yields 16-bit gray.
	gray := image.NewGray(scaled.Bounds())
	draw.Draw(gray, gray.Bounds(), scaled, scaled.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("encoding barcode image: %w", err)
	}

	return buf.Bytes(), nil
}
