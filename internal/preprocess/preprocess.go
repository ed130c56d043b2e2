// Package preprocess normalizes uploaded images into the canonical form the
// feature extractors expect: RGB pixel order and, for classification, a fixed
// square resolution produced by aspect-preserving center-cropping.
package preprocess

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/NitinV84/couch-matcher/internal/domain"
	"github.com/disintegration/imaging"
)

// ClassifierSize is the square input resolution of the pretrained classifier.
const ClassifierSize = 224

const tempFilePrefix = "couch_matcher_"

func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image %s, %v, %w", path, err, domain.ErrBadImage)
	}

	return img, nil
}

func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image bytes, %v, %w", err, domain.ErrBadImage)
	}

	return img, nil
}

// FitSquare scales and center-crops to size x size ("fit" semantics, no
// stretching) using Lanczos resampling. The result is in RGBA order with the
// alpha channel preserved.
func FitSquare(img image.Image, size int) *image.NRGBA {
	return imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)
}

func PNGBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png, %w", err)
	}

	return buf.Bytes(), nil
}

// SaveTemp spools an uploaded image to a temporary file and returns its path.
// The original extension is kept so the object key derived from the path
// stays recognizable. The caller owns the file and must remove it on every
// exit path.
func SaveTemp(r io.Reader, ext string) (string, error) {
	f, err := os.CreateTemp("", tempFilePrefix+"*"+ext)
	if err != nil {
		return "", fmt.Errorf("creating temp image file, %w", err)
	}

	_, err = io.Copy(f, r)
	closeErr := f.Close()
	if err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("spooling upload to %s, %w", f.Name(), err)
	}
	if closeErr != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("closing temp image file, %w", closeErr)
	}

	return f.Name(), nil
}
