package images

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// jpegQuality favors fidelity over size: the conversion runs once per source
// image and the output is served forever after.
const jpegQuality = 90

// ErrHEICUnavailable marks HEIC decoding as absent. It is a feature flag,
// not a failure: callers skip HEIC sources and keep going.
var ErrHEICUnavailable = errors.New("images: no HEIC decoder installed")

// DecodeFunc decodes a HEIC stream into an image. Wired by the binary
// (e.g. goheif.Decode) so the engine itself never links the codec.
type DecodeFunc func(io.Reader) (image.Image, error)

// Transcoder converts HEIC images to JPEG siblings in a fixed output
// directory, caching results by output existence.
type Transcoder struct {
	outDir string
	decode DecodeFunc
}

// NewTranscoder creates a Transcoder writing into outDir. A nil decode
// function means HEIC support is unavailable.
func NewTranscoder(outDir string, decode DecodeFunc) *Transcoder {
	return &Transcoder{outDir: outDir, decode: decode}
}

// OutputDir returns the directory converted JPEGs are written to.
func (t *Transcoder) OutputDir() string {
	return t.outDir
}

// Contains reports whether path lies inside the converted-output directory.
// Comparison is on resolved absolute paths, not substrings, so separator
// style never matters.
func (t *Transcoder) Contains(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	out, err := filepath.Abs(t.outDir)
	if err != nil {
		return false
	}
	return abs == out || strings.HasPrefix(abs, out+string(filepath.Separator))
}

// Transcode converts the HEIC file at src to <basename>.jpg in the output
// directory and returns the output path. Idempotent: an existing output is
// returned without re-decoding. Returns ErrHEICUnavailable when no decoder
// is wired.
func (t *Transcoder) Transcode(src string) (string, error) {
	if t.decode == nil {
		return "", ErrHEICUnavailable
	}
	if err := os.MkdirAll(t.outDir, 0o755); err != nil {
		return "", fmt.Errorf("create converted dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	out := filepath.Join(t.outDir, base+".jpg")
	if fileExists(out) {
		return out, nil
	}

	f, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open heic: %w", err)
	}
	defer f.Close()

	img, err := t.decode(f)
	if err != nil {
		return "", fmt.Errorf("decode heic %s: %w", filepath.Base(src), err)
	}

	// JPEG has no alpha or non-RGB modes; normalize before encoding.
	if _, ok := img.(*image.RGBA); !ok {
		rgba := image.NewRGBA(img.Bounds())
		xdraw.Copy(rgba, img.Bounds().Min, img, img.Bounds(), xdraw.Src, nil)
		img = rgba
	}

	dst, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("create jpeg: %w", err)
	}
	if err := jpeg.Encode(dst, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		dst.Close()
		os.Remove(out)
		return "", fmt.Errorf("encode jpeg %s: %w", filepath.Base(out), err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(out)
		return "", fmt.Errorf("write jpeg: %w", err)
	}
	return out, nil
}
