package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os/exec"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// lookPath is swapped out in tests to simulate a missing rsvg-convert.
var lookPath = exec.LookPath

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	if !HasRSVG() {
		return nil, errors.New(errors.ErrCodeUnsupported, "pdf export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin")
	}
	return rsvgConvert(svg, "pdf")
}

// ToPNG converts SVG bytes to PNG with the given scale factor. Scale of 2.0
// produces a 2x resolution image. rsvg-convert is used when available;
// otherwise the SVG is rasterized in-process.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidSpan, "png scale must be > 0, got %g", scale)
	}
	if HasRSVG() {
		return rsvgConvert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
	}
	return Rasterize(svg, scale)
}

// HasRSVG reports whether rsvg-convert is on PATH.
func HasRSVG() bool {
	_, err := lookPath("rsvg-convert")
	return err == nil
}

// Rasterize renders SVG bytes to PNG without external tools. Text and
// markers are not drawn.
func Rasterize(svg []byte, scale float64) ([]byte, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse svg")
	}

	w := int(icon.ViewBox.W * scale)
	h := int(icon.ViewBox.H * scale)
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "svg has an empty viewBox")
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// rsvgConvert shells out to rsvg-convert for format conversion.
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rsvg-convert: %s", errBuf.String())
	}
	return out.Bytes(), nil
}
