package render

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	fperrors "github.com/matzehuels/floorplan/pkg/errors"
)

const squareSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 40 20" width="40" height="20">
<rect x="0" y="0" width="40" height="20" style="fill:#ffffff"/>
<rect x="5" y="5" width="10" height="10" style="fill:#000000;stroke:#ff0000;stroke-width:1"/>
</svg>`

func withoutRSVG(t *testing.T) {
	t.Helper()
	orig := lookPath
	lookPath = func(string) (string, error) { return "", errors.New("not found") }
	t.Cleanup(func() { lookPath = orig })
}

func TestRasterize(t *testing.T) {
	data, err := Rasterize([]byte(squareSVG), 2)
	if err != nil {
		t.Fatalf("Rasterize() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 40 {
		t.Errorf("image size = %dx%d, want 80x40", b.Dx(), b.Dy())
	}
}

func TestToPNGFallback(t *testing.T) {
	withoutRSVG(t)

	if HasRSVG() {
		t.Fatal("HasRSVG() = true with stubbed lookPath")
	}
	data, err := ToPNG([]byte(squareSVG), 1)
	if err != nil {
		t.Fatalf("ToPNG() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("ToPNG() did not return PNG data")
	}
}

func TestToPNGInvalidScale(t *testing.T) {
	if _, err := ToPNG([]byte(squareSVG), 0); !fperrors.Is(err, fperrors.ErrCodeInvalidSpan) {
		t.Errorf("ToPNG(scale=0) error = %v, want INVALID_SPAN", err)
	}
}

func TestToPDFWithoutRSVG(t *testing.T) {
	withoutRSVG(t)

	if _, err := ToPDF([]byte(squareSVG)); !fperrors.Is(err, fperrors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want UNSUPPORTED", err)
	}
}
