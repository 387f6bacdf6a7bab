package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

// tgaHeader builds an 18-byte header for a 2x2 image.
func tgaHeader(imageType, bpp, descriptor byte) []byte {
	h := make([]byte, 18)
	h[2] = imageType
	h[12], h[14] = 2, 2
	h[16] = bpp
	h[17] = descriptor
	return h
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// bottom-up: first row in the file is the bottom row of the image
	data := tgaHeader(TGATypeUncompressed, 24, 0)
	data = append(data,
		0, 0, 255, 0, 255, 0, // bottom: red, green
		255, 0, 0, 255, 255, 255, // top: blue, white
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 1, color.RGBA{255, 0, 0, 255}},
		{1, 1, color.RGBA{0, 255, 0, 255}},
		{0, 0, color.RGBA{0, 0, 255, 255}},
		{1, 0, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDecodeTGARLE(t *testing.T) {
	data := tgaHeader(TGATypeRLE, 32, 0x20)
	data = append(data,
		0x83, 10, 20, 30, 40, // run of 4 identical pixels
	)
	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatal(err)
	}
	want := color.RGBA{R: 30, G: 20, B: 10, A: 40}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := img.RGBAAt(x, y); got != want {
				t.Errorf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short", []byte{0, 0, 2}},
		{"color mapped", append([]byte{0, 1}, make([]byte, 16)...)},
		{"grayscale type", tgaHeader(3, 8, 0)},
		{"16 bpp", tgaHeader(TGATypeUncompressed, 16, 0)},
		{"truncated pixels", append(tgaHeader(TGATypeUncompressed, 24, 0), 1, 2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecodeFileFormats(t *testing.T) {
	dir := t.TempDir()
	src := Solid(3, 2, color.RGBA{R: 10, G: 200, B: 30, A: 255})

	var pngBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, src); err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(&bmpBuf, src); err != nil {
		t.Fatal(err)
	}

	files := map[string][]byte{
		"face.png": pngBuf.Bytes(),
		"face.bmp": bmpBuf.Bytes(),
	}
	for name, data := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, data, 0644); err != nil {
				t.Fatal(err)
			}
			img, err := DecodeFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
				t.Errorf("size = %v", img.Bounds())
			}
			if got := img.RGBAAt(2, 1); got != (color.RGBA{10, 200, 30, 255}) {
				t.Errorf("pixel = %v", got)
			}
		})
	}
}

func TestDecodeFileMissing(t *testing.T) {
	if _, err := DecodeFile(filepath.Join(t.TempDir(), "nope.jpg")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestToRGBANormalizesOrigin(t *testing.T) {
	sub := Solid(4, 4, Magenta).SubImage(image.Rect(1, 1, 3, 3))
	out := ToRGBA(sub)
	if out.Rect.Min != (image.Point{}) || out.Rect.Dx() != 2 {
		t.Errorf("rect = %v", out.Rect)
	}
	if len(out.Pix) != 2*2*4 {
		t.Errorf("pix len = %d", len(out.Pix))
	}
}
