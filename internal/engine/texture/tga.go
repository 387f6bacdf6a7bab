package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	TGATypeUncompressed = 2
	TGATypeRLE          = 10
)

var errTGATruncated = errors.New("tga: truncated data")

// DecodeTGA decodes uncompressed or RLE true-color TGA data (24 or 32 bpp).
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < 18 {
		return nil, errTGATruncated
	}

	idLength := int(data[0])
	if data[1] != 0 {
		return nil, errors.New("tga: color-mapped images not supported")
	}
	imageType := data[2]
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}
	topDown := data[17]&0x20 != 0

	offset := 18 + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	w := &tgaWriter{
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		width:   width,
		height:  height,
		topDown: topDown,
	}
	r := &tgaReader{data: data[offset:], bpp: bpp / 8}

	total := width * height
	if imageType == TGATypeUncompressed {
		for w.n < total {
			c, ok := r.pixel()
			if !ok {
				return nil, errTGATruncated
			}
			w.put(c)
		}
		return w.img, nil
	}

	for w.n < total {
		header, ok := r.byte()
		if !ok {
			break
		}
		count := int(header&0x7f) + 1
		if header&0x80 != 0 {
			c, ok := r.pixel()
			if !ok {
				break
			}
			for i := 0; i < count && w.n < total; i++ {
				w.put(c)
			}
			continue
		}
		for i := 0; i < count && w.n < total; i++ {
			c, ok := r.pixel()
			if !ok {
				break
			}
			w.put(c)
		}
	}
	return w.img, nil
}

type tgaReader struct {
	data []byte
	pos  int
	bpp  int
}

func (r *tgaReader) byte() (byte, bool) {
	if r.pos >= len(r.data) {
		return 0, false
	}
	b := r.data[r.pos]
	r.pos++
	return b, true
}

// pixel reads one BGR(A) pixel.
func (r *tgaReader) pixel() (color.RGBA, bool) {
	if r.pos+r.bpp > len(r.data) {
		return color.RGBA{}, false
	}
	p := r.data[r.pos : r.pos+r.bpp]
	r.pos += r.bpp
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if r.bpp == 4 {
		c.A = p[3]
	}
	return c, true
}

type tgaWriter struct {
	img           *image.RGBA
	width, height int
	topDown       bool
	n             int
}

// put stores the next pixel in file order. Files are bottom-up unless the
// descriptor says otherwise.
func (w *tgaWriter) put(c color.RGBA) {
	x, y := w.n%w.width, w.n/w.width
	if !w.topDown {
		y = w.height - 1 - y
	}
	w.img.SetRGBA(x, y, c)
	w.n++
}
