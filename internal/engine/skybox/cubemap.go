// Package skybox loads a cubemap and draws it behind the scene.
package skybox

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/aimlab/internal/engine/texture"
	"github.com/Faultbox/aimlab/internal/logger"
)

// Face order: +X, -X, +Y, -Y, +Z, -Z.
var FaceNames = [6]string{"right", "left", "top", "bottom", "front", "back"}

// Faces is the result of decoding six cubemap images. A nil entry is a face
// that failed to load.
type Faces [6]*image.RGBA

// Loaded returns the number of faces that decoded.
func (f Faces) Loaded() int {
	n := 0
	for _, img := range f {
		if img != nil {
			n++
		}
	}
	return n
}

// LoadFaces decodes the six face images. Failures are logged and leave the
// face nil. When every face fails, all six become a 1x1 magenta texel.
func LoadFaces(paths [6]string) (Faces, bool) {
	var faces Faces
	for i, p := range paths {
		img, err := texture.DecodeFile(p)
		if err != nil {
			logger.Warn("skybox face failed to load",
				zap.String("face", FaceNames[i]),
				zap.String("path", p),
				zap.Error(err))
			continue
		}
		logger.Debug("skybox face loaded",
			zap.String("face", FaceNames[i]),
			zap.Int("width", img.Rect.Dx()),
			zap.Int("height", img.Rect.Dy()))
		faces[i] = img
	}

	if faces.Loaded() > 0 {
		return faces, false
	}

	logger.Warn("no skybox faces loaded, using placeholder")
	placeholder := texture.Solid(1, 1, texture.Magenta)
	for i := range faces {
		faces[i] = placeholder
	}
	return faces, true
}

// Cubemap is a GL cube map texture.
type Cubemap struct {
	ID          uint32
	Placeholder bool
}

// LoadCubemap decodes the six faces and uploads them. Faces that failed to
// decode are left unset on the texture.
func LoadCubemap(paths [6]string) *Cubemap {
	faces, placeholder := LoadFaces(paths)
	return &Cubemap{ID: uploadCubemap(faces), Placeholder: placeholder}
}

func uploadCubemap(faces Faces) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, id)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	for i, img := range faces {
		if img == nil {
			continue
		}
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA,
			int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return id
}

// Bind binds the cubemap to texture unit 0.
func (c *Cubemap) Bind() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.ID)
}

// Release deletes the texture once.
func (c *Cubemap) Release() {
	if c == nil || c.ID == 0 {
		return
	}
	gl.DeleteTextures(1, &c.ID)
	c.ID = 0
}
