package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoFaces is returned when a file parses but contains no usable face.
var ErrNoFaces = errors.New("no faces")

// ParseResult is the output of Parse.
type ParseResult struct {
	Meshes []MeshData
	Stats  Stats
}

// ParseFile parses the OBJ file at path.
func ParseFile(path string) (*ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	res, err := Parse(f)
	if err != nil {
		return res, fmt.Errorf("parse %s: %w", path, err)
	}
	return res, nil
}

type objParser struct {
	positions []mgl32.Vec3
	normals   []mgl32.Vec3
	texCoords []mgl32.Vec2

	meshes  []MeshData
	current MeshData
	stats   Stats
}

// Parse reads the v, vn, vt, f, o and g statements of an OBJ stream.
//
// Faces reference 1-based v[/vt][/vn] groups; negative indices count back
// from the end of the list read so far. Polygons are fan-triangulated.
// Out-of-range references fall back to the zero position, DefaultTexCoord or
// DefaultNormal. Each o/g statement starts a new mesh. Returns ErrNoFaces
// alongside the stats when nothing drawable was found.
func Parse(r io.Reader) (*ParseResult, error) {
	p := &objParser{current: MeshData{Name: "default"}}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		p.line(sc.Text())
	}
	p.flush()

	res := &ParseResult{Meshes: p.meshes, Stats: p.stats}
	res.Stats.Positions = len(p.positions)
	res.Stats.Normals = len(p.normals)
	res.Stats.TexCoords = len(p.texCoords)
	for _, m := range p.meshes {
		res.Stats.Vertices += len(m.Vertices)
		res.Stats.Indices += len(m.Indices)
	}

	if err := sc.Err(); err != nil {
		return res, err
	}
	if len(res.Meshes) == 0 {
		return res, ErrNoFaces
	}
	return res, nil
}

func (p *objParser) line(text string) {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "v":
		p.positions = append(p.positions, p.vec3(fields[1:]))
	case "vn":
		p.normals = append(p.normals, p.vec3(fields[1:]))
	case "vt":
		v := p.floats(fields[1:], 2)
		p.texCoords = append(p.texCoords, mgl32.Vec2{v[0], v[1]})
	case "f":
		p.face(fields[1:])
	case "o", "g":
		p.flush()
		name := strings.Join(fields[1:], " ")
		if name == "" {
			name = "default"
		}
		p.current = MeshData{Name: name}
	}
}

func (p *objParser) vec3(fields []string) mgl32.Vec3 {
	v := p.floats(fields, 3)
	return mgl32.Vec3{v[0], v[1], v[2]}
}

func (p *objParser) floats(fields []string, n int) []float32 {
	out := make([]float32, n)
	for i := 0; i < n && i < len(fields); i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			p.stats.BadNumbers++
			continue
		}
		out[i] = float32(f)
	}
	return out
}

func (p *objParser) face(groups []string) {
	if len(groups) < 3 {
		p.stats.Skipped++
		return
	}
	if len(groups) > 3 {
		p.stats.Polygons++
	}
	p.stats.Faces++

	corners := make([]Vertex, len(groups))
	for i, g := range groups {
		corners[i] = p.corner(g)
	}

	for i := 1; i+1 < len(corners); i++ {
		for _, v := range [3]Vertex{corners[0], corners[i], corners[i+1]} {
			p.current.Vertices = append(p.current.Vertices, v)
			p.current.Indices = append(p.current.Indices, uint32(len(p.current.Vertices)-1))
		}
	}
}

func (p *objParser) corner(group string) Vertex {
	parts := strings.Split(group, "/")
	v := Vertex{Normal: DefaultNormal, TexCoord: DefaultTexCoord}

	if i, ok := p.index(parts[0], len(p.positions)); ok {
		v.Position = p.positions[i]
	}
	if len(parts) > 1 {
		if i, ok := p.index(parts[1], len(p.texCoords)); ok {
			v.TexCoord = p.texCoords[i]
		}
	}
	if len(parts) > 2 {
		if i, ok := p.index(parts[2], len(p.normals)); ok {
			v.Normal = p.normals[i]
		}
	}
	return v
}

// index resolves a 1-based or negative OBJ reference into a list of length n.
func (p *objParser) index(s string, n int) (int, bool) {
	if s == "" {
		return 0, false
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		p.stats.BadNumbers++
		return 0, false
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += n
	default:
		return 0, false
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

func (p *objParser) flush() {
	if len(p.current.Indices) == 0 {
		return
	}
	p.current.Bounds = boundsOf(p.current.Vertices)
	p.meshes = append(p.meshes, p.current)
	p.current = MeshData{Name: p.current.Name}
}
