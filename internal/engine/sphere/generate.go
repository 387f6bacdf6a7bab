package sphere

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one interleaved sphere vertex: position, normal, color.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec3
}

// Generate tessellates a UV sphere centered at position.
//
// Rings run from the north pole (+90°) to the south pole (-90°) and columns
// from 0 to 360°, with the seam column duplicated. Positions include the
// center offset. The first and last ring emit one triangle per sector, so
// there are (stacks+1)*(sectors+1) vertices and 6*sectors*(stacks-1) indices.
func Generate(position mgl32.Vec3, radius float32, sectors, stacks int, color mgl32.Vec3) ([]Vertex, []uint32) {
	vertices := make([]Vertex, 0, (stacks+1)*(sectors+1))
	indices := make([]uint32, 0, IndexCount(sectors, stacks))

	sectorStep := 2 * math.Pi / float64(sectors)
	stackStep := math.Pi / float64(stacks)

	for i := 0; i <= stacks; i++ {
		stackAngle := math.Pi/2 - float64(i)*stackStep
		xy := float64(radius) * math.Cos(stackAngle)
		z := float64(radius) * math.Sin(stackAngle)

		for j := 0; j <= sectors; j++ {
			sectorAngle := float64(j) * sectorStep
			p := mgl32.Vec3{
				float32(xy * math.Cos(sectorAngle)),
				float32(xy * math.Sin(sectorAngle)),
				float32(z),
			}
			vertices = append(vertices, Vertex{
				Position: p.Add(position),
				Normal:   p.Normalize(),
				Color:    color,
			})
		}
	}

	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := k1 + uint32(sectors+1)

		for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				indices = append(indices, k1, k2, k1+1)
			}
			if i != stacks-1 {
				indices = append(indices, k1+1, k2, k2+1)
			}
		}
	}

	return vertices, indices
}

// VertexCount is the number of vertices Generate emits.
func VertexCount(sectors, stacks int) int {
	return (stacks + 1) * (sectors + 1)
}

// IndexCount is the number of indices Generate emits.
func IndexCount(sectors, stacks int) int {
	return 6 * sectors * (stacks - 1)
}
