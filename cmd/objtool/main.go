// objtool inspects OBJ models and checks sphere and ray math offline.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/aimlab/internal/config"
	"github.com/Faultbox/aimlab/internal/engine/model"
	"github.com/Faultbox/aimlab/internal/engine/picking"
	"github.com/Faultbox/aimlab/internal/engine/sphere"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string, out io.Writer) error {
	switch command {
	case "info":
		return cmdInfo(args, out)
	case "sphere":
		return cmdSphere(args, out)
	case "hit":
		return cmdHit(args, out)
	case "config":
		return cmdConfig(args, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `objtool - aim lab asset and math utility

Usage:
  objtool <command> [options]

Commands:
  info <file.obj>                      Show vertex, face and mesh statistics
  sphere [-sectors N] [-stacks N]      Show UV sphere vertex and index counts
  hit -origin x,y,z -dir x,y,z -center x,y,z -radius r
                                       Intersect a ray with a sphere
  config [path]                        Write the default config file

Examples:
  objtool info Model/M9.obj
  objtool sphere -sectors 36 -stacks 18
  objtool hit -origin 0,0,3 -dir 0,0,-1 -center 0,0,-2 -radius 0.5`)
}

func cmdInfo(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errors.New("usage: objtool info <file.obj>")
	}

	res, err := model.ParseFile(args[0])
	if err != nil && !errors.Is(err, model.ErrNoFaces) {
		return err
	}

	st := res.Stats
	fmt.Fprintf(out, "File:       %s\n", args[0])
	fmt.Fprintf(out, "Positions:  %d\n", st.Positions)
	fmt.Fprintf(out, "Normals:    %d\n", st.Normals)
	fmt.Fprintf(out, "TexCoords:  %d\n", st.TexCoords)
	fmt.Fprintf(out, "Faces:      %d (%d triangulated, %d skipped)\n", st.Faces, st.Polygons, st.Skipped)
	fmt.Fprintf(out, "Vertices:   %d\n", st.Vertices)
	fmt.Fprintf(out, "Indices:    %d\n", st.Indices)
	if st.BadNumbers > 0 {
		fmt.Fprintf(out, "Bad values: %d\n", st.BadNumbers)
	}
	fmt.Fprintf(out, "Meshes:     %d\n", len(res.Meshes))
	for _, m := range res.Meshes {
		size := m.Bounds.Size()
		fmt.Fprintf(out, "  %-20s %6d tris  size %.3f x %.3f x %.3f\n",
			m.Name, m.Triangles(), size[0], size[1], size[2])
	}
	return nil
}

func cmdSphere(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("sphere", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	sectors := fs.Int("sectors", sphere.DefaultSectors, "Longitude divisions")
	stacks := fs.Int("stacks", sphere.DefaultStacks, "Latitude divisions")
	radius := fs.Float64("radius", 1, "Sphere radius")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := sphere.New(mgl32.Vec3{}, float32(*radius), *sectors, *stacks)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Sectors:   %d\n", s.Sectors())
	fmt.Fprintf(out, "Stacks:    %d\n", s.Stacks())
	fmt.Fprintf(out, "Vertices:  %d\n", s.VertexCount())
	fmt.Fprintf(out, "Indices:   %d\n", s.IndexCount())
	fmt.Fprintf(out, "Triangles: %d\n", s.IndexCount()/3)
	return nil
}

func cmdHit(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("hit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	origin := fs.String("origin", "0,0,3", "Ray origin")
	dir := fs.String("dir", "0,0,-1", "Ray direction")
	center := fs.String("center", "0,0,-2", "Sphere center")
	radius := fs.Float64("radius", 0.5, "Sphere radius")
	if err := fs.Parse(args); err != nil {
		return err
	}

	o, err := parseVec3(*origin)
	if err != nil {
		return fmt.Errorf("origin: %w", err)
	}
	d, err := parseVec3(*dir)
	if err != nil {
		return fmt.Errorf("dir: %w", err)
	}
	c, err := parseVec3(*center)
	if err != nil {
		return fmt.Errorf("center: %w", err)
	}

	ray := picking.NewRay(o, d)
	t, ok := ray.IntersectSphere(c, float32(*radius))
	if !ok {
		fmt.Fprintln(out, "miss")
		return nil
	}
	p := ray.At(t)
	fmt.Fprintf(out, "hit t=%.4f point=(%.4f, %.4f, %.4f)\n", t, p[0], p[1], p[2])
	return nil
}

func cmdConfig(args []string, out io.Writer) error {
	cfg := config.Default()
	if len(args) == 0 {
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", config.ConfigFile())
		return nil
	}
	if err := cfg.SaveTo(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", args[0])
	return nil
}

// parseVec3 reads "x,y,z".
func parseVec3(s string) (mgl32.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v mgl32.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return mgl32.Vec3{}, err
		}
		v[i] = float32(f)
	}
	return v, nil
}
