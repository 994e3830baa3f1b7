package export

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/chazu/isomarch/pkg/mesh"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"
)

const stlHeaderSize = 80

// WriteSTL writes s as binary STL. Facet normals follow each triangle's
// winding; degenerate triangles get a zero normal.
func WriteSTL(w io.Writer, s *mesh.Soup, header string) error {
	bw := bufio.NewWriter(w)

	var head [stlHeaderSize]byte
	copy(head[:], header)
	if _, err := bw.Write(head[:]); err != nil {
		return errors.Wrap(err, "export: write STL header")
	}

	n := s.TriangleCount()
	if uint64(n) > math.MaxUint32 {
		return errors.Errorf("export: %d triangles exceed the STL limit", n)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(n)); err != nil {
		return errors.Wrap(err, "export: write STL count")
	}

	var rec [50]byte
	for i := 0; i < n; i++ {
		a, b, c := s.Triangle(i)
		tri := sdf.Triangle3{toVec(a), toVec(b), toVec(c)}
		normal := facetNormal(&tri)

		putVec(rec[0:], normal)
		putVertex(rec[12:], a)
		putVertex(rec[24:], b)
		putVertex(rec[36:], c)
		// Attribute byte count stays zero.
		rec[48], rec[49] = 0, 0
		if _, err := bw.Write(rec[:]); err != nil {
			return errors.Wrap(err, "export: write STL facet")
		}
	}
	return errors.Wrap(bw.Flush(), "export: flush STL")
}

// SaveSTL writes s to path.
func SaveSTL(path string, s *mesh.Soup, header string) error {
	return save(path, func(w io.Writer) error { return WriteSTL(w, s, header) })
}

func facetNormal(t *sdf.Triangle3) v3.Vec {
	n := t.Normal()
	if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z) {
		return v3.Vec{}
	}
	return n
}

func toVec(v mesh.Vertex) v3.Vec {
	return v3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func putVec(dst []byte, v v3.Vec) {
	putVertex(dst, mesh.Vertex{float32(v.X), float32(v.Y), float32(v.Z)})
}

func putVertex(dst []byte, v mesh.Vertex) {
	for i, c := range v {
		binary.LittleEndian.PutUint32(dst[4*i:], math.Float32bits(c))
	}
}
