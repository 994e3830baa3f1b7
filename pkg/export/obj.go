// Package export writes triangle soups to mesh files. Writers preserve the
// soup's vertex order; every three consecutive vertices become one face.
package export

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/chazu/isomarch/pkg/mesh"
	"github.com/pkg/errors"
)

// OBJOptions controls the OBJ header comment.
type OBJOptions struct {
	// Source names the volume the surface came from.
	Source string
	// Isovalue is the extraction threshold, in sample units.
	Isovalue float32
}

// WriteOBJ writes s as Wavefront OBJ: a header comment, one "v" line per
// vertex and one "f" line per triangle using 1-based indices.
func WriteOBJ(w io.Writer, s *mesh.Soup, opts OBJOptions) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)

	// The header reports the isovalue scaled as if samples were normalised
	// to [0, 1], matching existing tooling that reads these files.
	buf = append(buf, "# Isosurface of "...)
	buf = append(buf, opts.Source...)
	buf = append(buf, " at isovalue "...)
	buf = appendFloat(buf, opts.Isovalue*255)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return errors.Wrap(err, "export: write OBJ header")
	}

	for _, v := range s.Vertices {
		buf = append(buf[:0], 'v')
		for _, c := range v {
			buf = append(buf, ' ')
			buf = appendFloat(buf, c)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "export: write OBJ vertex")
		}
	}

	for i := 0; i+2 < len(s.Vertices); i += 3 {
		buf = append(buf[:0], 'f', ' ')
		buf = strconv.AppendInt(buf, int64(i+1), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(i+2), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(i+3), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "export: write OBJ face")
		}
	}
	return errors.Wrap(bw.Flush(), "export: flush OBJ")
}

// appendFloat formats like a default C++ ostream: six significant digits,
// shortest of fixed and exponent notation.
func appendFloat(buf []byte, f float32) []byte {
	return strconv.AppendFloat(buf, float64(f), 'g', 6, 32)
}

// SaveOBJ writes s to path.
func SaveOBJ(path string, s *mesh.Soup, opts OBJOptions) error {
	return save(path, func(w io.Writer) error { return WriteOBJ(w, s, opts) })
}

func save(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "export: create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "export: close %s", path)
}
