// Package volume defines the regular 3D scalar field the extractor reads.
// Samples are bytes stored with the first axis fastest. A Volume is never
// modified after construction and may be shared by any number of readers.
package volume

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

var (
	// ErrBadDims is returned for dimensions with a non-positive axis.
	ErrBadDims = errors.New("volume: dimensions must be positive")
	// ErrUndersized is returned when the sample buffer is shorter than the
	// dimensions require.
	ErrUndersized = errors.New("volume: buffer smaller than dimensions")
)

// Dims is the number of samples along each axis.
type Dims struct {
	X, Y, Z int
}

// Samples returns X*Y*Z.
func (d Dims) Samples() int {
	return d.X * d.Y * d.Z
}

// Valid reports whether every axis is positive.
func (d Dims) Valid() bool {
	return d.X > 0 && d.Y > 0 && d.Z > 0
}

// Cells returns the number of voxels along each axis. The last sample layer
// of every axis starts no voxel.
func (d Dims) Cells() (cx, cy, cz int) {
	return max(d.X-1, 0), max(d.Y-1, 0), max(d.Z-1, 0)
}

// VoxelCount returns the number of voxels, (X-1)(Y-1)(Z-1).
func (d Dims) VoxelCount() int {
	cx, cy, cz := d.Cells()
	return cx * cy * cz
}

// Voxel converts a linear voxel id to its minimum-corner coordinates. Ids
// run i fastest, then j, then k.
func (d Dims) Voxel(id int) (i, j, k int) {
	cx, cy, _ := d.Cells()
	i = id % cx
	j = (id / cx) % cy
	k = id / (cx * cy)
	return i, j, k
}

// VoxelID is the inverse of Voxel.
func (d Dims) VoxelID(i, j, k int) int {
	cx, cy, _ := d.Cells()
	return (k*cy+j)*cx + i
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%d", d.X, d.Y, d.Z)
}

// Volume is a read-only scalar field.
type Volume struct {
	Dims Dims
	Data []byte
}

// New validates data against dims and wraps it without copying. Buffers
// longer than dims require are accepted; the extra bytes are never read.
func New(dims Dims, data []byte) (*Volume, error) {
	if !dims.Valid() {
		return nil, errors.Wrapf(ErrBadDims, "got %s", dims)
	}
	if need := dims.Samples(); len(data) < need {
		return nil, errors.Wrapf(ErrUndersized, "%s needs %d bytes, got %d", dims, need, len(data))
	}
	return &Volume{Dims: dims, Data: data}, nil
}

// Validate re-checks a Volume built without New.
func (v *Volume) Validate() error {
	if v == nil {
		return errors.New("volume: nil volume")
	}
	_, err := New(v.Dims, v.Data)
	return err
}

// Index returns the sample offset of (x, y, z).
func (v *Volume) Index(x, y, z int) int {
	return (z*v.Dims.Y+y)*v.Dims.X + x
}

// At returns the sample at (x, y, z).
func (v *Volume) At(x, y, z int) byte {
	return v.Data[v.Index(x, y, z)]
}

// Read reads exactly dims.Samples() bytes from r. A short read is reported
// as ErrUndersized.
func Read(r io.Reader, dims Dims) (*Volume, error) {
	if !dims.Valid() {
		return nil, errors.Wrapf(ErrBadDims, "got %s", dims)
	}
	buf := make([]byte, dims.Samples())
	n, err := io.ReadFull(r, buf)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		return nil, errors.Wrapf(ErrUndersized, "%s needs %d bytes, read %d", dims, len(buf), n)
	}
	if err != nil {
		return nil, errors.Wrap(err, "volume: read samples")
	}
	return New(dims, buf)
}

// Load reads a raw volume file of unsigned bytes, first axis fastest.
func Load(path string, dims Dims) (*Volume, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "volume: open %s", path)
	}
	defer f.Close()

	v, err := Read(f, dims)
	if err != nil {
		return nil, errors.WithMessagef(err, "volume: load %s", path)
	}
	return v, nil
}
