// Package tables holds the constant lookup data for Marching Cubes: the
// 256-entry triangulation table, the edge to corner-pair table and the corner
// to unit-cube offset table. All data is immutable after package
// initialisation and safe for concurrent reads without synchronisation.
//
// Corner and edge numbering for the base cube:
//
//	     v7------e6------v6
//	    / |              /|
//	  e11 |            e10|
//	  /   e7           /  |
//	 /    |           /   e5
//	v3------e2-------v2   |
//	|     |          |    |
//	|    v4------e4--|----v5
//	e3  /           e1   /
//	|  e8            |  e9
//	| /              | /    y z
//	|/               |/     |/
//	v0------e0-------v1     O--x
package tables

const (
	// ConfigCount is the number of distinct configuration indices.
	ConfigCount = 256
	// MaxEdges is the longest edge list of any configuration (5 triangles).
	MaxEdges = 15
	// Sentinel terminates a configuration's edge list.
	Sentinel = -1
	// Corners is the number of corners of a voxel.
	Corners = 8
	// Edges is the number of edges of a voxel.
	Edges = 12
)

// Offset is an integer displacement from a voxel's minimum corner.
type Offset [3]int

// CornerOffsets maps a corner index to its position on the unit cube.
var CornerOffsets = [Corners]Offset{
	{0, 0, 0},
	{1, 0, 0},
	{1, 1, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 0, 1},
	{1, 1, 1},
	{0, 1, 1},
}

// EdgeCorners maps an edge index to the two corners it joins. The order of
// each pair fixes the interpolation direction; edge 5 runs from v6 to v5.
var EdgeCorners = [Edges][2]int{
	{0, 1},
	{1, 2},
	{2, 3},
	{3, 0},
	{4, 5},
	{6, 5},
	{6, 7},
	{7, 4},
	{0, 4},
	{1, 5},
	{2, 6},
	{3, 7},
}

// edgeCounts caches the length of every triangulation entry.
var edgeCounts [ConfigCount]uint8

func init() {
	for c := range triangles {
		n := 0
		for n < len(triangles[c]) && triangles[c][n] != Sentinel {
			n++
		}
		edgeCounts[c] = uint8(n)
	}
}

// EdgeCount returns the number of edges (equivalently, output vertices) the
// configuration emits. It is always a multiple of 3.
func EdgeCount(config uint8) int {
	return int(edgeCounts[config])
}

// Edge returns the t-th edge of the configuration's triangulation. t must be
// less than EdgeCount(config).
func Edge(config uint8, t int) int {
	return int(triangles[config][t])
}

// Triangulation returns the raw, sentinel-terminated edge list for the
// configuration. The returned array is a copy.
func Triangulation(config uint8) [MaxEdges + 1]int8 {
	return triangles[config]
}

// EdgeEndpoints returns the two corner indices joined by the edge.
func EdgeEndpoints(edge int) (a, b int) {
	p := EdgeCorners[edge]
	return p[0], p[1]
}
