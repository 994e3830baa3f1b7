package tables

// triangles maps a configuration index to the cube edges to emit, three edges
// per triangle, terminated by Sentinel. Entries hold at most 15 edges; the
// remaining slots are padded with Sentinel.
//
// This is the published Lorensen/Bourke case table. Its winding and its
// choice of ambiguous-case triangulations determine surface topology, so it
// must not be edited.
var triangles = [ConfigCount][MaxEdges + 1]int8{
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 8, 3, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 9, 0, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{8, 1, 9, 8, 3, 1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 10, 1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 8, 3, 1, 2, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{9, 2, 10, 9, 0, 2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 10, 3, 10, 8, 8, 10, 9, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{11, 0, 8, 11, 2, 0, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 9, 0, 2, 3, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 9, 2, 9, 11, 11, 9, 8, -1, -1, -1, -1, -1, -1, -1},
	{3, 10, 1, 3, 11, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 8, 1, 8, 10, 10, 8, 11, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 11, 0, 11, 9, 9, 11, 10, -1, -1, -1, -1, -1, -1, -1},
	{11, 10, 9, 11, 9, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 7, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 3, 0, 4, 7, 3, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 7, 8, 9, 0, 1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{9, 4, 7, 9, 7, 1, 1, 7, 3, -1, -1, -1, -1, -1, -1, -1},
	{4, 7, 8, 1, 2, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 3, 0, 4, 7, 3, 2, 10, 1, -1, -1, -1, -1, -1, -1, -1},
	{2, 9, 0, 2, 10, 9, 4, 7, 8, -1, -1, -1, -1, -1, -1, -1},
	{3, 2, 7, 7, 9, 4, 7, 2, 9, 9, 2, 10, -1, -1, -1, -1},
	{8, 4, 7, 3, 11, 2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{7, 11, 2, 7, 2, 4, 4, 2, 0, -1, -1, -1, -1, -1, -1, -1},
	{2, 3, 11, 1, 9, 0, 8, 4, 7, -1, -1, -1, -1, -1, -1, -1},
	{2, 1, 9, 2, 9, 4, 2, 4, 11, 11, 4, 7, -1, -1, -1, -1},
	{10, 3, 11, 10, 1, 3, 8, 4, 7, -1, -1, -1, -1, -1, -1, -1},
	{4, 7, 0, 0, 10, 1, 7, 10, 0, 7, 11, 10, -1, -1, -1, -1},
	{8, 4, 7, 0, 3, 11, 0, 11, 9, 9, 11, 10, -1, -1, -1, -1},
	{7, 9, 4, 7, 11, 9, 9, 11, 10, -1, -1, -1, -1, -1, -1, -1},
	{4, 9, 5, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{8, 3, 0, 4, 9, 5, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 5, 4, 0, 1, 5, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 8, 3, 4, 3, 5, 5, 3, 1, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 10, 9, 5, 4, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 9, 5, 8, 3, 0, 1, 2, 10, -1, -1, -1, -1, -1, -1, -1},
	{10, 5, 4, 10, 4, 2, 2, 4, 0, -1, -1, -1, -1, -1, -1, -1},
	{4, 8, 3, 4, 3, 2, 4, 2, 5, 5, 2, 10, -1, -1, -1, -1},
	{2, 3, 11, 5, 4, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{11, 0, 8, 11, 2, 0, 9, 5, 4, -1, -1, -1, -1, -1, -1, -1},
	{5, 0, 1, 5, 4, 0, 3, 11, 2, -1, -1, -1, -1, -1, -1, -1},
	{11, 2, 8, 8, 5, 4, 2, 5, 8, 2, 1, 5, -1, -1, -1, -1},
	{3, 10, 1, 3, 11, 10, 5, 4, 9, -1, -1, -1, -1, -1, -1, -1},
	{9, 5, 4, 1, 0, 8, 1, 8, 10, 10, 8, 11, -1, -1, -1, -1},
	{10, 5, 11, 11, 0, 3, 11, 5, 0, 0, 5, 4, -1, -1, -1, -1},
	{4, 10, 5, 4, 8, 10, 10, 8, 11, -1, -1, -1, -1, -1, -1, -1},
	{7, 9, 5, 7, 8, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 9, 5, 0, 5, 3, 3, 5, 7, -1, -1, -1, -1, -1, -1, -1},
	{8, 0, 1, 8, 1, 7, 7, 1, 5, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 5, 3, 5, 7, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{7, 9, 5, 7, 8, 9, 1, 2, 10, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 10, 0, 9, 5, 0, 5, 3, 3, 5, 7, -1, -1, -1, -1},
	{7, 8, 5, 5, 2, 10, 8, 2, 5, 8, 0, 2, -1, -1, -1, -1},
	{10, 3, 2, 10, 5, 3, 3, 5, 7, -1, -1, -1, -1, -1, -1, -1},
	{9, 7, 8, 9, 5, 7, 11, 2, 3, -1, -1, -1, -1, -1, -1, -1},
	{0, 9, 2, 2, 7, 11, 2, 9, 7, 7, 9, 5, -1, -1, -1, -1},
	{3, 11, 2, 8, 0, 1, 8, 1, 7, 7, 1, 5, -1, -1, -1, -1},
	{2, 7, 11, 2, 1, 7, 7, 1, 5, -1, -1, -1, -1, -1, -1, -1},
	{11, 1, 3, 11, 10, 1, 7, 8, 9, 7, 9, 5, -1, -1, -1, -1},
	{11, 10, 1, 11, 1, 7, 7, 1, 0, 7, 0, 9, 7, 9, 5, -1},
	{5, 7, 8, 5, 8, 10, 10, 8, 0, 10, 0, 3, 10, 3, 11, -1},
	{11, 10, 5, 11, 5, 7, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{10, 6, 5, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 8, 3, 10, 6, 5, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{9, 0, 1, 5, 10, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{8, 1, 9, 8, 3, 1, 10, 6, 5, -1, -1, -1, -1, -1, -1, -1},
	{6, 1, 2, 6, 5, 1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{6, 1, 2, 6, 5, 1, 0, 8, 3, -1, -1, -1, -1, -1, -1, -1},
	{5, 9, 0, 5, 0, 6, 6, 0, 2, -1, -1, -1, -1, -1, -1, -1},
	{6, 5, 2, 2, 8, 3, 5, 8, 2, 5, 9, 8, -1, -1, -1, -1},
	{2, 3, 11, 10, 6, 5, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 11, 2, 0, 8, 11, 6, 5, 10, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, 3, 11, 2, 10, 6, 5, -1, -1, -1, -1, -1, -1, -1},
	{10, 6, 5, 2, 1, 9, 2, 9, 11, 11, 9, 8, -1, -1, -1, -1},
	{11, 6, 5, 11, 5, 3, 3, 5, 1, -1, -1, -1, -1, -1, -1, -1},
	{11, 6, 8, 8, 1, 0, 8, 6, 1, 1, 6, 5, -1, -1, -1, -1},
	{0, 3, 11, 0, 11, 6, 0, 6, 9, 9, 6, 5, -1, -1, -1, -1},
	{5, 11, 6, 5, 9, 11, 11, 9, 8, -1, -1, -1, -1, -1, -1, -1},
	{7, 8, 4, 6, 5, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 4, 7, 3, 0, 4, 5, 10, 6, -1, -1, -1, -1, -1, -1, -1},
	{6, 5, 10, 7, 8, 4, 9, 0, 1, -1, -1, -1, -1, -1, -1, -1},
	{5, 10, 6, 9, 4, 7, 9, 7, 1, 1, 7, 3, -1, -1, -1, -1},
	{1, 6, 5, 1, 2, 6, 7, 8, 4, -1, -1, -1, -1, -1, -1, -1},
	{7, 0, 4, 7, 3, 0, 6, 5, 1, 6, 1, 2, -1, -1, -1, -1},
	{4, 7, 8, 5, 9, 0, 5, 0, 6, 6, 0, 2, -1, -1, -1, -1},
	{2, 6, 5, 2, 5, 3, 3, 5, 9, 3, 9, 4, 3, 4, 7, -1},
	{4, 7, 8, 5, 10, 6, 11, 2, 3, -1, -1, -1, -1, -1, -1, -1},
	{6, 5, 10, 7, 11, 2, 7, 2, 4, 4, 2, 0, -1, -1, -1, -1},
	{4, 7, 8, 9, 0, 1, 6, 5, 10, 3, 11, 2, -1, -1, -1, -1},
	{6, 5, 10, 11, 4, 7, 11, 2, 4, 4, 2, 9, 9, 2, 1, -1},
	{7, 8, 4, 11, 6, 5, 11, 5, 3, 3, 5, 1, -1, -1, -1, -1},
	{0, 4, 7, 0, 7, 1, 1, 7, 11, 1, 11, 6, 1, 6, 5, -1},
	{4, 7, 8, 9, 6, 5, 9, 0, 6, 6, 0, 11, 11, 0, 3, -1},
	{7, 11, 4, 11, 9, 4, 11, 5, 9, 11, 6, 5, -1, -1, -1, -1},
	{10, 4, 9, 10, 6, 4, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{10, 4, 9, 10, 6, 4, 8, 3, 0, -1, -1, -1, -1, -1, -1, -1},
	{1, 10, 6, 1, 6, 0, 0, 6, 4, -1, -1, -1, -1, -1, -1, -1},
	{4, 8, 6, 6, 1, 10, 6, 8, 1, 1, 8, 3, -1, -1, -1, -1},
	{9, 1, 2, 9, 2, 4, 4, 2, 6, -1, -1, -1, -1, -1, -1, -1},
	{0, 8, 3, 9, 1, 2, 9, 2, 4, 4, 2, 6, -1, -1, -1, -1},
	{0, 2, 6, 0, 6, 4, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 4, 8, 3, 2, 4, 4, 2, 6, -1, -1, -1, -1, -1, -1, -1},
	{4, 10, 6, 4, 9, 10, 2, 3, 11, -1, -1, -1, -1, -1, -1, -1},
	{8, 2, 0, 8, 11, 2, 4, 9, 10, 4, 10, 6, -1, -1, -1, -1},
	{2, 3, 11, 1, 10, 6, 1, 6, 0, 0, 6, 4, -1, -1, -1, -1},
	{8, 11, 2, 8, 2, 4, 4, 2, 1, 4, 1, 10, 4, 10, 6, -1},
	{3, 11, 1, 1, 4, 9, 11, 4, 1, 11, 6, 4, -1, -1, -1, -1},
	{6, 4, 9, 6, 9, 11, 11, 9, 1, 11, 1, 0, 11, 0, 8, -1},
	{11, 0, 3, 11, 6, 0, 0, 6, 4, -1, -1, -1, -1, -1, -1, -1},
	{8, 11, 6, 8, 6, 4, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{6, 7, 8, 6, 8, 10, 10, 8, 9, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 7, 7, 10, 6, 0, 10, 7, 0, 9, 10, -1, -1, -1, -1},
	{1, 10, 6, 1, 6, 7, 1, 7, 0, 0, 7, 8, -1, -1, -1, -1},
	{6, 1, 10, 6, 7, 1, 1, 7, 3, -1, -1, -1, -1, -1, -1, -1},
	{9, 1, 8, 8, 6, 7, 8, 1, 6, 6, 1, 2, -1, -1, -1, -1},
	{7, 3, 0, 7, 0, 6, 6, 0, 9, 6, 9, 1, 6, 1, 2, -1},
	{8, 6, 7, 8, 0, 6, 6, 0, 2, -1, -1, -1, -1, -1, -1, -1},
	{2, 6, 7, 2, 7, 3, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{11, 2, 3, 6, 7, 8, 6, 8, 10, 10, 8, 9, -1, -1, -1, -1},
	{9, 10, 6, 9, 6, 0, 0, 6, 7, 0, 7, 11, 0, 11, 2, -1},
	{3, 11, 2, 0, 7, 8, 0, 1, 7, 7, 1, 6, 6, 1, 10, -1},
	{6, 7, 10, 7, 1, 10, 7, 2, 1, 7, 11, 2, -1, -1, -1, -1},
	{1, 3, 11, 1, 11, 9, 9, 11, 6, 9, 6, 7, 9, 7, 8, -1},
	{6, 7, 11, 9, 1, 0, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{8, 0, 7, 0, 6, 7, 0, 11, 6, 0, 3, 11, -1, -1, -1, -1},
	{6, 7, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{6, 11, 7, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 8, 11, 7, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{6, 11, 7, 9, 0, 1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 8, 3, 1, 9, 8, 7, 6, 11, -1, -1, -1, -1, -1, -1, -1},
	{11, 7, 6, 2, 10, 1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 2, 10, 0, 8, 3, 11, 7, 6, -1, -1, -1, -1, -1, -1, -1},
	{9, 2, 10, 9, 0, 2, 11, 7, 6, -1, -1, -1, -1, -1, -1, -1},
	{11, 7, 6, 3, 2, 10, 3, 10, 8, 8, 10, 9, -1, -1, -1, -1},
	{2, 7, 6, 2, 3, 7, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{8, 7, 6, 8, 6, 0, 0, 6, 2, -1, -1, -1, -1, -1, -1, -1},
	{7, 2, 3, 7, 6, 2, 1, 9, 0, -1, -1, -1, -1, -1, -1, -1},
	{8, 7, 9, 9, 2, 1, 9, 7, 2, 2, 7, 6, -1, -1, -1, -1},
	{6, 10, 1, 6, 1, 7, 7, 1, 3, -1, -1, -1, -1, -1, -1, -1},
	{6, 10, 1, 6, 1, 0, 6, 0, 7, 7, 0, 8, -1, -1, -1, -1},
	{7, 6, 3, 3, 9, 0, 6, 9, 3, 6, 10, 9, -1, -1, -1, -1},
	{6, 8, 7, 6, 10, 8, 8, 10, 9, -1, -1, -1, -1, -1, -1, -1},
	{8, 6, 11, 8, 4, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{11, 3, 0, 11, 0, 6, 6, 0, 4, -1, -1, -1, -1, -1, -1, -1},
	{6, 8, 4, 6, 11, 8, 0, 1, 9, -1, -1, -1, -1, -1, -1, -1},
	{1, 9, 3, 3, 6, 11, 9, 6, 3, 9, 4, 6, -1, -1, -1, -1},
	{8, 6, 11, 8, 4, 6, 10, 1, 2, -1, -1, -1, -1, -1, -1, -1},
	{2, 10, 1, 11, 3, 0, 11, 0, 6, 6, 0, 4, -1, -1, -1, -1},
	{11, 4, 6, 11, 8, 4, 2, 10, 9, 2, 9, 0, -1, -1, -1, -1},
	{4, 6, 11, 4, 11, 9, 9, 11, 3, 9, 3, 2, 9, 2, 10, -1},
	{3, 8, 4, 3, 4, 2, 2, 4, 6, -1, -1, -1, -1, -1, -1, -1},
	{2, 0, 4, 2, 4, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, 3, 8, 4, 3, 4, 2, 2, 4, 6, -1, -1, -1, -1},
	{9, 2, 1, 9, 4, 2, 2, 4, 6, -1, -1, -1, -1, -1, -1, -1},
	{6, 10, 4, 4, 3, 8, 4, 10, 3, 3, 10, 1, -1, -1, -1, -1},
	{1, 6, 10, 1, 0, 6, 6, 0, 4, -1, -1, -1, -1, -1, -1, -1},
	{10, 9, 0, 10, 0, 6, 6, 0, 3, 6, 3, 8, 6, 8, 4, -1},
	{10, 9, 4, 10, 4, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{6, 11, 7, 5, 4, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 8, 3, 9, 5, 4, 7, 6, 11, -1, -1, -1, -1, -1, -1, -1},
	{0, 5, 4, 0, 1, 5, 6, 11, 7, -1, -1, -1, -1, -1, -1, -1},
	{7, 6, 11, 4, 8, 3, 4, 3, 5, 5, 3, 1, -1, -1, -1, -1},
	{2, 10, 1, 11, 7, 6, 5, 4, 9, -1, -1, -1, -1, -1, -1, -1},
	{0, 8, 3, 1, 2, 10, 4, 9, 5, 11, 7, 6, -1, -1, -1, -1},
	{6, 11, 7, 10, 5, 4, 10, 4, 2, 2, 4, 0, -1, -1, -1, -1},
	{6, 11, 7, 5, 2, 10, 5, 4, 2, 2, 4, 3, 3, 4, 8, -1},
	{2, 7, 6, 2, 3, 7, 4, 9, 5, -1, -1, -1, -1, -1, -1, -1},
	{4, 9, 5, 8, 7, 6, 8, 6, 0, 0, 6, 2, -1, -1, -1, -1},
	{3, 6, 2, 3, 7, 6, 0, 1, 5, 0, 5, 4, -1, -1, -1, -1},
	{1, 5, 4, 1, 4, 2, 2, 4, 8, 2, 8, 7, 2, 7, 6, -1},
	{5, 4, 9, 6, 10, 1, 6, 1, 7, 7, 1, 3, -1, -1, -1, -1},
	{4, 9, 5, 7, 0, 8, 7, 6, 0, 0, 6, 1, 1, 6, 10, -1},
	{3, 7, 6, 3, 6, 0, 0, 6, 10, 0, 10, 5, 0, 5, 4, -1},
	{4, 8, 5, 8, 10, 5, 8, 6, 10, 8, 7, 6, -1, -1, -1, -1},
	{5, 6, 11, 5, 11, 9, 9, 11, 8, -1, -1, -1, -1, -1, -1, -1},
	{0, 9, 5, 0, 5, 6, 0, 6, 3, 3, 6, 11, -1, -1, -1, -1},
	{8, 0, 11, 11, 5, 6, 11, 0, 5, 5, 0, 1, -1, -1, -1, -1},
	{11, 5, 6, 11, 3, 5, 5, 3, 1, -1, -1, -1, -1, -1, -1, -1},
	{10, 1, 2, 5, 6, 11, 5, 11, 9, 9, 11, 8, -1, -1, -1, -1},
	{2, 10, 1, 3, 6, 11, 3, 0, 6, 6, 0, 5, 5, 0, 9, -1},
	{0, 2, 10, 0, 10, 8, 8, 10, 5, 8, 5, 6, 8, 6, 11, -1},
	{11, 3, 6, 3, 5, 6, 3, 10, 5, 3, 2, 10, -1, -1, -1, -1},
	{2, 3, 6, 6, 9, 5, 3, 9, 6, 3, 8, 9, -1, -1, -1, -1},
	{5, 0, 9, 5, 6, 0, 0, 6, 2, -1, -1, -1, -1, -1, -1, -1},
	{6, 2, 3, 6, 3, 5, 5, 3, 8, 5, 8, 0, 5, 0, 1, -1},
	{6, 2, 1, 6, 1, 5, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{8, 9, 5, 8, 5, 3, 3, 5, 6, 3, 6, 10, 3, 10, 1, -1},
	{1, 0, 10, 0, 6, 10, 0, 5, 6, 0, 9, 5, -1, -1, -1, -1},
	{0, 3, 8, 10, 5, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{10, 5, 6, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{11, 5, 10, 11, 7, 5, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{5, 11, 7, 5, 10, 11, 3, 0, 8, -1, -1, -1, -1, -1, -1, -1},
	{11, 5, 10, 11, 7, 5, 9, 0, 1, -1, -1, -1, -1, -1, -1, -1},
	{9, 3, 1, 9, 8, 3, 5, 10, 11, 5, 11, 7, -1, -1, -1, -1},
	{2, 11, 7, 2, 7, 1, 1, 7, 5, -1, -1, -1, -1, -1, -1, -1},
	{3, 0, 8, 2, 11, 7, 2, 7, 1, 1, 7, 5, -1, -1, -1, -1},
	{2, 11, 0, 0, 5, 9, 0, 11, 5, 5, 11, 7, -1, -1, -1, -1},
	{9, 8, 3, 9, 3, 5, 5, 3, 2, 5, 2, 11, 5, 11, 7, -1},
	{10, 2, 3, 10, 3, 5, 5, 3, 7, -1, -1, -1, -1, -1, -1, -1},
	{5, 10, 7, 7, 0, 8, 10, 0, 7, 10, 2, 0, -1, -1, -1, -1},
	{1, 9, 0, 10, 2, 3, 10, 3, 5, 5, 3, 7, -1, -1, -1, -1},
	{7, 5, 10, 7, 10, 8, 8, 10, 2, 8, 2, 1, 8, 1, 9, -1},
	{7, 5, 1, 7, 1, 3, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{8, 1, 0, 8, 7, 1, 1, 7, 5, -1, -1, -1, -1, -1, -1, -1},
	{0, 5, 9, 0, 3, 5, 5, 3, 7, -1, -1, -1, -1, -1, -1, -1},
	{7, 5, 9, 7, 9, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 5, 10, 4, 10, 8, 8, 10, 11, -1, -1, -1, -1, -1, -1, -1},
	{11, 3, 10, 10, 4, 5, 10, 3, 4, 4, 3, 0, -1, -1, -1, -1},
	{9, 0, 1, 4, 5, 10, 4, 10, 8, 8, 10, 11, -1, -1, -1, -1},
	{3, 1, 9, 3, 9, 11, 11, 9, 4, 11, 4, 5, 11, 5, 10, -1},
	{8, 4, 11, 11, 1, 2, 4, 1, 11, 4, 5, 1, -1, -1, -1, -1},
	{5, 1, 2, 5, 2, 4, 4, 2, 11, 4, 11, 3, 4, 3, 0, -1},
	{11, 8, 4, 11, 4, 2, 2, 4, 5, 2, 5, 9, 2, 9, 0, -1},
	{2, 11, 3, 5, 9, 4, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 5, 10, 4, 10, 2, 4, 2, 8, 8, 2, 3, -1, -1, -1, -1},
	{10, 4, 5, 10, 2, 4, 4, 2, 0, -1, -1, -1, -1, -1, -1, -1},
	{0, 1, 9, 8, 2, 3, 8, 4, 2, 2, 4, 10, 10, 4, 5, -1},
	{10, 2, 5, 2, 4, 5, 2, 9, 4, 2, 1, 9, -1, -1, -1, -1},
	{4, 3, 8, 4, 5, 3, 3, 5, 1, -1, -1, -1, -1, -1, -1, -1},
	{0, 4, 5, 0, 5, 1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 9, 3, 5, 9, 3, 4, 5, 3, 8, 4, -1, -1, -1, -1},
	{4, 5, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{7, 4, 9, 7, 9, 11, 11, 9, 10, -1, -1, -1, -1, -1, -1, -1},
	{8, 3, 0, 7, 4, 9, 7, 9, 11, 11, 9, 10, -1, -1, -1, -1},
	{0, 1, 4, 4, 11, 7, 1, 11, 4, 1, 10, 11, -1, -1, -1, -1},
	{10, 11, 7, 10, 7, 1, 1, 7, 4, 1, 4, 8, 1, 8, 3, -1},
	{2, 11, 7, 2, 7, 4, 2, 4, 1, 1, 4, 9, -1, -1, -1, -1},
	{0, 8, 3, 1, 4, 9, 1, 2, 4, 4, 2, 7, 7, 2, 11, -1},
	{7, 2, 11, 7, 4, 2, 2, 4, 0, -1, -1, -1, -1, -1, -1, -1},
	{7, 4, 11, 4, 2, 11, 4, 3, 2, 4, 8, 3, -1, -1, -1, -1},
	{7, 4, 3, 3, 10, 2, 3, 4, 10, 10, 4, 9, -1, -1, -1, -1},
	{2, 0, 8, 2, 8, 10, 10, 8, 7, 10, 7, 4, 10, 4, 9, -1},
	{4, 0, 1, 4, 1, 7, 7, 1, 10, 7, 10, 2, 7, 2, 3, -1},
	{4, 8, 7, 1, 10, 2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{9, 7, 4, 9, 1, 7, 7, 1, 3, -1, -1, -1, -1, -1, -1, -1},
	{8, 7, 0, 7, 1, 0, 7, 9, 1, 7, 4, 9, -1, -1, -1, -1},
	{4, 0, 3, 4, 3, 7, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{4, 8, 7, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{8, 9, 10, 8, 10, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 11, 3, 0, 9, 11, 11, 9, 10, -1, -1, -1, -1, -1, -1, -1},
	{1, 8, 0, 1, 10, 8, 8, 10, 11, -1, -1, -1, -1, -1, -1, -1},
	{3, 1, 10, 3, 10, 11, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 9, 1, 2, 11, 9, 9, 11, 8, -1, -1, -1, -1, -1, -1, -1},
	{0, 9, 3, 9, 11, 3, 9, 2, 11, 9, 1, 2, -1, -1, -1, -1},
	{11, 8, 0, 11, 0, 2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{2, 11, 3, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 10, 2, 3, 8, 10, 10, 8, 9, -1, -1, -1, -1, -1, -1, -1},
	{9, 10, 2, 9, 2, 0, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{3, 8, 2, 8, 10, 2, 8, 1, 10, 8, 0, 1, -1, -1, -1, -1},
	{2, 1, 10, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{8, 9, 1, 8, 1, 3, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{1, 0, 9, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{0, 3, 8, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
}
