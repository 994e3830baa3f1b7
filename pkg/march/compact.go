package march

import (
	"github.com/chazu/isomarch/pkg/parallel"
	"github.com/chazu/isomarch/pkg/scan"
)

// Compact turns per-voxel activity flags into the dense, ascending list of
// active voxel ids. Each active voxel's slot is its exclusive-scan offset,
// so the scatter writes never collide.
func Compact(p parallel.Policy, flags []uint32) []uint32 {
	offsets, total := scan.New(p, scan.Add[uint32]()).Exclusive(flags)

	ids := make([]uint32, total)
	p.For(len(flags), voxelGrain, func(lo, hi int) {
		for v := lo; v < hi; v++ {
			if flags[v] != 0 {
				ids[offsets[v]] = uint32(v)
			}
		}
	})
	return ids
}
