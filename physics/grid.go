// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "cogentcore.org/core/math32"

// gridKey addresses one cell of the broad phase hash grid.
type gridKey struct {
	X, Y, Z int
}

// broadGrid is a transient spatial hash over body bounding boxes,
// rebuilt every substep. A body registers in every cell its
// velocity expanded box touches, and candidate pairs are bodies
// sharing at least one cell.
type broadGrid struct {
	invCell float32
	cells   map[gridKey][]*Body
}

func newBroadGrid(cellSize float32) *broadGrid {
	if cellSize <= 0 {
		cellSize = 2
	}
	return &broadGrid{
		invCell: 1 / cellSize,
		cells:   make(map[gridKey][]*Body),
	}
}

func (bg *broadGrid) cellRange(bb math32.Box3) (lo, hi gridKey) {
	lo = gridKey{
		X: int(math32.Floor(bb.Min.X * bg.invCell)),
		Y: int(math32.Floor(bb.Min.Y * bg.invCell)),
		Z: int(math32.Floor(bb.Min.Z * bg.invCell)),
	}
	hi = gridKey{
		X: int(math32.Floor(bb.Max.X * bg.invCell)),
		Y: int(math32.Floor(bb.Max.Y * bg.invCell)),
		Z: int(math32.Floor(bb.Max.Z * bg.invCell)),
	}
	return lo, hi
}

func (bg *broadGrid) add(bd *Body) {
	lo, hi := bg.cellRange(bd.velBBox)
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				k := gridKey{x, y, z}
				bg.cells[k] = append(bg.cells[k], bd)
			}
		}
	}
}

// pairs appends each unique co-resident pair with at least one
// dynamic body to out.
func (bg *broadGrid) pairs(out [][2]*Body) [][2]*Body {
	seen := map[[2]int64]struct{}{}
	for _, bucket := range bg.cells {
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				a, b := bucket[i], bucket[j]
				if !a.Dynamic() && !b.Dynamic() {
					continue
				}
				pk := pairKey(a.id, b.id)
				if _, ok := seen[pk]; ok {
					continue
				}
				seen[pk] = struct{}{}
				out = append(out, [2]*Body{a, b})
			}
		}
	}
	return out
}

// pairKey returns the canonical ordered id pair.
func pairKey(a, b int64) [2]int64 {
	if a > b {
		a, b = b, a
	}
	return [2]int64{a, b}
}
