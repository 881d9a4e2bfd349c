package physics

import (
	"errors"
	"math"

	"github.com/voidshard/wangtile"
)

// eps is the cross product magnitude below which three points count as
// collinear.
const eps = 1e-9

// ErrDegenerate is returned for polygons ear clipping can't reduce.
var ErrDegenerate = errors.New("degenerate polygon")

// Triangle is three points of a polygon, wound so its signed area is
// positive.
type Triangle [3]wangtile.Point

// Area returns the (unsigned) area of the triangle.
func (t Triangle) Area() float64 {
	return math.Abs(cross(t[0], t[1], t[2])) / 2
}

// SignedArea returns the shoelace area of the ring; positive when the
// points run clockwise on screen (y down).
func SignedArea(pts []wangtile.Point) float64 {
	a := 0.0
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Triangulate splits a simple polygon into triangles by ear clipping.
// Either winding is accepted. Collinear vertices are dropped first, so a
// ring of n points with k collinear ones yields n-k-2 triangles.
func Triangulate(pts []wangtile.Point) ([]Triangle, error) {
	if len(pts) < 3 {
		return nil, ErrDegenerate
	}

	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	if SignedArea(pts) < 0 {
		for i, j := 0, len(idx)-1; i < j; i, j = i+1, j-1 {
			idx[i], idx[j] = idx[j], idx[i]
		}
	}

	idx = dropCollinear(pts, idx)
	if len(idx) < 3 {
		return nil, ErrDegenerate
	}

	tris := make([]Triangle, 0, len(idx)-2)
	for len(idx) > 3 {
		clipped := false
		for i := range idx {
			prev := idx[(i+len(idx)-1)%len(idx)]
			cur := idx[i]
			next := idx[(i+1)%len(idx)]
			a, b, c := pts[prev], pts[cur], pts[next]

			cr := cross(a, b, c)
			if math.Abs(cr) < eps {
				// clipping can leave new collinear runs behind
				idx = append(idx[:i], idx[i+1:]...)
				clipped = true
				break
			}
			if cr < 0 || !isEar(pts, idx, prev, cur, next) {
				continue
			}

			tris = append(tris, Triangle{a, b, c})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, ErrDegenerate
		}
	}

	last := Triangle{pts[idx[0]], pts[idx[1]], pts[idx[2]]}
	if math.Abs(cross(last[0], last[1], last[2])) >= eps {
		tris = append(tris, last)
	}
	if len(tris) == 0 {
		return nil, ErrDegenerate
	}
	return tris, nil
}

// dropCollinear removes vertices lying on the line between their
// neighbours.
func dropCollinear(pts []wangtile.Point, idx []int) []int {
	for len(idx) >= 3 {
		removed := false
		for i := range idx {
			prev := pts[idx[(i+len(idx)-1)%len(idx)]]
			next := pts[idx[(i+1)%len(idx)]]
			if math.Abs(cross(prev, pts[idx[i]], next)) < eps {
				idx = append(idx[:i], idx[i+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			break
		}
	}
	return idx
}

// isEar reports that no reflex vertex of the remaining ring touches the
// triangle (prev,cur,next). Only reflex vertices can poke into an ear.
func isEar(pts []wangtile.Point, idx []int, prev, cur, next int) bool {
	a, b, c := pts[prev], pts[cur], pts[next]
	for k, j := range idx {
		if j == prev || j == cur || j == next {
			continue
		}
		p := pts[j]
		before := pts[idx[(k+len(idx)-1)%len(idx)]]
		after := pts[idx[(k+1)%len(idx)]]
		if cross(before, p, after) > 0 {
			continue
		}
		if inTriangle(p, a, b, c) {
			return false
		}
	}
	return true
}

// inTriangle counts points on an edge as inside.
func inTriangle(p, a, b, c wangtile.Point) bool {
	return cross(a, b, p) >= 0 && cross(b, c, p) >= 0 && cross(c, a, p) >= 0
}

// cross is the z of (b-a) x (c-b)
func cross(a, b, c wangtile.Point) float64 {
	return (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
}
