package simulate

import (
	"github.com/katalvlaran/gridmap/core"
	"github.com/katalvlaran/gridmap/navigator"
)

// odometryOf is what an exact sensor would measure when leaving from along
// a path that ends at end: the grid displacement rotated into the robot
// frame and the change of heading. It inverts core.Endpoint.Advance.
func odometryOf(from, end core.Endpoint, blocked bool) navigator.Odometry {
	if blocked {
		return navigator.Odometry{Blocked: true}
	}
	gx, gy := end.Node.X-from.Node.X, end.Node.Y-from.Node.Y
	o := navigator.Odometry{Turn: end.Direction.Turned().Sub(from.Direction)}
	switch from.Direction {
	case core.North:
		o.DX, o.DY = gx, gy
	case core.East:
		o.DX, o.DY = -gy, gx
	case core.South:
		o.DX, o.DY = -gx, -gy
	case core.West:
		o.DX, o.DY = gy, -gx
	}

	return o
}
