package simulate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmap/core"
	"github.com/katalvlaran/gridmap/navigator"
)

// TestOdometryOf_InvertsAdvance ASSERTS that replaying a measured odometry
// with Endpoint.Advance lands on the measured end.
func TestOdometryOf_InvertsAdvance(t *testing.T) {
	for _, h := range core.Directions() {
		for _, turn := range core.Directions() {
			for dx := -2; dx <= 2; dx++ {
				for dy := -2; dy <= 2; dy++ {
					from := core.At(3, -1, h)
					end := from.Advance(dx, dy, turn).Turned()
					got := odometryOf(from, end, false)
					require.Equal(t, navigator.Odometry{DX: dx, DY: dy, Turn: turn}, got, "heading %v", h)
				}
			}
		}
	}
	require.Equal(t, navigator.Odometry{Blocked: true}, odometryOf(core.At(0, 0, core.North), core.At(0, 0, core.North), true))
}
