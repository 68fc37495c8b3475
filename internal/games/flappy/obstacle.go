package flappy

import (
	"math"

	"github.com/vovakirdan/flappyball/internal/core"
)

// BlockSize is the edge of one wall block in pixels.
const BlockSize = 48

// NumBlocks returns how many block slots fill a column of the given height,
// rounded half to even.
func NumBlocks(screenHeight int) int {
	return int(math.RoundToEven(float64(screenHeight) / BlockSize))
}

// ObstacleBlock is one square segment of a wall. Its height is fixed at creation.
type ObstacleBlock struct {
	Entity
	Slot int // Index of the block within its wall, top to bottom
	Box  core.Rect
}

func newObstacleBlock(x float64, slot int, speed float64, sprite core.Sprite) ObstacleBlock {
	b := ObstacleBlock{
		Entity: Entity{
			X:      x,
			Y:      float64(slot * BlockSize),
			Speed:  speed,
			Sprite: sprite,
		},
		Slot: slot,
	}
	b.Box = sprite.Bounds(b.Origin())
	return b
}

// Update moves the block horizontally by dt seconds.
func (b *ObstacleBlock) Update(dt float64) {
	b.moveTo(b.X + b.Speed*dt)
}

func (b *ObstacleBlock) moveTo(x float64) {
	b.X = x
	b.Box = b.Box.MoveTo(b.Origin())
}

// Obstacle is a vertical wall of blocks with a gap the player must pass through.
//
// The gap covers block slots GapLocation through GapLocation+GapHeight, both
// ends included, so it is GapHeight+1 slots tall.
type Obstacle struct {
	X, Y         float64
	Speed        float64
	ScreenHeight int
	GapHeight    int
	GapLocation  int
	Blocks       []ObstacleBlock
	Passed       bool // Set once the wall is behind the player
}

// NewObstacle builds a wall at x whose blocks use the given sprite.
func NewObstacle(x, y, speed float64, screenHeight, gapHeight, gapLocation int, sprite core.Sprite) *Obstacle {
	o := &Obstacle{
		X:            x,
		Y:            y,
		Speed:        speed,
		ScreenHeight: screenHeight,
		GapHeight:    gapHeight,
		GapLocation:  gapLocation,
	}
	o.Blocks = o.createBlocks(sprite)
	return o
}

// GapRange returns the first and last slot of the gap, inclusive.
func (o *Obstacle) GapRange() (int, int) {
	return o.GapLocation, o.GapLocation + o.GapHeight
}

// InGap reports whether a slot belongs to the gap.
func (o *Obstacle) InGap(slot int) bool {
	lo, hi := o.GapRange()
	return slot >= lo && slot <= hi
}

func (o *Obstacle) createBlocks(sprite core.Sprite) []ObstacleBlock {
	n := NumBlocks(o.ScreenHeight)
	blocks := make([]ObstacleBlock, 0, n)
	for slot := 0; slot < n; slot++ {
		if o.InGap(slot) {
			continue
		}
		blocks = append(blocks, newObstacleBlock(o.X, slot, o.Speed, sprite))
	}
	return blocks
}

// Update moves the wall by dt seconds. Every block takes the wall's x.
func (o *Obstacle) Update(dt float64) {
	o.X += o.Speed * dt
	for i := range o.Blocks {
		o.Blocks[i].moveTo(o.X)
	}
}

// Render draws every block.
func (o *Obstacle) Render(dst core.Canvas) {
	for i := range o.Blocks {
		o.Blocks[i].Render(dst)
	}
}

// Collides reports whether any block overlaps the box.
func (o *Obstacle) Collides(box core.Rect) bool {
	for i := range o.Blocks {
		if o.Blocks[i].Box.Intersects(box) {
			return true
		}
	}
	return false
}

var (
	_ Body = (*ObstacleBlock)(nil)
	_ Body = (*Obstacle)(nil)
)
