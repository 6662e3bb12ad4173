package generator

import (
	"malefactor/pkg/engine/world"
)

// BSPMapBuilder generates maps using Binary Space Partitioning
type BSPMapBuilder struct {
	base
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *world.Rect
}

// Constants for BSP generation
const (
	minNodeSize = 8 // Minimum size of a BSP node
	minLeafSize = 6 // Floor for the depth-scaled node size
	minRoomSize = 4 // Minimum size of a room
	roomPadding = 2 // Padding between room and node edge
)

// NewBSPMapBuilder creates a BSP builder for a width x height level.
func NewBSPMapBuilder(depth, width, height int, rng RNG) *BSPMapBuilder {
	return &BSPMapBuilder{base: newBase(depth, width, height, rng)}
}

// Name returns the name of this generator
func (b *BSPMapBuilder) Name() string {
	return "BSP Tree"
}

// BuildMap partitions the map, puts a room in every leaf and joins sibling
// subtrees with corridors.
func (b *BSPMapBuilder) BuildMap() error {
	b.reset()

	// Leave a 1 cell border for perimeter walls
	root := &bspNode{
		x:      1,
		y:      1,
		width:  b.width - 2,
		height: b.height - 2,
	}
	if root.width < minRoomSize+roomPadding || root.height < minRoomSize+roomPadding {
		return b.finish(b.Name())
	}

	// More splits at deeper levels for more rooms
	minSize := minNodeSize - (b.depth / 3)
	if minSize < minLeafSize {
		minSize = minLeafSize
	}
	b.split(root, minSize)
	b.createRooms(root)
	b.rooms = collectRooms(root)
	for _, room := range b.rooms {
		world.ApplyRoom(b.m, room)
	}
	b.connectRooms(root)

	return b.finish(b.Name())
}

// split recursively splits a BSP node
func (b *BSPMapBuilder) split(node *bspNode, minSize int) {
	canSplitW := node.width >= minSize*2
	canSplitH := node.height >= minSize*2

	// Decide split direction
	var splitHorizontal bool
	switch {
	case node.width > node.height && canSplitW:
		splitHorizontal = false
	case node.height > node.width && canSplitH:
		splitHorizontal = true
	case canSplitW && canSplitH:
		splitHorizontal = b.rng.Intn(2) == 0
	case canSplitW:
		splitHorizontal = false
	case canSplitH:
		splitHorizontal = true
	default:
		return // Too small to split
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minSize + b.rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + b.rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	b.split(node.left, minSize)
	b.split(node.right, minSize)
}

// createRooms creates a room in every leaf. A room's carved interior
// (x1+1..x2) always lies inside its leaf, so rooms never touch.
func (b *BSPMapBuilder) createRooms(node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			b.createRooms(node.left)
		}
		if node.right != nil {
			b.createRooms(node.right)
		}
		return
	}

	roomWidth := b.roomSize(node.width)
	roomHeight := b.roomSize(node.height)
	roomX := node.x + b.rng.Intn(node.width-roomWidth)
	roomY := node.y + b.rng.Intn(node.height-roomHeight)

	room := world.NewRect(roomX, roomY, roomWidth, roomHeight)
	node.room = &room
}

// roomSize picks a room extent for a leaf extent of span.
func (b *BSPMapBuilder) roomSize(span int) int {
	most := span - roomPadding
	if most <= minRoomSize {
		return most
	}
	return minRoomSize + b.rng.Intn(most-minRoomSize+1)
}

// connectRooms connects rooms with corridors
func (b *BSPMapBuilder) connectRooms(node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := b.pickRoom(node.left)
	rightRoom := b.pickRoom(node.right)
	if leftRoom != nil && rightRoom != nil {
		b.connect(leftRoom.Center(), rightRoom.Center(), b.rng.Intn(2) == 0)
	}

	b.connectRooms(node.left)
	b.connectRooms(node.right)
}

// pickRoom returns a room from a subtree (picks randomly from leaves)
func (b *BSPMapBuilder) pickRoom(node *bspNode) *world.Rect {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *world.Rect
	if node.left != nil {
		leftRoom = b.pickRoom(node.left)
	}
	if node.right != nil {
		rightRoom = b.pickRoom(node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if b.rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}
	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree in left-to-right order
func collectRooms(node *bspNode) []world.Rect {
	var rooms []world.Rect
	if node.room != nil {
		rooms = append(rooms, *node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}
	return rooms
}
