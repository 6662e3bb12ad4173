// Package generator builds dungeon levels. Every algorithm implements
// MapBuilder so callers can swap strategies per level.
package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"malefactor/pkg/engine/dice"
	"malefactor/pkg/engine/world"
	"malefactor/pkg/game/ecs"
	"malefactor/pkg/game/spawner"
)

// RNG is the injected random source; *rand.Rand satisfies it.
type RNG = dice.RNG

// ErrGenerationExhausted is returned when a builder places no rooms within
// its attempt budget.
var ErrGenerationExhausted = errors.New("map generation exhausted its attempts")

// ErrUnknownBuilder is returned by New for an unrecognised kind.
var ErrUnknownBuilder = errors.New("unknown map builder")

// MapBuilder is implemented by every level generation algorithm.
type MapBuilder interface {
	// BuildMap generates a fresh level, replacing any previous result.
	BuildMap() error
	// SpawnEntities populates every room except the first (the player's).
	SpawnEntities(store *ecs.World)
	Map() *world.Map
	StartingPosition() world.Point
	Rooms() []world.Rect
	Name() string
}

// Builder kinds accepted by New.
const (
	KindSimple = "simple"
	KindBSP    = "bsp"
	KindWalker = "walker"
	KindRandom = "random"
)

// Kinds lists the accepted builder kinds.
func Kinds() []string {
	return []string{KindSimple, KindBSP, KindWalker, KindRandom}
}

// New returns the builder for kind. KindRandom picks one of the concrete
// builders using rng.
func New(kind string, depth, width, height int, rng RNG) (MapBuilder, error) {
	switch strings.ToLower(kind) {
	case KindSimple:
		return NewSimpleMapBuilder(depth, width, height, rng), nil
	case KindBSP:
		return NewBSPMapBuilder(depth, width, height, rng), nil
	case KindWalker:
		return NewLineWalkerMapBuilder(depth, width, height, rng), nil
	case KindRandom:
		concrete := []string{KindSimple, KindBSP, KindWalker}
		return New(concrete[rng.Intn(len(concrete))], depth, width, height, rng)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBuilder, kind)
}

// Build runs builder.BuildMap, retrying the whole level up to retries times
// while generation is exhausted. Other errors are returned immediately.
func Build(builder MapBuilder, retries int) error {
	if retries < 1 {
		retries = 1
	}

	var err error
	for attempt := 1; attempt <= retries; attempt++ {
		err = builder.BuildMap()
		if err == nil {
			if verr := builder.Map().Validate(); verr != nil {
				return fmt.Errorf("%s: %w", builder.Name(), verr)
			}
			logLevel(builder, attempt)
			return nil
		}
		if !errors.Is(err, ErrGenerationExhausted) {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"builder": builder.Name(),
			"attempt": attempt,
		}).Debug("level generation exhausted, retrying")
	}
	return fmt.Errorf("%s: %d attempts: %w", builder.Name(), retries, err)
}

func logLevel(builder MapBuilder, attempt int) {
	m := builder.Map()
	stairs, _ := m.Find(world.DownStairs)
	start := builder.StartingPosition()
	if !world.Reachable(m, start).Has(stairs) {
		logrus.WithFields(logrus.Fields{"builder": builder.Name(), "start": start, "stairs": stairs}).
			Warn("stairs not reachable from the start")
	}
	logrus.WithFields(logrus.Fields{
		"builder": builder.Name(),
		"depth":   m.Depth,
		"rooms":   len(builder.Rooms()),
		"start":   start,
		"stairs":  stairs,
		"attempt": attempt,
	}).Info("level generated")
}

// base carries the state every builder shares: the map it owns, the rooms
// in placement order, and where the player starts.
type base struct {
	depth, width, height int
	rng                  RNG

	m     *world.Map
	rooms []world.Rect
	start world.Point
}

func newBase(depth, width, height int, rng RNG) base {
	return base{
		depth:  depth,
		width:  width,
		height: height,
		rng:    rng,
		m:      world.NewMap(depth, width, height),
	}
}

// reset discards any previous result before a build.
func (b *base) reset() {
	b.m = world.NewMap(b.depth, b.width, b.height)
	b.rooms = nil
	b.start = world.Point{}
}

// finish places the stairs at the centre of the last room and the start at
// the centre of the first.
func (b *base) finish(name string) error {
	if len(b.rooms) == 0 {
		return fmt.Errorf("%s at depth %d: %w", name, b.depth, ErrGenerationExhausted)
	}
	stairs := b.rooms[len(b.rooms)-1].Center()
	b.m.SetTile(stairs.X, stairs.Y, world.DownStairs)
	b.start = b.rooms[0].Center()
	return nil
}

// connect joins two points with an L-shaped corridor. With horizontalFirst
// the horizontal leg runs along from's row.
func (b *base) connect(from, to world.Point, horizontalFirst bool) {
	if horizontalFirst {
		world.ApplyHorizontalTunnel(b.m, from.X, to.X, from.Y)
		world.ApplyVerticalTunnel(b.m, from.Y, to.Y, to.X)
		return
	}
	world.ApplyVerticalTunnel(b.m, from.Y, to.Y, from.X)
	world.ApplyHorizontalTunnel(b.m, from.X, to.X, to.Y)
}

func (b *base) SpawnEntities(store *ecs.World) {
	for i, room := range b.rooms {
		if i == 0 {
			continue
		}
		spawner.SpawnRoom(store, room, b.depth, b.rng)
	}
}

func (b *base) Map() *world.Map {
	return b.m
}

func (b *base) StartingPosition() world.Point {
	return b.start
}

func (b *base) Rooms() []world.Rect {
	return b.rooms
}
