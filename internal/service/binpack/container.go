// Package binpack models a locker as a continuous box and places
// rectangular items in it with axis-aligned rotation.
package binpack

import (
	"github.com/ANGELZzz6/Hako-sub000/internal/model"
)

type Point struct {
	X, Y, Z float64
}

type Size struct {
	Length, Width, Height float64
}

func (s Size) Volume() float64 { return s.Length * s.Width * s.Height }

type Placement struct {
	ItemID    string
	ProductID string
	Origin    Point
	Size      Size
	// Rotation indexes the distinct orientations of the item, 0 is identity.
	Rotation int
}

// Overlaps is a strict interval test; boxes that only touch do not overlap.
func (p Placement) Overlaps(o Placement) bool {
	return p.Origin.X < o.Origin.X+o.Size.Length && o.Origin.X < p.Origin.X+p.Size.Length &&
		p.Origin.Y < o.Origin.Y+o.Size.Width && o.Origin.Y < p.Origin.Y+p.Size.Width &&
		p.Origin.Z < o.Origin.Z+o.Size.Height && o.Origin.Z < p.Origin.Z+p.Size.Height
}

type Container struct {
	size   Size
	placed []Placement
}

func NewContainer(length, width, height float64) *Container {
	return &Container{size: Size{Length: length, Width: width, Height: height}}
}

// NewLocker returns an empty 50x50x50 locker.
func NewLocker() *Container {
	return NewContainer(model.LockerEdge, model.LockerEdge, model.LockerEdge)
}

func (c *Container) Size() Size { return c.size }

func (c *Container) Placed() []Placement {
	out := make([]Placement, len(c.placed))
	copy(out, c.placed)
	return out
}

func (c *Container) UsedVolume() float64 {
	var v float64
	for _, p := range c.placed {
		v += p.Size.Volume()
	}
	return v
}

func (c *Container) UsagePercentage() float64 {
	total := c.size.Volume()
	if total == 0 {
		return 0
	}
	return c.UsedVolume() / total * 100
}

// Orientations lists the distinct axis-aligned rotations of d, identity first.
func Orientations(d model.Dimensions) []Size {
	l, w, h := d.Length, d.Width, d.Height
	all := [...]Size{
		{l, w, h},
		{l, h, w},
		{w, l, h},
		{w, h, l},
		{h, l, w},
		{h, w, l},
	}

	out := make([]Size, 0, len(all))
	for _, s := range all {
		dup := false
		for _, seen := range out {
			if seen == s {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, s)
		}
	}
	return out
}

// CanFitInPosition returns the first rotation of d that stays inside the
// container and clears every placed item when its corner is at origin.
func (c *Container) CanFitInPosition(d model.Dimensions, origin Point) (Placement, bool) {
	for i, s := range Orientations(d) {
		if origin.X+s.Length > c.size.Length ||
			origin.Y+s.Width > c.size.Width ||
			origin.Z+s.Height > c.size.Height {
			continue
		}

		candidate := Placement{Origin: origin, Size: s, Rotation: i}
		if c.collides(candidate) {
			continue
		}
		return candidate, true
	}

	return Placement{}, false
}

func (c *Container) collides(p Placement) bool {
	for _, other := range c.placed {
		if p.Overlaps(other) {
			return true
		}
	}
	return false
}

// FindBestPosition tries the container origin when empty, otherwise the
// extreme points of every placed item, in placement order. Layouts that are
// valid but not reachable from those points are reported as not fitting.
func (c *Container) FindBestPosition(d model.Dimensions) (Placement, bool) {
	if !d.Valid() {
		return Placement{}, false
	}

	for _, pt := range c.candidates() {
		if p, ok := c.CanFitInPosition(d, pt); ok {
			return p, true
		}
	}

	return Placement{}, false
}

func (c *Container) candidates() []Point {
	if len(c.placed) == 0 {
		return []Point{{}}
	}

	out := make([]Point, 0, len(c.placed)*7)
	for _, p := range c.placed {
		x, y, z := p.Origin.X, p.Origin.Y, p.Origin.Z
		dx, dy, dz := x+p.Size.Length, y+p.Size.Width, z+p.Size.Height

		for _, pt := range [...]Point{
			{dx, y, z},
			{x, dy, z},
			{x, y, dz},
			{dx, dy, z},
			{dx, y, dz},
			{x, dy, dz},
			{dx, dy, dz},
		} {
			if pt.X < c.size.Length && pt.Y < c.size.Width && pt.Z < c.size.Height {
				out = append(out, pt)
			}
		}
	}
	return out
}

// Place finds a position for d and records it.
func (c *Container) Place(itemID, productID string, d model.Dimensions) (Placement, bool) {
	p, ok := c.FindBestPosition(d)
	if !ok {
		return Placement{}, false
	}

	p.ItemID = itemID
	p.ProductID = productID
	c.placed = append(c.placed, p)
	return p, true
}

func (c *Container) Fits(d model.Dimensions) bool {
	_, ok := c.FindBestPosition(d)
	return ok
}

var _ model.Fitter = (*Container)(nil)
