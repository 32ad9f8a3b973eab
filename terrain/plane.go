package terrain

import (
	"github.com/borkshop/terrabrush/internal/ecs"
	"github.com/borkshop/terrabrush/selection"
	"github.com/borkshop/terrabrush/vec"
)

const (
	typeVertex ecs.Type = 1 << iota
	// typeSelected is the transient tag a stroke puts on touched vertices.
	typeSelected
)

// PlaneOptions describes a flat, subdivided grid of vertices.
type PlaneOptions struct {
	// Width and Depth are world extents along X and Z.
	Width, Depth float32

	// Subdivisions is the number of interior cuts along each axis, so a
	// side has Subdivisions+2 vertices.
	Subdivisions int

	// Origin places the plane's center in the world.
	Origin vec.Vec3

	// Color is the initial color of every vertex.
	Color Color
}

// DefaultPlaneOptions is a 40 by 40 plane with 12 subdivisions at the origin.
func DefaultPlaneOptions() PlaneOptions {
	return PlaneOptions{
		Width:        40,
		Depth:        40,
		Subdivisions: 12,
		Color:        White,
	}
}

// Plane is a grid of vertex entities. It is both a Store and, through a tag
// on its vertex entities, a selection.Tracker.
type Plane struct {
	scope  ecs.Scope
	origin vec.Vec3

	// component data, indexed by entity sequence
	local  []vec.Vec3
	radius []float32
	color  []Color

	selected   []ecs.ID
	selectedAt map[ecs.ID]int
}

var (
	_ Store             = (*Plane)(nil)
	_ selection.Tracker = (*Plane)(nil)
)

// NewPlane spawns one vertex entity per grid point, row by row along X.
// Non-positive extents are treated as 1 and negative subdivisions as none.
func NewPlane(opts PlaneOptions) *Plane {
	if opts.Width <= 0 {
		opts.Width = 1
	}
	if opts.Depth <= 0 {
		opts.Depth = 1
	}
	if opts.Subdivisions < 0 {
		opts.Subdivisions = 0
	}

	p := &Plane{origin: opts.Origin, selectedAt: make(map[ecs.ID]int)}
	p.scope.Watch(typeVertex, 0, vertexData{p})
	p.scope.Watch(typeSelected, 0, selectionIndex{p})

	side := opts.Subdivisions + 2
	dx := opts.Width / float32(side-1)
	dz := opts.Depth / float32(side-1)
	radius := dx / 2
	if dz < dx {
		radius = dz / 2
	}

	for k := 0; k < side; k++ {
		for i := 0; i < side; i++ {
			seq := p.scope.Create(typeVertex).Seq()
			p.local[seq] = vec.V3(
				-opts.Width/2+float32(i)*dx,
				0,
				-opts.Depth/2+float32(k)*dz,
			)
			p.radius[seq] = radius
			p.color[seq] = opts.Color
		}
	}
	return p
}

// vertexData allocates component storage as vertex entities appear.
type vertexData struct{ p *Plane }

func (vd vertexData) EntityCreated(ent ecs.Entity, _ ecs.Type) {
	p := vd.p
	for seq := int(ent.Seq()); len(p.local) <= seq; {
		p.local = append(p.local, vec.Vec3{})
		p.radius = append(p.radius, 0)
		p.color = append(p.color, Color{})
	}
}

func (vd vertexData) EntityDestroyed(ecs.Entity, ecs.Type) {}

// selectionIndex keeps the list of tagged entities, so that clearing a
// selection touches only what was selected.
type selectionIndex struct{ p *Plane }

func (si selectionIndex) EntityCreated(ent ecs.Entity, _ ecs.Type) {
	p := si.p
	p.selectedAt[ent.ID] = len(p.selected)
	p.selected = append(p.selected, ent.ID)
}

func (si selectionIndex) EntityDestroyed(ent ecs.Entity, _ ecs.Type) {
	p := si.p
	i, ok := p.selectedAt[ent.ID]
	if !ok {
		return
	}
	last := len(p.selected) - 1
	if i != last {
		moved := p.selected[last]
		p.selected[i] = moved
		p.selectedAt[moved] = i
	}
	p.selected = p.selected[:last]
	delete(p.selectedAt, ent.ID)
}

// Len returns the number of vertices.
func (p *Plane) Len() int {
	return len(p.local)
}

// Origin returns the plane's world placement.
func (p *Plane) Origin() vec.Vec3 {
	return p.origin
}

// SetOrigin moves the plane, and so every vertex's global position.
func (p *Plane) SetOrigin(o vec.Vec3) {
	p.origin = o
}

func (p *Plane) vertex(ent ecs.Entity) Vertex {
	seq := ent.Seq()
	return Vertex{
		ID:     ID(ent.ID),
		Local:  p.local[seq],
		Global: p.local[seq].Add(p.origin),
		Radius: p.radius[seq],
		Color:  p.color[seq],
	}
}

// Each visits every vertex in spawn order.
func (p *Plane) Each(fn func(Vertex)) {
	p.scope.Each(typeVertex, func(ent ecs.Entity) {
		fn(p.vertex(ent))
	})
}

// Vertex looks up a single vertex.
func (p *Plane) Vertex(id ID) (Vertex, bool) {
	ent, ok := p.entity(id)
	if !ok {
		return Vertex{}, false
	}
	return p.vertex(ent), true
}

func (p *Plane) entity(id ID) (ecs.Entity, bool) {
	if !p.scope.Valid(ecs.ID(id)) {
		return ecs.Entity{}, false
	}
	ent := p.scope.Entity(ecs.ID(id))
	return ent, ent.Type().HasAll(typeVertex)
}

// SetHeight sets a vertex's local height; unknown ids are ignored.
func (p *Plane) SetHeight(id ID, y float32) {
	if ent, ok := p.entity(id); ok {
		seq := ent.Seq()
		p.local[seq] = p.local[seq].WithY(y)
	}
}

// SetColor sets a vertex's color; unknown ids are ignored.
func (p *Plane) SetColor(id ID, c Color) {
	if ent, ok := p.entity(id); ok {
		p.color[ent.Seq()] = c
	}
}

// IsMarked returns true if the vertex carries the selection tag.
func (p *Plane) IsMarked(id ID) bool {
	ent, ok := p.entity(id)
	return ok && ent.Type().HasAll(typeSelected)
}

// Mark tags the vertex as selected.
func (p *Plane) Mark(id ID) {
	if ent, ok := p.entity(id); ok {
		ent.AddType(typeSelected)
	}
}

// Unmark removes the selection tag.
func (p *Plane) Unmark(id ID) {
	if ent, ok := p.entity(id); ok {
		ent.DeleteType(typeSelected)
	}
}

// ClearAll removes the selection tag from every selected vertex.
func (p *Plane) ClearAll() {
	for n := len(p.selected); n > 0; n = len(p.selected) {
		p.scope.Entity(p.selected[n-1]).DeleteType(typeSelected)
	}
}

// Marked returns the number of selected vertices.
func (p *Plane) Marked() int {
	return len(p.selected)
}
