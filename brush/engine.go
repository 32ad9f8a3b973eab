package brush

import (
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/borkshop/terrabrush/noise"
	"github.com/borkshop/terrabrush/selection"
	"github.com/borkshop/terrabrush/terrain"
	"github.com/borkshop/terrabrush/vec"
)

// State is the stroke life cycle state of an Engine.
type State uint8

const (
	// Idle engines ignore Apply and Done.
	Idle State = iota
	// Started engines have begun a stroke but not yet applied it.
	Started
	// Active engines have applied their stroke at least once.
	Active
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Started:
		return "started"
	case Active:
		return "active"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Stats counts what the most recent Apply did.
type Stats struct {
	// Scanned is the number of vertices visited.
	Scanned int
	// Mutated is the number of vertices newly touched, whether or not the
	// brush ended up writing to them.
	Mutated int
	// Released is the number of vertices unmarked under ImmediateRelease.
	Released int
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy overrides the brush's default reselection policy.
func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		e.policy = p
		e.policySet = true
	}
}

// WithLogger sets the engine's logger, instead of the package Logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

type write struct {
	id     terrain.ID
	height float32
	color  terrain.Color
	paint  bool
}

// Engine drives one brush over one store. An Engine is not safe for
// concurrent use, and only one Engine should stroke a given store at a time.
type Engine struct {
	store terrain.Store
	marks *selection.Buffer
	log   *slog.Logger

	brush     Brush
	policy    Policy
	policySet bool

	state  State
	last   Stats
	writes []write

	// noise layers times brush weight, built at first use in a stroke
	field noise.Field3
}

// NewEngine creates an idle engine. A nil tracker is replaced with a
// selection.Set.
func NewEngine(store terrain.Store, tracker selection.Tracker, b Brush, opts ...Option) *Engine {
	if tracker == nil {
		tracker = &selection.Set{}
	}
	e := &Engine{
		store: store,
		marks: selection.NewBuffer(tracker),
		log:   Logger(),
		brush: clone(b),
	}
	for _, opt := range opts {
		opt(e)
	}
	if !e.policySet {
		e.policy = DefaultPolicy(e.brush)
	}
	return e
}

// State returns the life cycle state.
func (e *Engine) State() State { return e.state }

// Brush returns the current brush.
func (e *Engine) Brush() Brush { return e.brush }

// Policy returns the current reselection policy.
func (e *Engine) Policy() Policy { return e.policy }

// LastApply returns the counts from the most recent Apply of the current or
// last stroke.
func (e *Engine) LastApply() Stats { return e.last }

// SetBrush swaps the brush between strokes. Unless a policy was set
// explicitly the policy follows the new brush's default.
func (e *Engine) SetBrush(b Brush) {
	if e.state != Idle {
		e.log.Warn("brush change ignored during stroke", "state", e.state)
		return
	}
	e.brush = clone(b)
	if !e.policySet {
		e.policy = DefaultPolicy(e.brush)
	}
}

// SetPolicy sets the reselection policy between strokes.
func (e *Engine) SetPolicy(p Policy) {
	if e.state != Idle {
		e.log.Warn("policy change ignored during stroke", "state", e.state)
		return
	}
	e.policy = p
	e.policySet = true
}

// Started begins a stroke.
func (e *Engine) Started() {
	if e.state != Idle {
		e.log.Debug("started ignored", "state", e.state)
		return
	}
	e.state = Started
	e.last = Stats{}
	e.log.Debug("stroke started", "brush", fmt.Sprintf("%T", e.brush), "policy", e.policy)
}

// Done ends the stroke: every marker is cleared, and cached noise
// evaluators are dropped.
func (e *Engine) Done() {
	if e.state == Idle {
		e.log.Debug("done ignored", "state", e.state)
		return
	}
	e.marks.ClearAll()
	e.field = nil
	e.writes = e.writes[:0]
	e.state = Idle
	e.log.Debug("stroke done")
}

// Apply brushes every vertex whose footprint reaches within radius of
// center on the ground plane. Each vertex changes at most once while it
// stays marked; what happens to marked vertices outside the brush depends
// on the policy.
//
// The store is scanned first, then marks and writes are committed, so no
// vertex's outcome depends on another's within the same pass.
func (e *Engine) Apply(center vec.Vec3, radius float32) {
	if e.state == Idle {
		e.log.Debug("apply ignored", "state", e.state)
		return
	}
	if e.brush == nil {
		e.log.Warn("apply without a brush")
		return
	}
	if !(radius >= 0) {
		radius = 0
	}
	e.state = Active
	e.last = Stats{}
	e.writes = e.writes[:0]

	c := center.XZ()
	e.store.Each(func(v terrain.Vertex) {
		e.last.Scanned++
		near := v.Global.XZ().Distance(c) <= radius+v.Radius
		marked := e.marks.IsMarked(v.ID)
		switch {
		case near && !marked:
			e.marks.Mark(v.ID)
			e.last.Mutated++
			e.transform(v)
		case near:
		case marked && e.policy == ImmediateRelease:
			e.marks.Unmark(v.ID)
			e.last.Released++
		}
	})

	for _, w := range e.writes {
		if w.paint {
			e.store.SetColor(w.id, w.color)
		} else {
			e.store.SetHeight(w.id, w.height)
		}
	}
	e.marks.Commit()

	e.log.Debug("applied",
		"x", center.X, "z", center.Z, "radius", radius,
		"scanned", e.last.Scanned,
		"mutated", e.last.Mutated,
		"released", e.last.Released,
		"writes", len(e.writes))
}

func (e *Engine) sampleNoise(ls noise.Layers, weight float32, v terrain.Vertex) float32 {
	if e.field == nil {
		e.field = ls.Compile().Weighted(float64(weight))
	}
	return float32(e.field.Eval2(float64(v.Global.X), float64(v.Global.Z)))
}

func (e *Engine) setHeight(id terrain.ID, y float32) {
	e.writes = append(e.writes, write{id: id, height: y})
}

func (e *Engine) setColor(id terrain.ID, c terrain.Color) {
	e.writes = append(e.writes, write{id: id, color: c.Clamp(), paint: true})
}

func (e *Engine) transform(v terrain.Vertex) {
	switch b := e.brush.(type) {
	case HeightValue:
		e.setHeight(v.ID, v.Local.Y+b.Delta)

	case HeightTerraces:
		if y, ok := terrace(b.Bands, v.Local.Y); ok {
			e.setHeight(v.ID, y)
		}

	case HeightNoise:
		e.setHeight(v.ID, e.sampleNoise(b.Layers, b.Scale, v))

	case ColorValue:
		e.setColor(v.ID, b.Color)

	case ColorRange:
		if c, ok := gradient(b, v.Global.Y); ok {
			e.setColor(v.ID, c)
		}

	case ColorNoise:
		alpha := clamp01(e.sampleNoise(b.Layers, b.Weight, v))
		e.setColor(v.ID, terrain.RGBA(b.Base[0], b.Base[1], b.Base[2], alpha))

	default:
		panic(fmt.Sprintf("brush: unhandled brush type %T", b))
	}
}

// terrace returns the value of the first band containing y, bounds
// inclusive.
func terrace(bands []Terrace, y float32) (float32, bool) {
	for _, band := range bands {
		if y >= band.Min && y <= band.Max {
			return band.Value, true
		}
	}
	return y, false
}

func gradient(b ColorRange, h float32) (terrain.Color, bool) {
	if !(h >= b.Min && h <= b.Max) {
		return terrain.Color{}, false
	}
	span := b.Max - b.Min
	if span <= 0 {
		return b.AtMin, true
	}
	return b.AtMin.Lerp(b.AtMax, (h-b.Min)/span), true
}

func clamp01(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return math32.Min(math32.Max(v, 0), 1)
}
