package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/borkshop/terrabrush/internal/ecs"
)

const (
	tPoint ecs.Type = 1 << iota
	tTag
)

type recorder struct {
	created   []ecs.ID
	destroyed []ecs.ID
}

func (r *recorder) EntityCreated(ent ecs.Entity, _ ecs.Type) {
	r.created = append(r.created, ent.ID)
}

func (r *recorder) EntityDestroyed(ent ecs.Entity, _ ecs.Type) {
	r.destroyed = append(r.destroyed, ent.ID)
}

func TestBasics(t *testing.T) {
	var sc ecs.Scope
	assert.Equal(t, 0, sc.Len())
	assert.Equal(t, ecs.Entity{}, sc.Create(0))

	e1 := sc.Create(tPoint)
	e2 := sc.Create(tPoint | tTag)
	assert.Equal(t, 2, sc.Len())
	assert.Equal(t, uint64(0), e1.Seq())
	assert.Equal(t, uint64(1), e2.Seq())
	assert.True(t, e2.Type().HasAll(tPoint|tTag))
	assert.False(t, e1.Type().HasAny(tTag))

	assert.True(t, e1.AddType(tTag))
	assert.False(t, e1.AddType(tTag), "no change")
	assert.True(t, e1.DeleteType(tTag))
	assert.Equal(t, tPoint, e1.Type())

	seq1 := e1.Seq()
	assert.True(t, e1.Destroy())
	assert.Equal(t, 1, sc.Len())
	assert.Panics(t, func() { e1.Type() }, "stale generation")

	e3 := sc.Create(tPoint)
	assert.Equal(t, seq1, e3.Seq(), "sequence reused")
	assert.NotEqual(t, e1.ID, e3.ID, "generation bumped")
	assert.Equal(t, e3, sc.Entity(e3.ID))
}

func TestWatch(t *testing.T) {
	var sc ecs.Scope
	var tags recorder
	sc.Watch(tTag, 0, &tags)

	e1 := sc.Create(tPoint)
	e2 := sc.Create(tPoint | tTag)
	assert.Equal(t, []ecs.ID{e2.ID}, tags.created)

	e1.AddType(tTag)
	assert.Equal(t, []ecs.ID{e2.ID, e1.ID}, tags.created)

	e1.AddType(tPoint)
	assert.Len(t, tags.created, 2, "unrelated bits do not dispatch")

	e2.DeleteType(tTag)
	e1.Destroy()
	assert.Equal(t, []ecs.ID{e2.ID, e1.ID}, tags.destroyed)
}

func TestEach(t *testing.T) {
	var sc ecs.Scope
	a := sc.Create(tPoint)
	b := sc.Create(tPoint | tTag)
	c := sc.Create(tPoint)
	sc.Create(tTag)
	c.AddType(tTag)

	var all, tagged []ecs.ID
	sc.Each(tPoint, func(ent ecs.Entity) { all = append(all, ent.ID) })
	sc.Each(tPoint|tTag, func(ent ecs.Entity) { tagged = append(tagged, ent.ID) })
	assert.Equal(t, []ecs.ID{a.ID, b.ID, c.ID}, all)
	assert.Equal(t, []ecs.ID{b.ID, c.ID}, tagged)

	b.Destroy()
	all = all[:0]
	sc.Each(tPoint, func(ent ecs.Entity) { all = append(all, ent.ID) })
	assert.Equal(t, []ecs.ID{a.ID, c.ID}, all)
}

func TestValid(t *testing.T) {
	var sc ecs.Scope
	assert.False(t, sc.Valid(0))
	e := sc.Create(tPoint)
	assert.True(t, sc.Valid(e.ID))
	assert.False(t, sc.Valid(e.ID+1), "beyond allocated sequence")
	e.Destroy()
	assert.False(t, sc.Valid(e.ID))
}
