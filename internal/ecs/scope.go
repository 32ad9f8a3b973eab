// Package ecs is a minimal entity component system: a Scope owns entity IDs
// and each entity's Type, a bit set naming the components it has. Component
// data lives with whoever watches those bits, indexed by entity sequence
// number.
package ecs

import "fmt"

// Scope is the frame of reference for entity IDs. It owns entity types and
// dispatches type changes to watchers.
type Scope struct {
	typs   []genType
	free   []ID
	watAll []Type
	watAny []Type
	wats   []Watcher
}

type genType struct {
	gen  uint8
	Type Type
}

// ID identifies an entity within a Scope: an 8-bit generation above a 56-bit
// sequence number. The zero ID is never a valid entity.
type ID uint64

const (
	idGenShift    = 56
	idSeqMask  ID = 1<<idGenShift - 1
)

func makeID(gen uint8, seq uint64) ID {
	return ID(gen)<<idGenShift | ID(seq)&idSeqMask
}

func (id ID) gen() uint8  { return uint8(id >> idGenShift) }
func (id ID) seq() uint64 { return uint64(id & idSeqMask) }

func (id ID) String() string {
	if id == 0 {
		return "ZeroID"
	}
	return fmt.Sprintf("%d(gen:%d)", id.seq(), id.gen())
}

// Type describes entity component composition; an entity only exists while
// its type is non-zero.
type Type uint64

// HasAll returns true only if the receiver has all of the argument bits.
func (typ Type) HasAll(t Type) bool { return typ&t == t }

// HasAny returns true only if the receiver has any of the argument bits.
func (typ Type) HasAny(t Type) bool { return typ&t != 0 }

func (typ Type) String() string {
	return fmt.Sprintf("T+%016X", uint64(typ))
}

// Entity is a handle within a Scope's ID space.
type Entity struct {
	Scope *Scope
	ID    ID
}

func (ent Entity) String() string {
	return fmt.Sprintf("entity(%v %v)", ent.ID, ent.Type())
}

// Watcher is told about entity type changes; uses include allocating
// component data and maintaining collections of tagged entities.
type Watcher interface {
	EntityCreated(Entity, Type)
	EntityDestroyed(Entity, Type)
}

// Len returns the number of existent entities.
func (sc *Scope) Len() int {
	return len(sc.typs) - len(sc.free)
}

// Watch calls wat when all of the given bits become set on an entity (any
// bits when all is zero), and again when any of them are cleared. A non-zero
// any additionally requires one of its bits to be among the changed ones.
func (sc *Scope) Watch(all, any Type, wat Watcher) {
	sc.watAll = append(sc.watAll, all)
	sc.watAny = append(sc.watAny, any)
	sc.wats = append(sc.wats, wat)
}

// Create a new entity with the given type.
func (sc *Scope) Create(newType Type) Entity {
	if newType == 0 {
		return Entity{}
	}
	ent := Entity{sc, sc.alloc()}
	sc.typs[ent.ID.seq()].Type = newType
	ent.dispatchCreate(newType, newType)
	return ent
}

func (sc *Scope) alloc() ID {
	if i := len(sc.free) - 1; i >= 0 {
		id := sc.free[i]
		sc.free = sc.free[:i]
		return id
	}
	sc.typs = append(sc.typs, genType{gen: 1})
	return makeID(1, uint64(len(sc.typs)-1))
}

// Entity resolves an ID to a handle; it panics on a stale generation.
func (sc *Scope) Entity(id ID) Entity {
	if id == 0 {
		return Entity{}
	}
	ent := Entity{sc, id}
	ent.typ()
	return ent
}

// Each calls fn for every entity that has all of the given type bits, in
// sequence order. fn must not create or destroy entities.
func (sc *Scope) Each(all Type, fn func(Entity)) {
	for seq, gt := range sc.typs {
		if gt.Type != 0 && gt.Type.HasAll(all) {
			fn(Entity{sc, makeID(gt.gen, uint64(seq))})
		}
	}
}

func (ent Entity) typ() genType {
	gt := ent.Scope.typs[ent.ID.seq()]
	if gen := ent.ID.gen(); gen == 0 || gen != gt.gen {
		panic(fmt.Sprintf("mis-use of entity %v, expected generation %v", ent.ID, gt.gen))
	}
	return gt
}

// Type returns the entity's type.
func (ent Entity) Type() Type {
	if ent.Scope == nil {
		return 0
	}
	return ent.typ().Type
}

// Seq returns the entity's sequence number after validating its generation;
// component data should be indexed by it.
func (ent Entity) Seq() uint64 {
	ent.typ()
	return ent.ID.seq()
}

// AddType sets type bits on the entity, returning true if any changed.
func (ent Entity) AddType(t Type) bool {
	return ent.SetType(ent.Type() | t)
}

// DeleteType clears type bits from the entity, returning true if any changed.
func (ent Entity) DeleteType(t Type) bool {
	return ent.SetType(ent.Type() &^ t)
}

// Destroy the entity; a convenience for SetType(0).
func (ent Entity) Destroy() bool {
	return ent.SetType(0)
}

// SetType replaces the entity's type, dispatching to watchers. Setting zero
// destroys the entity and bumps its generation so that stale handles panic.
func (ent Entity) SetType(newType Type) bool {
	if ent.Scope == nil || ent.ID == 0 {
		panic("invalid entity handle")
	}
	prior := ent.typ()
	change := prior.Type ^ newType
	if change == 0 {
		return false
	}

	seq := ent.ID.seq()
	ent.Scope.typs[seq].Type = newType

	if destroyed := prior.Type & change; destroyed != 0 {
		ent.dispatchDestroy(newType, destroyed)
	}

	if newType == 0 {
		gen := prior.gen + 1
		if gen == 0 {
			gen = 1
		}
		ent.Scope.typs[seq].gen = gen
		ent.Scope.free = append(ent.Scope.free, makeID(gen, seq))
		return true
	}

	if created := newType & change; created != 0 {
		ent.dispatchCreate(newType, created)
	}
	return true
}

func (ent Entity) dispatchCreate(newType, created Type) {
	sc := ent.Scope
	for i := 0; i < len(sc.wats); i++ {
		all, any := sc.watAll[i], sc.watAny[i]
		if (all == 0 || (newType.HasAll(all) && created.HasAny(all))) &&
			(any == 0 || created.HasAny(any)) {
			sc.wats[i].EntityCreated(ent, created)
		}
	}
}

func (ent Entity) dispatchDestroy(newType, destroyed Type) {
	sc := ent.Scope
	for i := 0; i < len(sc.wats); i++ {
		all, any := sc.watAll[i], sc.watAny[i]
		if (all == 0 || (!newType.HasAll(all) && destroyed.HasAny(all))) &&
			(any == 0 || destroyed.HasAny(any)) {
			sc.wats[i].EntityDestroyed(ent, destroyed)
		}
	}
}

// Valid returns true if the id names an existent entity of the current
// generation.
func (sc *Scope) Valid(id ID) bool {
	seq := id.seq()
	if id == 0 || seq >= uint64(len(sc.typs)) {
		return false
	}
	gt := sc.typs[seq]
	return gt.gen == id.gen() && gt.Type != 0
}
