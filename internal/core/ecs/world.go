package ecs

// World owns the entity pool, the set of registered component stores, and a
// deferred destruction queue. Systems mark entities during their scan and
// the cleanup phase flushes the queue at tick end, so removal is always safe
// to request while iterating a store.
type World struct {
	pool         *Pool
	stores       []Removable
	destroyQueue []EntityID
}

func NewWorld() *World {
	return &World{
		pool:         NewPool(),
		stores:       make([]Removable, 0, 8),
		destroyQueue: make([]EntityID, 0, 32),
	}
}

// RegisterStore adds a component store to the bulk-cleanup set.
func (w *World) RegisterStore(s Removable) {
	w.stores = append(w.stores, s)
}

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// MarkDestroyed queues an entity for end-of-tick destruction.
func (w *World) MarkDestroyed(id EntityID) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// FlushDestroyed destroys every queued entity and clears its components
// from all registered stores. Called once per tick by the cleanup system.
func (w *World) FlushDestroyed() {
	for _, id := range w.destroyQueue {
		for _, s := range w.stores {
			s.Remove(id)
		}
		w.pool.Destroy(id)
	}
	w.destroyQueue = w.destroyQueue[:0]
}
