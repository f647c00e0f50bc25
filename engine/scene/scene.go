package scene

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// Scene manages a registry of Entities and the parent/child relations between
// them. Entity transforms are authored in parent-local space; the scene
// resolves world-space poses on demand (WorldTransform) or in bulk each frame
// (ResolveWorld, parallelized across root subtrees).
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Spawn adds an Entity to the scene. Entities with a zero ID are
	// assigned the next free ID.
	//
	// Panics if the entity is nil.
	//
	// Parameters:
	//   - e: the Entity to add
	//
	// Returns:
	//   - uint64: the assigned entity ID
	Spawn(e Entity) uint64

	// Get retrieves an Entity by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the entity's unique ID
	//
	// Returns:
	//   - Entity: the entity or nil
	Get(id uint64) Entity

	// Remove removes an Entity from the registry by ID. The entity's
	// children become roots; its own parent link is cleared.
	//
	// Parameters:
	//   - id: the entity's unique ID
	Remove(id uint64)

	// Count returns the number of Entities in the registry.
	//
	// Returns:
	//   - int: entity count
	Count() int

	// SetParent makes child's transform local to parent. Passing parent 0
	// detaches the child, making its transform world-space again. Both
	// entities must exist and the relation must not introduce a cycle.
	//
	// Parameters:
	//   - child: ID of the entity to reparent
	//   - parent: ID of the new parent, or 0 to detach
	//
	// Returns:
	//   - error: error if either entity is missing or the relation would cycle
	SetParent(child, parent uint64) error

	// Parent returns the ID of the entity's parent, or 0 if the entity is a
	// root or unknown.
	//
	// Parameters:
	//   - id: the child entity ID
	//
	// Returns:
	//   - uint64: the parent ID or 0
	Parent(id uint64) uint64

	// Children returns the IDs of the entity's direct children, ascending.
	//
	// Parameters:
	//   - id: the parent entity ID
	//
	// Returns:
	//   - []uint64: the child IDs, nil if none
	Children(id uint64) []uint64

	// WorldTransform resolves an entity's world-space pose by composing
	// local transforms up the parent chain.
	//
	// Parameters:
	//   - id: the entity ID
	//
	// Returns:
	//   - Transform: the world-space pose
	//   - bool: false if the entity does not exist
	WorldTransform(id uint64) (Transform, bool)

	// ResolveWorld recomputes world-space poses for every entity, walking
	// each root subtree on the scene's worker pool. The returned slice is
	// ordered by entity ID and reused across calls; it is valid until the
	// next ResolveWorld.
	//
	// Returns:
	//   - []WorldPose: every entity's world pose
	ResolveWorld() []WorldPose

	// Clear removes all entities and parent relations from the scene.
	Clear()
}

// WorldPose is one entity's resolved world-space transform, as produced by
// ResolveWorld.
type WorldPose struct {
	ID    uint64
	World Transform
}

type scene struct {
	mu   *sync.RWMutex
	name string

	registry map[uint64]Entity
	parents  map[uint64]uint64
	nextID   uint64

	// posePool is reused by ResolveWorld each frame to avoid per-frame
	// allocations once the entity count stabilizes.
	posePool []WorldPose

	// resolvePool manages a bounded set of reusable goroutines for the
	// parallel subtree walk in ResolveWorld. Workers persist across frames,
	// avoiding per-frame goroutine spawn/teardown overhead.
	resolvePool    worker.DynamicWorkerPool
	resolveWorkers int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given name.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		registry:       make(map[uint64]Entity),
		parents:        make(map[uint64]uint64),
		nextID:         1,
		resolveWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the resolve pool after options so WithResolveWorkers can
	// override the default. Queue size of 256 accommodates typical root
	// counts with headroom.
	s.resolvePool = worker.NewDynamicWorkerPool(s.resolveWorkers, 256, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Spawn(e Entity) uint64 {
	if e == nil {
		panic("scene: Spawn requires a non-nil Entity")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID() == 0 {
		e.SetID(s.nextID)
		s.nextID++
	} else if e.ID() >= s.nextID {
		s.nextID = e.ID() + 1
	}
	s.registry[e.ID()] = e
	return e.ID()
}

func (s *scene) Get(id uint64) Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
	delete(s.parents, id)
	for child, parent := range s.parents {
		if parent == id {
			delete(s.parents, child)
		}
	}
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) SetParent(child, parent uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.registry[child]; !ok {
		return fmt.Errorf("scene: unknown child entity %d", child)
	}
	if parent == 0 {
		delete(s.parents, child)
		return nil
	}
	if _, ok := s.registry[parent]; !ok {
		return fmt.Errorf("scene: unknown parent entity %d", parent)
	}
	// Walk up from the prospective parent; finding the child means the
	// relation would close a cycle.
	for id := parent; id != 0; id = s.parents[id] {
		if id == child {
			return fmt.Errorf("scene: parenting %d to %d would create a cycle", child, parent)
		}
	}
	s.parents[child] = parent
	return nil
}

func (s *scene) Parent(id uint64) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parents[id]
}

func (s *scene) Children(id uint64) []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []uint64
	for child, parent := range s.parents {
		if parent == id {
			out = append(out, child)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s *scene) WorldTransform(id uint64) (Transform, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ent, ok := s.registry[id]
	if !ok {
		return Transform{}, false
	}
	world := ent.Local()
	for pid := s.parents[id]; pid != 0; pid = s.parents[pid] {
		parent, ok := s.registry[pid]
		if !ok {
			break
		}
		world = parent.Local().Mul(world)
	}
	return world, true
}

func (s *scene) ResolveWorld() []WorldPose {
	// Snapshot the graph structure so the subtree walks run without holding
	// the scene lock.
	s.mu.RLock()
	nodes := make(map[uint64]Entity, len(s.registry))
	childIDs := make(map[uint64][]uint64, len(s.parents))
	roots := make([]uint64, 0, len(s.registry))
	for id, ent := range s.registry {
		nodes[id] = ent
		if parent, ok := s.parents[id]; ok {
			childIDs[parent] = append(childIDs[parent], id)
		} else {
			roots = append(roots, id)
		}
	}
	s.mu.RUnlock()

	results := make([][]WorldPose, len(roots))
	var wg sync.WaitGroup
	for i, root := range roots {
		wg.Add(1)
		slot := i
		rootID := root
		s.resolvePool.SubmitTask(worker.Task{
			ID: slot,
			Do: func() (any, error) {
				defer wg.Done()

				var poses []WorldPose
				var walk func(id uint64, parentWorld Transform, hasParent bool)
				walk = func(id uint64, parentWorld Transform, hasParent bool) {
					ent := nodes[id]
					world := ent.Local()
					if hasParent {
						world = parentWorld.Mul(world)
					}
					poses = append(poses, WorldPose{ID: id, World: world})
					for _, child := range childIDs[id] {
						walk(child, world, true)
					}
				}
				walk(rootID, Transform{}, false)

				results[slot] = poses
				return nil, nil
			},
		})
	}
	wg.Wait()

	s.posePool = s.posePool[:0]
	for _, poses := range results {
		s.posePool = append(s.posePool, poses...)
	}
	sort.Slice(s.posePool, func(i, j int) bool { return s.posePool[i].ID < s.posePool[j].ID })
	return s.posePool
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[uint64]Entity)
	s.parents = make(map[uint64]uint64)
	s.nextID = 1
}
