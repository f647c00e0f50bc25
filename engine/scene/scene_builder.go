package scene

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithEntities adds initial entities to the scene.
// Entities without IDs will be assigned new IDs.
//
// Parameters:
//   - entities: the entities to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithEntities(entities ...Entity) SceneBuilderOption {
	return func(s *scene) {
		for _, e := range entities {
			if e == nil {
				continue
			}
			if e.ID() == 0 {
				e.SetID(s.nextID)
				s.nextID++
			} else if e.ID() >= s.nextID {
				s.nextID = e.ID() + 1
			}
			s.registry[e.ID()] = e
		}
	}
}

// WithResolveWorkers sets the number of worker goroutines used by the
// parallel subtree walk in ResolveWorld. Defaults to runtime.NumCPU()-1.
// Higher values may improve throughput for scenes with many root subtrees;
// lower values reduce scheduling overhead for simple scenes.
//
// Parameters:
//   - n: the number of resolve workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithResolveWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.resolveWorkers = n
	}
}
