package transforms

import (
	"fmt"
	"sort"
)

// dependencyGraph holds "runs before" edges between named passes.
type dependencyGraph struct {
	byName  map[string]Transformer
	next    map[string][]string
	pending map[string]int // unresolved predecessors per pass
}

func newDependencyGraph(transforms []Transformer) (*dependencyGraph, error) {
	g := &dependencyGraph{
		byName:  make(map[string]Transformer, len(transforms)),
		next:    make(map[string][]string, len(transforms)),
		pending: make(map[string]int, len(transforms)),
	}
	for _, t := range transforms {
		name := t.Name()
		if _, dup := g.byName[name]; dup {
			return nil, fmt.Errorf("duplicate transformer name: %q", name)
		}
		g.byName[name] = t
		g.pending[name] = 0
	}
	return g, nil
}

// addEdge records that before must run ahead of after. Both must be known.
func (g *dependencyGraph) addEdge(before, after string) {
	g.next[before] = append(g.next[before], after)
	g.pending[after]++
}

func (g *dependencyGraph) link(t Transformer) error {
	name := t.Name()
	deps := t.Dependencies()
	for _, dep := range deps.MustRunAfter {
		if _, ok := g.byName[dep]; !ok {
			return fmt.Errorf("transform %q depends on missing transform %q", name, dep)
		}
		g.addEdge(dep, name)
	}
	for _, after := range deps.MustRunBefore {
		if _, ok := g.byName[after]; !ok {
			return fmt.Errorf("transform %q requires missing transform %q", name, after)
		}
		g.addEdge(name, after)
	}
	return nil
}

// BuildPipeline orders transforms so every declared dependency is honored.
// Among passes that are ready at the same time the lexically smallest name
// runs first, which makes the order independent of registration order.
func BuildPipeline(transforms []Transformer) ([]Transformer, error) {
	g, err := newDependencyGraph(transforms)
	if err != nil {
		return nil, err
	}
	for _, t := range transforms {
		if err := g.link(t); err != nil {
			return nil, err
		}
	}

	var ready []string
	for name, n := range g.pending {
		if n == 0 {
			ready = append(ready, name)
		}
	}

	ordered := make([]Transformer, 0, len(transforms))
	for len(ready) > 0 {
		sort.Strings(ready)
		name := ready[0]
		ready = ready[1:]
		ordered = append(ordered, g.byName[name])

		for _, succ := range g.next[name] {
			g.pending[succ]--
			if g.pending[succ] == 0 {
				ready = append(ready, succ)
			}
		}
	}

	if len(ordered) < len(transforms) {
		var stuck []string
		for name, n := range g.pending {
			if n > 0 {
				stuck = append(stuck, name)
			}
		}
		sort.Strings(stuck)
		return nil, fmt.Errorf("circular dependency detected involving transforms: %v", stuck)
	}
	return ordered, nil
}
