package cpm

// Graph is an arena of tasks indexed by ID, with dependency edges stored as
// ID lists rather than embedded object references. Dependent lists are
// derived by inverting dependency lists; they are never stored by callers.
type Graph struct {
	tasks      map[int]*Task
	deps       map[int][]int // id -> dependency ids (known, non-self)
	dependents map[int][]int // id -> ids of tasks depending on it
	order      []int         // task-list order of ids
}

// NewGraph builds a graph from the task set. Dependency IDs with no
// corresponding task and self-references are dropped; one dangling reference
// must not block scheduling of unrelated tasks.
func NewGraph(tasks []Task) *Graph {
	g := &Graph{
		tasks:      make(map[int]*Task, len(tasks)),
		deps:       make(map[int][]int),
		dependents: make(map[int][]int),
		order:      make([]int, 0, len(tasks)),
	}

	for i := range tasks {
		t := &tasks[i]
		if _, ok := g.tasks[t.ID]; ok {
			continue // duplicate id, first wins
		}
		g.tasks[t.ID] = t
		g.order = append(g.order, t.ID)
	}

	for _, id := range g.order {
		for _, dep := range g.tasks[id].DependencyIDs {
			if dep == id {
				continue
			}
			if _, ok := g.tasks[dep]; !ok {
				continue
			}
			g.deps[id] = append(g.deps[id], dep)
			g.dependents[dep] = append(g.dependents[dep], id)
		}
	}

	return g
}

// Len returns the number of tasks in the graph.
func (g *Graph) Len() int {
	return len(g.tasks)
}

// Has reports whether a task with the given ID exists.
func (g *Graph) Has(id int) bool {
	_, ok := g.tasks[id]
	return ok
}

// IDs returns all task IDs in task-list order.
func (g *Graph) IDs() []int {
	return g.order
}

// Dependencies returns the dependency IDs of a task, in the task's order.
func (g *Graph) Dependencies(id int) []int {
	return g.deps[id]
}

// Dependents returns the IDs of tasks that depend on the given task,
// in task-list order.
func (g *Graph) Dependents(id int) []int {
	return g.dependents[id]
}

// WouldCreateCycle reports whether adding the edge "taskID depends on depID"
// would let taskID reach itself. The check is fully transitive: it fires when
// depID depends on taskID directly or through any chain of dependencies, not
// merely on a direct edge. A self-reference always counts as a cycle.
//
// The editing surface must call this before admitting a new dependency edge
// and exclude any candidate for which it returns true.
func (g *Graph) WouldCreateCycle(taskID, depID int) bool {
	if taskID == depID {
		return true
	}
	return g.dependsOnTransitively(depID, taskID, make(map[int]bool))
}

// dependsOnTransitively reports whether from depends on to, directly or
// through other dependencies. The visited set bounds the recursion should the
// graph already contain a cycle.
func (g *Graph) dependsOnTransitively(from, to int, visited map[int]bool) bool {
	if visited[from] {
		return false
	}
	visited[from] = true
	for _, dep := range g.deps[from] {
		if dep == to || g.dependsOnTransitively(dep, to, visited) {
			return true
		}
	}
	return false
}

// TopoOrder returns the task IDs in topological order (dependencies before
// dependents) using Kahn's algorithm, seeded in task-list order for
// determinism. Tasks caught in a cycle never reach in-degree zero and are
// omitted from the result; callers skip them rather than recursing forever.
func (g *Graph) TopoOrder() []int {
	inDegree := make(map[int]int, len(g.tasks))
	for _, id := range g.order {
		inDegree[id] = len(g.deps[id])
	}

	var queue []int
	for _, id := range g.order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]int, 0, len(g.tasks))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		for _, succ := range g.dependents[id] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	return order
}
