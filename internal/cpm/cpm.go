// Package cpm implements Critical Path Method scheduling over a task
// dependency graph: a forward pass for earliest start/finish times, a
// backward pass for latest times and slack, and extraction of a single
// representative zero-slack chain.
//
// The engine is a pure, synchronous computation. It performs no I/O, never
// mutates its input, and is safe to invoke concurrently on independent
// snapshots.
package cpm

import "time"

// Schedule computes the full schedule for one snapshot of tasks at the given
// reference time. It always returns a best-effort result: missing dependency
// references are skipped, and tasks caught in a cycle (should one slip past
// the edge-admission guard) are left with unset date fields rather than
// aborting the run.
func Schedule(tasks []Task, now time.Time) *Result {
	now = Midnight(now)
	g := NewGraph(tasks)

	res := &Result{
		Tasks:      make(map[int]*ScheduledTask, g.Len()),
		ProjectEnd: now,
	}
	for _, id := range g.IDs() {
		t := g.tasks[id]
		res.Tasks[id] = &ScheduledTask{
			Task:     *t,
			Duration: ResolveDuration(t.DueDate, now),
		}
	}

	order := g.TopoOrder()
	forwardPass(g, res, order, now)
	backwardPass(g, res, order)

	res.CriticalPath = extractCriticalPath(g, res)
	for _, id := range res.CriticalPath {
		res.Tasks[id].CriticalPath = res.CriticalPath
	}

	return res
}

// forwardPass computes earliest start/finish in topological order and derives
// the project end date. A task with no dependencies starts at the reference
// time; otherwise it starts at the maximum earliest finish among its
// dependencies.
func forwardPass(g *Graph, res *Result, order []int, now time.Time) {
	for _, id := range order {
		st := res.Tasks[id]

		start := now
		for _, dep := range g.Dependencies(id) {
			dt := res.Tasks[dep]
			if dt.EarliestFinish != nil && dt.EarliestFinish.After(start) {
				start = *dt.EarliestFinish
			}
		}

		es := start
		ef := es.AddDate(0, 0, st.Duration)
		st.EarliestStart = &es
		st.EarliestFinish = &ef

		if ef.After(res.ProjectEnd) {
			res.ProjectEnd = ef
		}
	}
}

// backwardPass computes latest finish/start and slack in reverse topological
// order, anchored to the project end date. A task with no dependents finishes
// at its own due date if present, else at the project end; otherwise at the
// minimum latest start among its dependents.
func backwardPass(g *Graph, res *Result, order []int) {
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		st := res.Tasks[id]

		var lf time.Time
		set := false
		for _, dep := range g.Dependents(id) {
			dt := res.Tasks[dep]
			if dt.LatestStart == nil {
				continue
			}
			if !set || dt.LatestStart.Before(lf) {
				lf = *dt.LatestStart
				set = true
			}
		}
		if !set {
			if st.DueDate != nil {
				lf = Midnight(*st.DueDate)
			} else {
				lf = res.ProjectEnd
			}
		}

		ls := lf.AddDate(0, 0, -st.Duration)
		st.LatestFinish = &lf
		st.LatestStart = &ls

		// Clamped at zero: a due date earlier than strictly required never
		// reports negative slack.
		slack := ls.Sub(*st.EarliestStart).Hours() / 24
		if slack < 0 {
			slack = 0
		}
		st.Slack = slack
		st.IsCritical = slack == 0
	}
}

// extractCriticalPath picks the first zero-slack sink in task-list order and
// traces backward through the first zero-slack dependency at each step. The
// result is one representative chain, not an enumeration of all chains tied
// for minimum slack.
func extractCriticalPath(g *Graph, res *Result) []int {
	sink, found := 0, false
	for _, id := range g.IDs() {
		st := res.Tasks[id]
		if len(g.Dependents(id)) == 0 && st.Scheduled() && st.Slack == 0 {
			sink = id
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	path := []int{sink}
	seen := map[int]bool{sink: true} // recursion guard only; the graph is acyclic by construction
	cur := sink
	for {
		next, ok := 0, false
		for _, dep := range g.Dependencies(cur) {
			dt := res.Tasks[dep]
			if dt.Scheduled() && dt.Slack == 0 && !seen[dep] {
				next = dep
				ok = true
				break
			}
		}
		if !ok {
			break
		}
		path = append([]int{next}, path...)
		seen[next] = true
		cur = next
	}

	return path
}
