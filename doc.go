// Package orienteer finds the most rewarding closed walk through a map of
// control points within a time budget.
//
// A map is an undirected graph: vertices carry a non-negative interest,
// edges a positive travel time. A walk starts and ends at the start vertex,
// collects each vertex's interest once, may travel each road at most twice
// and must fit in the budget. The best walk maximizes interest and, among
// equals, minimizes time.
//
// Packages:
//
//	core/       - map graph: vertices, roads, start vertex, best-path marks
//	path/       - persistent walk with per-road use counts
//	prepare/    - distance, depth and measure labels compiled into a Network
//	search/     - branch-and-bound engine: outbound and return recursion
//	run/        - run lifecycle, task registry, cancellation, progress reports
//	pool/       - fixed worker pool behind the parallel search
//	builder/    - random and fixture maps
//	mapio/      - JSON and YAML map documents
//	store/      - stored maps and run history
//	render/     - Graphviz drawing of a map and its best walk
//
// Quick example:
//
//	    S───A
//	    │   │
//	    B───C
//
//	net, _ := prepare.Prepare(g)
//	c := run.New(net)
//	_ = c.Start(ctx, run.Params{Budget: 12, Parallel: true})
//	_ = c.Wait(ctx)
//	best := c.BestPath()
//
// The orienteer command (cmd/orienteer) wraps these packages.
package orienteer
