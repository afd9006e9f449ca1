// Package search implements the two-phase branch-and-bound recursion of the
// orienteering tour search over a prepared Network.
//
// A branch is always in exactly one phase:
//
//	Outbound (DepthSearch) ──► Inbound (BackPath) ──► Terminated
//
// Outbound extends the walk away from the start, neighbour by neighbour in
// descending measure order, as long as the neighbour can still be left with
// enough budget to return (distance(n) + time + w <= budget) and the
// connecting edge has not been used twice. Whenever some neighbour was
// infeasible, or every neighbour is already on the walk, the branch also
// turns back.
//
// Inbound walks toward the start. At every vertex the branch consults the
// vertex's memo: a previously recorded backtrack with more interest, or
// with equal interest in less time, dominates the branch and it is
// abandoned. Reaching the start offers the closed walk to Best.
//
// Shared state of one run:
//
//	Token – lock-free cancellation flag checked before every unit of work
//	Memo  – (interest, time) per vertex, each behind its own mutex
//	Best  – the incumbent closed walk behind one mutex
//
// With a Spawner the engine runs in parallel mode: each outbound branch
// leaving the seeded start becomes a new task. The rest of that branch,
// including its outbound→inbound transitions, runs inline in the task.
package search
