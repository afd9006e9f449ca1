// Package run owns the lifecycle of orienteering searches over one prepared
// Network.
//
// A Coordinator starts, cancels and observes runs:
//
//	c := run.New(net, run.WithPool(p))
//	if err := c.Start(ctx, run.Params{Budget: 20, Parallel: true}); err != nil {
//		return err // configuration error, the run did not start
//	}
//	_ = c.Wait(ctx)
//	res := c.BestPath()
//
// Every unit of search work is a tracked task: it is registered when handed
// to the pool and deregistered when it returns, panics or observes
// cancellation. The run is finalized (timer stopped, RunFinished reported)
// by whichever task empties the registry, atomically with that removal.
//
// Starting a new run cancels the previous one and waits for its tasks
// before the per-vertex memo is reset.
package run
