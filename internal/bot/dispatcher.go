package bot

import "github.com/gammazero/workerpool"

// dispatcher runs tasks on single-worker pools sharded by user id, so one
// user's messages run in arrival order while different users run in parallel.
type dispatcher struct {
	shards []*workerpool.WorkerPool
}

func newDispatcher(shards int) *dispatcher {
	if shards < 1 {
		shards = 1
	}
	d := &dispatcher{shards: make([]*workerpool.WorkerPool, shards)}
	for i := range d.shards {
		d.shards[i] = workerpool.New(1)
	}
	return d
}

func (d *dispatcher) Submit(userID int64, task func()) {
	d.shards[uint64(userID)%uint64(len(d.shards))].Submit(task)
}

// Stop waits for queued tasks to finish.
func (d *dispatcher) Stop() {
	for _, p := range d.shards {
		p.StopWait()
	}
}
