// Package evaluate computes f at a batch of newly inserted vertices,
// optionally in parallel, and classifies each result into a geom.Quadrant.
//
// The parallel path uses a fixed pool of worker goroutines pulling
// batches off a channel and signaling completion through a
// sync.WaitGroup, rather than spawning one goroutine per point.
package evaluate

import (
	"math/cmplx"
	"runtime"
	"sync"

	"github.com/deadsy/grpf/geom"
)

// Func is a user-supplied complex function. It must be pure and reentrant
// if the caller enables parallel evaluation. A panic inside Func is
// recovered and treated the same as a non-finite return value.
type Func func(complex128) complex128

// Result is the outcome of evaluating f at one vertex.
type Result struct {
	ID    geom.VertexID
	Value complex128
	Quad  geom.Quadrant
}

// evalReq is one unit of work handed to a worker: a slice of inputs, a
// slice to write outputs into, and a WaitGroup the dispatcher waits on.
type evalReq struct {
	ids []geom.VertexID
	in  []complex128
	out []Result
	fn  Func
	wg  *sync.WaitGroup
}

func safeCall(fn Func, z complex128) (v complex128) {
	defer func() {
		if recover() != nil {
			v = cmplx.NaN()
		}
	}()
	return fn(z)
}

func process(r evalReq) {
	for i, z := range r.in {
		v := safeCall(r.fn, z)
		r.out[i] = Result{ID: r.ids[i], Value: v, Quad: geom.Classify(v)}
	}
	r.wg.Done()
}

// batchSize amortizes channel overhead across many evaluations; splitting
// finer than this doesn't measurably improve throughput.
const batchSize = 100

// Batch evaluates fn at each (id, zUser) pair. When parallel is true, work
// is split across runtime.NumCPU() workers and joined before Batch
// returns. Each worker only ever writes into its own slice region of the
// result slice, so no locking is needed for the writes themselves.
func Batch(fn Func, ids []geom.VertexID, zUser []complex128, parallel bool) []Result {
	out := make([]Result, len(ids))
	if len(ids) == 0 {
		return out
	}

	if !parallel || len(ids) <= batchSize {
		wg := &sync.WaitGroup{}
		wg.Add(1)
		process(evalReq{ids: ids, in: zUser, out: out, fn: fn, wg: wg})
		wg.Wait()
		return out
	}

	jobs := make(chan evalReq, runtime.NumCPU())
	var workers sync.WaitGroup
	for w := 0; w < runtime.NumCPU(); w++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for r := range jobs {
				process(r)
			}
		}()
	}

	wg := &sync.WaitGroup{}
	for start := 0; start < len(ids); start += batchSize {
		end := start + batchSize
		if end > len(ids) {
			end = len(ids)
		}
		wg.Add(1)
		jobs <- evalReq{
			ids: ids[start:end],
			in:  zUser[start:end],
			out: out[start:end],
			fn:  fn,
			wg:  wg,
		}
	}
	close(jobs)
	wg.Wait()
	workers.Wait()

	return out
}
