package build

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// job is one screenshot to produce: a template rendered for a platform.
type job struct {
	platform string
	template string
	run      func() error
}

// runParallel processes jobs concurrently using a worker pool.
// If any job returns an error, remaining jobs are abandoned and the first
// error is returned. Cancelling ctx stops workers between jobs.
func runParallel(ctx context.Context, jobs []job, workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if len(jobs) == 0 {
		return nil
	}
	// Don't create more workers than jobs.
	if workers > len(jobs) {
		workers = len(jobs)
	}

	queue := make(chan job, len(jobs))
	errCh := make(chan error, 1) // buffered so the first error doesn't block
	var once sync.Once           // ensure we only send one error
	var wg sync.WaitGroup

	fail := func(err error) {
		once.Do(func() { errCh <- err })
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				if err := ctx.Err(); err != nil {
					fail(err)
					return
				}
				if err := j.run(); err != nil {
					fail(fmt.Errorf("rendering %s/%s: %w", j.platform, j.template, err))
					return
				}
			}
		}()
	}

	for _, j := range jobs {
		queue <- j
	}
	close(queue)

	wg.Wait()
	close(errCh)

	if err, ok := <-errCh; ok {
		return err
	}
	return nil
}

// runSequential processes jobs in order, checking ctx before each one.
func runSequential(ctx context.Context, jobs []job) error {
	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := j.run(); err != nil {
			return fmt.Errorf("rendering %s/%s: %w", j.platform, j.template, err)
		}
	}
	return nil
}
