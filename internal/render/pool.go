package render

import "sync"

// rowPool fans image rows out to a fixed set of goroutines.
// Each row writes a disjoint part of the frame, so jobs share no state.
type rowPool struct {
	workers int
	job     func(y int)
}

func newRowPool(workers int, job func(y int)) *rowPool {
	if workers < 1 {
		workers = 1
	}
	return &rowPool{workers: workers, job: job}
}

// run executes job for rows 0..rows-1 and waits for all of them.
func (p *rowPool) run(rows int) {
	if p.workers == 1 {
		for y := 0; y < rows; y++ {
			p.job(y)
		}
		return
	}

	queue := make(chan int, rows)
	for y := 0; y < rows; y++ {
		queue <- y
	}
	close(queue)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range queue {
				p.job(y)
			}
		}()
	}
	wg.Wait()
}
