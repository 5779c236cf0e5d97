package render

import (
	"sync/atomic"
	"testing"
)

func TestRowPoolVisitsEveryRowOnce(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 16} {
		const rows = 50
		var seen [rows]atomic.Int32

		newRowPool(workers, func(y int) { seen[y].Add(1) }).run(rows)

		for y := range seen {
			if n := seen[y].Load(); n != 1 {
				t.Errorf("workers=%d: row %d visited %d times", workers, y, n)
			}
		}
	}
}

func TestRowPoolNoRows(t *testing.T) {
	called := false
	newRowPool(4, func(int) { called = true }).run(0)
	if called {
		t.Error("job called with no rows")
	}
}
