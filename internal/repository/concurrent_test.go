package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/releaser/internal/db"
	"github.com/alexanderramin/releaser/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentSequenceAllocation verifies that parallel allocations inside
// separate transactions never hand out the same number twice.
func TestConcurrentSequenceAllocation(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()
	uow := testutil.NewTestUoW(database)

	proj := testutil.NewTestProject("Parallel")
	require.NoError(t, NewSQLiteProjectRepo(database).Create(ctx, proj))

	const workers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[int]bool{}
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var got int
			err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				var err error
				got, err = NewSQLiteProjectSequenceRepo(tx).NextProjectSeq(ctx, proj.ID, SeqIssue)
				return err
			})
			if err != nil {
				t.Errorf("allocate: %v", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if seen[got] {
				t.Errorf("sequence %d allocated twice", got)
			}
			seen[got] = true
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers)
}
