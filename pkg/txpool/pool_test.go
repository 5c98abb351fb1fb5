package txpool

import (
	"fmt"
	"sync"
	"testing"

	"github.com/peermint/peermint/pkg/types"
	"github.com/stretchr/testify/assert"
)

// Helper function to create a test transaction with a recognizable amount.
func createTestTransaction(i int) types.Transaction {
	return types.NewTransaction(
		types.Address(fmt.Sprintf("sender-%d", i)),
		types.Address(fmt.Sprintf("recipient-%d", i)),
		uint64(i),
	)
}

func TestPool(t *testing.T) {
	tests := []struct {
		name      string
		operation func(pool *Pool)
		assertion func(t *testing.T, pool *Pool)
	}{
		{
			name: "AddPreservesInsertionOrder",
			operation: func(pool *Pool) {
				for i := 0; i < 5; i++ {
					pool.Add(createTestTransaction(i))
				}
			},
			assertion: func(t *testing.T, pool *Pool) {
				pending := pool.Pending()
				assert.Len(t, pending, 5)
				for i, tx := range pending {
					assert.Equal(t, uint64(i), tx.Amount, "transactions must come back in insertion order")
				}
			},
		},
		{
			name: "ClearEmptiesPool",
			operation: func(pool *Pool) {
				for i := 0; i < 3; i++ {
					pool.Add(createTestTransaction(i))
				}
				pool.Clear()
			},
			assertion: func(t *testing.T, pool *Pool) {
				assert.Equal(t, 0, pool.Size())
				assert.Empty(t, pool.Pending())
			},
		},
		{
			name:      "PendingOnEmptyPool",
			operation: func(pool *Pool) {},
			assertion: func(t *testing.T, pool *Pool) {
				assert.Empty(t, pool.Pending(), "an empty pool yields no transactions")
			},
		},
		{
			name: "PendingReturnsACopy",
			operation: func(pool *Pool) {
				pool.Add(createTestTransaction(1))
				pending := pool.Pending()
				pending[0].Amount = 777
			},
			assertion: func(t *testing.T, pool *Pool) {
				assert.Equal(t, uint64(1), pool.Pending()[0].Amount,
					"mutating a returned slice must not affect the pool")
			},
		},
		{
			name: "ConcurrentAdd",
			operation: func(pool *Pool) {
				var wg sync.WaitGroup
				for i := 0; i < 100; i++ {
					wg.Add(1)
					go func(i int) {
						defer wg.Done()
						pool.Add(createTestTransaction(i))
					}(i)
				}
				wg.Wait()
			},
			assertion: func(t *testing.T, pool *Pool) {
				assert.Equal(t, 100, pool.Size())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool()
			tt.operation(pool)
			tt.assertion(t, pool)
		})
	}
}
