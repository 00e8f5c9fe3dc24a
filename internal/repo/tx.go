package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repos bundles transaction-scoped repositories handed to an InTx callback.
// Every repo in the bundle shares the same transaction, so a trip update and
// its day-set replacement commit or roll back together.
type Repos struct {
	Trips   TripRepo
	Days    DayRepo
	Stops   StopRepo
	Budget  BudgetRepo
	Packing PackingRepo
}

// TxRunner runs a function against repositories bound to one transaction.
// If fn returns an error the transaction is rolled back and nothing is
// persisted; otherwise it is committed.
type TxRunner interface {
	InTx(ctx context.Context, fn func(r Repos) error) error
}

// pgTxRunner is the pgxpool-backed TxRunner used in production.
type pgTxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constructs a TxRunner backed by the provided connection pool.
func NewTxRunner(pool *pgxpool.Pool) TxRunner {
	return &pgTxRunner{pool: pool}
}

func (r *pgTxRunner) InTx(ctx context.Context, fn func(r Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.TxRunner.InTx: begin: %w", err)
	}
	// Rollback after commit is a no-op; this guarantees release on any path.
	defer tx.Rollback(ctx) //nolint:errcheck

	err = fn(Repos{
		Trips:   NewTripRepo(tx),
		Days:    NewDayRepo(tx),
		Stops:   NewStopRepo(tx),
		Budget:  NewBudgetRepo(tx),
		Packing: NewPackingRepo(tx),
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.TxRunner.InTx: commit: %w", err)
	}
	return nil
}
