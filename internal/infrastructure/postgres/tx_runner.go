package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/construmart/construmart-api/internal/application/onboarding"
	"github.com/construmart/construmart-api/internal/domain/repository"
)

// Ensure TxRunner implements onboarding.TxRunner.
var _ onboarding.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOnboarding inicia una transacción, ejecuta fn con los repos del
// onboarding atados a la tx y hace Commit o Rollback: User, EncryptedCode y
// Customer persisten como unidad o no persisten.
func (r *TxRunner) RunOnboarding(ctx context.Context, fn func(
	users repository.UserRepository,
	codes repository.EncryptedCodeRepository,
	customers repository.CustomerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	users := NewUserRepository(tx)
	codes := NewEncryptedCodeRepository(tx)
	customers := NewCustomerRepository(tx)

	if err := fn(users, codes, customers); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
