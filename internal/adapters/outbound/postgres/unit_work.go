package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// UnitOfWork implements the domain.UnitOfWork interface for Postgres.
type UnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

// NewUnitOfWork creates a new instance of UnitOfWork.
func NewUnitOfWork(db *sql.DB) *UnitOfWork {
	return &UnitOfWork{
		db: db,
	}
}

// Execute runs fn within a database transaction. The transaction is rolled
// back when fn fails and committed otherwise.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(&UnitOfWork{db: u.db, tx: tx}); err != nil {
		return rollback(tx, err)
	}
	return tx.Commit()
}

// MoodSelection returns the MoodSelectionRepository for this UnitOfWork.
func (u *UnitOfWork) MoodSelection() domain.MoodSelectionRepository {
	return NewMoodSelectionRepository(u.getBaseRunner())
}

// Outbox returns the OutboxRepository for this UnitOfWork.
func (u *UnitOfWork) Outbox() domain.OutboxRepository {
	return NewOutboxRepository(u.getBaseRunner())
}

// getBaseRunner returns the transaction when one is open, the DB otherwise.
func (u *UnitOfWork) getBaseRunner() squirrel.BaseRunner {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// InitUnitOfWork is responsible for initializing the UnitOfWork dependency.
type InitUnitOfWork struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the UnitOfWork in the dependency container.
func (iuw InitUnitOfWork) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.UnitOfWork](NewUnitOfWork(iuw.DB))
	return ctx, nil
}

// InitOutboxRepository registers the non-transactional OutboxRepository.
type InitOutboxRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the OutboxRepository in the dependency container.
func (i InitOutboxRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.OutboxRepository](NewOutboxRepository(i.DB))
	return ctx, nil
}
