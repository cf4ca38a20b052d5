// Package transaction implements the balance-mutation transaction
// processor: the atomic, overdraft-safe application of a signed amount to
// a wallet under concurrent access.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log"

	"walletledger/internal/models"
	"walletledger/internal/repositories"
	"walletledger/internal/services/wallet"
)

type service struct {
	repo    repositories.LedgerRepository
	cache   repositories.CacheRepository
	metrics MetricsCollector
}

// NewService creates a new transaction service.
func NewService(repo repositories.LedgerRepository, cache repositories.CacheRepository, metrics MetricsCollector) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}
	return &service{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
	}
}

// Apply runs the whole check-and-write sequence inside one unit of work,
// holding an exclusive lock on the wallet row throughout:
//
//	lock wallet -> check balance invariant -> save wallet -> insert transaction -> commit
//
// Concurrent applies against the same wallet serialize on the row lock, so
// the effective order of balance updates is the lock grant order. A txid
// collision rolls the balance write back along with the insert; no failure
// path leaves partial state behind.
func (s *service) Apply(ctx context.Context, req ApplyRequest) (*models.Transaction, error) {
	txn := &models.Transaction{
		WalletID: req.WalletID,
		TxID:     req.TxID,
		Amount:   req.Amount,
	}

	err := s.repo.WithinTransaction(ctx, func(r repositories.LedgerRepository) error {
		locked, err := r.LockWalletForUpdate(ctx, req.WalletID)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return ErrWalletNotFound
			}
			return fmt.Errorf("failed to lock wallet %d: %w", req.WalletID, err)
		}

		next, ok := NextBalance(locked.Balance, req.Amount)
		if !ok {
			return &InsufficientFundsError{Available: locked.Balance}
		}

		locked.Balance = next
		if err := r.UpdateWallet(ctx, locked); err != nil {
			return err
		}

		if err := r.CreateTransaction(ctx, txn); err != nil {
			if errors.Is(err, repositories.ErrDuplicateTxid) {
				return ErrDuplicateTxid
			}
			return err
		}
		return nil
	})
	if err != nil {
		s.metrics.RecordError("apply", err.Error())
		return nil, err
	}

	// The balance changed; drop the stale cached wallet. A failed delete
	// only extends staleness until the TTL expires.
	if err := s.cache.Delete(ctx, wallet.CacheKey(req.WalletID)); err != nil {
		log.Printf("failed to invalidate wallet cache for %d: %v", req.WalletID, err)
	}

	s.metrics.RecordApplied(req.Amount)
	return txn, nil
}

func (s *service) Get(ctx context.Context, id uint) (*models.Transaction, error) {
	txn, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return txn, nil
}

func (s *service) List(ctx context.Context, q repositories.TransactionQuery) ([]models.Transaction, int64, error) {
	return s.repo.ListTransactions(ctx, q)
}
