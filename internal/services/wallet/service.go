// Package wallet provides wallet management: creation, lookup with a
// redis read-through cache, listing, label updates and deletion. Balance
// mutation is the transaction service's job; nothing here writes the
// balance after creation.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"log"

	"walletledger/internal/models"
	"walletledger/internal/repositories"

	"github.com/shopspring/decimal"
)

type service struct {
	repo  repositories.LedgerRepository
	cache repositories.CacheRepository
}

// NewService creates a new wallet service.
func NewService(repo repositories.LedgerRepository, cache repositories.CacheRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	return &service{repo: repo, cache: cache}
}

func (s *service) Create(ctx context.Context, label string, balance decimal.Decimal) (*models.Wallet, error) {
	w := &models.Wallet{
		Label:   label,
		Balance: balance,
	}
	if err := s.repo.CreateWallet(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	return w, nil
}

func (s *service) Get(ctx context.Context, id uint) (*models.Wallet, error) {
	var cached models.Wallet
	if err := s.cache.Get(ctx, CacheKey(id), &cached); err == nil {
		return &cached, nil
	}

	w, err := s.repo.GetWallet(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.cache.Set(ctx, CacheKey(id), w, CacheDuration); err != nil {
		log.Printf("failed to cache wallet %d: %v", id, err)
	}
	return w, nil
}

func (s *service) List(ctx context.Context, q repositories.WalletQuery) ([]models.Wallet, int64, error) {
	return s.repo.ListWallets(ctx, q)
}

func (s *service) UpdateLabel(ctx context.Context, id uint, label string) (*models.Wallet, error) {
	w, err := s.repo.GetWallet(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	w.Label = label
	if err := s.repo.UpdateWallet(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}

	s.invalidate(ctx, id)
	return w, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.DeleteWallet(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *service) invalidate(ctx context.Context, id uint) {
	if err := s.cache.Delete(ctx, CacheKey(id)); err != nil {
		log.Printf("failed to invalidate wallet cache for %d: %v", id, err)
	}
}
