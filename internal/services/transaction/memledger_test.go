package transaction

import (
	"context"
	"sync"
	"time"

	"walletledger/internal/models"
	"walletledger/internal/repositories"
)

// memLedger is an in-memory LedgerRepository honoring the same contract as
// the gorm implementation: LockWalletForUpdate takes a per-wallet
// exclusive lock held until the unit of work ends, writes stage until
// commit, and txid uniqueness is enforced at the store.
type memLedger struct {
	mu      sync.Mutex
	wallets map[uint]models.Wallet
	txs     []models.Transaction
	txids   map[string]bool
	nextTx  uint
	locks   map[uint]*sync.Mutex
}

func newMemLedger() *memLedger {
	return &memLedger{
		wallets: make(map[uint]models.Wallet),
		txids:   make(map[string]bool),
		locks:   make(map[uint]*sync.Mutex),
	}
}

func (m *memLedger) seedWallet(w models.Wallet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wallets[w.ID] = w
	m.locks[w.ID] = &sync.Mutex{}
}

func (m *memLedger) seedTxid(txid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txids[txid] = true
}

func (m *memLedger) walletBalance(id uint) models.Wallet {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wallets[id]
}

func (m *memLedger) transactionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.txs)
}

func (m *memLedger) WithinTransaction(ctx context.Context, fn func(repositories.LedgerRepository) error) error {
	uow := &memUnitOfWork{parent: m, walletWrites: make(map[uint]models.Wallet)}
	if err := fn(uow); err != nil {
		uow.rollback()
		return err
	}
	uow.commit()
	return nil
}

// memUnitOfWork stages writes until commit and releases wallet locks on
// every exit path.
type memUnitOfWork struct {
	parent       *memLedger
	locked       []uint
	walletWrites map[uint]models.Wallet
	txWrites     []*models.Transaction
	reserved     []string
}

func (u *memUnitOfWork) LockWalletForUpdate(ctx context.Context, id uint) (*models.Wallet, error) {
	u.parent.mu.Lock()
	lk, ok := u.parent.locks[id]
	u.parent.mu.Unlock()
	if !ok {
		return nil, repositories.ErrWalletNotFound
	}

	lk.Lock()
	u.locked = append(u.locked, id)

	u.parent.mu.Lock()
	w := u.parent.wallets[id]
	u.parent.mu.Unlock()
	return &w, nil
}

func (u *memUnitOfWork) UpdateWallet(ctx context.Context, wallet *models.Wallet) error {
	u.walletWrites[wallet.ID] = *wallet
	return nil
}

func (u *memUnitOfWork) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	u.parent.mu.Lock()
	defer u.parent.mu.Unlock()
	if u.parent.txids[tx.TxID] {
		return repositories.ErrDuplicateTxid
	}
	u.parent.txids[tx.TxID] = true
	u.reserved = append(u.reserved, tx.TxID)
	u.txWrites = append(u.txWrites, tx)
	return nil
}

func (u *memUnitOfWork) commit() {
	u.parent.mu.Lock()
	for id, w := range u.walletWrites {
		u.parent.wallets[id] = w
	}
	for _, tx := range u.txWrites {
		u.parent.nextTx++
		tx.ID = u.parent.nextTx
		tx.CreatedAt = time.Now()
		u.parent.txs = append(u.parent.txs, *tx)
	}
	u.parent.mu.Unlock()
	u.unlock()
}

func (u *memUnitOfWork) rollback() {
	u.parent.mu.Lock()
	for _, txid := range u.reserved {
		delete(u.parent.txids, txid)
	}
	u.parent.mu.Unlock()
	u.unlock()
}

func (u *memUnitOfWork) unlock() {
	for i := len(u.locked) - 1; i >= 0; i-- {
		u.parent.locks[u.locked[i]].Unlock()
	}
	u.locked = nil
}

// Read-side methods delegate to the committed state.

func (m *memLedger) GetTransaction(ctx context.Context, id uint) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.txs {
		if m.txs[i].ID == id {
			tx := m.txs[i]
			return &tx, nil
		}
	}
	return nil, repositories.ErrTransactionNotFound
}

func (m *memLedger) ListTransactions(ctx context.Context, q repositories.TransactionQuery) ([]models.Transaction, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Transaction, len(m.txs))
	copy(out, m.txs)
	return out, int64(len(out)), nil
}

// The processor never calls the remaining repository methods; they exist
// only to satisfy the interface.

func (m *memLedger) CreateWallet(ctx context.Context, w *models.Wallet) error {
	panic("not used by the transaction processor")
}

func (m *memLedger) GetWallet(ctx context.Context, id uint) (*models.Wallet, error) {
	panic("not used by the transaction processor")
}

func (m *memLedger) ListWallets(ctx context.Context, q repositories.WalletQuery) ([]models.Wallet, int64, error) {
	panic("not used by the transaction processor")
}

func (m *memLedger) UpdateWallet(ctx context.Context, w *models.Wallet) error {
	panic("not used by the transaction processor")
}

func (m *memLedger) DeleteWallet(ctx context.Context, id uint) error {
	panic("not used by the transaction processor")
}

func (m *memLedger) LockWalletForUpdate(ctx context.Context, id uint) (*models.Wallet, error) {
	panic("lock requires an open unit of work")
}

func (m *memLedger) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	panic("insert requires an open unit of work")
}

func (u *memUnitOfWork) CreateWallet(ctx context.Context, w *models.Wallet) error {
	panic("not used by the transaction processor")
}

func (u *memUnitOfWork) GetWallet(ctx context.Context, id uint) (*models.Wallet, error) {
	panic("not used by the transaction processor")
}

func (u *memUnitOfWork) ListWallets(ctx context.Context, q repositories.WalletQuery) ([]models.Wallet, int64, error) {
	panic("not used by the transaction processor")
}

func (u *memUnitOfWork) DeleteWallet(ctx context.Context, id uint) error {
	panic("not used by the transaction processor")
}

func (u *memUnitOfWork) GetTransaction(ctx context.Context, id uint) (*models.Transaction, error) {
	panic("not used by the transaction processor")
}

func (u *memUnitOfWork) ListTransactions(ctx context.Context, q repositories.TransactionQuery) ([]models.Transaction, int64, error) {
	panic("not used by the transaction processor")
}

func (u *memUnitOfWork) WithinTransaction(ctx context.Context, fn func(repositories.LedgerRepository) error) error {
	panic("nested units of work are not supported")
}
