package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"kontribo-backend/internal/core/domain"
	"kontribo-backend/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Ledger Repo ---

type inMemoryLedgerRepo struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
	byKey   map[string]int // (owner_type|idempotency_key) -> index into entries
}

func newInMemoryLedgerRepo() *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{byKey: make(map[string]int)}
}

func entryKey(ownerType domain.OwnerType, idempotencyKey string) string {
	return string(ownerType) + "|" + idempotencyKey
}

func (r *inMemoryLedgerRepo) Insert(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) (*domain.LedgerEntry, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry.IdempotencyKey != nil {
		key := entryKey(entry.OwnerType, *entry.IdempotencyKey)
		if idx, ok := r.byKey[key]; ok {
			existing := r.entries[idx]
			return &existing, true, nil
		}
		r.byKey[key] = len(r.entries)
	}
	r.entries = append(r.entries, *entry)
	return entry, false, nil
}

func (r *inMemoryLedgerRepo) LockContributor(ctx context.Context, tx pgx.Tx, contributorID uuid.UUID) error {
	// Transaction-level serialization is handled by the in-memory transactor.
	return nil
}

func (r *inMemoryLedgerRepo) GetContributorBalances(ctx context.Context, contributorID uuid.UUID) (*domain.Balances, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sumBalances(contributorID), nil
}

func (r *inMemoryLedgerRepo) GetContributorBalancesTx(ctx context.Context, tx pgx.Tx, contributorID uuid.UUID) (*domain.Balances, error) {
	return r.GetContributorBalances(ctx, contributorID)
}

func (r *inMemoryLedgerRepo) sumBalances(contributorID uuid.UUID) *domain.Balances {
	b := &domain.Balances{}
	for i := range r.entries {
		e := &r.entries[i]
		if e.OwnerType != domain.OwnerTypeContributor || e.ContributorID == nil || *e.ContributorID != contributorID {
			continue
		}
		switch e.Bucket {
		case domain.BucketAvailable:
			b.Available += e.Signed()
		case domain.BucketPending:
			b.Pending += e.Signed()
		case domain.BucketReserved:
			b.Reserved += e.Signed()
		}
	}
	return b
}

func (r *inMemoryLedgerRepo) SumFounderRevenue(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var sum int64
	for i := range r.entries {
		e := &r.entries[i]
		if e.OwnerType == domain.OwnerTypeFounder && e.Bucket == domain.BucketRevenue {
			sum += e.Signed()
		}
	}
	return sum, nil
}

// countEntries returns how many entries reference the given aggregate.
func (r *inMemoryLedgerRepo) countEntries(refID uuid.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for i := range r.entries {
		if r.entries[i].ReferenceID == refID {
			n++
		}
	}
	return n
}

// --- In-Memory Support Repo ---

type inMemorySupportRepo struct {
	mu       sync.RWMutex
	supports map[uuid.UUID]*domain.SupportTransaction
	byKey    map[string]uuid.UUID
}

func newInMemorySupportRepo() *inMemorySupportRepo {
	return &inMemorySupportRepo{
		supports: make(map[uuid.UUID]*domain.SupportTransaction),
		byKey:    make(map[string]uuid.UUID),
	}
}

func (r *inMemorySupportRepo) Create(ctx context.Context, s *domain.SupportTransaction) (*domain.SupportTransaction, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byKey[s.IdempotencyKey]; ok {
		existing := *r.supports[id]
		return &existing, true, nil
	}
	cp := *s
	r.supports[s.ID] = &cp
	r.byKey[s.IdempotencyKey] = s.ID
	return s, false, nil
}

func (r *inMemorySupportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SupportTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.supports[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *inMemorySupportRepo) GetByIdempotencyKey(ctx context.Context, key string) (*domain.SupportTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byKey[key]
	if !ok {
		return nil, nil
	}
	cp := *r.supports[id]
	return &cp, nil
}

func (r *inMemorySupportRepo) LinkInvoice(ctx context.Context, id uuid.UUID, invoiceID string, expiredAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.supports[id]
	if !ok {
		return fmt.Errorf("support not found")
	}
	s.ExternalInvoiceID = &invoiceID
	s.ExpiredAt = expiredAt
	return nil
}

func (r *inMemorySupportRepo) MarkPaid(ctx context.Context, tx pgx.Tx, id uuid.UUID, paymentID *string, paidAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.supports[id]
	if !ok || s.Status != domain.SupportStatusPending {
		return fmt.Errorf("support not pending")
	}
	s.Status = domain.SupportStatusPaid
	s.ExternalPaymentID = paymentID
	s.PaidAt = &paidAt
	return nil
}

func (r *inMemorySupportRepo) MarkTerminated(ctx context.Context, id uuid.UUID, status domain.SupportStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.supports[id]
	if !ok || s.Status != domain.SupportStatusPending {
		return fmt.Errorf("support not pending")
	}
	s.Status = status
	return nil
}

// --- In-Memory Withdrawal Repo ---

type inMemoryWithdrawalRepo struct {
	mu          sync.RWMutex
	withdrawals map[uuid.UUID]*domain.WithdrawalRequest
}

func newInMemoryWithdrawalRepo() *inMemoryWithdrawalRepo {
	return &inMemoryWithdrawalRepo{withdrawals: make(map[uuid.UUID]*domain.WithdrawalRequest)}
}

func (r *inMemoryWithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.WithdrawalRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.withdrawals[w.ID] = &cp
	return nil
}

func (r *inMemoryWithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.withdrawals[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWithdrawalRepo) SetProcessing(ctx context.Context, id uuid.UUID, disbursementID string, processedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.withdrawals[id]
	if !ok || w.Status != domain.WithdrawalStatusRequested {
		return fmt.Errorf("withdrawal not in REQUESTED state")
	}
	w.Status = domain.WithdrawalStatusProcessing
	w.ExternalDisbursementID = &disbursementID
	w.ProcessedAt = &processedAt
	return nil
}

func (r *inMemoryWithdrawalRepo) Complete(ctx context.Context, tx pgx.Tx, id uuid.UUID, disbursementID *string, gatewayFeeActual int64, completedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.withdrawals[id]
	if !ok || (w.Status != domain.WithdrawalStatusRequested && w.Status != domain.WithdrawalStatusProcessing) {
		return fmt.Errorf("withdrawal not completable")
	}
	w.Status = domain.WithdrawalStatusCompleted
	if disbursementID != nil {
		w.ExternalDisbursementID = disbursementID
	}
	w.GatewayFeeActual = gatewayFeeActual
	w.CompletedAt = &completedAt
	return nil
}

func (r *inMemoryWithdrawalRepo) Fail(ctx context.Context, tx pgx.Tx, id uuid.UUID, completedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.withdrawals[id]
	if !ok || (w.Status != domain.WithdrawalStatusRequested && w.Status != domain.WithdrawalStatusProcessing) {
		return fmt.Errorf("withdrawal not failable")
	}
	w.Status = domain.WithdrawalStatusFailed
	w.CompletedAt = &completedAt
	return nil
}

func (r *inMemoryWithdrawalRepo) ListByContributor(ctx context.Context, contributorID uuid.UUID) ([]domain.WithdrawalRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.WithdrawalRequest
	for _, w := range r.withdrawals {
		if w.ContributorID == contributorID {
			result = append(result, *w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RequestedAt.After(result[j].RequestedAt)
	})
	return result, nil
}

// --- In-Memory Contributor / Destination Repos ---

type inMemoryContributorRepo struct {
	mu           sync.RWMutex
	contributors map[uuid.UUID]*domain.Contributor
}

func newInMemoryContributorRepo() *inMemoryContributorRepo {
	return &inMemoryContributorRepo{contributors: make(map[uuid.UUID]*domain.Contributor)}
}

func (r *inMemoryContributorRepo) add(c *domain.Contributor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contributors[c.ID] = c
}

func (r *inMemoryContributorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contributor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contributors[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *inMemoryContributorRepo) GetByUsername(ctx context.Context, username string) (*domain.Contributor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.contributors {
		if c.Username == username {
			return c, nil
		}
	}
	return nil, nil
}

func (r *inMemoryContributorRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Contributor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.contributors {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, nil
}

type inMemoryDestinationRepo struct {
	mu           sync.RWMutex
	destinations map[uuid.UUID]*domain.PayoutDestination
}

func newInMemoryDestinationRepo() *inMemoryDestinationRepo {
	return &inMemoryDestinationRepo{destinations: make(map[uuid.UUID]*domain.PayoutDestination)}
}

func (r *inMemoryDestinationRepo) add(d *domain.PayoutDestination) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.destinations[d.ID] = d
}

func (r *inMemoryDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PayoutDestination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.destinations[id]
	if !ok {
		return nil, nil
	}
	return d, nil
}

// --- In-Memory Webhook Event Repo ---

type inMemoryWebhookEventRepo struct {
	mu     sync.RWMutex
	events map[uuid.UUID]*domain.WebhookEvent
	byKey  map[string]uuid.UUID // (type|idempotency_key) -> id
}

func newInMemoryWebhookEventRepo() *inMemoryWebhookEventRepo {
	return &inMemoryWebhookEventRepo{
		events: make(map[uuid.UUID]*domain.WebhookEvent),
		byKey:  make(map[string]uuid.UUID),
	}
}

func (r *inMemoryWebhookEventRepo) GetByTypeAndKey(ctx context.Context, t domain.WebhookEventType, idempotencyKey string) (*domain.WebhookEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byKey[string(t)+"|"+idempotencyKey]
	if !ok {
		return nil, nil
	}
	cp := *r.events[id]
	return &cp, nil
}

func (r *inMemoryWebhookEventRepo) Create(ctx context.Context, e *domain.WebhookEvent) (*domain.WebhookEvent, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := string(e.Type) + "|" + e.IdempotencyKey
	if id, ok := r.byKey[key]; ok {
		cp := *r.events[id]
		return &cp, true, nil
	}
	cp := *e
	r.events[e.ID] = &cp
	r.byKey[key] = e.ID
	return e, false, nil
}

func (r *inMemoryWebhookEventRepo) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return fmt.Errorf("webhook event not found")
	}
	now := time.Now().UTC()
	e.Processed = true
	e.ProcessingError = ""
	e.ProcessedAt = &now
	return nil
}

func (r *inMemoryWebhookEventRepo) MarkFailed(ctx context.Context, id uuid.UUID, processingError string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return fmt.Errorf("webhook event not found")
	}
	e.ProcessingError = processingError
	return nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes whole transactions behind one mutex, standing
// in for the per-contributor advisory lock the real storage takes.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &serialTx{release: &t.mu}, nil
}

// serialTx releases the transactor's mutex exactly once, on Commit or
// Rollback, whichever comes first.
type serialTx struct {
	release *sync.Mutex
	done    sync.Once
}

func (t *serialTx) finish() {
	t.done.Do(func() { t.release.Unlock() })
}

func (t *serialTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *serialTx) Commit(ctx context.Context) error          { t.finish(); return nil }
func (t *serialTx) Rollback(ctx context.Context) error        { t.finish(); return nil }
func (t *serialTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *serialTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *serialTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *serialTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *serialTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *serialTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *serialTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *serialTx) Conn() *pgx.Conn { return nil }

// --- Fake Gateway ---

// fakeGateway implements ports.GatewayClient without any network calls.
type fakeGateway struct {
	invoiceCalls      atomic.Int64
	disbursementCalls atomic.Int64
	failDisbursements bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{}
}

func (g *fakeGateway) CreateInvoice(ctx context.Context, req ports.GatewayInvoiceRequest) (*ports.GatewayInvoice, error) {
	g.invoiceCalls.Add(1)
	expiry := time.Now().Add(24 * time.Hour)
	return &ports.GatewayInvoice{
		ID:         "inv-" + req.ExternalID,
		InvoiceURL: "https://checkout.test/" + req.ExternalID,
		Status:     "PENDING",
		ExpiryDate: &expiry,
	}, nil
}

func (g *fakeGateway) CreateDisbursement(ctx context.Context, req ports.GatewayDisbursementRequest) (*ports.GatewayDisbursement, error) {
	g.disbursementCalls.Add(1)
	if g.failDisbursements {
		return nil, fmt.Errorf("gateway unavailable")
	}
	return &ports.GatewayDisbursement{
		ID:     "disb-" + req.ExternalID,
		Status: "PENDING",
	}, nil
}
