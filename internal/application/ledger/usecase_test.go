package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanmayElinje/inventory-pro/internal/application/dto"
	"github.com/TanmayElinje/inventory-pro/internal/application/ledger"
	"github.com/TanmayElinje/inventory-pro/internal/domain"
	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
	"github.com/TanmayElinje/inventory-pro/internal/domain/repository"
)

// fakeStore is an in-memory stand-in for the database. Its txRunner
// snapshots state before the callback and restores it on error, mimicking a
// rollback.
type fakeStore struct {
	products  map[string]*entity.Product
	movements []*entity.StockMovement
	nextID    int64

	failMovementCreate bool
	failQuantityUpdate bool
}

func newFakeStore(products ...*entity.Product) *fakeStore {
	s := &fakeStore{products: make(map[string]*entity.Product), nextID: 1}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := &fakeStore{
		products:  make(map[string]*entity.Product, len(s.products)),
		movements: append([]*entity.StockMovement(nil), s.movements...),
		nextID:    s.nextID,
	}
	for id, p := range s.products {
		pc := *p
		cp.products[id] = &pc
	}
	return cp
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.products = snap.products
	s.movements = snap.movements
	s.nextID = snap.nextID
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) GetDetail(ctx context.Context, id string) (*repository.ProductDetail, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &repository.ProductDetail{
		Product:         *p,
		CategoryName:    "Electronics",
		SupplierName:    "Acme Distribution",
		SupplierContact: "sales@acme.example",
	}, nil
}

func (r *fakeProductRepo) ListDetail(ctx context.Context, limit, offset int) ([]*repository.ProductDetail, error) {
	return nil, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	if r.s.failQuantityUpdate {
		return errors.New("quantity update failed")
	}
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.s.products, id)
	return nil
}

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	if r.s.failMovementCreate {
		return errors.New("movement insert failed")
	}
	m.ID = r.s.nextID
	r.s.nextID++
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListOutflowsByProduct(ctx context.Context, productID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.ProductID == productID && m.QuantityChange < 0 {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) List(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	return r.s.movements, nil
}

type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	snap := t.s.snapshot()
	if err := fn(&fakeProductRepo{s: t.s}, &fakeMovementRepo{s: t.s}); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

type capturingPublisher struct {
	published []dto.ProductResponse
	fail      bool
}

func (p *capturingPublisher) PublishProductUpdate(ctx context.Context, product dto.ProductResponse) error {
	if p.fail {
		return errors.New("broadcast down")
	}
	p.published = append(p.published, product)
	return nil
}

func testProduct(quantity int64) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:           "p1",
		SKU:          "ELEC-001",
		Name:         "USB-C Dock",
		CategoryID:   "c1",
		SupplierID:   "s1",
		CostPrice:    decimal.RequireFromString("45.00"),
		SalePrice:    decimal.RequireFromString("89.99"),
		Quantity:     quantity,
		ReorderPoint: 10,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newAdjustUC(store *fakeStore, pub ledger.Publisher) *ledger.ApplyAdjustmentUseCase {
	return ledger.NewApplyAdjustmentUseCase(&fakeTxRunner{s: store}, &fakeProductRepo{s: store}, pub)
}

func TestApplyAdjustment_InboundUpdatesQuantityAndAppendsMovement(t *testing.T) {
	store := newFakeStore(testProduct(10))
	pub := &capturingPublisher{}
	uc := newAdjustUC(store, pub)

	out, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustStockInput{
		ProductID:      "p1",
		QuantityChange: 25,
		Reason:         "Restock from supplier",
		UserID:         "u1",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(35), out.Quantity)
	assert.Equal(t, int64(35), store.products["p1"].Quantity)

	require.Len(t, store.movements, 1)
	m := store.movements[0]
	assert.Equal(t, int64(25), m.QuantityChange)
	assert.Equal(t, "Restock from supplier", m.Reason)
	require.NotNil(t, m.UserID)
	assert.Equal(t, "u1", *m.UserID)

	require.Len(t, pub.published, 1)
	assert.Equal(t, int64(35), pub.published[0].Quantity)
}

func TestApplyAdjustment_DefaultReason(t *testing.T) {
	store := newFakeStore(testProduct(10))
	uc := newAdjustUC(store, nil)

	_, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustStockInput{
		ProductID:      "p1",
		QuantityChange: -3,
	})
	require.NoError(t, err)
	require.Len(t, store.movements, 1)
	assert.Equal(t, entity.DefaultMovementReason, store.movements[0].Reason)
	assert.Nil(t, store.movements[0].UserID)
}

func TestApplyAdjustment_ZeroDeltaRejected(t *testing.T) {
	store := newFakeStore(testProduct(10))
	uc := newAdjustUC(store, nil)

	_, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustStockInput{
		ProductID:      "p1",
		QuantityChange: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.movements)
	assert.Equal(t, int64(10), store.products["p1"].Quantity)
}

func TestApplyAdjustment_UnknownProduct(t *testing.T) {
	store := newFakeStore()
	uc := newAdjustUC(store, nil)

	_, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustStockInput{
		ProductID:      "missing",
		QuantityChange: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyAdjustment_InsufficientStockLeavesNoTrace(t *testing.T) {
	store := newFakeStore(testProduct(10))
	pub := &capturingPublisher{}
	uc := newAdjustUC(store, pub)

	_, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustStockInput{
		ProductID:      "p1",
		QuantityChange: -11,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, store.movements)
	assert.Equal(t, int64(10), store.products["p1"].Quantity)
	assert.Empty(t, pub.published)
}

func TestApplyAdjustment_ExactDepletionAllowed(t *testing.T) {
	store := newFakeStore(testProduct(10))
	uc := newAdjustUC(store, nil)

	out, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustStockInput{
		ProductID:      "p1",
		QuantityChange: -10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Quantity)
}

func TestApplyAdjustment_QuantityUpdateFailureRollsBackMovement(t *testing.T) {
	store := newFakeStore(testProduct(10))
	store.failQuantityUpdate = true
	uc := newAdjustUC(store, nil)

	_, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustStockInput{
		ProductID:      "p1",
		QuantityChange: 5,
	})
	require.Error(t, err)
	assert.Empty(t, store.movements)
	assert.Equal(t, int64(10), store.products["p1"].Quantity)
}

func TestApplyAdjustment_MovementInsertFailureLeavesQuantity(t *testing.T) {
	store := newFakeStore(testProduct(10))
	store.failMovementCreate = true
	uc := newAdjustUC(store, nil)

	_, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustStockInput{
		ProductID:      "p1",
		QuantityChange: 5,
	})
	require.Error(t, err)
	assert.Equal(t, int64(10), store.products["p1"].Quantity)
}

func TestApplyAdjustment_PublishFailureDoesNotFailAdjustment(t *testing.T) {
	store := newFakeStore(testProduct(10))
	pub := &capturingPublisher{fail: true}
	uc := newAdjustUC(store, pub)

	out, err := uc.ApplyAdjustment(context.Background(), ledger.AdjustStockInput{
		ProductID:      "p1",
		QuantityChange: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), out.Quantity)
	assert.Equal(t, int64(15), store.products["p1"].Quantity)
}
