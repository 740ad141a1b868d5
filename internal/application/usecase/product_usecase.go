package usecase

import (
	"context"
	"time"

	"github.com/TanmayElinje/inventory-pro/internal/application/dto"
	"github.com/TanmayElinje/inventory-pro/internal/domain"
	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
	"github.com/TanmayElinje/inventory-pro/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultReorderPoint = 10

// ForecastProvider computes the demand forecast for one product.
// (nil, nil) means no forecast is available, which is a valid outcome.
type ForecastProvider interface {
	Forecast(ctx context.Context, productID string) (*dto.ForecastResponse, error)
}

// ProductUseCase CRUD over the product catalog. Quantity is out of reach
// here; only the stock ledger mutates it.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	forecaster   ForecastProvider
}

// NewProductUseCase builds the use case.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	forecaster ForecastProvider,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		forecaster:   forecaster,
	}
}

// Create persists a new product with quantity zero. The referenced category
// and supplier must exist; a duplicate SKU returns ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.CategoryID == "" || in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.LessThan(decimal.Zero) || in.SalePrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if category == nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	// Explicit SKU check for a clean error; the unique index still backstops
	// concurrent creates.
	existing, err := uc.productRepo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	reorderPoint := int64(defaultReorderPoint)
	if in.ReorderPoint != nil {
		if *in.ReorderPoint < 0 {
			return nil, domain.ErrInvalidInput
		}
		reorderPoint = *in.ReorderPoint
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Name:         in.Name,
		CategoryID:   in.CategoryID,
		SupplierID:   in.SupplierID,
		CostPrice:    in.CostPrice,
		SalePrice:    in.SalePrice,
		Quantity:     0,
		ReorderPoint: reorderPoint,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	resp := dto.ProductResponse{
		ID:           product.ID,
		SKU:          product.SKU,
		Name:         product.Name,
		Category:     dto.CategoryResponse{ID: category.ID, Name: category.Name},
		Supplier:     dto.SupplierResponse{ID: supplier.ID, Name: supplier.Name, ContactInfo: supplier.ContactInfo},
		CostPrice:    product.CostPrice,
		SalePrice:    product.SalePrice,
		Quantity:     product.Quantity,
		ReorderPoint: product.ReorderPoint,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
	return &resp, nil
}

// GetByID returns the product detail, or nil when it does not exist.
// includeForecast gates the expensive forecast computation: detail views
// pass true, listings never do. A forecast that is unavailable or fails to
// fit leaves the field null.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string, includeForecast bool) (*dto.ProductResponse, error) {
	detail, err := uc.productRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, nil
	}
	resp := dto.NewProductResponse(detail)
	if includeForecast && uc.forecaster != nil {
		fc, err := uc.forecaster.Forecast(ctx, id)
		if err != nil {
			return nil, err
		}
		resp.Forecast = fc
	}
	return &resp, nil
}

// List returns a page of products without forecasts.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	details, err := uc.productRepo.ListDetail(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	products := make([]dto.ProductResponse, 0, len(details))
	for _, d := range details {
		products = append(products, dto.NewProductResponse(d))
	}
	return &dto.ProductListResponse{Products: products, Limit: limit, Offset: offset}, nil
}

// Update modifies catalog attributes. Quantity only moves through the ledger.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = in.CategoryID
	}
	if in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		product.SupplierID = in.SupplierID
	}
	if in.CostPrice.LessThan(decimal.Zero) || in.SalePrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !in.CostPrice.IsZero() {
		product.CostPrice = in.CostPrice
	}
	if !in.SalePrice.IsZero() {
		product.SalePrice = in.SalePrice
	}
	if in.ReorderPoint != nil {
		if *in.ReorderPoint < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.ReorderPoint = *in.ReorderPoint
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id, false)
}

// Delete removes a product; its movements go with it (FK cascade).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(ctx, id)
}
