// Command seed loads demo data: users for each role, a small catalog and
// several months of stock movements so the dashboard and the demand
// forecast have something to show.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
	"github.com/TanmayElinje/inventory-pro/internal/infrastructure/postgres"
	"github.com/TanmayElinje/inventory-pro/pkg/config"
	"github.com/TanmayElinje/inventory-pro/pkg/logger"
)

type seedProduct struct {
	sku       string
	name      string
	category  string
	supplier  string
	costPrice string
	salePrice string
	reorder   int64
	// initial inbound stock, then one outbound per month going back
	initial  int64
	monthly  []int64
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)

	now := time.Now()

	// Users: one per role, password "password123".
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}
	for username, role := range map[string]string{
		"admin":   entity.RoleAdmin,
		"manager": entity.RoleManager,
		"staff":   entity.RoleStaff,
	} {
		user := &entity.User{
			ID:           uuid.New().String(),
			Username:     username,
			PasswordHash: string(hash),
			Role:         role,
			CreatedAt:    now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Warn().Err(err).Str("username", username).Msg("seed user skipped")
		}
	}

	suppliers := map[string]string{
		"Acme Distribution": "sales@acme.example | +1 555 0100",
		"Nordic Wholesale":  "orders@nordic.example | +46 8 555 0200",
	}
	supplierIDs := make(map[string]string, len(suppliers))
	for name, contact := range suppliers {
		s := &entity.Supplier{
			ID:          uuid.New().String(),
			Name:        name,
			ContactInfo: contact,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := supplierRepo.Create(ctx, s); err != nil {
			log.Fatal().Err(err).Str("supplier", name).Msg("seed supplier")
		}
		supplierIDs[name] = s.ID
	}

	categoryIDs := make(map[string]string)
	for _, name := range []string{"Electronics", "Office", "Warehouse"} {
		c := &entity.Category{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := categoryRepo.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("category", name).Msg("seed category")
		}
		categoryIDs[name] = c.ID
	}

	products := []seedProduct{
		{"ELEC-001", "USB-C Dock", "Electronics", "Acme Distribution", "45.00", "89.99", 10, 200, []int64{18, 25, 22, 31, 27, 24}},
		{"ELEC-002", "Wireless Mouse", "Electronics", "Acme Distribution", "8.50", "24.99", 20, 350, []int64{40, 52, 47, 61, 55, 58}},
		{"OFF-001", "Laser Paper A4", "Office", "Nordic Wholesale", "3.20", "6.99", 50, 500, []int64{70, 85, 90, 78, 95, 88}},
		{"WH-001", "Pallet Wrap Roll", "Warehouse", "Nordic Wholesale", "12.00", "19.99", 15, 120, []int64{10, 14, 12, 16}},
		// No outflow history: exercises the "no forecast" path.
		{"OFF-002", "Stapler", "Office", "Nordic Wholesale", "4.10", "9.99", 10, 60, nil},
	}

	for _, sp := range products {
		p := &entity.Product{
			ID:           uuid.New().String(),
			SKU:          sp.sku,
			Name:         sp.name,
			CategoryID:   categoryIDs[sp.category],
			SupplierID:   supplierIDs[sp.supplier],
			CostPrice:    decimal.RequireFromString(sp.costPrice),
			SalePrice:    decimal.RequireFromString(sp.salePrice),
			Quantity:     0,
			ReorderPoint: sp.reorder,
			CreatedAt:    now.AddDate(0, -len(sp.monthly)-1, 0),
			UpdatedAt:    now,
		}
		if err := productRepo.Create(ctx, p); err != nil {
			log.Fatal().Err(err).Str("sku", sp.sku).Msg("seed product")
		}

		quantity := int64(0)
		record := func(delta int64, reason string, ts time.Time) {
			m := &entity.StockMovement{
				ProductID:      p.ID,
				QuantityChange: delta,
				Reason:         reason,
				Timestamp:      ts,
			}
			if err := movementRepo.Create(ctx, m); err != nil {
				log.Fatal().Err(err).Str("sku", sp.sku).Msg("seed movement")
			}
			quantity += delta
		}

		record(sp.initial, "Initial stock", now.AddDate(0, -len(sp.monthly)-1, 0))
		for i, sold := range sp.monthly {
			monthsAgo := len(sp.monthly) - i
			record(-sold, "Monthly sales", now.AddDate(0, -monthsAgo, 0))
		}
		if err := productRepo.UpdateQuantity(ctx, p.ID, quantity); err != nil {
			log.Fatal().Err(err).Str("sku", sp.sku).Msg("seed quantity")
		}
		log.Info().Str("sku", sp.sku).Int64("quantity", quantity).Msg("seeded product")
	}

	log.Info().Msg("seed complete")
}
