// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"aromapos/internal/core/apperror"
	"aromapos/internal/domain/catalogs/privilegecard"
	"aromapos/internal/domain/catalogs/store"
	"aromapos/internal/domain/catalogs/tax"
	"aromapos/internal/domain/catalogs/unit"
	"aromapos/internal/domain/staff"
	"aromapos/internal/infrastructure/storage/postgres"
	"aromapos/internal/infrastructure/storage/postgres/catalog_repo"
	"aromapos/internal/infrastructure/storage/postgres/staff_repo"
	"aromapos/pkg/logger"
	"aromapos/pkg/numerator"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txm := postgres.NewTxManager(pool)

	if err := seedAdminAccount(ctx, txm, log); err != nil {
		log.Fatalw("failed to seed admin account", "error", err)
	}
	if err := seedUnits(ctx, txm, log); err != nil {
		log.Fatalw("failed to seed units", "error", err)
	}
	if err := seedTaxes(ctx, txm, log); err != nil {
		log.Fatalw("failed to seed taxes", "error", err)
	}
	if err := seedStore(ctx, txm, log); err != nil {
		log.Fatalw("failed to seed store", "error", err)
	}
	if err := seedPrivilegeCards(ctx, txm, log); err != nil {
		log.Fatalw("failed to seed privilege cards", "error", err)
	}
	if err := restoreSequences(ctx, pool, log); err != nil {
		log.Fatalw("failed to restore sequences", "error", err)
	}

	log.Info("seeding completed successfully")
}

func seedAdminAccount(ctx context.Context, txm *postgres.TxManager, log *logger.Logger) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	svc := staff.NewService(staff_repo.NewStaffRepo(txm), txm)

	member, err := svc.Create(ctx, staff.CreateRequest{
		Username: username,
		Password: password,
		FullName: "Shop Administrator",
		Role:     staff.RoleAdmin,
	})
	if err != nil {
		if apperror.IsAppError(err) {
			// Either the username is taken or an admin already exists.
			log.Infow("admin account already present, skipping", "username", username)
			return nil
		}
		return err
	}

	log.Infow("admin account created", "username", username, "id", member.ID)
	return nil
}

func seedUnits(ctx context.Context, txm *postgres.TxManager, log *logger.Logger) error {
	repo := catalog_repo.NewUnitRepo(txm)

	units := []*unit.Unit{
		unit.NewUnit("PCS", "Piece", "pcs", unit.TypeBoth),
		unit.NewUnit("BTL", "Bottle", "btl", unit.TypeBoth),
		unit.NewUnit("ML", "Millilitre", "ml", unit.TypeBoth),
		unit.NewUnit("BOX", "Box", "box", unit.TypePurchase),
		unit.NewUnit("SET", "Gift Set", "set", unit.TypeSale),
	}

	for _, u := range units {
		exists, err := repo.ExistsByCode(ctx, u.Code)
		if err != nil {
			return fmt.Errorf("check unit %s: %w", u.Code, err)
		}
		if exists {
			continue
		}
		if err := repo.Create(ctx, u); err != nil {
			return fmt.Errorf("create unit %s: %w", u.Code, err)
		}
		log.Infow("unit created", "code", u.Code)
	}
	return nil
}

func seedTaxes(ctx context.Context, txm *postgres.TxManager, log *logger.Logger) error {
	repo := catalog_repo.NewTaxRepo(txm)

	taxes := []*tax.Tax{
		tax.NewTax("CGST9", "CGST 9%", decimal.NewFromInt(9)),
		tax.NewTax("SGST9", "SGST 9%", decimal.NewFromInt(9)),
		tax.NewTax("CGST2.5", "CGST 2.5%", decimal.NewFromFloat(2.5)),
		tax.NewTax("SGST2.5", "SGST 2.5%", decimal.NewFromFloat(2.5)),
	}

	for _, t := range taxes {
		exists, err := repo.ExistsByCode(ctx, t.Code)
		if err != nil {
			return fmt.Errorf("check tax %s: %w", t.Code, err)
		}
		if exists {
			continue
		}
		if err := repo.Create(ctx, t); err != nil {
			return fmt.Errorf("create tax %s: %w", t.Code, err)
		}
		log.Infow("tax created", "code", t.Code)
	}
	return nil
}

func seedStore(ctx context.Context, txm *postgres.TxManager, log *logger.Logger) error {
	repo := catalog_repo.NewStoreRepo(txm)

	code := "MAIN"
	exists, err := repo.ExistsByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("check store: %w", err)
	}
	if exists {
		return nil
	}

	s := store.NewStore(code, "Main Store", "Counter 1")
	if err := repo.Create(ctx, s); err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	log.Infow("store created", "code", code)
	return nil
}

func seedPrivilegeCards(ctx context.Context, txm *postgres.TxManager, log *logger.Logger) error {
	repo := catalog_repo.NewPrivilegeCardRepo(txm)

	cards := []*privilegecard.PrivilegeCard{
		privilegecard.NewPrivilegeCard("PC-BASIC", "Basic Card", privilegecard.TierBasic, decimal.NewFromInt(2)),
		privilegecard.NewPrivilegeCard("PC-STD", "Standard Card", privilegecard.TierStandard, decimal.NewFromInt(5)),
		privilegecard.NewPrivilegeCard("PC-PREM", "Premium Card", privilegecard.TierPremium, decimal.NewFromInt(10)),
	}

	for _, c := range cards {
		exists, err := repo.ExistsByCode(ctx, c.Code)
		if err != nil {
			return fmt.Errorf("check card %s: %w", c.Code, err)
		}
		if exists {
			continue
		}
		if err := repo.Create(ctx, c); err != nil {
			return fmt.Errorf("create card %s: %w", c.Code, err)
		}
		log.Infow("privilege card created", "code", c.Code)
	}
	return nil
}

// restoreSequences continues document numbering after a data import.
// RESTORE_SEQUENCES holds the last issued numbers, comma separated,
// e.g. "SA-2026-00042,PE-2026-00017".
func restoreSequences(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	raw := os.Getenv("RESTORE_SEQUENCES")
	if raw == "" {
		return nil
	}

	num := numerator.New(pool)
	for _, last := range strings.Split(raw, ",") {
		last = strings.TrimSpace(last)
		if last == "" {
			continue
		}

		prefix, _, ok := strings.Cut(last, "-")
		if !ok {
			return fmt.Errorf("malformed document number %q", last)
		}

		cfg := numerator.DefaultConfig(prefix)
		if err := num.RestoreSequence(ctx, cfg, time.Now(), last); err != nil {
			return fmt.Errorf("restore %q: %w", last, err)
		}
		log.Infow("sequence restored", "number", last)
	}
	return nil
}
