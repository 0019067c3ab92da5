// Command admin runs the back-office maintenance tasks: schema migrations,
// employee creation and demo-fixture loading.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/easybanking/backoffice/internal/config"
	"github.com/easybanking/backoffice/internal/db"
	"github.com/easybanking/backoffice/internal/domain"
	"github.com/easybanking/backoffice/internal/events"
	"github.com/easybanking/backoffice/internal/fixtures"
	"github.com/easybanking/backoffice/internal/rates"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "migrate":
		err = runMigrate(ctx, cfg)
	case "create-employee":
		err = runCreateEmployee(ctx, cfg, os.Args[2:])
	case "load-fixtures":
		err = runLoadFixtures(ctx, cfg)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%s failed: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: admin <migrate|create-employee|load-fixtures> [flags]")
}

func runMigrate(ctx context.Context, cfg *config.Config) error {
	if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
		return err
	}
	log.Println("migrations applied")
	return nil
}

func runCreateEmployee(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("create-employee", flag.ExitOnError)
	username := fs.String("username", "", "login name")
	password := fs.String("password", "", "plaintext password, hashed before storage")
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	userService := domain.NewUserService(db.NewUserRepository(pool.Pool))

	employee, err := userService.CreateEmployee(ctx, *username, *password, *firstName, *lastName)
	if err != nil {
		return err
	}

	log.Printf("employee %s created with id %s", employee.Username, employee.ID)
	return nil
}

func runLoadFixtures(ctx context.Context, cfg *config.Config) error {
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	accountRepo := db.NewBankAccountRepository(pool.Pool)
	transactionRepo := db.NewTransactionRepository(pool.Pool)
	userRepo := db.NewUserRepository(pool.Pool)
	txManager := db.NewTransactionManager(pool.Pool)

	bus := events.NewBus()
	accountService := domain.NewAccountService(accountRepo, txManager, bus)
	transactionService := domain.NewTransactionService(accountRepo, transactionRepo, rates.NewStaticProvider(), txManager, bus)
	bus.Subscribe(transactionService.OnBankAccountClosed)

	loader := fixtures.NewLoader(domain.NewUserService(userRepo), accountService, transactionService)
	return loader.Load(ctx)
}
