// Command seed-companies loads the company directory from a JSON array.
//
// Usage:
//
//	go run ./cmd/seed-companies companies.json
//	cat companies.json | go run ./cmd/seed-companies
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"HireEcho-backend/internal/config"
	"HireEcho-backend/internal/database"
	"HireEcho-backend/internal/logging"
	"HireEcho-backend/internal/model"
	"HireEcho-backend/internal/store"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	companies, err := readCompanies(in)
	if err != nil {
		return err
	}
	if len(companies) == 0 {
		fmt.Println("No companies in input.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewDBInstance(ctx, &database.DBConfig{
		URI:       cfg.DatabaseURI(),
		DBName:    cfg.DBName,
		StrictAPI: cfg.ConnStr == "",
	}, logging.New(cfg.LogLevel, cfg.Production()))
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close(context.Background())

	n, err := store.NewCompanyStore(db).InsertMany(ctx, companies)
	if err != nil {
		return err
	}
	fmt.Printf("Inserted %d companies into %s.\n", n, database.CompaniesCollection)
	return nil
}

func readCompanies(r io.Reader) ([]model.Company, error) {
	var companies []model.Company
	if err := json.NewDecoder(r).Decode(&companies); err != nil {
		return nil, fmt.Errorf("decode companies: %w", err)
	}
	return companies, nil
}
