// Command-line tool to clean the database by dropping the job, company and application collections.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"HireEcho-backend/internal/config"
	"HireEcho-backend/internal/database"
	"HireEcho-backend/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Warning message
	fmt.Printf("⚠️ WARNING: This command will DROP the %s, %s and %s collections of database %q.\n",
		database.JobsCollection, database.CompaniesCollection, database.AppliedJobsCollection, cfg.DBName)
	fmt.Println("This action is irreversible. Do you want to continue? (yes/no): ")

	// Ask for confirmation
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	input = strings.TrimSpace(strings.ToLower(input))

	if input != "yes" {
		fmt.Println("Operation cancelled.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewDBInstance(ctx, &database.DBConfig{
		URI:       cfg.DatabaseURI(),
		DBName:    cfg.DBName,
		StrictAPI: cfg.ConnStr == "",
	}, logging.New(cfg.LogLevel, cfg.Production()))
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}
	defer db.Close(context.Background())

	for _, coll := range []string{database.JobsCollection, database.CompaniesCollection, database.AppliedJobsCollection} {
		if err := db.DB.Collection(coll).Drop(ctx); err != nil {
			log.Fatalf("failed to drop %s: %v", coll, err)
		}
	}

	fmt.Println("✅ All collections dropped successfully.")
}
