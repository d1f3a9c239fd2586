package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hirewire/api/internal/config"
	"github.com/hirewire/api/internal/database"
	"github.com/hirewire/api/internal/service"
)

func main() {
	employers := flag.Int("employers", 5, "Number of employer accounts (each with a company)")
	candidates := flag.Int("candidates", 20, "Number of candidate accounts")
	jobsPerCompany := flag.Int("jobs", 3, "Jobs created per company")
	applicationsPerJob := flag.Int("applications", 2, "Applications each candidate submits")
	prefix := flag.String("prefix", "seed_", "Prefix marking seeded records for cleanup")
	cleanup := flag.Bool("cleanup", false, "Remove previously seeded records instead of seeding")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := database.Bootstrap(ctx, db); err != nil {
		fmt.Fprintf(os.Stderr, "Error applying schema: %v\n", err)
		os.Exit(1)
	}

	seeder := service.NewSeederService(db)

	if *cleanup {
		result, err := seeder.Cleanup(ctx, *prefix)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error cleaning up: %v\n", err)
			os.Exit(1)
		}
		if *outputJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			_ = enc.Encode(result)
		} else {
			fmt.Printf("Cleanup complete in %dms (prefix %q)\n", result.Duration, *prefix)
		}
		return
	}

	result, err := seeder.Seed(ctx, service.SeedRequest{
		Employers:          *employers,
		Candidates:         *candidates,
		JobsPerCompany:     *jobsPerCompany,
		ApplicationsPerJob: *applicationsPerJob,
		Prefix:             *prefix,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		fmt.Println("Seed Complete")
		fmt.Println("=============")
		fmt.Printf("Users:        %d\n", result.Users)
		fmt.Printf("Companies:    %d\n", result.Companies)
		fmt.Printf("Jobs:         %d\n", result.Jobs)
		fmt.Printf("Applications: %d\n", result.Applications)
		fmt.Printf("Duration:     %dms\n", result.Duration)
		fmt.Println()
		fmt.Println("All seeded accounts use the password: seedpass123")
	}
}
