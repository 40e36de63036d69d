package cmd

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			clearTables(db)
		}

		demoUsername := "demo"
		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		var demoID int64
		err = db.QueryRow("SELECT id FROM users WHERE username = $1", demoUsername).Scan(&demoID)
		if err != nil {
			if err := db.QueryRow(
				"INSERT INTO users (username, email, password_hash, is_active, created_at, updated_at) VALUES ($1, $2, $3, true, now(), now()) RETURNING id",
				demoUsername, "demo@mail.com", string(hash),
			).Scan(&demoID); err != nil {
				log.Fatalf("failed to insert demo user: %v", err)
			}
			fmt.Println("Seeded demo user:", demoUsername)
		} else {
			fmt.Println("demo user already exists")
		}

		categories := []struct {
			Name string
			Kind string
		}{
			{"Salary", "income"},
			{"Freelance", "income"},
			{"Groceries", "expense"},
			{"Rent", "expense"},
			{"Entertainment", "expense"},
		}

		categoryIDs := map[string]int64{}
		for _, c := range categories {
			var id int64
			err := db.QueryRow("SELECT id FROM categories WHERE user_id = $1 AND name = $2", demoID, c.Name).Scan(&id)
			if err != nil {
				if err := db.QueryRow(
					"INSERT INTO categories (user_id, name, kind, created_at, updated_at) VALUES ($1, $2, $3, now(), now()) RETURNING id",
					demoID, c.Name, c.Kind,
				).Scan(&id); err != nil {
					log.Fatalf("failed to insert category %s: %v", c.Name, err)
				}
			}
			categoryIDs[c.Name] = id
		}
		fmt.Println("Seeded categories:", len(categoryIDs))

		transactions := []struct {
			Category    string
			Amount      string
			Kind        string
			Description string
			Date        string
		}{
			{"Salary", "3200.00", "income", "Monthly salary", "2026-07-01"},
			{"Rent", "950.00", "expense", "July rent", "2026-07-03"},
			{"Groceries", "112.45", "expense", "Weekly shop", "2026-07-08"},
			{"Entertainment", "54.90", "expense", "Cinema", "2026-07-12"},
			{"Salary", "3200.00", "income", "Monthly salary", "2026-08-01"},
			{"Rent", "950.00", "expense", "August rent", "2026-08-03"},
			{"Groceries", "98.30", "expense", "Weekly shop", "2026-08-09"},
			{"Freelance", "400.00", "income", "Side project", "2026-08-15"},
		}

		for _, t := range transactions {
			var exists int
			err := db.QueryRow(
				"SELECT 1 FROM transactions WHERE user_id = $1 AND category_id = $2 AND amount = $3 AND date = $4",
				demoID, categoryIDs[t.Category], t.Amount, t.Date,
			).Scan(&exists)
			if err == nil {
				continue
			}
			if _, err := db.Exec(
				"INSERT INTO transactions (user_id, category_id, amount, kind, description, date, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, now(), now())",
				demoID, categoryIDs[t.Category], t.Amount, t.Kind, t.Description, t.Date,
			); err != nil {
				log.Fatalf("failed to insert transaction: %v", err)
			}
		}
		fmt.Println("Seeded transactions:", len(transactions))

		budgets := []struct {
			Category string
			Amount   string
			Start    string
		}{
			{"Groceries", "450.00", "2026-07-01"},
			{"Entertainment", "120.00", "2026-07-01"},
		}

		for _, b := range budgets {
			var exists int
			err := db.QueryRow(
				"SELECT 1 FROM budgets WHERE user_id = $1 AND category_name = $2 AND start_date = $3",
				demoID, b.Category, b.Start,
			).Scan(&exists)
			if err == nil {
				continue
			}
			if _, err := db.Exec(
				"INSERT INTO budgets (user_id, category_name, amount, start_date, created_at, updated_at) VALUES ($1, $2, $3, $4, now(), now())",
				demoID, b.Category, b.Amount, b.Start,
			); err != nil {
				log.Fatalf("failed to insert budget: %v", err)
			}
		}
		fmt.Println("Seeded budgets:", len(budgets))
	},
}

func clearTables(db *sqlx.DB) {
	for _, table := range []string{"budgets", "transactions", "categories", "users"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			log.Fatalf("failed to clear %s: %v", table, err)
		}
	}
	fmt.Println("Cleared existing data")
}
