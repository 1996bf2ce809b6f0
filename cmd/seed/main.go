// Command seed loads a demo account with a handful of tasks for local
// development. It talks straight to Postgres over database/sql so it can run
// against an empty database before the server has ever started.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/QuickTask/QT-Backend/internal/auth"
	"github.com/QuickTask/QT-Backend/internal/tasks"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

var (
	dsn      = flag.String("dsn", os.Getenv("DATABASE_URL"), "Postgres DSN (default: env DATABASE_URL)")
	email    = flag.String("email", "demo@quicktask.dev", "Email for the demo account")
	password = flag.String("password", "demo-password", "Password for the demo account")
	confirm  = flag.Bool("confirm", false, "Required to write to the database")
)

var demoTasks = []struct {
	name, priority, status string
}{
	{"Buy milk", tasks.PriorityLow, tasks.StatusInProgress},
	{"File expense report", tasks.PriorityMedium, tasks.StatusInProgress},
	{"Book dentist appointment", tasks.PriorityHigh, tasks.StatusCompleted},
	{"Water the plants", tasks.PriorityLow, tasks.StatusCompleted},
}

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()
	if *dsn == "" {
		fatalf("--dsn not provided and DATABASE_URL not set")
	}
	if !*confirm {
		fatalf("Refusing to run without --confirm.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		fatalf("connect: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		fatalf("ping: %v", err)
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		fatalf("begin tx: %v", err)
	}
	defer func() {
		_ = tx.Rollback() // no-op if already committed
	}()

	if err := ensureTables(ctx, tx); err != nil {
		fatalf("ensure tables: %v", err)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fatalf("hash password: %v", err)
	}

	userID := uuid.NewString()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO app_auth.users (user_id, email, hashed_password)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO NOTHING`,
		userID, *email, hashed)
	if err != nil {
		fatalf("insert user: %v", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Account already seeded; reuse it for the tasks below.
		if err := tx.QueryRowContext(ctx,
			`SELECT user_id FROM app_auth.users WHERE email = $1`, *email).Scan(&userID); err != nil {
			fatalf("look up existing user: %v", err)
		}
		fmt.Printf("Account %s already exists, reusing\n", *email)
	} else {
		fmt.Printf("Created account %s\n", *email)
	}

	inserted := 0
	for _, t := range demoTasks {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO app_tasks.tasks (id, name, priority, status, user_id)
			 SELECT $1, $2, $3, $4, $5
			 WHERE NOT EXISTS (
			   SELECT 1 FROM app_tasks.tasks WHERE user_id = $5 AND lower(name) = lower($2)
			 )`,
			uuid.NewString(), t.name, t.priority, t.status, userID)
		if err != nil {
			fatalf("insert task %q: %v", t.name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		fatalf("commit: %v", err)
	}

	fmt.Printf("Seeded %d tasks for %s (password: %s)\n", inserted, *email, *password)
}

// ensureTables mirrors what the server's AutoMigrate produces, minus the
// bits gorm manages on its own.
func ensureTables(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		`CREATE SCHEMA IF NOT EXISTS "app_auth"`,
		`CREATE SCHEMA IF NOT EXISTS "app_tasks"`,
		`CREATE TABLE IF NOT EXISTS app_auth.users (
			user_id text PRIMARY KEY,
			email text NOT NULL UNIQUE,
			hashed_password text NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS app_tasks.tasks (
			id text PRIMARY KEY,
			name text NOT NULL,
			priority text NOT NULL,
			status text NOT NULL,
			user_id text NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
