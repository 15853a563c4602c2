package testutil

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/themizzi/sauceshop/internal/config"
	"github.com/themizzi/sauceshop/internal/database"
)

// localDefaults lets integration tests run against a stock local postgres
var localDefaults = map[string]string{
	"POSTGRES_USER":     "postgres",
	"POSTGRES_PASSWORD": "postgres",
	"POSTGRES_DB":       "postgres",
	"POSTGRES_HOSTNAME": "localhost",
}

// TestDatabase is an isolated schema holding the order archive tables
type TestDatabase struct {
	DB         *sql.DB
	SchemaName string
	masterDB   *sql.DB
}

// SetupTestDatabase creates a uniquely named schema, points a connection at it
// and runs the migrations there
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()

	connConfig, err := config.LoadPostgresConfig(getEnvOrDefault)
	if err != nil {
		t.Fatalf("Failed to load postgres config: %v", err)
	}

	masterDB, err := database.Connect(connConfig)
	if err != nil {
		t.Fatalf("Failed to connect to master database: %v", err)
	}

	schemaName := fmt.Sprintf("test_schema_%d_%d", time.Now().UnixNano(), rand.Intn(10000))

	if _, err := masterDB.Exec(fmt.Sprintf("CREATE SCHEMA %s", schemaName)); err != nil {
		masterDB.Close()
		t.Fatalf("Failed to create test schema: %v", err)
	}

	td := &TestDatabase{
		SchemaName: schemaName,
		masterDB:   masterDB,
	}

	td.DB, err = sql.Open("postgres", fmt.Sprintf("%s search_path=%s", connConfig.ConnectionString(), schemaName))
	if err == nil {
		err = td.DB.Ping()
	}
	if err != nil {
		td.Teardown(t)
		t.Fatalf("Failed to connect to test schema: %v", err)
	}
	td.DB.SetMaxOpenConns(5)
	td.DB.SetMaxIdleConns(2)

	if err := database.RunMigrations(td.DB); err != nil {
		td.Teardown(t)
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return td
}

// Teardown drops the test schema and closes both connections
func (td *TestDatabase) Teardown(t *testing.T) {
	t.Helper()

	if td.DB != nil {
		td.DB.Close()
	}

	if td.masterDB != nil {
		_, err := td.masterDB.Exec(fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", td.SchemaName))
		if err != nil {
			t.Logf("Warning: Failed to drop test schema %s: %v", td.SchemaName, err)
		}
		td.masterDB.Close()
	}
}

func getEnvOrDefault(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return localDefaults[key]
}
