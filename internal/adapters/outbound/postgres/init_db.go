package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"

	"github.com/DataDog/go-sqllexer"
	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	pgxvector "github.com/pgvector/pgvector-go/pgx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// InitDB opens the Postgres pool, applies the embedded migrations and
// registers the instrumented *sql.DB in the dependency container.
type InitDB struct {
	db                 *sql.DB
	metricRegistration metric.Registration
	skipMigration      bool
	Logger             *log.Logger `resolve:""`
	DBUser             string      `config:"DB_USER" default:"bomi"`
	DBPass             string      `config:"DB_PASS" default:"bomi"`
	DBHost             string      `config:"DB_HOST" default:"localhost"`
	DBPort             string      `config:"DB_PORT" default:"5432"`
	DBName             string      `config:"DB_NAME" default:"bomi"`
	DBSSLMode          string      `config:"DB_SSLMODE" default:"disable"`
	DBMaxConns         int         `config:"DB_MAX_CONNS" default:"10"`
}

// DSN builds the connection URL. Credentials are escaped.
func (di *InitDB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(di.DBUser, di.DBPass),
		Host:     net.JoinHostPort(di.DBHost, di.DBPort),
		Path:     "/" + di.DBName,
		RawQuery: url.Values{"sslmode": []string{di.DBSSLMode}}.Encode(),
	}
	return u.String()
}

// Initialize sets up the database connection, runs migrations and registers
// the *sql.DB in the dependency container.
func (di *InitDB) Initialize(ctx context.Context) (context.Context, error) {
	cfg, err := pgxpool.ParseConfig(di.DSN())
	if err != nil {
		return ctx, fmt.Errorf("failed to parse db config: %w", err)
	}
	if di.DBMaxConns > 0 {
		cfg.MaxConns = int32(di.DBMaxConns)
	}

	// emotion_examples.embedding is a pgvector column.
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvector.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return ctx, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	attrs := otelsql.WithAttributes(
		semconv.DBSystemNamePostgreSQL,
		semconv.DBNamespace(di.DBName),
	)

	di.db = otelsql.OpenDB(
		stdlib.GetPoolConnector(pool),
		attrs,
		otelsql.WithInstrumentAttributesGetter(queryAttributes(di.Logger)),
	)

	di.metricRegistration, err = otelsql.RegisterDBStatsMetrics(di.db, attrs)
	if err != nil {
		return ctx, fmt.Errorf("failed to register db stats metrics: %w", err)
	}

	if !di.skipMigration {
		if err := di.migrate(); err != nil {
			return ctx, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	depend.Register(di.db)
	return ctx, nil
}

func (di *InitDB) migrate() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(di.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	di.Logger.Println("InitDB: migrations applied")
	return nil
}

// Close releases the pool and the DB stats registration.
func (di *InitDB) Close() {
	if di.db == nil {
		return
	}
	if err := di.db.Close(); err != nil {
		di.Logger.Printf("InitDB: failed to close database connection: %v", err)
	}
	if di.metricRegistration != nil {
		if err := di.metricRegistration.Unregister(); err != nil {
			di.Logger.Printf("InitDB: failed to unregister db stats metrics: %v", err)
		}
	}
}

// queryAttributes adds a query summary and the touched tables to query and
// exec spans.
func queryAttributes(logger *log.Logger) func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
	return func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
		if method != otelsql.MethodConnQuery && method != otelsql.MethodConnExec {
			return nil
		}

		commands, tables := summarizeQuery(logger, query)
		attrs := []attribute.KeyValue{}
		if len(commands) > 0 {
			attrs = append(attrs, semconv.DBQuerySummary(strings.TrimSpace(strings.Join(commands, ",")+" "+strings.Join(tables, ","))))
		}
		if len(tables) > 0 {
			attrs = append(attrs, semconv.DBCollectionName(strings.Join(tables, ",")))
		}
		return attrs
	}
}

// summarizeQuery returns the SQL commands and tables of a query.
func summarizeQuery(logger *log.Logger, query string) ([]string, []string) {
	normalizer := sqllexer.NewNormalizer(
		sqllexer.WithCollectTables(true),
		sqllexer.WithCollectCommands(true),
		sqllexer.WithCollectComments(false),
	)

	_, meta, err := normalizer.Normalize(query)
	if err != nil {
		if logger != nil {
			logger.Printf("InitDB: failed to summarize query: %v", err)
		}
		return nil, nil
	}
	return meta.Commands, meta.Tables
}
