//go:build e2e

// Package e2e boots the full application against a throwaway PostgreSQL
// container. Every test process gets its own database inside one shared
// container, and a frozen clock so "today" and the sweep cutoff are fixed.
package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"meeting-room-booking/cmd/bootstrap"
	"meeting-room-booking/cmd/bootstrap/components"
	"meeting-room-booking/internal/infra/db"
	"meeting-room-booking/internal/pkg/clock"
	"meeting-room-booking/internal/pkg/config"
	"meeting-room-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser        = "test"
	pgPassword    = "testpass"
	pgPort        = "5432/tcp"
	pgImage       = "postgres:17"
	dateLayout    = "2006-01-02"
	migrationsDir = "migrations"
)

var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerErr  error
)

// testNow is 08:00 on a weekday, an hour before the first bookable slot.
var testNow = time.Date(2030, 1, 15, 8, 0, 0, 0, mustLoadLocation("Asia/Tokyo"))

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

type endpoint struct {
	host string
	port nat.Port
}

func (e endpoint) dsn(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.host, e.port.Port(), dbName)
}

// environment is everything a suite needs from one booted application.
type environment struct {
	pool   *pgxpool.Pool
	router *gin.Engine
	cfg    config.Config
	clock  *clock.MockClock
}

func newEnvironment(t *testing.T) environment {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ep := sharedPostgres(t)
	dbCfg := createDatabase(t, ep)

	pool, _, err := db.Connect(dbCfg)
	require.NoError(t, err, "connect to test database")
	t.Cleanup(pool.Close)

	require.NoError(t, migrate(pool), "apply migrations")
	require.NoError(t, dbtest.SeedReferenceData(pool), "seed reference data")

	clk := clock.NewMockClock(testNow)
	router, cfg := startApp(t, pool, dbCfg, clk)

	slog.Debug("e2e environment ready", "database", dbCfg.DBName, "host", ep.host, "port", ep.port.Port())
	return environment{pool: pool, router: router, cfg: cfg, clock: clk}
}

// sharedPostgres starts one container per test binary and returns its mapped endpoint.
func sharedPostgres(t *testing.T) endpoint {
	t.Helper()
	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		container, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        pgImage,
				ExposedPorts: []string{pgPort},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return endpoint{host: host, port: port}.dsn("postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "meeting-room-booking-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, containerErr, "start postgres container")

	ctx := context.Background()
	port, err := container.MappedPort(ctx, pgPort)
	require.NoError(t, err, "resolve mapped port")
	host, err := container.Host(ctx)
	require.NoError(t, err, "resolve container host")
	return endpoint{host: host, port: port}
}

// createDatabase makes a uniquely named database and drops it when the test ends.
func createDatabase(t *testing.T, ep endpoint) config.DBConfig {
	t.Helper()
	name := "booking_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, ep.dsn("postgres"))
	require.NoError(t, err, "connect as admin")
	defer admin.Close()

	// CREATE DATABASE races on the template lock when suites start together.
	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
		}
		if _, createErr = admin.Exec(ctx, "CREATE DATABASE "+name); createErr == nil {
			break
		}
		slog.Warn("create database failed, retrying", "attempt", attempt+1, "error", createErr)
	}
	require.NoError(t, createErr, "create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		cleanup, err := pgxpool.New(ctx, ep.dsn("postgres"))
		if err != nil {
			slog.Warn("drop database: connect failed", "database", name, "error", err)
			return
		}
		defer cleanup.Close()
		if _, err := cleanup.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database failed", "database", name, "error", err)
		}
	})

	return config.DBConfig{
		Host:     ep.host,
		Port:     ep.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
		MaxConns: 20,
	}
}

// migrate runs every migrations/*.sql file in name order. The directory is
// looked up from the package directory upwards since go test runs per package.
func migrate(pool *pgxpool.Pool) error {
	dir, err := findUp(migrationsDir)
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", f, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply migration %s: %w", f, err)
		}
	}
	return nil
}

func findUp(name string) (string, error) {
	path := name
	for range 5 {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path, nil
		}
		path = filepath.Join("..", path)
	}
	return "", fmt.Errorf("directory %q not found above working directory", name)
}

// startApp wires the production fx modules around the test pool, config and clock.
func startApp(t *testing.T, pool *pgxpool.Pool, dbCfg config.DBConfig, clk *clock.MockClock) (*gin.Engine, config.Config) {
	t.Helper()

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg

	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(
			func() clock.Clock { return clk },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")
	require.NotNil(t, router, "router not populated")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop fx app failed", "error", err)
		}
	})
	return router, cfg
}

// SharedSuite is embedded by every e2e suite. Each subtest starts from
// freshly seeded tables and the clock reset to testNow.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Clock  *clock.MockClock
}

func (s *SharedSuite) SetupSuite() {
	env := newEnvironment(s.T())
	s.DB = env.pool
	s.Router = env.router
	s.Config = env.cfg
	s.Clock = env.clock
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
	s.Clock.Set(testNow)
}

// Today is the frozen clock's date as YYYY-MM-DD.
func (s *SharedSuite) Today() string {
	return s.Clock.Now().Format(dateLayout)
}

func (s *SharedSuite) DateOffset(days int) string {
	return s.Clock.Now().AddDate(0, 0, days).Format(dateLayout)
}
