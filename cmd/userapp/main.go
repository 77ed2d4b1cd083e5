// Command userapp demonstrates how to wire a small layered application with
// depgraph. Configuration comes from the environment and an optional .env
// file. Run it with:
//
//	go run ./cmd/userapp            # resolve user 42 and exit
//	go run ./cmd/userapp -serve     # serve GET /users/{id}
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ARTM2000/depgraph"
	"github.com/ARTM2000/depgraph/cond"
	"github.com/ARTM2000/depgraph/dotenv"
	"github.com/ARTM2000/depgraph/graphhttp"
	"github.com/ARTM2000/depgraph/inject"
)

// ---------------------------------------------------------------------------
// Domain types
// ---------------------------------------------------------------------------

type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string
	LogLevel    string
	LogFormat   string
}

type Database struct {
	URL    string
	Logger *slog.Logger
}

func (db *Database) Query(q string) string {
	db.Logger.Info("query", "sql", q)
	return "row-result"
}

// Close implements io.Closer; the graph closes it on shutdown.
func (db *Database) Close() error {
	db.Logger.Info("database closed", "url", db.URL)
	return nil
}

type UserRepository struct {
	DB *Database
}

func (r *UserRepository) FindByID(id int) string {
	return r.DB.Query(fmt.Sprintf("SELECT * FROM users WHERE id = %d", id))
}

type UserService struct {
	Repo   *UserRepository
	Logger *slog.Logger
}

func (s *UserService) GetUser(id int) string {
	s.Logger.Info("looking up user", "id", id)
	return s.Repo.FindByID(id)
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

func NewConfig(g *depgraph.Graph) *Config {
	return &Config{
		AppEnv:      setting(g, "APP_ENV", "local"),
		Addr:        setting(g, "ADDR", ":8080"),
		DatabaseURL: setting(g, "DATABASE_URL", "postgres://localhost:5432/app"),
		LogLevel:    setting(g, "LOG_LEVEL", "info"),
		LogFormat:   setting(g, "LOG_FORMAT", "text"),
	}
}

func NewLogger(g *depgraph.Graph) *slog.Logger {
	cfg := depgraph.MustResolve[*Config](g)
	return newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
}

func NewDatabase(g *depgraph.Graph) *Database {
	cfg := depgraph.MustResolve[*Config](g)
	return &Database{URL: cfg.DatabaseURL, Logger: depgraph.MustResolve[*slog.Logger](g)}
}

func NewUserRepository(g *depgraph.Graph) *UserRepository {
	return &UserRepository{DB: depgraph.MustResolve[*Database](g)}
}

func NewUserService(g *depgraph.Graph) *UserService {
	return &UserService{
		Repo:   depgraph.MustResolve[*UserRepository](g),
		Logger: depgraph.MustResolve[*slog.Logger](g),
	}
}

// setting reads a value registered from the environment, falling back to the
// process environment and then to fallback.
func setting(g *depgraph.Graph, key, fallback string) string {
	if v, ok := depgraph.ResolveNamed[string](g, depgraph.Name(key)); ok && v != "" {
		return v
	}
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}

// ---------------------------------------------------------------------------
// HTTP
// ---------------------------------------------------------------------------

type userHandler struct {
	users inject.Lazy[*UserService]
}

func (h *userHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	fmt.Fprintln(w, h.users.Get().GetUser(id))
}

func newRouter(g *depgraph.Graph) http.Handler {
	r := chi.NewRouter()
	r.Use(graphhttp.Middleware(g))

	h := &userHandler{}
	h.users.Graph = g
	r.Get("/users/{id}", h.get)

	if debug, ok := depgraph.ResolveNamed[http.Handler](g, "debug"); ok {
		r.Mount("/debug/graph", debug)
	}
	return r
}

// ---------------------------------------------------------------------------
// Main
// ---------------------------------------------------------------------------

func buildGraph() (*depgraph.Graph, error) {
	envItems, err := dotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	debugItems, err := cond.If(`env != "production"`, map[string]any{"env": os.Getenv("APP_ENV")},
		depgraph.ProvideGraph(func(g *depgraph.Graph) http.Handler {
			return graphhttp.Router(g)
		}).WithScope(depgraph.Named("debug")),
	)
	if err != nil {
		return nil, err
	}

	return depgraph.Initialize(
		envItems,
		depgraph.ProvideGraph(NewConfig).WithScope(depgraph.Shared),
		depgraph.ProvideGraph(NewLogger).WithScope(depgraph.Shared),
		depgraph.ProvideGraph(NewDatabase).WithScope(depgraph.Shared),
		depgraph.ProvideGraph(NewUserRepository).WithScope(depgraph.Shared),
		depgraph.ProvideGraph(NewUserService),
		debugItems,
	), nil
}

func main() {
	serve := flag.Bool("serve", false, "serve HTTP instead of resolving one user")
	flag.Parse()

	if err := run(*serve); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(serve bool) error {
	g, err := buildGraph()
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := g.Close(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "close:", err)
		}
	}()

	if !serve {
		svc := inject.Eager[*UserService](inject.Point{})
		fmt.Println("result:", svc.GetUser(42))
		return nil
	}

	cfg := depgraph.MustResolve[*Config](g)
	logger := depgraph.MustResolve[*slog.Logger](g)

	srv := &http.Server{Addr: cfg.Addr, Handler: newRouter(g)}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
