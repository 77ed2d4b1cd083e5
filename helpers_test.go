package depgraph

import (
	"errors"
	"sync/atomic"
)

// Shared test types and factories used across test files.

type testLogger struct{ Prefix string }
type testConfig struct{ DSN string }

type testDatabase struct {
	Config *testConfig
	Logger *testLogger
}

type testUserRepo struct {
	DB     *testDatabase
	Logger *testLogger
}

type testService interface {
	Name() string
}

type testUserService struct {
	Repo   *testUserRepo
	Logger *testLogger
}

func (s *testUserService) Name() string { return "user" }

type testOrderService struct{ Logger *testLogger }

func (s *testOrderService) Name() string { return "order" }

func newTestLogger() *testLogger { return &testLogger{Prefix: "app"} }
func newTestConfig() *testConfig { return &testConfig{DSN: "postgres://localhost"} }

func newTestDatabase(g *Graph) *testDatabase {
	return &testDatabase{Config: MustResolve[*testConfig](g), Logger: MustResolve[*testLogger](g)}
}

func newTestUserRepo(g *Graph) *testUserRepo {
	return &testUserRepo{DB: MustResolve[*testDatabase](g), Logger: MustResolve[*testLogger](g)}
}

func newTestUserService(g *Graph) *testUserService {
	return &testUserService{Repo: MustResolve[*testUserRepo](g), Logger: MustResolve[*testLogger](g)}
}

// testItems registers the layered test application. The logger and config
// are shared; everything else is fresh.
func testItems() Items {
	return Items{
		ProvideFunc(newTestLogger).WithScope(Shared),
		ProvideFunc(newTestConfig).WithScope(Shared),
		ProvideGraph(newTestDatabase),
		ProvideGraph(newTestUserRepo),
		ProvideGraph(newTestUserService),
	}
}

// counted wraps a factory and counts its invocations.
func counted[T any](calls *atomic.Int32, fn func() T) func() T {
	return func() T {
		calls.Add(1)
		return fn()
	}
}

// echoArg returns the argument at index i as an int.
func echoArg(i int) func(*Graph, Args) int {
	return func(_ *Graph, args Args) int {
		v, _ := Arg[int](args, i)
		return v
	}
}

// testClosable is a cached value that implements io.Closer for Close tests.
type testClosable struct {
	Name   string
	Closed bool
	Order  *[]string // shared slice to record close order
}

func (c *testClosable) Close() error {
	c.Closed = true
	if c.Order != nil {
		*c.Order = append(*c.Order, c.Name)
	}
	return nil
}

// testFailCloser implements io.Closer but returns an error.
type testFailCloser struct{ id int }

func (f *testFailCloser) Close() error {
	return errors.New("close failed")
}
