//go:build integration

// Package testutil provides the MongoDB used by integration tests of the run
// history and audit log stores.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const (
	// MongoURIEnv points integration tests at a running MongoDB instead of a
	// container, e.g. one started by docker-compose in CI.
	MongoURIEnv = "QUOTE_OPTIMIZER_TEST_MONGO_URI"

	mongoImage     = "mongo:7.0"
	startupTimeout = 2 * time.Minute
	maxDBNameBytes = 48
)

var shared struct {
	sync.RWMutex
	uri string
}

// RunWithMongoDB is a TestMain body. It provides one MongoDB to every test in
// the package, runs them and removes the container afterwards.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithMongoDB(m))
//	}
func RunWithMongoDB(m *testing.M) int {
	uri, stop, err := startShared()
	if err != nil {
		fmt.Fprintf(os.Stderr, "integration MongoDB unavailable: %v\n", err)
		return 1
	}

	shared.Lock()
	shared.uri = uri
	shared.Unlock()

	code := m.Run()

	if err := stop(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: removing MongoDB container: %v\n", err)
	}
	return code
}

func startShared() (string, func() error, error) {
	if uri := os.Getenv(MongoURIEnv); uri != "" {
		return uri, func() error { return nil }, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	container, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return "", nil, fmt.Errorf("start container: %w", err)
	}
	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return "", nil, fmt.Errorf("connection string: %w", err)
	}
	return uri, func() error { return testcontainers.TerminateContainer(container) }, nil
}

// MongoURI returns the URI of the package MongoDB. The package TestMain must
// use RunWithMongoDB.
func MongoURI(t testing.TB) string {
	t.Helper()
	shared.RLock()
	defer shared.RUnlock()
	require.NotEmpty(t, shared.uri, "MongoDB not started: TestMain must call testutil.RunWithMongoDB")
	return shared.uri
}

// MongoContainer is a MongoDB owned by a single test.
type MongoContainer struct {
	URI       string
	container testcontainers.Container
}

// StartMongoDB starts a container for tests that need to take the database
// down. It is removed when the test ends.
func StartMongoDB(t testing.TB) *MongoContainer {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	container, err := mongodb.Run(ctx, mongoImage)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	return &MongoContainer{URI: uri, container: container}
}

// Stop stops the server without removing the container, simulating an outage.
func (m *MongoContainer) Stop(ctx context.Context) error {
	timeout := 5 * time.Second
	return m.container.Stop(ctx, &timeout)
}

// DatabaseName derives an isolated database name from the test name.
func DatabaseName(t testing.TB) string {
	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ".", "_", "$", "_").Replace(t.Name())
	if len(name) > maxDBNameBytes {
		name = name[:maxDBNameBytes]
	}
	return fmt.Sprintf("qo_%s_%d", name, time.Now().UnixNano()%1000000)
}
