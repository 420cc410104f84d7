package ratingsintegrationtests

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"

	"github.com/XdrBOBX/rating-widget/integration_tests/testutils"
)

var env *testutils.PostgresEnv

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		log.Println("Skipping ratings integration tests in short mode")
		os.Exit(0)
	}

	ctx := context.Background()
	var err error
	env, err = testutils.NewPostgresEnv(ctx)
	if err != nil {
		log.Fatalf("Failed to set up test environment: %v", err)
	}

	exitCode := m.Run()
	env.Close(ctx)
	os.Exit(exitCode)
}
