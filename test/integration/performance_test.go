package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/iwvelando/labor-supply/internal/config"
	"github.com/iwvelando/labor-supply/internal/supply"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestBasicFunctionality tests basic functionality works
func TestBasicFunctionality(t *testing.T) {
	logger := zap.NewNop()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	results, err := supply.GetSupplyCurves(context.Background(), logger, *conf)
	if err != nil {
		t.Fatalf("GetSupplyCurves failed: %v", err)
	}

	if len(results) == 0 {
		t.Fatalf("Expected supply curves but got none")
	}

	t.Logf("Successfully generated %d supply curves", len(results))
}

// TestPerformance tests performance characteristics
func TestPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping performance test in short mode")
	}
	logger := zap.NewNop()

	start := time.Now()
	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}
	loadTime := time.Since(start)

	start = time.Now()
	results, err := supply.GetSupplyCurves(context.Background(), logger, *conf)
	if err != nil {
		t.Fatalf("GetSupplyCurves failed: %v", err)
	}
	sweepTime := time.Since(start)

	points := 0
	for _, result := range results {
		points += len(result.Responses)
	}

	t.Logf("Config load: %v, sweep: %v for %d points", loadTime, sweepTime, points)

	limit := 10 * time.Second
	if os.Getenv("CI") != "" {
		limit = 30 * time.Second
	}
	if sweepTime > limit {
		t.Errorf("sweep took %v, expected under %v", sweepTime, limit)
	}
}

// BenchmarkGetSupplyCurves measures a full run of the test configuration.
func BenchmarkGetSupplyCurves(b *testing.B) {
	logger := zap.NewNop()
	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		b.Fatalf("LoadConfiguration failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := supply.GetSupplyCurves(context.Background(), logger, *conf); err != nil {
			b.Fatalf("GetSupplyCurves failed: %v", err)
		}
	}
}
