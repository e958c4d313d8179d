package integration

import (
	"testing"
	"time"

	"github.com/joshuaphillips-collab/mortgage-compare/internal/compare"
	"github.com/joshuaphillips-collab/mortgage-compare/internal/config"
)

// TestComparisonPerformance ensures the full pipeline stays interactive.
// The engine recomputes everything from scratch on every request, so a
// single pass has to be quick.
func TestComparisonPerformance(t *testing.T) {
	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	const iterations = 1000
	start := time.Now()
	for i := 0; i < iterations; i++ {
		records := compare.Analyze(conf.Quotes, conf.HorizonOrDefault())
		compare.DetectAlerts(conf.Quotes)
		compare.Score(records, conf.ResolveWeights(), nil)
		compare.HorizonTable(records)
	}
	elapsed := time.Since(start)

	if elapsed > 5*time.Second {
		t.Errorf("%d pipeline passes took %v, expected well under 5s", iterations, elapsed)
	}
	t.Logf("%d pipeline passes in %v (%v per pass)", iterations, elapsed, elapsed/iterations)
}

func BenchmarkComparisonPipeline(b *testing.B) {
	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		b.Fatalf("LoadConfiguration() error = %v", err)
	}
	weights := conf.ResolveWeights()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		records := compare.Analyze(conf.Quotes, conf.HorizonOrDefault())
		compare.DetectAlerts(conf.Quotes)
		compare.Score(records, weights, nil)
	}
}
