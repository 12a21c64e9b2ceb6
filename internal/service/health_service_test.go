package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fuzumoe/domsight-api/internal/analyzer"
	"github.com/fuzumoe/domsight-api/internal/service"
)

func TestHealthService_Check(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		hs := service.NewHealthService(analyzer.NewEngine(), "test-service")
		stat := hs.Check()

		assert.Equal(t, "test-service", stat.Service)
		assert.True(t, stat.Healthy)
		assert.Equal(t, 16, stat.Analyzers)
		assert.WithinDuration(t, time.Now().UTC(), stat.Checked, time.Minute)
	})

	t.Run("Nil Engine", func(t *testing.T) {
		hs := service.NewHealthService(nil, "test-service")
		stat := hs.Check()

		assert.False(t, stat.Healthy)
		assert.Equal(t, 0, stat.Analyzers)
	})
}
