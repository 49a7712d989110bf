package ports

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker is a HealthChecker with a canned result.
type stubChecker struct {
	name string
	err  error
}

func (s *stubChecker) Name() string                    { return s.name }
func (s *stubChecker) Check(_ context.Context) error { return s.err }

func TestHealthRegistry_Empty(t *testing.T) {
	reg := NewHealthRegistry()

	result := reg.CheckAll(context.Background())

	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Empty(t, result.Checks)
	assert.False(t, result.Timestamp.IsZero())
}

func TestHealthRegistry_AllHealthy(t *testing.T) {
	reg := NewHealthRegistry()
	require.NoError(t, reg.Register(&stubChecker{name: "mongodb"}))
	require.NoError(t, reg.Register(&stubChecker{name: "disk"}))

	result := reg.CheckAll(context.Background())

	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Len(t, result.Checks, 2)
	assert.Equal(t, HealthStatusHealthy, result.Checks["mongodb"].Status)
}

func TestHealthRegistry_OneUnhealthy(t *testing.T) {
	reg := NewHealthRegistry()
	require.NoError(t, reg.Register(&stubChecker{name: "mongodb", err: errors.New("connection refused")}))
	require.NoError(t, reg.Register(&stubChecker{name: "disk"}))

	result := reg.CheckAll(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Equal(t, HealthStatusUnhealthy, result.Checks["mongodb"].Status)
	assert.Equal(t, "connection refused", result.Checks["mongodb"].Message)
	assert.Equal(t, HealthStatusHealthy, result.Checks["disk"].Status)
}

func TestHealthRegistry_DuplicateName(t *testing.T) {
	reg := NewHealthRegistry()
	require.NoError(t, reg.Register(&stubChecker{name: "mongodb"}))

	err := reg.Register(&stubChecker{name: "mongodb"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateChecker)
}
