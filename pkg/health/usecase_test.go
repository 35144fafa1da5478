package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name  string
	err   error
	calls int
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(context.Context) error {
	s.calls++
	return s.err
}

func TestReady(t *testing.T) {
	require.NoError(t, NewService().Ready(context.Background()))

	down := errors.New("connection refused")
	first := &stubChecker{name: "postgres"}
	second := &stubChecker{name: "redis", err: down}
	third := &stubChecker{name: "other"}

	err := NewService(first, second, third).Ready(context.Background())
	require.ErrorIs(t, err, down)
	assert.EqualError(t, err, "redis: connection refused")
	assert.Equal(t, 1, first.calls)
	assert.Zero(t, third.calls)
}
