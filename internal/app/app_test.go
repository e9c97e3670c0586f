package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Shantanu039/hotel-menu-order-app/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *application {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(logger, config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	})
}

// ctxStarter records the context it was started with.
type ctxStarter struct {
	ctx context.Context
}

func (s *ctxStarter) Start(ctx context.Context) error {
	s.ctx = ctx
	return nil
}

type failingStarter struct{}

func (failingStarter) Start(context.Context) error {
	return errors.New("seed failed")
}

func TestApplication_Start_ContextOutlivesStarters(t *testing.T) {
	a := newTestApp()
	starter := &ctxStarter{}
	a.SetStarters(starter)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, a.Start(ctx))
	defer a.Stop()

	// Background goroutines launched by a starter (the cache janitor) watch
	// this context: it must stay live after Start returns.
	require.NotNil(t, starter.ctx)
	select {
	case <-starter.ctx.Done():
		t.Fatal("starter context was canceled right after Start returned")
	case <-time.After(50 * time.Millisecond):
	}

	// It still tracks the application context for shutdown.
	cancel()
	select {
	case <-starter.ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("starter context did not follow application shutdown")
	}
}

func TestApplication_Start_StarterFailureAborts(t *testing.T) {
	a := newTestApp()
	a.SetStarters(&ctxStarter{}, failingStarter{})

	err := a.Start(context.Background())
	assert.ErrorContains(t, err, "seed failed")
}
