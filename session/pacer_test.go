package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/katalvlaran/gridpath/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacer_ZeroDelay(t *testing.T) {
	p := session.NewPacer(0)
	began := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, p.Wait(context.Background()))
	}
	assert.Less(t, time.Since(began), 50*time.Millisecond)
}

func TestPacer_SpacesSteps(t *testing.T) {
	p := session.NewPacer(20 * time.Millisecond)
	began := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Wait(context.Background()))
	}
	assert.GreaterOrEqual(t, time.Since(began), 50*time.Millisecond)
}

func TestPacer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, session.NewPacer(0).Wait(ctx), context.Canceled)
	assert.ErrorIs(t, session.NewPacer(time.Hour).Wait(ctx), context.Canceled)
}
