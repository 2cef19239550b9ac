package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter_AgotaElBurstPorIP(t *testing.T) {
	rl := newIPRateLimiter(1, 2)
	defer rl.Close()

	assert.True(t, rl.getLimiter("10.0.0.1").Allow())
	assert.True(t, rl.getLimiter("10.0.0.1").Allow())
	assert.False(t, rl.getLimiter("10.0.0.1").Allow(), "el tercer intento agota el burst")

	assert.True(t, rl.getLimiter("10.0.0.2").Allow(), "cada IP tiene su propio bucket")
}

func TestIPRateLimiter_EvictIdle_DesalojaSoloOciosos(t *testing.T) {
	rl := newIPRateLimiter(1, 1)
	defer rl.Close()

	rl.getLimiter("10.0.0.1")
	rl.getLimiter("10.0.0.2")
	rl.mu.Lock()
	rl.visitors["10.0.0.1"].lastSeen = time.Now().Add(-20 * time.Minute)
	rl.mu.Unlock()

	rl.evictIdle(10 * time.Minute)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
}

func TestIPRateLimiter_CloseDetieneLaLimpieza(t *testing.T) {
	rl := newIPRateLimiter(1, 1)
	rl.Close()

	select {
	case <-rl.stop:
		// canal cerrado: la goroutine de limpieza termina
	default:
		t.Fatal("Close debe cerrar el canal de parada")
	}

	assert.True(t, rl.getLimiter("10.0.0.1").Allow(), "el limiter sigue usable tras Close")
}
