package http

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"golang.org/x/time/rate"

	"github.com/jhoicas/gerenciamento-clientes/internal/application/dto"
	"github.com/jhoicas/gerenciamento-clientes/pkg/config"
)

// minIdleTTL tempo mínimo sem requisições antes de um IP sair do mapa.
const minIdleTTL = time.Minute

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter mantém um token bucket por IP de origem.
// Entradas ociosas por mais de idleTTL são removidas numa varredura feita a cada idleTTL;
// idleTTL nunca é menor que o tempo de recarregar o bucket inteiro, então um IP removido
// volta com o mesmo saldo que teria.
type ipLimiter struct {
	mu        sync.Mutex
	entries   map[string]*ipEntry
	rps       rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newIPLimiter(rps float64, burst int, now func() time.Time) *ipLimiter {
	ttl := time.Duration(float64(burst) / rps * float64(time.Second))
	if ttl < minIdleTTL {
		ttl = minIdleTTL
	}
	return &ipLimiter{
		entries:   make(map[string]*ipEntry),
		rps:       rate.Limit(rps),
		burst:     burst,
		idleTTL:   ttl,
		lastSweep: now(),
		now:       now,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}
	e, ok := l.entries[ip]
	if !ok {
		e = &ipEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.entries[ip] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

func (l *ipLimiter) sweep(now time.Time) {
	for ip, e := range l.entries {
		if now.Sub(e.lastSeen) >= l.idleTTL {
			delete(l.entries, ip)
		}
	}
	l.lastSweep = now
}

func (l *ipLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// RateLimit responde 429 quando o IP excede cfg.RPS (com rajada cfg.Burst). RPS <= 0 desativa.
func RateLimit(cfg config.RateLimitConfig) fiber.Handler {
	if cfg.RPS <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	l := newIPLimiter(cfg.RPS, cfg.Burst, time.Now)
	return func(c *fiber.Ctx) error {
		if !l.allow(utils.CopyString(c.IP())) {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfterSeconds(cfg.RPS)))
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "LIMITE_EXCEDIDO", Message: "muitas requisições, tente novamente em instantes"})
		}
		return c.Next()
	}
}

func retryAfterSeconds(rps float64) int {
	if rps >= 1 {
		return 1
	}
	return int(1/rps + 0.5)
}
