package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	mrand "math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Crypto Источник на crypto/rand. При отказе ридера переходит на PCG и помечает деградацию
type Crypto struct {
	reader     io.Reader
	logger     *zap.Logger
	onDegraded func(error)

	degraded atomic.Bool
	once     sync.Once
	mtx      sync.Mutex
	fallback *mrand.Rand
}

// CryptoOption Опция источника
type CryptoOption func(*Crypto)

// WithReader Подменить ридер энтропии
func WithReader(r io.Reader) CryptoOption {
	return func(c *Crypto) { c.reader = r }
}

// WithDegradedHook Колбэк при переходе в режим деградации
func WithDegradedHook(fn func(error)) CryptoOption {
	return func(c *Crypto) { c.onDegraded = fn }
}

// NewCrypto Новый криптостойкий источник
func NewCrypto(logger *zap.Logger, opts ...CryptoOption) *Crypto {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Crypto{reader: crand.Reader, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Degraded Работает ли источник на некриптографическом генераторе
func (c *Crypto) Degraded() bool {
	return c.degraded.Load()
}

func (c *Crypto) Intn(n int) int {
	return uniform(c.uint64, n)
}

func (c *Crypto) Float64() float64 {
	return unitFloat(c.uint64())
}

func (c *Crypto) uint64() uint64 {
	if !c.degraded.Load() {
		var b [8]byte
		_, err := io.ReadFull(c.reader, b[:])
		if err == nil {
			return binary.LittleEndian.Uint64(b[:])
		}
		c.degrade(err)
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.fallback.Uint64()
}

func (c *Crypto) degrade(cause error) {
	c.once.Do(func() {
		seed := uint64(time.Now().UnixNano())
		c.mtx.Lock()
		c.fallback = mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		c.mtx.Unlock()
		c.degraded.Store(true)

		c.logger.Warn("rng degraded: entropy source unavailable, using pseudo-random fallback", zap.Error(cause))
		if c.onDegraded != nil {
			c.onDegraded(cause)
		}
	})
}
