package rng

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// Seeded Детерминированный поток ChaCha20. Одинаковый сид даёт одинаковую последовательность.
// Не потокобезопасен, у каждой сессии свой экземпляр
type Seeded struct {
	seed   uint64
	cipher *chacha20.Cipher
	buf    [64]byte
	pos    int
}

// NewSeeded Новый детерминированный источник
func NewSeeded(seed uint64) *Seeded {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], seed)
	key := sha256.Sum256(raw[:])
	nonce := make([]byte, chacha20.NonceSize)

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		// размеры ключа и nonce фиксированы
		panic("rng: chacha20 init: " + err.Error())
	}
	s := &Seeded{seed: seed, cipher: c}
	s.refill()
	return s
}

// Seed Исходный сид
func (s *Seeded) Seed() uint64 { return s.seed }

func (s *Seeded) Intn(n int) int {
	return uniform(s.uint64, n)
}

func (s *Seeded) Float64() float64 {
	return unitFloat(s.uint64())
}

func (s *Seeded) uint64() uint64 {
	if s.pos+8 > len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v
}

func (s *Seeded) refill() {
	clear(s.buf[:])
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	s.pos = 0
}
