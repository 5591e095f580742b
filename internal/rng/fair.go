package rng

import (
	"crypto/hmac"
	crand "crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Fair Доказуемо честный поток HMAC-SHA256(serverSeed, "clientSeed:nonce:round").
// Игроку заранее отдаётся хеш серверного сида, сам сид раскрывается при закрытии сессии
type Fair struct {
	serverSeed string
	clientSeed string
	nonce      uint64
	round      uint64
	pos        int
	buf        [32]byte
}

// NewFair Новый поток для заданных сидов и nonce
func NewFair(serverSeed, clientSeed string, nonce uint64) *Fair {
	f := &Fair{serverSeed: serverSeed, clientSeed: clientSeed, nonce: nonce}
	f.generateRound()
	return f
}

// GenerateServerSeed Случайный серверный сид (32 байта hex)
func GenerateServerSeed() (string, error) {
	b := make([]byte, 32)
	if _, err := crand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// HashSeed Коммит серверного сида
func HashSeed(seed string) string {
	h := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(h[:])
}

// VerifyCommitment Проверка раскрытого сида по ранее выданному хешу
func VerifyCommitment(serverSeed, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashSeed(serverSeed)), []byte(hash)) == 1
}

// ServerSeedHash Хеш серверного сида
func (f *Fair) ServerSeedHash() string { return HashSeed(f.serverSeed) }

// ClientSeed Клиентский сид
func (f *Fair) ClientSeed() string { return f.clientSeed }

// Nonce Номер текущего спина
func (f *Fair) Nonce() uint64 { return f.nonce }

// Reveal Раскрыть серверный сид
func (f *Fair) Reveal() string { return f.serverSeed }

// Advance Перейти к следующему nonce
func (f *Fair) Advance() {
	f.nonce++
	f.round = 0
	f.generateRound()
}

func (f *Fair) Intn(n int) int {
	return uniform(f.uint64, n)
}

func (f *Fair) Float64() float64 {
	return unitFloat(f.uint64())
}

func (f *Fair) uint64() uint64 {
	if f.pos+8 > len(f.buf) {
		f.round++
		f.generateRound()
	}
	v := binary.BigEndian.Uint64(f.buf[f.pos:])
	f.pos += 8
	return v
}

func (f *Fair) generateRound() {
	h := hmac.New(sha256.New, []byte(f.serverSeed))
	fmt.Fprintf(h, "%s:%d:%d", f.clientSeed, f.nonce, f.round)
	copy(f.buf[:], h.Sum(nil))
	f.pos = 0
}
