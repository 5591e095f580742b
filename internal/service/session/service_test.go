package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"slot_engine/internal/model"
	"slot_engine/internal/repository/game_cache_repo"
	"slot_engine/internal/repository/session_repo"
	"slot_engine/internal/rng"
	"slot_engine/internal/service"
	"slot_engine/pkg/token"
)

type jwtConfig struct{}

func (jwtConfig) AccessTokenSecretKey() []byte       { return []byte("secret") }
func (jwtConfig) AccessTokenDuration() time.Duration { return time.Minute }

func newService(t *testing.T) service.SessionService {
	t.Helper()
	ctx := context.Background()
	games := game_cache_repo.NewGameCacheRepository()
	strip := []int{1, 2, 3, 4}
	cfg := &model.GameConfig{
		ID:         "tiny",
		ReelsCount: 3,
		RowsCount:  1,
		WinType:    model.WinTypeWays,
		ReelStrips: [][]int{strip, strip, strip},
		Paytable:   map[string]float64{"1-3": 10},
		BetConfig:  model.BetConfig{Bets: []float64{1}},
	}
	if _, err := games.Save(ctx, cfg); err != nil {
		t.Fatal(err)
	}
	return NewSessionService(games, session_repo.NewSessionRepository(), jwtConfig{}, 50, nil)
}

func TestSession_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	info, err := s.Open(ctx, "tiny", "client")
	if err != nil {
		t.Fatal(err)
	}
	if info.ID == "" || info.ServerSeedHash == "" || info.ClientSeed != "client" {
		t.Fatalf("info %+v", info)
	}
	claims, err := token.VerifyToken(info.AccessToken, jwtConfig{}.AccessTokenSecretKey())
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != info.ID || claims.GameID != "tiny" {
		t.Errorf("claims %+v", claims)
	}

	for i := 0; i < 20; i++ {
		res, err := s.Spin(ctx, info.ID, 1)
		if err != nil {
			t.Fatal(err)
		}
		if res.Nonce != uint64(i) {
			t.Errorf("spin %d nonce %d", i, res.Nonce)
		}
	}
	if _, err := s.Spin(ctx, info.ID, 3); !errors.Is(err, model.ErrBetRejected) {
		t.Errorf("want ErrBetRejected, got %v", err)
	}

	stats, err := s.Stats(ctx, info.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalSpins != 20 || stats.TotalBet != 20 {
		t.Errorf("stats %+v", stats)
	}

	fs, err := s.FreeSpins(ctx, info.ID)
	if err != nil {
		t.Fatal(err)
	}
	if fs.Active {
		t.Errorf("game without free spins has active round")
	}

	closed, err := s.Close(ctx, info.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !rng.VerifyCommitment(closed.ServerSeed, info.ServerSeedHash) {
		t.Errorf("revealed seed does not match commitment")
	}
	if closed.Nonce != 20 {
		t.Errorf("final nonce %d, want 20", closed.Nonce)
	}

	if _, err := s.Spin(ctx, info.ID, 1); !errors.Is(err, model.ErrSessionNotFound) {
		t.Errorf("spin after close: %v", err)
	}
	if _, err := s.Close(ctx, info.ID); !errors.Is(err, model.ErrSessionNotFound) {
		t.Errorf("second close: %v", err)
	}
}

func TestSession_Open(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	if _, err := s.Open(ctx, "missing", ""); !errors.Is(err, model.ErrGameNotFound) {
		t.Errorf("want ErrGameNotFound, got %v", err)
	}

	a, err := s.Open(ctx, "tiny", "")
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Open(ctx, "tiny", "")
	if err != nil {
		t.Fatal(err)
	}
	if a.ClientSeed == "" || a.ClientSeed == b.ClientSeed {
		t.Errorf("generated client seeds %q and %q", a.ClientSeed, b.ClientSeed)
	}
	if a.ServerSeedHash == b.ServerSeedHash {
		t.Errorf("sessions share a server seed")
	}
}
