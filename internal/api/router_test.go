package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"

	gameDTO "slot_engine/internal/api/dto/game"
	sessionDTO "slot_engine/internal/api/dto/session"
	gameAPI "slot_engine/internal/api/game"
	sessionAPI "slot_engine/internal/api/session"
	"slot_engine/internal/model"
	"slot_engine/internal/repository/game_cache_repo"
	"slot_engine/internal/repository/session_repo"
	"slot_engine/internal/rng"
	gameServ "slot_engine/internal/service/game"
	sessionServ "slot_engine/internal/service/session"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var secret = []byte("router-secret")

type jwtConfig struct{}

func (jwtConfig) AccessTokenSecretKey() []byte       { return secret }
func (jwtConfig) AccessTokenDuration() time.Duration { return time.Hour }

const tinyGame = `{
	"id": "tiny",
	"reelsCount": 3,
	"rowsCount": 1,
	"winType": "lines",
	"paylines": [[0, 0, 0]],
	"reelStrips": [[1, 2], [1, 2], [1, 2]],
	"paytable": {"1-3": 8},
	"betConfig": {"bets": [1, 2]}
}`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	games := game_cache_repo.NewGameCacheRepository()
	router := NewRouter(RouterDeps{
		Games: gameAPI.NewHandler(gameAPI.HandlerDeps{Serv: gameServ.NewGameService(games, nil, nil)}),
		Sessions: sessionAPI.NewHandler(sessionAPI.HandlerDeps{
			Serv: sessionServ.NewSessionService(games, session_repo.NewSessionRepository(), jwtConfig{}, 100, nil),
		}),
		SecretKey: secret,
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, token, body string, out any) int {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), method, srv.URL+path, bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := srv.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
	return res.StatusCode
}

func TestAPI_GameAndSessionFlow(t *testing.T) {
	srv := newServer(t)

	var imported gameDTO.ImportResponse
	if code := do(t, srv, http.MethodPost, "/games", "", tinyGame, &imported); code != http.StatusCreated {
		t.Fatalf("import status %d", code)
	}
	if imported.ID != "tiny" || imported.Version != 1 {
		t.Errorf("import %+v", imported)
	}

	var list gameDTO.ListResponse
	if code := do(t, srv, http.MethodGet, "/games", "", "", &list); code != http.StatusOK {
		t.Fatalf("list status %d", code)
	}
	if len(list.Games) != 1 || list.Games[0].WinType != "lines" {
		t.Errorf("list %+v", list)
	}

	var cfg model.GameConfig
	if code := do(t, srv, http.MethodGet, "/games/tiny", "", "", &cfg); code != http.StatusOK {
		t.Fatalf("get status %d", code)
	}
	if cfg.Pay(1, 3) != 8 {
		t.Errorf("stored paytable %v", cfg.Paytable)
	}

	var opened sessionDTO.OpenResponse
	if code := do(t, srv, http.MethodPost, "/sessions", "", `{"gameId":"tiny","clientSeed":"abc"}`, &opened); code != http.StatusCreated {
		t.Fatalf("open status %d", code)
	}
	if opened.SessionID == "" || opened.AccessToken == "" || opened.ServerSeedHash == "" {
		t.Fatalf("open %+v", opened)
	}

	for i := 0; i < 5; i++ {
		var spin sessionDTO.SpinResponse
		if code := do(t, srv, http.MethodPost, "/sessions/spin", opened.AccessToken, `{"betPerLine":1}`, &spin); code != http.StatusOK {
			t.Fatalf("spin status %d", code)
		}
		if spin.TotalBet != 1 || spin.Nonce != uint64(i) || len(spin.Matrix) != 1 {
			t.Errorf("spin %d: %+v", i, spin)
		}
	}

	var stats sessionDTO.StatsResponse
	if code := do(t, srv, http.MethodGet, "/sessions/stats", opened.AccessToken, "", &stats); code != http.StatusOK {
		t.Fatalf("stats status %d", code)
	}
	if stats.TotalSpins != 5 || stats.TotalBet != 5 {
		t.Errorf("stats %+v", stats)
	}

	var fs sessionDTO.FreeSpinState
	if code := do(t, srv, http.MethodGet, "/sessions/free-spins", opened.AccessToken, "", &fs); code != http.StatusOK {
		t.Fatalf("free spins status %d", code)
	}
	if fs.Active || fs.Phase != string(model.PhaseIdle) {
		t.Errorf("free spins %+v", fs)
	}

	var closed sessionDTO.CloseResponse
	if code := do(t, srv, http.MethodDelete, "/sessions", opened.AccessToken, "", &closed); code != http.StatusOK {
		t.Fatalf("close status %d", code)
	}
	if !rng.VerifyCommitment(closed.ServerSeed, opened.ServerSeedHash) || closed.Nonce != 5 {
		t.Errorf("close %+v", closed)
	}

	if code := do(t, srv, http.MethodPost, "/sessions/spin", opened.AccessToken, `{"betPerLine":1}`, nil); code != http.StatusNotFound {
		t.Errorf("spin after close status %d, want 404", code)
	}
}

func TestAPI_ErrorStatuses(t *testing.T) {
	srv := newServer(t)
	if code := do(t, srv, http.MethodPost, "/games", "", tinyGame, nil); code != http.StatusCreated {
		t.Fatalf("import status %d", code)
	}
	var opened sessionDTO.OpenResponse
	if code := do(t, srv, http.MethodPost, "/sessions", "", `{"gameId":"tiny"}`, &opened); code != http.StatusCreated {
		t.Fatalf("open status %d", code)
	}

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		want   int
	}{
		{"invalid config", http.MethodPost, "/games", "", `{"id":"bad","reelsCount":3,"rowsCount":1}`, http.StatusUnprocessableEntity},
		{"malformed body", http.MethodPost, "/games", "", `{`, http.StatusBadRequest},
		{"unknown game", http.MethodGet, "/games/nope", "", "", http.StatusNotFound},
		{"open unknown game", http.MethodPost, "/sessions", "", `{"gameId":"nope"}`, http.StatusNotFound},
		{"no token", http.MethodPost, "/sessions/spin", "", `{"betPerLine":1}`, http.StatusUnauthorized},
		{"bad token", http.MethodGet, "/sessions/stats", "garbage", "", http.StatusUnauthorized},
		{"rejected bet", http.MethodPost, "/sessions/spin", opened.AccessToken, `{"betPerLine":3}`, http.StatusBadRequest},
		{"bonus buy not offered", http.MethodPost, "/sessions/buy-bonus", opened.AccessToken, `{"betPerLine":1}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				Error string `json:"error"`
				Code  int    `json:"code"`
			}
			code := do(t, srv, tt.method, tt.path, tt.token, tt.body, &body)
			if code != tt.want || body.Code != tt.want || body.Error == "" {
				t.Errorf("status %d, body %+v, want %d", code, body, tt.want)
			}
		})
	}
}

const buyGame = `{
	"id": "buy",
	"reelsCount": 3,
	"rowsCount": 1,
	"winType": "lines",
	"paylines": [[0, 0, 0]],
	"reelStrips": [[1, 10], [1, 10], [1, 10]],
	"paytable": {"1-3": 8},
	"freeSpinRules": {"triggerSymbol": 10, "minCount": 3, "spinsAwarded": {"3": 4}, "buyCostMultiplier": 50},
	"betConfig": {"bets": [1]}
}`

func TestAPI_BuyBonus(t *testing.T) {
	srv := newServer(t)
	if code := do(t, srv, http.MethodPost, "/games", "", buyGame, nil); code != http.StatusCreated {
		t.Fatalf("import status %d", code)
	}
	var opened sessionDTO.OpenResponse
	if code := do(t, srv, http.MethodPost, "/sessions", "", `{"gameId":"buy"}`, &opened); code != http.StatusCreated {
		t.Fatalf("open status %d", code)
	}

	var bought sessionDTO.SpinResponse
	if code := do(t, srv, http.MethodPost, "/sessions/buy-bonus", opened.AccessToken, `{"betPerLine":1}`, &bought); code != http.StatusOK {
		t.Fatalf("buy status %d", code)
	}
	if bought.TotalBet != 50 || !bought.Triggered || !bought.Bonus.Active || bought.Bonus.RemainingSpins != 4 {
		t.Errorf("buy %+v", bought)
	}
	if code := do(t, srv, http.MethodPost, "/sessions/buy-bonus", opened.AccessToken, `{"betPerLine":1}`, nil); code != http.StatusConflict {
		t.Errorf("second buy status %d, want 409", code)
	}

	var spin sessionDTO.SpinResponse
	if code := do(t, srv, http.MethodPost, "/sessions/spin", opened.AccessToken, `{"betPerLine":1}`, &spin); code != http.StatusOK {
		t.Fatalf("free spin status %d", code)
	}
	if !spin.FreeSpin {
		t.Errorf("spin after buy is not a free spin: %+v", spin)
	}
}
