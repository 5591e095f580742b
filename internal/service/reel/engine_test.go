package reel

import (
	"errors"
	"reflect"
	"testing"

	"slot_engine/internal/model"
	"slot_engine/internal/rng"
)

func testConfig() *model.GameConfig {
	return &model.GameConfig{
		ReelsCount: 3,
		RowsCount:  3,
		ReelStrips: [][]int{
			{1, 2, 3, 4, 5},
			{6, 7, 8, 9},
			{1, 1, 2, 2, 3, 3},
		},
	}
}

func TestNew_MissingStrip(t *testing.T) {
	tests := []struct {
		name   string
		strips [][]int
	}{
		{"missing reel", [][]int{{1, 2, 3}, {1, 2, 3}}},
		{"empty strip", [][]int{{1, 2, 3}, {}, {1, 2, 3}}},
		{"short strip", [][]int{{1, 2, 3}, {1, 2}, {1, 2, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.ReelStrips = tt.strips
			_, err := New(cfg, rng.NewSeeded(1))
			if !errors.Is(err, model.ErrConfig) {
				t.Errorf("err = %v, want ErrConfig", err)
			}
		})
	}
}

func TestGenerateSpinResult_WrapsStrip(t *testing.T) {
	cfg := testConfig()
	e, err := New(cfg, rng.NewSeeded(99))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 200; i++ {
		res := e.GenerateSpinResult()
		if res.Matrix.Rows() != cfg.RowsCount || res.Matrix.Reels() != cfg.ReelsCount {
			t.Fatalf("matrix %dx%d", res.Matrix.Rows(), res.Matrix.Reels())
		}
		for reel, stop := range res.Stops {
			strip := cfg.ReelStrips[reel]
			if stop < 0 || stop >= len(strip) {
				t.Fatalf("stop %d out of range on reel %d", stop, reel)
			}
			for row := 0; row < cfg.RowsCount; row++ {
				if want := strip[(stop+row)%len(strip)]; res.Matrix[row][reel] != want {
					t.Fatalf("reel %d row %d = %d, want %d", reel, row, res.Matrix[row][reel], want)
				}
			}
		}
	}
}

func TestGenerateSpinResult_Deterministic(t *testing.T) {
	cfg := testConfig()
	a, _ := New(cfg, rng.NewSeeded(5))
	b, _ := New(cfg, rng.NewSeeded(5))
	for i := 0; i < 50; i++ {
		ra, rb := a.GenerateSpinResult(), b.GenerateSpinResult()
		if !reflect.DeepEqual(ra, rb) {
			t.Fatalf("spin %d differs: %+v vs %+v", i, ra, rb)
		}
	}
}

func TestReplay(t *testing.T) {
	cfg := testConfig()
	res, err := Replay(cfg, []int{4, 3, 5})
	if err != nil {
		t.Fatal(err)
	}
	want := model.Matrix{
		{5, 9, 3},
		{1, 6, 1},
		{2, 7, 1},
	}
	if !reflect.DeepEqual(res.Matrix, want) {
		t.Errorf("matrix = %v, want %v", res.Matrix, want)
	}
	if _, err := Replay(cfg, []int{0, 4, 0}); !errors.Is(err, model.ErrConfig) {
		t.Errorf("out of range stop accepted: %v", err)
	}
}

func TestSymbolGenerator_Distribution(t *testing.T) {
	weights := map[int]model.SymbolInfo{
		1: {Weight: 70},
		2: {Weight: 20},
		3: {Weight: 10},
		4: {Weight: 0},
	}
	g, err := NewSymbolGenerator(weights, rng.NewSeeded(11))
	if err != nil {
		t.Fatal(err)
	}
	const n = 100000
	counts := map[int]int{}
	for i := 0; i < n; i++ {
		counts[g.Next()]++
	}
	if counts[4] != 0 {
		t.Errorf("zero-weight symbol drawn %d times", counts[4])
	}
	for id, want := range map[int]float64{1: 0.7, 2: 0.2, 3: 0.1} {
		got := float64(counts[id]) / n
		if got < want-0.01 || got > want+0.01 {
			t.Errorf("symbol %d share %.3f, want about %.2f", id, got, want)
		}
	}
}

func TestSymbolGenerator_Invalid(t *testing.T) {
	if _, err := NewSymbolGenerator(map[int]model.SymbolInfo{1: {Weight: 0}}, rng.NewSeeded(1)); !errors.Is(err, model.ErrConfig) {
		t.Errorf("all-zero weights: err = %v", err)
	}
	if _, err := NewSymbolGenerator(map[int]model.SymbolInfo{1: {Weight: -1}}, rng.NewSeeded(1)); !errors.Is(err, model.ErrConfig) {
		t.Errorf("negative weight: err = %v", err)
	}
}

func TestBuildStrips(t *testing.T) {
	weights := map[int]model.SymbolInfo{1: {Weight: 5}, 2: {Weight: 3}, 3: {Weight: 1}}
	strips, err := BuildStrips(weights, 5, DefaultStripLength, rng.NewSeeded(3))
	if err != nil {
		t.Fatal(err)
	}
	if len(strips) != 5 {
		t.Fatalf("got %d strips", len(strips))
	}
	for i, s := range strips {
		if len(s) != DefaultStripLength {
			t.Errorf("strip %d length %d", i, len(s))
		}
		for _, sym := range s {
			if _, ok := weights[sym]; !ok {
				t.Errorf("strip %d has unknown symbol %d", i, sym)
			}
		}
	}
}
