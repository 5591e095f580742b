package evaluator

import "slot_engine/internal/model"

const (
	// minClusterSize Минимальный размер кластера для выплаты
	minClusterSize = 5
	// maxClusterTier Кластеры больше платят как этот размер
	maxClusterTier = 15
)

// Направления соседей (вертикаль и горизонталь)
var dirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Cluster Подсчёт выигрыша по кластерам
type Cluster struct {
	cfg *model.GameConfig
	sym symbolTable
}

func NewCluster(cfg *model.GameConfig) *Cluster {
	return &Cluster{cfg: cfg, sym: newSymbolTable(cfg)}
}

func (c *Cluster) Mode() model.WinType { return model.WinTypeCluster }

// Evaluate Поиск кластеров заливкой. Каждая клетка посещается не больше одного раза за проход
func (c *Cluster) Evaluate(m model.Matrix, betPerLine, multiplier float64) []model.Win {
	rows, reels := m.Rows(), m.Reels()
	visited := make([][]bool, rows)
	for r := range visited {
		visited[r] = make([]bool, reels)
	}

	var wins []model.Win
	for row := 0; row < rows; row++ {
		for reel := 0; reel < reels; reel++ {
			sym := m[row][reel]
			if visited[row][reel] || c.sym.activeWild(sym, reel) || c.sym.scatters[sym] {
				continue
			}

			cluster := c.fill(m, visited, row, reel, sym)
			if len(cluster) < minClusterSize {
				continue
			}
			base := c.cfg.Pay(sym, min(len(cluster), maxClusterTier))
			if base <= 0 {
				continue
			}
			wins = append(wins, model.Win{
				Kind:      model.WinKindCluster,
				Symbol:    sym,
				Count:     len(cluster),
				Positions: cluster,
				Amount:    base * betPerLine * multiplier,
			})
		}
	}
	return wins
}

// fill BFS от стартовой клетки по символу sym и заменяющим его вайлдам
func (c *Cluster) fill(m model.Matrix, visited [][]bool, row, reel, sym int) []model.Position {
	rows, reels := m.Rows(), m.Reels()
	queue := []model.Position{{Row: row, Reel: reel}}
	visited[row][reel] = true

	var cluster []model.Position
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cluster = append(cluster, cur)

		for _, d := range dirs {
			nr, nc := cur.Row+d[0], cur.Reel+d[1]
			if nr < 0 || nr >= rows || nc < 0 || nc >= reels || visited[nr][nc] {
				continue
			}
			if c.sym.matches(m[nr][nc], nc, sym) {
				visited[nr][nc] = true
				queue = append(queue, model.Position{Row: nr, Reel: nc})
			}
		}
	}
	return cluster
}
