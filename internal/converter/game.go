package converter

import (
	"slot_engine/internal/api/dto/game"
	"slot_engine/internal/model"
)

func ToImportResponse(id string, version int) game.ImportResponse {
	return game.ImportResponse{ID: id, Version: version}
}

func ToGameSummary(cfg *model.GameConfig) game.GameSummary {
	jackpots := make([]string, 0, len(cfg.JackpotRules))
	for _, j := range cfg.JackpotRules {
		jackpots = append(jackpots, j.Name)
	}
	return game.GameSummary{
		ID:         cfg.ID,
		Name:       cfg.Name,
		WinType:    string(cfg.WinType),
		ReelsCount: cfg.ReelsCount,
		RowsCount:  cfg.RowsCount,
		TargetRTP:  cfg.TargetRTP,
		Volatility: cfg.Volatility,
		Bets:       cfg.BetConfig.Bets,
		FreeSpins:  cfg.FreeSpinRules != nil,
		Jackpots:   jackpots,
	}
}

func ToListResponse(cfgs []*model.GameConfig) game.ListResponse {
	games := make([]game.GameSummary, len(cfgs))
	for i, c := range cfgs {
		games[i] = ToGameSummary(c)
	}
	return game.ListResponse{Games: games}
}
