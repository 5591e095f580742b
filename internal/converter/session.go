package converter

import (
	"slot_engine/internal/api/dto/session"
	"slot_engine/internal/model"
)

func ToOpenResponse(info model.SessionInfo) session.OpenResponse {
	return session.OpenResponse{
		SessionID:      info.ID,
		AccessToken:    info.AccessToken,
		ServerSeedHash: info.ServerSeedHash,
		ClientSeed:     info.ClientSeed,
	}
}

func ToSpinResponse(res *model.PlayResult) session.SpinResponse {
	ev := res.Evaluation
	out := session.SpinResponse{
		Matrix:      res.Spin.Matrix,
		Stops:       res.Spin.Stops,
		Wins:        toWins(ev.Wins),
		ScatterWins: toScatterWins(ev.ScatterWins),
		BetPerLine:  money(res.BetPerLine),
		TotalBet:    money(res.TotalBet),
		TotalWin:    money(ev.TotalWin),
		Payout:      money(res.Payout),
		Capped:      res.Capped,
		Multiplier:  ev.Multiplier,
		HitClass:    string(ev.HitClass),
		FreeSpin:    res.FreeSpin != nil,
		Triggered:   res.Triggered,
		Bonus:       ToFreeSpinState(res.Bonus),
		Summary:     toSummary(res.Summary),
		Nonce:       res.Nonce,
	}
	if ev.Jackpot.Won {
		out.Jackpot = &session.Jackpot{Tier: ev.Jackpot.Tier, Amount: money(ev.Jackpot.WinAmount)}
	}
	return out
}

func toWins(wins []model.Win) []session.Win {
	out := make([]session.Win, len(wins))
	for i, w := range wins {
		out[i] = session.Win{
			Kind:           string(w.Kind),
			Line:           w.Line,
			Symbol:         w.Symbol,
			Count:          w.Count,
			Ways:           w.Ways,
			WildMultiplier: w.WildMultiplier,
			Positions:      toPositions(w.Positions),
			Amount:         money(w.Amount),
		}
	}
	return out
}

func toScatterWins(wins []model.ScatterWin) []session.ScatterWin {
	out := make([]session.ScatterWin, len(wins))
	for i, w := range wins {
		out[i] = session.ScatterWin{
			Symbol:    w.Symbol,
			Count:     w.Count,
			Positions: toPositions(w.Positions),
			Amount:    money(w.Amount),
		}
	}
	return out
}

func toPositions(ps []model.Position) [][2]int {
	out := make([][2]int, len(ps))
	for i, p := range ps {
		out[i] = [2]int{p.Row, p.Reel}
	}
	return out
}

func ToFreeSpinState(s model.FreeSpinState) session.FreeSpinState {
	return session.FreeSpinState{
		Phase:             string(s.Phase),
		Active:            s.Active,
		TotalSpins:        s.TotalSpins,
		RemainingSpins:    s.RemainingSpins,
		CurrentSpin:       s.CurrentSpin,
		CurrentMultiplier: s.CurrentMultiplier,
		RetriggerCount:    s.RetriggerCount,
		CumulativeWin:     money(s.CumulativeWin),
	}
}

func toSummary(s *model.FreeSpinSummary) *session.FreeSpinSummary {
	if s == nil {
		return nil
	}
	return &session.FreeSpinSummary{
		TotalSpins:      s.TotalSpins,
		CumulativeWin:   money(s.CumulativeWin),
		RetriggerCount:  s.RetriggerCount,
		FinalMultiplier: s.FinalMultiplier,
	}
}

func ToStatsResponse(s model.SessionStats) session.StatsResponse {
	hist := make(map[string]int, len(s.Histogram))
	for k, v := range s.Histogram {
		hist[string(k)] = v
	}
	return session.StatsResponse{
		TotalSpins:   s.TotalSpins,
		FreeSpins:    s.FreeSpins,
		TotalBet:     money(s.TotalBet),
		TotalWin:     money(s.TotalWin),
		MaxWin:       money(s.MaxWin),
		SessionRTP:   ratio(s.SessionRTP),
		RollingRTP:   ratio(s.RollingRTP),
		HitFrequency: ratio(s.HitFrequency),
		WindowSize:   s.WindowSize,
		Histogram:    hist,
	}
}

func ToCloseResponse(c model.SessionClose) session.CloseResponse {
	return session.CloseResponse{
		Stats:          ToStatsResponse(c.Stats),
		ServerSeed:     c.ServerSeed,
		ServerSeedHash: c.ServerSeedHash,
		ClientSeed:     c.ClientSeed,
		Nonce:          c.Nonce,
		Aborted:        toSummary(c.Aborted),
		RNGDegraded:    c.RNGDegraded,
	}
}
