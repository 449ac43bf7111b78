package engine

import "github.com/palemoky/daifugo/internal/protocol"

// nextActiveSeat 返回 from 之后第一个仍持牌的座位
func (g *Game) nextActiveSeat(from int) (int, bool) {
	n := len(g.Players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if g.isActive(seat) {
			return seat, true
		}
	}
	return 0, false
}

// nextTurnSeat 从 from 出发，在仍持牌的玩家中向前寻找未パス者。
// 找到的是场的所有者（其余人都已パス或上がり）时报告场流；
// 一圈内无人可行动时同样报告场流。
func (g *Game) nextTurnSeat(from int) (seat int, trickCloses bool) {
	n := len(g.Players)
	for i := 1; i <= n; i++ {
		s := (from + i) % n
		if !g.isActive(s) || g.Players[s].Passed {
			continue
		}
		if s == g.Table.Owner {
			return 0, true
		}
		return s, false
	}
	return 0, true
}

// advanceTurn 正常推进回合；轮转回到场主时流场并由其领出
func (g *Game) advanceTurn(from int, out *Outcome) {
	seat, closes := g.nextTurnSeat(from)
	if closes {
		g.clearTrick(g.Table.Owner)
		out.TrickCleared = true
		out.addEffect(protocol.EffectTrickCleared)
		return
	}
	g.Current = seat
}
