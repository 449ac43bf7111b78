package engine

import (
	"slices"

	"github.com/palemoky/daifugo/internal/game/card"
	"github.com/palemoky/daifugo/internal/game/rule"
	"github.com/palemoky/daifugo/internal/protocol"
)

// 革命所需的同点数（或階段）枚数
const revolutionSize = 4

// Outcome 一次动作的结果，供传输层广播
type Outcome struct {
	Effects      []protocol.Effect
	TrickCleared bool
	Finished     []string // 本次动作中上がり的玩家 ID（含都落ち者），按确定顺序
	GameEnded    bool
}

func (o *Outcome) addEffect(e protocol.Effect) {
	o.Effects = append(o.Effects, e)
}

// applyPlay 在校验通过后原子地应用一次出牌。
// 顺序固定：上一手入弃牌堆 → 上がり与都落ち判定 → 缚り发生 →
// 革命切换 → 11バック → 互斥的流场/义务分支 → 回合推进。
func (g *Game) applyPlay(seat int, play rule.Play) *Outcome {
	out := &Outcome{}
	p := g.Players[seat]

	// (a) 场上旧牌入弃牌堆，出的牌成为新的场牌并离开手牌
	prev := g.Table.Play
	g.Discard = append(g.Discard, prev.Cards...)
	g.Table.Play = play
	g.Table.Owner = seat
	g.Table.History = append(g.Table.History, TrickPlay{Seat: seat, Cards: play.Cards})
	p.Hand, _ = card.RemoveCards(p.Hand, play.Cards)

	// (b) 上がり判定与都落ち
	if len(p.Hand) == 0 {
		g.finishPlayer(seat, out)
	}

	// (c) 缚り发生：相邻两手同一花色则記号缚り；階段则数字缚り
	g.emergeBinds(play, out)

	// (d) 革命：4枚以上的组或階段切换革命状态并记录枚数
	if (play.Kind == rule.KindGroup || play.Kind == rule.KindRun) && play.Size >= revolutionSize {
		g.Rules.ToggleRevolution(play.Size)
		out.addEffect(protocol.EffectRevolution)
	}

	// (e) 11バック：任何 J 出牌时生效，场流前不会解除
	if card.CountRank(play.Cards, card.RankJ) > 0 {
		g.Rules.ElevenBack = true
		out.addEffect(protocol.EffectElevenBack)
	}

	// (f) 互斥分支，按优先级只触发第一个匹配项
	switch {
	case g.isEightClear(play):
		out.addEffect(protocol.EffectEightClear)
		g.clearTrick(seat)
		out.TrickCleared = true

	case play.IsSpadeThreeSingle() && prev.IsJokerSingle():
		out.addEffect(protocol.EffectSpadeThreeCounter)
		g.clearTrick(seat)
		out.TrickCleared = true

	case g.setObligation(ObligationTransfer, seat, card.CountRank(play.Cards, card.Rank7)):
		out.addEffect(protocol.EffectSevenTransfer)

	case g.setObligation(ObligationDiscard, seat, card.CountRank(play.Cards, card.Rank10)):
		out.addEffect(protocol.EffectTenDiscard)

	default:
		g.advanceTurn(seat, out)
	}

	g.checkGameEnd(out)
	return out
}

// isEightClear 8切り：含非王牌的8且形状不是階段
func (g *Game) isEightClear(play rule.Play) bool {
	return play.Kind != rule.KindRun && card.CountRank(play.Cards, card.Rank8) > 0
}

// emergeBinds 缚り发生判定。記号缚り要求本场相邻两手都是不含王牌的
// 同一花色出牌；階段出牌确立数字缚り（代表点数）。
func (g *Game) emergeBinds(play rule.Play, out *Outcome) {
	n := len(g.Table.History)
	if n >= 2 && g.Rules.SuitBind == card.SuitNone {
		last := rule.UniformSuit(g.Table.History[n-1].Cards)
		before := rule.UniformSuit(g.Table.History[n-2].Cards)
		if last != card.SuitNone && last == before {
			g.Rules.SuitBind = last
			out.addEffect(protocol.EffectSuitBind)
		}
	}
	if play.Kind == rule.KindRun && g.Rules.RankBind == card.RankNone {
		g.Rules.RankBind = play.Rep.Rank
		out.addEffect(protocol.EffectRankBind)
	}
}

// setObligation 尝试设置出牌义务。枚数为 0 或欠方已无手牌时不成立；
// 7渡し的接收方为下一个仍持牌的座位。渡し枚数不超过剩余手牌。
func (g *Game) setObligation(kind ObligationKind, seat, count int) bool {
	if count == 0 || len(g.Players[seat].Hand) == 0 {
		return false
	}
	if count > len(g.Players[seat].Hand) {
		count = len(g.Players[seat].Hand)
	}
	o := Obligation{Kind: kind, From: seat, Count: count}
	if kind == ObligationTransfer {
		to, ok := g.nextActiveSeat(seat)
		if !ok {
			return false
		}
		o.To = to
	}
	g.Pending = o
	// 回合冻结在欠方座位上
	g.Current = seat
	return true
}

// finishPlayer 将座位计入名次，并在首位上がり时执行都落ち判定：
// 带着大富豪头衔却没有首位上がり的玩家立即被降为下一个名次，手牌全弃。
func (g *Game) finishPlayer(seat int, out *Outcome) {
	first := len(g.FinishedBy) == 0
	g.FinishedBy = append(g.FinishedBy, seat)
	out.Finished = append(out.Finished, g.Players[seat].ID)
	out.addEffect(protocol.EffectPlayerFinished)

	if !first || g.Players[seat].WasTopRank {
		return
	}
	for _, p := range g.Players {
		if p.WasTopRank && len(p.Hand) > 0 {
			g.Discard = append(g.Discard, p.Hand...)
			p.Hand = nil
			p.Demoted = true
			g.FinishedBy = append(g.FinishedBy, p.Seat)
			out.Finished = append(out.Finished, p.ID)
			out.addEffect(protocol.EffectCapitalFall)
			break
		}
	}
}

// clearTrick 流场：场牌与履历入弃牌堆，缚り与 11バック解除，
// パス状态重置，lead 座位领出下一场（已上がり时顺延到下一个持牌者）。
func (g *Game) clearTrick(lead int) {
	g.Discard = append(g.Discard, g.Table.Play.Cards...)
	g.Table.Play = rule.Play{}
	g.Table.History = nil
	g.Rules.ClearTrickLocal()
	for _, p := range g.Players {
		p.Passed = false
	}

	if !g.isActive(lead) {
		if next, ok := g.nextActiveSeat(lead); ok {
			lead = next
		}
	}
	g.Table.Owner = lead
	g.Current = lead
}

// checkGameEnd 持牌者不足两人时结束本局，剩余的一人补到名次末位
func (g *Game) checkGameEnd(out *Outcome) {
	if g.Phase != PhasePlaying || g.activeCount() > 1 {
		return
	}
	for _, p := range g.Players {
		if len(p.Hand) > 0 && !g.hasFinished(p.Seat) {
			// 大贫民保留手牌，只补进名次末位
			g.FinishedBy = append(g.FinishedBy, p.Seat)
			out.Finished = append(out.Finished, p.ID)
		}
	}
	g.Pending = Obligation{}
	g.Phase = PhaseFinished
	out.GameEnded = true
}

// removeFromHand 供义务解决使用：从座位手牌中取走指定的牌
func (g *Game) removeFromHand(seat int, cards []card.Card) {
	g.Players[seat].Hand, _ = card.RemoveCards(g.Players[seat].Hand, cards)
}

// giveToHand 将牌并入座位手牌并重新整理
func (g *Game) giveToHand(seat int, cards []card.Card) {
	g.Players[seat].Hand = append(g.Players[seat].Hand, slices.Clone(cards)...)
	card.SortHand(g.Players[seat].Hand)
}
