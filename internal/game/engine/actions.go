package engine

import (
	"log"

	"github.com/palemoky/daifugo/internal/apperrors"
	"github.com/palemoky/daifugo/internal/game/card"
	"github.com/palemoky/daifugo/internal/protocol"
	"github.com/palemoky/daifugo/internal/protocol/convert"
)

// Play 处理一次出牌：先校验（只读），后原子应用。
// 应用后不变量被破坏时整体回滚并返回内部错误。
func (g *Game) Play(playerID string, cards []card.Card) (*Outcome, error) {
	play, verr := g.ValidatePlay(playerID, cards)
	if verr != nil {
		return nil, verr
	}

	snapshot := g.clone()
	out := g.applyPlay(g.Current, play)
	if err := g.checkInvariants(); err != nil {
		log.Printf("[ERROR] 出牌后不变量被破坏，已回滚: %v", err)
		g.restore(snapshot)
		return nil, apperrors.ErrInternal
	}
	return out, nil
}

// Pass 处理パス：标记后交给回合推进器，可能触发场流
func (g *Game) Pass(playerID string) (*Outcome, error) {
	if verr := g.validatePass(playerID); verr != nil {
		return nil, verr
	}

	out := &Outcome{}
	g.Players[g.Current].Passed = true
	g.advanceTurn(g.Current, out)
	return out, nil
}

// ResolveTransfer 解决7渡し义务：把指定的牌交给接收方，然后正常推进回合
func (g *Game) ResolveTransfer(playerID string, cards []card.Card) (*Outcome, error) {
	if verr := g.validateResolve(ObligationTransfer, playerID, cards); verr != nil {
		return nil, verr
	}
	return g.resolveObligation(cards, func(o Obligation) {
		g.giveToHand(o.To, cards)
	})
}

// ResolveDiscard 解决10捨て义务：指定的牌直接入弃牌堆
func (g *Game) ResolveDiscard(playerID string, cards []card.Card) (*Outcome, error) {
	if verr := g.validateResolve(ObligationDiscard, playerID, cards); verr != nil {
		return nil, verr
	}
	return g.resolveObligation(cards, func(o Obligation) {
		g.Discard = append(g.Discard, cards...)
	})
}

// resolveObligation 义务解决的公共路径：从欠方手牌取走牌并交由 place
// 安置，义务清除后回合从欠方正常推进。交完牌手牌见空视同上がり。
func (g *Game) resolveObligation(cards []card.Card, place func(Obligation)) (*Outcome, error) {
	snapshot := g.clone()
	o := g.Pending
	out := &Outcome{}

	g.removeFromHand(o.From, cards)
	place(o)
	g.Pending = Obligation{}

	if len(g.Players[o.From].Hand) == 0 {
		g.finishPlayer(o.From, out)
	}
	g.advanceTurn(o.From, out)
	g.checkGameEnd(out)

	if err := g.checkInvariants(); err != nil {
		log.Printf("[ERROR] 义务解决后不变量被破坏，已回滚: %v", err)
		g.restore(snapshot)
		return nil, apperrors.ErrInternal
	}
	return out, nil
}

// Snapshot 构建对单个玩家可见的局面快照（手牌只含本人）
func (g *Game) Snapshot(viewerID string) protocol.GameStateDTO {
	dto := protocol.GameStateDTO{
		Phase:        g.Phase.String(),
		CurrentTurn:  g.Players[g.Current].ID,
		DiscardCount: len(g.Discard),
		Rules: protocol.RuleStateDTO{
			Revolution: g.Rules.Revolution,
			ElevenBack: g.Rules.ElevenBack,
			SuitBind:   g.Rules.SuitBind.Name(),
			RankBind:   int(g.Rules.RankBind),
		},
	}

	for _, p := range g.Players {
		info := protocol.PlayerInfo{
			ID:         p.ID,
			Name:       p.Name,
			Seat:       p.Seat,
			CardsCount: len(p.Hand),
			Passed:     p.Passed,
			Online:     true,
		}
		if pos := g.finishPos(p.Seat); pos >= 0 {
			info.FinishRank = string(rankLabels(len(g.Players))[pos])
		}
		dto.Players = append(dto.Players, info)
		if p.ID == viewerID {
			dto.Hand = convert.CardsToInfos(p.Hand)
		}
	}

	if !g.Table.IsEmpty() {
		dto.Trick = convert.CardsToInfos(g.Table.Play.Cards)
		dto.TrickOwner = g.Players[g.Table.Owner].ID
	}
	if g.Pending.IsPending() {
		ob := &protocol.ObligationDTO{
			Kind:       g.Pending.Kind.String(),
			FromPlayer: g.Players[g.Pending.From].ID,
			Count:      g.Pending.Count,
		}
		if g.Pending.Kind == ObligationTransfer {
			ob.ToPlayer = g.Players[g.Pending.To].ID
		}
		dto.Obligation = ob
	}
	for _, seat := range g.FinishedBy {
		dto.FinishedOrder = append(dto.FinishedOrder, g.Players[seat].ID)
	}
	return dto
}
