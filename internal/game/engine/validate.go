package engine

import (
	"github.com/palemoky/daifugo/internal/apperrors"
	"github.com/palemoky/daifugo/internal/game/card"
	"github.com/palemoky/daifugo/internal/game/rule"
)

// ValidatePlay 校验一次出牌。只读，不修改任何状态；
// 按固定顺序检查，返回第一个失败项对应的错误。
// 校验通过时返回分类结果供应用阶段复用。
func (g *Game) ValidatePlay(playerID string, cards []card.Card) (rule.Play, *apperrors.GameError) {
	if g.Phase != PhasePlaying {
		return rule.Play{}, apperrors.ErrGameNotStart
	}
	if g.Pending.IsPending() {
		return rule.Play{}, apperrors.ErrTurnFrozen
	}

	// 1. 玩家存在且轮到其行动
	p := g.player(playerID)
	if p == nil {
		return rule.Play{}, apperrors.ErrPlayerNotFound
	}
	if p.Seat != g.Current {
		return rule.Play{}, apperrors.ErrNotYourTurn
	}

	// 2. 每张牌都在手牌中（多重集合语义）
	if !card.ContainsAll(p.Hand, cards) {
		return rule.Play{}, apperrors.ErrCardNotInHand
	}

	// 3. 不能出空牌
	if len(cards) == 0 {
		return rule.Play{}, apperrors.ErrEmptyPlay
	}

	// 4. 特例：单张王牌几乎总是合法，唯独压不过场上的单张黑桃3；
	//    单张黑桃3只在场上是单张王牌时走特例通道
	play := rule.Classify(cards)
	if play.IsJokerSingle() {
		if g.Table.Play.IsSpadeThreeSingle() {
			return rule.Play{}, apperrors.ErrJokerCountered
		}
		return play, nil
	}
	if play.IsSpadeThreeSingle() && g.Table.Play.IsJokerSingle() {
		return play, nil
	}

	// 5. 形状必须可识别；场上无牌时任何合法形状都可领出
	if play.IsEmpty() {
		return rule.Play{}, apperrors.ErrInvalidShape
	}

	if !g.Table.IsEmpty() {
		// 6. 形状种类与枚数必须与场上一致
		if play.Kind != g.Table.Play.Kind || play.Size != g.Table.Play.Size {
			return rule.Play{}, apperrors.ErrShapeMismatch
		}

		// 7. 强度必须压过场上的代表牌
		if !rule.Beats(play.Rep, g.Table.Play.Rep, g.Rules) {
			return rule.Play{}, apperrors.ErrCannotBeat
		}
	}

	// 8. 缚り：非王牌必须全部符合生效的花色/点数，王牌豁免
	if g.Rules.SuitBind != card.SuitNone {
		for _, c := range cards {
			if !c.IsJoker() && c.Suit != g.Rules.SuitBind {
				return rule.Play{}, apperrors.ErrSuitBound
			}
		}
	}
	if g.Rules.RankBind != card.RankNone {
		for _, c := range cards {
			if !c.IsJoker() && c.Rank != g.Rules.RankBind {
				return rule.Play{}, apperrors.ErrRankBound
			}
		}
	}

	// 9. 革命返し枚数限制（可选房规）
	if g.Config.CounterRevolutionSize && g.Rules.Revolution && g.Rules.RevolutionTriggerSize > 0 &&
		play.Kind == rule.KindGroup && play.Size >= revolutionSize && play.Size != g.Rules.RevolutionTriggerSize {
		return rule.Play{}, apperrors.ErrCounterSize
	}

	return play, nil
}

// validatePass 校验パス：轮到自己且没有冻结的义务
func (g *Game) validatePass(playerID string) *apperrors.GameError {
	if g.Phase != PhasePlaying {
		return apperrors.ErrGameNotStart
	}
	if g.Pending.IsPending() {
		return apperrors.ErrTurnFrozen
	}
	p := g.player(playerID)
	if p == nil {
		return apperrors.ErrPlayerNotFound
	}
	if p.Seat != g.Current {
		return apperrors.ErrNotYourTurn
	}
	return nil
}

// validateResolve 校验义务解决动作：种类、执行人、枚数与手牌归属
func (g *Game) validateResolve(kind ObligationKind, playerID string, cards []card.Card) *apperrors.GameError {
	if g.Phase != PhasePlaying {
		return apperrors.ErrGameNotStart
	}
	if !g.Pending.IsPending() || g.Pending.Kind != kind {
		return apperrors.ErrNoObligation
	}
	p := g.player(playerID)
	if p == nil {
		return apperrors.ErrPlayerNotFound
	}
	if p.Seat != g.Pending.From {
		return apperrors.ErrNotObligated
	}
	if len(cards) != g.Pending.Count {
		return apperrors.ErrObligationCount
	}
	if !card.ContainsAll(p.Hand, cards) {
		return apperrors.ErrCardNotInHand
	}
	return nil
}
