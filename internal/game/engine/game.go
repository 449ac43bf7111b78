package engine

import (
	"fmt"

	"github.com/palemoky/daifugo/internal/game/card"
	"github.com/palemoky/daifugo/internal/game/rule"
)

// Seed 开局时每个座位的玩家信息，席次标记来自上一局
type Seed struct {
	ID            string
	Name          string
	WasTopRank    bool
	WasBottomRank bool
	WasDemoted    bool
}

// NewGame 洗牌发牌并创建一局新游戏，seeds 的顺序即座位顺序。
// 座位 0 领出第一场。
func NewGame(cfg rule.Config, seeds []Seed) (*Game, error) {
	cfg = cfg.Normalize()
	if len(seeds) < rule.MinPlayers || len(seeds) > rule.MaxPlayersLimit {
		return nil, fmt.Errorf("玩家人数必须在 %d-%d 之间: %d", rule.MinPlayers, rule.MaxPlayersLimit, len(seeds))
	}

	deck := card.NewDeck()
	deck.Shuffle()
	hands := deck.Deal(len(seeds))

	players := make([]*Player, len(seeds))
	for i, s := range seeds {
		card.SortHand(hands[i])
		players[i] = &Player{
			ID:            s.ID,
			Name:          s.Name,
			Seat:          i,
			Hand:          hands[i],
			WasTopRank:    s.WasTopRank,
			WasBottomRank: s.WasBottomRank,
			WasDemoted:    s.WasDemoted,
		}
	}

	return &Game{
		Config:  cfg,
		Players: players,
		Current: 0,
		Table:   Trick{Owner: 0},
		Phase:   PhasePlaying,
	}, nil
}

// NextGame 以本局结果为种子开始下一局：只带走席次标记，重新洗牌发牌
func (g *Game) NextGame() (*Game, error) {
	if g.Phase != PhaseFinished {
		return nil, fmt.Errorf("本局尚未结束")
	}

	seeds := make([]Seed, len(g.Players))
	top, bottom := g.FinishedBy[0], g.FinishedBy[len(g.FinishedBy)-1]
	for i, p := range g.Players {
		seeds[i] = Seed{
			ID:            p.ID,
			Name:          p.Name,
			WasTopRank:    p.Seat == top,
			WasBottomRank: p.Seat == bottom,
			WasDemoted:    p.Demoted,
		}
	}
	return NewGame(g.Config, seeds)
}

// checkInvariants 验证核心不变量。动作应用后调用；
// 违反说明实现有误，动作整体回滚并以内部错误上报。
func (g *Game) checkInvariants() error {
	total := len(g.Table.Play.Cards) + len(g.Discard)
	for _, p := range g.Players {
		total += len(p.Hand)
	}
	if total != card.DeckSize {
		return fmt.Errorf("牌的总数失衡: %d != %d", total, card.DeckSize)
	}

	seen := make(map[int]bool, len(g.FinishedBy))
	for _, seat := range g.FinishedBy {
		if seen[seat] {
			return fmt.Errorf("座位 %d 在名次列表中出现多次", seat)
		}
		seen[seat] = true
	}
	if len(g.FinishedBy) > len(g.Players) {
		return fmt.Errorf("名次列表超过座位数: %d", len(g.FinishedBy))
	}

	if g.Current < 0 || g.Current >= len(g.Players) {
		return fmt.Errorf("当前座位越界: %d", g.Current)
	}

	if g.Pending.IsPending() {
		if len(g.Players[g.Pending.From].Hand) == 0 {
			return fmt.Errorf("义务座位 %d 已无手牌", g.Pending.From)
		}
		if g.Pending.Kind == ObligationTransfer && len(g.Players[g.Pending.To].Hand) == 0 {
			return fmt.Errorf("7渡し接收座位 %d 已无手牌", g.Pending.To)
		}
	}
	return nil
}
