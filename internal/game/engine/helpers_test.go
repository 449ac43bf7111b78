package engine

import (
	"fmt"
	"testing"

	"github.com/palemoky/daifugo/internal/game/card"
	"github.com/palemoky/daifugo/internal/game/rule"
)

func c(s card.Suit, r card.Rank) card.Card { return card.Card{Suit: s, Rank: r} }

func joker() card.Card { return card.Card{Suit: card.Joker} }

// newTestGame 用指定手牌构建可控的对局。
// 未发到手牌的牌全部放进弃牌堆，保证 54 张守恒成立。
func newTestGame(t *testing.T, cfg rule.Config, hands ...[]card.Card) *Game {
	t.Helper()

	players := make([]*Player, len(hands))
	rest := []card.Card(card.NewDeck())
	for i, hand := range hands {
		var ok bool
		rest, ok = card.RemoveCards(rest, hand)
		if !ok {
			t.Fatalf("test hand %d contains cards not in the deck", i)
		}
		players[i] = &Player{
			ID:   fmt.Sprintf("p%d", i+1),
			Name: fmt.Sprintf("Player %d", i+1),
			Seat: i,
			Hand: append([]card.Card(nil), hand...),
		}
	}

	return &Game{
		Config:  cfg.Normalize(),
		Players: players,
		Current: 0,
		Table:   Trick{Owner: 0},
		Discard: rest,
		Phase:   PhasePlaying,
	}
}

// mustPlay 出牌并断言成功
func mustPlay(t *testing.T, g *Game, playerID string, cards ...card.Card) *Outcome {
	t.Helper()
	out, err := g.Play(playerID, cards)
	if err != nil {
		t.Fatalf("play by %s of %v failed: %v", playerID, cards, err)
	}
	return out
}

// mustPass 跳过并断言成功
func mustPass(t *testing.T, g *Game, playerID string) *Outcome {
	t.Helper()
	out, err := g.Pass(playerID)
	if err != nil {
		t.Fatalf("pass by %s failed: %v", playerID, err)
	}
	return out
}

// totalCards 当前状态下所有区域的牌数
func totalCards(g *Game) int {
	total := len(g.Table.Play.Cards) + len(g.Discard)
	for _, p := range g.Players {
		total += len(p.Hand)
	}
	return total
}
