package engine

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/daifugo/internal/apperrors"
	"github.com/palemoky/daifugo/internal/game/card"
	"github.com/palemoky/daifugo/internal/game/rule"
)

func TestValidatePlayOrdering(t *testing.T) {
	t.Parallel()

	setup := func() *Game {
		g := newTestGame(t, rule.Config{MaxPlayers: 3},
			[]card.Card{c(card.Heart, card.Rank5), c(card.Spade, card.Rank5), c(card.Club, card.RankK)},
			[]card.Card{c(card.Heart, card.Rank9), c(card.Diamond, card.Rank4)},
			[]card.Card{c(card.Club, card.Rank6), c(card.Club, card.Rank7)},
		)
		return g
	}

	t.Run("unknown player", func(t *testing.T) {
		t.Parallel()
		g := setup()
		_, err := g.ValidatePlay("ghost", []card.Card{c(card.Heart, card.Rank5)})
		assert.Equal(t, apperrors.ErrPlayerNotFound, err)
	})

	t.Run("not your turn", func(t *testing.T) {
		t.Parallel()
		g := setup()
		_, err := g.ValidatePlay("p2", []card.Card{c(card.Heart, card.Rank9)})
		assert.Equal(t, apperrors.ErrNotYourTurn, err)
	})

	t.Run("card not in hand", func(t *testing.T) {
		t.Parallel()
		g := setup()
		_, err := g.ValidatePlay("p1", []card.Card{c(card.Heart, card.RankA)})
		assert.Equal(t, apperrors.ErrCardNotInHand, err)
	})

	t.Run("empty selection", func(t *testing.T) {
		t.Parallel()
		g := setup()
		_, err := g.ValidatePlay("p1", nil)
		assert.Equal(t, apperrors.ErrEmptyPlay, err)
	})

	t.Run("unclassifiable shape", func(t *testing.T) {
		t.Parallel()
		g := setup()
		_, err := g.ValidatePlay("p1", []card.Card{c(card.Heart, card.Rank5), c(card.Club, card.RankK)})
		assert.Equal(t, apperrors.ErrInvalidShape, err)
	})

	t.Run("shape mismatch against table", func(t *testing.T) {
		t.Parallel()
		g := newTestGame(t, rule.Config{MaxPlayers: 3},
			[]card.Card{c(card.Club, card.RankK)},
			[]card.Card{c(card.Heart, card.Rank9), c(card.Diamond, card.Rank9)},
			[]card.Card{c(card.Club, card.Rank6)},
		)
		mustPlay(t, g, "p1", c(card.Club, card.RankK))
		_, err := g.ValidatePlay("p2", []card.Card{c(card.Heart, card.Rank9), c(card.Diamond, card.Rank9)})
		assert.Equal(t, apperrors.ErrShapeMismatch, err)
	})

	t.Run("cannot beat", func(t *testing.T) {
		t.Parallel()
		g := setup()
		mustPlay(t, g, "p1", c(card.Club, card.RankK))
		_, err := g.ValidatePlay("p2", []card.Card{c(card.Diamond, card.Rank4)})
		assert.Equal(t, apperrors.ErrCannotBeat, err)
	})
}

func TestValidatePlayIsPure(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, rule.Config{MaxPlayers: 3},
		[]card.Card{c(card.Heart, card.Rank5), c(card.Club, card.RankK)},
		[]card.Card{c(card.Heart, card.Rank9)},
		[]card.Card{c(card.Club, card.Rank6)},
	)
	before := g.clone()

	// 同一个非法动作重复校验：同样的拒绝，状态零漂移
	for range 3 {
		_, err := g.Play("p2", []card.Card{c(card.Heart, card.Rank9)})
		assert.Equal(t, apperrors.ErrNotYourTurn, err)
		assert.True(t, reflect.DeepEqual(before, g.clone()), "rejected action must not mutate state")
	}
}

func TestValidateBindings(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, rule.Config{MaxPlayers: 3},
		[]card.Card{c(card.Heart, card.Rank5)},
		[]card.Card{c(card.Spade, card.Rank9), c(card.Heart, card.Rank9), joker()},
		[]card.Card{c(card.Club, card.Rank6)},
	)
	g.Table.Play = rule.Classify([]card.Card{c(card.Heart, card.Rank4)})
	g.Table.Owner = 2
	g.Current = 1
	g.Rules.SuitBind = card.Heart

	// 記号缚り拒绝非同花色
	_, err := g.ValidatePlay("p2", []card.Card{c(card.Spade, card.Rank9)})
	assert.Equal(t, apperrors.ErrSuitBound, err)

	// 同花色通过
	_, err = g.ValidatePlay("p2", []card.Card{c(card.Heart, card.Rank9)})
	require.Nil(t, err)

	// 王牌豁免缚り
	_, err = g.ValidatePlay("p2", []card.Card{joker()})
	require.Nil(t, err)

	// 数字缚り
	g.Rules.SuitBind = card.SuitNone
	g.Rules.RankBind = card.Rank8
	_, err = g.ValidatePlay("p2", []card.Card{c(card.Heart, card.Rank9)})
	assert.Equal(t, apperrors.ErrRankBound, err)
}

func TestValidateJokerAndSpadeThree(t *testing.T) {
	t.Parallel()

	t.Run("joker beats anything except spade three counter", func(t *testing.T) {
		t.Parallel()
		g := newTestGame(t, rule.Config{MaxPlayers: 3},
			[]card.Card{joker(), c(card.Heart, card.Rank5)},
			[]card.Card{c(card.Heart, card.Rank9)},
			[]card.Card{c(card.Club, card.Rank6)},
		)
		// 场上是一对，单张王牌依然合法（特例绕过形状检查）
		g.Table.Play = rule.Classify([]card.Card{c(card.Diamond, card.Rank2), c(card.Club, card.Rank2)})
		g.Table.Owner = 2
		_, err := g.ValidatePlay("p1", []card.Card{joker()})
		require.Nil(t, err)

		// 场上是黑桃3反制时王牌被拒绝
		g.Table.Play = rule.Classify([]card.Card{c(card.Spade, card.Rank3)})
		_, err = g.ValidatePlay("p1", []card.Card{joker()})
		assert.Equal(t, apperrors.ErrJokerCountered, err)
	})

	t.Run("spade three counters a lone joker", func(t *testing.T) {
		t.Parallel()
		g := newTestGame(t, rule.Config{MaxPlayers: 3},
			[]card.Card{c(card.Spade, card.Rank3), c(card.Heart, card.Rank5)},
			[]card.Card{c(card.Heart, card.Rank9)},
			[]card.Card{c(card.Club, card.Rank6)},
		)
		g.Table.Play = rule.Classify([]card.Card{joker()})
		g.Table.Owner = 2
		_, err := g.ValidatePlay("p1", []card.Card{c(card.Spade, card.Rank3)})
		require.Nil(t, err)
	})

	t.Run("spade three is an ordinary single elsewhere", func(t *testing.T) {
		t.Parallel()
		g := newTestGame(t, rule.Config{MaxPlayers: 3},
			[]card.Card{c(card.Spade, card.Rank3), c(card.Heart, card.Rank5)},
			[]card.Card{c(card.Heart, card.Rank9)},
			[]card.Card{c(card.Club, card.Rank6)},
		)
		// 领出黑桃3是普通单张
		_, err := g.ValidatePlay("p1", []card.Card{c(card.Spade, card.Rank3)})
		require.Nil(t, err)

		// 压不过更大的单张
		g.Table.Play = rule.Classify([]card.Card{c(card.Heart, card.RankK)})
		g.Table.Owner = 2
		_, err = g.ValidatePlay("p1", []card.Card{c(card.Spade, card.Rank3)})
		assert.Equal(t, apperrors.ErrCannotBeat, err)
	})
}

func TestValidateCounterRevolutionSize(t *testing.T) {
	t.Parallel()

	quad9 := []card.Card{
		c(card.Heart, card.Rank9), c(card.Spade, card.Rank9),
		c(card.Diamond, card.Rank9), c(card.Club, card.Rank9),
	}
	five5 := []card.Card{
		c(card.Heart, card.Rank5), c(card.Spade, card.Rank5),
		c(card.Diamond, card.Rank5), c(card.Club, card.Rank5), joker(),
	}

	quad5 := five5[:4]

	g := newTestGame(t, rule.Config{MaxPlayers: 3, CounterRevolutionSize: true},
		append([]card.Card{c(card.Heart, card.Rank6)}, quad9...),
		five5,
		[]card.Card{c(card.Club, card.Rank6)},
	)
	mustPlay(t, g, "p1", quad9...)
	assert.True(t, g.Rules.Revolution)
	assert.Equal(t, 4, g.Rules.RevolutionTriggerSize)
	mustPass(t, g, "p2")
	mustPass(t, g, "p3")
	// 场流后 p1 领出；改由 p2 领出以测试房规
	require.Equal(t, 0, g.Current)
	require.True(t, g.Table.IsEmpty())
	g.Current = 1
	g.Table.Owner = 1

	// 革命中领出 5 枚组：与触发枚数不同，房规生效时拒绝
	_, err := g.ValidatePlay("p2", five5)
	assert.Equal(t, apperrors.ErrCounterSize, err)

	// 4 枚组（革命返し）允许
	_, err = g.ValidatePlay("p2", quad5)
	require.Nil(t, err)
}
