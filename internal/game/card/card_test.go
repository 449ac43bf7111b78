package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckComposition(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	require.Len(t, deck, DeckSize)

	suits := make(map[Suit]int)
	seen := make(map[Card]int)
	for _, c := range deck {
		suits[c.Suit]++
		seen[c]++
	}
	assert.Equal(t, 13, suits[Spade])
	assert.Equal(t, 13, suits[Heart])
	assert.Equal(t, 13, suits[Diamond])
	assert.Equal(t, 13, suits[Club])
	assert.Equal(t, 2, suits[Joker])

	// 除王牌外每张都唯一
	for c, n := range seen {
		if c.IsJoker() {
			assert.Equal(t, 2, n)
		} else {
			assert.Equal(t, 1, n, "duplicate card %v", c)
		}
	}
}

func TestShuffleKeepsCards(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	shuffled := NewDeck()
	shuffled.Shuffle()
	require.Len(t, shuffled, DeckSize)

	rest, ok := RemoveCards(deck, shuffled)
	assert.True(t, ok)
	assert.Empty(t, rest)
}

func TestDealRoundRobin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		players int
		sizes   []int
	}{
		{3, []int{18, 18, 18}},
		{4, []int{14, 14, 13, 13}},
		{5, []int{11, 11, 11, 11, 10}},
	}
	for _, tt := range tests {
		hands := NewDeck().Deal(tt.players)
		require.Len(t, hands, tt.players)
		for i, want := range tt.sizes {
			assert.Len(t, hands[i], want)
		}
	}
}

func TestRemoveCards(t *testing.T) {
	t.Parallel()

	hand := []Card{
		{Suit: Spade, Rank: Rank3}, {Suit: Spade, Rank: Rank3},
		{Suit: Heart, Rank: RankK},
		{Suit: Joker}, {Suit: Joker},
	}

	t.Run("multiset semantics", func(t *testing.T) {
		t.Parallel()
		rest, ok := RemoveCards(hand, []Card{{Suit: Spade, Rank: Rank3}})
		require.True(t, ok)
		// 重复牌只取走一张
		assert.Contains(t, rest, Card{Suit: Spade, Rank: Rank3})
		assert.Len(t, rest, 4)
	})

	t.Run("single joker removal", func(t *testing.T) {
		t.Parallel()
		rest, ok := RemoveCards(hand, []Card{{Suit: Joker}})
		require.True(t, ok)
		assert.Contains(t, rest, Card{Suit: Joker})
		assert.Len(t, rest, 4)
	})

	t.Run("missing card fails without mutation", func(t *testing.T) {
		t.Parallel()
		_, ok := RemoveCards(hand, []Card{{Suit: Club, Rank: Rank2}})
		assert.False(t, ok)
		assert.Len(t, hand, 5, "原手牌不受影响")
	})

	t.Run("too many copies fails", func(t *testing.T) {
		t.Parallel()
		_, ok := RemoveCards(hand, []Card{{Suit: Heart, Rank: RankK}, {Suit: Heart, Rank: RankK}})
		assert.False(t, ok)
	})
}

func TestContainsAll(t *testing.T) {
	t.Parallel()

	hand := []Card{{Suit: Spade, Rank: Rank4}, {Suit: Joker}}
	assert.True(t, ContainsAll(hand, []Card{{Suit: Joker}}))
	assert.True(t, ContainsAll(hand, nil))
	assert.False(t, ContainsAll(hand, []Card{{Suit: Joker}, {Suit: Joker}}))
	assert.False(t, ContainsAll(hand, []Card{{Suit: Heart, Rank: Rank4}}))
}

func TestCountRank(t *testing.T) {
	t.Parallel()

	cards := []Card{
		{Suit: Spade, Rank: Rank7}, {Suit: Heart, Rank: Rank7},
		{Suit: Club, Rank: Rank10}, {Suit: Joker},
	}
	assert.Equal(t, 2, CountRank(cards, Rank7))
	assert.Equal(t, 1, CountRank(cards, Rank10))
	assert.Equal(t, 0, CountRank(cards, Rank8))
	assert.Equal(t, 1, CountJokers(cards))
}

func TestSortHand(t *testing.T) {
	t.Parallel()

	hand := []Card{
		{Suit: Joker},
		{Suit: Club, Rank: RankK},
		{Suit: Spade, Rank: Rank3},
		{Suit: Heart, Rank: Rank3},
	}
	SortHand(hand)

	assert.Equal(t, Rank3, hand[0].Rank)
	assert.Equal(t, Rank3, hand[1].Rank)
	assert.Equal(t, RankK, hand[2].Rank)
	assert.True(t, hand[3].IsJoker(), "王牌排在最后")
}
