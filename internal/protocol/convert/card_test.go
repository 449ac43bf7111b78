package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/daifugo/internal/game/card"
	"github.com/palemoky/daifugo/internal/protocol"
)

func TestCardRoundTrip(t *testing.T) {
	t.Parallel()

	original := card.Card{Suit: card.Spade, Rank: card.Rank2}

	info := CardToInfo(original)
	result, err := InfoToCard(info)
	require.NoError(t, err)
	assert.Equal(t, original, result)
}

func TestCardsRoundTrip(t *testing.T) {
	t.Parallel()

	originals := []card.Card{
		{Suit: card.Spade, Rank: card.Rank3},
		{Suit: card.Heart, Rank: card.RankQ},
		{Suit: card.Joker},
	}

	infos := CardsToInfos(originals)
	results, err := InfosToCards(infos)
	require.NoError(t, err)

	require.Len(t, results, len(originals))
	for i, orig := range originals {
		assert.Equal(t, orig, results[i], "Mismatch at index %d", i)
	}
}

func TestInfoToCardValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info protocol.CardInfo
	}{
		{"unknown suit", protocol.CardInfo{Suit: "star", Rank: 5}},
		{"empty suit", protocol.CardInfo{Rank: 5}},
		{"joker with rank", protocol.CardInfo{Suit: "joker", Rank: 3}},
		{"rank too low", protocol.CardInfo{Suit: "spade", Rank: 0}},
		{"rank too high", protocol.CardInfo{Suit: "club", Rank: 14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := InfoToCard(tt.info)
			assert.Error(t, err)
		})
	}
}

func TestInfosToCardsStopsAtFirstError(t *testing.T) {
	t.Parallel()

	_, err := InfosToCards([]protocol.CardInfo{
		{Suit: "spade", Rank: 4},
		{Suit: "moon", Rank: 4},
	})
	assert.Error(t, err)
}

func TestEmptyCards(t *testing.T) {
	t.Parallel()

	infos := CardsToInfos([]card.Card{})
	assert.Empty(t, infos)

	cards, err := InfosToCards([]protocol.CardInfo{})
	require.NoError(t, err)
	assert.Empty(t, cards)
}
