package convert

import (
	"fmt"

	"github.com/palemoky/daifugo/internal/game/card"
	"github.com/palemoky/daifugo/internal/protocol"
)

// CardToInfo 将 card.Card 转换为 protocol.CardInfo
func CardToInfo(c card.Card) protocol.CardInfo {
	return protocol.CardInfo{
		Suit: c.Suit.Name(),
		Rank: int(c.Rank),
	}
}

// CardsToInfos 将 []card.Card 转换为 []protocol.CardInfo
func CardsToInfos(cards []card.Card) []protocol.CardInfo {
	infos := make([]protocol.CardInfo, len(cards))
	for i, c := range cards {
		infos[i] = CardToInfo(c)
	}
	return infos
}

// InfoToCard 将 protocol.CardInfo 转换为 card.Card。
// 花色必须可识别；王牌不携带点数，非王牌点数必须在 1-13 之间。
func InfoToCard(info protocol.CardInfo) (card.Card, error) {
	suit, err := card.SuitFromName(info.Suit)
	if err != nil {
		return card.Card{}, err
	}
	if suit == card.Joker {
		if info.Rank != 0 {
			return card.Card{}, fmt.Errorf("王牌不能携带点数: %d", info.Rank)
		}
		return card.Card{Suit: card.Joker}, nil
	}
	if info.Rank < int(card.RankA) || info.Rank > int(card.RankK) {
		return card.Card{}, fmt.Errorf("无效的点数: %d", info.Rank)
	}
	return card.Card{Suit: suit, Rank: card.Rank(info.Rank)}, nil
}

// InfosToCards 将 []protocol.CardInfo 转换为 []card.Card
func InfosToCards(infos []protocol.CardInfo) ([]card.Card, error) {
	cards := make([]card.Card, len(infos))
	for i, info := range infos {
		c, err := InfoToCard(info)
		if err != nil {
			return nil, err
		}
		cards[i] = c
	}
	return cards, nil
}
