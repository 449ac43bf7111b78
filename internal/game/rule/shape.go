package rule

import (
	"slices"

	"github.com/palemoky/daifugo/internal/game/card"
)

// Kind 定义出牌形状
type Kind int

const (
	KindInvalid Kind = iota
	KindSingle       // 单张
	KindGroup        // 同点数复数张
	KindRun          // 階段（同花色 3 枚以上连续，王牌可补缺口）
)

// kindNames 形状名称映射表
var kindNames = map[Kind]string{
	KindSingle: "single",
	KindGroup:  "group",
	KindRun:    "run",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// Play 分类后的一手出牌
type Play struct {
	Kind  Kind
	Size  int         // 出牌枚数；階段与同点数组的强度比较要求枚数一致
	Rep   card.Card   // 代表牌：单张为其本身，组为共通点数，階段为补全后的最低点数
	Cards []card.Card // 这手牌包含的卡牌
}

// IsEmpty 形状是否无效
func (p Play) IsEmpty() bool {
	return p.Kind == KindInvalid
}

// IsJokerSingle 是否为单张王牌
func (p Play) IsJokerSingle() bool {
	return p.Kind == KindSingle && p.Cards[0].IsJoker()
}

// IsSpadeThreeSingle 是否为单张黑桃3
func (p Play) IsSpadeThreeSingle() bool {
	return p.Kind == KindSingle && p.Cards[0].IsSpadeThree()
}

// UniformSuit 返回这手牌的统一花色。
// 全部为非王牌且同一花色时返回该花色，否则返回 SuitNone。
// 含王牌的出牌不构成統一花色（記号缚り判定用）。
func UniformSuit(cards []card.Card) card.Suit {
	if len(cards) == 0 {
		return card.SuitNone
	}
	suit := cards[0].Suit
	for _, c := range cards {
		if c.IsJoker() || c.Suit != suit {
			return card.SuitNone
		}
	}
	return suit
}

// Classify 判定一组牌构成的形状。
// 空集无效；1 张为单张；2 张以上且非王牌点数一致为组（王牌可凑数）；
// 3 张以上尝试階段。都不满足时返回无效形状。
func Classify(cards []card.Card) Play {
	switch {
	case len(cards) == 0:
		return Play{}
	case len(cards) == 1:
		return Play{Kind: KindSingle, Size: 1, Rep: cards[0], Cards: cards}
	}

	if rep, ok := classifyGroup(cards); ok {
		return Play{Kind: KindGroup, Size: len(cards), Rep: rep, Cards: cards}
	}
	if len(cards) >= 3 {
		if rep, ok := classifyRun(cards); ok {
			return Play{Kind: KindRun, Size: len(cards), Rep: rep, Cards: cards}
		}
	}
	return Play{}
}

// classifyGroup 判定同点数组：所有非王牌点数一致。
// 代表牌取第一张非王牌；全为王牌时代表牌即王牌。
func classifyGroup(cards []card.Card) (card.Card, bool) {
	rep := cards[0]
	for _, c := range cards {
		if c.IsJoker() {
			continue
		}
		if rep.IsJoker() {
			rep = c
			continue
		}
		if c.Rank != rep.Rank {
			return card.Card{}, false
		}
	}
	return rep, true
}

// classifyRun 判定階段：非王牌同一花色、点数无重复，
// 相邻点数之间的缺口逐一消耗王牌（缺 g 个点数消耗 g 张），
// 多余的王牌向上延长階段，代表点数为补全后序列的最低点。
func classifyRun(cards []card.Card) (card.Card, bool) {
	var ranks []card.Rank
	suit := card.SuitNone
	jokers := 0
	for _, c := range cards {
		if c.IsJoker() {
			jokers++
			continue
		}
		if suit == card.SuitNone {
			suit = c.Suit
		} else if c.Suit != suit {
			return card.Card{}, false
		}
		ranks = append(ranks, c.Rank)
	}
	if len(ranks) == 0 {
		// 纯王牌不构成階段
		return card.Card{}, false
	}

	slices.Sort(ranks)
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1] {
			return card.Card{}, false
		}
		jokers -= int(ranks[i]-ranks[i-1]) - 1
		if jokers < 0 {
			return card.Card{}, false
		}
	}
	return card.Card{Suit: suit, Rank: ranks[0]}, true
}
