package card

import (
	"slices"
	"sort"
)

// CountRank 统计一组牌中指定点数的非王牌数量
func CountRank(cards []Card, r Rank) int {
	n := 0
	for _, c := range cards {
		if !c.IsJoker() && c.Rank == r {
			n++
		}
	}
	return n
}

// CountJokers 统计一组牌中王牌的数量
func CountJokers(cards []Card) int {
	n := 0
	for _, c := range cards {
		if c.IsJoker() {
			n++
		}
	}
	return n
}

// RemoveCards 从手牌中移除指定的牌，多重集合语义：
// 每张待移除的牌最多消耗手牌中的一张（两张王牌等值，不能一次拿走两张）。
// 任意一张不在手牌中时返回 false，且不修改原手牌。
func RemoveCards(hand, toRemove []Card) ([]Card, bool) {
	result := slices.Clone(hand)
	for _, rc := range toRemove {
		idx := slices.Index(result, rc)
		if idx < 0 {
			return nil, false
		}
		result = slices.Delete(result, idx, idx+1)
	}
	return result, true
}

// ContainsAll 判断手牌是否包含指定的全部牌（多重集合语义）
func ContainsAll(hand, cards []Card) bool {
	_, ok := RemoveCards(hand, cards)
	return ok
}

// SortHand 按点数升序整理手牌，王牌排在最后，便于客户端展示
func SortHand(hand []Card) {
	sort.Slice(hand, func(i, j int) bool {
		if hand[i].IsJoker() != hand[j].IsJoker() {
			return !hand[i].IsJoker()
		}
		if hand[i].Rank != hand[j].Rank {
			return hand[i].Rank < hand[j].Rank
		}
		return hand[i].Suit < hand[j].Suit
	})
}
