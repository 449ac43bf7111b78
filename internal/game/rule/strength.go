package rule

import (
	"github.com/palemoky/daifugo/internal/game/card"
)

// 强度值：3 最弱，依次 4..10,J,Q,K,A,2，王牌永远在最上方
const (
	strengthAce   = 14
	strengthTwo   = 15
	strengthJoker = 16
	strengthMin   = 3
)

// baseStrength 返回不考虑规则状态的基础强度
func baseStrength(c card.Card) int {
	if c.IsJoker() {
		return strengthJoker
	}
	switch c.Rank {
	case card.RankA:
		return strengthAce
	case card.Rank2:
		return strengthTwo
	default:
		return int(c.Rank)
	}
}

// Strength 返回当前规则状态下一张牌的有效强度。
// 革命与 11バック各自反转非王牌的强度顺序，两者同时生效时相互抵消；
// 王牌不参与反转，始终位于最上方。
func Strength(c card.Card, s State) int {
	base := baseStrength(c)
	if c.IsJoker() {
		return base
	}
	if s.Revolution != s.ElevenBack {
		return strengthTwo + strengthMin - base
	}
	return base
}

// Beats 判断 played 是否能压过 last（都取各自牌型的代表牌）。
// 强度取严格大于，等值不存在（不含重复牌）。
func Beats(played, last card.Card, s State) bool {
	return Strength(played, s) > Strength(last, s)
}
