package card

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// Suit 定义花色，零值表示"无花色"（缚り未生效时的空值）
type Suit int

// Rank 定义点数，1=A, 11=J, 12=Q, 13=K；王牌没有点数（0）
type Rank int

const (
	SuitNone Suit = iota
	Spade         // 黑桃
	Heart         // 红心
	Diamond       // 方块
	Club          // 梅花
	Joker         // 王牌
)

const (
	RankNone Rank = 0
	RankA    Rank = 1
	Rank2    Rank = 2
	Rank3    Rank = 3
	Rank4    Rank = 4
	Rank5    Rank = 5
	Rank6    Rank = 6
	Rank7    Rank = 7
	Rank8    Rank = 8
	Rank9    Rank = 9
	Rank10   Rank = 10
	RankJ    Rank = 11
	RankQ    Rank = 12
	RankK    Rank = 13
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Spade:   "♠",
	Heart:   "♥",
	Diamond: "♦",
	Club:    "♣",
	Joker:   "🃏",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// suitNames 花色的协议名称映射表
var suitNames = map[Suit]string{
	Spade:   "spade",
	Heart:   "heart",
	Diamond: "diamond",
	Club:    "club",
	Joker:   "joker",
}

// Name 返回花色的协议名称
func (s Suit) Name() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return ""
}

// SuitFromName 根据协议名称查找花色
func SuitFromName(name string) (Suit, error) {
	for s, n := range suitNames {
		if n == name {
			return s, nil
		}
	}
	return SuitNone, fmt.Errorf("无法识别的花色: %q", name)
}

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	RankA: "A",
	RankJ: "J",
	RankQ: "Q",
	RankK: "K",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Card 定义一张牌，按值比较；王牌为 {Joker, RankNone}
type Card struct {
	Suit Suit
	Rank Rank
}

// IsJoker 是否为王牌
func (c Card) IsJoker() bool {
	return c.Suit == Joker
}

// IsSpadeThree 是否为黑桃3（スペ3返し用）
func (c Card) IsSpadeThree() bool {
	return c.Suit == Spade && c.Rank == Rank3
}

func (c Card) String() string {
	if c.IsJoker() {
		return "Joker"
	}
	return c.Suit.String() + c.Rank.String()
}

// DeckSize 一副牌的总数：52 张 + 2 张王牌
const DeckSize = 54

// Deck 定义一副牌
type Deck []Card

// NewDeck 生成一副完整的 54 张牌
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for s := Spade; s <= Club; s++ {
		for r := RankA; r <= RankK; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	deck = append(deck,
		Card{Suit: Joker},
		Card{Suit: Joker},
	)
	return deck
}

func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Deal 将整副牌轮流发给 n 个玩家（人数不整除时前面的座位多一张）
func (d Deck) Deal(n int) [][]Card {
	hands := make([][]Card, n)
	for i, c := range d {
		hands[i%n] = append(hands[i%n], c)
	}
	return hands
}
