package engine

import (
	"slices"

	"github.com/palemoky/daifugo/internal/game/card"
	"github.com/palemoky/daifugo/internal/game/rule"
)

// Phase 游戏阶段
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseFinished
)

func (p Phase) String() string {
	if p == PhaseFinished {
		return "finished"
	}
	return "playing"
}

// Player 一局中的玩家。座位在发牌时固定，按环形顺序行动。
type Player struct {
	ID   string
	Name string
	Seat int
	Hand []card.Card

	Passed  bool // 本场是否已パス，场流时重置
	Demoted bool // 本局因都落ち被强制落到末位

	// 上一局带入的席次标记，仅用于下一局的开局处理
	WasTopRank    bool
	WasBottomRank bool
	WasDemoted    bool
}

// TrickPlay 当前场内的一次出牌记录（缚り判定需要相邻两手）
type TrickPlay struct {
	Seat  int
	Cards []card.Card
}

// Trick 场上的当前出牌及本场的出牌履历
type Trick struct {
	Play    rule.Play   // 需要被压过的牌，空表示任意形状可出
	Owner   int         // 场的所有者座位：最后出牌者，场流后为下一任领出者
	History []TrickPlay // 本场内按顺序的全部出牌
}

// IsEmpty 场上是否无牌
func (t *Trick) IsEmpty() bool {
	return t.Play.IsEmpty()
}

// ObligationKind 待解决义务的种类
type ObligationKind int

const (
	ObligationNone ObligationKind = iota
	ObligationTransfer
	ObligationDiscard
)

func (k ObligationKind) String() string {
	switch k {
	case ObligationTransfer:
		return "transfer"
	case ObligationDiscard:
		return "discard"
	default:
		return "none"
	}
}

// Obligation 出牌义务（7渡し/10捨て）。生效期间回合冻结在 From 座位上。
type Obligation struct {
	Kind  ObligationKind
	From  int // 欠下义务的座位
	To    int // transfer 的接收座位
	Count int
}

// IsPending 是否有未解决的义务
func (o Obligation) IsPending() bool {
	return o.Kind != ObligationNone
}

// Game 一局游戏的全部状态。所有修改都经过动作 API，
// 外部只读；并发控制由持有者（房间）负责。
type Game struct {
	Config rule.Config

	Players    []*Player // 按座位顺序
	Current    int       // 当前行动座位
	Table      Trick
	Discard    []card.Card // 流掉的牌
	Rules      rule.State
	Pending    Obligation
	FinishedBy []int // 上がり座位，按名次顺序
	Phase      Phase
}

// player 按 ID 查找玩家
func (g *Game) player(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// isActive 该座位是否还持有手牌
func (g *Game) isActive(seat int) bool {
	return len(g.Players[seat].Hand) > 0
}

// activeCount 仍持有手牌的玩家数
func (g *Game) activeCount() int {
	n := 0
	for _, p := range g.Players {
		if len(p.Hand) > 0 {
			n++
		}
	}
	return n
}

// hasFinished 该座位是否已在名次列表中
func (g *Game) hasFinished(seat int) bool {
	return slices.Contains(g.FinishedBy, seat)
}

// clone 深拷贝整个状态，用于应用失败时回滚
func (g *Game) clone() *Game {
	players := make([]*Player, len(g.Players))
	for i, p := range g.Players {
		cp := *p
		cp.Hand = slices.Clone(p.Hand)
		players[i] = &cp
	}
	history := make([]TrickPlay, len(g.Table.History))
	for i, tp := range g.Table.History {
		history[i] = TrickPlay{Seat: tp.Seat, Cards: slices.Clone(tp.Cards)}
	}
	table := g.Table
	table.History = history
	table.Play.Cards = slices.Clone(g.Table.Play.Cards)

	return &Game{
		Config:     g.Config,
		Players:    players,
		Current:    g.Current,
		Table:      table,
		Discard:    slices.Clone(g.Discard),
		Rules:      g.Rules,
		Pending:    g.Pending,
		FinishedBy: slices.Clone(g.FinishedBy),
		Phase:      g.Phase,
	}
}

// restore 用快照覆盖当前状态
func (g *Game) restore(snapshot *Game) {
	*g = *snapshot
}
