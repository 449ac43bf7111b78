package rule

import (
	"github.com/palemoky/daifugo/internal/game/card"
)

// State 当前局面生效的特殊规则状态
type State struct {
	Revolution            bool      // 革命中（4枚以上同点数出牌时切换）
	RevolutionTriggerSize int       // 触发革命的出牌枚数（革命返し枚数限制用）
	ElevenBack            bool      // 11バック中（J 出牌时生效，场流时解除）
	SuitBind              card.Suit // 記号缚り，SuitNone 表示未生效
	RankBind              card.Rank // 数字缚り，RankNone 表示未生效
}

// ClearTrickLocal 清除随场流解除的状态（缚り与 11バック），革命跨场保持
func (s *State) ClearTrickLocal() {
	s.ElevenBack = false
	s.SuitBind = card.SuitNone
	s.RankBind = card.RankNone
}

// ToggleRevolution 切换革命状态并记录触发枚数
func (s *State) ToggleRevolution(size int) {
	s.Revolution = !s.Revolution
	s.RevolutionTriggerSize = size
}

// Config 房间创建时指定的规则配置
type Config struct {
	MaxPlayers            int  `yaml:"max_players"`             // 玩家人数 3-5
	CounterRevolutionSize bool `yaml:"counter_revolution_size"` // 革命返し必须与触发枚数相同
}

const (
	MinPlayers        = 3
	DefaultMaxPlayers = 4
	MaxPlayersLimit   = 5
)

// Normalize 将配置收敛到合法范围
func (c Config) Normalize() Config {
	if c.MaxPlayers < MinPlayers || c.MaxPlayers > MaxPlayersLimit {
		c.MaxPlayers = DefaultMaxPlayers
	}
	return c
}
