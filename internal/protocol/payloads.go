package protocol

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// CreateRoomPayload 创建房间请求
type CreateRoomPayload struct {
	MaxPlayers            int  `json:"max_players"`             // 3-5 人
	CounterRevolutionSize bool `json:"counter_revolution_size"` // 革命返し枚数限制
}

// JoinRoomPayload 加入房间请求
type JoinRoomPayload struct {
	RoomCode string `json:"room_code"`
}

// PlayCardsPayload 出牌请求
type PlayCardsPayload struct {
	Cards []CardInfo `json:"cards"`
}

// ResolveTransferPayload 7渡し応答：交给下家的牌
type ResolveTransferPayload struct {
	Cards []CardInfo `json:"cards"`
}

// ResolveDiscardPayload 10捨て応答：舍弃的牌
type ResolveDiscardPayload struct {
	Cards []CardInfo `json:"cards"`
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"`
	ServerTimestamp int64 `json:"server_timestamp"`
}

// RoomCreatedPayload 房间创建成功响应
type RoomCreatedPayload struct {
	RoomCode string     `json:"room_code"`
	Player   PlayerInfo `json:"player"`
}

// RoomJoinedPayload 加入房间成功响应
type RoomJoinedPayload struct {
	RoomCode string       `json:"room_code"`
	Player   PlayerInfo   `json:"player"`
	Players  []PlayerInfo `json:"players"` // 房间内所有玩家
}

// PlayerJoinedPayload 其他玩家加入通知
type PlayerJoinedPayload struct {
	Player PlayerInfo `json:"player"`
}

// PlayerLeftPayload 玩家离开通知
type PlayerLeftPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// GameStartedPayload 游戏开始通知（每个玩家收到私有手牌）
type GameStartedPayload struct {
	Players []PlayerInfo `json:"players"` // 按座位顺序
	Hand    []CardInfo   `json:"hand"`    // 自己的手牌
}

// GameUpdatedPayload 局面更新通知
type GameUpdatedPayload struct {
	State   GameStateDTO `json:"state"`
	Effects []Effect     `json:"effects,omitempty"` // 本次行动触发的特殊效果
}

// GameEndedPayload 游戏结束通知
type GameEndedPayload struct {
	Results []RankResult `json:"results"` // 按名次排序
}

// RankResult 单个玩家的最终名次
type RankResult struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Rank       string `json:"rank"`    // daifugo/fugo/heimin/hinmin/daihinmin
	Demoted    bool   `json:"demoted"` // 是否因都落ち落到末位
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// --- 通用数据结构 ---

// PlayerInfo 玩家信息
type PlayerInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Seat       int    `json:"seat"`
	CardsCount int    `json:"cards_count"`
	Passed     bool   `json:"passed"`
	FinishRank string `json:"finish_rank,omitempty"` // 上がり后的名次标签
	Online     bool   `json:"online"`
}

// CardInfo 牌信息；王牌为 {"suit":"joker"}，不携带点数
type CardInfo struct {
	Suit string `json:"suit"`           // spade/heart/diamond/club/joker
	Rank int    `json:"rank,omitempty"` // 1-13，1=A, 11=J, 12=Q, 13=K
}

// RuleStateDTO 当前生效的特殊规则
type RuleStateDTO struct {
	Revolution bool   `json:"revolution"`
	ElevenBack bool   `json:"eleven_back"`
	SuitBind   string `json:"suit_bind,omitempty"` // 記号缚り花色
	RankBind   int    `json:"rank_bind,omitempty"` // 数字缚り点数
}

// ObligationDTO 未解决的出牌义务（7渡し/10捨て）
type ObligationDTO struct {
	Kind       string `json:"kind"` // transfer/discard
	FromPlayer string `json:"from_player"`
	ToPlayer   string `json:"to_player,omitempty"` // transfer 的接收方
	Count      int    `json:"count"`
}

// GameStateDTO 对单个玩家可见的局面快照
type GameStateDTO struct {
	Phase         string         `json:"phase"` // playing/finished
	Players       []PlayerInfo   `json:"players"`
	Hand          []CardInfo     `json:"hand"` // 自己的手牌
	CurrentTurn   string         `json:"current_turn"`
	Trick         []CardInfo     `json:"trick"`                // 场上的当前出牌
	TrickOwner    string         `json:"trick_owner,omitempty"` // 场的所有者
	DiscardCount  int            `json:"discard_count"`
	Rules         RuleStateDTO   `json:"rules"`
	Obligation    *ObligationDTO `json:"obligation,omitempty"`
	FinishedOrder []string       `json:"finished_order"` // 已上がり玩家 ID，按名次
}
