package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作
	MsgCreateRoom MessageType = "create_room" // 创建房间
	MsgJoinRoom   MessageType = "join_room"   // 加入房间
	MsgLeaveRoom  MessageType = "leave_room"  // 离开房间

	// 游戏操作
	MsgPlayCards       MessageType = "play_cards"       // 出牌
	MsgPass            MessageType = "pass"             // パス
	MsgResolveTransfer MessageType = "resolve_transfer" // 7渡し：选择交给下家的牌
	MsgResolveDiscard  MessageType = "resolve_discard"  // 10捨て：选择舍弃的牌
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected MessageType = "connected" // 连接成功
	MsgPong      MessageType = "pong"      // 心跳 pong

	// 房间相关
	MsgRoomCreated  MessageType = "room_created"  // 房间创建成功
	MsgRoomJoined   MessageType = "room_joined"   // 加入房间成功
	MsgPlayerJoined MessageType = "player_joined" // 其他玩家加入
	MsgPlayerLeft   MessageType = "player_left"   // 玩家离开

	// 游戏流程
	MsgGameStarted MessageType = "game_started" // 游戏开始（附各自手牌）
	MsgGameUpdated MessageType = "game_updated" // 局面更新（附触发的特殊效果）
	MsgGameEnded   MessageType = "game_ended"   // 游戏结束（附名次）

	// 错误
	MsgError MessageType = "error" // 错误消息
)

// Effect 出牌触发的特殊效果，随 game_updated 广播
type Effect string

const (
	EffectRevolution       Effect = "revolution"          // 革命（或革命返し）
	EffectElevenBack       Effect = "eleven_back"         // 11バック生效
	EffectEightClear       Effect = "eight_clear"         // 8切り
	EffectSpadeThreeCounter Effect = "spade_three_counter" // スペ3返し
	EffectSevenTransfer    Effect = "seven_transfer"      // 7渡し义务产生
	EffectTenDiscard       Effect = "ten_discard"         // 10捨て义务产生
	EffectSuitBind         Effect = "suit_bind"           // 記号缚り生效
	EffectRankBind         Effect = "rank_bind"           // 数字缚り生效
	EffectTrickCleared     Effect = "trick_cleared"       // 场被流掉
	EffectCapitalFall      Effect = "capital_fall"        // 都落ち
	EffectPlayerFinished   Effect = "player_finished"     // 有玩家上がり
)
