package server

import (
	"errors"
	"log"
	"time"

	"github.com/palemoky/daifugo/internal/apperrors"
	"github.com/palemoky/daifugo/internal/game/card"
	"github.com/palemoky/daifugo/internal/game/rule"
	"github.com/palemoky/daifugo/internal/protocol"
	"github.com/palemoky/daifugo/internal/protocol/convert"
)

// Handler 消息处理器
type Handler struct {
	server *Server
}

// NewHandler 创建处理器
func NewHandler(s *Server) *Handler {
	return &Handler{server: s}
}

// Handle 处理消息
func (h *Handler) Handle(client *Client, msg *protocol.Message) {
	switch msg.Type {
	// 连接操作
	case protocol.MsgPing:
		h.handlePing(client, msg)

	// 房间操作
	case protocol.MsgCreateRoom:
		h.handleCreateRoom(client, msg)
	case protocol.MsgJoinRoom:
		h.handleJoinRoom(client, msg)
	case protocol.MsgLeaveRoom:
		h.handleLeaveRoom(client)

	// 游戏操作
	case protocol.MsgPlayCards:
		h.handlePlayCards(client, msg)
	case protocol.MsgPass:
		h.handlePass(client)
	case protocol.MsgResolveTransfer:
		h.handleResolveTransfer(client, msg)
	case protocol.MsgResolveDiscard:
		h.handleResolveDiscard(client, msg)

	default:
		log.Printf("未知消息类型: %s", msg.Type)
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
	}
}

// handlePing 处理心跳消息
func (h *Handler) handlePing(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PingPayload](msg)
	if err != nil {
		return
	}

	// 立即回复 pong
	client.SendMessage(protocol.MustNewMessage(protocol.MsgPong, protocol.PongPayload{
		ClientTimestamp: payload.Timestamp,
		ServerTimestamp: time.Now().UnixMilli(),
	}))
}

// handleCreateRoom 创建房间
func (h *Handler) handleCreateRoom(client *Client, msg *protocol.Message) {
	if h.server.IsMaintenanceMode() {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "服务器维护中，暂停创建房间"))
		return
	}
	if client.GetRoom() != "" {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeGameStarted))
		return
	}

	// 创建请求可省略 payload，使用服务器默认规则
	rules := h.server.config.Game.Rules
	if len(msg.Payload) > 0 {
		payload, err := protocol.ParsePayload[protocol.CreateRoomPayload](msg)
		if err != nil {
			client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			return
		}
		rules = rule.Config{
			MaxPlayers:            payload.MaxPlayers,
			CounterRevolutionSize: payload.CounterRevolutionSize,
		}
	}

	room, err := h.server.rooms.CreateRoom(client, rules)
	if err != nil {
		h.sendError(client, err)
		return
	}

	room.mu.RLock()
	resp := protocol.RoomCreatedPayload{
		RoomCode: room.Code,
		Player:   room.getPlayerInfo(client.ID),
	}
	room.mu.RUnlock()

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomCreated, resp))
}

// handleJoinRoom 加入房间
func (h *Handler) handleJoinRoom(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}
	if client.GetRoom() != "" {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeGameStarted))
		return
	}

	room, err := h.server.rooms.JoinRoom(client, payload.RoomCode)
	if err != nil {
		h.sendError(client, err)
		return
	}

	room.mu.RLock()
	resp := protocol.RoomJoinedPayload{
		RoomCode: room.Code,
		Player:   room.getPlayerInfo(client.ID),
		Players:  room.getAllPlayersInfo(),
	}
	room.mu.RUnlock()

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, resp))
}

// handleLeaveRoom 离开房间
func (h *Handler) handleLeaveRoom(client *Client) {
	h.server.rooms.LeaveRoom(client)
}

// handlePlayCards 出牌
func (h *Handler) handlePlayCards(client *Client, msg *protocol.Message) {
	cards, ok := h.parseCards(client, msg)
	if !ok {
		return
	}
	h.inRoom(client, func(room *Room) error {
		return room.Play(client.ID, cards)
	})
}

// handlePass パス
func (h *Handler) handlePass(client *Client) {
	h.inRoom(client, func(room *Room) error {
		return room.Pass(client.ID)
	})
}

// handleResolveTransfer 7渡し応答
func (h *Handler) handleResolveTransfer(client *Client, msg *protocol.Message) {
	cards, ok := h.parseCards(client, msg)
	if !ok {
		return
	}
	h.inRoom(client, func(room *Room) error {
		return room.ResolveTransfer(client.ID, cards)
	})
}

// handleResolveDiscard 10捨て応答
func (h *Handler) handleResolveDiscard(client *Client, msg *protocol.Message) {
	cards, ok := h.parseCards(client, msg)
	if !ok {
		return
	}
	h.inRoom(client, func(room *Room) error {
		return room.ResolveDiscard(client.ID, cards)
	})
}

// parseCards 解析并校验出牌类 payload 中的牌
func (h *Handler) parseCards(client *Client, msg *protocol.Message) ([]card.Card, bool) {
	payload, err := protocol.ParsePayload[protocol.PlayCardsPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return nil, false
	}

	cards, err := convert.InfosToCards(payload.Cards)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return nil, false
	}
	return cards, true
}

// inRoom 在玩家所在房间上执行动作，失败时只回报给请求者
func (h *Handler) inRoom(client *Client, action func(*Room) error) {
	room := h.server.rooms.GetRoom(client.GetRoom())
	if room == nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return
	}
	if err := action(room); err != nil {
		h.sendError(client, err)
	}
}

// sendError 将错误转换为错误消息发送给客户端
func (h *Handler) sendError(client *Client, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(protocol.NewErrorMessageWithText(gameErr.Code, gameErr.Message))
		return
	}
	client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInternal))
}
