package server

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/palemoky/daifugo/internal/apperrors"
	"github.com/palemoky/daifugo/internal/config"
	"github.com/palemoky/daifugo/internal/game/card"
	"github.com/palemoky/daifugo/internal/game/engine"
	"github.com/palemoky/daifugo/internal/game/rule"
	"github.com/palemoky/daifugo/internal/protocol"
	"github.com/palemoky/daifugo/internal/protocol/convert"
	"github.com/palemoky/daifugo/internal/server/storage"
	"github.com/palemoky/daifugo/internal/types"
)

const (
	// 房间号长度
	roomCodeLength = 6
	// 房间号字符集
	roomCodeChars = "0123456789"
)

// RoomState 房间状态
type RoomState int

const (
	RoomStateWaiting RoomState = iota // 等待玩家
	RoomStatePlaying                  // 游戏中
	RoomStateEnded                    // 游戏结束
)

// RoomPlayer 房间中的玩家
type RoomPlayer struct {
	Client types.ClientConn
	Seat   int // 座位号，发牌时固定
}

// Room 游戏房间。对局状态的所有修改都在房间锁内进行，
// 引擎自身不加锁。
type Room struct {
	Code        string                 // 房间号
	State       RoomState              // 房间状态
	Rules       rule.Config            // 本房间的规则
	Players     map[string]*RoomPlayer // 玩家列表
	PlayerOrder []string               // 玩家顺序（按座位）
	CreatedAt   time.Time              // 创建时间

	game    *engine.Game
	manager *RoomManager
	mu      sync.RWMutex
}

// RoomManager 房间管理器。房间状态通过注入的存储落盘，
// 进程内不依赖全局变量。
type RoomManager struct {
	store types.RoomStore
	cfg   *config.Config
	rooms map[string]*Room
	mu    sync.RWMutex
}

// NewRoomManager 创建房间管理器
func NewRoomManager(store types.RoomStore, cfg *config.Config) *RoomManager {
	rm := &RoomManager{
		store: store,
		cfg:   cfg,
		rooms: make(map[string]*Room),
	}

	// 启动房间清理协程
	go rm.cleanupLoop()

	return rm
}

// CreateRoom 创建房间
func (rm *RoomManager) CreateRoom(client types.ClientConn, rules rule.Config) (*Room, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	code := rm.generateRoomCode()

	room := &Room{
		Code:        code,
		State:       RoomStateWaiting,
		Rules:       rules.Normalize(),
		Players:     make(map[string]*RoomPlayer),
		PlayerOrder: make([]string, 0, rule.MaxPlayersLimit),
		CreatedAt:   time.Now(),
		manager:     rm,
	}

	// 添加创建者
	room.Players[client.GetID()] = &RoomPlayer{Client: client, Seat: 0}
	room.PlayerOrder = append(room.PlayerOrder, client.GetID())
	client.SetRoom(code)

	rm.rooms[code] = room

	go room.save()

	log.Printf("🏠 房间 %s 已创建，玩家 %s（%d 人局）", code, client.GetName(), room.Rules.MaxPlayers)

	return room, nil
}

// JoinRoom 加入房间，人满后自动开局
func (rm *RoomManager) JoinRoom(client types.ClientConn, code string) (*Room, error) {
	rm.mu.Lock()
	room, exists := rm.rooms[code]
	rm.mu.Unlock()
	if !exists {
		return nil, apperrors.ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if len(room.Players) >= room.Rules.MaxPlayers {
		return nil, apperrors.ErrRoomFull
	}

	if room.State != RoomStateWaiting {
		return nil, apperrors.ErrGameStarted
	}

	seat := len(room.Players)
	room.Players[client.GetID()] = &RoomPlayer{Client: client, Seat: seat}
	room.PlayerOrder = append(room.PlayerOrder, client.GetID())
	client.SetRoom(code)

	log.Printf("👤 玩家 %s 加入房间 %s (座位 %d)", client.GetName(), code, seat)

	// 通知房间内其他玩家
	room.broadcastExcept(client.GetID(), protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{
		Player: room.getPlayerInfo(client.GetID()),
	}))

	// 人满自动开局
	if len(room.Players) == room.Rules.MaxPlayers {
		go room.startGame()
	}

	go room.save()

	return room, nil
}

// LeaveRoom 离开房间。对局中有人离开时解散房间。
func (rm *RoomManager) LeaveRoom(client types.ClientConn) {
	roomCode := client.GetRoom()
	if roomCode == "" {
		return
	}

	rm.mu.Lock()
	room, exists := rm.rooms[roomCode]
	rm.mu.Unlock()
	if !exists {
		client.SetRoom("")
		return
	}

	room.mu.Lock()

	player, exists := room.Players[client.GetID()]
	if !exists {
		room.mu.Unlock()
		client.SetRoom("")
		return
	}

	room.broadcastExcept(client.GetID(), protocol.MustNewMessage(protocol.MsgPlayerLeft, protocol.PlayerLeftPayload{
		PlayerID:   client.GetID(),
		PlayerName: client.GetName(),
	}))

	delete(room.Players, client.GetID())
	for i, id := range room.PlayerOrder {
		if id == client.GetID() {
			room.PlayerOrder = append(room.PlayerOrder[:i], room.PlayerOrder[i+1:]...)
			break
		}
	}
	client.SetRoom("")

	log.Printf("👋 玩家 %s 离开房间 %s (座位 %d)", client.GetName(), roomCode, player.Seat)

	// 对局进行中缺人无法继续，解散房间
	disband := room.State == RoomStatePlaying || len(room.Players) == 0
	if disband && len(room.Players) > 0 {
		room.broadcast(protocol.NewErrorMessageWithText(protocol.ErrCodeGameNotStart, "有玩家离开，对局已解散"))
		for _, p := range room.Players {
			p.Client.SetRoom("")
		}
		room.Players = make(map[string]*RoomPlayer)
		room.PlayerOrder = nil
	}
	room.mu.Unlock()

	if disband {
		rm.removeRoom(roomCode)
	} else {
		go room.save()
	}
}

// GetRoom 获取房间
func (rm *RoomManager) GetRoom(code string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[code]
}

// GetActiveGamesCount 获取进行中的对局数量
func (rm *RoomManager) GetActiveGamesCount() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	count := 0
	for _, room := range rm.rooms {
		room.mu.RLock()
		if room.State == RoomStatePlaying {
			count++
		}
		room.mu.RUnlock()
	}
	return count
}

// removeRoom 解散房间并清理存储
func (rm *RoomManager) removeRoom(code string) {
	rm.mu.Lock()
	delete(rm.rooms, code)
	rm.mu.Unlock()

	go func() { _ = rm.store.DeleteRoom(context.Background(), code) }()
	log.Printf("🏠 房间 %s 已解散", code)
}

// generateRoomCode 生成唯一房间号
func (rm *RoomManager) generateRoomCode() string {
	for {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeChars[rand.Intn(len(roomCodeChars))]
		}
		codeStr := string(code)
		if _, exists := rm.rooms[codeStr]; !exists {
			return codeStr
		}
	}
}

// cleanupLoop 定期清理超时房间
func (rm *RoomManager) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rm.cleanup()
	}
}

// cleanup 清理等待超时的房间
func (rm *RoomManager) cleanup() {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	timeout := rm.cfg.Game.RoomTimeoutDuration()
	now := time.Now()

	for code, room := range rm.rooms {
		room.mu.RLock()
		expired := room.State == RoomStateWaiting && now.Sub(room.CreatedAt) > timeout
		room.mu.RUnlock()
		if !expired {
			continue
		}

		room.mu.Lock()
		room.broadcast(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "房间超时已关闭"))
		for _, p := range room.Players {
			p.Client.SetRoom("")
		}
		room.mu.Unlock()

		delete(rm.rooms, code)
		go func() { _ = rm.store.DeleteRoom(context.Background(), code) }()
		log.Printf("🏠 房间 %s 超时已清理", code)
	}
}

// --- Room 方法 ---

// startGame 发牌开局，向每个玩家发送各自的私有手牌
func (r *Room) startGame() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.State != RoomStateWaiting || len(r.Players) != r.Rules.MaxPlayers {
		return
	}

	seeds := make([]engine.Seed, 0, len(r.PlayerOrder))
	for _, id := range r.PlayerOrder {
		seeds = append(seeds, engine.Seed{
			ID:   id,
			Name: r.Players[id].Client.GetName(),
		})
	}

	game, err := engine.NewGame(r.Rules, seeds)
	if err != nil {
		log.Printf("[ERROR] 房间 %s 开局失败: %v", r.Code, err)
		return
	}
	r.game = game
	r.State = RoomStatePlaying

	infos := r.getAllPlayersInfo()
	for _, id := range r.PlayerOrder {
		snapshot := game.Snapshot(id)
		r.Players[id].Client.SendMessage(protocol.MustNewMessage(protocol.MsgGameStarted, protocol.GameStartedPayload{
			Players: infos,
			Hand:    snapshot.Hand,
		}))
	}

	log.Printf("🎴 房间 %s 开局，%d 人", r.Code, len(r.Players))

	go r.save()
}

// Play 出牌
func (r *Room) Play(playerID string, cards []card.Card) error {
	return r.withGame(playerID, func(g *engine.Game) (*engine.Outcome, error) {
		return g.Play(playerID, cards)
	})
}

// Pass パス
func (r *Room) Pass(playerID string) error {
	return r.withGame(playerID, func(g *engine.Game) (*engine.Outcome, error) {
		return g.Pass(playerID)
	})
}

// ResolveTransfer 解决 7渡し 义务
func (r *Room) ResolveTransfer(playerID string, cards []card.Card) error {
	return r.withGame(playerID, func(g *engine.Game) (*engine.Outcome, error) {
		return g.ResolveTransfer(playerID, cards)
	})
}

// ResolveDiscard 解决 10捨て 义务
func (r *Room) ResolveDiscard(playerID string, cards []card.Card) error {
	return r.withGame(playerID, func(g *engine.Game) (*engine.Outcome, error) {
		return g.ResolveDiscard(playerID, cards)
	})
}

// withGame 动作的公共路径：房间锁内调用引擎，成功后广播局面。
// 规则违反只返回给请求者，不产生广播。
func (r *Room) withGame(playerID string, action func(*engine.Game) (*engine.Outcome, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil || r.State != RoomStatePlaying {
		return apperrors.ErrGameNotStart
	}
	if _, ok := r.Players[playerID]; !ok {
		return apperrors.ErrNotInRoom
	}

	out, err := action(r.game)
	if err != nil {
		return err
	}

	r.broadcastUpdate(out)

	if out.GameEnded {
		r.State = RoomStateEnded
		r.broadcastResults()
	}

	go r.save()
	return nil
}

// broadcastUpdate 向每个玩家发送个性化的局面快照
func (r *Room) broadcastUpdate(out *engine.Outcome) {
	for _, id := range r.PlayerOrder {
		r.Players[id].Client.SendMessage(protocol.MustNewMessage(protocol.MsgGameUpdated, protocol.GameUpdatedPayload{
			State:   r.game.Snapshot(id),
			Effects: out.Effects,
		}))
	}
}

// broadcastResults 广播最终名次
func (r *Room) broadcastResults() {
	results := r.game.Results()
	payload := protocol.GameEndedPayload{Results: make([]protocol.RankResult, 0, len(results))}
	for _, res := range results {
		payload.Results = append(payload.Results, protocol.RankResult{
			PlayerID:   res.PlayerID,
			PlayerName: res.Name,
			Rank:       string(res.Label),
			Demoted:    res.Demoted,
		})
	}
	r.broadcast(protocol.MustNewMessage(protocol.MsgGameEnded, payload))
}

// broadcast 广播消息给房间内所有玩家
func (r *Room) broadcast(msg *protocol.Message) {
	for _, player := range r.Players {
		player.Client.SendMessage(msg)
	}
}

// broadcastExcept 广播消息给除指定玩家外的所有玩家
func (r *Room) broadcastExcept(excludeID string, msg *protocol.Message) {
	for id, player := range r.Players {
		if id != excludeID {
			player.Client.SendMessage(msg)
		}
	}
}

// getPlayerInfo 获取玩家信息
func (r *Room) getPlayerInfo(playerID string) protocol.PlayerInfo {
	player := r.Players[playerID]
	return protocol.PlayerInfo{
		ID:     player.Client.GetID(),
		Name:   player.Client.GetName(),
		Seat:   player.Seat,
		Online: true,
	}
}

// getAllPlayersInfo 获取所有玩家信息（按座位顺序）
func (r *Room) getAllPlayersInfo() []protocol.PlayerInfo {
	infos := make([]protocol.PlayerInfo, 0, len(r.Players))
	for _, id := range r.PlayerOrder {
		infos = append(infos, r.getPlayerInfo(id))
	}
	return infos
}

// save 将房间状态写入存储
func (r *Room) save() {
	r.mu.RLock()
	data := &storage.RoomData{
		Code:        r.Code,
		State:       int(r.State),
		Rules:       r.Rules,
		Players:     make([]storage.PlayerData, 0, len(r.Players)),
		PlayerOrder: append([]string(nil), r.PlayerOrder...),
		CreatedAt:   r.CreatedAt.Unix(),
	}
	for _, id := range r.PlayerOrder {
		p := r.Players[id]
		data.Players = append(data.Players, storage.PlayerData{
			ID:   p.Client.GetID(),
			Name: p.Client.GetName(),
			Seat: p.Seat,
		})
	}
	if r.game != nil {
		data.Game = serializeGame(r.game)
	}
	r.mu.RUnlock()

	if err := r.manager.store.SaveRoom(context.Background(), data.Code, data); err != nil {
		log.Printf("保存房间 %s 失败: %v", data.Code, err)
	}
}

// serializeGame 提取对局的可序列化快照
func serializeGame(g *engine.Game) *storage.GameData {
	data := &storage.GameData{
		Phase:        int(g.Phase),
		Current:      g.Current,
		Hands:        make([][]protocol.CardInfo, len(g.Players)),
		Trick:        convert.CardsToInfos(g.Table.Play.Cards),
		TrickOwner:   g.Table.Owner,
		DiscardCount: len(g.Discard),
		FinishedBy:   append([]int(nil), g.FinishedBy...),
		Rules:        g.Rules,
	}
	for i, p := range g.Players {
		data.Hands[i] = convert.CardsToInfos(p.Hand)
	}
	return data
}
