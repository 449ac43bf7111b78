package types

import (
	"context"

	"github.com/palemoky/daifugo/internal/protocol"
)

// ClientConn 连接层对房间暴露的客户端接口 - 避免循环依赖
type ClientConn interface {
	GetID() string
	GetName() string
	GetRoom() string
	SetRoom(roomCode string)
	SendMessage(msg *protocol.Message)
	Close()
}

// RoomStore 房间状态的外部存储。核心不持有进程级全局状态，
// 存储实现由传输层注入。
type RoomStore interface {
	SaveRoom(ctx context.Context, code string, data any) error
	DeleteRoom(ctx context.Context, code string) error
}
