package apperrors

import (
	"github.com/palemoky/daifugo/internal/protocol"
)

// GameError 游戏错误（房间和引擎共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

func newGameError(code int) *GameError {
	return &GameError{Code: code, Message: protocol.ErrorMessages[code]}
}

// 结构性错误：请求引用的对象不存在或阶段不符
var (
	ErrRoomNotFound   = newGameError(protocol.ErrCodeRoomNotFound)
	ErrRoomFull       = newGameError(protocol.ErrCodeRoomFull)
	ErrNotInRoom      = newGameError(protocol.ErrCodeNotInRoom)
	ErrGameStarted    = newGameError(protocol.ErrCodeGameStarted)
	ErrGameNotStart   = newGameError(protocol.ErrCodeGameNotStart)
	ErrPlayerNotFound = newGameError(protocol.ErrCodePlayerNotFound)
)

// 规则违反：按照校验顺序逐项对应的具体原因
var (
	ErrNotYourTurn      = newGameError(protocol.ErrCodeNotYourTurn)
	ErrCardNotInHand    = newGameError(protocol.ErrCodeCardNotInHand)
	ErrEmptyPlay        = newGameError(protocol.ErrCodeEmptyPlay)
	ErrInvalidShape     = newGameError(protocol.ErrCodeInvalidShape)
	ErrShapeMismatch    = newGameError(protocol.ErrCodeShapeMismatch)
	ErrCannotBeat       = newGameError(protocol.ErrCodeCannotBeat)
	ErrJokerCountered   = newGameError(protocol.ErrCodeJokerCountered)
	ErrSpadeThreeMisuse = newGameError(protocol.ErrCodeSpadeThreeMisuse)
	ErrSuitBound        = newGameError(protocol.ErrCodeSuitBound)
	ErrRankBound        = newGameError(protocol.ErrCodeRankBound)
	ErrCounterSize      = newGameError(protocol.ErrCodeCounterSize)
	ErrTurnFrozen       = newGameError(protocol.ErrCodeTurnFrozen)
	ErrNoObligation     = newGameError(protocol.ErrCodeNoObligation)
	ErrNotObligated     = newGameError(protocol.ErrCodeNotObligated)
	ErrObligationCount  = newGameError(protocol.ErrCodeObligationCount)
)

// ErrInternal 不变量被破坏时的内部错误，正常流程不应出现
var ErrInternal = newGameError(protocol.ErrCodeInternal)
