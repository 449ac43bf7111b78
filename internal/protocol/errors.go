package protocol

// 错误码。1xxx 消息层，2xxx 房间层，3xxx 规则违反，5xxx 内部错误
const (
	ErrCodeUnknown    = 1000
	ErrCodeInvalidMsg = 1001

	ErrCodeRoomNotFound   = 2001
	ErrCodeRoomFull       = 2002
	ErrCodeNotInRoom      = 2003
	ErrCodeGameStarted    = 2004
	ErrCodeGameNotStart   = 2005
	ErrCodePlayerNotFound = 2006

	ErrCodeNotYourTurn     = 3001
	ErrCodeCardNotInHand   = 3002
	ErrCodeEmptyPlay       = 3003
	ErrCodeInvalidShape    = 3004
	ErrCodeShapeMismatch   = 3005
	ErrCodeCannotBeat      = 3006
	ErrCodeJokerCountered  = 3007
	ErrCodeSpadeThreeMisuse = 3008
	ErrCodeSuitBound       = 3009
	ErrCodeRankBound       = 3010
	ErrCodeCounterSize     = 3011
	ErrCodeTurnFrozen      = 3012
	ErrCodeNoObligation    = 3013
	ErrCodeNotObligated    = 3014
	ErrCodeObligationCount = 3015

	ErrCodeInternal = 5001
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:    "未知错误",
	ErrCodeInvalidMsg: "无效的消息格式",

	ErrCodeRoomNotFound:   "房间不存在",
	ErrCodeRoomFull:       "房间已满",
	ErrCodeNotInRoom:      "您不在房间中",
	ErrCodeGameStarted:    "游戏已开始",
	ErrCodeGameNotStart:   "游戏尚未开始",
	ErrCodePlayerNotFound: "玩家不存在",

	ErrCodeNotYourTurn:     "还没轮到您",
	ErrCodeCardNotInHand:   "出的牌不在手牌中",
	ErrCodeEmptyPlay:       "请至少出一张牌",
	ErrCodeInvalidShape:    "无效的牌型",
	ErrCodeShapeMismatch:   "牌型或枚数与场上不符",
	ErrCodeCannotBeat:      "您的牌压不过场上的牌",
	ErrCodeJokerCountered:  "王牌压不过黑桃3",
	ErrCodeSpadeThreeMisuse: "黑桃3只能对单张王牌使用",
	ErrCodeSuitBound:       "記号缚り中，必须跟同花色",
	ErrCodeRankBound:       "数字缚り中，必须跟同点数",
	ErrCodeCounterSize:     "革命返し必须与触发枚数相同",
	ErrCodeTurnFrozen:      "有未解决的出牌义务",
	ErrCodeNoObligation:    "当前没有待解决的义务",
	ErrCodeNotObligated:    "该义务不由您解决",
	ErrCodeObligationCount: "牌的枚数与义务要求不符",

	ErrCodeInternal: "内部错误",
}
