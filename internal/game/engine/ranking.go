package engine

// RankLabel 名次标签
type RankLabel string

const (
	RankDaifugo   RankLabel = "daifugo"   // 大富豪
	RankFugo      RankLabel = "fugo"      // 富豪
	RankHeimin    RankLabel = "heimin"    // 平民
	RankHinmin    RankLabel = "hinmin"    // 贫民
	RankDaihinmin RankLabel = "daihinmin" // 大贫民
)

// rankLabels 返回 n 人局的名次标签列表。
// 5 人为完整的五档；人数不足时从中间档开始压缩：
// 4 人去掉平民，3 人只留大富豪/平民/大贫民。
func rankLabels(n int) []RankLabel {
	switch n {
	case 3:
		return []RankLabel{RankDaifugo, RankHeimin, RankDaihinmin}
	case 4:
		return []RankLabel{RankDaifugo, RankFugo, RankHinmin, RankDaihinmin}
	default:
		return []RankLabel{RankDaifugo, RankFugo, RankHeimin, RankHinmin, RankDaihinmin}
	}
}

// finishPos 该座位在名次列表中的位置，未上がり时返回 -1
func (g *Game) finishPos(seat int) int {
	for i, s := range g.FinishedBy {
		if s == seat {
			return i
		}
	}
	return -1
}

// Result 单个玩家的最终名次
type Result struct {
	PlayerID string
	Name     string
	Label    RankLabel
	Demoted  bool
}

// Results 按名次返回最终结果，只在本局结束后有意义
func (g *Game) Results() []Result {
	labels := rankLabels(len(g.Players))
	results := make([]Result, 0, len(g.FinishedBy))
	for i, seat := range g.FinishedBy {
		p := g.Players[seat]
		results = append(results, Result{
			PlayerID: p.ID,
			Name:     p.Name,
			Label:    labels[i],
			Demoted:  p.Demoted,
		})
	}
	return results
}
