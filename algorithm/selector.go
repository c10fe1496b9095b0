package algorithm

import "sort"

// CourierPool 一次调度内的骑手候选池
// 骑手被选中后立即出池，保证同一次调度不会把两个任务分给同一个骑手
type CourierPool struct {
	couriers []CourierCandidate
	config   DispatchConfig
}

// RankCouriers 按到参考点的距离升序排列候选骑手并截断候选池
// 位置未知的骑手排在最后（不淘汰：运力紧张时仍可兜底）
func RankCouriers(couriers []CourierCandidate, reference Location, required int, config DispatchConfig) []CourierCandidate {
	config = config.normalize()

	type rankedCourier struct {
		courier  CourierCandidate
		distance float64
		known    bool
	}

	ranked := make([]rankedCourier, 0, len(couriers))
	for _, c := range couriers {
		r := rankedCourier{courier: c}
		if c.Location != nil && ValidLocation(*c.Location) {
			r.distance = HaversineKm(*c.Location, reference)
			r.known = true
		}
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].known != ranked[j].known {
			return ranked[i].known
		}
		return ranked[i].distance < ranked[j].distance
	})

	limit := required
	if config.MaxOrdersPerCourier > limit {
		limit = config.MaxOrdersPerCourier
	}
	if limit > len(ranked) {
		limit = len(ranked)
	}

	result := make([]CourierCandidate, 0, limit)
	for _, r := range ranked[:limit] {
		result = append(result, r.courier)
	}
	return result
}

// NewCourierPool 创建候选池
func NewCourierPool(couriers []CourierCandidate, config DispatchConfig) *CourierPool {
	pool := &CourierPool{
		couriers: append([]CourierCandidate(nil), couriers...),
		config:   config.normalize(),
	}
	return pool
}

// Size 剩余候选数
func (pool *CourierPool) Size() int {
	return len(pool.couriers)
}

// PickBest 为一个聚类选出评分最高的骑手并将其移出候选池
// score = 100 - 距离项 - 负载项；距离未知时不扣距离分
// 出餐时间差与订单数的权重在配置中声明但公式暂未使用，与线上行为保持一致
func (pool *CourierPool) PickBest(centroid Location) (CourierCandidate, bool) {
	if len(pool.couriers) == 0 {
		return CourierCandidate{}, false
	}

	if len(pool.couriers) == 1 {
		return pool.remove(0), true
	}

	bestIndex := 0
	bestScore := pool.score(pool.couriers[0], centroid)
	for i := 1; i < len(pool.couriers); i++ {
		if s := pool.score(pool.couriers[i], centroid); s > bestScore {
			bestScore = s
			bestIndex = i
		}
	}

	return pool.remove(bestIndex), true
}

// PickNext 按当前顺序取出下一个骑手（INDIVIDUAL 策略使用，已按就近排序）
func (pool *CourierPool) PickNext() (CourierCandidate, bool) {
	if len(pool.couriers) == 0 {
		return CourierCandidate{}, false
	}
	return pool.remove(0), true
}

func (pool *CourierPool) score(c CourierCandidate, centroid Location) float64 {
	score := 100.0

	if c.Location != nil && ValidLocation(*c.Location) {
		distance := HaversineKm(*c.Location, centroid)
		score -= distance / pool.config.SearchRadiusKm * 100 * pool.config.DistanceWeight
	}

	score -= float64(c.ActiveOrders) / float64(pool.config.MaxOrdersPerCourier) * 100 * pool.config.WorkloadWeight

	return score
}

func (pool *CourierPool) remove(index int) CourierCandidate {
	picked := pool.couriers[index]
	pool.couriers = append(pool.couriers[:index], pool.couriers[index+1:]...)
	return picked
}
