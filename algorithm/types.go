// Package algorithm 提供订单组配送调度算法：场景分析、空间聚类、取餐路径优化、骑手匹配
// 该包为纯计算逻辑，不依赖数据库和网络，便于测试和升级
package algorithm

import (
	"errors"
	"time"
)

// Location 地理位置
type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Strategy 订单组的分派策略
type Strategy string

const (
	StrategyIndividual Strategy = "INDIVIDUAL" // 一单一骑手
	StrategyGrouped    Strategy = "GROUPED"    // 全部订单一个骑手
	StrategyHybrid     Strategy = "HYBRID"     // 聚类拆分成多个骑手
	StrategySequential Strategy = "SEQUENTIAL" // 运力不足时的兜底合并
)

// 调度错误类型
var (
	ErrEmptyGroup          = errors.New("订单组为空")
	ErrInvalidGeometry     = errors.New("取餐或送达坐标缺失或非法")
	ErrNoAvailableCouriers = errors.New("当前没有可用骑手")
)

// PickupPoint 取餐点，订单组里每个订单对应一个
type PickupPoint struct {
	BusinessID        int64    `json:"business_id"`
	OrderID           int64    `json:"order_id"`
	OrderNumber       string   `json:"order_number"`
	Location          Location `json:"location"`
	EstimatedPrepTime int      `json:"estimated_prep_time"` // 出餐时间（分钟）
	ItemCount         int      `json:"item_count"`
}

// CourierCandidate 候选骑手快照（外部只读数据）
type CourierCandidate struct {
	ID           int64     `json:"id"`
	Location     *Location `json:"location,omitempty"` // 最后上报位置，可能未知
	ActiveOrders int       `json:"active_orders"`
	MaxCapacity  int       `json:"max_capacity"`
}

// Cluster 为单个骑手服务的取餐点集合
type Cluster struct {
	OrderIDs      []int64       `json:"order_ids"`
	Points        []PickupPoint `json:"points"`
	Centroid      Location      `json:"centroid"`
	MaxDistanceKm float64       `json:"max_distance_km"` // 成员到质心的最大距离
	TotalPrepTime int           `json:"total_prep_time"` // 出餐时间合计（分钟）
}

// Route 一个骑手的取餐路径
type Route struct {
	PickupPoints     []PickupPoint `json:"pickup_points"` // 按访问顺序排列
	DeliveryPoint    Location      `json:"delivery_point"`
	Sequence         []int         `json:"sequence"` // 输入数组的下标排列
	TotalDistanceKm  float64       `json:"total_distance_km"`
	EstimatedMinutes int           `json:"estimated_minutes"`
}

// Assignment 单个骑手的分派结果
type Assignment struct {
	CourierID int64   `json:"courier_id"`
	OrderIDs  []int64 `json:"order_ids"`
	Route     Route   `json:"route"`
	Priority  int     `json:"priority"` // 1-5
}

// DispatchMetrics 本次调度的效率指标
type DispatchMetrics struct {
	TotalOrders              int     `json:"total_orders"`
	DeliveriesUsed           int     `json:"deliveries_used"`
	AverageOrdersPerDelivery float64 `json:"average_orders_per_delivery"`
	EstimatedTotalTime       int     `json:"estimated_total_time"` // 最慢一条路径的时间
	CostEfficiency           float64 `json:"cost_efficiency"`      // 0-100
}

// AssignmentResult 一次调度的完整输出，由提交层落库
type AssignmentResult struct {
	RunID              string          `json:"run_id"`
	Strategy           Strategy        `json:"strategy"`
	Assignments        []Assignment    `json:"assignments"`
	UnassignedOrderIDs []int64         `json:"unassigned_order_ids,omitempty"` // 本轮运力不足未分派的订单
	Reason             string          `json:"reason"`
	Metrics            DispatchMetrics `json:"metrics"`
	CreatedAt          time.Time       `json:"created_at"`
}

// DispatchConfig 调度算法配置，每次调用显式传入
type DispatchConfig struct {
	MaxOrdersPerCourier  int     `json:"max_orders_per_courier"`
	MaxGroupingDistance  float64 `json:"max_grouping_distance"` // km
	MaxAdditionalWait    int     `json:"max_additional_wait"`   // 分钟
	MinOrdersForHybrid   int     `json:"min_orders_for_hybrid"`
	SearchRadiusKm       float64 `json:"search_radius_km"`
	DistanceWeight       float64 `json:"distance_weight"`
	PrepTimeWeight       float64 `json:"prep_time_weight"`   // 声明保留，评分公式暂未使用
	OrderCountWeight     float64 `json:"order_count_weight"` // 声明保留，评分公式暂未使用
	WorkloadWeight       float64 `json:"workload_weight"`
}

// DefaultDispatchConfig 默认调度配置
func DefaultDispatchConfig() DispatchConfig {
	return DispatchConfig{
		MaxOrdersPerCourier: 4,
		MaxGroupingDistance: 3,
		MaxAdditionalWait:   20,
		MinOrdersForHybrid:  3,
		SearchRadiusKm:      15,
		DistanceWeight:      0.4,
		PrepTimeWeight:      0.3,
		OrderCountWeight:    0.2,
		WorkloadWeight:      0.1,
	}
}

// normalize 补齐非法或缺省的配置项
func (c DispatchConfig) normalize() DispatchConfig {
	if c.MaxOrdersPerCourier <= 0 {
		c.MaxOrdersPerCourier = 4
	}
	if c.MaxGroupingDistance <= 0 {
		c.MaxGroupingDistance = 3
	}
	if c.MaxAdditionalWait <= 0 {
		c.MaxAdditionalWait = 20
	}
	if c.MinOrdersForHybrid <= 0 {
		c.MinOrdersForHybrid = 3
	}
	if c.SearchRadiusKm <= 0 {
		c.SearchRadiusKm = 15
	}
	return c
}
