package algorithm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func testCouriersNear(base Location, n int) []CourierCandidate {
	couriers := make([]CourierCandidate, 0, n)
	for i := 0; i < n; i++ {
		loc := Location{
			Latitude:  base.Latitude + float64(i+1)*0.002,
			Longitude: base.Longitude + float64(i+1)*0.002,
		}
		couriers = append(couriers, CourierCandidate{
			ID:          int64(i + 1),
			Location:    &loc,
			MaxCapacity: 4,
		})
	}
	return couriers
}

// collectOrderIDs 汇总结果中所有已分派的订单
func collectOrderIDs(t *testing.T, result AssignmentResult) map[int64]int {
	t.Helper()
	seen := make(map[int64]int)
	for _, a := range result.Assignments {
		for _, id := range a.OrderIDs {
			seen[id]++
		}
	}
	return seen
}

func TestDispatch_EmptyGroup(t *testing.T) {
	_, err := Dispatch(DispatchInput{
		DeliveryPoint: Location{Latitude: 39.9, Longitude: 116.4},
		Couriers:      testCouriersNear(Location{Latitude: 39.9, Longitude: 116.4}, 1),
		Config:        DefaultDispatchConfig(),
	})
	require.ErrorIs(t, err, ErrEmptyGroup)
}

func TestDispatch_InvalidGeometry(t *testing.T) {
	delivery := Location{Latitude: 39.9, Longitude: 116.4}
	couriers := testCouriersNear(delivery, 1)

	// 历史脏数据：缺失坐标落成 (0,0)，必须拒绝而不是按原点计算
	_, err := Dispatch(DispatchInput{
		Points:        []PickupPoint{testPoint(1, 0, 0, 20)},
		DeliveryPoint: delivery,
		Couriers:      couriers,
		Config:        DefaultDispatchConfig(),
	})
	require.ErrorIs(t, err, ErrInvalidGeometry)

	// 送达坐标非法
	_, err = Dispatch(DispatchInput{
		Points:        []PickupPoint{testPoint(1, 39.9, 116.4, 20)},
		DeliveryPoint: Location{},
		Couriers:      couriers,
		Config:        DefaultDispatchConfig(),
	})
	require.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestDispatch_NoAvailableCouriers(t *testing.T) {
	_, err := Dispatch(DispatchInput{
		Points:        []PickupPoint{testPoint(1, 39.9, 116.4, 20)},
		DeliveryPoint: Location{Latitude: 39.92, Longitude: 116.42},
		Config:        DefaultDispatchConfig(),
	})
	require.ErrorIs(t, err, ErrNoAvailableCouriers)
}

func TestDispatch_SingleOrder(t *testing.T) {
	delivery := Location{Latitude: 39.92, Longitude: 116.42}
	result, err := Dispatch(DispatchInput{
		Points:        []PickupPoint{testPoint(1, 39.90, 116.40, 25)},
		DeliveryPoint: delivery,
		Couriers:      testCouriersNear(delivery, 3),
		Config:        DefaultDispatchConfig(),
	})
	require.NoError(t, err)

	require.Equal(t, StrategyIndividual, result.Strategy)
	require.Len(t, result.Assignments, 1)
	require.Equal(t, []int64{1}, result.Assignments[0].OrderIDs)
	require.Empty(t, result.UnassignedOrderIDs)
	require.NotEmpty(t, result.RunID)
}

func TestDispatch_GroupedTwoOrdersSameLocation(t *testing.T) {
	delivery := Location{Latitude: 39.92, Longitude: 116.42}
	points := []PickupPoint{
		testPoint(1, 39.90, 116.40, 20),
		testPoint(2, 39.90, 116.40, 22),
	}

	result, err := Dispatch(DispatchInput{
		Points:        points,
		DeliveryPoint: delivery,
		Couriers:      testCouriersNear(delivery, 3),
		Config:        DefaultDispatchConfig(),
	})
	require.NoError(t, err)

	require.Equal(t, StrategyGrouped, result.Strategy)
	require.Len(t, result.Assignments, 1)
	require.ElementsMatch(t, []int64{1, 2}, result.Assignments[0].OrderIDs)
}

func TestDispatch_IndividualWhenDispersed(t *testing.T) {
	delivery := Location{Latitude: 39.95, Longitude: 116.45}
	// 五单分属三个相距超过 3km 的商家
	points := []PickupPoint{
		testPoint(1, 39.90, 116.40, 20),
		testPoint(2, 39.90, 116.40, 21),
		testPoint(3, 39.95, 116.40, 22),
		testPoint(4, 39.95, 116.40, 23),
		testPoint(5, 40.00, 116.40, 24),
	}

	result, err := Dispatch(DispatchInput{
		Points:        points,
		DeliveryPoint: delivery,
		Couriers:      testCouriersNear(delivery, 3),
		Config:        DefaultDispatchConfig(),
	})
	require.NoError(t, err)

	require.Equal(t, StrategyIndividual, result.Strategy)
	// 骑手只有 3 个：3 个分派 + 2 单未分派
	require.Len(t, result.Assignments, 3)
	require.Len(t, result.UnassignedOrderIDs, 2)

	for _, a := range result.Assignments {
		require.Len(t, a.OrderIDs, 1)
	}

	// 已分派 + 未分派覆盖全部订单，无重复
	seen := collectOrderIDs(t, result)
	for _, id := range result.UnassignedOrderIDs {
		_, dup := seen[id]
		require.False(t, dup)
		seen[id]++
	}
	require.Len(t, seen, 5)
}

func TestDispatch_HybridClustersCoverAllOrders(t *testing.T) {
	delivery := Location{Latitude: 39.92, Longitude: 116.42}
	// 六单都在 1km 内，出餐时间差 5 分钟内，3 个骑手
	points := []PickupPoint{
		testPoint(1, 39.900, 116.400, 20),
		testPoint(2, 39.902, 116.401, 22),
		testPoint(3, 39.904, 116.402, 21),
		testPoint(4, 39.901, 116.403, 24),
		testPoint(5, 39.903, 116.404, 23),
		testPoint(6, 39.905, 116.405, 25),
	}

	result, err := Dispatch(DispatchInput{
		Points:        points,
		DeliveryPoint: delivery,
		Couriers:      testCouriersNear(delivery, 3),
		Config:        DefaultDispatchConfig(),
	})
	require.NoError(t, err)

	require.Equal(t, StrategyHybrid, result.Strategy)
	// k = min(ceil(6/2), 3, 4) = 3
	require.LessOrEqual(t, len(result.Assignments), 3)
	require.Empty(t, result.UnassignedOrderIDs)

	seen := collectOrderIDs(t, result)
	require.Len(t, seen, 6)
	for id, count := range seen {
		require.Equal(t, 1, count, "订单 %d 被分派了 %d 次", id, count)
	}

	// 单个分派不超过容量上限，且骑手不重复
	courierSeen := make(map[int64]bool)
	for _, a := range result.Assignments {
		require.LessOrEqual(t, len(a.OrderIDs), 4)
		require.False(t, courierSeen[a.CourierID], "骑手 %d 出现在两个分派中", a.CourierID)
		courierSeen[a.CourierID] = true
	}
}

func TestDispatch_SingleCourierFallback(t *testing.T) {
	delivery := Location{Latitude: 39.92, Longitude: 116.42}
	// 四单聚集，只有一个骑手：不报错，全部交给这个骑手
	points := []PickupPoint{
		testPoint(1, 39.900, 116.400, 20),
		testPoint(2, 39.901, 116.401, 21),
		testPoint(3, 39.902, 116.402, 22),
		testPoint(4, 39.903, 116.403, 23),
	}

	result, err := Dispatch(DispatchInput{
		Points:        points,
		DeliveryPoint: delivery,
		Couriers:      testCouriersNear(delivery, 1),
		Config:        DefaultDispatchConfig(),
	})
	require.NoError(t, err)

	require.Contains(t, []Strategy{StrategyGrouped, StrategySequential}, result.Strategy)
	require.Len(t, result.Assignments, 1)
	require.ElementsMatch(t, []int64{1, 2, 3, 4}, result.Assignments[0].OrderIDs)
	require.Empty(t, result.UnassignedOrderIDs)
}

func TestDispatch_SequentialExceedsCapAsLastResort(t *testing.T) {
	delivery := Location{Latitude: 39.92, Longitude: 116.42}
	// 六单聚集但只有一个骑手：超过单骑手容量上限，标记为 SEQUENTIAL
	points := []PickupPoint{
		testPoint(1, 39.900, 116.400, 20),
		testPoint(2, 39.901, 116.401, 21),
		testPoint(3, 39.902, 116.402, 22),
		testPoint(4, 39.903, 116.403, 23),
		testPoint(5, 39.904, 116.404, 24),
		testPoint(6, 39.905, 116.405, 25),
	}

	result, err := Dispatch(DispatchInput{
		Points:        points,
		DeliveryPoint: delivery,
		Couriers:      testCouriersNear(delivery, 1),
		Config:        DefaultDispatchConfig(),
	})
	require.NoError(t, err)

	require.Equal(t, StrategySequential, result.Strategy)
	require.Len(t, result.Assignments, 1)
	require.Len(t, result.Assignments[0].OrderIDs, 6)
}

func TestDispatch_Deterministic(t *testing.T) {
	delivery := Location{Latitude: 39.92, Longitude: 116.42}
	points := []PickupPoint{
		testPoint(1, 39.900, 116.400, 20),
		testPoint(2, 39.902, 116.401, 22),
		testPoint(3, 39.904, 116.402, 21),
		testPoint(4, 39.901, 116.403, 24),
		testPoint(5, 39.903, 116.404, 23),
		testPoint(6, 39.905, 116.405, 25),
	}
	couriers := testCouriersNear(delivery, 3)

	input := DispatchInput{
		Points:        points,
		DeliveryPoint: delivery,
		Couriers:      couriers,
		Config:        DefaultDispatchConfig(),
	}

	first, err := Dispatch(input)
	require.NoError(t, err)
	second, err := Dispatch(input)
	require.NoError(t, err)

	// RunID 和时间戳以外的内容逐位一致
	require.Equal(t, first.Strategy, second.Strategy)
	require.Equal(t, first.Assignments, second.Assignments)
	require.Equal(t, first.UnassignedOrderIDs, second.UnassignedOrderIDs)
	require.Equal(t, first.Metrics, second.Metrics)
}

func TestDispatch_MetricsComputed(t *testing.T) {
	delivery := Location{Latitude: 39.92, Longitude: 116.42}
	points := []PickupPoint{
		testPoint(1, 39.90, 116.40, 20),
		testPoint(2, 39.90, 116.40, 22),
	}

	result, err := Dispatch(DispatchInput{
		Points:        points,
		DeliveryPoint: delivery,
		Couriers:      testCouriersNear(delivery, 2),
		Config:        DefaultDispatchConfig(),
	})
	require.NoError(t, err)

	m := result.Metrics
	require.Equal(t, 2, m.TotalOrders)
	require.Equal(t, 1, m.DeliveriesUsed)
	require.InDelta(t, 2.0, m.AverageOrdersPerDelivery, 1e-9)
	require.Equal(t, result.Assignments[0].Route.EstimatedMinutes, m.EstimatedTotalTime)
	require.InDelta(t, 50.0, m.CostEfficiency, 1e-9)
	require.False(t, math.IsNaN(m.CostEfficiency))
}
