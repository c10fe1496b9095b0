package algorithm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// 纬度 0.01 度约 1.1km，0.05 度约 5.6km
func testPoint(orderID int64, lat, lng float64, prepTime int) PickupPoint {
	return PickupPoint{
		BusinessID:        orderID * 10,
		OrderID:           orderID,
		OrderNumber:       "ORD000",
		Location:          Location{Latitude: lat, Longitude: lng},
		EstimatedPrepTime: prepTime,
		ItemCount:         2,
	}
}

func TestAnalyzeScenario_SingleOrder(t *testing.T) {
	points := []PickupPoint{testPoint(1, 39.90, 116.40, 25)}

	scenario := AnalyzeScenario(points, DefaultDispatchConfig())
	require.Equal(t, StrategyIndividual, scenario.RecommendedStrategy)
	require.Equal(t, 1, scenario.TotalOrders)
}

func TestAnalyzeScenario_SameLocationCloseTimes(t *testing.T) {
	// 两单同一商家坐标，出餐时间 20 和 22 分钟
	points := []PickupPoint{
		testPoint(1, 39.90, 116.40, 20),
		testPoint(2, 39.90, 116.40, 22),
	}

	scenario := AnalyzeScenario(points, DefaultDispatchConfig())
	require.Equal(t, StrategyGrouped, scenario.RecommendedStrategy)
	require.Zero(t, scenario.MaxDistanceKm)
	require.Equal(t, 2, scenario.PrepTimeSpread)
}

func TestAnalyzeScenario_DispersedBusinesses(t *testing.T) {
	// 三个商家两两相距超过 3km
	points := []PickupPoint{
		testPoint(1, 39.90, 116.40, 20),
		testPoint(2, 39.95, 116.40, 22),
		testPoint(3, 40.00, 116.40, 21),
	}

	scenario := AnalyzeScenario(points, DefaultDispatchConfig())
	require.Equal(t, StrategyIndividual, scenario.RecommendedStrategy)
	require.Greater(t, scenario.MaxDistanceKm, 3.0)
}

func TestAnalyzeScenario_PrepTimeSpreadTooLarge(t *testing.T) {
	// 坐标集中但出餐时间差 30 分钟
	points := []PickupPoint{
		testPoint(1, 39.900, 116.400, 10),
		testPoint(2, 39.901, 116.401, 40),
	}

	scenario := AnalyzeScenario(points, DefaultDispatchConfig())
	require.Equal(t, StrategyIndividual, scenario.RecommendedStrategy)
	require.Equal(t, 30, scenario.PrepTimeSpread)
}

func TestAnalyzeScenario_ManyCloseOrders(t *testing.T) {
	// 六单都在 1km 内，出餐时间差 5 分钟以内
	points := []PickupPoint{
		testPoint(1, 39.900, 116.400, 20),
		testPoint(2, 39.902, 116.401, 22),
		testPoint(3, 39.904, 116.402, 21),
		testPoint(4, 39.901, 116.403, 24),
		testPoint(5, 39.903, 116.404, 23),
		testPoint(6, 39.905, 116.405, 25),
	}

	scenario := AnalyzeScenario(points, DefaultDispatchConfig())
	require.Equal(t, StrategyHybrid, scenario.RecommendedStrategy)
}

func TestAnalyzeScenario_RulesEvaluatedInOrder(t *testing.T) {
	// 既分散又只有一单时单单规则优先
	points := []PickupPoint{testPoint(1, 39.90, 116.40, 90)}

	scenario := AnalyzeScenario(points, DefaultDispatchConfig())
	require.Equal(t, StrategyIndividual, scenario.RecommendedStrategy)
	require.Equal(t, "单笔订单，直接分派", scenario.Reason)
}
