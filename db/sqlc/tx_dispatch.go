package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// ==================== 派单落库事务 ====================

// ErrCourierClaimed is returned when the courier's availability changed
// between candidate selection and commit
var ErrCourierClaimed = errors.New("骑手状态已变化，占用失败")

// ErrOrderNotPending is returned when an order was already assigned or cancelled
var ErrOrderNotPending = errors.New("订单已不在待派送状态")

// ClaimAssignmentOrder describes one order inside an assignment commit
type ClaimAssignmentOrder struct {
	OrderID         int64
	OriginLongitude float64
	OriginLatitude  float64
}

// ClaimAssignmentTxParams contains the input parameters for committing an assignment
type ClaimAssignmentTxParams struct {
	CourierID            int64
	ExpectedActiveOrders int32 // 选人时观察到的在途单量，用于乐观并发控制
	RunID                string
	Orders               []ClaimAssignmentOrder
	DestinationLongitude float64
	DestinationLatitude  float64
	DistanceKm           float64
	EstimatedMinutes     int32
	Priority             int16
}

// ClaimAssignmentTxResult contains the result of the assignment commit transaction
type ClaimAssignmentTxResult struct {
	Courier    Courier
	Orders     []Order
	Deliveries []Delivery
}

// ClaimAssignmentTx commits one courier assignment atomically:
// 1. Claim the courier with a conditional update on active_orders
// 2. Move every order to confirmed and attach the courier
// 3. Create one delivery row per order
// The conditional claim makes concurrent dispatch runs safe: if another run
// claimed the courier first, the update matches no row and the whole
// transaction rolls back with ErrCourierClaimed.
func (store *SQLStore) ClaimAssignmentTx(ctx context.Context, arg ClaimAssignmentTxParams) (ClaimAssignmentTxResult, error) {
	var result ClaimAssignmentTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		// 1. 条件占用骑手（CAS：active_orders 必须等于选人时的观察值）
		result.Courier, err = q.ClaimCourier(ctx, ClaimCourierParams{
			OrderCount:           int32(len(arg.Orders)),
			ID:                   arg.CourierID,
			ExpectedActiveOrders: arg.ExpectedActiveOrders,
		})
		if err != nil {
			if errors.Is(err, ErrRecordNotFound) {
				return ErrCourierClaimed
			}
			return fmt.Errorf("claim courier: %w", err)
		}

		for _, o := range arg.Orders {
			// 2. 订单绑定骑手并确认
			order, err := q.AssignOrderToCourier(ctx, AssignOrderToCourierParams{
				ID:        o.OrderID,
				CourierID: pgtype.Int8{Int64: arg.CourierID, Valid: true},
			})
			if err != nil {
				if errors.Is(err, ErrRecordNotFound) {
					return fmt.Errorf("order %d: %w", o.OrderID, ErrOrderNotPending)
				}
				return fmt.Errorf("assign order %d: %w", o.OrderID, err)
			}
			result.Orders = append(result.Orders, order)

			// 3. 创建配送单
			delivery, err := q.CreateDelivery(ctx, CreateDeliveryParams{
				OrderID:              o.OrderID,
				CourierID:            arg.CourierID,
				RunID:                arg.RunID,
				OriginLongitude:      o.OriginLongitude,
				OriginLatitude:       o.OriginLatitude,
				DestinationLongitude: arg.DestinationLongitude,
				DestinationLatitude:  arg.DestinationLatitude,
				DistanceKm:           arg.DistanceKm,
				EstimatedMinutes:     arg.EstimatedMinutes,
				Priority:             arg.Priority,
			})
			if err != nil {
				return fmt.Errorf("create delivery for order %d: %w", o.OrderID, err)
			}
			result.Deliveries = append(result.Deliveries, delivery)
		}

		return nil
	})

	return result, err
}
