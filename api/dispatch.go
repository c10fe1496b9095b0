package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/merrydance/dispatch/algorithm"
	db "github.com/merrydance/dispatch/db/sqlc"
	"github.com/merrydance/dispatch/worker"
)

// ==================== 调度触发 ====================

type dispatchOrderGroupRequest struct {
	Sync bool `form:"sync"` // true 时同步试算并返回方案，不落库
}

// dispatchOrderGroup 触发订单组调度
// POST /v1/order-groups/:id/dispatch
// 默认异步入队，由 worker 执行并落库；?sync=true 时同步试算，
// 返回完整的调度方案但不占用骑手、不写配送单。
func (server *Server) dispatchOrderGroup(ctx *gin.Context) {
	var uri orderGroupIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req dispatchOrderGroupRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	group, err := server.store.GetOrderGroup(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("订单组不存在")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	if group.Status != "pending" && group.Status != "partially_dispatched" {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("订单组当前状态不可调度")))
		return
	}

	if req.Sync {
		server.dispatchInline(ctx, group)
		return
	}

	err = server.taskDistributor.DistributeTaskDispatchOrderGroup(
		ctx,
		&worker.PayloadDispatchOrderGroup{OrderGroupID: group.ID},
		asynq.MaxRetry(10),
		asynq.Queue(worker.QueueCritical),
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusAccepted, MessageResponse{Message: "调度任务已入队"})
}

// dispatchInline 同步试算：执行完整调度算法并返回方案，不提交任何变更
func (server *Server) dispatchInline(ctx *gin.Context, group db.OrderGroup) {
	orders, err := server.store.ListGroupPendingOrders(ctx, group.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	couriers, err := server.store.ListAvailableCouriers(ctx, 50)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	result, err := algorithm.Dispatch(algorithm.DispatchInput{
		Points:        worker.BuildPickupPoints(orders),
		DeliveryPoint: algorithm.Location{Longitude: group.DeliveryLongitude, Latitude: group.DeliveryLatitude},
		Couriers:      worker.BuildCourierCandidates(couriers),
		Config:        worker.BuildDispatchConfig(server.config),
	})
	if err != nil {
		switch {
		case errors.Is(err, algorithm.ErrEmptyGroup), errors.Is(err, algorithm.ErrInvalidGeometry):
			ctx.JSON(http.StatusUnprocessableEntity, errorResponse(err))
		case errors.Is(err, algorithm.ErrNoAvailableCouriers):
			ctx.JSON(http.StatusServiceUnavailable, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	RecordDispatchRun(string(result.Strategy))

	ctx.JSON(http.StatusOK, result)
}

// listGroupAssignments 查询订单组的配送单
// GET /v1/order-groups/:id/assignments
func (server *Server) listGroupAssignments(ctx *gin.Context) {
	var uri orderGroupIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	group, err := server.store.GetOrderGroup(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("订单组不存在")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	deliveries, err := server.store.ListGroupDeliveries(ctx, group.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"order_group_id": group.ID,
		"status":         group.Status,
		"last_run_id":    group.LastRunID.String,
		"deliveries":     deliveries,
	})
}
