package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/merrydance/dispatch/algorithm"
	mockdb "github.com/merrydance/dispatch/db/mock"
	db "github.com/merrydance/dispatch/db/sqlc"
	mockwk "github.com/merrydance/dispatch/worker/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pendingOrderGroup(id int64) db.OrderGroup {
	return db.OrderGroup{
		ID:                id,
		CustomerID:        1,
		DeliveryAddress:   "朝阳区建国路88号",
		DeliveryLongitude: 116.41,
		DeliveryLatitude:  39.91,
		Status:            "pending",
	}
}

func TestDispatchOrderGroupAPI(t *testing.T) {
	group := pendingOrderGroup(10)

	testCases := []struct {
		name          string
		groupID       int64
		query         string
		buildStubs    func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:    "异步入队成功",
			groupID: group.ID,
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetOrderGroup(gomock.Any(), group.ID).
					Times(1).
					Return(group, nil)
				distributor.EXPECT().
					DistributeTaskDispatchOrderGroup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusAccepted, recorder.Code)
			},
		},
		{
			name:    "订单组不存在",
			groupID: 999,
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetOrderGroup(gomock.Any(), int64(999)).
					Times(1).
					Return(db.OrderGroup{}, pgx.ErrNoRows)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:    "已完成的组不可调度",
			groupID: group.ID,
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				done := group
				done.Status = "dispatched"
				store.EXPECT().
					GetOrderGroup(gomock.Any(), group.ID).
					Times(1).
					Return(done, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name:    "同步试算返回方案",
			groupID: group.ID,
			query:   "?sync=true",
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetOrderGroup(gomock.Any(), group.ID).
					Times(1).
					Return(group, nil)
				store.EXPECT().
					ListGroupPendingOrders(gomock.Any(), group.ID).
					Times(1).
					Return([]db.Order{
						{
							ID:                101,
							OrderGroupID:      group.ID,
							OrderNumber:       "ORD101",
							BusinessID:        1010,
							PickupLongitude:   116.40,
							PickupLatitude:    39.90,
							EstimatedPrepTime: 25,
							ItemCount:         1,
							Status:            "pending",
						},
					}, nil)
				store.EXPECT().
					ListAvailableCouriers(gomock.Any(), gomock.Any()).
					Times(1).
					Return([]db.Courier{
						{
							ID:               7,
							IsOnline:         true,
							IsAvailable:      true,
							ActiveOrders:     0,
							MaxCapacity:      4,
							CurrentLongitude: pgtype.Float8{Float64: 116.40, Valid: true},
							CurrentLatitude:  pgtype.Float8{Float64: 39.90, Valid: true},
						},
					}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var result algorithm.AssignmentResult
				err := json.Unmarshal(recorder.Body.Bytes(), &result)
				require.NoError(t, err)
				require.Equal(t, algorithm.StrategyIndividual, result.Strategy)
				require.Len(t, result.Assignments, 1)
				require.Equal(t, int64(7), result.Assignments[0].CourierID)
				require.Equal(t, []int64{101}, result.Assignments[0].OrderIDs)
				require.NotEmpty(t, result.RunID)
			},
		},
		{
			name:    "同步试算无可用骑手",
			groupID: group.ID,
			query:   "?sync=true",
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					GetOrderGroup(gomock.Any(), group.ID).
					Times(1).
					Return(group, nil)
				store.EXPECT().
					ListGroupPendingOrders(gomock.Any(), group.ID).
					Times(1).
					Return([]db.Order{
						{
							ID:                101,
							OrderGroupID:      group.ID,
							PickupLongitude:   116.40,
							PickupLatitude:    39.90,
							EstimatedPrepTime: 25,
							ItemCount:         1,
							Status:            "pending",
						},
					}, nil)
				store.EXPECT().
					ListAvailableCouriers(gomock.Any(), gomock.Any()).
					Times(1).
					Return([]db.Courier{}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
			},
		},
		{
			name:    "无效的组ID",
			groupID: 0,
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			distributor := mockwk.NewMockTaskDistributor(ctrl)
			tc.buildStubs(store, distributor)

			server := newTestServerWithTaskDistributor(t, store, distributor)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("/v1/order-groups/%d/dispatch%s", tc.groupID, tc.query)
			request, err := http.NewRequest(http.MethodPost, url, nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestListGroupAssignmentsAPI(t *testing.T) {
	group := pendingOrderGroup(10)
	group.Status = "dispatched"
	group.LastRunID = pgtype.Text{String: "run-abc", Valid: true}

	testCases := []struct {
		name          string
		groupID       int64
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:    "OK",
			groupID: group.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrderGroup(gomock.Any(), group.ID).
					Times(1).
					Return(group, nil)
				store.EXPECT().
					ListGroupDeliveries(gomock.Any(), group.ID).
					Times(1).
					Return([]db.Delivery{
						{ID: 1, OrderID: 101, CourierID: 7, RunID: "run-abc", DistanceKm: 1.2, EstimatedMinutes: 40, Priority: 3, Status: "going_to_business"},
					}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var response struct {
					OrderGroupID int64         `json:"order_group_id"`
					Status       string        `json:"status"`
					LastRunID    string        `json:"last_run_id"`
					Deliveries   []db.Delivery `json:"deliveries"`
				}
				err := json.Unmarshal(recorder.Body.Bytes(), &response)
				require.NoError(t, err)
				require.Equal(t, group.ID, response.OrderGroupID)
				require.Equal(t, "dispatched", response.Status)
				require.Equal(t, "run-abc", response.LastRunID)
				require.Len(t, response.Deliveries, 1)
				require.Equal(t, int64(7), response.Deliveries[0].CourierID)
			},
		},
		{
			name:    "NotFound",
			groupID: 999,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrderGroup(gomock.Any(), int64(999)).
					Times(1).
					Return(db.OrderGroup{}, pgx.ErrNoRows)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("/v1/order-groups/%d/assignments", tc.groupID)
			request, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
