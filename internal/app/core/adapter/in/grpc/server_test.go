package grpc

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-mem-bank/proto"
)

const operator = domain.Address("operator")

func newTestServer(t *testing.T) *GrpcServer {
	t.Helper()
	engine, err := memory.NewMutexBank(domain.NewBank(operator), 0, nil)
	require.NoError(t, err)
	return NewGrpcServer(usecase.NewBankUseCase(engine), operator)
}

func mustExecute(t *testing.T, s *GrpcServer, req *pb.CommandRequest) *pb.CommandResponse {
	t.Helper()
	req.RefId = uuid.New().String()
	resp, err := s.Execute(context.Background(), req)
	require.NoError(t, err)
	require.True(t, resp.Success, resp.Message)
	return resp
}

func TestExecuteCreateAccountAndGetBalance(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	resp := mustExecute(t, s, &pb.CommandRequest{
		Type:          pb.CommandType_CREATE_ACCOUNT,
		FirstName:     "Alice",
		LastName:      "Chen",
		AccountNumber: "A-0001",
	})
	require.NotEmpty(t, resp.Address)

	balance, err := s.GetBalance(ctx, &pb.GetBalanceRequest{Key: resp.Address})
	require.NoError(t, err)
	assert.Equal(t, "1000", balance.Balance)
}

func TestExecuteParsesHumanReadableAmounts(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	alice := mustExecute(t, s, &pb.CommandRequest{
		Type:          pb.CommandType_CREATE_ACCOUNT,
		FirstName:     "Alice",
		LastName:      "Chen",
		AccountNumber: "A-0001",
	}).Address
	bob := mustExecute(t, s, &pb.CommandRequest{
		Type:          pb.CommandType_CREATE_ACCOUNT,
		FirstName:     "Bob",
		LastName:      "Lin",
		AccountNumber: "B-0001",
	}).Address

	mustExecute(t, s, &pb.CommandRequest{
		Type:   pb.CommandType_TRANSFER,
		From:   alice,
		To:     bob,
		Amount: "50.5",
	})

	balance, err := s.GetBalance(ctx, &pb.GetBalanceRequest{Key: alice})
	require.NoError(t, err)
	assert.Equal(t, "949.5", balance.Balance)
}

func TestExecuteSoftFailures(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	// ref_id 不是合法 UUID
	resp, err := s.Execute(ctx, &pb.CommandRequest{
		RefId: "not-a-uuid",
		Type:  pb.CommandType_CREATE_ACCOUNT,
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "invalid ref_id")

	// 未知指令類型
	resp, err = s.Execute(ctx, &pb.CommandRequest{
		RefId: uuid.New().String(),
		Type:  pb.CommandType_COMMAND_TYPE_UNSPECIFIED,
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)

	// 金額解析失敗
	resp, err = s.Execute(ctx, &pb.CommandRequest{
		RefId:  uuid.New().String(),
		Type:   pb.CommandType_TRANSFER,
		Amount: "ten",
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "invalid amount")

	// 業務錯誤回 Success=false，不回 gRPC error
	mustExecute(t, s, &pb.CommandRequest{
		Type:          pb.CommandType_CREATE_ACCOUNT,
		FirstName:     "Alice",
		LastName:      "Chen",
		AccountNumber: "A-0001",
	})
	resp, err = s.Execute(ctx, &pb.CommandRequest{
		RefId:         uuid.New().String(),
		Type:          pb.CommandType_CREATE_ACCOUNT,
		FirstName:     "Alice",
		LastName:      "Chen",
		AccountNumber: "A-0001",
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestReadsMapNotFound(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.GetBalance(ctx, &pb.GetBalanceRequest{Key: "no-such-key"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = s.GetShare(ctx, &pb.GetShareRequest{Name: "NoSuch", Symbol: "NSH"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	mustExecute(t, s, &pb.CommandRequest{
		Type:   pb.CommandType_CREATE_SHARE,
		Name:   "MicroSoftHard",
		Symbol: "MSH",
		Amount: "1000000",
		Price:  "1",
	})
	_, err = s.GetOrder(ctx, &pb.GetOrderRequest{Name: "MicroSoftHard", Symbol: "MSH", OrderId: 7})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestShareAndOrderReads(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	alice := mustExecute(t, s, &pb.CommandRequest{
		Type:          pb.CommandType_CREATE_ACCOUNT,
		FirstName:     "Alice",
		LastName:      "Chen",
		AccountNumber: "A-0001",
	}).Address
	mustExecute(t, s, &pb.CommandRequest{
		Type:   pb.CommandType_CREATE_SHARE,
		Name:   "MicroSoftHard",
		Symbol: "MSH",
		Amount: "1000000",
		Price:  "1",
	})
	mustExecute(t, s, &pb.CommandRequest{
		Type:   pb.CommandType_BUY_SHARE,
		Name:   "MicroSoftHard",
		Symbol: "MSH",
		Amount: "10",
		To:     alice,
	})
	placed := mustExecute(t, s, &pb.CommandRequest{
		Type:   pb.CommandType_PLACE_ORDER,
		Name:   "MicroSoftHard",
		Symbol: "MSH",
		Amount: "5",
		Price:  "1",
		IsBuy:  true,
		From:   alice,
	})

	share, err := s.GetShare(ctx, &pb.GetShareRequest{Name: "MicroSoftHard", Symbol: "MSH"})
	require.NoError(t, err)
	assert.Equal(t, "1000000", share.MaxSupply)
	assert.Equal(t, "999990", share.AvailableSupply)
	assert.Equal(t, "10", share.TotalSupply)
	assert.Equal(t, uint64(1), share.OrdersCount)

	order, err := s.GetOrder(ctx, &pb.GetOrderRequest{Name: "MicroSoftHard", Symbol: "MSH", OrderId: placed.OrderId})
	require.NoError(t, err)
	assert.Equal(t, "5", order.Order.Amount)
	assert.True(t, order.Order.IsBuy)
	assert.Equal(t, alice, order.Order.Submitter)

	orders, err := s.ListOrders(ctx, &pb.ListOrdersRequest{Name: "MicroSoftHard", Symbol: "MSH"})
	require.NoError(t, err)
	require.Len(t, orders.Orders, 1)
}
