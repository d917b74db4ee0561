package grpc

import (
	"context"
	"errors"
	"math/big"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-mem-bank/proto"
)

type GrpcServer struct {
	pb.UnimplementedBankServiceServer
	core *usecase.BankUseCase
	// operator: 對外 RPC 一律以這個身份下指令 (銀行擁有者)
	operator domain.Address
}

func NewGrpcServer(core *usecase.BankUseCase, operator domain.Address) *GrpcServer {
	return &GrpcServer{
		core:     core,
		operator: operator,
	}
}

// commandTypeFromProto 轉換指令類型
var commandTypeFromProto = map[pb.CommandType]domain.CommandType{
	pb.CommandType_CREATE_ACCOUNT:  domain.CommandTypeCreateAccount,
	pb.CommandType_TRANSFER:        domain.CommandTypeTransfer,
	pb.CommandType_CREATE_SHARE:    domain.CommandTypeCreateShare,
	pb.CommandType_BUY_SHARE:       domain.CommandTypeBuyShare,
	pb.CommandType_SELL_SHARE:      domain.CommandTypeSellShare,
	pb.CommandType_PLACE_ORDER:     domain.CommandTypePlaceOrder,
	pb.CommandType_EXECUTE_ORDER:   domain.CommandTypeExecuteOrder,
	pb.CommandType_CREATE_STAKING:  domain.CommandTypeCreateStaking,
	pb.CommandType_STAKE:           domain.CommandTypeStake,
	pb.CommandType_WITHDRAW_ALL:    domain.CommandTypeWithdrawAll,
	pb.CommandType_WITHDRAW_REWARD: domain.CommandTypeWithdrawReward,
	pb.CommandType_CHANGE_RATE:     domain.CommandTypeChangeRate,
}

func (s *GrpcServer) Execute(ctx context.Context, req *pb.CommandRequest) (*pb.CommandResponse, error) {
	// 1. UUID 解析
	u, err := uuid.Parse(req.RefId)
	if err != nil {
		return &pb.CommandResponse{
			Success: false,
			Message: "invalid ref_id: " + err.Error(),
		}, nil
	}

	// 2. 轉換指令類型
	cmdType, ok := commandTypeFromProto[req.Type]
	if !ok {
		return &pb.CommandResponse{
			Success: false,
			Message: "invalid command type",
		}, nil
	}

	// 3. 金額欄位解析 (對外用人類可讀的十進位，如 "10.5"，內部統一 10^18 縮放)
	amount, err := parseAmountField(req.Amount)
	if err != nil {
		return &pb.CommandResponse{
			Success: false,
			Message: "invalid amount: " + err.Error(),
		}, nil
	}
	price, err := parseAmountField(req.Price)
	if err != nil {
		return &pb.CommandResponse{
			Success: false,
			Message: "invalid price: " + err.Error(),
		}, nil
	}

	// 4. 組裝 Domain Command
	cmd := &domain.Command{
		RefID:         u,
		Caller:        s.operator,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		AccountNumber: req.AccountNumber,
		From:          domain.Address(req.From),
		To:            domain.Address(req.To),
		Name:          req.Name,
		Symbol:        req.Symbol,
		Amount:        amount,
		Price:         price,
		IsBuy:         req.IsBuy,
		OrderID:       req.OrderId,
		Rate:          req.Rate,
		Type:          cmdType,
	}

	// 5. 執行指令
	result, err := s.core.PostCommand(ctx, cmd)
	if err != nil {
		// 業務邏輯錯誤，回傳 Success=false (Soft Failure)
		return &pb.CommandResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	resp := &pb.CommandResponse{Success: true}
	if result != nil {
		resp.Address = string(result.Address)
		resp.OrderId = result.OrderID
	}
	return resp, nil
}

func (s *GrpcServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	balance, err := s.core.GetAccountBalance(ctx, domain.Address(req.Key))
	if err != nil {
		return nil, readError(err)
	}
	return &pb.GetBalanceResponse{
		Balance: formatAmount(balance),
	}, nil
}

func (s *GrpcServer) GetShare(ctx context.Context, req *pb.GetShareRequest) (*pb.GetShareResponse, error) {
	info, err := s.core.GetShare(ctx, req.Name, req.Symbol)
	if err != nil {
		return nil, readError(err)
	}
	return &pb.GetShareResponse{
		Address:         string(info.Address),
		MaxSupply:       formatAmount(info.MaxSupply),
		Price:           formatAmount(info.Price),
		AvailableSupply: formatAmount(info.AvailableSupply),
		TotalSupply:     formatAmount(info.TotalSupply),
		OrdersCount:     info.OrdersCount,
	}, nil
}

func (s *GrpcServer) GetOrder(ctx context.Context, req *pb.GetOrderRequest) (*pb.GetOrderResponse, error) {
	order, err := s.core.GetOrder(ctx, req.Name, req.Symbol, req.OrderId)
	if err != nil {
		return nil, readError(err)
	}
	return &pb.GetOrderResponse{
		Order: orderToProto(order),
	}, nil
}

func (s *GrpcServer) ListOrders(ctx context.Context, req *pb.ListOrdersRequest) (*pb.ListOrdersResponse, error) {
	orders, err := s.core.ListOrders(ctx, req.Name, req.Symbol)
	if err != nil {
		return nil, readError(err)
	}
	out := make([]*pb.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderToProto(o))
	}
	return &pb.ListOrdersResponse{Orders: out}, nil
}

func orderToProto(o domain.Order) *pb.Order {
	return &pb.Order{
		Id:        o.ID,
		Amount:    formatAmount(o.Amount),
		Price:     formatAmount(o.Price),
		CreatedAt: o.CreatedAt,
		Submitter: string(o.Submitter),
		IsBuy:     o.IsBuy(),
	}
}

// readError 查詢類錯誤對應 gRPC status code
func readError(err error) error {
	var accErr *domain.AccountDoesNotExistError
	var shareErr *domain.ShareDoesNotExistError
	var orderErr *domain.OrderDoesNotExistError
	switch {
	case errors.As(err, &accErr), errors.As(err, &shareErr), errors.As(err, &orderErr):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// parseAmountField 把 "10.5" 這種字串轉成 10^18 縮放的十進位整數字串
// 空字串代表該指令用不到這個欄位，原樣留空
func parseAmountField(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", err
	}
	return d.Shift(18).BigInt().String(), nil
}

// formatAmount 把 10^18 縮放的金額轉回人類可讀字串
func formatAmount(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v, -18).String()
}
