package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	grpcpool "github.com/JoeShih716/go-mem-bank/pkg/grpc"
	pb "github.com/JoeShih716/go-mem-bank/proto"
)

// 一條龍跑過核心場景: 開戶 -> 發行股票 -> 買股 -> 掛單/執行 -> 質押
func main() {
	pool := grpcpool.NewPool()
	defer pool.Close()

	conn, err := pool.GetConnection("localhost:50051")
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	c := pb.NewBankServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// 1. 開戶 (初始金額 1000)
	aliceKey := execute(ctx, c, &pb.CommandRequest{
		Type:          pb.CommandType_CREATE_ACCOUNT,
		FirstName:     "Alice",
		LastName:      "Chen",
		AccountNumber: "A-0001",
	}).Address
	bobKey := execute(ctx, c, &pb.CommandRequest{
		Type:          pb.CommandType_CREATE_ACCOUNT,
		FirstName:     "Bob",
		LastName:      "Lin",
		AccountNumber: "B-0001",
	}).Address
	printBalance(ctx, c, "alice", aliceKey)

	// 2. 帳戶間轉帳
	execute(ctx, c, &pb.CommandRequest{
		Type:   pb.CommandType_TRANSFER,
		From:   aliceKey,
		To:     bobKey,
		Amount: "50",
	})
	printBalance(ctx, c, "alice", aliceKey)
	printBalance(ctx, c, "bob", bobKey)

	// 3. 發行股票並用帳戶餘額直接買庫存股
	execute(ctx, c, &pb.CommandRequest{
		Type:   pb.CommandType_CREATE_SHARE,
		Name:   "MicroSoftHard",
		Symbol: "MSH",
		Amount: "1000000",
		Price:  "1",
	})
	execute(ctx, c, &pb.CommandRequest{
		Type:   pb.CommandType_BUY_SHARE,
		Name:   "MicroSoftHard",
		Symbol: "MSH",
		Amount: "10",
		To:     aliceKey,
	})
	printBalance(ctx, c, "alice", aliceKey)

	// 4. 掛限價單，再以當前市價執行
	placed := execute(ctx, c, &pb.CommandRequest{
		Type:   pb.CommandType_PLACE_ORDER,
		Name:   "MicroSoftHard",
		Symbol: "MSH",
		Amount: "5",
		Price:  "1",
		IsBuy:  true,
		From:   bobKey,
	})
	execute(ctx, c, &pb.CommandRequest{
		Type:    pb.CommandType_EXECUTE_ORDER,
		Name:    "MicroSoftHard",
		Symbol:  "MSH",
		OrderId: placed.OrderId,
		Price:   "1",
	})

	share, err := c.GetShare(ctx, &pb.GetShareRequest{Name: "MicroSoftHard", Symbol: "MSH"})
	if err != nil {
		log.Fatalf("GetShare failed: %v", err)
	}
	fmt.Printf("MSH available=%s total=%s orders=%d\n",
		share.AvailableSupply, share.TotalSupply, share.OrdersCount)

	// 5. 質押: 開池 -> 入金 -> 領息
	execute(ctx, c, &pb.CommandRequest{
		Type: pb.CommandType_CREATE_STAKING,
		Name: "euro-pool",
		Rate: 5,
	})
	execute(ctx, c, &pb.CommandRequest{
		Type:   pb.CommandType_STAKE,
		Name:   "euro-pool",
		From:   bobKey,
		Amount: "100",
	})
	execute(ctx, c, &pb.CommandRequest{
		Type: pb.CommandType_WITHDRAW_REWARD,
		Name: "euro-pool",
		To:   bobKey,
	})
	printBalance(ctx, c, "bob", bobKey)
}

func execute(ctx context.Context, c pb.BankServiceClient, req *pb.CommandRequest) *pb.CommandResponse {
	req.RefId = uuid.New().String()
	resp, err := c.Execute(ctx, req)
	if err != nil {
		log.Fatalf("Execute %s failed: %v", req.Type, err)
	}
	if !resp.Success {
		log.Fatalf("Execute %s rejected: %s", req.Type, resp.Message)
	}
	fmt.Printf("%s ok (address=%s order_id=%d)\n", req.Type, resp.Address, resp.OrderId)
	return resp
}

func printBalance(ctx context.Context, c pb.BankServiceClient, label, key string) {
	resp, err := c.GetBalance(ctx, &pb.GetBalanceRequest{Key: key})
	if err != nil {
		log.Fatalf("GetBalance %s failed: %v", label, err)
	}
	fmt.Printf("%s balance: %s\n", label, resp.Balance)
}
