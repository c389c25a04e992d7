package handler

import (
	"context"
	"net"
	"testing"

	"profit_leak/leakdetector/api"
	"profit_leak/leakdetector/internal/analysis"
	"profit_leak/leakdetector/internal/logging"
	"profit_leak/leakdetector/internal/logic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newTestClient(t *testing.T) api.LeakDetectorServiceClient {
	t.Helper()
	logger := logging.NewDiscardLogger()
	engine := analysis.NewEngine(logic.DefaultThresholds(), 5, logger)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	api.RegisterLeakDetectorServiceServer(srv, NewLeakDetectorHandler(engine, logger))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return api.NewLeakDetectorServiceClient(conn)
}

func referenceInputs() *api.BusinessInputs {
	return &api.BusinessInputs{
		UnitsSold:          1000,
		Price:              500,
		Cost:               300,
		DiscountPct:        15,
		ReturnPct:          6,
		AvgStockUnits:      1500,
		StorageCostPerUnit: 5,
	}
}

func TestGRPC_Analyze(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.Analyze(context.Background(), &api.AnalyzeRequest{Inputs: referenceInputs()})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ReportId)
	assert.Equal(t, 500000.0, resp.Metrics.Revenue)
	assert.Equal(t, 87500.0, resp.Metrics.TrueProfit)
	assert.Equal(t, 40.0, resp.Metrics.GrossMarginPct)
	require.Len(t, resp.Leaks, 1)
	assert.Equal(t, "High returns", resp.Leaks[0].Name)
	assert.Equal(t, 30000.0, resp.Leaks[0].Amount)
	require.Len(t, resp.Actions, 1)
	assert.Equal(t, int32(1), resp.TotalLeaks)
}

func TestGRPC_AnalyzeInvalid(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Analyze(context.Background(), &api.AnalyzeRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	in := referenceInputs()
	in.ReturnPct = 140
	_, err = client.Analyze(context.Background(), &api.AnalyzeRequest{Inputs: in})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "return_pct")
}

func TestGRPC_CompareScenario(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.CompareScenario(context.Background(), &api.ScenarioRequest{Baseline: referenceInputs()})
	require.NoError(t, err)

	assert.Equal(t, 87500.0, resp.Baseline.TrueProfit)
	assert.Equal(t, 117500.0, resp.Scenario.TrueProfit)
	assert.Equal(t, 30000.0, resp.ProfitDelta)
	assert.Equal(t, 10.0, resp.ScenarioInputs.DiscountPct)

	storage := 1.0
	resp, err = client.CompareScenario(context.Background(), &api.ScenarioRequest{
		Baseline:  referenceInputs(),
		Overrides: &api.ScenarioOverrides{StorageCostPerUnit: &storage},
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, resp.ScenarioInputs.StorageCostPerUnit)
	assert.Equal(t, 1500.0, resp.Scenario.InventoryCost)
}

func TestGRPC_CompareScenarioInvalid(t *testing.T) {
	client := newTestClient(t)

	_, err := client.CompareScenario(context.Background(), &api.ScenarioRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	negative := -3.0
	_, err = client.CompareScenario(context.Background(), &api.ScenarioRequest{
		Baseline:  referenceInputs(),
		Overrides: &api.ScenarioOverrides{DiscountPct: &negative},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGRPC_GetThresholds(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.GetThresholds(context.Background(), &api.GetThresholdsRequest{})
	require.NoError(t, err)

	assert.Equal(t, &api.Thresholds{
		MaxDiscountPct:    15,
		MaxReturnPct:      5,
		MaxStockDays:      45,
		MinGrossMarginPct: 25,
	}, resp.Thresholds)
}
