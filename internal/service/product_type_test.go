package service_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"aiorder/internal/metrics"
	"aiorder/internal/models"
	"aiorder/internal/repository"
	"aiorder/internal/result"
	svc "aiorder/internal/service"
)

func statusOk(rows ...models.StatusRow) result.Result[[]models.StatusRow] {
	if rows == nil {
		rows = []models.StatusRow{}
	}
	return result.Ok(rows)
}

func largeRows() []models.StatusRow {
	return []models.StatusRow{
		{OrderGroupType1: "L", DestinationReceiveStatus: "Y", Count: 5},
		{OrderGroupType1: "L", OrderStatus: "Y", Count: 3},
		{OrderGroupType1: "L", Count: 2},
	}
}

func TestGetProductType_CountsPerCategory(t *testing.T) {
	p := &partitionStub{statusResults: []result.Result[[]models.StatusRow]{statusOk(largeRows()...)}}
	src := &sourceStub{}
	s := svc.NewService(&repository.Repository{OrderGroupPartition: p, OrderGroupSource: src})

	sum, err := s.GetProductType(context.Background(), "C1", "17", "2024-05-01")
	require.NoError(t, err)
	require.Zero(t, src.calls)

	require.Equal(t, "C1", sum.CompanyID)
	require.Len(t, sum.ProductType, models.CategoryCount)
	require.Equal(t, models.ProductTypeCounter{
		ProductTypeCode: "001", ProductTypeName: "L",
		OrderGroupQty: 10, OrderedQty: 8, SentQty: 5, Complete: false,
	}, sum.ProductType[models.CategoryLarge])
	require.True(t, sum.ProductType[models.CategorySmall].Complete)
	require.Equal(t, "003", sum.ProductType[models.CategoryUnclassified].ProductTypeCode)
}

func TestGetProductType_SeedsEmptyPartitionThenRetriesOnce(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	calls := []string{}
	p := &partitionStub{calls: &calls, statusResults: []result.Result[[]models.StatusRow]{
		statusOk(),
		statusOk(largeRows()...),
	}}
	src := &sourceStub{rows: []models.SourceOrderGroup{
		{StoreID: "17", OrderGroupCode: "G1", OrderGroupType1: "L"},
		{StoreID: "17", OrderGroupCode: "G2", OrderGroupType1: "S"},
		{StoreID: "17", OrderGroupCode: "G3", OrderGroupType1: "U"},
	}}
	m := metrics.NewRegistry()
	s := svc.NewService(&repository.Repository{OrderGroupPartition: p, OrderGroupSource: src}, svc.WithMetrics(m))

	sum, err := s.GetProductType(context.Background(), "C1", "17", "2024-05-01")
	require.NoError(t, err)
	require.Equal(t, 10, sum.ProductType[models.CategoryLarge].OrderGroupQty)

	require.Equal(t, []string{
		"status:order_group_001",
		"insert:order_group_001",
		"status:order_group_001",
	}, calls)
	require.Len(t, p.inserted, 1)
	require.Len(t, p.inserted[0], 3)
	for _, row := range p.inserted[0] {
		require.Equal(t, "C1", row.CompanyID)
	}
	require.Equal(t, "G2", p.inserted[0][1].OrderGroupCode)
	require.Equal(t, 1.0, testutil.ToFloat64(m.PartitionSeeded))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, log.InfoLevel, entry.Level)
	require.Equal(t, "order_group_001", entry.Data["partition"])
	require.Equal(t, 3, entry.Data["source"])
}

func TestGetProductType_SecondaryEmptyIsNotFound(t *testing.T) {
	p := &partitionStub{statusResults: []result.Result[[]models.StatusRow]{statusOk()}}
	src := &sourceStub{rows: []models.SourceOrderGroup{}}
	s := svc.NewService(&repository.Repository{OrderGroupPartition: p, OrderGroupSource: src})

	_, err := s.GetProductType(context.Background(), "C1", "17", "2024-05-01")
	require.ErrorIs(t, err, svc.ErrNotFound)
	require.Empty(t, p.inserted)
	require.Equal(t, 1, p.statusCalls)
}

func TestGetProductType_SecondaryErrorIsDatabase(t *testing.T) {
	p := &partitionStub{statusResults: []result.Result[[]models.StatusRow]{statusOk()}}
	src := &sourceStub{err: errBoom}
	s := svc.NewService(&repository.Repository{OrderGroupPartition: p, OrderGroupSource: src})

	_, err := s.GetProductType(context.Background(), "C1", "17", "2024-05-01")
	require.ErrorIs(t, err, svc.ErrDatabase)
	require.ErrorIs(t, err, errBoom)
	require.Empty(t, p.inserted)
}

func TestGetProductType_InsertErrorStopsBeforeRetry(t *testing.T) {
	p := &partitionStub{
		statusResults: []result.Result[[]models.StatusRow]{statusOk()},
		insertErr:     errBoom,
	}
	src := &sourceStub{rows: []models.SourceOrderGroup{{OrderGroupCode: "G1"}}}
	s := svc.NewService(&repository.Repository{OrderGroupPartition: p, OrderGroupSource: src})

	_, err := s.GetProductType(context.Background(), "C1", "17", "2024-05-01")
	require.ErrorIs(t, err, svc.ErrDatabase)
	require.Equal(t, 1, p.statusCalls)
}

func TestGetProductType_RetryErrorIsDatabase(t *testing.T) {
	p := &partitionStub{statusResults: []result.Result[[]models.StatusRow]{
		statusOk(),
		result.Fail[[]models.StatusRow](errBoom),
	}}
	src := &sourceStub{rows: []models.SourceOrderGroup{{OrderGroupCode: "G1"}}}
	s := svc.NewService(&repository.Repository{OrderGroupPartition: p, OrderGroupSource: src})

	_, err := s.GetProductType(context.Background(), "C1", "17", "2024-05-01")
	require.ErrorIs(t, err, svc.ErrDatabase)
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, 2, p.statusCalls)
}

func TestGetProductType_RetryStillEmptyYieldsZeroCounters(t *testing.T) {
	p := &partitionStub{statusResults: []result.Result[[]models.StatusRow]{statusOk(), statusOk()}}
	src := &sourceStub{rows: []models.SourceOrderGroup{{OrderGroupCode: "G1", OrderGroupType1: "L"}}}
	s := svc.NewService(&repository.Repository{OrderGroupPartition: p, OrderGroupSource: src})

	sum, err := s.GetProductType(context.Background(), "C1", "17", "2024-05-01")
	require.NoError(t, err)
	require.Equal(t, 2, p.statusCalls)
	for _, c := range sum.ProductType {
		require.Zero(t, c.OrderGroupQty)
		require.True(t, c.Complete)
	}
}

func TestGetProductType_InvalidStore(t *testing.T) {
	p := &partitionStub{}
	s := svc.NewService(&repository.Repository{OrderGroupPartition: p})

	_, err := s.GetProductType(context.Background(), "C1", "-4", "2024-05-01")
	require.ErrorIs(t, err, svc.ErrInvalidArgument)
	require.Zero(t, p.statusCalls)
}
