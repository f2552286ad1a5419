package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"aiorder/internal/models"
)

type writerStub struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *writerStub) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *writerStub) Close() error {
	w.closed = true
	return nil
}

var publishedAt = time.Date(2023, 6, 28, 16, 50, 3, 120_000_000, time.UTC)

func orders() []models.SubmittedOrder {
	return []models.SubmittedOrder{
		{
			CompanyID: "C1", StoreID: "1688", OrderDate: "2023-06-28",
			OrderListEntry: models.OrderListEntry{
				OrderGroupCode: "G1", VendorCode: "V1", HoFileExt: "TXT", RoundInd: "1",
				ProductList: []models.LineItem{{ProductCode: "P1", OrderQty: 4}, {ProductCode: "P2", OrderQty: 0}},
			},
		},
		{
			CompanyID: "C1", StoreID: "1688", OrderDate: "2023-06-28",
			OrderListEntry: models.OrderListEntry{OrderGroupCode: "G2", VendorCode: "V2"},
		},
	}
}

func TestOrderPublisher_MessageShape(t *testing.T) {
	w := &writerStub{}
	p := &OrderPublisher{writer: w, now: func() time.Time { return publishedAt }}

	require.NoError(t, p.AfterCommit(context.Background(), models.SaveReceipt{OrderReceiptNo: "0628168802"}, orders()))
	require.Len(t, w.msgs, 2)
	require.Equal(t, "1688G1", string(w.msgs[0].Key))

	var msg OrderMessage
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &msg))
	require.Equal(t, OrderMessage{
		Cmd:             "update",
		Version:         "1.0.0.1",
		CreateDate:      "2023-06-28",
		CreateTime:      "16:50:03",
		LotID:           "20230628165003",
		MessageSequence: 1,
		TotalMessages:   2,
		ConditionDate:   "2023-06-28 16:50:03.120",
		StoreID:         "1688",
		Source:          "aiorder",
		Data: OrderMessageData{
			Header: OrderMessageHeader{
				StoreCode: "1688", OrderDate: "2023/06/28", VendorCode: "V1", ExtFile: "TXT", RoundInd: "1",
			},
			DataList: []OrderMessageLine{{ProductCode: "P1", OrderQty: 4}, {ProductCode: "P2", OrderQty: 0}},
		},
	}, msg)
}

func TestOrderPublisher_WireNames(t *testing.T) {
	w := &writerStub{}
	p := &OrderPublisher{writer: w, now: func() time.Time { return publishedAt }}
	require.NoError(t, p.AfterCommit(context.Background(), models.SaveReceipt{}, orders()[1:]))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &raw))
	data := raw["data"].(map[string]any)
	header := data["header"].(map[string]any)
	require.Equal(t, "V2", header["VENDOR_CD"])
	require.Equal(t, []any{}, data["dataList"])
}

func TestOrderPublisher_WriteErrorNamesReceipt(t *testing.T) {
	boom := errors.New("leader not available")
	w := &writerStub{err: boom}
	p := &OrderPublisher{writer: w, now: func() time.Time { return publishedAt }}

	err := p.AfterCommit(context.Background(), models.SaveReceipt{OrderReceiptNo: "0628168802"}, orders())
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "0628168802")

	require.NoError(t, p.Close())
	require.True(t, w.closed)
}
