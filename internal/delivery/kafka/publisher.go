package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
	kafka "github.com/segmentio/kafka-go"

	"aiorder/internal/models"
)

const (
	messageCmd     = "update"
	messageVersion = "1.0.0.1"
	messageSource  = "aiorder"
)

type OrderMessage struct {
	Cmd             string           `json:"cmd"`
	Version         string           `json:"version"`
	CreateDate      string           `json:"createDate"`
	CreateTime      string           `json:"createTime"`
	LotID           string           `json:"lotId"`
	MessageSequence int              `json:"messageSequence"`
	TotalMessages   int              `json:"totalMessages"`
	ConditionDate   string           `json:"conditionDate"`
	StoreID         string           `json:"storeId"`
	Source          string           `json:"source"`
	Data            OrderMessageData `json:"data"`
}

type OrderMessageData struct {
	Header   OrderMessageHeader `json:"header"`
	DataList []OrderMessageLine `json:"dataList"`
}

type OrderMessageHeader struct {
	StoreCode  string `json:"STORE_CD"`
	OrderDate  string `json:"ORDER_DT"`
	VendorCode string `json:"VENDOR_CD"`
	ExtFile    string `json:"EXT_FILE"`
	RoundInd   string `json:"ROUND_IND"`
}

type OrderMessageLine struct {
	ProductCode string `json:"PROD_CD"`
	OrderQty    int    `json:"ORDER_QTY"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderPublisher emits one update message per saved order group.
type OrderPublisher struct {
	writer messageWriter
	now    func() time.Time
}

func NewOrderPublisher(brokers []string, topic string) *OrderPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		RequiredAcks:           kafka.RequireAll,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
	return &OrderPublisher{writer: w, now: time.Now}
}

// AfterCommit publishes the batch as one write; all messages share a lot id.
func (p *OrderPublisher) AfterCommit(ctx context.Context, receipt models.SaveReceipt, orders []models.SubmittedOrder) error {
	msgs, err := buildMessages(p.now().UTC(), orders)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return errors.Wrapf(err, "publish receipt %s", receipt.OrderReceiptNo)
	}
	return nil
}

func (p *OrderPublisher) Close() error {
	return p.writer.Close()
}

func buildMessages(at time.Time, orders []models.SubmittedOrder) ([]kafka.Message, error) {
	out := make([]kafka.Message, 0, len(orders))
	for i, o := range orders {
		body, err := json.Marshal(newOrderMessage(at, i+1, len(orders), o))
		if err != nil {
			return nil, errors.Wrapf(err, "encode order group %s", o.OrderGroupCode)
		}
		out = append(out, kafka.Message{
			Key:   []byte(o.StoreID + o.OrderGroupCode),
			Value: body,
			Time:  at,
		})
	}
	return out, nil
}

func newOrderMessage(at time.Time, seq, total int, o models.SubmittedOrder) OrderMessage {
	lines := make([]OrderMessageLine, 0, len(o.ProductList))
	for _, item := range o.ProductList {
		lines = append(lines, OrderMessageLine{ProductCode: item.ProductCode, OrderQty: item.OrderQty})
	}
	return OrderMessage{
		Cmd:             messageCmd,
		Version:         messageVersion,
		CreateDate:      at.Format("2006-01-02"),
		CreateTime:      at.Format("15:04:05"),
		LotID:           at.Format("20060102150405"),
		MessageSequence: seq,
		TotalMessages:   total,
		ConditionDate:   at.Format("2006-01-02 15:04:05.000"),
		StoreID:         o.StoreID,
		Source:          messageSource,
		Data: OrderMessageData{
			Header: OrderMessageHeader{
				StoreCode:  o.StoreID,
				OrderDate:  strings.ReplaceAll(o.OrderDate, "-", "/"),
				VendorCode: o.VendorCode,
				ExtFile:    o.HoFileExt,
				RoundInd:   o.RoundInd,
			},
			DataList: lines,
		},
	}
}
