package service_test

import (
	"context"
	"errors"
	"fmt"

	"aiorder/internal/models"
	"aiorder/internal/repository"
	"aiorder/internal/result"
)

type partitionStub struct {
	calls *[]string

	listRows  []models.OrderGroupRow
	listErr   error
	listCalls int

	statusResults []result.Result[[]models.StatusRow]
	statusCalls   int

	inserted  [][]models.PartitionRow
	insertErr error

	tx       *txStub
	beginErr error
	begins   int
}

func (p *partitionStub) ListOrderGroups(_ context.Context, partition string, _ models.OrderGroupQuery) result.Result[[]models.OrderGroupRow] {
	p.listCalls++
	p.record("list:" + partition)
	return result.Of(p.listRows, p.listErr)
}

func (p *partitionStub) ListStatusRows(_ context.Context, partition, _, _, _ string) result.Result[[]models.StatusRow] {
	p.statusCalls++
	p.record("status:" + partition)
	if p.statusCalls > len(p.statusResults) {
		return result.Fail[[]models.StatusRow](fmt.Errorf("unexpected status query #%d", p.statusCalls))
	}
	return p.statusResults[p.statusCalls-1]
}

func (p *partitionStub) InsertOrderGroups(_ context.Context, partition string, rows []models.PartitionRow) result.Result[int64] {
	p.inserted = append(p.inserted, rows)
	p.record("insert:" + partition)
	return result.Of(int64(len(rows)), p.insertErr)
}

func (p *partitionStub) BeginStatusTx(context.Context) (repository.StatusTx, error) {
	p.begins++
	if p.beginErr != nil {
		return nil, p.beginErr
	}
	p.record("rel.begin")
	return p.tx, nil
}

func (p *partitionStub) record(s string) {
	if p.calls != nil {
		*p.calls = append(*p.calls, s)
	}
}

type txStub struct {
	calls *[]string

	marked    []models.OrderStatusKey
	sendDates []string
	failAt    int // 1-based MarkSent call that fails; 0 never fails
	markErr   error
	affected  int64

	commitErr error
	commits   int
	rollbacks int
	releases  int
}

func (t *txStub) MarkSent(key models.OrderStatusKey, sendDate string) result.Result[int64] {
	t.marked = append(t.marked, key)
	t.sendDates = append(t.sendDates, sendDate)
	*t.calls = append(*t.calls, "mark:"+key.OrderGroupCode)
	if t.failAt == len(t.marked) {
		return result.Fail[int64](t.markErr)
	}
	return result.Ok(t.affected)
}

func (t *txStub) Commit() error {
	t.commits++
	*t.calls = append(*t.calls, "rel.commit")
	return t.commitErr
}

func (t *txStub) Rollback() error {
	t.rollbacks++
	*t.calls = append(*t.calls, "rel.rollback")
	return nil
}

func (t *txStub) Release() {
	t.releases++
	*t.calls = append(*t.calls, "rel.release")
}

type docStoreStub struct {
	sess     *sessionStub
	startErr error
}

func (d *docStoreStub) StartSession(context.Context) (repository.DocumentSession, error) {
	if d.startErr != nil {
		return nil, d.startErr
	}
	return d.sess, nil
}

type sessionStub struct {
	calls *[]string

	startTxErr error
	upserted   []models.SubmittedOrder
	upsert     func(ctx context.Context, o models.SubmittedOrder) error
	commitErr  error

	commits     int
	aborts      int
	abortCtxErr error
	ends        int
}

func (s *sessionStub) StartTransaction() error {
	*s.calls = append(*s.calls, "doc.begin")
	return s.startTxErr
}

func (s *sessionStub) Upsert(ctx context.Context, o models.SubmittedOrder) result.Result[models.OrderedGroup] {
	s.upserted = append(s.upserted, o)
	*s.calls = append(*s.calls, "upsert:"+o.OrderGroupCode)
	if s.upsert != nil {
		if err := s.upsert(ctx, o); err != nil {
			return result.Fail[models.OrderedGroup](err)
		}
	}
	return result.Ok(models.OrderedGroup{OrderGroupCode: o.OrderGroupCode, ProductList: o.ProductList})
}

func (s *sessionStub) CommitTransaction(context.Context) error {
	s.commits++
	*s.calls = append(*s.calls, "doc.commit")
	return s.commitErr
}

func (s *sessionStub) AbortTransaction(ctx context.Context) error {
	s.aborts++
	s.abortCtxErr = ctx.Err()
	*s.calls = append(*s.calls, "doc.abort")
	return nil
}

func (s *sessionStub) EndSession(context.Context) {
	s.ends++
	*s.calls = append(*s.calls, "doc.end")
}

type sourceStub struct {
	rows  []models.SourceOrderGroup
	err   error
	calls int
}

func (s *sourceStub) ListSourceOrderGroups(context.Context, string, string) result.Result[[]models.SourceOrderGroup] {
	s.calls++
	return result.Of(s.rows, s.err)
}

type cacheStub struct {
	m           map[models.OrderGroupQuery]models.OrderGroupList
	puts        int
	invalidated []string
}

func (c *cacheStub) Get(q models.OrderGroupQuery) (models.OrderGroupList, bool) {
	l, ok := c.m[q]
	return l, ok
}

func (c *cacheStub) Put(q models.OrderGroupQuery, l models.OrderGroupList) {
	if c.m == nil {
		c.m = map[models.OrderGroupQuery]models.OrderGroupList{}
	}
	c.m[q] = l
	c.puts++
}

func (c *cacheStub) Invalidate(companyID, storeID, orderDate string) {
	c.invalidated = append(c.invalidated, companyID+"|"+storeID+"|"+orderDate)
}

var (
	_ repository.OrderGroupPartition = (*partitionStub)(nil)
	_ repository.StatusTx            = (*txStub)(nil)
	_ repository.OrderedGroupStore   = (*docStoreStub)(nil)
	_ repository.DocumentSession     = (*sessionStub)(nil)
	_ repository.OrderGroupSource    = (*sourceStub)(nil)
	_ repository.OrderGroupCache     = (*cacheStub)(nil)
)

var errBoom = errors.New("boom")
