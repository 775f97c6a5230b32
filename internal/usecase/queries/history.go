package queries

import "context"

type HistoryReadStore interface {
	List(ctx context.Context) ([]*HistoryView, error)
}

type HistoryQueries interface {
	// List returns archived bookings, most recently archived first.
	List(ctx context.Context) ([]*HistoryView, error)
}

type historyQueriesImpl struct {
	readStore HistoryReadStore
}

func NewHistoryQueries(readStore HistoryReadStore) HistoryQueries {
	return &historyQueriesImpl{readStore: readStore}
}

func (q *historyQueriesImpl) List(ctx context.Context) ([]*HistoryView, error) {
	return q.readStore.List(ctx)
}
