package campaign

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/QuangTung97/textdrip/repository"
)

func TestOracle__Reply_At_Or_After_Start(t *testing.T) {
	history := &repository.HistoryMock{
		LastInboundAtFunc: func(ctx context.Context, matchKey string) (sql.NullInt64, error) {
			return sql.NullInt64{Valid: true, Int64: 1000}, nil
		},
	}
	oracle := NewOracle(history, zap.NewNop())

	assert.Equal(t, true, oracle.HasReplySince(newContext(), "5551234567", 1000))
	assert.Equal(t, true, oracle.HasReplySince(newContext(), "5551234567", 999))
	assert.Equal(t, false, oracle.HasReplySince(newContext(), "5551234567", 1001))

	assert.Equal(t, "5551234567", history.LastInboundAtCalls()[0].MatchKey)
}

func TestOracle__No_Inbound_Message(t *testing.T) {
	history := &repository.HistoryMock{
		LastInboundAtFunc: func(ctx context.Context, matchKey string) (sql.NullInt64, error) {
			return sql.NullInt64{}, nil
		},
	}
	oracle := NewOracle(history, zap.NewNop())

	assert.Equal(t, false, oracle.HasReplySince(newContext(), "5551234567", 0))
}

func TestOracle__Store_Unavailable_Fails_Open(t *testing.T) {
	history := &repository.HistoryMock{
		LastInboundAtFunc: func(ctx context.Context, matchKey string) (sql.NullInt64, error) {
			return sql.NullInt64{}, errors.New("unable to open database file")
		},
	}
	oracle := NewOracle(history, zap.NewNop())

	// degraded reply detection must keep the campaign sending
	assert.Equal(t, false, oracle.HasReplySince(newContext(), "5551234567", 0))
}

func TestOracle__Empty_Match_Key_Never_Queries(t *testing.T) {
	history := &repository.HistoryMock{}
	oracle := NewOracle(history, zap.NewNop())

	assert.Equal(t, false, oracle.HasReplySince(newContext(), "", 0))
	assert.Equal(t, 0, len(history.LastInboundAtCalls()))
}
