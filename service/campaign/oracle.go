package campaign

import (
	"context"

	"go.uber.org/zap"

	"github.com/QuangTung97/textdrip/repository"
)

//go:generate moq -out campaign_mocks_test.go . Oracle Transport

// Oracle answers whether any inbound message for a contact arrived at or
// after the campaign start.
type Oracle interface {
	HasReplySince(ctx context.Context, matchKey string, sinceUnix int64) bool
}

type oracleImpl struct {
	history repository.History
	logger  *zap.Logger
}

// NewOracle ...
func NewOracle(history repository.History, logger *zap.Logger) Oracle {
	return &oracleImpl{
		history: history,
		logger:  logger,
	}
}

// HasReplySince fails open: when the history store is unavailable or the
// match key is degenerate it reports "no reply observed", so follow-ups
// keep going rather than being suppressed on degraded reply detection.
func (o *oracleImpl) HasReplySince(ctx context.Context, matchKey string, sinceUnix int64) bool {
	if matchKey == "" {
		return false
	}

	last, err := o.history.LastInboundAt(ctx, matchKey)
	if err != nil {
		o.logger.Warn("reply lookup failed, assuming no reply",
			zap.String("match_key", matchKey), zap.Error(err))
		return false
	}
	if !last.Valid {
		return false
	}
	return last.Int64 >= sinceUnix
}
