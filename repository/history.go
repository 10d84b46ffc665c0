package repository

import (
	"context"
	"database/sql"
	"errors"
)

//go:generate moq -out repository_mocks.go . History StateStore

// History is the external reply-history store. It is append-only on the
// outside and strictly read-only here.
type History interface {
	// LastInboundAt returns the Unix timestamp of the most recent inbound
	// message whose sender identifier ends with matchKey, or an invalid
	// value when no such message exists.
	LastInboundAt(ctx context.Context, matchKey string) (sql.NullInt64, error)
}

type historyImpl struct {
	db Readonly
}

// NewHistory ...
func NewHistory(db Readonly) History {
	return &historyImpl{db: db}
}

// appleEpochOffset is the number of seconds between the Unix epoch and the
// Apple absolute-time epoch (2001-01-01 00:00:00 UTC).
const appleEpochOffset = 978307200

// appleToUnix converts an Apple absolute timestamp to Unix seconds. Values
// above 1e12 are nanoseconds, everything else is seconds.
func appleToUnix(ts int64) int64 {
	if ts > 1_000_000_000_000 {
		ts /= 1_000_000_000
	}
	return ts + appleEpochOffset
}

// LastInboundAt ...
func (h *historyImpl) LastInboundAt(ctx context.Context, matchKey string) (sql.NullInt64, error) {
	query := `
SELECT message.date
FROM message
JOIN handle ON handle.ROWID = message.handle_id
WHERE message.is_from_me = 0
  AND REPLACE(REPLACE(REPLACE(handle.id, '-', ''), ' ', ''), 'tel:', '') LIKE ?
ORDER BY message.date DESC
LIMIT 1
`
	var date int64
	err := h.db.GetContext(ctx, &date, query, "%"+matchKey)
	if errors.Is(err, sql.ErrNoRows) {
		return sql.NullInt64{}, nil
	}
	if err != nil {
		return sql.NullInt64{}, err
	}

	return sql.NullInt64{
		Valid: true,
		Int64: appleToUnix(date),
	}, nil
}
