// Package archive persists converted capture waveforms to Postgres or
// TimescaleDB, one row per channel per capture.
package archive

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/picoscope-go/picoscope/internal/domain"
	"github.com/picoscope-go/picoscope/internal/ports"
)

type PostgresArchive struct {
	db        *sql.DB
	tableName string
}

func NewPostgresArchive(db *sql.DB, table string) *PostgresArchive {
	return &PostgresArchive{db: db, tableName: table}
}

func (p *PostgresArchive) Name() string { return "postgres" }

func (p *PostgresArchive) WriteCaptures(records []domain.CaptureRecord) error {
	if len(records) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(p.tableName)
	b.WriteString(" (capture_id, device_serial, channel, captured_at, interval_ns, range_mv, overflow, millivolts) VALUES ")

	args := make([]any, 0, len(records)*8)
	for i, r := range records {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			len(args)+1, len(args)+2, len(args)+3, len(args)+4,
			len(args)+5, len(args)+6, len(args)+7, len(args)+8))

		mv, err := json.Marshal(r.Millivolts)
		if err != nil {
			return fmt.Errorf("marshal millivolts: %w", err)
		}
		span, _ := r.Range.SpanMillivolts()

		args = append(args,
			r.CaptureID,
			r.DeviceSerial,
			r.Channel.String(),
			r.CapturedAt,
			r.IntervalNS,
			span,
			r.Overflow,
			mv,
		)
	}

	b.WriteString(" ON CONFLICT (capture_id, channel) DO NOTHING")

	_, err := p.db.Exec(b.String(), args...)
	return err
}

var _ ports.Archive = (*PostgresArchive)(nil)
