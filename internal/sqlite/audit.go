package sqlite

import (
	"github.com/ce-es/dashboard/internal/domain"
)

// AppendAuditEvent writes one audit row. Replaying a seed id twice is
// harmless: the insert is ignored on conflict.
func (db *DB) AppendAuditEvent(e domain.AuditEvent) error {
	_, err := db.db.Exec(`
		INSERT INTO audit_events (id, ts, user, action, details, risk)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, e.ID, e.Timestamp, e.User, e.Action, e.Details, string(e.Risk))
	return err
}

// AuditEvents returns the trail newest first.
func (db *DB) AuditEvents() ([]domain.AuditEvent, error) {
	rows, err := db.db.Query(`
		SELECT id, ts, user, action, details, risk
		FROM audit_events ORDER BY ts DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AuditEvent
	for rows.Next() {
		var e domain.AuditEvent
		var risk string
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.User, &e.Action, &e.Details, &risk); err != nil {
			return nil, err
		}
		e.Risk = domain.RiskLevel(risk)
		out = append(out, e)
	}
	return out, rows.Err()
}
