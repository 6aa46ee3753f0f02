package sqlite

import (
	"context"
	"database/sql"

	"scheduling-assistant/internal/meeting"
	repo "scheduling-assistant/internal/meeting/repository"
)

// CreateMeeting inserts a meeting descriptor row for a session.
func (r *implRepository) CreateMeeting(ctx context.Context, opt repo.CreateMeetingOptions) (meeting.Meeting, error) {
	const query = `
		INSERT INTO meetings (session_id, event_id, subject, start_time, end_time, join_link)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		opt.SessionID, opt.EventID, opt.Subject, opt.StartTime, opt.EndTime, opt.JoinLink,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMeeting"), err)
		return meeting.Meeting{}, repo.ErrFailedToInsert
	}

	id, _ := result.LastInsertId()
	return meeting.Meeting{
		ID:        id,
		SessionID: opt.SessionID,
		EventID:   opt.EventID,
		Subject:   opt.Subject,
		StartTime: opt.StartTime,
		EndTime:   opt.EndTime,
		JoinLink:  opt.JoinLink,
	}, nil
}

// GetMeetingBySession retrieves the latest meeting descriptor for a session.
// Returns zero-value Meeting (EventID == "") when not found — no error.
func (r *implRepository) GetMeetingBySession(ctx context.Context, sessionID string) (meeting.Meeting, error) {
	const query = `
		SELECT id, session_id, event_id, subject, start_time, end_time, COALESCE(join_link, ''), created_at
		FROM meetings WHERE session_id = ? ORDER BY id DESC LIMIT 1`

	var m meeting.Meeting
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(
		&m.ID, &m.SessionID, &m.EventID, &m.Subject, &m.StartTime, &m.EndTime, &m.JoinLink, &m.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return meeting.Meeting{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetMeetingBySession"), err)
		return meeting.Meeting{}, repo.ErrFailedToGet
	}
	return m, nil
}

// DeleteMeeting removes all meeting descriptors for a session.
func (r *implRepository) DeleteMeeting(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM meetings WHERE session_id = ?`, sessionID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteMeeting"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// SetConnected upserts the session's calendar connection flag.
func (r *implRepository) SetConnected(ctx context.Context, sessionID string, connected bool) error {
	const query = `
		INSERT INTO calendar_sessions (session_id, connected, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(session_id) DO UPDATE SET connected = excluded.connected, updated_at = CURRENT_TIMESTAMP`

	flag := 0
	if connected {
		flag = 1
	}
	if _, err := r.db.ExecContext(ctx, query, sessionID, flag); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetConnected"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// IsConnected reports the session's calendar connection flag; absent
// sessions are disconnected.
func (r *implRepository) IsConnected(ctx context.Context, sessionID string) (bool, error) {
	var flag int
	err := r.db.QueryRowContext(ctx,
		`SELECT connected FROM calendar_sessions WHERE session_id = ?`, sessionID,
	).Scan(&flag)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IsConnected"), err)
		return false, repo.ErrFailedToGet
	}
	return flag == 1, nil
}
