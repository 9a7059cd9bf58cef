package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InsertContactMessage records a contact-form submission under a new UUID.
func (db *DB) InsertContactMessage(name, email, message string) (*ContactMessage, error) {
	msg := &ContactMessage{
		ID:         uuid.NewString(),
		ReceivedAt: time.Now().UTC().Truncate(time.Second),
		Name:       name,
		Email:      email,
		Message:    message,
	}
	_, err := db.conn.Exec(
		"INSERT INTO contact_messages (id, received_at, name, email, message) VALUES (?, ?, ?, ?, ?)",
		msg.ID, msg.ReceivedAt.Format(time.RFC3339), msg.Name, msg.Email, msg.Message,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting contact message: %w", err)
	}
	return msg, nil
}

// ListContactMessages returns up to limit submissions, newest first.
func (db *DB) ListContactMessages(limit int) ([]ContactMessage, error) {
	rows, err := db.conn.Query(
		"SELECT id, received_at, name, email, message FROM contact_messages ORDER BY received_at DESC, rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []ContactMessage
	for rows.Next() {
		var m ContactMessage
		var receivedAt string
		if err := rows.Scan(&m.ID, &receivedAt, &m.Name, &m.Email, &m.Message); err != nil {
			return nil, err
		}
		m.ReceivedAt, _ = time.Parse(time.RFC3339, receivedAt)
		out = append(out, m)
	}
	return out, rows.Err()
}
