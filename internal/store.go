package internal

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Store persists sessions and messages in SQLite
type Store struct {
	db *sql.DB
}

// NewStore opens the database at path and prepares the schema
func NewStore(path string) (*Store, error) {
	db, err := OpenDatabase(path)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateSession creates a session with the given (client-supplied) id
func (s *Store) CreateSession(id string) (*Session, error) {
	now := time.Now().UTC()
	_, err := s.db.Exec("INSERT INTO sessions (id, created_at, updated_at) VALUES (?, ?, ?)", id, now, now)
	if err != nil {
		return nil, &StorageError{Op: "insert", Err: err}
	}
	return &Session{ID: id, CreatedAt: now, UpdatedAt: now}, nil
}

// GetSession returns the session with the given id, or nil if absent
func (s *Store) GetSession(id string) (*Session, error) {
	var session Session
	err := s.db.QueryRow("SELECT id, created_at, updated_at FROM sessions WHERE id = ?", id).
		Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, &StorageError{Op: "query", Err: err}
	}
	return &session, nil
}

// ListSessions returns all sessions with their message counts, newest first
func (s *Store) ListSessions() ([]SessionInfo, error) {
	rows, err := s.db.Query(`
		SELECT s.id, s.created_at, s.updated_at, COUNT(m.id)
		FROM sessions s LEFT JOIN messages m ON m.session_id = s.id
		GROUP BY s.id ORDER BY s.updated_at DESC`)
	if err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}
	defer rows.Close()

	var infos []SessionInfo
	for rows.Next() {
		var info SessionInfo
		if err := rows.Scan(&info.ID, &info.CreatedAt, &info.UpdatedAt, &info.MessageCount); err != nil {
			return nil, &StorageError{Op: "scan", Err: err}
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}
	return infos, nil
}

// CreateMessage persists a message, assigning its id and timestamp, and
// touches the owning session
func (s *Store) CreateMessage(msg *Message) error {
	msg.ID = uuid.NewString()
	msg.Timestamp = time.Now().UTC()

	var citations sql.NullString
	if len(msg.Citations) > 0 {
		raw, err := json.Marshal(msg.Citations)
		if err != nil {
			return &StorageError{Op: "insert", Err: err}
		}
		citations = sql.NullString{String: string(raw), Valid: true}
	}

	_, err := s.db.Exec(
		"INSERT INTO messages (id, session_id, role, content, citations, timestamp) VALUES (?, ?, ?, ?, ?, ?)",
		msg.ID, msg.SessionID, msg.Role, msg.Content, citations, msg.Timestamp)
	if err != nil {
		return &StorageError{Op: "insert", Err: err}
	}

	_, err = s.db.Exec("UPDATE sessions SET updated_at = ? WHERE id = ?", msg.Timestamp, msg.SessionID)
	if err != nil {
		return &StorageError{Op: "insert", Err: err}
	}
	return nil
}

// GetMessagesBySession returns a session's messages ascending by timestamp
func (s *Store) GetMessagesBySession(sessionID string) ([]Message, error) {
	rows, err := s.db.Query(
		"SELECT id, session_id, role, content, citations, timestamp FROM messages WHERE session_id = ? ORDER BY timestamp ASC",
		sessionID)
	if err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var msg Message
		var citations sql.NullString
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Content, &citations, &msg.Timestamp); err != nil {
			return nil, &StorageError{Op: "scan", Err: err}
		}
		if citations.Valid && citations.String != "" {
			if err := json.Unmarshal([]byte(citations.String), &msg.Citations); err != nil {
				// A corrupt citations blob should not hide the message itself
				LogWarn("Failed to parse citations for message %s: %v", msg.ID, err)
			}
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}
	return messages, nil
}

// LoadSession returns the session with its full ordered message history
func (s *Store) LoadSession(id string) (*Session, error) {
	session, err := s.GetSession(id)
	if err != nil || session == nil {
		return session, err
	}
	messages, err := s.GetMessagesBySession(id)
	if err != nil {
		return nil, err
	}
	session.Messages = messages
	return session, nil
}
