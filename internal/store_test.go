package internal

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_SessionLifecycle(t *testing.T) {
	store := newTestStore(t)

	if session, err := store.GetSession("missing"); err != nil || session != nil {
		t.Fatalf("GetSession(missing) = %v, %v; want nil, nil", session, err)
	}

	created, err := store.CreateSession("s1")
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if created.ID != "s1" {
		t.Errorf("created session id = %q", created.ID)
	}

	loaded, err := store.GetSession("s1")
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if loaded == nil || loaded.ID != "s1" {
		t.Fatalf("GetSession() = %+v", loaded)
	}
}

func TestStore_MessagesOrderedByTimestamp(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.CreateSession("s1"); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	contents := []string{"first", "second", "third"}
	for i, content := range contents {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		msg := Message{Role: role, Content: content, SessionID: "s1"}
		if err := store.CreateMessage(&msg); err != nil {
			t.Fatalf("CreateMessage(%q) error = %v", content, err)
		}
		if msg.ID == "" {
			t.Error("CreateMessage did not assign an id")
		}
		if msg.Timestamp.IsZero() {
			t.Error("CreateMessage did not assign a timestamp")
		}
	}

	messages, err := store.GetMessagesBySession("s1")
	if err != nil {
		t.Fatalf("GetMessagesBySession() error = %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(messages))
	}
	for i, content := range contents {
		if messages[i].Content != content {
			t.Errorf("message %d = %q, want %q", i, messages[i].Content, content)
		}
	}
	for i := 1; i < len(messages); i++ {
		if messages[i].Timestamp.Before(messages[i-1].Timestamp) {
			t.Errorf("messages out of order at index %d", i)
		}
	}
}

func TestStore_CitationsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.CreateSession("s1"); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	msg := Message{
		Role:      RoleAssistant,
		Content:   "See these sources.",
		Citations: []string{"https://a.edu", "https://b.org"},
		SessionID: "s1",
	}
	if err := store.CreateMessage(&msg); err != nil {
		t.Fatalf("CreateMessage() error = %v", err)
	}

	messages, err := store.GetMessagesBySession("s1")
	if err != nil {
		t.Fatalf("GetMessagesBySession() error = %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(messages))
	}
	got := messages[0].Citations
	if len(got) != 2 || got[0] != "https://a.edu" || got[1] != "https://b.org" {
		t.Errorf("citations = %v", got)
	}
}

func TestStore_ListSessions(t *testing.T) {
	store := newTestStore(t)

	for _, id := range []string{"s1", "s2"} {
		if _, err := store.CreateSession(id); err != nil {
			t.Fatalf("CreateSession(%s) error = %v", id, err)
		}
	}
	for i := 0; i < 3; i++ {
		msg := Message{Role: RoleUser, Content: "hi", SessionID: "s2"}
		if err := store.CreateMessage(&msg); err != nil {
			t.Fatalf("CreateMessage() error = %v", err)
		}
	}

	infos, err := store.ListSessions()
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("got %d sessions, want 2", len(infos))
	}
	// s2 was touched last, so it lists first
	if infos[0].ID != "s2" || infos[0].MessageCount != 3 {
		t.Errorf("first listing = %+v, want s2 with 3 messages", infos[0])
	}
	if infos[1].ID != "s1" || infos[1].MessageCount != 0 {
		t.Errorf("second listing = %+v, want s1 with 0 messages", infos[1])
	}
}

func TestStore_LoadSession(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.CreateSession("s1"); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	msg := Message{Role: RoleUser, Content: "hello", SessionID: "s1"}
	if err := store.CreateMessage(&msg); err != nil {
		t.Fatalf("CreateMessage() error = %v", err)
	}

	session, err := store.LoadSession("s1")
	if err != nil {
		t.Fatalf("LoadSession() error = %v", err)
	}
	if session == nil || len(session.Messages) != 1 || session.Messages[0].Content != "hello" {
		t.Errorf("LoadSession() = %+v", session)
	}

	if session, err := store.LoadSession("missing"); err != nil || session != nil {
		t.Errorf("LoadSession(missing) = %v, %v; want nil, nil", session, err)
	}
}
