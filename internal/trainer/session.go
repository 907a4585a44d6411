// internal/trainer/session.go
package trainer

import (
	"sync"
	"time"

	"go_ear_training/internal/model"

	"github.com/google/uuid"
)

// Session は進行中のトレーニングセッションの状態です
type Session struct {
	SessionID    uuid.UUID
	UserID       uuid.UUID
	ExerciseType model.ExerciseType
	Difficulty   model.Difficulty
	Quota        int
	StartedAt    time.Time
	Recorder     Recorder
}

// SessionManager は進行中セッションをメモリ上で管理します。
// 永続化はセッション完了時に初めて行われる (それまでの状態はプロセスローカル)。
type SessionManager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
}

func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
	}
}

// Start は新しいセッションを開始し、セッションIDを採番して返します。
// このIDが完了時の送信の冪等キーになる。
func (m *SessionManager) Start(userID uuid.UUID, exType model.ExerciseType, difficulty model.Difficulty, quota int) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked()

	s := &Session{
		SessionID:    uuid.New(),
		UserID:       userID,
		ExerciseType: exType,
		Difficulty:   difficulty,
		Quota:        quota,
		StartedAt:    time.Now(),
	}
	m.sessions[s.SessionID] = s
	return s
}

// RecordAnswer は指定セッションに1問分の回答結果を加算します
func (m *SessionManager) RecordAnswer(sessionID, userID uuid.UUID, isCorrect bool) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, model.ErrNotFound
	}
	if s.UserID != userID {
		// 他ユーザーのセッションには触れさせない
		return nil, model.ErrForbidden
	}

	s.Recorder.RecordAnswer(isCorrect)
	return s, nil
}

// Get は指定セッションを返します (存在・所有チェック付き)
func (m *SessionManager) Get(sessionID, userID uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, model.ErrNotFound
	}
	if s.UserID != userID {
		return nil, model.ErrForbidden
	}
	return s, nil
}

// Complete はセッションをマネージャから取り除き、最終状態を返します。
// 永続化 (ProgressService への送信) は呼び出し側の責務。送信が失敗した場合に
// 再送できるよう、取り除くのは呼び出し側が成功を確認してからにしたいケースでは
// Get → 送信成功 → Complete の順で呼ぶ。
func (m *SessionManager) Complete(sessionID, userID uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, model.ErrNotFound
	}
	if s.UserID != userID {
		return nil, model.ErrForbidden
	}

	delete(m.sessions, sessionID)
	return s, nil
}

// pruneLocked はTTLを超えた放置セッションを破棄します (呼び出し元がロック保持)
func (m *SessionManager) pruneLocked() {
	if m.ttl <= 0 {
		return
	}
	cutoff := time.Now().Add(-m.ttl)
	for id, s := range m.sessions {
		if s.StartedAt.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
