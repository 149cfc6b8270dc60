package models

import "sync"

type Account struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// Session holds at most one signed-in account at a time.
type Session struct {
	Mutex   sync.RWMutex
	account *Account
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Set(account *Account) {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()
	s.account = account
}

func (s *Session) Clear() {
	s.Mutex.Lock()
	defer s.Mutex.Unlock()
	s.account = nil
}

func (s *Session) Current() *Account {
	s.Mutex.RLock()
	defer s.Mutex.RUnlock()
	return s.account
}

func (s *Session) Active() bool {
	s.Mutex.RLock()
	defer s.Mutex.RUnlock()
	return s.account != nil
}
