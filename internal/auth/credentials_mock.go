package auth

import (
	"context"
	"errors"
	"sync"
	"time"
)

var errStoreUnavailable = errors.New("storage unavailable")

// credentialStoreMock is an in-memory credential store for unit tests.
// Each call locks separately, the same way the real store serializes
// single statements but nothing across them.
type credentialStoreMock struct {
	mutex   sync.Mutex
	record  *Credential
	ensures int
	failing bool
}

func NewCredentialStoreMock() *credentialStoreMock {
	return &credentialStoreMock{}
}

func (m *credentialStoreMock) SetFailing(failing bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.failing = failing
}

func (m *credentialStoreMock) Get(_ context.Context) (*Credential, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.failing {
		return nil, errStoreUnavailable
	}
	if m.record == nil {
		return nil, ErrCredentialNotFound
	}
	recordCopy := *m.record
	return &recordCopy, nil
}

func (m *credentialStoreMock) Ensure(_ context.Context) (*Credential, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.failing {
		return nil, errStoreUnavailable
	}

	m.ensures++
	if m.record == nil {
		m.record = &Credential{
			Password:    DefaultPassword,
			LastUpdated: time.Now(),
		}
	}

	recordCopy := *m.record
	return &recordCopy, nil
}

func (m *credentialStoreMock) Update(_ context.Context, newPassword string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.failing {
		return errStoreUnavailable
	}
	if newPassword == "" {
		return ErrPasswordEmpty
	}
	if m.record == nil {
		return ErrCredentialNotFound
	}

	m.record.Password = newPassword
	m.record.LastUpdated = time.Now()
	return nil
}
