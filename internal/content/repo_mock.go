package content

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

var errSectionStoreUnavailable = errors.New("section store unavailable")

type repoMock struct {
	mutex    sync.Mutex
	sections map[string]json.RawMessage
	failing  bool
}

func NewMockSectionsRepo() *repoMock {
	return &repoMock{
		sections: make(map[string]json.RawMessage),
	}
}

func (r *repoMock) SetFailing(failing bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.failing = failing
}

func (r *repoMock) Get(_ context.Context, name string) (json.RawMessage, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.failing {
		return nil, errSectionStoreUnavailable
	}

	doc, ok := r.sections[name]
	if !ok {
		return nil, ErrSectionNotFound
	}
	return doc, nil
}

func (r *repoMock) Upsert(_ context.Context, name string, doc json.RawMessage) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.failing {
		return errSectionStoreUnavailable
	}

	r.sections[name] = doc
	return nil
}
