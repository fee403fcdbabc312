package services

import (
	"sync"

	"github.com/google/uuid"
)

type Tokens struct {
	names  map[string]string // [token]name
	namesM sync.RWMutex
}

func NewTokens() *Tokens {
	return &Tokens{names: make(map[string]string)}
}

func (t *Tokens) MakeToken(name string) (token string, err error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	token = id.String()

	t.namesM.Lock()
	t.names[token] = name
	t.namesM.Unlock()

	return token, nil
}

func (t *Tokens) NameFromToken(token string) (name string, err error) {
	t.namesM.RLock()
	defer t.namesM.RUnlock()

	name, ok := t.names[token]
	if !ok {
		return "", ErrUnauthorized
	}

	return name, nil
}

func (t *Tokens) DeleteToken(token string) error {
	t.namesM.Lock()
	defer t.namesM.Unlock()

	if _, ok := t.names[token]; !ok {
		return ErrUnauthorized
	}
	delete(t.names, token)

	return nil
}
