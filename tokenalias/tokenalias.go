package tokenalias

import (
	"fmt"
	"sort"
	"sync"

	"github.com/anyproto/any-sync/app"

	"github.com/anyproto/anytype-push-shell/domain"
)

const CName = "push.tokenalias"

func New() Registry {
	return new(registry)
}

// Registry maps short names to raw device tokens. Entries live in memory only.
type Registry interface {
	Set(alias, token string) error
	Resolve(alias string) (token string, err error)
	Remove(alias string) error
	List() []domain.TokenAlias
	app.Component
}

type registry struct {
	tokens map[string]string
	mu     sync.RWMutex
}

func (r *registry) Init(a *app.App) (err error) {
	r.tokens = make(map[string]string)
	return
}

func (r *registry) Name() (name string) {
	return CName
}

func (r *registry) Set(alias, token string) error {
	if alias == "" || token == "" {
		return domain.ErrInvalidAlias
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[alias] = token
	return nil
}

func (r *registry) Resolve(alias string) (token string, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	token, ok := r.tokens[alias]
	if !ok {
		return "", fmt.Errorf("%w: '%s'", domain.ErrAliasNotFound, alias)
	}
	return token, nil
}

func (r *registry) Remove(alias string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[alias]; !ok {
		return fmt.Errorf("%w: '%s'", domain.ErrAliasNotFound, alias)
	}
	delete(r.tokens, alias)
	return nil
}

func (r *registry) List() []domain.TokenAlias {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]domain.TokenAlias, 0, len(r.tokens))
	for alias, token := range r.tokens {
		res = append(res, domain.TokenAlias{Alias: alias, Token: token})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Alias < res[j].Alias
	})
	return res
}
