package credstore

import (
	"github.com/anyproto/anytype-push-shell/domain"
)

// Index maps aliases and project ids to accounts, remembering insertion order.
type Index struct {
	byKey    map[string]domain.Account
	keys     []string
	accounts []domain.Account
}

func NewIndex() *Index {
	return &Index{byKey: make(map[string]domain.Account)}
}

// Add registers the account under all its keys. It returns the keys that were
// already bound to another account; those are overwritten.
func (idx *Index) Add(acc domain.Account) (collisions []string) {
	for _, key := range acc.Keys() {
		prev, exists := idx.byKey[key]
		if !exists {
			idx.keys = append(idx.keys, key)
		} else if prev.Path != acc.Path {
			collisions = append(collisions, key)
		}
		idx.byKey[key] = acc
	}
	idx.accounts = append(idx.accounts, acc)
	return
}

func (idx *Index) Get(key string) (domain.Account, bool) {
	acc, ok := idx.byKey[key]
	return acc, ok
}

// Keys returns every registered key in insertion order.
func (idx *Index) Keys() []string {
	return append([]string(nil), idx.keys...)
}

// Accounts returns loaded accounts in scan order.
func (idx *Index) Accounts() []domain.Account {
	return append([]domain.Account(nil), idx.accounts...)
}

// First returns the account bound to the first-inserted key.
func (idx *Index) First() (domain.Account, bool) {
	if len(idx.keys) == 0 {
		return domain.Account{}, false
	}
	return idx.Get(idx.keys[0])
}

func (idx *Index) Len() int {
	return len(idx.byKey)
}
