//go:generate mockgen -destination mock_credstore/mock_credstore.go github.com/anyproto/anytype-push-shell/credstore CredStore

package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-push-shell/domain"
)

const CName = "push.credstore"

var log = logger.NewNamed(CName)

var errIncompleteCredentials = errors.New("credentials must contain project_id, client_email and private_key")

func New() CredStore {
	return new(credStore)
}

type CredStore interface {
	Get(key string) (domain.Account, bool)
	Keys() []string
	Accounts() []domain.Account
	First() (domain.Account, bool)
	app.Component
}

type credStore struct {
	index *Index
}

func (c *credStore) Init(a *app.App) (err error) {
	conf := a.MustComponent("config").(configSource).GetCredentials().withDefaults()
	if c.index, err = Load(conf.Dir, conf.Suffix); err != nil {
		return
	}
	log.Info("credentials loaded", zap.Int("accounts", len(c.index.Accounts())), zap.String("dir", conf.Dir))
	return
}

func (c *credStore) Name() (name string) {
	return CName
}

func (c *credStore) Get(key string) (domain.Account, bool) {
	return c.index.Get(key)
}

func (c *credStore) Keys() []string {
	return c.index.Keys()
}

func (c *credStore) Accounts() []domain.Account {
	return c.index.Accounts()
}

func (c *credStore) First() (domain.Account, bool) {
	return c.index.First()
}

// Load scans root for credential files ending with suffix. Files that can't be
// parsed are skipped; finding no usable file at all is an error.
func Load(root, suffix string) (*Index, error) {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	idx := NewIndex()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Warn("skip unreadable path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), suffix) || !isRegularFile(path, d) {
			return nil
		}
		alias := strings.TrimSuffix(d.Name(), suffix)
		if alias == "" {
			log.Warn("skip credentials without alias", zap.String("path", path))
			return nil
		}
		acc, pErr := readAccount(path, alias)
		if pErr != nil {
			log.Warn("skip invalid credentials", zap.String("path", path), zap.Error(pErr))
			return nil
		}
		for _, key := range idx.Add(acc) {
			log.Warn("credential key collision, later file wins", zap.String("key", key), zap.String("path", path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan credentials: %w", err)
	}
	if idx.Len() == 0 {
		return nil, fmt.Errorf("%w: no valid *%s files under %s", domain.ErrNoAccountsAvailable, suffix, root)
	}
	return idx, nil
}

// isRegularFile accepts regular files and symlinks resolving to one.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		log.Warn("skip unresolvable credentials link", zap.String("path", path), zap.Error(err))
		return false
	}
	if !info.Mode().IsRegular() {
		log.Warn("skip credentials link to non-regular file", zap.String("path", path))
		return false
	}
	return true
}

type serviceAccount struct {
	ProjectId   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

func readAccount(path, alias string) (acc domain.Account, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var sa serviceAccount
	if err = json.Unmarshal(data, &sa); err != nil {
		return
	}
	if sa.ProjectId == "" || sa.ClientEmail == "" || sa.PrivateKey == "" {
		err = errIncompleteCredentials
		return
	}
	return domain.Account{
		Alias:       alias,
		ProjectId:   sa.ProjectId,
		ClientEmail: sa.ClientEmail,
		PrivateKey:  sa.PrivateKey,
		Path:        path,
		Credentials: data,
	}, nil
}
