package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-push-shell/credstore"
	"github.com/anyproto/anytype-push-shell/domain"
	"github.com/anyproto/anytype-push-shell/transport"
)

const CName = "push.session"

var log = logger.NewNamed(CName)

var errNoProvider = errors.New("push transport is not registered")

func New() Manager {
	return new(manager)
}

// Manager owns the single active transport connection and the account it is bound to.
type Manager interface {
	RegisterProvider(p transport.Provider)
	// SelectDefault returns the account registered under preferred or falls back to the first loaded one.
	SelectDefault(preferred string) (domain.Account, error)
	// Activate releases the current connection and opens a new one for the account.
	Activate(ctx context.Context, account domain.Account) error
	// Switch activates the account registered under the alias or project id.
	// Unknown ids are reported with ok == false and leave the session untouched.
	Switch(ctx context.Context, id string) (ok bool, err error)
	CurrentProjectId() string
	Account() (account domain.Account, ok bool)
	SendMessage(ctx context.Context, message domain.Message) (messageId string, err error)
	Registry() *prometheus.Registry
	app.ComponentRunnable
}

type manager struct {
	credStore      credstore.CredStore
	provider       transport.Provider
	defaultAccount string

	conn    transport.Conn
	account domain.Account
	mu      sync.RWMutex

	registry *prometheus.Registry
	metrics  metrics
}

func (m *manager) Init(a *app.App) (err error) {
	m.credStore = a.MustComponent(credstore.CName).(credstore.CredStore)
	m.defaultAccount = a.MustComponent("config").(configSource).GetSession().DefaultAccount
	m.registry = prometheus.NewRegistry()
	registerMetrics(m.registry, &m.metrics)
	return
}

func (m *manager) Name() (name string) {
	return CName
}

func (m *manager) Run(ctx context.Context) (err error) {
	account, err := m.SelectDefault(m.defaultAccount)
	if err != nil {
		return
	}
	return m.Activate(ctx, account)
}

func (m *manager) RegisterProvider(p transport.Provider) {
	m.provider = p
}

func (m *manager) SelectDefault(preferred string) (domain.Account, error) {
	if preferred != "" {
		if account, ok := m.credStore.Get(preferred); ok {
			return account, nil
		}
	}
	account, ok := m.credStore.First()
	if !ok {
		return domain.Account{}, domain.ErrNoAccountsAvailable
	}
	if preferred != "" {
		log.Warn("default account not found, fallback", zap.String("preferred", preferred), zap.String("account", account.Alias))
	}
	return account, nil
}

func (m *manager) Activate(ctx context.Context, account domain.Account) (err error) {
	if m.provider == nil {
		return errNoProvider
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.release()
	conn, err := m.provider.Open(ctx, account)
	if err != nil {
		return fmt.Errorf("open session for '%s': %w", account.ProjectId, domain.NewTransportError("open", err))
	}
	m.conn = conn
	m.account = account
	log.Info("session activated", zap.String("account", account.Alias), zap.String("projectId", account.ProjectId))
	return nil
}

// release must be called with the write lock held.
func (m *manager) release() {
	if m.conn == nil {
		return
	}
	if err := m.conn.Close(); err != nil {
		log.Warn("close session error", zap.String("projectId", m.account.ProjectId), zap.Error(err))
	}
	m.conn = nil
	m.account = domain.Account{}
}

func (m *manager) Switch(ctx context.Context, id string) (ok bool, err error) {
	account, found := m.credStore.Get(id)
	if !found {
		log.Warn("switch to unknown account", zap.String("id", id))
		return false, nil
	}
	if err = m.Activate(ctx, account); err != nil {
		return false, err
	}
	m.metrics.switchCount.Add(1)
	return true, nil
}

func (m *manager) CurrentProjectId() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.account.ProjectId
}

func (m *manager) Account() (account domain.Account, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.account, m.conn != nil
}

func (m *manager) SendMessage(ctx context.Context, message domain.Message) (messageId string, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.conn == nil {
		return "", domain.ErrNoActiveSession
	}
	st := time.Now()
	messageId, err = m.conn.SendMessage(ctx, message)
	m.metrics.sendDuration.Observe(time.Since(st).Seconds())
	m.metrics.sendCount.Add(1)
	if err != nil {
		m.metrics.sendErrors.Add(1)
		log.Warn("send error", zap.String("recipient", message.Recipient.String()), zap.Error(err))
		return "", domain.NewTransportError("send", err)
	}
	return
}

func (m *manager) Registry() *prometheus.Registry {
	return m.registry
}

func (m *manager) Close(ctx context.Context) (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.release()
	return nil
}
