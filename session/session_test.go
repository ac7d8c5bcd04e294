package session

import (
	"context"
	"errors"
	"testing"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/anyproto/anytype-push-shell/credstore"
	"github.com/anyproto/anytype-push-shell/credstore/mock_credstore"
	"github.com/anyproto/anytype-push-shell/domain"
	"github.com/anyproto/anytype-push-shell/transport/mock_transport"
)

var ctx = context.Background()

var (
	accA = domain.Account{Alias: "acctA", ProjectId: "project-a", Path: "acctA.firebase.json"}
	accB = domain.Account{Alias: "acctB", ProjectId: "project-b", Path: "acctB.firebase.json"}
)

func observeLog(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zap.WarnLevel)
	prev := log
	log = logger.CtxLogger{Logger: zap.New(core)}
	t.Cleanup(func() {
		log = prev
	})
	return logs
}

func TestManager_SelectDefault(t *testing.T) {
	t.Run("preferred", func(t *testing.T) {
		fx := newFixture(t, "")
		fx.credStore.EXPECT().Get("acctB").Return(accB, true)
		acc, err := fx.SelectDefault("acctB")
		require.NoError(t, err)
		assert.Equal(t, accB, acc)
	})
	t.Run("fallback to first", func(t *testing.T) {
		fx := newFixture(t, "")
		logs := observeLog(t)
		fx.credStore.EXPECT().Get("missing").Return(domain.Account{}, false)
		fx.credStore.EXPECT().First().Return(accA, true)
		acc, err := fx.SelectDefault("missing")
		require.NoError(t, err)
		assert.Equal(t, accA, acc)

		warns := logs.FilterMessage("default account not found, fallback").All()
		require.Len(t, warns, 1)
		assert.Equal(t, zap.WarnLevel, warns[0].Level)
		assert.Equal(t, map[string]any{"preferred": "missing", "account": "acctA"}, warns[0].ContextMap())
	})
	t.Run("no preference", func(t *testing.T) {
		fx := newFixture(t, "")
		logs := observeLog(t)
		fx.credStore.EXPECT().First().Return(accA, true)
		acc, err := fx.SelectDefault("")
		require.NoError(t, err)
		assert.Equal(t, accA, acc)
		assert.Zero(t, logs.Len())
	})
	t.Run("empty", func(t *testing.T) {
		fx := newFixture(t, "")
		fx.credStore.EXPECT().Get("missing").Return(domain.Account{}, false)
		fx.credStore.EXPECT().First().Return(domain.Account{}, false)
		_, err := fx.SelectDefault("missing")
		require.ErrorIs(t, err, domain.ErrNoAccountsAvailable)
	})
}

func TestManager_Run(t *testing.T) {
	t.Run("activate default", func(t *testing.T) {
		fx := newFixture(t, "acctA")
		connA := fx.startWith(t, accA)
		connA.EXPECT().Close().Return(nil)
		assert.Equal(t, "project-a", fx.CurrentProjectId())
		acc, ok := fx.Account()
		assert.True(t, ok)
		assert.Equal(t, accA, acc)
	})
	t.Run("no accounts", func(t *testing.T) {
		fx := newFixture(t, "")
		fx.credStore.EXPECT().First().Return(domain.Account{}, false)
		require.ErrorIs(t, fx.a.Start(ctx), domain.ErrNoAccountsAvailable)
	})
	t.Run("no provider", func(t *testing.T) {
		fx := newFixture(t, "acctA")
		fx.RegisterProvider(nil)
		fx.credStore.EXPECT().Get("acctA").Return(accA, true)
		require.ErrorIs(t, fx.a.Start(ctx), errNoProvider)
	})
}

func TestManager_Activate(t *testing.T) {
	t.Run("release before open", func(t *testing.T) {
		fx := newFixture(t, "acctA")
		connA := fx.startWith(t, accA)
		connB := mock_transport.NewMockConn(fx.ctrl)
		gomock.InOrder(
			connA.EXPECT().Close().Return(nil),
			fx.provider.EXPECT().Open(gomock.Any(), accB).Return(connB, nil),
			connB.EXPECT().Close().Return(nil),
		)
		require.NoError(t, fx.Activate(ctx, accB))
		assert.Equal(t, "project-b", fx.CurrentProjectId())
	})
	t.Run("close error is not fatal", func(t *testing.T) {
		fx := newFixture(t, "acctA")
		connA := fx.startWith(t, accA)
		connB := mock_transport.NewMockConn(fx.ctrl)
		connA.EXPECT().Close().Return(errors.New("close failed"))
		fx.provider.EXPECT().Open(gomock.Any(), accB).Return(connB, nil)
		connB.EXPECT().Close().Return(nil)
		require.NoError(t, fx.Activate(ctx, accB))
		assert.Equal(t, "project-b", fx.CurrentProjectId())
	})
	t.Run("open error", func(t *testing.T) {
		fx := newFixture(t, "acctA")
		connA := fx.startWith(t, accA)
		openErr := errors.New("invalid credentials")
		connA.EXPECT().Close().Return(nil)
		fx.provider.EXPECT().Open(gomock.Any(), accB).Return(nil, openErr)
		err := fx.Activate(ctx, accB)
		require.ErrorIs(t, err, openErr)
		assert.True(t, domain.IsTransportError(err))
		assert.Empty(t, fx.CurrentProjectId())
		_, ok := fx.Account()
		assert.False(t, ok)

		_, err = fx.SendMessage(ctx, domain.Message{Recipient: domain.TokenRecipient("t1")})
		require.ErrorIs(t, err, domain.ErrNoActiveSession)
	})
}

func TestManager_Switch(t *testing.T) {
	t.Run("unknown", func(t *testing.T) {
		fx := newFixture(t, "acctA")
		connA := fx.startWith(t, accA)
		connA.EXPECT().Close().Return(nil)
		fx.credStore.EXPECT().Get("ghost").Return(domain.Account{}, false)
		ok, err := fx.Switch(ctx, "ghost")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "project-a", fx.CurrentProjectId())
		assert.Equal(t, uint32(0), fx.metrics.switchCount.Load())
	})
	t.Run("by project id", func(t *testing.T) {
		fx := newFixture(t, "acctA")
		connA := fx.startWith(t, accA)
		connB := mock_transport.NewMockConn(fx.ctrl)
		fx.credStore.EXPECT().Get("project-b").Return(accB, true)
		gomock.InOrder(
			connA.EXPECT().Close().Return(nil),
			fx.provider.EXPECT().Open(gomock.Any(), accB).Return(connB, nil),
			connB.EXPECT().Close().Return(nil),
		)
		ok, err := fx.Switch(ctx, "project-b")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "project-b", fx.CurrentProjectId())
		assert.Equal(t, uint32(1), fx.metrics.switchCount.Load())
	})
}

func TestManager_SendMessage(t *testing.T) {
	msg := domain.Message{
		Recipient:    domain.TokenRecipient("t1"),
		Notification: &domain.Notification{Title: "Hi", Body: "Body"},
	}
	t.Run("success", func(t *testing.T) {
		fx := newFixture(t, "acctA")
		connA := fx.startWith(t, accA)
		connA.EXPECT().SendMessage(gomock.Any(), msg).Return("projects/project-a/messages/1", nil)
		connA.EXPECT().Close().Return(nil)
		id, err := fx.SendMessage(ctx, msg)
		require.NoError(t, err)
		assert.Equal(t, "projects/project-a/messages/1", id)
		assert.Equal(t, uint32(1), fx.metrics.sendCount.Load())
		assert.Equal(t, uint32(0), fx.metrics.sendErrors.Load())
	})
	t.Run("transport error", func(t *testing.T) {
		fx := newFixture(t, "acctA")
		connA := fx.startWith(t, accA)
		sendErr := errors.New("registration-token-not-registered")
		connA.EXPECT().SendMessage(gomock.Any(), msg).Return("", sendErr)
		connA.EXPECT().Close().Return(nil)
		_, err := fx.SendMessage(ctx, msg)
		require.ErrorIs(t, err, sendErr)
		assert.True(t, domain.IsTransportError(err))
		assert.Equal(t, sendErr.Error(), err.Error())
		assert.Equal(t, uint32(1), fx.metrics.sendErrors.Load())
	})
}

func TestManager_Registry(t *testing.T) {
	fx := newFixture(t, "acctA")
	connA := fx.startWith(t, accA)
	connA.EXPECT().Close().Return(nil)
	families, err := fx.Registry().Gather()
	require.NoError(t, err)
	var names []string
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "push_session_send_count")
	assert.Contains(t, names, "push_session_send_duration_seconds")
}

type fixture struct {
	*manager
	ctrl      *gomock.Controller
	credStore *mock_credstore.MockCredStore
	provider  *mock_transport.MockProvider
	a         *app.App
}

func newFixture(t *testing.T, defaultAccount string) *fixture {
	ctrl := gomock.NewController(t)
	fx := &fixture{
		manager:   New().(*manager),
		ctrl:      ctrl,
		credStore: mock_credstore.NewMockCredStore(ctrl),
		provider:  mock_transport.NewMockProvider(ctrl),
		a:         new(app.App),
	}
	fx.credStore.EXPECT().Name().Return(credstore.CName).AnyTimes()
	fx.credStore.EXPECT().Init(gomock.Any()).AnyTimes()
	fx.manager.credStore = fx.credStore
	fx.RegisterProvider(fx.provider)

	fx.a.Register(&testConfig{Session: Config{DefaultAccount: defaultAccount}}).
		Register(fx.credStore).
		Register(fx.manager)
	return fx
}

// startWith starts the app expecting acc to be activated as the default account.
func (fx *fixture) startWith(t *testing.T, acc domain.Account) *mock_transport.MockConn {
	conn := mock_transport.NewMockConn(fx.ctrl)
	fx.credStore.EXPECT().Get(acc.Alias).Return(acc, true)
	fx.provider.EXPECT().Open(gomock.Any(), acc).Return(conn, nil)
	require.NoError(t, fx.a.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, fx.a.Close(ctx))
	})
	return conn
}

type testConfig struct {
	Session Config
}

func (t testConfig) Init(a *app.App) (err error) {
	return
}

func (t testConfig) Name() (name string) {
	return "config"
}

func (t testConfig) GetSession() Config {
	return t.Session
}
