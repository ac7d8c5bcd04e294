package fcm

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/anyproto/anytype-push-shell/domain"
	"github.com/anyproto/anytype-push-shell/session"
	"github.com/anyproto/anytype-push-shell/transport"
)

const CName = "push.transport.fcm"

var log = logger.NewNamed(CName)

func New() FCM {
	return new(fcm)
}

type FCM interface {
	transport.Provider
	app.Component
}

type fcm struct {
	dryRun bool
	// appended to the per-account credentials, e.g. a custom http client
	clientOpts []option.ClientOption
}

func (f *fcm) Init(a *app.App) (err error) {
	f.dryRun = a.MustComponent("config").(configSource).GetFCM().DryRun
	a.MustComponent(session.CName).(session.Manager).RegisterProvider(f)
	return
}

func (f *fcm) Name() (name string) {
	return CName
}

func (f *fcm) Open(ctx context.Context, account domain.Account) (transport.Conn, error) {
	opts := append([]option.ClientOption{option.WithCredentialsJSON(account.Credentials)}, f.clientOpts...)
	fcmApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: account.ProjectId}, opts...)
	if err != nil {
		return nil, err
	}
	client, err := fcmApp.Messaging(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug("messaging client created", zap.String("projectId", account.ProjectId), zap.Bool("dryRun", f.dryRun))
	return &fcmConn{client: client, projectId: account.ProjectId, dryRun: f.dryRun}, nil
}

type fcmConn struct {
	client    *messaging.Client
	projectId string
	dryRun    bool
}

func (c *fcmConn) SendMessage(ctx context.Context, message domain.Message) (messageId string, err error) {
	msg := buildFcmMessage(message)
	if c.dryRun {
		messageId, err = c.client.SendDryRun(ctx, msg)
	} else {
		messageId, err = c.client.Send(ctx, msg)
	}
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			log.Warn("fcm rejected recipient", zap.String("recipient", message.Recipient.String()), zap.Error(err))
		}
		return "", err
	}
	log.Info("push sent", zap.String("projectId", c.projectId), zap.String("messageId", messageId), zap.Bool("dryRun", c.dryRun))
	return
}

// Close drops the client; the Go admin SDK holds no resources that need explicit release.
func (c *fcmConn) Close() error {
	c.client = nil
	return nil
}

func buildFcmMessage(message domain.Message) *messaging.Message {
	msg := &messaging.Message{
		Data: message.Data,
	}
	switch message.Recipient.Kind {
	case domain.RecipientToken:
		msg.Token = message.Recipient.Value
	case domain.RecipientTopic:
		msg.Topic = message.Recipient.Value
	case domain.RecipientCondition:
		msg.Condition = message.Recipient.Value
	}
	if n := message.Notification; n != nil {
		msg.Notification = &messaging.Notification{
			Title:    n.Title,
			Body:     n.Body,
			ImageURL: n.ImageURL,
		}
	}
	if l := message.Locale; l != nil {
		msg.Android = &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{
				TitleLocKey:  l.TitleKey,
				TitleLocArgs: l.TitleArgs,
				BodyLocKey:   l.BodyKey,
				BodyLocArgs:  l.BodyArgs,
			},
		}
		msg.APNS = &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						TitleLocKey:  l.TitleKey,
						TitleLocArgs: l.TitleArgs,
						LocKey:       l.BodyKey,
						LocArgs:      l.BodyArgs,
					},
				},
			},
		}
	}
	return msg
}
