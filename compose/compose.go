// Package compose builds one push message through a chain of calls and hands
// it to a sender.
//
// Builder is a value: every call returns a new Builder and never modifies the
// receiver, so a partially configured chain can be reused safely.
package compose

import (
	"context"
	"maps"

	"github.com/anyproto/anytype-push-shell/domain"
)

type Sender interface {
	SendMessage(ctx context.Context, message domain.Message) (messageId string, err error)
}

type AliasResolver interface {
	Resolve(alias string) (token string, err error)
}

// Builder accumulates recipient, content and data of a message. The first
// error met in the chain is kept and returned by Message and Send.
type Builder struct {
	sender   Sender
	resolver AliasResolver
	msg      domain.Message
	err      error
}

func New(sender Sender, resolver AliasResolver) Builder {
	return Builder{sender: sender, resolver: resolver}
}

// Test builds the canned notification used to check that a device token works.
func Test(sender Sender, token string) Builder {
	return New(sender, nil).ToToken(token).SetNotification("Test Title", "Test Body", "")
}

func (b Builder) To(recipient domain.Recipient) Builder {
	b.msg.Recipient = recipient
	return b
}

func (b Builder) ToToken(token string) Builder {
	return b.To(domain.TokenRecipient(token))
}

func (b Builder) ToAlias(alias string) Builder {
	if b.err != nil {
		return b
	}
	if b.resolver == nil {
		b.err = domain.ErrAliasNotFound
		return b
	}
	token, err := b.resolver.Resolve(alias)
	if err != nil {
		b.err = err
		return b
	}
	return b.ToToken(token)
}

func (b Builder) ToTopic(topic string) Builder {
	return b.To(domain.TopicRecipient(topic))
}

func (b Builder) ToCondition(condition string) Builder {
	return b.To(domain.ConditionRecipient(condition))
}

// SetNotification replaces any localized content.
func (b Builder) SetNotification(title, body, imageURL string) Builder {
	b.msg.Notification = &domain.Notification{Title: title, Body: body, ImageURL: imageURL}
	b.msg.Locale = nil
	return b
}

// SetLocaleData replaces any literal notification content.
func (b Builder) SetLocaleData(locale domain.LocaleContent) Builder {
	b.msg.Locale = &domain.LocaleContent{
		TitleKey:  locale.TitleKey,
		TitleArgs: append([]string(nil), locale.TitleArgs...),
		BodyKey:   locale.BodyKey,
		BodyArgs:  append([]string(nil), locale.BodyArgs...),
	}
	b.msg.Notification = nil
	return b
}

func (b Builder) AddData(key, value string) Builder {
	data := make(map[string]string, len(b.msg.Data)+1)
	maps.Copy(data, b.msg.Data)
	data[key] = value
	b.msg.Data = data
	return b
}

// SetData replaces the whole data payload. A nil or empty map clears it.
func (b Builder) SetData(data map[string]string) Builder {
	if len(data) == 0 {
		b.msg.Data = nil
	} else {
		b.msg.Data = maps.Clone(data)
	}
	return b
}

func (b Builder) Err() error {
	return b.err
}

func (b Builder) Message() (domain.Message, error) {
	if b.err != nil {
		return domain.Message{}, b.err
	}
	if !b.msg.Recipient.IsSet() {
		return domain.Message{}, domain.ErrNoRecipient
	}
	return b.msg, nil
}

func (b Builder) Send(ctx context.Context) (messageId string, err error) {
	msg, err := b.Message()
	if err != nil {
		return
	}
	return b.sender.SendMessage(ctx, msg)
}
