package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicRecipient(t *testing.T) {
	assert.Equal(t, "news", TopicRecipient("/topics/news").Value)
	assert.Equal(t, "news", TopicRecipient("news").Value)
	assert.Equal(t, RecipientTopic, TopicRecipient("news").Kind)
}

func TestRecipient_IsSet(t *testing.T) {
	assert.False(t, Recipient{}.IsSet())
	assert.False(t, TokenRecipient("").IsSet())
	assert.True(t, ConditionRecipient("'a' in topics").IsSet())
}

func TestAccount_Keys(t *testing.T) {
	assert.Equal(t, []string{"prod", "prod-project"}, Account{Alias: "prod", ProjectId: "prod-project"}.Keys())
	assert.Equal(t, []string{"same"}, Account{Alias: "same", ProjectId: "same"}.Keys())
}

func TestTransportError(t *testing.T) {
	cause := errors.New("registration-token-not-registered")
	err := fmt.Errorf("send: %w", NewTransportError("send", cause))
	assert.True(t, IsTransportError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "send: registration-token-not-registered", err.Error())
	assert.Nil(t, NewTransportError("send", nil))
	assert.False(t, IsTransportError(ErrAliasNotFound))
}
