package domain

import "strings"

type RecipientKind uint8

const (
	RecipientNone RecipientKind = iota
	RecipientToken
	RecipientTopic
	RecipientCondition
)

func (k RecipientKind) String() string {
	switch k {
	case RecipientToken:
		return "token"
	case RecipientTopic:
		return "topic"
	case RecipientCondition:
		return "condition"
	default:
		return "none"
	}
}

type Recipient struct {
	Kind  RecipientKind
	Value string
}

func TokenRecipient(token string) Recipient {
	return Recipient{Kind: RecipientToken, Value: token}
}

// TopicRecipient accepts both bare names and the "/topics/" prefixed form.
func TopicRecipient(topic string) Recipient {
	return Recipient{Kind: RecipientTopic, Value: strings.TrimPrefix(topic, "/topics/")}
}

func ConditionRecipient(condition string) Recipient {
	return Recipient{Kind: RecipientCondition, Value: condition}
}

func (r Recipient) IsSet() bool {
	return r.Kind != RecipientNone && r.Value != ""
}

func (r Recipient) String() string {
	return r.Kind.String() + ":" + r.Value
}

type Notification struct {
	Title    string
	Body     string
	ImageURL string
}

// LocaleContent is notification text expressed as client-side string keys plus format arguments.
type LocaleContent struct {
	TitleKey  string
	TitleArgs []string
	BodyKey   string
	BodyArgs  []string
}

// Message is one outbound push. Notification and Locale are mutually exclusive.
type Message struct {
	Recipient    Recipient
	Notification *Notification
	Locale       *LocaleContent
	Data         map[string]string
}
