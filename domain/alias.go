package domain

type TokenAlias struct {
	Alias string
	Token string
}
