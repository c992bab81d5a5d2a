package domain

const (
	CollectionUser = "users"
)
