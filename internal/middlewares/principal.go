package middlewares

//go:generate mockgen -source=principal.go -destination=../mocks/principal.go -package=mocks

type Principal interface {
	GetID() string
	GetUsername() string
	GetEmail() string
	GetRole() string
	GetDisplayName() string
	IsAdmin() bool
}
