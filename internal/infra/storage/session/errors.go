package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессии с таким id нет
	ErrSessionNotFound = errors.New("session: not found")

	// ErrSessionExpired возвращается, когда сессия просрочена (удаляется при обращении)
	ErrSessionExpired = errors.New("session: expired")

	// ErrTooManySessions возвращается при достижении лимита активных сессий
	ErrTooManySessions = errors.New("session: too many active sessions")

	// ErrInvalidID возвращается для id, который не является UUID
	ErrInvalidID = errors.New("session: invalid session id")
)
