package api

import "errors"

// Классы ошибок удаленного хранилища. Координатор синхронизации
// различает недоступность сети и отказ сервера только для логирования,
// fallback-поведение у них одно и то же.
var (
	// ErrUnavailable означает что сервер недостижим (сеть, таймаут)
	ErrUnavailable = errors.New("remote store unavailable")

	// ErrUnauthorized означает отклоненный или истекший токен
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound означает что записи нет на сервере
	ErrNotFound = errors.New("not found")

	// ErrRemote означает любой другой отказ сервера
	ErrRemote = errors.New("remote store error")
)
