package projects

import "errors"

var (
	// ErrProjectNotFound возвращается, когда проект не найден
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidStage возвращается при попытке установить неизвестную стадию
	ErrInvalidStage = errors.New("invalid project stage")

	// ErrStageMoveBackward возвращается при попытке перевести проект на более раннюю стадию
	ErrStageMoveBackward = errors.New("project stage can only move forward")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
