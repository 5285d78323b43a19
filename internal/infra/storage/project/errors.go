package project

import "errors"

var (
	// ErrProjectNotFound возвращается, когда проект не найден
	ErrProjectNotFound = errors.New("project.repository: project not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("project.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("project.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("project.repository: failed to scan row")
)
