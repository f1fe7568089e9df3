package pricingconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда rate card не найден
	ErrConfigNotFound = errors.New("pricingconfig.repository: config not found")

	// ErrDuplicateVersion возвращается при попытке вставить уже существующую версию
	ErrDuplicateVersion = errors.New("pricingconfig.repository: duplicate config version")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("pricingconfig.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pricingconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pricingconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pricingconfig.repository: failed to scan row")

	// ErrEncodePayload возвращается при ошибке сериализации каталогов в JSONB
	ErrEncodePayload = errors.New("pricingconfig.repository: failed to encode payload")

	// ErrDecodePayload возвращается при ошибке десериализации каталогов из JSONB
	ErrDecodePayload = errors.New("pricingconfig.repository: failed to decode payload")
)
