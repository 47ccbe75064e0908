package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrMissingColumn       = errors.New("columna requerida ausente")
	ErrDatasetUnreadable   = errors.New("archivo de movimientos no disponible")
	ErrUnsupportedEncoding = errors.New("codificación de texto no soportada")
)
