package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Reglas de negocio del motor de traslados.
var (
	ErrSameWarehouse     = errors.New("La bodega origen y destino no pueden ser la misma")
	ErrNoSourceInventory = errors.New("No existe inventario del producto en la bodega de origen")
	ErrInsufficientStock = errors.New("Cantidad insuficiente")
)

// ValidationError agrupa errores de entrada por campo (formato, rango o referencia inexistente).
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError crea un error de validación vacío.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

// Add registra un mensaje para el campo.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// Has indica si el campo ya tiene algún error.
func (e *ValidationError) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

// Merge copia los errores de other.
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	for field, msgs := range other.Fields {
		for _, m := range msgs {
			e.Add(field, m)
		}
	}
}

// OrNil devuelve nil si no hay errores registrados.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validación: " + strings.Join(fields, ", ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// BusinessRuleError violación de una regla de negocio (traslado a la misma bodega,
// sin inventario de origen o cantidad insuficiente).
// Available y Requested solo aplican a ErrInsufficientStock.
type BusinessRuleError struct {
	Err       error
	Available int64
	Requested int64
}

// NewInsufficientStockError construye el error con los valores disponible y solicitado.
func NewInsufficientStockError(available, requested int64) *BusinessRuleError {
	return &BusinessRuleError{Err: ErrInsufficientStock, Available: available, Requested: requested}
}

func (e *BusinessRuleError) Error() string {
	if errors.Is(e.Err, ErrInsufficientStock) {
		return fmt.Sprintf("%s. Disponible: %d, Solicitado: %d", e.Err.Error(), e.Available, e.Requested)
	}
	return e.Err.Error()
}

func (e *BusinessRuleError) Unwrap() error { return e.Err }

// StorageError falla de persistencia (conexión, transacción, commit). Nunca se reintenta.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

// AsStorage envuelve err como StorageError salvo que ya sea un error de dominio.
func AsStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		ve *ValidationError
		be *BusinessRuleError
		se *StorageError
	)
	if errors.As(err, &ve) || errors.As(err, &be) || errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
