package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Response sobre común de todas las respuestas de la API.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// OK respuesta exitosa.
func OK(data any, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

// Fail respuesta de error; errors puede ser nil.
func Fail(message string, errors any) Response {
	return Response{Success: false, Message: message, Errors: errors}
}

// intField estado de un campo entero tras decodificar el cuerpo.
type intField int

const (
	intOK intField = iota
	intMissing
	intInvalid
)

// parseInt acepta números JSON enteros y strings numéricos ("5").
// null, ausente o "" cuentan como campo faltante.
func parseInt(raw json.RawMessage) (int64, intField) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, intMissing
	}
	lit := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, intInvalid
		}
		lit = strings.TrimSpace(s)
		if lit == "" {
			return 0, intMissing
		}
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return 0, intInvalid
	}
	return n, intOK
}
