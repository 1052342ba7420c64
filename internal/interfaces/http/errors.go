package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/bodegas-api/internal/application/dto"
	"github.com/jhoicas/bodegas-api/internal/domain"
)

const (
	validationMessage = "Error de validación"
	timeoutMessage    = "Tiempo de espera agotado"
)

// respondError traduce errores de dominio a la respuesta HTTP.
// ValidationError y BusinessRuleError -> 422; vencimiento del plazo -> 408; el resto -> 500 con mensaje genérico.
func respondError(c *fiber.Ctx, log zerolog.Logger, internalMsg string, err error) error {
	var (
		ve *domain.ValidationError
		be *domain.BusinessRuleError
	)
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.Fail(validationMessage, ve.Fields))
	case errors.As(err, &be):
		var details any
		if errors.Is(be, domain.ErrInsufficientStock) {
			details = fiber.Map{"disponible": be.Available, "solicitado": be.Requested}
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.Fail(be.Error(), details))
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.NewError(fiber.StatusRequestTimeout, timeoutMessage)
	}
	log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg(internalMsg)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(internalMsg, nil))
}

// ErrorHandler responde con el sobre común los errores que no manejó un handler
// (404 de ruta, 408 por timeout, pánicos recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Error interno del servidor"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	if code == fiber.StatusRequestTimeout {
		msg = timeoutMessage
	}
	return c.Status(code).JSON(dto.Fail(msg, nil))
}
