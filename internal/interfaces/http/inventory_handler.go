package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/bodegas-api/internal/application/dto"
	"github.com/jhoicas/bodegas-api/internal/application/inventory"
)

// InventoryHandler maneja las cargas de inventario.
type InventoryHandler struct {
	uc           *inventory.AddStockUseCase
	defaultActor int64
	log          zerolog.Logger
}

// NewInventoryHandler construye el handler. defaultActor se usa cuando no hay token ni created_by.
func NewInventoryHandler(uc *inventory.AddStockUseCase, defaultActor int64, log zerolog.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, defaultActor: defaultActor, log: log}
}

// AddStock godoc
// @Summary      Agregar inventario
// @Description  Suma la cantidad al inventario del producto en la bodega; crea la fila si no existe.
// @Tags         inventarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "id_producto, id_bodega, cantidad, created_by (opcional)"
// @Success      201   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Failure      422   {object}  dto.Response
// @Failure      500   {object}  dto.Response
// @Router       /api/inventarios [post]
func (h *InventoryHandler) AddStock(c *fiber.Ctx) error {
	var req dto.AddStockRequest
	decodeBody(c, h.log, &req)

	actor := h.defaultActor
	if id, ok := GetActorID(c); ok {
		actor = id
		req.CreatedBy = nil
	}
	out, err := h.uc.AddStock(c.UserContext(), req.ToInput(actor))
	if err != nil {
		return respondError(c, h.log, "Error al procesar inventario", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(dto.NewInventoryResponse(out.Record), out.Message()))
}

// decodeBody decodifica el JSON del cuerpo. Un cuerpo vacío o malformado se trata como
// objeto vacío, de modo que cada campo obligatorio se reporta como faltante.
func decodeBody(c *fiber.Ctx, log zerolog.Logger, v any) {
	body := c.Body()
	if len(body) == 0 {
		return
	}
	if err := json.Unmarshal(body, v); err != nil {
		log.Debug().Err(err).Str("request_id", GetRequestID(c)).Msg("cuerpo JSON inválido")
	}
}
