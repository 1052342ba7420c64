package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/bodegas-api/internal/application/dto"
	"github.com/jhoicas/bodegas-api/internal/application/inventory"
)

// TransferHandler maneja los traslados entre bodegas.
type TransferHandler struct {
	uc           *inventory.TransferUseCase
	defaultActor int64
	log          zerolog.Logger
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *inventory.TransferUseCase, defaultActor int64, log zerolog.Logger) *TransferHandler {
	return &TransferHandler{uc: uc, defaultActor: defaultActor, log: log}
}

// Transfer godoc
// @Summary      Trasladar producto entre bodegas
// @Tags         traslados
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "id_producto, id_bodega_origen, id_bodega_destino, cantidad, created_by (opcional)"
// @Success      201   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Failure      422   {object}  dto.Response
// @Failure      500   {object}  dto.Response
// @Router       /api/traslados [post]
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	var req dto.TransferRequest
	decodeBody(c, h.log, &req)

	actor := h.defaultActor
	if id, ok := GetActorID(c); ok {
		actor = id
		req.CreatedBy = nil
	}
	out, err := h.uc.Transfer(c.UserContext(), req.ToInput(actor))
	if err != nil {
		return respondError(c, h.log, "Error al realizar traslado", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(dto.NewTransferResponse(out), out.Message()))
}
