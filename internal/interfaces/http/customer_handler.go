package http

import (
	"github.com/gofiber/fiber/v2"

	appcustomer "github.com/jhoicas/crm-api/internal/application/customer"
	"github.com/jhoicas/crm-api/internal/application/dto"
)

// CustomerHandler maneja las peticiones HTTP de clientes (rutas protegidas).
// La identidad del propietario siempre sale del middleware de auth, nunca del body.
type CustomerHandler struct {
	uc *appcustomer.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *appcustomer.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCustomerRequest  true  "name, email, phone, address, notes"
// @Success      201   {object}  dto.Response{data=dto.CustomerResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	user := GetCurrentUser(c)
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	customer, err := h.uc.Create(c.Context(), user.ID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("cliente creado", customer))
}

// List godoc
// @Summary      Listar/buscar clientes del usuario
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        search  query  string  false  "substring en name o email, case-insensitive"
// @Success      200  {object}  dto.Response{data=[]dto.CustomerResponse}
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	user := GetCurrentUser(c)
	list, err := h.uc.Search(c.Context(), user.ID, c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", list))
}

// Get GET /api/customers/:id
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	user := GetCurrentUser(c)
	customer, err := h.uc.Get(c.Context(), user.ID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("", customer))
}

// Update PUT /api/customers/:id — actualización parcial: solo los campos
// presentes en el body se aplican.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	user := GetCurrentUser(c)
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	customer, err := h.uc.Update(c.Context(), user.ID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("cliente actualizado", customer))
}

// Delete DELETE /api/customers/:id — borrado permanente.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	user := GetCurrentUser(c)
	if err := h.uc.Delete(c.Context(), user.ID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Response{Success: true, Message: "cliente eliminado"})
}
