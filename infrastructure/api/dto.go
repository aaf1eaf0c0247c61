package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"tienda-live/domain"
	"tienda-live/errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// bind parses the JSON body into dto and runs its validate tags.
func bind(c *fiber.Ctx, dto any) error {
	if err := c.BodyParser(dto); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	if err := validate.Struct(dto); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	return nil
}

// storeParam reads the :tiendaId path parameter.
func storeParam(c *fiber.Ctx) (domain.StoreID, error) {
	return domain.ParseStoreID(c.Params("tiendaId"))
}

// flexID accepts identifiers sent either as JSON numbers or strings.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return err
	}
	switch v := value.(type) {
	case nil:
		*f = ""
	case string:
		*f = flexID(strings.TrimSpace(v))
	case json.Number:
		*f = flexID(v.String())
	default:
		return fmt.Errorf("identifier must be a number or a string")
	}
	return nil
}

// flexDate accepts a calendar day (2006-01-02) or a full RFC 3339 timestamp.
type flexDate struct {
	time.Time
}

func (d *flexDate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", raw)
}

func (d *flexDate) ptr() *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

type OrderItemRequest struct {
	ProductID flexID          `json:"producto_id" validate:"required"`
	VariantID flexID          `json:"variante_id"`
	Quantity  int             `json:"cantidad" validate:"gt=0"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Notes     string          `json:"notas" validate:"max=500"`
}

type CreateOrderRequest struct {
	StoreID         flexID             `json:"tienda_id" validate:"required,excludes=:"`
	CustomerName    string             `json:"cliente_nombre" validate:"required,max=200"`
	CustomerPhone   string             `json:"cliente_telefono" validate:"max=50,excludes=:"`
	CustomerAddress string             `json:"cliente_direccion" validate:"max=500"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DiscountCode    string             `json:"codigo_descuento" validate:"max=50"`
	Notes           string             `json:"notas" validate:"max=1000"`
	PaymentMethod   string             `json:"metodo_pago" validate:"max=50"`
}

func (r CreateOrderRequest) toItems() []domain.OrderItem {
	return lo.Map(r.Items, func(item OrderItemRequest, _ int) domain.OrderItem {
		return domain.OrderItem{
			ProductID: string(item.ProductID),
			VariantID: string(item.VariantID),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Notes:     item.Notes,
		}
	})
}

type UpdateStatusRequest struct {
	Status string `json:"estado" validate:"required"`
}

type NotifyRequest struct {
	Kind    string `json:"tipo" validate:"max=50"`
	Message string `json:"mensaje" validate:"max=1000"`
}

type PromotionRequest struct {
	StoreID            flexID           `json:"tienda_id" validate:"required,excludes=:"`
	Title              string           `json:"titulo" validate:"required,max=200"`
	Description        string           `json:"descripcion"`
	Type               string           `json:"tipo" validate:"max=50"`
	Code               string           `json:"codigo_descuento" validate:"max=50"`
	Percentage         *decimal.Decimal `json:"descuento_porcentaje"`
	Amount             *decimal.Decimal `json:"descuento_monto"`
	ApplicableProducts []string         `json:"productos_aplicables"`
	Priority           int              `json:"prioridad"`
	Active             *bool            `json:"activo"`
	StartsAt           *flexDate        `json:"fecha_inicio"`
	EndsAt             *flexDate        `json:"fecha_fin"`
	UsageCap           *int             `json:"limite_uso" validate:"omitempty,gte=0"`
	PerCustomerCap     *int             `json:"limite_por_cliente" validate:"omitempty,gte=0"`
}

func (r PromotionRequest) toDomain() domain.Promotion {
	return domain.Promotion{
		StoreID:            domain.StoreID(r.StoreID),
		Title:              r.Title,
		Description:        r.Description,
		Type:               r.Type,
		Code:               r.Code,
		Percentage:         r.Percentage,
		Amount:             r.Amount,
		ApplicableProducts: r.ApplicableProducts,
		Priority:           r.Priority,
		Active:             r.Active == nil || *r.Active,
		StartsAt:           r.StartsAt.ptr(),
		EndsAt:             r.EndsAt.ptr(),
		UsageCap:           r.UsageCap,
		PerCustomerCap:     r.PerCustomerCap,
	}
}

type PromotionPatchRequest struct {
	Title              *string          `json:"titulo" validate:"omitempty,max=200"`
	Description        *string          `json:"descripcion"`
	Type               *string          `json:"tipo" validate:"omitempty,max=50"`
	Code               *string          `json:"codigo_descuento" validate:"omitempty,max=50"`
	Percentage         *decimal.Decimal `json:"descuento_porcentaje"`
	Amount             *decimal.Decimal `json:"descuento_monto"`
	ApplicableProducts []string         `json:"productos_aplicables"`
	Priority           *int             `json:"prioridad"`
	Active             *bool            `json:"activo"`
	StartsAt           *flexDate        `json:"fecha_inicio"`
	EndsAt             *flexDate        `json:"fecha_fin"`
	UsageCap           *int             `json:"limite_uso" validate:"omitempty,gte=0"`
	PerCustomerCap     *int             `json:"limite_por_cliente" validate:"omitempty,gte=0"`
}

type ValidateCodeRequest struct {
	Code          string `json:"codigo" validate:"required,max=50"`
	StoreID       flexID `json:"tienda_id" validate:"required,excludes=:"`
	CustomerPhone string `json:"cliente_telefono" validate:"max=50,excludes=:"`
}

type RedeemCodeRequest struct {
	PromotionID     flexID          `json:"evento_id" validate:"required"`
	OrderID         flexID          `json:"orden_id"`
	CustomerPhone   string          `json:"cliente_telefono" validate:"max=50,excludes=:"`
	Code            string          `json:"codigo_usado" validate:"required,max=50"`
	DiscountApplied decimal.Decimal `json:"descuento_aplicado"`
}

type ReviewRequest struct {
	StoreID       flexID `json:"tienda_id" validate:"required,excludes=:"`
	CustomerName  string `json:"cliente_nombre" validate:"max=200"`
	CustomerPhone string `json:"cliente_telefono" validate:"max=50,excludes=:"`
	Comment       string `json:"comentario" validate:"required,max=2000"`
	Rating        *int   `json:"calificacion"`
}
