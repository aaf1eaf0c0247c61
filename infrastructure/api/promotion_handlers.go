package api

import (
	"strconv"
	"tienda-live/domain"
	"tienda-live/services"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) listPromotions(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	storeID, err := storeParam(c)
	if err != nil {
		return err
	}
	promotions, err := s.deps.Promotions.List(c.UserContext(), storeID, services.PromotionFilter{
		ActiveOnly: c.Query("activos") == "1",
		Type:       c.Query("tipo"),
		Limit:      limit,
	})
	if err != nil {
		return err
	}
	if promotions == nil {
		promotions = []domain.Promotion{}
	}
	return c.JSON(promotions)
}

func (s *Server) getPromotion(c *fiber.Ctx) error {
	promotion, err := s.deps.Promotions.Get(c.UserContext(), domain.PromotionID(c.Params("eventoId")))
	if err != nil {
		return err
	}
	return c.JSON(promotion)
}

func (s *Server) createPromotion(c *fiber.Ctx) error {
	var body PromotionRequest
	if err := bind(c, &body); err != nil {
		return err
	}
	created, err := s.deps.Promotions.Create(c.UserContext(), body.toDomain())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      created.ID,
		"message": "Evento creado correctamente",
		"evento":  created,
	})
}

func (s *Server) updatePromotion(c *fiber.Ctx) error {
	var body PromotionPatchRequest
	if err := bind(c, &body); err != nil {
		return err
	}
	updated, fields, err := s.deps.Promotions.Update(c.UserContext(), domain.PromotionID(c.Params("eventoId")), services.PromotionPatch{
		Title:              body.Title,
		Description:        body.Description,
		Type:               body.Type,
		Code:               body.Code,
		Percentage:         body.Percentage,
		Amount:             body.Amount,
		ApplicableProducts: body.ApplicableProducts,
		Priority:           body.Priority,
		Active:             body.Active,
		StartsAt:           body.StartsAt.ptr(),
		EndsAt:             body.EndsAt.ptr(),
		UsageCap:           body.UsageCap,
		PerCustomerCap:     body.PerCustomerCap,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Evento actualizado correctamente",
		"campos":  fields,
		"evento":  updated,
	})
}

func (s *Server) deletePromotion(c *fiber.Ctx) error {
	if err := s.deps.Promotions.Delete(c.UserContext(), domain.PromotionID(c.Params("eventoId"))); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Evento eliminado correctamente"})
}

func (s *Server) validateCode(c *fiber.Ctx) error {
	var body ValidateCodeRequest
	if err := bind(c, &body); err != nil {
		return err
	}
	validation, err := s.deps.Redemption.Validate(c.UserContext(), domain.StoreID(body.StoreID), body.Code, body.CustomerPhone)
	if err != nil {
		return err
	}
	if !validation.Valid() {
		status, reason := classify(validation.Reason.Err())
		if validation.Reason == domain.ReasonExhausted || validation.Reason == domain.ReasonCustomerExhausted {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"valid":  false,
			"error":  validation.Reason.Err().Error(),
			"reason": reason,
			"motivo": validation.Reason,
		})
	}
	p := validation.Promotion
	return c.JSON(fiber.Map{
		"valid": true,
		"evento": fiber.Map{
			"id":                   p.ID,
			"titulo":               p.Title,
			"descuento_porcentaje": p.Percentage,
			"descuento_monto":      p.Amount,
			"productos_aplicables": p.ApplicableProducts,
		},
		"descuento": validation.Discount,
	})
}

func (s *Server) redeemCode(c *fiber.Ctx) error {
	var body RedeemCodeRequest
	if err := bind(c, &body); err != nil {
		return err
	}
	redemption, err := s.deps.Redemption.Redeem(c.UserContext(), domain.PromotionID(body.PromotionID), domain.Redemption{
		OrderID:         string(body.OrderID),
		CustomerPhone:   body.CustomerPhone,
		Code:            body.Code,
		DiscountApplied: body.DiscountApplied,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Código aplicado correctamente",
		"redemption": redemption,
	})
}
