package api

import (
	"fmt"
	"tienda-live/domain"
	"tienda-live/errors"
	"tienda-live/services"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) getConfig(c *fiber.Ctx) error {
	storeID, err := storeParam(c)
	if err != nil {
		return err
	}
	cfg, err := s.deps.Configs.Get(c.UserContext(), storeID)
	if err != nil {
		return err
	}
	return c.JSON(cfg)
}

func (s *Server) updateConfig(c *fiber.Ctx) error {
	var changes map[string]any
	if err := c.BodyParser(&changes); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	storeID, err := storeParam(c)
	if err != nil {
		return err
	}
	cfg, fields, err := s.deps.Configs.Update(c.UserContext(), storeID, changes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Configuración actualizada correctamente",
		"campos":  fields,
		"config":  cfg,
	})
}

func (s *Server) submitReview(c *fiber.Ctx) error {
	var body ReviewRequest
	if err := bind(c, &body); err != nil {
		return err
	}
	review, err := s.deps.Reviews.Submit(c.UserContext(), services.SubmitReviewCommand{
		StoreID:       domain.StoreID(body.StoreID),
		CustomerName:  body.CustomerName,
		CustomerPhone: body.CustomerPhone,
		Comment:       body.Comment,
		Rating:        body.Rating,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":             review.ID,
		"tienda_id":      review.StoreID,
		"cliente_nombre": review.CustomerName,
		"comentario":     review.Comment,
		"calificacion":   review.Rating,
		"message":        "Comentario enviado correctamente. Será revisado antes de publicarse.",
	})
}

func (s *Server) pendingReviews(c *fiber.Ctx) error {
	storeID, err := storeParam(c)
	if err != nil {
		return err
	}
	reviews, err := s.deps.Reviews.ListPending(c.UserContext(), storeID)
	if err != nil {
		return err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return c.JSON(reviews)
}

func (s *Server) approveReview(c *fiber.Ctx) error {
	if _, err := s.deps.Reviews.Approve(c.UserContext(), domain.ReviewID(c.Params("id"))); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Comentario aprobado correctamente"})
}

func (s *Server) publishedReviews(c *fiber.Ctx) error {
	storeID, err := storeParam(c)
	if err != nil {
		return err
	}
	page, err := s.deps.Reviews.ListPublished(c.UserContext(), storeID, c.QueryInt("limite"), c.QueryInt("pagina"))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (s *Server) reviewStats(c *fiber.Ctx) error {
	storeID, err := storeParam(c)
	if err != nil {
		return err
	}
	stats, err := s.deps.Reviews.Stats(c.UserContext(), storeID)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (s *Server) deleteReview(c *fiber.Ctx) error {
	if err := s.deps.Reviews.Delete(c.UserContext(), domain.ReviewID(c.Params("id"))); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Comentario eliminado correctamente"})
}
