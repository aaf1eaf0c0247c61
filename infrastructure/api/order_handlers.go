package api

import (
	"tienda-live/domain"
	"tienda-live/services"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) createOrder(c *fiber.Ctx) error {
	var body CreateOrderRequest
	if err := bind(c, &body); err != nil {
		return err
	}
	order, err := s.deps.Orders.Create(c.UserContext(), services.CreateOrderCommand{
		StoreID:         domain.StoreID(body.StoreID),
		CustomerName:    body.CustomerName,
		CustomerPhone:   body.CustomerPhone,
		CustomerAddress: body.CustomerAddress,
		Items:           body.toItems(),
		DiscountCode:    body.DiscountCode,
		Notes:           body.Notes,
		PaymentMethod:   body.PaymentMethod,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

func (s *Server) getOrder(c *fiber.Ctx) error {
	order, err := s.deps.Orders.Get(c.UserContext(), c.Params("numero"))
	if err != nil {
		return err
	}
	return c.JSON(order)
}

func (s *Server) searchOrders(c *fiber.Ctx) error {
	storeID, err := storeParam(c)
	if err != nil {
		return err
	}
	orders, total, err := s.deps.Orders.Search(c.UserContext(), storeID, c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ordenes": orders, "total": total})
}

func (s *Server) listOrders(c *fiber.Ctx) error {
	storeID, err := storeParam(c)
	if err != nil {
		return err
	}
	filter := domain.OrderFilter{Limit: c.QueryInt("limite"), Page: c.QueryInt("pagina")}
	if estado := c.Query("estado"); estado != "" {
		if filter.Status, err = domain.ParseOrderStatus(estado); err != nil {
			return err
		}
	}
	if filter.Period, err = domain.ParseOrderPeriod(c.Query("tiempo")); err != nil {
		return err
	}
	orders, err := s.deps.Orders.List(c.UserContext(), storeID, filter)
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

func (s *Server) orderStats(c *fiber.Ctx) error {
	storeID, err := storeParam(c)
	if err != nil {
		return err
	}
	stats, err := s.deps.Orders.Stats(c.UserContext(), storeID)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (s *Server) updateOrderStatus(c *fiber.Ctx) error {
	var body UpdateStatusRequest
	if err := bind(c, &body); err != nil {
		return err
	}
	order, err := s.deps.Orders.UpdateStatus(c.UserContext(), c.Params("numero"), body.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Estado actualizado correctamente", "orden": order})
}

func (s *Server) notifyStore(c *fiber.Ctx) error {
	return s.notify(c, false)
}

func (s *Server) notifyCustomers(c *fiber.Ctx) error {
	return s.notify(c, true)
}

func (s *Server) notify(c *fiber.Ctx, toCustomers bool) error {
	var body NotifyRequest
	if err := bind(c, &body); err != nil {
		return err
	}
	message := body.Message
	if message == "" {
		message = "Notificación de prueba"
		if toCustomers {
			message = "Notificación para tu pedido"
		}
	}
	order, err := s.deps.Orders.Notify(c.UserContext(), services.NotifyOrderCommand{
		Number:      c.Params("numero"),
		Kind:        body.Kind,
		Message:     message,
		ToCustomers: toCustomers,
	})
	if err != nil {
		return err
	}
	if toCustomers {
		return c.JSON(fiber.Map{
			"message":         "Notificación enviada al cliente correctamente",
			"orden_numero":    order.Number,
			"cliente":         order.CustomerName,
			"mensaje_enviado": message,
		})
	}
	return c.JSON(fiber.Map{
		"message":   "Notificación enviada correctamente",
		"enviada_a": domain.StoreRoom(order.StoreID),
	})
}
