package event

// Server to client.
const (
	ConnectionStatus      = "connection-status"
	SubscriptionConfirmed = "suscripcion-confirmada"
	Pong                  = "pong"
	Error                 = "error"
	NewOrder              = "nueva-orden"
	OrderUpdated          = "orden-actualizada"
	ConfigUpdated         = "config-updated"
	PromotionCreated      = "nuevo-evento"
	PromotionUpdated      = "evento-actualizado"
	PromotionDeleted      = "evento-eliminado"
	CustomNotification    = "notificacion-personalizada"
	DiscountCodeUsed      = "codigo-descuento-usado"
	ReviewSubmitted       = "nuevo-comentario"
)

// English aliases still emitted by older dashboards.
const (
	NewOrderAlias         = "new-order"
	OrderUpdatedAlias     = "orden-status-updated"
	PromotionCreatedAlias = "evento-created"
	PromotionUpdatedAlias = "evento-updated"
	PromotionDeletedAlias = "evento-deleted"
)

// Client to server.
const (
	JoinStore           = "join-tienda"
	LeaveStore          = "leave-tienda"
	JoinStoreCustomers  = "join-tienda-cliente"
	LeaveStoreCustomers = "leave-tienda-cliente"
	JoinStoreAdmin      = "join-tienda-admin"
	JoinOrder           = "join-orden"
	LeaveOrder          = "leave-orden"
	Ping                = "ping"
)

// Aliases maps every alias onto its canonical name so that client callbacks
// registered under either spelling fire.
var Aliases = map[string]string{
	NewOrderAlias:         NewOrder,
	OrderUpdatedAlias:     OrderUpdated,
	PromotionCreatedAlias: PromotionCreated,
	PromotionUpdatedAlias: PromotionUpdated,
	PromotionDeletedAlias: PromotionDeleted,
}
