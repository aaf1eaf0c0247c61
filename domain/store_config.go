package domain

import (
	"sort"
	"time"

	"github.com/samber/lo"
)

// ConfigFields lists the storefront settings a store owner may change.
var ConfigFields = []string{
	"razon_social", "logo_url", "banner_url", "eslogan",
	"color_primario", "color_secundario", "color_acento", "color_fondo",
	"mostrar_busqueda", "mostrar_filtros", "mostrar_categorias", "mostrar_comentarios", "mostrar_whatsapp",
	"mensaje_bienvenida", "mensaje_pie_pagina", "tiempo_preparacion_min",
	"delivery_disponible", "pickup_disponible", "pedido_minimo", "costo_delivery", "zona_delivery",
	"facebook_url", "instagram_url", "tiktok_url",
	"estilo_layout", "mostrar_precios", "mostrar_imagenes_productos",
}

type StoreConfig struct {
	StoreID   StoreID        `json:"tienda_id"`
	Fields    map[string]any `json:"campos"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Apply copies the allowed keys of changes into the configuration and
// returns their names sorted. Unknown keys are ignored.
func (c *StoreConfig) Apply(changes map[string]any, now time.Time) []string {
	if c.Fields == nil {
		c.Fields = make(map[string]any)
	}
	applied := lo.Filter(lo.Keys(changes), func(key string, _ int) bool {
		return lo.Contains(ConfigFields, key)
	})
	for _, key := range applied {
		c.Fields[key] = changes[key]
	}
	sort.Strings(applied)
	if len(applied) > 0 {
		c.UpdatedAt = now
	}
	return applied
}

// DefaultStoreConfig is what a store gets before its owner changes anything.
func DefaultStoreConfig(storeID StoreID, now time.Time) StoreConfig {
	return StoreConfig{
		StoreID: storeID,
		Fields: map[string]any{
			"color_primario":             "#007bff",
			"color_secundario":           "#6c757d",
			"color_acento":               "#28a745",
			"color_fondo":                "#ffffff",
			"estilo_layout":              "moderno",
			"mostrar_busqueda":           true,
			"mostrar_filtros":            true,
			"mostrar_categorias":         true,
			"mostrar_comentarios":        true,
			"mostrar_whatsapp":           true,
			"mostrar_precios":            true,
			"mostrar_imagenes_productos": true,
			"tiempo_preparacion_min":     30,
			"delivery_disponible":        true,
			"pickup_disponible":          true,
			"pedido_minimo":              0,
			"costo_delivery":             0,
		},
		UpdatedAt: now,
	}
}
