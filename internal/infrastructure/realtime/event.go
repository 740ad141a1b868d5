// Package realtime pushes committed product updates to connected clients.
// A redis pub/sub channel fans events out across API instances; each
// instance relays them to its local websocket connections.
package realtime

import "github.com/TanmayElinje/inventory-pro/internal/application/dto"

// ChannelProducts is the redis pub/sub channel for product events.
const ChannelProducts = "inventory.products"

// EventTypeProductUpdate tags a product snapshot event on the wire.
const EventTypeProductUpdate = "product_update"

// ProductUpdateEvent is the wire format delivered to websocket clients.
type ProductUpdateEvent struct {
	Type    string              `json:"type"`
	Product dto.ProductResponse `json:"product"`
}
