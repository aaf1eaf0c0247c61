package domain

import (
	"fmt"
	"strings"
	"tienda-live/errors"
)

// StoreID identifies a tenant. It is kept as a string so that numeric and
// textual identifiers travel through the transport unchanged.
type StoreID string

func (s StoreID) String() string { return string(s) }

func (s StoreID) IsEmpty() bool { return strings.TrimSpace(string(s)) == "" }

// Valid refuses blank ids and ids holding the key separator: "5:customers"
// would otherwise name the customer room of store 5.
func (s StoreID) Valid() bool { return !s.IsEmpty() && validIdentifier(string(s)) }

// ParseStoreID trims raw and checks it names a single store.
func ParseStoreID(raw string) (StoreID, error) {
	id := StoreID(strings.TrimSpace(raw))
	if !id.Valid() {
		return "", fmt.Errorf("%w: invalid store id %q", errors.ErrInvalidRequest, raw)
	}
	return id, nil
}

const keySeparator = ":"

func validIdentifier(s string) bool { return !strings.Contains(s, keySeparator) }

// RoomKey names a broadcast group of live connections.
// The formulas below are shared with browser clients and must not change.
type RoomKey string

type RoomKind string

const (
	GeneralRoom  RoomKind = "general"
	AdminRoom    RoomKind = "admin"
	CustomerRoom RoomKind = "customers"
	OrderRoom    RoomKind = "order"
)

const (
	storePrefix      = "store:"
	storeAdminPrefix = "store-admin:"
	customersSuffix  = ":customers"
	orderPrefix      = "order:"
)

// StoreRoom is the general broadcast room of a store: store:{id}.
func StoreRoom(id StoreID) RoomKey {
	if !id.Valid() {
		return ""
	}
	return RoomKey(storePrefix + string(id))
}

// StoreAdminRoom is the admin-only room of a store: store-admin:{id}.
func StoreAdminRoom(id StoreID) RoomKey {
	if !id.Valid() {
		return ""
	}
	return RoomKey(storeAdminPrefix + string(id))
}

// StoreCustomersRoom is the customer subscription room of a store: store:{id}:customers.
func StoreCustomersRoom(id StoreID) RoomKey {
	if !id.Valid() {
		return ""
	}
	return RoomKey(storePrefix + string(id) + customersSuffix)
}

// OrderTrackingRoom follows a single order by its public number: order:{number}.
func OrderTrackingRoom(orderNumber string) RoomKey {
	if strings.TrimSpace(orderNumber) == "" || !validIdentifier(orderNumber) {
		return ""
	}
	return RoomKey(orderPrefix + orderNumber)
}

func (k RoomKey) IsEmpty() bool { return k == "" }

func (k RoomKey) String() string { return string(k) }

// Parse splits a room key into its kind and the store id (or order number) it targets.
func (k RoomKey) Parse() (RoomKind, string, bool) {
	s := string(k)
	switch {
	case strings.HasPrefix(s, storeAdminPrefix):
		id := strings.TrimPrefix(s, storeAdminPrefix)
		return AdminRoom, id, id != ""
	case strings.HasPrefix(s, storePrefix) && strings.HasSuffix(s, customersSuffix):
		id := strings.TrimSuffix(strings.TrimPrefix(s, storePrefix), customersSuffix)
		return CustomerRoom, id, id != ""
	case strings.HasPrefix(s, storePrefix):
		id := strings.TrimPrefix(s, storePrefix)
		return GeneralRoom, id, id != ""
	case strings.HasPrefix(s, orderPrefix):
		number := strings.TrimPrefix(s, orderPrefix)
		return OrderRoom, number, number != ""
	default:
		return "", "", false
	}
}
