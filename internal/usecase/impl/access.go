package impl

import (
	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
)

// canViewOrder: admins see everything, customers their own orders and staff
// the standard orders placed with their shop.
func canViewOrder(actor entity.Actor, order *entity.Order) bool {
	switch {
	case actor.IsAdmin():
		return true
	case order.UserID == actor.UserID:
		return true
	case actor.Role.IsShopStaff():
		return actor.ShopID != "" && order.ShopID() == actor.ShopID
	default:
		return false
	}
}

// canFulfilOrder reports whether actor may move the order through its
// lifecycle. Custom orders are produced by the platform and only admins act on them.
func canFulfilOrder(actor entity.Actor, order *entity.Order) bool {
	if actor.IsAdmin() {
		return true
	}
	if order.Kind != entity.OrderKindStandard || !actor.Role.IsShopStaff() {
		return false
	}

	return actor.ShopID != "" && order.ShopID() == actor.ShopID
}

func requireAdmin(actor entity.Actor) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden.WithDetails("admin only")
	}

	return nil
}

// requireShopAccess allows admins and the staff of shopID.
func requireShopAccess(actor entity.Actor, shopID string) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.Role.IsShopStaff() && actor.ShopID != "" && actor.ShopID == shopID {
		return nil
	}

	return domainerrors.ErrForbidden.WithDetails("not a member of shop " + shopID)
}

func checkOrderRef(ref entity.OrderRef) error {
	if !ref.Kind.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown order kind: " + string(ref.Kind))
	}
	if ref.UserID == "" || ref.OrderID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("order reference is incomplete")
	}

	return nil
}
