// Package model holds the stored document forms and the rules a document must
// satisfy before it is handed to the domain.
package model

import (
	"strings"

	"smartfit/internal/domain/entity"
	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/errors"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals
var schema = newSchema()

func newSchema() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterStructValidation(orderRules, entity.Order{})
	v.RegisterStructValidation(productRules, entity.Product{})
	v.RegisterStructValidation(shopRules, entity.Shop{})
	v.RegisterStructValidation(employeeRules, entity.Employee{})
	v.RegisterStructValidation(activationRules, entity.Activation{})
	v.RegisterStructValidation(cartItemRules, entity.CartItem{})
	v.RegisterStructValidation(credentialRules, entity.Credential{})

	return v
}

// Check validates a decoded document and reports violations as a malformed
// document error naming path.
func Check(path string, doc any) error {
	err := schema.Struct(doc)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrMalformedDocument.WithDetails(path + ": " + err.Error())
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fe.Namespace()+" "+fe.Tag())
	}

	return domainerrors.ErrMalformedDocument.WithDetails(path + ": " + strings.Join(problems, ", "))
}

func orderRules(sl validator.StructLevel) {
	order := sl.Current().Interface().(entity.Order)

	if !order.Status.IsValid() {
		sl.ReportError(order.Status, "Status", "status", "order_status", string(order.Status))
	}
	if order.Kind != "" && !order.Kind.IsValid() {
		sl.ReportError(order.Kind, "Kind", "kind", "order_kind", string(order.Kind))
	}
	if order.TotalAmount < 0 {
		sl.ReportError(order.TotalAmount, "TotalAmount", "totalAmount", "gte", "0")
	}
	for key, update := range order.StatusUpdates {
		if !update.Status.IsValid() {
			sl.ReportError(update.Status, "StatusUpdates["+key+"].Status", "status", "order_status", string(update.Status))
		}
	}
}

func productRules(sl validator.StructLevel) {
	product := sl.Current().Interface().(entity.Product)

	product.ForEachSize(func(variantKey, sizeKey, sizeValue string, entry entity.SizeEntry) {
		if entry.Stock < 0 {
			sl.ReportError(entry.Stock, "Variants["+variantKey+"].Sizes["+sizeKey+"]["+sizeValue+"].Stock", "stock", "gte", "0")
		}
	})
}

func shopRules(sl validator.StructLevel) {
	shop := sl.Current().Interface().(entity.Shop)

	if shop.Status != "" && !shop.Status.IsValid() {
		sl.ReportError(shop.Status, "Status", "status", "shop_status", string(shop.Status))
	}
}

func employeeRules(sl validator.StructLevel) {
	employee := sl.Current().Interface().(entity.Employee)

	if strings.TrimSpace(employee.Email) == "" {
		sl.ReportError(employee.Email, "Email", "email", "required", "")
	}
	if employee.IsDefaultAccount && employee.TempPassword == nil {
		sl.ReportError(employee.TempPassword, "TempPassword", "tempPassword", "required_if", "isDefaultAccount")
	}
}

func activationRules(sl validator.StructLevel) {
	activation := sl.Current().Interface().(entity.Activation)

	if activation.UID == "" {
		sl.ReportError(activation.UID, "UID", "uid", "required", "")
	}
	if activation.Stage != entity.ActivationCompleted && !activation.Stage.IsPending() {
		sl.ReportError(activation.Stage, "Stage", "stage", "activation_stage", string(activation.Stage))
	}
	if activation.Employee == nil {
		sl.ReportError(activation.Employee, "Employee", "employee", "required", "")
	}
}

func cartItemRules(sl validator.StructLevel) {
	item := sl.Current().Interface().(entity.CartItem)

	if item.ShopID == "" {
		sl.ReportError(item.ShopID, "ShopID", "shopId", "required", "")
	}
	if item.ShoeID == "" {
		sl.ReportError(item.ShoeID, "ShoeID", "shoeId", "required", "")
	}
	if item.Quantity < 1 {
		sl.ReportError(item.Quantity, "Quantity", "quantity", "gte", "1")
	}
}

func credentialRules(sl validator.StructLevel) {
	credential := sl.Current().Interface().(entity.Credential)

	if credential.UID == "" {
		sl.ReportError(credential.UID, "UID", "uid", "required", "")
	}
	if credential.PasswordHash == "" {
		sl.ReportError(credential.PasswordHash, "PasswordHash", "passwordHash", "required", "")
	}
}
