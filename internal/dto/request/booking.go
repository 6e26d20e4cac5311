package request

type SetQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0,max=1000"`
}

type ApplyPromoRequest struct {
	Code string `json:"code" validate:"max=32"`
}

type SetNameRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// CheckoutRequest may carry the name inline; nil keeps the stored one.
type CheckoutRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=100"`
}
