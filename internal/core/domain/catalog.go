package domain

type ShippingMethod struct {
	Code     string `json:"code"`
	Name     string `json:"name,omitempty"`
	StoreID  string `json:"storeId,omitempty"`
	IsActive bool   `json:"isActive"`
}

type PaymentMethod struct {
	Code     string `json:"code"`
	Name     string `json:"name,omitempty"`
	StoreID  string `json:"storeId,omitempty"`
	IsActive bool   `json:"isActive"`
}
