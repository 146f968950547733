package dto

type CreateAddressRequest struct {
	Country string `json:"country" binding:"required"`
	City    string `json:"city" binding:"required"`
	Street  string `json:"street" binding:"required"`
	Zipcode string `json:"zipcode" binding:"required"`
	Active  bool   `json:"active"`
}

type AddressResponse struct {
	ID       string `json:"id"`
	Country  string `json:"country"`
	City     string `json:"city"`
	Street   string `json:"street"`
	Zipcode  string `json:"zipcode"`
	IsActive bool   `json:"is_active"`
}

type AddressListResponse struct {
	Addresses []AddressResponse `json:"addresses"`
}
