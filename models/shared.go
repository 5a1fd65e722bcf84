package models

// PropertyType enumerates the supported property categories.
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypePlot       PropertyType = "plot"
	PropertyTypeCommercial PropertyType = "commercial"
)

// PropertyStatus enumerates the listing lifecycle states.
type PropertyStatus string

const (
	PropertyStatusActive PropertyStatus = "active"
	PropertyStatusRented PropertyStatus = "rented"
	PropertyStatusSold   PropertyStatus = "sold"
)

// ClientCategory distinguishes buyers from sellers.
type ClientCategory string

const (
	ClientCategoryBuyer  ClientCategory = "buyer"
	ClientCategorySeller ClientCategory = "seller"
)
