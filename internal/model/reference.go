package model

import "time"

type Country struct {
	ID      string
	ISOCode string
	Name    string
}

type Warehouse struct {
	ID        string
	Name      string
	City      string
	CountryID string
}

type BoxType struct {
	ID       string
	Code     string
	DimLabel string
	PriceLKR float64
}

type User struct {
	ID        string
	Name      string
	Email     string
	Role      string
	PwHash    string
	Active    bool
	CreatedAt time.Time
}

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)
