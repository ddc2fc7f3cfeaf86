package entity

type AddressID int64

type Address struct {
	ID        AddressID
	UserID    UserID
	Consignee string
	Phone     string
	Detail    string
}
