package entity

import "strconv"

type UserID int64

func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id UserID) Valid() bool {
	return id > 0
}

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

type Identity struct {
	UserID UserID
	Role   Role
}

type UserIDCtxKey struct{}

type UserIDCtx struct {
	Identity   Identity
	StatusCode int
}

func CreateUserIDCtx(identity Identity, code int) UserIDCtx {
	return UserIDCtx{
		Identity:   identity,
		StatusCode: code,
	}
}
