package user

import (
	"files-manager-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:    uDomain.ID,
		Email: uDomain.Email,
	}

	return u
}
