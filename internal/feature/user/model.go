package user

import "gescon/internal/domain"

type UserModel struct {
	UserID   uint   `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username string `gorm:"uniqueIndex;size:80;not null"`
	Password string `gorm:"size:255;not null"` // hash bcrypt
	Role     string `gorm:"type:varchar(16);not null"`
}

func (UserModel) TableName() string { return "users" }

func FromDomain(u domain.User) UserModel {
	return UserModel{UserID: u.UserID, Username: u.Username, Password: u.PasswordHash, Role: u.Role}
}

func (m UserModel) ToDomain() domain.User {
	return domain.User{UserID: m.UserID, Username: m.Username, PasswordHash: m.Password, Role: m.Role}
}
