package models

// UserAccount представляет строку пользователя в листе Currency
type UserAccount struct {
	UserID  string // Discord snowflake в строковом виде
	Balance int    // текущий баланс в монетах
}
