package models

// DefaultItemDescription подставляется, когда в листе Items не заполнена колонка описания.
const DefaultItemDescription = "No description available."

// ShopItem представляет товар (роль), доступный для покупки в магазине
type ShopItem struct {
	Name        string // Название роли
	Price       int    // Цена в монетах
	RoleID      int64  // ID роли Discord, выдаваемой после покупки
	Image       string // Имя файла картинки, может быть пустым
	Description string // Описание, по умолчанию DefaultItemDescription
}
