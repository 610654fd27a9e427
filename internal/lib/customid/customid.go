// Package customid кодирует и декодирует custom_id компонентов сообщения.
// Вся "сессия" пейджера живёт внутри этой строки: кнопка навигации несёт
// страницу, С КОТОРОЙ был сделан клик, кнопка покупки — ID роли.
package customid

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind — тип компонента, закодированный в custom_id
type Kind int

const (
	KindBuy      Kind = iota // buy_{roleID}
	KindPrevPage             // prev_page_{page}
	KindNextPage             // next_page_{page}
)

const (
	buyPrefix  = "buy_"
	prevPrefix = "prev_page_"
	nextPrefix = "next_page_"
)

// ComponentID — типизированное представление custom_id.
// Заполнено либо RoleID (для KindBuy), либо Page (для навигации).
type ComponentID struct {
	Kind   Kind
	RoleID int64
	Page   int
}

// Buy создаёт идентификатор кнопки покупки роли
func Buy(roleID int64) ComponentID {
	return ComponentID{Kind: KindBuy, RoleID: roleID}
}

// PrevPage создаёт идентификатор кнопки "назад" со страницей-источником
func PrevPage(page int) ComponentID {
	return ComponentID{Kind: KindPrevPage, Page: page}
}

// NextPage создаёт идентификатор кнопки "вперёд" со страницей-источником
func NextPage(page int) ComponentID {
	return ComponentID{Kind: KindNextPage, Page: page}
}

// String сериализует идентификатор в строку для Discord
func (c ComponentID) String() string {
	switch c.Kind {
	case KindBuy:
		return buyPrefix + strconv.FormatInt(c.RoleID, 10)
	case KindPrevPage:
		return prevPrefix + strconv.Itoa(c.Page)
	default:
		return nextPrefix + strconv.Itoa(c.Page)
	}
}

// Parse разбирает строку custom_id, пришедшую от Discord.
// Незнакомый префикс или нечисловой хвост — ошибка: такие клики мы не обрабатываем.
func Parse(s string) (ComponentID, error) {
	switch {
	case strings.HasPrefix(s, buyPrefix):
		roleID, err := strconv.ParseInt(strings.TrimPrefix(s, buyPrefix), 10, 64)
		if err != nil {
			return ComponentID{}, fmt.Errorf("invalid role id in custom_id %q: %w", s, err)
		}
		return Buy(roleID), nil
	case strings.HasPrefix(s, prevPrefix):
		page, err := strconv.Atoi(strings.TrimPrefix(s, prevPrefix))
		if err != nil {
			return ComponentID{}, fmt.Errorf("invalid page in custom_id %q: %w", s, err)
		}
		return PrevPage(page), nil
	case strings.HasPrefix(s, nextPrefix):
		page, err := strconv.Atoi(strings.TrimPrefix(s, nextPrefix))
		if err != nil {
			return ComponentID{}, fmt.Errorf("invalid page in custom_id %q: %w", s, err)
		}
		return NextPage(page), nil
	default:
		return ComponentID{}, fmt.Errorf("unknown custom_id %q", s)
	}
}
