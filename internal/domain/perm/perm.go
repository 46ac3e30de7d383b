// Пакет perm — проверка разрешений для гейтинга UI-элементов.
// Разрешения — непрозрачные строковые токены (actions), выданные
// текущему пользователю; сопоставление только точным сравнением строк,
// без иерархии и wildcard'ов. Имя роли в сопоставлении не участвует.
package perm

import "github.com/davrbek/facegate/internal/domain/model"

// Токены разрешений, известные системе.
const (
	ActionViewDashboard = "view-dashboard"

	ActionViewUser   = "view-user"
	ActionCreateUser = "create-user"
	ActionEditUser   = "edit-user"
	ActionDeleteUser = "delete-user"

	ActionViewRole   = "view-role"
	ActionCreateRole = "create-role"
	ActionEditRole   = "edit-role"
	ActionDeleteRole = "delete-role"

	ActionViewFaceDevice   = "view-face-device"
	ActionCreateFaceDevice = "create-face-device"
	ActionEditFaceDevice   = "edit-face-device"
	ActionDeleteFaceDevice = "delete-face-device"

	// ActionAssignFaceDeviceUser — назначение/снятие пользователей
	// на терминалы (все четыре экрана назначений).
	ActionAssignFaceDeviceUser = "assign-face-device-user"
)

// knownActions — статический каталог токенов. Неизвестный токен
// никогда не совпадает, fallback не предусмотрен.
var knownActions = map[string]bool{
	ActionViewDashboard:        true,
	ActionViewUser:             true,
	ActionCreateUser:           true,
	ActionEditUser:             true,
	ActionDeleteUser:           true,
	ActionViewRole:             true,
	ActionCreateRole:           true,
	ActionEditRole:             true,
	ActionDeleteRole:           true,
	ActionViewFaceDevice:       true,
	ActionCreateFaceDevice:     true,
	ActionEditFaceDevice:       true,
	ActionDeleteFaceDevice:     true,
	ActionAssignFaceDeviceUser: true,
}

// IsKnownAction проверяет, входит ли токен в статический каталог.
func IsKnownAction(action string) bool {
	return knownActions[action]
}

// Evaluator — чистая проверка разрешений текущего пользователя.
// Строится из списка выданных Permission; пустой список — всё запрещено.
// Без побочных эффектов и кэширования: список мал и
// пересоздаётся на каждый запрос.
type Evaluator struct {
	granted map[string]bool
	// roleName — имя действующей роли; в сопоставлении
	// не участвует, хранится для отображения.
	roleName string
}

// NewEvaluator создаёт Evaluator из выданных разрешений и имени роли.
// roleName может быть пустым — проверка идёт только по списку actions.
func NewEvaluator(grants []model.Permission, roleName string) *Evaluator {
	granted := make(map[string]bool, len(grants))
	for _, g := range grants {
		if g.Action != "" {
			granted[g.Action] = true
		}
	}
	return &Evaluator{granted: granted, roleName: roleName}
}

// Has сообщает, выдан ли пользователю токен action.
// Отсутствие совпадения — не ошибка, просто false.
func (e *Evaluator) Has(action string) bool {
	if e == nil {
		return false
	}
	return e.granted[action]
}

// HasAny сообщает, выдан ли хотя бы один из токенов.
func (e *Evaluator) HasAny(actions ...string) bool {
	for _, a := range actions {
		if e.Has(a) {
			return true
		}
	}
	return false
}

// RoleName возвращает имя действующей роли (может быть пустым).
func (e *Evaluator) RoleName() string {
	if e == nil {
		return ""
	}
	return e.roleName
}

// ResolveActingRole — единственное правило разрешения действующей роли
// пользователя. Авторитетно единственное поле includes.role; при его
// отсутствии — первая роль из includes.roles; иначе пустая строка.
// lang — язык отображаемого названия роли.
// Все вызывающие стороны обязаны использовать эту функцию.
func ResolveActingRole(u *model.User, lang string) string {
	if u == nil || u.Includes == nil {
		return ""
	}
	if u.Includes.Role != nil {
		return u.Includes.Role.Name.In(lang)
	}
	if len(u.Includes.Roles) > 0 {
		return u.Includes.Roles[0].Name.In(lang)
	}
	return ""
}

// Grants собирает выданные пользователю разрешения: явные
// includes.permissions плюс разрешения действующей роли.
func Grants(u *model.User) []model.Permission {
	if u == nil || u.Includes == nil {
		return nil
	}
	var grants []model.Permission
	grants = append(grants, u.Includes.Permissions...)
	if u.Includes.Role != nil {
		grants = append(grants, u.Includes.Role.Permissions...)
	} else if len(u.Includes.Roles) > 0 {
		grants = append(grants, u.Includes.Roles[0].Permissions...)
	}
	return grants
}

// PageAction возвращает токен, требуемый для просмотра страницы
// по префиксу пути. Пустая строка — страница не гейтится.
func PageAction(path string) string {
	switch {
	case hasPrefix(path, "/users"):
		return ActionViewUser
	case hasPrefix(path, "/roles"):
		return ActionViewRole
	case hasPrefix(path, "/face-devices"):
		return ActionViewFaceDevice
	default:
		return ""
	}
}

// hasPrefix — префикс пути с учётом границы сегмента:
// "/users" и "/users/5" совпадают, "/users-archive" — нет.
func hasPrefix(path, prefix string) bool {
	if len(path) < len(prefix) || path[:len(prefix)] != prefix {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/' || path[len(prefix)] == '?'
}
