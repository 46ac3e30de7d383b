// Пакет model — доменные модели FaceGate Admin.
// Все сущности живут в backend API; здесь только их представление
// для отображения и передачи между слоями. Admin не хранит состояние.
package model

// User — сотрудник/посетитель, заводимый на терминалах доступа.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Login     string `json:"login"`
	// Image — путь к фотографии пользователя (nil — фото не загружено).
	Image *string `json:"image"`
	// Status — активен/неактивен.
	Status     bool   `json:"status"`
	CardNumber string `json:"card_number"`
	// CanLogin — может ли пользователь входить в админ-панель.
	CanLogin  bool   `json:"can_login"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`

	// Includes — связанные сущности, подгружаемые backend'ом.
	Includes *UserIncludes `json:"includes,omitempty"`
}

// UserIncludes — связанные с пользователем сущности.
// Backend в разных ответах возвращает либо единственную role,
// либо массив roles; оба поля сохраняются как есть,
// разрешение действующей роли — perm.ResolveActingRole.
type UserIncludes struct {
	Role        *Role        `json:"role,omitempty"`
	Roles       []Role       `json:"roles,omitempty"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// FullName возвращает отображаемое имя пользователя.
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Login
	}
}

// UserInput — данные формы создания/редактирования пользователя.
// Password — write-only: backend никогда не возвращает его обратно.
type UserInput struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Login      string `json:"login"`
	Status     bool   `json:"status"`
	CardNumber string `json:"card_number"`
	CanLogin   bool   `json:"can_login"`
	Password   string `json:"password,omitempty"`
	RoleID     int64  `json:"role_id,omitempty"`
}
