package model

// LocalizedText — переводы строки по кодам языков (uz, ru, en).
type LocalizedText map[string]string

// In возвращает перевод для языка lang с fallback: lang → en → любой непустой.
func (t LocalizedText) In(lang string) string {
	if t == nil {
		return ""
	}
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	if v, ok := t["en"]; ok && v != "" {
		return v
	}
	for _, v := range t {
		if v != "" {
			return v
		}
	}
	return ""
}

// Role — роль с набором разрешений.
// Key — уникальный строковый идентификатор; уникальность
// обеспечивает backend (конфликт → 409/422).
type Role struct {
	ID          int64         `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Key         string        `json:"key"`
	Permissions []Permission  `json:"permissions,omitempty"`
	CreatedAt   string        `json:"created_at,omitempty"`
	UpdatedAt   string        `json:"updated_at,omitempty"`
}

// Permission — элементарное разрешение.
// Action — непрозрачный токен (например, "view-user"),
// сопоставляется только точным сравнением строк.
type Permission struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Action string `json:"action"`
}

// RoleInput — данные формы создания/редактирования роли.
type RoleInput struct {
	Name          LocalizedText `json:"name"`
	Description   LocalizedText `json:"description"`
	Key           string        `json:"key"`
	PermissionIDs []int64       `json:"permission_ids"`
}
