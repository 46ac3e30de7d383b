package model

// Тип терминала: на вход или на выход.
const (
	DeviceTypeEnter = "enter"
	DeviceTypeExit  = "exit"
)

// Статус терминала.
const (
	DeviceStatusActive    = "active"
	DeviceStatusNotActive = "not_active"
)

// FaceDevice — физический терминал контроля доступа (камера + контроллер),
// управляемый по IP/порту. Опрос и провижининг выполняет backend;
// админ-панель только отображает состояние.
type FaceDevice struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	IP       string `json:"ip"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	// LastCheckedAt — время последнего успешного опроса терминала
	// backend'ом (nil — терминал ещё ни разу не отвечал).
	LastCheckedAt *string `json:"last_checked_at"`
	// PushURL — конфигурация callback-endpoint'а на стороне терминала.
	PushURL   *PushURLConfig `json:"push_url,omitempty"`
	CreatedAt string         `json:"created_at,omitempty"`
	UpdatedAt string         `json:"updated_at,omitempty"`
}

// PushURLConfig — endpoint, на который терминал отправляет события.
type PushURLConfig struct {
	// Protocol — HTTP или HTTPS.
	Protocol string `json:"protocol"`
	// AddressType — hostname или ipaddress.
	AddressType string `json:"address_type"`
	Host        string `json:"host"`
	Port        int    `json:"port"`
}

// DeviceInput — данные формы создания/редактирования терминала.
type DeviceInput struct {
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	Status   string         `json:"status"`
	IP       string         `json:"ip"`
	Port     int            `json:"port"`
	Username string         `json:"username"`
	Password string         `json:"password,omitempty"`
	PushURL  *PushURLConfig `json:"push_url,omitempty"`
}
