package model

// Статусы синхронизации данных пользователя на терминал.
// Вычисляются асинхронными задачами backend'а; админ-панель
// их только отображает и никогда не пересчитывает.
const (
	SyncPending = "pending"
	SyncSuccess = "success"
	SyncFailed  = "failed"
)

// SyncChannels — три независимых канала провижининга пары
// пользователь↔терминал: базовая запись, фотография, номер карты.
type SyncChannels struct {
	UserStatus  string `json:"user_status"`
	ImageStatus string `json:"image_status"`
	CardStatus  string `json:"card_status"`
}

// DeviceUser — пользователь, заведённый на терминал,
// со статусами синхронизации по каждому каналу.
// Пара либо "in" (назначена, со статусами), либо "out"
// (не назначена, голый User) — никогда обе сразу.
type DeviceUser struct {
	User
	SyncChannels
}

// UserDevice — терминал, на который заведён пользователь,
// со статусами синхронизации (симметричный взгляд со стороны пользователя).
type UserDevice struct {
	FaceDevice
	SyncChannels
}
