package models

// ActionLog is one entry of the append-only activity log
type ActionLog struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entity_id"`
	Timestamp string `json:"timestamp"` // ru-locale formatted, second resolution
}

// Action and entity labels written by the store
const (
	ActionEditShipment   = "Редактирование отправки"
	ActionEditEquipment  = "Редактирование оборудования"
	ActionMovePrefix     = "Перемещён в рейс "
	ActionDeleteFlight   = "Удалён рейс"
	EntityShipmentLabel  = "Отправка"
	EntityEquipmentLabel = "Оборудование"
	EntityFlightLabel    = "Рейс"
)
