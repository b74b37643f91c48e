package models

// Terminals is the fixed set of terminal names
var Terminals = []string{"ПИК", "ДТК", "Гамбург", "Восточный", "Новороссийск"}

// Directions lists flight directions in display order
var Directions = []Direction{DirectionMoscow, DirectionSPB, DirectionNovosibirsk}

var ShipmentStatusLabels = map[ShipmentStatus]string{
	ShipmentReady:     "Готов к отправке",
	ShipmentNotReady:  "Не готов",
	ShipmentInTransit: "В пути",
	ShipmentDelivered: "Доставлен",
}

var DirectionLabels = map[Direction]string{
	DirectionMoscow:      "Москва",
	DirectionSPB:         "Санкт-Петербург",
	DirectionNovosibirsk: "Новосибирск",
}

var FlightStatusLabels = map[FlightStatus]string{
	FlightPlanned:  "Запланирован",
	FlightReady:    "Готов",
	FlightDeparted: "Отправлен",
	FlightArrived:  "Прибыл",
}

var EquipmentStatusLabels = map[EquipmentStatus]string{
	EquipmentChecked:   "Проверен",
	EquipmentUnchecked: "Не проверен",
	EquipmentBroken:    "Неисправен",
}

var EquipmentTypeLabels = map[EquipmentType]string{
	EquipmentContainer: "Контейнер",
	EquipmentDGK:       "ДГК / ЭГК",
	EquipmentGenset:    "Дженсет",
}

var RoleLabels = map[UserRole]string{
	RoleLogist:   "Логист",
	RoleManager:  "Менеджер",
	RoleDirector: "Директор",
}

func (s ShipmentStatus) Valid() bool {
	_, ok := ShipmentStatusLabels[s]
	return ok
}

func (d Direction) Valid() bool {
	_, ok := DirectionLabels[d]
	return ok
}

func (s FlightStatus) Valid() bool {
	_, ok := FlightStatusLabels[s]
	return ok
}

func (s EquipmentStatus) Valid() bool {
	_, ok := EquipmentStatusLabels[s]
	return ok
}

func (t EquipmentType) Valid() bool {
	_, ok := EquipmentTypeLabels[t]
	return ok
}
