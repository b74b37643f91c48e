package store

import "polar-backend/internal/models"

// Seed is the baseline data a store starts from and returns to on Reset
type Seed struct {
	Users     []models.User
	Equipment []models.Equipment
	Shipments []models.Shipment
	Flights   []models.Flight
	Logs      []models.ActionLog
}

func (s Seed) clone() Seed {
	return Seed{
		Users:     append([]models.User(nil), s.Users...),
		Equipment: append([]models.Equipment(nil), s.Equipment...),
		Shipments: append([]models.Shipment(nil), s.Shipments...),
		Flights:   append([]models.Flight(nil), s.Flights...),
		Logs:      append([]models.ActionLog(nil), s.Logs...),
	}
}

// DefaultSeed returns the built-in desk data: 3 users, 12 equipment records,
// 6 shipments, 4 flights and 4 log entries
func DefaultSeed() Seed {
	return Seed{
		Users: []models.User{
			{ID: "1", Name: "Алексей Петров", Email: "logist@polarstar.ru", Role: models.RoleLogist, Password: "123456"},
			{ID: "2", Name: "Марина Соколова", Email: "manager@polarstar.ru", Role: models.RoleManager, Password: "123456"},
			{ID: "3", Name: "Игорь Директоров", Email: "director@polarstar.ru", Role: models.RoleDirector, Password: "123456"},
		},
		Equipment: []models.Equipment{
			{ID: "e1", Number: "TCKU3456789", Type: models.EquipmentContainer, Status: models.EquipmentChecked, Location: "ПИК", LastCheck: "2026-02-20"},
			{ID: "e2", Number: "CRXU7890123", Type: models.EquipmentContainer, Status: models.EquipmentChecked, Location: "ДТК", LastCheck: "2026-02-18"},
			{ID: "e3", Number: "MSCU4561234", Type: models.EquipmentContainer, Status: models.EquipmentUnchecked, Location: "Гамбург", LastCheck: "2026-01-15", Comment: "Требует осмотра"},
			{ID: "e4", Number: "GESU1234567", Type: models.EquipmentContainer, Status: models.EquipmentBroken, Location: "ПИК", LastCheck: "2026-02-10", Comment: "Неисправен термостат"},
			{ID: "e5", Number: "СVIU8901234", Type: models.EquipmentContainer, Status: models.EquipmentChecked, Location: "ДТК", LastCheck: "2026-02-22"},
			{ID: "e6", Number: "DGK-001", Type: models.EquipmentDGK, Status: models.EquipmentChecked, Location: "ПИК", LastCheck: "2026-02-19"},
			{ID: "e7", Number: "DGK-002", Type: models.EquipmentDGK, Status: models.EquipmentUnchecked, Location: "ДТК", LastCheck: "2026-01-28"},
			{ID: "e8", Number: "EGK-001", Type: models.EquipmentDGK, Status: models.EquipmentChecked, Location: "Гамбург", LastCheck: "2026-02-15"},
			{ID: "e9", Number: "GEN-001", Type: models.EquipmentGenset, Status: models.EquipmentChecked, Location: "ПИК", LastCheck: "2026-02-21"},
			{ID: "e10", Number: "GEN-002", Type: models.EquipmentGenset, Status: models.EquipmentBroken, Location: "ДТК", LastCheck: "2026-02-05", Comment: "Замена аккумулятора"},
			{ID: "e11", Number: "TCKU9876543", Type: models.EquipmentContainer, Status: models.EquipmentChecked, Location: "ПИК", LastCheck: "2026-02-23"},
			{ID: "e12", Number: "HLCU2345678", Type: models.EquipmentContainer, Status: models.EquipmentChecked, Location: "ДТК", LastCheck: "2026-02-17"},
		},
		Shipments: []models.Shipment{
			{
				ID: "s1", Number: "001", Request: "ЗЯ-2026-045", Client: "ООО Фрешпром", ContainerNumber: "TCKU3456789",
				Footage: "40HC", DeliveryDate: "2026-02-25", DocsDate: "2026-02-22", InspectionDate: "2026-02-23",
				Places: 12, Weight: 18500, Cargo: "Мясо птицы", TempMode: "-18", VSDNumber: "ВСД-001234",
				Status: models.ShipmentReady, Terminal: "ПИК", Destination: "Москва-Товарная", GNGCode: "0207",
				ETSNVCode: "011", RequestName: "Мясо замороженное", DTNumber: "ДТ-2026-001", Subsidy: "Да", FlightID: "f1",
			},
			{
				ID: "s2", Number: "002", Request: "ЗЯ-2026-046", Client: "АО МолокоТрейд", ContainerNumber: "CRXU7890123",
				Footage: "20", DeliveryDate: "2026-02-26", DocsDate: "2026-02-23",
				Places: 8, Weight: 12000, Cargo: "Сыр твёрдый", TempMode: "+4", VSDNumber: "ВСД-001235",
				Status: models.ShipmentNotReady, Terminal: "ДТК", Destination: "Санкт-Петербург-Тов", GNGCode: "0406",
				ETSNVCode: "014", RequestName: "Молочная продукция", Comment: "Ожидаем ВСД", Subsidy: "Нет", FlightID: "f2",
			},
			{
				ID: "s3", Number: "003", Request: "ЗЯ-2026-047", Client: "ИП Рыбников", ContainerNumber: "MSCU4561234",
				Footage: "40", DeliveryDate: "2026-02-27", DocsDate: "2026-02-24", InspectionDate: "2026-02-24",
				Places: 20, Weight: 22000, Cargo: "Рыба мороженная", TempMode: "-20", VSDNumber: "ВСД-001236",
				Status: models.ShipmentReady, Terminal: "ПИК", Destination: "Новосибирск-Вост", GNGCode: "0302",
				ETSNVCode: "012", RequestName: "Рыба замороженная", DTNumber: "ДТ-2026-003", BillOfLading: "КОН-001",
				Subsidy: "Да", FlightID: "f3",
			},
			{
				ID: "s4", Number: "004", Request: "ЗЯ-2026-048", Client: "ООО АгроЭкспорт", ContainerNumber: "GESU1234567",
				Footage: "40HC", DeliveryDate: "2026-03-02",
				Places: 16, Weight: 19800, Cargo: "Ягода замороженная", TempMode: "-18",
				Status: models.ShipmentNotReady, Terminal: "ДТК", Destination: "Москва-Товарная", GNGCode: "0811",
				ETSNVCode: "018", RequestName: "Плодоовощная", Comment: "Нет документов", Subsidy: "Нет", FlightID: "f1",
			},
			{
				ID: "s5", Number: "005", Request: "ЗЯ-2026-049", Client: "ООО СибМит", ContainerNumber: "СVIU8901234",
				Footage: "40", DeliveryDate: "2026-03-05", DocsDate: "2026-03-01",
				Places: 14, Weight: 16500, Cargo: "Говядина", TempMode: "-18", VSDNumber: "ВСД-001237",
				Status: models.ShipmentNotReady, Terminal: "ПИК", Destination: "Новосибирск-Вост", GNGCode: "0201",
				ETSNVCode: "011", RequestName: "Мясо крупного скота", Subsidy: "Да", FlightID: "f4",
			},
			{
				ID: "s6", Number: "006", Request: "ЗЯ-2026-050", Client: "ООО ПродИмпорт", ContainerNumber: "TCKU9876543",
				Footage: "20", DeliveryDate: "2026-03-06", DocsDate: "2026-03-03", InspectionDate: "2026-03-04",
				Places: 10, Weight: 11000, Cargo: "Масло сливочное", TempMode: "+4", VSDNumber: "ВСД-001238",
				Status: models.ShipmentReady, Terminal: "ДТК", Destination: "Санкт-Петербург-Тов", GNGCode: "0405",
				ETSNVCode: "014", RequestName: "Молочный жир", DTNumber: "ДТ-2026-006", Subsidy: "Нет", FlightID: "f2",
			},
		},
		Flights: []models.Flight{
			{ID: "f1", Number: "МСК-2026-001", Direction: models.DirectionMoscow, PlanDate: "2026-03-01", Status: models.FlightPlanned},
			{ID: "f2", Number: "СПБ-2026-001", Direction: models.DirectionSPB, PlanDate: "2026-03-05", Status: models.FlightReady},
			{ID: "f3", Number: "НСК-2026-001", Direction: models.DirectionNovosibirsk, PlanDate: "2026-02-28", FactDate: "2026-02-28", Status: models.FlightDeparted},
			{ID: "f4", Number: "МСК-2026-002", Direction: models.DirectionMoscow, PlanDate: "2026-03-10", Status: models.FlightPlanned},
		},
		Logs: []models.ActionLog{
			{ID: "l1", UserID: "1", UserName: "Алексей Петров", Action: "Изменён статус", Entity: "Отправка", EntityID: "s1", Timestamp: "2026-02-23 09:14"},
			{ID: "l2", UserID: "2", UserName: "Марина Соколова", Action: "Создан рейс", Entity: "Рейс", EntityID: "f2", Timestamp: "2026-02-23 08:30"},
			{ID: "l3", UserID: "1", UserName: "Алексей Петров", Action: "Обновлены документы", Entity: "Отправка", EntityID: "s3", Timestamp: "2026-02-22 17:45"},
			{ID: "l4", UserID: "3", UserName: "Игорь Директоров", Action: "Добавлено оборудование", Entity: "Контейнер", EntityID: "e11", Timestamp: "2026-02-22 16:00"},
		},
	}
}
