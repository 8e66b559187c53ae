package get_blocked_days

import "time"

// Request модель запроса заблокированных дней кабинки
type Request struct {
	CabinID int64 // ID кабинки
}

// Response модель ответа со списком заблокированных дней
//
// Дни отсортированы по возрастанию, дубликаты из пересекающихся броней
// схлопнуты. Календарь на клиенте отключает ровно эти даты
type Response struct {
	CabinID     int64
	BlockedDays []time.Time
}
