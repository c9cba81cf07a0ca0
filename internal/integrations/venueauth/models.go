package venueauth

// Facility площадка (venue), которой принадлежат корты
type Facility struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"ownerId"`
	Active  bool   `json:"active"`
}

// manageCheckResponse ответ на проверку прав управления площадкой
type manageCheckResponse struct {
	Allowed bool `json:"allowed"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
