package handlers

// HandlerBundle groups all HTTP handlers for route registration.
type HandlerBundle struct {
	Profiles *ProfileHandler
	Services *ServiceHandler
	AI       *AIHandler
	Bookings *BookingHandler
	Tasks    *TaskHandler
	Reviews  *ReviewHandler
}
