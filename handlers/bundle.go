package handlers

import (
	userRepo "github.com/RajRabadiya018/CarringNanny/database/repository/user"
)

// HandlerBundle groups the HTTP handlers and the repository the auth
// middleware verifies tokens against, so route registration takes one value.
type HandlerBundle struct {
	Users    *UserHandler
	Nannies  *NannyHandler
	Bookings *BookingHandler
	Admin    *AdminHandler

	UserRepo userRepo.UserRepository
}
