package userservice

// Роли пользователей маркетплейса
const (
	RoleCustomer   = "customer"
	RoleCleaner    = "cleaner"
	RoleSupport    = "support"
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

// Customer профиль пользователя из UserService
type Customer struct {
	ID                int64  `json:"id"`
	Role              string `json:"role"`
	CompletedBookings int    `json:"completed_bookings"`
}

// IsBackOffice возвращает true, если пользователю доступно управление rate card
func (c *Customer) IsBackOffice() bool {
	return c.Role == RoleAdmin || c.Role == RoleSupervisor
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
