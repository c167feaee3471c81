package repository

// Factory describes access to the domain repositories.
type Factory interface {
	Users() UserRepository
	Orders() OrderRepository
}
