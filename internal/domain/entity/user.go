package entity

// User referencia mínima a un usuario. La identidad la gestiona un servicio externo;
// aquí solo se verifica existencia y se muestran datos básicos.
type User struct {
	ID    int64
	Name  string
	Email string
}
