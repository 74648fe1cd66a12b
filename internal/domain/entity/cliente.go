package entity

import "time"

// Cliente entrada del directorio de clientes. El nombre es único.
type Cliente struct {
	ID        int64
	Nombre    string
	Direccion string
	Telefono  string
	Contacto  string
	CreatedAt time.Time
}
