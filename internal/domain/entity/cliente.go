package entity

import "time"

// Cliente representa el perfil comercial de un cliente.
// UserID es opcional: los clientes de mostrador no tienen cuenta de acceso;
// un User con rol "cliente" tiene exactamente un Cliente vinculado.
type Cliente struct {
	ID            string
	UserID        *string
	Nombre        string
	DNI           string
	Telefono      string
	Email         string
	Direccion     string
	Preferencias  string
	Contacto      string
	FechaRegistro time.Time
}
