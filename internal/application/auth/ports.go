package auth

// ResetTokenStore registra los tokens de recuperación de contraseña: a lo sumo
// uno vigente por usuario. La implementación en memoria no se comparte entre
// instancias del servidor; detrás de un balanceador debe usarse un backend
// compartido que implemente este mismo puerto.
type ResetTokenStore interface {
	// Issue genera y registra un secreto nuevo para el usuario, pisando
	// cualquier token anterior, y devuelve el secreto en claro.
	Issue(userID int) (string, error)
	// Consume valida el secreto contra el registro y lo elimina. Exactamente
	// un Consume puede tener éxito por token emitido.
	Consume(userID int, rawToken string) error
}

// Mailer envía mails transaccionales (entrega out-of-band del link de reset).
type Mailer interface {
	Send(to, subject, htmlBody string) error
}
