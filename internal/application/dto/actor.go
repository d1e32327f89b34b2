package dto

// Actor identidad verificada del llamador (extraída del JWT por el middleware).
// Un Actor nil o con UserID 0 representa a un visitante anónimo.
type Actor struct {
	UserID   int64
	Username string
	Role     string
}

// IsAdmin indica si el actor tiene rol admin.
func (a *Actor) IsAdmin() bool { return a != nil && a.Role == "admin" }

// IsAuthenticated indica si hay un usuario detrás de la petición.
func (a *Actor) IsAuthenticated() bool { return a != nil && a.UserID > 0 }

// CanAccess indica si el actor puede ver un recurso cuyo dueño es ownerID.
func (a *Actor) CanAccess(ownerID int64) bool {
	if a.IsAdmin() {
		return true
	}
	return a.IsAuthenticated() && ownerID == a.UserID
}
