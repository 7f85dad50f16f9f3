package user

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the authorization level carried in a session token. Kept as a
// named type so access checks go through capability methods instead of
// bare string comparisons scattered around handlers.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

// CanManageListings reports whether the role may create, update or
// delete site content. Only admins can.
func (r Role) CanManageListings() bool {
	return r == RoleAdmin
}

// User is a read-only credential record. Users are never created or
// updated through the API; they are seeded out of band.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"` // bcrypt hash, never exposed
	Role     Role               `bson:"role" json:"role"`
}
