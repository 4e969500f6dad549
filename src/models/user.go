package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User roles.
const (
	RoleStudent = "Student"
	RoleAdmin   = "Admin"
)

// User บัญชีผู้ใช้สำหรับเข้าสู่ระบบ
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"` // accepted from clients, never returned
	Role     string             `bson:"role" json:"role"`
	RefID    primitive.ObjectID `bson:"refId,omitempty" json:"refId,omitempty"`
	Name     string             `bson:"-" json:"name"`
}
