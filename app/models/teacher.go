package models

import "time"

// Teacher is an account that can post tasks, announcements and files.
type Teacher struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"password,omitempty" bson:"password"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

func (t Teacher) DocID() string { return t.ID }

// PublicTeacher is the outbound shape of a teacher account. It has no
// password field at all, so a marshalled login response can never leak one.
type PublicTeacher struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (t Teacher) Public() PublicTeacher {
	return PublicTeacher{ID: t.ID, Name: t.Name, Email: t.Email, Role: "teacher"}
}

// TeacherRef is the point-in-time {id, name} snapshot embedded in tasks and
// announcements. Renaming a teacher does not rewrite historical records.
type TeacherRef struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}
