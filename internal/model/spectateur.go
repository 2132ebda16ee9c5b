package model

import "fmt"

// Spectateur is a patron who may hold ticket reservations.
type Spectateur struct {
    ID    uint64 // spectateurs.id
    Name  string // spectateurs.name
    Email string // spectateurs.email
}

// NewSpectateur builds a Spectateur from all of its attributes.
func NewSpectateur(id uint64, name, email string) Spectateur {
    return Spectateur{ID: id, Name: name, Email: email}
}

func (s Spectateur) String() string {
    return fmt.Sprintf("%d | %s | %s", s.ID, s.Name, s.Email)
}
