package entities

import "time"

// Driver is the person (motorista) assigned to run a manifest.
//
// Storage model:
//   - PK: id (auto-assigned)
//   - unique: cpf
//
// CPF is immutable after creation; only Name and Phone can be updated.
type Driver struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nome"`
	CPF       string    `json:"cpf"`
	Phone     string    `json:"telefone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DriverUpdate is a partial update. A nil field means "not provided" and is
// left unchanged.
type DriverUpdate struct {
	Name  *string
	Phone *string
}

// IsEmpty reports whether no field was provided.
func (u DriverUpdate) IsEmpty() bool {
	return u.Name == nil && u.Phone == nil
}

// Apply returns a copy of d with the provided fields replaced.
func (u DriverUpdate) Apply(d Driver) Driver {
	if u.Name != nil {
		d.Name = *u.Name
	}
	if u.Phone != nil {
		d.Phone = *u.Phone
	}
	return d
}
