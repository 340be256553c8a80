package domain

// Profile is the account created through the registration form.
type Profile struct {
	Role         Flow
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	PetName      string
	PricePerHour int
}
