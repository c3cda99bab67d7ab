package repoargs

type CreateUser struct {
	ID              string
	Email           string
	FullName        string
	AppleID         string
	GoogleID        string
	Country         string
	DefaultCurrency string
}

type UpdateProcessorAccount struct {
	UserID          string
	AccountID       string
	Country         string
	DefaultCurrency string
}
