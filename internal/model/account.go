package model

type Account struct {
	ID          int64
	Name        string
	Address     string
	Type        string
	Description string
	Balance     int64
}
