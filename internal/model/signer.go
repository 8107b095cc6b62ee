package model

import "time"

type Signer struct {
	ID         int64
	Address    string
	Name       string
	Role       string
	EnrolledAt time.Time
}
