package models

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
