package service

import "errors"

var (
	ErrLawNotFound        = errors.New("law not found")
	ErrDuplicateSection   = errors.New("a law with this section already exists")
	ErrInvalidLaw         = errors.New("law requires a section and a title")
	ErrInvalidPenalty     = errors.New("penalty requires a law section")
	ErrPenaltyNotFound    = errors.New("penalty not found")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrInvalidCredentials = errors.New("invalid username, password or role")
	ErrUnauthorized       = errors.New("session missing or expired")
	ErrLawsUnavailable    = errors.New("law database unavailable")
	ErrUnknownCategory    = errors.New("unknown checklist category")
)
