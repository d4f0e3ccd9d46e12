package company

import "errors"

var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrCompanyCNPJExists = errors.New("company cnpj already registered")
	ErrInvalidCNPJ       = errors.New("invalid cnpj")
	ErrInvalidCompanyName = errors.New("company name cannot be empty")
)
