package repository

import (
	"github.com/spf13/afero"
)

type Repository struct {
	Ledger LedgerRepo
}

// NewRepository wires the CSV ledger stored at path on fs.
func NewRepository(fs afero.Fs, path string) *Repository {
	return &Repository{
		Ledger: NewLedgerCSV(fs, path),
	}
}
