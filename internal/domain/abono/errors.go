package abono

import "errors"

var (
	ErrAbonoNotFound    = errors.New("abono not found")
	ErrAbonoExists      = errors.New("an abono already exists for this workday")
	ErrDocumentNotFound = errors.New("abono document not found")
)
