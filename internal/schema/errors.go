package schema

import "errors"

// Field errors shown inline next to the offending input
var (
	ErrContentRequired    = errors.New("Le contenu est requis")
	ErrInvalidDate        = errors.New("Date invalide (AAAA-MM-JJ ou JJ/MM/AAAA)")
	ErrCollectionRequired = errors.New("La collection est requise")
	ErrNameRequired       = errors.New("Le nom est requis")
	ErrInvalidColor       = errors.New("Couleur inconnue")
)
