package models

// ImportMode selects how an uploaded card set is merged into the ledger.
type ImportMode string

const (
	ImportAdd     ImportMode = "add"     // Append incoming cards as new cards with fresh ids
	ImportReplace ImportMode = "replace" // Discard existing cards and adopt the incoming set verbatim
)

// Valid reports whether the mode is one of the supported values.
func (m ImportMode) Valid() bool {
	return m == ImportAdd || m == ImportReplace
}

// CardsPayload is the download and upload document.
type CardsPayload struct {
	Cards []Card `json:"cards"`
}
