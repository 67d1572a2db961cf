package entity

import "time"

// AccountType tipo de conta gráfica.
type AccountType string

// AccountTypeOffspring conta filhote, vinculada a um único cliente.
const AccountTypeOffspring AccountType = "FILHOTE"

// LedgerAccount conta gráfica criada na adesão do cliente (1:1). Nunca é alterada.
type LedgerAccount struct {
	ID         int64
	CustomerID int64
	Number     string
	Type       AccountType
	CreatedAt  time.Time
}
