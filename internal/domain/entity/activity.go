package entity

// Activity es una fila de la hoja semanal de actividades (CSV plano).
// No tiene relación con el ledger de stock.
type Activity struct {
	Day  string
	Name string
	Done bool
}
