package dto

// ActivityRow fila de la hoja semanal de actividades, ordenada Lunes→Domingo.
type ActivityRow struct {
	Day  string `json:"day"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// UpdateActivitiesRequest estados a aplicar, en el mismo orden en que la hoja
// fue devuelta por el listado.
type UpdateActivitiesRequest struct {
	Done []bool `json:"done"`
}
