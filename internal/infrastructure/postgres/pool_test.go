package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDSN(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"esquema postgres de plataforma gestionada",
			"postgres://u:p@db.example.com:5432/inv",
			"postgresql://u:p@db.example.com:5432/inv?sslmode=require",
		},
		{
			"sslmode existente se respeta",
			"postgresql://u:p@db.example.com:5432/inv?sslmode=disable",
			"postgresql://u:p@db.example.com:5432/inv?sslmode=disable",
		},
		{
			"query previa conserva sus parámetros",
			"postgresql://u:p@db.example.com:5432/inv?application_name=api",
			"postgresql://u:p@db.example.com:5432/inv?application_name=api&sslmode=require",
		},
		{
			"localhost sin ssl forzado",
			"postgres://u:p@localhost:5432/inv",
			"postgresql://u:p@localhost:5432/inv",
		},
		{
			"loopback sin ssl forzado",
			"postgresql://u:p@127.0.0.1:5432/inv",
			"postgresql://u:p@127.0.0.1:5432/inv",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeDSN(tc.in))
		})
	}
}
