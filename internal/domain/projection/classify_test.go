package projection_test

import (
	"testing"

	"github.com/jcastro-ops/inventario-campo/internal/domain/projection"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		onHand int
		demand int
		want   projection.Status
	}{
		{"stock cubre demanda", 10, 5, projection.StatusAdequate},
		{"stock igual a demanda", 5, 5, projection.StatusAdequate},
		{"cobertura parcial", 3, 5, projection.StatusPartial},
		{"sin stock y con demanda", 0, 5, projection.StatusCritical},
		{"sin stock ni demanda", 0, 0, projection.StatusAdequate},
		{"con stock sin demanda", 7, 0, projection.StatusAdequate},
		{"parcial con demanda de uno mas", 4, 5, projection.StatusPartial},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, projection.Classify(tc.onHand, tc.demand))
		})
	}
}
