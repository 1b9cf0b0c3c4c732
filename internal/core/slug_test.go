package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Planta de Tratamiento", "planta-de-tratamiento"},
		{"Ósmosis Inversa", "osmosis-inversa"},
		{"Señal / Código #3", "senal-codigo-3"},
		{"  espacios  extra  ", "espacios-extra"},
		{"UPPER", "upper"},
		{"", ""},
		{"---", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}
