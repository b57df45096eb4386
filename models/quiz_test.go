package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizOptionList(t *testing.T) {
	tests := []struct {
		name    string
		options string
		want    []string
	}{
		{
			name:    "multiple choice",
			options: "Adiós,Gracias,Hola,Por favor",
			want:    []string{"Adiós", "Gracias", "Hola", "Por favor"},
		},
		{
			name:    "true false",
			options: "True,False",
			want:    []string{"True", "False"},
		},
		{
			name:    "single option",
			options: "Hola",
			want:    []string{"Hola"},
		},
		{
			name:    "empty field yields empty slice",
			options: "",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &Quiz{Options: tt.options}
			assert.Equal(t, tt.want, q.OptionList())
		})
	}
}
