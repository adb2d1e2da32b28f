package domain_util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKey(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"小写折叠", "Romance", "romance"},
		{"去变音符号", "Ficção Científica", "ficcao cientifica"},
		{"作者名", "José Saramago", "jose saramago"},
		{"首尾空白", "  Poesia  ", "poesia"},
		{"空串", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MatchKey(tc.in))
		})
	}
}

func TestMatchKey_EquivalentSpellings(t *testing.T) {
	assert.Equal(t, MatchKey("FICÇÃO"), MatchKey("ficcao"))
	assert.Equal(t, MatchKey("Machado de Assis"), MatchKey("machado de assis"))
}
