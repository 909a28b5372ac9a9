package newsapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "already plain text", "already plain text"},
		{"tags stripped", "<p>Breaking <b>news</b> today</p>", "Breaking news today"},
		{"entities decoded", "profit &amp; loss", "profit & loss"},
		{"whitespace collapsed", "  spread \n across\tlines ", "spread across lines"},
		{"empty", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, flattenText(tc.in))
		})
	}
}
