package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeCommand(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{
			name:  "normalized dates",
			start: "01/05/24",
			end:   "12/31/24",
			want:  "S4DMRPTW /SFV5PTDRNG.FMT /T8 /SB1 /PD3301/05/2412/31/24",
		},
		{
			name:  "inputs are not altered",
			start: "not-a-date",
			end:   "also-not",
			want:  "S4DMRPTW /SFV5PTDRNG.FMT /T8 /SB1 /PD33not-a-datealso-not",
		},
		{
			name:  "empty inputs",
			start: "",
			end:   "",
			want:  "S4DMRPTW /SFV5PTDRNG.FMT /T8 /SB1 /PD33",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComposeCommand(tt.start, tt.end))
		})
	}
}

func TestComposeCommandDeterministic(t *testing.T) {
	first := ComposeCommand("03/01/24", "04/01/24")
	second := ComposeCommand("03/01/24", "04/01/24")
	assert.Equal(t, first, second)
}
