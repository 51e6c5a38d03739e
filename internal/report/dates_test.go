package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDatePair(t *testing.T) {
	tests := []struct {
		name   string
		bodies []string
		want   DatePair
		wantOK bool
	}{
		{
			name:   "no messages",
			bodies: nil,
			wantOK: false,
		},
		{
			name:   "no dates at all",
			bodies: []string{"no dates here", "still none"},
			wantOK: false,
		},
		{
			name:   "single date is not enough",
			bodies: []string{"how about 1/5/24?"},
			wantOK: false,
		},
		{
			name:   "two dates in one message",
			bodies: []string{"Let's do 1/5/2024 to 12/31/24"},
			want:   DatePair{Start: "01/05/24", End: "12/31/24"},
			wantOK: true,
		},
		{
			name:   "dates split across messages",
			bodies: []string{"start on 2/14/24 please", "and end 3/1/2024"},
			want:   DatePair{Start: "02/14/24", End: "03/01/24"},
			wantOK: true,
		},
		{
			name:   "third token is ignored",
			bodies: []string{"3/1/24", "4/1/24", "5/1/24"},
			want:   DatePair{Start: "03/01/24", End: "04/01/24"},
			wantOK: true,
		},
		{
			name:   "four digit years truncated to last two",
			bodies: []string{"from 01/15/1999 until 02/20/2031"},
			want:   DatePair{Start: "01/15/99", End: "02/20/31"},
			wantOK: true,
		},
		{
			name:   "already padded dates pass through",
			bodies: []string{"06/07/24 and 08/09/24"},
			want:   DatePair{Start: "06/07/24", End: "08/09/24"},
			wantOK: true,
		},
		{
			name:   "out of range values are not validated",
			bodies: []string{"99/99/99 and 13/45/24"},
			want:   DatePair{Start: "99/99/99", End: "13/45/24"},
			wantOK: true,
		},
		{
			name:   "end before start is accepted",
			bodies: []string{"12/31/24 back to 1/1/24"},
			want:   DatePair{Start: "12/31/24", End: "01/01/24"},
			wantOK: true,
		},
		{
			name:   "non-date slashes are skipped",
			bodies: []string{"path a/b/c and 1/2", "then 5/6/24 7/8/24"},
			want:   DatePair{Start: "05/06/24", End: "07/08/24"},
			wantOK: true,
		},
		{
			name:   "three digit year passes through untruncated",
			bodies: []string{"1/2/345 then 3/4/24"},
			want:   DatePair{Start: "01/02/345", End: "03/04/24"},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDatePair(tt.bodies)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractDatePairScanOrder(t *testing.T) {
	// Oldest message wins even when later messages also carry dates.
	bodies := []string{
		"earliest mention 9/9/99",
		"later 1/1/2024 and 2/2/2024",
	}

	got, ok := ExtractDatePair(bodies)
	assert.True(t, ok)
	assert.Equal(t, "09/09/99", got.Start)
	assert.Equal(t, "01/01/24", got.End)
}
