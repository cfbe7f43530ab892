package stocks

import "testing"

func TestMonthSummary_Tax(t *testing.T) {
	tests := []struct {
		name     string
		proceeds Money
		profit   Money
		want     Money
	}{
		{"over threshold with profit", M(25000), M(1000), M(150)},
		{"exactly at threshold", M(20000), M(1000), M(0)},
		{"under threshold", M(19999.99), M(1000), M(0)},
		{"over threshold with loss", M(25000), M(-1000), M(0)},
		{"over threshold with zero profit", M(25000), M(0), M(0)},
		{"no activity", M(0), M(0), M(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MonthSummary{Profit: tt.profit, Proceeds: tt.proceeds}
			if got := s.Tax(); !got.Equal(tt.want) {
				t.Errorf("Tax() = %s, want %s", got, tt.want)
			}
		})
	}
}
