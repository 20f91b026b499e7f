package entity

import "testing"

func TestDeriveSeat(t *testing.T) {
	t.Parallel()

	t.Run("maps indexes on a 20x20 grid", func(t *testing.T) {
		tests := []struct {
			seatIndex int
			want      SeatPosition
		}{
			{0, SeatPosition{Number: 1, Row: 1, Column: 1}},
			{19, SeatPosition{Number: 20, Row: 1, Column: 20}},
			{20, SeatPosition{Number: 21, Row: 2, Column: 1}},
			{399, SeatPosition{Number: 400, Row: 20, Column: 20}},
		}

		for _, tt := range tests {
			got, err := DeriveSeat(20, 20, tt.seatIndex)
			if err != nil {
				t.Fatalf("DeriveSeat(20, 20, %d): unexpected error %v", tt.seatIndex, err)
			}
			if got != tt.want {
				t.Fatalf("DeriveSeat(20, 20, %d) = %+v, want %+v", tt.seatIndex, got, tt.want)
			}
		}
	})

	t.Run("maps indexes on a non-square grid", func(t *testing.T) {
		got, err := DeriveSeat(2, 3, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := SeatPosition{Number: 5, Row: 2, Column: 2}
		if got != want {
			t.Fatalf("DeriveSeat(2, 3, 4) = %+v, want %+v", got, want)
		}
	})

	t.Run("rejects out-of-range indexes", func(t *testing.T) {
		for _, idx := range []int{-1, 400, 1000} {
			if _, err := DeriveSeat(20, 20, idx); err == nil {
				t.Fatalf("DeriveSeat(20, 20, %d): expected error", idx)
			}
		}
	})

	t.Run("rejects degenerate grids", func(t *testing.T) {
		if _, err := DeriveSeat(0, 20, 0); err == nil {
			t.Fatal("expected error for zero rows")
		}
		if _, err := DeriveSeat(20, -1, 0); err == nil {
			t.Fatal("expected error for negative columns")
		}
	})
}
