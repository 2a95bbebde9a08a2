package tri

import (
	"fmt"
	"testing"
)

func TestStart(t *testing.T) {
	type args struct {
		i int
	}
	tests := []struct {
		args args
		want int
	}{
		{args{0}, 0},
		{args{1}, 1},
		{args{2}, 3},
		{args{3}, 6},
		{args{4}, 10},
		{args{10}, 55},
		{args{1 << 16}, (1 << 16) * ((1 << 16) + 1) / 2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("window %d starts at %d", tt.args.i, tt.want), func(t *testing.T) {
			if got := Start(tt.args.i); got != tt.want {
				t.Errorf("Start() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnd(t *testing.T) {
	for i := 0; i < 100; i++ {
		if got, want := End(i), Start(i)+Len(i); got != want {
			t.Errorf("End(%d) = %v, want %v", i, got, want)
		}
	}
}
