package polyroot

import (
	"math/big"
	"testing"
)

func TestGcd(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "0", "0"},
		{"0", "7", "7"},
		{"-7", "0", "7"},
		{"12", "18", "6"},
		{"-12", "18", "6"},
		{"-12", "-18", "6"},
		{"17", "5", "1"},
		{"36893488147419103232", "18446744073709551616", "18446744073709551616"},
		{"340282366920938463463374607431768211457", "18446744073709551617", "1"},
	}
	for _, tt := range tests {
		x, y := MustParseInt(tt.x), MustParseInt(tt.y)
		got := gcd(x, y)
		if got.String() != tt.want {
			t.Errorf("gcd(%v, %v) = %v, want %v", x, y, got, tt.want)
		}
	}
}

func TestLcm(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "5", "0"},
		{"4", "6", "12"},
		{"-4", "6", "12"},
		{"7", "7", "7"},
		{"18446744073709551616", "3", "55340232221128654848"},
	}
	for _, tt := range tests {
		x, y := MustParseInt(tt.x), MustParseInt(tt.y)
		got := lcm(x, y)
		if got.String() != tt.want {
			t.Errorf("lcm(%v, %v) = %v, want %v", x, y, got, tt.want)
		}
	}
}

func TestIsqrt(t *testing.T) {
	tests := []struct {
		x      string
		want   string
		wantOk bool
	}{
		{"0", "0", true},
		{"1", "1", true},
		{"2", "1", false},
		{"15", "3", false},
		{"16", "4", true},
		{"17", "4", false},
		{"18446744073709551615", "4294967295", false},
		{"18446744073709551616", "4294967296", true},
		{"-4", "0", false},
	}
	for _, tt := range tests {
		x := MustParseInt(tt.x)
		got, ok := isqrt(x)
		if got.String() != tt.want || ok != tt.wantOk {
			t.Errorf("isqrt(%v) = (%v, %v), want (%v, %v)", x, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestIcbrt(t *testing.T) {
	tests := []struct {
		x      string
		want   string
		wantOk bool
	}{
		{"0", "0", true},
		{"1", "1", true},
		{"7", "1", false},
		{"8", "2", true},
		{"-8", "-2", true},
		{"-9", "-2", false},
		{"1000000", "100", true},
		{"1000001", "100", false},
	}
	for _, tt := range tests {
		x := MustParseInt(tt.x)
		got, ok := icbrt(x)
		if got.String() != tt.want || ok != tt.wantOk {
			t.Errorf("icbrt(%v) = (%v, %v), want (%v, %v)", x, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestDivisors(t *testing.T) {
	tests := []struct {
		x    int64
		want []int64
	}{
		{0, nil},
		{1, []int64{1}},
		{-1, []int64{1}},
		{7, []int64{1, 7}},
		{12, []int64{1, 2, 3, 4, 6, 12}},
		{-16, []int64{1, 2, 4, 8, 16}},
		{125, []int64{1, 5, 25, 125}},
	}
	for _, tt := range tests {
		got := divisors(NewInt(tt.x))
		if len(got) != len(tt.want) {
			t.Errorf("divisors(%v) = %v, want %v", tt.x, got, tt.want)
			continue
		}
		for i := range got {
			if got[i].Cmp(NewInt(tt.want[i])) != 0 {
				t.Errorf("divisors(%v) = %v, want %v", tt.x, got, tt.want)
				break
			}
		}
	}
}

func TestDivisors_Large(t *testing.T) {
	x := MustParseInt("100000000000000")
	got := divisors(x)
	if len(got) != 225 {
		t.Fatalf("len(divisors(%v)) = %v, want 225", x, len(got))
	}
	if got[0].Cmp(intOne) != 0 || got[len(got)-1].Cmp(x) != 0 {
		t.Errorf("divisors(%v) = [%v ... %v], want [1 ... %v]", x, got[0], got[len(got)-1], x)
	}
	for i, d := range got {
		if _, r := x.quoRem(d); !r.IsZero() {
			t.Errorf("divisors(%v) contains %v, which does not divide it", x, d)
		}
		if i > 0 && got[i-1].Cmp(d) >= 0 {
			t.Errorf("divisors(%v) is not strictly ascending at %v", x, d)
		}
	}
}

func TestDivisorsWord(t *testing.T) {
	for x := uint64(1); x <= 300; x++ {
		got := divisorsWord(x)
		want := divisorsInt(NewIntFromUint64(x))
		if len(got) != len(want) {
			t.Errorf("divisorsWord(%v) = %v, want %v", x, got, want)
			continue
		}
		for i := range got {
			if NewIntFromUint64(got[i]).Cmp(want[i]) != 0 {
				t.Errorf("divisorsWord(%v) = %v, want %v", x, got, want)
				break
			}
		}
	}
}

/******************************************************
* Fuzzing
******************************************************/

func FuzzGcd(f *testing.F) {
	f.Add(int64(12), int64(18))
	f.Add(int64(-9223372036854775808), int64(6))
	f.Add(int64(0), int64(0))

	f.Fuzz(
		func(t *testing.T, x, y int64) {
			got := gcd(NewInt(x), NewInt(y))
			want := new(big.Int).GCD(nil, nil, new(big.Int).Abs(big.NewInt(x)), new(big.Int).Abs(big.NewInt(y)))
			if got.String() != want.String() {
				t.Errorf("gcd(%v, %v) = %v, want %v", x, y, got, want)
			}
		},
	)
}
