package jwt

import (
	"encoding/json"
	"testing"

	"github.com/hertz-contrib/jwt"
)

func TestClaimUserId(t *testing.T) {
	cases := []struct {
		name   string
		claims jwt.MapClaims
		want   int64
	}{
		{"Float64", jwt.MapClaims{IdentityKey: float64(42)}, 42},
		{"JsonNumber", jwt.MapClaims{IdentityKey: json.Number("1001")}, 1001},
		{"Int64", jwt.MapClaims{IdentityKey: int64(7)}, 7},
		{"Missing", jwt.MapClaims{}, 0},
		{"WrongType", jwt.MapClaims{IdentityKey: "42"}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := claimUserId(c.claims); got != c.want {
				t.Errorf("got %d, want %d", got, c.want)
			}
		})
	}
}
