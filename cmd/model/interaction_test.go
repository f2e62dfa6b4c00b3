package model

import "testing"

func TestLikeTargetValidate(t *testing.T) {
	cases := []struct {
		name   string
		target LikeTarget
		wantOk bool
	}{
		{"Video", LikeTarget{Type: "video", Id: 1}, true},
		{"Comment", LikeTarget{Type: "comment", Id: 42}, true},
		{"Tweet", LikeTarget{Type: "tweet", Id: 7}, true},
		{"UnknownType", LikeTarget{Type: "playlist", Id: 1}, false},
		{"EmptyType", LikeTarget{Id: 1}, false},
		{"ZeroId", LikeTarget{Type: "video"}, false},
		{"NegativeId", LikeTarget{Type: "tweet", Id: -3}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.target.Validate()
			if c.wantOk && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !c.wantOk && err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLikeTarget(t *testing.T) {
	like := &Like{LikeId: 1, UserId: 2, TargetType: "comment", TargetId: 99}
	target := like.Target()
	if target.Type != "comment" || target.Id != 99 {
		t.Errorf("unexpected target: %+v", target)
	}
	if err := target.Validate(); err != nil {
		t.Errorf("round-tripped target should validate, got %v", err)
	}
}
