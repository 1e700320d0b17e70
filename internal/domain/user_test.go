package domain

import "testing"

func TestNextLevelThreshold(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{100, 150},
		{500, 750},
		{750, 1125},
		{1125, 1688}, // 1687.5 rounds up
	}
	for _, tt := range tests {
		if got := NextLevelThreshold(tt.current); got != tt.want {
			t.Errorf("NextLevelThreshold(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestHasFriend(t *testing.T) {
	u := User{Friends: []string{"user-2", "user-3"}}
	if !u.HasFriend("user-2") {
		t.Error("want true for listed friend")
	}
	if u.HasFriend("user-9") {
		t.Error("want false for stranger")
	}
}
