package oss

import "testing"

func TestParseObjectUrl(t *testing.T) {
	cases := []struct {
		name       string
		rawUrl     string
		wantBucket string
		wantObject string
		wantOk     bool
	}{
		{"PictureUrl", "http://localhost:9000/picture/avatar/42.jpg", "picture", "avatar/42.jpg", true},
		{"VideoUrl", "http://cdn.example.com/video/abc/video.mp4", "video", "abc/video.mp4", true},
		{"Empty", "", "", "", false},
		{"NoObject", "http://localhost:9000/picture", "", "", false},
		{"BareHost", "http://localhost:9000/", "", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bucket, object, ok := parseObjectUrl(c.rawUrl)
			if ok != c.wantOk {
				t.Fatalf("ok = %v, want %v", ok, c.wantOk)
			}
			if !ok {
				return
			}
			if bucket != c.wantBucket || object != c.wantObject {
				t.Errorf("got (%s, %s), want (%s, %s)", bucket, object, c.wantBucket, c.wantObject)
			}
		})
	}
}
