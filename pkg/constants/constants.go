package constants

import (
	"net"

	"github.com/pkg/errors"
)

const (
	ApiServiceName = "vidtube-api"

	TimeFormat = "2006-01-02 15:04:05"

	DefaultPageSize = 10
	MaxPageSize     = 100

	// MinIO buckets
	PictureBucket = "picture"
	VideoBucket   = "video"

	// like target types, one of exactly these three
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)

func GetOutBoundIP() (string, error) {
	conn, err := net.Dial("udp", "8.8.8.8:53")
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve outbound ip")
	}
	defer conn.Close()
	localAddr := conn.LocalAddr().(*net.UDPAddr)
	return localAddr.IP.String(), nil
}
