package dal

import "VidTube.com/cmd/tweet/dal/db"

func Init() {
	db.Init()
}
