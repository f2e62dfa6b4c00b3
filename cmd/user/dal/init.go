package dal

import "VidTube.com/cmd/user/dal/db"

func Init() {
	db.Init()
}
