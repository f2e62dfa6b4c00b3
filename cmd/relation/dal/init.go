package dal

import "VidTube.com/cmd/relation/dal/db"

func Init() {
	db.Init()
}
