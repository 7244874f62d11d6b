package main

import (
	"github.com/JPF032/Livora-Up-sub001/config"
	"github.com/JPF032/Livora-Up-sub001/routes"
	"github.com/JPF032/Livora-Up-sub001/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
