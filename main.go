package main

import (
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"

	"github.com/uno-arena/server/config"
	"github.com/uno-arena/server/network"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	path := "config.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	conf, err := config.Load(path)
	if err != nil {
		log.Error(err)
		return
	}
	config.Set(conf)

	async.Async(func() {
		log.Error(network.NewWebsocketServer(conf.Server.WSAddr).Serve())
	})
	log.Error(network.NewTcpServer(conf.Server.TCPAddr).Serve())
}
