package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"tx-inspector-sol/internal/config"
	"tx-inspector-sol/internal/logic/inspector"
	"tx-inspector-sol/internal/pkg/logger"
	"tx-inspector-sol/internal/rpc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	configFile = flag.String("f", "etc/inspect.yaml", "the config file")
	signature  = flag.String("tx", "", "transaction signature (base58)")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
		}
	}()

	flag.Parse()
	if *signature == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect -tx <signature> [-f etc/inspect.yaml]")
		os.Exit(2)
	}

	var c config.InspectConfig
	conf.MustLoad(*configFile, &c)

	logger.Init(c.LogConf.ToLogOption())
	defer logger.Sync()

	client := rpc.NewClient(c.RpcConf.Endpoint, c.RpcConf.TimeoutSec)

	result := inspector.GetTransactionDetails(context.Background(), client, *signature)
	if result == nil {
		fmt.Fprintln(os.Stderr, "no result")
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Errorf("marshal result failed: %v", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
