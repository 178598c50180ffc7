package main

import (
	"context"
	"os/signal"
	"syscall"

	"sentinela/cmd"
	"sentinela/infra"
	"sentinela/pkg"
	bucket "sentinela/pkg/s3"
)

// @title Sentinela IA
// @version 1.0
// @description Consulta veicular, registro de ocorrências e análise de risco.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGKILL)
	defer stop()

	loadingEnv := infra.NewConfig()
	container := infra.NewContainerDI(loadingEnv)

	pkg.InitRedis()
	bucket.InitS3Client()

	cmd.StartAPI(ctx, container)
}
