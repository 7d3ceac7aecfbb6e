/*
Copyright 2026 the rest-project Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/santalovapolina/rest-project/pkg/constants"
	"github.com/santalovapolina/rest-project/pkg/server"
)

func main() {
	var options server.Options

	options.AddFlags(pflag.CommandLine)

	verbose := pflag.Bool("verbose", false, "Log every request served.")

	pflag.Parse()

	zapConfig := zap.NewProductionConfig()
	if *verbose {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapLogger, err := zapConfig.Build()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	defer func() {
		_ = zapLogger.Sync()
	}()

	logger := zapr.NewLogger(zapLogger)

	logger.WithName("init").Info("service starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.New(logger.WithName("twin"), options).Run(ctx); err != nil {
		logger.Error(err, "server failed")
		os.Exit(1) //nolint:gocritic
	}
}
