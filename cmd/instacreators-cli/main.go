package main

import (
	"context"
	"log/slog"
	"os"

	"instacreators-backend/cmd/instacreators-cli/commands"
	"instacreators-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(false)

	_, err := telemetry.SetupFromEnv(context.Background(), "instacreators-cli")
	if err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to setup telemetry", "err", err)
	}

	commands.ExecuteContext(context.Background())
}
