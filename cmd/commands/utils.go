package commands

import (
	"fmt"
	"os"

	"fotkaj/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("fotkaj error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println("usage: fotkaj <run|version|help> [config path]") //nolint
}
