package dotenv

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func Load() error {
	err := godotenv.Load()
	if err != nil {
		return err
	}

	return ApplyFlags(os.Args[1:])
}

// ApplyFlags переопределяет переменные окружения флагами командной строки.
func ApplyFlags(args []string) error {
	flags := pflag.NewFlagSet("parcel-service", pflag.ContinueOnError)
	portFlag := flags.String("port", "", "Server port (overrides PORT environment variable)")

	err := flags.Parse(args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *portFlag != "" {
		err := os.Setenv("PORT", *portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
